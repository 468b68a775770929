// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/fractile/internal/adapters/bookmarks"
	_ "go.trai.ch/fractile/internal/adapters/config"
	_ "go.trai.ch/fractile/internal/adapters/escape"
	_ "go.trai.ch/fractile/internal/adapters/fs"
	_ "go.trai.ch/fractile/internal/adapters/linear"
	_ "go.trai.ch/fractile/internal/adapters/logger"
	_ "go.trai.ch/fractile/internal/adapters/palette"
	_ "go.trai.ch/fractile/internal/adapters/raster"
	_ "go.trai.ch/fractile/internal/adapters/telemetry"
	_ "go.trai.ch/fractile/internal/adapters/tui"
	_ "go.trai.ch/fractile/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/fractile/internal/app"
)
