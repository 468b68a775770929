package explorer

import "go.trai.ch/fractile/internal/engine/tiles"

// Cache exposes the tile cache for tests.
func (e *Explorer) Cache() *tiles.Cache {
	return e.cache
}
