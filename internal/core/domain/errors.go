package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigNotFound is returned when no config file can be found.
	ErrConfigNotFound = zerr.New("could not find fractile.yaml")

	// ErrUnsupportedConfigVersion is returned when the config declares an unknown schema version.
	ErrUnsupportedConfigVersion = zerr.New("unsupported config version")

	// ErrInvalidScale is returned when the viewport scale is not a positive finite number.
	ErrInvalidScale = zerr.New("viewport scale must be positive and finite")

	// ErrInvalidDimensions is returned when the render size is not positive.
	ErrInvalidDimensions = zerr.New("render width and height must be positive")

	// ErrInvalidTileEdge is returned when the tile edge is not positive.
	ErrInvalidTileEdge = zerr.New("tile edge must be positive")

	// ErrInvalidLevels is returned when the level divisors do not describe a progression.
	ErrInvalidLevels = zerr.New("level divisors must be strictly decreasing, divide the tile edge and end at 1")

	// ErrInvalidEvictionFactor is returned when the eviction factor is below one.
	ErrInvalidEvictionFactor = zerr.New("eviction factor must be at least 1")

	// ErrInvalidIterations is returned when the evaluator iteration budget is out of range.
	ErrInvalidIterations = zerr.New("max iterations must be between 1 and 65535")

	// ErrInvalidBands is returned when the colour band count is out of range.
	ErrInvalidBands = zerr.New("bands must be between 1 and 256")

	// ErrInvalidScriptStep is returned when a script step is neither a pan nor a zoom.
	ErrInvalidScriptStep = zerr.New("script step must set exactly one of pan or zoom")

	// ErrUnknownPalette is returned when a palette name is not registered.
	ErrUnknownPalette = zerr.New("unknown palette")

	// ErrUnsupportedFormat is returned when an export format is not supported.
	ErrUnsupportedFormat = zerr.New("unsupported output format, expected png, bmp or tiff")

	// ErrExportFailed is returned when an image cannot be written.
	ErrExportFailed = zerr.New("failed to export image")

	// ErrRenderIncomplete is returned when a render times out before every tile finished.
	ErrRenderIncomplete = zerr.New("render did not complete before the deadline")

	// ErrRenderFailed is returned when a render fails.
	ErrRenderFailed = zerr.New("render failed")

	// ErrStoreCreateFailed is returned when the bookmark store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create bookmark store directory")

	// ErrStoreReadFailed is returned when a bookmark cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read bookmark")

	// ErrStoreUnmarshalFailed is returned when a bookmark cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal bookmark")

	// ErrStoreMarshalFailed is returned when a bookmark cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal bookmark")

	// ErrStoreWriteFailed is returned when a bookmark cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write bookmark")

	// ErrBookmarkNotFound is returned when a named bookmark does not exist.
	ErrBookmarkNotFound = zerr.New("bookmark not found")

	// ErrInvalidBookmarkName is returned when a bookmark name is empty.
	ErrInvalidBookmarkName = zerr.New("bookmark name must not be empty")

	// ErrWatcherStartFailed is returned when the file watcher cannot be started.
	ErrWatcherStartFailed = zerr.New("failed to start file watcher")

	// ErrNotInteractive is returned when explore is started without a terminal.
	ErrNotInteractive = zerr.New("explore needs an interactive terminal")

	// ErrFailedToGetRoot is returned when the working directory cannot be determined.
	ErrFailedToGetRoot = zerr.New("failed to get working directory")
)
