package domain

import "path/filepath"

const (
	// FractileDirName is the name of the internal workspace directory.
	FractileDirName = ".fractile"

	// BookmarksDirName is the name of the bookmark store directory.
	BookmarksDirName = "bookmarks"

	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "fractile.yaml"

	// FramePrefix is the file name prefix for progressive frame dumps.
	FramePrefix = "frame-"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultFractilePath returns the default root directory for fractile metadata.
func DefaultFractilePath() string {
	return FractileDirName
}

// DefaultBookmarksPath returns the default path for the bookmark store.
// It joins .fractile and bookmarks.
func DefaultBookmarksPath() string {
	return filepath.Join(FractileDirName, BookmarksDirName)
}
