package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FileSystem is the slice of the filesystem the loader reads through.
type FileSystem interface {
	// Stat returns file info for path.
	Stat(path string) (fs.FileInfo, error)
	// ReadFile reads the whole file at path.
	ReadFile(path string) ([]byte, error)
}

// OSFS implements FileSystem on the real filesystem.
type OSFS struct{}

// Stat returns file info for path.
func (OSFS) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// ReadFile reads the whole file at path.
func (OSFS) ReadFile(path string) ([]byte, error) {
	// #nosec G304 -- the path is chosen by the user
	return os.ReadFile(path)
}

// MapFSAdapter serves absolute paths below Root from an fs.FS, typically a
// fstest.MapFS in tests.
type MapFSAdapter struct {
	FS   fs.FS
	Root string
}

// NewMapFSAdapter returns an adapter that maps Root to the top of fsys.
func NewMapFSAdapter(root string, fsys fs.FS) *MapFSAdapter {
	return &MapFSAdapter{FS: fsys, Root: root}
}

// Stat returns file info for path.
func (m *MapFSAdapter) Stat(path string) (fs.FileInfo, error) {
	return fs.Stat(m.FS, m.rel(path))
}

// ReadFile reads the whole file at path.
func (m *MapFSAdapter) ReadFile(path string) ([]byte, error) {
	return fs.ReadFile(m.FS, m.rel(path))
}

// rel strips Root from path. Paths outside Root are returned unchanged so
// that lookups fail with fs.ErrNotExist or fs.ErrInvalid.
func (m *MapFSAdapter) rel(path string) string {
	if !filepath.IsAbs(path) {
		return path
	}
	if path == m.Root {
		return "."
	}
	if m.Root != "/" && !strings.HasPrefix(path, m.Root+string(filepath.Separator)) {
		return path
	}
	return strings.TrimPrefix(strings.TrimPrefix(path, m.Root), string(filepath.Separator))
}
