// Package bookmarks stores named viewports as one JSON file each.
package bookmarks

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/fractile/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.BookmarkStore under <root>/.fractile/bookmarks.
type Store struct{}

// NewStore returns a bookmark store.
func NewStore() *Store {
	return &Store{}
}

// Get returns the bookmark called name, or nil, nil when there is none.
func (s *Store) Get(root, name string) (*domain.Bookmark, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domain.ErrInvalidBookmarkName
	}
	b, err := readBookmark(s.filename(root, name))
	if err != nil || b == nil {
		return nil, err
	}
	// Guard against hash collisions.
	if b.Name != name {
		return nil, nil
	}
	return b, nil
}

// Put writes b, replacing any bookmark with the same name.
func (s *Store) Put(root string, b domain.Bookmark) error {
	if strings.TrimSpace(b.Name) == "" {
		return domain.ErrInvalidBookmarkName
	}
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	filename := s.filename(root, b.Name)
	if err := os.MkdirAll(filepath.Dir(filename), domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreCreateFailed.Error())
	}
	//nolint:gosec // the path is built from the store directory and a hashed name
	if err := os.WriteFile(filename, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "bookmark", b.Name)
	}
	return nil
}

// List returns every bookmark sorted by name. A missing store is empty.
func (s *Store) List(root string) ([]domain.Bookmark, error) {
	dir := filepath.Join(root, domain.DefaultBookmarksPath())
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, domain.ErrStoreReadFailed.Error())
	}

	var out []domain.Bookmark
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		b, err := readBookmark(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, zerr.With(err, "file", e.Name())
		}
		if b != nil {
			out = append(out, *b)
		}
	}
	slices.SortFunc(out, func(a, b domain.Bookmark) int { return strings.Compare(a.Name, b.Name) })
	return out, nil
}

func (s *Store) filename(root, name string) string {
	sum := strconv.FormatUint(xxhash.Sum64String(name), 16)
	return filepath.Join(root, domain.DefaultBookmarksPath(), sum+".json")
}

func readBookmark(filename string) (*domain.Bookmark, error) {
	//nolint:gosec // the path is built from the store directory and a hashed name
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, domain.ErrStoreReadFailed.Error())
	}
	var b domain.Bookmark
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error())
	}
	return &b, nil
}
