package ports

import "go.trai.ch/fractile/internal/core/domain"

// BookmarkStore persists named viewports.
//
//go:generate mockgen -source=bookmarks.go -destination=mocks/mock_bookmarks.go -package=mocks
type BookmarkStore interface {
	// Get retrieves a bookmark by name.
	// Returns nil, nil if not found.
	Get(root, name string) (*domain.Bookmark, error)

	// Put stores the bookmark, replacing any with the same name.
	Put(root string, bookmark domain.Bookmark) error

	// List returns every bookmark sorted by name.
	List(root string) ([]domain.Bookmark, error)
}
