package app

import (
	"fmt"
	"math"

	"go.trai.ch/fractile/internal/core/domain"
	"go.trai.ch/zerr"
)

// BookmarkOptions describes the view to save. Nil coordinates fall back to
// the configured viewport.
type BookmarkOptions struct {
	ConfigPath string
	OriginX    *float64
	OriginY    *float64
	Scale      *float64
}

// SaveBookmark stores the view under name, replacing any previous bookmark
// with the same name.
func (a *App) SaveBookmark(name string, opts BookmarkOptions) (*domain.Bookmark, error) {
	if name == "" {
		return nil, domain.ErrInvalidBookmarkName
	}
	cfg, err := a.loadConfig(ViewOptions{ConfigPath: opts.ConfigPath})
	if err != nil {
		return nil, err
	}

	view := cfg.InitialViewport()
	if opts.OriginX != nil {
		view.Origin = complex(*opts.OriginX, imag(view.Origin))
	}
	if opts.OriginY != nil {
		view.Origin = complex(real(view.Origin), *opts.OriginY)
	}
	if opts.Scale != nil {
		view.Scale = *opts.Scale
		if !(view.Scale > 0) || math.IsInf(view.Scale, 0) {
			return nil, zerr.With(domain.ErrInvalidScale, "scale", view.Scale)
		}
	}

	root, err := a.rootDir()
	if err != nil {
		return nil, err
	}
	b := domain.NewBookmark(name, view, a.now().UTC())
	if err := a.bookmarks.Put(root, b); err != nil {
		return nil, err
	}
	a.logger.Info(fmt.Sprintf("saved bookmark %q", name))
	return &b, nil
}

// Bookmarks lists the saved bookmarks sorted by name.
func (a *App) Bookmarks() ([]domain.Bookmark, error) {
	root, err := a.rootDir()
	if err != nil {
		return nil, err
	}
	return a.bookmarks.List(root)
}

// Bookmark returns the named bookmark.
func (a *App) Bookmark(name string) (*domain.Bookmark, error) {
	root, err := a.rootDir()
	if err != nil {
		return nil, err
	}
	b, err := a.bookmarks.Get(root, name)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, zerr.With(domain.ErrBookmarkNotFound, "name", name)
	}
	return b, nil
}
