package bookmarks

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/fractile/internal/core/ports"
)

// NodeID is the graft node for the bookmark store.
const NodeID graft.ID = "adapter.bookmark_store"

func init() {
	graft.Register(graft.Node[ports.BookmarkStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.BookmarkStore, error) {
			return NewStore(), nil
		},
	})
}
