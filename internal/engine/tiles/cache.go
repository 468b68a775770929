package tiles

import (
	"image"
	"iter"
	"maps"

	"go.trai.ch/fractile/internal/core/domain"
)

// Cache maps addresses to tiles and recycles retired tiles through a free
// pool. It is not safe for concurrent use: only the frame driver touches it.
type Cache struct {
	spec      Spec
	blank     *image.RGBA
	maxTiles  int
	tiles     map[domain.Address]*Tile
	free      []*Tile
	allocated int
}

// NewCache creates an empty cache. maxTiles caps allocation, zero means no cap.
func NewCache(spec Spec, maxTiles int) *Cache {
	return &Cache{
		spec: spec,
		// A transparent placeholder lets whatever is underneath show through.
		blank:    image.NewRGBA(image.Rect(0, 0, 1, 1)),
		maxTiles: maxTiles,
		tiles:    make(map[domain.Address]*Tile),
	}
}

// GetOrCreate returns the tile cached at addr. On a miss it takes a tile from
// the free pool, or allocates one, and points it at rect. A hit ignores rect.
// It returns nil when the allocation cap is reached.
func (c *Cache) GetOrCreate(addr domain.Address, rect domain.Rect) *Tile {
	if t, ok := c.tiles[addr]; ok {
		return t
	}
	t := c.take()
	if t == nil {
		return nil
	}
	t.Reparameterize(rect)
	t.addr = addr
	c.tiles[addr] = t
	return t
}

func (c *Cache) take() *Tile {
	if n := len(c.free); n > 0 {
		t := c.free[n-1]
		c.free[n-1] = nil
		c.free = c.free[:n-1]
		return t
	}
	if c.maxTiles > 0 && c.allocated >= c.maxTiles {
		return nil
	}
	c.allocated++
	return NewTile(c.spec, c.blank)
}

// Get returns the tile cached at addr.
func (c *Cache) Get(addr domain.Address) (*Tile, bool) {
	t, ok := c.tiles[addr]
	return t, ok
}

// InvalidateAll cancels every cached tile and moves it to the free pool.
// It returns the number of tiles retired.
func (c *Cache) InvalidateAll() int {
	n := len(c.tiles)
	for _, t := range c.tiles {
		t.Cancel(domain.ReasonReparameterize)
		c.free = append(c.free, t)
	}
	clear(c.tiles)
	return n
}

// Evict cancels the tile at addr and retires it to the free pool.
func (c *Cache) Evict(addr domain.Address) bool {
	t, ok := c.tiles[addr]
	if !ok {
		return false
	}
	t.Cancel(domain.ReasonReparameterize)
	delete(c.tiles, addr)
	c.free = append(c.free, t)
	return true
}

// All iterates over the cached tiles. The cache must not be modified during
// iteration.
func (c *Cache) All() iter.Seq2[domain.Address, *Tile] {
	return maps.All(c.tiles)
}

// Len returns the number of cached tiles.
func (c *Cache) Len() int {
	return len(c.tiles)
}

// Pooled returns the number of idle tiles in the free pool.
func (c *Cache) Pooled() int {
	return len(c.free)
}

// Allocated returns the number of tiles ever allocated.
func (c *Cache) Allocated() int {
	return c.allocated
}
