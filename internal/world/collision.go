package world

import (
	"math"

	"github.com/vovakirdan/overland/internal/core"
)

// Collider answers world-space passability questions against the tile grid.
// It is the single collision surface shared by player movement, projectile
// flight, and the renderer's tile lookups.
type Collider struct {
	store *Store
}

// NewCollider creates a collision query surface over the given chunk store.
func NewCollider(store *Store) *Collider {
	return &Collider{store: store}
}

// Store exposes the underlying chunk store for read-only consumers.
func (c *Collider) Store() *Store {
	return c.store
}

// TileIndexOf maps a world position to its global tile index.
func (c *Collider) TileIndexOf(wx, wy float64) (tx, ty int) {
	ts := c.store.Params().TileSize
	return int(math.Floor(wx / ts)), int(math.Floor(wy / ts))
}

// ChunkCoordOf maps a world position to its chunk coordinates.
func (c *Collider) ChunkCoordOf(wx, wy float64) ChunkCoord {
	tx, ty := c.TileIndexOf(wx, wy)
	size := c.store.Params().ChunkSize
	return ChunkCoord{
		CX: core.FloorDiv(tx, size),
		CY: core.FloorDiv(ty, size),
	}
}

// TileAtIndex returns the tile kind at a global tile index.
// Floor division and floor modulo keep the mapping correct for negative
// indices: tile (-1, -1) lives in chunk (-1, -1) at local (size-1, size-1).
func (c *Collider) TileAtIndex(tx, ty int) TileKind {
	size := c.store.Params().ChunkSize
	cx := core.FloorDiv(tx, size)
	cy := core.FloorDiv(ty, size)
	lx := core.FloorMod(tx, size)
	ly := core.FloorMod(ty, size)
	return c.store.Chunk(cx, cy).Tile(lx, ly)
}

// TileAt returns the tile kind at a world position.
func (c *Collider) TileAt(wx, wy float64) TileKind {
	tx, ty := c.TileIndexOf(wx, wy)
	return c.TileAtIndex(tx, ty)
}

// IsPassable reports whether the tile under a world position can be entered.
func (c *Collider) IsPassable(wx, wy float64) bool {
	return c.TileAt(wx, wy).Passable()
}

// SpeedCostAt returns the movement cost of the tile under a world position.
func (c *Collider) SpeedCostAt(wx, wy float64) float64 {
	return c.TileAt(wx, wy).SpeedCost()
}

// OverlapsImpassable reports whether any tile covered by the rectangle is
// impassable. The rectangle's bounds convert to an inclusive tile-index
// range; each covered tile is sampled at its center so a box that merely
// touches a tile edge does not false-positive against the neighbor.
// This is an AABB-versus-grid test, not pixel-exact collision.
func (c *Collider) OverlapsImpassable(r core.Rect) bool {
	ts := c.store.Params().TileSize
	tx0 := int(math.Floor(r.X / ts))
	tx1 := int(math.Floor(r.Right() / ts))
	ty0 := int(math.Floor(r.Y / ts))
	ty1 := int(math.Floor(r.Bottom() / ts))

	for ty := ty0; ty <= ty1; ty++ {
		for tx := tx0; tx <= tx1; tx++ {
			if !c.TileAtIndex(tx, ty).Passable() {
				return true
			}
		}
	}
	return false
}
