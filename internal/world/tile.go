// Package world implements deterministic procedural terrain: value noise,
// chunked tile generation, a bounded chunk cache, and world-space collision
// queries. Everything here is a pure function of coordinates and fixed
// constants; the same coordinates always produce the same world.
package world

import "github.com/vovakirdan/overland/internal/core"

// TileKind is the closed enumeration of terrain tile types.
type TileKind uint8

const (
	Grass TileKind = iota
	Wall
	Water
	Bedrock
	Road
	Forest
	DeepForest
	Cliff
	DeepWater
	Sand

	tileKindCount
)

// TileAttrs holds the immutable static attributes of a tile kind.
type TileAttrs struct {
	Name     string
	Passable bool
	// SpeedCost divides grounded movement speed; 1.0 is normal ground,
	// higher is slower terrain.
	SpeedCost float64
	Rune      rune
	Color     core.Color
}

// tileAttrs is indexed by TileKind. Impassable kinds keep SpeedCost 1 for
// completeness; it is never read for them.
var tileAttrs = [tileKindCount]TileAttrs{
	Grass:      {Name: "grass", Passable: true, SpeedCost: 1.0, Rune: '.', Color: core.ColorGreen},
	Wall:       {Name: "wall", Passable: false, SpeedCost: 1.0, Rune: '#', Color: core.ColorGray},
	Water:      {Name: "water", Passable: true, SpeedCost: 2.5, Rune: '~', Color: core.ColorBlue},
	Bedrock:    {Name: "bedrock", Passable: false, SpeedCost: 1.0, Rune: '█', Color: core.ColorDarkGray},
	Road:       {Name: "road", Passable: true, SpeedCost: 0.8, Rune: '=', Color: core.ColorSand},
	Forest:     {Name: "forest", Passable: true, SpeedCost: 1.3, Rune: '♣', Color: core.ColorDarkGreen},
	DeepForest: {Name: "deep forest", Passable: true, SpeedCost: 1.6, Rune: '♠', Color: core.ColorDarkGreen},
	Cliff:      {Name: "cliff", Passable: false, SpeedCost: 1.0, Rune: '▲', Color: core.ColorGray},
	DeepWater:  {Name: "deep water", Passable: false, SpeedCost: 1.0, Rune: '≈', Color: core.ColorBrightBlue},
	Sand:       {Name: "sand", Passable: true, SpeedCost: 1.25, Rune: ':', Color: core.ColorSand},
}

// Attrs returns the static attributes for the tile kind.
func (k TileKind) Attrs() TileAttrs {
	if k >= tileKindCount {
		return tileAttrs[Bedrock]
	}
	return tileAttrs[k]
}

// Passable reports whether entities and projectiles may occupy this tile.
func (k TileKind) Passable() bool {
	return k.Attrs().Passable
}

// SpeedCost returns the movement cost multiplier for this tile.
func (k TileKind) SpeedCost() float64 {
	return k.Attrs().SpeedCost
}

// String returns the tile kind's display name.
func (k TileKind) String() string {
	return k.Attrs().Name
}
