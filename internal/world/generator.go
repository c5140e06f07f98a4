package world

import "math"

// Params holds the fixed world constants. Generation is a pure function of
// chunk coordinates and these values; two generators with equal Params
// produce identical worlds.
type Params struct {
	// TileSize is the width of one tile in world units.
	TileSize float64
	// ChunkSize is the side of a chunk in tiles.
	ChunkSize int
	// WorldRadiusChunks bounds the playable area; beyond it the boundary
	// ring turns everything into cliff and bedrock.
	WorldRadiusChunks int
	// CacheChunks is the chunk cache capacity (see Store).
	CacheChunks int
}

// DefaultParams returns the standard world constants.
func DefaultParams() Params {
	return Params{
		TileSize:          64,
		ChunkSize:         16,
		WorldRadiusChunks: 6,
		CacheChunks:       256,
	}
}

// spawnSafeRadius is the distance (in tiles) from the origin inside which
// terrain is forced to grass so the player never spawns stuck.
const spawnSafeRadius = 10

// Biome thresholds. Ordering encodes the intended terrain mix and must not
// be reshuffled.
const (
	biomeWaterMax      = 0.25
	biomeSandMax       = 0.3
	biomeGrassMax      = 0.6
	biomeForestMax     = 0.75
	biomeDeepForestMax = 0.85
)

// Road grid tuning: warped orthogonal tracks every roadSpacing tiles.
const (
	roadSpacing   = 50.0
	roadHalfWidth = 2.0
	roadWarpFreq  = 0.03
	roadWarpAmp   = 20.0
)

// Boundary ring tuning: the containment radius is perturbed by noise so the
// world edge reads as organic rock rather than a perfect circle.
const (
	boundaryInset     = 8.0
	boundaryNoiseFreq = 0.05
	boundaryNoiseAmp  = 15.0
	boundaryCliffBand = 10.0
)

// Chunk is an immutable square grid of tiles. Once a chunk is handed to the
// Store it is never mutated; readers share it freely.
type Chunk struct {
	CX, CY int
	size   int
	tiles  []TileKind
}

// Size returns the chunk side length in tiles.
func (c *Chunk) Size() int {
	return c.size
}

// Tile returns the tile at local coordinates (x, y).
func (c *Chunk) Tile(x, y int) TileKind {
	return c.tiles[y*c.size+x]
}

// Generator turns chunk coordinates into tile grids.
type Generator struct {
	params Params
}

// NewGenerator creates a generator for the given world constants.
func NewGenerator(p Params) *Generator {
	return &Generator{params: p}
}

// Params returns the generator's world constants.
func (g *Generator) Params() Params {
	return g.params
}

// GenerateChunk produces the chunk at (cx, cy). The only allocation is the
// chunk grid itself.
func (g *Generator) GenerateChunk(cx, cy int) *Chunk {
	size := g.params.ChunkSize
	c := &Chunk{
		CX:    cx,
		CY:    cy,
		size:  size,
		tiles: make([]TileKind, size*size),
	}

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			wx := float64(cx*size + x)
			wy := float64(cy*size + y)
			c.tiles[y*size+x] = g.classify(wx, wy)
		}
	}
	return c
}

// classify decides the tile kind at world tile coordinates (wx, wy).
// Order matters: boundary ring first, then the spawn area, then roads,
// then biomes.
func (g *Generator) classify(wx, wy float64) TileKind {
	dist := math.Sqrt(wx*wx + wy*wy)

	limit := float64(g.params.WorldRadiusChunks*g.params.ChunkSize) - boundaryInset +
		Noise(wx*boundaryNoiseFreq, wy*boundaryNoiseFreq)*boundaryNoiseAmp
	if dist > limit+boundaryCliffBand {
		return Bedrock
	}
	if dist > limit {
		return Cliff
	}

	// The safe spawn area outranks everything inside the boundary; a road
	// track warped across the origin must not cut through it.
	if dist < spawnSafeRadius {
		return Grass
	}

	warp := Noise(wx*roadWarpFreq, wy*roadWarpFreq) * roadWarpAmp
	if math.Abs(math.Mod(wy+warp, roadSpacing)) < roadHalfWidth ||
		math.Abs(math.Mod(wx+warp, roadSpacing)) < roadHalfWidth {
		return Road
	}

	// Two octaves: large features plus offset detail.
	n1 := Noise(wx*0.05, wy*0.05)
	n2 := Noise(wx*0.15+100, wy*0.15+100)
	v := 0.8*n1 + 0.2*n2

	switch {
	case v < biomeWaterMax:
		return Water
	case v < biomeSandMax:
		return Sand
	case v < biomeGrassMax:
		return Grass
	case v < biomeForestMax:
		return Forest
	case v < biomeDeepForestMax:
		return DeepForest
	default:
		return Wall
	}
}
