package world

import (
	"fmt"

	"reefworld/internal/config"
	"reefworld/internal/life"
	"reefworld/internal/mesh"

	"github.com/go-gl/mathgl/mgl32"
)

// VoxelSeparation is the world-space distance between neighbouring
// surface samples.
const VoxelSeparation = 1

// ChunkCoord addresses a chunk in grid units.
type ChunkCoord struct {
	X, Y, Z int
}

func (c ChunkCoord) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Z)
}

// Origin returns the world position of the chunk's minimum corner.
func (c ChunkCoord) Origin(resolution int) mgl32.Vec3 {
	step := float32(resolution * VoxelSeparation)
	return mgl32.Vec3{float32(c.X) * step, float32(c.Y) * step, float32(c.Z) * step}
}

// SurfaceExtractor turns a chunk's region of the terrain field into a mesh.
// Vertices are in chunk-local space; colors carry the biome of each vertex.
type SurfaceExtractor interface {
	Extract(coord ChunkCoord, origin mgl32.Vec3, resolution int, terrain config.TerrainConfig) *mesh.Mesh
}

// Chunk is one cell of the grid: a surface mesh plus whatever grew on it.
type Chunk struct {
	Coord ChunkCoord

	origin     mgl32.Vec3
	resolution int
	terrain    config.TerrainConfig
	extractor  SurfaceExtractor

	surface  *mesh.Mesh
	children []*life.Instance
}

// NewChunk creates an empty chunk. The surface is built by RebuildSurface.
func NewChunk(coord ChunkCoord, resolution int, terrain config.TerrainConfig, extractor SurfaceExtractor) *Chunk {
	return &Chunk{
		Coord:      coord,
		origin:     coord.Origin(resolution),
		resolution: resolution,
		terrain:    terrain,
		extractor:  extractor,
	}
}

// Origin returns the chunk's world position.
func (c *Chunk) Origin() mgl32.Vec3 { return c.origin }

// Surface returns the extracted surface mesh, nil before RebuildSurface.
func (c *Chunk) Surface() *mesh.Mesh { return c.surface }

// AddChild attaches a placed object to the chunk.
func (c *Chunk) AddChild(in *life.Instance) {
	c.children = append(c.children, in)
}

// Children returns the objects placed on this chunk.
func (c *Chunk) Children() []*life.Instance {
	return c.children
}

// RebuildSurface drops placed objects and re-extracts the surface mesh.
func (c *Chunk) RebuildSurface() {
	c.children = nil
	if c.extractor == nil {
		c.surface = nil
		return
	}
	c.surface = c.extractor.Extract(c.Coord, c.origin, c.resolution, c.terrain)
}

// Destroy releases the surface and every child.
func (c *Chunk) Destroy() {
	c.surface = nil
	c.children = nil
}
