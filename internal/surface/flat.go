// Package surface provides a stand-in for the terrain extractor: every
// chunk on the y=0 layer gets a flat sheet striped into biome bands.
package surface

import (
	"math"

	"reefworld/internal/biome"
	"reefworld/internal/config"
	"reefworld/internal/mesh"
	"reefworld/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// bandStrideZ offsets band indices between rows so neighbouring rows of
// bands do not repeat the same owner.
const bandStrideZ = 5

// Flat extracts a single horizontal grid per chunk. It implements
// world.SurfaceExtractor.
type Flat struct{}

// NewFlat returns a flat extractor.
func NewFlat() *Flat { return &Flat{} }

// Extract returns (resolution+1)^2 up-facing vertices at local height 0 for
// chunks with coord.Y == 0, and an empty mesh for every other layer. Bands
// are terrain.Zoom world units wide.
func (f *Flat) Extract(coord world.ChunkCoord, origin mgl32.Vec3, resolution int, terrain config.TerrainConfig) *mesh.Mesh {
	m := &mesh.Mesh{}
	if coord.Y != 0 || resolution <= 0 {
		return m
	}

	side := resolution + 1
	m.Vertices = make([]mgl32.Vec3, 0, side*side)
	m.Normals = make([]mgl32.Vec3, 0, side*side)
	m.UVs = make([]mgl32.Vec2, 0, side*side)
	m.Colors = make([]mgl32.Vec4, 0, side*side)

	for iz := 0; iz < side; iz++ {
		for ix := 0; ix < side; ix++ {
			local := mgl32.Vec3{float32(ix * world.VoxelSeparation), 0, float32(iz * world.VoxelSeparation)}
			m.Vertices = append(m.Vertices, local)
			m.Normals = append(m.Normals, mesh.Up)
			m.UVs = append(m.UVs, mgl32.Vec2{float32(ix) / float32(resolution), float32(iz) / float32(resolution)})
			m.Colors = append(m.Colors, BandAt(origin.Add(local), terrain.Zoom).VertexColor())
		}
	}

	m.Indices = make([]uint32, 0, resolution*resolution*6)
	for iz := 0; iz < resolution; iz++ {
		for ix := 0; ix < resolution; ix++ {
			v00 := uint32(iz*side + ix)
			v10 := v00 + 1
			v01 := v00 + uint32(side)
			v11 := v01 + 1
			m.Indices = append(m.Indices, v00, v01, v10, v10, v01, v11)
		}
	}
	return m
}

// BandAt returns the biome owning the band that contains the world
// position p.
func BandAt(p mgl32.Vec3, width float32) biome.Biome {
	if width <= 0 {
		width = 1
	}
	bx := int(math.Floor(float64(p.X() / width)))
	bz := int(math.Floor(float64(p.Z() / width)))
	return biome.FromInt(bx + bandStrideZ*bz)
}
