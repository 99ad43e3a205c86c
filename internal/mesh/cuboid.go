package mesh

import "github.com/go-gl/mathgl/mgl32"

// CuboidVertexCount is the number of vertices emitted by Cuboid (4 per face).
const CuboidVertexCount = 24

// cuboidFace lists four corners in counter-clockwise order seen from outside.
type cuboidFace struct {
	normal  mgl32.Vec3
	corners [4]mgl32.Vec3
}

// The cuboid spans x,z in [-0.5,0.5] and y in [0,1] so that stacking
// happens from the base, which is what branch growth expects.
var cuboidFaces = [6]cuboidFace{
	// -Z (front)
	{mgl32.Vec3{0, 0, -1}, [4]mgl32.Vec3{{-0.5, 0, -0.5}, {-0.5, 1, -0.5}, {0.5, 1, -0.5}, {0.5, 0, -0.5}}},
	// +Z (back)
	{mgl32.Vec3{0, 0, 1}, [4]mgl32.Vec3{{-0.5, 0, 0.5}, {0.5, 0, 0.5}, {0.5, 1, 0.5}, {-0.5, 1, 0.5}}},
	// -X (left)
	{mgl32.Vec3{-1, 0, 0}, [4]mgl32.Vec3{{-0.5, 0, -0.5}, {-0.5, 0, 0.5}, {-0.5, 1, 0.5}, {-0.5, 1, -0.5}}},
	// +X (right)
	{mgl32.Vec3{1, 0, 0}, [4]mgl32.Vec3{{0.5, 0, -0.5}, {0.5, 1, -0.5}, {0.5, 1, 0.5}, {0.5, 0, 0.5}}},
	// +Y (top)
	{mgl32.Vec3{0, 1, 0}, [4]mgl32.Vec3{{-0.5, 1, -0.5}, {-0.5, 1, 0.5}, {0.5, 1, 0.5}, {0.5, 1, -0.5}}},
	// -Y (bottom)
	{mgl32.Vec3{0, -1, 0}, [4]mgl32.Vec3{{-0.5, 0, -0.5}, {0.5, 0, -0.5}, {0.5, 0, 0.5}, {-0.5, 0, 0.5}}},
}

var quadUVs = [4]mgl32.Vec2{{0, 0}, {0, 1}, {1, 1}, {1, 0}}

// Cuboid builds a unit cuboid with six quad faces, per-face outward normals,
// per-face UVs covering [0,1]² and every vertex painted with color.
func Cuboid(color mgl32.Vec4) *Mesh {
	m := &Mesh{
		Vertices: make([]mgl32.Vec3, 0, CuboidVertexCount),
		Normals:  make([]mgl32.Vec3, 0, CuboidVertexCount),
		UVs:      make([]mgl32.Vec2, 0, CuboidVertexCount),
		Colors:   make([]mgl32.Vec4, 0, CuboidVertexCount),
		Indices:  make([]uint32, 0, 36),
	}
	for _, f := range cuboidFaces {
		base := uint32(len(m.Vertices))
		for i, c := range f.corners {
			m.Vertices = append(m.Vertices, c)
			m.Normals = append(m.Normals, f.normal)
			m.UVs = append(m.UVs, quadUVs[i])
			m.Colors = append(m.Colors, color)
		}
		m.Indices = append(m.Indices, base, base+1, base+2, base+2, base+3, base)
	}
	return m
}
