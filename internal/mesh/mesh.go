package mesh

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Mesh is an indexed triangle mesh with parallel per-vertex attribute slices.
// Vertices, Normals, UVs and Colors are addressed by the same index; UVs and
// Colors may be empty when the producer does not provide them.
type Mesh struct {
	Vertices []mgl32.Vec3
	Normals  []mgl32.Vec3
	UVs      []mgl32.Vec2
	Colors   []mgl32.Vec4
	Indices  []uint32
}

// VertexCount returns the number of vertices. A nil mesh has none.
func (m *Mesh) VertexCount() int {
	if m == nil {
		return 0
	}
	return len(m.Vertices)
}

// TriangleCount returns the number of indexed triangles.
func (m *Mesh) TriangleCount() int {
	if m == nil {
		return 0
	}
	return len(m.Indices) / 3
}

// HasAttributes reports whether normals and colors cover every vertex.
func (m *Mesh) HasAttributes() bool {
	if m == nil {
		return false
	}
	n := len(m.Vertices)
	return len(m.Normals) == n && len(m.Colors) == n
}

// Bounds returns the axis aligned bounding box of the vertices.
// ok is false for an empty mesh.
func (m *Mesh) Bounds() (lo, hi mgl32.Vec3, ok bool) {
	if m.VertexCount() == 0 {
		return lo, hi, false
	}
	inf := float32(math.Inf(1))
	lo = mgl32.Vec3{inf, inf, inf}
	hi = mgl32.Vec3{-inf, -inf, -inf}
	for _, v := range m.Vertices {
		for i := 0; i < 3; i++ {
			lo[i] = min(lo[i], v[i])
			hi[i] = max(hi[i], v[i])
		}
	}
	return lo, hi, true
}

// Clone returns a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	if m == nil {
		return nil
	}
	return &Mesh{
		Vertices: append([]mgl32.Vec3(nil), m.Vertices...),
		Normals:  append([]mgl32.Vec3(nil), m.Normals...),
		UVs:      append([]mgl32.Vec2(nil), m.UVs...),
		Colors:   append([]mgl32.Vec4(nil), m.Colors...),
		Indices:  append([]uint32(nil), m.Indices...),
	}
}

// Tint overwrites every vertex color with c.
func (m *Mesh) Tint(c mgl32.Vec4) {
	m.Colors = m.Colors[:0]
	for range m.Vertices {
		m.Colors = append(m.Colors, c)
	}
}
