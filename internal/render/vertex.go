package render

import (
	"reefworld/internal/mesh"
)

// VertexStride is the number of floats per interleaved vertex:
// position(3) normal(3) color(4).
const VertexStride = 10

// Attribute offsets within an interleaved vertex, in floats.
const (
	PositionOffset = 0
	NormalOffset   = 3
	ColorOffset    = 6
)

// Interleave packs a mesh into the vertex layout the viewer uploads. Missing normals
// default to +Y and missing colors to white.
func Interleave(m *mesh.Mesh) []float32 {
	n := m.VertexCount()
	out := make([]float32, 0, n*VertexStride)
	for i := 0; i < n; i++ {
		v := m.Vertices[i]
		out = append(out, v.X(), v.Y(), v.Z())
		if i < len(m.Normals) {
			nv := m.Normals[i]
			out = append(out, nv.X(), nv.Y(), nv.Z())
		} else {
			out = append(out, 0, 1, 0)
		}
		if i < len(m.Colors) {
			c := m.Colors[i]
			out = append(out, c.X(), c.Y(), c.Z(), c.W())
		} else {
			out = append(out, 1, 1, 1, 1)
		}
	}
	return out
}
