package mesh

import "github.com/go-gl/mathgl/mgl32"

// CombineInstance pairs a primitive mesh with its local-to-world transform.
type CombineInstance struct {
	Mesh      *Mesh
	Transform mgl32.Mat4
}

// CombineBuffer accumulates primitives during one generation pass and merges
// them into a single mesh at the end. It is append-only and not safe for
// concurrent writers.
type CombineBuffer struct {
	instances []CombineInstance
}

// NewCombineBuffer returns an empty buffer with room for capacity instances.
func NewCombineBuffer(capacity int) *CombineBuffer {
	return &CombineBuffer{instances: make([]CombineInstance, 0, max(capacity, 0))}
}

// Add records a primitive and its transform. Nil meshes are ignored.
func (b *CombineBuffer) Add(m *Mesh, transform mgl32.Mat4) {
	if m == nil {
		return
	}
	b.instances = append(b.instances, CombineInstance{Mesh: m, Transform: transform})
}

// Len returns the number of recorded primitives.
func (b *CombineBuffer) Len() int {
	return len(b.instances)
}

// Instances exposes the recorded primitives in insertion order.
func (b *CombineBuffer) Instances() []CombineInstance {
	return b.instances
}

// Combine bakes every recorded transform into its primitive and concatenates
// the results. Normals go through the inverse-transpose of the upper 3x3 so
// non-uniform scale keeps them perpendicular to their faces.
func (b *CombineBuffer) Combine() *Mesh {
	var nv, ni int
	for _, inst := range b.instances {
		nv += inst.Mesh.VertexCount()
		ni += inst.Mesh.TriangleCount() * 3
	}

	out := &Mesh{
		Vertices: make([]mgl32.Vec3, 0, nv),
		Normals:  make([]mgl32.Vec3, 0, nv),
		UVs:      make([]mgl32.Vec2, 0, nv),
		Colors:   make([]mgl32.Vec4, 0, nv),
		Indices:  make([]uint32, 0, ni),
	}

	for _, inst := range b.instances {
		m := inst.Mesh
		if m.VertexCount() == 0 {
			continue
		}
		base := uint32(len(out.Vertices))
		normalMat := inst.Transform.Mat3().Inv().Transpose()

		for i, v := range m.Vertices {
			out.Vertices = append(out.Vertices, mgl32.TransformCoordinate(v, inst.Transform))
			if i < len(m.Normals) {
				out.Normals = append(out.Normals, normalize(normalMat.Mul3x1(m.Normals[i])))
			} else {
				out.Normals = append(out.Normals, mgl32.Vec3{0, 1, 0})
			}
			if i < len(m.UVs) {
				out.UVs = append(out.UVs, m.UVs[i])
			} else {
				out.UVs = append(out.UVs, mgl32.Vec2{})
			}
			if i < len(m.Colors) {
				out.Colors = append(out.Colors, m.Colors[i])
			} else {
				out.Colors = append(out.Colors, mgl32.Vec4{1, 1, 1, 1})
			}
		}
		for _, idx := range m.Indices {
			out.Indices = append(out.Indices, base+idx)
		}
	}
	return out
}

func normalize(v mgl32.Vec3) mgl32.Vec3 {
	if v.Len() == 0 {
		return v
	}
	return v.Normalize()
}
