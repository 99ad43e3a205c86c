package opengl

import (
	"reefworld/internal/mesh"
	"reefworld/internal/render"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// GPUMesh is a mesh uploaded into a VAO with interleaved attributes.
type GPUMesh struct {
	vao, vbo, ebo uint32
	indexCount    int32
}

// Upload copies m to the GPU. It returns nil for an empty mesh.
func Upload(m *mesh.Mesh) *GPUMesh {
	if m.VertexCount() == 0 || len(m.Indices) == 0 {
		return nil
	}
	data := render.Interleave(m)
	g := &GPUMesh{indexCount: int32(len(m.Indices))}

	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)

	gl.GenBuffers(1, &g.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)

	gl.GenBuffers(1, &g.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, gl.Ptr(m.Indices), gl.STATIC_DRAW)

	stride := int32(render.VertexStride * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, render.PositionOffset*4)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, render.NormalOffset*4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 4, gl.FLOAT, false, stride, render.ColorOffset*4)

	gl.BindVertexArray(0)
	return g
}

// Draw issues the indexed draw call. The caller binds the shader.
func (g *GPUMesh) Draw() {
	gl.BindVertexArray(g.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, g.indexCount, gl.UNSIGNED_INT, 0)
}

// Delete releases the GPU buffers.
func (g *GPUMesh) Delete() {
	if g.vao != 0 {
		gl.DeleteVertexArrays(1, &g.vao)
	}
	if g.vbo != 0 {
		gl.DeleteBuffers(1, &g.vbo)
	}
	if g.ebo != 0 {
		gl.DeleteBuffers(1, &g.ebo)
	}
	*g = GPUMesh{}
}
