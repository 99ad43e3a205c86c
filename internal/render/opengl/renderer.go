package opengl

import (
	"path/filepath"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const ShadersDir = "assets/shaders/reef"

var (
	ReefVertShader = filepath.Join(ShadersDir, "reef.vert")
	ReefFragShader = filepath.Join(ShadersDir, "reef.frag")
)

// Renderer draws GPU meshes with a single lit, vertex-colored program.
type Renderer struct {
	shader *Shader
	light  mgl32.Vec3
}

// NewRenderer compiles the reef shader and sets the fixed GL state.
func NewRenderer() (*Renderer, error) {
	shader, err := NewShader(ReefVertShader, ReefFragShader)
	if err != nil {
		return nil, err
	}
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)
	return &Renderer{shader: shader, light: mgl32.Vec3{0.4, 1, 0.3}.Normalize()}, nil
}

// Begin clears the frame and uploads the per-frame uniforms.
func (r *Renderer) Begin(view, proj mgl32.Mat4, clear mgl32.Vec3) {
	gl.ClearColor(clear.X(), clear.Y(), clear.Z(), 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	r.shader.Use()
	r.shader.SetMat4("view", view)
	r.shader.SetMat4("proj", proj)
	r.shader.SetVec3("lightDir", r.light)
}

// Draw renders g with the given model matrix. Nil meshes are skipped.
func (r *Renderer) Draw(g *GPUMesh, model mgl32.Mat4) {
	if g == nil {
		return
	}
	r.shader.SetMat4("model", model)
	g.Draw()
}

// Dispose cleans up OpenGL resources
func (r *Renderer) Dispose() {
	r.shader.Delete()
}
