package main

import (
	"log/slog"

	"reefworld/internal/mesh"
	"reefworld/internal/profiling"
	"reefworld/internal/reef"
	"reefworld/internal/render"
	"reefworld/internal/render/opengl"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

var clearColor = mgl32.Vec3{0.03, 0.09, 0.16}

// orbit speed in degrees per second for keyboard control
const keyOrbitSpeed = 60

type viewer struct {
	window   *glfw.Window
	session  *reef.Session
	renderer *opengl.Renderer
	camera   *render.OrbitCamera
	limiter  *render.FPSLimiter
	log      *slog.Logger

	// uploads keyed by mesh so shared prototypes are uploaded once
	uploads map[*mesh.Mesh]*opengl.GPUMesh
	coral   *opengl.GPUMesh

	showCoral bool
	dragging  bool
	lastX     float64
	lastY     float64
}

func newViewer(window *glfw.Window, session *reef.Session, fps int, log *slog.Logger) (*viewer, error) {
	r, err := opengl.NewRenderer()
	if err != nil {
		return nil, err
	}

	w, h := window.GetFramebufferSize()
	cfg := session.Config.World
	span := float32((2*cfg.RenderDistance + 1) * cfg.ResolutionPerChunk)

	v := &viewer{
		window:   window,
		session:  session,
		renderer: r,
		camera:   render.NewOrbitCamera(w, h, span*1.2),
		limiter:  render.NewFPSLimiter(fps),
		log:      log,
		uploads:  make(map[*mesh.Mesh]*opengl.GPUMesh),
	}
	v.camera.Target = mgl32.Vec3{float32(cfg.ResolutionPerChunk) / 2, 0, float32(cfg.ResolutionPerChunk) / 2}
	v.uploadCoral()
	v.setupInput()
	gl.Viewport(0, 0, int32(w), int32(h))
	return v, nil
}

func (v *viewer) setupInput() {
	v.window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		switch key {
		case glfw.KeyEscape:
			w.SetShouldClose(true)
		case glfw.KeyR:
			v.rebuildWorld()
		case glfw.KeyG:
			v.session.RegrowCoral()
			v.uploadCoral()
		case glfw.KeyEqual, glfw.KeyKPAdd:
			v.session.StepDepth(1)
			v.uploadCoral()
		case glfw.KeyMinus, glfw.KeyKPSubtract:
			v.session.StepDepth(-1)
			v.uploadCoral()
		case glfw.KeyRightBracket:
			v.session.StepScalar(0.05)
			v.uploadCoral()
		case glfw.KeyLeftBracket:
			v.session.StepScalar(-0.05)
			v.uploadCoral()
		case glfw.KeyC:
			v.showCoral = !v.showCoral
		case glfw.KeyP:
			v.log.Info("profile", "top", profiling.TopN(8))
		}
	})

	v.window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		if button == glfw.MouseButtonLeft {
			v.dragging = action == glfw.Press
			v.lastX, v.lastY = w.GetCursorPos()
		}
	})

	v.window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		if !v.dragging {
			return
		}
		v.camera.Orbit(float32(v.lastX-xpos)*0.3, float32(ypos-v.lastY)*0.3)
		v.lastX, v.lastY = xpos, ypos
	})

	v.window.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		if yoff > 0 {
			v.camera.Zoom(0.9)
		} else if yoff < 0 {
			v.camera.Zoom(1.1)
		}
	})

	v.window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		gl.Viewport(0, 0, int32(width), int32(height))
		v.camera.Resize(width, height)
	})
}

func (v *viewer) loop() {
	frameLoop(v.window, v.update, v.draw)
}

func (v *viewer) update(dt float64) {
	v.session.Tick()

	step := float32(dt) * keyOrbitSpeed
	if v.window.GetKey(glfw.KeyLeft) == glfw.Press {
		v.camera.Orbit(-step, 0)
	}
	if v.window.GetKey(glfw.KeyRight) == glfw.Press {
		v.camera.Orbit(step, 0)
	}
	if v.window.GetKey(glfw.KeyUp) == glfw.Press {
		v.camera.Orbit(0, step)
	}
	if v.window.GetKey(glfw.KeyDown) == glfw.Press {
		v.camera.Orbit(0, -step)
	}
	v.limiter.Wait()
}

func (v *viewer) draw() {
	defer profiling.Track("render.Frame")()

	v.renderer.Begin(v.camera.ViewMatrix(), v.camera.ProjectionMatrix(), clearColor)

	if v.showCoral {
		v.renderer.Draw(v.coral, mgl32.Ident4())
		return
	}

	for _, ch := range v.session.Grid.Chunks() {
		o := ch.Origin()
		v.renderer.Draw(v.upload(ch.Surface()), mgl32.Translate3D(o.X(), o.Y(), o.Z()))
		for _, in := range ch.Children() {
			v.renderer.Draw(v.upload(in.Mesh), in.Transform())
		}
	}
}

// upload returns the GPU copy of m, creating it on first use.
func (v *viewer) upload(m *mesh.Mesh) *opengl.GPUMesh {
	if m == nil {
		return nil
	}
	if g, ok := v.uploads[m]; ok {
		return g
	}
	g := opengl.Upload(m)
	v.uploads[m] = g
	return g
}

func (v *viewer) rebuildWorld() {
	v.releaseUploads()
	if err := v.session.RebuildWorld(); err != nil {
		v.log.Error("rebuild world", "err", err)
	}
}

func (v *viewer) uploadCoral() {
	if v.coral != nil {
		v.coral.Delete()
	}
	v.coral = opengl.Upload(v.session.Showcase.Mesh())
}

func (v *viewer) releaseUploads() {
	for m, g := range v.uploads {
		if g != nil {
			g.Delete()
		}
		delete(v.uploads, m)
	}
}

func (v *viewer) dispose() {
	v.releaseUploads()
	if v.coral != nil {
		v.coral.Delete()
	}
	v.renderer.Dispose()
}
