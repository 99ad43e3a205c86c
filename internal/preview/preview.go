// Package preview draws meshes into images without a GPU so generated reefs
// can be inspected from the command line.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"
	"sort"

	"reefworld/internal/mesh"
	"reefworld/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Options controls the orthographic camera and output image.
type Options struct {
	Width, Height int
	// Yaw and Pitch orient the camera, in degrees.
	Yaw, Pitch float32
	// Margin is the empty border kept around the fitted scene, in pixels.
	Margin     int
	Background color.RGBA
	// Caption, when set, is printed in the top left corner.
	Caption string
}

// DefaultOptions returns a 512x512 three-quarter view.
func DefaultOptions() Options {
	return Options{
		Width:      512,
		Height:     512,
		Yaw:        35,
		Pitch:      30,
		Margin:     16,
		Background: color.RGBA{R: 8, G: 24, B: 40, A: 255},
	}
}

var lightDir = mgl32.Vec3{0.4, 1, 0.3}.Normalize()

const ambient = 0.35

type part struct {
	mesh      *mesh.Mesh
	transform mgl32.Mat4
}

// Scene is a list of meshes placed in world space.
type Scene struct {
	parts []part
}

// Add places m in the scene with the given local-to-world transform.
// Nil and empty meshes are ignored.
func (s *Scene) Add(m *mesh.Mesh, transform mgl32.Mat4) {
	if m.VertexCount() == 0 || len(m.Indices) == 0 {
		return
	}
	s.parts = append(s.parts, part{mesh: m, transform: transform})
}

// Len returns the number of meshes in the scene.
func (s *Scene) Len() int { return len(s.parts) }

type triangle struct {
	p     [3]mgl32.Vec2
	depth float32
	color color.RGBA
}

// Render draws the scene with painter's ordering and flat lambert shading.
// The scene is scaled to fit the image.
func Render(s *Scene, opts Options) *image.RGBA {
	defer profiling.Track("preview.Render")()

	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)

	view := mgl32.HomogRotate3DX(mgl32.DegToRad(opts.Pitch)).Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(-opts.Yaw)))
	tris := s.project(view)
	if len(tris) > 0 {
		fit(tris, opts)
		sort.SliceStable(tris, func(i, j int) bool { return tris[i].depth < tris[j].depth })

		z := vector.NewRasterizer(0, 0)
		for i := range tris {
			fill(img, z, &tris[i])
		}
	}

	if opts.Caption != "" {
		d := font.Drawer{
			Dst:  img,
			Src:  image.White,
			Face: basicfont.Face7x13,
			Dot:  fixed.P(6, 6+basicfont.Face7x13.Ascent),
		}
		d.DrawString(opts.Caption)
	}
	return img
}

// project transforms every triangle into view space, shading it as it goes.
func (s *Scene) project(view mgl32.Mat4) []triangle {
	var out []triangle
	for _, pt := range s.parts {
		m := pt.mesh
		toView := view.Mul4(pt.transform)
		hasColor := len(m.Colors) == len(m.Vertices)
		for i := 0; i+2 < len(m.Indices); i += 3 {
			var world, vs [3]mgl32.Vec3
			var col mgl32.Vec4
			for k := 0; k < 3; k++ {
				idx := m.Indices[i+k]
				world[k] = mgl32.TransformCoordinate(m.Vertices[idx], pt.transform)
				vs[k] = mgl32.TransformCoordinate(m.Vertices[idx], toView)
				if hasColor {
					col = col.Add(m.Colors[idx])
				} else {
					col = col.Add(mgl32.Vec4{1, 1, 1, 1})
				}
			}
			col = col.Mul(1.0 / 3)

			n := world[1].Sub(world[0]).Cross(world[2].Sub(world[0]))
			light := float32(ambient)
			if l := n.Len(); l > 0 {
				light += (1 - ambient) * max(0, n.Mul(1/l).Dot(lightDir))
			}

			out = append(out, triangle{
				p: [3]mgl32.Vec2{
					{vs[0].X(), -vs[0].Y()},
					{vs[1].X(), -vs[1].Y()},
					{vs[2].X(), -vs[2].Y()},
				},
				depth: (vs[0].Z() + vs[1].Z() + vs[2].Z()) / 3,
				color: shade(col, light),
			})
		}
	}
	return out
}

// fit maps view-space xy into pixel space, keeping the aspect ratio.
func fit(tris []triangle, opts Options) {
	lo := mgl32.Vec2{float32(math.Inf(1)), float32(math.Inf(1))}
	hi := mgl32.Vec2{float32(math.Inf(-1)), float32(math.Inf(-1))}
	for _, t := range tris {
		for _, p := range t.p {
			lo = mgl32.Vec2{min(lo.X(), p.X()), min(lo.Y(), p.Y())}
			hi = mgl32.Vec2{max(hi.X(), p.X()), max(hi.Y(), p.Y())}
		}
	}

	availW := float32(opts.Width - 2*opts.Margin)
	availH := float32(opts.Height - 2*opts.Margin)
	extent := hi.Sub(lo)
	scale := float32(1)
	if extent.X() > 0 || extent.Y() > 0 {
		scale = min(availW/max(extent.X(), 1e-6), availH/max(extent.Y(), 1e-6))
	}
	center := lo.Add(hi).Mul(0.5)
	offset := mgl32.Vec2{float32(opts.Width) / 2, float32(opts.Height) / 2}

	for i := range tris {
		for k := range tris[i].p {
			tris[i].p[k] = tris[i].p[k].Sub(center).Mul(scale).Add(offset)
		}
	}
}

// fill rasterizes one triangle, clipping the rasterizer to its bounding box.
func fill(dst *image.RGBA, z *vector.Rasterizer, t *triangle) {
	minX := int(math.Floor(float64(min(t.p[0].X(), t.p[1].X(), t.p[2].X()))))
	minY := int(math.Floor(float64(min(t.p[0].Y(), t.p[1].Y(), t.p[2].Y()))))
	maxX := int(math.Ceil(float64(max(t.p[0].X(), t.p[1].X(), t.p[2].X()))))
	maxY := int(math.Ceil(float64(max(t.p[0].Y(), t.p[1].Y(), t.p[2].Y()))))

	r := image.Rect(minX, minY, maxX, maxY).Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	// the mask's origin is r.Min; the rasterizer clips anything outside it
	ox, oy := float32(r.Min.X), float32(r.Min.Y)
	z.Reset(r.Dx(), r.Dy())
	z.MoveTo(t.p[0].X()-ox, t.p[0].Y()-oy)
	z.LineTo(t.p[1].X()-ox, t.p[1].Y()-oy)
	z.LineTo(t.p[2].X()-ox, t.p[2].Y()-oy)
	z.ClosePath()
	z.Draw(dst, r, image.NewUniform(t.color), image.Point{})
}

func shade(c mgl32.Vec4, light float32) color.RGBA {
	ch := func(v float32) uint8 {
		return uint8(mgl32.Clamp(v*light, 0, 1)*255 + 0.5)
	}
	return color.RGBA{R: ch(c.X()), G: ch(c.Y()), B: ch(c.Z()), A: 255}
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// SavePNG writes img to path, replacing any existing file.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WritePNG(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
