package render

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestOrbitCameraPosition(t *testing.T) {
	c := NewOrbitCamera(800, 600, 10)
	c.Yaw, c.Pitch = 0, 0
	if p := c.Position(); !p.ApproxEqualThreshold(mgl32.Vec3{0, 0, 10}, 1e-5) {
		t.Fatalf("position = %v, want (0,0,10)", p)
	}

	c.Target = mgl32.Vec3{1, 2, 3}
	c.Pitch = 90
	if p := c.Position(); !p.ApproxEqualThreshold(mgl32.Vec3{1, 12, 3}, 1e-4) {
		t.Fatalf("position = %v, want (1,12,3)", p)
	}
}

func TestOrbitCameraLooksAtTarget(t *testing.T) {
	c := NewOrbitCamera(800, 600, 25)
	c.Target = mgl32.Vec3{5, 0, -5}
	view := c.ViewMatrix()
	// the target sits on the view axis in front of the eye
	v := mgl32.TransformCoordinate(c.Target, view)
	if !mgl32.FloatEqualThreshold(v.X(), 0, 1e-4) || !mgl32.FloatEqualThreshold(v.Y(), 0, 1e-4) {
		t.Fatalf("target in view space = %v, want on axis", v)
	}
	if !mgl32.FloatEqualThreshold(v.Z(), -25, 1e-3) {
		t.Fatalf("target depth = %v, want -25", v.Z())
	}
}

func TestOrbitClampsPitchAndDistance(t *testing.T) {
	c := NewOrbitCamera(800, 600, 10)
	c.Orbit(400, 200)
	if c.Pitch != maxPitch {
		t.Fatalf("pitch = %v, want %v", c.Pitch, maxPitch)
	}
	if c.Yaw < 0 || c.Yaw >= 360 {
		t.Fatalf("yaw = %v not wrapped", c.Yaw)
	}
	c.Zoom(0.001)
	if c.Distance != minDistance {
		t.Fatalf("distance = %v, want %v", c.Distance, minDistance)
	}
	c.Zoom(1e6)
	if c.Distance != maxDistance {
		t.Fatalf("distance = %v, want %v", c.Distance, maxDistance)
	}
}

func TestResizeIgnoresZeroHeight(t *testing.T) {
	c := NewOrbitCamera(800, 600, 10)
	c.Resize(100, 0)
	if c.AspectRatio != float32(800)/600 {
		t.Fatalf("aspect = %v", c.AspectRatio)
	}
	c.Resize(100, 50)
	if c.AspectRatio != 2 {
		t.Fatalf("aspect = %v, want 2", c.AspectRatio)
	}
}
