package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	minPitch    = -85
	maxPitch    = 85
	minDistance = 2
	maxDistance = 500
)

// OrbitCamera circles a target point. Angles are in degrees.
type OrbitCamera struct {
	Target      mgl32.Vec3
	Distance    float32
	Yaw, Pitch  float32
	AspectRatio float32
	FOV         float32
	NearPlane   float32
	FarPlane    float32
}

func NewOrbitCamera(width, height int, distance float32) *OrbitCamera {
	return &OrbitCamera{
		Distance:    distance,
		Yaw:         45,
		Pitch:       30,
		AspectRatio: float32(width) / float32(height),
		FOV:         60.0,
		NearPlane:   0.1,
		FarPlane:    1000.0,
	}
}

// Position returns the eye position.
func (c *OrbitCamera) Position() mgl32.Vec3 {
	yaw := float64(mgl32.DegToRad(c.Yaw))
	pitch := float64(mgl32.DegToRad(c.Pitch))
	dir := mgl32.Vec3{
		float32(math.Cos(pitch) * math.Sin(yaw)),
		float32(math.Sin(pitch)),
		float32(math.Cos(pitch) * math.Cos(yaw)),
	}
	return c.Target.Add(dir.Mul(c.Distance))
}

func (c *OrbitCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position(), c.Target, mgl32.Vec3{0, 1, 0})
}

func (c *OrbitCamera) ProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.AspectRatio, c.NearPlane, c.FarPlane)
}

// Orbit rotates around the target, clamping pitch short of the poles.
func (c *OrbitCamera) Orbit(dYaw, dPitch float32) {
	c.Yaw = float32(math.Mod(float64(c.Yaw+dYaw), 360))
	c.Pitch = mgl32.Clamp(c.Pitch+dPitch, minPitch, maxPitch)
}

// Zoom scales the distance by factor.
func (c *OrbitCamera) Zoom(factor float32) {
	c.Distance = mgl32.Clamp(c.Distance*factor, minDistance, maxDistance)
}

// Resize updates the aspect ratio after a framebuffer change.
func (c *OrbitCamera) Resize(width, height int) {
	if height > 0 {
		c.AspectRatio = float32(width) / float32(height)
	}
}
