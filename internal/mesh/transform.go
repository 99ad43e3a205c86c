package mesh

import "github.com/go-gl/mathgl/mgl32"

var (
	Up      = mgl32.Vec3{0, 1, 0}
	Right   = mgl32.Vec3{1, 0, 0}
	Forward = mgl32.Vec3{0, 0, 1}
)

// TRS composes translation, rotation and scale into one matrix (scale applied first).
func TRS(pos mgl32.Vec3, rot mgl32.Quat, scale mgl32.Vec3) mgl32.Mat4 {
	return mgl32.Translate3D(pos[0], pos[1], pos[2]).
		Mul4(rot.Normalize().Mat4()).
		Mul4(mgl32.Scale3D(scale[0], scale[1], scale[2]))
}

// Euler builds a rotation from angles in degrees. Z is applied first, then X,
// then Y, which is the usual convention for yaw/pitch/roll authored content.
func Euler(x, y, z float32) mgl32.Quat {
	qx := mgl32.QuatRotate(mgl32.DegToRad(x), Right)
	qy := mgl32.QuatRotate(mgl32.DegToRad(y), Up)
	qz := mgl32.QuatRotate(mgl32.DegToRad(z), Forward)
	return qy.Mul(qx).Mul(qz)
}

// FromToRotation returns the shortest-arc rotation taking from onto to.
// A zero-length target yields the identity.
func FromToRotation(from, to mgl32.Vec3) mgl32.Quat {
	if from.Len() == 0 || to.Len() == 0 {
		return mgl32.QuatIdent()
	}
	return mgl32.QuatBetweenVectors(from.Normalize(), to.Normalize())
}
