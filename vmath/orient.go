package vmath

import (
	"math"
)

// FaceToward returns Euler angles (pitch X, yaw Y, roll Z=0) orienting an
// object at pos so its forward axis (+Z) points at target.
// Yaw rotates about Y first, then pitch about the rotated X axis, the same
// decomposition a look-at matrix produces for a Y-up scene.
func FaceToward(pos, target Vec3) Vec3 {
	d := V3Sub(target, pos)
	horiz := math.Sqrt(d.X*d.X + d.Z*d.Z)
	if horiz == 0 && d.Y == 0 {
		return Vec3{}
	}
	return Vec3{
		X: math.Atan2(-d.Y, horiz),
		Y: math.Atan2(d.X, d.Z),
		Z: 0,
	}
}

// FaceOutward orients an object at pos away from the origin.
// Implemented as a look-at toward twice the position vector: the target sits
// on the far side of the object, so the forward axis ends up pointing out
func FaceOutward(pos Vec3) Vec3 {
	return FaceToward(pos, V3Scale(pos, 2))
}
