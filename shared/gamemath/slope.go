package gamemath

import "github.com/go-gl/mathgl/mgl64"

// SlopeRotation derives the rotation that maps a movement direction onto the surface sampled
// by a front and a back contact point. It also returns the angle between the direction and
// the slope. ok is false when the contacts coincide or the direction is zero.
func SlopeRotation(direction, front, back mgl64.Vec3) (q mgl64.Quat, angle float64, ok bool) {
	slope, ok := SafeNormalize3(front.Sub(back))
	if !ok {
		return mgl64.QuatIdent(), 0, false
	}
	q, ok = RotationArc(direction, slope)
	if !ok {
		return mgl64.QuatIdent(), 0, false
	}
	return q, AngleBetween(direction, slope), true
}

// ProbeSpacing returns the offset of the front and back slope rays from the character.
func ProbeSpacing(nearObstacle bool, cushionRadius, obstacleRadius float64) float64 {
	if nearObstacle {
		return obstacleRadius
	}
	return cushionRadius
}
