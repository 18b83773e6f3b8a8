package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Epsilon is the length below which a vector is treated as zero.
const Epsilon = 1e-9

var (
	// Down is the default ground cast direction.
	Down = mgl64.Vec3{0, -1, 0}
	// Up is the ceiling cast direction.
	Up = mgl64.Vec3{0, 1, 0}
	// Forward is the model-space facing used for OverallRotation.
	Forward = mgl64.Vec3{0, 0, 1}
)

// Lift maps a ground-plane vector (x, y) into 3D as (x, 0, y).
func Lift(v mgl64.Vec2) mgl64.Vec3 {
	return mgl64.Vec3{v[0], 0, v[1]}
}

// Flatten drops the vertical component of v.
func Flatten(v mgl64.Vec3) mgl64.Vec2 {
	return mgl64.Vec2{v[0], v[2]}
}

// SafeNormalize2 returns the unit vector of v, or false when v is zero or not finite.
func SafeNormalize2(v mgl64.Vec2) (mgl64.Vec2, bool) {
	l := v.Len()
	if l < Epsilon || math.IsNaN(l) || math.IsInf(l, 0) {
		return mgl64.Vec2{}, false
	}
	return v.Mul(1 / l), true
}

// SafeNormalize3 returns the unit vector of v, or false when v is zero or not finite.
func SafeNormalize3(v mgl64.Vec3) (mgl64.Vec3, bool) {
	l := v.Len()
	if l < Epsilon || math.IsNaN(l) || math.IsInf(l, 0) {
		return mgl64.Vec3{}, false
	}
	return v.Mul(1 / l), true
}

// RotationArc returns the shortest rotation taking from onto to. Opposite vectors rotate half
// a turn about a fixed perpendicular axis.
func RotationArc(from, to mgl64.Vec3) (mgl64.Quat, bool) {
	f, ok := SafeNormalize3(from)
	if !ok {
		return mgl64.QuatIdent(), false
	}
	t, ok := SafeNormalize3(to)
	if !ok {
		return mgl64.QuatIdent(), false
	}
	q := mgl64.QuatBetweenVectors(f, t)
	if !IsFiniteQuat(q) {
		return mgl64.QuatIdent(), false
	}
	return q.Normalize(), true
}

// AngleBetween returns the unsigned angle in radians between a and b, or 0 when either is zero.
func AngleBetween(a, b mgl64.Vec3) float64 {
	na, ok := SafeNormalize3(a)
	if !ok {
		return 0
	}
	nb, ok := SafeNormalize3(b)
	if !ok {
		return 0
	}
	return math.Acos(mgl64.Clamp(na.Dot(nb), -1, 1))
}

// AngleBetween2 is AngleBetween for ground-plane vectors.
func AngleBetween2(a, b mgl64.Vec2) float64 {
	return AngleBetween(Lift(a), Lift(b))
}

// IsFiniteQuat reports whether every component of q is a finite number.
func IsFiniteQuat(q mgl64.Quat) bool {
	return isFinite(q.W) && isFinite(q.V[0]) && isFinite(q.V[1]) && isFinite(q.V[2])
}

// IsFiniteVec3 reports whether every component of v is a finite number.
func IsFiniteVec3(v mgl64.Vec3) bool {
	return isFinite(v[0]) && isFinite(v[1]) && isFinite(v[2])
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
