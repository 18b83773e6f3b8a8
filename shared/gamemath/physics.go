package gamemath

import "github.com/go-gl/mathgl/mgl64"

// WallAbsorption is the share of ground speed along a wall normal lost on impact.
const WallAbsorption = 0.2

// ApplyFriction reduces speed toward zero by friction amount.
func ApplyFriction(speed, friction float64) float64 {
	if speed > friction {
		return speed - friction
	}
	if speed < -friction {
		return speed + friction
	}
	return 0
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// ClampLength scales v down so its length does not exceed max.
func ClampLength(v mgl64.Vec2, max float64) mgl64.Vec2 {
	if max <= 0 {
		return mgl64.Vec2{}
	}
	l := v.Len()
	if l <= max {
		return v
	}
	return v.Mul(max / l)
}

// ApplyFriction2D adds a friction vector of the given magnitude opposing speed. A result that
// points along the friction vector has overshot zero and snaps to exactly zero.
func ApplyFriction2D(speed mgl64.Vec2, friction float64) mgl64.Vec2 {
	dir, ok := SafeNormalize2(speed)
	if !ok || friction <= 0 {
		return speed
	}
	frictionVec := dir.Mul(-friction)
	next := speed.Add(frictionVec)
	if next.Dot(frictionVec) > 0 {
		return mgl64.Vec2{}
	}
	return next
}

// AbsorbWallImpact shrinks ground speed by the fraction of it pushing into a wall whose normal,
// expressed in the ground plane, is normal. Only the magnitude changes.
func AbsorbWallImpact(speed, normal mgl64.Vec2) mgl64.Vec2 {
	n, ok := SafeNormalize2(normal)
	if !ok {
		return speed
	}
	l := speed.Len()
	if l < Epsilon {
		return speed
	}
	absorbed := WallAbsorption * abs(speed.Dot(n))
	fraction := mgl64.Clamp(absorbed/l, 0, 1)
	return speed.Mul(1 - fraction)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
