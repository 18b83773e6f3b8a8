package gamemath

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const tol = 1e-9

func approxEqual(t *testing.T, got, want, tolerance float64, field string) {
	t.Helper()
	if math.Abs(got-want) > tolerance {
		t.Errorf("%s = %v, want %v (±%v)", field, got, want, tolerance)
	}
}

func approxVec3(t *testing.T, got, want mgl64.Vec3, tolerance float64, field string) {
	t.Helper()
	if got.Sub(want).Len() > tolerance {
		t.Errorf("%s = %v, want %v (±%v)", field, got, want, tolerance)
	}
}

func TestApplyFriction2D(t *testing.T) {
	got := ApplyFriction2D(mgl64.Vec2{5, 0}, 0.3)
	approxEqual(t, got[0], 4.7, tol, "x")
	approxEqual(t, got[1], 0, tol, "y")
}

func TestApplyFriction2D_SnapsAtOvershoot(t *testing.T) {
	got := ApplyFriction2D(mgl64.Vec2{0.1, 0.1}, 0.3)
	if got != (mgl64.Vec2{}) {
		t.Errorf("overshoot should snap to zero, got %v", got)
	}
}

func TestApplyFriction2D_ReachesZero(t *testing.T) {
	speed := mgl64.Vec2{3, -4}
	prev := speed.Len()
	ticks := 0
	for speed != (mgl64.Vec2{}) {
		speed = ApplyFriction2D(speed, 0.3)
		if speed[0] < 0 || speed[1] > 0 {
			t.Fatalf("component changed sign at tick %d: %v", ticks, speed)
		}
		if l := speed.Len(); l > prev {
			t.Fatalf("speed grew at tick %d: %v > %v", ticks, l, prev)
		}
		prev = speed.Len()
		ticks++
		if ticks > 100 {
			t.Fatal("friction never reached zero")
		}
	}
	// 5 / 0.3 rounds up to 17 ticks.
	if ticks != 17 {
		t.Errorf("ticks = %d, want 17", ticks)
	}
}

func TestApplyFriction2D_ZeroInputs(t *testing.T) {
	if got := ApplyFriction2D(mgl64.Vec2{}, 0.3); got != (mgl64.Vec2{}) {
		t.Errorf("zero speed: got %v", got)
	}
	if got := ApplyFriction2D(mgl64.Vec2{1, 0}, 0); got != (mgl64.Vec2{1, 0}) {
		t.Errorf("zero friction: got %v", got)
	}
}

func TestClampLength(t *testing.T) {
	got := ClampLength(mgl64.Vec2{30, 40}, 15)
	approxEqual(t, got.Len(), 15, tol, "len")
	approxEqual(t, got[0], 9, tol, "x")

	short := mgl64.Vec2{1, 1}
	if got := ClampLength(short, 15); got != short {
		t.Errorf("short vector changed: %v", got)
	}
}

func TestClampSpeed(t *testing.T) {
	tests := []struct {
		in, max, want float64
	}{
		{20, 15, 15},
		{-20, 15, -15},
		{3, 15, 3},
	}
	for _, tt := range tests {
		if got := ClampSpeed(tt.in, tt.max); got != tt.want {
			t.Errorf("ClampSpeed(%v, %v) = %v, want %v", tt.in, tt.max, got, tt.want)
		}
	}
}

func TestAbsorbWallImpact(t *testing.T) {
	// Head-on: 20% of the speed is absorbed.
	got := AbsorbWallImpact(mgl64.Vec2{10, 0}, mgl64.Vec2{-1, 0})
	approxEqual(t, got[0], 8, tol, "head-on x")

	// Parallel to the wall: nothing absorbed.
	got = AbsorbWallImpact(mgl64.Vec2{0, 10}, mgl64.Vec2{-1, 0})
	approxEqual(t, got[1], 10, tol, "parallel y")

	// Direction is kept.
	got = AbsorbWallImpact(mgl64.Vec2{3, 4}, mgl64.Vec2{-1, 0})
	approxEqual(t, got[0]/got[1], 0.75, tol, "ratio")

	if got := AbsorbWallImpact(mgl64.Vec2{3, 4}, mgl64.Vec2{}); got != (mgl64.Vec2{3, 4}) {
		t.Errorf("zero normal should be ignored, got %v", got)
	}
}

func TestSafeNormalize(t *testing.T) {
	if _, ok := SafeNormalize3(mgl64.Vec3{}); ok {
		t.Error("zero vector should not normalize")
	}
	if _, ok := SafeNormalize3(mgl64.Vec3{math.NaN(), 0, 0}); ok {
		t.Error("NaN vector should not normalize")
	}
	v, ok := SafeNormalize2(mgl64.Vec2{0, -3})
	if !ok || v != (mgl64.Vec2{0, -1}) {
		t.Errorf("SafeNormalize2 = %v, %v", v, ok)
	}
}

func TestRotationArc(t *testing.T) {
	q, ok := RotationArc(Down, mgl64.Vec3{1, 0, 0})
	if !ok {
		t.Fatal("RotationArc failed")
	}
	approxVec3(t, q.Rotate(Down), mgl64.Vec3{1, 0, 0}, 1e-9, "rotated down")

	q, ok = RotationArc(Down, Up)
	if !ok {
		t.Fatal("opposite vectors should still rotate")
	}
	approxVec3(t, q.Rotate(Down), Up, 1e-9, "half turn")

	if _, ok := RotationArc(mgl64.Vec3{}, Up); ok {
		t.Error("zero vector should be degenerate")
	}
}

func TestAngleBetween(t *testing.T) {
	approxEqual(t, AngleBetween(Forward, mgl64.Vec3{1, 0, 0}), math.Pi/2, tol, "right angle")
	approxEqual(t, AngleBetween(Forward, mgl64.Vec3{}), 0, tol, "degenerate")
	approxEqual(t, AngleBetween2(mgl64.Vec2{1, 0}, mgl64.Vec2{-1, 0.0001}), math.Pi, 1e-3, "reversal")
}

func TestLiftFlatten(t *testing.T) {
	v := mgl64.Vec2{2, -3}
	if got := Lift(v); got != (mgl64.Vec3{2, 0, -3}) {
		t.Errorf("Lift = %v", got)
	}
	if got := Flatten(Lift(v)); got != v {
		t.Errorf("Flatten(Lift) = %v", got)
	}
}

func TestSlopeRotation(t *testing.T) {
	dir := mgl64.Vec3{1, 0, 0}
	front := mgl64.Vec3{1, 1, 0}
	back := mgl64.Vec3{-1, -1, 0}

	q, angle, ok := SlopeRotation(dir, front, back)
	if !ok {
		t.Fatal("SlopeRotation failed")
	}
	approxEqual(t, angle, math.Pi/4, 1e-9, "angle")
	s := math.Sqrt2 / 2
	approxVec3(t, q.Rotate(dir), mgl64.Vec3{s, s, 0}, 1e-9, "rotated direction")
	approxVec3(t, q.Rotate(Down), mgl64.Vec3{s, -s, 0}, 1e-9, "rotated cast")

	if _, _, ok := SlopeRotation(dir, front, front); ok {
		t.Error("coincident contacts should be degenerate")
	}
}

func TestProbeSpacing(t *testing.T) {
	if got := ProbeSpacing(true, 0.5, 0.35); got != 0.35 {
		t.Errorf("near obstacle spacing = %v", got)
	}
	if got := ProbeSpacing(false, 0.5, 0.35); got != 0.5 {
		t.Errorf("open spacing = %v", got)
	}
}
