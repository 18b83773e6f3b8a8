package spatial

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const castEpsilon = 1e-12

// raySphere intersects a unit-direction ray with a sphere. inside reports an origin within the
// sphere, in which case t is 0.
func raySphere(origin, dir, center mgl64.Vec3, radius float64) (t float64, inside, ok bool) {
	m := origin.Sub(center)
	b := m.Dot(dir)
	c := m.Dot(m) - radius*radius
	if c <= 0 {
		return 0, true, true
	}
	if b > 0 {
		return 0, false, false
	}
	disc := b*b - c
	if disc < 0 {
		return 0, false, false
	}
	return -b - math.Sqrt(disc), false, true
}

// rayOBB intersects a unit-direction ray with an oriented box using the slab test in the box's
// local frame. normal is the outward normal of the entry face in world space.
func rayOBB(origin, dir, center mgl64.Vec3, axes [3]mgl64.Vec3, half mgl64.Vec3) (t float64, normal mgl64.Vec3, inside, ok bool) {
	d := origin.Sub(center)
	tMin, tMax := math.Inf(-1), math.Inf(1)
	entryAxis, entrySign := -1, 0.0

	for i := 0; i < 3; i++ {
		lo := d.Dot(axes[i])
		ld := dir.Dot(axes[i])
		if math.Abs(ld) < castEpsilon {
			if lo < -half[i] || lo > half[i] {
				return 0, mgl64.Vec3{}, false, false
			}
			continue
		}
		t1 := (-half[i] - lo) / ld
		t2 := (half[i] - lo) / ld
		sign := -1.0
		if t1 > t2 {
			t1, t2 = t2, t1
			sign = 1
		}
		if t1 > tMin {
			tMin = t1
			entryAxis, entrySign = i, sign
		}
		if t2 < tMax {
			tMax = t2
		}
		if tMin > tMax {
			return 0, mgl64.Vec3{}, false, false
		}
	}

	if tMax < 0 {
		return 0, mgl64.Vec3{}, false, false
	}
	if tMin < 0 || entryAxis < 0 {
		return 0, mgl64.Vec3{}, true, true
	}
	return tMin, axes[entryAxis].Mul(entrySign), false, true
}

// castAgainst sweeps a sphere of the given radius (0 for a ray) against one collider. A cast
// that starts overlapping the collider hits at distance 0 when solid is set.
func castAgainst(c *Collider, origin, dir mgl64.Vec3, radius, maxDistance float64, solid bool) (Hit, bool) {
	switch s := c.Shape.(type) {
	case Sphere:
		t, inside, ok := raySphere(origin, dir, c.Position, s.Radius+radius)
		if !ok {
			return Hit{}, false
		}
		if inside {
			if !solid {
				return Hit{}, false
			}
			return overlapHit(c, origin, dir, radius), true
		}
		if t > maxDistance {
			return Hit{}, false
		}
		at := origin.Add(dir.Mul(t))
		normal, ok := safeUnit(at.Sub(c.Position))
		if !ok {
			normal = dir.Mul(-1)
		}
		return Hit{Point: at.Sub(normal.Mul(radius)), Normal: normal, Distance: t, Collider: c.ID}, true

	case Box:
		inflated := s.HalfExtents.Add(mgl64.Vec3{radius, radius, radius})
		t, normal, inside, ok := rayOBB(origin, dir, c.Position, obbAxes(c.Rotation), inflated)
		if !ok {
			return Hit{}, false
		}
		if inside {
			if !solid {
				return Hit{}, false
			}
			return overlapHit(c, origin, dir, radius), true
		}
		if t > maxDistance {
			return Hit{}, false
		}
		at := origin.Add(dir.Mul(t))
		return Hit{Point: at.Sub(normal.Mul(radius)), Normal: normal, Distance: t, Collider: c.ID}, true
	}
	return Hit{}, false
}

// overlapHit reports a cast that starts inside a collider: distance 0, with the normal of the
// shallowest way out.
func overlapHit(c *Collider, origin, dir mgl64.Vec3, radius float64) Hit {
	normal := dir.Mul(-1)
	if n, _, ok := sphereContact(origin, radius, c); ok {
		normal = n
	}
	return Hit{Point: origin.Sub(normal.Mul(radius)), Normal: normal, Distance: 0, Collider: c.ID}
}

func safeUnit(v mgl64.Vec3) (mgl64.Vec3, bool) {
	l := v.Len()
	if l < castEpsilon || math.IsNaN(l) || math.IsInf(l, 0) {
		return mgl64.Vec3{}, false
	}
	return v.Mul(1 / l), true
}
