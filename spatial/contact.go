package spatial

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// sphereContact tests a sphere against a collider. normal is the collider's outward normal
// pointing toward the sphere centre.
func sphereContact(center mgl64.Vec3, radius float64, c *Collider) (normal mgl64.Vec3, penetration float64, ok bool) {
	switch s := c.Shape.(type) {
	case Sphere:
		d := center.Sub(c.Position)
		dist := d.Len()
		penetration = radius + s.Radius - dist
		if penetration <= 0 {
			return mgl64.Vec3{}, 0, false
		}
		n, ok := safeUnit(d)
		if !ok {
			n = mgl64.Vec3{0, 1, 0}
		}
		return n, penetration, true

	case Box:
		axes := obbAxes(c.Rotation)
		d := center.Sub(c.Position)
		var local, closest mgl64.Vec3
		insideBox := true
		for i := 0; i < 3; i++ {
			local[i] = d.Dot(axes[i])
			closest[i] = mgl64.Clamp(local[i], -s.HalfExtents[i], s.HalfExtents[i])
			if closest[i] != local[i] {
				insideBox = false
			}
		}

		if insideBox {
			// Push out through the nearest face.
			axis, depth := 0, math.Inf(1)
			for i := 0; i < 3; i++ {
				if dd := s.HalfExtents[i] - math.Abs(local[i]); dd < depth {
					axis, depth = i, dd
				}
			}
			sign := 1.0
			if local[axis] < 0 {
				sign = -1
			}
			return axes[axis].Mul(sign), radius + depth, true
		}

		diff := local.Sub(closest)
		dist := diff.Len()
		penetration = radius - dist
		if penetration <= 0 {
			return mgl64.Vec3{}, 0, false
		}
		var world mgl64.Vec3
		for i := 0; i < 3; i++ {
			world = world.Add(axes[i].Mul(diff[i] / dist))
		}
		return world, penetration, true
	}
	return mgl64.Vec3{}, 0, false
}

// contact builds a manifold for a pair where at least one side is a sphere.
func contact(a, b *Collider) (Manifold, bool) {
	if sa, ok := a.Shape.(Sphere); ok {
		nb, pen, ok := sphereContact(a.Position, sa.Radius, b)
		if !ok {
			return Manifold{}, false
		}
		return Manifold{A: a.ID, B: b.ID, NormalA: nb.Mul(-1), NormalB: nb, Penetration: pen}, true
	}
	if sb, ok := b.Shape.(Sphere); ok {
		na, pen, ok := sphereContact(b.Position, sb.Radius, a)
		if !ok {
			return Manifold{}, false
		}
		return Manifold{A: a.ID, B: b.ID, NormalA: na, NormalB: na.Mul(-1), Penetration: pen}, true
	}
	return Manifold{}, false
}
