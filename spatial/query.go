package spatial

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Query is the read side of the collision world used by the movement systems.
type Query interface {
	CastRay(origin, dir mgl64.Vec3, maxDistance float64, solid bool, filter Filter) (Hit, bool)
	CastShape(shape Shape, origin mgl64.Vec3, rotation mgl64.Quat, dir mgl64.Vec3, maxDistance float64, filter Filter) (Hit, bool)
}

var _ Query = (*Environment)(nil)

// CastRay returns the nearest collider along the ray within maxDistance. With solid set, an
// origin inside a collider hits it at distance 0.
func (e *Environment) CastRay(origin, dir mgl64.Vec3, maxDistance float64, solid bool, filter Filter) (Hit, bool) {
	return e.sweep(origin, dir, 0, maxDistance, solid, filter)
}

// CastShape sweeps a shape along dir. Boxes are swept as their bounding sphere. A shape that
// starts overlapping a collider hits it at distance 0.
func (e *Environment) CastShape(shape Shape, origin mgl64.Vec3, rotation mgl64.Quat, dir mgl64.Vec3, maxDistance float64, filter Filter) (Hit, bool) {
	if shape == nil {
		return Hit{}, false
	}
	return e.sweep(origin, dir, shape.BoundingRadius(), maxDistance, true, filter)
}

func (e *Environment) sweep(origin, dir mgl64.Vec3, radius, maxDistance float64, solid bool, filter Filter) (Hit, bool) {
	d, ok := safeUnit(dir)
	if !ok || maxDistance < 0 || math.IsNaN(maxDistance) {
		return Hit{}, false
	}

	end := origin.Add(d.Mul(maxDistance))
	minX := math.Min(origin[0], end[0]) - radius
	maxX := math.Max(origin[0], end[0]) + radius
	minZ := math.Min(origin[2], end[2]) - radius
	maxZ := math.Max(origin[2], end[2]) + radius

	var best Hit
	found := false
	for _, c := range e.candidates(minX, minZ, maxX, maxZ, filter) {
		hit, ok := castAgainst(c, origin, d, radius, maxDistance, solid)
		if !ok {
			continue
		}
		if !found || hit.Distance < best.Distance {
			best, found = hit, true
		}
	}
	return best, found
}

// ContactsAt appends a manifold for every collider penetrating the sphere collider id when it
// is placed at position. Other colliders are taken at their committed pose. The pair is
// ordered with the lower ID as A.
func (e *Environment) ContactsAt(id ColliderID, position mgl64.Vec3, dst []Manifold) ([]Manifold, error) {
	en, ok := e.colliders[id]
	if !ok {
		return dst, fmt.Errorf("spatial: contacts %d: %w", id, ErrUnknownCollider)
	}
	s, ok := en.collider.Shape.(Sphere)
	if !ok {
		return dst, nil
	}
	self := en.collider
	self.Position = position

	for _, other := range e.candidates(position[0]-s.Radius, position[2]-s.Radius,
		position[0]+s.Radius, position[2]+s.Radius, Filter{Exclude: []ColliderID{id}}) {
		a, b := &self, other
		if b.ID < a.ID {
			a, b = b, a
		}
		if m, ok := contact(a, b); ok {
			dst = append(dst, m)
		}
	}
	return dst, nil
}
