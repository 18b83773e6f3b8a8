// Package spatial is a small 3D collision world: sphere and oriented-box colliders indexed by a
// resolv spatial hash over their XZ footprint, with ray casts, sphere casts and contact
// manifolds for the movement systems.
package spatial

import (
	"math"
	"slices"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// Layer is a bit set of collision groups.
type Layer uint32

const (
	LayerEnvironment Layer = 1 << iota
	LayerDynamic
	LayerCharacter

	// LayerTerrain is every layer a character can stand on or run into.
	LayerTerrain = LayerEnvironment | LayerDynamic
	LayerAll     = LayerEnvironment | LayerDynamic | LayerCharacter
)

// ColliderID identifies a collider for its whole lifetime. Zero is never issued.
type ColliderID uint64

// Filter selects colliders for a query. A zero Mask matches every layer.
type Filter struct {
	Mask    Layer
	Exclude []ColliderID
}

func (f Filter) accepts(c *Collider) bool {
	if f.Mask != 0 && f.Mask&c.Layer == 0 {
		return false
	}
	return !slices.Contains(f.Exclude, c.ID)
}

// Shape is a collision volume centred on its collider position.
type Shape interface {
	// BoundingRadius is the radius of a sphere enclosing the shape.
	BoundingRadius() float64
}

// Sphere is a ball of the given radius.
type Sphere struct {
	Radius float64
}

func (s Sphere) BoundingRadius() float64 { return s.Radius }

// Box is an oriented box; the collider rotation orients it.
type Box struct {
	HalfExtents mgl64.Vec3
}

func (b Box) BoundingRadius() float64 { return b.HalfExtents.Len() }

// Collider is a shape placed in the world.
type Collider struct {
	ID       ColliderID
	Owner    donburi.Entity
	Layer    Layer
	Shape    Shape
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

// footprint returns the world-space XZ extent of the collider.
func (c *Collider) footprint() (minX, minZ, maxX, maxZ float64) {
	var ex, ez float64
	switch s := c.Shape.(type) {
	case Sphere:
		ex, ez = s.Radius, s.Radius
	case Box:
		axes := obbAxes(c.Rotation)
		for i := 0; i < 3; i++ {
			ex += math.Abs(axes[i][0]) * s.HalfExtents[i]
			ez += math.Abs(axes[i][2]) * s.HalfExtents[i]
		}
	default:
		r := c.Shape.BoundingRadius()
		ex, ez = r, r
	}
	return c.Position[0] - ex, c.Position[2] - ez, c.Position[0] + ex, c.Position[2] + ez
}

// Hit is the nearest surface found by a cast.
type Hit struct {
	Point    mgl64.Vec3
	Normal   mgl64.Vec3
	Distance float64
	Collider ColliderID
}

// Manifold is one penetrating pair. NormalA is A's outward normal pointing toward B; NormalB is
// B's outward normal pointing toward A.
type Manifold struct {
	A, B        ColliderID
	NormalA     mgl64.Vec3
	NormalB     mgl64.Vec3
	Penetration float64
}

func obbAxes(rot mgl64.Quat) [3]mgl64.Vec3 {
	m := rot.Normalize().Mat4()
	return [3]mgl64.Vec3{
		m.Col(0).Vec3(),
		m.Col(1).Vec3(),
		m.Col(2).Vec3(),
	}
}
