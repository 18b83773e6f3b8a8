package spatial

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
)

const (
	// spaceScale converts world units into resolv space units.
	spaceScale  = 100
	colliderTag = "collider"
)

var (
	ErrOutOfBounds     = errors.New("collider footprint outside environment bounds")
	ErrUnknownCollider = errors.New("unknown collider")
)

// Bounds is the XZ rectangle the broad phase indexes.
type Bounds struct {
	MinX, MinZ   float64
	Width, Depth float64
	CellSize     float64
}

type transform struct {
	position mgl64.Vec3
	rotation mgl64.Quat
}

type entry struct {
	collider Collider
	object   *resolv.Object
	indexed  bool
}

// Environment owns every collider. Queries see the transforms of the last Commit; transforms
// set with SetTransform stay staged until then.
type Environment struct {
	bounds    Bounds
	space     *resolv.Space
	colliders map[ColliderID]*entry
	staged    map[ColliderID]transform
	nextID    ColliderID
}

// NewEnvironment creates an empty environment over the given bounds.
func NewEnvironment(b Bounds) *Environment {
	cell := int(math.Max(1, math.Round(b.CellSize*spaceScale)))
	return &Environment{
		bounds:    b,
		space:     resolv.NewSpace(int(math.Ceil(b.Width*spaceScale)), int(math.Ceil(b.Depth*spaceScale)), cell, cell),
		colliders: make(map[ColliderID]*entry),
		staged:    make(map[ColliderID]transform),
	}
}

// Bounds returns the indexed rectangle.
func (e *Environment) Bounds() Bounds { return e.bounds }

// Add places a collider immediately. The ID field of c is ignored and a fresh one returned.
func (e *Environment) Add(c Collider) (ColliderID, error) {
	if c.Shape == nil {
		return 0, fmt.Errorf("spatial: add: nil shape")
	}
	if c.Rotation == (mgl64.Quat{}) {
		c.Rotation = mgl64.QuatIdent()
	}
	if !e.inBounds(&c) {
		return 0, fmt.Errorf("spatial: add at %v: %w", c.Position, ErrOutOfBounds)
	}
	e.nextID++
	c.ID = e.nextID

	x, y, w, h := e.toSpace(&c)
	obj := resolv.NewObject(x, y, w, h, colliderTag)
	obj.Data = c.ID
	e.space.Add(obj)

	e.colliders[c.ID] = &entry{collider: c, object: obj, indexed: true}
	return c.ID, nil
}

// Remove deletes a collider and any staged transform for it.
func (e *Environment) Remove(id ColliderID) error {
	en, ok := e.colliders[id]
	if !ok {
		return fmt.Errorf("spatial: remove %d: %w", id, ErrUnknownCollider)
	}
	if en.indexed {
		e.space.Remove(en.object)
	}
	delete(e.colliders, id)
	delete(e.staged, id)
	return nil
}

// SetTransform stages a new pose for the next Commit.
func (e *Environment) SetTransform(id ColliderID, position mgl64.Vec3, rotation mgl64.Quat) error {
	if _, ok := e.colliders[id]; !ok {
		return fmt.Errorf("spatial: set transform %d: %w", id, ErrUnknownCollider)
	}
	e.staged[id] = transform{position: position, rotation: rotation}
	return nil
}

// Commit publishes every staged transform. A collider whose footprint leaves the bounds keeps
// its pose but drops out of queries until it returns; each such collider is reported in the
// returned error.
func (e *Environment) Commit() error {
	var errs []error
	for _, id := range e.stagedIDs() {
		t := e.staged[id]
		en := e.colliders[id]
		en.collider.Position = t.position
		en.collider.Rotation = t.rotation

		in := e.inBounds(&en.collider)
		switch {
		case in && !en.indexed:
			e.space.Add(en.object)
			en.indexed = true
		case !in && en.indexed:
			e.space.Remove(en.object)
			en.indexed = false
		}
		if !in {
			errs = append(errs, fmt.Errorf("spatial: collider %d at %v: %w", id, t.position, ErrOutOfBounds))
			continue
		}
		en.object.X, en.object.Y, en.object.W, en.object.H = e.toSpace(&en.collider)
		en.object.Update()
	}
	clear(e.staged)
	return errors.Join(errs...)
}

// Pending reports how many transforms are staged.
func (e *Environment) Pending() int { return len(e.staged) }

// Collider returns the committed state of a collider.
func (e *Environment) Collider(id ColliderID) (Collider, bool) {
	en, ok := e.colliders[id]
	if !ok {
		return Collider{}, false
	}
	return en.collider, true
}

// Colliders returns every committed collider ordered by ID.
func (e *Environment) Colliders() []Collider {
	out := make([]Collider, 0, len(e.colliders))
	for _, en := range e.colliders {
		out = append(out, en.collider)
	}
	slices.SortFunc(out, func(a, b Collider) int { return cmp.Compare(a.ID, b.ID) })
	return out
}

func (e *Environment) stagedIDs() []ColliderID {
	ids := make([]ColliderID, 0, len(e.staged))
	for id := range e.staged {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func (e *Environment) inBounds(c *Collider) bool {
	minX, minZ, maxX, maxZ := c.footprint()
	b := e.bounds
	return minX >= b.MinX && minZ >= b.MinZ && maxX <= b.MinX+b.Width && maxZ <= b.MinZ+b.Depth
}

// toSpace maps a collider footprint into resolv coordinates.
func (e *Environment) toSpace(c *Collider) (x, y, w, h float64) {
	minX, minZ, maxX, maxZ := c.footprint()
	return e.rectToSpace(minX, minZ, maxX, maxZ)
}

func (e *Environment) rectToSpace(minX, minZ, maxX, maxZ float64) (x, y, w, h float64) {
	x = (minX - e.bounds.MinX) * spaceScale
	y = (minZ - e.bounds.MinZ) * spaceScale
	w = math.Max(1, (maxX-minX)*spaceScale)
	h = math.Max(1, (maxZ-minZ)*spaceScale)
	return x, y, w, h
}

// candidates returns the indexed colliders whose cells overlap the XZ rectangle, ordered by ID.
func (e *Environment) candidates(minX, minZ, maxX, maxZ float64, filter Filter) []*Collider {
	x, y, w, h := e.rectToSpace(minX, minZ, maxX, maxZ)
	probe := resolv.NewObject(x, y, w, h)
	e.space.Add(probe)
	defer e.space.Remove(probe)

	check := probe.Check(0, 0, colliderTag)
	if check == nil {
		return nil
	}

	out := make([]*Collider, 0, len(check.Objects))
	for _, obj := range check.Objects {
		id, ok := obj.Data.(ColliderID)
		if !ok {
			continue
		}
		en, ok := e.colliders[id]
		if !ok || !filter.accepts(&en.collider) {
			continue
		}
		out = append(out, &en.collider)
	}
	slices.SortFunc(out, func(a, b *Collider) int { return cmp.Compare(a.ID, b.ID) })
	return out
}
