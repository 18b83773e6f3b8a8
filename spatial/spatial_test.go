package spatial

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func approxEqual(t *testing.T, got, want, tol float64, field string) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %v, want %v (±%v)", field, got, want, tol)
	}
}

func approxVec(t *testing.T, got, want mgl64.Vec3, tol float64, field string) {
	t.Helper()
	if got.Sub(want).Len() > tol {
		t.Errorf("%s = %v, want %v", field, got, want)
	}
}

func newTestEnvironment() *Environment {
	return NewEnvironment(Bounds{MinX: -50, MinZ: -50, Width: 100, Depth: 100, CellSize: 4})
}

// addFloor places a 40x1x40 slab whose top face is at y = 0.
func addFloor(t *testing.T, env *Environment) ColliderID {
	t.Helper()
	id, err := env.Add(Collider{
		Layer:    LayerEnvironment,
		Shape:    Box{HalfExtents: mgl64.Vec3{20, 0.5, 20}},
		Position: mgl64.Vec3{0, -0.5, 0},
	})
	if err != nil {
		t.Fatalf("add floor: %v", err)
	}
	return id
}

func TestCastRay_Floor(t *testing.T) {
	env := newTestEnvironment()
	floor := addFloor(t, env)

	hit, ok := env.CastRay(mgl64.Vec3{1, 2, 1}, mgl64.Vec3{0, -1, 0}, 5, true, Filter{})
	if !ok {
		t.Fatal("expected floor hit")
	}
	approxEqual(t, hit.Distance, 2, 1e-9, "distance")
	approxVec(t, hit.Normal, mgl64.Vec3{0, 1, 0}, 1e-9, "normal")
	approxVec(t, hit.Point, mgl64.Vec3{1, 0, 1}, 1e-9, "point")
	if hit.Collider != floor {
		t.Errorf("collider = %d, want %d", hit.Collider, floor)
	}

	if _, ok := env.CastRay(mgl64.Vec3{1, 2, 1}, mgl64.Vec3{0, -1, 0}, 1.5, true, Filter{}); ok {
		t.Error("hit beyond max distance")
	}
	if _, ok := env.CastRay(mgl64.Vec3{1, 2, 1}, mgl64.Vec3{0, 1, 0}, 5, true, Filter{}); ok {
		t.Error("hit behind the ray")
	}
}

func TestCastRay_SolidOrigin(t *testing.T) {
	env := newTestEnvironment()
	addFloor(t, env)

	hit, ok := env.CastRay(mgl64.Vec3{0, -0.25, 0}, mgl64.Vec3{1, 0, 0}, 5, true, Filter{})
	if !ok || hit.Distance != 0 {
		t.Fatalf("solid ray inside box: hit=%v ok=%v, want distance 0", hit, ok)
	}
	if _, ok := env.CastRay(mgl64.Vec3{0, -0.25, 0}, mgl64.Vec3{1, 0, 0}, 5, false, Filter{}); ok {
		t.Error("hollow ray inside box should not hit")
	}
}

func TestCastRay_RotatedWall(t *testing.T) {
	env := newTestEnvironment()
	// A ramp tilted 45 degrees about Z.
	rot := mgl64.QuatRotate(math.Pi/4, mgl64.Vec3{0, 0, 1})
	if _, err := env.Add(Collider{
		Layer:    LayerEnvironment,
		Shape:    Box{HalfExtents: mgl64.Vec3{5, 0.5, 5}},
		Position: mgl64.Vec3{0, 0, 0},
		Rotation: rot,
	}); err != nil {
		t.Fatal(err)
	}

	hit, ok := env.CastRay(mgl64.Vec3{0, 5, 0}, mgl64.Vec3{0, -1, 0}, 10, true, Filter{})
	if !ok {
		t.Fatal("expected ramp hit")
	}
	s := math.Sqrt2 / 2
	approxVec(t, hit.Normal, mgl64.Vec3{-s, s, 0}, 1e-9, "normal")
	approxEqual(t, hit.Distance, 5-0.5*math.Sqrt2, 1e-9, "distance")
}

func TestCastShape_Sphere(t *testing.T) {
	env := newTestEnvironment()
	addFloor(t, env)

	hit, ok := env.CastShape(Sphere{Radius: 0.2}, mgl64.Vec3{0, 0.5, 0}, mgl64.QuatIdent(), mgl64.Vec3{0, -1, 0}, 1, Filter{})
	if !ok {
		t.Fatal("expected sphere cast hit")
	}
	approxEqual(t, hit.Distance, 0.3, 1e-9, "distance")
	approxVec(t, hit.Point, mgl64.Vec3{0, 0, 0}, 1e-9, "point")
}

func TestCastShape_AgainstSphere(t *testing.T) {
	env := newTestEnvironment()
	id, err := env.Add(Collider{Layer: LayerDynamic, Shape: Sphere{Radius: 1}, Position: mgl64.Vec3{5, 0, 0}})
	if err != nil {
		t.Fatal(err)
	}

	hit, ok := env.CastShape(Sphere{Radius: 0.5}, mgl64.Vec3{}, mgl64.QuatIdent(), mgl64.Vec3{1, 0, 0}, 10, Filter{})
	if !ok || hit.Collider != id {
		t.Fatalf("expected hit on sphere, got %v %v", hit, ok)
	}
	approxEqual(t, hit.Distance, 3.5, 1e-9, "distance")
	approxVec(t, hit.Normal, mgl64.Vec3{-1, 0, 0}, 1e-9, "normal")
	approxVec(t, hit.Point, mgl64.Vec3{4, 0, 0}, 1e-9, "point")
}

func TestFilter(t *testing.T) {
	env := newTestEnvironment()
	floor := addFloor(t, env)
	self, err := env.Add(Collider{Layer: LayerCharacter, Shape: Sphere{Radius: 0.35}, Position: mgl64.Vec3{0, 0.5, 0}})
	if err != nil {
		t.Fatal(err)
	}

	hit, ok := env.CastRay(mgl64.Vec3{0, 2, 0}, mgl64.Vec3{0, -1, 0}, 5, true, Filter{})
	if !ok || hit.Collider != self {
		t.Fatalf("unfiltered ray should hit the character first, got %v", hit)
	}

	hit, ok = env.CastRay(mgl64.Vec3{0, 2, 0}, mgl64.Vec3{0, -1, 0}, 5, true, Filter{Mask: LayerTerrain})
	if !ok || hit.Collider != floor {
		t.Fatalf("terrain mask should skip the character, got %v", hit)
	}

	hit, ok = env.CastRay(mgl64.Vec3{0, 2, 0}, mgl64.Vec3{0, -1, 0}, 5, true, Filter{Exclude: []ColliderID{self}})
	if !ok || hit.Collider != floor {
		t.Fatalf("excluded character should be skipped, got %v", hit)
	}
}

func TestCommitSemantics(t *testing.T) {
	env := newTestEnvironment()
	id, err := env.Add(Collider{Layer: LayerDynamic, Shape: Sphere{Radius: 1}, Position: mgl64.Vec3{0, 0, 0}})
	if err != nil {
		t.Fatal(err)
	}

	if err := env.SetTransform(id, mgl64.Vec3{10, 0, 0}, mgl64.QuatIdent()); err != nil {
		t.Fatal(err)
	}
	if env.Pending() != 1 {
		t.Fatalf("Pending() = %d, want 1", env.Pending())
	}

	// Staged pose is invisible until Commit.
	if _, ok := env.CastRay(mgl64.Vec3{10, 5, 0}, mgl64.Vec3{0, -1, 0}, 10, true, Filter{}); ok {
		t.Error("staged transform visible before commit")
	}
	if _, ok := env.CastRay(mgl64.Vec3{0, 5, 0}, mgl64.Vec3{0, -1, 0}, 10, true, Filter{}); !ok {
		t.Error("committed transform should still be hit")
	}

	if err := env.Commit(); err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if _, ok := env.CastRay(mgl64.Vec3{10, 5, 0}, mgl64.Vec3{0, -1, 0}, 10, true, Filter{}); !ok {
		t.Error("committed transform not visible")
	}
	if _, ok := env.CastRay(mgl64.Vec3{0, 5, 0}, mgl64.Vec3{0, -1, 0}, 10, true, Filter{}); ok {
		t.Error("old pose still visible after commit")
	}
	if env.Pending() != 0 {
		t.Errorf("Pending() = %d after commit", env.Pending())
	}
}

func TestOutOfBounds(t *testing.T) {
	env := newTestEnvironment()
	if _, err := env.Add(Collider{Layer: LayerDynamic, Shape: Sphere{Radius: 1}, Position: mgl64.Vec3{60, 0, 0}}); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("Add out of bounds: err = %v", err)
	}

	id, err := env.Add(Collider{Layer: LayerDynamic, Shape: Sphere{Radius: 1}, Position: mgl64.Vec3{}})
	if err != nil {
		t.Fatal(err)
	}
	_ = env.SetTransform(id, mgl64.Vec3{80, 0, 0}, mgl64.QuatIdent())
	if err := env.Commit(); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("Commit out of bounds: err = %v", err)
	}
	if _, ok := env.CastRay(mgl64.Vec3{0, 5, 0}, mgl64.Vec3{0, -1, 0}, 10, true, Filter{}); ok {
		t.Error("collider should have left its old cell")
	}

	_ = env.SetTransform(id, mgl64.Vec3{1, 0, 1}, mgl64.QuatIdent())
	if err := env.Commit(); err != nil {
		t.Fatalf("Commit back in bounds: %v", err)
	}
	if _, ok := env.CastRay(mgl64.Vec3{1, 5, 1}, mgl64.Vec3{0, -1, 0}, 10, true, Filter{}); !ok {
		t.Error("collider should be queryable again")
	}
}

func TestUnknownCollider(t *testing.T) {
	env := newTestEnvironment()
	if err := env.SetTransform(42, mgl64.Vec3{}, mgl64.QuatIdent()); !errors.Is(err, ErrUnknownCollider) {
		t.Errorf("SetTransform: err = %v", err)
	}
	if err := env.Remove(42); !errors.Is(err, ErrUnknownCollider) {
		t.Errorf("Remove: err = %v", err)
	}
}

func TestRemove(t *testing.T) {
	env := newTestEnvironment()
	id := addFloor(t, env)
	if err := env.Remove(id); err != nil {
		t.Fatal(err)
	}
	if _, ok := env.CastRay(mgl64.Vec3{0, 2, 0}, mgl64.Vec3{0, -1, 0}, 5, true, Filter{}); ok {
		t.Error("removed collider still hit")
	}
	if len(env.Colliders()) != 0 {
		t.Error("Colliders() should be empty")
	}
}

func TestContactsAt_SphereOnFloor(t *testing.T) {
	env := newTestEnvironment()
	floor := addFloor(t, env)
	char, err := env.Add(Collider{Layer: LayerCharacter, Shape: Sphere{Radius: 0.35}, Position: mgl64.Vec3{0, 2, 0}})
	if err != nil {
		t.Fatal(err)
	}

	// The committed pose is clear of the floor; the probe position is not.
	manifolds, err := env.ContactsAt(char, mgl64.Vec3{0, 0.3, 0}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(manifolds) != 1 {
		t.Fatalf("got %d manifolds, want 1", len(manifolds))
	}
	m := manifolds[0]
	if m.A != floor || m.B != char {
		t.Fatalf("pair = (%d, %d), want (%d, %d)", m.A, m.B, floor, char)
	}
	approxEqual(t, m.Penetration, 0.05, 1e-9, "penetration")
	approxVec(t, m.NormalA, mgl64.Vec3{0, 1, 0}, 1e-9, "normal A")
	approxVec(t, m.NormalB, mgl64.Vec3{0, -1, 0}, 1e-9, "normal B")
}

func TestContactsAt_SpherePair(t *testing.T) {
	env := newTestEnvironment()
	var ids []ColliderID
	for _, x := range []float64{0, 0.5} {
		id, err := env.Add(Collider{Layer: LayerCharacter, Shape: Sphere{Radius: 0.35}, Position: mgl64.Vec3{x, 5, 0}})
		if err != nil {
			t.Fatal(err)
		}
		ids = append(ids, id)
	}
	manifolds, err := env.ContactsAt(ids[0], mgl64.Vec3{0, 5, 0}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(manifolds) != 1 {
		t.Fatalf("got %d manifolds, want 1", len(manifolds))
	}
	approxEqual(t, manifolds[0].Penetration, 0.2, 1e-9, "penetration")
	approxVec(t, manifolds[0].NormalA, mgl64.Vec3{1, 0, 0}, 1e-9, "normal A")
}

func TestContactsAt_NoOverlap(t *testing.T) {
	env := newTestEnvironment()
	addFloor(t, env)
	id, err := env.Add(Collider{Layer: LayerCharacter, Shape: Sphere{Radius: 0.35}, Position: mgl64.Vec3{0, 0.5, 0}})
	if err != nil {
		t.Fatal(err)
	}
	got, err := env.ContactsAt(id, mgl64.Vec3{0, 0.5, 0}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("got %d manifolds for a resting sphere", len(got))
	}
	if _, err := env.ContactsAt(99, mgl64.Vec3{}, nil); !errors.Is(err, ErrUnknownCollider) {
		t.Errorf("unknown collider: err = %v", err)
	}
}
