package systems

import (
	"math"
	"testing"

	"github.com/automoto/degauss/components"
	"github.com/automoto/degauss/config"
	"github.com/automoto/degauss/spatial"
	"github.com/automoto/degauss/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func approxEqual(t *testing.T, got, want, tol float64, field string) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %v, want %v (±%v)", field, got, want, tol)
	}
}

func approxVec3(t *testing.T, got, want mgl64.Vec3, tol float64, field string) {
	t.Helper()
	if got.Sub(want).Len() > tol {
		t.Errorf("%s = %v, want %v", field, got, want)
	}
}

func approxVec2(t *testing.T, got, want mgl64.Vec2, tol float64, field string) {
	t.Helper()
	if got.Sub(want).Len() > tol {
		t.Errorf("%s = %v, want %v", field, got, want)
	}
}

func defaultValues() *config.CharacterValues {
	v := config.DefaultCharacterValues()
	return &v
}

func newTestEnvironment() *spatial.Environment {
	return spatial.NewEnvironment(spatial.Bounds{MinX: -50, MinZ: -50, Width: 100, Depth: 100, CellSize: 4})
}

func addBox(t *testing.T, env *spatial.Environment, pos, half mgl64.Vec3) spatial.ColliderID {
	t.Helper()
	id, err := env.Add(spatialBox(pos, half, mgl64.QuatIdent()))
	if err != nil {
		t.Fatalf("add box: %v", err)
	}
	return id
}

// addFloor places a 40x1x40 slab whose top face is at y = 0.
func addFloor(t *testing.T, env *spatial.Environment) spatial.ColliderID {
	t.Helper()
	return addBox(t, env, mgl64.Vec3{0, -0.5, 0}, mgl64.Vec3{20, 0.5, 20})
}

func addCharacterCollider(t *testing.T, env *spatial.Environment, pos mgl64.Vec3) spatial.ColliderID {
	t.Helper()
	id, err := env.Add(spatial.Collider{
		Layer:    spatial.LayerCharacter,
		Shape:    spatial.Sphere{Radius: 0.35},
		Position: pos,
		Rotation: mgl64.QuatIdent(),
	})
	if err != nil {
		t.Fatalf("add character: %v", err)
	}
	return id
}

// newPipelineECS registers the movement stages on an empty world.
func newPipelineECS() *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	for _, s := range Pipeline() {
		e.AddSystem(s.System)
	}
	return e
}

func groundedAngle(t *testing.T, physics *components.PhysicsData) float64 {
	t.Helper()
	g, ok := physics.AirSpeed.(components.Grounded)
	if !ok {
		t.Fatalf("air speed = %#v, want Grounded", physics.AirSpeed)
	}
	return g.Angle
}

func spatialBox(pos, half mgl64.Vec3, rot mgl64.Quat) spatial.Collider {
	return spatial.Collider{
		Layer:    spatial.LayerEnvironment,
		Shape:    spatial.Box{HalfExtents: half},
		Position: pos,
		Rotation: rot,
	}
}

func factoryEnvironment(t *testing.T, e *ecs.ECS) *spatial.Environment {
	t.Helper()
	entry := factory.CreateEnvironment(e)
	return components.Environment.Get(entry).Environment
}

func movingBlock(t *testing.T, e *ecs.ECS, pos, travel mgl64.Vec3, speed float64) *donburi.Entry {
	t.Helper()
	block, err := factory.CreateMovingBlock(e, pos, mgl64.Vec3{1, 0.25, 1}, travel, speed)
	if err != nil {
		t.Fatal(err)
	}
	return block
}
