package scenes

import (
	"fmt"
	"math"

	"github.com/automoto/degauss/components"
	cfg "github.com/automoto/degauss/config"
	"github.com/automoto/degauss/systems"
	"github.com/automoto/degauss/systems/factory"
	"github.com/automoto/degauss/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Options selects how a CharacterScene is wired.
type Options struct {
	// Interactive adds the input, pause and camera systems and the debug renderer.
	Interactive bool
	// Values is the tuning given to the spawned character; nil uses the defaults.
	Values *cfg.CharacterValues
	// Spawn is where the demo character starts.
	Spawn mgl64.Vec3
}

// CharacterScene runs the movement pipeline over one world.
type CharacterScene struct {
	ecs       *ecs.ECS
	character *donburi.Entry
	ticks     int
}

// NewCharacterScene registers the movement pipeline on a fresh world and builds the demo
// level.
func NewCharacterScene(opts Options) (*CharacterScene, error) {
	stages := systems.Pipeline()
	if err := systems.ValidatePipeline(stages); err != nil {
		return nil, fmt.Errorf("scenes: %w", err)
	}

	e := ecs.NewECS(donburi.NewWorld())

	if opts.Interactive {
		// Systems that always run
		e.AddSystem(systems.UpdateInput)
		e.AddSystem(systems.UpdatePause)
		e.AddSystem(systems.WithPauseCheck(systems.UpdateControl))
	}
	for _, s := range stages {
		e.AddSystem(systems.WithPauseCheck(s.System))
	}
	if opts.Interactive {
		e.AddSystem(systems.WithPauseCheck(systems.UpdateCamera))
		e.AddRenderer(cfg.Default, systems.DrawDebug)
	}

	s := &CharacterScene{ecs: e}
	character, err := BuildDemoLevel(e, opts.Spawn, opts.Values)
	if err != nil {
		return nil, err
	}
	s.character = character
	if opts.Interactive {
		factory.CreateCamera(e, opts.Spawn)
	}
	return s, nil
}

// BuildDemoLevel populates e with a floor, a ramp, a wall, a moving platform and one character.
func BuildDemoLevel(e *ecs.ECS, spawn mgl64.Vec3, values *cfg.CharacterValues) (*donburi.Entry, error) {
	factory.CreateEnvironment(e)

	if _, err := factory.CreateBlock(e, mgl64.Vec3{0, -0.5, 0}, mgl64.Vec3{40, 0.5, 40}); err != nil {
		return nil, err
	}
	if _, err := factory.CreateRamp(e, mgl64.Vec3{0, 0, -14}, mgl64.Vec3{4, 0.5, 6}, math.Pi/9); err != nil {
		return nil, err
	}
	if _, err := factory.CreateBlock(e, mgl64.Vec3{12, 4, 0}, mgl64.Vec3{0.5, 4, 8}); err != nil {
		return nil, err
	}
	if _, err := factory.CreateMovingBlock(e, mgl64.Vec3{-10, 1, 6}, mgl64.Vec3{2, 0.25, 2},
		mgl64.Vec3{0, 0, 10}, 2); err != nil {
		return nil, err
	}

	return factory.CreateCharacter(e, spawn, values, false)
}

func (s *CharacterScene) Update() {
	s.ecs.Update()
	s.ticks++
}

func (s *CharacterScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.C.Background)
	s.ecs.Draw(screen)
}

// ECS exposes the underlying world for hosts and tests.
func (s *CharacterScene) ECS() *ecs.ECS { return s.ecs }

// Character returns the demo character.
func (s *CharacterScene) Character() *donburi.Entry { return s.character }

// Ticks is the number of Update calls so far.
func (s *CharacterScene) Ticks() int { return s.ticks }

// SetValues swaps the tuning of every character. The previous values are left untouched.
func (s *CharacterScene) SetValues(values *cfg.CharacterValues) error {
	if err := values.Validate(); err != nil {
		return fmt.Errorf("scenes: %w", err)
	}
	tags.Character.Each(s.ecs.World, func(e *donburi.Entry) {
		components.Values.SetValue(e, components.ValuesData{CharacterValues: values})
	})
	return nil
}
