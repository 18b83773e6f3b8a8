package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// CharacterValues holds the per-character movement tuning. A character keeps a pointer to
// one immutable value for its whole lifetime; reloading tuning swaps the pointer.
type CharacterValues struct {
	// Ground locomotion (per tick)
	AccelerationSpeed    float64 `yaml:"acceleration_speed"`
	AirAccelerationSpeed float64 `yaml:"air_acceleration_speed"`
	DecelerationSpeed    float64 `yaml:"deceleration_speed"`
	TopSpeed             float64 `yaml:"top_speed"`
	FrictionSpeed        float64 `yaml:"friction_speed"`

	// Vertical motion (per tick, negative gravity pulls down)
	Gravity   float64 `yaml:"gravity"`
	JumpSpeed float64 `yaml:"jump_speed"`

	// Terrain probes
	CushionRadius           float64 `yaml:"cushion_radius"`
	GroundDetectionRadius   float64 `yaml:"ground_detection_radius"`
	ObstacleDetectionRadius float64 `yaml:"obstacle_detection_radius"`
	SlopeCastDistance       float64 `yaml:"slope_cast_distance"`

	// Radius of the character's own sphere collider
	ColliderRadius float64 `yaml:"collider_radius"`
}

// DefaultCharacterValues returns the tuning the sandbox character spawns with.
func DefaultCharacterValues() CharacterValues {
	return CharacterValues{
		AccelerationSpeed:       0.50,
		AirAccelerationSpeed:    0.25,
		DecelerationSpeed:       0.70,
		TopSpeed:                15.0,
		FrictionSpeed:           0.30,
		Gravity:                 -0.2,
		JumpSpeed:               2.0,
		CushionRadius:           0.5,
		GroundDetectionRadius:   0.2,
		ObstacleDetectionRadius: 0.35,
		SlopeCastDistance:       2.0,
		ColliderRadius:          0.35,
	}
}

// DesiredDistanceFromGround is the sphere-cast distance the ground probe and the contact
// corrector hold the character at.
func (v *CharacterValues) DesiredDistanceFromGround() float64 {
	return v.CushionRadius - v.GroundDetectionRadius
}

// EngineConfig contains fixed-timestep settings shared by every character.
type EngineConfig struct {
	TickRate int `yaml:"tick_rate"` // ticks per second
}

// DeltaTime returns the fixed timestep in seconds.
func (e EngineConfig) DeltaTime() float64 {
	if e.TickRate <= 0 {
		return 0
	}
	return 1 / float64(e.TickRate)
}

// EnvironmentConfig bounds the collision world. The broad phase only indexes colliders whose
// XZ footprint lies inside the bounds.
type EnvironmentConfig struct {
	MinX     float64 `yaml:"min_x"`
	MinZ     float64 `yaml:"min_z"`
	Width    float64 `yaml:"width"`
	Depth    float64 `yaml:"depth"`
	CellSize float64 `yaml:"cell_size"`
	// KillY is the height below which characters respawn at their checkpoint
	KillY float64 `yaml:"kill_y"`
}

// DebugConfig contains debug/testing options
type DebugConfig struct {
	DrawProbes bool // Draw slope and ground probes in the sandbox
	LogTicks   int  // Log character state every N ticks in the headless host (0 = never)
}

// SandboxConfig holds the sandbox window settings
type SandboxConfig struct {
	Width         int
	Height        int
	PixelsPerUnit float64
	Background    color.RGBA
}

// CameraConfig controls how the sandbox view follows the character
type CameraConfig struct {
	FollowSmoothing float64 // Fraction of the remaining distance closed per tick
}

// Render layers
const (
	Default ecs.LayerID = iota
)

// Global configuration instances
var C *SandboxConfig
var Engine EngineConfig
var Environment EnvironmentConfig
var Debug DebugConfig
var Camera CameraConfig

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Grey      = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	Red       = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green     = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Yellow    = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange    = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	LightBlue = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Purple    = color.RGBA{R: 124, G: 0, B: 255, A: 255}
)

func init() {
	C = &SandboxConfig{
		Width:         960,
		Height:        540,
		PixelsPerUnit: 24,
		Background:    color.RGBA{R: 16, G: 16, B: 24, A: 255},
	}

	Engine = EngineConfig{
		TickRate: 64,
	}

	Environment = EnvironmentConfig{
		MinX:     -128,
		MinZ:     -128,
		Width:    256,
		Depth:    256,
		CellSize: 4,
		KillY:    -20,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.15,
	}

	Debug = DebugConfig{
		DrawProbes: true,
		LogTicks:   64,
	}
}
