package config

import (
	"errors"
	"fmt"
)

var (
	// ErrNegativeValue is returned when a radius, distance or speed magnitude is negative.
	ErrNegativeValue = errors.New("negative value")
	// ErrTopSpeed is returned when top_speed is zero or negative.
	ErrTopSpeed = errors.New("top_speed must be positive")
)

// Validate rejects tuning the movement systems cannot run with. The cushion relationship is
// reported by CushionWarning instead.
func (v *CharacterValues) Validate() error {
	nonNegative := []struct {
		name  string
		value float64
	}{
		{"acceleration_speed", v.AccelerationSpeed},
		{"air_acceleration_speed", v.AirAccelerationSpeed},
		{"deceleration_speed", v.DecelerationSpeed},
		{"friction_speed", v.FrictionSpeed},
		{"jump_speed", v.JumpSpeed},
		{"cushion_radius", v.CushionRadius},
		{"ground_detection_radius", v.GroundDetectionRadius},
		{"obstacle_detection_radius", v.ObstacleDetectionRadius},
		{"slope_cast_distance", v.SlopeCastDistance},
		{"collider_radius", v.ColliderRadius},
	}
	for _, f := range nonNegative {
		if f.value < 0 {
			return fmt.Errorf("config: %s = %g: %w", f.name, f.value, ErrNegativeValue)
		}
	}
	if v.TopSpeed <= 0 {
		return fmt.Errorf("config: top_speed = %g: %w", v.TopSpeed, ErrTopSpeed)
	}
	return nil
}

// CushionWarning describes a violated cushion relationship, or returns "" when
// cushion_radius >= ground_detection_radius + obstacle_detection_radius.
func (v *CharacterValues) CushionWarning() string {
	need := v.GroundDetectionRadius + v.ObstacleDetectionRadius
	if v.CushionRadius >= need {
		return ""
	}
	return fmt.Sprintf("cushion_radius %g is smaller than ground_detection_radius + obstacle_detection_radius (%g)",
		v.CushionRadius, need)
}
