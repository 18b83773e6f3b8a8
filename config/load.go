package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ParseCharacterValues decodes YAML tuning on top of DefaultCharacterValues and validates it.
// Keys that are absent keep their default.
func ParseCharacterValues(data []byte) (*CharacterValues, error) {
	values := DefaultCharacterValues()
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("config: decode character values: %w", err)
	}
	if err := values.Validate(); err != nil {
		return nil, err
	}
	return &values, nil
}

// LoadCharacterValues reads a YAML tuning file.
func LoadCharacterValues(path string) (*CharacterValues, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	values, err := ParseCharacterValues(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return values, nil
}

// EngineFile is the optional top-level settings file read by the hosts.
type EngineFile struct {
	Engine      *EngineConfig      `yaml:"engine"`
	Environment *EnvironmentConfig `yaml:"environment"`
}

// LoadFile applies an engine settings file onto the package globals. Sections that are
// absent leave the defaults in place.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	var file EngineFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("config: decode %s: %w", path, err)
	}
	if file.Engine != nil {
		if file.Engine.TickRate <= 0 {
			return fmt.Errorf("config: %s: tick_rate = %d: %w", path, file.Engine.TickRate, ErrNegativeValue)
		}
		Engine = *file.Engine
	}
	if file.Environment != nil {
		env := *file.Environment
		if env.Width <= 0 || env.Depth <= 0 || env.CellSize <= 0 {
			return fmt.Errorf("config: %s: environment extents: %w", path, ErrNegativeValue)
		}
		Environment = env
	}
	return nil
}
