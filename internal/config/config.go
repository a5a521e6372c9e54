// Package config provides YAML-based configuration loading for the
// lights-out game, chiefly the difficulty catalog.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-lightsout/internal/lightsout"
)

// Config is the full game configuration.
type Config struct {
	Difficulties []DifficultyEntry `yaml:"difficulties"`
}

// DifficultyEntry is one difficulty preset as declared in YAML.
type DifficultyEntry struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
	Size  int    `yaml:"size"`
	Steps int    `yaml:"steps"`
}

// Validate checks the configuration for values the game cannot run with.
func (c Config) Validate() error {
	if len(c.Difficulties) == 0 {
		return fmt.Errorf("config: no difficulties defined")
	}

	seen := make(map[string]bool, len(c.Difficulties))
	for i, d := range c.Difficulties {
		if d.ID == "" {
			return fmt.Errorf("config: difficulty %d has an empty id", i)
		}
		if seen[d.ID] {
			return fmt.Errorf("config: duplicate difficulty id %q", d.ID)
		}
		seen[d.ID] = true

		if d.Size <= 0 {
			return fmt.Errorf("config: difficulty %q: size must be positive, got %d", d.ID, d.Size)
		}
		if d.Size > 20 {
			return fmt.Errorf("config: difficulty %q: size %d exceeds the supported maximum of 20", d.ID, d.Size)
		}
		if d.Steps < 0 {
			return fmt.Errorf("config: difficulty %q: steps must be non-negative, got %d", d.ID, d.Steps)
		}
	}
	return nil
}

// Catalog converts the configured difficulties into the core catalog,
// easiest-declared-first order preserved.
func (c Config) Catalog() []lightsout.Difficulty {
	catalog := make([]lightsout.Difficulty, 0, len(c.Difficulties))
	for _, d := range c.Difficulties {
		label := d.Label
		if label == "" {
			label = d.ID
		}
		catalog = append(catalog, lightsout.Difficulty{
			ID:    d.ID,
			Label: label,
			Size:  d.Size,
			Steps: d.Steps,
		})
	}
	return catalog
}
