package config

import (
	_ "embed"
)

//go:embed defaults/lightsout.yaml
var defaultYAML []byte

// Default returns the built-in configuration, mirroring the embedded YAML.
func Default() Config {
	return Config{
		Difficulties: []DifficultyEntry{
			{ID: "easy", Label: "Easy", Size: 3, Steps: 6},
			{ID: "normal", Label: "Normal", Size: 5, Steps: 15},
			{ID: "hard", Label: "Hard", Size: 7, Steps: 30},
		},
	}
}
