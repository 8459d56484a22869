package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LocalConfigDir is the working-directory config location.
const LocalConfigDir = "configs"

// LoadSeatJam loads Seat Jam configuration.
// Search order: customPath -> ~/.seatjam/configs/seatjam.yaml -> ./configs/seatjam.yaml -> embedded default
func LoadSeatJam(customPath string) (SeatJamConfig, error) {
	cfg := DefaultSeatJamConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		cfg.normalize()
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("seatjam.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				cfg.normalize()
				return cfg, nil
			}
			cfg = DefaultSeatJamConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join(LocalConfigDir, "seatjam.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			cfg.normalize()
			return cfg, nil
		}
		cfg = DefaultSeatJamConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultSeatJamYAML, &cfg); err != nil {
		return DefaultSeatJamConfig(), nil // Fallback to hardcoded if embed fails
	}
	cfg.normalize()
	return cfg, nil
}

// DataDir returns ~/.seatjam, or empty if home is unavailable.
func DataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".seatjam")
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	dir := DataDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "configs", filename)
}

// ApplySeatJamPreset modifies the config based on a difficulty preset.
func ApplySeatJamPreset(cfg *SeatJamConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Unlimited = true
		cfg.Difficulty.Hints = true
		return
	}
	cfg.Difficulty.Unlimited = false

	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.ExtraMoves = 3
		cfg.Difficulty.Hints = true
		cfg.Scramble.Slack = 5
	case DifficultyNormal:
		cfg.Difficulty.ExtraMoves = 0
		cfg.Difficulty.Hints = true
		cfg.Scramble.Slack = 3
	case DifficultyHard:
		cfg.Difficulty.ExtraMoves = 0
		cfg.Difficulty.Hints = false
		cfg.Scramble.Slack = 0
		cfg.Scramble.Moves += 2
	}
}
