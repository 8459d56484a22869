// Package config provides YAML-based game configuration loading and
// difficulty presets for Seat Jam.
package config

// SeatJamConfig contains all configuration for the Seat Jam game.
type SeatJamConfig struct {
	Animation  SeatJamAnimation  `yaml:"animation"`
	Scoring    SeatJamScoring    `yaml:"scoring"`
	Scramble   SeatJamScramble   `yaml:"scramble"`
	Difficulty SeatJamDifficulty `yaml:"difficulty"`
}

// SeatJamAnimation defines timing of the walk animation and messages, in ticks.
type SeatJamAnimation struct {
	StepTicks    int `yaml:"step_ticks"`    // Ticks per cell while a robot walks
	MessageTicks int `yaml:"message_ticks"` // How long feedback messages stay visible
}

// SeatJamScoring defines how cleared levels are scored.
type SeatJamScoring struct {
	LevelBonus int `yaml:"level_bonus"` // Awarded for every cleared level
	MoveBonus  int `yaml:"move_bonus"`  // Awarded per unused move
}

// SeatJamScramble defines generated layouts for the shuffle mode.
type SeatJamScramble struct {
	Rounds      int `yaml:"rounds"`       // Levels per shuffle run
	Moves       int `yaml:"moves"`        // Random moves applied to the solved layout
	Slack       int `yaml:"slack"`        // Moves granted on top of the applied ones
	MaxAttempts int `yaml:"max_attempts"` // Tries to find a movable robot per move
}

// SeatJamDifficulty defines the adjustable difficulty knobs.
type SeatJamDifficulty struct {
	ExtraMoves int  `yaml:"extra_moves"` // Added to every level's move limit
	Unlimited  bool `yaml:"unlimited"`   // Ignore move limits entirely
	Hints      bool `yaml:"hints"`       // Allow the hint action
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets returns all known presets in display order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(s string) (DifficultyPreset, bool) {
	if s == "" {
		return DifficultyNormal, true
	}
	for _, p := range Presets() {
		if string(p) == s {
			return p, true
		}
	}
	return "", false
}

// IsFixedPreset returns true if the preset removes move limits.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
