package config

import (
	_ "embed"
)

//go:embed defaults/seatjam.yaml
var defaultSeatJamYAML []byte

// DefaultSeatJamConfig returns the default Seat Jam configuration.
func DefaultSeatJamConfig() SeatJamConfig {
	return SeatJamConfig{
		Animation: SeatJamAnimation{
			StepTicks:    3,
			MessageTicks: 60,
		},
		Scoring: SeatJamScoring{
			LevelBonus: 100,
			MoveBonus:  25,
		},
		Scramble: SeatJamScramble{
			Rounds:      5,
			Moves:       6,
			Slack:       3,
			MaxAttempts: 200,
		},
		Difficulty: SeatJamDifficulty{
			ExtraMoves: 0,
			Unlimited:  false,
			Hints:      true,
		},
	}
}

// normalize replaces unusable values with defaults so a partial file still
// yields a playable config.
func (c *SeatJamConfig) normalize() {
	def := DefaultSeatJamConfig()
	if c.Animation.StepTicks <= 0 {
		c.Animation.StepTicks = def.Animation.StepTicks
	}
	if c.Animation.MessageTicks <= 0 {
		c.Animation.MessageTicks = def.Animation.MessageTicks
	}
	if c.Scoring.LevelBonus < 0 {
		c.Scoring.LevelBonus = 0
	}
	if c.Scoring.MoveBonus < 0 {
		c.Scoring.MoveBonus = 0
	}
	if c.Scramble.Rounds <= 0 {
		c.Scramble.Rounds = def.Scramble.Rounds
	}
	if c.Scramble.Moves <= 0 {
		c.Scramble.Moves = def.Scramble.Moves
	}
	if c.Scramble.Slack < 0 {
		c.Scramble.Slack = 0
	}
	if c.Scramble.MaxAttempts <= 0 {
		c.Scramble.MaxAttempts = def.Scramble.MaxAttempts
	}
	if c.Difficulty.ExtraMoves < 0 {
		c.Difficulty.ExtraMoves = 0
	}
}
