package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 30)
	Seed     int64 // RNG seed for deterministic level generation
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
	Won      bool // Whether the game ended with every level cleared
}

// LevelOutcome describes a finished level attempt.
type LevelOutcome struct {
	LevelID   string
	Moves     int // Moves the player made
	MovesLeft int // Moves remaining when the level ended (0 when unlimited)
	Score     int // Points awarded for this level
	Won       bool
}

// StepResult is returned by Game.Step() after each simulation tick.
// Outcomes lists levels that ended during this tick.
type StepResult struct {
	State    GameState
	Outcomes []LevelOutcome
}
