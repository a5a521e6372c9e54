package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic scrambles.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 30)
	Seed     int64 // RNG seed for deterministic scrambles
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

// GameState represents the current state of a puzzle session.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Moves   int  // Moves made on the current puzzle
	Cleared bool // Whether every light is off
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
