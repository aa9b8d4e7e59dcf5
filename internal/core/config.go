package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// ScreenSize returns the viewport size in world units.
func (c RuntimeConfig) ScreenSize() Vec2 {
	return Vec2{X: float64(c.ScreenW), Y: float64(c.ScreenH)}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Kills    int  // Enemies killed this run
	Ticks    int  // Simulation ticks survived
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and the events of this tick.
type StepResult struct {
	State GameState

	// Kills is the number of enemies killed during this tick.
	Kills int

	// Spawned is the number of enemies spawned during this tick.
	Spawned int
}
