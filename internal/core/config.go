package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Redraw ticks per second (default 10)
	Seed     int64 // RNG seed for deterministic boards
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 10,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int           // Cells opened so far
	GameOver bool          // Whether the game has ended
	Won      bool          // Whether it ended in a win
	Started  bool          // Whether the board has been generated
	Elapsed  time.Duration // Time since the first reveal, frozen at game end
}

// StepResult is returned by Game.Step() after each input frame.
// Contains the updated game state and whether the frame changed anything.
type StepResult struct {
	State   GameState
	Changed bool
}
