package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	Width    float64 // Drawable width in world units
	Height   float64 // Drawable height in world units
	TickRate int     // Target frames per second (default 60)
	Seed     int64   // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Width:    800,
		Height:   600,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Frame is everything a platform reports to a game once per rendered frame.
type Frame struct {
	Delta  float64 // Seconds since the previous frame
	Width  float64 // Current drawable width in world units
	Height float64 // Current drawable height in world units
	Input  InputFrame
}

// NewFrame builds a frame with an empty input snapshot.
func NewFrame(delta, width, height float64) Frame {
	return Frame{
		Delta:  delta,
		Width:  width,
		Height: height,
		Input:  NewInputFrame(),
	}
}

// GameState represents the current state of a game.
type GameState struct {
	Score    int           // Current score
	GameOver bool          // Whether the game has ended
	Paused   bool          // Whether the game is paused
	Frames   int           // Simulated frames since the last reset
	Elapsed  time.Duration // Simulated play time since the last reset
}

// StepResult is returned by a game after each frame.
type StepResult struct {
	State     GameState
	Lost      bool // The game transitioned to game over during this frame
	Restarted bool // The game was reset from game over during this frame
}
