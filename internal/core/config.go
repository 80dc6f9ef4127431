package core

import "time"

const (
	defaultScreenW  = 80
	defaultScreenH  = 24
	defaultTickRate = 60
)

// RuntimeConfig is what the platform hands a game on Reset: the terminal
// size, the fixed simulation rate and the run's seed.
type RuntimeConfig struct {
	ScreenW  int
	ScreenH  int
	TickRate int   // ticks per second
	Seed     int64 // 0 lets the platform pick one from the clock
}

// Normalized fills unset or nonsensical fields with the defaults.
// Seed is left alone.
func (c RuntimeConfig) Normalized() RuntimeConfig {
	if c.ScreenW <= 0 {
		c.ScreenW = defaultScreenW
	}
	if c.ScreenH <= 0 {
		c.ScreenH = defaultScreenH
	}
	if c.TickRate <= 0 {
		c.TickRate = defaultTickRate
	}
	return c
}

// TickSeconds is the simulated time covered by one Step.
func (c RuntimeConfig) TickSeconds() float64 {
	return 1 / float64(c.Normalized().TickRate)
}

// TickInterval is the wall-clock spacing between Steps.
func (c RuntimeConfig) TickInterval() time.Duration {
	return time.Second / time.Duration(c.Normalized().TickRate)
}

// GameState is the slice of game status the platform acts on.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool
	Reason   string // why the run ended; empty while running
}

// StepResult is everything one Step produced.
type StepResult struct {
	State   GameState
	Events  []Event
	Readout Readout
}
