package game

import (
	"log"
	"time"
)

// Pacing selects how the loop waits between ticks.
type Pacing uint8

const (
	// PaceFixed sleeps a full interval after every tick, letting tick work
	// accumulate as drift.
	PaceFixed Pacing = iota
	// PaceCorrected sleeps only what remains of the interval after the tick's
	// own work.
	PaceCorrected
)

// Config holds the loop's tunables.
type Config struct {
	// Interval is the tick period.
	Interval time.Duration
	Pacing   Pacing

	// SkipDecodeErrors logs and drops undecodable input instead of ending the
	// game.
	SkipDecodeErrors bool

	// Logger, if not nil, receives transitions and skipped input.
	Logger *log.Logger
}

// DefaultConfig returns a fixed 100ms cadence that treats bad input as fatal.
func DefaultConfig() Config {
	return Config{
		Interval: 100 * time.Millisecond,
		Pacing:   PaceFixed,
	}
}
