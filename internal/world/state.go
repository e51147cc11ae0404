// Package world holds the plain data of the simulation: the hackers and the
// global counters around them.
//
// Nothing here has behavior beyond trivial accessors; the screen package
// decides when state changes.
package world

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoHackers is returned when an action needs the first hacker but none was
// ever spawned.
var ErrNoHackers = errors.New("no hackers in the world")

// Weather is the sky over the hackathon; reserved, nothing changes it yet.
type Weather uint8

// Weathers.
const (
	Clear Weather = iota
	Rain
	Snow
	Hail
)

func (w Weather) String() string {
	switch w {
	case Clear:
		return "clear"
	case Rain:
		return "rain"
	case Snow:
		return "snow"
	case Hail:
		return "hail"
	}
	return "weather?"
}

// GameState is the whole simulated world.
//
// Hackers are kept in spawn order, which is also the order they are drawn in;
// later hackers overdraw earlier ones where they overlap.
type GameState struct {
	Hackers []Hacker
	Time    uint32
	Money   uint32
	Weather Weather
}

// NewGameState returns an empty world under clear skies.
func NewGameState() GameState {
	return GameState{Weather: Clear}
}

// Spawn appends a hacker to the world, returning its index.
func (st *GameState) Spawn(h Hacker) int {
	st.Hackers = append(st.Hackers, h)
	return len(st.Hackers) - 1
}

// First returns the first spawned hacker, or ErrNoHackers.
func (st *GameState) First() (*Hacker, error) {
	if len(st.Hackers) == 0 {
		return nil, ErrNoHackers
	}
	return &st.Hackers[0], nil
}

// Clone returns a deep copy that shares no memory with st.
func (st GameState) Clone() GameState {
	if st.Hackers != nil {
		st.Hackers = append([]Hacker(nil), st.Hackers...)
	}
	return st
}

func (st GameState) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "time=%d money=%d weather=%v hackers=[", st.Time, st.Money, st.Weather)
	for i, h := range st.Hackers {
		if i > 0 {
			sb.WriteString(" ")
		}
		fmt.Fprintf(&sb, "%v/%v@%d,%d", h.Mood, h.Sit, h.Position.Col, h.Position.Row)
	}
	sb.WriteString("]")
	return sb.String()
}
