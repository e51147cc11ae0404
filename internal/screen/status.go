// Package screen is the top-level state machine of the game: which screen is
// showing, how a key press changes it and the world, and how each screen is
// drawn.
package screen

// Status is the screen currently showing. The set is closed; there is no
// final status, the game ends by quitting from any of them.
type Status uint8

// Statuses, in the order a player normally visits them.
const (
	Splash Status = iota
	Planning
	Tables
)

func (s Status) String() string {
	switch s {
	case Splash:
		return "splash"
	case Planning:
		return "planning"
	case Tables:
		return "tables"
	}
	return "status?"
}
