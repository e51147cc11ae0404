package screen

import (
	"fmt"

	"github.com/mister-walter/HackathonTrail/internal/input"
	"github.com/mister-walter/HackathonTrail/internal/world"
)

// Step applies one key press under the given status, returning the next
// status. The interrupt key sets quit under every status and changes nothing
// else. Keys a screen does not bind leave both status and world alone.
//
// In Tables, 's' stands up the first hacker; an empty world is an error.
func Step(status Status, key input.Key, st *world.GameState) (next Status, quit bool, err error) {
	if key.Code == input.KeyInterrupt {
		return status, true, nil
	}
	switch status {
	case Splash:
		if key.Is(' ') {
			return Planning, false, nil
		}
	case Planning:
		if key.Code == input.KeyEscape {
			return Tables, false, nil
		}
	case Tables:
		if key.Is('s') {
			h, err := st.First()
			if err != nil {
				return status, false, fmt.Errorf("unable to stand up: %w", err)
			}
			h.StandUp()
		}
	}
	return status, false, nil
}
