// Package game runs the tick loop: poll input, step the screen state machine,
// render the current screen, flush, and wait for the next tick.
package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/mister-walter/HackathonTrail/internal/input"
	"github.com/mister-walter/HackathonTrail/internal/screen"
	"github.com/mister-walter/HackathonTrail/internal/surface"
	"github.com/mister-walter/HackathonTrail/internal/world"
)

// KeyPoller returns the next pending key, if any, without blocking.
type KeyPoller interface {
	Poll() (input.Key, bool, error)
}

// Game owns the world, the current screen, and the input and output it runs
// against. It is not safe for concurrent use; only the loop touches it.
type Game struct {
	State  world.GameState
	Status screen.Status

	keys KeyPoller
	surf surface.Surface
	cfg  Config

	now   func() time.Time
	sleep func(time.Duration)
}

// New returns a game showing the splash screen.
func New(keys KeyPoller, surf surface.Surface, st world.GameState, cfg Config) *Game {
	return &Game{
		State:  st,
		Status: screen.Splash,
		keys:   keys,
		surf:   surf,
		cfg:    cfg,
		now:    time.Now,
		sleep:  time.Sleep,
	}
}

// Run ticks until the interrupt key is pressed, returning nil, or until any
// tick fails, returning its error.
func (g *Game) Run() error {
	for {
		start := g.now()
		done, err := g.Tick()
		if err != nil {
			return err
		}
		if done {
			g.log("quit from %v with %v", g.Status, g.State.Clone())
			return nil
		}
		g.pause(start)
	}
}

// Tick runs a single poll, dispatch, render and flush. Input is applied before
// rendering, so a screen change shows in the same tick. Returns true, without
// rendering, once the interrupt key is seen.
func (g *Game) Tick() (done bool, err error) {
	key, have, err := g.keys.Poll()
	if err != nil {
		var de *input.DecodeError
		if !g.cfg.SkipDecodeErrors || !errors.As(err, &de) {
			return false, fmt.Errorf("unable to read input: %w", err)
		}
		g.log("skipping input: %v", err)
	}

	if have {
		next, quit, err := screen.Step(g.Status, key, &g.State)
		if err != nil {
			return false, fmt.Errorf("%v: %w", g.Status, err)
		}
		if quit {
			return true, nil
		}
		if next != g.Status {
			g.log("%v -> %v on %v", g.Status, next, key)
			g.Status = next
		} else {
			g.log("%v key %v", g.Status, key)
		}
	}

	if err := screen.Render(g.surf, g.Status, &g.State); err != nil {
		return false, fmt.Errorf("unable to render %v: %w", g.Status, err)
	}
	if err := g.surf.Flush(); err != nil {
		return false, fmt.Errorf("unable to flush: %w", err)
	}
	return false, nil
}

func (g *Game) pause(start time.Time) {
	d := g.cfg.Interval
	if g.cfg.Pacing == PaceCorrected {
		if d -= g.now().Sub(start); d <= 0 {
			return
		}
	}
	g.sleep(d)
}

func (g *Game) log(mess string, args ...interface{}) {
	if g.cfg.Logger != nil {
		g.cfg.Logger.Printf(mess, args...)
	}
}
