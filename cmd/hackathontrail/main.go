// Command hackathontrail sits a hacker at a table in your terminal.
//
// Press space to leave the splash screen, escape to leave planning, s to stand
// the hacker up, and ctrl-c to quit.
package main

import (
	"log"
	"os"

	"github.com/mister-walter/HackathonTrail/internal/game"
	"github.com/mister-walter/HackathonTrail/internal/input"
	"github.com/mister-walter/HackathonTrail/internal/logs"
	"github.com/mister-walter/HackathonTrail/internal/surface"
	"github.com/mister-walter/HackathonTrail/internal/world"
)

const logTail = 64

func main() {
	var tail logs.Logs
	tail.Init(logTail)
	if err := run(log.New(&tail, "", log.Ltime|log.Lmicroseconds)); err != nil {
		// the terminal is restored by now, so the tail is readable
		_, _ = tail.WriteTo(os.Stderr)
		log.Fatal(err)
	}
}

func run(logger *log.Logger) (rerr error) {
	term, err := surface.NewTerminal()
	if err != nil {
		return err
	}
	defer func() {
		if cerr := term.Close(); rerr == nil {
			rerr = cerr
		}
	}()

	st := world.NewGameState()
	hacker := world.NewHacker()
	hacker.Mood = world.Sad
	// the prototype's cursor addressing was 1-based
	hacker.Position = world.Position{Col: 4, Row: 4}
	st.Spawn(hacker)

	src := input.NewSource(term.Screen())
	defer src.Close()

	cfg := game.DefaultConfig()
	cfg.Logger = logger
	return game.New(src, term, st, cfg).Run()
}
