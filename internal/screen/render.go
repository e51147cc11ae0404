package screen

import (
	"errors"
	"fmt"
	"image"

	"github.com/gdamore/tcell/views"

	"github.com/mister-walter/HackathonTrail/internal/surface"
	"github.com/mister-walter/HackathonTrail/internal/world"
)

var errBadStatus = errors.New("invalid screen status")

var splashLines = []string{
	"H A C K A T H O N   T R A I L",
	"",
	"Your team has a table, a deadline,",
	"and not nearly enough coffee.",
	"",
	"[space]   start planning",
	"[ctrl-c]  quit",
}

const planningLine = "Planning the day... [esc] to take a seat, [ctrl-c] to quit"

// textOrigin is where screen text is anchored.
var textOrigin = image.Pt(2, 1)

// Render draws the screen for status onto s. Nothing is cleared first: cells
// a prior screen drew and this one does not cover stay visible.
func Render(s surface.Surface, status Status, st *world.GameState) error {
	switch status {
	case Splash:
		return renderSplash(s)
	case Planning:
		return renderPlanning(s)
	case Tables:
		return renderTables(s, st)
	}
	return fmt.Errorf("%w: %d", errBadStatus, status)
}

func renderSplash(s surface.Surface) error {
	cols, rows := s.Size()
	w := 0
	for _, line := range splashLines {
		w = max(w, surface.GlyphWidth(line))
	}
	w = min(w, cols-textOrigin.X)
	h := min(len(splashLines), rows-textOrigin.Y)
	if w <= 0 || h <= 0 {
		return nil
	}

	v := &surface.View{Surface: s}
	banner := views.NewTextArea()
	banner.SetLines(splashLines)
	banner.SetView(views.NewViewPort(v, textOrigin.X, textOrigin.Y, w, h))
	banner.Draw()
	if v.Err != nil {
		return fmt.Errorf("unable to draw splash: %w", v.Err)
	}
	return nil
}

func renderPlanning(s surface.Surface) error {
	_, err := surface.WriteString(s, textOrigin.X, textOrigin.Y, planningLine)
	return err
}

func renderTables(s surface.Surface, st *world.GameState) error {
	for i := range st.Hackers {
		if err := DrawHacker(s, st.Hackers[i]); err != nil {
			return fmt.Errorf("unable to draw hacker #%d: %w", i, err)
		}
	}
	return nil
}

// DrawHacker draws a hacker's face at its position and its chair one row
// below.
func DrawHacker(s surface.Surface, h world.Hacker) error {
	col, row := int(h.Position.Col), int(h.Position.Row)
	if err := s.SetGlyph(col, row, h.Face()); err != nil {
		return err
	}
	return s.SetGlyph(col, row+1, h.Chair())
}
