// Package surface provides addressable character grids that the game draws
// into once per tick: a tcell backed terminal, and an in-memory grid.
//
// A glyph is one printable grapheme; it may be several runes (e.g. an emoji
// plus variation selector) and may be wider than one column on a real
// terminal.
package surface

import (
	"errors"
	"fmt"
	"unicode"

	runewidth "github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// ErrOutOfBounds is returned when a cell outside the surface is addressed.
var ErrOutOfBounds = errors.New("cell out of bounds")

// Surface is a grid of glyph cells that is committed to its display by Flush.
//
// Size may change between frames (e.g. a terminal resize), so callers query
// it every frame.
type Surface interface {
	Size() (cols, rows int)
	SetGlyph(col, row int, glyph string) error
	Flush() error
}

func checkBounds(s Surface, col, row int) error {
	cols, rows := s.Size()
	if col < 0 || row < 0 || col >= cols || row >= rows {
		return fmt.Errorf("%w: %d,%d not within %dx%d", ErrOutOfBounds, col, row, cols, rows)
	}
	return nil
}

// WriteString writes text into a single row of s starting at col, one glyph
// per cell. Text is split into grapheme clusters, so combining marks and
// variation selectors stay with their base character; wide glyphs consume two
// columns. Text is clipped at the surface edge. Returns the number of columns
// advanced.
func WriteString(s Surface, col, row int, text string) (int, error) {
	cols, rows := s.Size()
	if row < 0 || row >= rows {
		return 0, nil
	}
	start := col
	for gr := uniseg.NewGraphemes(text); col < cols && gr.Next(); {
		if col >= 0 {
			if err := s.SetGlyph(col, row, gr.Str()); err != nil {
				return col - start, err
			}
		}
		col += clusterWidth(gr.Runes())
	}
	return col - start, nil
}

// GlyphWidth returns how many columns text occupies on a terminal.
func GlyphWidth(text string) int {
	w := 0
	for gr := uniseg.NewGraphemes(text); gr.Next(); {
		w += clusterWidth(gr.Runes())
	}
	return w
}

// clusterWidth is the width of a cluster's base rune; marks and variation
// selectors never add columns.
func clusterWidth(rs []rune) int {
	for _, r := range rs {
		if unicode.Is(unicode.Variation_Selector, r) || unicode.In(r, unicode.Mn, unicode.Me) {
			continue
		}
		if w := runewidth.RuneWidth(r); w > 0 {
			return w
		}
		break
	}
	return 1
}
