package surface

import (
	"github.com/gdamore/tcell"
	"github.com/gdamore/tcell/views"
)

var _ views.View = (*View)(nil)

// View adapts a Surface to the tcell views.View interface so that stock
// widgets can draw onto it. Styles are dropped: a surface only holds glyphs.
//
// Widgets can not report errors, so the first SetGlyph failure is kept in Err.
type View struct {
	Surface
	Err error
}

// SetContent sets a single cell.
func (v *View) SetContent(x, y int, ch rune, comb []rune, _ tcell.Style) {
	glyph := string(ch)
	if len(comb) > 0 {
		glyph += string(comb)
	}
	if err := v.Surface.SetGlyph(x, y, glyph); err != nil && v.Err == nil {
		v.Err = err
	}
}

// Resize is a no-op; a surface's size is dictated by its display.
func (v *View) Resize(x, y, width, height int) {}

// Fill sets every cell to ch.
func (v *View) Fill(ch rune, style tcell.Style) {
	cols, rows := v.Size()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			v.SetContent(x, y, ch, nil, style)
		}
	}
}

// Clear fills the surface with spaces.
func (v *View) Clear() {
	v.Fill(' ', tcell.StyleDefault)
}
