package surface

import (
	"sync"

	"github.com/gdamore/tcell"
)

var _ Surface = (*Terminal)(nil)

// Terminal is a Surface over a tcell screen, which owns raw mode, escape
// sequences and differential flushing.
type Terminal struct {
	scr   tcell.Screen
	style tcell.Style
	once  sync.Once
}

// NewTerminal takes control of the process terminal, readying it for
// rendering by putting it in raw mode, clearing it, and hiding the cursor.
func NewTerminal() (*Terminal, error) {
	scr, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return Open(scr)
}

// Open readies an uninitialized screen for rendering; tests pass a
// simulation screen.
func Open(scr tcell.Screen) (*Terminal, error) {
	if err := scr.Init(); err != nil {
		return nil, err
	}
	term := &Terminal{
		scr:   scr,
		style: tcell.StyleDefault,
	}
	scr.SetStyle(term.style)
	scr.Clear()
	scr.HideCursor()
	return term, nil
}

// Screen returns the underlying screen, e.g. to poll its events.
func (term *Terminal) Screen() tcell.Screen {
	return term.scr
}

// Size returns the current terminal size.
func (term *Terminal) Size() (cols, rows int) {
	return term.scr.Size()
}

// SetGlyph writes a glyph into the back buffer; the first rune is the base
// character and any further runes combine with it.
func (term *Terminal) SetGlyph(col, row int, glyph string) error {
	if err := checkBounds(term, col, row); err != nil {
		return err
	}
	rs := []rune(glyph)
	if len(rs) == 0 {
		rs = []rune{' '}
	}
	term.scr.SetContent(col, row, rs[0], rs[1:], term.style)
	return nil
}

// Flush commits every pending cell write to the terminal.
func (term *Terminal) Flush() error {
	term.scr.Show()
	return nil
}

// Close resets styles, homes the cursor and restores the terminal's prior
// mode. Safe to call more than once.
func (term *Terminal) Close() error {
	term.once.Do(func() {
		term.scr.SetStyle(tcell.StyleDefault)
		term.scr.ShowCursor(0, 0)
		term.scr.Show()
		term.scr.Fini()
	})
	return nil
}
