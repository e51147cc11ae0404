package input

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/gdamore/tcell"
)

// Code distinguishes the keys the game cares about.
type Code uint8

const (
	// KeyRune is a plain character key; Key.Ch holds it.
	KeyRune Code = iota
	// KeyEscape is the escape key.
	KeyEscape
	// KeyInterrupt is ctrl-c, the unconditional quit request.
	KeyInterrupt
	// KeyOther is any other key; Key.Name describes it.
	KeyOther
)

// Key is a decoded key press.
type Key struct {
	Code Code
	Ch   rune
	Name string
}

// Rune returns a plain character key.
func Rune(r rune) Key { return Key{Code: KeyRune, Ch: r} }

// Escape is the escape key.
var Escape = Key{Code: KeyEscape, Name: "Esc"}

// Interrupt is the ctrl-c key.
var Interrupt = Key{Code: KeyInterrupt, Name: "Ctrl+C"}

// Is returns true if k is the plain character r.
func (k Key) Is(r rune) bool {
	return k.Code == KeyRune && k.Ch == r
}

func (k Key) String() string {
	if k.Code == KeyRune {
		return fmt.Sprintf("%q", k.Ch)
	}
	return k.Name
}

// DecodeError is returned when an event from the terminal can not be
// understood as a key.
type DecodeError struct {
	Event tcell.Event
	// Err is the cause; for a tcell error event it is the event itself,
	// which does not unwrap any further.
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("undecodable input event %T: %v", e.Event, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

var errBadRune = errors.New("invalid rune")

// Decode converts a terminal event into a key. Events that are not key
// presses, like resizes, decode to no key and no error.
func Decode(ev tcell.Event) (Key, bool, error) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyCtrlC:
			return Interrupt, true, nil
		case tcell.KeyEscape:
			return Escape, true, nil
		case tcell.KeyRune:
			r := ev.Rune()
			if r == utf8.RuneError || !utf8.ValidRune(r) {
				return Key{}, false, &DecodeError{Event: ev, Err: errBadRune}
			}
			if ev.Modifiers()&(tcell.ModAlt|tcell.ModCtrl) != 0 {
				return Key{Code: KeyOther, Ch: r, Name: ev.Name()}, true, nil
			}
			return Rune(r), true, nil
		}
		return Key{Code: KeyOther, Name: ev.Name()}, true, nil

	case *tcell.EventError:
		return Key{}, false, &DecodeError{Event: ev, Err: ev}
	}
	return Key{}, false, nil
}
