package input_test

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell"
	"github.com/stretchr/testify/assert"

	. "github.com/mister-walter/HackathonTrail/internal/input"
)

func TestDecode(t *testing.T) {
	for _, tc := range []struct {
		name string
		ev   tcell.Event
		key  Key
		have bool
	}{
		{
			name: "space",
			ev:   tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone),
			key:  Rune(' '),
			have: true,
		},
		{
			name: "s",
			ev:   tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone),
			key:  Rune('s'),
			have: true,
		},
		{
			name: "escape",
			ev:   tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
			key:  Escape,
			have: true,
		},
		{
			name: "ctrl-c",
			ev:   tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl),
			key:  Interrupt,
			have: true,
		},
		{
			name: "resize",
			ev:   tcell.NewEventResize(80, 24),
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			key, have, err := Decode(tc.ev)
			assert.NoError(t, err)
			assert.Equal(t, tc.have, have)
			assert.Equal(t, tc.key, key)
		})
	}
}

func TestDecode_other(t *testing.T) {
	key, have, err := Decode(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	assert.NoError(t, err)
	assert.True(t, have)
	assert.Equal(t, KeyOther, key.Code)
	assert.False(t, key.Is(' '))

	key, have, err = Decode(tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModAlt))
	assert.NoError(t, err)
	assert.True(t, have)
	assert.False(t, key.Is('s'), "alt-s is not s")
}

func TestDecode_failure(t *testing.T) {
	ev := tcell.NewEventError(errors.New("boom"))
	_, have, err := Decode(ev)
	assert.False(t, have)
	var de *DecodeError
	if assert.ErrorAs(t, err, &de) {
		assert.Equal(t, ev, de.Event)
		assert.ErrorIs(t, err, ev, "the error event is the cause")
		assert.Contains(t, err.Error(), "boom")
	}

	_, have, err = Decode(tcell.NewEventKey(tcell.KeyRune, 0xFFFD, tcell.ModNone))
	assert.False(t, have)
	assert.ErrorAs(t, err, &de)
}
