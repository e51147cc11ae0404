package surface_test

import (
	"bytes"
	"testing"

	"github.com/gdamore/tcell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/mister-walter/HackathonTrail/internal/surface"
)

func screenLines(scr tcell.SimulationScreen) []string {
	cells, width, height := scr.GetContents()
	var buf bytes.Buffer
	lines := make([]string, 0, height)
	for i := 0; i < len(cells); i++ {
		if i > 0 && i%width == 0 {
			lines = append(lines, buf.String())
			buf.Reset()
		}
		buf.Write(cells[i].Bytes)
	}
	return append(lines, buf.String())
}

func TestTerminal(t *testing.T) {
	scr := tcell.NewSimulationScreen("")
	term, err := Open(scr)
	require.NoError(t, err)
	defer term.Close()
	scr.SetSize(6, 3)

	cols, rows := term.Size()
	assert.Equal(t, 6, cols)
	assert.Equal(t, 3, rows)

	require.NoError(t, term.SetGlyph(1, 1, "x"))
	_, err = WriteString(term, 0, 2, "hey")
	require.NoError(t, err)
	assert.ErrorIs(t, term.SetGlyph(6, 0, "x"), ErrOutOfBounds)
	require.NoError(t, term.Flush())

	assert.Equal(t, []string{
		"      ",
		" x    ",
		"hey   ",
	}, screenLines(scr))

	scr.SetSize(3, 2)
	cols, rows = term.Size()
	assert.Equal(t, 3, cols, "size follows the screen")
	assert.Equal(t, 2, rows)
	assert.ErrorIs(t, term.SetGlyph(1, 2, "x"), ErrOutOfBounds)

	assert.NoError(t, term.Close())
	assert.NoError(t, term.Close(), "second close is a no-op")
}
