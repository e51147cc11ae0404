package surface

import "strings"

// Grid is an in-memory Surface; every cell holds one glyph regardless of its
// display width.
type Grid struct {
	Cols, Rows int
	Data       []string

	// Flushes counts calls to Flush.
	Flushes int
}

// NewGrid makes a new Grid with the given size.
func NewGrid(cols, rows int) *Grid {
	g := &Grid{}
	g.Resize(cols, rows)
	return g
}

// Resize updates the grid size, growing Data capacity or truncating its length
// as needed. Cell contents are not preserved in place.
func (g *Grid) Resize(cols, rows int) {
	g.Cols, g.Rows = cols, rows
	if n := cols * rows; n > cap(g.Data) {
		g.Data = make([]string, n)
	} else {
		g.Data = g.Data[:n]
	}
}

// Size returns the grid dimensions.
func (g *Grid) Size() (cols, rows int) {
	return g.Cols, g.Rows
}

// SetGlyph sets a cell in the grid.
func (g *Grid) SetGlyph(col, row int, glyph string) error {
	if err := checkBounds(g, col, row); err != nil {
		return err
	}
	g.Data[row*g.Cols+col] = glyph
	return nil
}

// At returns the glyph in a cell; empty if never set.
func (g *Grid) At(col, row int) string {
	return g.Data[row*g.Cols+col]
}

// Flush only counts frames; the grid is its own display.
func (g *Grid) Flush() error {
	g.Flushes++
	return nil
}

// Lines returns a slice of row strings from the grid, filling in any empty
// cells with the given string.
func (g *Grid) Lines(fill string) []string {
	lines := make([]string, g.Rows)
	var sb strings.Builder
	for y, i := 0, 0; y < g.Rows; y++ {
		sb.Reset()
		for x := 0; x < g.Cols; x++ {
			if s := g.Data[i]; s != "" {
				sb.WriteString(s)
			} else {
				sb.WriteString(fill)
			}
			i++
		}
		lines[y] = sb.String()
	}
	return lines
}
