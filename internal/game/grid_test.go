package game

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func fullGrid() Grid {
	var g Grid
	for y := 0; y < GridRows; y++ {
		for x := 0; x < GridColumns; x++ {
			g.SetCell(x, y, Kinds[(x+y)%len(Kinds)])
		}
	}
	return g
}

// fillRow occupies every cell of row except the listed columns.
func fillRow(g *Grid, row int, holes ...int) {
	for x := 0; x < GridColumns; x++ {
		g.SetCell(x, row, J)
	}
	for _, x := range holes {
		g.SetCell(x, row, None)
	}
}

func TestWidths(t *testing.T) {
	var empty Grid
	if diff := cmp.Diff([GridRows]int{}, empty.Widths()); diff != "" {
		t.Errorf("empty grid widths (-want +got):\n%s", diff)
	}

	full := fullGrid()
	for row, w := range full.Widths() {
		if w != GridColumns {
			t.Errorf("row %d: expected width %d, got %d", row, GridColumns, w)
		}
	}
}

func TestIsWithinBounds(t *testing.T) {
	outside := [][2]int{
		{-1, 0}, {GridColumns, 0}, {0, -1}, {0, GridRows},
		{-1, -1}, {GridColumns, GridRows},
	}
	for _, c := range outside {
		if IsWithinBounds(c[0], c[1]) {
			t.Errorf("(%d,%d) should be out of bounds", c[0], c[1])
		}
	}
	for y := 0; y < GridRows; y++ {
		for x := 0; x < GridColumns; x++ {
			if !IsWithinBounds(x, y) {
				t.Errorf("(%d,%d) should be in bounds", x, y)
			}
		}
	}
}

func TestIsRectInside(t *testing.T) {
	assert.True(t, IsRectInside(0, GridColumns-1, 0, GridRows-1))
	assert.False(t, IsRectInside(-1, 3, 0, 1))
	assert.False(t, IsRectInside(0, GridColumns, 0, 1))
	assert.False(t, IsRectInside(0, 3, -1, 1))
	assert.False(t, IsRectInside(0, 3, 0, GridRows))
}

func TestClearEveryRow(t *testing.T) {
	g := fullGrid()
	for row := 0; row < GridRows; row++ {
		g.ClearRow(row)
	}
	assert.Equal(t, [GridRows]int{}, g.Widths())
	assert.Equal(t, [GridColumns]int{}, g.Heights(GridRows))
	assert.Equal(t, 0, g.Occupied())
}

func TestHeights(t *testing.T) {
	var g Grid
	g.SetCell(3, 5, T)
	g.SetCell(3, 10, T)
	g.SetCell(0, 0, T)

	tests := []struct {
		below int
		col   int
		want  int
	}{
		{GridRows, 3, 11},
		{100, 3, 11},
		{10, 3, 6},
		{6, 3, 6},
		{5, 3, 0},
		{GridRows, 0, 1},
		{0, 0, 0},
		{-3, 0, 0},
		{GridRows, 9, 0},
	}
	for _, tt := range tests {
		if got := g.Heights(tt.below)[tt.col]; got != tt.want {
			t.Errorf("Heights(%d)[%d]: expected %d, got %d", tt.below, tt.col, tt.want, got)
		}
	}
}

func TestSetCellOutOfBoundsIsIgnored(t *testing.T) {
	var g Grid
	assert.NotPanics(t, func() {
		g.SetCell(-1, 0, I)
		g.SetCell(GridColumns, 0, I)
		g.SetCell(0, GridRows, I)
		g.SetCell(0, -1, I)
	})
	assert.Equal(t, 0, g.Occupied())
}

func TestCellContract(t *testing.T) {
	var g Grid
	g.SetCell(9, 23, Z)
	assert.Equal(t, Z, g.Cell(9, 23))
	assert.Equal(t, None, g.Cell(0, 0))

	assert.Panics(t, func() { g.Cell(GridColumns, 0) })
	assert.Panics(t, func() { g.Cell(0, GridRows) })
	assert.Panics(t, func() { g.ClearRow(-1) })
	assert.Panics(t, func() { g.ClearRow(GridRows) })
}

func TestOverlaps(t *testing.T) {
	var g Grid
	p := NewPiece(T)
	assert.False(t, g.Overlaps(&p))

	c := p.Cells()[2]
	g.SetCell(c.X, c.Y, S)
	assert.True(t, g.Overlaps(&p))

	p.Translate(DirLeft)
	p.Translate(DirLeft)
	p.Translate(DirLeft)
	assert.False(t, g.Overlaps(&p))
}

func TestGridString(t *testing.T) {
	var g Grid
	g.SetCell(0, 0, L)
	lines := strings.Split(strings.TrimSuffix(g.String(), "\n"), "\n")
	if len(lines) != GridRows {
		t.Fatalf("expected %d lines, got %d", GridRows, len(lines))
	}
	assert.Equal(t, "..........", lines[0])
	assert.Equal(t, "L.........", lines[GridRows-1])
}
