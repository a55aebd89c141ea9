package game

import (
	"fmt"
	"strings"
)

// Grid is the playfield. Row 0 is the floor; rows at or above
// GridVisibleRows form the hidden buffer.
type Grid struct {
	cells [GridRows][GridColumns]PieceKind
}

// Widths returns the number of occupied cells in every row.
func (g *Grid) Widths() [GridRows]int {
	var widths [GridRows]int
	for row := range g.cells {
		for _, kind := range g.cells[row] {
			if kind != None {
				widths[row]++
			}
		}
	}
	return widths
}

// Heights returns, for every column, one past the highest occupied row
// strictly below belowRow, or 0 when nothing is there.
func (g *Grid) Heights(belowRow int) [GridColumns]int {
	var heights [GridColumns]int
	start := min(belowRow, GridRows) - 1
	for col := range heights {
		for row := start; row >= 0; row-- {
			if g.cells[row][col] != None {
				heights[col] = row + 1
				break
			}
		}
	}
	return heights
}

// IsWithinBounds reports whether (x, y) is a cell of the grid.
func IsWithinBounds(x, y int) bool {
	return 0 <= x && x < GridColumns && 0 <= y && y < GridRows
}

// IsRectInside reports whether the inclusive rectangle lies entirely on the grid.
func IsRectInside(xmin, xmax, ymin, ymax int) bool {
	return 0 <= xmin && xmax < GridColumns && 0 <= ymin && ymax < GridRows
}

// SetCell writes kind at (x, y). Out-of-bounds writes are ignored.
func (g *Grid) SetCell(x, y int, kind PieceKind) {
	if IsWithinBounds(x, y) {
		g.cells[y][x] = kind
	}
}

// Cell returns the content of (x, y). The coordinate must be on the grid.
func (g *Grid) Cell(x, y int) PieceKind {
	if !IsWithinBounds(x, y) {
		panic(fmt.Sprintf("(%d, %d) is not on the grid", x, y))
	}
	return g.cells[y][x]
}

// IsEmpty reports whether (x, y) is on the grid and unoccupied.
func (g *Grid) IsEmpty(x, y int) bool {
	return IsWithinBounds(x, y) && g.cells[y][x] == None
}

// ClearRow empties every cell of row.
func (g *Grid) ClearRow(row int) {
	if row < 0 || row >= GridRows {
		panic(fmt.Sprintf("row %d out of bounds", row))
	}
	g.cells[row] = [GridColumns]PieceKind{}
}

// Overlaps reports whether any cell of the piece is already occupied.
// Cells off the grid are not occupied.
func (g *Grid) Overlaps(p *Piece) bool {
	for _, c := range p.Cells() {
		if IsWithinBounds(c.X, c.Y) && g.cells[c.Y][c.X] != None {
			return true
		}
	}
	return false
}

// Occupied returns the number of non-empty cells.
func (g *Grid) Occupied() int {
	n := 0
	for _, w := range g.Widths() {
		n += w
	}
	return n
}

// String renders the grid top row first, one line per row.
func (g *Grid) String() string {
	var sb strings.Builder
	for row := GridRows - 1; row >= 0; row-- {
		for _, kind := range g.cells[row] {
			sb.WriteString(kind.String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
