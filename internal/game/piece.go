package game

import (
	"fmt"
	"strings"
)

// Piece is the falling tetromino. Position is the grid coordinate of the
// shape's local origin; the four orientations are computed once at spawn.
type Piece struct {
	Kind     PieceKind
	Rotation Rotation
	Shape    Shape
	Position Point

	rotations [4]PieceMap
}

// NewPiece spawns a piece of the given kind, horizontally centered with the
// top of its shape on the top row of the buffer.
func NewPiece(kind PieceKind) Piece {
	m := MapOf(kind)
	shape := NewShape(m)
	return Piece{
		Kind:     kind,
		Rotation: Rot0,
		Shape:    shape,
		Position: Point{
			X: GridColumns/2 - shape.Width/2 - m.XMin(),
			Y: GridRows - shape.Height - m.YMin(),
		},
		rotations: m.Rotations(PivotOf(kind)),
	}
}

// Translate moves the piece one cell. It does not validate the result.
func (p *Piece) Translate(dir Direction) {
	p.Position = p.Position.Add(dir.Delta())
}

// AdvanceRotation turns the piece by delta and swaps in the cached
// orientation. It does not validate the result.
func (p *Piece) AdvanceRotation(delta Rotation) {
	p.Rotation = p.Rotation.Add(delta)
	p.Shape = NewShape(p.rotations[p.Rotation])
}

// RotateClockwise turns the piece a quarter turn clockwise without validation.
func (p *Piece) RotateClockwise() {
	p.AdvanceRotation(Rot90)
}

// RotateCounterClockwise turns the piece a quarter turn counter-clockwise without validation.
func (p *Piece) RotateCounterClockwise() {
	p.AdvanceRotation(Rot270)
}

// Rotate180 turns the piece half a turn without validation.
func (p *Piece) Rotate180() {
	p.AdvanceRotation(Rot180)
}

// MapAt returns the cached orientation for rot.
func (p Piece) MapAt(rot Rotation) PieceMap {
	return p.rotations[rot]
}

// Cells returns the absolute grid cells of the current orientation.
func (p Piece) Cells() [4]Point {
	return p.CellsAt(p.Rotation, Point{})
}

// CellsAt returns the absolute cells the piece would cover in orientation
// rot, shifted by offset from its current position.
func (p Piece) CellsAt(rot Rotation, offset Point) [4]Point {
	origin := p.Position.Add(offset)
	var cells [4]Point
	for i, c := range p.rotations[rot] {
		cells[i] = origin.Add(c)
	}
	return cells
}

func (p Piece) XMin() int { return p.Position.X + p.Shape.Map.XMin() }
func (p Piece) XMax() int { return p.Position.X + p.Shape.Map.XMax() }
func (p Piece) YMin() int { return p.Position.Y + p.Shape.Map.YMin() }
func (p Piece) YMax() int { return p.Position.Y + p.Shape.Map.YMax() }

// Rect returns the absolute extents as (xmin, xmax, ymin, ymax).
func (p Piece) Rect() (int, int, int, int) {
	return p.XMin(), p.XMax(), p.YMin(), p.YMax()
}

// String draws the current orientation with '#', top row first.
func (p Piece) String() string {
	m := p.Shape.Map
	var rows []string
	for y := m.YMax(); y >= m.YMin(); y-- {
		var sb strings.Builder
		for x := m.XMin(); x <= m.XMax(); x++ {
			if m.Contains(Point{X: x, Y: y}) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte(' ')
			}
		}
		rows = append(rows, sb.String())
	}
	return fmt.Sprintf("%v@%v\n%s", p.Kind, p.Rotation, strings.Join(rows, "\n"))
}
