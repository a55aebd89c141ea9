package game

import "fmt"

// PieceMap holds the four cell offsets of a shape relative to its local origin.
type PieceMap [4]Point

// Pivot is the fixed rotation center of a shape, in local coordinates.
type Pivot struct {
	X, Y float64
}

// Canonical spawn orientation of every kind.
var pieceMaps = map[PieceKind]PieceMap{
	I: {{0, 2}, {1, 2}, {2, 2}, {3, 2}},
	J: {{0, 2}, {0, 1}, {1, 1}, {2, 1}},
	L: {{2, 2}, {0, 1}, {1, 1}, {2, 1}},
	O: {{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	S: {{0, 1}, {1, 1}, {1, 2}, {2, 2}},
	T: {{1, 2}, {0, 1}, {1, 1}, {2, 1}},
	Z: {{0, 2}, {1, 2}, {1, 1}, {2, 1}},
}

// PivotOf returns the rotation center used for kind.
func PivotOf(kind PieceKind) Pivot {
	switch kind {
	case O:
		return Pivot{X: 0.5, Y: 0.5}
	case I:
		return Pivot{X: 1.5, Y: 1.5}
	case J, L, S, T, Z:
		return Pivot{X: 1, Y: 1}
	}
	panic(fmt.Sprintf("no pivot for piece kind %v", kind))
}

// MapOf returns the spawn orientation of kind.
func MapOf(kind PieceKind) PieceMap {
	m, ok := pieceMaps[kind]
	if !ok {
		panic(fmt.Sprintf("invalid piece kind: %v", kind))
	}
	return m
}

func (m PieceMap) XMin() int {
	v := m[0].X
	for _, p := range m[1:] {
		v = min(v, p.X)
	}
	return v
}

func (m PieceMap) XMax() int {
	v := m[0].X
	for _, p := range m[1:] {
		v = max(v, p.X)
	}
	return v
}

func (m PieceMap) YMin() int {
	v := m[0].Y
	for _, p := range m[1:] {
		v = min(v, p.Y)
	}
	return v
}

func (m PieceMap) YMax() int {
	v := m[0].Y
	for _, p := range m[1:] {
		v = max(v, p.Y)
	}
	return v
}

// Width is the inclusive horizontal span of the map.
func (m PieceMap) Width() int {
	return m.XMax() - m.XMin() + 1
}

// Height is the inclusive vertical span of the map.
func (m PieceMap) Height() int {
	return m.YMax() - m.YMin() + 1
}

// Skirt returns, for every column from XMin to XMax, the lowest y offset
// occupied in that column. Tetromino columns are never empty.
func (m PieceMap) Skirt() []int {
	xmin := m.XMin()
	skirt := make([]int, m.Width())
	seen := make([]bool, len(skirt))
	for _, p := range m {
		col := p.X - xmin
		if !seen[col] || p.Y < skirt[col] {
			skirt[col] = p.Y
			seen[col] = true
		}
	}
	for col, ok := range seen {
		if !ok {
			panic(fmt.Sprintf("piece map %v has an empty column %d", m, col+xmin))
		}
	}
	return skirt
}

// Contains reports whether the offset is one of the map's cells.
func (m PieceMap) Contains(p Point) bool {
	for _, c := range m {
		if c == p {
			return true
		}
	}
	return false
}

// Rotate returns the map turned 90° clockwise about pivot.
func (m PieceMap) Rotate(pivot Pivot) PieceMap {
	var out PieceMap
	for i, p := range m {
		x := float64(p.X) - pivot.X
		y := float64(p.Y) - pivot.Y
		x, y = y, -x
		out[i] = Point{X: int(x + pivot.X), Y: int(y + pivot.Y)}
	}
	return out
}

// Rotations returns the four orientations of m, indexed by Rotation.
func (m PieceMap) Rotations(pivot Pivot) [4]PieceMap {
	var rotated [4]PieceMap
	rotated[Rot0] = m
	for i := 1; i < len(rotated); i++ {
		rotated[i] = rotated[i-1].Rotate(pivot)
	}
	return rotated
}

// Shape is a piece map together with its derived geometry.
type Shape struct {
	Map    PieceMap
	Width  int
	Height int
	Skirt  []int
}

// NewShape computes the geometry of m.
func NewShape(m PieceMap) Shape {
	return Shape{
		Map:    m,
		Width:  m.Width(),
		Height: m.Height(),
		Skirt:  m.Skirt(),
	}
}
