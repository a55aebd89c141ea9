package game

import (
	"fmt"
	"time"
)

// Playfield dimensions. Rows above GridVisibleRows form the hidden buffer.
const (
	GridColumns     = 10
	GridRows        = 24
	GridVisibleRows = 20
)

// PieceKind identifies a tetromino. Grid cells store it directly; None marks
// an unoccupied cell.
type PieceKind uint8

const (
	None PieceKind = iota
	I
	J
	L
	O
	S
	T
	Z
)

// Kinds lists every real piece kind in canonical order.
var Kinds = [...]PieceKind{I, J, L, O, S, T, Z}

// BagSize is the number of kinds in one bag.
const BagSize = len(Kinds)

func (k PieceKind) String() string {
	switch k {
	case I:
		return "I"
	case J:
		return "J"
	case L:
		return "L"
	case O:
		return "O"
	case S:
		return "S"
	case T:
		return "T"
	case Z:
		return "Z"
	default:
		return "."
	}
}

// Rotation is one of four clockwise orientations. Arithmetic wraps modulo 4.
type Rotation uint8

const (
	Rot0 Rotation = iota
	Rot90
	Rot180
	Rot270
)

// RotationOf maps any integer number of quarter turns onto a Rotation.
func RotationOf(quarterTurns int) Rotation {
	return Rotation(((quarterTurns % 4) + 4) % 4)
}

// Add returns r rotated further clockwise by delta.
func (r Rotation) Add(delta Rotation) Rotation {
	return RotationOf(int(r) + int(delta))
}

// Sub returns r rotated counter-clockwise by delta.
func (r Rotation) Sub(delta Rotation) Rotation {
	return RotationOf(int(r) - int(delta))
}

// Degrees returns the rotation angle.
func (r Rotation) Degrees() int {
	return int(r) * 90
}

func (r Rotation) String() string {
	return fmt.Sprintf("%d°", r.Degrees())
}

// Direction represents a one-cell translation of the active piece.
type Direction uint8

const (
	DirDown Direction = iota
	DirLeft
	DirRight
)

// Delta returns the unit offset of the direction. Y grows upwards.
func (d Direction) Delta() Point {
	switch d {
	case DirDown:
		return Point{X: 0, Y: -1}
	case DirLeft:
		return Point{X: -1, Y: 0}
	case DirRight:
		return Point{X: 1, Y: 0}
	}
	panic(fmt.Sprintf("invalid direction %d", d))
}

// Button is a semantic input produced by the host's key mapping.
type Button uint8

const (
	MoveDown Button = iota
	MoveLeft
	MoveRight
	RotateClockwise
	Drop
	Quit
)

func (b Button) String() string {
	switch b {
	case MoveDown:
		return "MoveDown"
	case MoveLeft:
		return "MoveLeft"
	case MoveRight:
		return "MoveRight"
	case RotateClockwise:
		return "RotateClockwise"
	case Drop:
		return "Drop"
	case Quit:
		return "Quit"
	}
	return fmt.Sprintf("Button(%d)", b)
}

// Point is a cell offset or an absolute grid coordinate.
type Point struct {
	X int
	Y int
}

// Add returns the component-wise sum.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// GameConfig holds the host-side timing parameters of a session.
// The rules core itself is tick-agnostic.
type GameConfig struct {
	GravityInterval time.Duration
	FrameInterval   time.Duration
	Seed            uint64
	PreviewCount    int // Kinds shown in the next panel
}

// DefaultConfig returns a sensible default game configuration.
func DefaultConfig() GameConfig {
	return GameConfig{
		GravityInterval: time.Second,
		FrameInterval:   17 * time.Millisecond,
		Seed:            1,
		PreviewCount:    3,
	}
}
