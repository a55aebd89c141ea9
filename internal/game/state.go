package game

import (
	"math/rand/v2"
	"slices"
	"strings"
)

// GameState is the root aggregate of one game. It owns the grid and the
// active piece and is their only mutator. It is not safe for concurrent use;
// the Engine serializes access when driving it from several goroutines.
type GameState struct {
	grid     Grid
	piece    Piece
	bag      *Bag
	gameOver bool
	lines    int
}

// NewGameState starts a game with an empty grid and the first piece drawn
// from a bag seeded by src.
func NewGameState(src rand.Source) *GameState {
	bag := NewBag(src)
	return &GameState{
		piece: NewPiece(bag.Draw()),
		bag:   bag,
	}
}

// GameOver reports whether the game has ended.
func (s *GameState) GameOver() bool {
	return s.gameOver
}

// Grid returns a copy of the playfield.
func (s *GameState) Grid() Grid {
	return s.grid
}

// Piece returns a copy of the active piece. The copy shares no memory with
// the state.
func (s *GameState) Piece() Piece {
	p := s.piece
	p.Shape.Skirt = slices.Clone(p.Shape.Skirt)
	return p
}

// LinesCleared returns the total number of rows cleared so far.
func (s *GameState) LinesCleared() int {
	return s.lines
}

// Preview returns the next n kinds the bag will deal.
func (s *GameState) Preview(n int) []PieceKind {
	return s.bag.Preview(n)
}

// GhostCells returns the cells the active piece would occupy if hard-dropped now.
func (s *GameState) GhostCells() [4]Point {
	return s.piece.CellsAt(s.piece.Rotation, Point{Y: -s.DistanceToDrop()})
}

// ApplyGravity is the gravity tick: it moves the piece down one row, or locks
// it when it already rests on the floor or the stack.
func (s *GameState) ApplyGravity() {
	if s.gameOver {
		return
	}
	if s.DistanceToDrop() == 0 {
		s.LockPiece()
		return
	}
	s.piece.Translate(DirDown)
}

// DistanceToDrop returns how many rows the active piece can fall. Each
// on-grid column of the shape is measured from its skirt to the terrain
// below it; the column that meets terrain first decides.
func (s *GameState) DistanceToDrop() int {
	xmin := s.piece.Shape.Map.XMin()
	dist, found := 0, false
	for col, skirt := range s.piece.Shape.Skirt {
		x := s.piece.Position.X + xmin + col
		if x < 0 || x >= GridColumns {
			continue
		}
		bottom := s.piece.Position.Y + skirt
		d := bottom - s.grid.Heights(bottom)[x]
		if !found || d < dist {
			dist, found = d, true
		}
	}
	return dist
}

// LockPiece freezes the active piece into the grid and spawns the next one.
// A piece locked entirely inside the buffer, or a new piece that spawns on
// top of terrain, ends the game.
func (s *GameState) LockPiece() {
	if s.gameOver {
		return
	}
	if s.piece.YMin() >= GridVisibleRows {
		s.gameOver = true
		return
	}
	for _, c := range s.piece.Cells() {
		s.grid.SetCell(c.X, c.Y, s.piece.Kind)
	}
	next := NewPiece(s.bag.Draw())
	if s.grid.Overlaps(&next) {
		s.gameOver = true
		return
	}
	s.piece = next
}

// HardDrop moves the piece to its landing row and locks it.
func (s *GameState) HardDrop() {
	if s.gameOver {
		return
	}
	s.piece.Position.Y -= s.DistanceToDrop()
	s.LockPiece()
}

// ClearFullRows removes every full row and compacts the rows above it in a
// single bottom-up pass. It returns the number of rows removed.
func (s *GameState) ClearFullRows() int {
	if s.gameOver {
		return 0
	}
	widths := s.grid.Widths()
	cleared := 0
	for row := 0; row < GridRows; row++ {
		if widths[row] == GridColumns {
			cleared++
			continue
		}
		if cleared > 0 {
			s.grid.cells[row-cleared] = s.grid.cells[row]
		}
	}
	for row := GridRows - cleared; row < GridRows; row++ {
		s.grid.ClearRow(row)
	}
	s.lines += cleared
	return cleared
}

// OnButtonPressed applies one semantic input.
func (s *GameState) OnButtonPressed(b Button) {
	if s.gameOver {
		return
	}
	switch b {
	case Quit:
		s.gameOver = true
	case MoveDown:
		s.TryMove(DirDown)
	case MoveLeft:
		s.TryMove(DirLeft)
	case MoveRight:
		s.TryMove(DirRight)
	case Drop:
		s.HardDrop()
	case RotateClockwise:
		s.TryRotate(Rot90)
	}
}

// OnUpdate runs once per host tick after input and gravity. Line clears are
// always deferred to here.
func (s *GameState) OnUpdate() {
	s.ClearFullRows()
}

// String renders the grid with the active piece overlaid, top row first.
func (s *GameState) String() string {
	active := make(map[Point]bool, 4)
	for _, c := range s.piece.Cells() {
		active[c] = true
	}
	var sb strings.Builder
	for y := GridRows - 1; y >= 0; y-- {
		for x := 0; x < GridColumns; x++ {
			if !s.gameOver && active[Point{X: x, Y: y}] {
				sb.WriteString(s.piece.Kind.String())
			} else {
				sb.WriteString(s.grid.cells[y][x].String())
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
