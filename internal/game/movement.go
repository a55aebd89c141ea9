package game

// fits reports whether every cell is on the grid and unoccupied.
func (s *GameState) fits(cells [4]Point) bool {
	for _, c := range cells {
		if !s.grid.IsEmpty(c.X, c.Y) {
			return false
		}
	}
	return true
}

// IsValidMove reports whether the active piece can shift one cell in dir.
// Movement is blocked by the walls, the floor and locked cells.
func (s *GameState) IsValidMove(dir Direction) bool {
	return s.fits(s.piece.CellsAt(s.piece.Rotation, dir.Delta()))
}

// TryMove shifts the active piece when the move is valid and reports whether
// it moved. Invalid moves leave the state untouched.
func (s *GameState) TryMove(dir Direction) bool {
	if s.gameOver || !s.IsValidMove(dir) {
		return false
	}
	s.piece.Translate(dir)
	return true
}

// TryRotate turns the active piece by delta. The rotation is first tried in
// place, then at each kick offset in table order; the first placement that
// fits is committed together with its shift. It reports whether the piece
// rotated.
func (s *GameState) TryRotate(delta Rotation) bool {
	if s.gameOver {
		return false
	}
	from := s.piece.Rotation
	to := from.Add(delta)
	offset, ok := s.kickOffset(from, to)
	if !ok {
		return false
	}
	s.piece.Position = s.piece.Position.Add(offset)
	s.piece.AdvanceRotation(delta)
	return true
}

// kickOffset returns the first offset at which the piece fits in orientation to.
func (s *GameState) kickOffset(from, to Rotation) (Point, bool) {
	if s.fits(s.piece.CellsAt(to, Point{})) {
		return Point{}, true
	}
	for _, offset := range Kicks(s.piece.Kind, from, to) {
		if s.fits(s.piece.CellsAt(to, offset)) {
			return offset, true
		}
	}
	return Point{}, false
}
