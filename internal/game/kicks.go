package game

// transition is a (from, to) rotation pair.
type transition struct {
	from, to Rotation
}

// Kick offsets tried, in order, after a rotation fails in place. Y grows
// upwards. Half turns have no entries.
var (
	standardKicks = map[transition][]Point{
		{Rot0, Rot90}:    {{-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
		{Rot90, Rot0}:    {{1, 0}, {1, -1}, {0, 2}, {1, 2}},
		{Rot90, Rot180}:  {{1, 0}, {1, -1}, {0, 2}, {1, 2}},
		{Rot180, Rot90}:  {{-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
		{Rot180, Rot270}: {{1, 0}, {1, 1}, {0, -2}, {1, -2}},
		{Rot270, Rot180}: {{-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
		{Rot270, Rot0}:   {{-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
		{Rot0, Rot270}:   {{1, 0}, {1, 1}, {0, -2}, {1, -2}},
	}

	barKicks = map[transition][]Point{
		{Rot0, Rot90}:    {{-2, 0}, {1, 0}, {-2, -1}, {1, 2}},
		{Rot90, Rot0}:    {{2, 0}, {-1, 0}, {2, 1}, {-1, -2}},
		{Rot90, Rot180}:  {{-1, 0}, {2, 0}, {-1, 2}, {2, -1}},
		{Rot180, Rot90}:  {{1, 0}, {-2, 0}, {1, -2}, {-2, 1}},
		{Rot180, Rot270}: {{2, 0}, {-1, 0}, {2, 1}, {-1, -2}},
		{Rot270, Rot180}: {{-2, 0}, {1, 0}, {-2, -1}, {1, 2}},
		{Rot270, Rot0}:   {{1, 0}, {-2, 0}, {1, -2}, {-2, 1}},
		{Rot0, Rot270}:   {{-1, 0}, {2, 0}, {-1, 2}, {2, -1}},
	}
)

// Kicks returns the ordered candidate offsets for rotating kind from one
// orientation to another. The zero offset is not included.
func Kicks(kind PieceKind, from, to Rotation) []Point {
	table := standardKicks
	if kind == I {
		table = barKicks
	}
	return table[transition{from: from, to: to}]
}
