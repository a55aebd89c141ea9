package game

import "math/rand/v2"

// Bag deals piece kinds so that every run of BagSize draws starting at a bag
// boundary contains each kind exactly once.
type Bag struct {
	current []PieceKind
	next    []PieceKind
	rng     *rand.Rand
}

// NewBag creates a bag randomizer drawing from src. Equal sources give equal
// sequences.
func NewBag(src rand.Source) *Bag {
	b := &Bag{rng: rand.New(src)}
	b.current = b.shuffled()
	b.next = b.shuffled()
	return b
}

// Draw removes and returns the next kind.
func (b *Bag) Draw() PieceKind {
	if len(b.current) == 0 {
		b.current = b.next
		b.next = b.shuffled()
	}
	kind := b.current[0]
	b.current = b.current[1:]
	return kind
}

// Preview returns the next n kinds without drawing them. n is capped to the
// contents of the current and next bags.
func (b *Bag) Preview(n int) []PieceKind {
	upcoming := make([]PieceKind, 0, len(b.current)+len(b.next))
	upcoming = append(upcoming, b.current...)
	upcoming = append(upcoming, b.next...)
	if n < len(upcoming) {
		upcoming = upcoming[:max(n, 0)]
	}
	return upcoming
}

func (b *Bag) shuffled() []PieceKind {
	bag := make([]PieceKind, BagSize)
	copy(bag, Kinds[:])
	b.rng.Shuffle(len(bag), func(i, j int) {
		bag[i], bag[j] = bag[j], bag[i]
	})
	return bag
}
