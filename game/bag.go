package game

import (
	"lukechampine.com/frand"

	"github.com/domino14/downstack/tiles"
)

// A Bag deals piece types with the 7-bag randomizer: each batch of seven
// draws contains every piece type exactly once, in shuffled order.
type Bag struct {
	pieces []tiles.PieceType
}

// NewBag creates an empty bag; the first draw fills it.
func NewBag() *Bag {
	return &Bag{pieces: make([]tiles.PieceType, 0, tiles.NumPieceTypes)}
}

// Draw deals the next piece type.
func (b *Bag) Draw() tiles.PieceType {
	if len(b.pieces) == 0 {
		b.refill()
	}
	t := b.pieces[len(b.pieces)-1]
	b.pieces = b.pieces[:len(b.pieces)-1]
	return t
}

// Remaining returns how many draws are left in the current batch.
func (b *Bag) Remaining() int { return len(b.pieces) }

func (b *Bag) refill() {
	b.pieces = append(b.pieces[:0], tiles.AllPieceTypes[:]...)
	frand.Shuffle(len(b.pieces), func(i, j int) {
		b.pieces[i], b.pieces[j] = b.pieces[j], b.pieces[i]
	})
}

// Copy returns an independent bag with the same remaining batch.
func (b *Bag) Copy() *Bag {
	cp := &Bag{pieces: make([]tiles.PieceType, len(b.pieces))}
	copy(cp.pieces, b.pieces)
	return cp
}
