package zobrist

import (
	"lukechampine.com/frand"

	"github.com/domino14/connect4/board"
)

const bignum = 1<<63 - 2

// generate a zobrist hash for a connect-four position.
// https://en.wikipedia.org/wiki/Zobrist_hashing
type Zobrist struct {
	yellowToMove uint64

	// posTable[col][row][color-1]
	posTable [board.NumColumns][board.NumRows][2]uint64
}

func (z *Zobrist) Initialize() {
	for col := 0; col < board.NumColumns; col++ {
		for row := 0; row < board.NumRows; row++ {
			for c := 0; c < 2; c++ {
				z.posTable[col][row][c] = frand.Uint64n(bignum) + 1
			}
		}
	}
	z.yellowToMove = frand.Uint64n(bignum) + 1
}

// Hash computes the key of a position from scratch. Only pawns and the side
// to move count; the active window set does not.
func (z *Zobrist) Hash(b *board.Board) uint64 {
	key := uint64(0)
	for col := 0; col < board.NumColumns; col++ {
		for row := 0; row < board.NumRows; row++ {
			c := b.At(col, row)
			if c == board.Empty {
				// pawns are stacked, nothing above this one
				break
			}
			key ^= z.posTable[col][row][c-1]
		}
	}
	if b.ToMove() == board.Yellow {
		key ^= z.yellowToMove
	}
	return key
}

// AddPawn updates key for a pawn of color c placed on (or removed from)
// (col, row). It is its own inverse, so a push and the matching pop cancel
// out.
func (z *Zobrist) AddPawn(key uint64, col, row int, c board.Color) uint64 {
	if c == board.Empty {
		return key
	}
	key ^= z.posTable[col][row][c-1]
	key ^= z.yellowToMove
	return key
}
