package board

import "fmt"

// PlayMoves pushes a sequence of moves written as 1-based column digits,
// e.g. "4453". Colors alternate starting with whichever side is to move.
// On error the moves played so far stay on the board.
func (b *Board) PlayMoves(seq string) error {
	for i, ch := range seq {
		if ch < '1' || ch > '0'+NumColumns {
			return fmt.Errorf("%w: %q at position %d", ErrBadNotation, ch, i)
		}
		if err := b.Push(int(ch-'1'), b.ToMove()); err != nil {
			return fmt.Errorf("move %d: %w", i+1, err)
		}
	}
	return nil
}

// FromMoves returns a new board with seq played on it.
func FromMoves(seq string) (*Board, error) {
	b := NewBoard()
	if err := b.PlayMoves(seq); err != nil {
		return nil, err
	}
	return b, nil
}

// MustFromMoves is FromMoves for fixtures; it panics on bad input.
func MustFromMoves(seq string) *Board {
	b, err := FromMoves(seq)
	if err != nil {
		panic(err)
	}
	return b
}
