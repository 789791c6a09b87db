package zobrist

import (
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/connect4/board"
)

func TestHashEmptyBoard(t *testing.T) {
	is := is.New(t)
	z := &Zobrist{}
	z.Initialize()
	is.Equal(z.Hash(board.NewBoard()), uint64(0))
}

func TestHashAfterPushAndPop(t *testing.T) {
	is := is.New(t)
	z := &Zobrist{}
	z.Initialize()

	b := board.MustFromMoves("443322")
	h := z.Hash(b)

	col := 6
	row, err := b.Height(col)
	is.NoErr(err)
	color := b.ToMove()
	is.NoErr(b.Push(col, color))
	h1 := z.AddPawn(h, col, row, color)
	is.Equal(h1, z.Hash(b))
	is.True(h1 != h) // extremely unlikely to collide

	popped, err := b.Pop(col)
	is.NoErr(err)
	h2 := z.AddPawn(h1, col, row, popped)
	is.Equal(h2, h)
	is.Equal(h2, z.Hash(b))
}

func TestHashTranspositions(t *testing.T) {
	is := is.New(t)
	z := &Zobrist{}
	z.Initialize()

	// same pawns reached through different move orders
	b1 := board.MustFromMoves("4352")
	b2 := board.MustFromMoves("5342")
	is.True(b1.SamePosition(b2))
	is.Equal(z.Hash(b1), z.Hash(b2))

	b3 := board.MustFromMoves("4325")
	is.True(z.Hash(b1) != z.Hash(b3))
}

func TestHashIgnoresActiveWindows(t *testing.T) {
	is := is.New(t)
	z := &Zobrist{}
	z.Initialize()

	b := board.MustFromMoves("4444")
	h := z.Hash(b)
	b.Prune()
	is.Equal(z.Hash(b), h)
}
