package board

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/matryer/is"
)

func verticalWindowsOf(col int) WindowSet {
	var s WindowSet
	for i, w := range Windows() {
		if w.Orientation() == Vertical && w.Cell(0).Col() == col {
			s = s.with(i)
		}
	}
	return s
}

func TestPruneAlternatingColumn(t *testing.T) {
	is := is.New(t)
	b := NewBoard()
	for i := 0; i < 4; i++ {
		is.NoErr(b.Push(2, Color(1+i%2)))
	}
	verticals := verticalWindowsOf(2)
	is.Equal(verticals.Len(), 3)
	verticals.Each(func(_ int, w Window) bool {
		sig := b.Signature(w)
		is.True(sig.Red() != 0)
		is.True(sig.Yellow() != 0)
		return true
	})

	removed := b.Prune()
	is.Equal(removed, 3)
	is.Equal(b.Active().Intersect(verticals), WindowSet{})
	is.Equal(b.Active().Len(), NumWindows-3)
	// horizontals crossing column 2 only see one pawn each
	is.True(b.Active().Has(0))
}

func TestPruneEmptyBoardKeepsEverything(t *testing.T) {
	is := is.New(t)
	b := NewBoard()
	is.Equal(b.Prune(), 0)
	is.Equal(b.Active(), AllWindows)
}

func TestPruneIsMonotonic(t *testing.T) {
	is := is.New(t)
	rng := rand.New(rand.NewPCG(3, 5))
	for game := 0; game < 50; game++ {
		b := NewBoard()
		prev := b.Active()
		for !b.Full() {
			legal := b.Legal()
			is.NoErr(b.Push(legal[rng.IntN(len(legal))], b.ToMove()))
			b.Prune()
			cur := b.Active()
			is.True(cur.SubsetOf(prev))
			is.True(cur.Len() <= prev.Len())
			// a second pass finds nothing new
			is.Equal(b.Prune(), 0)
			prev = cur
		}
	}
}

func TestPruneOnlyDropsMixedWindows(t *testing.T) {
	is := is.New(t)
	b := MustFromMoves("4433221771566525")
	b.Prune()
	for i, w := range Windows() {
		is.Equal(b.Active().Has(i), !b.Signature(w).Mixed())
	}
}

func TestPruneKeepsTableOrder(t *testing.T) {
	is := is.New(t)
	b := MustFromMoves("44332217")
	b.Prune()
	last := -1
	b.Active().Each(func(i int, w Window) bool {
		is.True(i > last)
		is.Equal(w, WindowAt(i))
		last = i
		return true
	})
	is.Equal(len(b.Active().Windows()), b.Active().Len())
}

func TestLiveIsPure(t *testing.T) {
	is := is.New(t)
	b := MustFromMoves("4455")
	before := b.Copy()

	branch := b.Live(AllWindows)
	is.True(b.Equals(before))
	is.True(branch.Len() < NumWindows)

	b.Prune()
	is.Equal(b.Active(), branch)
}

func TestPopDoesNotRestorePrunedWindows(t *testing.T) {
	is := is.New(t)
	b := NewBoard()
	is.NoErr(b.Push(0, Red))
	is.NoErr(b.Push(0, Yellow))
	is.Equal(b.Prune(), 1) // a1-a4

	_, err := b.Pop(0)
	is.NoErr(err)
	is.Equal(b.Active().Len(), NumWindows-1)

	b.Rescan()
	is.Equal(b.Active(), AllWindows)
}

func TestBranchSetsAreIndependent(t *testing.T) {
	is := is.New(t)
	b := MustFromMoves("44")
	root := b.Live(AllWindows)

	is.NoErr(b.Push(4, Red))
	is.NoErr(b.Push(4, Yellow))
	child := b.Live(root)
	_, err := b.Pop(4)
	is.NoErr(err)
	_, err = b.Pop(4)
	is.NoErr(err)

	is.True(child.SubsetOf(root))
	is.True(child.Len() < root.Len())
	is.Equal(b.Live(AllWindows), root)
}

func TestPrunedWindowsNeverHideAWin(t *testing.T) {
	is := is.New(t)
	rng := rand.New(rand.NewPCG(9, 9))
	for game := 0; game < 100; game++ {
		b := NewBoard()
		for !b.Full() {
			legal := b.Legal()
			err := b.Push(legal[rng.IntN(len(legal))], b.ToMove())
			is.True(!errors.Is(err, ErrColumnFull))
			b.Prune()

			brute := Empty
			for _, w := range Windows() {
				switch b.Signature(w) {
				case FourRed:
					brute = Red
				case FourYellow:
					brute = Yellow
				}
			}
			is.Equal(b.FourInARow(), brute)
			if brute != Empty {
				break
			}
		}
	}
}

func BenchmarkPrune(b *testing.B) {
	board := MustFromMoves("4433221771566525")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		board.Live(AllWindows)
	}
}
