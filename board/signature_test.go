package board

import (
	"testing"

	"github.com/matryer/is"
)

func indexOf(w Window) int {
	for i, tw := range Windows() {
		if tw == w {
			return i
		}
	}
	return -1
}

func TestSignatureThreeRed(t *testing.T) {
	is := is.New(t)
	b := NewBoard()
	for _, col := range []int{0, 1, 2} {
		is.NoErr(b.Push(col, Red))
	}
	sig := b.Signature(WindowAt(0)) // a1 b1 c1 d1
	is.Equal(sig.Red(), uint8(0b0111))
	is.Equal(sig.Yellow(), uint8(0))
	is.Equal(sig.Count(Red), 3)
	is.Equal(sig.Count(Empty), 1)
	is.True(!sig.Mixed())
}

func TestSignatureYellowCellOrder(t *testing.T) {
	is := is.New(t)
	b := NewBoard()
	is.NoErr(b.Push(3, Yellow))
	is.NoErr(b.Push(1, Red))

	sig := b.Signature(WindowAt(0))
	is.Equal(sig.Red(), uint8(0b0010))
	is.Equal(sig.Yellow(), uint8(0b1000))
	is.True(sig.Mixed())
	is.Equal(sig.String(), "r0010/y1000")

	// descending window g3 f4 e5 d6 is untouched
	is.Equal(b.Signature(WindowAt(57)), Signature(0))
}

func TestFourRedInColumn(t *testing.T) {
	is := is.New(t)
	b := NewBoard()
	for i := 0; i < 4; i++ {
		is.NoErr(b.Push(3, Red))
	}
	w := Window(0x18191a1b) // d1 d2 d3 d4
	is.True(indexOf(w) >= 0)
	sig := b.Signature(w)
	is.Equal(sig.Red(), uint8(0b1111))
	is.Equal(sig, FourRed)
	is.Equal(b.FourInARow(), Red)
}

func TestFourYellowDiagonal(t *testing.T) {
	is := is.New(t)
	// yellow builds a1 b2 c3 d4 while red fills underneath
	b := MustFromMoves("2132334441")
	is.Equal(b.FourInARow(), Empty)
	is.NoErr(b.Push(3, Yellow))
	is.Equal(b.At(3, 3), Yellow)

	w := Window(0x0009121b)
	is.Equal(b.Signature(w), FourYellow)
	b.Prune()
	is.True(b.Active().Has(indexOf(w)))
	is.Equal(b.FourInARow(), Yellow)
}

func TestSignatureIsReadOnly(t *testing.T) {
	is := is.New(t)
	b := MustFromMoves("443322")
	before := b.Copy()
	for _, w := range Windows() {
		b.Signature(w)
	}
	is.True(b.Equals(before))
}

func TestSignatureMatchesCellLookups(t *testing.T) {
	is := is.New(t)
	b := MustFromMoves("4433221771566525")
	for _, w := range Windows() {
		sig := b.Signature(w)
		for k, sq := range w.Cells() {
			c := b.At(sq.Col(), sq.Row())
			is.Equal(sig.Red()&(1<<k) != 0, c == Red)       // red bit per cell
			is.Equal(sig.Yellow()&(1<<k) != 0, c == Yellow) // yellow bit per cell
		}
	}
}

func BenchmarkSignature(b *testing.B) {
	board := MustFromMoves("4433221771566525")
	ws := Windows()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		board.Signature(ws[i%NumWindows])
	}
}
