package board

import (
	"fmt"
	"math/bits"
)

// A Signature describes the occupancy of a window: bit i of the low nibble
// is set when cell i holds a red pawn, bit i of the high nibble when it
// holds a yellow pawn.
type Signature uint8

const (
	// FourRed is the signature of a red win.
	FourRed Signature = 0x0f
	// FourYellow is the signature of a yellow win.
	FourYellow Signature = 0xf0
)

// Red returns the red nibble.
func (s Signature) Red() uint8 {
	return uint8(s) & 0x0f
}

// Yellow returns the yellow nibble.
func (s Signature) Yellow() uint8 {
	return uint8(s) >> 4
}

// Count returns the number of cells holding color c.
func (s Signature) Count(c Color) int {
	switch c {
	case Red:
		return bits.OnesCount8(s.Red())
	case Yellow:
		return bits.OnesCount8(s.Yellow())
	}
	return WindowSize - bits.OnesCount8(s.Red()|s.Yellow())
}

// Mixed is true when both colors appear in the window; such a window can
// never be completed by either player.
func (s Signature) Mixed() bool {
	return s.Red() != 0 && s.Yellow() != 0
}

func (s Signature) String() string {
	return fmt.Sprintf("r%04b/y%04b", s.Red(), s.Yellow())
}

func nibble(plane uint64, w Window) uint8 {
	return uint8((plane>>w.Cell(0))&1 |
		(plane>>w.Cell(1))&1<<1 |
		(plane>>w.Cell(2))&1<<2 |
		(plane>>w.Cell(3))&1<<3)
}

// Signature extracts the occupancy of w. It reads the board only.
func (b *Board) Signature(w Window) Signature {
	return Signature(nibble(b.red, w) | nibble(b.yellow, w)<<4)
}

// FourInARow returns the color owning a completed window among the active
// ones, or Empty. Pruning only drops windows holding both colors, so a
// completed window is never pruned.
func (b *Board) FourInARow() Color {
	winner := Empty
	b.active.Each(func(_ int, w Window) bool {
		switch b.Signature(w) {
		case FourRed:
			winner = Red
		case FourYellow:
			winner = Yellow
		default:
			return true
		}
		return false
	})
	return winner
}
