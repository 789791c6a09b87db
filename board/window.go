package board

import (
	"fmt"
	"strings"
)

// A Square is a bit index into the board words: column*8 + row.
type Square uint8

// Col returns the column of the square.
func (s Square) Col() int {
	return int(s) / laneWidth
}

// Row returns the row of the square, counting from the bottom.
func (s Square) Row() int {
	return int(s) % laneWidth
}

func (s Square) String() string {
	return fmt.Sprintf("%c%d", 'a'+s.Col(), s.Row()+1)
}

// SquareAt returns the square at (col, row). No range checking.
func SquareAt(col, row int) Square {
	return Square(col*laneWidth + row)
}

// Orientation is the direction a window runs in.
type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
	AscendingDiagonal
	DescendingDiagonal
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case AscendingDiagonal:
		return "ascending"
	case DescendingDiagonal:
		return "descending"
	}
	return "unknown"
}

// WindowSize is the number of cells in a window.
const WindowSize = 4

// NumWindows is the number of distinct four-cell lines on the board.
const NumWindows = 69

// A Window is four adjacent cells in a line, one Square per byte. Cell 0
// is the most significant byte.
type Window uint32

// Cell returns the i-th square of the window, 0 <= i < 4.
func (w Window) Cell(i int) Square {
	return Square(w >> (8 * (WindowSize - 1 - i)))
}

// Cells returns the four squares of the window in order.
func (w Window) Cells() [WindowSize]Square {
	return [WindowSize]Square{w.Cell(0), w.Cell(1), w.Cell(2), w.Cell(3)}
}

// Mask returns the board bits covered by the window.
func (w Window) Mask() uint64 {
	return 1<<w.Cell(0) | 1<<w.Cell(1) | 1<<w.Cell(2) | 1<<w.Cell(3)
}

// Orientation derives the direction of the window from its first step.
func (w Window) Orientation() Orientation {
	switch int(w.Cell(1)) - int(w.Cell(0)) {
	case 1:
		return Vertical
	case laneWidth:
		return Horizontal
	case laneWidth + 1:
		return AscendingDiagonal
	}
	return DescendingDiagonal
}

func (w Window) String() string {
	cells := w.Cells()
	parts := make([]string, WindowSize)
	for i, sq := range cells {
		parts[i] = sq.String()
	}
	return fmt.Sprintf("%v[%s]", w.Orientation(), strings.Join(parts, " "))
}

// windows is the table of every line of four, in the order the pruner and
// the evaluator walk them: 24 horizontal (row by row), 21 vertical (column
// by column), 12 ascending and 12 descending diagonals.
var windows = [NumWindows]Window{
	0x00081018, 0x08101820, 0x10182028,
	0x18202830, 0x01091119, 0x09111921,
	0x11192129, 0x19212931, 0x020a121a,
	0x0a121a22, 0x121a222a, 0x1a222a32,
	0x030b131b, 0x0b131b23, 0x131b232b,
	0x1b232b33, 0x040c141c, 0x0c141c24,
	0x141c242c, 0x1c242c34, 0x050d151d,
	0x0d151d25, 0x151d252d, 0x1d252d35,

	0x00010203, 0x01020304, 0x02030405,
	0x08090a0b, 0x090a0b0c, 0x0a0b0c0d,
	0x10111213, 0x11121314, 0x12131415,
	0x18191a1b, 0x191a1b1c, 0x1a1b1c1d,
	0x20212223, 0x21222324, 0x22232425,
	0x28292a2b, 0x292a2b2c, 0x2a2b2c2d,
	0x30313233, 0x31323334, 0x32333435,

	0x020b141d, 0x010a131c, 0x0a131c25,
	0x0009121b, 0x09121b24, 0x121b242d,
	0x08111a23, 0x111a232c, 0x1a232c35,
	0x1019222b, 0x19222b34, 0x18212a33,

	0x322b241d, 0x312a231c, 0x2a231c15,
	0x3029221b, 0x29221b14, 0x221b140d,
	0x28211a13, 0x211a130c, 0x1a130c05,
	0x2019120b, 0x19120b04, 0x18110a03,
}

// windowMasks[i] is windows[i].Mask().
var windowMasks [NumWindows]uint64

// squareWindows[sq] is the set of windows that contain sq.
var squareWindows [NumColumns * laneWidth]WindowSet

func init() {
	for i, w := range windows {
		windowMasks[i] = w.Mask()
		for _, sq := range w.Cells() {
			squareWindows[sq] = squareWindows[sq].with(i)
		}
	}
}

// Windows returns a copy of the window table.
func Windows() [NumWindows]Window {
	return windows
}

// WindowAt returns the window with table index i.
func WindowAt(i int) Window {
	return windows[i]
}

// WindowsThrough returns the windows that contain the cell (col, row).
func WindowsThrough(col, row int) WindowSet {
	if col < 0 || col >= NumColumns || row < 0 || row >= NumRows {
		return WindowSet{}
	}
	return squareWindows[SquareAt(col, row)]
}
