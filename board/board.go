package board

import (
	"fmt"
	"math/bits"

	"github.com/samber/lo"
)

const (
	// NumColumns is the width of the board.
	NumColumns = 7
	// NumRows is the height of every column.
	NumRows = 6
	// NumCells is the number of playable cells.
	NumCells = NumColumns * NumRows

	laneWidth = 8
)

// Color is the content of a cell, or the color of a pawn.
type Color uint8

const (
	Empty Color = iota
	Red
	Yellow
)

func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Yellow:
		return "yellow"
	}
	return "empty"
}

// Opponent returns the other pawn color. Empty has no opponent.
func (c Color) Opponent() Color {
	switch c {
	case Red:
		return Yellow
	case Yellow:
		return Red
	}
	return Empty
}

// Board layout:
// Each 64-bit word is split into eight byte lanes, one per column (the
// eighth lane is never used). Within lane c, bit r is row r counting from
// the bottom, so cell (c, r) is bit 8*c + r. Rows 0-5 hold pawns in the
// red and yellow words. The next word holds one marker bit per column, at
// the row the next pawn in that column lands on; a full column has its
// marker on bit 6 of its lane. Bit 7 of every lane is padding.
//
//   lane:   7        6        5        4        3        2        1        0
//   bits: ........ .MRRRRRR .MRRRRRR .MRRRRRR .MRRRRRR .MRRRRRR .MRRRRRR .MRRRRRR

const (
	// bottomMarkers has the marker of every column on row 0.
	bottomMarkers uint64 = 0x0001010101010101
	laneRows      uint64 = 0x3f
	laneAll       uint64 = 0xff
	laneFull      uint64 = 1 << NumRows
)

// Board is a connect-four position: two occupancy planes, the per-column
// free-slot markers, and the windows still able to produce four in a row.
// The zero value is not ready to use; call NewBoard or Reset.
type Board struct {
	red    uint64
	yellow uint64
	next   uint64

	active WindowSet
}

// NewBoard returns a board set up for the beginning of a game.
func NewBoard() *Board {
	b := &Board{}
	b.Reset()
	return b
}

// Reset empties the board and restores every window to the active set.
func (b *Board) Reset() {
	b.red = 0
	b.yellow = 0
	b.next = bottomMarkers
	b.active = AllWindows
}

func laneShift(col int) uint {
	return uint(col) * laneWidth
}

func validColumn(col int) error {
	if col < 0 || col >= NumColumns {
		return fmt.Errorf("%w: %d", ErrInvalidColumn, col)
	}
	return nil
}

// marker returns the free-slot marker bit of col, in place.
func (b *Board) marker(col int) uint64 {
	return b.next & (laneAll << laneShift(col))
}

// Push drops a pawn of color c into col. The board is left untouched when
// an error is returned.
func (b *Board) Push(col int, c Color) error {
	if err := validColumn(col); err != nil {
		return err
	}
	m := b.marker(col)
	if m&(laneFull<<laneShift(col)) != 0 {
		return fmt.Errorf("%w: %d", ErrColumnFull, col)
	}
	switch c {
	case Red:
		b.red |= m
	case Yellow:
		b.yellow |= m
	default:
		return fmt.Errorf("%w: %v", ErrInvalidColor, c)
	}
	b.next ^= m | m<<1
	return nil
}

// Pop removes the topmost pawn of col and returns its color. Only the
// plane holding that pawn is modified, and only within the lane of col.
func (b *Board) Pop(col int) (Color, error) {
	if err := validColumn(col); err != nil {
		return Empty, err
	}
	m := b.marker(col)
	if m&(1<<laneShift(col)) != 0 {
		return Empty, fmt.Errorf("%w: %d", ErrColumnEmpty, col)
	}
	top := m >> 1
	var c Color
	if b.red&top != 0 {
		b.red &^= top
		c = Red
	} else {
		b.yellow &^= top
		c = Yellow
	}
	b.next ^= m | top
	return c, nil
}

// Height returns the number of pawns in col.
func (b *Board) Height(col int) (int, error) {
	if err := validColumn(col); err != nil {
		return 0, err
	}
	return bits.TrailingZeros64(b.marker(col)) - int(laneShift(col)), nil
}

func (b *Board) height(col int) int {
	return bits.TrailingZeros64(b.marker(col)) - int(laneShift(col))
}

// At returns the color at (col, row). Out-of-range coordinates are Empty.
func (b *Board) At(col, row int) Color {
	if col < 0 || col >= NumColumns || row < 0 || row >= NumRows {
		return Empty
	}
	return b.at(Square(col*laneWidth + row))
}

func (b *Board) at(sq Square) Color {
	bit := uint64(1) << sq
	switch {
	case b.red&bit != 0:
		return Red
	case b.yellow&bit != 0:
		return Yellow
	}
	return Empty
}

// Pawns returns the number of pawns on the board.
func (b *Board) Pawns() int {
	return bits.OnesCount64(b.red) + bits.OnesCount64(b.yellow)
}

// Full is true when no column can take another pawn.
func (b *Board) Full() bool {
	return b.Pawns() == NumCells
}

// Legal returns the columns that can still take a pawn, in ascending order.
func (b *Board) Legal() []int {
	return lo.Filter(lo.Range(NumColumns), func(col int, _ int) bool {
		return b.height(col) < NumRows
	})
}

// ToMove returns the color whose turn it is, assuming red moved first and
// the players alternated.
func (b *Board) ToMove() Color {
	if b.Pawns()%2 == 0 {
		return Red
	}
	return Yellow
}

// Active returns the set of windows that have not been pruned.
func (b *Board) Active() WindowSet {
	return b.active
}

// CopyFrom makes b an exact copy of other, including its active windows.
func (b *Board) CopyFrom(other *Board) {
	*b = *other
}

// Copy returns a deep copy of the board. Boards hold no references, so the
// copy shares nothing with the original.
func (b *Board) Copy() *Board {
	c := *b
	return &c
}

// Equals compares pawns, markers and active windows.
func (b *Board) Equals(other *Board) bool {
	return *b == *other
}

// SamePosition compares only pawns and markers.
func (b *Board) SamePosition(other *Board) bool {
	return b.red == other.red && b.yellow == other.yellow && b.next == other.next
}
