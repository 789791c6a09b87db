package board

import (
	"fmt"
	"os"
	"strings"
)

var (
	ColorSupport = os.Getenv("CONNECT4_DISABLE_COLOR") != "on"
)

func (c Color) displayString() string {
	switch c {
	case Red:
		if ColorSupport {
			return "\033[31mX\033[0m"
		}
		return "X"
	case Yellow:
		if ColorSupport {
			return "\033[33mO\033[0m"
		}
		return "O"
	}
	return "."
}

// ToDisplayText renders the board with row 6 on top and the column numbers
// used by PlayMoves underneath.
func (b *Board) ToDisplayText() string {
	var sb strings.Builder
	for row := NumRows - 1; row >= 0; row-- {
		sb.WriteString(fmt.Sprintf("%d|", row+1))
		for col := 0; col < NumColumns; col++ {
			sb.WriteString(b.At(col, row).displayString())
			sb.WriteString(" ")
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(" " + strings.Repeat("-", NumColumns*2+1) + "\n")
	sb.WriteString("  ")
	for col := 0; col < NumColumns; col++ {
		sb.WriteString(fmt.Sprintf("%d ", col+1))
	}
	sb.WriteString("\n")
	return sb.String()
}

func (b *Board) String() string {
	return fmt.Sprintf("<board red=%#x yellow=%#x next=%#x active=%d>",
		b.red, b.yellow, b.next, b.active.Len())
}
