// Package automatic plays random connect-four games on the bitboard and
// collects statistics on how fast the window set shrinks.
package automatic

import (
	"lukechampine.com/frand"

	"github.com/domino14/connect4/board"
	"github.com/domino14/connect4/zobrist"
)

// GameResult is the outcome of a single random game.
type GameResult struct {
	Winner board.Color
	Plies  int
	// Active[i] is the number of live windows after ply i+1 was pruned.
	Active    []int
	FinalHash uint64
}

// GameRunner plays games on its own board. A runner must not be shared
// between goroutines.
type GameRunner struct {
	board   *board.Board
	zobrist *zobrist.Zobrist
}

// NewGameRunner instantiates a runner. z may be nil if hashes are not
// wanted.
func NewGameRunner(z *zobrist.Zobrist) *GameRunner {
	return &GameRunner{board: board.NewBoard(), zobrist: z}
}

// Board exposes the runner's board, for inspection after a game.
func (r *GameRunner) Board() *board.Board {
	return r.board
}

// PlayGame plays one game to the end, choosing uniformly among the legal
// columns for both sides, pruning after every ply.
func (r *GameRunner) PlayGame() (*GameResult, error) {
	r.board.Reset()
	res := &GameResult{Active: make([]int, 0, board.NumCells)}
	var hash uint64

	for !r.board.Full() {
		legal := r.board.Legal()
		col := legal[frand.Intn(len(legal))]
		color := r.board.ToMove()
		row, err := r.board.Height(col)
		if err != nil {
			return nil, err
		}
		if err := r.board.Push(col, color); err != nil {
			return nil, err
		}
		if r.zobrist != nil {
			hash = r.zobrist.AddPawn(hash, col, row, color)
		}
		r.board.Prune()
		res.Plies++
		res.Active = append(res.Active, r.board.Active().Len())

		if w := r.board.FourInARow(); w != board.Empty {
			res.Winner = w
			break
		}
	}
	res.FinalHash = hash
	return res, nil
}
