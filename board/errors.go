package board

import "errors"

var (
	ErrInvalidColumn = errors.New("column out of range")
	ErrColumnFull    = errors.New("column is full")
	ErrColumnEmpty   = errors.New("column is empty")
	ErrInvalidColor  = errors.New("pawn must be red or yellow")
	ErrBadNotation   = errors.New("bad move notation")
)
