package chess

import "errors"

var (
	ErrNoPieceAtSource    = errors.New("No piece at start position.")
	ErrIllegalMove        = errors.New("Illegal move.")
	ErrInvalidInputFormat = errors.New("Invalid input format.")
)
