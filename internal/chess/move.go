package chess

// MoveResult is the outcome of a successful MovePiece call.
type MoveResult string

const (
	ResultOK  MoveResult = "ok"
	ResultWin MoveResult = "win"
)

// MovePiece validates and applies a move.
//
// Capturing a king returns ResultWin and leaves the board as it was: the
// game is over and the final position is not updated. A pawn that lands on
// row 0 or row 7 becomes a queen of its own color.
func (b *Board) MovePiece(from, to Position, firstMove bool) (MoveResult, error) {
	piece := b.At(from)
	if piece == nil {
		return "", ErrNoPieceAtSource
	}
	if !b.IsValidMove(piece, from, to, firstMove) {
		return "", ErrIllegalMove
	}

	if dest := b.At(to); dest != nil && dest.kind == King {
		return ResultWin, nil
	}

	b.squares[to.Row][to.Col] = piece
	b.squares[from.Row][from.Col] = nil

	if piece.kind == Pawn && (to.Row == 0 || to.Row == BoardSize-1) {
		b.squares[to.Row][to.Col] = NewPiece(Queen, piece.color)
	}

	return ResultOK, nil
}
