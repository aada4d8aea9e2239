package chess

// IsValidMove reports whether piece may move from one square to another.
// It does not know whose turn it is; firstMove gates the pawn double step.
// The board is read by position, so piece should be the occupant of from.
func (b *Board) IsValidMove(piece *Piece, from, to Position, firstMove bool) bool {
	if piece == nil || !to.OnBoard() {
		return false
	}
	target := b.At(to)
	if target != nil && target.color == piece.color {
		return false
	}

	dr := to.Row - from.Row
	dc := to.Col - from.Col
	if dr == 0 && dc == 0 {
		return false
	}

	switch piece.kind {
	case Pawn:
		return b.validPawnMove(piece, from, dr, dc, target, firstMove)
	case Knight:
		return (abs(dr) == 1 && abs(dc) == 2) || (abs(dr) == 2 && abs(dc) == 1)
	case King:
		return abs(dr) <= 1 && abs(dc) <= 1
	case Rook:
		return b.straightClear(from, to)
	case Bishop:
		return b.diagonalClear(from, to)
	case Queen:
		return b.straightClear(from, to) || b.diagonalClear(from, to)
	}
	return false
}

func pawnDirection(c Color) int {
	if c == White {
		return -1
	}
	return 1
}

func (b *Board) validPawnMove(piece *Piece, from Position, dr, dc int, target *Piece, firstMove bool) bool {
	dir := pawnDirection(piece.color)
	// single step
	if dc == 0 && dr == dir && target == nil {
		return true
	}
	// double step, both squares must be empty
	if firstMove && dc == 0 && dr == 2*dir && target == nil &&
		b.At(Position{Row: from.Row + dir, Col: from.Col}) == nil {
		return true
	}
	// diagonal capture; a same-color target was already rejected
	if abs(dc) == 1 && dr == dir && target != nil {
		return true
	}
	return false
}

// straightClear reports whether from and to share a row or column with
// every square strictly between them empty.
func (b *Board) straightClear(from, to Position) bool {
	if from.Row != to.Row && from.Col != to.Col {
		return false
	}
	return b.pathClear(from, to)
}

func (b *Board) diagonalClear(from, to Position) bool {
	if abs(to.Row-from.Row) != abs(to.Col-from.Col) {
		return false
	}
	return b.pathClear(from, to)
}

// pathClear walks from towards to along a rank, file or diagonal. Any
// piece in between blocks, whatever its color.
func (b *Board) pathClear(from, to Position) bool {
	stepR := sign(to.Row - from.Row)
	stepC := sign(to.Col - from.Col)
	pos := Position{Row: from.Row + stepR, Col: from.Col + stepC}
	for pos != to {
		if b.At(pos) != nil {
			return false
		}
		pos = Position{Row: pos.Row + stepR, Col: pos.Col + stepC}
	}
	return true
}
