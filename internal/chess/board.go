package chess

import "encoding/json"

var backRank = [BoardSize]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// Board is an 8x8 grid of pieces, indexed [row][col]. A nil cell is empty.
type Board struct {
	squares [BoardSize][BoardSize]*Piece
}

// NewBoard returns a board in the standard starting layout.
func NewBoard() *Board {
	b := NewEmptyBoard()
	for col := 0; col < BoardSize; col++ {
		b.squares[0][col] = NewPiece(backRank[col], Black)
		b.squares[1][col] = NewPiece(Pawn, Black)
		b.squares[6][col] = NewPiece(Pawn, White)
		b.squares[7][col] = NewPiece(backRank[col], White)
	}
	return b
}

func NewEmptyBoard() *Board {
	return &Board{}
}

// At returns the piece on pos, or nil if the square is empty or off the board.
func (b *Board) At(pos Position) *Piece {
	if !pos.OnBoard() {
		return nil
	}
	return b.squares[pos.Row][pos.Col]
}

// Place puts p on pos, replacing any occupant. Off-board positions are ignored.
func (b *Board) Place(pos Position, p *Piece) {
	if !pos.OnBoard() {
		return
	}
	b.squares[pos.Row][pos.Col] = p
}

func (b *Board) Remove(pos Position) {
	b.Place(pos, nil)
}

// Occupant pairs a piece with the square it stands on.
type Occupant struct {
	Position Position `json:"position"`
	Piece    *Piece   `json:"piece"`
}

// Pieces lists every piece on the board, rank 8 to rank 1, file a to file h.
func (b *Board) Pieces() []Occupant {
	var out []Occupant
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if p := b.squares[row][col]; p != nil {
				out = append(out, Occupant{Position: Position{Row: row, Col: col}, Piece: p})
			}
		}
	}
	return out
}

// Clone copies the grid. Pieces are immutable so they are shared.
func (b *Board) Clone() *Board {
	c := *b
	return &c
}

func (b *Board) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.squares)
}
