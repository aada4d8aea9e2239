package chess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

func TestNewBoardLayout(t *testing.T) {
	b := NewBoard()

	require.Len(t, b.Pieces(), 32)
	for col := 0; col < BoardSize; col++ {
		assert.Equal(t, "BP", b.At(pos(1, col)).String())
		assert.Equal(t, "WP", b.At(pos(6, col)).String())
		assert.Equal(t, backRank[col], b.At(pos(0, col)).Kind())
		assert.Equal(t, backRank[col], b.At(pos(7, col)).Kind())
		assert.Equal(t, Black, b.At(pos(0, col)).Color())
		assert.Equal(t, White, b.At(pos(7, col)).Color())
		for row := 2; row < 6; row++ {
			assert.Nil(t, b.At(pos(row, col)))
		}
	}
	assert.Equal(t, "BK", b.At(pos(0, 4)).String())
	assert.Equal(t, "WQ", b.At(pos(7, 3)).String())
}

func TestBoardAtOffBoard(t *testing.T) {
	b := NewBoard()
	assert.Nil(t, b.At(pos(-1, 0)))
	assert.Nil(t, b.At(pos(0, 8)))

	b.Place(pos(8, 8), NewPiece(Queen, White))
	assert.Len(t, b.Pieces(), 32)
}

func TestIsValidMoveStartingPosition(t *testing.T) {
	tests := []struct {
		name     string
		from, to Position
		want     bool
	}{
		{"white pawn one step", pos(6, 0), pos(5, 0), true},
		{"black pawn one step", pos(1, 0), pos(2, 0), true},
		{"white knight L-shape", pos(7, 1), pos(5, 2), true},
		{"black knight L-shape", pos(0, 6), pos(2, 5), true},
		{"rook blocked by own pawn", pos(7, 0), pos(5, 0), false},
		{"bishop blocked", pos(7, 2), pos(5, 4), false},
		{"queen diagonal blocked", pos(7, 3), pos(5, 5), false},
		{"king onto own pawn", pos(7, 4), pos(6, 4), false},
		{"knight onto own pawn", pos(7, 1), pos(6, 3), false},
		{"knight off the board", pos(7, 1), pos(8, 2), false},
		{"pawn sideways", pos(6, 3), pos(6, 4), false},
		{"pawn diagonal without capture", pos(6, 3), pos(5, 4), false},
		{"pawn backwards", pos(1, 3), pos(0, 3), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoard()
			got := b.IsValidMove(b.At(tt.from), tt.from, tt.to, false)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsValidMoveRejectsOffBoardDestinations(t *testing.T) {
	b := NewBoard()
	offBoard := []Position{pos(-1, 0), pos(8, 0), pos(0, -1), pos(0, 8), pos(-3, 9), pos(12, 4)}

	for _, occ := range b.Pieces() {
		for _, to := range offBoard {
			for _, first := range []bool{true, false} {
				assert.False(t, b.IsValidMove(occ.Piece, occ.Position, to, first),
					"%s from %s to %s", occ.Piece, occ.Position, to)
			}
		}
	}
}

func TestIsValidMoveNeverCapturesOwnColor(t *testing.T) {
	b := NewBoard()
	pieces := b.Pieces()

	for _, mover := range pieces {
		for _, target := range pieces {
			if mover.Piece.Color() != target.Piece.Color() {
				continue
			}
			assert.False(t, b.IsValidMove(mover.Piece, mover.Position, target.Position, true),
				"%s from %s onto %s", mover.Piece, mover.Position, target.Position)
		}
	}
}

func TestIsValidMoveZeroDisplacement(t *testing.T) {
	for _, kind := range []Kind{Pawn, Knight, Bishop, Rook, Queen, King} {
		t.Run(kind.String(), func(t *testing.T) {
			b := NewEmptyBoard()
			p := NewPiece(kind, White)
			b.Place(pos(4, 4), p)
			assert.False(t, b.IsValidMove(p, pos(4, 4), pos(4, 4), true))

			// a mismatched piece reference must not slip through either
			b.Remove(pos(4, 4))
			assert.False(t, b.IsValidMove(p, pos(4, 4), pos(4, 4), true))
		})
	}
}

func TestIsValidMoveNilPiece(t *testing.T) {
	b := NewBoard()
	assert.False(t, b.IsValidMove(nil, pos(4, 4), pos(3, 4), true))
}

func TestPawnMoves(t *testing.T) {
	tests := []struct {
		name      string
		color     Color
		from, to  Position
		firstMove bool
		blockers  map[Position]*Piece
		want      bool
	}{
		{"white single step", White, pos(6, 4), pos(5, 4), false, nil, true},
		{"black single step", Black, pos(1, 4), pos(2, 4), false, nil, true},
		{"white double step on first move", White, pos(6, 4), pos(4, 4), true, nil, true},
		{"black double step on first move", Black, pos(1, 4), pos(3, 4), true, nil, true},
		{"double step without first-move flag", White, pos(6, 4), pos(4, 4), false, nil, false},
		{"double step from any row while flag set", White, pos(5, 4), pos(3, 4), true, nil, true},
		{"double step intermediate blocked", White, pos(6, 4), pos(4, 4), true,
			map[Position]*Piece{pos(5, 4): NewPiece(Knight, Black)}, false},
		{"double step destination blocked", Black, pos(1, 4), pos(3, 4), true,
			map[Position]*Piece{pos(3, 4): NewPiece(Knight, White)}, false},
		{"single step blocked by enemy", White, pos(6, 4), pos(5, 4), false,
			map[Position]*Piece{pos(5, 4): NewPiece(Pawn, Black)}, false},
		{"triple step", White, pos(6, 4), pos(3, 4), true, nil, false},
		{"backwards", Black, pos(3, 4), pos(2, 4), true, nil, false},
		{"white captures diagonally", White, pos(4, 4), pos(3, 5), false,
			map[Position]*Piece{pos(3, 5): NewPiece(Pawn, Black)}, true},
		{"black captures diagonally", Black, pos(3, 3), pos(4, 2), false,
			map[Position]*Piece{pos(4, 2): NewPiece(Rook, White)}, true},
		{"diagonal onto empty square", White, pos(4, 4), pos(3, 5), false, nil, false},
		{"diagonal backwards capture", White, pos(4, 4), pos(5, 5), false,
			map[Position]*Piece{pos(5, 5): NewPiece(Pawn, Black)}, false},
		{"two-column diagonal", White, pos(4, 4), pos(3, 6), false,
			map[Position]*Piece{pos(3, 6): NewPiece(Pawn, Black)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewEmptyBoard()
			pawn := NewPiece(Pawn, tt.color)
			b.Place(tt.from, pawn)
			for at, p := range tt.blockers {
				b.Place(at, p)
			}
			assert.Equal(t, tt.want, b.IsValidMove(pawn, tt.from, tt.to, tt.firstMove))
		})
	}
}

func TestKnightAndKingMoves(t *testing.T) {
	from := pos(4, 4)
	for dr := -3; dr <= 3; dr++ {
		for dc := -3; dc <= 3; dc++ {
			to := pos(from.Row+dr, from.Col+dc)

			b := NewEmptyBoard()
			knight := NewPiece(Knight, Black)
			b.Place(from, knight)
			wantKnight := (abs(dr) == 1 && abs(dc) == 2) || (abs(dr) == 2 && abs(dc) == 1)
			assert.Equal(t, wantKnight, b.IsValidMove(knight, from, to, false), "knight %d,%d", dr, dc)

			king := NewPiece(King, White)
			b.Place(from, king)
			wantKing := abs(dr) <= 1 && abs(dc) <= 1 && !(dr == 0 && dc == 0)
			assert.Equal(t, wantKing, b.IsValidMove(king, from, to, false), "king %d,%d", dr, dc)
		}
	}
}

func TestKnightJumpsOverPieces(t *testing.T) {
	b := NewEmptyBoard()
	knight := NewPiece(Knight, White)
	b.Place(pos(4, 4), knight)
	for _, p := range []Position{pos(3, 4), pos(3, 3), pos(4, 3), pos(3, 5), pos(5, 4)} {
		b.Place(p, NewPiece(Pawn, White))
	}
	assert.True(t, b.IsValidMove(knight, pos(4, 4), pos(2, 3), false))
	assert.True(t, b.IsValidMove(knight, pos(4, 4), pos(6, 5), false))
}

func TestSlidingPieceObstruction(t *testing.T) {
	tests := []struct {
		name     string
		kind     Kind
		from, to Position
		blocker  Position
	}{
		{"rook along rank", Rook, pos(4, 0), pos(4, 7), pos(4, 3)},
		{"rook along file", Rook, pos(7, 2), pos(0, 2), pos(2, 2)},
		{"rook leftwards", Rook, pos(3, 6), pos(3, 1), pos(3, 5)},
		{"bishop down-right", Bishop, pos(0, 0), pos(7, 7), pos(5, 5)},
		{"bishop up-left", Bishop, pos(6, 5), pos(2, 1), pos(3, 2)},
		{"bishop up-right", Bishop, pos(7, 0), pos(1, 6), pos(6, 1)},
		{"queen along file", Queen, pos(7, 3), pos(1, 3), pos(4, 3)},
		{"queen along rank", Queen, pos(2, 7), pos(2, 0), pos(2, 1)},
		{"queen diagonal", Queen, pos(1, 1), pos(6, 6), pos(3, 3)},
	}

	for _, tt := range tests {
		for _, blockerColor := range []Color{White, Black} {
			t.Run(tt.name+"/"+blockerColor.String()+" blocker", func(t *testing.T) {
				b := NewEmptyBoard()
				mover := NewPiece(tt.kind, White)
				b.Place(tt.from, mover)

				require.True(t, b.IsValidMove(mover, tt.from, tt.to, false), "open line")

				b.Place(tt.blocker, NewPiece(Pawn, blockerColor))
				assert.False(t, b.IsValidMove(mover, tt.from, tt.to, false), "blocked line")

				b.Remove(tt.blocker)
				assert.True(t, b.IsValidMove(mover, tt.from, tt.to, false), "line reopened")
			})
		}
	}
}

func TestSlidingPieceShapes(t *testing.T) {
	tests := []struct {
		kind Kind
		to   Position
		want bool
	}{
		{Rook, pos(4, 0), true},
		{Rook, pos(0, 4), true},
		{Rook, pos(2, 2), false},
		{Rook, pos(2, 5), false},
		{Bishop, pos(2, 2), true},
		{Bishop, pos(7, 1), true},
		{Bishop, pos(4, 0), false},
		{Bishop, pos(2, 5), false},
		{Queen, pos(4, 0), true},
		{Queen, pos(0, 4), true},
		{Queen, pos(1, 7), true},
		{Queen, pos(2, 5), false},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String()+" to "+tt.to.String(), func(t *testing.T) {
			b := NewEmptyBoard()
			p := NewPiece(tt.kind, Black)
			b.Place(pos(4, 4), p)
			assert.Equal(t, tt.want, b.IsValidMove(p, pos(4, 4), tt.to, false))
		})
	}
}

func TestSlidingPieceCapturesAtEndOfLine(t *testing.T) {
	b := NewEmptyBoard()
	rook := NewPiece(Rook, White)
	b.Place(pos(7, 0), rook)
	b.Place(pos(2, 0), NewPiece(Knight, Black))

	assert.True(t, b.IsValidMove(rook, pos(7, 0), pos(2, 0), false))
	assert.False(t, b.IsValidMove(rook, pos(7, 0), pos(1, 0), false))
}

func TestQueenVerticalWithClearPath(t *testing.T) {
	b := NewBoard()
	b.Remove(pos(6, 3))
	b.Remove(pos(5, 3))
	assert.True(t, b.IsValidMove(b.At(pos(7, 3)), pos(7, 3), pos(5, 3), false))
}

func TestKingCanBeTargetedByOrdinaryMove(t *testing.T) {
	b := NewEmptyBoard()
	bishop := NewPiece(Bishop, White)
	b.Place(pos(5, 2), bishop)
	b.Place(pos(2, 5), NewPiece(King, Black))
	assert.True(t, b.IsValidMove(bishop, pos(5, 2), pos(2, 5), false))
}
