package chess

import "fmt"

const BoardSize = 8

// Position addresses a square. Row 0 is rank 8, row 7 is rank 1.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (p Position) OnBoard() bool {
	return p.Row >= 0 && p.Row < BoardSize && p.Col >= 0 && p.Col < BoardSize
}

// String returns algebraic notation for on-board squares and "row,col" otherwise.
func (p Position) String() string {
	if !p.OnBoard() {
		return fmt.Sprintf("%d,%d", p.Row, p.Col)
	}
	return fmt.Sprintf("%c%d", p.Col+'a', BoardSize-p.Row)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
