package chess

import (
	"fmt"
	"io"
	"strings"
)

const fileHeader = "  a  b  c  d  e  f  g  h"

// Render prints the board with rank 8 at the top. Empty squares are ". ".
func (b *Board) Render(w io.Writer) error {
	var sb strings.Builder
	sb.WriteString(fileHeader + "\n")
	for row := 0; row < BoardSize; row++ {
		rank := BoardSize - row
		fmt.Fprintf(&sb, "%d ", rank)
		for col := 0; col < BoardSize; col++ {
			if p := b.squares[row][col]; p != nil {
				sb.WriteString(p.String())
			} else {
				sb.WriteString(". ")
			}
			sb.WriteString(" ")
		}
		fmt.Fprintf(&sb, "%d\n", rank)
	}
	sb.WriteString(fileHeader + "\n\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

func (b *Board) String() string {
	var sb strings.Builder
	_ = b.Render(&sb)
	return sb.String()
}
