package chess

import (
	"encoding/json"
	"fmt"
)

// Kind is the type of a chess piece.
type Kind uint8

const (
	Pawn Kind = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

// Letter returns the single-letter code used on the board printout.
func (k Kind) Letter() string {
	switch k {
	case Pawn:
		return "P"
	case Knight:
		return "N"
	case Bishop:
		return "B"
	case Rook:
		return "R"
	case Queen:
		return "Q"
	case King:
		return "K"
	}
	return "?"
}

func (k Kind) String() string {
	switch k {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

func (k Kind) MarshalText() ([]byte, error) {
	if k > King {
		return nil, fmt.Errorf("unknown piece kind %d", uint8(k))
	}
	return []byte(k.String()), nil
}

// Color is the side a piece belongs to.
type Color uint8

const (
	White Color = iota
	Black
)

func (c Color) Letter() string {
	if c == Black {
		return "B"
	}
	return "W"
}

func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == Black {
		return "black"
	}
	return "white"
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Piece is an immutable (kind, color) pair. The board owns pieces by pointer.
type Piece struct {
	kind  Kind
	color Color
}

func NewPiece(kind Kind, color Color) *Piece {
	return &Piece{kind: kind, color: color}
}

func (p *Piece) Kind() Kind   { return p.kind }
func (p *Piece) Color() Color { return p.color }

// String returns the display tag, e.g. "WP" or "BQ".
func (p *Piece) String() string {
	return p.color.Letter() + p.kind.Letter()
}

type jsonPiece struct {
	Kind  Kind  `json:"type"`
	Color Color `json:"color"`
}

func (p *Piece) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonPiece{Kind: p.kind, Color: p.color})
}
