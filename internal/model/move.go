package model

import "github.com/benbeisheim/console-chess/internal/chess"

// MoveRequest is a move as typed by a player, e.g. "e2 e4" or "6,4 4,4".
type MoveRequest struct {
	Move string `json:"move"`
}

// LastMove records the most recent successful move of a game.
type LastMove struct {
	Color  chess.Color      `json:"color"`
	From   chess.Position   `json:"from"`
	To     chess.Position   `json:"to"`
	Result chess.MoveResult `json:"result"`
}
