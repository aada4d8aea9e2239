package model

import "github.com/benbeisheim/console-chess/internal/chess"

// Players holds the seated player ids. An empty id is a free seat.
type Players struct {
	White string `json:"white"`
	Black string `json:"black"`
}

func (p Players) colorOf(playerID string) (chess.Color, bool) {
	switch {
	case playerID == "":
		return chess.White, false
	case p.White == playerID:
		return chess.White, true
	case p.Black == playerID:
		return chess.Black, true
	}
	return chess.White, false
}
