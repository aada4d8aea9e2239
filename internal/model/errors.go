package model

import "errors"

var (
	ErrInvalidPieceSelection = errors.New("Invalid piece selection.")
	ErrGameOver              = errors.New("game is over")
	ErrGameFull              = errors.New("game is full")
	ErrNotYourTurn           = errors.New("not your turn")
	ErrPlayerNotInGame       = errors.New("player not in game")
	ErrAlreadyQueued         = errors.New("player already in queue")
)
