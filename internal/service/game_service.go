package service

import (
	"fmt"

	"github.com/benbeisheim/console-chess/internal/chess"
	"github.com/benbeisheim/console-chess/internal/model"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type GameService struct {
	gameManager *GameManager
}

func NewGameService(gameManager *GameManager) *GameService {
	return &GameService{
		gameManager: gameManager,
	}
}

func (gs *GameService) CreateGame() (string, error) {
	gameID := uuid.New().String()

	if err := gs.gameManager.CreateGame(gameID); err != nil {
		return "", fmt.Errorf("failed to create game: %w", err)
	}

	return gameID, nil
}

func (gs *GameService) JoinGame(gameID string, playerID string) (chess.Color, error) {
	return gs.gameManager.AddPlayerToGame(gameID, playerID)
}

func (gs *GameService) JoinMatchmaking(playerID string) (*model.MatchFoundEvent, error) {
	return gs.gameManager.JoinMatchmaking(playerID)
}

func (gs *GameService) MatchStatus(playerID string) (model.MatchFoundEvent, bool, error) {
	return gs.gameManager.MatchStatus(playerID)
}

func (gs *GameService) GetGameState(gameID string) (model.GameState, error) {
	return gs.gameManager.GetGameState(gameID)
}

func (gs *GameService) HandleMove(gameID string, playerID string, input string) (chess.MoveResult, error) {
	result, err := gs.gameManager.MakeMove(gameID, playerID, input)
	if err != nil {
		log.Debug().Err(err).Str("game_id", gameID).Str("player_id", playerID).Str("move", input).Msg("move rejected")
		return "", err
	}

	log.Info().Str("game_id", gameID).Str("player_id", playerID).Str("move", input).Str("result", string(result)).Msg("move applied")
	return result, nil
}

func (gs *GameService) RegisterConnection(gameID string, playerID string, conn model.Observer) error {
	return gs.gameManager.RegisterConnection(gameID, playerID, conn)
}

func (gs *GameService) UnregisterConnection(gameID string, playerID string, conn model.Observer) {
	gs.gameManager.UnregisterConnection(gameID, playerID, conn)
}
