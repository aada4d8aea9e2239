// service/game_manager.go
package service

import (
	"errors"
	"sync"

	"github.com/benbeisheim/console-chess/internal/chess"
	"github.com/benbeisheim/console-chess/internal/model"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrGameNotFound = errors.New("game not found")
	ErrGameExists   = errors.New("game already exists")
	ErrNotQueued    = errors.New("player not in matchmaking")
)

// GameManager owns every running game and the matchmaking queue.
type GameManager struct {
	games   map[string]*model.Game
	queue   *model.Queue
	matches map[string]model.MatchFoundEvent // playerID -> last match
	mu      sync.RWMutex
}

func NewGameManager() *GameManager {
	return &GameManager{
		games:   make(map[string]*model.Game),
		queue:   model.NewQueue(),
		matches: make(map[string]model.MatchFoundEvent),
	}
}

func (gm *GameManager) CreateGame(gameID string) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.games[gameID]; exists {
		return ErrGameExists
	}

	gm.games[gameID] = model.NewGame(gameID)
	log.Info().Str("game_id", gameID).Msg("game created")
	return nil
}

func (gm *GameManager) GetGame(gameID string) (*model.Game, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	game, exists := gm.games[gameID]
	if !exists {
		return nil, ErrGameNotFound
	}

	return game, nil
}

func (gm *GameManager) AddPlayerToGame(gameID string, playerID string) (chess.Color, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return chess.White, err
	}

	color, err := game.AddPlayer(playerID)
	if err != nil {
		return color, err
	}
	log.Info().Str("game_id", gameID).Str("player_id", playerID).Stringer("color", color).Msg("player joined")
	return color, nil
}

// JoinMatchmaking queues the player and pairs the two longest-waiting players
// into a fresh game. The returned event is non-nil when playerID was matched.
func (gm *GameManager) JoinMatchmaking(playerID string) (*model.MatchFoundEvent, error) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if err := gm.queue.AddPlayer(playerID); err != nil {
		return nil, err
	}
	delete(gm.matches, playerID)
	log.Info().Str("player_id", playerID).Int("queued", gm.queue.Size()).Msg("player queued")

	p1, p2, ok := gm.queue.NextPair()
	if !ok {
		return nil, nil
	}

	gameID := uuid.New().String()
	game := model.NewGame(gameID)
	events := make(map[string]model.MatchFoundEvent, 2)
	for _, p := range []model.QueuedPlayer{p1, p2} {
		color, err := game.AddPlayer(p.PlayerID)
		if err != nil {
			gm.queue.Requeue(p1, p2)
			log.Error().Err(err).Str("player_id", p.PlayerID).Msg("failed to seat matched player")
			return nil, err
		}
		events[p.PlayerID] = model.MatchFoundEvent{GameID: gameID, Color: color}
	}
	for id, event := range events {
		gm.matches[id] = event
	}
	gm.games[gameID] = game
	log.Info().Str("game_id", gameID).Str("white", p1.PlayerID).Str("black", p2.PlayerID).Msg("match found")

	if event, matched := gm.matches[playerID]; matched {
		return &event, nil
	}
	return nil, nil
}

// MatchStatus returns the match made for playerID, or ok=false while the
// player is still waiting. A player who never queued gets ErrNotQueued.
func (gm *GameManager) MatchStatus(playerID string) (model.MatchFoundEvent, bool, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	if event, ok := gm.matches[playerID]; ok {
		return event, true, nil
	}
	if gm.queue.Contains(playerID) {
		return model.MatchFoundEvent{}, false, nil
	}
	return model.MatchFoundEvent{}, false, ErrNotQueued
}

func (gm *GameManager) GetGameState(gameID string) (model.GameState, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return model.GameState{}, err
	}

	return game.GetState(), nil
}

func (gm *GameManager) MakeMove(gameID string, playerID string, input string) (chess.MoveResult, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return "", err
	}

	return game.MakeMove(playerID, input)
}

func (gm *GameManager) RegisterConnection(gameID string, playerID string, conn model.Observer) error {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}

	return game.RegisterConnection(playerID, conn)
}

func (gm *GameManager) UnregisterConnection(gameID string, playerID string, conn model.Observer) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return
	}

	game.UnregisterConnection(playerID, conn)
}
