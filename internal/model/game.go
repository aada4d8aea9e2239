package model

import (
	"encoding/json"
	"io"
	"sync"

	"github.com/benbeisheim/console-chess/internal/chess"
	"github.com/benbeisheim/console-chess/internal/ws"
	"github.com/gofiber/websocket/v2"
	"github.com/rs/zerolog/log"
)

// Observer receives game state pushes. *websocket.Conn satisfies it.
type Observer interface {
	WriteJSON(v interface{}) error
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// The connections for a specific game
type GameConnections struct {
	connections map[string]*SyncObserver // playerID -> connection
	mu          sync.RWMutex
}

func NewGameConnections() *GameConnections {
	return &GameConnections{
		connections: make(map[string]*SyncObserver),
	}
}

// Game is one two-player game: the board plus whose turn it is and which
// colors still have their first move.
type Game struct {
	ID          string
	mu          sync.Mutex
	board       *chess.Board
	toMove      chess.Color
	firstMove   [2]bool // indexed by chess.Color
	winner      *chess.Color
	lastMove    *LastMove
	players     Players
	connections *GameConnections
	// held from snapshot to last write so states go out in move order
	broadcastMu sync.Mutex
}

// FirstMoveFlags reports which colors still have their first move. The flag
// is per color, so any pawn may use it but only once per side.
type FirstMoveFlags struct {
	White bool `json:"white"`
	Black bool `json:"black"`
}

type GameState struct {
	ID        string         `json:"id"`
	Board     *chess.Board   `json:"board"`
	ToMove    chess.Color    `json:"toMove"`
	FirstMove FirstMoveFlags `json:"firstMove"`
	Winner    *chess.Color   `json:"winner"`
	Over      bool           `json:"over"`
	Players   Players        `json:"players"`
	LastMove  *LastMove      `json:"lastMove"`
}

func NewGame(id string) *Game {
	return &Game{
		ID:          id,
		board:       chess.NewBoard(),
		toMove:      chess.White,
		firstMove:   [2]bool{true, true},
		connections: NewGameConnections(),
	}
}

// NewGameFromBoard starts a game from an arbitrary position with the given
// side to move. Both first-move flags are set.
func NewGameFromBoard(id string, board *chess.Board, toMove chess.Color) *Game {
	g := NewGame(id)
	g.board = board
	g.toMove = toMove
	return g
}

func (g *Game) ToMove() chess.Color {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.toMove
}

func (g *Game) Winner() (chess.Color, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.winner == nil {
		return chess.White, false
	}
	return *g.winner, true
}

func (g *Game) GetState() GameState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snapshot()
}

func (g *Game) snapshot() GameState {
	state := GameState{
		ID:        g.ID,
		Board:     g.board.Clone(),
		ToMove:    g.toMove,
		FirstMove: FirstMoveFlags{White: g.firstMove[chess.White], Black: g.firstMove[chess.Black]},
		Over:      g.winner != nil,
		Players:   g.players,
	}
	if g.winner != nil {
		w := *g.winner
		state.Winner = &w
	}
	if g.lastMove != nil {
		lm := *g.lastMove
		state.LastMove = &lm
	}
	return state
}

// AddPlayer seats a player. The first seat handed out is white.
func (g *Game) AddPlayer(playerID string) (chess.Color, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if playerID == "" {
		return chess.White, ErrPlayerNotInGame
	}
	if color, ok := g.players.colorOf(playerID); ok {
		return color, nil
	}
	if g.players.White == "" {
		g.players.White = playerID
		return chess.White, nil
	}
	if g.players.Black == "" {
		g.players.Black = playerID
		return chess.Black, nil
	}
	return chess.White, ErrGameFull
}

func (g *Game) IsPlayerInGame(playerID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	_, ok := g.players.colorOf(playerID)
	return ok
}

func (g *Game) canSpectate() bool {
	return g.players.White == "" || g.players.Black == ""
}

// Play applies a move typed at a shared console. The side to move is always
// the one playing.
func (g *Game) Play(input string) (chess.MoveResult, error) {
	from, to, err := chess.ParseMove(input)
	if err != nil {
		return "", err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	return g.play(from, to)
}

// MakeMove applies a move sent by a seated player and pushes the new state
// to every observer.
func (g *Game) MakeMove(playerID string, input string) (chess.MoveResult, error) {
	from, to, err := chess.ParseMove(input)
	if err != nil {
		return "", err
	}

	g.mu.Lock()
	color, seated := g.players.colorOf(playerID)
	if !seated {
		g.mu.Unlock()
		return "", ErrPlayerNotInGame
	}
	if g.winner == nil && color != g.toMove {
		g.mu.Unlock()
		return "", ErrNotYourTurn
	}
	result, err := g.play(from, to)
	if err != nil {
		g.mu.Unlock()
		return "", err
	}
	state := g.snapshot()
	g.broadcastMu.Lock()
	g.mu.Unlock()

	g.broadcastState(state)
	g.broadcastMu.Unlock()
	return result, nil
}

func (g *Game) play(from, to chess.Position) (chess.MoveResult, error) {
	if g.winner != nil {
		return "", ErrGameOver
	}
	piece := g.board.At(from)
	if piece == nil || piece.Color() != g.toMove {
		return "", ErrInvalidPieceSelection
	}

	mover := g.toMove
	result, err := g.board.MovePiece(from, to, g.firstMove[mover])
	if err != nil {
		return "", err
	}
	g.firstMove[mover] = false
	g.lastMove = &LastMove{Color: mover, From: from, To: to, Result: result}

	if result == chess.ResultWin {
		g.winner = &mover
		return result, nil
	}
	g.toMove = mover.Opponent()
	return result, nil
}

// Render prints the current board.
func (g *Game) Render(w io.Writer) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.board.Render(w)
}

// RegisterConnection attaches an observer. Seated players and, while a seat
// is free, anyone else may watch. Writes to conn are serialized unless it
// already is a *SyncObserver.
func (g *Game) RegisterConnection(playerID string, conn Observer) error {
	g.mu.Lock()
	_, seated := g.players.colorOf(playerID)
	isAuthorized := seated || g.canSpectate()
	g.mu.Unlock()

	if !isAuthorized {
		return ErrPlayerNotInGame
	}

	synced, ok := conn.(*SyncObserver)
	if !ok {
		synced = NewSyncObserver(conn)
	}

	g.connections.mu.Lock()
	if _, exists := g.connections.connections[playerID]; exists {
		// keep the healthy connection, reject the duplicate
		g.connections.mu.Unlock()
		synced.WriteMessage(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "Connection already exists"),
		)
		synced.Close()
		return nil
	}
	g.connections.connections[playerID] = synced
	g.connections.mu.Unlock()
	log.Info().Str("game_id", g.ID).Str("player_id", playerID).Msg("connection registered")

	g.mu.Lock()
	state := g.snapshot()
	g.broadcastMu.Lock()
	g.mu.Unlock()

	g.broadcastState(state)
	g.broadcastMu.Unlock()
	return nil
}

// UnregisterConnection drops playerID's observer if conn is still the
// registered one.
func (g *Game) UnregisterConnection(playerID string, conn Observer) {
	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()

	current, exists := g.connections.connections[playerID]
	if !exists || !current.wraps(conn) {
		return
	}
	delete(g.connections.connections, playerID)
	log.Info().Str("game_id", g.ID).Str("player_id", playerID).Msg("connection unregistered")
}

func (g *Game) ConnectionCount() int {
	g.connections.mu.RLock()
	defer g.connections.mu.RUnlock()
	return len(g.connections.connections)
}

// broadcastState must be called with broadcastMu held.
func (g *Game) broadcastState(state GameState) {
	payload, err := json.Marshal(state)
	if err != nil {
		log.Error().Err(err).Str("game_id", g.ID).Msg("failed to marshal state")
		return
	}
	msg := ws.Message{Type: ws.MessageTypeGameState, Payload: json.RawMessage(payload)}

	g.connections.mu.RLock()
	active := make(map[string]*SyncObserver, len(g.connections.connections))
	for playerID, conn := range g.connections.connections {
		active[playerID] = conn
	}
	g.connections.mu.RUnlock()

	for playerID, conn := range active {
		if err := conn.WriteJSON(msg); err != nil {
			log.Warn().Err(err).Str("game_id", g.ID).Str("player_id", playerID).Msg("failed to send state, dropping connection")
			g.UnregisterConnection(playerID, conn)
		}
	}
}
