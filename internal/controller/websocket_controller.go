package controller

import (
	"encoding/json"
	"fmt"

	"github.com/benbeisheim/console-chess/internal/middleware"
	"github.com/benbeisheim/console-chess/internal/model"
	"github.com/benbeisheim/console-chess/internal/service"
	"github.com/benbeisheim/console-chess/internal/ws"
	"github.com/gofiber/websocket/v2"
	"github.com/rs/zerolog/log"
)

type WebSocketController struct {
	gameService *service.GameService
}

func NewWebSocketController(gameService *service.GameService) *WebSocketController {
	return &WebSocketController{
		gameService: gameService,
	}
}

// HandleConnection is called when a new WebSocket connection is established
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	gameID := c.Params("gameId")
	playerID, _ := c.Locals(middleware.PlayerIDKey).(string)
	logger := log.With().Str("game_id", gameID).Str("player_id", playerID).Logger()
	// state pushes from other goroutines share this conn
	conn := model.NewSyncObserver(c)

	if err := wsc.gameService.RegisterConnection(gameID, playerID, conn); err != nil {
		logger.Warn().Err(err).Msg("failed to register connection")
		sendError(conn, err.Error())
		conn.Close()
		return
	}

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			logger.Debug().Err(err).Msg("read error")
			break
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			logger.Debug().Err(err).Msg("parse error")
			sendError(conn, "malformed message")
			continue
		}

		if err := wsc.handleMessage(gameID, playerID, msg); err != nil {
			sendError(conn, err.Error())
		}
	}

	wsc.gameService.UnregisterConnection(gameID, playerID, conn)
}

// handleMessage dispatches one inbound message. A successful move is
// pushed back to every observer by the game itself.
func (wsc *WebSocketController) handleMessage(gameID, playerID string, msg ws.Message) error {
	switch msg.Type {
	case ws.MessageTypeMove:
		var move model.MoveRequest
		if err := json.Unmarshal(msg.Payload, &move); err != nil {
			return err
		}
		_, err := wsc.gameService.HandleMove(gameID, playerID, move.Move)
		return err

	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
}

func sendError(c model.Observer, errorMsg string) {
	if err := c.WriteJSON(ws.NewErrorMessage(errorMsg)); err != nil {
		log.Debug().Err(err).Msg("failed to send error message")
	}
}
