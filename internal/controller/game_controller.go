package controller

import (
	"errors"

	"github.com/benbeisheim/console-chess/internal/chess"
	"github.com/benbeisheim/console-chess/internal/middleware"
	"github.com/benbeisheim/console-chess/internal/model"
	"github.com/benbeisheim/console-chess/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

type GameController struct {
	gameService *service.GameService
}

func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{gameService: gameService}
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrGameNotFound), errors.Is(err, service.ErrNotQueued):
		return fiber.StatusNotFound
	case errors.Is(err, model.ErrPlayerNotInGame), errors.Is(err, model.ErrNotYourTurn):
		return fiber.StatusForbidden
	case errors.Is(err, model.ErrGameOver), errors.Is(err, model.ErrGameFull),
		errors.Is(err, model.ErrAlreadyQueued), errors.Is(err, service.ErrGameExists):
		return fiber.StatusConflict
	case errors.Is(err, chess.ErrInvalidInputFormat), errors.Is(err, chess.ErrIllegalMove),
		errors.Is(err, chess.ErrNoPieceAtSource), errors.Is(err, model.ErrInvalidPieceSelection):
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}

func errorResponse(c *fiber.Ctx, err error) error {
	status := statusFor(err)
	if status == fiber.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Path()).Msg("request failed")
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	gameID, err := gc.gameService.CreateGame()
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Game created",
		"game_id": gameID,
	})
}

func (gc *GameController) JoinGame(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	playerID := middleware.PlayerID(c)

	color, err := gc.gameService.JoinGame(gameID, playerID)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Game joined",
		"color":   color,
	})
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	gameState, err := gc.gameService.GetGameState(c.Params("gameId"))
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(gameState)
}

func (gc *GameController) MakeMove(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	playerID := middleware.PlayerID(c)

	var req model.MoveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	result, err := gc.gameService.HandleMove(gameID, playerID, req.Move)
	if err != nil {
		return errorResponse(c, err)
	}

	state, err := gc.gameService.GetGameState(gameID)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"result": result,
		"state":  state,
	})
}

func (gc *GameController) JoinMatchmaking(c *fiber.Ctx) error {
	playerID := middleware.PlayerID(c)

	event, err := gc.gameService.JoinMatchmaking(playerID)
	if err != nil {
		return errorResponse(c, err)
	}
	if event == nil {
		return c.JSON(fiber.Map{
			"status": "queued",
		})
	}
	return c.JSON(fiber.Map{
		"status":  "matched",
		"game_id": event.GameID,
		"color":   event.Color,
	})
}

func (gc *GameController) MatchmakingStatus(c *fiber.Ctx) error {
	event, matched, err := gc.gameService.MatchStatus(middleware.PlayerID(c))
	if err != nil {
		return errorResponse(c, err)
	}
	if !matched {
		return c.JSON(fiber.Map{
			"status": "queued",
		})
	}
	return c.JSON(fiber.Map{
		"status":  "matched",
		"game_id": event.GameID,
		"color":   event.Color,
	})
}
