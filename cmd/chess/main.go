// Command chess runs a two-player chess game, either on the terminal
// ("play", the default) or as an HTTP/WebSocket server ("serve").
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/benbeisheim/console-chess/internal/config"
	"github.com/benbeisheim/console-chess/internal/console"
	"github.com/benbeisheim/console-chess/internal/controller"
	"github.com/benbeisheim/console-chess/internal/logging"
	"github.com/benbeisheim/console-chess/internal/model"
	"github.com/benbeisheim/console-chess/internal/service"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "warning: error loading .env file: %v\n", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		log.Fatal().Err(err).Msg("chess exited")
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "chess",
		Usage: "two-player chess with king capture as the win condition",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "trace, debug, info, warn or error",
				Value:   config.DefaultLogLevel,
				EnvVars: []string{"CHESS_LOG_LEVEL"},
			},
			&cli.BoolFlag{
				Name:    "log-json",
				Usage:   "write logs as JSON instead of console lines",
				EnvVars: []string{"CHESS_LOG_JSON"},
			},
		},
		Before: func(cCtx *cli.Context) error {
			return logging.Configure(cCtx.String("log-level"), !cCtx.Bool("log-json"))
		},
		Action: playAction,
		Commands: []*cli.Command{
			{
				Name:   "play",
				Usage:  "play on this terminal, both sides taking turns",
				Action: playAction,
			},
			{
				Name:  "serve",
				Usage: "serve games over HTTP and WebSocket",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "addr",
						Aliases: []string{"a"},
						Usage:   "listen address",
						Value:   config.DefaultAddr,
						EnvVars: []string{"CHESS_ADDR"},
					},
					&cli.StringFlag{
						Name:    "origins",
						Usage:   "comma separated list of allowed CORS origins",
						Value:   config.DefaultAllowedOrigins,
						EnvVars: []string{"CHESS_ALLOWED_ORIGINS"},
					},
				},
				Action: serveAction,
			},
		},
	}
}

func playAction(cCtx *cli.Context) error {
	game := model.NewGame(uuid.New().String())
	log.Debug().Str("game_id", game.ID).Msg("starting console game")
	err := console.Run(cCtx.Context, game, os.Stdin, os.Stdout)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func serveAction(cCtx *cli.Context) error {
	cfg := config.Config{
		Addr:           cCtx.String("addr"),
		AllowedOrigins: cCtx.String("origins"),
		LogLevel:       cCtx.String("log-level"),
		Pretty:         !cCtx.Bool("log-json"),
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	gameService := service.NewGameService(service.NewGameManager())
	app := controller.NewApp(cfg, gameService)

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Addr).Strs("origins", cfg.Origins()).Msg("server listening")
		errCh <- app.Listen(cfg.Addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-cCtx.Context.Done():
		log.Info().Msg("shutting down")
		return app.ShutdownWithTimeout(5 * time.Second)
	}
}
