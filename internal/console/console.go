// Package console runs a two-player game on a shared terminal.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/benbeisheim/console-chess/internal/chess"
	"github.com/benbeisheim/console-chess/internal/model"
)

const promptFormat = "%s's turn. Enter move (e.g. b2 b3 or 1,1 2,1): "

// Run prints the board and reads moves from in until a king is captured,
// the input ends, the player types quit, or ctx is cancelled.
func Run(ctx context.Context, game *model.Game, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)

	if err := game.Render(out); err != nil {
		return err
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		turn := game.ToMove()
		fmt.Fprintf(out, promptFormat, turn.Letter())
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(line) {
		case "quit", "exit":
			return nil
		}

		result, err := game.Play(line)
		switch {
		case errors.Is(err, model.ErrInvalidPieceSelection):
			fmt.Fprintln(out, err.Error())
			continue
		case err != nil:
			fmt.Fprintf(out, "Error: %s\n", err)
			continue
		}

		if err := game.Render(out); err != nil {
			return err
		}
		if result == chess.ResultWin {
			fmt.Fprintf(out, "%s wins by capturing the King!\n", turn.Letter())
			return nil
		}
	}
}
