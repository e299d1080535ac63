// Command play is a terminal game against the move engine.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
	"github.com/rocketscienceinc/tictactoe-ai/internal/logger"
	"github.com/rocketscienceinc/tictactoe-ai/internal/service"
)

type bot interface {
	MakeTurn(req *entity.MoveRequest) (*entity.MoveResult, error)
}

func main() {
	symbol := flag.String("symbol", "X", "your mark, X moves first")
	logLevel := flag.String("log-level", "error", "log level of the bot")
	flag.Parse()

	human := entity.Mark(strings.ToUpper(*symbol))
	if human != entity.PlayerX && human != entity.PlayerO {
		fmt.Fprintf(os.Stderr, "symbol must be X or O, got %q\n", *symbol)
		os.Exit(2)
	}

	out := termenv.NewOutput(os.Stdout)
	bot := service.NewBotService(logger.New(os.Stderr, *logLevel))

	if err := play(os.Stdin, out, bot, human); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func opponent(mark entity.Mark) entity.Mark {
	if mark == entity.PlayerX {
		return entity.PlayerO
	}

	return entity.PlayerX
}

// play runs one game. It returns nil when the game ends or the input is closed.
func play(in io.Reader, out *termenv.Output, bot bot, human entity.Mark) error {
	ai := opponent(human)
	board := entity.NewBoard()
	scanner := bufio.NewScanner(in)

	turn := entity.PlayerX
	for board.Outcome() == entity.OutcomeOngoing {
		if turn == ai {
			result, err := bot.MakeTurn(&entity.MoveRequest{Board: board.Cells(), AISymbol: ai, HumanSymbol: human})
			if err != nil {
				return fmt.Errorf("bot failed to make turn: %w", err)
			}

			board = result.Board
			fmt.Fprintf(out, "AI plays %d\n", result.Move)
			turn = human

			continue
		}

		fmt.Fprint(out, renderBoard(out, board))
		fmt.Fprintf(out, "Your move (%s), cell 0-8: ", human)

		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		next, err := humanMove(board, scanner.Text(), human)
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}

		board = next
		turn = ai
	}

	fmt.Fprint(out, renderBoard(out, board))
	fmt.Fprintln(out, verdict(board, human))

	return nil
}

func humanMove(board entity.Board, input string, human entity.Mark) (entity.Board, error) {
	cell, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return board, fmt.Errorf("not a cell number: %q", input)
	}

	next, err := board.WithMove(cell, human)
	switch {
	case errors.Is(err, apperror.ErrInvalidIndex):
		return board, fmt.Errorf("cell %d does not exist", cell)
	case errors.Is(err, apperror.ErrIllegalMove):
		return board, fmt.Errorf("cell %d is taken", cell)
	case err != nil:
		return board, err
	}

	return next, nil
}

func verdict(board entity.Board, human entity.Mark) string {
	switch winner := board.Winner(); winner {
	case entity.EmptyCell:
		return "Draw"
	case human:
		return "You win"
	default:
		return "AI wins"
	}
}
