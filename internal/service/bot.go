package service

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-ai/internal/ai"
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

type BotService interface {
	MakeTurn(req *entity.MoveRequest) (*entity.MoveResult, error)
}

type botService struct {
	logger *slog.Logger
}

func NewBotService(logger *slog.Logger) BotService {
	return &botService{
		logger: logger.With("component", "bot"),
	}
}

// MakeTurn picks the AI move for the requested position and returns the board after that move.
func (that *botService) MakeTurn(req *entity.MoveRequest) (*entity.MoveResult, error) {
	log := that.logger.With("method", "MakeTurn")

	board, err := entity.ParseBoard(req.Board, req.AISymbol, req.HumanSymbol)
	if err != nil {
		return nil, fmt.Errorf("failed to parse board: %w", err)
	}

	result, err := ai.Evaluate(board, req.AISymbol, req.HumanSymbol)
	if err != nil {
		return nil, fmt.Errorf("failed to choose move: %w", err)
	}

	log.Debug("move chosen", "board", board.String(), "move", result.Move, "score", result.Score, "nodes", result.Nodes)

	next, err := board.WithMove(result.Move, req.AISymbol)
	if err != nil {
		return nil, fmt.Errorf("bot failed to make turn: %w", err)
	}

	return entity.NewMoveResult(result.Move, next), nil
}
