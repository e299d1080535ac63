// Package ai picks moves for the computer player with an exhaustive minimax search.
package ai

import (
	"fmt"
	"math"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

// maxScore bounds a win: a win found after d plies scores maxScore-d.
const maxScore = 10

// Result describes the outcome of one search.
type Result struct {
	Move  int
	Score int
	Nodes int
}

// searcher holds the marks of a single search. It is created per call and never shared.
type searcher struct {
	ai    entity.Mark
	human entity.Mark
	nodes int
}

// BestMove returns the optimal cell for aiMark to play. Among equally scored moves the lowest index wins.
func BestMove(board entity.Board, aiMark, humanMark entity.Mark) (int, error) {
	result, err := Evaluate(board, aiMark, humanMark)
	if err != nil {
		return -1, err
	}

	return result.Move, nil
}

// Evaluate runs the search and reports the chosen move together with its score.
func Evaluate(board entity.Board, aiMark, humanMark entity.Mark) (Result, error) {
	if err := entity.ValidateMarks(aiMark, humanMark); err != nil {
		return Result{}, err
	}

	if winner := board.Winner(); winner != entity.EmptyCell {
		return Result{}, fmt.Errorf("%w: %q already has a completed line", apperror.ErrInvalidState, winner)
	}

	moves := board.LegalMoves()
	if len(moves) == 0 {
		return Result{}, fmt.Errorf("%w: board is full", apperror.ErrInvalidState)
	}

	s := &searcher{ai: aiMark, human: humanMark}

	best := Result{Move: -1, Score: math.MinInt}
	alpha := math.MinInt

	for _, move := range moves {
		child, err := board.WithMove(move, aiMark)
		if err != nil {
			return Result{}, fmt.Errorf("failed to apply move %d: %w", move, err)
		}

		score, err := s.minimax(child, 1, false, alpha, math.MaxInt)
		if err != nil {
			return Result{}, err
		}

		// strictly greater keeps the lowest index among equal scores
		if score > best.Score {
			best.Move = move
			best.Score = score
		}

		alpha = max(alpha, best.Score)
	}

	best.Nodes = s.nodes

	return best, nil
}

// minimax scores board from the AI's point of view. depth is the number of plies played since the root.
func (that *searcher) minimax(board entity.Board, depth int, maximizing bool, alpha, beta int) (int, error) {
	that.nodes++

	switch board.Winner() {
	case that.ai:
		return maxScore - depth, nil
	case that.human:
		return depth - maxScore, nil
	}

	moves := board.LegalMoves()
	if len(moves) == 0 {
		return 0, nil
	}

	mover := that.human
	best := math.MaxInt
	if maximizing {
		mover = that.ai
		best = math.MinInt
	}

	for _, move := range moves {
		child, err := board.WithMove(move, mover)
		if err != nil {
			return 0, fmt.Errorf("failed to apply move %d at depth %d: %w", move, depth, err)
		}

		score, err := that.minimax(child, depth+1, !maximizing, alpha, beta)
		if err != nil {
			return 0, err
		}

		if maximizing {
			best = max(best, score)
			alpha = max(alpha, best)
		} else {
			best = min(best, score)
			beta = min(beta, best)
		}

		if alpha >= beta {
			break
		}
	}

	return best, nil
}
