package entity

import "strings"

// MoveRequest is the engine input: the current board and who plays which mark.
type MoveRequest struct {
	Board       []Mark `json:"board"`
	AISymbol    Mark   `json:"aiSymbol"`
	HumanSymbol Mark   `json:"humanSymbol"`
}

// MoveResult is the engine output. Board and flags describe the position after Move was played.
type MoveResult struct {
	Move      int   `json:"move"`
	Board     Board `json:"board"`
	HasWinner bool  `json:"hasWinner"`
	IsFull    bool  `json:"isFull"`
	Winner    *Mark `json:"winner"`
}

// NewMoveResult evaluates the board produced by playing move.
func NewMoveResult(move int, board Board) *MoveResult {
	result := &MoveResult{
		Move:   move,
		Board:  board,
		IsFull: board.IsFull(),
	}

	if winner := board.Winner(); winner != EmptyCell {
		result.HasWinner = true
		result.Winner = &winner
	}

	return result
}

// CacheKey identifies a request by its symbols and cell contents.
func (that *MoveRequest) CacheKey() string {
	var sb strings.Builder

	sb.WriteString("move:")
	sb.WriteString(string(that.AISymbol))
	sb.WriteByte(':')
	sb.WriteString(string(that.HumanSymbol))
	sb.WriteByte(':')
	for _, cell := range that.Board {
		sb.WriteString(string(cell))
	}

	return sb.String()
}
