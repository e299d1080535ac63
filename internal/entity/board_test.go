package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
)

func TestBoard_CellAt(t *testing.T) {
	board := Board{PlayerX, EmptyCell, EmptyCell, EmptyCell, PlayerO, EmptyCell, EmptyCell, EmptyCell, EmptyCell}

	t.Run("Returns the mark on a valid index", func(t *testing.T) {
		// When: reading the center
		mark, err := board.CellAt(4)

		// Then: the O mark is returned
		require.NoError(t, err)
		assert.Equal(t, PlayerO, mark)
	})

	t.Run("Error on Invalid Cell Index (Greater than Range)", func(t *testing.T) {
		// When: reading past the board
		_, err := board.CellAt(9)

		// Then: an ErrInvalidIndex error should be returned
		assert.ErrorIs(t, err, apperror.ErrInvalidIndex)
	})

	t.Run("Error on Invalid Cell Index (Negative)", func(t *testing.T) {
		// When: reading a negative index
		_, err := board.CellAt(-1)

		// Then: an ErrInvalidIndex error should be returned
		assert.ErrorIs(t, err, apperror.ErrInvalidIndex)
	})
}

func TestBoard_IsEmpty(t *testing.T) {
	board := Board{PlayerX, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell}

	assert.False(t, board.IsEmpty(0))
	assert.True(t, board.IsEmpty(1))
	assert.False(t, board.IsEmpty(9))
}

func TestBoard_LegalMoves(t *testing.T) {
	t.Run("Lists empty cells in ascending order", func(t *testing.T) {
		// Given: a board with three marks
		board := Board{
			PlayerX, EmptyCell, PlayerO,
			EmptyCell, PlayerX, EmptyCell,
			EmptyCell, EmptyCell, EmptyCell,
		}

		// When: listing legal moves
		moves := board.LegalMoves()

		// Then: the free cells come back sorted
		assert.Equal(t, []int{1, 3, 5, 6, 7, 8}, moves)
		assert.False(t, board.IsFull())
	})

	t.Run("Full board has no moves", func(t *testing.T) {
		// Given: a drawn board
		board := Board{
			PlayerX, PlayerO, PlayerX,
			PlayerO, PlayerX, PlayerO,
			PlayerO, PlayerX, PlayerO,
		}

		// Then: there are no legal moves and the board is full
		assert.Empty(t, board.LegalMoves())
		assert.True(t, board.IsFull())
	})
}

func TestBoard_Winner(t *testing.T) {
	t.Run("Detects every line", func(t *testing.T) {
		for _, combo := range WinCombos {
			// Given: a board where X owns exactly this line
			board := NewBoard()
			for _, i := range combo {
				board[i] = PlayerX
			}

			// When: checking for a winner
			winner := board.Winner()
			line, ok := board.WinningLine()

			// Then: X wins on that line
			assert.Equal(t, PlayerX, winner, "line %v", combo)
			assert.True(t, ok)
			assert.Equal(t, combo, line)
			assert.Equal(t, OutcomeWin, board.Outcome())
		}
	})

	t.Run("Returns EmptyCell when the game is ongoing", func(t *testing.T) {
		// Given: a game that is still ongoing
		board := Board{
			PlayerX, PlayerO, EmptyCell,
			EmptyCell, PlayerX, EmptyCell,
			EmptyCell, EmptyCell, PlayerO,
		}

		// Then: there is no winner
		assert.Equal(t, EmptyCell, board.Winner())
		assert.Equal(t, OutcomeOngoing, board.Outcome())
	})

	t.Run("Returns draw when the board is full", func(t *testing.T) {
		// Given: a game that ended in a tie
		board := Board{
			PlayerX, PlayerO, PlayerX,
			PlayerO, PlayerX, PlayerO,
			PlayerO, PlayerX, PlayerO,
		}

		// Then: there is no winner and the outcome is a draw
		assert.Equal(t, EmptyCell, board.Winner())
		assert.Equal(t, OutcomeDraw, board.Outcome())
	})

	t.Run("Is symmetric under swapping marks", func(t *testing.T) {
		// Given: a board won by O and its relabeled copy
		board := Board{
			PlayerO, PlayerX, PlayerX,
			EmptyCell, PlayerO, EmptyCell,
			PlayerX, EmptyCell, PlayerO,
		}

		swapped := board
		for i, cell := range swapped {
			switch cell {
			case PlayerX:
				swapped[i] = PlayerO
			case PlayerO:
				swapped[i] = PlayerX
			}
		}

		// Then: the winner is relabeled too
		assert.Equal(t, PlayerO, board.Winner())
		assert.Equal(t, PlayerX, swapped.Winner())
	})

	t.Run("Repeated calls give the same answer", func(t *testing.T) {
		board := Board{
			PlayerX, PlayerX, PlayerX,
			PlayerO, PlayerO, EmptyCell,
			EmptyCell, EmptyCell, EmptyCell,
		}

		first, firstFull := board.Winner(), board.IsFull()
		second, secondFull := board.Winner(), board.IsFull()

		assert.Equal(t, first, second)
		assert.Equal(t, firstFull, secondFull)
	})
}

func TestBoard_WithMove(t *testing.T) {
	t.Run("Returns a new board and keeps the receiver", func(t *testing.T) {
		// Given: an empty board
		board := NewBoard()

		// When: placing X in the center
		next, err := board.WithMove(4, PlayerX)

		// Then: only the copy changed
		require.NoError(t, err)
		assert.Equal(t, PlayerX, next[4])
		assert.Equal(t, EmptyCell, board[4])
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: a board where cell 0 is occupied by X
		board, err := NewBoard().WithMove(0, PlayerX)
		require.NoError(t, err)

		// When: O tries the same cell
		_, err = board.WithMove(0, PlayerO)

		// Then: an ErrIllegalMove error should be returned
		require.ErrorIs(t, err, apperror.ErrIllegalMove)
		assert.Equal(t, PlayerX, board[0])
	})

	t.Run("Error on out of range index", func(t *testing.T) {
		_, err := NewBoard().WithMove(20, PlayerX)

		assert.ErrorIs(t, err, apperror.ErrInvalidIndex)
	})
}

func TestParseBoard(t *testing.T) {
	empty := []Mark{"_", "_", "_", "_", "_", "_", "_", "_", "_"}

	t.Run("Accepts a well formed board", func(t *testing.T) {
		// Given: cells with both marks
		cells := []Mark{"_", "X", "O", "_", "_", "_", "_", "_", "_"}

		// When: parsing
		board, err := ParseBoard(cells, PlayerO, PlayerX)

		// Then: the board mirrors the cells
		require.NoError(t, err)
		assert.Equal(t, Board{"_", "X", "O", "_", "_", "_", "_", "_", "_"}, board)
	})

	t.Run("Accepts custom marks", func(t *testing.T) {
		cells := []Mark{"A", "_", "_", "_", "B", "_", "_", "_", "_"}

		_, err := ParseBoard(cells, "A", "B")

		require.NoError(t, err)
	})

	testCases := []struct {
		name  string
		cells []Mark
		ai    Mark
		human Mark
	}{
		{name: "short board", cells: empty[:8], ai: PlayerO, human: PlayerX},
		{name: "long board", cells: append(append([]Mark{}, empty...), "_"), ai: PlayerO, human: PlayerX},
		{name: "nil board", cells: nil, ai: PlayerO, human: PlayerX},
		{name: "empty ai symbol", cells: empty, ai: "", human: PlayerX},
		{name: "ai symbol is the empty marker", cells: empty, ai: EmptyCell, human: PlayerX},
		{name: "multi character symbol", cells: empty, ai: "XO", human: PlayerX},
		{name: "whitespace symbol", cells: empty, ai: " ", human: PlayerX},
		{name: "same symbols", cells: empty, ai: PlayerX, human: PlayerX},
		{name: "unknown cell symbol", cells: []Mark{"Z", "_", "_", "_", "_", "_", "_", "_", "_"}, ai: PlayerO, human: PlayerX},
		{name: "empty string cell", cells: []Mark{"", "_", "_", "_", "_", "_", "_", "_", "_"}, ai: PlayerO, human: PlayerX},
		{
			name:  "both players own a line",
			cells: []Mark{"X", "X", "X", "O", "O", "O", "_", "_", "_"},
			ai:    PlayerO,
			human: PlayerX,
		},
	}

	for _, tc := range testCases {
		t.Run("Rejects "+tc.name, func(t *testing.T) {
			_, err := ParseBoard(tc.cells, tc.ai, tc.human)

			assert.ErrorIs(t, err, apperror.ErrMalformedInput)
		})
	}

	t.Run("Accepts two lines of the same player", func(t *testing.T) {
		// Given: X completed a row and a column with one move
		cells := []Mark{"X", "X", "X", "X", "O", "O", "X", "O", "O"}

		// When: parsing
		board, err := ParseBoard(cells, PlayerO, PlayerX)

		// Then: the board is valid and X is the winner
		require.NoError(t, err)
		assert.Equal(t, PlayerX, board.Winner())
	})
}

func TestMoveResult(t *testing.T) {
	t.Run("Reports a winner", func(t *testing.T) {
		board := Board{"O", "O", "O", "X", "X", "_", "_", "_", "_"}

		result := NewMoveResult(2, board)

		require.NotNil(t, result.Winner)
		assert.True(t, result.HasWinner)
		assert.Equal(t, PlayerO, *result.Winner)
		assert.False(t, result.IsFull)
	})

	t.Run("Reports a full board without winner", func(t *testing.T) {
		board := Board{"X", "O", "X", "X", "O", "O", "O", "X", "X"}

		result := NewMoveResult(8, board)

		assert.Nil(t, result.Winner)
		assert.False(t, result.HasWinner)
		assert.True(t, result.IsFull)
	})
}

func TestMoveRequest_CacheKey(t *testing.T) {
	req := &MoveRequest{
		Board:       []Mark{"_", "X", "O", "_", "_", "_", "_", "_", "_"},
		AISymbol:    PlayerO,
		HumanSymbol: PlayerX,
	}

	assert.Equal(t, "move:O:X:_XO______", req.CacheKey())
}
