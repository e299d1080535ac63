package entity

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/rocketscienceinc/tictactoe-ai/internal/apperror"
)

// Mark is the symbol a cell holds.
type Mark string

const (
	EmptyCell Mark = "_"

	PlayerX Mark = "X"
	PlayerO Mark = "O"
)

const BoardSize = 9

var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Outcome is derived from the board contents, it is never stored.
type Outcome int

const (
	OutcomeOngoing Outcome = iota
	OutcomeWin
	OutcomeDraw
)

func (that Outcome) String() string {
	switch that {
	case OutcomeWin:
		return "win"
	case OutcomeDraw:
		return "draw"
	default:
		return "ongoing"
	}
}

// Board is a 3x3 grid in row-major order. It is a value type: copies never share cells.
type Board [BoardSize]Mark

// NewBoard returns a board with every cell empty.
func NewBoard() Board {
	var board Board
	for i := range board {
		board[i] = EmptyCell
	}

	return board
}

// IsValid reports whether the mark can be placed by a player.
func (that Mark) IsValid() bool {
	if utf8.RuneCountInString(string(that)) != 1 || that == EmptyCell {
		return false
	}

	r, _ := utf8.DecodeRuneInString(string(that))

	return unicode.IsPrint(r) && !unicode.IsSpace(r)
}

// ValidateMarks checks that both players have a usable and distinct mark.
func ValidateMarks(aiMark, humanMark Mark) error {
	if !aiMark.IsValid() {
		return fmt.Errorf("%w: invalid ai symbol %q", apperror.ErrMalformedInput, aiMark)
	}

	if !humanMark.IsValid() {
		return fmt.Errorf("%w: invalid human symbol %q", apperror.ErrMalformedInput, humanMark)
	}

	if aiMark == humanMark {
		return fmt.Errorf("%w: ai and human share symbol %q", apperror.ErrMalformedInput, aiMark)
	}

	return nil
}

// ParseBoard builds a board from caller-supplied cells. Every cell must be empty or hold one of the
// two player marks, and at most one player may own a completed line.
func ParseBoard(cells []Mark, aiMark, humanMark Mark) (Board, error) {
	var board Board

	if err := ValidateMarks(aiMark, humanMark); err != nil {
		return board, err
	}

	if len(cells) != BoardSize {
		return board, fmt.Errorf("%w: board has %d cells, want %d", apperror.ErrMalformedInput, len(cells), BoardSize)
	}

	for i, cell := range cells {
		if cell != EmptyCell && cell != aiMark && cell != humanMark {
			return board, fmt.Errorf("%w: cell %d holds unknown symbol %q", apperror.ErrMalformedInput, i, cell)
		}

		board[i] = cell
	}

	if winners := board.winners(); len(winners) > 1 {
		return board, fmt.Errorf("%w: both %q and %q have a completed line", apperror.ErrMalformedInput, winners[0], winners[1])
	}

	return board, nil
}

func (that Board) CellAt(index int) (Mark, error) {
	if index < 0 || index >= BoardSize {
		return EmptyCell, fmt.Errorf("%w: cell %d", apperror.ErrInvalidIndex, index)
	}

	return that[index], nil
}

func (that Board) IsEmpty(index int) bool {
	cell, err := that.CellAt(index)

	return err == nil && cell == EmptyCell
}

// LegalMoves returns the empty cells in ascending order.
func (that Board) LegalMoves() []int {
	moves := make([]int, 0, BoardSize)
	for i, cell := range that {
		if cell == EmptyCell {
			moves = append(moves, i)
		}
	}

	return moves
}

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// Winner returns the owner of the first completed line, or EmptyCell when there is none.
func (that Board) Winner() Mark {
	if line, ok := that.WinningLine(); ok {
		return that[line[0]]
	}

	return EmptyCell
}

// WinningLine returns the first completed line in WinCombos order.
func (that Board) WinningLine() ([3]int, bool) {
	for _, combo := range WinCombos {
		a, b, c := that[combo[0]], that[combo[1]], that[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return combo, true
		}
	}

	return [3]int{}, false
}

func (that Board) Outcome() Outcome {
	if that.Winner() != EmptyCell {
		return OutcomeWin
	}

	if that.IsFull() {
		return OutcomeDraw
	}

	return OutcomeOngoing
}

// WithMove returns a copy of the board with mark placed on index. The receiver is left untouched.
func (that Board) WithMove(index int, mark Mark) (Board, error) {
	cell, err := that.CellAt(index)
	if err != nil {
		return that, err
	}

	if cell != EmptyCell {
		return that, fmt.Errorf("%w: cell %d holds %q", apperror.ErrIllegalMove, index, cell)
	}

	that[index] = mark

	return that, nil
}

func (that Board) Cells() []Mark {
	return that[:]
}

func (that Board) String() string {
	buf := make([]byte, 0, BoardSize*2+2)
	for i, cell := range that {
		buf = append(buf, cell...)
		if i%3 == 2 && i != BoardSize-1 {
			buf = append(buf, '/')
		}
	}

	return string(buf)
}

// winners lists the distinct owners of completed lines.
func (that Board) winners() []Mark {
	var found []Mark
	for _, combo := range WinCombos {
		a, b, c := that[combo[0]], that[combo[1]], that[combo[2]]
		if a == EmptyCell || a != b || b != c {
			continue
		}

		seen := false
		for _, mark := range found {
			if mark == a {
				seen = true
				break
			}
		}

		if !seen {
			found = append(found, a)
		}
	}

	return found
}
