package main

import (
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-ai/internal/entity"
)

const (
	colorX     = "#E88388"
	colorO     = "#71BEF2"
	colorEmpty = "#5C5C5C"
)

// renderBoard draws the grid. Empty cells show their index, the winning line is highlighted.
func renderBoard(out *termenv.Output, board entity.Board) string {
	highlight := map[int]bool{}
	if line, ok := board.WinningLine(); ok {
		for _, i := range line {
			highlight[i] = true
		}
	}

	var sb strings.Builder
	for row := 0; row < 3; row++ {
		if row > 0 {
			sb.WriteString("───┼───┼───\n")
		}

		for col := 0; col < 3; col++ {
			if col > 0 {
				sb.WriteString("│")
			}

			i := row*3 + col
			sb.WriteString(" " + renderCell(out, board[i], i, highlight[i]) + " ")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func renderCell(out *termenv.Output, mark entity.Mark, index int, highlight bool) string {
	switch mark {
	case entity.EmptyCell:
		return out.String(strconv.Itoa(index)).Foreground(out.Color(colorEmpty)).String()
	case entity.PlayerX:
		return styleMark(out.String(string(mark)).Foreground(out.Color(colorX)).Bold(), highlight)
	case entity.PlayerO:
		return styleMark(out.String(string(mark)).Foreground(out.Color(colorO)).Bold(), highlight)
	default:
		return styleMark(out.String(string(mark)).Bold(), highlight)
	}
}

func styleMark(style termenv.Style, highlight bool) string {
	if highlight {
		style = style.Reverse()
	}

	return style.String()
}
