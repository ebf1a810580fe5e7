package console

import (
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/rocketscienceinc/tictactoe-core/internal/entity"
)

var (
	xColor    = color.New(color.FgRed, color.Bold)
	oColor    = color.New(color.FgBlue, color.Bold)
	lineColor = color.New(color.FgGreen, color.Bold)
	dimColor  = color.New(color.Faint)
	infoColor = color.New(color.FgYellow)
)

// RenderBoard draws the board with row and column indexes.
// Cells of the winning line, if any, are highlighted.
func RenderBoard(board entity.Board, outcome entity.Outcome) string {
	var sb strings.Builder

	sb.WriteString("  ")
	for col := 0; col < entity.BoardSize; col++ {
		sb.WriteString(" ")
		sb.WriteString(dimColor.Sprint(strconv.Itoa(col)))
	}
	sb.WriteString("\n")

	for row := 0; row < entity.BoardSize; row++ {
		sb.WriteString(dimColor.Sprint(strconv.Itoa(row)))
		sb.WriteString(" ")

		for col := 0; col < entity.BoardSize; col++ {
			sb.WriteString(" ")
			sb.WriteString(renderCell(board[row][col], onLine(outcome, entity.Coord{Row: row, Col: col})))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func renderCell(mark entity.Mark, highlighted bool) string {
	switch {
	case mark == entity.EmptyCell:
		return dimColor.Sprint(mark.String())
	case highlighted:
		return lineColor.Sprint(mark.String())
	case mark == entity.PlayerX:
		return xColor.Sprint(mark.String())
	default:
		return oColor.Sprint(mark.String())
	}
}

func onLine(outcome entity.Outcome, cell entity.Coord) bool {
	return outcome.Line != nil && outcome.Line.Contains(cell)
}
