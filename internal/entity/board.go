package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-core/internal/apperror"
)

const BoardSize = 3

// Coord addresses a cell by row and column, both in 0..2.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Coord) InBounds() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

func (that Coord) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}

// Board is the 3x3 grid. It is a value type: assigning a Board copies every cell,
// which is what the search relies on for scratch positions.
type Board [BoardSize][BoardSize]Mark

func (that *Board) Get(row, col int) (Mark, error) {
	if !(Coord{Row: row, Col: col}).InBounds() {
		return EmptyCell, fmt.Errorf("%w: row %d, col %d", apperror.ErrOutOfBounds, row, col)
	}

	return that[row][col], nil
}

// Set writes a single cell. It does not check occupancy, that is the move gate's job.
func (that *Board) Set(row, col int, mark Mark) error {
	if !(Coord{Row: row, Col: col}).InBounds() {
		return fmt.Errorf("%w: row %d, col %d", apperror.ErrOutOfBounds, row, col)
	}

	if !mark.IsPlayer() {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidMark, mark)
	}

	that[row][col] = mark

	return nil
}

func (that *Board) IsFull() bool {
	for _, row := range that {
		for _, cell := range row {
			if cell == EmptyCell {
				return false
			}
		}
	}

	return true
}

// EmptyCells lists the free cells in row-major order.
func (that *Board) EmptyCells() []Coord {
	cells := make([]Coord, 0, BoardSize*BoardSize)
	for r, row := range that {
		for c, cell := range row {
			if cell == EmptyCell {
				cells = append(cells, Coord{Row: r, Col: c})
			}
		}
	}

	return cells
}

func (that *Board) Count(mark Mark) int {
	n := 0
	for _, row := range that {
		for _, cell := range row {
			if cell == mark {
				n++
			}
		}
	}

	return n
}

func (that Board) String() string {
	var sb strings.Builder
	for r, row := range that {
		for c, cell := range row {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(cell.String())
		}
		if r < BoardSize-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}
