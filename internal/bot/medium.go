package bot

import "github.com/rocketscienceinc/tictactoe-core/internal/entity"

// mediumMove wins if it can, otherwise blocks, otherwise plays at random.
func (that *Engine) mediumMove(board entity.Board, empty []entity.Coord, ai, opponent entity.Mark) entity.Coord {
	if cell, ok := findWinningCell(board, empty, ai); ok {
		return cell
	}

	if cell, ok := findWinningCell(board, empty, opponent); ok {
		return cell
	}

	return that.randomMove(empty)
}

// findWinningCell returns the first cell, in the order given, that completes a line for mark.
func findWinningCell(board entity.Board, empty []entity.Coord, mark entity.Mark) (entity.Coord, bool) {
	for _, cell := range empty {
		scratch := board
		scratch[cell.Row][cell.Col] = mark

		if entity.Evaluate(scratch).IsWinFor(mark) {
			return cell, true
		}
	}

	return entity.Coord{}, false
}
