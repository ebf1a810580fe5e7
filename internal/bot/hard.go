package bot

import (
	"math"

	"github.com/rocketscienceinc/tictactoe-core/internal/entity"
)

const winScore = 10

// bestMove runs a full minimax from every candidate and returns the first
// candidate with the highest score.
func bestMove(board entity.Board, candidates []entity.Coord, ai, opponent entity.Mark) (entity.Coord, int) {
	best := candidates[0]
	bestScore := math.MinInt

	for _, cell := range candidates {
		if score := scoreMove(board, cell, ai, opponent); score > bestScore {
			bestScore = score
			best = cell
		}
	}

	return best, bestScore
}

// scoreMove places ai on cell in a scratch copy and scores the position with the
// opponent to move. The position right after the candidate is depth 0.
func scoreMove(board entity.Board, cell entity.Coord, ai, opponent entity.Mark) int {
	board[cell.Row][cell.Col] = ai

	return minimax(board, 0, false, ai, opponent)
}

// minimax takes the board by value, so sibling branches never see each other's marks.
func minimax(board entity.Board, depth int, maximizing bool, ai, opponent entity.Mark) int {
	outcome := entity.Evaluate(board)
	switch {
	case outcome.IsWinFor(ai):
		return winScore - depth
	case outcome.IsWinFor(opponent):
		return depth - winScore
	case outcome.Status == entity.StatusDraw:
		return 0
	}

	if maximizing {
		best := math.MinInt
		for _, cell := range board.EmptyCells() {
			next := board
			next[cell.Row][cell.Col] = ai
			best = max(best, minimax(next, depth+1, false, ai, opponent))
		}
		return best
	}

	best := math.MaxInt
	for _, cell := range board.EmptyCells() {
		next := board
		next[cell.Row][cell.Col] = opponent
		best = min(best, minimax(next, depth+1, true, ai, opponent))
	}
	return best
}
