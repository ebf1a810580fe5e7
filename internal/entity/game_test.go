package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	x = PlayerX
	o = PlayerO
	e = EmptyCell
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name   string
		board  Board
		status Status
		winner Mark
		line   *Line
	}{
		{
			name:   "row 0 X wins",
			board:  Board{{x, x, x}, {e, o, e}, {e, o, e}},
			status: StatusWin,
			winner: x,
			line:   &Line{Start: Coord{0, 0}, End: Coord{0, 2}},
		},
		{
			name:   "row 2 O wins",
			board:  Board{{x, e, x}, {e, x, e}, {o, o, o}},
			status: StatusWin,
			winner: o,
			line:   &Line{Start: Coord{2, 0}, End: Coord{2, 2}},
		},
		{
			name:   "column 1 O wins",
			board:  Board{{x, o, e}, {e, o, x}, {e, o, x}},
			status: StatusWin,
			winner: o,
			line:   &Line{Start: Coord{0, 1}, End: Coord{2, 1}},
		},
		{
			name:   "main diagonal X wins",
			board:  Board{{x, o, e}, {e, x, o}, {e, e, x}},
			status: StatusWin,
			winner: x,
			line:   &Line{Start: Coord{0, 0}, End: Coord{2, 2}},
		},
		{
			name:   "anti-diagonal O wins",
			board:  Board{{x, x, o}, {e, o, x}, {o, e, e}},
			status: StatusWin,
			winner: o,
			line:   &Line{Start: Coord{0, 2}, End: Coord{2, 0}},
		},
		{
			name:   "draw",
			board:  Board{{x, o, x}, {x, o, o}, {o, x, x}},
			status: StatusDraw,
		},
		{
			name:   "in progress",
			board:  Board{{x, o, x}, {e, o, e}, {o, x, e}},
			status: StatusOngoing,
		},
		{
			name:   "empty board",
			board:  Board{},
			status: StatusOngoing,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// When: evaluating the board
			outcome := Evaluate(tc.board)

			// Then: exactly the expected outcome is reported
			assert.Equal(t, tc.status, outcome.Status)
			assert.Equal(t, tc.winner, outcome.Winner)
			assert.Equal(t, tc.line, outcome.Line)
		})
	}
}

func TestEvaluate_ScanOrder(t *testing.T) {
	t.Run("Row is reported before column", func(t *testing.T) {
		// Given: row 0 and column 0 are both complete for X
		board := Board{{x, x, x}, {x, o, o}, {x, o, o}}

		// When: evaluating the board
		outcome := Evaluate(board)

		// Then: the row, scanned first, is the winning line
		require.Equal(t, StatusWin, outcome.Status)
		assert.Equal(t, &Line{Start: Coord{0, 0}, End: Coord{0, 2}}, outcome.Line)
	})

	t.Run("Lower row is reported before a column crossing it", func(t *testing.T) {
		// Given: O owns both row 1 and column 0
		board := Board{{o, e, e}, {o, o, o}, {o, e, e}}

		// When: evaluating the board
		outcome := Evaluate(board)

		// Then: row 1 wins because rows are scanned before columns
		require.Equal(t, StatusWin, outcome.Status)
		assert.Equal(t, o, outcome.Winner)
		assert.Equal(t, &Line{Start: Coord{1, 0}, End: Coord{1, 2}}, outcome.Line)
	})

	t.Run("Column is reported before diagonal", func(t *testing.T) {
		// Given: column 2 and the main diagonal both complete for O
		board := Board{{o, x, o}, {x, o, o}, {x, x, o}}

		// When: evaluating the board
		outcome := Evaluate(board)

		// Then: the column wins
		require.Equal(t, StatusWin, outcome.Status)
		assert.Equal(t, &Line{Start: Coord{0, 2}, End: Coord{2, 2}}, outcome.Line)
	})

	t.Run("Win on a full board is a win, not a draw", func(t *testing.T) {
		// Given: the last move fills the board and completes a line
		board := Board{{x, o, x}, {o, x, o}, {o, x, x}}

		// When: evaluating the board
		outcome := Evaluate(board)

		// Then: X wins on the main diagonal
		assert.True(t, outcome.IsWinFor(x))
		assert.True(t, outcome.IsTerminal())
	})
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "X wins!", Outcome{Status: StatusWin, Winner: x}.String())
	assert.Equal(t, "It's a draw!", Outcome{Status: StatusDraw}.String())
	assert.Equal(t, "in progress", Ongoing().String())
	assert.False(t, Ongoing().IsTerminal())
}

func TestLine_Cells(t *testing.T) {
	for _, combo := range WinCombos {
		line := Line{Start: combo[0], End: combo[2]}

		assert.Equal(t, combo, line.Cells())
		assert.True(t, line.Contains(combo[1]))
	}

	assert.False(t, Line{Start: Coord{0, 2}, End: Coord{2, 0}}.Contains(Coord{0, 0}))
}
