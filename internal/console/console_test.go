package console

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"math/rand"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-core/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-core/internal/bot"
	"github.com/rocketscienceinc/tictactoe-core/internal/entity"
	"github.com/rocketscienceinc/tictactoe-core/internal/service"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	m.Run()
}

func newTestConsole(input io.Reader, out io.Writer) *Console {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.NewGamePlayService(logger, bot.New(rand.NewSource(1)), nil)

	return New(logger, svc, input, out)
}

func TestRenderBoard(t *testing.T) {
	t.Run("Empty board", func(t *testing.T) {
		assert.Equal(t, "   0 1 2\n0  . . .\n1  . . .\n2  . . .\n", RenderBoard(entity.Board{}, entity.Ongoing()))
	})

	t.Run("Marks in place", func(t *testing.T) {
		board := entity.Board{{entity.PlayerX, "", ""}, {"", entity.PlayerO, ""}, {"", "", entity.PlayerX}}

		assert.Equal(t, "   0 1 2\n0  X . .\n1  . O .\n2  . . X\n", RenderBoard(board, entity.Ongoing()))
	})

	t.Run("Winning line is highlighted", func(t *testing.T) {
		// Given: colors enabled and X winning on the top row
		color.NoColor = false
		t.Cleanup(func() { color.NoColor = true })

		board := entity.Board{{entity.PlayerX, entity.PlayerX, entity.PlayerX}, {entity.PlayerO, entity.PlayerO, ""}, {"", "", ""}}
		outcome := entity.Evaluate(board)

		// When: rendering
		rendered := RenderBoard(board, outcome)

		// Then: the line cells use the line color and O keeps its own
		assert.Equal(t, 3, strings.Count(rendered, lineColor.Sprint("X")))
		assert.Equal(t, 2, strings.Count(rendered, oColor.Sprint("O")))
		assert.NotContains(t, rendered, xColor.Sprint("X"))
	})
}

func TestConsole_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("Rejected input keeps the game going", func(t *testing.T) {
		// Given: a player who repeats a move and types nonsense
		var out bytes.Buffer
		input := strings.NewReader("0 0\n1 1\nfoo\n7 7\nhelp\nquit\n")

		// When: running the console against the hard AI
		err := newTestConsole(input, &out).Run(ctx, entity.HardDifficulty, entity.PlayerX)

		// Then: every problem is reported and the session ends cleanly
		require.NoError(t, err)
		output := out.String()
		assert.Contains(t, output, "you play X against the hard AI")
		assert.Contains(t, output, "That cell is taken, pick another one.")
		assert.Contains(t, output, `Enter a move as "row col", or type help.`)
		assert.Contains(t, output, "Rows and columns go from 0 to 2.")
		assert.Contains(t, output, "new <difficulty> <mark>")
		assert.Contains(t, output, "Bye!")
	})

	t.Run("Lost round and restart", func(t *testing.T) {
		// Given: a player who ignores the diagonal threat
		var out bytes.Buffer
		input := strings.NewReader("0 0\n0 1\n2 2\n1 0\nrestart\nquit\n")

		// When: running the console
		err := newTestConsole(input, &out).Run(ctx, entity.HardDifficulty, entity.PlayerX)

		// Then: the AI wins, further moves are refused and restart clears the board
		require.NoError(t, err)
		output := out.String()
		assert.Contains(t, output, "O wins!")
		assert.Contains(t, output, "The round is over. Type restart to play again.")

		afterRestart := output[strings.LastIndex(output, "restart"):]
		assert.Contains(t, afterRestart, RenderBoard(entity.Board{}, entity.Ongoing()))
	})

	t.Run("New settings", func(t *testing.T) {
		var out bytes.Buffer
		input := strings.NewReader("new easy o\nnew\nquit\n")

		err := newTestConsole(input, &out).Run(ctx, entity.HardDifficulty, entity.PlayerX)

		require.NoError(t, err)
		output := out.String()
		assert.Contains(t, output, "You now play O against the easy AI.")
		assert.Contains(t, output, "Usage: new <easy|medium|hard> <X|O>")
	})

	t.Run("End of input", func(t *testing.T) {
		var out bytes.Buffer

		err := newTestConsole(strings.NewReader("1 1\n"), &out).Run(ctx, entity.MediumDifficulty, entity.PlayerX)

		require.NoError(t, err)
		assert.NotContains(t, out.String(), "Bye!")
	})

	t.Run("Cancelled context", func(t *testing.T) {
		// Given: input that never arrives
		reader, writer := io.Pipe()
		t.Cleanup(func() { _ = writer.Close() })

		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		// When: running with a cancelled context
		err := newTestConsole(reader, io.Discard).Run(cancelled, entity.EasyDifficulty, entity.PlayerX)

		// Then: the console returns without waiting for input
		require.NoError(t, err)
	})

	t.Run("Invalid settings", func(t *testing.T) {
		err := newTestConsole(strings.NewReader(""), io.Discard).Run(ctx, entity.Difficulty("extreme"), entity.PlayerX)

		require.ErrorIs(t, err, apperror.ErrUnknownDifficulty)
	})
}

func TestParseCell(t *testing.T) {
	tests := []struct {
		name    string
		fields  []string
		row     int
		col     int
		wantErr bool
	}{
		{name: "Space separated", fields: []string{"1", "2"}, row: 1, col: 2},
		{name: "Comma separated", fields: []string{"2,0"}, row: 2, col: 0},
		{name: "Out of range still parses", fields: []string{"5", "-1"}, row: 5, col: -1},
		{name: "Too many fields", fields: []string{"1", "2", "3"}, wantErr: true},
		{name: "Not a number", fields: []string{"a", "b"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, col, err := parseCell(tt.fields)

			if tt.wantErr {
				require.ErrorIs(t, err, ErrBadInput)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.row, row)
			assert.Equal(t, tt.col, col)
		})
	}
}
