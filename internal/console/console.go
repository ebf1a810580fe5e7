package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"

	"github.com/rocketscienceinc/tictactoe-core/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-core/internal/entity"
)

var ErrBadInput = errors.New("bad input")

const prompt = "> "

var helpText = heredoc.Doc(`
	Commands:
	  <row> <col>               place your mark, rows and columns go from 0 to 2
	  restart                   start a new round with the same settings
	  new <difficulty> <mark>   start a new round, e.g. "new medium O"
	  help                      show this message
	  quit                      leave the game
`)

type gamePlay interface {
	Configure(ctx context.Context, difficulty entity.Difficulty, human entity.Mark) (*entity.Session, error)
	SubmitHumanMove(ctx context.Context, session *entity.Session, row, col int) (entity.Outcome, error)
	CurrentBoard(session *entity.Session) entity.Board
	Restart(ctx context.Context, session *entity.Session) (*entity.Session, error)
	RestartWith(ctx context.Context, session *entity.Session, difficulty entity.Difficulty, human entity.Mark) (*entity.Session, error)
}

// Console drives one session from a line-oriented terminal.
type Console struct {
	logger *slog.Logger
	game   gamePlay

	in  io.Reader
	out io.Writer
}

func New(logger *slog.Logger, game gamePlay, in io.Reader, out io.Writer) *Console {
	return &Console{
		logger: logger.With("component", "console"),
		game:   game,
		in:     in,
		out:    out,
	}
}

// Run plays until the user quits, the input ends or ctx is cancelled.
func (that *Console) Run(ctx context.Context, difficulty entity.Difficulty, human entity.Mark) error {
	session, err := that.game.Configure(ctx, difficulty, human)
	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	that.printf("Tic-tac-toe: you play %s against the %s AI. Type help for commands.\n", session.Human, session.Difficulty)
	that.render(session)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines, readErr := that.readLines(ctx)

	for {
		that.printf(prompt)

		var line string
		var ok bool

		select {
		case <-ctx.Done():
			that.printf("\n")
			return nil
		case line, ok = <-lines:
		}

		if !ok {
			that.printf("\n")
			if err = <-readErr; err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}

			return nil
		}

		quit, err := that.handle(ctx, session, line)
		if err != nil {
			return err
		}

		if quit {
			that.printf("Bye!\n")
			return nil
		}
	}
}

func (that *Console) handle(ctx context.Context, session *entity.Session, line string) (bool, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return false, nil
	}

	switch fields[0] {
	case "quit", "exit", "q":
		return true, nil
	case "help", "?":
		that.printf("%s", helpText)
	case "restart":
		if _, err := that.game.Restart(ctx, session); err != nil {
			return false, fmt.Errorf("failed to restart: %w", err)
		}

		that.render(session)
	case "new":
		difficulty, human, err := parseSettings(fields[1:])
		if err != nil {
			that.notice("Usage: new <easy|medium|hard> <X|O>")
			return false, nil
		}

		if _, err = that.game.RestartWith(ctx, session, difficulty, human); err != nil {
			return false, fmt.Errorf("failed to restart: %w", err)
		}

		that.printf("You now play %s against the %s AI.\n", session.Human, session.Difficulty)
		that.render(session)
	default:
		return false, that.move(ctx, session, fields)
	}

	return false, nil
}

func (that *Console) move(ctx context.Context, session *entity.Session, fields []string) error {
	row, col, err := parseCell(fields)
	if err != nil {
		that.notice(`Enter a move as "row col", or type help.`)
		return nil
	}

	outcome, err := that.game.SubmitHumanMove(ctx, session, row, col)
	if err != nil {
		msg, known := messageFor(err)
		if !known {
			return fmt.Errorf("failed to play move: %w", err)
		}

		that.logger.Debug("move rejected", "row", row, "col", col, "error", err)
		that.notice(msg)

		return nil
	}

	that.render(session)

	if outcome.IsTerminal() {
		that.printf("%s\n", outcome.String())
		that.notice("Type restart to play again, or new <difficulty> <mark> to change settings.")
	}

	return nil
}

func (that *Console) render(session *entity.Session) {
	that.printf("\n%s\n", RenderBoard(that.game.CurrentBoard(session), session.Outcome))
}

func (that *Console) notice(msg string) {
	that.printf("%s\n", infoColor.Sprint(msg))
}

func (that *Console) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}

// readLines feeds input lines to a channel so Run can also wait on ctx.
func (that *Console) readLines(ctx context.Context) (<-chan string, <-chan error) {
	lines := make(chan string)
	errs := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(that.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				errs <- nil
				return
			}
		}

		errs <- scanner.Err()
	}()

	return lines, errs
}

// messageFor maps move errors the player can recover from to a message.
func messageFor(err error) (string, bool) {
	switch {
	case errors.Is(err, apperror.ErrCellOccupied):
		return "That cell is taken, pick another one.", true
	case errors.Is(err, apperror.ErrOutOfBounds):
		return "Rows and columns go from 0 to 2.", true
	case errors.Is(err, apperror.ErrGameFinished):
		return "The round is over. Type restart to play again.", true
	case errors.Is(err, apperror.ErrNotYourTurn):
		return "Wait for your turn.", true
	default:
		return "", false
	}
}

// parseCell accepts "1 2" as well as "1,2".
func parseCell(fields []string) (int, int, error) {
	if len(fields) == 1 {
		fields = strings.Split(fields[0], ",")
	}

	if len(fields) != 2 {
		return 0, 0, ErrBadInput
	}

	row, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: row %q", ErrBadInput, fields[0])
	}

	col, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: col %q", ErrBadInput, fields[1])
	}

	return row, col, nil
}

func parseSettings(fields []string) (entity.Difficulty, entity.Mark, error) {
	if len(fields) != 2 {
		return "", entity.EmptyCell, ErrBadInput
	}

	difficulty, err := entity.ParseDifficulty(fields[0])
	if err != nil {
		return "", entity.EmptyCell, err
	}

	human, err := entity.ParseMark(fields[1])
	if err != nil {
		return "", entity.EmptyCell, err
	}

	return difficulty, human, nil
}
