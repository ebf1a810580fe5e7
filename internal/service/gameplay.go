package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-core/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-core/internal/entity"
	"github.com/rocketscienceinc/tictactoe-core/internal/tictactoe"
)

// GamePlayService is the contract the presentation layer drives a session through.
// A session must not be used from more than one goroutine at a time.
type GamePlayService interface {
	Configure(ctx context.Context, difficulty entity.Difficulty, human entity.Mark) (*entity.Session, error)
	SubmitHumanMove(ctx context.Context, session *entity.Session, row, col int) (entity.Outcome, error)
	CurrentBoard(session *entity.Session) entity.Board

	Restart(ctx context.Context, session *entity.Session) (*entity.Session, error)
	RestartWith(ctx context.Context, session *entity.Session, difficulty entity.Difficulty, human entity.Mark) (*entity.Session, error)

	Autoplay(ctx context.Context, session *entity.Session, opponent entity.Difficulty) (entity.Outcome, error)
	Simulate(ctx context.Context, opts SimulateOptions) (Tally, error)
}

type botEngine interface {
	ChooseMove(board entity.Board, ai, opponent entity.Mark, difficulty entity.Difficulty) (entity.Coord, error)
}

type gamePlayService struct {
	logger *slog.Logger

	bot      botEngine
	notifier Notifier
}

func NewGamePlayService(logger *slog.Logger, bot botEngine, notifier Notifier) GamePlayService {
	if notifier == nil {
		notifier = Notifiers{}
	}

	return &gamePlayService{
		logger:   logger,
		bot:      bot,
		notifier: notifier,
	}
}

func (that *gamePlayService) Configure(ctx context.Context, difficulty entity.Difficulty, human entity.Mark) (*entity.Session, error) {
	session, err := newSession(difficulty, human)
	if err != nil {
		return nil, fmt.Errorf("failed to configure session: %w", err)
	}

	that.logger.Info("session configured",
		"sessionID", session.ID, "difficulty", session.Difficulty, "human", session.Human)

	if err = that.startRound(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

func (that *gamePlayService) SubmitHumanMove(ctx context.Context, session *entity.Session, row, col int) (entity.Outcome, error) {
	log := that.logger.With("method", "SubmitHumanMove", "sessionID", session.ID)

	if session.IsFinished() {
		return session.Outcome, apperror.ErrGameFinished
	}

	if !session.IsHumanTurn() {
		return session.Outcome, apperror.ErrNotYourTurn
	}

	cell := entity.Coord{Row: row, Col: col}
	if _, err := tictactoe.ApplyMove(session, cell); err != nil {
		log.Debug("human move rejected", "move", cell.String(), "error", err)
		return session.Outcome, fmt.Errorf("failed to make turn: %w", err)
	}

	that.notifyMove(ctx, session, session.Human, cell)

	if session.IsFinished() {
		return session.Outcome, nil
	}

	if err := that.makeBotTurn(ctx, session); err != nil {
		log.Error("bot failed to make turn", "error", err)
		return session.Outcome, err
	}

	return session.Outcome, nil
}

func (that *gamePlayService) CurrentBoard(session *entity.Session) entity.Board {
	return session.Board
}

func (that *gamePlayService) Restart(ctx context.Context, session *entity.Session) (*entity.Session, error) {
	session.Reset()

	that.logger.Info("session restarted", "sessionID", session.ID, "round", session.Round)

	if err := that.startRound(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

func (that *gamePlayService) RestartWith(ctx context.Context, session *entity.Session, difficulty entity.Difficulty, human entity.Mark) (*entity.Session, error) {
	if err := validateChoices(difficulty, human); err != nil {
		return nil, fmt.Errorf("failed to restart session: %w", err)
	}

	session.Difficulty = difficulty
	session.Human = human
	session.AI = human.Opponent()

	return that.Restart(ctx, session)
}

// startRound announces the round and lets the AI open when it holds the first mark.
func (that *gamePlayService) startRound(ctx context.Context, session *entity.Session) error {
	that.notify(ctx, newEvent(EventRoundStarted, session))

	if !session.IsAITurn() {
		return nil
	}

	if err := that.makeBotTurn(ctx, session); err != nil {
		return fmt.Errorf("bot failed to make first turn: %w", err)
	}

	return nil
}

func (that *gamePlayService) notifyMove(ctx context.Context, session *entity.Session, actor entity.Mark, cell entity.Coord) {
	event := newEvent(EventMoveApplied, session)
	event.Actor = actor
	event.Move = &cell
	that.notify(ctx, event)

	if session.IsFinished() {
		that.notify(ctx, newEvent(EventRoundOver, session))
	}
}

// notify never fails the caller; a broken listener must not block the game.
func (that *gamePlayService) notify(ctx context.Context, event Event) {
	if err := that.notifier.Notify(ctx, event); err != nil {
		that.logger.Error("failed to notify", "kind", event.Kind, "sessionID", event.SessionID, "error", err)
	}
}
