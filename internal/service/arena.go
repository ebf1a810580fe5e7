package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-core/internal/entity"
)

var ErrInvalidRounds = errors.New("rounds must be positive")

type SimulateOptions struct {
	Rounds int

	// AIDifficulty drives the session's AI seat, OpponentDifficulty the human seat.
	AIDifficulty       entity.Difficulty
	OpponentDifficulty entity.Difficulty

	Human entity.Mark

	// SwapMarks hands the opening mark to the other seat every round.
	SwapMarks bool
}

// Tally counts finished rounds from the AI seat's point of view.
type Tally struct {
	AIWins       int `json:"ai_wins"`
	OpponentWins int `json:"opponent_wins"`
	Draws        int `json:"draws"`
}

func (that Tally) Rounds() int {
	return that.AIWins + that.OpponentWins + that.Draws
}

func (that *Tally) Record(session *entity.Session) {
	switch {
	case session.Outcome.IsWinFor(session.AI):
		that.AIWins++
	case session.Outcome.IsWinFor(session.Human):
		that.OpponentWins++
	case session.Outcome.Status == entity.StatusDraw:
		that.Draws++
	}
}

// Autoplay plays the human seat with the bot engine until the round ends.
// Moves still go through SubmitHumanMove, so the session sees an ordinary game.
func (that *gamePlayService) Autoplay(ctx context.Context, session *entity.Session, opponent entity.Difficulty) (entity.Outcome, error) {
	for !session.IsFinished() {
		if err := ctx.Err(); err != nil {
			return session.Outcome, fmt.Errorf("autoplay interrupted: %w", err)
		}

		cell, err := that.bot.ChooseMove(session.Board, session.Human, session.AI, opponent)
		if err != nil {
			return session.Outcome, fmt.Errorf("opponent failed to choose move: %w", err)
		}

		if _, err = that.SubmitHumanMove(ctx, session, cell.Row, cell.Col); err != nil {
			return session.Outcome, fmt.Errorf("opponent failed to make turn: %w", err)
		}
	}

	return session.Outcome, nil
}

func (that *gamePlayService) Simulate(ctx context.Context, opts SimulateOptions) (Tally, error) {
	var tally Tally

	if opts.Rounds <= 0 {
		return tally, fmt.Errorf("%w: %d", ErrInvalidRounds, opts.Rounds)
	}

	session, err := that.Configure(ctx, opts.AIDifficulty, opts.Human)
	if err != nil {
		return tally, fmt.Errorf("failed to configure simulation: %w", err)
	}

	log := that.logger.With("method", "Simulate", "sessionID", session.ID)

	for round := 1; ; round++ {
		if _, err = that.Autoplay(ctx, session, opts.OpponentDifficulty); err != nil {
			return tally, err
		}

		tally.Record(session)
		log.Debug("round finished", "round", round, "outcome", session.Outcome.String())

		if round == opts.Rounds {
			break
		}

		human := session.Human
		if opts.SwapMarks {
			human = human.Opponent()
		}

		if _, err = that.RestartWith(ctx, session, opts.AIDifficulty, human); err != nil {
			return tally, fmt.Errorf("failed to restart simulation: %w", err)
		}
	}

	log.Info("simulation finished",
		"rounds", tally.Rounds(), "aiWins", tally.AIWins, "opponentWins", tally.OpponentWins, "draws", tally.Draws)

	return tally, nil
}
