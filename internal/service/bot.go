package service

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-core/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-core/internal/entity"
	"github.com/rocketscienceinc/tictactoe-core/internal/tictactoe"
)

// makeBotTurn asks the engine for a cell and routes it through the same gate as human moves.
func (that *gamePlayService) makeBotTurn(ctx context.Context, session *entity.Session) error {
	if !session.IsAITurn() {
		return apperror.ErrNotYourTurn
	}

	cell, err := that.bot.ChooseMove(session.Board, session.AI, session.Human, session.Difficulty)
	if err != nil {
		return fmt.Errorf("bot failed to choose move: %w", err)
	}

	if _, err = tictactoe.ApplyMove(session, cell); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	that.logger.Debug("bot made turn", "sessionID", session.ID, "move", cell.String(), "difficulty", session.Difficulty)

	that.notifyMove(ctx, session, session.AI, cell)

	return nil
}
