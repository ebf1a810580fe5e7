package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-core/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-core/internal/entity"
)

// ApplyMove is the only way a mark reaches a session's board. It writes the mark of
// whoever holds the turn, re-evaluates the board and advances the turn.
// A rejected move leaves the session untouched.
func ApplyMove(session *entity.Session, cell entity.Coord) (entity.Outcome, error) {
	if session.IsFinished() {
		return session.Outcome, apperror.ErrGameFinished
	}

	if err := validateMove(session, cell); err != nil {
		return session.Outcome, fmt.Errorf("invalid turn: %w", err)
	}

	if err := session.Board.Set(cell.Row, cell.Col, session.Turn); err != nil {
		return session.Outcome, fmt.Errorf("invalid turn: %w", err)
	}

	updateGameStatus(session)

	return session.Outcome, nil
}

// validateMove - checks if the move is valid.
func validateMove(session *entity.Session, cell entity.Coord) error {
	if !cell.InBounds() {
		return fmt.Errorf("%w: %s", apperror.ErrOutOfBounds, cell)
	}

	if !session.Turn.IsPlayer() {
		return fmt.Errorf("%w: turn %q", apperror.ErrInvalidMark, session.Turn)
	}

	if session.Board[cell.Row][cell.Col] != entity.EmptyCell {
		return fmt.Errorf("%w: %s", apperror.ErrCellOccupied, cell)
	}

	return nil
}

// updateGameStatus - checks the game status after a move.
func updateGameStatus(session *entity.Session) {
	session.Outcome = entity.Evaluate(session.Board)

	if session.Outcome.IsTerminal() {
		session.Finished = true
		return
	}

	session.Turn = session.Turn.Opponent()
}
