package service

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-core/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-core/internal/entity"
	"github.com/rocketscienceinc/tictactoe-core/internal/pkg"
)

func newSession(difficulty entity.Difficulty, human entity.Mark) (*entity.Session, error) {
	if err := validateChoices(difficulty, human); err != nil {
		return nil, err
	}

	return entity.NewSession(pkg.GenerateSessionID(), difficulty, human), nil
}

func validateChoices(difficulty entity.Difficulty, human entity.Mark) error {
	if !difficulty.IsValid() {
		return fmt.Errorf("%w: %q", apperror.ErrUnknownDifficulty, difficulty)
	}

	if !human.IsPlayer() {
		return fmt.Errorf("%w: human %q", apperror.ErrInvalidMark, human)
	}

	return nil
}
