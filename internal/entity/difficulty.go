package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-core/internal/apperror"
)

// Difficulty selects the AI strategy. It is fixed for a round.
type Difficulty string

const (
	EasyDifficulty   Difficulty = "easy"
	MediumDifficulty Difficulty = "medium"
	HardDifficulty   Difficulty = "hard"
)

func ParseDifficulty(s string) (Difficulty, error) {
	switch d := Difficulty(strings.ToLower(strings.TrimSpace(s))); d {
	case EasyDifficulty, MediumDifficulty, HardDifficulty:
		return d, nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrUnknownDifficulty, s)
	}
}

func ParseMark(s string) (Mark, error) {
	m := Mark(strings.ToUpper(strings.TrimSpace(s)))
	if !m.IsPlayer() {
		return EmptyCell, fmt.Errorf("%w: %q", apperror.ErrInvalidMark, s)
	}

	return m, nil
}

func (that Difficulty) IsValid() bool {
	switch that {
	case EasyDifficulty, MediumDifficulty, HardDifficulty:
		return true
	default:
		return false
	}
}
