package bot

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/rocketscienceinc/tictactoe-core/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-core/internal/entity"
)

// Engine picks moves for the AI player. It never writes to a board it is given;
// the caller routes the proposed cell through the move gate.
type Engine struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func New(src rand.Source) *Engine {
	return &Engine{rng: rand.New(src)} //nolint: gosec // game randomness, not security
}

// NewWithSeed builds an engine with a reproducible random source.
// A zero seed means "seed from the clock".
func NewWithSeed(seed int64) *Engine {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return New(rand.NewSource(seed))
}

// ChooseMove selects a cell for ai according to difficulty.
func (that *Engine) ChooseMove(board entity.Board, ai, opponent entity.Mark, difficulty entity.Difficulty) (entity.Coord, error) {
	if !ai.IsPlayer() || ai.Opponent() != opponent {
		return entity.Coord{}, fmt.Errorf("%w: ai %q, opponent %q", apperror.ErrInvalidMark, ai, opponent)
	}

	empty := board.EmptyCells()
	if len(empty) == 0 {
		return entity.Coord{}, apperror.ErrNoLegalMove
	}

	switch difficulty {
	case entity.EasyDifficulty:
		return that.randomMove(empty), nil
	case entity.MediumDifficulty:
		return that.mediumMove(board, empty, ai, opponent), nil
	case entity.HardDifficulty:
		cell, _ := bestMove(board, empty, ai, opponent)
		return cell, nil
	default:
		return entity.Coord{}, fmt.Errorf("%w: %q", apperror.ErrUnknownDifficulty, difficulty)
	}
}
