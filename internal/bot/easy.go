package bot

import "github.com/rocketscienceinc/tictactoe-core/internal/entity"

// randomMove picks uniformly among the given cells.
func (that *Engine) randomMove(cells []entity.Coord) entity.Coord {
	that.mu.Lock()
	defer that.mu.Unlock()

	return cells[that.rng.Intn(len(cells))]
}
