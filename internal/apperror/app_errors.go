package apperror

import "errors"

var (
	ErrGameFinished      = errors.New("game is already finished")
	ErrNotYourTurn       = errors.New("it's not your turn")
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrOutOfBounds       = errors.New("cell is out of bounds")
	ErrInvalidMark       = errors.New("invalid player mark")
	ErrUnknownDifficulty = errors.New("unknown difficulty")

	// ErrNoLegalMove means the AI was asked to move on a full board.
	// The session never does that, so seeing it is a defect.
	ErrNoLegalMove = errors.New("no legal move available")
)
