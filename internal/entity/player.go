package entity

// Mark is the symbol a player claims cells with.
type Mark string

const (
	PlayerX Mark = "X"
	PlayerO Mark = "O"

	EmptyCell Mark = ""
)

// FirstMover is the mark that opens every round, regardless of who holds it.
const FirstMover = PlayerX

func (that Mark) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}

// Opponent returns the other player's mark. EmptyCell has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}

func (that Mark) String() string {
	if that == EmptyCell {
		return "."
	}
	return string(that)
}
