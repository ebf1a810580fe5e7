package entity

type State string

const (
	StateAwaitingHumanMove State = "awaiting_human_move"
	StateAwaitingAIMove    State = "awaiting_ai_move"
	StateRoundOver         State = "round_over"
)

// Session is the single owner of a round's board together with the choices made at
// configuration time. It is not safe for concurrent use.
type Session struct {
	ID         string     `json:"id"`
	Round      int        `json:"round"`
	Board      Board      `json:"board"`
	Human      Mark       `json:"human"`
	AI         Mark       `json:"ai"`
	Difficulty Difficulty `json:"difficulty"`
	Turn       Mark       `json:"turn"`
	Finished   bool       `json:"finished"`
	Outcome    Outcome    `json:"outcome"`
}

func NewSession(id string, difficulty Difficulty, human Mark) *Session {
	session := &Session{
		ID:         id,
		Human:      human,
		AI:         human.Opponent(),
		Difficulty: difficulty,
	}
	session.Reset()

	return session
}

// Reset starts a new round on an empty board. Choices are kept.
func (that *Session) Reset() {
	that.Round++
	that.Board = Board{}
	that.Turn = FirstMover
	that.Finished = false
	that.Outcome = Ongoing()
}

func (that *Session) State() State {
	switch {
	case that.Finished:
		return StateRoundOver
	case that.Turn == that.AI:
		return StateAwaitingAIMove
	default:
		return StateAwaitingHumanMove
	}
}

func (that *Session) IsFinished() bool {
	return that.Finished
}

func (that *Session) IsHumanTurn() bool {
	return !that.Finished && that.Turn == that.Human
}

func (that *Session) IsAITurn() bool {
	return !that.Finished && that.Turn == that.AI
}
