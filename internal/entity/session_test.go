package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSession_State(t *testing.T) {
	t.Run("Human holding X moves first", func(t *testing.T) {
		// Given: a new session with the human as X
		session := NewSession("s1", HardDifficulty, PlayerX)

		// Then: it waits for the human
		assert.Equal(t, StateAwaitingHumanMove, session.State())
		assert.Equal(t, PlayerO, session.AI)
		assert.Equal(t, 1, session.Round)
		assert.True(t, session.IsHumanTurn())
	})

	t.Run("AI holding X moves first", func(t *testing.T) {
		// Given: a new session with the human as O
		session := NewSession("s2", EasyDifficulty, PlayerO)

		// Then: it waits for the AI
		assert.Equal(t, StateAwaitingAIMove, session.State())
		assert.True(t, session.IsAITurn())
	})

	t.Run("Finished session is round over", func(t *testing.T) {
		session := NewSession("s3", EasyDifficulty, PlayerX)
		session.Finished = true

		assert.Equal(t, StateRoundOver, session.State())
		assert.False(t, session.IsHumanTurn())
		assert.False(t, session.IsAITurn())
	})

	t.Run("Reset clears the board and bumps the round", func(t *testing.T) {
		// Given: a finished round
		session := NewSession("s4", MediumDifficulty, PlayerO)
		session.Board[0][0] = PlayerX
		session.Turn = PlayerO
		session.Finished = true
		session.Outcome = Outcome{Status: StatusDraw}

		// When: resetting
		session.Reset()

		// Then: a fresh round with the same choices
		assert.Equal(t, Board{}, session.Board)
		assert.Equal(t, 2, session.Round)
		assert.Equal(t, FirstMover, session.Turn)
		assert.False(t, session.Finished)
		assert.Equal(t, Ongoing(), session.Outcome)
		assert.Equal(t, PlayerO, session.Human)
		assert.Equal(t, MediumDifficulty, session.Difficulty)
	})
}
