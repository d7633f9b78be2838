package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQuizSessionRejectsEmptyQuiz(t *testing.T) {
	_, err := NewQuizSession(nil)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSessionWalksTheStateMachine(t *testing.T) {
	quiz := twoQuestionQuiz()
	session, err := NewQuizSession(quiz)
	require.NoError(t, err)

	assert.Equal(t, StateUnanswered, session.State(quiz))

	// Advance with no answer is rejected.
	_, err = session.Advance(quiz)
	assert.ErrorIs(t, err, ErrValidation)

	// Selecting moves to answered; the answer can still change.
	require.NoError(t, session.Select(quiz, "b"))
	require.NoError(t, session.Select(quiz, "a"))
	assert.Equal(t, StateAnswered, session.State(quiz))

	// First primary action reveals feedback.
	finished, err := session.Advance(quiz)
	require.NoError(t, err)
	assert.False(t, finished)
	assert.Equal(t, StateChecked, session.State(quiz))

	// A checked answer is frozen.
	err = session.Select(quiz, "b")
	assert.ErrorIs(t, err, ErrValidation)

	// Second primary action moves to the next question.
	finished, err = session.Advance(quiz)
	require.NoError(t, err)
	assert.False(t, finished)
	assert.Equal(t, 1, session.Index)
	assert.Equal(t, StateUnanswered, session.State(quiz))

	// Finish: answer, check, then the final action ends the session.
	require.NoError(t, session.Select(quiz, "b"))
	finished, err = session.Advance(quiz)
	require.NoError(t, err)
	assert.False(t, finished)

	finished, err = session.Advance(quiz)
	require.NoError(t, err)
	assert.True(t, finished)
	assert.True(t, session.Finished)

	// Everything is rejected after the finish.
	_, err = session.Advance(quiz)
	assert.ErrorIs(t, err, ErrValidation)
	assert.ErrorIs(t, session.Select(quiz, "a"), ErrValidation)
}

func TestSessionPreviousKeepsAnswerDropsReveal(t *testing.T) {
	quiz := twoQuestionQuiz()
	session, err := NewQuizSession(quiz)
	require.NoError(t, err)

	require.NoError(t, session.Select(quiz, "a"))
	_, err = session.Advance(quiz) // check
	require.NoError(t, err)
	_, err = session.Advance(quiz) // next
	require.NoError(t, err)
	require.Equal(t, 1, session.Index)

	session.Previous()
	assert.Equal(t, 0, session.Index)
	assert.False(t, session.Checked)
	assert.Equal(t, StateAnswered, session.State(quiz))
	assert.Equal(t, "a", session.Answers["q1"])
}

func TestSessionPreviousNoOpOnFirstQuestion(t *testing.T) {
	quiz := twoQuestionQuiz()
	session, err := NewQuizSession(quiz)
	require.NoError(t, err)

	session.Previous()
	assert.Equal(t, 0, session.Index)
}
