package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edumarket/backend/engine"
	"edumarket/backend/store"
)

func newQuizService(t *testing.T) *QuizService {
	t.Helper()
	return NewQuizService(newTestCatalog(t), store.NewMemoryStore(), testLogger())
}

func TestSessionRequiresUser(t *testing.T) {
	svc := newQuizService(t)

	_, _, err := svc.Session(context.Background(), "", "course1", "lesson3")
	assert.ErrorIs(t, err, engine.ErrAuthRequired)
}

func TestSessionLessonWithoutQuiz(t *testing.T) {
	svc := newQuizService(t)

	_, _, err := svc.Session(context.Background(), "u1", "course1", "lesson1")
	assert.ErrorIs(t, err, engine.ErrNotFound)
}

func TestSessionStartsFresh(t *testing.T) {
	svc := newQuizService(t)

	session, quiz, err := svc.Session(context.Background(), "u1", "course1", "lesson3")
	require.NoError(t, err)
	assert.Equal(t, "quiz1", quiz.ID)
	assert.Equal(t, 0, session.Index)
	assert.Empty(t, session.Answers)
}

func TestQuizFlowPerfectScoreRecordsPass(t *testing.T) {
	svc := newQuizService(t)
	ctx := context.Background()

	// quiz1: q1 correct "a", q2 correct "b".
	_, err := svc.Select(ctx, "u1", "course1", "lesson3", "a")
	require.NoError(t, err)
	_, result, err := svc.Advance(ctx, "u1", "course1", "lesson3") // check q1
	require.NoError(t, err)
	assert.Nil(t, result)
	_, result, err = svc.Advance(ctx, "u1", "course1", "lesson3") // to q2
	require.NoError(t, err)
	assert.Nil(t, result)

	_, err = svc.Select(ctx, "u1", "course1", "lesson3", "b")
	require.NoError(t, err)
	_, result, err = svc.Advance(ctx, "u1", "course1", "lesson3") // check q2
	require.NoError(t, err)
	assert.Nil(t, result)
	_, result, err = svc.Advance(ctx, "u1", "course1", "lesson3") // finish
	require.NoError(t, err)

	require.NotNil(t, result)
	assert.Equal(t, 2, result.Score)
	assert.True(t, result.Passed)

	passed := svc.QuizProgress(ctx, "u1", "course1")
	assert.True(t, passed["lesson3"])

	// The finished session is gone; the next fetch starts over.
	session, _, err := svc.Session(ctx, "u1", "course1", "lesson3")
	require.NoError(t, err)
	assert.Equal(t, 0, session.Index)
	assert.False(t, session.Finished)
}

func TestQuizFlowImperfectScoreDoesNotRecordPass(t *testing.T) {
	svc := newQuizService(t)
	ctx := context.Background()

	_, err := svc.Select(ctx, "u1", "course1", "lesson3", "b") // wrong
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		_, _, err = svc.Advance(ctx, "u1", "course1", "lesson3")
		require.NoError(t, err)
	}
	_, err = svc.Select(ctx, "u1", "course1", "lesson3", "b") // right
	require.NoError(t, err)
	_, _, err = svc.Advance(ctx, "u1", "course1", "lesson3")
	require.NoError(t, err)
	_, result, err := svc.Advance(ctx, "u1", "course1", "lesson3")
	require.NoError(t, err)

	require.NotNil(t, result)
	assert.Equal(t, 1, result.Score)
	assert.False(t, result.Passed)

	passed := svc.QuizProgress(ctx, "u1", "course1")
	assert.False(t, passed["lesson3"])
}

func TestSessionSurvivesBetweenCalls(t *testing.T) {
	svc := newQuizService(t)
	ctx := context.Background()

	_, err := svc.Select(ctx, "u1", "course1", "lesson3", "a")
	require.NoError(t, err)

	session, _, err := svc.Session(ctx, "u1", "course1", "lesson3")
	require.NoError(t, err)
	assert.Equal(t, "a", session.Answers["q1"])
}

func TestPreviousStepsBack(t *testing.T) {
	svc := newQuizService(t)
	ctx := context.Background()

	_, err := svc.Select(ctx, "u1", "course1", "lesson3", "a")
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		_, _, err = svc.Advance(ctx, "u1", "course1", "lesson3")
		require.NoError(t, err)
	}

	session, err := svc.Previous(ctx, "u1", "course1", "lesson3")
	require.NoError(t, err)
	assert.Equal(t, 0, session.Index)
	assert.False(t, session.Checked)
	assert.Equal(t, "a", session.Answers["q1"])
}

func TestCorruptSessionRestarts(t *testing.T) {
	kv := store.NewMemoryStore()
	svc := NewQuizService(newTestCatalog(t), kv, testLogger())
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "u1", store.QuizSessionKey("course1", "lesson3"), "not a session"))

	session, _, err := svc.Session(ctx, "u1", "course1", "lesson3")
	require.NoError(t, err)
	assert.Equal(t, 0, session.Index)
	assert.Empty(t, session.Answers)

	// The unreadable entry is dropped, not left to trip every read.
	var stale engine.QuizSession
	err = kv.Get(ctx, "u1", store.QuizSessionKey("course1", "lesson3"), &stale)
	assert.ErrorIs(t, err, engine.ErrNotFound)
}

func TestMismatchedSessionRestarts(t *testing.T) {
	kv := store.NewMemoryStore()
	svc := NewQuizService(newTestCatalog(t), kv, testLogger())
	ctx := context.Background()

	old := engine.QuizSession{QuizID: "retired-quiz", Index: 1, Answers: map[string]string{"q9": "a"}}
	require.NoError(t, kv.Set(ctx, "u1", store.QuizSessionKey("course1", "lesson3"), old))

	session, quiz, err := svc.Session(ctx, "u1", "course1", "lesson3")
	require.NoError(t, err)
	assert.Equal(t, quiz.ID, session.QuizID)
	assert.Equal(t, 0, session.Index)

	var stale engine.QuizSession
	err = kv.Get(ctx, "u1", store.QuizSessionKey("course1", "lesson3"), &stale)
	assert.ErrorIs(t, err, engine.ErrNotFound)
}

func TestScoreOneShot(t *testing.T) {
	svc := newQuizService(t)
	ctx := context.Background()

	result, err := svc.Score(ctx, "u1", "course1", "lesson3", map[string]string{"q1": "a", "q2": "c"})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Score)
	assert.False(t, result.Passed)
	assert.False(t, svc.QuizProgress(ctx, "u1", "course1")["lesson3"])

	result, err = svc.Score(ctx, "u1", "course1", "lesson3", map[string]string{"q1": "a", "q2": "b"})
	require.NoError(t, err)
	assert.True(t, result.Passed)
	assert.True(t, svc.QuizProgress(ctx, "u1", "course1")["lesson3"])
}
