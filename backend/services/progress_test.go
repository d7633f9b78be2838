package services

import (
	"context"
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edumarket/backend/catalog"
	"edumarket/backend/engine"
	"edumarket/backend/store"
)

// course1 in the demo catalog has 7 lessons; lesson3 carries quiz1.
var course1Lessons = []string{"lesson1", "lesson2", "lesson3", "lesson4", "lesson5", "lesson6", "lesson7"}

func newTestCatalog(t *testing.T) catalog.Repository {
	t.Helper()
	repo := catalog.NewMemoryRepository()
	require.NoError(t, catalog.Seed(context.Background(), repo))
	return repo
}

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func completeCourse(t *testing.T, svc *ProgressService, userID, courseID string, lessons []string) {
	t.Helper()
	for _, lessonID := range lessons {
		_, err := svc.MarkComplete(context.Background(), userID, courseID, lessonID)
		require.NoError(t, err)
	}
}

func TestMarkCompleteUpdatesSummary(t *testing.T) {
	svc := NewProgressService(newTestCatalog(t), store.NewMemoryStore(), testLogger())
	ctx := context.Background()

	summary, err := svc.MarkComplete(ctx, "u1", "course1", "lesson1")
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Completed)
	assert.Equal(t, 7, summary.Total)
	assert.Equal(t, 14, summary.Percentage) // 1/7 = 14.29
	assert.False(t, summary.Complete)
}

func TestMarkCompleteIsIdempotent(t *testing.T) {
	svc := NewProgressService(newTestCatalog(t), store.NewMemoryStore(), testLogger())
	ctx := context.Background()

	first, err := svc.MarkComplete(ctx, "u1", "course1", "lesson1")
	require.NoError(t, err)
	second, err := svc.MarkComplete(ctx, "u1", "course1", "lesson1")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, second.Completed)
}

func TestMarkCompleteRequiresUser(t *testing.T) {
	svc := NewProgressService(newTestCatalog(t), store.NewMemoryStore(), testLogger())

	_, err := svc.MarkComplete(context.Background(), "", "course1", "lesson1")
	assert.ErrorIs(t, err, engine.ErrAuthRequired)
}

func TestMarkCompleteUnknownLesson(t *testing.T) {
	svc := NewProgressService(newTestCatalog(t), store.NewMemoryStore(), testLogger())

	_, err := svc.MarkComplete(context.Background(), "u1", "course1", "ghost")
	assert.ErrorIs(t, err, engine.ErrNotFound)

	_, err = svc.MarkComplete(context.Background(), "u1", "ghost", "lesson1")
	assert.ErrorIs(t, err, engine.ErrNotFound)
}

func TestCompletingEveryLessonCompletesTheCourse(t *testing.T) {
	svc := NewProgressService(newTestCatalog(t), store.NewMemoryStore(), testLogger())
	ctx := context.Background()

	completeCourse(t, svc, "u1", "course1", course1Lessons)

	summary, err := svc.Summary(ctx, "u1", "course1")
	require.NoError(t, err)
	assert.Equal(t, 100, summary.Percentage)
	assert.True(t, summary.Complete)

	complete, err := svc.IsCourseComplete(ctx, "u1", "course1")
	require.NoError(t, err)
	assert.True(t, complete)
}

func TestProgressIsScopedPerUser(t *testing.T) {
	svc := NewProgressService(newTestCatalog(t), store.NewMemoryStore(), testLogger())
	ctx := context.Background()

	completeCourse(t, svc, "u1", "course1", course1Lessons)

	summary, err := svc.Summary(ctx, "u2", "course1")
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Completed)
}

func TestCorruptProgressResetsToEmpty(t *testing.T) {
	kv := store.NewMemoryStore()
	svc := NewProgressService(newTestCatalog(t), kv, testLogger())
	ctx := context.Background()

	// A stored value of the wrong shape is unreadable as []string.
	require.NoError(t, kv.Set(ctx, "u1", store.ProgressKey("course1"), map[string]int{"bogus": 1}))

	summary, err := svc.Summary(ctx, "u1", "course1")
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Completed)

	// The reset sticks: marking afterwards starts from scratch.
	summary, err = svc.MarkComplete(ctx, "u1", "course1", "lesson1")
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Completed)
}

func TestIsLessonComplete(t *testing.T) {
	svc := NewProgressService(newTestCatalog(t), store.NewMemoryStore(), testLogger())
	ctx := context.Background()

	_, err := svc.MarkComplete(ctx, "u1", "course1", "lesson2")
	require.NoError(t, err)

	assert.True(t, svc.IsLessonComplete(ctx, "u1", "course1", "lesson2"))
	assert.False(t, svc.IsLessonComplete(ctx, "u1", "course1", "lesson1"))
}
