package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edumarket/backend/engine"
	"edumarket/backend/models"
	"edumarket/backend/store"
)

func newVotingFixture(t *testing.T) (*VotingService, *ProgressService) {
	t.Helper()
	progress := NewProgressService(newTestCatalog(t), store.NewMemoryStore(), testLogger())
	return NewVotingService(NewMemoryVoteRepository(), progress), progress
}

func TestVotingRequiresAuth(t *testing.T) {
	voting, _ := newVotingFixture(t)

	_, err := voting.SubmitStarRating(context.Background(), "course1", "", 5, "")
	assert.ErrorIs(t, err, engine.ErrAuthRequired)
}

func TestVotingGatedOnCompletion(t *testing.T) {
	voting, progress := newVotingFixture(t)
	ctx := context.Background()

	_, err := voting.SubmitStarRating(ctx, "course1", "u1", 5, "")
	assert.ErrorIs(t, err, engine.ErrCourseIncomplete)

	// Partial progress is not enough.
	_, err = progress.MarkComplete(ctx, "u1", "course1", "lesson1")
	require.NoError(t, err)
	_, err = voting.SubmitBinaryVote(ctx, "course1", "u1", models.VoteUp)
	assert.ErrorIs(t, err, engine.ErrCourseIncomplete)

	completeCourse(t, progress, "u1", "course1", course1Lessons)
	_, err = voting.SubmitStarRating(ctx, "course1", "u1", 5, "")
	assert.NoError(t, err)
}

func TestRatingOutsideRangeRejected(t *testing.T) {
	voting, progress := newVotingFixture(t)
	ctx := context.Background()
	completeCourse(t, progress, "u1", "course1", course1Lessons)

	_, err := voting.SubmitStarRating(ctx, "course1", "u1", 0, "")
	assert.ErrorIs(t, err, engine.ErrValidation)
	_, err = voting.SubmitStarRating(ctx, "course1", "u1", 6, "")
	assert.ErrorIs(t, err, engine.ErrValidation)
}

func TestResubmissionReplacesPriorVote(t *testing.T) {
	voting, progress := newVotingFixture(t)
	ctx := context.Background()
	completeCourse(t, progress, "u1", "course1", course1Lessons)

	_, err := voting.SubmitStarRating(ctx, "course1", "u1", 3, "ok")
	require.NoError(t, err)
	_, err = voting.SubmitStarRating(ctx, "course1", "u1", 5, "great")
	require.NoError(t, err)

	summary, err := voting.Summary(ctx, "course1")
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Total)
	assert.Equal(t, 5.0, summary.Average)
	assert.Equal(t, map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 1}, summary.Distribution)
}

func TestResubmissionSwitchesKind(t *testing.T) {
	voting, progress := newVotingFixture(t)
	ctx := context.Background()
	completeCourse(t, progress, "u1", "course1", course1Lessons)

	_, err := voting.SubmitStarRating(ctx, "course1", "u1", 4, "")
	require.NoError(t, err)
	_, err = voting.SubmitBinaryVote(ctx, "course1", "u1", models.VoteUp)
	require.NoError(t, err)

	summary, err := voting.Summary(ctx, "course1")
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Total)
	assert.Equal(t, 1, summary.Upvotes)
}

func TestSummaryMixesKinds(t *testing.T) {
	voting, progress := newVotingFixture(t)
	ctx := context.Background()

	for _, userID := range []string{"u1", "u2", "u3"} {
		completeCourse(t, progress, userID, "course1", course1Lessons)
	}
	_, err := voting.SubmitStarRating(ctx, "course1", "u1", 4, "solid")
	require.NoError(t, err)
	_, err = voting.SubmitStarRating(ctx, "course1", "u2", 5, "")
	require.NoError(t, err)
	_, err = voting.SubmitBinaryVote(ctx, "course1", "u3", models.VoteDown)
	require.NoError(t, err)

	summary, err := voting.Summary(ctx, "course1")
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Total)
	assert.Equal(t, 4.5, summary.Average)
	assert.Equal(t, 1, summary.Distribution[4])
	assert.Equal(t, 1, summary.Distribution[5])
	assert.Equal(t, 0, summary.Upvotes)
	assert.Equal(t, 1, summary.Downvotes)

	comments, err := voting.Comments(ctx, "course1")
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "solid", comments[0].Comment)
}

func TestUserVoteNilWhenAbsent(t *testing.T) {
	voting, _ := newVotingFixture(t)

	vote, err := voting.UserVote(context.Background(), "course1", "u1")
	require.NoError(t, err)
	assert.Nil(t, vote)
}

func TestRemoveVote(t *testing.T) {
	voting, progress := newVotingFixture(t)
	ctx := context.Background()
	completeCourse(t, progress, "u1", "course1", course1Lessons)

	_, err := voting.SubmitStarRating(ctx, "course1", "u1", 5, "")
	require.NoError(t, err)
	require.NoError(t, voting.RemoveVote(ctx, "course1", "u1"))

	vote, err := voting.UserVote(ctx, "course1", "u1")
	require.NoError(t, err)
	assert.Nil(t, vote)

	summary, err := voting.Summary(ctx, "course1")
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Total)
}
