package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"edumarket/backend/engine"
	"edumarket/backend/models"
)

// VoteRepository stores at most one vote per (course, user).
type VoteRepository interface {
	Upsert(ctx context.Context, vote *models.Vote) error
	Remove(ctx context.Context, courseID, userID string) error
	ByUser(ctx context.Context, courseID, userID string) (*models.Vote, error)
	ByCourse(ctx context.Context, courseID string) ([]models.Vote, error)
}

type VotingService struct {
	Votes    VoteRepository
	Progress *ProgressService
}

func NewVotingService(votes VoteRepository, progress *ProgressService) *VotingService {
	return &VotingService{Votes: votes, Progress: progress}
}

// gate enforces the completion requirement at the data layer so a
// direct call cannot bypass the UI gating.
func (s *VotingService) gate(ctx context.Context, courseID, userID string) error {
	if userID == "" {
		return fmt.Errorf("%w: sign in to vote", engine.ErrAuthRequired)
	}
	complete, err := s.Progress.IsCourseComplete(ctx, userID, courseID)
	if err != nil {
		return err
	}
	if !complete {
		return fmt.Errorf("%w: course %q", engine.ErrCourseIncomplete, courseID)
	}
	return nil
}

// SubmitStarRating upserts a 1-5 star rating with an optional comment.
// A resubmission replaces the user's prior vote of either kind.
func (s *VotingService) SubmitStarRating(ctx context.Context, courseID, userID string, rating int, comment string) (*models.Vote, error) {
	if err := s.gate(ctx, courseID, userID); err != nil {
		return nil, err
	}
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("%w: rating %d outside 1..5", engine.ErrValidation, rating)
	}

	vote := &models.Vote{
		ID:       uuid.NewString(),
		CourseID: courseID,
		UserID:   userID,
		Kind:     models.VoteKindStar,
		Rating:   rating,
		Comment:  comment,
	}
	if err := s.Votes.Upsert(ctx, vote); err != nil {
		return nil, err
	}
	return vote, nil
}

// SubmitBinaryVote upserts a bare up/down vote.
func (s *VotingService) SubmitBinaryVote(ctx context.Context, courseID, userID, direction string) (*models.Vote, error) {
	if err := s.gate(ctx, courseID, userID); err != nil {
		return nil, err
	}
	if direction != models.VoteUp && direction != models.VoteDown {
		return nil, fmt.Errorf("%w: direction %q", engine.ErrValidation, direction)
	}

	vote := &models.Vote{
		ID:        uuid.NewString(),
		CourseID:  courseID,
		UserID:    userID,
		Kind:      models.VoteKindBinary,
		Direction: direction,
	}
	if err := s.Votes.Upsert(ctx, vote); err != nil {
		return nil, err
	}
	return vote, nil
}

// RemoveVote withdraws the user's vote, if any.
func (s *VotingService) RemoveVote(ctx context.Context, courseID, userID string) error {
	if userID == "" {
		return fmt.Errorf("%w: sign in to vote", engine.ErrAuthRequired)
	}
	return s.Votes.Remove(ctx, courseID, userID)
}

// UserVote returns the caller's own vote, or nil when absent.
func (s *VotingService) UserVote(ctx context.Context, courseID, userID string) (*models.Vote, error) {
	vote, err := s.Votes.ByUser(ctx, courseID, userID)
	if err != nil {
		if errors.Is(err, engine.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return vote, nil
}

// Summary recomputes the aggregates from the stored votes on every
// read. The average and distribution consider star votes only; binary
// votes feed the up/down counters.
func (s *VotingService) Summary(ctx context.Context, courseID string) (models.RatingSummary, error) {
	votes, err := s.Votes.ByCourse(ctx, courseID)
	if err != nil {
		return models.RatingSummary{}, err
	}

	summary := models.RatingSummary{
		Distribution: map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0},
	}
	sum := 0
	stars := 0
	for _, vote := range votes {
		switch vote.Kind {
		case models.VoteKindStar:
			stars++
			sum += vote.Rating
			summary.Distribution[vote.Rating]++
		case models.VoteKindBinary:
			if vote.Direction == models.VoteUp {
				summary.Upvotes++
			} else {
				summary.Downvotes++
			}
		}
	}
	summary.Total = stars
	if stars > 0 {
		summary.Average = float64(sum) / float64(stars)
	}
	return summary, nil
}

// Comments lists the star votes that carry a comment, newest first as
// returned by the repository.
func (s *VotingService) Comments(ctx context.Context, courseID string) ([]models.Vote, error) {
	votes, err := s.Votes.ByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	var comments []models.Vote
	for _, vote := range votes {
		if vote.Kind == models.VoteKindStar && vote.Comment != "" {
			comments = append(comments, vote)
		}
	}
	return comments, nil
}
