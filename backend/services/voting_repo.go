package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"edumarket/backend/engine"
	"edumarket/backend/models"
)

type GormVoteRepository struct {
	DB *gorm.DB
}

func NewGormVoteRepository(db *gorm.DB) *GormVoteRepository {
	return &GormVoteRepository{DB: db}
}

func (r *GormVoteRepository) Upsert(ctx context.Context, vote *models.Vote) error {
	err := r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "course_id"}, {Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"kind", "direction", "rating", "comment", "updated_at",
			}),
		}).
		Create(vote).Error
	if err != nil {
		return fmt.Errorf("%w: %v", engine.ErrRemote, err)
	}
	return nil
}

func (r *GormVoteRepository) Remove(ctx context.Context, courseID, userID string) error {
	err := r.DB.WithContext(ctx).
		Where("course_id = ? AND user_id = ?", courseID, userID).
		Delete(&models.Vote{}).Error
	if err != nil {
		return fmt.Errorf("%w: %v", engine.ErrRemote, err)
	}
	return nil
}

func (r *GormVoteRepository) ByUser(ctx context.Context, courseID, userID string) (*models.Vote, error) {
	var vote models.Vote
	err := r.DB.WithContext(ctx).
		Where("course_id = ? AND user_id = ?", courseID, userID).
		First(&vote).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: no vote", engine.ErrNotFound)
		}
		return nil, fmt.Errorf("%w: %v", engine.ErrRemote, err)
	}
	return &vote, nil
}

func (r *GormVoteRepository) ByCourse(ctx context.Context, courseID string) ([]models.Vote, error) {
	var votes []models.Vote
	err := r.DB.WithContext(ctx).
		Where("course_id = ?", courseID).
		Order("updated_at DESC").
		Find(&votes).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", engine.ErrRemote, err)
	}
	return votes, nil
}

// MemoryVoteRepository is the in-memory adapter used by tests.
type MemoryVoteRepository struct {
	mu    sync.RWMutex
	votes map[string]map[string]models.Vote // course id -> user id -> vote
}

func NewMemoryVoteRepository() *MemoryVoteRepository {
	return &MemoryVoteRepository{votes: map[string]map[string]models.Vote{}}
}

func (r *MemoryVoteRepository) Upsert(_ context.Context, vote *models.Vote) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.votes[vote.CourseID] == nil {
		r.votes[vote.CourseID] = map[string]models.Vote{}
	}
	r.votes[vote.CourseID][vote.UserID] = *vote
	return nil
}

func (r *MemoryVoteRepository) Remove(_ context.Context, courseID, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.votes[courseID], userID)
	return nil
}

func (r *MemoryVoteRepository) ByUser(_ context.Context, courseID, userID string) (*models.Vote, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	vote, ok := r.votes[courseID][userID]
	if !ok {
		return nil, fmt.Errorf("%w: no vote", engine.ErrNotFound)
	}
	return &vote, nil
}

func (r *MemoryVoteRepository) ByCourse(_ context.Context, courseID string) ([]models.Vote, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	votes := make([]models.Vote, 0, len(r.votes[courseID]))
	for _, vote := range r.votes[courseID] {
		votes = append(votes, vote)
	}
	return votes, nil
}
