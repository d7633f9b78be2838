// Package services combines the pure engine with the persistence
// provider and the repositories. State transitions live in the engine;
// everything here is load-transition-persist.
package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"edumarket/backend/catalog"
	"edumarket/backend/engine"
	"edumarket/backend/models"
	"edumarket/backend/store"
)

type ProgressService struct {
	Catalog catalog.Repository
	Store   store.Store
	Logger  *log.Logger
}

func NewProgressService(cat catalog.Repository, kv store.Store, logger *log.Logger) *ProgressService {
	return &ProgressService{Catalog: cat, Store: kv, Logger: logger}
}

// completedLessons loads the completed set, recovering from corrupt or
// missing stored state with an empty set. Corruption is logged, never
// surfaced.
func (s *ProgressService) completedLessons(ctx context.Context, userID, courseID string) []string {
	var completed []string
	err := s.Store.Get(ctx, userID, store.ProgressKey(courseID), &completed)
	switch {
	case err == nil:
		return completed
	case errors.Is(err, engine.ErrNotFound):
		return nil
	case errors.Is(err, engine.ErrPersistenceCorrupt):
		s.Logger.Printf("progress for course %s user %s corrupt, resetting: %v", courseID, userID, err)
		_ = s.Store.Delete(ctx, userID, store.ProgressKey(courseID))
		return nil
	default:
		s.Logger.Printf("progress read failed for course %s user %s: %v", courseID, userID, err)
		return nil
	}
}

// MarkComplete records a finished lesson and returns the updated
// summary. Re-marking a completed lesson changes nothing and skips the
// persistence write.
func (s *ProgressService) MarkComplete(ctx context.Context, userID, courseID, lessonID string) (models.ProgressSummary, error) {
	if userID == "" {
		return models.ProgressSummary{}, fmt.Errorf("%w: no user", engine.ErrAuthRequired)
	}
	course, err := s.Catalog.GetCourse(ctx, courseID)
	if err != nil {
		return models.ProgressSummary{}, err
	}
	if _, ok := engine.FindLesson(course, lessonID); !ok {
		return models.ProgressSummary{}, fmt.Errorf("%w: lesson %q", engine.ErrNotFound, lessonID)
	}

	completed := s.completedLessons(ctx, userID, courseID)
	completed, changed := engine.MarkComplete(completed, lessonID)
	if changed {
		if err := s.Store.Set(ctx, userID, store.ProgressKey(courseID), completed); err != nil {
			return models.ProgressSummary{}, err
		}
	}
	return s.summarize(course, completed), nil
}

// Summary derives the current completion view for a course.
func (s *ProgressService) Summary(ctx context.Context, userID, courseID string) (models.ProgressSummary, error) {
	course, err := s.Catalog.GetCourse(ctx, courseID)
	if err != nil {
		return models.ProgressSummary{}, err
	}
	return s.summarize(course, s.completedLessons(ctx, userID, courseID)), nil
}

// IsCourseComplete is the gating predicate used by the voting service.
func (s *ProgressService) IsCourseComplete(ctx context.Context, userID, courseID string) (bool, error) {
	summary, err := s.Summary(ctx, userID, courseID)
	if err != nil {
		return false, err
	}
	return summary.Complete, nil
}

// IsLessonComplete reports whether a single lesson was marked.
func (s *ProgressService) IsLessonComplete(ctx context.Context, userID, courseID, lessonID string) bool {
	return engine.IsComplete(s.completedLessons(ctx, userID, courseID), lessonID)
}

func (s *ProgressService) summarize(course *models.Course, completed []string) models.ProgressSummary {
	total := len(engine.Flatten(course))
	if completed == nil {
		completed = []string{}
	}
	return models.ProgressSummary{
		CourseID:     course.ID,
		CompletedIDs: completed,
		Completed:    len(completed),
		Total:        total,
		Percentage:   engine.CompletionPercentage(len(completed), total),
		Complete:     engine.IsCourseComplete(len(completed), total),
	}
}
