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

type QuizService struct {
	Catalog catalog.Repository
	Store   store.Store
	Logger  *log.Logger
}

func NewQuizService(cat catalog.Repository, kv store.Store, logger *log.Logger) *QuizService {
	return &QuizService{Catalog: cat, Store: kv, Logger: logger}
}

// quizForLesson resolves the quiz attached to a lesson.
func (s *QuizService) quizForLesson(ctx context.Context, courseID, lessonID string) (*models.Quiz, error) {
	course, err := s.Catalog.GetCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	lesson, ok := engine.FindLesson(course, lessonID)
	if !ok {
		return nil, fmt.Errorf("%w: lesson %q", engine.ErrNotFound, lessonID)
	}
	if lesson.Quiz == nil {
		return nil, fmt.Errorf("%w: lesson %q has no quiz", engine.ErrNotFound, lessonID)
	}
	return lesson.Quiz, nil
}

// Session returns the learner's in-flight session for a lesson's quiz,
// starting a fresh one when none is stored (or the stored one is
// corrupt).
func (s *QuizService) Session(ctx context.Context, userID, courseID, lessonID string) (*engine.QuizSession, *models.Quiz, error) {
	if userID == "" {
		return nil, nil, fmt.Errorf("%w: no user", engine.ErrAuthRequired)
	}
	quiz, err := s.quizForLesson(ctx, courseID, lessonID)
	if err != nil {
		return nil, nil, err
	}

	var session engine.QuizSession
	err = s.Store.Get(ctx, userID, store.QuizSessionKey(courseID, lessonID), &session)
	switch {
	case err == nil && session.QuizID == quiz.ID && session.Answers != nil:
		return &session, quiz, nil
	case err == nil:
		// Stored session belongs to another quiz revision; drop it.
		_ = s.Store.Delete(ctx, userID, store.QuizSessionKey(courseID, lessonID))
	case !errors.Is(err, engine.ErrNotFound):
		s.Logger.Printf("quiz session for lesson %s user %s unreadable, restarting: %v", lessonID, userID, err)
		_ = s.Store.Delete(ctx, userID, store.QuizSessionKey(courseID, lessonID))
	}

	fresh, err := engine.NewQuizSession(quiz)
	if err != nil {
		return nil, nil, err
	}
	return fresh, quiz, nil
}

// Select stores the chosen option for the current question.
func (s *QuizService) Select(ctx context.Context, userID, courseID, lessonID, optionID string) (*engine.QuizSession, error) {
	session, quiz, err := s.Session(ctx, userID, courseID, lessonID)
	if err != nil {
		return nil, err
	}
	if err := session.Select(quiz, optionID); err != nil {
		return nil, err
	}
	if err := s.Store.Set(ctx, userID, store.QuizSessionKey(courseID, lessonID), session); err != nil {
		return nil, err
	}
	return session, nil
}

// Advance applies the primary action (check answer / next question /
// finish quiz). When the session finishes it scores the answers, records
// the pass flag on a perfect score and clears the stored session. The
// result is nil until then.
func (s *QuizService) Advance(ctx context.Context, userID, courseID, lessonID string) (*engine.QuizSession, *models.QuizResult, error) {
	session, quiz, err := s.Session(ctx, userID, courseID, lessonID)
	if err != nil {
		return nil, nil, err
	}
	finished, err := session.Advance(quiz)
	if err != nil {
		return nil, nil, err
	}

	if !finished {
		if err := s.Store.Set(ctx, userID, store.QuizSessionKey(courseID, lessonID), session); err != nil {
			return nil, nil, err
		}
		return session, nil, nil
	}

	result, err := engine.ScoreQuiz(quiz, session.Answers)
	if err != nil {
		return nil, nil, err
	}
	if result.Passed {
		if err := s.markQuizPassed(ctx, userID, courseID, lessonID); err != nil {
			return nil, nil, err
		}
	}
	_ = s.Store.Delete(ctx, userID, store.QuizSessionKey(courseID, lessonID))
	return session, &result, nil
}

// Previous steps the session back one question.
func (s *QuizService) Previous(ctx context.Context, userID, courseID, lessonID string) (*engine.QuizSession, error) {
	session, _, err := s.Session(ctx, userID, courseID, lessonID)
	if err != nil {
		return nil, err
	}
	session.Previous()
	if err := s.Store.Set(ctx, userID, store.QuizSessionKey(courseID, lessonID), session); err != nil {
		return nil, err
	}
	return session, nil
}

// Score evaluates a one-shot answer set without session bookkeeping,
// recording the pass flag on a perfect score.
func (s *QuizService) Score(ctx context.Context, userID, courseID, lessonID string, answers map[string]string) (models.QuizResult, error) {
	if userID == "" {
		return models.QuizResult{}, fmt.Errorf("%w: no user", engine.ErrAuthRequired)
	}
	quiz, err := s.quizForLesson(ctx, courseID, lessonID)
	if err != nil {
		return models.QuizResult{}, err
	}
	result, err := engine.ScoreQuiz(quiz, answers)
	if err != nil {
		return models.QuizResult{}, err
	}
	if result.Passed {
		if err := s.markQuizPassed(ctx, userID, courseID, lessonID); err != nil {
			return models.QuizResult{}, err
		}
	}
	return result, nil
}

// QuizProgress returns the lesson id -> passed map for a course,
// resetting corrupt state to empty.
func (s *QuizService) QuizProgress(ctx context.Context, userID, courseID string) map[string]bool {
	passed := map[string]bool{}
	err := s.Store.Get(ctx, userID, store.QuizProgressKey(courseID), &passed)
	if err != nil && !errors.Is(err, engine.ErrNotFound) {
		s.Logger.Printf("quiz progress for course %s user %s unreadable, resetting: %v", courseID, userID, err)
		return map[string]bool{}
	}
	return passed
}

func (s *QuizService) markQuizPassed(ctx context.Context, userID, courseID, lessonID string) error {
	passed := s.QuizProgress(ctx, userID, courseID)
	passed[lessonID] = true
	return s.Store.Set(ctx, userID, store.QuizProgressKey(courseID), passed)
}
