// Package store implements the key-value persistence provider used for
// progress, quiz state, cart and language preference. Values are JSON
// documents keyed per user; last write wins.
package store

import "context"

// Well-known keys.
const (
	CartKey     = "cart"
	LanguageKey = "language"
)

// ProgressKey names the completed-lesson set of a course.
func ProgressKey(courseID string) string {
	return "course_" + courseID + "_progress"
}

// QuizProgressKey names the lesson id -> passed map of a course.
func QuizProgressKey(courseID string) string {
	return "course_" + courseID + "_quiz_progress"
}

// QuizSessionKey names an in-flight quiz session for a lesson.
func QuizSessionKey(courseID, lessonID string) string {
	return "course_" + courseID + "_quiz_session_" + lessonID
}

// Store is the persistence provider contract. Get unmarshals into dest
// and returns engine.ErrNotFound for a missing key or
// engine.ErrPersistenceCorrupt when the stored JSON does not parse;
// callers recover from the latter by resetting to empty state.
type Store interface {
	Get(ctx context.Context, userID, key string, dest any) error
	Set(ctx context.Context, userID, key string, value any) error
	Delete(ctx context.Context, userID, key string) error
}
