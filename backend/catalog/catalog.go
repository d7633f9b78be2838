// Package catalog provides read and authoring access to courses,
// sections, lessons and quizzes. The learning engine only ever reads
// from it; authoring is the teacher/admin console surface.
package catalog

import (
	"context"

	"edumarket/backend/models"
)

// Repository is the catalog provider contract. GetCourse returns the
// full graph (sections, lessons, quizzes) in stored order and
// engine.ErrNotFound for an unknown id.
type Repository interface {
	ListCourses(ctx context.Context) ([]models.Course, error)
	GetCourse(ctx context.Context, courseID string) (*models.Course, error)

	CreateCourse(ctx context.Context, course *models.Course) error
	AddSection(ctx context.Context, courseID string, section *models.Section) error
	AddLesson(ctx context.Context, sectionID string, lesson *models.Lesson) error
	SetQuiz(ctx context.Context, lessonID string, quiz *models.Quiz) error
}
