package catalog

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"edumarket/backend/engine"
	"edumarket/backend/models"
)

// MemoryRepository is the in-memory catalog adapter used by tests and
// demo mode. Courses are returned as copies so callers cannot mutate
// the stored graph.
type MemoryRepository struct {
	mu      sync.RWMutex
	order   []string
	courses map[string]*models.Course
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{courses: map[string]*models.Course{}}
}

func (r *MemoryRepository) ListCourses(_ context.Context) ([]models.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	courses := make([]models.Course, 0, len(r.order))
	for _, id := range r.order {
		course := *r.courses[id]
		course.Sections = nil
		courses = append(courses, course)
	}
	return courses, nil
}

func (r *MemoryRepository) GetCourse(_ context.Context, courseID string) (*models.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	course, ok := r.courses[courseID]
	if !ok {
		return nil, fmt.Errorf("%w: course %q", engine.ErrNotFound, courseID)
	}
	copied := copyCourse(course)
	return &copied, nil
}

func (r *MemoryRepository) CreateCourse(_ context.Context, course *models.Course) error {
	fillCourseIDs(course)
	for _, section := range course.Sections {
		for _, lesson := range section.Lessons {
			if lesson.Quiz != nil {
				if err := validateQuiz(lesson.Quiz); err != nil {
					return err
				}
			}
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	copied := copyCourse(course)
	r.courses[course.ID] = &copied
	r.order = append(r.order, course.ID)
	return nil
}

func (r *MemoryRepository) AddSection(_ context.Context, courseID string, section *models.Section) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	course, ok := r.courses[courseID]
	if !ok {
		return fmt.Errorf("%w: course %q", engine.ErrNotFound, courseID)
	}
	if section.ID == "" {
		section.ID = uuid.NewString()
	}
	section.CourseID = courseID
	if section.Position == 0 {
		section.Position = len(course.Sections) + 1
	}
	for i := range section.Lessons {
		fillLessonIDs(&section.Lessons[i], section.ID, i+1)
	}
	course.Sections = append(course.Sections, *section)
	return nil
}

func (r *MemoryRepository) AddLesson(_ context.Context, sectionID string, lesson *models.Lesson) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, course := range r.courses {
		for i := range course.Sections {
			section := &course.Sections[i]
			if section.ID != sectionID {
				continue
			}
			fillLessonIDs(lesson, sectionID, len(section.Lessons)+1)
			section.Lessons = append(section.Lessons, *lesson)
			return nil
		}
	}
	return fmt.Errorf("%w: section %q", engine.ErrNotFound, sectionID)
}

func (r *MemoryRepository) SetQuiz(_ context.Context, lessonID string, quiz *models.Quiz) error {
	fillQuizIDs(quiz, lessonID)
	if err := validateQuiz(quiz); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, course := range r.courses {
		for i := range course.Sections {
			for j := range course.Sections[i].Lessons {
				lesson := &course.Sections[i].Lessons[j]
				if lesson.ID == lessonID {
					copied := *quiz
					lesson.Quiz = &copied
					return nil
				}
			}
		}
	}
	return fmt.Errorf("%w: lesson %q", engine.ErrNotFound, lessonID)
}

func copyCourse(course *models.Course) models.Course {
	copied := *course
	copied.Sections = make([]models.Section, len(course.Sections))
	for i, section := range course.Sections {
		copiedSection := section
		copiedSection.Lessons = make([]models.Lesson, len(section.Lessons))
		for j, lesson := range section.Lessons {
			copiedLesson := lesson
			if lesson.Quiz != nil {
				quiz := *lesson.Quiz
				quiz.Questions = make([]models.QuizQuestion, len(lesson.Quiz.Questions))
				for k, question := range lesson.Quiz.Questions {
					question.Options = append([]models.QuizOption(nil), question.Options...)
					quiz.Questions[k] = question
				}
				copiedLesson.Quiz = &quiz
			}
			copiedSection.Lessons[j] = copiedLesson
		}
		copied.Sections[i] = copiedSection
	}
	return copied
}
