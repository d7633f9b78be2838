package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"edumarket/backend/engine"
	"edumarket/backend/models"
)

type GormRepository struct {
	DB *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{DB: db}
}

func (r *GormRepository) ListCourses(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course
	err := r.DB.WithContext(ctx).
		Order("created_at DESC").
		Find(&courses).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", engine.ErrRemote, err)
	}
	return courses, nil
}

func (r *GormRepository) GetCourse(ctx context.Context, courseID string) (*models.Course, error) {
	var course models.Course
	err := r.DB.WithContext(ctx).
		Preload("Sections", func(db *gorm.DB) *gorm.DB {
			return db.Order("sections.position")
		}).
		Preload("Sections.Lessons", func(db *gorm.DB) *gorm.DB {
			return db.Order("lessons.position")
		}).
		Preload("Sections.Lessons.Quiz").
		Preload("Sections.Lessons.Quiz.Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("quiz_questions.position")
		}).
		Preload("Sections.Lessons.Quiz.Questions.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("quiz_options.position")
		}).
		First(&course, "id = ?", courseID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: course %q", engine.ErrNotFound, courseID)
		}
		return nil, fmt.Errorf("%w: %v", engine.ErrRemote, err)
	}
	return &course, nil
}

func (r *GormRepository) CreateCourse(ctx context.Context, course *models.Course) error {
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
	if err := r.DB.WithContext(ctx).Create(course).Error; err != nil {
		return fmt.Errorf("%w: %v", engine.ErrRemote, err)
	}
	return nil
}

func (r *GormRepository) AddSection(ctx context.Context, courseID string, section *models.Section) error {
	if _, err := r.GetCourse(ctx, courseID); err != nil {
		return err
	}
	if section.ID == "" {
		section.ID = uuid.NewString()
	}
	section.CourseID = courseID
	if section.Position == 0 {
		var count int64
		r.DB.WithContext(ctx).Model(&models.Section{}).Where("course_id = ?", courseID).Count(&count)
		section.Position = int(count) + 1
	}
	for i := range section.Lessons {
		fillLessonIDs(&section.Lessons[i], section.ID, i+1)
	}
	if err := r.DB.WithContext(ctx).Create(section).Error; err != nil {
		return fmt.Errorf("%w: %v", engine.ErrRemote, err)
	}
	return nil
}

func (r *GormRepository) AddLesson(ctx context.Context, sectionID string, lesson *models.Lesson) error {
	var section models.Section
	if err := r.DB.WithContext(ctx).First(&section, "id = ?", sectionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: section %q", engine.ErrNotFound, sectionID)
		}
		return fmt.Errorf("%w: %v", engine.ErrRemote, err)
	}

	var count int64
	r.DB.WithContext(ctx).Model(&models.Lesson{}).Where("section_id = ?", sectionID).Count(&count)
	fillLessonIDs(lesson, sectionID, int(count)+1)

	if err := r.DB.WithContext(ctx).Create(lesson).Error; err != nil {
		return fmt.Errorf("%w: %v", engine.ErrRemote, err)
	}
	return nil
}

func (r *GormRepository) SetQuiz(ctx context.Context, lessonID string, quiz *models.Quiz) error {
	var lesson models.Lesson
	if err := r.DB.WithContext(ctx).First(&lesson, "id = ?", lessonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: lesson %q", engine.ErrNotFound, lessonID)
		}
		return fmt.Errorf("%w: %v", engine.ErrRemote, err)
	}
	fillQuizIDs(quiz, lessonID)
	if err := validateQuiz(quiz); err != nil {
		return err
	}

	// Replace any prior quiz for the lesson in one transaction.
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var old models.Quiz
		if err := tx.First(&old, "lesson_id = ?", lessonID).Error; err == nil {
			questions := tx.Model(&models.QuizQuestion{}).Where("quiz_id = ?", old.ID)
			var ids []string
			questions.Pluck("id", &ids)
			if len(ids) > 0 {
				if err := tx.Where("question_id IN ?", ids).Delete(&models.QuizOption{}).Error; err != nil {
					return err
				}
			}
			if err := tx.Where("quiz_id = ?", old.ID).Delete(&models.QuizQuestion{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&old).Error; err != nil {
				return err
			}
		}
		return tx.Create(quiz).Error
	})
	if err != nil {
		return fmt.Errorf("%w: %v", engine.ErrRemote, err)
	}
	return nil
}

func fillCourseIDs(course *models.Course) {
	if course.ID == "" {
		course.ID = uuid.NewString()
	}
	for i := range course.Sections {
		section := &course.Sections[i]
		if section.ID == "" {
			section.ID = uuid.NewString()
		}
		section.CourseID = course.ID
		if section.Position == 0 {
			section.Position = i + 1
		}
		for j := range section.Lessons {
			fillLessonIDs(&section.Lessons[j], section.ID, j+1)
		}
	}
}

func fillLessonIDs(lesson *models.Lesson, sectionID string, position int) {
	if lesson.ID == "" {
		lesson.ID = uuid.NewString()
	}
	lesson.SectionID = sectionID
	if lesson.Position == 0 {
		lesson.Position = position
	}
	if lesson.Quiz != nil {
		fillQuizIDs(lesson.Quiz, lesson.ID)
	}
}

func fillQuizIDs(quiz *models.Quiz, lessonID string) {
	if quiz.ID == "" {
		quiz.ID = uuid.NewString()
	}
	quiz.LessonID = lessonID
	for i := range quiz.Questions {
		question := &quiz.Questions[i]
		if question.ID == "" {
			question.ID = uuid.NewString()
		}
		question.QuizID = quiz.ID
		if question.Position == 0 {
			question.Position = i + 1
		}
		for j := range question.Options {
			option := &question.Options[j]
			if option.ID == "" {
				option.ID = uuid.NewString()
			}
			option.QuestionID = question.ID
			if option.Position == 0 {
				option.Position = j + 1
			}
		}
	}
}

// validateQuiz enforces the structural invariants: at least two options
// per question and a correct answer that references one of them.
func validateQuiz(quiz *models.Quiz) error {
	for _, question := range quiz.Questions {
		if len(question.Options) < 2 {
			return fmt.Errorf("%w: question %q needs at least 2 options", engine.ErrValidation, question.ID)
		}
		found := false
		for _, option := range question.Options {
			if option.ID == question.CorrectAnswer {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("%w: question %q correct answer %q is not an option",
				engine.ErrValidation, question.ID, question.CorrectAnswer)
		}
	}
	return nil
}
