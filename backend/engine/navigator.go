package engine

import (
	"sort"

	"edumarket/backend/models"
)

// Flatten returns every lesson of the course in navigation order:
// sections by position, lessons by position within their section. The
// result is a pure function of the catalog entry and stable across
// calls.
func Flatten(course *models.Course) []models.Lesson {
	if course == nil {
		return nil
	}

	sections := make([]models.Section, len(course.Sections))
	copy(sections, course.Sections)
	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].Position < sections[j].Position
	})

	var lessons []models.Lesson
	for _, section := range sections {
		ordered := make([]models.Lesson, len(section.Lessons))
		copy(ordered, section.Lessons)
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].Position < ordered[j].Position
		})
		lessons = append(lessons, ordered...)
	}
	return lessons
}

// FirstLesson returns the first lesson of the first section, used for
// the redirect when no lesson id is given.
func FirstLesson(course *models.Course) (models.Lesson, bool) {
	lessons := Flatten(course)
	if len(lessons) == 0 {
		return models.Lesson{}, false
	}
	return lessons[0], true
}

// FindLesson resolves a lesson by id within the course.
func FindLesson(course *models.Course, lessonID string) (models.Lesson, bool) {
	for _, lesson := range Flatten(course) {
		if lesson.ID == lessonID {
			return lesson, true
		}
	}
	return models.Lesson{}, false
}

// NextLesson returns the lesson immediately after currentID in flattened
// order, or false when currentID is last or unknown.
func NextLesson(course *models.Course, currentID string) (models.Lesson, bool) {
	lessons := Flatten(course)
	for i, lesson := range lessons {
		if lesson.ID == currentID && i < len(lessons)-1 {
			return lessons[i+1], true
		}
	}
	return models.Lesson{}, false
}

// PrevLesson is symmetric to NextLesson.
func PrevLesson(course *models.Course, currentID string) (models.Lesson, bool) {
	lessons := Flatten(course)
	for i, lesson := range lessons {
		if lesson.ID == currentID && i > 0 {
			return lessons[i-1], true
		}
	}
	return models.Lesson{}, false
}
