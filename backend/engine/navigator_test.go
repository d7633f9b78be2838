package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"edumarket/backend/models"
)

func navCourse() *models.Course {
	return &models.Course{
		ID: "c1",
		Sections: []models.Section{
			{
				ID:       "sB",
				Position: 2,
				Lessons: []models.Lesson{
					{ID: "l3", Position: 1},
				},
			},
			{
				ID:       "sA",
				Position: 1,
				Lessons: []models.Lesson{
					{ID: "l2", Position: 2},
					{ID: "l1", Position: 1},
				},
			},
		},
	}
}

func TestFlattenOrdersBySectionThenLesson(t *testing.T) {
	lessons := Flatten(navCourse())

	ids := make([]string, len(lessons))
	for i, lesson := range lessons {
		ids[i] = lesson.ID
	}
	assert.Equal(t, []string{"l1", "l2", "l3"}, ids)
}

func TestFlattenNilCourse(t *testing.T) {
	assert.Nil(t, Flatten(nil))
}

func TestFirstLesson(t *testing.T) {
	lesson, ok := FirstLesson(navCourse())
	assert.True(t, ok)
	assert.Equal(t, "l1", lesson.ID)

	_, ok = FirstLesson(&models.Course{ID: "empty"})
	assert.False(t, ok)
}

func TestFindLesson(t *testing.T) {
	course := navCourse()

	lesson, ok := FindLesson(course, "l2")
	assert.True(t, ok)
	assert.Equal(t, "l2", lesson.ID)

	_, ok = FindLesson(course, "nope")
	assert.False(t, ok)
}

func TestNextLessonCrossesSections(t *testing.T) {
	course := navCourse()

	next, ok := NextLesson(course, "l2")
	assert.True(t, ok)
	assert.Equal(t, "l3", next.ID)
}

func TestNextLessonAtEnd(t *testing.T) {
	_, ok := NextLesson(navCourse(), "l3")
	assert.False(t, ok)
}

func TestPrevLesson(t *testing.T) {
	course := navCourse()

	prev, ok := PrevLesson(course, "l3")
	assert.True(t, ok)
	assert.Equal(t, "l2", prev.ID)

	_, ok = PrevLesson(course, "l1")
	assert.False(t, ok)
}
