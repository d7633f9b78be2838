package controllers

import (
	"github.com/gofiber/fiber/v2"

	"edumarket/backend/catalog"
	"edumarket/backend/engine"
	"edumarket/backend/middleware"
	"edumarket/backend/services"
	"edumarket/backend/utils"
)

type LearnController struct {
	Catalog  catalog.Repository
	Progress *services.ProgressService
	Quizzes  *services.QuizService
}

func NewLearnController(cat catalog.Repository, progress *services.ProgressService, quizzes *services.QuizService) *LearnController {
	return &LearnController{Catalog: cat, Progress: progress, Quizzes: quizzes}
}

// Learn resolves the course's entry point: with no lesson id the caller
// is redirected to the first lesson of the first section. This is the
// only auto-navigation the engine performs.
func (lc *LearnController) Learn(c *fiber.Ctx) error {
	courseID := c.Params("id")
	course, err := lc.Catalog.GetCourse(c.Context(), courseID)
	if err != nil {
		return utils.EngineError(c, err)
	}

	first, ok := engine.FirstLesson(course)
	if !ok {
		return utils.NotFound(c, "Course has no lessons")
	}
	return c.Redirect("/api/courses/"+courseID+"/learn/"+first.ID, fiber.StatusFound)
}

// GetLesson returns the active lesson plus everything the player needs:
// prev/next ids, per-lesson completion, the course progress summary and
// the one-time congratulation flag once 100% is observed.
func (lc *LearnController) GetLesson(c *fiber.Ctx) error {
	courseID := c.Params("id")
	lessonID := c.Params("lessonId")
	userID := middleware.UserID(c)

	course, err := lc.Catalog.GetCourse(c.Context(), courseID)
	if err != nil {
		return utils.EngineError(c, err)
	}
	lesson, ok := engine.FindLesson(course, lessonID)
	if !ok {
		return utils.NotFound(c, "Lesson not found")
	}

	summary, err := lc.Progress.Summary(c.Context(), userID, courseID)
	if err != nil {
		return utils.EngineError(c, err)
	}

	payload := fiber.Map{
		"lesson":        lesson,
		"completed":     lc.Progress.IsLessonComplete(c.Context(), userID, courseID, lessonID),
		"progress":      summary,
		"quiz_progress": lc.Quizzes.QuizProgress(c.Context(), userID, courseID),
		"congratulate":  summary.Complete,
	}
	if next, ok := engine.NextLesson(course, lessonID); ok {
		payload["next_lesson_id"] = next.ID
	}
	if prev, ok := engine.PrevLesson(course, lessonID); ok {
		payload["previous_lesson_id"] = prev.ID
	}
	return c.JSON(payload)
}

// MarkComplete records a finished lesson.
func (lc *LearnController) MarkComplete(c *fiber.Ctx) error {
	var input struct {
		LessonID string `json:"lesson_id"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.LessonID == "" {
		return utils.BadRequest(c, "Lesson ID is required")
	}

	summary, err := lc.Progress.MarkComplete(c.Context(), middleware.UserID(c), c.Params("id"), input.LessonID)
	if err != nil {
		return utils.EngineError(c, err)
	}
	return c.JSON(fiber.Map{
		"message":      "Progress updated",
		"progress":     summary,
		"congratulate": summary.Complete,
	})
}

// GetProgress returns the completion summary for a course.
func (lc *LearnController) GetProgress(c *fiber.Ctx) error {
	summary, err := lc.Progress.Summary(c.Context(), middleware.UserID(c), c.Params("id"))
	if err != nil {
		return utils.EngineError(c, err)
	}
	return c.JSON(fiber.Map{"progress": summary})
}
