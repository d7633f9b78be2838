package controllers

import (
	"github.com/gofiber/fiber/v2"

	"edumarket/backend/catalog"
	"edumarket/backend/middleware"
	"edumarket/backend/models"
	"edumarket/backend/services"
	"edumarket/backend/users"
	"edumarket/backend/utils"
)

type CoursesController struct {
	Catalog catalog.Repository
	Voting  *services.VotingService
	Users   users.Repository
}

func NewCoursesController(cat catalog.Repository, voting *services.VotingService, repo users.Repository) *CoursesController {
	return &CoursesController{Catalog: cat, Voting: voting, Users: repo}
}

func (cc *CoursesController) ListCourses(c *fiber.Ctx) error {
	courses, err := cc.Catalog.ListCourses(c.Context())
	if err != nil {
		return utils.EngineError(c, err)
	}

	result := make([]fiber.Map, 0, len(courses))
	for _, course := range courses {
		summary, err := cc.Voting.Summary(c.Context(), course.ID)
		if err != nil {
			return utils.EngineError(c, err)
		}
		result = append(result, fiber.Map{
			"id":          course.ID,
			"title":       course.Title,
			"description": course.Description,
			"instructor":  course.Instructor,
			"category":    course.Category,
			"level":       course.Level,
			"duration":    course.Duration,
			"price":       course.Price,
			"image_url":   course.ImageURL,
			"rating":      summary.Average,
		})
	}
	return c.JSON(result)
}

func (cc *CoursesController) GetCourseDetails(c *fiber.Ctx) error {
	course, err := cc.Catalog.GetCourse(c.Context(), c.Params("id"))
	if err != nil {
		return utils.EngineError(c, err)
	}

	summary, err := cc.Voting.Summary(c.Context(), course.ID)
	if err != nil {
		return utils.EngineError(c, err)
	}
	reviews, err := cc.Voting.Comments(c.Context(), course.ID)
	if err != nil {
		return utils.EngineError(c, err)
	}

	return c.JSON(fiber.Map{
		"course":  course,
		"rating":  summary,
		"reviews": reviews,
	})
}

func (cc *CoursesController) CreateCourse(c *fiber.Ctx) error {
	var course models.Course
	if err := c.BodyParser(&course); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if course.Title == "" {
		return utils.BadRequest(c, "Title is required")
	}

	course.InstructorID = middleware.UserID(c)
	if course.Instructor == "" {
		if user, err := cc.Users.ByID(c.Context(), course.InstructorID); err == nil {
			course.Instructor = user.Name
		}
	}

	if err := cc.Catalog.CreateCourse(c.Context(), &course); err != nil {
		return utils.EngineError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Course created",
		"course":  course,
	})
}

func (cc *CoursesController) AddSection(c *fiber.Ctx) error {
	var section models.Section
	if err := c.BodyParser(&section); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if section.Title == "" {
		return utils.BadRequest(c, "Title is required")
	}

	if err := cc.Catalog.AddSection(c.Context(), c.Params("id"), &section); err != nil {
		return utils.EngineError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Section added",
		"section": section,
	})
}

func (cc *CoursesController) AddLesson(c *fiber.Ctx) error {
	var lesson models.Lesson
	if err := c.BodyParser(&lesson); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if lesson.Title == "" {
		return utils.BadRequest(c, "Title is required")
	}
	if lesson.MediaType == "" {
		lesson.MediaType = models.MediaVideo
	}

	if err := cc.Catalog.AddLesson(c.Context(), c.Params("sectionId"), &lesson); err != nil {
		return utils.EngineError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Lesson added",
		"lesson":  lesson,
	})
}

func (cc *CoursesController) SetQuiz(c *fiber.Ctx) error {
	var quiz models.Quiz
	if err := c.BodyParser(&quiz); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if err := cc.Catalog.SetQuiz(c.Context(), c.Params("lessonId"), &quiz); err != nil {
		return utils.EngineError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Quiz saved",
		"quiz":    quiz,
	})
}
