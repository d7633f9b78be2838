package controllers

import (
	"github.com/gofiber/fiber/v2"

	"edumarket/backend/catalog"
	"edumarket/backend/services"
	"edumarket/backend/utils"
)

// DashboardController serves the teacher/admin console overview:
// enrollment counts and rating aggregates per course.
type DashboardController struct {
	Catalog     catalog.Repository
	Voting      *services.VotingService
	Enrollments services.EnrollmentRepository
}

func NewDashboardController(cat catalog.Repository, voting *services.VotingService, enrollments services.EnrollmentRepository) *DashboardController {
	return &DashboardController{Catalog: cat, Voting: voting, Enrollments: enrollments}
}

func (dc *DashboardController) Overview(c *fiber.Ctx) error {
	courses, err := dc.Catalog.ListCourses(c.Context())
	if err != nil {
		return utils.EngineError(c, err)
	}

	result := make([]fiber.Map, 0, len(courses))
	for _, course := range courses {
		students, err := dc.Enrollments.CountByCourse(c.Context(), course.ID)
		if err != nil {
			return utils.EngineError(c, err)
		}
		summary, err := dc.Voting.Summary(c.Context(), course.ID)
		if err != nil {
			return utils.EngineError(c, err)
		}
		result = append(result, fiber.Map{
			"id":            course.ID,
			"title":         course.Title,
			"students":      students,
			"rating":        summary.Average,
			"total_ratings": summary.Total,
			"distribution":  summary.Distribution,
			"upvotes":       summary.Upvotes,
			"downvotes":     summary.Downvotes,
		})
	}
	return c.JSON(fiber.Map{"courses": result})
}
