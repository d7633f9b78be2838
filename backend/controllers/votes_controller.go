package controllers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"edumarket/backend/middleware"
	"edumarket/backend/services"
	"edumarket/backend/utils"
)

type VotesController struct {
	Voting   *services.VotingService
	Validate *validator.Validate
}

func NewVotesController(voting *services.VotingService) *VotesController {
	return &VotesController{Voting: voting, Validate: validator.New()}
}

// GetSummary returns the recomputed aggregates plus the caller's own
// vote, if any.
func (vc *VotesController) GetSummary(c *fiber.Ctx) error {
	courseID := c.Params("id")

	summary, err := vc.Voting.Summary(c.Context(), courseID)
	if err != nil {
		return utils.EngineError(c, err)
	}
	userVote, err := vc.Voting.UserVote(c.Context(), courseID, middleware.UserID(c))
	if err != nil {
		return utils.EngineError(c, err)
	}

	return c.JSON(fiber.Map{
		"summary":   summary,
		"user_vote": userVote,
	})
}

type ratingInput struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// SubmitRating upserts a star rating. Rejected until the course is
// fully completed.
func (vc *VotesController) SubmitRating(c *fiber.Ctx) error {
	var input ratingInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if err := vc.Validate.Struct(input); err != nil {
		return utils.Error(c, fiber.StatusUnprocessableEntity, err)
	}

	vote, err := vc.Voting.SubmitStarRating(c.Context(), c.Params("id"), middleware.UserID(c), input.Rating, input.Comment)
	if err != nil {
		return utils.EngineError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Vote recorded",
		"vote":    vote,
	})
}

// SubmitVote upserts a binary up/down vote.
func (vc *VotesController) SubmitVote(c *fiber.Ctx) error {
	var input struct {
		Direction string `json:"direction"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	vote, err := vc.Voting.SubmitBinaryVote(c.Context(), c.Params("id"), middleware.UserID(c), input.Direction)
	if err != nil {
		return utils.EngineError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Vote recorded",
		"vote":    vote,
	})
}

// RemoveVote withdraws the caller's vote.
func (vc *VotesController) RemoveVote(c *fiber.Ctx) error {
	if err := vc.Voting.RemoveVote(c.Context(), c.Params("id"), middleware.UserID(c)); err != nil {
		return utils.EngineError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Vote removed"})
}
