package controllers

import (
	"github.com/gofiber/fiber/v2"

	"edumarket/backend/engine"
	"edumarket/backend/middleware"
	"edumarket/backend/models"
	"edumarket/backend/services"
	"edumarket/backend/utils"
)

type QuizController struct {
	Quizzes *services.QuizService
}

func NewQuizController(quizzes *services.QuizService) *QuizController {
	return &QuizController{Quizzes: quizzes}
}

func sessionPayload(session *engine.QuizSession, quiz *models.Quiz) fiber.Map {
	questions := engine.QuizQuestions(quiz)
	payload := fiber.Map{
		"quiz_id":  quiz.ID,
		"title":    quiz.Title,
		"index":    session.Index,
		"total":    len(questions),
		"answers":  session.Answers,
		"state":    session.State(quiz),
		"finished": session.Finished,
	}
	if session.Index >= 0 && session.Index < len(questions) {
		question := questions[session.Index]
		payload["question"] = fiber.Map{
			"id":      question.ID,
			"prompt":  question.Prompt,
			"options": question.Options,
		}
		// The correct option is revealed only in the checked state.
		if session.State(quiz) == engine.StateChecked {
			payload["correct_answer"] = question.CorrectAnswer
		}
	}
	return payload
}

// GetSession returns the caller's in-flight session for a lesson quiz,
// starting one if needed.
func (qc *QuizController) GetSession(c *fiber.Ctx) error {
	session, quiz, err := qc.Quizzes.Session(c.Context(), middleware.UserID(c), c.Params("id"), c.Params("lessonId"))
	if err != nil {
		return utils.EngineError(c, err)
	}
	return c.JSON(sessionPayload(session, quiz))
}

// Answer records the selected option for the current question.
func (qc *QuizController) Answer(c *fiber.Ctx) error {
	var input struct {
		OptionID string `json:"option_id"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	session, err := qc.Quizzes.Select(c.Context(), middleware.UserID(c), c.Params("id"), c.Params("lessonId"), input.OptionID)
	if err != nil {
		return utils.EngineError(c, err)
	}
	_, quiz, err := qc.Quizzes.Session(c.Context(), middleware.UserID(c), c.Params("id"), c.Params("lessonId"))
	if err != nil {
		return utils.EngineError(c, err)
	}
	return c.JSON(sessionPayload(session, quiz))
}

// Advance applies the primary action: check answer, next question, or
// finish quiz. The final press returns the scored result.
func (qc *QuizController) Advance(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	session, result, err := qc.Quizzes.Advance(c.Context(), userID, c.Params("id"), c.Params("lessonId"))
	if err != nil {
		return utils.EngineError(c, err)
	}
	if result != nil {
		return c.JSON(fiber.Map{
			"finished": true,
			"result":   result,
		})
	}

	_, quiz, err := qc.Quizzes.Session(c.Context(), userID, c.Params("id"), c.Params("lessonId"))
	if err != nil {
		return utils.EngineError(c, err)
	}
	return c.JSON(sessionPayload(session, quiz))
}

// Previous steps back one question, dropping the reveal but keeping the
// stored answer.
func (qc *QuizController) Previous(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	session, err := qc.Quizzes.Previous(c.Context(), userID, c.Params("id"), c.Params("lessonId"))
	if err != nil {
		return utils.EngineError(c, err)
	}
	_, quiz, err := qc.Quizzes.Session(c.Context(), userID, c.Params("id"), c.Params("lessonId"))
	if err != nil {
		return utils.EngineError(c, err)
	}
	return c.JSON(sessionPayload(session, quiz))
}

// Score evaluates a full answer set in one call.
func (qc *QuizController) Score(c *fiber.Ctx) error {
	var input struct {
		Answers map[string]string `json:"answers"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	result, err := qc.Quizzes.Score(c.Context(), middleware.UserID(c), c.Params("id"), c.Params("lessonId"), input.Answers)
	if err != nil {
		return utils.EngineError(c, err)
	}
	return c.JSON(fiber.Map{"result": result})
}
