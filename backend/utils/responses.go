package utils

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"edumarket/backend/engine"
)

// ErrorResponse is the envelope for error JSON replies. Successful
// replies are plain fiber.Map payloads shaped per handler.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Error writes a JSON error envelope.
func Error(c *fiber.Ctx, status int, err error) error {
	return c.Status(status).JSON(ErrorResponse{
		Success: false,
		Error:   http.StatusText(status),
		Message: err.Error(),
	})
}

// EngineError maps the engine's error taxonomy onto HTTP statuses. The
// gating rejection is a 403: the caller is known but the precondition
// does not hold.
func EngineError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, engine.ErrAuthRequired):
		return Error(c, fiber.StatusUnauthorized, err)
	case errors.Is(err, engine.ErrCourseIncomplete):
		return Error(c, fiber.StatusForbidden, err)
	case errors.Is(err, engine.ErrNotFound):
		return Error(c, fiber.StatusNotFound, err)
	case errors.Is(err, engine.ErrValidation):
		return Error(c, fiber.StatusUnprocessableEntity, err)
	case errors.Is(err, engine.ErrPersistenceCorrupt):
		// Recovered upstream in normal flows; reaching here means the
		// caller chose to surface it.
		return Error(c, fiber.StatusInternalServerError, err)
	case errors.Is(err, engine.ErrRemote):
		return Error(c, fiber.StatusBadGateway, err)
	default:
		return Error(c, fiber.StatusInternalServerError, err)
	}
}

// BadRequest writes a 400 with the given message.
func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, fiber.NewError(fiber.StatusBadRequest, message))
}

// Unauthorized writes a 401 with the given message.
func Unauthorized(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusUnauthorized, fiber.NewError(fiber.StatusUnauthorized, message))
}

// NotFound writes a 404 with the given message.
func NotFound(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusNotFound, fiber.NewError(fiber.StatusNotFound, message))
}
