package middleware

import (
	"github.com/gofiber/fiber/v2"

	"edumarket/backend/config"
	"edumarket/backend/models"
	"edumarket/backend/utils"
)

// Locals keys set by AuthMiddleware.
const (
	LocalUserID = "userID"
	LocalRole   = "role"
)

func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, role, err := utils.ExtractUserFromToken(c, cfg)
		if err != nil {
			return utils.Unauthorized(c, "Unauthorized")
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalRole, role)
		return c.Next()
	}
}

// RequireRole admits only the listed roles; admins always pass.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals(LocalRole).(string)
		if role == models.RoleAdmin {
			return c.Next()
		}
		for _, allowed := range roles {
			if role == allowed {
				return c.Next()
			}
		}
		return utils.Error(c, fiber.StatusForbidden,
			fiber.NewError(fiber.StatusForbidden, "Forbidden - insufficient role"))
	}
}

// UserID reads the authenticated user id from locals.
func UserID(c *fiber.Ctx) string {
	id, _ := c.Locals(LocalUserID).(string)
	return id
}
