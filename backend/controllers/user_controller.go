package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"edumarket/backend/engine"
	"edumarket/backend/middleware"
	"edumarket/backend/store"
	"edumarket/backend/users"
	"edumarket/backend/utils"
)

type UserController struct {
	Users users.Repository
	Store store.Store
}

func NewUserController(repo users.Repository, kv store.Store) *UserController {
	return &UserController{Users: repo, Store: kv}
}

func (uc *UserController) GetProfile(c *fiber.Ctx) error {
	user, err := uc.Users.ByID(c.Context(), middleware.UserID(c))
	if err != nil {
		return utils.EngineError(c, err)
	}
	return c.JSON(fiber.Map{
		"id":         user.ID,
		"name":       user.Name,
		"email":      user.Email,
		"role":       user.Role,
		"avatar_url": user.AvatarURL,
	})
}

func (uc *UserController) UpdateProfile(c *fiber.Ctx) error {
	var input struct {
		Name      string `json:"name"`
		AvatarURL string `json:"avatar_url"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	user, err := uc.Users.ByID(c.Context(), middleware.UserID(c))
	if err != nil {
		return utils.EngineError(c, err)
	}
	if input.Name != "" {
		user.Name = input.Name
	}
	if input.AvatarURL != "" {
		user.AvatarURL = input.AvatarURL
	}
	if err := uc.Users.Update(c.Context(), user); err != nil {
		return utils.EngineError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Profile updated"})
}

// GetLanguage returns the stored UI language preference, defaulting to
// English.
func (uc *UserController) GetLanguage(c *fiber.Ctx) error {
	language := "en"
	err := uc.Store.Get(c.Context(), middleware.UserID(c), store.LanguageKey, &language)
	if err != nil && !errors.Is(err, engine.ErrNotFound) && !errors.Is(err, engine.ErrPersistenceCorrupt) {
		return utils.EngineError(c, err)
	}
	return c.JSON(fiber.Map{"language": language})
}

func (uc *UserController) SetLanguage(c *fiber.Ctx) error {
	var input struct {
		Language string `json:"language"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Language == "" {
		return utils.BadRequest(c, "Language is required")
	}
	if err := uc.Store.Set(c.Context(), middleware.UserID(c), store.LanguageKey, input.Language); err != nil {
		return utils.EngineError(c, err)
	}
	return c.JSON(fiber.Map{"language": input.Language})
}
