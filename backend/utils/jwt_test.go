package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edumarket/backend/config"
)

func TestJWTRoundTrip(t *testing.T) {
	cfg := &config.Config{JWTSecret: "testsecret"}

	token, err := GenerateJWTToken("user-1", "teacher", cfg)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	app := fiber.New()
	app.Get("/check", func(c *fiber.Ctx) error {
		userID, role, err := ExtractUserFromToken(c, cfg)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"user_id": userID, "role": role})
	})

	req := httptest.NewRequest("GET", "/check", nil)
	req.Header.Set("Authorization", token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestExtractRejectsBadToken(t *testing.T) {
	cfg := &config.Config{JWTSecret: "testsecret"}
	other := &config.Config{JWTSecret: "othersecret"}

	token, err := GenerateJWTToken("user-1", "student", other)
	require.NoError(t, err)

	app := fiber.New()
	app.Get("/check", func(c *fiber.Ctx) error {
		if _, _, err := ExtractUserFromToken(c, cfg); err != nil {
			return c.SendStatus(fiber.StatusUnauthorized)
		}
		return c.SendStatus(fiber.StatusOK)
	})

	for _, header := range []string{"", "garbage", token} {
		req := httptest.NewRequest("GET", "/check", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	}
}
