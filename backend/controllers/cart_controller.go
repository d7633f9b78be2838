package controllers

import (
	"github.com/gofiber/fiber/v2"

	"edumarket/backend/middleware"
	"edumarket/backend/services"
	"edumarket/backend/utils"
)

type CartController struct {
	Cart *services.CartService
}

func NewCartController(cart *services.CartService) *CartController {
	return &CartController{Cart: cart}
}

func (cc *CartController) GetCart(c *fiber.Ctx) error {
	items, err := cc.Cart.Items(c.Context(), middleware.UserID(c))
	if err != nil {
		return utils.EngineError(c, err)
	}
	return c.JSON(fiber.Map{
		"items": items,
		"total": cc.Cart.Total(items),
	})
}

func (cc *CartController) AddItem(c *fiber.Ctx) error {
	var input struct {
		CourseID string `json:"course_id"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.CourseID == "" {
		return utils.BadRequest(c, "Course ID is required")
	}

	items, err := cc.Cart.Add(c.Context(), middleware.UserID(c), input.CourseID)
	if err != nil {
		return utils.EngineError(c, err)
	}
	return c.JSON(fiber.Map{
		"items": items,
		"total": cc.Cart.Total(items),
	})
}

func (cc *CartController) RemoveItem(c *fiber.Ctx) error {
	items, err := cc.Cart.Remove(c.Context(), middleware.UserID(c), c.Params("courseId"))
	if err != nil {
		return utils.EngineError(c, err)
	}
	return c.JSON(fiber.Map{
		"items": items,
		"total": cc.Cart.Total(items),
	})
}

func (cc *CartController) ClearCart(c *fiber.Ctx) error {
	if err := cc.Cart.Clear(c.Context(), middleware.UserID(c)); err != nil {
		return utils.EngineError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Cart cleared"})
}

// Checkout simulates payment, enrolls the user in the cart's courses
// and empties the cart.
func (cc *CartController) Checkout(c *fiber.Ctx) error {
	enrollments, err := cc.Cart.Checkout(c.Context(), middleware.UserID(c))
	if err != nil {
		return utils.EngineError(c, err)
	}
	return c.JSON(fiber.Map{
		"message":     "Checkout successful",
		"enrollments": enrollments,
	})
}

func (cc *CartController) ListEnrollments(c *fiber.Ctx) error {
	enrollments, err := cc.Cart.Enrollments.ByUser(c.Context(), middleware.UserID(c))
	if err != nil {
		return utils.EngineError(c, err)
	}
	return c.JSON(fiber.Map{"enrollments": enrollments})
}
