package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Premkumar95/UPPTN/internal/middleware"
	"github.com/Premkumar95/UPPTN/internal/models"
	"github.com/Premkumar95/UPPTN/internal/services"
)

// CartHandler serves the cart and checkout surface.
type CartHandler struct {
	cart *services.CartService
}

func NewCartHandler(cart *services.CartService) *CartHandler {
	return &CartHandler{cart: cart}
}

// Add puts a priced selection in the cart. The quote is frozen here.
func (h *CartHandler) Add(c *fiber.Ctx) error {
	var req models.CartAdd
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	entry, err := h.cart.Add(middleware.GetSession(c), &req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Service added to cart",
		"entry":   entry,
	})
}

// List returns the session user's current entries.
func (h *CartHandler) List(c *fiber.Ctx) error {
	entries, err := h.cart.List(middleware.GetSession(c))
	if err != nil {
		return err
	}
	return c.JSON(entries)
}

// Remove deletes one entry by cart id.
func (h *CartHandler) Remove(c *fiber.Ctx) error {
	if err := h.cart.Remove(middleware.GetSession(c), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Item removed from cart"})
}

// Checkout drains the cart into pending bookings, all or nothing.
func (h *CartHandler) Checkout(c *fiber.Ctx) error {
	var req models.CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	bookings, err := h.cart.Checkout(middleware.GetSession(c), &req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Booking created successfully. Notification sent to service provider.",
		"bookings": bookings,
	})
}
