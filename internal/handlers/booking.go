package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Premkumar95/UPPTN/internal/middleware"
	"github.com/Premkumar95/UPPTN/internal/models"
	"github.com/Premkumar95/UPPTN/internal/services"
)

// BookingHandler handles booking-related requests
type BookingHandler struct {
	bookings *services.BookingService
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(bookings *services.BookingService) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

// List returns the bookings visible to the session: own orders for a user,
// received orders for a provider.
func (h *BookingHandler) List(c *fiber.Ctx) error {
	bookings, err := h.bookings.List(middleware.GetSession(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"bookings": bookings,
		"count":    len(bookings),
	})
}

// Get is the tracking lookup. No auth required: outsiders receive the
// read-only projection, the booking's user or provider the full record.
func (h *BookingHandler) Get(c *fiber.Ctx) error {
	booking, err := h.bookings.Get(middleware.GetSession(c), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(booking)
}

// UpdateStatus advances the booking one step in its lifecycle.
func (h *BookingHandler) UpdateStatus(c *fiber.Ctx) error {
	var req models.StatusUpdate
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	booking, err := h.bookings.Advance(middleware.GetSession(c), c.Params("id"), req.Status)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Booking status updated successfully",
		"booking": booking,
	})
}
