package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Premkumar95/UPPTN/internal/middleware"
	"github.com/Premkumar95/UPPTN/internal/models"
	"github.com/Premkumar95/UPPTN/internal/services"
)

// ProviderHandler serves the provider-scoped catalog CRUD.
type ProviderHandler struct {
	catalog *services.CatalogService
}

func NewProviderHandler(catalog *services.CatalogService) *ProviderHandler {
	return &ProviderHandler{catalog: catalog}
}

// CreateService adds a listing owned by the session's provider.
func (h *ProviderHandler) CreateService(c *fiber.Ctx) error {
	var req models.ServiceCreate
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	svc, err := h.catalog.Create(middleware.GetSession(c), &req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":    "Service added successfully",
		"service_id": svc.ServiceID,
	})
}

// ListServices returns the provider's own listings.
func (h *ProviderHandler) ListServices(c *fiber.Ctx) error {
	listings, err := h.catalog.ListMine(middleware.GetSession(c))
	if err != nil {
		return err
	}
	return c.JSON(listings)
}

// UpdateService applies a partial edit to an owned listing.
func (h *ProviderHandler) UpdateService(c *fiber.Ctx) error {
	var req models.ServiceUpdate
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	svc, err := h.catalog.Update(middleware.GetSession(c), c.Params("id"), &req)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Service updated successfully",
		"service": svc,
	})
}

// DeleteService removes an owned listing.
func (h *ProviderHandler) DeleteService(c *fiber.Ctx) error {
	if err := h.catalog.Delete(middleware.GetSession(c), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Service deleted successfully"})
}
