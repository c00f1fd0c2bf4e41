package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Premkumar95/UPPTN/internal/apperr"
	"github.com/Premkumar95/UPPTN/internal/middleware"
	"github.com/Premkumar95/UPPTN/internal/models"
	"github.com/Premkumar95/UPPTN/internal/session"
	"github.com/Premkumar95/UPPTN/internal/storage"
)

// AddressHandler serves the saved-address CRUD on a user's profile.
type AddressHandler struct {
	store storage.Store
}

func NewAddressHandler(store storage.Store) *AddressHandler {
	return &AddressHandler{store: store}
}

func (h *AddressHandler) Create(c *fiber.Ctx) error {
	userID := session.UserID(middleware.GetSession(c))
	if userID == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "not authenticated")
	}

	var req models.AddressCreate
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.StreetName == "" || req.City == "" || req.District == "" {
		return apperr.Validationf("street name, city and district are required")
	}
	if len(req.Pincode) != 6 {
		return apperr.Validationf("pincode must be 6 digits")
	}

	addr, err := h.store.CreateAddress(&models.Address{
		UserID:     userID,
		UserName:   req.UserName,
		StreetName: req.StreetName,
		City:       req.City,
		District:   req.District,
		Pincode:    req.Pincode,
		Landmark:   req.Landmark,
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":    "Address added successfully",
		"address_id": addr.AddressID,
	})
}

func (h *AddressHandler) List(c *fiber.Ctx) error {
	userID := session.UserID(middleware.GetSession(c))
	if userID == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "not authenticated")
	}

	addrs, err := h.store.GetAddresses(userID)
	if err != nil {
		return err
	}
	return c.JSON(addrs)
}

func (h *AddressHandler) Delete(c *fiber.Ctx) error {
	userID := session.UserID(middleware.GetSession(c))
	if userID == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "not authenticated")
	}

	if err := h.store.DeleteAddress(c.Params("id"), userID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Address deleted successfully"})
}
