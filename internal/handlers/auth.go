package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Premkumar95/UPPTN/internal/middleware"
	"github.com/Premkumar95/UPPTN/internal/models"
	"github.com/Premkumar95/UPPTN/internal/services"
	"github.com/Premkumar95/UPPTN/internal/session"
)

// AuthHandler handles registration, OTP verification, login and PIN reset.
type AuthHandler struct {
	auth *services.AuthService
}

func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register creates an unverified identity and surfaces the registration OTP.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req models.UserRegistration
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	user, code, err := h.auth.Register(&req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "OTP sent to registered email address and mobile number",
		"user_id":  user.UserID,
		"mock_otp": code,
	})
}

// VerifyOTP consumes the registration challenge and marks the identity
// verified.
func (h *AuthHandler) VerifyOTP(c *fiber.Ctx) error {
	var req models.OTPVerify
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.auth.VerifyRegistration(req.Contact, req.OTP); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message":  "OTP verified successfully",
		"verified": true,
	})
}

// Login authenticates by password or PIN and returns the bearer token.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req models.UserLogin
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	token, user, err := h.auth.Login(&req)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"token":   token,
		"user":    user.Public(),
	})
}

// RequestChangePin issues a pin_reset OTP and surfaces the code.
func (h *AuthHandler) RequestChangePin(c *fiber.Ctx) error {
	var req models.OTPRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	code, err := h.auth.RequestPinChange(req.Contact)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message":  "OTP has been sent to registered mail address/mobile number",
		"mock_otp": code,
	})
}

// ChangePin completes the PIN reset.
func (h *AuthHandler) ChangePin(c *fiber.Ctx) error {
	var req models.ChangePinRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.auth.ChangePin(&req); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "PIN changed successfully"})
}

// Me returns the authenticated identity without credential hashes.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	sess := middleware.GetSession(c)
	userID := session.UserID(sess)
	if userID == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "not authenticated")
	}

	user, err := h.auth.Me(userID)
	if err != nil {
		return err
	}
	return c.JSON(user.Public())
}
