package services

import (
	"strings"

	"github.com/Premkumar95/UPPTN/internal/apperr"
	"github.com/Premkumar95/UPPTN/internal/models"
	"github.com/Premkumar95/UPPTN/internal/storage"
	"github.com/Premkumar95/UPPTN/internal/utils"
)

// AuthService owns registration, login and the PIN-reset flow.
type AuthService struct {
	store storage.Store
	otp   *OTPService
}

func NewAuthService(store storage.Store, otp *OTPService) *AuthService {
	return &AuthService{store: store, otp: otp}
}

// Register creates an unverified identity and issues the registration OTP
// against both contact channels. The code is returned for display.
func (s *AuthService) Register(req *models.UserRegistration) (*models.User, string, error) {
	if req.Name == "" || req.Email == "" || req.Phone == "" {
		return nil, "", apperr.Validationf("name, email and phone are required")
	}
	if req.Role != models.RoleUser && req.Role != models.RoleProvider {
		return nil, "", apperr.Validationf("role must be user or provider")
	}
	if violations := utils.ValidatePasswordStrength(req.Password); len(violations) > 0 {
		return nil, "", apperr.Validationf("%s", strings.Join(violations, "; "))
	}
	if !utils.ValidatePinFormat(req.PIN) {
		return nil, "", apperr.Validationf("PIN must be exactly 4 digits")
	}
	if req.PIN != req.PINConfirm {
		return nil, "", apperr.Validationf("PIN does not match")
	}

	passwordHash, err := utils.HashCredential(req.Password)
	if err != nil {
		return nil, "", err
	}
	pinHash, err := utils.HashCredential(req.PIN)
	if err != nil {
		return nil, "", err
	}

	user, err := s.store.CreateUser(&models.User{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: passwordHash,
		PINHash:      pinHash,
		Role:         req.Role,
		Verified:     false,
	})
	if err != nil {
		return nil, "", err
	}

	code, err := s.otp.Issue(models.OTPPurposeRegistration, user.Email, user.Phone)
	if err != nil {
		return nil, "", err
	}
	return user, code, nil
}

// VerifyRegistration consumes the registration OTP and marks the identity
// verified.
func (s *AuthService) VerifyRegistration(contact, code string) error {
	return s.otp.Verify(contact, models.OTPPurposeRegistration, code)
}

// Login authenticates by password or PIN. Both paths require an already
// verified identity and return an opaque bearer token.
func (s *AuthService) Login(req *models.UserLogin) (string, *models.User, error) {
	user, err := s.store.GetUserByContact(req.EmailOrPhone)
	if err != nil {
		if apperr.IsNotFound(err) {
			return "", nil, apperr.Validationf("user not found")
		}
		return "", nil, err
	}

	if !user.Verified {
		return "", nil, apperr.Validationf("please verify your account first")
	}

	switch req.LoginType {
	case "password":
		if req.Password == "" {
			return "", nil, apperr.Validationf("password required")
		}
		if !utils.CheckCredential(req.Password, user.PasswordHash) {
			return "", nil, apperr.Authenticationf("invalid credentials")
		}
	case "pin":
		if req.PIN == "" {
			return "", nil, apperr.Validationf("PIN required")
		}
		if !utils.CheckCredential(req.PIN, user.PINHash) {
			return "", nil, apperr.Authenticationf("invalid PIN")
		}
	default:
		return "", nil, apperr.Validationf("login_type must be password or pin")
	}

	token, err := utils.CreateToken(user.UserID, user.Email, user.Role)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// RequestPinChange issues a pin_reset OTP for an existing identity.
func (s *AuthService) RequestPinChange(contact string) (string, error) {
	if _, err := s.store.GetUserByContact(contact); err != nil {
		if apperr.IsNotFound(err) {
			return "", apperr.Validationf("user not found")
		}
		return "", err
	}
	return s.otp.Issue(models.OTPPurposePinReset, contact)
}

// ChangePin completes the reset: the OTP must verify and the confirmation
// must match, otherwise nothing is mutated. Pin checks run before the OTP is
// consumed so a mismatched confirmation does not burn the challenge.
func (s *AuthService) ChangePin(req *models.ChangePinRequest) error {
	if !utils.ValidatePinFormat(req.NewPIN) {
		return apperr.Validationf("PIN must be exactly 4 digits")
	}
	if req.NewPIN != req.ConfirmPIN {
		return apperr.Validationf("PIN does not match")
	}

	user, err := s.store.GetUserByContact(req.EmailOrPhone)
	if err != nil {
		if apperr.IsNotFound(err) {
			return apperr.Validationf("user not found")
		}
		return err
	}

	if err := s.otp.Verify(req.EmailOrPhone, models.OTPPurposePinReset, req.OTP); err != nil {
		return err
	}

	pinHash, err := utils.HashCredential(req.NewPIN)
	if err != nil {
		return err
	}
	return s.store.UpdateUserPIN(user.UserID, pinHash)
}

// Me returns the identity behind an authenticated session.
func (s *AuthService) Me(userID string) (*models.User, error) {
	return s.store.GetUserByID(userID)
}
