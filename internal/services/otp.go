package services

import (
	"github.com/Premkumar95/UPPTN/internal/apperr"
	"github.com/Premkumar95/UPPTN/internal/models"
	"github.com/Premkumar95/UPPTN/internal/storage"
	"github.com/Premkumar95/UPPTN/internal/utils"
)

// OTPService issues and checks one-time passcodes. Codes are surfaced to the
// caller for display instead of being dispatched externally; there is no
// delivery channel in this system.
type OTPService struct {
	store storage.Store
}

func NewOTPService(store storage.Store) *OTPService {
	return &OTPService{store: store}
}

// Issue generates one 6-digit code and registers a challenge for each given
// contact, superseding any prior unconsumed challenge per (contact, purpose).
func (s *OTPService) Issue(purpose string, contacts ...string) (string, error) {
	code, err := utils.GenerateSecureOTP()
	if err != nil {
		return "", err
	}

	for _, contact := range contacts {
		if contact == "" {
			continue
		}
		_, err := s.store.CreateChallenge(&models.OTPChallenge{
			Contact: contact,
			Code:    code,
			Purpose: purpose,
		})
		if err != nil {
			return "", err
		}
	}
	return code, nil
}

// Verify checks submitted against the active challenge for the pair. On a
// match the challenge is consumed; for registration the identity bound to
// the contact is marked verified. On a mismatch the challenge stays
// consumable.
func (s *OTPService) Verify(contact, purpose, submitted string) error {
	ch, err := s.store.GetActiveChallenge(contact, purpose)
	if err != nil {
		if apperr.IsNotFound(err) {
			return apperr.Validationf("OTP not found, request a new code")
		}
		return err
	}

	if ch.Code != submitted {
		return apperr.Validationf("invalid OTP")
	}

	if err := s.store.ConsumeChallenge(ch.ID); err != nil {
		return err
	}

	if purpose == models.OTPPurposeRegistration {
		user, err := s.store.GetUserByContact(contact)
		if err != nil {
			return err
		}
		if err := s.store.MarkUserVerified(user.UserID); err != nil {
			return err
		}
	}
	return nil
}
