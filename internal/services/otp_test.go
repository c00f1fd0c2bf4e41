package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Premkumar95/UPPTN/internal/apperr"
	"github.com/Premkumar95/UPPTN/internal/models"
	"github.com/Premkumar95/UPPTN/internal/storage"
)

func TestOTPIssueAndVerify(t *testing.T) {
	store := storage.NewMemoryStore()
	otp := NewOTPService(store)

	user, _ := newVerifiedUser(t, store, "otp@example.com", "+911234500001", models.RoleUser)

	t.Run("Issued Code Verifies Exactly Once", func(t *testing.T) {
		code, err := otp.Issue(models.OTPPurposePinReset, user.Email)
		require.NoError(t, err)
		require.Len(t, code, 6)

		require.NoError(t, otp.Verify(user.Email, models.OTPPurposePinReset, code))

		// Re-submitting after consumption fails.
		err = otp.Verify(user.Email, models.OTPPurposePinReset, code)
		require.Error(t, err)
		assert.True(t, apperr.IsValidation(err))
	})

	t.Run("Mismatch Leaves Challenge Consumable", func(t *testing.T) {
		code, err := otp.Issue(models.OTPPurposePinReset, user.Email)
		require.NoError(t, err)

		// Wrong guesses are rejected but do not burn the challenge.
		for i := 0; i < 5; i++ {
			err := otp.Verify(user.Email, models.OTPPurposePinReset, "000000")
			require.Error(t, err)
			assert.True(t, apperr.IsValidation(err))
		}

		require.NoError(t, otp.Verify(user.Email, models.OTPPurposePinReset, code))
	})

	t.Run("Reissue Supersedes Prior Challenge", func(t *testing.T) {
		first, err := otp.Issue(models.OTPPurposePinReset, user.Email)
		require.NoError(t, err)
		second, err := otp.Issue(models.OTPPurposePinReset, user.Email)
		require.NoError(t, err)

		if first != second {
			err := otp.Verify(user.Email, models.OTPPurposePinReset, first)
			require.Error(t, err)
		}
		require.NoError(t, otp.Verify(user.Email, models.OTPPurposePinReset, second))
	})

	t.Run("Purposes Are Independent", func(t *testing.T) {
		resetCode, err := otp.Issue(models.OTPPurposePinReset, user.Email)
		require.NoError(t, err)

		err = otp.Verify(user.Email, models.OTPPurposeRegistration, resetCode)
		require.Error(t, err)

		require.NoError(t, otp.Verify(user.Email, models.OTPPurposePinReset, resetCode))
	})

	t.Run("Registration Verify Flips Verified", func(t *testing.T) {
		unverified, err := store.CreateUser(&models.User{
			Name:  "Pending",
			Email: "pending@example.com",
			Phone: "+911234500002",
			Role:  models.RoleUser,
		})
		require.NoError(t, err)
		require.False(t, unverified.Verified)

		code, err := otp.Issue(models.OTPPurposeRegistration, unverified.Email, unverified.Phone)
		require.NoError(t, err)

		require.NoError(t, otp.Verify(unverified.Phone, models.OTPPurposeRegistration, code))

		got, err := store.GetUserByID(unverified.UserID)
		require.NoError(t, err)
		assert.True(t, got.Verified)
	})

	t.Run("No Challenge For Contact", func(t *testing.T) {
		err := otp.Verify("nobody@example.com", models.OTPPurposePinReset, "123456")
		require.Error(t, err)
		assert.True(t, apperr.IsValidation(err))
	})
}
