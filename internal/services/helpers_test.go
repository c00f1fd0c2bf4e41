package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Premkumar95/UPPTN/internal/models"
	"github.com/Premkumar95/UPPTN/internal/session"
	"github.com/Premkumar95/UPPTN/internal/storage"
	"github.com/Premkumar95/UPPTN/internal/utils"
)

// credential hash shared by all fixtures; bcrypt once per test binary.
var testHash string

func fixtureHash(t *testing.T) string {
	t.Helper()
	if testHash == "" {
		h, err := utils.HashCredential("Secret@123")
		require.NoError(t, err)
		testHash = h
	}
	return testHash
}

func newVerifiedUser(t *testing.T, store storage.Store, email, phone, role string) (*models.User, session.Session) {
	t.Helper()
	user, err := store.CreateUser(&models.User{
		Name:         "Fixture " + email,
		Email:        email,
		Phone:        phone,
		PasswordHash: fixtureHash(t),
		PINHash:      fixtureHash(t),
		Role:         role,
		Verified:     true,
	})
	require.NoError(t, err)
	return user, session.FromUser(user, "test-token")
}

func newListing(t *testing.T, store storage.Store, providerID string, price, discount float64) *models.Service {
	t.Helper()
	svc, err := store.CreateService(&models.Service{
		ProviderID:  providerID,
		Name:        "Earth Movers - Excavator Service",
		Category:    "Earth Movers",
		District:    "Chennai",
		Description: "Excavation and land leveling",
		BasePrice:   price,
		Unit:        models.UnitHour,
		DiscountPct: discount,
		Rating:      4.5,
	})
	require.NoError(t, err)
	return svc
}
