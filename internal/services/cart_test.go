package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Premkumar95/UPPTN/internal/apperr"
	"github.com/Premkumar95/UPPTN/internal/models"
	"github.com/Premkumar95/UPPTN/internal/storage"
)

func TestCartAdd(t *testing.T) {
	store := storage.NewMemoryStore()
	cart := NewCartService(store)

	provider, providerSess := newVerifiedUser(t, store, "prov@example.com", "+911111111111", models.RoleProvider)
	_, userSess := newVerifiedUser(t, store, "cust@example.com", "+912222222222", models.RoleUser)

	svc := newListing(t, store, provider.UserID, 1000, 10)

	t.Run("Quote Is Frozen At Add Time", func(t *testing.T) {
		entry, err := cart.Add(userSess, &models.CartAdd{ServiceID: svc.ServiceID, DurationUnits: 3})
		require.NoError(t, err)
		assert.Equal(t, 900.0, entry.UnitPrice)
		assert.Equal(t, 300.0, entry.DiscountAmount)
		assert.Equal(t, 2700.0, entry.TotalAmount)

		// A later price edit must not reach the entry.
		svc.BasePrice = 5000
		require.NoError(t, store.UpdateService(svc))

		entries, err := cart.List(userSess)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, 2700.0, entries[0].TotalAmount)
	})

	t.Run("Provider Session Cannot Shop", func(t *testing.T) {
		_, err := cart.Add(providerSess, &models.CartAdd{ServiceID: svc.ServiceID, DurationUnits: 1})
		require.Error(t, err)
		assert.True(t, apperr.IsAuthorization(err))
	})

	t.Run("Zero Duration Rejected", func(t *testing.T) {
		_, err := cart.Add(userSess, &models.CartAdd{ServiceID: svc.ServiceID, DurationUnits: 0})
		require.Error(t, err)
		assert.True(t, apperr.IsValidation(err))
	})

	t.Run("Unknown Service", func(t *testing.T) {
		_, err := cart.Add(userSess, &models.CartAdd{ServiceID: "nope", DurationUnits: 1})
		require.Error(t, err)
		assert.True(t, apperr.IsNotFound(err))
	})
}

func TestCartRemove(t *testing.T) {
	store := storage.NewMemoryStore()
	cart := NewCartService(store)

	provider, _ := newVerifiedUser(t, store, "prov@example.com", "+911111111111", models.RoleProvider)
	_, userSess := newVerifiedUser(t, store, "cust@example.com", "+912222222222", models.RoleUser)
	_, otherSess := newVerifiedUser(t, store, "other@example.com", "+913333333333", models.RoleUser)

	svc := newListing(t, store, provider.UserID, 500, 0)
	entry, err := cart.Add(userSess, &models.CartAdd{ServiceID: svc.ServiceID, DurationUnits: 2})
	require.NoError(t, err)

	t.Run("Cannot Remove Another User's Entry", func(t *testing.T) {
		err := cart.Remove(otherSess, entry.CartID)
		require.Error(t, err)
		assert.True(t, apperr.IsNotFound(err))
	})

	t.Run("Remove Then Remove Again", func(t *testing.T) {
		require.NoError(t, cart.Remove(userSess, entry.CartID))

		err := cart.Remove(userSess, entry.CartID)
		require.Error(t, err)
		assert.True(t, apperr.IsNotFound(err))
	})
}

func TestCheckout(t *testing.T) {
	t.Run("Entries Become Pending Bookings And Cart Empties", func(t *testing.T) {
		store := storage.NewMemoryStore()
		cart := NewCartService(store)

		provider, _ := newVerifiedUser(t, store, "prov@example.com", "+911111111111", models.RoleProvider)
		user, userSess := newVerifiedUser(t, store, "cust@example.com", "+912222222222", models.RoleUser)

		first := newListing(t, store, provider.UserID, 1000, 10)
		second := newListing(t, store, provider.UserID, 800, 0)

		_, err := cart.Add(userSess, &models.CartAdd{ServiceID: first.ServiceID, DurationUnits: 3})
		require.NoError(t, err)
		_, err = cart.Add(userSess, &models.CartAdd{ServiceID: second.ServiceID, DurationUnits: 2})
		require.NoError(t, err)

		bookings, err := cart.Checkout(userSess, &models.CheckoutRequest{
			PaymentMethod: models.PaymentMethodUPI,
			Notes:         "morning slot",
		})
		require.NoError(t, err)
		require.Len(t, bookings, 2)

		for _, b := range bookings {
			assert.Equal(t, models.BookingStatusPending, b.Status)
			assert.Equal(t, user.UserID, b.UserID)
			assert.Equal(t, provider.UserID, b.ProviderID)
			assert.Equal(t, models.PaymentMethodUPI, b.PaymentMethod)
			assert.NotEmpty(t, b.BookingID)
		}
		assert.Equal(t, 2700.0, bookings[0].TotalAmount)
		assert.Equal(t, first.Name, bookings[0].ServiceName)
		assert.Equal(t, 1600.0, bookings[1].TotalAmount)

		entries, err := cart.List(userSess)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("Deleted Service Aborts The Whole Checkout", func(t *testing.T) {
		store := storage.NewMemoryStore()
		cart := NewCartService(store)

		provider, _ := newVerifiedUser(t, store, "prov@example.com", "+911111111111", models.RoleProvider)
		_, userSess := newVerifiedUser(t, store, "cust@example.com", "+912222222222", models.RoleUser)

		kept := newListing(t, store, provider.UserID, 1000, 0)
		doomed := newListing(t, store, provider.UserID, 800, 0)

		_, err := cart.Add(userSess, &models.CartAdd{ServiceID: kept.ServiceID, DurationUnits: 1})
		require.NoError(t, err)
		_, err = cart.Add(userSess, &models.CartAdd{ServiceID: doomed.ServiceID, DurationUnits: 1})
		require.NoError(t, err)

		require.NoError(t, store.DeleteService(doomed.ServiceID, provider.UserID))

		_, err = cart.Checkout(userSess, &models.CheckoutRequest{PaymentMethod: models.PaymentMethodCash})
		require.Error(t, err)
		assert.True(t, apperr.IsConflict(err))

		// Nothing committed, nothing lost.
		entries, err := cart.List(userSess)
		require.NoError(t, err)
		assert.Len(t, entries, 2)

		bookings, err := store.GetBookingsByProvider(provider.UserID)
		require.NoError(t, err)
		assert.Empty(t, bookings)
	})

	t.Run("Empty Cart", func(t *testing.T) {
		store := storage.NewMemoryStore()
		cart := NewCartService(store)
		_, userSess := newVerifiedUser(t, store, "cust@example.com", "+912222222222", models.RoleUser)

		_, err := cart.Checkout(userSess, &models.CheckoutRequest{PaymentMethod: models.PaymentMethodUPI})
		require.Error(t, err)
		assert.True(t, apperr.IsValidation(err))
	})

	t.Run("Unknown Payment Method", func(t *testing.T) {
		store := storage.NewMemoryStore()
		cart := NewCartService(store)
		_, userSess := newVerifiedUser(t, store, "cust@example.com", "+912222222222", models.RoleUser)

		_, err := cart.Checkout(userSess, &models.CheckoutRequest{PaymentMethod: "barter"})
		require.Error(t, err)
		assert.True(t, apperr.IsValidation(err))
	})
}
