package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Premkumar95/UPPTN/internal/models"
)

func TestSeed(t *testing.T) {
	store := NewMemoryStore()

	providers, services, err := Seed(store)
	require.NoError(t, err)
	assert.Greater(t, providers, 0)
	assert.GreaterOrEqual(t, services, providers)

	t.Run("Every District And Category Is Covered", func(t *testing.T) {
		for _, district := range models.Districts {
			results, err := store.SearchServices(&models.ServiceFilter{District: district})
			require.NoError(t, err)
			assert.NotEmptyf(t, results, "district %s has no listings", district)
		}
		for _, category := range models.Categories {
			results, err := store.SearchServices(&models.ServiceFilter{Category: category})
			require.NoError(t, err)
			assert.NotEmptyf(t, results, "category %s has no listings", category)
		}
	})

	t.Run("Listings Are Well Formed", func(t *testing.T) {
		all, err := store.SearchServices(&models.ServiceFilter{})
		require.NoError(t, err)
		require.Len(t, all, services)

		for _, svc := range all {
			assert.True(t, svc.Seeded)
			assert.NotEmpty(t, svc.ServiceID)
			assert.NotEmpty(t, svc.ProviderID)
			assert.Greater(t, svc.BasePrice, 0.0)
			assert.Contains(t, []string{models.UnitHour, models.UnitDay}, svc.Unit)
			assert.GreaterOrEqual(t, svc.DiscountPct, 0.0)
			assert.LessOrEqual(t, svc.DiscountPct, 100.0)
		}
	})

	t.Run("Demo Providers Are Verified", func(t *testing.T) {
		all, err := store.SearchServices(&models.ServiceFilter{})
		require.NoError(t, err)
		require.NotEmpty(t, all)

		provider, err := store.GetUserByID(all[0].ProviderID)
		require.NoError(t, err)
		assert.True(t, provider.Verified)
		assert.Equal(t, models.RoleProvider, provider.Role)
	})
}
