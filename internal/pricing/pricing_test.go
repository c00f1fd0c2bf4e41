package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Premkumar95/UPPTN/internal/apperr"
	"github.com/Premkumar95/UPPTN/internal/models"
)

func TestForService(t *testing.T) {
	t.Run("Discounted Multi Unit", func(t *testing.T) {
		svc := &models.Service{BasePrice: 1000, DiscountPct: 10, Unit: models.UnitHour}

		quote, err := ForService(svc, 3)
		require.NoError(t, err)
		assert.Equal(t, 900.0, quote.UnitPrice)
		assert.Equal(t, 300.0, quote.DiscountAmount)
		assert.Equal(t, 2700.0, quote.TotalAmount)
	})

	t.Run("No Discount", func(t *testing.T) {
		svc := &models.Service{BasePrice: 1500, DiscountPct: 0, Unit: models.UnitDay}

		quote, err := ForService(svc, 2)
		require.NoError(t, err)
		assert.Equal(t, 1500.0, quote.UnitPrice)
		assert.Equal(t, 0.0, quote.DiscountAmount)
		assert.Equal(t, 3000.0, quote.TotalAmount)
	})

	t.Run("Rounds To Two Decimals", func(t *testing.T) {
		svc := &models.Service{BasePrice: 999.99, DiscountPct: 7.5, Unit: models.UnitHour}

		quote, err := ForService(svc, 3)
		require.NoError(t, err)
		// 999.99 * 0.925 * 3 = 2774.97225
		assert.Equal(t, 2774.97, quote.TotalAmount)
		assert.Equal(t, 924.99, quote.UnitPrice)
	})

	t.Run("Single Unit Equals Unit Price", func(t *testing.T) {
		svc := &models.Service{BasePrice: 800, DiscountPct: 25, Unit: models.UnitDay}

		quote, err := ForService(svc, 1)
		require.NoError(t, err)
		assert.Equal(t, quote.UnitPrice, quote.TotalAmount)
	})

	t.Run("Invariant Holds Across Durations", func(t *testing.T) {
		svc := &models.Service{BasePrice: 1234.56, DiscountPct: 15, Unit: models.UnitHour}

		for d := 1; d <= 20; d++ {
			quote, err := ForService(svc, d)
			require.NoError(t, err)
			expected := Round2(svc.BasePrice * (1 - svc.DiscountPct/100) * float64(d))
			assert.Equal(t, expected, quote.TotalAmount, "duration %d", d)
		}
	})

	t.Run("Zero Duration Rejected", func(t *testing.T) {
		svc := &models.Service{BasePrice: 1000, Unit: models.UnitHour}

		_, err := ForService(svc, 0)
		require.Error(t, err)
		assert.True(t, apperr.IsValidation(err))
	})

	t.Run("Negative Duration Rejected", func(t *testing.T) {
		svc := &models.Service{BasePrice: 1000, Unit: models.UnitHour}

		_, err := ForService(svc, -3)
		require.Error(t, err)
		assert.True(t, apperr.IsValidation(err))
	})
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 2700.0, Round2(2700.0000001))
	assert.Equal(t, 0.01, Round2(0.005))
	assert.Equal(t, 1.23, Round2(1.2349))
	assert.Equal(t, -1.23, Round2(-1.2349))
}
