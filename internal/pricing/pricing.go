// Package pricing is the single source of truth for money math. The detail
// view estimate, the cart entry, and the booking record all carry amounts
// produced here and never re-derive them.
package pricing

import (
	"math"

	"github.com/Premkumar95/UPPTN/internal/apperr"
	"github.com/Premkumar95/UPPTN/internal/models"
)

// Quote is the deterministic price breakdown for a service and duration.
type Quote struct {
	UnitPrice      float64 `json:"unit_price"`
	DiscountAmount float64 `json:"discount_amount"`
	TotalAmount    float64 `json:"total_amount"`
}

// ForService computes the quote for durationUnits billing units of svc.
// durationUnits must be a positive integer.
func ForService(svc *models.Service, durationUnits int) (*Quote, error) {
	if durationUnits < 1 {
		return nil, apperr.Validationf("duration must be at least 1 %s", svc.Unit)
	}

	units := float64(durationUnits)
	unitPrice := svc.BasePrice * (1 - svc.DiscountPct/100)

	return &Quote{
		UnitPrice:      Round2(unitPrice),
		DiscountAmount: Round2(svc.BasePrice*svc.DiscountPct/100*units),
		TotalAmount:    Round2(unitPrice * units),
	}, nil
}

// Round2 rounds to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
