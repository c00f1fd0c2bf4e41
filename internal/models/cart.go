package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CartEntry is a priced, not-yet-committed service selection. The quote is
// frozen at add-time: later provider price edits do not touch it.
type CartEntry struct {
	gorm.Model

	CartID        string `json:"cart_id" gorm:"uniqueIndex"`
	UserID        string `json:"user_id" gorm:"index"`
	ServiceID     string `json:"service_id"`
	DurationUnits int    `json:"duration_units"`

	// Frozen quote
	UnitPrice      float64 `json:"unit_price"`
	DiscountAmount float64 `json:"discount_amount"`
	TotalAmount    float64 `json:"total_amount"`
}

func (e *CartEntry) BeforeCreate(tx *gorm.DB) error {
	if e.CartID == "" {
		e.CartID = uuid.NewString()
	}
	return nil
}

// CartAdd is the add-to-cart payload.
type CartAdd struct {
	ServiceID     string `json:"service_id"`
	DurationUnits int    `json:"duration_units"`
}

// CheckoutRequest converts every current cart entry into a booking.
type CheckoutRequest struct {
	PaymentMethod string `json:"payment_method"`
	Notes         string `json:"notes"`
}
