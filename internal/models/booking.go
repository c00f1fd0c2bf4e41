package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Booking is a committed service order created from a cart entry at
// checkout. Its amounts carry the quote frozen when the entry was added.
type Booking struct {
	gorm.Model

	BookingID  string `json:"booking_id" gorm:"uniqueIndex"`
	UserID     string `json:"user_id" gorm:"index"`
	ProviderID string `json:"provider_id" gorm:"index"`
	ServiceID  string `json:"service_id"`

	// Snapshot for tracking lookups that must not join back to the listing.
	ServiceName   string `json:"service_name"`
	DurationUnits int    `json:"duration_units"`

	UnitPrice      float64 `json:"unit_price"`
	DiscountAmount float64 `json:"discount_amount"`
	TotalAmount    float64 `json:"total_amount"`

	PaymentMethod string `json:"payment_method"` // "upi", "cash", "advance_upi"
	Status        string `json:"status"`         // "pending", "in_progress", "completed"
	Notes         string `json:"notes,omitempty"`
}

// Booking statuses, in lifecycle order.
const (
	BookingStatusPending    = "pending"
	BookingStatusInProgress = "in_progress"
	BookingStatusCompleted  = "completed"
)

// Payment methods. Recorded as a tag, never processed.
const (
	PaymentMethodUPI        = "upi"
	PaymentMethodCash       = "cash"
	PaymentMethodAdvanceUPI = "advance_upi"
)

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.BookingID == "" {
		b.BookingID = uuid.NewString()
	}
	return nil
}

// NextBookingStatus returns the status that immediately follows current.
// The second return is false when current is terminal or unknown.
func NextBookingStatus(current string) (string, bool) {
	switch current {
	case BookingStatusPending:
		return BookingStatusInProgress, true
	case BookingStatusInProgress:
		return BookingStatusCompleted, true
	}
	return "", false
}

// ValidBookingStatus reports whether s names a lifecycle status.
func ValidBookingStatus(s string) bool {
	switch s {
	case BookingStatusPending, BookingStatusInProgress, BookingStatusCompleted:
		return true
	}
	return false
}

// ValidPaymentMethod reports whether m is an accepted payment tag.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentMethodUPI, PaymentMethodCash, PaymentMethodAdvanceUPI:
		return true
	}
	return false
}

// BookingTracking is the public lookup projection. It deliberately omits
// user and provider contact details.
type BookingTracking struct {
	BookingID     string  `json:"booking_id"`
	ServiceName   string  `json:"service_name"`
	Status        string  `json:"status"`
	TotalAmount   float64 `json:"total_amount"`
	PaymentMethod string  `json:"payment_method"`
	Notes         string  `json:"notes,omitempty"`
}

// Tracking builds the public projection of b.
func (b *Booking) Tracking() *BookingTracking {
	return &BookingTracking{
		BookingID:     b.BookingID,
		ServiceName:   b.ServiceName,
		Status:        b.Status,
		TotalAmount:   b.TotalAmount,
		PaymentMethod: b.PaymentMethod,
		Notes:         b.Notes,
	}
}

// StatusUpdate is the provider-facing advance payload.
type StatusUpdate struct {
	Status string `json:"status"`
}
