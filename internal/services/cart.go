package services

import (
	"github.com/Premkumar95/UPPTN/internal/apperr"
	"github.com/Premkumar95/UPPTN/internal/models"
	"github.com/Premkumar95/UPPTN/internal/pricing"
	"github.com/Premkumar95/UPPTN/internal/session"
	"github.com/Premkumar95/UPPTN/internal/storage"
)

// CartService holds pending selections for a user identity. Quotes are
// frozen at add-time; later provider price edits never alter an entry.
type CartService struct {
	store storage.Store
}

func NewCartService(store storage.Store) *CartService {
	return &CartService{store: store}
}

// Add prices the selection through the pricing engine and stores the frozen
// quote on the entry.
func (s *CartService) Add(sess session.Session, req *models.CartAdd) (*models.CartEntry, error) {
	user, err := session.RequireUser(sess)
	if err != nil {
		return nil, err
	}

	svc, err := s.store.GetService(req.ServiceID)
	if err != nil {
		return nil, err
	}

	quote, err := pricing.ForService(svc, req.DurationUnits)
	if err != nil {
		return nil, err
	}

	return s.store.CreateCartEntry(&models.CartEntry{
		UserID:         user.UserID,
		ServiceID:      svc.ServiceID,
		DurationUnits:  req.DurationUnits,
		UnitPrice:      quote.UnitPrice,
		DiscountAmount: quote.DiscountAmount,
		TotalAmount:    quote.TotalAmount,
	})
}

// List returns the current entries for the session's user.
func (s *CartService) List(sess session.Session) ([]*models.CartEntry, error) {
	user, err := session.RequireUser(sess)
	if err != nil {
		return nil, err
	}
	return s.store.GetCartEntries(user.UserID)
}

// Remove deletes one entry; a missing id is a NotFound, not a no-op.
func (s *CartService) Remove(sess session.Session, cartID string) error {
	user, err := session.RequireUser(sess)
	if err != nil {
		return err
	}
	return s.store.DeleteCartEntry(cartID, user.UserID)
}

// Checkout converts every entry into a pending booking carrying its frozen
// quote, then empties the cart. All-or-nothing: if any entry's backing
// service was deleted meanwhile the cart is left unchanged.
func (s *CartService) Checkout(sess session.Session, req *models.CheckoutRequest) ([]*models.Booking, error) {
	user, err := session.RequireUser(sess)
	if err != nil {
		return nil, err
	}
	if !models.ValidPaymentMethod(req.PaymentMethod) {
		return nil, apperr.Validationf("payment method must be upi, cash or advance_upi")
	}
	return s.store.CheckoutCart(user.UserID, req.PaymentMethod, req.Notes)
}
