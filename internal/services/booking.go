package services

import (
	"github.com/Premkumar95/UPPTN/internal/apperr"
	"github.com/Premkumar95/UPPTN/internal/models"
	"github.com/Premkumar95/UPPTN/internal/session"
	"github.com/Premkumar95/UPPTN/internal/storage"
)

// BookingService owns the booking status state machine and read access for
// customers, providers and anonymous tracking.
type BookingService struct {
	store storage.Store
}

func NewBookingService(store storage.Store) *BookingService {
	return &BookingService{store: store}
}

// List returns the bookings visible to the session: a user sees their own
// orders, a provider the orders placed against their listings.
func (s *BookingService) List(sess session.Session) ([]*models.Booking, error) {
	switch v := sess.(type) {
	case session.UserSession:
		return s.store.GetBookingsByUser(v.UserID)
	case session.ProviderSession:
		return s.store.GetBookingsByProvider(v.UserID)
	}
	return nil, apperr.Authorizationf("login required to list bookings")
}

// Track is the public lookup: a read-only projection without contact
// details, no auth required.
func (s *BookingService) Track(bookingID string) (*models.BookingTracking, error) {
	booking, err := s.store.GetBooking(bookingID)
	if err != nil {
		return nil, err
	}
	return booking.Tracking(), nil
}

// Get returns the full record for the booking's user or provider, and the
// tracking projection for anyone else.
func (s *BookingService) Get(sess session.Session, bookingID string) (interface{}, error) {
	booking, err := s.store.GetBooking(bookingID)
	if err != nil {
		return nil, err
	}
	if id := session.UserID(sess); id == booking.UserID || id == booking.ProviderID {
		return booking, nil
	}
	return booking.Tracking(), nil
}

// Advance moves a booking one step forward: pending to in_progress to
// completed. Only the owning provider may advance; no skipping, no
// regression, completed is terminal. The store applies the transition as a
// compare-and-set so concurrent advances cannot both succeed.
func (s *BookingService) Advance(sess session.Session, bookingID, target string) (*models.Booking, error) {
	provider, err := session.RequireProvider(sess)
	if err != nil {
		return nil, err
	}

	booking, err := s.store.GetBooking(bookingID)
	if err != nil {
		return nil, err
	}
	if booking.ProviderID != provider.UserID {
		return nil, apperr.Authorizationf("only the booking's provider can update its status")
	}

	if !models.ValidBookingStatus(target) {
		return nil, apperr.Validationf("invalid status %q", target)
	}

	next, ok := models.NextBookingStatus(booking.Status)
	if !ok {
		return nil, apperr.Conflictf("booking is already completed")
	}
	if target != next {
		return nil, apperr.Conflictf("booking can only move from %s to %s", booking.Status, next)
	}

	if err := s.store.AdvanceBookingStatus(bookingID, booking.Status, target); err != nil {
		return nil, err
	}
	return s.store.GetBooking(bookingID)
}
