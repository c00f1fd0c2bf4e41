package storage

import (
	"github.com/Premkumar95/UPPTN/internal/models"
)

// Store defines the interface for storage operations
type Store interface {
	// User operations
	CreateUser(user *models.User) (*models.User, error)
	GetUserByID(userID string) (*models.User, error)
	GetUserByContact(emailOrPhone string) (*models.User, error)
	MarkUserVerified(userID string) error
	UpdateUserPIN(userID, pinHash string) error

	// OTP challenge operations. CreateChallenge supersedes any prior
	// unconsumed challenge for the same (contact, purpose) pair.
	CreateChallenge(ch *models.OTPChallenge) (*models.OTPChallenge, error)
	GetActiveChallenge(contact, purpose string) (*models.OTPChallenge, error)
	ConsumeChallenge(id uint) error

	// Service listing operations
	CreateService(svc *models.Service) (*models.Service, error)
	GetService(serviceID string) (*models.Service, error)
	SearchServices(filter *models.ServiceFilter) ([]*models.Service, error)
	GetServicesByProvider(providerID string) ([]*models.Service, error)
	UpdateService(svc *models.Service) error
	DeleteService(serviceID, providerID string) error

	// Cart operations. CheckoutCart atomically converts every entry of the
	// user into a pending booking and empties the cart; if any entry's
	// backing service is gone the whole call fails and the cart is
	// unchanged.
	CreateCartEntry(entry *models.CartEntry) (*models.CartEntry, error)
	GetCartEntries(userID string) ([]*models.CartEntry, error)
	DeleteCartEntry(cartID, userID string) error
	CheckoutCart(userID, paymentMethod, notes string) ([]*models.Booking, error)

	// Booking operations. AdvanceBookingStatus is a compare-and-set on the
	// current status; it fails when the booking is no longer in fromStatus.
	GetBooking(bookingID string) (*models.Booking, error)
	GetBookingsByUser(userID string) ([]*models.Booking, error)
	GetBookingsByProvider(providerID string) ([]*models.Booking, error)
	AdvanceBookingStatus(bookingID, fromStatus, toStatus string) error

	// Address operations
	CreateAddress(addr *models.Address) (*models.Address, error)
	GetAddresses(userID string) ([]*models.Address, error)
	DeleteAddress(addressID, userID string) error
}
