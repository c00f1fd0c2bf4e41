package storage

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/Premkumar95/UPPTN/internal/apperr"
	"github.com/Premkumar95/UPPTN/internal/models"
)

// DatabaseStore is the PostgreSQL-backed store.
type DatabaseStore struct {
	db *gorm.DB
}

// NewDatabaseStore creates a store backed by the given GORM connection.
func NewDatabaseStore(db *gorm.DB) *DatabaseStore {
	return &DatabaseStore{db: db}
}

// User operations

func (s *DatabaseStore) CreateUser(user *models.User) (*models.User, error) {
	var count int64
	s.db.Model(&models.User{}).
		Where("email = ? OR phone = ?", strings.ToLower(strings.TrimSpace(user.Email)), strings.TrimSpace(user.Phone)).
		Count(&count)
	if count > 0 {
		return nil, apperr.Validationf("user already exists")
	}

	if err := s.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (s *DatabaseStore) GetUserByID(userID string) (*models.User, error) {
	var user models.User
	err := s.db.Where("user_id = ?", userID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFoundf("user not found")
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *DatabaseStore) GetUserByContact(emailOrPhone string) (*models.User, error) {
	c := strings.TrimSpace(emailOrPhone)
	var user models.User
	err := s.db.Where("email = ? OR phone = ?", strings.ToLower(c), c).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFoundf("user not found")
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *DatabaseStore) MarkUserVerified(userID string) error {
	res := s.db.Model(&models.User{}).Where("user_id = ?", userID).Update("verified", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFoundf("user not found")
	}
	return nil
}

func (s *DatabaseStore) UpdateUserPIN(userID, pinHash string) error {
	res := s.db.Model(&models.User{}).Where("user_id = ?", userID).Update("pin_hash", pinHash)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFoundf("user not found")
	}
	return nil
}

// OTP challenge operations

func (s *DatabaseStore) CreateChallenge(ch *models.OTPChallenge) (*models.OTPChallenge, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		// Supersede any prior unconsumed challenge for the pair.
		if err := tx.Model(&models.OTPChallenge{}).
			Where("contact = ? AND purpose = ? AND consumed = false", ch.Contact, ch.Purpose).
			Update("consumed", true).Error; err != nil {
			return err
		}
		return tx.Create(ch).Error
	})
	if err != nil {
		return nil, err
	}
	return ch, nil
}

func (s *DatabaseStore) GetActiveChallenge(contact, purpose string) (*models.OTPChallenge, error) {
	var ch models.OTPChallenge
	err := s.db.Where("contact = ? AND purpose = ? AND consumed = false", contact, purpose).
		Order("id DESC").First(&ch).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFoundf("no active challenge for this contact")
	}
	if err != nil {
		return nil, err
	}
	return &ch, nil
}

func (s *DatabaseStore) ConsumeChallenge(id uint) error {
	res := s.db.Model(&models.OTPChallenge{}).Where("id = ?", id).Update("consumed", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFoundf("challenge not found")
	}
	return nil
}

// Service listing operations

func (s *DatabaseStore) CreateService(svc *models.Service) (*models.Service, error) {
	if err := s.db.Create(svc).Error; err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *DatabaseStore) GetService(serviceID string) (*models.Service, error) {
	var svc models.Service
	err := s.db.Where("service_id = ?", serviceID).First(&svc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFoundf("service not found")
	}
	if err != nil {
		return nil, err
	}
	return &svc, nil
}

func (s *DatabaseStore) SearchServices(filter *models.ServiceFilter) ([]*models.Service, error) {
	q := s.db.Model(&models.Service{})
	if filter.District != "" {
		q = q.Where("district = ?", filter.District)
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.MinPrice > 0 {
		q = q.Where("base_price >= ?", filter.MinPrice)
	}
	if filter.MaxPrice > 0 {
		q = q.Where("base_price <= ?", filter.MaxPrice)
	}
	if filter.Keyword != "" {
		like := "%" + strings.ToLower(filter.Keyword) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(category) LIKE ?", like, like, like)
	}

	var services []*models.Service
	if err := q.Order("id ASC").Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (s *DatabaseStore) GetServicesByProvider(providerID string) ([]*models.Service, error) {
	var services []*models.Service
	err := s.db.Where("provider_id = ?", providerID).Order("id ASC").Find(&services).Error
	if err != nil {
		return nil, err
	}
	return services, nil
}

func (s *DatabaseStore) UpdateService(svc *models.Service) error {
	res := s.db.Model(&models.Service{}).Where("service_id = ?", svc.ServiceID).
		Select("name", "description", "base_price", "discount_pct").
		Updates(svc)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFoundf("service not found")
	}
	return nil
}

func (s *DatabaseStore) DeleteService(serviceID, providerID string) error {
	res := s.db.Where("service_id = ? AND provider_id = ?", serviceID, providerID).
		Delete(&models.Service{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFoundf("service not found")
	}
	return nil
}

// Cart operations

func (s *DatabaseStore) CreateCartEntry(entry *models.CartEntry) (*models.CartEntry, error) {
	if err := s.db.Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *DatabaseStore) GetCartEntries(userID string) ([]*models.CartEntry, error) {
	var entries []*models.CartEntry
	err := s.db.Where("user_id = ?", userID).Order("id ASC").Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *DatabaseStore) DeleteCartEntry(cartID, userID string) error {
	res := s.db.Where("cart_id = ? AND user_id = ?", cartID, userID).Delete(&models.CartEntry{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFoundf("cart item not found")
	}
	return nil
}

func (s *DatabaseStore) CheckoutCart(userID, paymentMethod, notes string) ([]*models.Booking, error) {
	var bookings []*models.Booking

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var entries []*models.CartEntry
		if err := tx.Where("user_id = ?", userID).Order("id ASC").Find(&entries).Error; err != nil {
			return err
		}
		if len(entries) == 0 {
			return apperr.Validationf("cart is empty")
		}

		for _, e := range entries {
			var svc models.Service
			err := tx.Where("service_id = ?", e.ServiceID).First(&svc).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.Conflictf("service for cart item no longer exists")
			}
			if err != nil {
				return err
			}

			booking := &models.Booking{
				UserID:         e.UserID,
				ProviderID:     svc.ProviderID,
				ServiceID:      svc.ServiceID,
				ServiceName:    svc.Name,
				DurationUnits:  e.DurationUnits,
				UnitPrice:      e.UnitPrice,
				DiscountAmount: e.DiscountAmount,
				TotalAmount:    e.TotalAmount,
				PaymentMethod:  paymentMethod,
				Status:         models.BookingStatusPending,
				Notes:          notes,
			}
			if err := tx.Create(booking).Error; err != nil {
				return err
			}
			bookings = append(bookings, booking)
		}

		return tx.Where("user_id = ?", userID).Delete(&models.CartEntry{}).Error
	})
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// Booking operations

func (s *DatabaseStore) GetBooking(bookingID string) (*models.Booking, error) {
	var booking models.Booking
	err := s.db.Where("booking_id = ?", bookingID).First(&booking).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFoundf("booking not found")
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (s *DatabaseStore) GetBookingsByUser(userID string) ([]*models.Booking, error) {
	var bookings []*models.Booking
	err := s.db.Where("user_id = ?", userID).Order("id ASC").Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *DatabaseStore) GetBookingsByProvider(providerID string) ([]*models.Booking, error) {
	var bookings []*models.Booking
	err := s.db.Where("provider_id = ?", providerID).Order("id ASC").Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *DatabaseStore) AdvanceBookingStatus(bookingID, fromStatus, toStatus string) error {
	// Conditional update doubles as the compare-and-set: a concurrent
	// advance that got there first leaves RowsAffected at zero.
	res := s.db.Model(&models.Booking{}).
		Where("booking_id = ? AND status = ?", bookingID, fromStatus).
		Update("status", toStatus)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		s.db.Model(&models.Booking{}).Where("booking_id = ?", bookingID).Count(&count)
		if count == 0 {
			return apperr.NotFoundf("booking not found")
		}
		return apperr.Conflictf("booking is no longer %s", fromStatus)
	}
	return nil
}

// Address operations

func (s *DatabaseStore) CreateAddress(addr *models.Address) (*models.Address, error) {
	if err := s.db.Create(addr).Error; err != nil {
		return nil, err
	}
	return addr, nil
}

func (s *DatabaseStore) GetAddresses(userID string) ([]*models.Address, error) {
	var addrs []*models.Address
	err := s.db.Where("user_id = ?", userID).Order("id ASC").Find(&addrs).Error
	if err != nil {
		return nil, err
	}
	return addrs, nil
}

func (s *DatabaseStore) DeleteAddress(addressID, userID string) error {
	res := s.db.Where("address_id = ? AND user_id = ?", addressID, userID).Delete(&models.Address{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFoundf("address not found")
	}
	return nil
}
