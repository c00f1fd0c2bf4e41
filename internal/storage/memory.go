package storage

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Premkumar95/UPPTN/internal/apperr"
	"github.com/Premkumar95/UPPTN/internal/models"
)

func gormModel(now time.Time) gorm.Model {
	return gorm.Model{CreatedAt: now, UpdatedAt: now}
}

// MemoryStore holds all data in memory, for tests and demo mode.
type MemoryStore struct {
	users      map[string]*models.User         // by UserID
	challenges map[string]*models.OTPChallenge // by contact|purpose, latest only
	services   map[string]*models.Service      // by ServiceID
	carts      map[string]*models.CartEntry    // by CartID
	bookings   map[string]*models.Booking      // by BookingID
	addresses  map[string]*models.Address      // by AddressID

	// Mutexes for thread safety. checkout spans carts, services and
	// bookings and always acquires in that order.
	userMu      sync.RWMutex
	challengeMu sync.RWMutex
	serviceMu   sync.RWMutex
	cartMu      sync.RWMutex
	bookingMu   sync.RWMutex
	addressMu   sync.RWMutex

	// Counters stand in for the database's auto-increment ids.
	challengeCounter uint
	serviceCounter   uint
}

// NewMemoryStore creates a new in-memory storage
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:      make(map[string]*models.User),
		challenges: make(map[string]*models.OTPChallenge),
		services:   make(map[string]*models.Service),
		carts:      make(map[string]*models.CartEntry),
		bookings:   make(map[string]*models.Booking),
		addresses:  make(map[string]*models.Address),
	}
}

// User operations

func (m *MemoryStore) CreateUser(user *models.User) (*models.User, error) {
	m.userMu.Lock()
	defer m.userMu.Unlock()

	email := strings.ToLower(strings.TrimSpace(user.Email))
	phone := strings.TrimSpace(user.Phone)
	for _, u := range m.users {
		if u.Email == email || u.Phone == phone {
			return nil, apperr.Validationf("user already exists")
		}
	}

	if user.UserID == "" {
		user.UserID = uuid.NewString()
	}
	user.Email = email
	user.Phone = phone
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()

	m.users[user.UserID] = user
	return user, nil
}

func (m *MemoryStore) GetUserByID(userID string) (*models.User, error) {
	m.userMu.RLock()
	defer m.userMu.RUnlock()

	user, exists := m.users[userID]
	if !exists {
		return nil, apperr.NotFoundf("user not found")
	}
	return user, nil
}

func (m *MemoryStore) GetUserByContact(emailOrPhone string) (*models.User, error) {
	m.userMu.RLock()
	defer m.userMu.RUnlock()

	for _, u := range m.users {
		if u.MatchesContact(emailOrPhone) {
			return u, nil
		}
	}
	return nil, apperr.NotFoundf("user not found")
}

func (m *MemoryStore) MarkUserVerified(userID string) error {
	m.userMu.Lock()
	defer m.userMu.Unlock()

	user, exists := m.users[userID]
	if !exists {
		return apperr.NotFoundf("user not found")
	}
	user.Verified = true
	user.UpdatedAt = time.Now()
	return nil
}

func (m *MemoryStore) UpdateUserPIN(userID, pinHash string) error {
	m.userMu.Lock()
	defer m.userMu.Unlock()

	user, exists := m.users[userID]
	if !exists {
		return apperr.NotFoundf("user not found")
	}
	user.PINHash = pinHash
	user.UpdatedAt = time.Now()
	return nil
}

// OTP challenge operations

func challengeKey(contact, purpose string) string {
	return contact + "|" + purpose
}

func (m *MemoryStore) CreateChallenge(ch *models.OTPChallenge) (*models.OTPChallenge, error) {
	m.challengeMu.Lock()
	defer m.challengeMu.Unlock()

	m.challengeCounter++
	ch.ID = m.challengeCounter
	ch.CreatedAt = time.Now()
	ch.UpdatedAt = time.Now()

	// Replacing the map entry supersedes any prior challenge for the pair.
	m.challenges[challengeKey(ch.Contact, ch.Purpose)] = ch
	return ch, nil
}

func (m *MemoryStore) GetActiveChallenge(contact, purpose string) (*models.OTPChallenge, error) {
	m.challengeMu.RLock()
	defer m.challengeMu.RUnlock()

	ch, exists := m.challenges[challengeKey(contact, purpose)]
	if !exists || ch.Consumed {
		return nil, apperr.NotFoundf("no active challenge for this contact")
	}
	return ch, nil
}

func (m *MemoryStore) ConsumeChallenge(id uint) error {
	m.challengeMu.Lock()
	defer m.challengeMu.Unlock()

	for _, ch := range m.challenges {
		if ch.ID == id {
			ch.Consumed = true
			ch.UpdatedAt = time.Now()
			return nil
		}
	}
	return apperr.NotFoundf("challenge not found")
}

// Service listing operations

func (m *MemoryStore) CreateService(svc *models.Service) (*models.Service, error) {
	m.serviceMu.Lock()
	defer m.serviceMu.Unlock()

	if svc.ServiceID == "" {
		svc.ServiceID = uuid.NewString()
	}
	m.serviceCounter++
	svc.ID = m.serviceCounter
	svc.CreatedAt = time.Now()
	svc.UpdatedAt = time.Now()

	m.services[svc.ServiceID] = svc
	return svc, nil
}

func (m *MemoryStore) GetService(serviceID string) (*models.Service, error) {
	m.serviceMu.RLock()
	defer m.serviceMu.RUnlock()

	svc, exists := m.services[serviceID]
	if !exists {
		return nil, apperr.NotFoundf("service not found")
	}
	return svc, nil
}

func (m *MemoryStore) SearchServices(filter *models.ServiceFilter) ([]*models.Service, error) {
	m.serviceMu.RLock()
	defer m.serviceMu.RUnlock()

	keyword := strings.ToLower(filter.Keyword)

	var results []*models.Service
	for _, svc := range m.services {
		if filter.District != "" && svc.District != filter.District {
			continue
		}
		if filter.Category != "" && svc.Category != filter.Category {
			continue
		}
		if filter.MinPrice > 0 && svc.BasePrice < filter.MinPrice {
			continue
		}
		if filter.MaxPrice > 0 && svc.BasePrice > filter.MaxPrice {
			continue
		}
		if keyword != "" &&
			!strings.Contains(strings.ToLower(svc.Name), keyword) &&
			!strings.Contains(strings.ToLower(svc.Description), keyword) &&
			!strings.Contains(strings.ToLower(svc.Category), keyword) {
			continue
		}
		results = append(results, svc)
	}

	// Stable order so paging windows agree across requests.
	sort.Slice(results, func(i, j int) bool { return results[i].ID < results[j].ID })
	return results, nil
}

func (m *MemoryStore) GetServicesByProvider(providerID string) ([]*models.Service, error) {
	m.serviceMu.RLock()
	defer m.serviceMu.RUnlock()

	var results []*models.Service
	for _, svc := range m.services {
		if svc.ProviderID == providerID {
			results = append(results, svc)
		}
	}
	sort.Slice(results, func(i, j int) bool { return results[i].ID < results[j].ID })
	return results, nil
}

func (m *MemoryStore) UpdateService(svc *models.Service) error {
	m.serviceMu.Lock()
	defer m.serviceMu.Unlock()

	if _, exists := m.services[svc.ServiceID]; !exists {
		return apperr.NotFoundf("service not found")
	}
	svc.UpdatedAt = time.Now()
	m.services[svc.ServiceID] = svc
	return nil
}

func (m *MemoryStore) DeleteService(serviceID, providerID string) error {
	m.serviceMu.Lock()
	defer m.serviceMu.Unlock()

	svc, exists := m.services[serviceID]
	if !exists || svc.ProviderID != providerID {
		return apperr.NotFoundf("service not found")
	}
	delete(m.services, serviceID)
	return nil
}

// Cart operations

func (m *MemoryStore) CreateCartEntry(entry *models.CartEntry) (*models.CartEntry, error) {
	m.cartMu.Lock()
	defer m.cartMu.Unlock()

	if entry.CartID == "" {
		entry.CartID = uuid.NewString()
	}
	entry.CreatedAt = time.Now()
	entry.UpdatedAt = time.Now()

	m.carts[entry.CartID] = entry
	return entry, nil
}

func (m *MemoryStore) GetCartEntries(userID string) ([]*models.CartEntry, error) {
	m.cartMu.RLock()
	defer m.cartMu.RUnlock()

	return m.cartEntriesLocked(userID), nil
}

func (m *MemoryStore) cartEntriesLocked(userID string) []*models.CartEntry {
	var entries []*models.CartEntry
	for _, e := range m.carts {
		if e.UserID == userID {
			entries = append(entries, e)
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].CreatedAt.Before(entries[j].CreatedAt) })
	return entries
}

func (m *MemoryStore) DeleteCartEntry(cartID, userID string) error {
	m.cartMu.Lock()
	defer m.cartMu.Unlock()

	entry, exists := m.carts[cartID]
	if !exists || entry.UserID != userID {
		return apperr.NotFoundf("cart item not found")
	}
	delete(m.carts, cartID)
	return nil
}

func (m *MemoryStore) CheckoutCart(userID, paymentMethod, notes string) ([]*models.Booking, error) {
	m.cartMu.Lock()
	defer m.cartMu.Unlock()
	m.serviceMu.RLock()
	defer m.serviceMu.RUnlock()
	m.bookingMu.Lock()
	defer m.bookingMu.Unlock()

	entries := m.cartEntriesLocked(userID)
	if len(entries) == 0 {
		return nil, apperr.Validationf("cart is empty")
	}

	// Validate every entry before mutating anything.
	var bookings []*models.Booking
	for _, e := range entries {
		svc, exists := m.services[e.ServiceID]
		if !exists {
			return nil, apperr.Conflictf("service for cart item no longer exists")
		}
		now := time.Now()
		bookings = append(bookings, &models.Booking{
			BookingID:      uuid.NewString(),
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
			Model:          gormModel(now),
		})
	}

	for _, b := range bookings {
		m.bookings[b.BookingID] = b
	}
	for _, e := range entries {
		delete(m.carts, e.CartID)
	}
	return bookings, nil
}

// Booking operations

func (m *MemoryStore) GetBooking(bookingID string) (*models.Booking, error) {
	m.bookingMu.RLock()
	defer m.bookingMu.RUnlock()

	booking, exists := m.bookings[bookingID]
	if !exists {
		return nil, apperr.NotFoundf("booking not found")
	}
	return booking, nil
}

func (m *MemoryStore) GetBookingsByUser(userID string) ([]*models.Booking, error) {
	m.bookingMu.RLock()
	defer m.bookingMu.RUnlock()

	var bookings []*models.Booking
	for _, b := range m.bookings {
		if b.UserID == userID {
			bookings = append(bookings, b)
		}
	}
	sort.Slice(bookings, func(i, j int) bool { return bookings[i].CreatedAt.Before(bookings[j].CreatedAt) })
	return bookings, nil
}

func (m *MemoryStore) GetBookingsByProvider(providerID string) ([]*models.Booking, error) {
	m.bookingMu.RLock()
	defer m.bookingMu.RUnlock()

	var bookings []*models.Booking
	for _, b := range m.bookings {
		if b.ProviderID == providerID {
			bookings = append(bookings, b)
		}
	}
	sort.Slice(bookings, func(i, j int) bool { return bookings[i].CreatedAt.Before(bookings[j].CreatedAt) })
	return bookings, nil
}

func (m *MemoryStore) AdvanceBookingStatus(bookingID, fromStatus, toStatus string) error {
	m.bookingMu.Lock()
	defer m.bookingMu.Unlock()

	booking, exists := m.bookings[bookingID]
	if !exists {
		return apperr.NotFoundf("booking not found")
	}
	if booking.Status != fromStatus {
		return apperr.Conflictf("booking is no longer %s", fromStatus)
	}
	booking.Status = toStatus
	booking.UpdatedAt = time.Now()
	return nil
}

// Address operations

func (m *MemoryStore) CreateAddress(addr *models.Address) (*models.Address, error) {
	m.addressMu.Lock()
	defer m.addressMu.Unlock()

	if addr.AddressID == "" {
		addr.AddressID = uuid.NewString()
	}
	addr.CreatedAt = time.Now()
	addr.UpdatedAt = time.Now()

	m.addresses[addr.AddressID] = addr
	return addr, nil
}

func (m *MemoryStore) GetAddresses(userID string) ([]*models.Address, error) {
	m.addressMu.RLock()
	defer m.addressMu.RUnlock()

	var addrs []*models.Address
	for _, a := range m.addresses {
		if a.UserID == userID {
			addrs = append(addrs, a)
		}
	}
	sort.Slice(addrs, func(i, j int) bool { return addrs[i].CreatedAt.Before(addrs[j].CreatedAt) })
	return addrs, nil
}

func (m *MemoryStore) DeleteAddress(addressID, userID string) error {
	m.addressMu.Lock()
	defer m.addressMu.Unlock()

	addr, exists := m.addresses[addressID]
	if !exists || addr.UserID != userID {
		return apperr.NotFoundf("address not found")
	}
	delete(m.addresses, addressID)
	return nil
}
