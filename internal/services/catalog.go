package services

import (
	"strings"

	"github.com/Premkumar95/UPPTN/internal/apperr"
	"github.com/Premkumar95/UPPTN/internal/models"
	"github.com/Premkumar95/UPPTN/internal/session"
	"github.com/Premkumar95/UPPTN/internal/storage"
)

// CatalogService filters the service listing and owns the provider-side CRUD.
type CatalogService struct {
	store storage.Store
}

func NewCatalogService(store storage.Store) *CatalogService {
	return &CatalogService{store: store}
}

// normalizeFilter maps the "All ..." sentinels to no-filter and trims the
// keyword.
func normalizeFilter(filter models.ServiceFilter) *models.ServiceFilter {
	if filter.District == models.AllDistricts {
		filter.District = ""
	}
	if filter.Category == models.AllCategories {
		filter.Category = ""
	}
	filter.Keyword = strings.TrimSpace(filter.Keyword)
	return &filter
}

// Search returns the full filtered result set, ordered. Each non-empty
// predicate is ANDed; keyword matches name, description and category
// case-insensitively, and the price bounds apply to the base price.
func (s *CatalogService) Search(filter models.ServiceFilter) ([]*models.Service, error) {
	if filter.MinPrice < 0 || filter.MaxPrice < 0 {
		return nil, apperr.Validationf("price bounds must not be negative")
	}
	if filter.MaxPrice > 0 && filter.MinPrice > filter.MaxPrice {
		return nil, apperr.Validationf("min price must not exceed max price")
	}
	return s.store.SearchServices(normalizeFilter(filter))
}

// Get returns one listing by id.
func (s *CatalogService) Get(serviceID string) (*models.Service, error) {
	return s.store.GetService(serviceID)
}

// Paginate is a pure window over an already-fetched result set. Windows for
// consecutive pages are disjoint and together cover the set exactly once.
func Paginate(results []*models.Service, page, pageSize int) ([]*models.Service, error) {
	if page < 1 {
		return nil, apperr.Validationf("page must be at least 1")
	}
	if pageSize < 1 {
		return nil, apperr.Validationf("page size must be at least 1")
	}

	start := (page - 1) * pageSize
	if start >= len(results) {
		return []*models.Service{}, nil
	}
	end := start + pageSize
	if end > len(results) {
		end = len(results)
	}
	return results[start:end], nil
}

// Create adds a listing owned by the provider session.
func (s *CatalogService) Create(sess session.Session, req *models.ServiceCreate) (*models.Service, error) {
	provider, err := session.RequireProvider(sess)
	if err != nil {
		return nil, err
	}

	if req.Name == "" || req.Category == "" || req.District == "" {
		return nil, apperr.Validationf("name, category and district are required")
	}
	if req.BasePrice <= 0 {
		return nil, apperr.Validationf("base price must be positive")
	}
	if req.Unit != models.UnitHour && req.Unit != models.UnitDay {
		return nil, apperr.Validationf("unit must be hour or day")
	}
	if req.DiscountPct < 0 || req.DiscountPct > 100 {
		return nil, apperr.Validationf("discount must be between 0 and 100")
	}

	return s.store.CreateService(&models.Service{
		ProviderID:  provider.UserID,
		Name:        req.Name,
		Category:    req.Category,
		District:    req.District,
		Description: req.Description,
		BasePrice:   req.BasePrice,
		Unit:        req.Unit,
		DiscountPct: req.DiscountPct,
	})
}

// ListMine returns the provider's own listings.
func (s *CatalogService) ListMine(sess session.Session) ([]*models.Service, error) {
	provider, err := session.RequireProvider(sess)
	if err != nil {
		return nil, err
	}
	return s.store.GetServicesByProvider(provider.UserID)
}

// Update applies a partial edit to a listing the provider owns. Edits do not
// touch quotes already frozen into carts or bookings.
func (s *CatalogService) Update(sess session.Session, serviceID string, req *models.ServiceUpdate) (*models.Service, error) {
	provider, err := session.RequireProvider(sess)
	if err != nil {
		return nil, err
	}

	svc, err := s.store.GetService(serviceID)
	if err != nil {
		return nil, err
	}
	if svc.ProviderID != provider.UserID {
		return nil, apperr.NotFoundf("service not found")
	}

	// Validate the whole edit before touching anything; a rejected update
	// must leave the listing exactly as it was.
	if req.BasePrice != nil && *req.BasePrice <= 0 {
		return nil, apperr.Validationf("base price must be positive")
	}
	if req.DiscountPct != nil && (*req.DiscountPct < 0 || *req.DiscountPct > 100) {
		return nil, apperr.Validationf("discount must be between 0 and 100")
	}

	updated := *svc
	if req.Name != nil {
		updated.Name = *req.Name
	}
	if req.Description != nil {
		updated.Description = *req.Description
	}
	if req.BasePrice != nil {
		updated.BasePrice = *req.BasePrice
	}
	if req.DiscountPct != nil {
		updated.DiscountPct = *req.DiscountPct
	}

	if err := s.store.UpdateService(&updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a listing the provider owns.
func (s *CatalogService) Delete(sess session.Session, serviceID string) error {
	provider, err := session.RequireProvider(sess)
	if err != nil {
		return err
	}
	return s.store.DeleteService(serviceID, provider.UserID)
}
