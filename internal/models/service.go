package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service is a listing owned by exactly one provider, discoverable by
// district and category.
type Service struct {
	gorm.Model

	ServiceID   string  `json:"service_id" gorm:"uniqueIndex"`
	ProviderID  string  `json:"provider_id" gorm:"index"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	District    string  `json:"district"`
	Description string  `json:"description"`
	BasePrice   float64 `json:"base_price"`
	Unit        string  `json:"unit"` // "hour" or "day"
	DiscountPct float64 `json:"discount_pct"`
	Rating      float64 `json:"rating"`
	Seeded      bool    `json:"-" gorm:"default:false"`
}

// Billing units
const (
	UnitHour = "hour"
	UnitDay  = "day"
)

func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.ServiceID == "" {
		s.ServiceID = uuid.NewString()
	}
	return nil
}

// ServiceCreate is the provider-facing create payload.
type ServiceCreate struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	District    string  `json:"district"`
	Description string  `json:"description"`
	BasePrice   float64 `json:"base_price"`
	Unit        string  `json:"unit"`
	DiscountPct float64 `json:"discount_pct"`
}

// ServiceUpdate carries a partial edit; nil fields are left untouched.
type ServiceUpdate struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	BasePrice   *float64 `json:"base_price"`
	DiscountPct *float64 `json:"discount_pct"`
}

// ServiceFilter holds catalog search predicates. Empty fields match
// everything; "All Districts"/"All Categories" sentinels are treated as
// empty before the filter reaches storage. Price bounds apply to the base
// price; zero means unbounded.
type ServiceFilter struct {
	Keyword  string
	District string
	Category string
	MinPrice float64
	MaxPrice float64
}
