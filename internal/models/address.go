package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Address is a saved delivery/work location on a user's profile.
type Address struct {
	gorm.Model

	AddressID  string `json:"address_id" gorm:"uniqueIndex"`
	UserID     string `json:"user_id" gorm:"index"`
	UserName   string `json:"user_name"`
	StreetName string `json:"street_name"`
	City       string `json:"city"`
	District   string `json:"district"`
	Pincode    string `json:"pincode"`
	Landmark   string `json:"landmark,omitempty"`
}

func (a *Address) BeforeCreate(tx *gorm.DB) error {
	if a.AddressID == "" {
		a.AddressID = uuid.NewString()
	}
	return nil
}

// AddressCreate is the add-address payload.
type AddressCreate struct {
	UserName   string `json:"user_name"`
	StreetName string `json:"street_name"`
	City       string `json:"city"`
	District   string `json:"district"`
	Pincode    string `json:"pincode"`
	Landmark   string `json:"landmark"`
}
