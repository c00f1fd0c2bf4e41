package models

import (
	"gorm.io/gorm"
)

// OTPChallenge is a single-use 6-digit challenge keyed by (contact, purpose).
// A new challenge supersedes any prior unconsumed one for the same pair.
type OTPChallenge struct {
	gorm.Model
	Contact  string `gorm:"not null;index"`
	Code     string `gorm:"not null"`
	Purpose  string `gorm:"not null"` // "registration", "pin_reset"
	Consumed bool   `gorm:"default:false"`
}

// OTP purposes
const (
	OTPPurposeRegistration = "registration"
	OTPPurposePinReset     = "pin_reset"
)

// OTPRequest asks for a fresh challenge for a contact.
type OTPRequest struct {
	Contact string `json:"contact"`
}

// OTPVerify submits a code for the most recent challenge.
type OTPVerify struct {
	Contact string `json:"contact"`
	OTP     string `json:"otp"`
}
