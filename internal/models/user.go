package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is an identity on the platform, either a customer or a service
// provider. Registration creates it unverified; it becomes usable only after
// OTP confirmation.
type User struct {
	gorm.Model

	UserID   string `json:"user_id" gorm:"uniqueIndex"`
	Name     string `json:"name"`
	Email    string `json:"email" gorm:"uniqueIndex"`
	Phone    string `json:"phone" gorm:"uniqueIndex"`
	District string `json:"district,omitempty"`

	// Credential hashes are never serialized.
	PasswordHash string `json:"-"`
	PINHash      string `json:"-"`

	Role     string `json:"role"`
	Verified bool   `json:"verified" gorm:"default:false"`
}

// Role constants
const (
	RoleUser     = "user"
	RoleProvider = "provider"
)

// BeforeCreate generates the UserID and normalizes contact fields.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.UserID == "" {
		u.UserID = uuid.NewString()
	}
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	u.Phone = strings.TrimSpace(u.Phone)
	return nil
}

// MatchesContact reports whether contact is this user's email or phone.
func (u *User) MatchesContact(contact string) bool {
	c := strings.TrimSpace(contact)
	return strings.EqualFold(c, u.Email) || c == u.Phone
}

// Public returns the fields safe to echo back to clients.
func (u *User) Public() map[string]interface{} {
	return map[string]interface{}{
		"user_id":  u.UserID,
		"name":     u.Name,
		"email":    u.Email,
		"phone":    u.Phone,
		"role":     u.Role,
		"verified": u.Verified,
	}
}

// UserRegistration is the register request payload.
type UserRegistration struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Password   string `json:"password"`
	PIN        string `json:"pin"`
	PINConfirm string `json:"pin_confirm"`
	Role       string `json:"role"`
}

// UserLogin is the login request payload. LoginType selects the credential
// path; both paths must resolve to the same verified identity.
type UserLogin struct {
	EmailOrPhone string `json:"email_or_phone"`
	Password     string `json:"password"`
	PIN          string `json:"pin"`
	LoginType    string `json:"login_type"` // "password" or "pin"
}

// ChangePinRequest completes the two-phase PIN reset.
type ChangePinRequest struct {
	EmailOrPhone string `json:"email_or_phone"`
	OTP          string `json:"otp"`
	NewPIN       string `json:"new_pin"`
	ConfirmPIN   string `json:"confirm_pin"`
}
