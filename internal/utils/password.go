package utils

import (
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

// passwordSymbols is the punctuation set a password must draw at least one
// character from.
const passwordSymbols = "!@#$%^&*()-_=+[]{};:,.<>?/|~"

// ValidatePasswordStrength returns the list of violated rules, empty when
// the password is acceptable.
func ValidatePasswordStrength(password string) []string {
	var violations []string

	if len(password) < 8 {
		violations = append(violations, "password must be at least 8 characters")
	}

	var hasLower, hasUpper, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		}
		if strings.ContainsRune(passwordSymbols, r) {
			hasSymbol = true
		}
	}

	if !hasLower {
		violations = append(violations, "password must contain a lowercase letter")
	}
	if !hasUpper {
		violations = append(violations, "password must contain an uppercase letter")
	}
	if !hasSymbol {
		violations = append(violations, "password must contain a symbol")
	}

	return violations
}

// ValidatePinFormat reports whether pin is exactly 4 numeric digits.
func ValidatePinFormat(pin string) bool {
	if len(pin) != 4 {
		return false
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// HashCredential hashes a password or PIN with bcrypt.
func HashCredential(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckCredential compares a plaintext password or PIN against its hash.
func CheckCredential(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
