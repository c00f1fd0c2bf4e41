package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePasswordStrength(t *testing.T) {
	t.Run("Accepts A Strong Password", func(t *testing.T) {
		assert.Empty(t, ValidatePasswordStrength("Str0ng!pass"))
	})

	t.Run("Reports Every Missing Rule", func(t *testing.T) {
		violations := ValidatePasswordStrength("abc")
		// short, no uppercase, no symbol
		assert.Len(t, violations, 3)
	})

	cases := []struct {
		name     string
		password string
	}{
		{"Too Short", "Ab!x1"},
		{"No Uppercase", "weak!password1"},
		{"No Lowercase", "WEAK!PASSWORD1"},
		{"No Symbol", "Weakpassword1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.NotEmpty(t, ValidatePasswordStrength(tc.password))
		})
	}
}

func TestValidatePinFormat(t *testing.T) {
	assert.True(t, ValidatePinFormat("0000"))
	assert.True(t, ValidatePinFormat("4321"))

	assert.False(t, ValidatePinFormat("123"))
	assert.False(t, ValidatePinFormat("12345"))
	assert.False(t, ValidatePinFormat("12a4"))
	assert.False(t, ValidatePinFormat(""))
	assert.False(t, ValidatePinFormat("12 4"))
}

func TestCredentialHashing(t *testing.T) {
	hash, err := HashCredential("Secret@123")
	require.NoError(t, err)
	assert.NotEqual(t, "Secret@123", hash)

	assert.True(t, CheckCredential("Secret@123", hash))
	assert.False(t, CheckCredential("Secret@124", hash))
}

func TestGenerateSecureOTP(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		code, err := GenerateSecureOTP()
		require.NoError(t, err)
		require.Len(t, code, 6)
		for _, c := range code {
			assert.True(t, c >= '0' && c <= '9')
		}
		seen[code] = true
	}
	// 50 draws from a million values should not all collide.
	assert.Greater(t, len(seen), 1)
}
