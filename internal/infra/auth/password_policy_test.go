package auth

import (
	"strings"
	"testing"

	"taskman/config"
	domainerrors "taskman/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func strictPolicy() *config.Config {
	return &config.Config{PasswordPolicy: &config.PasswordPolicyConfig{
		MinLength:        8,
		MaxLength:        72,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireNumbers:   true,
		RequireSpecial:   true,
	}}
}

func TestPasswordPolicy_Validate(t *testing.T) {
	policy := NewPasswordPolicy(strictPolicy())

	for _, password := range []string{"StrongPass123!", "MySecure@Pass1", "Pässphräse123!"} {
		assert.NoError(t, policy.Validate(password), password)
	}

	testCases := []struct {
		password    string
		expectedMsg string
	}{
		{"", "must be at least 8 characters long"},
		{"Ab1!", "must be at least 8 characters long"},
		{"PASSWORD123!", "must contain at least one lowercase letter"},
		{"password123!", "must contain at least one uppercase letter"},
		{"PasswordABC!", "must contain at least one number"},
		{"Password123", "must contain at least one special character"},
	}

	for _, tc := range testCases {
		err := policy.Validate(tc.password)
		assert.ErrorIs(t, err, domainerrors.ErrPasswordPolicy, tc.password)

		var appErr domainerrors.AppError
		if assert.ErrorAs(t, err, &appErr) {
			assert.Equal(t, tc.expectedMsg, appErr.Details())
		}
	}
}

func TestPasswordPolicy_MaxLength(t *testing.T) {
	cfg := strictPolicy()
	cfg.PasswordPolicy.MaxLength = 10
	policy := NewPasswordPolicy(cfg)

	err := policy.Validate("VeryLongPassword123!")
	assert.ErrorIs(t, err, domainerrors.ErrPasswordPolicy)
}

func TestPasswordPolicy_ByteLimit(t *testing.T) {
	policy := NewPasswordPolicy(strictPolicy())
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	testCases := []struct {
		name        string
		password    string
		wantDetails string
	}{
		{name: "ascii at the limit", password: "Aa1!" + strings.Repeat("x", 68)},
		{name: "ascii over the limit", password: "Aa1!" + strings.Repeat("x", 69), wantDetails: "must be at most 72 characters long"},
		{name: "multibyte within rune limit", password: "Aa1!" + strings.Repeat("é", 60), wantDetails: "must be at most 72 bytes long"},
		{name: "multibyte at the limit", password: "Aa1!" + strings.Repeat("é", 34)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := policy.Validate(tc.password)
			if tc.wantDetails != "" {
				require.ErrorIs(t, err, domainerrors.ErrPasswordPolicy)

				var appErr domainerrors.AppError
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, tc.wantDetails, appErr.Details())

				return
			}

			require.NoError(t, err)
			_, err = hasher.Hash(tc.password)
			assert.NoError(t, err, "every accepted password must be hashable")
		})
	}
}

func TestPasswordPolicy_DisabledRulesAcceptAnything(t *testing.T) {
	policy := NewPasswordPolicy(&config.Config{})

	assert.NoError(t, policy.Validate("x"))
}

func TestPasswordPolicy_Helpers(t *testing.T) {
	assert.True(t, hasUppercase("Password"))
	assert.False(t, hasUppercase("password"))
	assert.True(t, hasLowercase("Password"))
	assert.False(t, hasLowercase("PASSWORD"))
	assert.True(t, hasNumbers("Password123"))
	assert.False(t, hasNumbers("Password"))
	assert.True(t, hasSpecialChars("Password!"))
	assert.False(t, hasSpecialChars("Password"))
}
