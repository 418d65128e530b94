// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account in the credential store. Email is the identity key.
type User struct {
	ID               uuid.UUID  // Surrogate key used by tasks and comments.
	Email            string     // Unique login identifier, also the token subject.
	FirstName        string     // Given name.
	LastName         string     // Family name.
	PasswordHash     string     // Adaptive hash of the password, never the plaintext.
	Role             Role       // Authorization role carried into issued tokens.
	IsVerified       bool       // False until the signup code has been confirmed.
	ConfirmationCode *string    // The single active signup or reset code, nil when none.
	CodeSentAt       *time.Time // When ConfirmationCode was issued.
	CreatedAt        time.Time  // When the account was registered.
	UpdatedAt        time.Time  // Last modification of the record.
}

// HasActiveCode reports whether the user currently holds a confirmation code.
func (u *User) HasActiveCode() bool {
	return u.ConfirmationCode != nil && *u.ConfirmationCode != ""
}

// CodeMatches compares code against the active confirmation code.
func (u *User) CodeMatches(code string) bool {
	return u.HasActiveCode() && *u.ConfirmationCode == code
}

// CodeExpired reports whether the active code was issued more than ttl before now.
// A non-positive ttl disables expiry.
func (u *User) CodeExpired(now time.Time, ttl time.Duration) bool {
	if ttl <= 0 || u.CodeSentAt == nil {
		return false
	}

	return !now.Before(u.CodeSentAt.Add(ttl))
}

// FullName joins first and last name for display.
func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}

	return u.FirstName + " " + u.LastName
}
