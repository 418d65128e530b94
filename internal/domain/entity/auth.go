package entity

import "time"

// TokenKind distinguishes what a signed token may be used for.
type TokenKind string

const (
	TokenKindAccess  TokenKind = "access"
	TokenKindRefresh TokenKind = "refresh"
	TokenKindReset   TokenKind = "reset"
)

// TokenClaims is the decoded claim set of a signed token.
type TokenClaims struct {
	Subject     string
	Role        Role
	Kind        TokenKind
	IssuedAt    time.Time
	ExpiresAt   time.Time
	Fingerprint string // Only set on reset tokens: digest of the code that was verified.
}

// TokenPair is the result of a successful login or refresh.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	Role         Role
}

// Caller is the resolved identity of an authenticated request.
// It is passed explicitly to every operation that needs it.
type Caller struct {
	Email string
	Role  Role
}

// IsAdmin reports whether the caller holds the administrator role.
func (c Caller) IsAdmin() bool {
	return c.Role == RoleAdmin
}
