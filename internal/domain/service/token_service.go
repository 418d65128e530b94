package service

import (
	"errors"
	"time"

	"taskman/internal/domain/entity"
)

// Token codec failures. Callers at the engine boundary collapse these into a
// single domain error so the cause is never revealed to clients.
var (
	ErrTokenMalformed        = errors.New("token is malformed")
	ErrTokenSignatureInvalid = errors.New("token signature is invalid")
	ErrTokenExpired          = errors.New("token is expired")
	ErrTokenKindMismatch     = errors.New("token kind mismatch")
)

// TokenCodec issues and parses signed, expiring tokens.
type TokenCodec interface {
	// IssueTokenPair signs an access and a refresh token for subject with role.
	IssueTokenPair(subject string, role entity.Role) (*entity.TokenPair, error)

	// IssueResetToken signs a short-lived reset token bound to a code fingerprint.
	IssueResetToken(subject, fingerprint string) (string, error)

	// Parse verifies signature and shape and returns the claims. It does not check expiry.
	Parse(token string) (*entity.TokenClaims, error)

	// IsExpired is true iff now is at or past the claimed expiry.
	IsExpired(token string) (bool, error)

	// ExtractUsername returns the subject claim.
	ExtractUsername(token string) (string, error)

	// ExtractExpiration returns the expiry claim.
	ExtractExpiration(token string) (time.Time, error)

	// ValidateRefreshToken is true iff the signature is valid, kind is refresh and the token is not expired.
	ValidateRefreshToken(token string) bool

	// ValidateAccessToken returns the claims of a valid, unexpired access token.
	ValidateAccessToken(token string) (*entity.TokenClaims, error)

	// ValidateResetToken returns the claims of a valid, unexpired reset token.
	ValidateResetToken(token string) (*entity.TokenClaims, error)
}
