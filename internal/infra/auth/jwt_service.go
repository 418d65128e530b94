// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"

	"taskman/config"
	"taskman/internal/domain/entity"
	"taskman/internal/domain/service"
)

// jwtClaims is the wire claim set. Subject carries the email.
type jwtClaims struct {
	Role        string `json:"role,omitempty"`
	Kind        string `json:"kind"`
	Fingerprint string `json:"fp,omitempty"`
	jwt.RegisteredClaims
}

// jwtCodec is a concrete implementation of the TokenCodec interface using HS256 JWTs.
// The signing key is immutable after construction.
type jwtCodec struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	resetTTL   time.Duration
	clock      service.Clock
	parser     *jwt.Parser
}

// NewJWTCodec is the constructor for jwtCodec.
func NewJWTCodec(cfg *config.Config, clock service.Clock) (service.TokenCodec, error) {
	if cfg.SecretKey.Signing == "" {
		return nil, errors.New("jwt signing secret must be provided")
	}
	if cfg.Auth == nil {
		return nil, errors.New("auth configuration must be provided")
	}

	return newJWTCodec(cfg.SecretKey.Signing, cfg.Auth.AccessTTL, cfg.Auth.RefreshTTL, cfg.Auth.ResetTTL, clock)
}

func newJWTCodec(secret string, accessTTL, refreshTTL, resetTTL time.Duration, clock service.Clock) (*jwtCodec, error) {
	if accessTTL <= 0 || refreshTTL <= 0 || resetTTL <= 0 {
		return nil, errors.New("token lifetimes must be positive")
	}
	if accessTTL >= refreshTTL {
		return nil, errors.New("access token lifetime must be shorter than refresh token lifetime")
	}

	return &jwtCodec{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		resetTTL:   resetTTL,
		clock:      clock,
		// Expiry is evaluated against the injected clock, not by the parser.
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithoutClaimsValidation(),
		),
	}, nil
}

// IssueTokenPair signs an access and a refresh token for subject with role.
func (c *jwtCodec) IssueTokenPair(subject string, role entity.Role) (*entity.TokenPair, error) {
	now := c.clock.Now()

	accessToken, err := c.sign(subject, role, entity.TokenKindAccess, "", now, c.accessTTL)
	if err != nil {
		return nil, err
	}

	refreshToken, err := c.sign(subject, role, entity.TokenKindRefresh, "", now, c.refreshTTL)
	if err != nil {
		return nil, err
	}

	return &entity.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Role:         role,
	}, nil
}

// IssueResetToken signs a reset token that proves the code with the given fingerprint was verified.
func (c *jwtCodec) IssueResetToken(subject, fingerprint string) (string, error) {
	return c.sign(subject, "", entity.TokenKindReset, fingerprint, c.clock.Now(), c.resetTTL)
}

// Parse verifies the signature and structure of token.
func (c *jwtCodec) Parse(token string) (*entity.TokenClaims, error) {
	claims := &jwtClaims{}

	_, err := c.parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return c.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenSignatureInvalid) || errors.Is(err, jwt.ErrTokenUnverifiable) {
			return nil, pkgerrors.Wrap(service.ErrTokenSignatureInvalid, err.Error())
		}

		return nil, pkgerrors.Wrap(service.ErrTokenMalformed, err.Error())
	}

	kind := entity.TokenKind(claims.Kind)
	switch kind {
	case entity.TokenKindAccess, entity.TokenKindRefresh, entity.TokenKindReset:
	default:
		return nil, pkgerrors.Wrapf(service.ErrTokenMalformed, "unknown token kind %q", claims.Kind)
	}

	if claims.Subject == "" || claims.ExpiresAt == nil {
		return nil, pkgerrors.Wrap(service.ErrTokenMalformed, "missing subject or expiry")
	}

	out := &entity.TokenClaims{
		Subject:     claims.Subject,
		Role:        entity.Role(claims.Role),
		Kind:        kind,
		ExpiresAt:   claims.ExpiresAt.UTC(),
		Fingerprint: claims.Fingerprint,
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.UTC()
	}

	return out, nil
}

// IsExpired is true iff the current time is at or past the claimed expiry.
func (c *jwtCodec) IsExpired(token string) (bool, error) {
	claims, err := c.Parse(token)
	if err != nil {
		return false, err
	}

	return c.expired(claims), nil
}

// ExtractUsername returns the subject claim.
func (c *jwtCodec) ExtractUsername(token string) (string, error) {
	claims, err := c.Parse(token)
	if err != nil {
		return "", err
	}

	return claims.Subject, nil
}

// ExtractExpiration returns the expiry claim.
func (c *jwtCodec) ExtractExpiration(token string) (time.Time, error) {
	claims, err := c.Parse(token)
	if err != nil {
		return time.Time{}, err
	}

	return claims.ExpiresAt, nil
}

// ValidateRefreshToken reports whether token is a usable refresh token.
func (c *jwtCodec) ValidateRefreshToken(token string) bool {
	_, err := c.validate(token, entity.TokenKindRefresh)

	return err == nil
}

// ValidateAccessToken returns the claims of a usable access token.
func (c *jwtCodec) ValidateAccessToken(token string) (*entity.TokenClaims, error) {
	return c.validate(token, entity.TokenKindAccess)
}

// ValidateResetToken returns the claims of a usable reset token.
func (c *jwtCodec) ValidateResetToken(token string) (*entity.TokenClaims, error) {
	return c.validate(token, entity.TokenKindReset)
}

func (c *jwtCodec) validate(token string, kind entity.TokenKind) (*entity.TokenClaims, error) {
	claims, err := c.Parse(token)
	if err != nil {
		return nil, err
	}

	if claims.Kind != kind {
		return nil, pkgerrors.Wrapf(service.ErrTokenKindMismatch, "want %s, got %s", kind, claims.Kind)
	}

	if c.expired(claims) {
		return nil, pkgerrors.WithStack(service.ErrTokenExpired)
	}

	return claims, nil
}

func (c *jwtCodec) expired(claims *entity.TokenClaims) bool {
	return !c.clock.Now().Before(claims.ExpiresAt)
}

// sign is a private helper to create a JWT with specific claims.
// Every token gets a unique ID so two tokens issued in the same second never collide.
func (c *jwtCodec) sign(subject string, role entity.Role, kind entity.TokenKind, fingerprint string, now time.Time, ttl time.Duration) (string, error) {
	claims := jwtClaims{
		Role:        role.String(),
		Kind:        string(kind),
		Fingerprint: fingerprint,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", pkgerrors.Wrapf(err, "failed to sign %s token", kind)
	}

	return signed, nil
}
