package auth

import (
	"strings"
	"testing"
	"time"

	"taskman/config"
	"taskman/internal/domain/entity"
	"taskman/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_signing_secret_key_very_long_for_testing"

type stubClock struct {
	now time.Time
}

func (c *stubClock) Now() time.Time { return c.now }

func (c *stubClock) advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestCodec(t *testing.T) (*jwtCodec, *stubClock) {
	t.Helper()

	clk := &stubClock{now: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
	codec, err := newJWTCodec(testSecret, 15*time.Minute, 7*24*time.Hour, 10*time.Minute, clk)
	require.NoError(t, err)

	return codec, clk
}

func TestJWTCodec_IssueAndParseRoundTrip(t *testing.T) {
	codec, clk := newTestCodec(t)

	pair, err := codec.IssueTokenPair("a@x.com", entity.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, pair.Role)
	assert.Len(t, strings.Split(pair.AccessToken, "."), 3)

	access, err := codec.Parse(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", access.Subject)
	assert.Equal(t, entity.RoleAdmin, access.Role)
	assert.Equal(t, entity.TokenKindAccess, access.Kind)
	assert.Equal(t, clk.now, access.IssuedAt)
	assert.Equal(t, clk.now.Add(15*time.Minute), access.ExpiresAt)

	refresh, err := codec.Parse(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", refresh.Subject)
	assert.Equal(t, entity.RoleAdmin, refresh.Role)
	assert.Equal(t, entity.TokenKindRefresh, refresh.Kind)
	assert.True(t, refresh.ExpiresAt.After(access.ExpiresAt))
}

func TestJWTCodec_TokensIssuedTogetherAreDistinct(t *testing.T) {
	codec, _ := newTestCodec(t)

	first, err := codec.IssueTokenPair("a@x.com", entity.RoleUser)
	require.NoError(t, err)
	second, err := codec.IssueTokenPair("a@x.com", entity.RoleUser)
	require.NoError(t, err)

	assert.NotEqual(t, first.AccessToken, second.AccessToken)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)
}

func TestJWTCodec_TamperedSignature(t *testing.T) {
	codec, _ := newTestCodec(t)

	pair, err := codec.IssueTokenPair("a@x.com", entity.RoleUser)
	require.NoError(t, err)

	parts := strings.Split(pair.AccessToken, ".")
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = codec.Parse(tampered)
	assert.True(t, errors.Is(err, service.ErrTokenSignatureInvalid))
}

func TestJWTCodec_ForeignKey(t *testing.T) {
	codec, clk := newTestCodec(t)
	other, err := newJWTCodec("another_secret_key_that_is_long_enough", 15*time.Minute, time.Hour, time.Minute, clk)
	require.NoError(t, err)

	pair, err := other.IssueTokenPair("a@x.com", entity.RoleUser)
	require.NoError(t, err)

	_, err = codec.Parse(pair.AccessToken)
	assert.True(t, errors.Is(err, service.ErrTokenSignatureInvalid))
}

func TestJWTCodec_Malformed(t *testing.T) {
	codec, _ := newTestCodec(t)

	for _, token := range []string{"", "clearly-not-a-jwt-token-format", "a.b.c"} {
		_, err := codec.Parse(token)
		assert.True(t, errors.Is(err, service.ErrTokenMalformed), token)

		_, err = codec.ExtractUsername(token)
		assert.True(t, errors.Is(err, service.ErrTokenMalformed), token)

		_, err = codec.ExtractExpiration(token)
		assert.True(t, errors.Is(err, service.ErrTokenMalformed), token)
	}
}

func TestJWTCodec_UnknownKindIsMalformed(t *testing.T) {
	codec, clk := newTestCodec(t)

	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwtClaims{
		Kind: "session",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "a@x.com",
			ExpiresAt: jwt.NewNumericDate(clk.now.Add(time.Hour)),
		},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = codec.Parse(raw)
	assert.True(t, errors.Is(err, service.ErrTokenMalformed))
}

func TestJWTCodec_RejectsNoneAlgorithm(t *testing.T) {
	codec, clk := newTestCodec(t)

	raw, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwtClaims{
		Kind: string(entity.TokenKindAccess),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "a@x.com",
			ExpiresAt: jwt.NewNumericDate(clk.now.Add(time.Hour)),
		},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = codec.Parse(raw)
	assert.Error(t, err)
}

func TestJWTCodec_Expiry(t *testing.T) {
	codec, clk := newTestCodec(t)

	pair, err := codec.IssueTokenPair("a@x.com", entity.RoleUser)
	require.NoError(t, err)

	expired, err := codec.IsExpired(pair.AccessToken)
	require.NoError(t, err)
	assert.False(t, expired)

	clk.advance(15*time.Minute - time.Second)
	expired, err = codec.IsExpired(pair.AccessToken)
	require.NoError(t, err)
	assert.False(t, expired)

	clk.advance(time.Second)
	expired, err = codec.IsExpired(pair.AccessToken)
	require.NoError(t, err)
	assert.True(t, expired, "expiry instant itself counts as expired")

	_, err = codec.ValidateAccessToken(pair.AccessToken)
	assert.True(t, errors.Is(err, service.ErrTokenExpired))

	exp, err := codec.ExtractExpiration(pair.AccessToken)
	require.NoError(t, err, "claims stay readable after expiry")
	assert.Equal(t, clk.now, exp)
}

func TestJWTCodec_ValidateRefreshToken(t *testing.T) {
	codec, clk := newTestCodec(t)

	pair, err := codec.IssueTokenPair("a@x.com", entity.RoleUser)
	require.NoError(t, err)

	assert.True(t, codec.ValidateRefreshToken(pair.RefreshToken))
	assert.False(t, codec.ValidateRefreshToken(pair.AccessToken), "access token is not a refresh token")
	assert.False(t, codec.ValidateRefreshToken("garbage"))

	clk.advance(7 * 24 * time.Hour)
	assert.False(t, codec.ValidateRefreshToken(pair.RefreshToken))
}

func TestJWTCodec_ValidateAccessTokenRejectsOtherKinds(t *testing.T) {
	codec, _ := newTestCodec(t)

	pair, err := codec.IssueTokenPair("a@x.com", entity.RoleUser)
	require.NoError(t, err)
	reset, err := codec.IssueResetToken("a@x.com", "fp")
	require.NoError(t, err)

	_, err = codec.ValidateAccessToken(pair.RefreshToken)
	assert.True(t, errors.Is(err, service.ErrTokenKindMismatch))

	_, err = codec.ValidateAccessToken(reset)
	assert.True(t, errors.Is(err, service.ErrTokenKindMismatch))

	claims, err := codec.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Subject)
}

func TestJWTCodec_ResetToken(t *testing.T) {
	codec, clk := newTestCodec(t)

	token, err := codec.IssueResetToken("a@x.com", "abc123")
	require.NoError(t, err)

	claims, err := codec.ValidateResetToken(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Subject)
	assert.Equal(t, "abc123", claims.Fingerprint)
	assert.Equal(t, entity.TokenKindReset, claims.Kind)

	clk.advance(10 * time.Minute)
	_, err = codec.ValidateResetToken(token)
	assert.True(t, errors.Is(err, service.ErrTokenExpired))
}

func TestNewJWTCodec_Config(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{
		AccessTTL:  15 * time.Minute,
		RefreshTTL: time.Hour,
		ResetTTL:   time.Minute,
	}}

	_, err := NewJWTCodec(cfg, &stubClock{})
	assert.Error(t, err, "empty secret must be rejected")

	cfg.SecretKey.Signing = testSecret
	codec, err := NewJWTCodec(cfg, &stubClock{})
	require.NoError(t, err)
	assert.NotNil(t, codec)

	cfg.Auth.AccessTTL = 2 * time.Hour
	_, err = NewJWTCodec(cfg, &stubClock{})
	assert.Error(t, err, "access lifetime must be shorter than refresh lifetime")
}
