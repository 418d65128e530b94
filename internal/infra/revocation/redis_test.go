package revocation

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	s := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return s, client
}

func TestRedisRegistry_RevokedUntilTTL(t *testing.T) {
	s, client := newTestRedis(t)
	clk := newStubClock()
	registry := NewRedisRegistry(client, clk, "test:")
	ctx := context.Background()

	require.NoError(t, registry.Add(ctx, "token-a", clk.Now().Add(10*time.Minute)))

	key := "test:" + tokenKey("token-a")
	assert.True(t, s.Exists(key))
	assert.Equal(t, 10*time.Minute, s.TTL(key))

	revoked, err := registry.IsRevoked(ctx, "token-a")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = registry.IsRevoked(ctx, "token-b")
	require.NoError(t, err)
	assert.False(t, revoked)

	s.FastForward(10*time.Minute + time.Second)
	revoked, err = registry.IsRevoked(ctx, "token-a")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRedisRegistry_AddPastExpiryIsNoop(t *testing.T) {
	s, client := newTestRedis(t)
	clk := newStubClock()
	registry := NewRedisRegistry(client, clk, "")

	require.NoError(t, registry.Add(context.Background(), "old", clk.Now().Add(-time.Minute)))

	assert.Empty(t, s.Keys())
}

func TestRedisRegistry_DefaultPrefix(t *testing.T) {
	s, client := newTestRedis(t)
	clk := newStubClock()
	registry := NewRedisRegistry(client, clk, "")

	require.NoError(t, registry.Add(context.Background(), "tok", clk.Now().Add(time.Minute)))

	assert.True(t, s.Exists(defaultRedisPrefix+tokenKey("tok")))
}

func TestRedisRegistry_Claim(t *testing.T) {
	s, client := newTestRedis(t)
	clk := newStubClock()
	registry := NewRedisRegistry(client, clk, "test:")
	ctx := context.Background()

	claimed, err := registry.Claim(ctx, "tok", clk.Now().Add(5*time.Minute))
	require.NoError(t, err)
	assert.True(t, claimed)
	assert.Equal(t, 5*time.Minute, s.TTL("test:"+tokenKey("tok")))

	claimed, err = registry.Claim(ctx, "tok", clk.Now().Add(5*time.Minute))
	require.NoError(t, err)
	assert.False(t, claimed)

	s.FastForward(5*time.Minute + time.Second)
	claimed, err = registry.Claim(ctx, "tok", clk.Now().Add(5*time.Minute))
	require.NoError(t, err)
	assert.True(t, claimed, "the key expired with its TTL")
}

func TestRedisRegistry_ClaimAfterAddFails(t *testing.T) {
	_, client := newTestRedis(t)
	clk := newStubClock()
	registry := NewRedisRegistry(client, clk, "")
	ctx := context.Background()

	require.NoError(t, registry.Add(ctx, "tok", clk.Now().Add(time.Minute)))

	claimed, err := registry.Claim(ctx, "tok", clk.Now().Add(time.Minute))
	require.NoError(t, err)
	assert.False(t, claimed)
}

func TestRedisRegistry_ErrorsPropagate(t *testing.T) {
	s, client := newTestRedis(t)
	clk := newStubClock()
	registry := NewRedisRegistry(client, clk, "")
	s.Close()

	_, err := registry.IsRevoked(context.Background(), "tok")
	assert.Error(t, err)

	err = registry.Add(context.Background(), "tok", clk.Now().Add(time.Minute))
	assert.Error(t, err)

	claimed, err := registry.Claim(context.Background(), "tok", clk.Now().Add(time.Minute))
	assert.Error(t, err)
	assert.False(t, claimed)
}
