package revocation

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClock struct {
	mu  sync.Mutex
	now time.Time
}

func newStubClock() *stubClock {
	return &stubClock{now: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *stubClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *stubClock) advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestMemoryRegistry_RevokedUntilExpiry(t *testing.T) {
	clk := newStubClock()
	registry := NewMemoryRegistry(clk, time.Hour, newDiscardLogger())
	defer registry.Stop()
	ctx := context.Background()

	require.NoError(t, registry.Add(ctx, "token-a", clk.Now().Add(10*time.Minute)))

	revoked, err := registry.IsRevoked(ctx, "token-a")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = registry.IsRevoked(ctx, "token-b")
	require.NoError(t, err)
	assert.False(t, revoked, "a different token is unaffected")

	clk.advance(10*time.Minute - time.Nanosecond)
	revoked, _ = registry.IsRevoked(ctx, "token-a")
	assert.True(t, revoked, "still revoked right before expiry")

	clk.advance(time.Nanosecond)
	revoked, _ = registry.IsRevoked(ctx, "token-a")
	assert.False(t, revoked, "entry lapses at its expiry")
}

func TestMemoryRegistry_AddPastExpiryIsNoop(t *testing.T) {
	clk := newStubClock()
	registry := NewMemoryRegistry(clk, time.Hour, newDiscardLogger())
	defer registry.Stop()
	ctx := context.Background()

	require.NoError(t, registry.Add(ctx, "old", clk.Now().Add(-time.Second)))
	require.NoError(t, registry.Add(ctx, "now", clk.Now()))

	assert.Equal(t, 0, registry.Len())
}

func TestMemoryRegistry_AddKeepsLatestExpiry(t *testing.T) {
	clk := newStubClock()
	registry := NewMemoryRegistry(clk, time.Hour, newDiscardLogger())
	defer registry.Stop()
	ctx := context.Background()

	require.NoError(t, registry.Add(ctx, "tok", clk.Now().Add(time.Hour)))
	require.NoError(t, registry.Add(ctx, "tok", clk.Now().Add(time.Minute)))

	clk.advance(30 * time.Minute)
	revoked, _ := registry.IsRevoked(ctx, "tok")
	assert.True(t, revoked)
}

func TestMemoryRegistry_Purge(t *testing.T) {
	clk := newStubClock()
	registry := NewMemoryRegistry(clk, time.Hour, newDiscardLogger())
	defer registry.Stop()
	ctx := context.Background()

	require.NoError(t, registry.Add(ctx, "short", clk.Now().Add(time.Minute)))
	require.NoError(t, registry.Add(ctx, "long", clk.Now().Add(time.Hour)))

	clk.advance(2 * time.Minute)
	assert.Equal(t, 1, registry.Purge())
	assert.Equal(t, 1, registry.Len())

	revoked, _ := registry.IsRevoked(ctx, "long")
	assert.True(t, revoked)
}

func TestMemoryRegistry_ConcurrentAccess(t *testing.T) {
	clk := newStubClock()
	registry := NewMemoryRegistry(clk, time.Hour, newDiscardLogger())
	defer registry.Stop()
	ctx := context.Background()

	const workers = 32
	const perWorker = 100

	var wg sync.WaitGroup
	for w := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range perWorker {
				token := fmt.Sprintf("w%d-t%d", w, i)
				_ = registry.Add(ctx, token, clk.Now().Add(time.Hour))
				_, _ = registry.IsRevoked(ctx, token)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, workers*perWorker, registry.Len(), "no insert may be lost")
	for w := range workers {
		revoked, err := registry.IsRevoked(ctx, fmt.Sprintf("w%d-t%d", w, perWorker-1))
		require.NoError(t, err)
		assert.True(t, revoked)
	}
}

func TestMemoryRegistry_Claim(t *testing.T) {
	clk := newStubClock()
	registry := NewMemoryRegistry(clk, time.Hour, newDiscardLogger())
	defer registry.Stop()
	ctx := context.Background()

	claimed, err := registry.Claim(ctx, "tok", clk.Now().Add(time.Minute))
	require.NoError(t, err)
	assert.True(t, claimed)

	revoked, _ := registry.IsRevoked(ctx, "tok")
	assert.True(t, revoked, "a claimed token reads as revoked")

	claimed, err = registry.Claim(ctx, "tok", clk.Now().Add(time.Minute))
	require.NoError(t, err)
	assert.False(t, claimed, "a token is claimed once")

	clk.advance(time.Minute)
	claimed, _ = registry.Claim(ctx, "tok", clk.Now().Add(time.Minute))
	assert.True(t, claimed, "a lapsed entry no longer blocks")

	claimed, _ = registry.Claim(ctx, "old", clk.Now().Add(-time.Second))
	assert.True(t, claimed)
	revoked, _ = registry.IsRevoked(ctx, "old")
	assert.False(t, revoked, "expired tokens are not stored")
}

func TestMemoryRegistry_ConcurrentClaimHasOneWinner(t *testing.T) {
	clk := newStubClock()
	registry := NewMemoryRegistry(clk, time.Hour, newDiscardLogger())
	defer registry.Stop()
	ctx := context.Background()

	const workers = 32

	var (
		wg      sync.WaitGroup
		winners atomic.Int32
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if claimed, _ := registry.Claim(ctx, "shared", clk.Now().Add(time.Hour)); claimed {
				winners.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), winners.Load())
}

func TestMemoryRegistry_StopIsIdempotent(t *testing.T) {
	registry := NewMemoryRegistry(newStubClock(), 0, nil)

	registry.Stop()
	registry.Stop()
}

func TestTokenKey_DoesNotExposeToken(t *testing.T) {
	key := tokenKey("secret.jwt.value")

	assert.Len(t, key, 64)
	assert.NotContains(t, key, "secret")
	assert.Equal(t, key, tokenKey("secret.jwt.value"))
}
