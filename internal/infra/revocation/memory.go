// Package revocation implements the token revocation registry used by logout.
package revocation

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"sync"
	"time"

	"taskman/internal/domain/service"
)

const defaultPurgeInterval = time.Minute

// tokenKey digests the bearer token so raw credentials are never kept at rest.
func tokenKey(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}

// MemoryRegistry is a process-local registry. Entries lapse at their stored
// expiry and are dropped by a background purge loop.
type MemoryRegistry struct {
	mu            sync.RWMutex
	entries       map[string]time.Time
	clock         service.Clock
	logger        *slog.Logger
	purgeInterval time.Duration
	stopPurge     chan struct{}
	stopOnce      sync.Once
}

// NewMemoryRegistry creates a registry and starts its purge loop.
// A non-positive purgeInterval uses one minute.
func NewMemoryRegistry(clock service.Clock, purgeInterval time.Duration, logger *slog.Logger) *MemoryRegistry {
	if purgeInterval <= 0 {
		purgeInterval = defaultPurgeInterval
	}
	if logger == nil {
		logger = slog.Default()
	}

	r := &MemoryRegistry{
		entries:       make(map[string]time.Time),
		clock:         clock,
		logger:        logger,
		purgeInterval: purgeInterval,
		stopPurge:     make(chan struct{}),
	}

	go r.purgeLoop()

	return r
}

// Add records token until expiresAt. Already-expired tokens are ignored.
func (r *MemoryRegistry) Add(_ context.Context, token string, expiresAt time.Time) error {
	if !expiresAt.After(r.clock.Now()) {
		return nil
	}

	key := tokenKey(token)

	r.mu.Lock()
	defer r.mu.Unlock()

	if current, ok := r.entries[key]; !ok || expiresAt.After(current) {
		r.entries[key] = expiresAt
	}

	return nil
}

// Claim checks and records token under a single write lock.
func (r *MemoryRegistry) Claim(_ context.Context, token string, expiresAt time.Time) (bool, error) {
	now := r.clock.Now()
	if !expiresAt.After(now) {
		return true, nil
	}

	key := tokenKey(token)

	r.mu.Lock()
	defer r.mu.Unlock()

	if current, ok := r.entries[key]; ok && now.Before(current) {
		return false, nil
	}
	r.entries[key] = expiresAt

	return true, nil
}

// IsRevoked reports whether token is held and its stored expiry is still ahead.
func (r *MemoryRegistry) IsRevoked(_ context.Context, token string) (bool, error) {
	key := tokenKey(token)

	r.mu.RLock()
	expiresAt, ok := r.entries[key]
	r.mu.RUnlock()

	return ok && r.clock.Now().Before(expiresAt), nil
}

// Purge drops every entry whose expiry has passed and returns how many were removed.
func (r *MemoryRegistry) Purge() int {
	now := r.clock.Now()

	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for key, expiresAt := range r.entries {
		if !now.Before(expiresAt) {
			delete(r.entries, key)
			removed++
		}
	}

	return removed
}

// Len returns the number of entries currently held, lapsed or not.
func (r *MemoryRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.entries)
}

// Stop ends the purge loop. It is safe to call more than once.
func (r *MemoryRegistry) Stop() {
	r.stopOnce.Do(func() {
		close(r.stopPurge)
	})
}

func (r *MemoryRegistry) purgeLoop() {
	ticker := time.NewTicker(r.purgeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if removed := r.Purge(); removed > 0 {
				r.logger.Debug("Purged lapsed revocation entries", slog.Int("removed", removed))
			}
		case <-r.stopPurge:
			return
		}
	}
}
