package revocation

import (
	"context"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"taskman/internal/domain/service"
)

const defaultRedisPrefix = "taskman:revoked:"

// RedisRegistry stores revocations in Redis and lets native key TTLs expire them.
type RedisRegistry struct {
	client *redis.Client
	clock  service.Clock
	prefix string
}

// NewRedisRegistry wraps client. An empty prefix uses the default namespace.
func NewRedisRegistry(client *redis.Client, clock service.Clock, prefix string) *RedisRegistry {
	if prefix == "" {
		prefix = defaultRedisPrefix
	}

	return &RedisRegistry{
		client: client,
		clock:  clock,
		prefix: prefix,
	}
}

// Add sets the token key with a TTL equal to the time left before expiresAt.
func (r *RedisRegistry) Add(ctx context.Context, token string, expiresAt time.Time) error {
	ttl := expiresAt.Sub(r.clock.Now())
	if ttl <= 0 {
		return nil
	}

	value := strconv.FormatInt(expiresAt.UnixMilli(), 10)
	if err := r.client.Set(ctx, r.prefix+tokenKey(token), value, ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to store revoked token")
	}

	return nil
}

// Claim sets the token key only if it is absent (SET NX).
func (r *RedisRegistry) Claim(ctx context.Context, token string, expiresAt time.Time) (bool, error) {
	ttl := expiresAt.Sub(r.clock.Now())
	if ttl <= 0 {
		return true, nil
	}

	value := strconv.FormatInt(expiresAt.UnixMilli(), 10)
	claimed, err := r.client.SetNX(ctx, r.prefix+tokenKey(token), value, ttl).Result()
	if err != nil {
		return false, errors.Wrap(err, "failed to claim token")
	}

	return claimed, nil
}

// IsRevoked reports whether the token key still exists.
func (r *RedisRegistry) IsRevoked(ctx context.Context, token string) (bool, error) {
	n, err := r.client.Exists(ctx, r.prefix+tokenKey(token)).Result()
	if err != nil {
		return false, errors.Wrap(err, "failed to look up revoked token")
	}

	return n > 0, nil
}
