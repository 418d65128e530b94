package service

import (
	"context"
	"time"
)

// RevocationRegistry remembers explicitly invalidated tokens until they expire.
// Implementations must be safe for concurrent use.
type RevocationRegistry interface {
	// Add records token as revoked until expiresAt. It is a no-op when expiresAt has passed.
	Add(ctx context.Context, token string, expiresAt time.Time) error

	// Claim revokes token unless it is already revoked and reports whether this
	// call did so. Concurrent claims on the same token succeed at most once.
	// A token whose expiresAt has passed is reported as claimed without being stored.
	Claim(ctx context.Context, token string, expiresAt time.Time) (bool, error)

	// IsRevoked reports whether token was added and has not yet reached its stored expiry.
	IsRevoked(ctx context.Context, token string) (bool, error)
}
