// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
	"time"

	"taskman/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository is the credential store. Every mutating method touches a fixed
// column set in a single statement so concurrent writers never lose a field.
type UserRepository interface {
	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// ExistsByEmail reports whether an account is registered under email.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// UpdateConfirmationCode replaces the active code and its issue time.
	UpdateConfirmationCode(ctx context.Context, email, code string, sentAt time.Time) error

	// MarkVerified sets the verification flag and clears the active code.
	MarkVerified(ctx context.Context, email string) error

	// UpdatePassword stores a new password hash and clears the active code.
	UpdatePassword(ctx context.Context, email, passwordHash string) error

	// DeleteUnverifiedOlderThan removes unverified accounts registered before cutoff
	// and returns how many rows were deleted.
	DeleteUnverifiedOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
