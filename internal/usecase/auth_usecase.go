// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"taskman/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created, still unverified account.
type RegisterOutput struct {
	User *entity.User
}

// AuthUsecase covers registration, login and the token lifecycle.
type AuthUsecase interface {
	// Register creates an unverified account and mails it a confirmation code.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	// VerifyEmail confirms an account with the code it was sent.
	VerifyEmail(ctx context.Context, email, code string) error
	// ResendCode issues and mails a fresh confirmation code.
	ResendCode(ctx context.Context, email string) error

	Login(ctx context.Context, email, password string) (*entity.TokenPair, error)
	RefreshAccessToken(ctx context.Context, refreshToken string) (*entity.TokenPair, error)
	Logout(ctx context.Context, accessToken string) error

	// Authenticate resolves the caller behind a bearer access token.
	Authenticate(ctx context.Context, accessToken string) (*entity.Caller, error)
}
