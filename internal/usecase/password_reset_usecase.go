package usecase

import "context"

// UpdatePasswordInput carries the final step of a password reset.
type UpdatePasswordInput struct {
	Email      string
	ResetToken string
	Password   string
}

// PasswordResetUsecase drives the forgot, verify and update password sequence.
type PasswordResetUsecase interface {
	ForgotPassword(ctx context.Context, email string) error
	// VerifyResetCode checks the mailed code and returns a short-lived reset token.
	VerifyResetCode(ctx context.Context, email, code string) (string, error)
	UpdatePassword(ctx context.Context, input *UpdatePasswordInput) error
}
