package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"taskman/config"
	"taskman/internal/domain/repository"
	mockRepo "taskman/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

var testNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:          4,
			AccessTTL:           15 * time.Minute,
			RefreshTTL:          7 * 24 * time.Hour,
			ResetTTL:            10 * time.Minute,
			CodeTTL:             15 * time.Minute,
			UnverifiedRetention: 24 * time.Hour,
			Admin: config.AdminConfig{
				Email:     "admin@x.com",
				Password:  "Admin123!",
				FirstName: "Ada",
				LastName:  "Admin",
			},
		},
		PasswordPolicy: &config.PasswordPolicyConfig{
			MinLength:        8,
			MaxLength:        64,
			RequireUppercase: true,
			RequireLowercase: true,
			RequireNumbers:   true,
		},
	}
	cfg.SecretKey.Signing = "test_signing_secret_key_very_long_for_testing"

	return cfg
}

// expectTx makes txManager run the callback against factory and return its result.
func expectTx(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func strPtr(s string) *string {
	return &s
}

func timePtr(t time.Time) *time.Time {
	return &t
}
