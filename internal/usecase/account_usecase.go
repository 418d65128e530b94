package usecase

import "context"

// AccountMaintenanceUsecase holds account housekeeping that runs outside request handling.
type AccountMaintenanceUsecase interface {
	// PurgeUnverified deletes unverified accounts past the retention window.
	PurgeUnverified(ctx context.Context) (int64, error)
	// SeedAdmin creates the configured administrator account when it is missing.
	SeedAdmin(ctx context.Context) error
}
