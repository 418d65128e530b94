package impl

import (
	"context"
	"log/slog"
	"time"

	"taskman/config"
	"taskman/internal/domain/entity"
	domainerrors "taskman/internal/domain/errors"
	"taskman/internal/domain/repository"
	"taskman/internal/domain/service"
	"taskman/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountMaintenanceService implements the AccountMaintenanceUsecase interface.
type accountMaintenanceService struct {
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	clock     service.Clock
	retention time.Duration
	admin     config.AdminConfig
	logger    *slog.Logger
}

// AccountMaintenanceServiceParams holds dependencies for AccountMaintenanceService, injected by Fx.
type AccountMaintenanceServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
	Clock    service.Clock
	Config   *config.Config
	Logger   *slog.Logger
}

// NewAccountMaintenanceService is the constructor for accountMaintenanceService.
func NewAccountMaintenanceService(params AccountMaintenanceServiceParams) usecase.AccountMaintenanceUsecase {
	srv := &accountMaintenanceService{
		userRepo: params.UserRepo,
		hasher:   params.Hasher,
		clock:    params.Clock,
		logger:   params.Logger,
	}
	if params.Config != nil && params.Config.Auth != nil {
		srv.retention = params.Config.Auth.UnverifiedRetention
		srv.admin = params.Config.Auth.Admin
	}

	return srv
}

// PurgeUnverified removes, in one statement, every unverified account older than the retention window.
func (srv *accountMaintenanceService) PurgeUnverified(ctx context.Context) (int64, error) {
	cutoff := srv.clock.Now().Add(-srv.retention)

	deleted, err := srv.userRepo.DeleteUnverifiedOlderThan(ctx, cutoff)
	if err != nil {
		srv.logger.Error("Failed to purge unverified accounts", slog.Any("error", err))

		return 0, errors.Wrap(err, "failed to purge unverified accounts")
	}
	srv.logger.Info("Purged unverified accounts", slog.Int64("deleted", deleted), slog.Time("cutoff", cutoff))

	return deleted, nil
}

// SeedAdmin creates the configured administrator once. The account is verified and skips the password policy.
func (srv *accountMaintenanceService) SeedAdmin(ctx context.Context) error {
	if srv.admin.Email == "" {
		srv.logger.Debug("Admin seeding disabled")

		return nil
	}
	if srv.admin.Password == "" {
		srv.logger.Warn("Admin email configured without a password, skipping seeding", slog.String("email", srv.admin.Email))

		return nil
	}

	exists, err := srv.userRepo.ExistsByEmail(ctx, srv.admin.Email)
	if err != nil {
		return errors.Wrap(err, "failed to check admin account")
	}
	if exists {
		srv.logger.Info("Admin account already exists", slog.String("email", srv.admin.Email))

		return nil
	}

	hashedPassword, err := srv.hasher.Hash(srv.admin.Password)
	if err != nil {
		return domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash admin password")
	}

	now := srv.clock.Now()
	admin := &entity.User{
		Email:        srv.admin.Email,
		FirstName:    srv.admin.FirstName,
		LastName:     srv.admin.LastName,
		PasswordHash: hashedPassword,
		Role:         entity.RoleAdmin,
		IsVerified:   true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := srv.userRepo.Create(ctx, admin); err != nil {
		if errors.Is(err, domainerrors.ErrUserAlreadyExists) {
			return nil
		}

		return errors.Wrap(err, "failed to create admin account")
	}
	srv.logger.Info("Admin account created", slog.String("email", admin.Email))

	return nil
}
