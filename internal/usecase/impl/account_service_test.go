package impl

import (
	"context"
	"testing"

	"taskman/config"
	"taskman/internal/domain/entity"
	domainerrors "taskman/internal/domain/errors"
	mockRepo "taskman/internal/mocks/repository"
	mockSvc "taskman/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAccountService(t *testing.T, mutate func(admin *config.AdminConfig)) (*accountMaintenanceService, *mockRepo.MockUserRepository, *mockSvc.MockPasswordHasher) {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	clock := mockSvc.NewMockClock(t)
	clock.EXPECT().Now().Return(testNow).Maybe()

	cfg := newTestConfig()
	if mutate != nil {
		mutate(&cfg.Auth.Admin)
	}

	srv := NewAccountMaintenanceService(AccountMaintenanceServiceParams{
		UserRepo: userRepo,
		Hasher:   hasher,
		Clock:    clock,
		Config:   cfg,
		Logger:   newDiscardLogger(),
	})

	return srv.(*accountMaintenanceService), userRepo, hasher
}

func TestAccountMaintenanceService_PurgeUnverified(t *testing.T) {
	srv, userRepo, _ := createTestAccountService(t, nil)

	ctx := context.Background()
	userRepo.EXPECT().DeleteUnverifiedOlderThan(ctx, testNow.Add(-srv.retention)).Return(3, nil)

	deleted, err := srv.PurgeUnverified(ctx)

	require.NoError(t, err)
	assert.EqualValues(t, 3, deleted)
}

func TestAccountMaintenanceService_PurgeUnverified_Error(t *testing.T) {
	srv, userRepo, _ := createTestAccountService(t, nil)

	ctx := context.Background()
	userRepo.EXPECT().DeleteUnverifiedOlderThan(ctx, mock.Anything).Return(0, errors.New("db down"))

	_, err := srv.PurgeUnverified(ctx)

	assert.Error(t, err)
}

func TestAccountMaintenanceService_SeedAdmin_Creates(t *testing.T) {
	srv, userRepo, hasher := createTestAccountService(t, nil)

	ctx := context.Background()
	userRepo.EXPECT().ExistsByEmail(ctx, "admin@x.com").Return(false, nil)
	hasher.EXPECT().Hash("Admin123!").Return("hashed_admin", nil)
	userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Email == "admin@x.com" &&
				u.Role == entity.RoleAdmin &&
				u.IsVerified &&
				u.PasswordHash == "hashed_admin" &&
				u.ConfirmationCode == nil
		})).
		Return(nil)

	require.NoError(t, srv.SeedAdmin(ctx))
}

func TestAccountMaintenanceService_SeedAdmin_Existing(t *testing.T) {
	srv, userRepo, _ := createTestAccountService(t, nil)

	ctx := context.Background()
	userRepo.EXPECT().ExistsByEmail(ctx, "admin@x.com").Return(true, nil)

	require.NoError(t, srv.SeedAdmin(ctx))
}

func TestAccountMaintenanceService_SeedAdmin_LostRace(t *testing.T) {
	srv, userRepo, hasher := createTestAccountService(t, nil)

	ctx := context.Background()
	userRepo.EXPECT().ExistsByEmail(ctx, "admin@x.com").Return(false, nil)
	hasher.EXPECT().Hash("Admin123!").Return("hashed_admin", nil)
	userRepo.EXPECT().Create(ctx, mock.Anything).Return(domainerrors.ErrUserAlreadyExists)

	require.NoError(t, srv.SeedAdmin(ctx))
}

func TestAccountMaintenanceService_SeedAdmin_Disabled(t *testing.T) {
	t.Run("no email", func(t *testing.T) {
		srv, _, _ := createTestAccountService(t, func(admin *config.AdminConfig) {
			admin.Email = ""
		})

		require.NoError(t, srv.SeedAdmin(context.Background()))
	})

	t.Run("no password", func(t *testing.T) {
		srv, _, _ := createTestAccountService(t, func(admin *config.AdminConfig) {
			admin.Password = ""
		})

		require.NoError(t, srv.SeedAdmin(context.Background()))
	})
}
