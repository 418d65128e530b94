package scheduler

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"taskman/config"
	mockUsecase "taskman/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(schedule string) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{SweepSchedule: schedule},
	}
}

func TestNewScheduler_RegistersSweep(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	accountUC := mockUsecase.NewMockAccountMaintenanceUsecase(t)

	d, err := NewScheduler(SchedulerParams{
		Lc:        lc,
		Cfg:       newTestConfig("@every 1h"),
		Logger:    newDiscardLogger(),
		AccountUC: accountUC,
	})
	require.NoError(t, err)

	s, ok := d.(*scheduler)
	require.True(t, ok)
	assert.Len(t, s.cron.Entries(), 1)

	lc.RequireStart()
	require.NoError(t, d.Serve(context.Background()))
	lc.RequireStop()
}

func TestNewScheduler_InvalidSchedule(t *testing.T) {
	lc := fxtest.NewLifecycle(t)

	_, err := NewScheduler(SchedulerParams{
		Lc:        lc,
		Cfg:       newTestConfig("every now and then"),
		Logger:    newDiscardLogger(),
		AccountUC: mockUsecase.NewMockAccountMaintenanceUsecase(t),
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid sweep schedule")
}

func TestScheduler_SweepUnverified(t *testing.T) {
	t.Run("purges stale accounts", func(t *testing.T) {
		accountUC := mockUsecase.NewMockAccountMaintenanceUsecase(t)
		accountUC.EXPECT().PurgeUnverified(mock.Anything).Return(int64(3), nil).Once()

		newScheduler(accountUC, newDiscardLogger()).sweepUnverified()
	})

	t.Run("failure is swallowed", func(t *testing.T) {
		accountUC := mockUsecase.NewMockAccountMaintenanceUsecase(t)
		accountUC.EXPECT().PurgeUnverified(mock.Anything).Return(int64(0), errors.New("db down")).Once()

		assert.NotPanics(t, func() {
			newScheduler(accountUC, newDiscardLogger()).sweepUnverified()
		})
	})

	t.Run("sweep runs with a deadline", func(t *testing.T) {
		accountUC := mockUsecase.NewMockAccountMaintenanceUsecase(t)
		accountUC.EXPECT().PurgeUnverified(mock.Anything).
			RunAndReturn(func(ctx context.Context) (int64, error) {
				deadline, ok := ctx.Deadline()
				assert.True(t, ok)
				assert.WithinDuration(t, time.Now().Add(sweepTimeout), deadline, 5*time.Second)

				return 0, nil
			}).Once()

		newScheduler(accountUC, newDiscardLogger()).sweepUnverified()
	})
}

func TestScheduler_RunsOnSchedule(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	accountUC := mockUsecase.NewMockAccountMaintenanceUsecase(t)

	ran := make(chan struct{}, 1)
	accountUC.EXPECT().PurgeUnverified(mock.Anything).
		RunAndReturn(func(context.Context) (int64, error) {
			select {
			case ran <- struct{}{}:
			default:
			}

			return 0, nil
		}).Maybe()

	d, err := NewScheduler(SchedulerParams{
		Lc:        lc,
		Cfg:       newTestConfig("@every 1s"),
		Logger:    newDiscardLogger(),
		AccountUC: accountUC,
	})
	require.NoError(t, err)

	lc.RequireStart()
	require.NoError(t, d.Serve(context.Background()))

	select {
	case <-ran:
	case <-time.After(5 * time.Second):
		t.Fatal("sweep did not run")
	}

	lc.RequireStop()
}
