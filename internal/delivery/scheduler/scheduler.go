// Package scheduler runs account housekeeping on a cron schedule.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"taskman/config"
	"taskman/internal/delivery"
	"taskman/internal/domain/lifecycle"
	"taskman/internal/errors"
	"taskman/internal/usecase"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

// sweepTimeout bounds one unverified-account sweep.
const sweepTimeout = time.Minute

type scheduler struct {
	cron      *cron.Cron
	accountUC usecase.AccountMaintenanceUsecase
	logger    *slog.Logger
}

// SchedulerParams holds dependencies for the scheduler, injected by Fx.
type SchedulerParams struct {
	fx.In

	Lc        fx.Lifecycle
	Cfg       *config.Config
	Logger    *slog.Logger
	AccountUC usecase.AccountMaintenanceUsecase
}

// NewScheduler registers the sweep job. An unparsable schedule fails startup.
func NewScheduler(params SchedulerParams) (delivery.Delivery, error) {
	s := newScheduler(params.AccountUC, params.Logger)
	if _, err := s.cron.AddFunc(params.Cfg.Auth.SweepSchedule, s.sweepUnverified); err != nil {
		return nil, errors.Wrapf(err, "invalid sweep schedule %q", params.Cfg.Auth.SweepSchedule)
	}

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s, nil
}

func newScheduler(accountUC usecase.AccountMaintenanceUsecase, logger *slog.Logger) *scheduler {
	cronLogger := cron.PrintfLogger(slog.NewLogLogger(logger.Handler(), slog.LevelWarn))

	return &scheduler{
		cron: cron.New(cron.WithChain(
			cron.Recover(cronLogger),
			cron.SkipIfStillRunning(cronLogger),
		)),
		accountUC: accountUC,
		logger:    logger,
	}
}

// Serve starts the cron loop in the background and returns.
func (s *scheduler) Serve(ctx context.Context) error {
	s.logger.Info("Starting scheduler", slog.Int("jobs", len(s.cron.Entries())))
	s.cron.Start()

	return nil
}

// sweepUnverified deletes stale unverified accounts. Failures are logged and
// left for the next tick.
func (s *scheduler) sweepUnverified() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	deleted, err := s.accountUC.PurgeUnverified(ctx)
	if err != nil {
		s.logger.Error("Unverified account sweep failed", slog.Any("error", err))

		return
	}

	s.logger.Debug("Unverified account sweep finished", slog.Int64("deleted", deleted))
}

func (s *scheduler) stop(ctx context.Context) error {
	s.logger.Info("Shutting down scheduler")

	stopCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	select {
	case <-s.cron.Stop().Done():
		return nil
	case <-stopCtx.Done():
		return errors.Wrap(stopCtx.Err(), "scheduler jobs did not finish")
	}
}
