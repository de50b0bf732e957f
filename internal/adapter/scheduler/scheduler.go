// Package scheduler runs the archival sweep on a cron schedule.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"foodshare/internal/core/port"
)

// Scheduler owns the cron runner for the daily sweep.
type Scheduler struct {
	cron     *cron.Cron
	sweeper  port.SweepUseCase
	logger   *slog.Logger
	schedule string
	ctx      context.Context
}

// New creates a scheduler evaluating schedule in loc. Runs that are still
// going when the next one fires are skipped, and a panicking run is
// recovered and logged.
func New(ctx context.Context, sweeper port.SweepUseCase, schedule string, loc *time.Location, logger *slog.Logger) *Scheduler {
	cronLogger := cron.PrintfLogger(slog.NewLogLogger(logger.Handler(), slog.LevelInfo))
	c := cron.New(
		cron.WithLocation(loc),
		cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
	)
	return &Scheduler{
		cron:     c,
		sweeper:  sweeper,
		logger:   logger,
		schedule: schedule,
		ctx:      ctx,
	}
}

// Start registers the sweep job and starts the cron runner.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, s.RunSweep); err != nil {
		s.logger.Error("failed to schedule sweep job", slog.Any("error", err))
		return err
	}
	s.logger.Info("scheduled sweep job", slog.String("schedule", s.schedule))
	s.cron.Start()
	return nil
}

// Stop stops the runner. The returned context is done once running jobs
// have finished.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}

// RunSweep performs one sweep. Failures are logged and the next scheduled
// run retries them.
func (s *Scheduler) RunSweep() {
	s.logger.Info("starting sweep job")
	res, err := s.sweeper.Run(s.ctx)
	if err != nil {
		s.logger.Error("sweep job failed", slog.Any("error", err),
			slog.Int("ads", res.Ads), slog.Int("posts", res.Posts))
		return
	}
	s.logger.Info("sweep job finished", slog.Int("ads", res.Ads), slog.Int("posts", res.Posts))
}
