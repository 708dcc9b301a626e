package app

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"cftracker/internal/domain/ports"
)

const (
	runTimeout  = 2 * time.Minute
	stopTimeout = 5 * time.Second
)

// Job is a unit of scheduled work.
type Job interface {
	Run(ctx context.Context) error
}

// App manages the lifecycle of the digest scheduler.
type App struct {
	cron     *cron.Cron
	job      Job
	logger   ports.Logger
	schedule string
}

// New constructs an App instance.
func New(job Job, logger ports.Logger, schedule string) *App {
	return &App{
		cron:     cron.New(),
		job:      job,
		logger:   logger,
		schedule: schedule,
	}
}

// RunOnce executes the job a single time with the per-run timeout.
func (a *App) RunOnce(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, runTimeout)
	defer cancel()
	return a.job.Run(ctx)
}

// Run executes the job once immediately and then according to the cron schedule
// until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	if err := a.scheduleJob(); err != nil {
		return err
	}

	a.logger.Info(ctx, "running first digest immediately")
	if err := a.RunOnce(ctx); err != nil {
		a.logger.Error(ctx, "initial digest run failed", "error", err)
	}

	a.logger.Info(ctx, "starting scheduler", "cron", a.schedule)
	a.cron.Start()

	<-ctx.Done()
	stopCtx := a.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(stopTimeout):
	}
	a.logger.Info(context.Background(), "scheduler stopped")
	return nil
}

func (a *App) scheduleJob() error {
	_, err := a.cron.AddFunc(a.schedule, func() {
		if err := a.RunOnce(context.Background()); err != nil {
			a.logger.Error(context.Background(), "scheduled digest run failed", "error", err)
		}
	})
	return err
}
