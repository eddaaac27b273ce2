package scheduler

import (
	"context"
	"log/slog"
	"time"

	portssvc "github.com/ledgerlogic/ledgerlogic/internal/core/ports/services"
	"github.com/robfig/cron/v3"
)

// Scheduler runs periodic maintenance jobs.
type Scheduler struct {
	cron        *cron.Cron
	userService portssvc.UserLifecycleSvc
	logger      *slog.Logger
}

// New creates a scheduler over the given user service.
func New(userService portssvc.UserLifecycleSvc, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		cron:        cron.New(),
		userService: userService,
		logger:      logger,
	}
}

// Start registers the suspension sweep at the given cron spec and starts the
// scheduler.
func (s *Scheduler) Start(spec string) error {
	_, err := s.cron.AddFunc(spec, s.sweepSuspensions)
	if err != nil {
		return err
	}
	s.cron.Start()
	s.logger.Info("Scheduler started", slog.String("suspension_sweep_spec", spec))
	return nil
}

// Stop stops the scheduler and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Scheduler stopped")
}

// sweepSuspensions lifts suspension windows that have already ended, so users
// regain access without waiting for an admin.
func (s *Scheduler) sweepSuspensions() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	lifted, err := s.userService.LiftExpiredSuspensions(ctx, time.Now())
	if err != nil {
		s.logger.Error("Suspension sweep failed", slog.String("error", err.Error()))
		return
	}
	if lifted > 0 {
		s.logger.Info("Suspension sweep completed", slog.Int64("lifted", lifted))
	}
}
