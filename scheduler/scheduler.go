package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/nine-hub/api/datastore"
)

const (
	DefaultSchedule = "0 * * * *"
	DefaultGrace    = 72 * time.Hour
)

// Scheduler expires subscriptions whose paid period ended more than Grace ago,
// in case the deactivation webhook never arrived
type Scheduler struct {
	SubscriptionRepo datastore.SubscriptionRepository
	Schedule         string
	Grace            time.Duration

	logger  *zap.Logger
	cron    *cron.Cron
	entryID cron.EntryID
	now     func() time.Time
}

func NewScheduler(repo datastore.SubscriptionRepository, schedule string, grace time.Duration, logger *zap.Logger) (*Scheduler, error) {
	if schedule == "" {
		schedule = DefaultSchedule
	}
	if grace <= 0 {
		grace = DefaultGrace
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if _, err := cron.ParseStandard(schedule); err != nil {
		return nil, fmt.Errorf("invalid expiry schedule %q: %w", schedule, err)
	}

	return &Scheduler{
		SubscriptionRepo: repo,
		Schedule:         schedule,
		Grace:            grace,
		logger:           logger,
		cron:             cron.New(),
		now:              time.Now,
	}, nil
}

// Start registers the sweep and starts the cron engine
func (s *Scheduler) Start() error {
	id, err := s.cron.AddFunc(s.Schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if _, err := s.ExpireLapsed(ctx); err != nil {
			s.logger.Error("subscription expiry sweep failed", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to add expiry job: %w", err)
	}
	s.entryID = id
	s.cron.Start()

	s.logger.Info("scheduler started",
		zap.String("schedule", s.Schedule),
		zap.Duration("grace", s.Grace),
		zap.Time("next", s.cron.Entry(id).Next))
	return nil
}

// Stop waits for a running sweep or until ctx is done
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		s.logger.Info("scheduler stopped")
	case <-ctx.Done():
		s.logger.Warn("scheduler shutdown timeout, sweep may still be running")
	}
}

// ExpireLapsed runs one sweep and returns how many subscriptions were expired
func (s *Scheduler) ExpireLapsed(ctx context.Context) (int64, error) {
	now := s.now().UTC()
	cutoff := now.Add(-s.Grace)

	n, err := s.SubscriptionRepo.ExpireLapsed(ctx, cutoff, now)
	if err != nil {
		return 0, err
	}
	s.logger.Info("expired lapsed subscriptions", zap.Int64("count", n), zap.Time("cutoff", cutoff))
	return n, nil
}
