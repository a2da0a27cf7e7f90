package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler manages periodic ingestion and rescore tasks.
type Scheduler struct {
	cron   *cron.Cron
	engine *Engine
	log    *slog.Logger
}

// NewScheduler creates a new Scheduler that runs engine tasks on a schedule.
func NewScheduler(
	eng *Engine,
	ingestionInterval time.Duration,
	rescoreInterval time.Duration,
	log *slog.Logger,
) (*Scheduler, error) {
	if ingestionInterval <= 0 || rescoreInterval <= 0 {
		return nil, fmt.Errorf(
			"scheduler intervals must be positive (ingestion %s, rescore %s)",
			ingestionInterval, rescoreInterval,
		)
	}

	c := cron.New()

	s := &Scheduler{
		cron:   c,
		engine: eng,
		log:    log,
	}

	if _, err := c.AddFunc(
		"@every "+ingestionInterval.String(),
		s.runIngestion,
	); err != nil {
		return nil, err
	}

	if _, err := c.AddFunc(
		"@every "+rescoreInterval.String(),
		s.runRescore,
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Start begins running scheduled tasks.
func (s *Scheduler) Start() {
	s.log.Info("scheduler started")
	s.cron.Start()
}

// Stop gracefully stops the scheduler, waiting for running jobs to finish.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")
	return s.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

func (s *Scheduler) runIngestion() {
	ctx := context.Background()
	s.log.Info("scheduled ingestion starting")
	if err := s.engine.RunIngestion(ctx); err != nil {
		s.log.Error("scheduled ingestion failed", "error", err)
	}
}

func (s *Scheduler) runRescore() {
	ctx := context.Background()
	s.log.Info("scheduled rescore starting")
	if err := s.engine.RunRescore(ctx); err != nil {
		s.log.Error("scheduled rescore failed", "error", err)
	}
}
