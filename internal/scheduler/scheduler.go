package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"directin/internal/usecase"
)

// Scheduler drives periodic board refreshes. Manual refreshes share the
// same single-flight lock, so an overlapping scheduled run simply skips.
type Scheduler struct {
	refresh  usecase.RefreshUsecase
	interval int
	logger   *log.Logger
	cron     *cron.Cron
}

func New(refresh usecase.RefreshUsecase, intervalHours int, logger *log.Logger) *Scheduler {
	if intervalHours <= 0 {
		intervalHours = 6
	}
	return &Scheduler{
		refresh:  refresh,
		interval: intervalHours,
		logger:   logger,
		cron:     cron.New(),
	}
}

// Start registers the cron entry and fires one refresh immediately so a
// fresh deployment has data before the first interval elapses.
func (s *Scheduler) Start() error {
	spec := fmt.Sprintf("@every %dh", s.interval)
	if _, err := s.cron.AddFunc(spec, s.runOnce); err != nil {
		return fmt.Errorf("register refresh schedule: %w", err)
	}
	s.cron.Start()
	go s.runOnce()
	if s.logger != nil {
		s.logger.Printf("[Scheduler] started interval=%dh", s.interval)
	}
	return nil
}

func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	if s.logger != nil {
		s.logger.Printf("[Scheduler] stopped")
	}
}

func (s *Scheduler) runOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	summary, err := s.refresh.RefreshAll(ctx)
	if err != nil {
		if errors.Is(err, usecase.ErrRefreshInFlight) {
			if s.logger != nil {
				s.logger.Printf("[Scheduler] refresh skipped reason=already_in_flight")
			}
			return
		}
		if s.logger != nil {
			s.logger.Printf("[Scheduler] refresh failed err=%v", err)
		}
		return
	}
	if s.logger != nil {
		s.logger.Printf("[Scheduler] refresh completed companies=%d matches=%d badge=%s",
			len(summary.Companies), summary.TotalMatches, summary.Badge.Display)
	}
}
