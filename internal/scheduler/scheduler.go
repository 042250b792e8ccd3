package scheduler

import (
	"context"
	"sync"
	"time"

	"oneplace/translation/internal/logger"
	"oneplace/translation/internal/service"
)

// Scheduler appends the daily translation statistics snapshot on a
// fixed interval.
type Scheduler struct {
	translations service.TranslationService
	interval     time.Duration
	stopCh       chan struct{}
	wg           sync.WaitGroup
}

func New(translations service.TranslationService, interval time.Duration) *Scheduler {
	return &Scheduler{
		translations: translations,
		interval:     interval,
		stopCh:       make(chan struct{}),
	}
}

func (s *Scheduler) Start() {
	s.wg.Add(1)
	go s.run()
	logger.Info("scheduler started", "module", "scheduler", "action", "stats", "resource", "translation", "result", "ok", "interval_ms", s.interval.Milliseconds())
}

func (s *Scheduler) Stop() {
	close(s.stopCh)
	s.wg.Wait()
	logger.Info("scheduler stopped", "module", "scheduler", "action", "stats", "resource", "translation", "result", "ok")
}

func (s *Scheduler) run() {
	defer s.wg.Done()

	// Run immediately on start
	s.snapshot()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.snapshot()
		case <-s.stopCh:
			return
		}
	}
}

func (s *Scheduler) snapshot() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := s.translations.GenerateDailyStats(ctx); err != nil {
		logger.Error("daily stats snapshot failed", "module", "scheduler", "action", "stats", "resource", "translation", "result", "failed", "error", err)
		return
	}
	logger.Info("daily stats snapshot written", "module", "scheduler", "action", "stats", "resource", "translation", "result", "ok")
}
