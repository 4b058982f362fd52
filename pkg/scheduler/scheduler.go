// Package scheduler drives the periodic jobs: bounded backfill slices,
// the continuous forward walk, enrichment reconciliation, and the weekly
// taxonomy agent. Jobs never overlap themselves and a panicking job never
// takes the scheduler down.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/hnscribe/hnscribe/ent"
	"github.com/hnscribe/hnscribe/pkg/agent"
	"github.com/hnscribe/hnscribe/pkg/config"
	"github.com/hnscribe/hnscribe/pkg/enrich"
	"github.com/hnscribe/hnscribe/pkg/models"
	"github.com/hnscribe/hnscribe/pkg/scraper"
)

// Scheduler owns the cron instance and the job bodies.
type Scheduler struct {
	cron         *cron.Cron
	scraper      *scraper.Scraper
	pipeline     *enrich.Pipeline
	orchestrator *agent.Orchestrator
	cfg          *config.Config

	ctx    context.Context
	cancel context.CancelFunc

	// Set once the backfill state machine reports completion; the cron
	// entry stays registered but the job body short-circuits.
	backfillDone atomic.Bool
}

// New registers the four jobs at their configured intervals. The
// scheduler does not tick until Start is called.
func New(sc *scraper.Scraper, pipeline *enrich.Pipeline, orchestrator *agent.Orchestrator, cfg *config.Config) (*Scheduler, error) {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Scheduler{
		cron: cron.New(cron.WithChain(
			cron.SkipIfStillRunning(cronLogger{}),
			cron.Recover(cronLogger{}),
		)),
		scraper:      sc,
		pipeline:     pipeline,
		orchestrator: orchestrator,
		cfg:          cfg,
		ctx:          ctx,
		cancel:       cancel,
	}

	jobs := []struct {
		name     string
		interval time.Duration
		run      func()
	}{
		{"backfill", cfg.BackfillInterval, s.runBackfill},
		{"continuous", cfg.ContinuousInterval, s.runContinuous},
		{"recovery", cfg.RecoveryInterval, s.runRecovery},
		{"agent", cfg.AgentRunInterval, s.runAgent},
	}
	for _, job := range jobs {
		if _, err := s.cron.AddFunc("@every "+job.interval.String(), job.run); err != nil {
			cancel()
			return nil, fmt.Errorf("failed to schedule %s job: %w", job.name, err)
		}
		slog.Info("Scheduled job", "job", job.name, "interval", job.interval)
	}
	return s, nil
}

// Start begins ticking. Each due job runs on its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
	slog.Info("Scheduler started")
}

// Stop prevents new runs and waits for in-flight jobs. If ctx expires
// first, the jobs' context is cancelled so they unwind promptly.
func (s *Scheduler) Stop(ctx context.Context) error {
	drain := s.cron.Stop()
	select {
	case <-drain.Done():
		s.cancel()
		slog.Info("Scheduler stopped")
		return nil
	case <-ctx.Done():
		s.cancel()
		<-drain.Done()
		slog.Warn("Scheduler stopped after cancelling running jobs")
		return ctx.Err()
	}
}

func (s *Scheduler) runBackfill() {
	if s.backfillDone.Load() {
		return
	}
	result, err := s.scraper.RunBackfill(s.ctx)
	if err != nil {
		slog.Error("Backfill job failed", "error", err)
		return
	}
	switch result.Status {
	case models.ScrapeAlreadyCompleted:
		s.backfillDone.Store(true)
		slog.Info("Backfill already complete")
	case models.ScrapeCompleted:
		s.backfillDone.Store(true)
		slog.Info("Backfill completed",
			"items_scanned", result.ItemsScanned,
			"stories_added", result.StoriesAdded)
	default:
		slog.Info("Backfill progress",
			"items_scanned", result.ItemsScanned,
			"stories_added", result.StoriesAdded,
			"current_item_id", result.CurrentItemID)
	}
}

func (s *Scheduler) runContinuous() {
	result, err := s.scraper.RunContinuous(s.ctx)
	if err != nil {
		slog.Error("Continuous scrape job failed", "error", err)
		return
	}
	slog.Info("Continuous scrape complete",
		"items_scanned", result.ItemsScanned,
		"stories_added", result.StoriesAdded,
		"curated_added", result.CuratedAdded)

	n, err := s.pipeline.GenerateMissing(s.ctx, s.cfg.SummarizationBatchSize)
	if err != nil {
		slog.Error("Summary generation failed", "error", err)
		return
	}
	if n > 0 {
		slog.Info("Generated summaries", "count", n)
	}
}

func (s *Scheduler) runRecovery() {
	n, err := s.pipeline.RecoverUnprocessed(s.ctx, s.cfg.SummarizationBatchSize)
	if err != nil {
		slog.Error("Recovery job failed", "error", err)
		return
	}
	if n > 0 {
		slog.Info("Recovered unprocessed stories", "count", n)
	}
}

func (s *Scheduler) runAgent() {
	var (
		run *ent.AgentRun
		err error
	)
	if s.cfg.AgentEnableAutoApprove {
		run, err = s.orchestrator.RunAutoApply(s.ctx)
	} else {
		run, err = s.orchestrator.RunProposal(s.ctx)
	}
	if err != nil {
		slog.Error("Agent run failed", "error", err)
		return
	}
	slog.Info("Agent run complete", "run_id", run.ID, "run_type", run.RunType)
}

// cronLogger adapts cron's logging to slog. Routine scheduling chatter
// goes to debug; job errors surface at error level.
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...interface{}) {
	slog.Debug(msg, keysAndValues...)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	slog.Error(msg, append(keysAndValues, "error", err)...)
}
