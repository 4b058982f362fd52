// Package scraper pulls stories from the Hacker News item space into the
// local store. Two cursors cover it: backfill walks ids downward to a
// target date, continuous tails new ids upward and sweeps the curated
// lists. Both survive restarts through persisted state rows and write
// through an idempotent upsert.
package scraper

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hnscribe/hnscribe/ent/scraperstate"
	"github.com/hnscribe/hnscribe/pkg/config"
	"github.com/hnscribe/hnscribe/pkg/hn"
	"github.com/hnscribe/hnscribe/pkg/metrics"
	"github.com/hnscribe/hnscribe/pkg/models"
	"github.com/hnscribe/hnscribe/pkg/services"
)

// curatedListLimit caps how many ids each curated list contributes
const curatedListLimit = 200

// Scraper drives both scraping directions against one HN client
type Scraper struct {
	hn      *hn.Client
	stories *services.StoryService
	states  *services.StateService
	cfg     *config.Config
	metrics *metrics.CSVLogger
}

// New creates a Scraper
func New(hnClient *hn.Client, stories *services.StoryService, states *services.StateService, cfg *config.Config, metricsLog *metrics.CSVLogger) *Scraper {
	return &Scraper{
		hn:      hnClient,
		stories: stories,
		states:  states,
		cfg:     cfg,
		metrics: metricsLog,
	}
}

// RunBackfill processes up to BackfillMaxBatches descending id batches.
// The state row is created on first use, anchored at the current max item
// id with the configured target date. Progress commits after every batch,
// so interruption costs at most one batch of rescanning.
func (s *Scraper) RunBackfill(ctx context.Context) (*models.BackfillResult, error) {
	maxID, ok := s.hn.MaxItemID(ctx)
	if !ok {
		return nil, fmt.Errorf("failed to determine max item id")
	}

	target := time.Now().AddDate(0, 0, -s.cfg.BackfillDays()).UTC()
	state, created, err := s.states.GetOrCreate(ctx, scraperstate.StateTypeBackfill, services.StateSeed{
		CurrentItemID:   maxID,
		TargetTimestamp: &target,
	})
	if err != nil {
		return nil, err
	}
	if created {
		slog.Info("Initialized backfill state",
			"start_item_id", maxID,
			"target_timestamp", target)
	}

	if state.Status == scraperstate.StatusCompleted {
		return &models.BackfillResult{
			Status:        models.ScrapeAlreadyCompleted,
			CurrentItemID: state.CurrentItemID,
		}, nil
	}

	start := time.Now()
	result := &models.BackfillResult{
		Status:        models.ScrapeInProgress,
		CurrentItemID: state.CurrentItemID,
	}

	cur := state.CurrentItemID
	var total models.BatchStats
	for result.BatchesProcessed < s.cfg.BackfillMaxBatches && cur > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		batchStart := cur - int64(s.cfg.BackfillBatchSize) + 1
		if batchStart < 1 {
			batchStart = 1
		}
		stats, err := s.processIDs(ctx, idRange(batchStart, cur), state.TargetTimestamp)
		if err != nil {
			return nil, err
		}

		cur = batchStart - 1
		if err := s.states.SaveProgress(ctx, state.ID, cur, int64(stats.ItemsScanned), int64(stats.StoriesNew)); err != nil {
			return nil, err
		}

		total.Add(stats)
		result.BatchesProcessed++
		result.ItemsScanned = total.ItemsScanned
		result.StoriesAdded = total.StoriesNew
		result.CurrentItemID = cur

		if total.ReachedTargetDate || cur <= 0 {
			if err := s.states.MarkCompleted(ctx, state.ID); err != nil {
				return nil, err
			}
			result.Status = models.ScrapeCompleted
			slog.Info("Backfill reached its target",
				"current_item_id", cur,
				"stories_added", total.StoriesNew)
			break
		}

		s.pause(ctx)
	}

	s.metrics.Record("backfill", time.Since(start), result.ItemsScanned, 0)
	return result, nil
}

// RunContinuous tails the id space from the stored cursor to the current
// max id in forward batches, then sweeps the curated lists for stories
// the id walk cannot see anymore.
func (s *Scraper) RunContinuous(ctx context.Context) (*models.ContinuousResult, error) {
	maxID, ok := s.hn.MaxItemID(ctx)
	if !ok {
		return nil, fmt.Errorf("failed to determine max item id")
	}

	state, created, err := s.states.GetOrCreate(ctx, scraperstate.StateTypeContinuous, services.StateSeed{
		CurrentItemID: maxID - 1,
	})
	if err != nil {
		return nil, err
	}
	if created {
		slog.Info("Initialized continuous state", "start_item_id", maxID-1)
	}

	start := time.Now()
	result := &models.ContinuousResult{
		Status:        models.ScrapeCompleted,
		CurrentItemID: state.CurrentItemID,
	}

	cur := state.CurrentItemID
	var total models.BatchStats
	for cur < maxID {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		batchEnd := cur + int64(s.cfg.ContinuousBatchSize)
		if batchEnd > maxID {
			batchEnd = maxID
		}
		stats, err := s.processIDs(ctx, idRange(cur+1, batchEnd), nil)
		if err != nil {
			return nil, err
		}

		cur = batchEnd
		if err := s.states.SaveProgress(ctx, state.ID, cur, int64(stats.ItemsScanned), int64(stats.StoriesNew)); err != nil {
			return nil, err
		}

		total.Add(stats)
		result.ItemsScanned = total.ItemsScanned
		result.StoriesAdded = total.StoriesNew
		result.CurrentItemID = cur

		if cur < maxID {
			s.pause(ctx)
		}
	}

	curated, err := s.sweepCurated(ctx)
	if err != nil {
		return nil, err
	}
	result.CuratedAdded = curated

	s.metrics.Record("continuous", time.Since(start), result.ItemsScanned, 0)
	return result, nil
}

// sweepCurated unions the top/new/best lists and ingests whatever is not
// stored yet. High-ranked stories are often older than the id tail, so
// the forward walk alone would miss them.
func (s *Scraper) sweepCurated(ctx context.Context) (int, error) {
	seen := make(map[int64]struct{})
	var ids []int64
	for _, list := range [][]int64{
		s.hn.TopStoryIDs(ctx, curatedListLimit),
		s.hn.NewStoryIDs(ctx, curatedListLimit),
		s.hn.BestStoryIDs(ctx, curatedListLimit),
	} {
		for _, id := range list {
			if _, ok := seen[id]; !ok {
				seen[id] = struct{}{}
				ids = append(ids, id)
			}
		}
	}
	if len(ids) == 0 {
		return 0, nil
	}

	stats, err := s.processIDs(ctx, ids, nil)
	if err != nil {
		return 0, err
	}
	return stats.StoriesNew, nil
}

// RefreshTopStories re-fetches the current top stories and upserts them
// all, existing or not, so scores and comment counts catch up.
func (s *Scraper) RefreshTopStories(ctx context.Context) (int, error) {
	ids := s.hn.TopStoryIDs(ctx, s.cfg.TopStoriesCount)
	if len(ids) == 0 {
		return 0, fmt.Errorf("failed to fetch top story ids")
	}

	start := time.Now()
	items := s.hn.StoriesBatch(ctx, ids)
	batch := make([]*models.ScrapedStory, 0, len(items))
	for _, it := range items {
		batch = append(batch, models.StoryFromItem(it))
	}
	written, err := s.stories.UpsertBatch(ctx, batch)
	if err != nil {
		return 0, err
	}

	s.metrics.Record("refresh_top", time.Since(start), written, 0)
	slog.Info("Refreshed top stories",
		"requested", len(ids),
		"written", written)
	return written, nil
}

// Status reports the upstream max id, the stored story count, and every
// cursor row.
func (s *Scraper) Status(ctx context.Context) (*models.ScrapeStatus, error) {
	status := &models.ScrapeStatus{States: make(map[string]*models.StateStatus)}

	if maxID, ok := s.hn.MaxItemID(ctx); ok {
		status.HNMaxItem = maxID
	}

	total, err := s.stories.CountStories(ctx)
	if err != nil {
		return nil, err
	}
	status.TotalStories = total

	states, err := s.states.ListStates(ctx)
	if err != nil {
		return nil, err
	}
	for _, st := range states {
		status.States[string(st.StateType)] = &models.StateStatus{
			Status:          string(st.Status),
			CurrentItemID:   st.CurrentItemID,
			TargetTimestamp: st.TargetTimestamp,
			ItemsProcessed:  st.ItemsProcessed,
			StoriesFound:    st.StoriesFound,
			LastRunAt:       st.LastRunAt,
		}
	}
	return status, nil
}

// processIDs is the shared ingestion kernel: drop ids already stored,
// fetch the rest, apply the target-date cut, and upsert what remains.
func (s *Scraper) processIDs(ctx context.Context, ids []int64, target *time.Time) (models.BatchStats, error) {
	stats := models.BatchStats{ItemsScanned: len(ids)}
	if len(ids) == 0 {
		return stats, nil
	}

	existing, err := s.stories.ExistingHNIDs(ctx, ids)
	if err != nil {
		return stats, err
	}
	novel := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := existing[id]; !ok {
			novel = append(novel, id)
		}
	}
	if len(novel) == 0 {
		return stats, nil
	}

	items := s.hn.StoriesBatch(ctx, novel)
	stats.StoriesFound = len(items)

	batch := make([]*models.ScrapedStory, 0, len(items))
	for _, it := range items {
		story := models.StoryFromItem(it)
		if target != nil && story.HNCreatedAt.Before(*target) {
			stats.ReachedTargetDate = true
			continue
		}
		batch = append(batch, story)
	}

	written, err := s.stories.UpsertBatch(ctx, batch)
	if err != nil {
		return stats, err
	}
	stats.StoriesNew = written
	return stats, nil
}

// pause sleeps the configured inter-batch delay, ending early on
// cancellation.
func (s *Scraper) pause(ctx context.Context) {
	if s.cfg.RateLimitDelay <= 0 {
		return
	}
	select {
	case <-time.After(s.cfg.RateLimitDelay):
	case <-ctx.Done():
	}
}

func idRange(start, end int64) []int64 {
	if end < start {
		return nil
	}
	ids := make([]int64, 0, end-start+1)
	for id := start; id <= end; id++ {
		ids = append(ids, id)
	}
	return ids
}
