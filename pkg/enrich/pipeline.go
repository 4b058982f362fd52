package enrich

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hnscribe/hnscribe/ent"
	"github.com/hnscribe/hnscribe/pkg/metrics"
	"github.com/hnscribe/hnscribe/pkg/services"
	"github.com/hnscribe/hnscribe/pkg/taxonomy"
)

// Pipeline enriches stored stories: one oracle call per story, then the
// summary row, tag resolution, and attachment. Every step is idempotent so
// interrupted stories can be re-run.
type Pipeline struct {
	stories *services.StoryService
	tags    *services.TagService
	oracle  Oracle
	model   string
	metrics *metrics.CSVLogger
}

// NewPipeline creates a Pipeline. A nil oracle yields a disabled pipeline
// whose batch methods succeed without doing anything.
func NewPipeline(stories *services.StoryService, tags *services.TagService, oracle Oracle, model string, metricsLog *metrics.CSVLogger) *Pipeline {
	return &Pipeline{
		stories: stories,
		tags:    tags,
		oracle:  oracle,
		model:   model,
		metrics: metricsLog,
	}
}

// Enabled reports whether an oracle is configured
func (p *Pipeline) Enabled() bool {
	return p != nil && p.oracle != nil
}

// GenerateMissing enriches up to limit stories that have no summary yet,
// highest scored first. Returns the number fully enriched; a failure on
// one story skips it and moves on.
func (p *Pipeline) GenerateMissing(ctx context.Context, limit int) (int, error) {
	if !p.Enabled() {
		slog.Debug("Enrichment disabled, no oracle configured")
		return 0, nil
	}
	stories, err := p.stories.StoriesWithoutSummary(ctx, limit)
	if err != nil {
		return 0, err
	}
	return p.run(ctx, "enrich_batch", stories)
}

// RecoverUnprocessed re-runs enrichment for stories whose flags say the
// pipeline never finished, including half-done ones.
func (p *Pipeline) RecoverUnprocessed(ctx context.Context, limit int) (int, error) {
	if !p.Enabled() {
		return 0, nil
	}
	stories, err := p.stories.UnprocessedStories(ctx, limit)
	if err != nil {
		return 0, err
	}
	return p.run(ctx, "enrich_recovery", stories)
}

func (p *Pipeline) run(ctx context.Context, operation string, stories []*ent.Story) (int, error) {
	if len(stories) == 0 {
		return 0, nil
	}

	start := time.Now()

	// One resolver per batch: repeated tags hit its cache instead of the
	// database.
	resolver := taxonomy.NewResolver(p.tags)

	processed := 0
	for _, st := range stories {
		if ctx.Err() != nil {
			return processed, ctx.Err()
		}
		if err := p.enrichOne(ctx, resolver, st); err != nil {
			slog.Warn("Failed to enrich story",
				"story_id", st.ID,
				"hn_id", st.HnID,
				"error", err)
			continue
		}
		processed++
	}

	p.metrics.Record(operation, time.Since(start), processed, 0)
	slog.Info("Enrichment batch complete",
		"operation", operation,
		"candidates", len(stories),
		"enriched", processed)
	return processed, nil
}

func (p *Pipeline) enrichOne(ctx context.Context, resolver *taxonomy.Resolver, st *ent.Story) error {
	url := ""
	if st.URL != nil {
		url = *st.URL
	}
	analysis, err := p.oracle.Analyze(ctx, st.Title, url)
	if err != nil {
		return fmt.Errorf("failed to analyze story: %w", err)
	}

	_, err = p.stories.CreateSummary(ctx, st.ID, analysis.Summary, p.model)
	if err != nil && !errors.Is(err, services.ErrAlreadyExists) {
		return fmt.Errorf("failed to store summary: %w", err)
	}

	tags, err := resolver.ResolveTags(ctx, analysis.Tags)
	if err != nil {
		return fmt.Errorf("failed to resolve tags: %w", err)
	}
	ids := make([]int, 0, len(tags))
	for _, t := range tags {
		ids = append(ids, t.ID)
	}
	if _, err := p.stories.AttachTags(ctx, st.ID, ids); err != nil {
		return fmt.Errorf("failed to attach tags: %w", err)
	}

	return p.stories.MarkEnriched(ctx, st.ID)
}
