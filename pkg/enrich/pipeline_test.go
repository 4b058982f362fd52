package enrich

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hnscribe/hnscribe/ent"
	"github.com/hnscribe/hnscribe/ent/story"
	"github.com/hnscribe/hnscribe/pkg/database"
	"github.com/hnscribe/hnscribe/pkg/models"
	"github.com/hnscribe/hnscribe/pkg/services"
	testdb "github.com/hnscribe/hnscribe/test/database"
)

// stubOracle answers from a fixed per-title script. The pipeline walks
// stories sequentially, so plain fields are safe.
type stubOracle struct {
	calls    []string
	analyses map[string]*models.StoryAnalysis
	failing  map[string]bool
}

func (o *stubOracle) Analyze(ctx context.Context, title, url string) (*models.StoryAnalysis, error) {
	o.calls = append(o.calls, title)
	if o.failing[title] {
		return nil, errors.New("model overloaded")
	}
	if a, ok := o.analyses[title]; ok {
		return a, nil
	}
	return &models.StoryAnalysis{
		Summary: "Default summary.",
		Tags:    models.FlatTags{L1: []string{"Tech"}},
	}, nil
}

type pipelineHarness struct {
	client  *database.Client
	stories *services.StoryService
	tags    *services.TagService
	oracle  *stubOracle
	p       *Pipeline
}

func newPipelineHarness(t *testing.T) *pipelineHarness {
	t.Helper()
	client := testdb.NewTestClient(t)
	stories := services.NewStoryService(client.Client)
	tags := services.NewTagService(client.Client)
	oracle := &stubOracle{
		analyses: make(map[string]*models.StoryAnalysis),
		failing:  make(map[string]bool),
	}
	return &pipelineHarness{
		client:  client,
		stories: stories,
		tags:    tags,
		oracle:  oracle,
		p:       NewPipeline(stories, tags, oracle, "gpt-4o-mini", nil),
	}
}

func (h *pipelineHarness) seedStory(t *testing.T, hnID int64, title string, score int) *ent.Story {
	t.Helper()
	ctx := context.Background()
	url := fmt.Sprintf("https://example.com/%d", hnID)
	_, err := h.stories.UpsertBatch(ctx, []*models.ScrapedStory{{
		HNID:         hnID,
		Title:        title,
		URL:          &url,
		Score:        score,
		Author:       "tester",
		CommentCount: 1,
		HNCreatedAt:  time.Now().UTC().Add(-time.Hour),
	}})
	require.NoError(t, err)

	st, err := h.client.Client.Story.Query().Where(story.HnID(hnID)).Only(ctx)
	require.NoError(t, err)
	return st
}

func tagNames(tags []*ent.Tag) []string {
	names := make([]string, 0, len(tags))
	for _, tg := range tags {
		names = append(names, tg.Name)
	}
	return names
}

func TestPipeline_GenerateMissing(t *testing.T) {
	ctx := context.Background()
	h := newPipelineHarness(t)

	alpha := h.seedStory(t, 1, "Alpha", 500)
	beta := h.seedStory(t, 2, "Beta", 300)
	h.seedStory(t, 3, "Gamma", 100)
	delta := h.seedStory(t, 4, "Delta", 50)

	h.oracle.analyses["Alpha"] = &models.StoryAnalysis{
		Summary: "Covers the new model release.",
		Tags: models.FlatTags{
			L1: []string{"Tech"},
			L2: []string{"AI/ML"},
			L3: []string{"OpenAI"},
		},
	}
	h.oracle.analyses["Beta"] = &models.StoryAnalysis{
		Summary: "Language updates.",
		Tags: models.FlatTags{
			L1: []string{"Tech"},
			L2: []string{"ai/ml", "Go", "go"},
		},
	}

	n, err := h.p.GenerateMissing(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []string{"Alpha", "Beta", "Gamma"}, h.oracle.calls, "highest scored first, limit respected")

	got, err := h.stories.GetStory(ctx, alpha.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Edges.Summary)
	assert.Equal(t, "Covers the new model release.", got.Edges.Summary.Text)
	assert.Equal(t, "gpt-4o-mini", got.Edges.Summary.Model)
	assert.True(t, got.IsSummarized)
	assert.True(t, got.IsTagged)
	assert.ElementsMatch(t, []string{"Tech", "AI/ML", "OpenAI"}, tagNames(got.Edges.Tags))

	// "ai/ml" and "go" collapse onto existing rows through the resolver.
	got, err = h.stories.GetStory(ctx, beta.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Tech", "AI/ML", "Go"}, tagNames(got.Edges.Tags))

	aiml, err := h.tags.GetBySlug(ctx, "ai-ml")
	require.NoError(t, err)
	assert.Equal(t, "AI/ML", aiml.Name)
	assert.Equal(t, 2, aiml.Level)
	assert.Equal(t, 2, aiml.UsageCount, "attached to two stories")

	got, err = h.stories.GetStory(ctx, delta.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Edges.Summary, "beyond the batch limit")
	assert.False(t, got.IsSummarized)

	t.Run("second pass picks up the remainder only", func(t *testing.T) {
		n, err := h.p.GenerateMissing(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
		assert.Equal(t, []string{"Alpha", "Beta", "Gamma", "Delta"}, h.oracle.calls)

		got, err := h.stories.GetStory(ctx, delta.ID)
		require.NoError(t, err)
		require.NotNil(t, got.Edges.Summary)
		assert.Equal(t, "Default summary.", got.Edges.Summary.Text)
	})
}

func TestPipeline_GenerateMissing_OracleFailure(t *testing.T) {
	ctx := context.Background()
	h := newPipelineHarness(t)

	bad := h.seedStory(t, 10, "Bad", 200)
	good := h.seedStory(t, 11, "Good", 100)
	h.oracle.failing["Bad"] = true

	n, err := h.p.GenerateMissing(ctx, 10)
	require.NoError(t, err, "one failed story does not fail the batch")
	assert.Equal(t, 1, n)

	got, err := h.stories.GetStory(ctx, bad.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Edges.Summary)
	assert.False(t, got.IsSummarized)

	got, err = h.stories.GetStory(ctx, good.ID)
	require.NoError(t, err)
	assert.NotNil(t, got.Edges.Summary)
	assert.True(t, got.IsTagged)

	// Once the oracle recovers the skipped story is retried.
	delete(h.oracle.failing, "Bad")
	n, err = h.p.GenerateMissing(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err = h.stories.GetStory(ctx, bad.ID)
	require.NoError(t, err)
	assert.NotNil(t, got.Edges.Summary)
	assert.True(t, got.IsSummarized)
}

func TestPipeline_RecoverUnprocessed(t *testing.T) {
	ctx := context.Background()
	h := newPipelineHarness(t)

	done := h.seedStory(t, 20, "Done", 900)
	halfway := h.seedStory(t, 21, "Halfway", 400)

	n, err := h.p.GenerateMissing(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, []string{"Done"}, h.oracle.calls)

	// Halfway got its summary stored but the run died before tagging.
	_, err = h.stories.CreateSummary(ctx, halfway.ID, "Manual notes.", "gpt-4o-mini")
	require.NoError(t, err)

	n, err = h.p.RecoverUnprocessed(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, []string{"Done", "Halfway"}, h.oracle.calls, "finished stories are not reprocessed")

	got, err := h.stories.GetStory(ctx, halfway.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Edges.Summary)
	assert.Equal(t, "Manual notes.", got.Edges.Summary.Text, "the stored summary survives recovery")
	assert.True(t, got.IsSummarized)
	assert.True(t, got.IsTagged)
	assert.NotEmpty(t, got.Edges.Tags)

	got, err = h.stories.GetStory(ctx, done.ID)
	require.NoError(t, err)
	assert.True(t, got.IsSummarized)
}

func TestPipeline_Disabled(t *testing.T) {
	p := NewPipeline(nil, nil, nil, "gpt-4o-mini", nil)
	assert.False(t, p.Enabled())

	n, err := p.GenerateMissing(t.Context(), 10)
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = p.RecoverUnprocessed(t.Context(), 10)
	require.NoError(t, err)
	assert.Zero(t, n)

	var missing *Pipeline
	assert.False(t, missing.Enabled())
}
