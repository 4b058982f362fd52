package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hnscribe/hnscribe/ent"
	"github.com/hnscribe/hnscribe/ent/story"
	"github.com/hnscribe/hnscribe/pkg/models"
	testdb "github.com/hnscribe/hnscribe/test/database"
)

func scraped(hnID int64, title string, score int, createdAt time.Time) *models.ScrapedStory {
	url := fmt.Sprintf("https://example.com/%d", hnID)
	return &models.ScrapedStory{
		HNID:         hnID,
		Title:        title,
		URL:          &url,
		Score:        score,
		Author:       "tester",
		CommentCount: 3,
		HNCreatedAt:  createdAt,
	}
}

func seedStories(t *testing.T, svc *StoryService, stories ...*models.ScrapedStory) {
	t.Helper()
	n, err := svc.UpsertBatch(context.Background(), stories)
	require.NoError(t, err)
	require.Equal(t, len(stories), n)
}

func storyByHN(t *testing.T, client *ent.Client, hnID int64) *ent.Story {
	t.Helper()
	st, err := client.Story.Query().Where(story.HnID(hnID)).Only(context.Background())
	require.NoError(t, err)
	return st
}

func TestStoryService_UpsertBatch(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewStoryService(client.Client)
	ctx := context.Background()

	created := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)

	t.Run("empty batch", func(t *testing.T) {
		n, err := svc.UpsertBatch(ctx, nil)
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("inserts new stories", func(t *testing.T) {
		n, err := svc.UpsertBatch(ctx, []*models.ScrapedStory{
			scraped(101, "First", 10, created),
			scraped(102, "Second", 20, created),
		})
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		st := storyByHN(t, client.Client, 101)
		assert.Equal(t, "First", st.Title)
		assert.Equal(t, 10, st.Score)
		assert.Equal(t, "tester", st.Author)
		require.NotNil(t, st.URL)
		assert.Equal(t, "https://example.com/101", *st.URL)
		assert.False(t, st.IsSummarized)
		assert.False(t, st.IsTagged)
	})

	t.Run("conflict updates mutable fields only", func(t *testing.T) {
		rescraped := scraped(101, "First (updated)", 99, created.Add(48*time.Hour))
		rescraped.CommentCount = 50

		n, err := svc.UpsertBatch(ctx, []*models.ScrapedStory{rescraped})
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		st := storyByHN(t, client.Client, 101)
		assert.Equal(t, "First (updated)", st.Title)
		assert.Equal(t, 99, st.Score)
		assert.Equal(t, 50, st.CommentCount)
		assert.True(t, st.HnCreatedAt.Equal(created), "hn_created_at must not move on re-scrape")

		count, err := svc.CountStories(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, count, "upsert must not duplicate the row")
	})
}

func TestStoryService_ExistingHNIDs(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewStoryService(client.Client)
	ctx := context.Background()

	t.Run("empty input", func(t *testing.T) {
		existing, err := svc.ExistingHNIDs(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, existing)
	})

	t.Run("spans multiple query chunks", func(t *testing.T) {
		created := time.Now().UTC()
		batch := make([]*models.ScrapedStory, 0, 2500)
		for id := int64(1); id <= 2500; id++ {
			batch = append(batch, scraped(id, fmt.Sprintf("Story %d", id), 1, created))
		}
		_, err := svc.UpsertBatch(ctx, batch)
		require.NoError(t, err)

		ids := make([]int64, 0, 3000)
		for id := int64(1); id <= 3000; id++ {
			ids = append(ids, id)
		}
		existing, err := svc.ExistingHNIDs(ctx, ids)
		require.NoError(t, err)
		assert.Len(t, existing, 2500)

		_, ok := existing[2500]
		assert.True(t, ok)
		_, ok = existing[2501]
		assert.False(t, ok)
	})
}

func TestStoryService_GetStory(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewStoryService(client.Client)
	tags := NewTagService(client.Client)
	ctx := context.Background()

	seedStories(t, svc, scraped(201, "Tagged and summarized", 42, time.Now().UTC()))
	st := storyByHN(t, client.Client, 201)

	_, err := svc.CreateSummary(ctx, st.ID, "A fine story.", "gpt-4o-mini")
	require.NoError(t, err)
	goTag, err := tags.GetOrCreateTag(ctx, "Go")
	require.NoError(t, err)
	_, err = svc.AttachTags(ctx, st.ID, []int{goTag.ID})
	require.NoError(t, err)

	t.Run("loads summary and tags", func(t *testing.T) {
		got, err := svc.GetStory(ctx, st.ID)
		require.NoError(t, err)
		require.NotNil(t, got.Edges.Summary)
		assert.Equal(t, "A fine story.", got.Edges.Summary.Text)
		require.Len(t, got.Edges.Tags, 1)
		assert.Equal(t, "Go", got.Edges.Tags[0].Name)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.GetStory(ctx, 999999)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestStoryService_ListStories(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewStoryService(client.Client)
	ctx := context.Background()
	now := time.Now().UTC()

	seedStories(t, svc,
		scraped(301, "Low", 10, now),
		scraped(302, "High", 30, now),
		scraped(303, "Mid", 20, now),
	)

	page, err := svc.ListStories(ctx, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, page.TotalCount)
	require.Len(t, page.Stories, 2)
	assert.Equal(t, "High", page.Stories[0].Title, "listing is score-descending")
	assert.Equal(t, "Mid", page.Stories[1].Title)
	assert.Equal(t, 0, page.Offset)
	assert.Equal(t, 2, page.Limit)

	rest, err := svc.ListStories(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, rest.Stories, 1)
	assert.Equal(t, "Low", rest.Stories[0].Title)
	assert.Equal(t, 3, rest.TotalCount)
}

func TestStoryService_FilterStories(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewStoryService(client.Client)
	tags := NewTagService(client.Client)
	ctx := context.Background()
	now := time.Now().UTC()

	seedStories(t, svc,
		scraped(401, "Go at scale", 30, now),
		scraped(402, "Rust rewrite", 20, now),
		scraped(403, "Fusion milestone", 10, now),
	)
	s1 := storyByHN(t, client.Client, 401)
	s2 := storyByHN(t, client.Client, 402)
	s3 := storyByHN(t, client.Client, 403)

	attach := func(storyID int, names ...string) {
		t.Helper()
		for _, name := range names {
			tg, err := tags.GetOrCreateTag(ctx, name)
			require.NoError(t, err)
			_, err = svc.AttachTags(ctx, storyID, []int{tg.ID})
			require.NoError(t, err)
		}
	}
	attach(s1.ID, "Tech", "Go")
	attach(s2.ID, "Tech", "Rust")
	attach(s3.ID, "Science", "OpenAI")

	t.Run("include by level", func(t *testing.T) {
		res, err := svc.FilterStories(ctx, &models.TagFilter{L1Include: []string{"Tech"}}, 0, 10)
		require.NoError(t, err)
		assert.Equal(t, 2, res.TotalCount)
	})

	t.Run("exclude trims matches", func(t *testing.T) {
		f := &models.TagFilter{L1Include: []string{"Tech"}, L2Exclude: []string{"Rust"}}
		res, err := svc.FilterStories(ctx, f, 0, 10)
		require.NoError(t, err)
		require.Len(t, res.Stories, 1)
		assert.Equal(t, "Go at scale", res.Stories[0].Title)

		count, err := svc.CountFiltered(ctx, f)
		require.NoError(t, err)
		assert.Equal(t, res.TotalCount, count, "listing and count share predicates")
	})

	t.Run("L3 include", func(t *testing.T) {
		res, err := svc.FilterStories(ctx, &models.TagFilter{L3Include: []string{"OpenAI"}}, 0, 10)
		require.NoError(t, err)
		require.Len(t, res.Stories, 1)
		assert.Equal(t, "Fusion milestone", res.Stories[0].Title)
	})

	t.Run("empty filter lists everything", func(t *testing.T) {
		res, err := svc.FilterStories(ctx, &models.TagFilter{}, 0, 10)
		require.NoError(t, err)
		assert.Equal(t, 3, res.TotalCount)
	})
}

func TestStoryService_EnrichmentSelection(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewStoryService(client.Client)
	ctx := context.Background()
	now := time.Now().UTC()

	seedStories(t, svc,
		scraped(501, "Top", 50, now),
		scraped(502, "Middle", 30, now),
		scraped(503, "Bottom", 10, now),
	)
	top := storyByHN(t, client.Client, 501)

	_, err := svc.CreateSummary(ctx, top.ID, "done", "gpt-4o-mini")
	require.NoError(t, err)

	t.Run("stories without summary, best first", func(t *testing.T) {
		got, err := svc.StoriesWithoutSummary(ctx, 10)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "Middle", got[0].Title)
		assert.Equal(t, "Bottom", got[1].Title)

		one, err := svc.StoriesWithoutSummary(ctx, 1)
		require.NoError(t, err)
		require.Len(t, one, 1)
		assert.Equal(t, "Middle", one[0].Title)
	})

	t.Run("unprocessed stories", func(t *testing.T) {
		require.NoError(t, svc.MarkEnriched(ctx, top.ID))

		// Half-done stories stay eligible for recovery.
		mid := storyByHN(t, client.Client, 502)
		require.NoError(t, client.Client.Story.UpdateOneID(mid.ID).SetIsSummarized(true).Exec(ctx))

		got, err := svc.UnprocessedStories(ctx, 10)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "Middle", got[0].Title)
		assert.Equal(t, "Bottom", got[1].Title)
	})
}

func TestStoryService_CreateSummary(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewStoryService(client.Client)
	ctx := context.Background()

	seedStories(t, svc, scraped(601, "Summarize me", 5, time.Now().UTC()))
	st := storyByHN(t, client.Client, 601)

	sum, err := svc.CreateSummary(ctx, st.ID, "Short and sweet.", "gpt-4o-mini")
	require.NoError(t, err)
	assert.Equal(t, "Short and sweet.", sum.Text)
	assert.Equal(t, "gpt-4o-mini", sum.Model)

	_, err = svc.CreateSummary(ctx, st.ID, "Second attempt.", "gpt-4o-mini")
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestStoryService_AttachTags(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewStoryService(client.Client)
	tags := NewTagService(client.Client)
	ctx := context.Background()

	seedStories(t, svc, scraped(701, "Tag me", 5, time.Now().UTC()))
	st := storyByHN(t, client.Client, 701)

	goTag, err := tags.GetOrCreateTag(ctx, "Go")
	require.NoError(t, err)
	rustTag, err := tags.GetOrCreateTag(ctx, "Rust")
	require.NoError(t, err)

	t.Run("first attachment bumps usage", func(t *testing.T) {
		n, err := svc.AttachTags(ctx, st.ID, []int{goTag.ID, rustTag.ID})
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		for _, id := range []int{goTag.ID, rustTag.ID} {
			tg, err := client.Client.Tag.Get(ctx, id)
			require.NoError(t, err)
			assert.Equal(t, 1, tg.UsageCount)
		}
	})

	t.Run("reattachment is a no-op", func(t *testing.T) {
		techTag, err := tags.GetOrCreateTag(ctx, "Tech")
		require.NoError(t, err)

		n, err := svc.AttachTags(ctx, st.ID, []int{goTag.ID, rustTag.ID, techTag.ID})
		require.NoError(t, err)
		assert.Equal(t, 1, n, "only the new pair counts")

		tg, err := client.Client.Tag.Get(ctx, goTag.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, tg.UsageCount, "existing pairs must not bump usage again")
	})

	t.Run("nothing to attach", func(t *testing.T) {
		n, err := svc.AttachTags(ctx, st.ID, nil)
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("unknown story", func(t *testing.T) {
		_, err := svc.AttachTags(ctx, 999999, []int{goTag.ID})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestStoryService_MarkEnriched(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewStoryService(client.Client)
	ctx := context.Background()

	seedStories(t, svc, scraped(801, "Flip me", 5, time.Now().UTC()))
	st := storyByHN(t, client.Client, 801)

	require.NoError(t, svc.MarkEnriched(ctx, st.ID))

	got := storyByHN(t, client.Client, 801)
	assert.True(t, got.IsSummarized)
	assert.True(t, got.IsTagged)

	assert.ErrorIs(t, svc.MarkEnriched(ctx, 999999), ErrNotFound)
}

func TestStoryService_WindowCounts(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewStoryService(client.Client)
	tags := NewTagService(client.Client)
	ctx := context.Background()

	cutoff := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	seedStories(t, svc,
		scraped(901, "At the boundary", 10, cutoff),
		scraped(902, "Inside", 10, cutoff.Add(24*time.Hour)),
		scraped(903, "Before", 10, cutoff.Add(-24*time.Hour)),
	)

	count, err := svc.CountStoriesSince(ctx, cutoff)
	require.NoError(t, err)
	assert.Equal(t, 2, count, "the boundary timestamp itself is inside the window")

	t.Run("orphans", func(t *testing.T) {
		atBoundary := storyByHN(t, client.Client, 901)
		inside := storyByHN(t, client.Client, 902)
		before := storyByHN(t, client.Client, 903)

		openAI, err := tags.GetOrCreateTag(ctx, "OpenAI")
		require.NoError(t, err)
		tech, err := tags.GetOrCreateTag(ctx, "Tech")
		require.NoError(t, err)

		// inside carries only an L3 tag; before is out of the window;
		// atBoundary is grounded by its L1 tag.
		_, err = svc.AttachTags(ctx, inside.ID, []int{openAI.ID})
		require.NoError(t, err)
		_, err = svc.AttachTags(ctx, before.ID, []int{openAI.ID})
		require.NoError(t, err)
		_, err = svc.AttachTags(ctx, atBoundary.ID, []int{tech.ID})
		require.NoError(t, err)

		orphans, err := svc.CountOrphanStories(ctx, cutoff)
		require.NoError(t, err)
		assert.Equal(t, 1, orphans)
	})
}
