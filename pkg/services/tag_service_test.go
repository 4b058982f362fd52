package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/hnscribe/hnscribe/test/database"
)

func strp(s string) *string { return &s }

func TestTagService_GetOrCreateTag(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTagService(client.Client)
	ctx := context.Background()

	t.Run("creates a canonical L2 tag", func(t *testing.T) {
		tg, err := svc.GetOrCreateTag(ctx, "Go")
		require.NoError(t, err)
		assert.Equal(t, "Go", tg.Name)
		assert.Equal(t, "go", tg.Slug)
		assert.Equal(t, 2, tg.Level)
		require.NotNil(t, tg.Category)
		assert.Equal(t, "Tech Stacks", *tg.Category)
		assert.False(t, tg.IsMisc)
	})

	t.Run("idempotent across spellings", func(t *testing.T) {
		first, err := svc.GetOrCreateTag(ctx, "Go")
		require.NoError(t, err)
		second, err := svc.GetOrCreateTag(ctx, "go")
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID, "slug lookup must dedupe spellings")
	})

	t.Run("L1 tag has no category", func(t *testing.T) {
		tg, err := svc.GetOrCreateTag(ctx, "Tech")
		require.NoError(t, err)
		assert.Equal(t, 1, tg.Level)
		assert.Nil(t, tg.Category)
	})

	t.Run("unknown names land in misc L3", func(t *testing.T) {
		tg, err := svc.GetOrCreateTag(ctx, "Quantum Barn")
		require.NoError(t, err)
		assert.Equal(t, "Quantum Barn", tg.Name)
		assert.Equal(t, "quantum-barn", tg.Slug)
		assert.Equal(t, 3, tg.Level)
		assert.True(t, tg.IsMisc)
	})

	t.Run("rejects names without substance", func(t *testing.T) {
		_, err := svc.GetOrCreateTag(ctx, "")
		assert.True(t, IsValidationError(err))

		_, err = svc.GetOrCreateTag(ctx, "!!!")
		assert.True(t, IsValidationError(err))
	})
}

func TestTagService_CreateTag(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTagService(client.Client)
	ctx := context.Background()

	t.Run("explicit category wins", func(t *testing.T) {
		tg, err := svc.CreateTag(ctx, "Homelab", strp("Hardware"))
		require.NoError(t, err)
		assert.Equal(t, 2, tg.Level)
		require.NotNil(t, tg.Category)
		assert.Equal(t, "Hardware", *tg.Category)
	})

	t.Run("category falls back to the canonical mapping", func(t *testing.T) {
		tg, err := svc.CreateTag(ctx, "Python", nil)
		require.NoError(t, err)
		require.NotNil(t, tg.Category)
		assert.Equal(t, "Tech Stacks", *tg.Category)
	})

	t.Run("unmapped names stay uncategorized", func(t *testing.T) {
		tg, err := svc.CreateTag(ctx, "Zettelkasten", nil)
		require.NoError(t, err)
		assert.Nil(t, tg.Category)
	})

	t.Run("duplicate slug", func(t *testing.T) {
		_, err := svc.CreateTag(ctx, "homelab", nil)
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("rejects names without substance", func(t *testing.T) {
		_, err := svc.CreateTag(ctx, "---", nil)
		assert.True(t, IsValidationError(err))
	})
}

func TestTagService_GetBySlug(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTagService(client.Client)
	ctx := context.Background()

	created, err := svc.GetOrCreateTag(ctx, "AI/ML")
	require.NoError(t, err)

	got, err := svc.GetBySlug(ctx, "ai-ml")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = svc.GetBySlug(ctx, "does-not-exist")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTagService_GroupedTags(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTagService(client.Client)
	ctx := context.Background()

	for _, name := range []string{"Tech", "Go", "OpenAI"} {
		_, err := svc.GetOrCreateTag(ctx, name)
		require.NoError(t, err)
	}
	_, err := svc.CreateTag(ctx, "Zettelkasten", nil)
	require.NoError(t, err)

	t.Run("list is ordered by level then name", func(t *testing.T) {
		tags, err := svc.ListTags(ctx)
		require.NoError(t, err)
		require.Len(t, tags, 4)

		names := make([]string, 0, len(tags))
		for _, tg := range tags {
			names = append(names, tg.Name)
		}
		assert.Equal(t, []string{"Tech", "Go", "Zettelkasten", "OpenAI"}, names)
	})

	t.Run("grouping buckets by level and category", func(t *testing.T) {
		grouped, err := svc.GroupedTags(ctx)
		require.NoError(t, err)

		require.Len(t, grouped.L1, 1)
		assert.Equal(t, "Tech", grouped.L1[0].Name)
		assert.Len(t, grouped.L2, 2)
		require.Len(t, grouped.L3, 1)
		assert.Equal(t, "OpenAI", grouped.L3[0].Name)

		require.Len(t, grouped.Categories["Tech Stacks"], 1)
		assert.Equal(t, "Go", grouped.Categories["Tech Stacks"][0].Name)
		require.Len(t, grouped.Categories["Other"], 1, "uncategorized L2 tags land in Other")
		assert.Equal(t, "Zettelkasten", grouped.Categories["Other"][0].Name)
	})

	count, err := svc.CountTags(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}

func TestTagService_UsageStatsSince(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTagService(client.Client)
	stories := NewStoryService(client.Client)
	ctx := context.Background()

	cutoff := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	seedStories(t, stories,
		scraped(1001, "Recent", 10, cutoff.Add(24*time.Hour)),
		scraped(1002, "Stale", 10, cutoff.Add(-24*time.Hour)),
	)
	recent := storyByHN(t, client.Client, 1001)
	stale := storyByHN(t, client.Client, 1002)

	goTag, err := svc.GetOrCreateTag(ctx, "Go")
	require.NoError(t, err)
	_, err = svc.GetOrCreateTag(ctx, "Rust")
	require.NoError(t, err)

	_, err = stories.AttachTags(ctx, recent.ID, []int{goTag.ID})
	require.NoError(t, err)
	_, err = stories.AttachTags(ctx, stale.ID, []int{goTag.ID})
	require.NoError(t, err)

	stats, err := svc.UsageStatsSince(ctx, cutoff)
	require.NoError(t, err)
	require.Len(t, stats, 2)

	assert.Equal(t, "Go", stats[0].Name, "rows come out ordered by level then name")
	assert.Equal(t, 2, stats[0].UsageCount, "all-time counter covers both attachments")
	assert.Equal(t, 1, stats[0].RecentCount, "windowed count sees only the recent story")

	assert.Equal(t, "Rust", stats[1].Name)
	assert.Zero(t, stats[1].UsageCount)
	assert.Zero(t, stats[1].RecentCount, "unused tags still report, with zero counts")
}

func TestTagService_MergeTags(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTagService(client.Client)
	stories := NewStoryService(client.Client)
	ctx := context.Background()
	now := time.Now().UTC()

	seedStories(t, stories,
		scraped(1101, "Both tags", 10, now),
		scraped(1102, "Source only", 10, now),
		scraped(1103, "Target only", 10, now),
	)
	s1 := storyByHN(t, client.Client, 1101)
	s2 := storyByHN(t, client.Client, 1102)
	s3 := storyByHN(t, client.Client, 1103)

	target, err := svc.GetOrCreateTag(ctx, "Python")
	require.NoError(t, err)
	source, err := svc.GetOrCreateTag(ctx, "python3")
	require.NoError(t, err)

	_, err = stories.AttachTags(ctx, s1.ID, []int{target.ID, source.ID})
	require.NoError(t, err)
	_, err = stories.AttachTags(ctx, s2.ID, []int{source.ID})
	require.NoError(t, err)
	_, err = stories.AttachTags(ctx, s3.ID, []int{target.ID})
	require.NoError(t, err)

	affected, err := svc.MergeTags(ctx, []int{source.ID}, target.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, affected, "affected counts the source's stories before the rewrite")

	_, err = svc.GetBySlug(ctx, "python3")
	assert.ErrorIs(t, err, ErrNotFound, "merged source tags are deleted")

	withTarget, err := svc.CountStoriesWithAnyTag(ctx, []int{target.ID})
	require.NoError(t, err)
	assert.Equal(t, 3, withTarget, "overlapping pairs must not duplicate")

	merged, err := client.Client.Tag.Get(ctx, target.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, merged.UsageCount, "usage counter is recounted from attachments")

	t.Run("no sources", func(t *testing.T) {
		affected, err := svc.MergeTags(ctx, nil, target.ID)
		require.NoError(t, err)
		assert.Zero(t, affected)
	})
}

func TestTagService_RetireTag(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTagService(client.Client)
	stories := NewStoryService(client.Client)
	ctx := context.Background()
	now := time.Now().UTC()

	seedStories(t, stories,
		scraped(1201, "Old only", 10, now),
		scraped(1202, "Old and new", 10, now),
		scraped(1203, "Doomed tag", 10, now),
	)
	s1 := storyByHN(t, client.Client, 1201)
	s2 := storyByHN(t, client.Client, 1202)
	s3 := storyByHN(t, client.Client, 1203)

	t.Run("with replacement", func(t *testing.T) {
		old, err := svc.GetOrCreateTag(ctx, "nodejs")
		require.NoError(t, err)
		replacement, err := svc.GetOrCreateTag(ctx, "Node.js")
		require.NoError(t, err)

		_, err = stories.AttachTags(ctx, s1.ID, []int{old.ID})
		require.NoError(t, err)
		_, err = stories.AttachTags(ctx, s2.ID, []int{old.ID, replacement.ID})
		require.NoError(t, err)

		affected, err := svc.RetireTag(ctx, old.ID, &replacement.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, affected)

		_, err = svc.GetBySlug(ctx, "nodejs")
		assert.ErrorIs(t, err, ErrNotFound)

		carried, err := svc.CountStoriesWithAnyTag(ctx, []int{replacement.ID})
		require.NoError(t, err)
		assert.Equal(t, 2, carried)

		repl, err := client.Client.Tag.Get(ctx, replacement.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, repl.UsageCount)
	})

	t.Run("without replacement", func(t *testing.T) {
		doomed, err := svc.GetOrCreateTag(ctx, "Web 2.0")
		require.NoError(t, err)
		_, err = stories.AttachTags(ctx, s3.ID, []int{doomed.ID})
		require.NoError(t, err)

		affected, err := svc.RetireTag(ctx, doomed.ID, nil)
		require.NoError(t, err)
		assert.Equal(t, 1, affected)

		got, err := stories.GetStory(ctx, s3.ID)
		require.NoError(t, err)
		assert.Empty(t, got.Edges.Tags, "attachments go away with the tag")
	})

	t.Run("unknown tag", func(t *testing.T) {
		_, err := svc.RetireTag(ctx, 999999, nil)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestTagService_CountStoriesWithAnyTag(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewTagService(client.Client)
	stories := NewStoryService(client.Client)
	ctx := context.Background()

	count, err := svc.CountStoriesWithAnyTag(ctx, nil)
	require.NoError(t, err)
	assert.Zero(t, count)

	seedStories(t, stories, scraped(1301, "Doubly tagged", 10, time.Now().UTC()))
	st := storyByHN(t, client.Client, 1301)

	t1, err := svc.GetOrCreateTag(ctx, "Go")
	require.NoError(t, err)
	t2, err := svc.GetOrCreateTag(ctx, "Rust")
	require.NoError(t, err)
	_, err = stories.AttachTags(ctx, st.ID, []int{t1.ID, t2.ID})
	require.NoError(t, err)

	count, err = svc.CountStoriesWithAnyTag(ctx, []int{t1.ID, t2.ID})
	require.NoError(t, err)
	assert.Equal(t, 1, count, "a story matching several tags counts once")
}
