package agent

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hnscribe/hnscribe/pkg/config"
	"github.com/hnscribe/hnscribe/pkg/models"
)

func strPtr(s string) *string { return &s }

func TestUnevenDistribution(t *testing.T) {
	stats := []models.TagStat{
		{Name: "Tech", Level: 1, RecentCount: 31},
		{Name: "Science", Level: 1, RecentCount: 30},
		{Name: "Business", Level: 1, RecentCount: 4},
		{Name: "World", Level: 1, RecentCount: 5},
		{Name: "Culture", Level: 1, RecentCount: 0},
		{Name: "Go", Level: 2, Category: strPtr("Software"), RecentCount: 80},
	}

	issues := unevenDistribution(stats, 100)

	require.Len(t, issues, 2)
	assert.Equal(t, models.DistributionIssue{
		Tag:        "Tech",
		Issue:      "overrepresented",
		Percentage: 31,
		StoryCount: 31,
	}, issues[0])
	assert.Equal(t, models.DistributionIssue{
		Tag:        "Business",
		Issue:      "underrepresented",
		Percentage: 4,
		StoryCount: 4,
	}, issues[1])
}

func TestUnevenDistribution_EdgeCases(t *testing.T) {
	t.Run("no stories in window", func(t *testing.T) {
		stats := []models.TagStat{{Name: "Tech", Level: 1, RecentCount: 10}}
		assert.Empty(t, unevenDistribution(stats, 0))
	})

	t.Run("zero usage is not underrepresented", func(t *testing.T) {
		stats := []models.TagStat{{Name: "Culture", Level: 1, RecentCount: 0}}
		assert.Empty(t, unevenDistribution(stats, 50))
	})

	t.Run("percentage rounds to two decimals", func(t *testing.T) {
		stats := []models.TagStat{{Name: "Science", Level: 1, RecentCount: 1}}
		issues := unevenDistribution(stats, 30)
		require.Len(t, issues, 1)
		assert.Equal(t, 3.33, issues[0].Percentage)
	})
}

func TestBloatedCategories(t *testing.T) {
	software := categoryStats("Software", 16)
	science := categoryStats("Science", 15)

	stats := append(software, science...)
	stats = append(stats,
		models.TagStat{Name: "Tech", Level: 1, RecentCount: 40},
		models.TagStat{Name: "OpenAI", Level: 3, RecentCount: 12},
		models.TagStat{Name: "Drifter", Level: 2, Category: nil, RecentCount: 3},
		models.TagStat{Name: "Blank", Level: 2, Category: strPtr(""), RecentCount: 3},
	)

	bloated := bloatedCategories(stats)

	require.Len(t, bloated, 1, "only the 16-tag category crosses the limit")
	assert.Equal(t, "Software", bloated[0].Category)
	assert.Equal(t, 16, bloated[0].TagCount)
	require.Len(t, bloated[0].Tags, 16)
	assert.Equal(t, "Software-tag-15", bloated[0].Tags[0].Name, "highest usage first")
	assert.Equal(t, 15, bloated[0].Tags[0].Count)
	assert.Equal(t, "Software-tag-00", bloated[0].Tags[15].Name)
}

func TestBloatedCategories_Ordering(t *testing.T) {
	stats := append(categoryStats("Zulu", 16), categoryStats("Alpha", 16)...)

	// Two tags tie on usage; name breaks the tie.
	stats = append(stats,
		models.TagStat{Name: "zebra", Level: 2, Category: strPtr("Ties"), RecentCount: 7},
		models.TagStat{Name: "apple", Level: 2, Category: strPtr("Ties"), RecentCount: 7},
	)
	for i := 0; i < 14; i++ {
		stats = append(stats, models.TagStat{
			Name:     fmt.Sprintf("filler-%02d", i),
			Level:    2,
			Category: strPtr("Ties"),
		})
	}

	bloated := bloatedCategories(stats)

	require.Len(t, bloated, 3)
	assert.Equal(t, "Alpha", bloated[0].Category, "categories come out name-sorted")
	assert.Equal(t, "Ties", bloated[1].Category)
	assert.Equal(t, "Zulu", bloated[2].Category)

	ties := bloated[1].Tags
	require.Len(t, ties, 16)
	assert.Equal(t, "apple", ties[0].Name)
	assert.Equal(t, "zebra", ties[1].Name)
}

// categoryStats builds n L2 tags in one category with usage counts 0..n-1.
func categoryStats(category string, n int) []models.TagStat {
	stats := make([]models.TagStat, 0, n)
	for i := 0; i < n; i++ {
		stats = append(stats, models.TagStat{
			Name:        fmt.Sprintf("%s-tag-%02d", category, i),
			Level:       2,
			Category:    &category,
			RecentCount: i,
		})
	}
	return stats
}

func TestSparseTags(t *testing.T) {
	stats := []models.TagStat{
		{Name: "Tech", Level: 1, RecentCount: 0},
		{Name: "Go", Level: 2, RecentCount: 3},
		{Name: "Zig", Level: 2, RecentCount: 1},
		{Name: "Nim", Level: 2, RecentCount: 1},
		{Name: "Crystal", Level: 2, RecentCount: 0},
		{Name: "OpenAI", Level: 3, RecentCount: 0},
	}

	sparse := sparseTags(stats, 3)

	require.Len(t, sparse, 4, "L1 tags and tags at the threshold stay out")
	assert.Equal(t, []models.SparseTag{
		{Name: "Crystal", Level: 2, RecentCount: 0},
		{Name: "Nim", Level: 2, RecentCount: 1},
		{Name: "Zig", Level: 2, RecentCount: 1},
		{Name: "OpenAI", Level: 3, RecentCount: 0},
	}, sparse)
}

func TestDuplicateCandidates(t *testing.T) {
	stats := []models.TagStat{
		{Name: "Tech", Level: 1, RecentCount: 40},
		{Name: "Techs", Level: 2, Category: strPtr("Software"), RecentCount: 1},
		{Name: "Python", Level: 2, Category: strPtr("Software"), RecentCount: 5},
		{Name: "pythons", Level: 3, RecentCount: 2},
		{Name: "postgres", Level: 2, Category: strPtr("Software"), RecentCount: 10},
		{Name: "postgresql", Level: 2, Category: strPtr("Software"), RecentCount: 25},
		{Name: "java", Level: 2, Category: strPtr("Software"), RecentCount: 9},
		{Name: "javascript", Level: 2, Category: strPtr("Software"), RecentCount: 30},
	}

	pairs := duplicateCandidates(stats)

	require.Len(t, pairs, 2)
	assert.Equal(t, models.DuplicatePair{
		Tag1:       "Python",
		Tag2:       "pythons",
		Count1:     5,
		Count2:     2,
		Similarity: 0.923,
	}, pairs[0], "closest pair first, compared case-insensitively")
	assert.Equal(t, models.DuplicatePair{
		Tag1:       "postgres",
		Tag2:       "postgresql",
		Count1:     10,
		Count2:     25,
		Similarity: 0.889,
	}, pairs[1])
}

func TestDuplicateCandidates_ExcludesL1(t *testing.T) {
	// Tech/Techs would score 0.889 but L1 tags never merge away.
	stats := []models.TagStat{
		{Name: "Tech", Level: 1, RecentCount: 40},
		{Name: "Techs", Level: 2, RecentCount: 1},
	}
	assert.Empty(t, duplicateCandidates(stats))
}

func TestDuplicateCandidates_ThresholdIsStrict(t *testing.T) {
	// LCS 17 over lengths 20+20 lands exactly on 0.85.
	stats := []models.TagStat{
		{Name: "aaaaaaaaaaaaaaaaaxyz", Level: 2, RecentCount: 1},
		{Name: "aaaaaaaaaaaaaaaaaqrs", Level: 2, RecentCount: 1},
	}
	assert.Empty(t, duplicateCandidates(stats))
}

func TestAnalyzer_Analyze(t *testing.T) {
	ctx := context.Background()
	h := newAgentHarness(t)
	a := NewAnalyzer(h.tags, h.stories, &config.Config{
		AgentAnalysisWindowDays: 30,
		AgentMinTagUsage:        3,
	})

	// 25 windowed stories: 8 Tech (32%), 1 Business (4%), two carrying
	// only unknown tags, the rest untagged.
	for i := int64(1); i <= 8; i++ {
		h.seedTaggedStory(t, i, fmt.Sprintf("Tech story %d", i), "Tech")
	}
	h.seedTaggedStory(t, 9, "Business story", "Business")
	h.seedTaggedStory(t, 10, "Orphan one", "webfoo")
	h.seedTaggedStory(t, 11, "Orphan two", "webfoos")
	for i := int64(12); i <= 25; i++ {
		h.seedTaggedStory(t, i, fmt.Sprintf("Untagged %d", i))
	}

	// A story older than the window must not move any counter.
	// hn_created_at is immutable in the ent schema, so backdate the row
	// directly instead of going through the update builder.
	old := h.seedTaggedStory(t, 26, "Ancient tech story", "Tech")
	_, err := h.client.Client.ExecContext(ctx,
		"UPDATE stories SET hn_created_at = $1 WHERE id = $2",
		time.Now().UTC().AddDate(0, 0, -60), old.ID)
	require.NoError(t, err)

	analysis, err := a.Analyze(ctx)
	require.NoError(t, err)

	assert.Equal(t, 30, analysis.WindowDays)
	assert.Equal(t, 4, analysis.TotalTags)
	assert.Equal(t, 25, analysis.TotalStories)
	assert.Equal(t, 2, analysis.OrphanStories)
	assert.Empty(t, analysis.BloatedCategories)

	require.Len(t, analysis.UnevenDistribution, 2)
	assert.Equal(t, models.DistributionIssue{
		Tag:        "Business",
		Issue:      "underrepresented",
		Percentage: 4,
		StoryCount: 1,
	}, analysis.UnevenDistribution[0])
	assert.Equal(t, models.DistributionIssue{
		Tag:        "Tech",
		Issue:      "overrepresented",
		Percentage: 32,
		StoryCount: 8,
	}, analysis.UnevenDistribution[1])

	require.Len(t, analysis.SparseTags, 2)
	assert.Equal(t, models.SparseTag{Name: "webfoo", Level: 3, RecentCount: 1}, analysis.SparseTags[0])
	assert.Equal(t, models.SparseTag{Name: "webfoos", Level: 3, RecentCount: 1}, analysis.SparseTags[1])

	require.Len(t, analysis.DuplicateCandidates, 1)
	assert.Equal(t, models.DuplicatePair{
		Tag1:       "webfoo",
		Tag2:       "webfoos",
		Count1:     1,
		Count2:     1,
		Similarity: 0.923,
	}, analysis.DuplicateCandidates[0])
}
