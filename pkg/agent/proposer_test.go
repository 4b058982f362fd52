package agent

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hnscribe/hnscribe/pkg/config"
	"github.com/hnscribe/hnscribe/pkg/models"
)

func TestMergeDraftsFromDuplicates(t *testing.T) {
	pairs := []models.DuplicatePair{
		{Tag1: "Python", Tag2: "pythons", Count1: 5, Count2: 2, Similarity: 0.923},
		{Tag1: "postgres", Tag2: "postgresql", Count1: 10, Count2: 25, Similarity: 0.889},
	}

	drafts := mergeDraftsFromDuplicates(pairs)

	require.Len(t, drafts, 2)

	assert.Equal(t, models.ProposalMergeTags, drafts[0].Type)
	assert.Equal(t, models.PriorityMedium, drafts[0].Priority, "similarity above 0.9 bumps priority")
	assert.Equal(t, models.MergeData{SourceTags: []string{"pythons"}, TargetTag: "Python"}, drafts[0].Data)
	assert.Equal(t, 2, drafts[0].AffectedStories, "affected count is the losing tag's usage")
	assert.Contains(t, drafts[0].Reason, "'pythons' and 'Python' are 92% similar")

	assert.Equal(t, models.PriorityLow, drafts[1].Priority)
	assert.Equal(t, models.MergeData{SourceTags: []string{"postgres"}, TargetTag: "postgresql"}, drafts[1].Data,
		"merge folds into the more-used name")
	assert.Equal(t, 10, drafts[1].AffectedStories)
}

func TestMergeDraftsFromDuplicates_Ties(t *testing.T) {
	t.Run("equal usage keeps the first tag as target", func(t *testing.T) {
		pairs := []models.DuplicatePair{{Tag1: "k8s", Tag2: "kubernetes", Count1: 3, Count2: 3, Similarity: 0.95}}
		drafts := mergeDraftsFromDuplicates(pairs)
		require.Len(t, drafts, 1)
		assert.Equal(t, models.MergeData{SourceTags: []string{"kubernetes"}, TargetTag: "k8s"}, drafts[0].Data)
	})

	t.Run("similarity exactly at the bump threshold stays low", func(t *testing.T) {
		pairs := []models.DuplicatePair{{Tag1: "a", Tag2: "b", Count1: 1, Count2: 1, Similarity: 0.9}}
		drafts := mergeDraftsFromDuplicates(pairs)
		require.Len(t, drafts, 1)
		assert.Equal(t, models.PriorityLow, drafts[0].Priority)
	})
}

func TestPlanDrafts(t *testing.T) {
	plan := &models.ConsolidationPlan{
		MergeProposals: []models.MergeSuggestion{
			{SourceTags: []string{"golang"}, TargetTag: "Go", Reason: "Same language.", Priority: "High"},
			{SourceTags: []string{}, TargetTag: "Go", Reason: "no sources"},
			{SourceTags: []string{"zig"}, TargetTag: "", Reason: "no target"},
			{SourceTags: []string{"nodejs"}, TargetTag: "Node.js", Reason: "   ", Priority: "urgent"},
		},
		CreateProposals: []models.CreateSuggestion{
			{Name: "WebAssembly", Category: "Software", Reason: "Recurring topic.", Priority: "low"},
			{Name: "", Reason: "nameless entries are dropped"},
		},
		RetireProposals: []models.RetireSuggestion{
			{Name: "Web 2.0", Replacement: "Web", Priority: " LOW "},
			{Name: ""},
		},
	}

	drafts := planDrafts(plan)

	require.Len(t, drafts, 4, "entries with missing names are dropped")

	assert.Equal(t, models.ProposalMergeTags, drafts[0].Type)
	assert.Equal(t, models.PriorityHigh, drafts[0].Priority)
	assert.Equal(t, "Same language.", drafts[0].Reason)
	assert.Equal(t, models.MergeData{SourceTags: []string{"golang"}, TargetTag: "Go"}, drafts[0].Data)

	assert.Equal(t, models.PriorityMedium, drafts[1].Priority, "unknown priorities clamp to medium")
	assert.Equal(t, "Merge rarely used tags into 'Node.js'.", drafts[1].Reason, "blank reasons get a default")

	assert.Equal(t, models.ProposalCreateTag, drafts[2].Type)
	assert.Equal(t, models.PriorityLow, drafts[2].Priority)
	assert.Equal(t, models.CreateData{Name: "WebAssembly", Category: "Software"}, drafts[2].Data)

	assert.Equal(t, models.ProposalRetireTag, drafts[3].Type)
	assert.Equal(t, models.PriorityLow, drafts[3].Priority)
	assert.Equal(t, "Retire rarely used tag 'Web 2.0'.", drafts[3].Reason)
	assert.Equal(t, models.RetireData{Name: "Web 2.0", Replacement: "Web"}, drafts[3].Data)
}

func TestReviewDraftsFromBloat(t *testing.T) {
	tags := make([]models.TagUsage, 0, 16)
	total := 0
	for i := 0; i < 16; i++ {
		tags = append(tags, models.TagUsage{Name: fmt.Sprintf("tag-%02d", i), Count: i})
		total += i
	}

	drafts := reviewDraftsFromBloat([]models.BloatedCategory{
		{Category: "Software", TagCount: 16, Tags: tags},
	})

	require.Len(t, drafts, 1)
	d := drafts[0]
	assert.Equal(t, models.ProposalReviewCategory, d.Type)
	assert.Equal(t, models.PriorityLow, d.Priority)
	assert.Equal(t, total, d.AffectedStories, "affected stories sums usage across the whole category")
	assert.Contains(t, d.Reason, "'Software' has 16 tags")
	assert.Contains(t, d.Reason, "limit of 15")

	data, ok := d.Data.(models.ReviewData)
	require.True(t, ok)
	assert.Equal(t, "Software", data.Category)
	assert.Equal(t, 16, data.TagCount)
	assert.Len(t, data.Tags, 10, "payload samples the first ten tags")
	assert.Equal(t, "tag-00", data.Tags[0].Name)
}

func TestSortDrafts(t *testing.T) {
	drafts := []models.ProposalDraft{
		{Type: "a", Priority: models.PriorityLow, AffectedStories: 5},
		{Type: "b", Priority: models.PriorityHigh, AffectedStories: 1},
		{Type: "c", Priority: models.PriorityMedium, AffectedStories: 10},
		{Type: "d", Priority: models.PriorityMedium, AffectedStories: 3},
		{Type: "e", Priority: "???", AffectedStories: 99},
	}

	sortDrafts(drafts)

	got := make([]string, 0, len(drafts))
	for _, d := range drafts {
		got = append(got, d.Type)
	}
	assert.Equal(t, []string{"b", "c", "d", "e", "a"}, got,
		"priority first, widest blast radius next; unknown priorities rank low")
}

func TestNormalizePriority(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "low", expected: models.PriorityLow},
		{input: " LOW ", expected: models.PriorityLow},
		{input: "high", expected: models.PriorityHigh},
		{input: "High", expected: models.PriorityHigh},
		{input: "medium", expected: models.PriorityMedium},
		{input: "urgent", expected: models.PriorityMedium},
		{input: "", expected: models.PriorityMedium},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.input), func(t *testing.T) {
			assert.Equal(t, tt.expected, normalizePriority(tt.input))
		})
	}
}

func TestProposer_Propose(t *testing.T) {
	cfg := &config.Config{
		AgentModel:              "gpt-4o-mini",
		AgentMinTagUsage:        3,
		AgentMaxProposalsPerRun: 3,
	}
	proposer, err := NewProposer(nil, cfg)
	require.NoError(t, err)

	analysis := &models.TaxonomyAnalysis{
		DuplicateCandidates: []models.DuplicatePair{
			{Tag1: "a1", Tag2: "a2", Count1: 1, Count2: 9, Similarity: 0.95},
			{Tag1: "b1", Tag2: "b2", Count1: 8, Count2: 2, Similarity: 0.95},
			{Tag1: "c1", Tag2: "c2", Count1: 5, Count2: 4, Similarity: 0.86},
		},
		// Sparse tags need the oracle; without model access they produce
		// no drafts instead of failing the run.
		SparseTags: []models.SparseTag{{Name: "zig", Level: 2, RecentCount: 1}},
		BloatedCategories: []models.BloatedCategory{
			{Category: "Software", TagCount: 16, Tags: []models.TagUsage{{Name: "x", Count: 16}}},
		},
	}

	drafts := proposer.Propose(context.Background(), analysis)

	require.Len(t, drafts, 3, "drafts beyond the per-run limit are cut")
	assert.Equal(t, models.MergeData{SourceTags: []string{"b2"}, TargetTag: "b1"}, drafts[0].Data)
	assert.Equal(t, models.MergeData{SourceTags: []string{"a1"}, TargetTag: "a2"}, drafts[1].Data)
	assert.Equal(t, models.ProposalReviewCategory, drafts[2].Type)
}

func TestConsolidationPrompt(t *testing.T) {
	sample := []models.SparseTag{
		{Name: "zig", Level: 2, RecentCount: 1},
		{Name: "Erlang", Level: 2, RecentCount: 2},
	}

	prompt := consolidationPrompt(sample, 3)

	assert.Contains(t, prompt, "Tech", "canonical L1 vocabulary is included")
	assert.Contains(t, prompt, "EU", "canonical L2 vocabulary is included")
	assert.Contains(t, prompt, "fewer than 3 recent uses")
	assert.Contains(t, prompt, `"zig"`)
	assert.Contains(t, prompt, `"Erlang"`)
	assert.Contains(t, prompt, "Be conservative")
}
