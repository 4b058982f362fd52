package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hnscribe/hnscribe/ent"
	"github.com/hnscribe/hnscribe/ent/agentrun"
	"github.com/hnscribe/hnscribe/ent/tagproposal"
	"github.com/hnscribe/hnscribe/pkg/config"
	"github.com/hnscribe/hnscribe/pkg/models"
	"github.com/hnscribe/hnscribe/pkg/services"
)

func TestOrchestrator_IsLowRisk(t *testing.T) {
	cfg := &config.Config{AgentAutoApproveMaxAffected: 5}
	o := NewOrchestrator(nil, nil, nil, nil, cfg)

	tests := []struct {
		name     string
		proposal *ent.TagProposal
		expected bool
	}{
		{
			name: "small merge",
			proposal: &ent.TagProposal{
				ProposalType:         tagproposal.ProposalTypeMergeTags,
				Priority:             tagproposal.PriorityLow,
				AffectedStoriesCount: 3,
			},
			expected: true,
		},
		{
			name: "retirement at the affected limit",
			proposal: &ent.TagProposal{
				ProposalType:         tagproposal.ProposalTypeRetireTag,
				Priority:             tagproposal.PriorityMedium,
				AffectedStoriesCount: 5,
			},
			expected: true,
		},
		{
			name: "merge over the affected limit",
			proposal: &ent.TagProposal{
				ProposalType:         tagproposal.ProposalTypeMergeTags,
				Priority:             tagproposal.PriorityLow,
				AffectedStoriesCount: 6,
			},
			expected: false,
		},
		{
			name: "high priority never auto-approves",
			proposal: &ent.TagProposal{
				ProposalType:         tagproposal.ProposalTypeMergeTags,
				Priority:             tagproposal.PriorityHigh,
				AffectedStoriesCount: 1,
			},
			expected: false,
		},
		{
			name: "tag creation is not low risk",
			proposal: &ent.TagProposal{
				ProposalType:         tagproposal.ProposalTypeCreateTag,
				Priority:             tagproposal.PriorityLow,
				AffectedStoriesCount: 0,
			},
			expected: false,
		},
		{
			name: "category review is not low risk",
			proposal: &ent.TagProposal{
				ProposalType:         tagproposal.ProposalTypeReviewCategory,
				Priority:             tagproposal.PriorityLow,
				AffectedStoriesCount: 0,
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, o.IsLowRisk(tt.proposal))
		})
	}
}

func newOrchestratorHarness(t *testing.T) (*agentHarness, *Orchestrator) {
	t.Helper()
	h := newAgentHarness(t)
	cfg := &config.Config{
		AgentAnalysisWindowDays:     30,
		AgentMinTagUsage:            3,
		AgentMaxProposalsPerRun:     10,
		AgentEnableAutoApprove:      true,
		AgentAutoApproveMaxAffected: 5,
	}
	proposer, err := NewProposer(nil, cfg)
	require.NoError(t, err)
	orch := NewOrchestrator(
		h.agents,
		NewAnalyzer(h.tags, h.stories, cfg),
		proposer,
		NewReorganizer(h.agents, h.tags),
		cfg,
	)
	return h, orch
}

// seedNearDuplicates stores three stories whose tags differ only by a
// trailing letter, enough for one merge proposal and nothing else.
func seedNearDuplicates(t *testing.T, h *agentHarness) {
	t.Helper()
	h.seedTaggedStory(t, 1, "First", "webfoo")
	h.seedTaggedStory(t, 2, "Second", "webfoos")
	h.seedTaggedStory(t, 3, "Third", "webfoos")
}

func TestOrchestrator_RunAnalysis(t *testing.T) {
	ctx := context.Background()
	h, orch := newOrchestratorHarness(t)
	seedNearDuplicates(t, h)

	run, err := orch.RunAnalysis(ctx)
	require.NoError(t, err)
	assert.Equal(t, agentrun.RunTypeAnalysis, run.RunType)
	assert.Equal(t, agentrun.StatusCompleted, run.Status)
	assert.NotNil(t, run.CompletedAt)

	refreshed, err := h.agents.GetRun(ctx, run.ID)
	require.NoError(t, err)
	report, ok := refreshed.ResultData["analysis"].(map[string]interface{})
	require.True(t, ok, "analysis report is stored on the run")
	assert.EqualValues(t, 2, report["total_tags"])
	assert.EqualValues(t, 3, report["total_stories"])
	duplicates, ok := report["duplicate_candidates"].([]interface{})
	require.True(t, ok)
	assert.Len(t, duplicates, 1)

	pending, err := h.agents.CountPending(ctx)
	require.NoError(t, err)
	assert.Zero(t, pending, "analysis alone creates no proposals")
}

func TestOrchestrator_RunProposal(t *testing.T) {
	ctx := context.Background()
	h, orch := newOrchestratorHarness(t)
	seedNearDuplicates(t, h)

	run, err := orch.RunProposal(ctx)
	require.NoError(t, err)
	assert.Equal(t, agentrun.RunTypeProposal, run.RunType)
	assert.Equal(t, agentrun.StatusCompleted, run.Status)
	assert.EqualValues(t, 1, run.ResultData["proposals_created"])
	assert.EqualValues(t, 0, run.ResultData["auto_approved"])
	assert.Equal(t, "1 proposals created, 0 auto-approved", run.ResultData["summary"])

	proposals, err := h.agents.ProposalsByRun(ctx, run.ID)
	require.NoError(t, err)
	require.Len(t, proposals, 1)

	p := proposals[0]
	assert.Equal(t, tagproposal.StatusPending, p.Status, "proposal runs never approve")
	assert.Equal(t, tagproposal.ProposalTypeMergeTags, p.ProposalType)
	assert.Equal(t, tagproposal.PriorityMedium, p.Priority)
	assert.Equal(t, 1, p.AffectedStoriesCount)
	assert.Equal(t, "Tags 'webfoo' and 'webfoos' are 92% similar. Merging into 'webfoos' for consistency.", p.Reason)

	data, err := models.DecodeMergeData(p.Data)
	require.NoError(t, err)
	assert.Equal(t, []string{"webfoo"}, data.SourceTags)
	assert.Equal(t, "webfoos", data.TargetTag)
}

func TestOrchestrator_RunAutoApply(t *testing.T) {
	ctx := context.Background()
	h, orch := newOrchestratorHarness(t)
	seedNearDuplicates(t, h)

	run, err := orch.RunAutoApply(ctx)
	require.NoError(t, err)
	assert.Equal(t, agentrun.RunTypeAutoApply, run.RunType)
	assert.EqualValues(t, 1, run.ResultData["auto_approved"])

	proposals, err := h.agents.ProposalsByRun(ctx, run.ID)
	require.NoError(t, err)
	require.Len(t, proposals, 1)
	p := proposals[0]
	assert.Equal(t, tagproposal.StatusApproved, p.Status)
	require.NotNil(t, p.ReviewedBy)
	assert.Equal(t, "auto-approver", *p.ReviewedBy)
	assert.NotNil(t, p.ReviewedAt)

	results, err := orch.ExecuteAllApproved(ctx, false)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, models.ExecutionExecuted, results[0].Status)
	assert.Equal(t, "merge", results[0].Action)
	assert.Equal(t, 1, results[0].AffectedStories)

	_, err = h.tags.GetBySlug(ctx, "webfoo")
	assert.ErrorIs(t, err, services.ErrNotFound)
	target, err := h.tags.GetBySlug(ctx, "webfoos")
	require.NoError(t, err)
	assert.Equal(t, 3, target.UsageCount)

	executed, err := h.agents.GetProposal(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, tagproposal.StatusExecuted, executed.Status)

	runs, err := h.agents.ListRuns(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, agentrun.RunTypeExecution, runs[0].RunType)
	assert.Equal(t, agentrun.StatusCompleted, runs[0].Status)
	assert.Equal(t, agentrun.RunTypeAutoApply, runs[1].RunType)
}

func TestOrchestrator_ExecuteProposal_RunBookkeeping(t *testing.T) {
	ctx := context.Background()
	h, orch := newOrchestratorHarness(t)

	h.seedTaggedStory(t, 40, "Obsolete", "Flash")
	p := h.approvedProposal(t, models.ProposalDraft{
		Type: models.ProposalRetireTag,
		Data: models.RetireData{Name: "Flash"},
	})

	runsBefore, err := h.agents.ListRuns(ctx, 50)
	require.NoError(t, err)

	result, err := orch.ExecuteProposal(ctx, p.ID, true)
	require.NoError(t, err)
	assert.True(t, result.DryRun)
	assert.Equal(t, 1, result.AffectedStories)

	runsAfter, err := h.agents.ListRuns(ctx, 50)
	require.NoError(t, err)
	assert.Len(t, runsAfter, len(runsBefore), "dry runs leave no execution run behind")

	t.Run("failed execution is recorded", func(t *testing.T) {
		run, err := h.agents.CreateRun(ctx, agentrun.RunTypeProposal)
		require.NoError(t, err)
		pending, err := h.agents.CreateProposal(ctx, run.ID, models.ProposalDraft{
			Type: models.ProposalRetireTag,
			Data: models.RetireData{Name: "Flash"},
		})
		require.NoError(t, err)

		_, err = orch.ExecuteProposal(ctx, pending.ID, false)
		require.ErrorIs(t, err, services.ErrInvalidInput)

		runs, err := h.agents.ListRuns(ctx, 50)
		require.NoError(t, err)
		require.NotEmpty(t, runs)
		assert.Equal(t, agentrun.RunTypeExecution, runs[0].RunType)
		assert.Equal(t, agentrun.StatusFailed, runs[0].Status)
		require.NotNil(t, runs[0].ErrorMessage)
		assert.Contains(t, *runs[0].ErrorMessage, "only approved proposals")
	})
}
