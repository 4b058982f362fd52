package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hnscribe/hnscribe/ent/agentrun"
	"github.com/hnscribe/hnscribe/ent/tagproposal"
	"github.com/hnscribe/hnscribe/pkg/models"
	testdb "github.com/hnscribe/hnscribe/test/database"
)

func TestAgentService_RunLifecycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewAgentService(client.Client)
	ctx := context.Background()

	run, err := svc.CreateRun(ctx, agentrun.RunTypeAnalysis)
	require.NoError(t, err)
	assert.NotEmpty(t, run.ID)
	assert.Equal(t, agentrun.RunTypeAnalysis, run.RunType)
	assert.Equal(t, agentrun.StatusRunning, run.Status)
	assert.Nil(t, run.CompletedAt)

	t.Run("complete", func(t *testing.T) {
		done, err := svc.CompleteRun(ctx, run.ID, map[string]interface{}{"summary": "looked at tags"})
		require.NoError(t, err)
		assert.Equal(t, agentrun.StatusCompleted, done.Status)
		require.NotNil(t, done.CompletedAt)
		assert.Equal(t, "looked at tags", done.ResultData["summary"])
	})

	t.Run("fail another run", func(t *testing.T) {
		failing, err := svc.CreateRun(ctx, agentrun.RunTypeProposal)
		require.NoError(t, err)
		require.NoError(t, svc.FailRun(ctx, failing.ID, context.DeadlineExceeded))

		got, err := svc.GetRun(ctx, failing.ID)
		require.NoError(t, err)
		assert.Equal(t, agentrun.StatusFailed, got.Status)
		require.NotNil(t, got.ErrorMessage)
		assert.Equal(t, context.DeadlineExceeded.Error(), *got.ErrorMessage)
	})

	t.Run("latest and listing", func(t *testing.T) {
		latest, err := svc.LatestRun(ctx)
		require.NoError(t, err)
		assert.Equal(t, agentrun.RunTypeProposal, latest.RunType)

		runs, err := svc.ListRuns(ctx, 10)
		require.NoError(t, err)
		require.Len(t, runs, 2)
		assert.Equal(t, latest.ID, runs[0].ID, "newest first")
	})

	t.Run("unknown ids", func(t *testing.T) {
		_, err := svc.CompleteRun(ctx, "missing", nil)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.ErrorIs(t, svc.FailRun(ctx, "missing", context.Canceled), ErrNotFound)
		_, err = svc.GetRun(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestAgentService_LatestRun_Empty(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewAgentService(client.Client)

	_, err := svc.LatestRun(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAgentService_ProposalLifecycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewAgentService(client.Client)
	ctx := context.Background()

	run, err := svc.CreateRun(ctx, agentrun.RunTypeProposal)
	require.NoError(t, err)

	p, err := svc.CreateProposal(ctx, run.ID, models.ProposalDraft{
		Type:            models.ProposalMergeTags,
		Priority:        models.PriorityMedium,
		Reason:          "Near-duplicate names.",
		Data:            models.MergeData{SourceTags: []string{"golang"}, TargetTag: "Go"},
		AffectedStories: 4,
	})
	require.NoError(t, err)
	assert.Equal(t, tagproposal.StatusPending, p.Status)
	assert.Equal(t, tagproposal.ProposalTypeMergeTags, p.ProposalType)
	assert.Equal(t, tagproposal.PriorityMedium, p.Priority)
	assert.Equal(t, run.ID, p.AgentRunID)
	assert.Equal(t, 4, p.AffectedStoriesCount)

	decoded, err := models.DecodeMergeData(p.Data)
	require.NoError(t, err)
	assert.Equal(t, []string{"golang"}, decoded.SourceTags)
	assert.Equal(t, "Go", decoded.TargetTag)

	t.Run("approve", func(t *testing.T) {
		approved, err := svc.ApproveProposal(ctx, p.ID, "alice")
		require.NoError(t, err)
		assert.Equal(t, tagproposal.StatusApproved, approved.Status)
		require.NotNil(t, approved.ReviewedBy)
		assert.Equal(t, "alice", *approved.ReviewedBy)
		assert.NotNil(t, approved.ReviewedAt)
	})

	t.Run("reviewing twice is rejected", func(t *testing.T) {
		_, err := svc.ApproveProposal(ctx, p.ID, "bob")
		assert.ErrorIs(t, err, ErrInvalidInput)
		_, err = svc.RejectProposal(ctx, p.ID, "bob")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("execute approved", func(t *testing.T) {
		executed, err := svc.MarkExecuted(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, tagproposal.StatusExecuted, executed.Status)
		assert.NotNil(t, executed.ExecutedAt)
	})

	t.Run("only approved proposals execute", func(t *testing.T) {
		pending, err := svc.CreateProposal(ctx, run.ID, models.ProposalDraft{
			Type:     models.ProposalRetireTag,
			Priority: models.PriorityLow,
			Reason:   "Unused.",
			Data:     models.RetireData{Name: "Web 2.0"},
		})
		require.NoError(t, err)

		_, err = svc.MarkExecuted(ctx, pending.ID)
		assert.ErrorIs(t, err, ErrInvalidInput)

		rejected, err := svc.RejectProposal(ctx, pending.ID, "carol")
		require.NoError(t, err)
		assert.Equal(t, tagproposal.StatusRejected, rejected.Status)
	})

	t.Run("run loads its proposals", func(t *testing.T) {
		got, err := svc.GetRun(ctx, run.ID)
		require.NoError(t, err)
		assert.Len(t, got.Edges.Proposals, 2)
	})

	t.Run("unknown proposal", func(t *testing.T) {
		_, err := svc.GetProposal(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = svc.ApproveProposal(ctx, "missing", "alice")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestAgentService_ProposalQueries(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewAgentService(client.Client)
	ctx := context.Background()

	run, err := svc.CreateRun(ctx, agentrun.RunTypeProposal)
	require.NoError(t, err)

	p1, err := svc.CreateProposal(ctx, run.ID, models.ProposalDraft{
		Type:     models.ProposalMergeTags,
		Priority: models.PriorityLow,
		Reason:   "merge",
		Data:     models.MergeData{SourceTags: []string{"a"}, TargetTag: "b"},
	})
	require.NoError(t, err)
	p2, err := svc.CreateProposal(ctx, run.ID, models.ProposalDraft{
		Type:     models.ProposalCreateTag,
		Priority: models.PriorityLow,
		Reason:   "create",
		Data:     models.CreateData{Name: "WebAssembly"},
	})
	require.NoError(t, err)
	p3, err := svc.CreateProposal(ctx, run.ID, models.ProposalDraft{
		Type:     models.ProposalRetireTag,
		Priority: models.PriorityLow,
		Reason:   "retire",
		Data:     models.RetireData{Name: "Web 2.0"},
	})
	require.NoError(t, err)

	_, err = svc.ApproveProposal(ctx, p2.ID, "alice")
	require.NoError(t, err)

	t.Run("list all", func(t *testing.T) {
		all, err := svc.ListProposals(ctx, "", 50)
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, p3.ID, all[0].ID, "newest first")
	})

	t.Run("narrow by status", func(t *testing.T) {
		pending, err := svc.ListProposals(ctx, "pending", 50)
		require.NoError(t, err)
		assert.Len(t, pending, 2)

		_, err = svc.ListProposals(ctx, "bogus", 50)
		assert.True(t, IsValidationError(err), "unknown statuses are rejected up front")
	})

	t.Run("approved queue", func(t *testing.T) {
		approved, err := svc.ApprovedProposals(ctx)
		require.NoError(t, err)
		require.Len(t, approved, 1)
		assert.Equal(t, p2.ID, approved[0].ID)
	})

	t.Run("pending count", func(t *testing.T) {
		count, err := svc.CountPending(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("by run in creation order", func(t *testing.T) {
		byRun, err := svc.ProposalsByRun(ctx, run.ID)
		require.NoError(t, err)
		require.Len(t, byRun, 3)
		assert.Equal(t, p1.ID, byRun[0].ID)
		assert.Equal(t, p3.ID, byRun[2].ID)
	})
}
