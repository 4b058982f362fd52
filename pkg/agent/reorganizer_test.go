package agent

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hnscribe/hnscribe/ent"
	"github.com/hnscribe/hnscribe/ent/agentrun"
	"github.com/hnscribe/hnscribe/ent/story"
	"github.com/hnscribe/hnscribe/ent/tagproposal"
	"github.com/hnscribe/hnscribe/pkg/database"
	"github.com/hnscribe/hnscribe/pkg/models"
	"github.com/hnscribe/hnscribe/pkg/services"
	testdb "github.com/hnscribe/hnscribe/test/database"
)

type agentHarness struct {
	client  *database.Client
	agents  *services.AgentService
	tags    *services.TagService
	stories *services.StoryService
}

func newAgentHarness(t *testing.T) *agentHarness {
	t.Helper()
	client := testdb.NewTestClient(t)
	return &agentHarness{
		client:  client,
		agents:  services.NewAgentService(client.Client),
		tags:    services.NewTagService(client.Client),
		stories: services.NewStoryService(client.Client),
	}
}

// seedTaggedStory stores a recent story carrying the given tags, creating
// the tags as needed.
func (h *agentHarness) seedTaggedStory(t *testing.T, hnID int64, title string, tagNames ...string) *ent.Story {
	t.Helper()
	ctx := context.Background()
	url := fmt.Sprintf("https://example.com/%d", hnID)
	_, err := h.stories.UpsertBatch(ctx, []*models.ScrapedStory{{
		HNID:         hnID,
		Title:        title,
		URL:          &url,
		Score:        10,
		Author:       "tester",
		CommentCount: 1,
		HNCreatedAt:  time.Now().UTC().Add(-time.Hour),
	}})
	require.NoError(t, err)

	st, err := h.client.Client.Story.Query().Where(story.HnID(hnID)).Only(ctx)
	require.NoError(t, err)

	ids := make([]int, 0, len(tagNames))
	for _, name := range tagNames {
		tag, err := h.tags.GetOrCreateTag(ctx, name)
		require.NoError(t, err)
		ids = append(ids, tag.ID)
	}
	_, err = h.stories.AttachTags(ctx, st.ID, ids)
	require.NoError(t, err)
	return st
}

// approvedProposal persists draft under a fresh run and approves it.
func (h *agentHarness) approvedProposal(t *testing.T, draft models.ProposalDraft) *ent.TagProposal {
	t.Helper()
	ctx := context.Background()
	run, err := h.agents.CreateRun(ctx, agentrun.RunTypeProposal)
	require.NoError(t, err)
	p, err := h.agents.CreateProposal(ctx, run.ID, draft)
	require.NoError(t, err)
	approved, err := h.agents.ApproveProposal(ctx, p.ID, "alice")
	require.NoError(t, err)
	return approved
}

func (h *agentHarness) storyTagNames(t *testing.T, storyID int) []string {
	t.Helper()
	st, err := h.stories.GetStory(context.Background(), storyID)
	require.NoError(t, err)
	names := make([]string, 0, len(st.Edges.Tags))
	for _, tag := range st.Edges.Tags {
		names = append(names, tag.Name)
	}
	return names
}

func TestReorganizer_ExecuteMerge(t *testing.T) {
	ctx := context.Background()
	h := newAgentHarness(t)
	r := NewReorganizer(h.agents, h.tags)

	s1 := h.seedTaggedStory(t, 1, "First", "webpack4")
	s2 := h.seedTaggedStory(t, 2, "Second", "webpack4", "webpack5")
	s3 := h.seedTaggedStory(t, 3, "Third", "Webpack")

	p := h.approvedProposal(t, models.ProposalDraft{
		Type:            models.ProposalMergeTags,
		Priority:        models.PriorityMedium,
		Reason:          "Versioned duplicates of the same tool.",
		Data:            models.MergeData{SourceTags: []string{"webpack4", "webpack5"}, TargetTag: "Webpack"},
		AffectedStories: 2,
	})

	result, err := r.Execute(ctx, p.ID, true)
	require.NoError(t, err)
	assert.Equal(t, "merge", result.Action)
	assert.Equal(t, models.ExecutionDryRun, result.Status)
	assert.Equal(t, 2, result.AffectedStories)
	assert.True(t, result.DryRun)

	_, err = h.tags.GetBySlug(ctx, "webpack4")
	require.NoError(t, err, "dry run must not touch tags")
	unchanged, err := h.agents.GetProposal(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, tagproposal.StatusApproved, unchanged.Status, "dry run must not consume the proposal")

	result, err = r.Execute(ctx, p.ID, false)
	require.NoError(t, err)
	assert.Equal(t, models.ExecutionExecuted, result.Status)
	assert.Equal(t, 2, result.AffectedStories)
	assert.Equal(t, "merged 2 tags into 'Webpack'", result.Details)

	_, err = h.tags.GetBySlug(ctx, "webpack4")
	assert.ErrorIs(t, err, services.ErrNotFound)
	_, err = h.tags.GetBySlug(ctx, "webpack5")
	assert.ErrorIs(t, err, services.ErrNotFound)

	target, err := h.tags.GetBySlug(ctx, "webpack")
	require.NoError(t, err)
	assert.Equal(t, 3, target.UsageCount)

	assert.Equal(t, []string{"Webpack"}, h.storyTagNames(t, s1.ID))
	assert.Equal(t, []string{"Webpack"}, h.storyTagNames(t, s2.ID), "overlapping attachments collapse to one")
	assert.Equal(t, []string{"Webpack"}, h.storyTagNames(t, s3.ID))

	executed, err := h.agents.GetProposal(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, tagproposal.StatusExecuted, executed.Status)
	assert.NotNil(t, executed.ExecutedAt)
}

func TestReorganizer_ExecuteMerge_NoSources(t *testing.T) {
	ctx := context.Background()
	h := newAgentHarness(t)
	r := NewReorganizer(h.agents, h.tags)

	// One source is the target under normalization, the other never existed.
	p := h.approvedProposal(t, models.ProposalDraft{
		Type:     models.ProposalMergeTags,
		Priority: models.PriorityLow,
		Data:     models.MergeData{SourceTags: []string{"Webpack", "ghost-tag"}, TargetTag: "webpack"},
	})

	result, err := r.Execute(ctx, p.ID, false)
	require.NoError(t, err)
	assert.Equal(t, models.ExecutionNoSources, result.Status)
	assert.Equal(t, "no source tags found", result.Details)

	executed, err := h.agents.GetProposal(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, tagproposal.StatusExecuted, executed.Status, "a vacuous merge is still consumed")
}

func TestReorganizer_ExecuteCreate(t *testing.T) {
	ctx := context.Background()
	h := newAgentHarness(t)
	r := NewReorganizer(h.agents, h.tags)

	p := h.approvedProposal(t, models.ProposalDraft{
		Type:     models.ProposalCreateTag,
		Priority: models.PriorityMedium,
		Data:     models.CreateData{Name: "Homelab Setups", Category: "DevOps"},
	})

	result, err := r.Execute(ctx, p.ID, true)
	require.NoError(t, err)
	assert.Equal(t, "create", result.Action)
	assert.Equal(t, models.ExecutionDryRun, result.Status)
	_, err = h.tags.GetBySlug(ctx, "homelab-setups")
	assert.ErrorIs(t, err, services.ErrNotFound, "dry run must not create the tag")

	result, err = r.Execute(ctx, p.ID, false)
	require.NoError(t, err)
	assert.Equal(t, models.ExecutionExecuted, result.Status)
	assert.Equal(t, "created tag 'Homelab Setups'", result.Details)

	tag, err := h.tags.GetBySlug(ctx, "homelab-setups")
	require.NoError(t, err)
	assert.Equal(t, "Homelab Setups", tag.Name)
	assert.Equal(t, 2, tag.Level)
	require.NotNil(t, tag.Category)
	assert.Equal(t, "DevOps", *tag.Category)

	t.Run("existing tag short-circuits", func(t *testing.T) {
		p := h.approvedProposal(t, models.ProposalDraft{
			Type: models.ProposalCreateTag,
			Data: models.CreateData{Name: "homelab setups"},
		})
		result, err := r.Execute(ctx, p.ID, false)
		require.NoError(t, err)
		assert.Equal(t, models.ExecutionAlreadyExists, result.Status)
		assert.Equal(t, "tag 'homelab setups' already exists", result.Details)
	})
}

func TestReorganizer_ExecuteRetire(t *testing.T) {
	ctx := context.Background()
	h := newAgentHarness(t)
	r := NewReorganizer(h.agents, h.tags)

	t.Run("without replacement", func(t *testing.T) {
		s1 := h.seedTaggedStory(t, 10, "Flashback", "Flash")
		s2 := h.seedTaggedStory(t, 11, "Flash forward", "Flash")

		p := h.approvedProposal(t, models.ProposalDraft{
			Type: models.ProposalRetireTag,
			Data: models.RetireData{Name: "Flash"},
		})

		result, err := r.Execute(ctx, p.ID, true)
		require.NoError(t, err)
		assert.Equal(t, models.ExecutionDryRun, result.Status)
		assert.Equal(t, 2, result.AffectedStories)

		result, err = r.Execute(ctx, p.ID, false)
		require.NoError(t, err)
		assert.Equal(t, "retire", result.Action)
		assert.Equal(t, models.ExecutionExecuted, result.Status)
		assert.Equal(t, 2, result.AffectedStories)
		assert.Equal(t, "retired tag 'Flash'", result.Details)

		_, err = h.tags.GetBySlug(ctx, "flash")
		assert.ErrorIs(t, err, services.ErrNotFound)
		assert.Empty(t, h.storyTagNames(t, s1.ID))
		assert.Empty(t, h.storyTagNames(t, s2.ID))
	})

	t.Run("with replacement", func(t *testing.T) {
		s := h.seedTaggedStory(t, 12, "Legacy widgets", "jQuery")

		p := h.approvedProposal(t, models.ProposalDraft{
			Type: models.ProposalRetireTag,
			Data: models.RetireData{Name: "jQuery", Replacement: "JavaScript"},
		})

		result, err := r.Execute(ctx, p.ID, false)
		require.NoError(t, err)
		assert.Equal(t, models.ExecutionExecuted, result.Status)
		assert.Equal(t, 1, result.AffectedStories)

		_, err = h.tags.GetBySlug(ctx, "jquery")
		assert.ErrorIs(t, err, services.ErrNotFound)
		assert.Equal(t, []string{"JavaScript"}, h.storyTagNames(t, s.ID))
	})

	t.Run("replacement normalizing to the retired tag", func(t *testing.T) {
		s := h.seedTaggedStory(t, 13, "Middleware history", "Corba")

		p := h.approvedProposal(t, models.ProposalDraft{
			Type: models.ProposalRetireTag,
			Data: models.RetireData{Name: "Corba", Replacement: "corba"},
		})

		result, err := r.Execute(ctx, p.ID, false)
		require.NoError(t, err)
		assert.Equal(t, models.ExecutionExecuted, result.Status)

		_, err = h.tags.GetBySlug(ctx, "corba")
		assert.ErrorIs(t, err, services.ErrNotFound, "a self-replacement retires plainly")
		assert.Empty(t, h.storyTagNames(t, s.ID))
	})

	t.Run("unknown tag", func(t *testing.T) {
		p := h.approvedProposal(t, models.ProposalDraft{
			Type: models.ProposalRetireTag,
			Data: models.RetireData{Name: "ghost"},
		})
		result, err := r.Execute(ctx, p.ID, false)
		require.NoError(t, err)
		assert.Equal(t, models.ExecutionNotFound, result.Status)
		assert.Equal(t, "tag 'ghost' not found", result.Details)
	})
}

func TestReorganizer_ExecuteReview(t *testing.T) {
	ctx := context.Background()
	h := newAgentHarness(t)
	r := NewReorganizer(h.agents, h.tags)

	p := h.approvedProposal(t, models.ProposalDraft{
		Type:     models.ProposalReviewCategory,
		Priority: models.PriorityLow,
		Data: models.ReviewData{
			Category: "Frameworks",
			TagCount: 17,
			Tags:     []models.TagUsage{{Name: "React", Count: 9}},
		},
	})

	result, err := r.Execute(ctx, p.ID, false)
	require.NoError(t, err)
	assert.Equal(t, "review", result.Action)
	assert.Equal(t, models.ExecutionExecuted, result.Status)
	assert.Equal(t, "category review acknowledged", result.Details)

	executed, err := h.agents.GetProposal(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, tagproposal.StatusExecuted, executed.Status)
}

func TestReorganizer_Execute_Guards(t *testing.T) {
	ctx := context.Background()
	h := newAgentHarness(t)
	r := NewReorganizer(h.agents, h.tags)

	t.Run("pending proposal", func(t *testing.T) {
		run, err := h.agents.CreateRun(ctx, agentrun.RunTypeProposal)
		require.NoError(t, err)
		p, err := h.agents.CreateProposal(ctx, run.ID, models.ProposalDraft{
			Type: models.ProposalRetireTag,
			Data: models.RetireData{Name: "Flash"},
		})
		require.NoError(t, err)

		_, err = r.Execute(ctx, p.ID, false)
		assert.ErrorIs(t, err, services.ErrInvalidInput)
	})

	t.Run("already executed proposal", func(t *testing.T) {
		p := h.approvedProposal(t, models.ProposalDraft{
			Type: models.ProposalRetireTag,
			Data: models.RetireData{Name: "ghost"},
		})
		_, err := r.Execute(ctx, p.ID, false)
		require.NoError(t, err)

		_, err = r.Execute(ctx, p.ID, false)
		assert.ErrorIs(t, err, services.ErrInvalidInput)
	})

	t.Run("unknown proposal", func(t *testing.T) {
		_, err := r.Execute(ctx, uuid.NewString(), false)
		assert.ErrorIs(t, err, services.ErrNotFound)
	})
}
