package agent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hnscribe/hnscribe/ent"
	"github.com/hnscribe/hnscribe/ent/tagproposal"
	"github.com/hnscribe/hnscribe/pkg/models"
	"github.com/hnscribe/hnscribe/pkg/services"
	"github.com/hnscribe/hnscribe/pkg/taxonomy"
)

// Reorganizer executes approved proposals against the tag store. It is
// the only writer allowed to delete or re-point tags.
type Reorganizer struct {
	agents *services.AgentService
	tags   *services.TagService
}

// NewReorganizer creates a reorganizer over the given services.
func NewReorganizer(agents *services.AgentService, tags *services.TagService) *Reorganizer {
	return &Reorganizer{agents: agents, tags: tags}
}

// Execute runs one approved proposal. With dryRun set, affected counts
// are computed and reported but nothing is written, including the
// proposal's own status.
func (r *Reorganizer) Execute(ctx context.Context, proposalID string, dryRun bool) (*models.ExecutionResult, error) {
	proposal, err := r.agents.GetProposal(ctx, proposalID)
	if err != nil {
		return nil, err
	}
	if proposal.Status != tagproposal.StatusApproved {
		return nil, fmt.Errorf("%w: proposal %s is %s, only approved proposals can be executed",
			services.ErrInvalidInput, proposalID, proposal.Status)
	}

	slog.Info("Executing proposal",
		"proposal_id", proposalID,
		"type", proposal.ProposalType,
		"dry_run", dryRun)

	result := &models.ExecutionResult{ProposalID: proposalID, DryRun: dryRun}
	switch proposal.ProposalType {
	case tagproposal.ProposalTypeMergeTags:
		err = r.executeMerge(ctx, proposal, dryRun, result)
	case tagproposal.ProposalTypeCreateTag:
		err = r.executeCreate(ctx, proposal, dryRun, result)
	case tagproposal.ProposalTypeRetireTag:
		err = r.executeRetire(ctx, proposal, dryRun, result)
	case tagproposal.ProposalTypeReviewCategory:
		// Nothing to change; executing acknowledges the review.
		result.Action = "review"
		result.Status = models.ExecutionExecuted
		result.Details = "category review acknowledged"
		if dryRun {
			result.Status = models.ExecutionDryRun
		}
	default:
		err = fmt.Errorf("%w: unknown proposal type %q", services.ErrInvalidInput, proposal.ProposalType)
	}
	if err != nil {
		return nil, err
	}

	if !dryRun {
		if _, err := r.agents.MarkExecuted(ctx, proposalID); err != nil {
			return nil, fmt.Errorf("failed to mark proposal executed: %w", err)
		}
	}
	return result, nil
}

func (r *Reorganizer) executeMerge(ctx context.Context, proposal *ent.TagProposal, dryRun bool, result *models.ExecutionResult) error {
	result.Action = "merge"
	data, err := models.DecodeMergeData(proposal.Data)
	if err != nil {
		return fmt.Errorf("%w: %v", services.ErrInvalidInput, err)
	}

	// Resolve sources by slug, dropping missing ones and any source that
	// is actually the target under normalization.
	targetSlug := taxonomy.NormalizeSlug(data.TargetTag)
	sourceIDs := make([]int, 0, len(data.SourceTags))
	for _, name := range data.SourceTags {
		slug := taxonomy.NormalizeSlug(name)
		if slug == targetSlug {
			continue
		}
		t, err := r.tags.GetBySlug(ctx, slug)
		if errors.Is(err, services.ErrNotFound) {
			slog.Warn("Merge source tag not found",
				"proposal_id", proposal.ID,
				"tag", name)
			continue
		}
		if err != nil {
			return err
		}
		sourceIDs = append(sourceIDs, t.ID)
	}
	if len(sourceIDs) == 0 {
		result.Status = models.ExecutionNoSources
		result.Details = "no source tags found"
		return nil
	}

	if dryRun {
		affected, err := r.tags.CountStoriesWithAnyTag(ctx, sourceIDs)
		if err != nil {
			return err
		}
		result.AffectedStories = affected
		result.Status = models.ExecutionDryRun
		return nil
	}

	target, err := r.tags.GetOrCreateTag(ctx, data.TargetTag)
	if err != nil {
		return err
	}
	affected, err := r.tags.MergeTags(ctx, sourceIDs, target.ID)
	if err != nil {
		return err
	}
	result.AffectedStories = affected
	result.Status = models.ExecutionExecuted
	result.Details = fmt.Sprintf("merged %d tags into '%s'", len(sourceIDs), target.Name)
	return nil
}

func (r *Reorganizer) executeCreate(ctx context.Context, proposal *ent.TagProposal, dryRun bool, result *models.ExecutionResult) error {
	result.Action = "create"
	data, err := models.DecodeCreateData(proposal.Data)
	if err != nil {
		return fmt.Errorf("%w: %v", services.ErrInvalidInput, err)
	}

	_, err = r.tags.GetBySlug(ctx, taxonomy.NormalizeSlug(data.Name))
	switch {
	case err == nil:
		result.Status = models.ExecutionAlreadyExists
		result.Details = fmt.Sprintf("tag '%s' already exists", data.Name)
		return nil
	case !errors.Is(err, services.ErrNotFound):
		return err
	}

	if dryRun {
		result.Status = models.ExecutionDryRun
		return nil
	}

	var category *string
	if data.Category != "" {
		category = &data.Category
	}
	tag, err := r.tags.CreateTag(ctx, data.Name, category)
	if err != nil {
		return err
	}
	result.Status = models.ExecutionExecuted
	result.Details = fmt.Sprintf("created tag '%s'", tag.Name)
	return nil
}

func (r *Reorganizer) executeRetire(ctx context.Context, proposal *ent.TagProposal, dryRun bool, result *models.ExecutionResult) error {
	result.Action = "retire"
	data, err := models.DecodeRetireData(proposal.Data)
	if err != nil {
		return fmt.Errorf("%w: %v", services.ErrInvalidInput, err)
	}

	t, err := r.tags.GetBySlug(ctx, taxonomy.NormalizeSlug(data.Name))
	if errors.Is(err, services.ErrNotFound) {
		result.Status = models.ExecutionNotFound
		result.Details = fmt.Sprintf("tag '%s' not found", data.Name)
		return nil
	}
	if err != nil {
		return err
	}

	if dryRun {
		affected, err := r.tags.CountStoriesWithAnyTag(ctx, []int{t.ID})
		if err != nil {
			return err
		}
		result.AffectedStories = affected
		result.Status = models.ExecutionDryRun
		return nil
	}

	var replacementID *int
	if data.Replacement != "" {
		replacement, err := r.tags.GetOrCreateTag(ctx, data.Replacement)
		if err != nil {
			return err
		}
		// A replacement that normalizes to the retired tag itself would
		// be a self-reassignment; retire without one instead.
		if replacement.ID != t.ID {
			replacementID = &replacement.ID
		}
	}
	affected, err := r.tags.RetireTag(ctx, t.ID, replacementID)
	if err != nil {
		return err
	}
	result.AffectedStories = affected
	result.Status = models.ExecutionExecuted
	result.Details = fmt.Sprintf("retired tag '%s'", t.Name)
	return nil
}
