package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hnscribe/hnscribe/ent"
	"github.com/hnscribe/hnscribe/ent/agentrun"
	"github.com/hnscribe/hnscribe/ent/tagproposal"
	"github.com/hnscribe/hnscribe/pkg/models"
)

// AgentService manages curator runs and the proposals they produce
type AgentService struct {
	client *ent.Client
}

// NewAgentService creates a new AgentService
func NewAgentService(client *ent.Client) *AgentService {
	return &AgentService{client: client}
}

// CreateRun opens a new run in running status
func (s *AgentService) CreateRun(ctx context.Context, runType agentrun.RunType) (*ent.AgentRun, error) {
	run, err := s.client.AgentRun.Create().
		SetID(uuid.NewString()).
		SetRunType(runType).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create agent run: %w", err)
	}
	return run, nil
}

// CompleteRun finalizes a run with its result payload
func (s *AgentService) CompleteRun(ctx context.Context, id string, result map[string]interface{}) (*ent.AgentRun, error) {
	run, err := s.client.AgentRun.UpdateOneID(id).
		SetStatus(agentrun.StatusCompleted).
		SetCompletedAt(time.Now()).
		SetResultData(result).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to complete agent run: %w", err)
	}
	return run, nil
}

// FailRun marks a run failed and records the cause
func (s *AgentService) FailRun(ctx context.Context, id string, cause error) error {
	err := s.client.AgentRun.UpdateOneID(id).
		SetStatus(agentrun.StatusFailed).
		SetCompletedAt(time.Now()).
		SetErrorMessage(cause.Error()).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to fail agent run: %w", err)
	}
	return nil
}

// GetRun retrieves a run with its proposals loaded
func (s *AgentService) GetRun(ctx context.Context, id string) (*ent.AgentRun, error) {
	run, err := s.client.AgentRun.Query().
		Where(agentrun.ID(id)).
		WithProposals().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get agent run: %w", err)
	}
	return run, nil
}

// LatestRun returns the most recently started run
func (s *AgentService) LatestRun(ctx context.Context) (*ent.AgentRun, error) {
	run, err := s.client.AgentRun.Query().
		Order(ent.Desc(agentrun.FieldStartedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get latest agent run: %w", err)
	}
	return run, nil
}

// ListRuns returns recent runs, newest first
func (s *AgentService) ListRuns(ctx context.Context, limit int) ([]*ent.AgentRun, error) {
	runs, err := s.client.AgentRun.Query().
		Order(ent.Desc(agentrun.FieldStartedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list agent runs: %w", err)
	}
	return runs, nil
}

// CreateProposal persists a draft produced by a run
func (s *AgentService) CreateProposal(ctx context.Context, runID string, draft models.ProposalDraft) (*ent.TagProposal, error) {
	payload, err := json.Marshal(draft.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to encode proposal data: %w", err)
	}

	p, err := s.client.TagProposal.Create().
		SetID(uuid.NewString()).
		SetAgentRunID(runID).
		SetProposalType(tagproposal.ProposalType(draft.Type)).
		SetPriority(tagproposal.Priority(draft.Priority)).
		SetReason(draft.Reason).
		SetData(payload).
		SetAffectedStoriesCount(draft.AffectedStories).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create proposal: %w", err)
	}
	return p, nil
}

// GetProposal retrieves a proposal by ID
func (s *AgentService) GetProposal(ctx context.Context, id string) (*ent.TagProposal, error) {
	p, err := s.client.TagProposal.Query().
		Where(tagproposal.ID(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get proposal: %w", err)
	}
	return p, nil
}

// ListProposals returns recent proposals, optionally narrowed to a status
func (s *AgentService) ListProposals(ctx context.Context, status string, limit int) ([]*ent.TagProposal, error) {
	q := s.client.TagProposal.Query()
	if status != "" {
		st := tagproposal.Status(status)
		if err := tagproposal.StatusValidator(st); err != nil {
			return nil, NewValidationError("status", fmt.Sprintf("unknown status %q", status))
		}
		q = q.Where(tagproposal.StatusEQ(st))
	}
	proposals, err := q.
		Order(ent.Desc(tagproposal.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list proposals: %w", err)
	}
	return proposals, nil
}

// ProposalsByRun returns a run's proposals in creation order
func (s *AgentService) ProposalsByRun(ctx context.Context, runID string) ([]*ent.TagProposal, error) {
	proposals, err := s.client.TagProposal.Query().
		Where(tagproposal.AgentRunID(runID)).
		Order(ent.Asc(tagproposal.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list run proposals: %w", err)
	}
	return proposals, nil
}

// ApproveProposal moves a pending proposal to approved
func (s *AgentService) ApproveProposal(ctx context.Context, id, reviewer string) (*ent.TagProposal, error) {
	return s.review(ctx, id, reviewer, tagproposal.StatusApproved)
}

// RejectProposal moves a pending proposal to rejected
func (s *AgentService) RejectProposal(ctx context.Context, id, reviewer string) (*ent.TagProposal, error) {
	return s.review(ctx, id, reviewer, tagproposal.StatusRejected)
}

func (s *AgentService) review(ctx context.Context, id, reviewer string, to tagproposal.Status) (*ent.TagProposal, error) {
	p, err := s.GetProposal(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Status != tagproposal.StatusPending {
		return nil, fmt.Errorf("%w: proposal %s is %s, only pending proposals can be reviewed", ErrInvalidInput, id, p.Status)
	}

	p, err = s.client.TagProposal.UpdateOneID(id).
		SetStatus(to).
		SetReviewedAt(time.Now()).
		SetReviewedBy(reviewer).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to review proposal: %w", err)
	}
	return p, nil
}

// MarkExecuted moves an approved proposal to executed
func (s *AgentService) MarkExecuted(ctx context.Context, id string) (*ent.TagProposal, error) {
	p, err := s.GetProposal(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Status != tagproposal.StatusApproved {
		return nil, fmt.Errorf("%w: proposal %s is %s, only approved proposals can be executed", ErrInvalidInput, id, p.Status)
	}

	p, err = s.client.TagProposal.UpdateOneID(id).
		SetStatus(tagproposal.StatusExecuted).
		SetExecutedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to mark proposal executed: %w", err)
	}
	return p, nil
}

// ApprovedProposals returns every proposal awaiting execution
func (s *AgentService) ApprovedProposals(ctx context.Context) ([]*ent.TagProposal, error) {
	proposals, err := s.client.TagProposal.Query().
		Where(tagproposal.StatusEQ(tagproposal.StatusApproved)).
		Order(ent.Asc(tagproposal.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved proposals: %w", err)
	}
	return proposals, nil
}

// CountPending counts proposals still waiting for review
func (s *AgentService) CountPending(ctx context.Context) (int, error) {
	count, err := s.client.TagProposal.Query().
		Where(tagproposal.StatusEQ(tagproposal.StatusPending)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending proposals: %w", err)
	}
	return count, nil
}
