// Package agent implements the taxonomy maintenance loop: an analyzer
// that measures tag health over a rolling window, a proposer that turns
// findings into reviewable change proposals, and a reorganizer that
// executes approved ones. The orchestrator sequences the three and
// records every invocation as an AgentRun.
package agent

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hnscribe/hnscribe/ent"
	"github.com/hnscribe/hnscribe/ent/agentrun"
	"github.com/hnscribe/hnscribe/ent/tagproposal"
	"github.com/hnscribe/hnscribe/pkg/config"
	"github.com/hnscribe/hnscribe/pkg/models"
	"github.com/hnscribe/hnscribe/pkg/services"
)

// autoApproverName is recorded as the reviewer on auto-approved proposals.
const autoApproverName = "auto-approver"

// Orchestrator coordinates the analyzer, proposer, and reorganizer.
type Orchestrator struct {
	agents      *services.AgentService
	analyzer    *Analyzer
	proposer    *Proposer
	reorganizer *Reorganizer
	cfg         *config.Config
}

// NewOrchestrator wires the three agents together.
func NewOrchestrator(agents *services.AgentService, analyzer *Analyzer, proposer *Proposer, reorganizer *Reorganizer, cfg *config.Config) *Orchestrator {
	return &Orchestrator{
		agents:      agents,
		analyzer:    analyzer,
		proposer:    proposer,
		reorganizer: reorganizer,
		cfg:         cfg,
	}
}

// RunAnalysis runs the analyzer alone and stores the report on the run.
func (o *Orchestrator) RunAnalysis(ctx context.Context) (*ent.AgentRun, error) {
	return o.run(ctx, agentrun.RunTypeAnalysis)
}

// RunProposal runs analyzer + proposer and persists pending proposals.
func (o *Orchestrator) RunProposal(ctx context.Context) (*ent.AgentRun, error) {
	return o.run(ctx, agentrun.RunTypeProposal)
}

// RunAutoApply runs the proposal pipeline and then auto-approves low-risk
// proposals. Approved proposals still wait for an explicit execute call.
func (o *Orchestrator) RunAutoApply(ctx context.Context) (*ent.AgentRun, error) {
	return o.run(ctx, agentrun.RunTypeAutoApply)
}

func (o *Orchestrator) run(ctx context.Context, runType agentrun.RunType) (*ent.AgentRun, error) {
	run, err := o.agents.CreateRun(ctx, runType)
	if err != nil {
		return nil, fmt.Errorf("failed to create agent run: %w", err)
	}
	slog.Info("Agent run started", "run_id", run.ID, "run_type", runType)

	completed, err := o.execute(ctx, run, runType)
	if err != nil {
		if failErr := o.agents.FailRun(ctx, run.ID, err); failErr != nil {
			slog.Error("Failed to record agent run failure",
				"run_id", run.ID,
				"error", failErr)
		}
		return nil, err
	}
	return completed, nil
}

func (o *Orchestrator) execute(ctx context.Context, run *ent.AgentRun, runType agentrun.RunType) (*ent.AgentRun, error) {
	analysis, err := o.analyzer.Analyze(ctx)
	if err != nil {
		return nil, err
	}
	if runType == agentrun.RunTypeAnalysis {
		return o.agents.CompleteRun(ctx, run.ID, map[string]interface{}{
			"analysis": analysis,
		})
	}

	drafts := o.proposer.Propose(ctx, analysis)
	created := make([]*ent.TagProposal, 0, len(drafts))
	for _, draft := range drafts {
		proposal, err := o.agents.CreateProposal(ctx, run.ID, draft)
		if err != nil {
			return nil, err
		}
		created = append(created, proposal)
	}

	autoApproved := 0
	if runType == agentrun.RunTypeAutoApply && o.cfg.AgentEnableAutoApprove {
		for _, proposal := range created {
			if !o.IsLowRisk(proposal) {
				continue
			}
			if _, err := o.agents.ApproveProposal(ctx, proposal.ID, autoApproverName); err != nil {
				slog.Warn("Failed to auto-approve proposal",
					"proposal_id", proposal.ID,
					"error", err)
				continue
			}
			autoApproved++
			slog.Info("Auto-approved proposal",
				"proposal_id", proposal.ID,
				"type", proposal.ProposalType)
		}
	}

	return o.agents.CompleteRun(ctx, run.ID, map[string]interface{}{
		"analysis":          analysis,
		"proposals_created": len(created),
		"auto_approved":     autoApproved,
		"summary":           fmt.Sprintf("%d proposals created, %d auto-approved", len(created), autoApproved),
	})
}

// IsLowRisk reports whether a proposal qualifies for auto-approval: only
// merges and retirements, bounded blast radius, never high priority.
func (o *Orchestrator) IsLowRisk(p *ent.TagProposal) bool {
	if p.ProposalType != tagproposal.ProposalTypeMergeTags && p.ProposalType != tagproposal.ProposalTypeRetireTag {
		return false
	}
	if p.AffectedStoriesCount > o.cfg.AgentAutoApproveMaxAffected {
		return false
	}
	return p.Priority == tagproposal.PriorityLow || p.Priority == tagproposal.PriorityMedium
}

// ExecuteProposal executes one approved proposal. Real executions are
// wrapped in an execution-type run; dry runs write nothing at all.
func (o *Orchestrator) ExecuteProposal(ctx context.Context, proposalID string, dryRun bool) (*models.ExecutionResult, error) {
	if dryRun {
		return o.reorganizer.Execute(ctx, proposalID, true)
	}

	run, err := o.agents.CreateRun(ctx, agentrun.RunTypeExecution)
	if err != nil {
		return nil, fmt.Errorf("failed to create execution run: %w", err)
	}
	result, err := o.reorganizer.Execute(ctx, proposalID, false)
	if err != nil {
		if failErr := o.agents.FailRun(ctx, run.ID, err); failErr != nil {
			slog.Error("Failed to record execution failure",
				"run_id", run.ID,
				"error", failErr)
		}
		return nil, err
	}
	if _, err := o.agents.CompleteRun(ctx, run.ID, map[string]interface{}{
		"proposal_id":      result.ProposalID,
		"action":           result.Action,
		"status":           result.Status,
		"affected_stories": result.AffectedStories,
	}); err != nil {
		return nil, err
	}
	return result, nil
}

// ExecuteAllApproved executes every approved proposal, continuing past
// individual failures and reporting them inline.
func (o *Orchestrator) ExecuteAllApproved(ctx context.Context, dryRun bool) ([]models.ExecutionResult, error) {
	proposals, err := o.agents.ApprovedProposals(ctx)
	if err != nil {
		return nil, err
	}
	results := make([]models.ExecutionResult, 0, len(proposals))
	for _, proposal := range proposals {
		result, err := o.ExecuteProposal(ctx, proposal.ID, dryRun)
		if err != nil {
			slog.Warn("Failed to execute proposal",
				"proposal_id", proposal.ID,
				"error", err)
			results = append(results, models.ExecutionResult{
				ProposalID: proposal.ID,
				Action:     string(proposal.ProposalType),
				Status:     models.ExecutionFailed,
				Details:    err.Error(),
				DryRun:     dryRun,
			})
			continue
		}
		results = append(results, *result)
	}
	return results, nil
}
