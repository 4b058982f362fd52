package models

import (
	"encoding/json"
	"fmt"
)

// Proposal types. The type doubles as the tag of the data payload union.
const (
	ProposalCreateTag      = "create_tag"
	ProposalMergeTags      = "merge_tags"
	ProposalRetireTag      = "retire_tag"
	ProposalReviewCategory = "review_category"
)

// Proposal priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// MergeData is the merge_tags payload.
type MergeData struct {
	SourceTags []string `json:"source_tags"`
	TargetTag  string   `json:"target_tag"`
}

// CreateData is the create_tag payload.
type CreateData struct {
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
}

// RetireData is the retire_tag payload.
type RetireData struct {
	Name        string `json:"name"`
	Replacement string `json:"replacement,omitempty"`
}

// ReviewData is the review_category payload.
type ReviewData struct {
	Category string     `json:"category"`
	TagCount int        `json:"tag_count"`
	Tags     []TagUsage `json:"tags"`
}

// ProposalDraft is an in-memory proposal before persistence. Data holds
// the payload struct matching Type.
type ProposalDraft struct {
	Type            string
	Priority        string
	Reason          string
	Data            any
	AffectedStories int
}

// DecodeMergeData decodes and validates a merge_tags payload.
func DecodeMergeData(raw json.RawMessage) (*MergeData, error) {
	var d MergeData
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("invalid merge_tags payload: %w", err)
	}
	if len(d.SourceTags) == 0 || d.TargetTag == "" {
		return nil, fmt.Errorf("merge_tags payload requires source_tags and target_tag")
	}
	return &d, nil
}

// DecodeCreateData decodes and validates a create_tag payload.
func DecodeCreateData(raw json.RawMessage) (*CreateData, error) {
	var d CreateData
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("invalid create_tag payload: %w", err)
	}
	if d.Name == "" {
		return nil, fmt.Errorf("create_tag payload requires name")
	}
	return &d, nil
}

// DecodeRetireData decodes and validates a retire_tag payload.
func DecodeRetireData(raw json.RawMessage) (*RetireData, error) {
	var d RetireData
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("invalid retire_tag payload: %w", err)
	}
	if d.Name == "" {
		return nil, fmt.Errorf("retire_tag payload requires name")
	}
	return &d, nil
}

// Reorganizer outcome statuses.
const (
	ExecutionExecuted      = "executed"
	ExecutionDryRun        = "dry_run"
	ExecutionNoSources     = "no_sources"
	ExecutionAlreadyExists = "already_exists"
	ExecutionNotFound      = "not_found"
	ExecutionFailed        = "failed"
)

// ExecutionResult is the outcome of executing (or dry-running) a proposal.
type ExecutionResult struct {
	ProposalID      string `json:"proposal_id"`
	Action          string `json:"action"`
	Status          string `json:"status"`
	AffectedStories int    `json:"affected_stories"`
	Details         string `json:"details,omitempty"`
	DryRun          bool   `json:"dry_run,omitempty"`
}

// ConsolidationPlan is the structured oracle output for sparse-tag
// consolidation: lists of suggested merges, creations, and retirements.
// No omitempty here: strict schema mode wants every property required, so
// absence is the empty string.
type ConsolidationPlan struct {
	MergeProposals  []MergeSuggestion  `json:"merge_proposals"`
	CreateProposals []CreateSuggestion `json:"create_proposals"`
	RetireProposals []RetireSuggestion `json:"retire_proposals"`
}

// MergeSuggestion is one oracle-suggested merge.
type MergeSuggestion struct {
	SourceTags []string `json:"source_tags"`
	TargetTag  string   `json:"target_tag"`
	Reason     string   `json:"reason"`
	Priority   string   `json:"priority"`
}

// CreateSuggestion is one oracle-suggested new L2 tag.
type CreateSuggestion struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Reason   string `json:"reason"`
	Priority string `json:"priority"`
}

// RetireSuggestion is one oracle-suggested retirement.
type RetireSuggestion struct {
	Name        string `json:"name"`
	Replacement string `json:"replacement"`
	Reason      string `json:"reason"`
	Priority    string `json:"priority"`
}
