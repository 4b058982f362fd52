package api

import (
	"github.com/hnscribe/hnscribe/ent"
	"github.com/hnscribe/hnscribe/pkg/models"
)

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Version  string `json:"version"`
}

// RefreshResponse is returned by POST /api/v1/stories/refresh.
type RefreshResponse struct {
	Message            string `json:"message"`
	StoriesProcessed   int    `json:"stories_processed"`
	SummariesGenerated int    `json:"summaries_generated"`
}

// TriggerRunResponse is returned by POST /api/v1/agent/runs/trigger.
type TriggerRunResponse struct {
	RunID            string `json:"run_id"`
	Mode             string `json:"mode"`
	ProposalsCreated int    `json:"proposals_created"`
	AutoApproved     int    `json:"auto_approved"`
	Summary          string `json:"summary"`
}

// ReviewResponse is returned by proposal approve/reject calls.
type ReviewResponse struct {
	ProposalID string `json:"proposal_id"`
	Status     string `json:"status"`
	ReviewedBy string `json:"reviewed_by"`
}

// ExecuteAllResponse is returned by POST /api/v1/agent/proposals/execute-all.
type ExecuteAllResponse struct {
	Results []models.ExecutionResult `json:"results"`
	Count   int                      `json:"count"`
}

// PendingCountResponse is returned by GET /api/v1/agent/proposals/pending/count.
type PendingCountResponse struct {
	PendingCount int `json:"pending_count"`
}

// TagListResponse is returned by GET /api/v1/tags.
type TagListResponse struct {
	Tags  []*ent.Tag `json:"tags"`
	Count int        `json:"count"`
}
