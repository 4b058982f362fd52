package api

// TriggerRunRequest is the body of POST /api/v1/agent/runs/trigger.
// Mode defaults to "proposal" when omitted.
type TriggerRunRequest struct {
	Mode string `json:"mode"`
}

// ReviewRequest is the optional body of proposal approve/reject calls.
type ReviewRequest struct {
	ReviewedBy string `json:"reviewed_by"`
}

// ExecuteRequest is the optional body of proposal execution calls.
type ExecuteRequest struct {
	DryRun bool `json:"dry_run"`
}
