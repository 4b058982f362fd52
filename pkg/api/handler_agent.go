package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/hnscribe/hnscribe/ent"
	"github.com/hnscribe/hnscribe/pkg/models"
)

const (
	defaultRunLimit      = 20
	maxRunLimit          = 100
	defaultProposalLimit = 50
	maxProposalLimit     = 200

	defaultReviewer = "admin"
)

// parseLimit reads an optional limit query parameter with its own bounds.
func parseLimit(c *echo.Context, def, max int) (int, error) {
	v := c.QueryParam("limit")
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 || n > max {
		return 0, echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("invalid limit: must be between 1 and %d", max))
	}
	return n, nil
}

// resultInt reads a numeric entry from a run's result data. Values arrive
// as int when fresh and float64 after a JSON round-trip through the
// database, so both are accepted.
func resultInt(result map[string]interface{}, key string) int {
	switch v := result[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	default:
		return 0
	}
}

func resultString(result map[string]interface{}, key string) string {
	s, _ := result[key].(string)
	return s
}

// listRunsHandler handles GET /api/v1/agent/runs.
func (s *Server) listRunsHandler(c *echo.Context) error {
	limit, err := parseLimit(c, defaultRunLimit, maxRunLimit)
	if err != nil {
		return err
	}

	runs, err := s.agents.ListRuns(c.Request().Context(), limit)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &models.RunListResponse{
		Runs:  runs,
		Count: len(runs),
	})
}

// latestRunHandler handles GET /api/v1/agent/runs/latest.
func (s *Server) latestRunHandler(c *echo.Context) error {
	run, err := s.agents.LatestRun(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, run)
}

// getRunHandler handles GET /api/v1/agent/runs/:id.
func (s *Server) getRunHandler(c *echo.Context) error {
	runID := c.Param("id")
	if runID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "run id is required")
	}

	run, err := s.agents.GetRun(c.Request().Context(), runID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, run)
}

// triggerRunHandler handles POST /api/v1/agent/runs/trigger.
// The run executes synchronously; the response carries its summary.
func (s *Server) triggerRunHandler(c *echo.Context) error {
	var req TriggerRunRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Mode == "" {
		req.Mode = "proposal"
	}

	ctx := c.Request().Context()
	var (
		run *ent.AgentRun
		err error
	)
	switch req.Mode {
	case "analysis":
		run, err = s.orchestrator.RunAnalysis(ctx)
	case "proposal":
		run, err = s.orchestrator.RunProposal(ctx)
	case "auto-apply":
		run, err = s.orchestrator.RunAutoApply(ctx)
	default:
		return echo.NewHTTPError(http.StatusBadRequest,
			"invalid mode: must be analysis, proposal, or auto-apply")
	}
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, &TriggerRunResponse{
		RunID:            run.ID,
		Mode:             req.Mode,
		ProposalsCreated: resultInt(run.ResultData, "proposals_created"),
		AutoApproved:     resultInt(run.ResultData, "auto_approved"),
		Summary:          resultString(run.ResultData, "summary"),
	})
}

// listProposalsHandler handles GET /api/v1/agent/proposals.
func (s *Server) listProposalsHandler(c *echo.Context) error {
	limit, err := parseLimit(c, defaultProposalLimit, maxProposalLimit)
	if err != nil {
		return err
	}

	proposals, err := s.agents.ListProposals(c.Request().Context(), c.QueryParam("status"), limit)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &models.ProposalListResponse{
		Proposals: proposals,
		Count:     len(proposals),
	})
}

// getProposalHandler handles GET /api/v1/agent/proposals/:id.
func (s *Server) getProposalHandler(c *echo.Context) error {
	proposalID := c.Param("id")
	if proposalID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "proposal id is required")
	}

	proposal, err := s.agents.GetProposal(c.Request().Context(), proposalID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, proposal)
}

// pendingCountHandler handles GET /api/v1/agent/proposals/pending/count.
func (s *Server) pendingCountHandler(c *echo.Context) error {
	count, err := s.agents.CountPending(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &PendingCountResponse{PendingCount: count})
}

// approveProposalHandler handles POST /api/v1/agent/proposals/:id/approve.
func (s *Server) approveProposalHandler(c *echo.Context) error {
	return s.reviewProposal(c, s.agents.ApproveProposal)
}

// rejectProposalHandler handles POST /api/v1/agent/proposals/:id/reject.
func (s *Server) rejectProposalHandler(c *echo.Context) error {
	return s.reviewProposal(c, s.agents.RejectProposal)
}

// reviewProposal is the shared approve/reject flow: optional reviewer in
// the body, "admin" when absent.
func (s *Server) reviewProposal(c *echo.Context, review func(ctx context.Context, id, reviewer string) (*ent.TagProposal, error)) error {
	proposalID := c.Param("id")
	if proposalID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "proposal id is required")
	}

	var req ReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.ReviewedBy == "" {
		req.ReviewedBy = defaultReviewer
	}

	proposal, err := review(c.Request().Context(), proposalID, req.ReviewedBy)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, &ReviewResponse{
		ProposalID: proposal.ID,
		Status:     string(proposal.Status),
		ReviewedBy: req.ReviewedBy,
	})
}

// executeProposalHandler handles POST /api/v1/agent/proposals/:id/execute.
// dry_run reports what would change without touching tags.
func (s *Server) executeProposalHandler(c *echo.Context) error {
	proposalID := c.Param("id")
	if proposalID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "proposal id is required")
	}

	var req ExecuteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := s.orchestrator.ExecuteProposal(c.Request().Context(), proposalID, req.DryRun)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, result)
}

// executeAllHandler handles POST /api/v1/agent/proposals/execute-all.
func (s *Server) executeAllHandler(c *echo.Context) error {
	var req ExecuteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	results, err := s.orchestrator.ExecuteAllApproved(c.Request().Context(), req.DryRun)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &ExecuteAllResponse{
		Results: results,
		Count:   len(results),
	})
}
