package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hnscribe/hnscribe/ent"
	"github.com/hnscribe/hnscribe/ent/agentrun"
	"github.com/hnscribe/hnscribe/pkg/agent"
	"github.com/hnscribe/hnscribe/pkg/config"
	"github.com/hnscribe/hnscribe/pkg/database"
	"github.com/hnscribe/hnscribe/pkg/models"
	"github.com/hnscribe/hnscribe/pkg/services"
	testdb "github.com/hnscribe/hnscribe/test/database"
)

func agentTestEcho(s *Server) *echo.Echo {
	e := echo.New()
	e.GET("/api/v1/agent/runs", s.listRunsHandler)
	e.POST("/api/v1/agent/runs/trigger", s.triggerRunHandler)
	e.GET("/api/v1/agent/proposals", s.listProposalsHandler)
	e.GET("/api/v1/agent/proposals/pending/count", s.pendingCountHandler)
	e.POST("/api/v1/agent/proposals/execute-all", s.executeAllHandler)
	e.POST("/api/v1/agent/proposals/:id/approve", s.approveProposalHandler)
	e.POST("/api/v1/agent/proposals/:id/reject", s.rejectProposalHandler)
	e.POST("/api/v1/agent/proposals/:id/execute", s.executeProposalHandler)
	return e
}

// newAgentServer wires real services over a test database with a
// proposer and orchestrator that have no model access.
func newAgentServer(t *testing.T) (*Server, *database.Client) {
	t.Helper()
	client := testdb.NewTestClient(t)
	stories := services.NewStoryService(client.Client)
	tags := services.NewTagService(client.Client)
	agents := services.NewAgentService(client.Client)
	cfg := &config.Config{
		AgentAnalysisWindowDays:     30,
		AgentMinTagUsage:            3,
		AgentMaxProposalsPerRun:     10,
		AgentAutoApproveMaxAffected: 5,
	}
	proposer, err := agent.NewProposer(nil, cfg)
	require.NoError(t, err)
	orchestrator := agent.NewOrchestrator(
		agents,
		agent.NewAnalyzer(tags, stories, cfg),
		proposer,
		agent.NewReorganizer(agents, tags),
		cfg,
	)

	s := &Server{
		cfg:          cfg,
		db:           client,
		stories:      stories,
		tags:         tags,
		agents:       agents,
		orchestrator: orchestrator,
	}
	return s, client
}

// pendingProposal persists a draft under a fresh proposal run.
func pendingProposal(t *testing.T, agents *services.AgentService, draft models.ProposalDraft) *ent.TagProposal {
	t.Helper()
	ctx := context.Background()
	run, err := agents.CreateRun(ctx, agentrun.RunTypeProposal)
	require.NoError(t, err)
	p, err := agents.CreateProposal(ctx, run.ID, draft)
	require.NoError(t, err)
	return p
}

func postJSON(t *testing.T, e *echo.Echo, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(http.MethodPost, path, nil)
	} else {
		req = httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestParseLimit(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		def    int
		max    int
		want   int
		errMsg string
	}{
		{name: "absent falls back to default", query: "", def: 20, max: 100, want: 20},
		{name: "explicit value", query: "limit=5", def: 20, max: 100, want: 5},
		{name: "at the cap", query: "limit=100", def: 20, max: 100, want: 100},
		{name: "above the cap", query: "limit=101", def: 20, max: 100, errMsg: "invalid limit: must be between 1 and 100"},
		{name: "proposal bounds allow more", query: "limit=150", def: 50, max: 200, want: 150},
		{name: "proposal cap still applies", query: "limit=201", def: 50, max: 200, errMsg: "invalid limit: must be between 1 and 200"},
		{name: "zero", query: "limit=0", def: 20, max: 100, errMsg: "invalid limit"},
		{name: "non-numeric", query: "limit=abc", def: 20, max: 100, errMsg: "invalid limit"},
	}

	e := echo.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/?"+tt.query, nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			got, err := parseLimit(c, tt.def, tt.max)
			if tt.errMsg != "" {
				if assert.Error(t, err) {
					he, ok := err.(*echo.HTTPError)
					if assert.True(t, ok, "expected echo.HTTPError") {
						assert.Equal(t, http.StatusBadRequest, he.Code)
						assert.Contains(t, he.Message, tt.errMsg)
					}
				}
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResultHelpers(t *testing.T) {
	result := map[string]interface{}{
		"fresh":   7,
		"stored":  float64(9),
		"summary": "3 proposals created, 1 auto-approved",
		"odd":     []string{"nope"},
	}

	assert.Equal(t, 7, resultInt(result, "fresh"))
	assert.Equal(t, 9, resultInt(result, "stored"))
	assert.Equal(t, 0, resultInt(result, "missing"))
	assert.Equal(t, 0, resultInt(result, "odd"))

	assert.Equal(t, "3 proposals created, 1 auto-approved", resultString(result, "summary"))
	assert.Equal(t, "", resultString(result, "missing"))
}

func TestTriggerRunHandler_InvalidMode(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/agent/runs/trigger", strings.NewReader(`{"mode":"bogus"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	s := &Server{}
	err := s.triggerRunHandler(c)
	if assert.Error(t, err) {
		he, ok := err.(*echo.HTTPError)
		if assert.True(t, ok, "expected echo.HTTPError") {
			assert.Equal(t, http.StatusBadRequest, he.Code)
			assert.Contains(t, he.Message, "invalid mode")
		}
	}
}

func TestTriggerRunHandler(t *testing.T) {
	s, _ := newAgentServer(t)
	e := agentTestEcho(s)

	t.Run("empty body defaults to proposal mode", func(t *testing.T) {
		rec := postJSON(t, e, "/api/v1/agent/runs/trigger", "")
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var resp TriggerRunResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.RunID)
		assert.Equal(t, "proposal", resp.Mode)
		assert.Equal(t, 0, resp.ProposalsCreated)
		assert.Equal(t, 0, resp.AutoApproved)
		assert.Equal(t, "0 proposals created, 0 auto-approved", resp.Summary)
	})

	t.Run("analysis mode", func(t *testing.T) {
		rec := postJSON(t, e, "/api/v1/agent/runs/trigger", `{"mode":"analysis"}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var resp TriggerRunResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "analysis", resp.Mode)
		assert.Empty(t, resp.Summary)
	})

	t.Run("runs are listed newest first", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/agent/runs?limit=1", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp models.RunListResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.Count)
		require.Len(t, resp.Runs, 1)
		assert.Equal(t, agentrun.RunTypeAnalysis, resp.Runs[0].RunType)
	})
}

func TestReviewProposalHandlers(t *testing.T) {
	s, _ := newAgentServer(t)
	e := agentTestEcho(s)

	draft := models.ProposalDraft{
		Type:            models.ProposalMergeTags,
		Priority:        models.PriorityMedium,
		Reason:          "Near-duplicate names.",
		Data:            models.MergeData{SourceTags: []string{"webfoo"}, TargetTag: "webfoos"},
		AffectedStories: 1,
	}
	p1 := pendingProposal(t, s.agents, draft)
	p2 := pendingProposal(t, s.agents, draft)

	pendingCount := func(t *testing.T) int {
		t.Helper()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/agent/proposals/pending/count", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp PendingCountResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		return resp.PendingCount
	}

	assert.Equal(t, 2, pendingCount(t))

	t.Run("approve with explicit reviewer", func(t *testing.T) {
		rec := postJSON(t, e, "/api/v1/agent/proposals/"+p1.ID+"/approve", `{"reviewed_by":"carol"}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var resp ReviewResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, p1.ID, resp.ProposalID)
		assert.Equal(t, "approved", resp.Status)
		assert.Equal(t, "carol", resp.ReviewedBy)
	})

	t.Run("reject falls back to the default reviewer", func(t *testing.T) {
		rec := postJSON(t, e, "/api/v1/agent/proposals/"+p2.ID+"/reject", "")
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var resp ReviewResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "rejected", resp.Status)
		assert.Equal(t, "admin", resp.ReviewedBy)
	})

	assert.Equal(t, 0, pendingCount(t))

	t.Run("second review of the same proposal fails", func(t *testing.T) {
		rec := postJSON(t, e, "/api/v1/agent/proposals/"+p1.ID+"/approve", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown proposal is a 404", func(t *testing.T) {
		rec := postJSON(t, e, "/api/v1/agent/proposals/00000000-0000-0000-0000-000000000000/approve", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "resource not found")
	})

	t.Run("missing id is rejected before the lookup", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		rec := httptest.NewRecorder()
		c := echo.New().NewContext(req, rec)

		err := s.approveProposalHandler(c)
		if assert.Error(t, err) {
			he, ok := err.(*echo.HTTPError)
			if assert.True(t, ok, "expected echo.HTTPError") {
				assert.Equal(t, http.StatusBadRequest, he.Code)
				assert.Contains(t, he.Message, "proposal id is required")
			}
		}
	})
}

func TestExecuteProposalHandlers(t *testing.T) {
	ctx := context.Background()
	s, client := newAgentServer(t)
	e := agentTestEcho(s)

	seedTaggedStory(t, client, s.stories, s.tags, 1, "Flash is dead", 100, "Flash")

	p := pendingProposal(t, s.agents, models.ProposalDraft{
		Type:            models.ProposalRetireTag,
		Priority:        models.PriorityLow,
		Reason:          "No longer in use.",
		Data:            models.RetireData{Name: "Flash"},
		AffectedStories: 1,
	})

	t.Run("executing a pending proposal fails", func(t *testing.T) {
		rec := postJSON(t, e, "/api/v1/agent/proposals/"+p.ID+"/execute", `{"dry_run":false}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "approved")
	})

	_, err := s.agents.ApproveProposal(ctx, p.ID, "alice")
	require.NoError(t, err)

	t.Run("dry run previews without mutating", func(t *testing.T) {
		rec := postJSON(t, e, "/api/v1/agent/proposals/"+p.ID+"/execute", `{"dry_run":true}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var result models.ExecutionResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		assert.Equal(t, "retire", result.Action)
		assert.Equal(t, models.ExecutionDryRun, result.Status)
		assert.Equal(t, 1, result.AffectedStories)
		assert.True(t, result.DryRun)

		_, err := s.tags.GetBySlug(ctx, "flash")
		assert.NoError(t, err, "dry run must not touch the tag")
	})

	t.Run("execute-all applies approved proposals", func(t *testing.T) {
		rec := postJSON(t, e, "/api/v1/agent/proposals/execute-all", `{"dry_run":false}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var resp ExecuteAllResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.Count)
		require.Len(t, resp.Results, 1)
		assert.Equal(t, models.ExecutionExecuted, resp.Results[0].Status)
		assert.Equal(t, p.ID, resp.Results[0].ProposalID)

		_, err := s.tags.GetBySlug(ctx, "flash")
		assert.ErrorIs(t, err, services.ErrNotFound)
	})
}
