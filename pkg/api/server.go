// Package api is the HTTP surface: story listing and filtering, tag
// queries, scraper status, health, and the taxonomy-agent review
// endpoints. Handlers translate service errors through mapServiceError
// and never reach into the database directly.
package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/hnscribe/hnscribe/pkg/agent"
	"github.com/hnscribe/hnscribe/pkg/config"
	"github.com/hnscribe/hnscribe/pkg/database"
	"github.com/hnscribe/hnscribe/pkg/enrich"
	"github.com/hnscribe/hnscribe/pkg/scraper"
	"github.com/hnscribe/hnscribe/pkg/services"
)

// Server owns the echo instance and the handler dependencies.
type Server struct {
	echo         *echo.Echo
	http         *http.Server
	cfg          *config.Config
	db           *database.Client
	stories      *services.StoryService
	tags         *services.TagService
	agents       *services.AgentService
	scraper      *scraper.Scraper
	pipeline     *enrich.Pipeline
	orchestrator *agent.Orchestrator
}

// NewServer builds the echo application with middleware and routes
// registered. The agent endpoints are absent in production.
func NewServer(
	cfg *config.Config,
	db *database.Client,
	stories *services.StoryService,
	tags *services.TagService,
	agents *services.AgentService,
	sc *scraper.Scraper,
	pipeline *enrich.Pipeline,
	orchestrator *agent.Orchestrator,
) *Server {
	e := echo.New()

	s := &Server{
		echo: e,
		http: &http.Server{
			Addr:              cfg.HTTPAddr,
			Handler:           e,
			ReadHeaderTimeout: 10 * time.Second,
		},
		cfg:          cfg,
		db:           db,
		stories:      stories,
		tags:         tags,
		agents:       agents,
		scraper:      sc,
		pipeline:     pipeline,
		orchestrator: orchestrator,
	}

	e.Use(recoverPanics())
	e.Use(requestLogger())
	e.Use(securityHeaders())
	if !cfg.IsProduction() {
		e.Use(corsHeaders())
	}

	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	e := s.echo

	e.GET("/health", s.healthHandler)

	e.GET("/api/v1/stories", s.listStoriesHandler)
	e.GET("/api/v1/stories/advanced-filter.json", s.advancedFilterHandler)
	e.POST("/api/v1/stories/refresh", s.refreshStoriesHandler)
	e.GET("/api/v1/stories/:id", s.getStoryHandler)

	e.GET("/api/v1/tags", s.listTagsHandler)
	e.GET("/api/v1/tags/grouped", s.groupedTagsHandler)

	e.GET("/api/v1/scraper/status", s.scraperStatusHandler)

	// Taxonomy-agent management is an operator surface, not exposed in
	// production deployments.
	if !s.cfg.IsProduction() {
		e.GET("/api/v1/agent/runs", s.listRunsHandler)
		e.GET("/api/v1/agent/runs/latest", s.latestRunHandler)
		e.POST("/api/v1/agent/runs/trigger", s.triggerRunHandler)
		e.GET("/api/v1/agent/runs/:id", s.getRunHandler)

		e.GET("/api/v1/agent/proposals", s.listProposalsHandler)
		e.GET("/api/v1/agent/proposals/pending/count", s.pendingCountHandler)
		e.POST("/api/v1/agent/proposals/execute-all", s.executeAllHandler)
		e.GET("/api/v1/agent/proposals/:id", s.getProposalHandler)
		e.POST("/api/v1/agent/proposals/:id/approve", s.approveProposalHandler)
		e.POST("/api/v1/agent/proposals/:id/reject", s.rejectProposalHandler)
		e.POST("/api/v1/agent/proposals/:id/execute", s.executeProposalHandler)
	}
}

// Start blocks serving HTTP until Shutdown is called.
func (s *Server) Start() error {
	slog.Info("HTTP server listening", "addr", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server failed: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
