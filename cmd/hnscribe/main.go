// hnscribe server: scrapes the Hacker News feed, enriches stored stories
// with model-generated summaries and taxonomy tags, and serves the
// filtered story API.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/hnscribe/hnscribe/pkg/agent"
	"github.com/hnscribe/hnscribe/pkg/api"
	"github.com/hnscribe/hnscribe/pkg/config"
	"github.com/hnscribe/hnscribe/pkg/database"
	"github.com/hnscribe/hnscribe/pkg/enrich"
	"github.com/hnscribe/hnscribe/pkg/hn"
	"github.com/hnscribe/hnscribe/pkg/llm"
	"github.com/hnscribe/hnscribe/pkg/metrics"
	"github.com/hnscribe/hnscribe/pkg/scheduler"
	"github.com/hnscribe/hnscribe/pkg/scraper"
	"github.com/hnscribe/hnscribe/pkg/services"
	"github.com/hnscribe/hnscribe/pkg/version"
)

func main() {
	// Load .env before reading configuration; absence is fine.
	if err := godotenv.Load(); err == nil {
		slog.Info("Loaded environment from .env")
	}

	cfg := config.Load()
	slog.Info("Starting hnscribe",
		"version", version.Full(),
		"environment", cfg.Environment,
		"http_addr", cfg.HTTPAddr)

	ctx := context.Background()

	// 1. Database (applies pending migrations)
	dbClient, err := database.NewClient(ctx, database.LoadConfigFromEnv(cfg.DatabaseURL))
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 2. Domain services
	storyService := services.NewStoryService(dbClient.Client)
	tagService := services.NewTagService(dbClient.Client)
	stateService := services.NewStateService(dbClient.Client)
	agentService := services.NewAgentService(dbClient.Client)

	// 3. Side channel and upstream client
	metricsLog := metrics.NewCSVLogger(cfg.MetricsCSVPath)
	hnClient := hn.NewClient(cfg.HNAPIBaseURL)

	// 4. Enrichment pipeline; without an API key the oracle stays nil and
	// the pipeline runs disabled.
	llmClient := llm.NewClient(cfg.OpenAIAPIKey, metricsLog)
	var oracle enrich.Oracle
	llmOracle, err := enrich.NewLLMOracle(llmClient, cfg.SummarizationModel)
	if err != nil {
		slog.Error("Failed to initialize enrichment oracle", "error", err)
		os.Exit(1)
	}
	if llmOracle != nil {
		oracle = llmOracle
	}
	pipeline := enrich.NewPipeline(storyService, tagService, oracle, cfg.SummarizationModel, metricsLog)
	if pipeline.Enabled() {
		slog.Info("Enrichment enabled", "model", cfg.SummarizationModel)
	} else {
		slog.Info("Enrichment disabled, no OPENAI_API_KEY set")
	}

	// 5. Scraper and taxonomy agent
	sc := scraper.New(hnClient, storyService, stateService, cfg, metricsLog)

	proposer, err := agent.NewProposer(llmClient, cfg)
	if err != nil {
		slog.Error("Failed to initialize proposer", "error", err)
		os.Exit(1)
	}
	orchestrator := agent.NewOrchestrator(
		agentService,
		agent.NewAnalyzer(tagService, storyService, cfg),
		proposer,
		agent.NewReorganizer(agentService, tagService),
		cfg,
	)

	// 6. Scheduler
	sched, err := scheduler.New(sc, pipeline, orchestrator, cfg)
	if err != nil {
		slog.Error("Failed to build scheduler", "error", err)
		os.Exit(1)
	}
	sched.Start()

	// 7. HTTP server (non-blocking)
	httpServer := api.NewServer(cfg, dbClient, storyService, tagService, agentService, sc, pipeline, orchestrator)
	errCh := make(chan error, 1)
	go func() {
		if err := httpServer.Start(); err != nil {
			errCh <- err
		}
	}()

	slog.Info("hnscribe started successfully")

	// 8. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 9. Graceful shutdown: scheduler first so no new batches start, then
	// drain HTTP, then the deferred database close.
	schedCtx, schedCancel := context.WithTimeout(ctx, 30*time.Second)
	defer schedCancel()
	if err := sched.Stop(schedCtx); err != nil {
		slog.Warn("Scheduler shutdown incomplete", "error", err)
	}

	httpCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
