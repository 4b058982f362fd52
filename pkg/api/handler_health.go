package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/hnscribe/hnscribe/pkg/version"
)

// healthHandler handles GET /health.
// A trivial database probe decides healthy vs unhealthy; external
// dependencies (upstream feed, LLM) are deliberately excluded so a
// provider outage does not get this process restarted.
func (s *Server) healthHandler(c *echo.Context) error {
	reqCtx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if _, err := s.db.Health(reqCtx); err != nil {
		return c.JSON(http.StatusServiceUnavailable, &HealthResponse{
			Status:   "unhealthy",
			Database: "disconnected",
			Version:  version.GitCommit,
		})
	}

	return c.JSON(http.StatusOK, &HealthResponse{
		Status:   "healthy",
		Database: "connected",
		Version:  version.GitCommit,
	})
}
