package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// scraperStatusHandler handles GET /api/v1/scraper/status.
// Reports the upstream max item, total stored stories, and the per-mode
// checkpoint rows.
func (s *Server) scraperStatusHandler(c *echo.Context) error {
	status, err := s.scraper.Status(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, status)
}
