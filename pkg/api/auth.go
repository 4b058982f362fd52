package api

import (
	"crypto/subtle"
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// checkAPIKey guards mutating endpoints with the shared X-API-Key header.
// An empty configured key leaves the endpoint open; comparison is
// constant-time so the key cannot be probed byte by byte.
func (s *Server) checkAPIKey(c *echo.Context) error {
	if s.cfg.APIKey == "" {
		return nil
	}
	provided := c.Request().Header.Get("X-API-Key")
	if subtle.ConstantTimeCompare([]byte(provided), []byte(s.cfg.APIKey)) != 1 {
		return echo.NewHTTPError(http.StatusForbidden, "invalid or missing API key")
	}
	return nil
}
