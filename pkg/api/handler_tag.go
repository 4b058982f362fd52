package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// listTagsHandler handles GET /api/v1/tags.
func (s *Server) listTagsHandler(c *echo.Context) error {
	tags, err := s.tags.ListTags(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &TagListResponse{
		Tags:  tags,
		Count: len(tags),
	})
}

// groupedTagsHandler handles GET /api/v1/tags/grouped.
// Returns tags bucketed by level plus the L2 category breakdown.
func (s *Server) groupedTagsHandler(c *echo.Context) error {
	grouped, err := s.tags.GroupedTags(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, grouped)
}
