package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/hnscribe/hnscribe/pkg/models"
)

const (
	defaultPageLimit = 30
	maxPageLimit     = 100
)

// parsePagination reads offset/limit query parameters. Absent values fall
// back to defaults; invalid or out-of-range values are a 400, not a clamp.
func parsePagination(c *echo.Context) (int, int, error) {
	offset, limit := 0, defaultPageLimit

	if v := c.QueryParam("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "invalid offset: must be a non-negative integer")
		}
		offset = n
	}
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > maxPageLimit {
			return 0, 0, echo.NewHTTPError(http.StatusBadRequest,
				fmt.Sprintf("invalid limit: must be between 1 and %d", maxPageLimit))
		}
		limit = n
	}
	return offset, limit, nil
}

// jsonStringList decodes a JSON-encoded string-array query parameter.
// Malformed or non-array values degrade to the empty list, never to an
// error; the filter endpoint stays usable from hand-typed URLs.
func jsonStringList(raw string) []string {
	if raw == "" {
		return nil
	}
	var values []string
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return nil
	}
	return values
}

// listStoriesHandler handles GET /api/v1/stories.
func (s *Server) listStoriesHandler(c *echo.Context) error {
	offset, limit, err := parsePagination(c)
	if err != nil {
		return err
	}

	result, err := s.stories.ListStories(c.Request().Context(), offset, limit)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, result)
}

// getStoryHandler handles GET /api/v1/stories/:id.
func (s *Server) getStoryHandler(c *echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid story id")
	}

	story, err := s.stories.GetStory(c.Request().Context(), id)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, story)
}

// refreshStoriesHandler handles POST /api/v1/stories/refresh.
// Pulls the curated top-stories list and then fills missing summaries.
func (s *Server) refreshStoriesHandler(c *echo.Context) error {
	if err := s.checkAPIKey(c); err != nil {
		return err
	}
	ctx := c.Request().Context()

	stories, err := s.scraper.RefreshTopStories(ctx)
	if err != nil {
		return mapServiceError(err)
	}
	summaries, err := s.pipeline.GenerateMissing(ctx, s.cfg.SummarizationBatchSize)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, &RefreshResponse{
		Message:            "Refresh completed successfully",
		StoriesProcessed:   stories,
		SummariesGenerated: summaries,
	})
}

// advancedFilterHandler handles GET /api/v1/stories/advanced-filter.json.
// Each l*_include/l*_exclude parameter is a JSON-encoded string array.
func (s *Server) advancedFilterHandler(c *echo.Context) error {
	offset, limit, err := parsePagination(c)
	if err != nil {
		return err
	}

	filter := &models.TagFilter{
		L1Include: jsonStringList(c.QueryParam("l1_include")),
		L1Exclude: jsonStringList(c.QueryParam("l1_exclude")),
		L2Include: jsonStringList(c.QueryParam("l2_include")),
		L2Exclude: jsonStringList(c.QueryParam("l2_exclude")),
		L3Include: jsonStringList(c.QueryParam("l3_include")),
	}

	result, err := s.stories.FilterStories(c.Request().Context(), filter, offset, limit)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, result)
}
