package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hnscribe/hnscribe/ent/story"
	"github.com/hnscribe/hnscribe/pkg/database"
	"github.com/hnscribe/hnscribe/pkg/models"
	"github.com/hnscribe/hnscribe/pkg/services"
	testdb "github.com/hnscribe/hnscribe/test/database"
)

func storyTestEcho(s *Server) *echo.Echo {
	e := echo.New()
	e.GET("/api/v1/stories", s.listStoriesHandler)
	e.GET("/api/v1/stories/advanced-filter.json", s.advancedFilterHandler)
	e.GET("/api/v1/stories/:id", s.getStoryHandler)
	return e
}

// seedTaggedStory stores a recent story and attaches the named tags,
// creating them through the canonical taxonomy as needed.
func seedTaggedStory(t *testing.T, client *database.Client, stories *services.StoryService, tags *services.TagService, hnID int64, title string, score int, tagNames ...string) {
	t.Helper()
	ctx := context.Background()
	link := fmt.Sprintf("https://example.com/%d", hnID)
	_, err := stories.UpsertBatch(ctx, []*models.ScrapedStory{{
		HNID:         hnID,
		Title:        title,
		URL:          &link,
		Score:        score,
		Author:       "tester",
		CommentCount: 2,
		HNCreatedAt:  time.Now().UTC().Add(-time.Hour),
	}})
	require.NoError(t, err)
	if len(tagNames) == 0 {
		return
	}

	st, err := client.Client.Story.Query().Where(story.HnID(hnID)).Only(ctx)
	require.NoError(t, err)
	ids := make([]int, 0, len(tagNames))
	for _, name := range tagNames {
		tag, err := tags.GetOrCreateTag(ctx, name)
		require.NoError(t, err)
		ids = append(ids, tag.ID)
	}
	_, err = stories.AttachTags(ctx, st.ID, ids)
	require.NoError(t, err)
}

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantOffset int
		wantLimit  int
		errMsg     string
	}{
		{
			name:       "defaults when absent",
			query:      "",
			wantOffset: 0,
			wantLimit:  30,
		},
		{
			name:       "explicit values",
			query:      "offset=5&limit=50",
			wantOffset: 5,
			wantLimit:  50,
		},
		{
			name:       "limit at the upper bound",
			query:      "limit=100",
			wantOffset: 0,
			wantLimit:  100,
		},
		{
			name:   "negative offset is rejected, not clamped",
			query:  "offset=-1",
			errMsg: "invalid offset",
		},
		{
			name:   "non-numeric offset",
			query:  "offset=abc",
			errMsg: "invalid offset",
		},
		{
			name:   "zero limit",
			query:  "limit=0",
			errMsg: "invalid limit: must be between 1 and 100",
		},
		{
			name:   "limit above the cap",
			query:  "limit=101",
			errMsg: "invalid limit: must be between 1 and 100",
		},
		{
			name:   "non-numeric limit",
			query:  "limit=abc",
			errMsg: "invalid limit",
		},
	}

	e := echo.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/?"+tt.query, nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			offset, limit, err := parsePagination(c)
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
			assert.Equal(t, tt.wantOffset, offset)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestJSONStringList(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "empty parameter", raw: "", want: nil},
		{name: "plain array", raw: `["Tech","Go"]`, want: []string{"Tech", "Go"}},
		{name: "empty array", raw: `[]`, want: []string{}},
		{name: "garbage degrades to nil", raw: `not-json`, want: nil},
		{name: "bare string is not an array", raw: `"Tech"`, want: nil},
		{name: "numbers are not strings", raw: `[1,2]`, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, jsonStringList(tt.raw))
		})
	}
}

func TestGetStoryHandler_InvalidID(t *testing.T) {
	e := storyTestEcho(&Server{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/stories/abc", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid story id")
}

func TestGetStoryHandler_NotFound(t *testing.T) {
	client := testdb.NewTestClient(t)
	s := &Server{stories: services.NewStoryService(client.Client)}
	e := storyTestEcho(s)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/stories/999999", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "resource not found")
}

func TestListStoriesHandler(t *testing.T) {
	client := testdb.NewTestClient(t)
	stories := services.NewStoryService(client.Client)
	tags := services.NewTagService(client.Client)

	seedTaggedStory(t, client, stories, tags, 1, "Quiet release", 100)
	seedTaggedStory(t, client, stories, tags, 2, "Front page", 300)
	seedTaggedStory(t, client, stories, tags, 3, "Mid pack", 200)

	s := &Server{stories: stories}
	e := storyTestEcho(s)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/stories?limit=2", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp models.StoryListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.TotalCount)
	assert.Equal(t, 0, resp.Offset)
	assert.Equal(t, 2, resp.Limit)
	require.Len(t, resp.Stories, 2)
	assert.Equal(t, "Front page", resp.Stories[0].Title)
	assert.Equal(t, "Mid pack", resp.Stories[1].Title)

	t.Run("invalid limit is a 400 through the route", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/stories?limit=9000", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid limit")
	})
}

func TestAdvancedFilterHandler(t *testing.T) {
	client := testdb.NewTestClient(t)
	stories := services.NewStoryService(client.Client)
	tags := services.NewTagService(client.Client)

	seedTaggedStory(t, client, stories, tags, 1, "Go 1.25 released", 300, "Tech", "Go")
	seedTaggedStory(t, client, stories, tags, 2, "Rate cut announced", 200, "Business")
	seedTaggedStory(t, client, stories, tags, 3, "Untagged link", 100)

	s := &Server{stories: stories}
	e := storyTestEcho(s)

	fetch := func(t *testing.T, params url.Values) *models.StoryListResponse {
		t.Helper()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/stories/advanced-filter.json?"+params.Encode(), nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var resp models.StoryListResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		return &resp
	}

	t.Run("level-1 include", func(t *testing.T) {
		resp := fetch(t, url.Values{"l1_include": {`["Tech"]`}})
		require.Len(t, resp.Stories, 1)
		assert.Equal(t, "Go 1.25 released", resp.Stories[0].Title)
		assert.Equal(t, 1, resp.TotalCount)
	})

	t.Run("level-1 exclude keeps untagged stories", func(t *testing.T) {
		resp := fetch(t, url.Values{"l1_exclude": {`["Tech"]`}})
		require.Len(t, resp.Stories, 2)
		assert.Equal(t, "Rate cut announced", resp.Stories[0].Title)
		assert.Equal(t, "Untagged link", resp.Stories[1].Title)
	})

	t.Run("malformed filter value degrades to no filter", func(t *testing.T) {
		resp := fetch(t, url.Values{"l1_include": {`not-json`}})
		assert.Equal(t, 3, resp.TotalCount)
	})
}
