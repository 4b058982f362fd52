package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hnscribe/hnscribe/ent"
	"github.com/hnscribe/hnscribe/pkg/models"
	"github.com/hnscribe/hnscribe/pkg/services"
	testdb "github.com/hnscribe/hnscribe/test/database"
)

func tagNames(tags []*ent.Tag) []string {
	names := make([]string, 0, len(tags))
	for _, tag := range tags {
		names = append(names, tag.Name)
	}
	return names
}

func TestTagHandlers(t *testing.T) {
	ctx := context.Background()
	client := testdb.NewTestClient(t)
	tags := services.NewTagService(client.Client)

	for _, name := range []string{"Tech", "AI/ML", "Go", "OpenAI"} {
		_, err := tags.GetOrCreateTag(ctx, name)
		require.NoError(t, err)
	}

	s := &Server{tags: tags}
	e := echo.New()
	e.GET("/api/v1/tags", s.listTagsHandler)
	e.GET("/api/v1/tags/grouped", s.groupedTagsHandler)

	t.Run("flat list", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/tags", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp TagListResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 4, resp.Count)
		assert.ElementsMatch(t, []string{"Tech", "AI/ML", "Go", "OpenAI"}, tagNames(resp.Tags))
	})

	t.Run("grouped by level and category", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/tags/grouped", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var grouped models.GroupedTags
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &grouped))
		assert.ElementsMatch(t, []string{"Tech"}, tagNames(grouped.L1))
		assert.ElementsMatch(t, []string{"AI/ML", "Go"}, tagNames(grouped.L2))
		assert.ElementsMatch(t, []string{"OpenAI"}, tagNames(grouped.L3))
		assert.ElementsMatch(t, []string{"AI/ML"}, tagNames(grouped.Categories["Tech Topics"]))
		assert.ElementsMatch(t, []string{"Go"}, tagNames(grouped.Categories["Tech Stacks"]))
	})
}
