package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItem_IsStory(t *testing.T) {
	tests := []struct {
		name     string
		item     Item
		expected bool
	}{
		{name: "live story", item: Item{Type: "story"}, expected: true},
		{name: "comment", item: Item{Type: "comment"}, expected: false},
		{name: "job", item: Item{Type: "job"}, expected: false},
		{name: "deleted story", item: Item{Type: "story", Deleted: true}, expected: false},
		{name: "dead story", item: Item{Type: "story", Dead: true}, expected: false},
		{name: "missing type", item: Item{}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.item.IsStory())
		})
	}
}

func TestStoryFromItem(t *testing.T) {
	t.Run("full item", func(t *testing.T) {
		it := &Item{
			ID:          42,
			Type:        "story",
			Title:       "Show HN: something",
			URL:         "https://example.com/post",
			Score:       128,
			By:          "pg",
			Descendants: 37,
			Time:        1700000000,
		}

		st := StoryFromItem(it)
		assert.Equal(t, int64(42), st.HNID)
		assert.Equal(t, "Show HN: something", st.Title)
		require.NotNil(t, st.URL)
		assert.Equal(t, "https://example.com/post", *st.URL)
		assert.Equal(t, 128, st.Score)
		assert.Equal(t, "pg", st.Author)
		assert.Equal(t, 37, st.CommentCount)
		assert.Equal(t, time.Unix(1700000000, 0).UTC(), st.HNCreatedAt)
	})

	t.Run("absent fields get ingestion defaults", func(t *testing.T) {
		st := StoryFromItem(&Item{ID: 7, Type: "story", Time: 1700000000})
		assert.Equal(t, "", st.Title)
		assert.Nil(t, st.URL)
		assert.Equal(t, 0, st.Score)
		assert.Equal(t, "unknown", st.Author)
		assert.Equal(t, 0, st.CommentCount)
	})

	t.Run("non-http url is dropped", func(t *testing.T) {
		st := StoryFromItem(&Item{ID: 7, Type: "story", URL: "ftp://example.com/file", Time: 1700000000})
		assert.Nil(t, st.URL)
	})
}

func TestSanitizeURL(t *testing.T) {
	tests := []struct {
		name  string
		input string
		keep  bool
	}{
		{name: "https kept", input: "https://example.com/a", keep: true},
		{name: "http kept", input: "http://example.com", keep: true},
		{name: "scheme case-insensitive", input: "HTTPS://Example.com/A", keep: true},
		{name: "ftp dropped", input: "ftp://example.com/file", keep: false},
		{name: "javascript dropped", input: "javascript:alert(1)", keep: false},
		{name: "relative dropped", input: "example.com/path", keep: false},
		{name: "malformed dropped", input: "://bad", keep: false},
		{name: "empty dropped", input: "", keep: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SanitizeURL(tt.input)
			if tt.keep {
				require.NotNil(t, got)
				// Kept URLs come back verbatim, case included.
				assert.Equal(t, tt.input, *got)
			} else {
				assert.Nil(t, got)
			}
		})
	}
}
