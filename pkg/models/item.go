package models

import (
	"net/url"
	"strings"
	"time"
)

// Item is the raw upstream payload for a single HN item.
// Absent JSON fields decode to zero values; conversion applies defaults.
type Item struct {
	ID          int64  `json:"id"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	Score       int    `json:"score"`
	By          string `json:"by"`
	Descendants int    `json:"descendants"`
	Time        int64  `json:"time"`
	Deleted     bool   `json:"deleted"`
	Dead        bool   `json:"dead"`
}

// IsStory reports whether the item is a live story (type story, not
// deleted, not dead). Everything else is filtered out at ingestion.
func (it *Item) IsStory() bool {
	return it.Type == "story" && !it.Deleted && !it.Dead
}

// ScrapedStory is a story as extracted from the upstream feed, ready for
// upsert keyed on HNID.
type ScrapedStory struct {
	HNID         int64     `json:"hn_id"`
	Title        string    `json:"title"`
	URL          *string   `json:"url,omitempty"`
	Score        int       `json:"score"`
	Author       string    `json:"author"`
	CommentCount int       `json:"comment_count"`
	HNCreatedAt  time.Time `json:"hn_created_at"`
}

// StoryFromItem converts an upstream item into a ScrapedStory, applying
// the ingestion defaults: empty title, author "unknown", zero comment
// count, and URL sanitization.
func StoryFromItem(it *Item) *ScrapedStory {
	author := it.By
	if author == "" {
		author = "unknown"
	}
	return &ScrapedStory{
		HNID:         it.ID,
		Title:        it.Title,
		URL:          SanitizeURL(it.URL),
		Score:        it.Score,
		Author:       author,
		CommentCount: it.Descendants,
		HNCreatedAt:  time.Unix(it.Time, 0).UTC(),
	}
}

// SanitizeURL returns the URL unchanged when its scheme is http or https
// (case-insensitive), nil otherwise. Relative and malformed URLs are
// dropped too.
func SanitizeURL(raw string) *string {
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return &raw
	}
	return nil
}
