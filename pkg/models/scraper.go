package models

import "time"

// Scrape run statuses reported by the state machine.
const (
	ScrapeCompleted        = "completed"
	ScrapeInProgress       = "in_progress"
	ScrapeAlreadyCompleted = "already_completed"
)

// BatchStats is the outcome of one batch through the scraper kernel.
type BatchStats struct {
	ItemsScanned      int  `json:"items_scanned"`
	StoriesFound      int  `json:"stories_found"`
	StoriesNew        int  `json:"stories_new"`
	ReachedTargetDate bool `json:"reached_target_date"`
}

// Add accumulates another batch into the receiver.
func (s *BatchStats) Add(o BatchStats) {
	s.ItemsScanned += o.ItemsScanned
	s.StoriesFound += o.StoriesFound
	s.StoriesNew += o.StoriesNew
	s.ReachedTargetDate = s.ReachedTargetDate || o.ReachedTargetDate
}

// BackfillResult summarizes one scheduler tick of the backfill mode.
type BackfillResult struct {
	Status           string `json:"status"`
	BatchesProcessed int    `json:"batches_processed"`
	ItemsScanned     int    `json:"items_scanned"`
	StoriesAdded     int    `json:"stories_added"`
	CurrentItemID    int64  `json:"current_item_id"`
}

// ContinuousResult summarizes one scheduler tick of the continuous mode.
type ContinuousResult struct {
	Status        string `json:"status"`
	ItemsScanned  int    `json:"items_scanned"`
	StoriesAdded  int    `json:"stories_added"`
	CuratedAdded  int    `json:"curated_added"`
	CurrentItemID int64  `json:"current_item_id"`
}

// StateStatus is the per-mode slice of the scraper status document.
type StateStatus struct {
	Status          string     `json:"status"`
	CurrentItemID   int64      `json:"current_item_id"`
	TargetTimestamp *time.Time `json:"target_timestamp,omitempty"`
	ItemsProcessed  int64      `json:"items_processed"`
	StoriesFound    int64      `json:"stories_found"`
	LastRunAt       time.Time  `json:"last_run_at"`
}

// ScrapeStatus is the full scraper status document served by the API.
type ScrapeStatus struct {
	HNMaxItem    int64                   `json:"hn_max_item"`
	TotalStories int                     `json:"total_stories"`
	States       map[string]*StateStatus `json:"states"`
}
