package models

import "time"

// FlatTags is the tag extraction produced by the oracle, grouped by level.
// Absent fields decode to empty slices.
type FlatTags struct {
	L1 []string `json:"l1_tags"`
	L2 []string `json:"l2_tags"`
	L3 []string `json:"l3_tags"`
}

// StoryAnalysis is the structured oracle output for one story.
type StoryAnalysis struct {
	Summary string   `json:"summary"`
	Tags    FlatTags `json:"tags"`
}

// TagUsage pairs a tag name with a usage count inside a report payload.
type TagUsage struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// TagStat is one row of the windowed usage aggregation the analyzer and
// proposer run on. RecentCount covers attachments to stories inside the
// window; UsageCount is the all-time counter on the tag row.
type TagStat struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Level       int     `json:"level"`
	Category    *string `json:"category,omitempty"`
	UsageCount  int     `json:"usage_count"`
	RecentCount int     `json:"recent_count"`
}

// DistributionIssue flags an over- or underrepresented L1 tag.
type DistributionIssue struct {
	Tag        string  `json:"tag"`
	Issue      string  `json:"issue"` // overrepresented | underrepresented
	Percentage float64 `json:"percentage"`
	StoryCount int     `json:"story_count"`
}

// BloatedCategory flags an L2 category holding more tags than the limit.
type BloatedCategory struct {
	Category string     `json:"category"`
	TagCount int        `json:"tag_count"`
	Tags     []TagUsage `json:"tags"`
}

// SparseTag is a non-L1 tag with too little usage inside the window.
type SparseTag struct {
	Name        string `json:"name"`
	Level       int    `json:"level"`
	RecentCount int    `json:"recent_count"`
}

// DuplicatePair is a candidate pair of near-identical tags.
type DuplicatePair struct {
	Tag1       string  `json:"tag1"`
	Tag2       string  `json:"tag2"`
	Count1     int     `json:"count1"`
	Count2     int     `json:"count2"`
	Similarity float64 `json:"similarity"`
}

// TaxonomyAnalysis is the analyzer's full report over the rolling window.
type TaxonomyAnalysis struct {
	WindowDays          int                 `json:"window_days"`
	GeneratedAt         time.Time           `json:"generated_at"`
	TotalTags           int                 `json:"total_tags"`
	TotalStories        int                 `json:"total_stories"`
	UnevenDistribution  []DistributionIssue `json:"uneven_distribution"`
	OrphanStories       int                 `json:"orphan_stories"`
	BloatedCategories   []BloatedCategory   `json:"bloated_categories"`
	SparseTags          []SparseTag         `json:"sparse_tags"`
	DuplicateCandidates []DuplicatePair     `json:"duplicate_candidates"`
}
