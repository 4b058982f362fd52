package models

import (
	"github.com/hnscribe/hnscribe/ent"
)

// StoryListResponse contains a paginated story list.
type StoryListResponse struct {
	Stories    []*ent.Story `json:"stories"`
	TotalCount int          `json:"total_count"`
	Offset     int          `json:"offset"`
	Limit      int          `json:"limit"`
}

// GroupedTags groups all tags by level, plus level-2 tags by category.
type GroupedTags struct {
	L1         []*ent.Tag            `json:"l1"`
	L2         []*ent.Tag            `json:"l2"`
	L3         []*ent.Tag            `json:"l3"`
	Categories map[string][]*ent.Tag `json:"categories"`
}

// RunListResponse contains a list of agent runs.
type RunListResponse struct {
	Runs  []*ent.AgentRun `json:"runs"`
	Count int             `json:"count"`
}

// ProposalListResponse contains a list of tag proposals.
type ProposalListResponse struct {
	Proposals []*ent.TagProposal `json:"proposals"`
	Count     int                `json:"count"`
}
