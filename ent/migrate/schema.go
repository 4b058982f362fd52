// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentRunsColumns holds the columns for the "agent_runs" table.
	AgentRunsColumns = []*schema.Column{
		{Name: "run_id", Type: field.TypeString, Unique: true},
		{Name: "run_type", Type: field.TypeEnum, Enums: []string{"analysis", "proposal", "auto-apply", "execution"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"running", "completed", "failed"}, Default: "running"},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "result_data", Type: field.TypeJSON, Nullable: true},
	}
	// AgentRunsTable holds the schema information for the "agent_runs" table.
	AgentRunsTable = &schema.Table{
		Name:       "agent_runs",
		Columns:    AgentRunsColumns,
		PrimaryKey: []*schema.Column{AgentRunsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "agentrun_status",
				Unique:  false,
				Columns: []*schema.Column{AgentRunsColumns[2]},
			},
			{
				Name:    "agentrun_run_type_started_at",
				Unique:  false,
				Columns: []*schema.Column{AgentRunsColumns[1], AgentRunsColumns[3]},
			},
		},
	}
	// ScraperStatesColumns holds the columns for the "scraper_states" table.
	ScraperStatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "state_type", Type: field.TypeEnum, Enums: []string{"backfill", "continuous"}},
		{Name: "current_item_id", Type: field.TypeInt64, Default: 0},
		{Name: "target_timestamp", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "completed", "paused"}, Default: "active"},
		{Name: "items_processed", Type: field.TypeInt64, Default: 0},
		{Name: "stories_found", Type: field.TypeInt64, Default: 0},
		{Name: "last_run_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ScraperStatesTable holds the schema information for the "scraper_states" table.
	ScraperStatesTable = &schema.Table{
		Name:       "scraper_states",
		Columns:    ScraperStatesColumns,
		PrimaryKey: []*schema.Column{ScraperStatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "scraperstate_state_type",
				Unique:  true,
				Columns: []*schema.Column{ScraperStatesColumns[1]},
			},
		},
	}
	// StoriesColumns holds the columns for the "stories" table.
	StoriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "hn_id", Type: field.TypeInt64, Unique: true},
		{Name: "title", Type: field.TypeString, Size: 500, Default: ""},
		{Name: "url", Type: field.TypeString, Nullable: true, Size: 2000},
		{Name: "score", Type: field.TypeInt, Default: 0},
		{Name: "author", Type: field.TypeString, Size: 100, Default: "unknown"},
		{Name: "comment_count", Type: field.TypeInt, Default: 0},
		{Name: "hn_created_at", Type: field.TypeTime},
		{Name: "is_summarized", Type: field.TypeBool, Default: false},
		{Name: "is_tagged", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// StoriesTable holds the schema information for the "stories" table.
	StoriesTable = &schema.Table{
		Name:       "stories",
		Columns:    StoriesColumns,
		PrimaryKey: []*schema.Column{StoriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "story_score",
				Unique:  false,
				Columns: []*schema.Column{StoriesColumns[4]},
			},
			{
				Name:    "story_hn_created_at",
				Unique:  false,
				Columns: []*schema.Column{StoriesColumns[7]},
			},
			{
				Name:    "story_is_tagged_is_summarized",
				Unique:  false,
				Columns: []*schema.Column{StoriesColumns[9], StoriesColumns[8]},
			},
		},
	}
	// SummariesColumns holds the columns for the "summaries" table.
	SummariesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "text", Type: field.TypeString, Size: 2147483647},
		{Name: "model", Type: field.TypeString, Size: 50, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "story_id", Type: field.TypeInt, Unique: true},
	}
	// SummariesTable holds the schema information for the "summaries" table.
	SummariesTable = &schema.Table{
		Name:       "summaries",
		Columns:    SummariesColumns,
		PrimaryKey: []*schema.Column{SummariesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "summaries_stories_summary",
				Columns:    []*schema.Column{SummariesColumns[4]},
				RefColumns: []*schema.Column{StoriesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// TagsColumns holds the columns for the "tags" table.
	TagsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Size: 100},
		{Name: "slug", Type: field.TypeString, Unique: true, Size: 100},
		{Name: "level", Type: field.TypeInt},
		{Name: "category", Type: field.TypeString, Nullable: true, Size: 50},
		{Name: "is_misc", Type: field.TypeBool, Default: false},
		{Name: "usage_count", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
	}
	// TagsTable holds the schema information for the "tags" table.
	TagsTable = &schema.Table{
		Name:       "tags",
		Columns:    TagsColumns,
		PrimaryKey: []*schema.Column{TagsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "tag_level",
				Unique:  false,
				Columns: []*schema.Column{TagsColumns[3]},
			},
			{
				Name:    "tag_level_category",
				Unique:  false,
				Columns: []*schema.Column{TagsColumns[3], TagsColumns[4]},
			},
		},
	}
	// TagProposalsColumns holds the columns for the "tag_proposals" table.
	TagProposalsColumns = []*schema.Column{
		{Name: "proposal_id", Type: field.TypeString, Unique: true},
		{Name: "proposal_type", Type: field.TypeEnum, Enums: []string{"create_tag", "merge_tags", "retire_tag", "review_category"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "approved", "rejected", "executed"}, Default: "pending"},
		{Name: "priority", Type: field.TypeEnum, Enums: []string{"low", "medium", "high"}, Default: "medium"},
		{Name: "reason", Type: field.TypeString, Size: 2147483647},
		{Name: "data", Type: field.TypeJSON},
		{Name: "affected_stories_count", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "reviewed_at", Type: field.TypeTime, Nullable: true},
		{Name: "reviewed_by", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "executed_at", Type: field.TypeTime, Nullable: true},
		{Name: "agent_run_id", Type: field.TypeString},
	}
	// TagProposalsTable holds the schema information for the "tag_proposals" table.
	TagProposalsTable = &schema.Table{
		Name:       "tag_proposals",
		Columns:    TagProposalsColumns,
		PrimaryKey: []*schema.Column{TagProposalsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tag_proposals_agent_runs_proposals",
				Columns:    []*schema.Column{TagProposalsColumns[11]},
				RefColumns: []*schema.Column{AgentRunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "tagproposal_status",
				Unique:  false,
				Columns: []*schema.Column{TagProposalsColumns[2]},
			},
			{
				Name:    "tagproposal_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{TagProposalsColumns[2], TagProposalsColumns[7]},
			},
		},
	}
	// StoryTagsColumns holds the columns for the "story_tags" table.
	StoryTagsColumns = []*schema.Column{
		{Name: "story_id", Type: field.TypeInt},
		{Name: "tag_id", Type: field.TypeInt},
	}
	// StoryTagsTable holds the schema information for the "story_tags" table.
	StoryTagsTable = &schema.Table{
		Name:       "story_tags",
		Columns:    StoryTagsColumns,
		PrimaryKey: []*schema.Column{StoryTagsColumns[0], StoryTagsColumns[1]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "story_tags_story_id",
				Columns:    []*schema.Column{StoryTagsColumns[0]},
				RefColumns: []*schema.Column{StoriesColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "story_tags_tag_id",
				Columns:    []*schema.Column{StoryTagsColumns[1]},
				RefColumns: []*schema.Column{TagsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentRunsTable,
		ScraperStatesTable,
		StoriesTable,
		SummariesTable,
		TagsTable,
		TagProposalsTable,
		StoryTagsTable,
	}
)

func init() {
	SummariesTable.ForeignKeys[0].RefTable = StoriesTable
	TagProposalsTable.ForeignKeys[0].RefTable = AgentRunsTable
	StoryTagsTable.ForeignKeys[0].RefTable = StoriesTable
	StoryTagsTable.ForeignKeys[1].RefTable = TagsTable
}
