package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ScraperState holds the schema definition for the ScraperState entity.
// Exactly one row per state_type (backfill, continuous); the unique index is
// load-bearing for the advisory-lock get-or-create.
type ScraperState struct {
	ent.Schema
}

// Fields of the ScraperState.
func (ScraperState) Fields() []ent.Field {
	return []ent.Field{
		field.Enum("state_type").
			Values("backfill", "continuous").
			Immutable(),
		field.Int64("current_item_id").
			Default(0).
			Comment("Backfill: next ceiling (only decreases). Continuous: last seen id (only increases)"),
		field.Time("target_timestamp").
			Optional().
			Nillable().
			Comment("Backfill stop boundary; unused for continuous"),
		field.Enum("status").
			Values("active", "completed", "paused").
			Default("active"),
		field.Int64("items_processed").
			Default(0),
		field.Int64("stories_found").
			Default(0),
		field.Time("last_run_at").
			Default(time.Now),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the ScraperState.
func (ScraperState) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("state_type").
			Unique(),
	}
}
