package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TagProposal holds the schema definition for the TagProposal entity.
// data is a tagged union keyed by proposal_type; pkg/models owns the codec.
type TagProposal struct {
	ent.Schema
}

// Fields of the TagProposal.
func (TagProposal) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("proposal_id").
			Unique().
			Immutable(),
		field.String("agent_run_id").
			Immutable(),
		field.Enum("proposal_type").
			Values("create_tag", "merge_tags", "retire_tag", "review_category").
			Immutable(),
		field.Enum("status").
			Values("pending", "approved", "rejected", "executed").
			Default("pending").
			Comment("Transitions: pending->approved|rejected, approved->executed"),
		field.Enum("priority").
			Values("low", "medium", "high").
			Default("medium"),
		field.Text("reason"),
		field.JSON("data", json.RawMessage{}).
			Comment("Payload shape depends on proposal_type"),
		field.Int("affected_stories_count").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("reviewed_at").
			Optional().
			Nillable(),
		field.String("reviewed_by").
			MaxLen(100).
			Optional().
			Nillable(),
		field.Time("executed_at").
			Optional().
			Nillable().
			Comment("Set iff status=executed"),
	}
}

// Edges of the TagProposal.
func (TagProposal) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", AgentRun.Type).
			Ref("proposals").
			Field("agent_run_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the TagProposal.
func (TagProposal) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("status", "created_at"),
	}
}
