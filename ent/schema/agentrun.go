package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentRun holds the schema definition for the AgentRun entity.
// One row per taxonomy-maintenance invocation (analysis/proposal/auto-apply)
// or per proposal execution.
type AgentRun struct {
	ent.Schema
}

// Fields of the AgentRun.
func (AgentRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("run_id").
			Unique().
			Immutable(),
		field.Enum("run_type").
			Values("analysis", "proposal", "auto-apply", "execution").
			Immutable(),
		field.Enum("status").
			Values("running", "completed", "failed").
			Default("running"),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable().
			Comment("Null iff status=running"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.JSON("result_data", map[string]interface{}{}).
			Optional().
			Comment("Analysis report / run summary"),
	}
}

// Edges of the AgentRun.
func (AgentRun) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("proposals", TagProposal.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the AgentRun.
func (AgentRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("run_type", "started_at"),
	}
}
