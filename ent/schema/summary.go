package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Summary holds the schema definition for the Summary entity.
// At most one per Story (unique story_id carries the 1:1 invariant).
type Summary struct {
	ent.Schema
}

// Fields of the Summary.
func (Summary) Fields() []ent.Field {
	return []ent.Field{
		field.Int("story_id").
			Unique().
			Immutable(),
		field.Text("text").
			Comment("Model-generated summary text"),
		field.String("model").
			MaxLen(50).
			Default("").
			Comment("Model identifier that produced the summary"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Summary.
func (Summary) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("story", Story.Type).
			Ref("summary").
			Field("story_id").
			Unique().
			Required().
			Immutable(),
	}
}
