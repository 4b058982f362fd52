package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Story holds the schema definition for the Story entity.
// One row per Hacker News story; hn_id is the upstream identity.
type Story struct {
	ent.Schema
}

// Fields of the Story.
func (Story) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("hn_id").
			Unique().
			Immutable().
			Comment("Upstream HN item id"),
		field.String("title").
			MaxLen(500).
			Default(""),
		field.String("url").
			MaxLen(2000).
			Optional().
			Nillable().
			Comment("Null unless an absolute http(s) URL"),
		field.Int("score").
			Default(0),
		field.String("author").
			MaxLen(100).
			Default("unknown"),
		field.Int("comment_count").
			Default(0),
		field.Time("hn_created_at").
			Immutable().
			Comment("Upstream creation time; never rewritten on upsert"),
		field.Bool("is_summarized").
			Default(false).
			Comment("Owned by the enrichment pipeline"),
		field.Bool("is_tagged").
			Default(false).
			Comment("Owned by the enrichment pipeline"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Story.
func (Story) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("summary", Summary.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("tags", Tag.Type).
			StorageKey(edge.Table("story_tags"), edge.Columns("story_id", "tag_id")),
	}
}

// Indexes of the Story.
func (Story) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("score"),
		index.Fields("hn_created_at"),

		// Enrichment/recovery scans select on the flag pair
		index.Fields("is_tagged", "is_summarized"),
	}
}
