package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Tag holds the schema definition for the Tag entity.
// slug is the canonical identity; level 1 and 2 membership comes from the
// fixed taxonomy vocabulary, level 3 is the open long tail.
type Tag struct {
	ent.Schema
}

// Fields of the Tag.
func (Tag) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			MaxLen(100),
		field.String("slug").
			MaxLen(100).
			Unique(),
		field.Int("level").
			Comment("1 = broad domain, 2 = curated topic, 3+ = open"),
		field.String("category").
			MaxLen(50).
			Optional().
			Nillable().
			Comment("Set for level-2 tags only"),
		field.Bool("is_misc").
			Default(false).
			Comment("True for uncurated (level >= 3) tags"),
		field.Int("usage_count").
			Default(0).
			Comment("Derived over story_tags; recounted by the reorganizer"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Tag.
func (Tag) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("stories", Story.Type).
			Ref("tags"),
	}
}

// Indexes of the Tag.
func (Tag) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("level"),
		index.Fields("level", "category"),
	}
}
