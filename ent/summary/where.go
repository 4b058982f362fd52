// Code generated by ent, DO NOT EDIT.

package summary

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/hnscribe/hnscribe/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Summary {
	return predicate.Summary(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Summary {
	return predicate.Summary(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Summary {
	return predicate.Summary(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Summary {
	return predicate.Summary(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Summary {
	return predicate.Summary(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Summary {
	return predicate.Summary(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Summary {
	return predicate.Summary(sql.FieldLTE(FieldID, id))
}

// StoryID applies equality check predicate on the "story_id" field. It's identical to StoryIDEQ.
func StoryID(v int) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldStoryID, v))
}

// Text applies equality check predicate on the "text" field. It's identical to TextEQ.
func Text(v string) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldText, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldModel, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldCreatedAt, v))
}

// StoryIDEQ applies the EQ predicate on the "story_id" field.
func StoryIDEQ(v int) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldStoryID, v))
}

// StoryIDNEQ applies the NEQ predicate on the "story_id" field.
func StoryIDNEQ(v int) predicate.Summary {
	return predicate.Summary(sql.FieldNEQ(FieldStoryID, v))
}

// StoryIDIn applies the In predicate on the "story_id" field.
func StoryIDIn(vs ...int) predicate.Summary {
	return predicate.Summary(sql.FieldIn(FieldStoryID, vs...))
}

// StoryIDNotIn applies the NotIn predicate on the "story_id" field.
func StoryIDNotIn(vs ...int) predicate.Summary {
	return predicate.Summary(sql.FieldNotIn(FieldStoryID, vs...))
}

// TextEQ applies the EQ predicate on the "text" field.
func TextEQ(v string) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldText, v))
}

// TextNEQ applies the NEQ predicate on the "text" field.
func TextNEQ(v string) predicate.Summary {
	return predicate.Summary(sql.FieldNEQ(FieldText, v))
}

// TextIn applies the In predicate on the "text" field.
func TextIn(vs ...string) predicate.Summary {
	return predicate.Summary(sql.FieldIn(FieldText, vs...))
}

// TextNotIn applies the NotIn predicate on the "text" field.
func TextNotIn(vs ...string) predicate.Summary {
	return predicate.Summary(sql.FieldNotIn(FieldText, vs...))
}

// TextGT applies the GT predicate on the "text" field.
func TextGT(v string) predicate.Summary {
	return predicate.Summary(sql.FieldGT(FieldText, v))
}

// TextGTE applies the GTE predicate on the "text" field.
func TextGTE(v string) predicate.Summary {
	return predicate.Summary(sql.FieldGTE(FieldText, v))
}

// TextLT applies the LT predicate on the "text" field.
func TextLT(v string) predicate.Summary {
	return predicate.Summary(sql.FieldLT(FieldText, v))
}

// TextLTE applies the LTE predicate on the "text" field.
func TextLTE(v string) predicate.Summary {
	return predicate.Summary(sql.FieldLTE(FieldText, v))
}

// TextContains applies the Contains predicate on the "text" field.
func TextContains(v string) predicate.Summary {
	return predicate.Summary(sql.FieldContains(FieldText, v))
}

// TextHasPrefix applies the HasPrefix predicate on the "text" field.
func TextHasPrefix(v string) predicate.Summary {
	return predicate.Summary(sql.FieldHasPrefix(FieldText, v))
}

// TextHasSuffix applies the HasSuffix predicate on the "text" field.
func TextHasSuffix(v string) predicate.Summary {
	return predicate.Summary(sql.FieldHasSuffix(FieldText, v))
}

// TextEqualFold applies the EqualFold predicate on the "text" field.
func TextEqualFold(v string) predicate.Summary {
	return predicate.Summary(sql.FieldEqualFold(FieldText, v))
}

// TextContainsFold applies the ContainsFold predicate on the "text" field.
func TextContainsFold(v string) predicate.Summary {
	return predicate.Summary(sql.FieldContainsFold(FieldText, v))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.Summary {
	return predicate.Summary(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.Summary {
	return predicate.Summary(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.Summary {
	return predicate.Summary(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.Summary {
	return predicate.Summary(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.Summary {
	return predicate.Summary(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.Summary {
	return predicate.Summary(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.Summary {
	return predicate.Summary(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.Summary {
	return predicate.Summary(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.Summary {
	return predicate.Summary(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.Summary {
	return predicate.Summary(sql.FieldHasSuffix(FieldModel, v))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.Summary {
	return predicate.Summary(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.Summary {
	return predicate.Summary(sql.FieldContainsFold(FieldModel, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Summary {
	return predicate.Summary(sql.FieldLTE(FieldCreatedAt, v))
}

// HasStory applies the HasEdge predicate on the "story" edge.
func HasStory() predicate.Summary {
	return predicate.Summary(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, StoryTable, StoryColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStoryWith applies the HasEdge predicate on the "story" edge with a given conditions (other predicates).
func HasStoryWith(preds ...predicate.Story) predicate.Summary {
	return predicate.Summary(func(s *sql.Selector) {
		step := newStoryStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Summary) predicate.Summary {
	return predicate.Summary(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Summary) predicate.Summary {
	return predicate.Summary(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Summary) predicate.Summary {
	return predicate.Summary(sql.NotPredicates(p))
}
