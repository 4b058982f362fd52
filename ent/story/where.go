// Code generated by ent, DO NOT EDIT.

package story

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/hnscribe/hnscribe/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Story {
	return predicate.Story(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Story {
	return predicate.Story(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Story {
	return predicate.Story(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Story {
	return predicate.Story(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Story {
	return predicate.Story(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Story {
	return predicate.Story(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Story {
	return predicate.Story(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Story {
	return predicate.Story(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Story {
	return predicate.Story(sql.FieldLTE(FieldID, id))
}

// HnID applies equality check predicate on the "hn_id" field. It's identical to HnIDEQ.
func HnID(v int64) predicate.Story {
	return predicate.Story(sql.FieldEQ(FieldHnID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Story {
	return predicate.Story(sql.FieldEQ(FieldTitle, v))
}

// URL applies equality check predicate on the "url" field. It's identical to URLEQ.
func URL(v string) predicate.Story {
	return predicate.Story(sql.FieldEQ(FieldURL, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v int) predicate.Story {
	return predicate.Story(sql.FieldEQ(FieldScore, v))
}

// Author applies equality check predicate on the "author" field. It's identical to AuthorEQ.
func Author(v string) predicate.Story {
	return predicate.Story(sql.FieldEQ(FieldAuthor, v))
}

// CommentCount applies equality check predicate on the "comment_count" field. It's identical to CommentCountEQ.
func CommentCount(v int) predicate.Story {
	return predicate.Story(sql.FieldEQ(FieldCommentCount, v))
}

// HnCreatedAt applies equality check predicate on the "hn_created_at" field. It's identical to HnCreatedAtEQ.
func HnCreatedAt(v time.Time) predicate.Story {
	return predicate.Story(sql.FieldEQ(FieldHnCreatedAt, v))
}

// IsSummarized applies equality check predicate on the "is_summarized" field. It's identical to IsSummarizedEQ.
func IsSummarized(v bool) predicate.Story {
	return predicate.Story(sql.FieldEQ(FieldIsSummarized, v))
}

// IsTagged applies equality check predicate on the "is_tagged" field. It's identical to IsTaggedEQ.
func IsTagged(v bool) predicate.Story {
	return predicate.Story(sql.FieldEQ(FieldIsTagged, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Story {
	return predicate.Story(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Story {
	return predicate.Story(sql.FieldEQ(FieldUpdatedAt, v))
}

// HnIDEQ applies the EQ predicate on the "hn_id" field.
func HnIDEQ(v int64) predicate.Story {
	return predicate.Story(sql.FieldEQ(FieldHnID, v))
}

// HnIDNEQ applies the NEQ predicate on the "hn_id" field.
func HnIDNEQ(v int64) predicate.Story {
	return predicate.Story(sql.FieldNEQ(FieldHnID, v))
}

// HnIDIn applies the In predicate on the "hn_id" field.
func HnIDIn(vs ...int64) predicate.Story {
	return predicate.Story(sql.FieldIn(FieldHnID, vs...))
}

// HnIDNotIn applies the NotIn predicate on the "hn_id" field.
func HnIDNotIn(vs ...int64) predicate.Story {
	return predicate.Story(sql.FieldNotIn(FieldHnID, vs...))
}

// HnIDGT applies the GT predicate on the "hn_id" field.
func HnIDGT(v int64) predicate.Story {
	return predicate.Story(sql.FieldGT(FieldHnID, v))
}

// HnIDGTE applies the GTE predicate on the "hn_id" field.
func HnIDGTE(v int64) predicate.Story {
	return predicate.Story(sql.FieldGTE(FieldHnID, v))
}

// HnIDLT applies the LT predicate on the "hn_id" field.
func HnIDLT(v int64) predicate.Story {
	return predicate.Story(sql.FieldLT(FieldHnID, v))
}

// HnIDLTE applies the LTE predicate on the "hn_id" field.
func HnIDLTE(v int64) predicate.Story {
	return predicate.Story(sql.FieldLTE(FieldHnID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Story {
	return predicate.Story(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Story {
	return predicate.Story(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Story {
	return predicate.Story(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Story {
	return predicate.Story(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Story {
	return predicate.Story(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Story {
	return predicate.Story(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Story {
	return predicate.Story(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Story {
	return predicate.Story(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Story {
	return predicate.Story(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Story {
	return predicate.Story(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Story {
	return predicate.Story(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Story {
	return predicate.Story(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Story {
	return predicate.Story(sql.FieldContainsFold(FieldTitle, v))
}

// URLEQ applies the EQ predicate on the "url" field.
func URLEQ(v string) predicate.Story {
	return predicate.Story(sql.FieldEQ(FieldURL, v))
}

// URLNEQ applies the NEQ predicate on the "url" field.
func URLNEQ(v string) predicate.Story {
	return predicate.Story(sql.FieldNEQ(FieldURL, v))
}

// URLIn applies the In predicate on the "url" field.
func URLIn(vs ...string) predicate.Story {
	return predicate.Story(sql.FieldIn(FieldURL, vs...))
}

// URLNotIn applies the NotIn predicate on the "url" field.
func URLNotIn(vs ...string) predicate.Story {
	return predicate.Story(sql.FieldNotIn(FieldURL, vs...))
}

// URLGT applies the GT predicate on the "url" field.
func URLGT(v string) predicate.Story {
	return predicate.Story(sql.FieldGT(FieldURL, v))
}

// URLGTE applies the GTE predicate on the "url" field.
func URLGTE(v string) predicate.Story {
	return predicate.Story(sql.FieldGTE(FieldURL, v))
}

// URLLT applies the LT predicate on the "url" field.
func URLLT(v string) predicate.Story {
	return predicate.Story(sql.FieldLT(FieldURL, v))
}

// URLLTE applies the LTE predicate on the "url" field.
func URLLTE(v string) predicate.Story {
	return predicate.Story(sql.FieldLTE(FieldURL, v))
}

// URLContains applies the Contains predicate on the "url" field.
func URLContains(v string) predicate.Story {
	return predicate.Story(sql.FieldContains(FieldURL, v))
}

// URLHasPrefix applies the HasPrefix predicate on the "url" field.
func URLHasPrefix(v string) predicate.Story {
	return predicate.Story(sql.FieldHasPrefix(FieldURL, v))
}

// URLHasSuffix applies the HasSuffix predicate on the "url" field.
func URLHasSuffix(v string) predicate.Story {
	return predicate.Story(sql.FieldHasSuffix(FieldURL, v))
}

// URLIsNil applies the IsNil predicate on the "url" field.
func URLIsNil() predicate.Story {
	return predicate.Story(sql.FieldIsNull(FieldURL))
}

// URLNotNil applies the NotNil predicate on the "url" field.
func URLNotNil() predicate.Story {
	return predicate.Story(sql.FieldNotNull(FieldURL))
}

// URLEqualFold applies the EqualFold predicate on the "url" field.
func URLEqualFold(v string) predicate.Story {
	return predicate.Story(sql.FieldEqualFold(FieldURL, v))
}

// URLContainsFold applies the ContainsFold predicate on the "url" field.
func URLContainsFold(v string) predicate.Story {
	return predicate.Story(sql.FieldContainsFold(FieldURL, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v int) predicate.Story {
	return predicate.Story(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v int) predicate.Story {
	return predicate.Story(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...int) predicate.Story {
	return predicate.Story(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...int) predicate.Story {
	return predicate.Story(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v int) predicate.Story {
	return predicate.Story(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v int) predicate.Story {
	return predicate.Story(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v int) predicate.Story {
	return predicate.Story(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v int) predicate.Story {
	return predicate.Story(sql.FieldLTE(FieldScore, v))
}

// AuthorEQ applies the EQ predicate on the "author" field.
func AuthorEQ(v string) predicate.Story {
	return predicate.Story(sql.FieldEQ(FieldAuthor, v))
}

// AuthorNEQ applies the NEQ predicate on the "author" field.
func AuthorNEQ(v string) predicate.Story {
	return predicate.Story(sql.FieldNEQ(FieldAuthor, v))
}

// AuthorIn applies the In predicate on the "author" field.
func AuthorIn(vs ...string) predicate.Story {
	return predicate.Story(sql.FieldIn(FieldAuthor, vs...))
}

// AuthorNotIn applies the NotIn predicate on the "author" field.
func AuthorNotIn(vs ...string) predicate.Story {
	return predicate.Story(sql.FieldNotIn(FieldAuthor, vs...))
}

// AuthorGT applies the GT predicate on the "author" field.
func AuthorGT(v string) predicate.Story {
	return predicate.Story(sql.FieldGT(FieldAuthor, v))
}

// AuthorGTE applies the GTE predicate on the "author" field.
func AuthorGTE(v string) predicate.Story {
	return predicate.Story(sql.FieldGTE(FieldAuthor, v))
}

// AuthorLT applies the LT predicate on the "author" field.
func AuthorLT(v string) predicate.Story {
	return predicate.Story(sql.FieldLT(FieldAuthor, v))
}

// AuthorLTE applies the LTE predicate on the "author" field.
func AuthorLTE(v string) predicate.Story {
	return predicate.Story(sql.FieldLTE(FieldAuthor, v))
}

// AuthorContains applies the Contains predicate on the "author" field.
func AuthorContains(v string) predicate.Story {
	return predicate.Story(sql.FieldContains(FieldAuthor, v))
}

// AuthorHasPrefix applies the HasPrefix predicate on the "author" field.
func AuthorHasPrefix(v string) predicate.Story {
	return predicate.Story(sql.FieldHasPrefix(FieldAuthor, v))
}

// AuthorHasSuffix applies the HasSuffix predicate on the "author" field.
func AuthorHasSuffix(v string) predicate.Story {
	return predicate.Story(sql.FieldHasSuffix(FieldAuthor, v))
}

// AuthorEqualFold applies the EqualFold predicate on the "author" field.
func AuthorEqualFold(v string) predicate.Story {
	return predicate.Story(sql.FieldEqualFold(FieldAuthor, v))
}

// AuthorContainsFold applies the ContainsFold predicate on the "author" field.
func AuthorContainsFold(v string) predicate.Story {
	return predicate.Story(sql.FieldContainsFold(FieldAuthor, v))
}

// CommentCountEQ applies the EQ predicate on the "comment_count" field.
func CommentCountEQ(v int) predicate.Story {
	return predicate.Story(sql.FieldEQ(FieldCommentCount, v))
}

// CommentCountNEQ applies the NEQ predicate on the "comment_count" field.
func CommentCountNEQ(v int) predicate.Story {
	return predicate.Story(sql.FieldNEQ(FieldCommentCount, v))
}

// CommentCountIn applies the In predicate on the "comment_count" field.
func CommentCountIn(vs ...int) predicate.Story {
	return predicate.Story(sql.FieldIn(FieldCommentCount, vs...))
}

// CommentCountNotIn applies the NotIn predicate on the "comment_count" field.
func CommentCountNotIn(vs ...int) predicate.Story {
	return predicate.Story(sql.FieldNotIn(FieldCommentCount, vs...))
}

// CommentCountGT applies the GT predicate on the "comment_count" field.
func CommentCountGT(v int) predicate.Story {
	return predicate.Story(sql.FieldGT(FieldCommentCount, v))
}

// CommentCountGTE applies the GTE predicate on the "comment_count" field.
func CommentCountGTE(v int) predicate.Story {
	return predicate.Story(sql.FieldGTE(FieldCommentCount, v))
}

// CommentCountLT applies the LT predicate on the "comment_count" field.
func CommentCountLT(v int) predicate.Story {
	return predicate.Story(sql.FieldLT(FieldCommentCount, v))
}

// CommentCountLTE applies the LTE predicate on the "comment_count" field.
func CommentCountLTE(v int) predicate.Story {
	return predicate.Story(sql.FieldLTE(FieldCommentCount, v))
}

// HnCreatedAtEQ applies the EQ predicate on the "hn_created_at" field.
func HnCreatedAtEQ(v time.Time) predicate.Story {
	return predicate.Story(sql.FieldEQ(FieldHnCreatedAt, v))
}

// HnCreatedAtNEQ applies the NEQ predicate on the "hn_created_at" field.
func HnCreatedAtNEQ(v time.Time) predicate.Story {
	return predicate.Story(sql.FieldNEQ(FieldHnCreatedAt, v))
}

// HnCreatedAtIn applies the In predicate on the "hn_created_at" field.
func HnCreatedAtIn(vs ...time.Time) predicate.Story {
	return predicate.Story(sql.FieldIn(FieldHnCreatedAt, vs...))
}

// HnCreatedAtNotIn applies the NotIn predicate on the "hn_created_at" field.
func HnCreatedAtNotIn(vs ...time.Time) predicate.Story {
	return predicate.Story(sql.FieldNotIn(FieldHnCreatedAt, vs...))
}

// HnCreatedAtGT applies the GT predicate on the "hn_created_at" field.
func HnCreatedAtGT(v time.Time) predicate.Story {
	return predicate.Story(sql.FieldGT(FieldHnCreatedAt, v))
}

// HnCreatedAtGTE applies the GTE predicate on the "hn_created_at" field.
func HnCreatedAtGTE(v time.Time) predicate.Story {
	return predicate.Story(sql.FieldGTE(FieldHnCreatedAt, v))
}

// HnCreatedAtLT applies the LT predicate on the "hn_created_at" field.
func HnCreatedAtLT(v time.Time) predicate.Story {
	return predicate.Story(sql.FieldLT(FieldHnCreatedAt, v))
}

// HnCreatedAtLTE applies the LTE predicate on the "hn_created_at" field.
func HnCreatedAtLTE(v time.Time) predicate.Story {
	return predicate.Story(sql.FieldLTE(FieldHnCreatedAt, v))
}

// IsSummarizedEQ applies the EQ predicate on the "is_summarized" field.
func IsSummarizedEQ(v bool) predicate.Story {
	return predicate.Story(sql.FieldEQ(FieldIsSummarized, v))
}

// IsSummarizedNEQ applies the NEQ predicate on the "is_summarized" field.
func IsSummarizedNEQ(v bool) predicate.Story {
	return predicate.Story(sql.FieldNEQ(FieldIsSummarized, v))
}

// IsTaggedEQ applies the EQ predicate on the "is_tagged" field.
func IsTaggedEQ(v bool) predicate.Story {
	return predicate.Story(sql.FieldEQ(FieldIsTagged, v))
}

// IsTaggedNEQ applies the NEQ predicate on the "is_tagged" field.
func IsTaggedNEQ(v bool) predicate.Story {
	return predicate.Story(sql.FieldNEQ(FieldIsTagged, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Story {
	return predicate.Story(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Story {
	return predicate.Story(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Story {
	return predicate.Story(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Story {
	return predicate.Story(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Story {
	return predicate.Story(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Story {
	return predicate.Story(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Story {
	return predicate.Story(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Story {
	return predicate.Story(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Story {
	return predicate.Story(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Story {
	return predicate.Story(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Story {
	return predicate.Story(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Story {
	return predicate.Story(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Story {
	return predicate.Story(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Story {
	return predicate.Story(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Story {
	return predicate.Story(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Story {
	return predicate.Story(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasSummary applies the HasEdge predicate on the "summary" edge.
func HasSummary() predicate.Story {
	return predicate.Story(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, SummaryTable, SummaryColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSummaryWith applies the HasEdge predicate on the "summary" edge with a given conditions (other predicates).
func HasSummaryWith(preds ...predicate.Summary) predicate.Story {
	return predicate.Story(func(s *sql.Selector) {
		step := newSummaryStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTags applies the HasEdge predicate on the "tags" edge.
func HasTags() predicate.Story {
	return predicate.Story(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, TagsTable, TagsPrimaryKey...),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTagsWith applies the HasEdge predicate on the "tags" edge with a given conditions (other predicates).
func HasTagsWith(preds ...predicate.Tag) predicate.Story {
	return predicate.Story(func(s *sql.Selector) {
		step := newTagsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Story) predicate.Story {
	return predicate.Story(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Story) predicate.Story {
	return predicate.Story(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Story) predicate.Story {
	return predicate.Story(sql.NotPredicates(p))
}
