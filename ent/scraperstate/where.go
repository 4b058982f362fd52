// Code generated by ent, DO NOT EDIT.

package scraperstate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/hnscribe/hnscribe/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ScraperState {
	return predicate.ScraperState(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ScraperState {
	return predicate.ScraperState(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ScraperState {
	return predicate.ScraperState(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ScraperState {
	return predicate.ScraperState(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ScraperState {
	return predicate.ScraperState(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ScraperState {
	return predicate.ScraperState(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ScraperState {
	return predicate.ScraperState(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ScraperState {
	return predicate.ScraperState(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ScraperState {
	return predicate.ScraperState(sql.FieldLTE(FieldID, id))
}

// CurrentItemID applies equality check predicate on the "current_item_id" field. It's identical to CurrentItemIDEQ.
func CurrentItemID(v int64) predicate.ScraperState {
	return predicate.ScraperState(sql.FieldEQ(FieldCurrentItemID, v))
}

// TargetTimestamp applies equality check predicate on the "target_timestamp" field. It's identical to TargetTimestampEQ.
func TargetTimestamp(v time.Time) predicate.ScraperState {
	return predicate.ScraperState(sql.FieldEQ(FieldTargetTimestamp, v))
}

// ItemsProcessed applies equality check predicate on the "items_processed" field. It's identical to ItemsProcessedEQ.
func ItemsProcessed(v int64) predicate.ScraperState {
	return predicate.ScraperState(sql.FieldEQ(FieldItemsProcessed, v))
}

// StoriesFound applies equality check predicate on the "stories_found" field. It's identical to StoriesFoundEQ.
func StoriesFound(v int64) predicate.ScraperState {
	return predicate.ScraperState(sql.FieldEQ(FieldStoriesFound, v))
}

// LastRunAt applies equality check predicate on the "last_run_at" field. It's identical to LastRunAtEQ.
func LastRunAt(v time.Time) predicate.ScraperState {
	return predicate.ScraperState(sql.FieldEQ(FieldLastRunAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ScraperState {
	return predicate.ScraperState(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ScraperState {
	return predicate.ScraperState(sql.FieldEQ(FieldUpdatedAt, v))
}

// StateTypeEQ applies the EQ predicate on the "state_type" field.
func StateTypeEQ(v StateType) predicate.ScraperState {
	return predicate.ScraperState(sql.FieldEQ(FieldStateType, v))
}

// StateTypeNEQ applies the NEQ predicate on the "state_type" field.
func StateTypeNEQ(v StateType) predicate.ScraperState {
	return predicate.ScraperState(sql.FieldNEQ(FieldStateType, v))
}

// StateTypeIn applies the In predicate on the "state_type" field.
func StateTypeIn(vs ...StateType) predicate.ScraperState {
	return predicate.ScraperState(sql.FieldIn(FieldStateType, vs...))
}

// StateTypeNotIn applies the NotIn predicate on the "state_type" field.
func StateTypeNotIn(vs ...StateType) predicate.ScraperState {
	return predicate.ScraperState(sql.FieldNotIn(FieldStateType, vs...))
}

// CurrentItemIDEQ applies the EQ predicate on the "current_item_id" field.
func CurrentItemIDEQ(v int64) predicate.ScraperState {
	return predicate.ScraperState(sql.FieldEQ(FieldCurrentItemID, v))
}

// CurrentItemIDNEQ applies the NEQ predicate on the "current_item_id" field.
func CurrentItemIDNEQ(v int64) predicate.ScraperState {
	return predicate.ScraperState(sql.FieldNEQ(FieldCurrentItemID, v))
}

// CurrentItemIDIn applies the In predicate on the "current_item_id" field.
func CurrentItemIDIn(vs ...int64) predicate.ScraperState {
	return predicate.ScraperState(sql.FieldIn(FieldCurrentItemID, vs...))
}

// CurrentItemIDNotIn applies the NotIn predicate on the "current_item_id" field.
func CurrentItemIDNotIn(vs ...int64) predicate.ScraperState {
	return predicate.ScraperState(sql.FieldNotIn(FieldCurrentItemID, vs...))
}

// CurrentItemIDGT applies the GT predicate on the "current_item_id" field.
func CurrentItemIDGT(v int64) predicate.ScraperState {
	return predicate.ScraperState(sql.FieldGT(FieldCurrentItemID, v))
}

// CurrentItemIDGTE applies the GTE predicate on the "current_item_id" field.
func CurrentItemIDGTE(v int64) predicate.ScraperState {
	return predicate.ScraperState(sql.FieldGTE(FieldCurrentItemID, v))
}

// CurrentItemIDLT applies the LT predicate on the "current_item_id" field.
func CurrentItemIDLT(v int64) predicate.ScraperState {
	return predicate.ScraperState(sql.FieldLT(FieldCurrentItemID, v))
}

// CurrentItemIDLTE applies the LTE predicate on the "current_item_id" field.
func CurrentItemIDLTE(v int64) predicate.ScraperState {
	return predicate.ScraperState(sql.FieldLTE(FieldCurrentItemID, v))
}

// TargetTimestampEQ applies the EQ predicate on the "target_timestamp" field.
func TargetTimestampEQ(v time.Time) predicate.ScraperState {
	return predicate.ScraperState(sql.FieldEQ(FieldTargetTimestamp, v))
}

// TargetTimestampNEQ applies the NEQ predicate on the "target_timestamp" field.
func TargetTimestampNEQ(v time.Time) predicate.ScraperState {
	return predicate.ScraperState(sql.FieldNEQ(FieldTargetTimestamp, v))
}

// TargetTimestampIn applies the In predicate on the "target_timestamp" field.
func TargetTimestampIn(vs ...time.Time) predicate.ScraperState {
	return predicate.ScraperState(sql.FieldIn(FieldTargetTimestamp, vs...))
}

// TargetTimestampNotIn applies the NotIn predicate on the "target_timestamp" field.
func TargetTimestampNotIn(vs ...time.Time) predicate.ScraperState {
	return predicate.ScraperState(sql.FieldNotIn(FieldTargetTimestamp, vs...))
}

// TargetTimestampGT applies the GT predicate on the "target_timestamp" field.
func TargetTimestampGT(v time.Time) predicate.ScraperState {
	return predicate.ScraperState(sql.FieldGT(FieldTargetTimestamp, v))
}

// TargetTimestampGTE applies the GTE predicate on the "target_timestamp" field.
func TargetTimestampGTE(v time.Time) predicate.ScraperState {
	return predicate.ScraperState(sql.FieldGTE(FieldTargetTimestamp, v))
}

// TargetTimestampLT applies the LT predicate on the "target_timestamp" field.
func TargetTimestampLT(v time.Time) predicate.ScraperState {
	return predicate.ScraperState(sql.FieldLT(FieldTargetTimestamp, v))
}

// TargetTimestampLTE applies the LTE predicate on the "target_timestamp" field.
func TargetTimestampLTE(v time.Time) predicate.ScraperState {
	return predicate.ScraperState(sql.FieldLTE(FieldTargetTimestamp, v))
}

// TargetTimestampIsNil applies the IsNil predicate on the "target_timestamp" field.
func TargetTimestampIsNil() predicate.ScraperState {
	return predicate.ScraperState(sql.FieldIsNull(FieldTargetTimestamp))
}

// TargetTimestampNotNil applies the NotNil predicate on the "target_timestamp" field.
func TargetTimestampNotNil() predicate.ScraperState {
	return predicate.ScraperState(sql.FieldNotNull(FieldTargetTimestamp))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ScraperState {
	return predicate.ScraperState(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ScraperState {
	return predicate.ScraperState(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ScraperState {
	return predicate.ScraperState(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ScraperState {
	return predicate.ScraperState(sql.FieldNotIn(FieldStatus, vs...))
}

// ItemsProcessedEQ applies the EQ predicate on the "items_processed" field.
func ItemsProcessedEQ(v int64) predicate.ScraperState {
	return predicate.ScraperState(sql.FieldEQ(FieldItemsProcessed, v))
}

// ItemsProcessedNEQ applies the NEQ predicate on the "items_processed" field.
func ItemsProcessedNEQ(v int64) predicate.ScraperState {
	return predicate.ScraperState(sql.FieldNEQ(FieldItemsProcessed, v))
}

// ItemsProcessedIn applies the In predicate on the "items_processed" field.
func ItemsProcessedIn(vs ...int64) predicate.ScraperState {
	return predicate.ScraperState(sql.FieldIn(FieldItemsProcessed, vs...))
}

// ItemsProcessedNotIn applies the NotIn predicate on the "items_processed" field.
func ItemsProcessedNotIn(vs ...int64) predicate.ScraperState {
	return predicate.ScraperState(sql.FieldNotIn(FieldItemsProcessed, vs...))
}

// ItemsProcessedGT applies the GT predicate on the "items_processed" field.
func ItemsProcessedGT(v int64) predicate.ScraperState {
	return predicate.ScraperState(sql.FieldGT(FieldItemsProcessed, v))
}

// ItemsProcessedGTE applies the GTE predicate on the "items_processed" field.
func ItemsProcessedGTE(v int64) predicate.ScraperState {
	return predicate.ScraperState(sql.FieldGTE(FieldItemsProcessed, v))
}

// ItemsProcessedLT applies the LT predicate on the "items_processed" field.
func ItemsProcessedLT(v int64) predicate.ScraperState {
	return predicate.ScraperState(sql.FieldLT(FieldItemsProcessed, v))
}

// ItemsProcessedLTE applies the LTE predicate on the "items_processed" field.
func ItemsProcessedLTE(v int64) predicate.ScraperState {
	return predicate.ScraperState(sql.FieldLTE(FieldItemsProcessed, v))
}

// StoriesFoundEQ applies the EQ predicate on the "stories_found" field.
func StoriesFoundEQ(v int64) predicate.ScraperState {
	return predicate.ScraperState(sql.FieldEQ(FieldStoriesFound, v))
}

// StoriesFoundNEQ applies the NEQ predicate on the "stories_found" field.
func StoriesFoundNEQ(v int64) predicate.ScraperState {
	return predicate.ScraperState(sql.FieldNEQ(FieldStoriesFound, v))
}

// StoriesFoundIn applies the In predicate on the "stories_found" field.
func StoriesFoundIn(vs ...int64) predicate.ScraperState {
	return predicate.ScraperState(sql.FieldIn(FieldStoriesFound, vs...))
}

// StoriesFoundNotIn applies the NotIn predicate on the "stories_found" field.
func StoriesFoundNotIn(vs ...int64) predicate.ScraperState {
	return predicate.ScraperState(sql.FieldNotIn(FieldStoriesFound, vs...))
}

// StoriesFoundGT applies the GT predicate on the "stories_found" field.
func StoriesFoundGT(v int64) predicate.ScraperState {
	return predicate.ScraperState(sql.FieldGT(FieldStoriesFound, v))
}

// StoriesFoundGTE applies the GTE predicate on the "stories_found" field.
func StoriesFoundGTE(v int64) predicate.ScraperState {
	return predicate.ScraperState(sql.FieldGTE(FieldStoriesFound, v))
}

// StoriesFoundLT applies the LT predicate on the "stories_found" field.
func StoriesFoundLT(v int64) predicate.ScraperState {
	return predicate.ScraperState(sql.FieldLT(FieldStoriesFound, v))
}

// StoriesFoundLTE applies the LTE predicate on the "stories_found" field.
func StoriesFoundLTE(v int64) predicate.ScraperState {
	return predicate.ScraperState(sql.FieldLTE(FieldStoriesFound, v))
}

// LastRunAtEQ applies the EQ predicate on the "last_run_at" field.
func LastRunAtEQ(v time.Time) predicate.ScraperState {
	return predicate.ScraperState(sql.FieldEQ(FieldLastRunAt, v))
}

// LastRunAtNEQ applies the NEQ predicate on the "last_run_at" field.
func LastRunAtNEQ(v time.Time) predicate.ScraperState {
	return predicate.ScraperState(sql.FieldNEQ(FieldLastRunAt, v))
}

// LastRunAtIn applies the In predicate on the "last_run_at" field.
func LastRunAtIn(vs ...time.Time) predicate.ScraperState {
	return predicate.ScraperState(sql.FieldIn(FieldLastRunAt, vs...))
}

// LastRunAtNotIn applies the NotIn predicate on the "last_run_at" field.
func LastRunAtNotIn(vs ...time.Time) predicate.ScraperState {
	return predicate.ScraperState(sql.FieldNotIn(FieldLastRunAt, vs...))
}

// LastRunAtGT applies the GT predicate on the "last_run_at" field.
func LastRunAtGT(v time.Time) predicate.ScraperState {
	return predicate.ScraperState(sql.FieldGT(FieldLastRunAt, v))
}

// LastRunAtGTE applies the GTE predicate on the "last_run_at" field.
func LastRunAtGTE(v time.Time) predicate.ScraperState {
	return predicate.ScraperState(sql.FieldGTE(FieldLastRunAt, v))
}

// LastRunAtLT applies the LT predicate on the "last_run_at" field.
func LastRunAtLT(v time.Time) predicate.ScraperState {
	return predicate.ScraperState(sql.FieldLT(FieldLastRunAt, v))
}

// LastRunAtLTE applies the LTE predicate on the "last_run_at" field.
func LastRunAtLTE(v time.Time) predicate.ScraperState {
	return predicate.ScraperState(sql.FieldLTE(FieldLastRunAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ScraperState {
	return predicate.ScraperState(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ScraperState {
	return predicate.ScraperState(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ScraperState {
	return predicate.ScraperState(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ScraperState {
	return predicate.ScraperState(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ScraperState {
	return predicate.ScraperState(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ScraperState {
	return predicate.ScraperState(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ScraperState {
	return predicate.ScraperState(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ScraperState {
	return predicate.ScraperState(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ScraperState {
	return predicate.ScraperState(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ScraperState {
	return predicate.ScraperState(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ScraperState {
	return predicate.ScraperState(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ScraperState {
	return predicate.ScraperState(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ScraperState {
	return predicate.ScraperState(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ScraperState {
	return predicate.ScraperState(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ScraperState {
	return predicate.ScraperState(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ScraperState {
	return predicate.ScraperState(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ScraperState) predicate.ScraperState {
	return predicate.ScraperState(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ScraperState) predicate.ScraperState {
	return predicate.ScraperState(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ScraperState) predicate.ScraperState {
	return predicate.ScraperState(sql.NotPredicates(p))
}
