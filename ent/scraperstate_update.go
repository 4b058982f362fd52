// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hnscribe/hnscribe/ent/predicate"
	"github.com/hnscribe/hnscribe/ent/scraperstate"
)

// ScraperStateUpdate is the builder for updating ScraperState entities.
type ScraperStateUpdate struct {
	config
	hooks    []Hook
	mutation *ScraperStateMutation
}

// Where appends a list predicates to the ScraperStateUpdate builder.
func (_u *ScraperStateUpdate) Where(ps ...predicate.ScraperState) *ScraperStateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCurrentItemID sets the "current_item_id" field.
func (_u *ScraperStateUpdate) SetCurrentItemID(v int64) *ScraperStateUpdate {
	_u.mutation.ResetCurrentItemID()
	_u.mutation.SetCurrentItemID(v)
	return _u
}

// SetNillableCurrentItemID sets the "current_item_id" field if the given value is not nil.
func (_u *ScraperStateUpdate) SetNillableCurrentItemID(v *int64) *ScraperStateUpdate {
	if v != nil {
		_u.SetCurrentItemID(*v)
	}
	return _u
}

// AddCurrentItemID adds value to the "current_item_id" field.
func (_u *ScraperStateUpdate) AddCurrentItemID(v int64) *ScraperStateUpdate {
	_u.mutation.AddCurrentItemID(v)
	return _u
}

// SetTargetTimestamp sets the "target_timestamp" field.
func (_u *ScraperStateUpdate) SetTargetTimestamp(v time.Time) *ScraperStateUpdate {
	_u.mutation.SetTargetTimestamp(v)
	return _u
}

// SetNillableTargetTimestamp sets the "target_timestamp" field if the given value is not nil.
func (_u *ScraperStateUpdate) SetNillableTargetTimestamp(v *time.Time) *ScraperStateUpdate {
	if v != nil {
		_u.SetTargetTimestamp(*v)
	}
	return _u
}

// ClearTargetTimestamp clears the value of the "target_timestamp" field.
func (_u *ScraperStateUpdate) ClearTargetTimestamp() *ScraperStateUpdate {
	_u.mutation.ClearTargetTimestamp()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ScraperStateUpdate) SetStatus(v scraperstate.Status) *ScraperStateUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ScraperStateUpdate) SetNillableStatus(v *scraperstate.Status) *ScraperStateUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetItemsProcessed sets the "items_processed" field.
func (_u *ScraperStateUpdate) SetItemsProcessed(v int64) *ScraperStateUpdate {
	_u.mutation.ResetItemsProcessed()
	_u.mutation.SetItemsProcessed(v)
	return _u
}

// SetNillableItemsProcessed sets the "items_processed" field if the given value is not nil.
func (_u *ScraperStateUpdate) SetNillableItemsProcessed(v *int64) *ScraperStateUpdate {
	if v != nil {
		_u.SetItemsProcessed(*v)
	}
	return _u
}

// AddItemsProcessed adds value to the "items_processed" field.
func (_u *ScraperStateUpdate) AddItemsProcessed(v int64) *ScraperStateUpdate {
	_u.mutation.AddItemsProcessed(v)
	return _u
}

// SetStoriesFound sets the "stories_found" field.
func (_u *ScraperStateUpdate) SetStoriesFound(v int64) *ScraperStateUpdate {
	_u.mutation.ResetStoriesFound()
	_u.mutation.SetStoriesFound(v)
	return _u
}

// SetNillableStoriesFound sets the "stories_found" field if the given value is not nil.
func (_u *ScraperStateUpdate) SetNillableStoriesFound(v *int64) *ScraperStateUpdate {
	if v != nil {
		_u.SetStoriesFound(*v)
	}
	return _u
}

// AddStoriesFound adds value to the "stories_found" field.
func (_u *ScraperStateUpdate) AddStoriesFound(v int64) *ScraperStateUpdate {
	_u.mutation.AddStoriesFound(v)
	return _u
}

// SetLastRunAt sets the "last_run_at" field.
func (_u *ScraperStateUpdate) SetLastRunAt(v time.Time) *ScraperStateUpdate {
	_u.mutation.SetLastRunAt(v)
	return _u
}

// SetNillableLastRunAt sets the "last_run_at" field if the given value is not nil.
func (_u *ScraperStateUpdate) SetNillableLastRunAt(v *time.Time) *ScraperStateUpdate {
	if v != nil {
		_u.SetLastRunAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ScraperStateUpdate) SetUpdatedAt(v time.Time) *ScraperStateUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ScraperStateMutation object of the builder.
func (_u *ScraperStateUpdate) Mutation() *ScraperStateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScraperStateUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScraperStateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScraperStateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScraperStateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ScraperStateUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := scraperstate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScraperStateUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := scraperstate.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ScraperState.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ScraperStateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scraperstate.Table, scraperstate.Columns, sqlgraph.NewFieldSpec(scraperstate.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CurrentItemID(); ok {
		_spec.SetField(scraperstate.FieldCurrentItemID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCurrentItemID(); ok {
		_spec.AddField(scraperstate.FieldCurrentItemID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.TargetTimestamp(); ok {
		_spec.SetField(scraperstate.FieldTargetTimestamp, field.TypeTime, value)
	}
	if _u.mutation.TargetTimestampCleared() {
		_spec.ClearField(scraperstate.FieldTargetTimestamp, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(scraperstate.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ItemsProcessed(); ok {
		_spec.SetField(scraperstate.FieldItemsProcessed, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedItemsProcessed(); ok {
		_spec.AddField(scraperstate.FieldItemsProcessed, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.StoriesFound(); ok {
		_spec.SetField(scraperstate.FieldStoriesFound, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedStoriesFound(); ok {
		_spec.AddField(scraperstate.FieldStoriesFound, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.LastRunAt(); ok {
		_spec.SetField(scraperstate.FieldLastRunAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(scraperstate.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scraperstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScraperStateUpdateOne is the builder for updating a single ScraperState entity.
type ScraperStateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScraperStateMutation
}

// SetCurrentItemID sets the "current_item_id" field.
func (_u *ScraperStateUpdateOne) SetCurrentItemID(v int64) *ScraperStateUpdateOne {
	_u.mutation.ResetCurrentItemID()
	_u.mutation.SetCurrentItemID(v)
	return _u
}

// SetNillableCurrentItemID sets the "current_item_id" field if the given value is not nil.
func (_u *ScraperStateUpdateOne) SetNillableCurrentItemID(v *int64) *ScraperStateUpdateOne {
	if v != nil {
		_u.SetCurrentItemID(*v)
	}
	return _u
}

// AddCurrentItemID adds value to the "current_item_id" field.
func (_u *ScraperStateUpdateOne) AddCurrentItemID(v int64) *ScraperStateUpdateOne {
	_u.mutation.AddCurrentItemID(v)
	return _u
}

// SetTargetTimestamp sets the "target_timestamp" field.
func (_u *ScraperStateUpdateOne) SetTargetTimestamp(v time.Time) *ScraperStateUpdateOne {
	_u.mutation.SetTargetTimestamp(v)
	return _u
}

// SetNillableTargetTimestamp sets the "target_timestamp" field if the given value is not nil.
func (_u *ScraperStateUpdateOne) SetNillableTargetTimestamp(v *time.Time) *ScraperStateUpdateOne {
	if v != nil {
		_u.SetTargetTimestamp(*v)
	}
	return _u
}

// ClearTargetTimestamp clears the value of the "target_timestamp" field.
func (_u *ScraperStateUpdateOne) ClearTargetTimestamp() *ScraperStateUpdateOne {
	_u.mutation.ClearTargetTimestamp()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ScraperStateUpdateOne) SetStatus(v scraperstate.Status) *ScraperStateUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ScraperStateUpdateOne) SetNillableStatus(v *scraperstate.Status) *ScraperStateUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetItemsProcessed sets the "items_processed" field.
func (_u *ScraperStateUpdateOne) SetItemsProcessed(v int64) *ScraperStateUpdateOne {
	_u.mutation.ResetItemsProcessed()
	_u.mutation.SetItemsProcessed(v)
	return _u
}

// SetNillableItemsProcessed sets the "items_processed" field if the given value is not nil.
func (_u *ScraperStateUpdateOne) SetNillableItemsProcessed(v *int64) *ScraperStateUpdateOne {
	if v != nil {
		_u.SetItemsProcessed(*v)
	}
	return _u
}

// AddItemsProcessed adds value to the "items_processed" field.
func (_u *ScraperStateUpdateOne) AddItemsProcessed(v int64) *ScraperStateUpdateOne {
	_u.mutation.AddItemsProcessed(v)
	return _u
}

// SetStoriesFound sets the "stories_found" field.
func (_u *ScraperStateUpdateOne) SetStoriesFound(v int64) *ScraperStateUpdateOne {
	_u.mutation.ResetStoriesFound()
	_u.mutation.SetStoriesFound(v)
	return _u
}

// SetNillableStoriesFound sets the "stories_found" field if the given value is not nil.
func (_u *ScraperStateUpdateOne) SetNillableStoriesFound(v *int64) *ScraperStateUpdateOne {
	if v != nil {
		_u.SetStoriesFound(*v)
	}
	return _u
}

// AddStoriesFound adds value to the "stories_found" field.
func (_u *ScraperStateUpdateOne) AddStoriesFound(v int64) *ScraperStateUpdateOne {
	_u.mutation.AddStoriesFound(v)
	return _u
}

// SetLastRunAt sets the "last_run_at" field.
func (_u *ScraperStateUpdateOne) SetLastRunAt(v time.Time) *ScraperStateUpdateOne {
	_u.mutation.SetLastRunAt(v)
	return _u
}

// SetNillableLastRunAt sets the "last_run_at" field if the given value is not nil.
func (_u *ScraperStateUpdateOne) SetNillableLastRunAt(v *time.Time) *ScraperStateUpdateOne {
	if v != nil {
		_u.SetLastRunAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ScraperStateUpdateOne) SetUpdatedAt(v time.Time) *ScraperStateUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ScraperStateMutation object of the builder.
func (_u *ScraperStateUpdateOne) Mutation() *ScraperStateMutation {
	return _u.mutation
}

// Where appends a list predicates to the ScraperStateUpdate builder.
func (_u *ScraperStateUpdateOne) Where(ps ...predicate.ScraperState) *ScraperStateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScraperStateUpdateOne) Select(field string, fields ...string) *ScraperStateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ScraperState entity.
func (_u *ScraperStateUpdateOne) Save(ctx context.Context) (*ScraperState, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScraperStateUpdateOne) SaveX(ctx context.Context) *ScraperState {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScraperStateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScraperStateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ScraperStateUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := scraperstate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScraperStateUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := scraperstate.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ScraperState.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ScraperStateUpdateOne) sqlSave(ctx context.Context) (_node *ScraperState, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scraperstate.Table, scraperstate.Columns, sqlgraph.NewFieldSpec(scraperstate.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ScraperState.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, scraperstate.FieldID)
		for _, f := range fields {
			if !scraperstate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != scraperstate.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CurrentItemID(); ok {
		_spec.SetField(scraperstate.FieldCurrentItemID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCurrentItemID(); ok {
		_spec.AddField(scraperstate.FieldCurrentItemID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.TargetTimestamp(); ok {
		_spec.SetField(scraperstate.FieldTargetTimestamp, field.TypeTime, value)
	}
	if _u.mutation.TargetTimestampCleared() {
		_spec.ClearField(scraperstate.FieldTargetTimestamp, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(scraperstate.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ItemsProcessed(); ok {
		_spec.SetField(scraperstate.FieldItemsProcessed, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedItemsProcessed(); ok {
		_spec.AddField(scraperstate.FieldItemsProcessed, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.StoriesFound(); ok {
		_spec.SetField(scraperstate.FieldStoriesFound, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedStoriesFound(); ok {
		_spec.AddField(scraperstate.FieldStoriesFound, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.LastRunAt(); ok {
		_spec.SetField(scraperstate.FieldLastRunAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(scraperstate.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ScraperState{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scraperstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
