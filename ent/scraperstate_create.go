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
	"github.com/hnscribe/hnscribe/ent/scraperstate"
)

// ScraperStateCreate is the builder for creating a ScraperState entity.
type ScraperStateCreate struct {
	config
	mutation *ScraperStateMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetStateType sets the "state_type" field.
func (_c *ScraperStateCreate) SetStateType(v scraperstate.StateType) *ScraperStateCreate {
	_c.mutation.SetStateType(v)
	return _c
}

// SetCurrentItemID sets the "current_item_id" field.
func (_c *ScraperStateCreate) SetCurrentItemID(v int64) *ScraperStateCreate {
	_c.mutation.SetCurrentItemID(v)
	return _c
}

// SetNillableCurrentItemID sets the "current_item_id" field if the given value is not nil.
func (_c *ScraperStateCreate) SetNillableCurrentItemID(v *int64) *ScraperStateCreate {
	if v != nil {
		_c.SetCurrentItemID(*v)
	}
	return _c
}

// SetTargetTimestamp sets the "target_timestamp" field.
func (_c *ScraperStateCreate) SetTargetTimestamp(v time.Time) *ScraperStateCreate {
	_c.mutation.SetTargetTimestamp(v)
	return _c
}

// SetNillableTargetTimestamp sets the "target_timestamp" field if the given value is not nil.
func (_c *ScraperStateCreate) SetNillableTargetTimestamp(v *time.Time) *ScraperStateCreate {
	if v != nil {
		_c.SetTargetTimestamp(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ScraperStateCreate) SetStatus(v scraperstate.Status) *ScraperStateCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ScraperStateCreate) SetNillableStatus(v *scraperstate.Status) *ScraperStateCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetItemsProcessed sets the "items_processed" field.
func (_c *ScraperStateCreate) SetItemsProcessed(v int64) *ScraperStateCreate {
	_c.mutation.SetItemsProcessed(v)
	return _c
}

// SetNillableItemsProcessed sets the "items_processed" field if the given value is not nil.
func (_c *ScraperStateCreate) SetNillableItemsProcessed(v *int64) *ScraperStateCreate {
	if v != nil {
		_c.SetItemsProcessed(*v)
	}
	return _c
}

// SetStoriesFound sets the "stories_found" field.
func (_c *ScraperStateCreate) SetStoriesFound(v int64) *ScraperStateCreate {
	_c.mutation.SetStoriesFound(v)
	return _c
}

// SetNillableStoriesFound sets the "stories_found" field if the given value is not nil.
func (_c *ScraperStateCreate) SetNillableStoriesFound(v *int64) *ScraperStateCreate {
	if v != nil {
		_c.SetStoriesFound(*v)
	}
	return _c
}

// SetLastRunAt sets the "last_run_at" field.
func (_c *ScraperStateCreate) SetLastRunAt(v time.Time) *ScraperStateCreate {
	_c.mutation.SetLastRunAt(v)
	return _c
}

// SetNillableLastRunAt sets the "last_run_at" field if the given value is not nil.
func (_c *ScraperStateCreate) SetNillableLastRunAt(v *time.Time) *ScraperStateCreate {
	if v != nil {
		_c.SetLastRunAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ScraperStateCreate) SetCreatedAt(v time.Time) *ScraperStateCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ScraperStateCreate) SetNillableCreatedAt(v *time.Time) *ScraperStateCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ScraperStateCreate) SetUpdatedAt(v time.Time) *ScraperStateCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ScraperStateCreate) SetNillableUpdatedAt(v *time.Time) *ScraperStateCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the ScraperStateMutation object of the builder.
func (_c *ScraperStateCreate) Mutation() *ScraperStateMutation {
	return _c.mutation
}

// Save creates the ScraperState in the database.
func (_c *ScraperStateCreate) Save(ctx context.Context) (*ScraperState, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ScraperStateCreate) SaveX(ctx context.Context) *ScraperState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScraperStateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScraperStateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ScraperStateCreate) defaults() {
	if _, ok := _c.mutation.CurrentItemID(); !ok {
		v := scraperstate.DefaultCurrentItemID
		_c.mutation.SetCurrentItemID(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := scraperstate.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ItemsProcessed(); !ok {
		v := scraperstate.DefaultItemsProcessed
		_c.mutation.SetItemsProcessed(v)
	}
	if _, ok := _c.mutation.StoriesFound(); !ok {
		v := scraperstate.DefaultStoriesFound
		_c.mutation.SetStoriesFound(v)
	}
	if _, ok := _c.mutation.LastRunAt(); !ok {
		v := scraperstate.DefaultLastRunAt()
		_c.mutation.SetLastRunAt(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := scraperstate.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := scraperstate.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ScraperStateCreate) check() error {
	if _, ok := _c.mutation.StateType(); !ok {
		return &ValidationError{Name: "state_type", err: errors.New(`ent: missing required field "ScraperState.state_type"`)}
	}
	if v, ok := _c.mutation.StateType(); ok {
		if err := scraperstate.StateTypeValidator(v); err != nil {
			return &ValidationError{Name: "state_type", err: fmt.Errorf(`ent: validator failed for field "ScraperState.state_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CurrentItemID(); !ok {
		return &ValidationError{Name: "current_item_id", err: errors.New(`ent: missing required field "ScraperState.current_item_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ScraperState.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := scraperstate.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ScraperState.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ItemsProcessed(); !ok {
		return &ValidationError{Name: "items_processed", err: errors.New(`ent: missing required field "ScraperState.items_processed"`)}
	}
	if _, ok := _c.mutation.StoriesFound(); !ok {
		return &ValidationError{Name: "stories_found", err: errors.New(`ent: missing required field "ScraperState.stories_found"`)}
	}
	if _, ok := _c.mutation.LastRunAt(); !ok {
		return &ValidationError{Name: "last_run_at", err: errors.New(`ent: missing required field "ScraperState.last_run_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ScraperState.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ScraperState.updated_at"`)}
	}
	return nil
}

func (_c *ScraperStateCreate) sqlSave(ctx context.Context) (*ScraperState, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ScraperStateCreate) createSpec() (*ScraperState, *sqlgraph.CreateSpec) {
	var (
		_node = &ScraperState{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(scraperstate.Table, sqlgraph.NewFieldSpec(scraperstate.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.StateType(); ok {
		_spec.SetField(scraperstate.FieldStateType, field.TypeEnum, value)
		_node.StateType = value
	}
	if value, ok := _c.mutation.CurrentItemID(); ok {
		_spec.SetField(scraperstate.FieldCurrentItemID, field.TypeInt64, value)
		_node.CurrentItemID = value
	}
	if value, ok := _c.mutation.TargetTimestamp(); ok {
		_spec.SetField(scraperstate.FieldTargetTimestamp, field.TypeTime, value)
		_node.TargetTimestamp = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(scraperstate.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ItemsProcessed(); ok {
		_spec.SetField(scraperstate.FieldItemsProcessed, field.TypeInt64, value)
		_node.ItemsProcessed = value
	}
	if value, ok := _c.mutation.StoriesFound(); ok {
		_spec.SetField(scraperstate.FieldStoriesFound, field.TypeInt64, value)
		_node.StoriesFound = value
	}
	if value, ok := _c.mutation.LastRunAt(); ok {
		_spec.SetField(scraperstate.FieldLastRunAt, field.TypeTime, value)
		_node.LastRunAt = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(scraperstate.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(scraperstate.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ScraperState.Create().
//		SetStateType(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ScraperStateUpsert) {
//			SetStateType(v+v).
//		}).
//		Exec(ctx)
func (_c *ScraperStateCreate) OnConflict(opts ...sql.ConflictOption) *ScraperStateUpsertOne {
	_c.conflict = opts
	return &ScraperStateUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ScraperState.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ScraperStateCreate) OnConflictColumns(columns ...string) *ScraperStateUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ScraperStateUpsertOne{
		create: _c,
	}
}

type (
	// ScraperStateUpsertOne is the builder for "upsert"-ing
	//  one ScraperState node.
	ScraperStateUpsertOne struct {
		create *ScraperStateCreate
	}

	// ScraperStateUpsert is the "OnConflict" setter.
	ScraperStateUpsert struct {
		*sql.UpdateSet
	}
)

// SetCurrentItemID sets the "current_item_id" field.
func (u *ScraperStateUpsert) SetCurrentItemID(v int64) *ScraperStateUpsert {
	u.Set(scraperstate.FieldCurrentItemID, v)
	return u
}

// UpdateCurrentItemID sets the "current_item_id" field to the value that was provided on create.
func (u *ScraperStateUpsert) UpdateCurrentItemID() *ScraperStateUpsert {
	u.SetExcluded(scraperstate.FieldCurrentItemID)
	return u
}

// AddCurrentItemID adds v to the "current_item_id" field.
func (u *ScraperStateUpsert) AddCurrentItemID(v int64) *ScraperStateUpsert {
	u.Add(scraperstate.FieldCurrentItemID, v)
	return u
}

// SetTargetTimestamp sets the "target_timestamp" field.
func (u *ScraperStateUpsert) SetTargetTimestamp(v time.Time) *ScraperStateUpsert {
	u.Set(scraperstate.FieldTargetTimestamp, v)
	return u
}

// UpdateTargetTimestamp sets the "target_timestamp" field to the value that was provided on create.
func (u *ScraperStateUpsert) UpdateTargetTimestamp() *ScraperStateUpsert {
	u.SetExcluded(scraperstate.FieldTargetTimestamp)
	return u
}

// ClearTargetTimestamp clears the value of the "target_timestamp" field.
func (u *ScraperStateUpsert) ClearTargetTimestamp() *ScraperStateUpsert {
	u.SetNull(scraperstate.FieldTargetTimestamp)
	return u
}

// SetStatus sets the "status" field.
func (u *ScraperStateUpsert) SetStatus(v scraperstate.Status) *ScraperStateUpsert {
	u.Set(scraperstate.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ScraperStateUpsert) UpdateStatus() *ScraperStateUpsert {
	u.SetExcluded(scraperstate.FieldStatus)
	return u
}

// SetItemsProcessed sets the "items_processed" field.
func (u *ScraperStateUpsert) SetItemsProcessed(v int64) *ScraperStateUpsert {
	u.Set(scraperstate.FieldItemsProcessed, v)
	return u
}

// UpdateItemsProcessed sets the "items_processed" field to the value that was provided on create.
func (u *ScraperStateUpsert) UpdateItemsProcessed() *ScraperStateUpsert {
	u.SetExcluded(scraperstate.FieldItemsProcessed)
	return u
}

// AddItemsProcessed adds v to the "items_processed" field.
func (u *ScraperStateUpsert) AddItemsProcessed(v int64) *ScraperStateUpsert {
	u.Add(scraperstate.FieldItemsProcessed, v)
	return u
}

// SetStoriesFound sets the "stories_found" field.
func (u *ScraperStateUpsert) SetStoriesFound(v int64) *ScraperStateUpsert {
	u.Set(scraperstate.FieldStoriesFound, v)
	return u
}

// UpdateStoriesFound sets the "stories_found" field to the value that was provided on create.
func (u *ScraperStateUpsert) UpdateStoriesFound() *ScraperStateUpsert {
	u.SetExcluded(scraperstate.FieldStoriesFound)
	return u
}

// AddStoriesFound adds v to the "stories_found" field.
func (u *ScraperStateUpsert) AddStoriesFound(v int64) *ScraperStateUpsert {
	u.Add(scraperstate.FieldStoriesFound, v)
	return u
}

// SetLastRunAt sets the "last_run_at" field.
func (u *ScraperStateUpsert) SetLastRunAt(v time.Time) *ScraperStateUpsert {
	u.Set(scraperstate.FieldLastRunAt, v)
	return u
}

// UpdateLastRunAt sets the "last_run_at" field to the value that was provided on create.
func (u *ScraperStateUpsert) UpdateLastRunAt() *ScraperStateUpsert {
	u.SetExcluded(scraperstate.FieldLastRunAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ScraperStateUpsert) SetUpdatedAt(v time.Time) *ScraperStateUpsert {
	u.Set(scraperstate.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ScraperStateUpsert) UpdateUpdatedAt() *ScraperStateUpsert {
	u.SetExcluded(scraperstate.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.ScraperState.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ScraperStateUpsertOne) UpdateNewValues() *ScraperStateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.StateType(); exists {
			s.SetIgnore(scraperstate.FieldStateType)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(scraperstate.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ScraperState.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ScraperStateUpsertOne) Ignore() *ScraperStateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ScraperStateUpsertOne) DoNothing() *ScraperStateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ScraperStateCreate.OnConflict
// documentation for more info.
func (u *ScraperStateUpsertOne) Update(set func(*ScraperStateUpsert)) *ScraperStateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ScraperStateUpsert{UpdateSet: update})
	}))
	return u
}

// SetCurrentItemID sets the "current_item_id" field.
func (u *ScraperStateUpsertOne) SetCurrentItemID(v int64) *ScraperStateUpsertOne {
	return u.Update(func(s *ScraperStateUpsert) {
		s.SetCurrentItemID(v)
	})
}

// AddCurrentItemID adds v to the "current_item_id" field.
func (u *ScraperStateUpsertOne) AddCurrentItemID(v int64) *ScraperStateUpsertOne {
	return u.Update(func(s *ScraperStateUpsert) {
		s.AddCurrentItemID(v)
	})
}

// UpdateCurrentItemID sets the "current_item_id" field to the value that was provided on create.
func (u *ScraperStateUpsertOne) UpdateCurrentItemID() *ScraperStateUpsertOne {
	return u.Update(func(s *ScraperStateUpsert) {
		s.UpdateCurrentItemID()
	})
}

// SetTargetTimestamp sets the "target_timestamp" field.
func (u *ScraperStateUpsertOne) SetTargetTimestamp(v time.Time) *ScraperStateUpsertOne {
	return u.Update(func(s *ScraperStateUpsert) {
		s.SetTargetTimestamp(v)
	})
}

// UpdateTargetTimestamp sets the "target_timestamp" field to the value that was provided on create.
func (u *ScraperStateUpsertOne) UpdateTargetTimestamp() *ScraperStateUpsertOne {
	return u.Update(func(s *ScraperStateUpsert) {
		s.UpdateTargetTimestamp()
	})
}

// ClearTargetTimestamp clears the value of the "target_timestamp" field.
func (u *ScraperStateUpsertOne) ClearTargetTimestamp() *ScraperStateUpsertOne {
	return u.Update(func(s *ScraperStateUpsert) {
		s.ClearTargetTimestamp()
	})
}

// SetStatus sets the "status" field.
func (u *ScraperStateUpsertOne) SetStatus(v scraperstate.Status) *ScraperStateUpsertOne {
	return u.Update(func(s *ScraperStateUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ScraperStateUpsertOne) UpdateStatus() *ScraperStateUpsertOne {
	return u.Update(func(s *ScraperStateUpsert) {
		s.UpdateStatus()
	})
}

// SetItemsProcessed sets the "items_processed" field.
func (u *ScraperStateUpsertOne) SetItemsProcessed(v int64) *ScraperStateUpsertOne {
	return u.Update(func(s *ScraperStateUpsert) {
		s.SetItemsProcessed(v)
	})
}

// AddItemsProcessed adds v to the "items_processed" field.
func (u *ScraperStateUpsertOne) AddItemsProcessed(v int64) *ScraperStateUpsertOne {
	return u.Update(func(s *ScraperStateUpsert) {
		s.AddItemsProcessed(v)
	})
}

// UpdateItemsProcessed sets the "items_processed" field to the value that was provided on create.
func (u *ScraperStateUpsertOne) UpdateItemsProcessed() *ScraperStateUpsertOne {
	return u.Update(func(s *ScraperStateUpsert) {
		s.UpdateItemsProcessed()
	})
}

// SetStoriesFound sets the "stories_found" field.
func (u *ScraperStateUpsertOne) SetStoriesFound(v int64) *ScraperStateUpsertOne {
	return u.Update(func(s *ScraperStateUpsert) {
		s.SetStoriesFound(v)
	})
}

// AddStoriesFound adds v to the "stories_found" field.
func (u *ScraperStateUpsertOne) AddStoriesFound(v int64) *ScraperStateUpsertOne {
	return u.Update(func(s *ScraperStateUpsert) {
		s.AddStoriesFound(v)
	})
}

// UpdateStoriesFound sets the "stories_found" field to the value that was provided on create.
func (u *ScraperStateUpsertOne) UpdateStoriesFound() *ScraperStateUpsertOne {
	return u.Update(func(s *ScraperStateUpsert) {
		s.UpdateStoriesFound()
	})
}

// SetLastRunAt sets the "last_run_at" field.
func (u *ScraperStateUpsertOne) SetLastRunAt(v time.Time) *ScraperStateUpsertOne {
	return u.Update(func(s *ScraperStateUpsert) {
		s.SetLastRunAt(v)
	})
}

// UpdateLastRunAt sets the "last_run_at" field to the value that was provided on create.
func (u *ScraperStateUpsertOne) UpdateLastRunAt() *ScraperStateUpsertOne {
	return u.Update(func(s *ScraperStateUpsert) {
		s.UpdateLastRunAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ScraperStateUpsertOne) SetUpdatedAt(v time.Time) *ScraperStateUpsertOne {
	return u.Update(func(s *ScraperStateUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ScraperStateUpsertOne) UpdateUpdatedAt() *ScraperStateUpsertOne {
	return u.Update(func(s *ScraperStateUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ScraperStateUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ScraperStateCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ScraperStateUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ScraperStateUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ScraperStateUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ScraperStateCreateBulk is the builder for creating many ScraperState entities in bulk.
type ScraperStateCreateBulk struct {
	config
	err      error
	builders []*ScraperStateCreate
	conflict []sql.ConflictOption
}

// Save creates the ScraperState entities in the database.
func (_c *ScraperStateCreateBulk) Save(ctx context.Context) ([]*ScraperState, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ScraperState, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScraperStateMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ScraperStateCreateBulk) SaveX(ctx context.Context) []*ScraperState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScraperStateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScraperStateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ScraperState.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ScraperStateUpsert) {
//			SetStateType(v+v).
//		}).
//		Exec(ctx)
func (_c *ScraperStateCreateBulk) OnConflict(opts ...sql.ConflictOption) *ScraperStateUpsertBulk {
	_c.conflict = opts
	return &ScraperStateUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ScraperState.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ScraperStateCreateBulk) OnConflictColumns(columns ...string) *ScraperStateUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ScraperStateUpsertBulk{
		create: _c,
	}
}

// ScraperStateUpsertBulk is the builder for "upsert"-ing
// a bulk of ScraperState nodes.
type ScraperStateUpsertBulk struct {
	create *ScraperStateCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ScraperState.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ScraperStateUpsertBulk) UpdateNewValues() *ScraperStateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.StateType(); exists {
				s.SetIgnore(scraperstate.FieldStateType)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(scraperstate.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ScraperState.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ScraperStateUpsertBulk) Ignore() *ScraperStateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ScraperStateUpsertBulk) DoNothing() *ScraperStateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ScraperStateCreateBulk.OnConflict
// documentation for more info.
func (u *ScraperStateUpsertBulk) Update(set func(*ScraperStateUpsert)) *ScraperStateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ScraperStateUpsert{UpdateSet: update})
	}))
	return u
}

// SetCurrentItemID sets the "current_item_id" field.
func (u *ScraperStateUpsertBulk) SetCurrentItemID(v int64) *ScraperStateUpsertBulk {
	return u.Update(func(s *ScraperStateUpsert) {
		s.SetCurrentItemID(v)
	})
}

// AddCurrentItemID adds v to the "current_item_id" field.
func (u *ScraperStateUpsertBulk) AddCurrentItemID(v int64) *ScraperStateUpsertBulk {
	return u.Update(func(s *ScraperStateUpsert) {
		s.AddCurrentItemID(v)
	})
}

// UpdateCurrentItemID sets the "current_item_id" field to the value that was provided on create.
func (u *ScraperStateUpsertBulk) UpdateCurrentItemID() *ScraperStateUpsertBulk {
	return u.Update(func(s *ScraperStateUpsert) {
		s.UpdateCurrentItemID()
	})
}

// SetTargetTimestamp sets the "target_timestamp" field.
func (u *ScraperStateUpsertBulk) SetTargetTimestamp(v time.Time) *ScraperStateUpsertBulk {
	return u.Update(func(s *ScraperStateUpsert) {
		s.SetTargetTimestamp(v)
	})
}

// UpdateTargetTimestamp sets the "target_timestamp" field to the value that was provided on create.
func (u *ScraperStateUpsertBulk) UpdateTargetTimestamp() *ScraperStateUpsertBulk {
	return u.Update(func(s *ScraperStateUpsert) {
		s.UpdateTargetTimestamp()
	})
}

// ClearTargetTimestamp clears the value of the "target_timestamp" field.
func (u *ScraperStateUpsertBulk) ClearTargetTimestamp() *ScraperStateUpsertBulk {
	return u.Update(func(s *ScraperStateUpsert) {
		s.ClearTargetTimestamp()
	})
}

// SetStatus sets the "status" field.
func (u *ScraperStateUpsertBulk) SetStatus(v scraperstate.Status) *ScraperStateUpsertBulk {
	return u.Update(func(s *ScraperStateUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ScraperStateUpsertBulk) UpdateStatus() *ScraperStateUpsertBulk {
	return u.Update(func(s *ScraperStateUpsert) {
		s.UpdateStatus()
	})
}

// SetItemsProcessed sets the "items_processed" field.
func (u *ScraperStateUpsertBulk) SetItemsProcessed(v int64) *ScraperStateUpsertBulk {
	return u.Update(func(s *ScraperStateUpsert) {
		s.SetItemsProcessed(v)
	})
}

// AddItemsProcessed adds v to the "items_processed" field.
func (u *ScraperStateUpsertBulk) AddItemsProcessed(v int64) *ScraperStateUpsertBulk {
	return u.Update(func(s *ScraperStateUpsert) {
		s.AddItemsProcessed(v)
	})
}

// UpdateItemsProcessed sets the "items_processed" field to the value that was provided on create.
func (u *ScraperStateUpsertBulk) UpdateItemsProcessed() *ScraperStateUpsertBulk {
	return u.Update(func(s *ScraperStateUpsert) {
		s.UpdateItemsProcessed()
	})
}

// SetStoriesFound sets the "stories_found" field.
func (u *ScraperStateUpsertBulk) SetStoriesFound(v int64) *ScraperStateUpsertBulk {
	return u.Update(func(s *ScraperStateUpsert) {
		s.SetStoriesFound(v)
	})
}

// AddStoriesFound adds v to the "stories_found" field.
func (u *ScraperStateUpsertBulk) AddStoriesFound(v int64) *ScraperStateUpsertBulk {
	return u.Update(func(s *ScraperStateUpsert) {
		s.AddStoriesFound(v)
	})
}

// UpdateStoriesFound sets the "stories_found" field to the value that was provided on create.
func (u *ScraperStateUpsertBulk) UpdateStoriesFound() *ScraperStateUpsertBulk {
	return u.Update(func(s *ScraperStateUpsert) {
		s.UpdateStoriesFound()
	})
}

// SetLastRunAt sets the "last_run_at" field.
func (u *ScraperStateUpsertBulk) SetLastRunAt(v time.Time) *ScraperStateUpsertBulk {
	return u.Update(func(s *ScraperStateUpsert) {
		s.SetLastRunAt(v)
	})
}

// UpdateLastRunAt sets the "last_run_at" field to the value that was provided on create.
func (u *ScraperStateUpsertBulk) UpdateLastRunAt() *ScraperStateUpsertBulk {
	return u.Update(func(s *ScraperStateUpsert) {
		s.UpdateLastRunAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ScraperStateUpsertBulk) SetUpdatedAt(v time.Time) *ScraperStateUpsertBulk {
	return u.Update(func(s *ScraperStateUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ScraperStateUpsertBulk) UpdateUpdatedAt() *ScraperStateUpsertBulk {
	return u.Update(func(s *ScraperStateUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ScraperStateUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ScraperStateCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ScraperStateCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ScraperStateUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
