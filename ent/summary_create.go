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
	"github.com/hnscribe/hnscribe/ent/story"
	"github.com/hnscribe/hnscribe/ent/summary"
)

// SummaryCreate is the builder for creating a Summary entity.
type SummaryCreate struct {
	config
	mutation *SummaryMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetStoryID sets the "story_id" field.
func (_c *SummaryCreate) SetStoryID(v int) *SummaryCreate {
	_c.mutation.SetStoryID(v)
	return _c
}

// SetText sets the "text" field.
func (_c *SummaryCreate) SetText(v string) *SummaryCreate {
	_c.mutation.SetText(v)
	return _c
}

// SetModel sets the "model" field.
func (_c *SummaryCreate) SetModel(v string) *SummaryCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_c *SummaryCreate) SetNillableModel(v *string) *SummaryCreate {
	if v != nil {
		_c.SetModel(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SummaryCreate) SetCreatedAt(v time.Time) *SummaryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SummaryCreate) SetNillableCreatedAt(v *time.Time) *SummaryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStory sets the "story" edge to the Story entity.
func (_c *SummaryCreate) SetStory(v *Story) *SummaryCreate {
	return _c.SetStoryID(v.ID)
}

// Mutation returns the SummaryMutation object of the builder.
func (_c *SummaryCreate) Mutation() *SummaryMutation {
	return _c.mutation
}

// Save creates the Summary in the database.
func (_c *SummaryCreate) Save(ctx context.Context) (*Summary, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SummaryCreate) SaveX(ctx context.Context) *Summary {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SummaryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SummaryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SummaryCreate) defaults() {
	if _, ok := _c.mutation.Model(); !ok {
		v := summary.DefaultModel
		_c.mutation.SetModel(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := summary.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SummaryCreate) check() error {
	if _, ok := _c.mutation.StoryID(); !ok {
		return &ValidationError{Name: "story_id", err: errors.New(`ent: missing required field "Summary.story_id"`)}
	}
	if _, ok := _c.mutation.Text(); !ok {
		return &ValidationError{Name: "text", err: errors.New(`ent: missing required field "Summary.text"`)}
	}
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "Summary.model"`)}
	}
	if v, ok := _c.mutation.Model(); ok {
		if err := summary.ModelValidator(v); err != nil {
			return &ValidationError{Name: "model", err: fmt.Errorf(`ent: validator failed for field "Summary.model": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Summary.created_at"`)}
	}
	if len(_c.mutation.StoryIDs()) == 0 {
		return &ValidationError{Name: "story", err: errors.New(`ent: missing required edge "Summary.story"`)}
	}
	return nil
}

func (_c *SummaryCreate) sqlSave(ctx context.Context) (*Summary, error) {
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

func (_c *SummaryCreate) createSpec() (*Summary, *sqlgraph.CreateSpec) {
	var (
		_node = &Summary{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(summary.Table, sqlgraph.NewFieldSpec(summary.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Text(); ok {
		_spec.SetField(summary.FieldText, field.TypeString, value)
		_node.Text = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(summary.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(summary.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.StoryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   summary.StoryTable,
			Columns: []string{summary.StoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(story.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.StoryID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Summary.Create().
//		SetStoryID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SummaryUpsert) {
//			SetStoryID(v+v).
//		}).
//		Exec(ctx)
func (_c *SummaryCreate) OnConflict(opts ...sql.ConflictOption) *SummaryUpsertOne {
	_c.conflict = opts
	return &SummaryUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Summary.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SummaryCreate) OnConflictColumns(columns ...string) *SummaryUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SummaryUpsertOne{
		create: _c,
	}
}

type (
	// SummaryUpsertOne is the builder for "upsert"-ing
	//  one Summary node.
	SummaryUpsertOne struct {
		create *SummaryCreate
	}

	// SummaryUpsert is the "OnConflict" setter.
	SummaryUpsert struct {
		*sql.UpdateSet
	}
)

// SetText sets the "text" field.
func (u *SummaryUpsert) SetText(v string) *SummaryUpsert {
	u.Set(summary.FieldText, v)
	return u
}

// UpdateText sets the "text" field to the value that was provided on create.
func (u *SummaryUpsert) UpdateText() *SummaryUpsert {
	u.SetExcluded(summary.FieldText)
	return u
}

// SetModel sets the "model" field.
func (u *SummaryUpsert) SetModel(v string) *SummaryUpsert {
	u.Set(summary.FieldModel, v)
	return u
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *SummaryUpsert) UpdateModel() *SummaryUpsert {
	u.SetExcluded(summary.FieldModel)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Summary.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *SummaryUpsertOne) UpdateNewValues() *SummaryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.StoryID(); exists {
			s.SetIgnore(summary.FieldStoryID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(summary.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Summary.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SummaryUpsertOne) Ignore() *SummaryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SummaryUpsertOne) DoNothing() *SummaryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SummaryCreate.OnConflict
// documentation for more info.
func (u *SummaryUpsertOne) Update(set func(*SummaryUpsert)) *SummaryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SummaryUpsert{UpdateSet: update})
	}))
	return u
}

// SetText sets the "text" field.
func (u *SummaryUpsertOne) SetText(v string) *SummaryUpsertOne {
	return u.Update(func(s *SummaryUpsert) {
		s.SetText(v)
	})
}

// UpdateText sets the "text" field to the value that was provided on create.
func (u *SummaryUpsertOne) UpdateText() *SummaryUpsertOne {
	return u.Update(func(s *SummaryUpsert) {
		s.UpdateText()
	})
}

// SetModel sets the "model" field.
func (u *SummaryUpsertOne) SetModel(v string) *SummaryUpsertOne {
	return u.Update(func(s *SummaryUpsert) {
		s.SetModel(v)
	})
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *SummaryUpsertOne) UpdateModel() *SummaryUpsertOne {
	return u.Update(func(s *SummaryUpsert) {
		s.UpdateModel()
	})
}

// Exec executes the query.
func (u *SummaryUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SummaryCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SummaryUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SummaryUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SummaryUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SummaryCreateBulk is the builder for creating many Summary entities in bulk.
type SummaryCreateBulk struct {
	config
	err      error
	builders []*SummaryCreate
	conflict []sql.ConflictOption
}

// Save creates the Summary entities in the database.
func (_c *SummaryCreateBulk) Save(ctx context.Context) ([]*Summary, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Summary, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SummaryMutation)
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
func (_c *SummaryCreateBulk) SaveX(ctx context.Context) []*Summary {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SummaryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SummaryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Summary.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SummaryUpsert) {
//			SetStoryID(v+v).
//		}).
//		Exec(ctx)
func (_c *SummaryCreateBulk) OnConflict(opts ...sql.ConflictOption) *SummaryUpsertBulk {
	_c.conflict = opts
	return &SummaryUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Summary.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SummaryCreateBulk) OnConflictColumns(columns ...string) *SummaryUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SummaryUpsertBulk{
		create: _c,
	}
}

// SummaryUpsertBulk is the builder for "upsert"-ing
// a bulk of Summary nodes.
type SummaryUpsertBulk struct {
	create *SummaryCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Summary.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *SummaryUpsertBulk) UpdateNewValues() *SummaryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.StoryID(); exists {
				s.SetIgnore(summary.FieldStoryID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(summary.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Summary.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SummaryUpsertBulk) Ignore() *SummaryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SummaryUpsertBulk) DoNothing() *SummaryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SummaryCreateBulk.OnConflict
// documentation for more info.
func (u *SummaryUpsertBulk) Update(set func(*SummaryUpsert)) *SummaryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SummaryUpsert{UpdateSet: update})
	}))
	return u
}

// SetText sets the "text" field.
func (u *SummaryUpsertBulk) SetText(v string) *SummaryUpsertBulk {
	return u.Update(func(s *SummaryUpsert) {
		s.SetText(v)
	})
}

// UpdateText sets the "text" field to the value that was provided on create.
func (u *SummaryUpsertBulk) UpdateText() *SummaryUpsertBulk {
	return u.Update(func(s *SummaryUpsert) {
		s.UpdateText()
	})
}

// SetModel sets the "model" field.
func (u *SummaryUpsertBulk) SetModel(v string) *SummaryUpsertBulk {
	return u.Update(func(s *SummaryUpsert) {
		s.SetModel(v)
	})
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *SummaryUpsertBulk) UpdateModel() *SummaryUpsertBulk {
	return u.Update(func(s *SummaryUpsert) {
		s.UpdateModel()
	})
}

// Exec executes the query.
func (u *SummaryUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SummaryCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SummaryCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SummaryUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
