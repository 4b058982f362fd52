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
	"github.com/hnscribe/hnscribe/ent/tag"
)

// TagCreate is the builder for creating a Tag entity.
type TagCreate struct {
	config
	mutation *TagMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetName sets the "name" field.
func (_c *TagCreate) SetName(v string) *TagCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetSlug sets the "slug" field.
func (_c *TagCreate) SetSlug(v string) *TagCreate {
	_c.mutation.SetSlug(v)
	return _c
}

// SetLevel sets the "level" field.
func (_c *TagCreate) SetLevel(v int) *TagCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *TagCreate) SetCategory(v string) *TagCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *TagCreate) SetNillableCategory(v *string) *TagCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetIsMisc sets the "is_misc" field.
func (_c *TagCreate) SetIsMisc(v bool) *TagCreate {
	_c.mutation.SetIsMisc(v)
	return _c
}

// SetNillableIsMisc sets the "is_misc" field if the given value is not nil.
func (_c *TagCreate) SetNillableIsMisc(v *bool) *TagCreate {
	if v != nil {
		_c.SetIsMisc(*v)
	}
	return _c
}

// SetUsageCount sets the "usage_count" field.
func (_c *TagCreate) SetUsageCount(v int) *TagCreate {
	_c.mutation.SetUsageCount(v)
	return _c
}

// SetNillableUsageCount sets the "usage_count" field if the given value is not nil.
func (_c *TagCreate) SetNillableUsageCount(v *int) *TagCreate {
	if v != nil {
		_c.SetUsageCount(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TagCreate) SetCreatedAt(v time.Time) *TagCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TagCreate) SetNillableCreatedAt(v *time.Time) *TagCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// AddStoryIDs adds the "stories" edge to the Story entity by IDs.
func (_c *TagCreate) AddStoryIDs(ids ...int) *TagCreate {
	_c.mutation.AddStoryIDs(ids...)
	return _c
}

// AddStories adds the "stories" edges to the Story entity.
func (_c *TagCreate) AddStories(v ...*Story) *TagCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStoryIDs(ids...)
}

// Mutation returns the TagMutation object of the builder.
func (_c *TagCreate) Mutation() *TagMutation {
	return _c.mutation
}

// Save creates the Tag in the database.
func (_c *TagCreate) Save(ctx context.Context) (*Tag, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TagCreate) SaveX(ctx context.Context) *Tag {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TagCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TagCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TagCreate) defaults() {
	if _, ok := _c.mutation.IsMisc(); !ok {
		v := tag.DefaultIsMisc
		_c.mutation.SetIsMisc(v)
	}
	if _, ok := _c.mutation.UsageCount(); !ok {
		v := tag.DefaultUsageCount
		_c.mutation.SetUsageCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := tag.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TagCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Tag.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := tag.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Tag.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Slug(); !ok {
		return &ValidationError{Name: "slug", err: errors.New(`ent: missing required field "Tag.slug"`)}
	}
	if v, ok := _c.mutation.Slug(); ok {
		if err := tag.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "Tag.slug": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "Tag.level"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := tag.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Tag.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsMisc(); !ok {
		return &ValidationError{Name: "is_misc", err: errors.New(`ent: missing required field "Tag.is_misc"`)}
	}
	if _, ok := _c.mutation.UsageCount(); !ok {
		return &ValidationError{Name: "usage_count", err: errors.New(`ent: missing required field "Tag.usage_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Tag.created_at"`)}
	}
	return nil
}

func (_c *TagCreate) sqlSave(ctx context.Context) (*Tag, error) {
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

func (_c *TagCreate) createSpec() (*Tag, *sqlgraph.CreateSpec) {
	var (
		_node = &Tag{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(tag.Table, sqlgraph.NewFieldSpec(tag.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(tag.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Slug(); ok {
		_spec.SetField(tag.FieldSlug, field.TypeString, value)
		_node.Slug = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(tag.FieldLevel, field.TypeInt, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(tag.FieldCategory, field.TypeString, value)
		_node.Category = &value
	}
	if value, ok := _c.mutation.IsMisc(); ok {
		_spec.SetField(tag.FieldIsMisc, field.TypeBool, value)
		_node.IsMisc = value
	}
	if value, ok := _c.mutation.UsageCount(); ok {
		_spec.SetField(tag.FieldUsageCount, field.TypeInt, value)
		_node.UsageCount = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(tag.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.StoriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   tag.StoriesTable,
			Columns: tag.StoriesPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(story.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Tag.Create().
//		SetName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TagUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *TagCreate) OnConflict(opts ...sql.ConflictOption) *TagUpsertOne {
	_c.conflict = opts
	return &TagUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Tag.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TagCreate) OnConflictColumns(columns ...string) *TagUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TagUpsertOne{
		create: _c,
	}
}

type (
	// TagUpsertOne is the builder for "upsert"-ing
	//  one Tag node.
	TagUpsertOne struct {
		create *TagCreate
	}

	// TagUpsert is the "OnConflict" setter.
	TagUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *TagUpsert) SetName(v string) *TagUpsert {
	u.Set(tag.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *TagUpsert) UpdateName() *TagUpsert {
	u.SetExcluded(tag.FieldName)
	return u
}

// SetSlug sets the "slug" field.
func (u *TagUpsert) SetSlug(v string) *TagUpsert {
	u.Set(tag.FieldSlug, v)
	return u
}

// UpdateSlug sets the "slug" field to the value that was provided on create.
func (u *TagUpsert) UpdateSlug() *TagUpsert {
	u.SetExcluded(tag.FieldSlug)
	return u
}

// SetLevel sets the "level" field.
func (u *TagUpsert) SetLevel(v int) *TagUpsert {
	u.Set(tag.FieldLevel, v)
	return u
}

// UpdateLevel sets the "level" field to the value that was provided on create.
func (u *TagUpsert) UpdateLevel() *TagUpsert {
	u.SetExcluded(tag.FieldLevel)
	return u
}

// AddLevel adds v to the "level" field.
func (u *TagUpsert) AddLevel(v int) *TagUpsert {
	u.Add(tag.FieldLevel, v)
	return u
}

// SetCategory sets the "category" field.
func (u *TagUpsert) SetCategory(v string) *TagUpsert {
	u.Set(tag.FieldCategory, v)
	return u
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *TagUpsert) UpdateCategory() *TagUpsert {
	u.SetExcluded(tag.FieldCategory)
	return u
}

// ClearCategory clears the value of the "category" field.
func (u *TagUpsert) ClearCategory() *TagUpsert {
	u.SetNull(tag.FieldCategory)
	return u
}

// SetIsMisc sets the "is_misc" field.
func (u *TagUpsert) SetIsMisc(v bool) *TagUpsert {
	u.Set(tag.FieldIsMisc, v)
	return u
}

// UpdateIsMisc sets the "is_misc" field to the value that was provided on create.
func (u *TagUpsert) UpdateIsMisc() *TagUpsert {
	u.SetExcluded(tag.FieldIsMisc)
	return u
}

// SetUsageCount sets the "usage_count" field.
func (u *TagUpsert) SetUsageCount(v int) *TagUpsert {
	u.Set(tag.FieldUsageCount, v)
	return u
}

// UpdateUsageCount sets the "usage_count" field to the value that was provided on create.
func (u *TagUpsert) UpdateUsageCount() *TagUpsert {
	u.SetExcluded(tag.FieldUsageCount)
	return u
}

// AddUsageCount adds v to the "usage_count" field.
func (u *TagUpsert) AddUsageCount(v int) *TagUpsert {
	u.Add(tag.FieldUsageCount, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Tag.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *TagUpsertOne) UpdateNewValues() *TagUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(tag.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Tag.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TagUpsertOne) Ignore() *TagUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TagUpsertOne) DoNothing() *TagUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TagCreate.OnConflict
// documentation for more info.
func (u *TagUpsertOne) Update(set func(*TagUpsert)) *TagUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TagUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *TagUpsertOne) SetName(v string) *TagUpsertOne {
	return u.Update(func(s *TagUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *TagUpsertOne) UpdateName() *TagUpsertOne {
	return u.Update(func(s *TagUpsert) {
		s.UpdateName()
	})
}

// SetSlug sets the "slug" field.
func (u *TagUpsertOne) SetSlug(v string) *TagUpsertOne {
	return u.Update(func(s *TagUpsert) {
		s.SetSlug(v)
	})
}

// UpdateSlug sets the "slug" field to the value that was provided on create.
func (u *TagUpsertOne) UpdateSlug() *TagUpsertOne {
	return u.Update(func(s *TagUpsert) {
		s.UpdateSlug()
	})
}

// SetLevel sets the "level" field.
func (u *TagUpsertOne) SetLevel(v int) *TagUpsertOne {
	return u.Update(func(s *TagUpsert) {
		s.SetLevel(v)
	})
}

// AddLevel adds v to the "level" field.
func (u *TagUpsertOne) AddLevel(v int) *TagUpsertOne {
	return u.Update(func(s *TagUpsert) {
		s.AddLevel(v)
	})
}

// UpdateLevel sets the "level" field to the value that was provided on create.
func (u *TagUpsertOne) UpdateLevel() *TagUpsertOne {
	return u.Update(func(s *TagUpsert) {
		s.UpdateLevel()
	})
}

// SetCategory sets the "category" field.
func (u *TagUpsertOne) SetCategory(v string) *TagUpsertOne {
	return u.Update(func(s *TagUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *TagUpsertOne) UpdateCategory() *TagUpsertOne {
	return u.Update(func(s *TagUpsert) {
		s.UpdateCategory()
	})
}

// ClearCategory clears the value of the "category" field.
func (u *TagUpsertOne) ClearCategory() *TagUpsertOne {
	return u.Update(func(s *TagUpsert) {
		s.ClearCategory()
	})
}

// SetIsMisc sets the "is_misc" field.
func (u *TagUpsertOne) SetIsMisc(v bool) *TagUpsertOne {
	return u.Update(func(s *TagUpsert) {
		s.SetIsMisc(v)
	})
}

// UpdateIsMisc sets the "is_misc" field to the value that was provided on create.
func (u *TagUpsertOne) UpdateIsMisc() *TagUpsertOne {
	return u.Update(func(s *TagUpsert) {
		s.UpdateIsMisc()
	})
}

// SetUsageCount sets the "usage_count" field.
func (u *TagUpsertOne) SetUsageCount(v int) *TagUpsertOne {
	return u.Update(func(s *TagUpsert) {
		s.SetUsageCount(v)
	})
}

// AddUsageCount adds v to the "usage_count" field.
func (u *TagUpsertOne) AddUsageCount(v int) *TagUpsertOne {
	return u.Update(func(s *TagUpsert) {
		s.AddUsageCount(v)
	})
}

// UpdateUsageCount sets the "usage_count" field to the value that was provided on create.
func (u *TagUpsertOne) UpdateUsageCount() *TagUpsertOne {
	return u.Update(func(s *TagUpsert) {
		s.UpdateUsageCount()
	})
}

// Exec executes the query.
func (u *TagUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TagCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TagUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TagUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TagUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TagCreateBulk is the builder for creating many Tag entities in bulk.
type TagCreateBulk struct {
	config
	err      error
	builders []*TagCreate
	conflict []sql.ConflictOption
}

// Save creates the Tag entities in the database.
func (_c *TagCreateBulk) Save(ctx context.Context) ([]*Tag, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Tag, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TagMutation)
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
func (_c *TagCreateBulk) SaveX(ctx context.Context) []*Tag {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TagCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TagCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Tag.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TagUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *TagCreateBulk) OnConflict(opts ...sql.ConflictOption) *TagUpsertBulk {
	_c.conflict = opts
	return &TagUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Tag.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TagCreateBulk) OnConflictColumns(columns ...string) *TagUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TagUpsertBulk{
		create: _c,
	}
}

// TagUpsertBulk is the builder for "upsert"-ing
// a bulk of Tag nodes.
type TagUpsertBulk struct {
	create *TagCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Tag.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *TagUpsertBulk) UpdateNewValues() *TagUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(tag.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Tag.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TagUpsertBulk) Ignore() *TagUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TagUpsertBulk) DoNothing() *TagUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TagCreateBulk.OnConflict
// documentation for more info.
func (u *TagUpsertBulk) Update(set func(*TagUpsert)) *TagUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TagUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *TagUpsertBulk) SetName(v string) *TagUpsertBulk {
	return u.Update(func(s *TagUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *TagUpsertBulk) UpdateName() *TagUpsertBulk {
	return u.Update(func(s *TagUpsert) {
		s.UpdateName()
	})
}

// SetSlug sets the "slug" field.
func (u *TagUpsertBulk) SetSlug(v string) *TagUpsertBulk {
	return u.Update(func(s *TagUpsert) {
		s.SetSlug(v)
	})
}

// UpdateSlug sets the "slug" field to the value that was provided on create.
func (u *TagUpsertBulk) UpdateSlug() *TagUpsertBulk {
	return u.Update(func(s *TagUpsert) {
		s.UpdateSlug()
	})
}

// SetLevel sets the "level" field.
func (u *TagUpsertBulk) SetLevel(v int) *TagUpsertBulk {
	return u.Update(func(s *TagUpsert) {
		s.SetLevel(v)
	})
}

// AddLevel adds v to the "level" field.
func (u *TagUpsertBulk) AddLevel(v int) *TagUpsertBulk {
	return u.Update(func(s *TagUpsert) {
		s.AddLevel(v)
	})
}

// UpdateLevel sets the "level" field to the value that was provided on create.
func (u *TagUpsertBulk) UpdateLevel() *TagUpsertBulk {
	return u.Update(func(s *TagUpsert) {
		s.UpdateLevel()
	})
}

// SetCategory sets the "category" field.
func (u *TagUpsertBulk) SetCategory(v string) *TagUpsertBulk {
	return u.Update(func(s *TagUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *TagUpsertBulk) UpdateCategory() *TagUpsertBulk {
	return u.Update(func(s *TagUpsert) {
		s.UpdateCategory()
	})
}

// ClearCategory clears the value of the "category" field.
func (u *TagUpsertBulk) ClearCategory() *TagUpsertBulk {
	return u.Update(func(s *TagUpsert) {
		s.ClearCategory()
	})
}

// SetIsMisc sets the "is_misc" field.
func (u *TagUpsertBulk) SetIsMisc(v bool) *TagUpsertBulk {
	return u.Update(func(s *TagUpsert) {
		s.SetIsMisc(v)
	})
}

// UpdateIsMisc sets the "is_misc" field to the value that was provided on create.
func (u *TagUpsertBulk) UpdateIsMisc() *TagUpsertBulk {
	return u.Update(func(s *TagUpsert) {
		s.UpdateIsMisc()
	})
}

// SetUsageCount sets the "usage_count" field.
func (u *TagUpsertBulk) SetUsageCount(v int) *TagUpsertBulk {
	return u.Update(func(s *TagUpsert) {
		s.SetUsageCount(v)
	})
}

// AddUsageCount adds v to the "usage_count" field.
func (u *TagUpsertBulk) AddUsageCount(v int) *TagUpsertBulk {
	return u.Update(func(s *TagUpsert) {
		s.AddUsageCount(v)
	})
}

// UpdateUsageCount sets the "usage_count" field to the value that was provided on create.
func (u *TagUpsertBulk) UpdateUsageCount() *TagUpsertBulk {
	return u.Update(func(s *TagUpsert) {
		s.UpdateUsageCount()
	})
}

// Exec executes the query.
func (u *TagUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TagCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TagCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TagUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
