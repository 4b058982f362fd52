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
	"github.com/hnscribe/hnscribe/ent/tag"
)

// StoryCreate is the builder for creating a Story entity.
type StoryCreate struct {
	config
	mutation *StoryMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetHnID sets the "hn_id" field.
func (_c *StoryCreate) SetHnID(v int64) *StoryCreate {
	_c.mutation.SetHnID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *StoryCreate) SetTitle(v string) *StoryCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *StoryCreate) SetNillableTitle(v *string) *StoryCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetURL sets the "url" field.
func (_c *StoryCreate) SetURL(v string) *StoryCreate {
	_c.mutation.SetURL(v)
	return _c
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_c *StoryCreate) SetNillableURL(v *string) *StoryCreate {
	if v != nil {
		_c.SetURL(*v)
	}
	return _c
}

// SetScore sets the "score" field.
func (_c *StoryCreate) SetScore(v int) *StoryCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *StoryCreate) SetNillableScore(v *int) *StoryCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetAuthor sets the "author" field.
func (_c *StoryCreate) SetAuthor(v string) *StoryCreate {
	_c.mutation.SetAuthor(v)
	return _c
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_c *StoryCreate) SetNillableAuthor(v *string) *StoryCreate {
	if v != nil {
		_c.SetAuthor(*v)
	}
	return _c
}

// SetCommentCount sets the "comment_count" field.
func (_c *StoryCreate) SetCommentCount(v int) *StoryCreate {
	_c.mutation.SetCommentCount(v)
	return _c
}

// SetNillableCommentCount sets the "comment_count" field if the given value is not nil.
func (_c *StoryCreate) SetNillableCommentCount(v *int) *StoryCreate {
	if v != nil {
		_c.SetCommentCount(*v)
	}
	return _c
}

// SetHnCreatedAt sets the "hn_created_at" field.
func (_c *StoryCreate) SetHnCreatedAt(v time.Time) *StoryCreate {
	_c.mutation.SetHnCreatedAt(v)
	return _c
}

// SetIsSummarized sets the "is_summarized" field.
func (_c *StoryCreate) SetIsSummarized(v bool) *StoryCreate {
	_c.mutation.SetIsSummarized(v)
	return _c
}

// SetNillableIsSummarized sets the "is_summarized" field if the given value is not nil.
func (_c *StoryCreate) SetNillableIsSummarized(v *bool) *StoryCreate {
	if v != nil {
		_c.SetIsSummarized(*v)
	}
	return _c
}

// SetIsTagged sets the "is_tagged" field.
func (_c *StoryCreate) SetIsTagged(v bool) *StoryCreate {
	_c.mutation.SetIsTagged(v)
	return _c
}

// SetNillableIsTagged sets the "is_tagged" field if the given value is not nil.
func (_c *StoryCreate) SetNillableIsTagged(v *bool) *StoryCreate {
	if v != nil {
		_c.SetIsTagged(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *StoryCreate) SetCreatedAt(v time.Time) *StoryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StoryCreate) SetNillableCreatedAt(v *time.Time) *StoryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *StoryCreate) SetUpdatedAt(v time.Time) *StoryCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *StoryCreate) SetNillableUpdatedAt(v *time.Time) *StoryCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetSummaryID sets the "summary" edge to the Summary entity by ID.
func (_c *StoryCreate) SetSummaryID(id int) *StoryCreate {
	_c.mutation.SetSummaryID(id)
	return _c
}

// SetNillableSummaryID sets the "summary" edge to the Summary entity by ID if the given value is not nil.
func (_c *StoryCreate) SetNillableSummaryID(id *int) *StoryCreate {
	if id != nil {
		_c = _c.SetSummaryID(*id)
	}
	return _c
}

// SetSummary sets the "summary" edge to the Summary entity.
func (_c *StoryCreate) SetSummary(v *Summary) *StoryCreate {
	return _c.SetSummaryID(v.ID)
}

// AddTagIDs adds the "tags" edge to the Tag entity by IDs.
func (_c *StoryCreate) AddTagIDs(ids ...int) *StoryCreate {
	_c.mutation.AddTagIDs(ids...)
	return _c
}

// AddTags adds the "tags" edges to the Tag entity.
func (_c *StoryCreate) AddTags(v ...*Tag) *StoryCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTagIDs(ids...)
}

// Mutation returns the StoryMutation object of the builder.
func (_c *StoryCreate) Mutation() *StoryMutation {
	return _c.mutation
}

// Save creates the Story in the database.
func (_c *StoryCreate) Save(ctx context.Context) (*Story, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StoryCreate) SaveX(ctx context.Context) *Story {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StoryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StoryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StoryCreate) defaults() {
	if _, ok := _c.mutation.Title(); !ok {
		v := story.DefaultTitle
		_c.mutation.SetTitle(v)
	}
	if _, ok := _c.mutation.Score(); !ok {
		v := story.DefaultScore
		_c.mutation.SetScore(v)
	}
	if _, ok := _c.mutation.Author(); !ok {
		v := story.DefaultAuthor
		_c.mutation.SetAuthor(v)
	}
	if _, ok := _c.mutation.CommentCount(); !ok {
		v := story.DefaultCommentCount
		_c.mutation.SetCommentCount(v)
	}
	if _, ok := _c.mutation.IsSummarized(); !ok {
		v := story.DefaultIsSummarized
		_c.mutation.SetIsSummarized(v)
	}
	if _, ok := _c.mutation.IsTagged(); !ok {
		v := story.DefaultIsTagged
		_c.mutation.SetIsTagged(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := story.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := story.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StoryCreate) check() error {
	if _, ok := _c.mutation.HnID(); !ok {
		return &ValidationError{Name: "hn_id", err: errors.New(`ent: missing required field "Story.hn_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Story.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := story.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Story.title": %w`, err)}
		}
	}
	if v, ok := _c.mutation.URL(); ok {
		if err := story.URLValidator(v); err != nil {
			return &ValidationError{Name: "url", err: fmt.Errorf(`ent: validator failed for field "Story.url": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "Story.score"`)}
	}
	if _, ok := _c.mutation.Author(); !ok {
		return &ValidationError{Name: "author", err: errors.New(`ent: missing required field "Story.author"`)}
	}
	if v, ok := _c.mutation.Author(); ok {
		if err := story.AuthorValidator(v); err != nil {
			return &ValidationError{Name: "author", err: fmt.Errorf(`ent: validator failed for field "Story.author": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CommentCount(); !ok {
		return &ValidationError{Name: "comment_count", err: errors.New(`ent: missing required field "Story.comment_count"`)}
	}
	if _, ok := _c.mutation.HnCreatedAt(); !ok {
		return &ValidationError{Name: "hn_created_at", err: errors.New(`ent: missing required field "Story.hn_created_at"`)}
	}
	if _, ok := _c.mutation.IsSummarized(); !ok {
		return &ValidationError{Name: "is_summarized", err: errors.New(`ent: missing required field "Story.is_summarized"`)}
	}
	if _, ok := _c.mutation.IsTagged(); !ok {
		return &ValidationError{Name: "is_tagged", err: errors.New(`ent: missing required field "Story.is_tagged"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Story.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Story.updated_at"`)}
	}
	return nil
}

func (_c *StoryCreate) sqlSave(ctx context.Context) (*Story, error) {
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

func (_c *StoryCreate) createSpec() (*Story, *sqlgraph.CreateSpec) {
	var (
		_node = &Story{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(story.Table, sqlgraph.NewFieldSpec(story.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.HnID(); ok {
		_spec.SetField(story.FieldHnID, field.TypeInt64, value)
		_node.HnID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(story.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.URL(); ok {
		_spec.SetField(story.FieldURL, field.TypeString, value)
		_node.URL = &value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(story.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Author(); ok {
		_spec.SetField(story.FieldAuthor, field.TypeString, value)
		_node.Author = value
	}
	if value, ok := _c.mutation.CommentCount(); ok {
		_spec.SetField(story.FieldCommentCount, field.TypeInt, value)
		_node.CommentCount = value
	}
	if value, ok := _c.mutation.HnCreatedAt(); ok {
		_spec.SetField(story.FieldHnCreatedAt, field.TypeTime, value)
		_node.HnCreatedAt = value
	}
	if value, ok := _c.mutation.IsSummarized(); ok {
		_spec.SetField(story.FieldIsSummarized, field.TypeBool, value)
		_node.IsSummarized = value
	}
	if value, ok := _c.mutation.IsTagged(); ok {
		_spec.SetField(story.FieldIsTagged, field.TypeBool, value)
		_node.IsTagged = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(story.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(story.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.SummaryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   story.SummaryTable,
			Columns: []string{story.SummaryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(summary.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TagsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   story.TagsTable,
			Columns: story.TagsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tag.FieldID, field.TypeInt),
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
//	client.Story.Create().
//		SetHnID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StoryUpsert) {
//			SetHnID(v+v).
//		}).
//		Exec(ctx)
func (_c *StoryCreate) OnConflict(opts ...sql.ConflictOption) *StoryUpsertOne {
	_c.conflict = opts
	return &StoryUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Story.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StoryCreate) OnConflictColumns(columns ...string) *StoryUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StoryUpsertOne{
		create: _c,
	}
}

type (
	// StoryUpsertOne is the builder for "upsert"-ing
	//  one Story node.
	StoryUpsertOne struct {
		create *StoryCreate
	}

	// StoryUpsert is the "OnConflict" setter.
	StoryUpsert struct {
		*sql.UpdateSet
	}
)

// SetTitle sets the "title" field.
func (u *StoryUpsert) SetTitle(v string) *StoryUpsert {
	u.Set(story.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *StoryUpsert) UpdateTitle() *StoryUpsert {
	u.SetExcluded(story.FieldTitle)
	return u
}

// SetURL sets the "url" field.
func (u *StoryUpsert) SetURL(v string) *StoryUpsert {
	u.Set(story.FieldURL, v)
	return u
}

// UpdateURL sets the "url" field to the value that was provided on create.
func (u *StoryUpsert) UpdateURL() *StoryUpsert {
	u.SetExcluded(story.FieldURL)
	return u
}

// ClearURL clears the value of the "url" field.
func (u *StoryUpsert) ClearURL() *StoryUpsert {
	u.SetNull(story.FieldURL)
	return u
}

// SetScore sets the "score" field.
func (u *StoryUpsert) SetScore(v int) *StoryUpsert {
	u.Set(story.FieldScore, v)
	return u
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *StoryUpsert) UpdateScore() *StoryUpsert {
	u.SetExcluded(story.FieldScore)
	return u
}

// AddScore adds v to the "score" field.
func (u *StoryUpsert) AddScore(v int) *StoryUpsert {
	u.Add(story.FieldScore, v)
	return u
}

// SetAuthor sets the "author" field.
func (u *StoryUpsert) SetAuthor(v string) *StoryUpsert {
	u.Set(story.FieldAuthor, v)
	return u
}

// UpdateAuthor sets the "author" field to the value that was provided on create.
func (u *StoryUpsert) UpdateAuthor() *StoryUpsert {
	u.SetExcluded(story.FieldAuthor)
	return u
}

// SetCommentCount sets the "comment_count" field.
func (u *StoryUpsert) SetCommentCount(v int) *StoryUpsert {
	u.Set(story.FieldCommentCount, v)
	return u
}

// UpdateCommentCount sets the "comment_count" field to the value that was provided on create.
func (u *StoryUpsert) UpdateCommentCount() *StoryUpsert {
	u.SetExcluded(story.FieldCommentCount)
	return u
}

// AddCommentCount adds v to the "comment_count" field.
func (u *StoryUpsert) AddCommentCount(v int) *StoryUpsert {
	u.Add(story.FieldCommentCount, v)
	return u
}

// SetIsSummarized sets the "is_summarized" field.
func (u *StoryUpsert) SetIsSummarized(v bool) *StoryUpsert {
	u.Set(story.FieldIsSummarized, v)
	return u
}

// UpdateIsSummarized sets the "is_summarized" field to the value that was provided on create.
func (u *StoryUpsert) UpdateIsSummarized() *StoryUpsert {
	u.SetExcluded(story.FieldIsSummarized)
	return u
}

// SetIsTagged sets the "is_tagged" field.
func (u *StoryUpsert) SetIsTagged(v bool) *StoryUpsert {
	u.Set(story.FieldIsTagged, v)
	return u
}

// UpdateIsTagged sets the "is_tagged" field to the value that was provided on create.
func (u *StoryUpsert) UpdateIsTagged() *StoryUpsert {
	u.SetExcluded(story.FieldIsTagged)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *StoryUpsert) SetUpdatedAt(v time.Time) *StoryUpsert {
	u.Set(story.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StoryUpsert) UpdateUpdatedAt() *StoryUpsert {
	u.SetExcluded(story.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Story.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *StoryUpsertOne) UpdateNewValues() *StoryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.HnID(); exists {
			s.SetIgnore(story.FieldHnID)
		}
		if _, exists := u.create.mutation.HnCreatedAt(); exists {
			s.SetIgnore(story.FieldHnCreatedAt)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(story.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Story.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *StoryUpsertOne) Ignore() *StoryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StoryUpsertOne) DoNothing() *StoryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StoryCreate.OnConflict
// documentation for more info.
func (u *StoryUpsertOne) Update(set func(*StoryUpsert)) *StoryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StoryUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *StoryUpsertOne) SetTitle(v string) *StoryUpsertOne {
	return u.Update(func(s *StoryUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *StoryUpsertOne) UpdateTitle() *StoryUpsertOne {
	return u.Update(func(s *StoryUpsert) {
		s.UpdateTitle()
	})
}

// SetURL sets the "url" field.
func (u *StoryUpsertOne) SetURL(v string) *StoryUpsertOne {
	return u.Update(func(s *StoryUpsert) {
		s.SetURL(v)
	})
}

// UpdateURL sets the "url" field to the value that was provided on create.
func (u *StoryUpsertOne) UpdateURL() *StoryUpsertOne {
	return u.Update(func(s *StoryUpsert) {
		s.UpdateURL()
	})
}

// ClearURL clears the value of the "url" field.
func (u *StoryUpsertOne) ClearURL() *StoryUpsertOne {
	return u.Update(func(s *StoryUpsert) {
		s.ClearURL()
	})
}

// SetScore sets the "score" field.
func (u *StoryUpsertOne) SetScore(v int) *StoryUpsertOne {
	return u.Update(func(s *StoryUpsert) {
		s.SetScore(v)
	})
}

// AddScore adds v to the "score" field.
func (u *StoryUpsertOne) AddScore(v int) *StoryUpsertOne {
	return u.Update(func(s *StoryUpsert) {
		s.AddScore(v)
	})
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *StoryUpsertOne) UpdateScore() *StoryUpsertOne {
	return u.Update(func(s *StoryUpsert) {
		s.UpdateScore()
	})
}

// SetAuthor sets the "author" field.
func (u *StoryUpsertOne) SetAuthor(v string) *StoryUpsertOne {
	return u.Update(func(s *StoryUpsert) {
		s.SetAuthor(v)
	})
}

// UpdateAuthor sets the "author" field to the value that was provided on create.
func (u *StoryUpsertOne) UpdateAuthor() *StoryUpsertOne {
	return u.Update(func(s *StoryUpsert) {
		s.UpdateAuthor()
	})
}

// SetCommentCount sets the "comment_count" field.
func (u *StoryUpsertOne) SetCommentCount(v int) *StoryUpsertOne {
	return u.Update(func(s *StoryUpsert) {
		s.SetCommentCount(v)
	})
}

// AddCommentCount adds v to the "comment_count" field.
func (u *StoryUpsertOne) AddCommentCount(v int) *StoryUpsertOne {
	return u.Update(func(s *StoryUpsert) {
		s.AddCommentCount(v)
	})
}

// UpdateCommentCount sets the "comment_count" field to the value that was provided on create.
func (u *StoryUpsertOne) UpdateCommentCount() *StoryUpsertOne {
	return u.Update(func(s *StoryUpsert) {
		s.UpdateCommentCount()
	})
}

// SetIsSummarized sets the "is_summarized" field.
func (u *StoryUpsertOne) SetIsSummarized(v bool) *StoryUpsertOne {
	return u.Update(func(s *StoryUpsert) {
		s.SetIsSummarized(v)
	})
}

// UpdateIsSummarized sets the "is_summarized" field to the value that was provided on create.
func (u *StoryUpsertOne) UpdateIsSummarized() *StoryUpsertOne {
	return u.Update(func(s *StoryUpsert) {
		s.UpdateIsSummarized()
	})
}

// SetIsTagged sets the "is_tagged" field.
func (u *StoryUpsertOne) SetIsTagged(v bool) *StoryUpsertOne {
	return u.Update(func(s *StoryUpsert) {
		s.SetIsTagged(v)
	})
}

// UpdateIsTagged sets the "is_tagged" field to the value that was provided on create.
func (u *StoryUpsertOne) UpdateIsTagged() *StoryUpsertOne {
	return u.Update(func(s *StoryUpsert) {
		s.UpdateIsTagged()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *StoryUpsertOne) SetUpdatedAt(v time.Time) *StoryUpsertOne {
	return u.Update(func(s *StoryUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StoryUpsertOne) UpdateUpdatedAt() *StoryUpsertOne {
	return u.Update(func(s *StoryUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *StoryUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StoryCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StoryUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *StoryUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *StoryUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// StoryCreateBulk is the builder for creating many Story entities in bulk.
type StoryCreateBulk struct {
	config
	err      error
	builders []*StoryCreate
	conflict []sql.ConflictOption
}

// Save creates the Story entities in the database.
func (_c *StoryCreateBulk) Save(ctx context.Context) ([]*Story, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Story, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StoryMutation)
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
func (_c *StoryCreateBulk) SaveX(ctx context.Context) []*Story {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StoryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StoryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Story.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StoryUpsert) {
//			SetHnID(v+v).
//		}).
//		Exec(ctx)
func (_c *StoryCreateBulk) OnConflict(opts ...sql.ConflictOption) *StoryUpsertBulk {
	_c.conflict = opts
	return &StoryUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Story.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StoryCreateBulk) OnConflictColumns(columns ...string) *StoryUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StoryUpsertBulk{
		create: _c,
	}
}

// StoryUpsertBulk is the builder for "upsert"-ing
// a bulk of Story nodes.
type StoryUpsertBulk struct {
	create *StoryCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Story.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *StoryUpsertBulk) UpdateNewValues() *StoryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.HnID(); exists {
				s.SetIgnore(story.FieldHnID)
			}
			if _, exists := b.mutation.HnCreatedAt(); exists {
				s.SetIgnore(story.FieldHnCreatedAt)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(story.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Story.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *StoryUpsertBulk) Ignore() *StoryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StoryUpsertBulk) DoNothing() *StoryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StoryCreateBulk.OnConflict
// documentation for more info.
func (u *StoryUpsertBulk) Update(set func(*StoryUpsert)) *StoryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StoryUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *StoryUpsertBulk) SetTitle(v string) *StoryUpsertBulk {
	return u.Update(func(s *StoryUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *StoryUpsertBulk) UpdateTitle() *StoryUpsertBulk {
	return u.Update(func(s *StoryUpsert) {
		s.UpdateTitle()
	})
}

// SetURL sets the "url" field.
func (u *StoryUpsertBulk) SetURL(v string) *StoryUpsertBulk {
	return u.Update(func(s *StoryUpsert) {
		s.SetURL(v)
	})
}

// UpdateURL sets the "url" field to the value that was provided on create.
func (u *StoryUpsertBulk) UpdateURL() *StoryUpsertBulk {
	return u.Update(func(s *StoryUpsert) {
		s.UpdateURL()
	})
}

// ClearURL clears the value of the "url" field.
func (u *StoryUpsertBulk) ClearURL() *StoryUpsertBulk {
	return u.Update(func(s *StoryUpsert) {
		s.ClearURL()
	})
}

// SetScore sets the "score" field.
func (u *StoryUpsertBulk) SetScore(v int) *StoryUpsertBulk {
	return u.Update(func(s *StoryUpsert) {
		s.SetScore(v)
	})
}

// AddScore adds v to the "score" field.
func (u *StoryUpsertBulk) AddScore(v int) *StoryUpsertBulk {
	return u.Update(func(s *StoryUpsert) {
		s.AddScore(v)
	})
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *StoryUpsertBulk) UpdateScore() *StoryUpsertBulk {
	return u.Update(func(s *StoryUpsert) {
		s.UpdateScore()
	})
}

// SetAuthor sets the "author" field.
func (u *StoryUpsertBulk) SetAuthor(v string) *StoryUpsertBulk {
	return u.Update(func(s *StoryUpsert) {
		s.SetAuthor(v)
	})
}

// UpdateAuthor sets the "author" field to the value that was provided on create.
func (u *StoryUpsertBulk) UpdateAuthor() *StoryUpsertBulk {
	return u.Update(func(s *StoryUpsert) {
		s.UpdateAuthor()
	})
}

// SetCommentCount sets the "comment_count" field.
func (u *StoryUpsertBulk) SetCommentCount(v int) *StoryUpsertBulk {
	return u.Update(func(s *StoryUpsert) {
		s.SetCommentCount(v)
	})
}

// AddCommentCount adds v to the "comment_count" field.
func (u *StoryUpsertBulk) AddCommentCount(v int) *StoryUpsertBulk {
	return u.Update(func(s *StoryUpsert) {
		s.AddCommentCount(v)
	})
}

// UpdateCommentCount sets the "comment_count" field to the value that was provided on create.
func (u *StoryUpsertBulk) UpdateCommentCount() *StoryUpsertBulk {
	return u.Update(func(s *StoryUpsert) {
		s.UpdateCommentCount()
	})
}

// SetIsSummarized sets the "is_summarized" field.
func (u *StoryUpsertBulk) SetIsSummarized(v bool) *StoryUpsertBulk {
	return u.Update(func(s *StoryUpsert) {
		s.SetIsSummarized(v)
	})
}

// UpdateIsSummarized sets the "is_summarized" field to the value that was provided on create.
func (u *StoryUpsertBulk) UpdateIsSummarized() *StoryUpsertBulk {
	return u.Update(func(s *StoryUpsert) {
		s.UpdateIsSummarized()
	})
}

// SetIsTagged sets the "is_tagged" field.
func (u *StoryUpsertBulk) SetIsTagged(v bool) *StoryUpsertBulk {
	return u.Update(func(s *StoryUpsert) {
		s.SetIsTagged(v)
	})
}

// UpdateIsTagged sets the "is_tagged" field to the value that was provided on create.
func (u *StoryUpsertBulk) UpdateIsTagged() *StoryUpsertBulk {
	return u.Update(func(s *StoryUpsert) {
		s.UpdateIsTagged()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *StoryUpsertBulk) SetUpdatedAt(v time.Time) *StoryUpsertBulk {
	return u.Update(func(s *StoryUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StoryUpsertBulk) UpdateUpdatedAt() *StoryUpsertBulk {
	return u.Update(func(s *StoryUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *StoryUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the StoryCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StoryCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StoryUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
