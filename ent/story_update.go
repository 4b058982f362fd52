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
	"github.com/hnscribe/hnscribe/ent/story"
	"github.com/hnscribe/hnscribe/ent/summary"
	"github.com/hnscribe/hnscribe/ent/tag"
)

// StoryUpdate is the builder for updating Story entities.
type StoryUpdate struct {
	config
	hooks    []Hook
	mutation *StoryMutation
}

// Where appends a list predicates to the StoryUpdate builder.
func (_u *StoryUpdate) Where(ps ...predicate.Story) *StoryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *StoryUpdate) SetTitle(v string) *StoryUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *StoryUpdate) SetNillableTitle(v *string) *StoryUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *StoryUpdate) SetURL(v string) *StoryUpdate {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *StoryUpdate) SetNillableURL(v *string) *StoryUpdate {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// ClearURL clears the value of the "url" field.
func (_u *StoryUpdate) ClearURL() *StoryUpdate {
	_u.mutation.ClearURL()
	return _u
}

// SetScore sets the "score" field.
func (_u *StoryUpdate) SetScore(v int) *StoryUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *StoryUpdate) SetNillableScore(v *int) *StoryUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *StoryUpdate) AddScore(v int) *StoryUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetAuthor sets the "author" field.
func (_u *StoryUpdate) SetAuthor(v string) *StoryUpdate {
	_u.mutation.SetAuthor(v)
	return _u
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_u *StoryUpdate) SetNillableAuthor(v *string) *StoryUpdate {
	if v != nil {
		_u.SetAuthor(*v)
	}
	return _u
}

// SetCommentCount sets the "comment_count" field.
func (_u *StoryUpdate) SetCommentCount(v int) *StoryUpdate {
	_u.mutation.ResetCommentCount()
	_u.mutation.SetCommentCount(v)
	return _u
}

// SetNillableCommentCount sets the "comment_count" field if the given value is not nil.
func (_u *StoryUpdate) SetNillableCommentCount(v *int) *StoryUpdate {
	if v != nil {
		_u.SetCommentCount(*v)
	}
	return _u
}

// AddCommentCount adds value to the "comment_count" field.
func (_u *StoryUpdate) AddCommentCount(v int) *StoryUpdate {
	_u.mutation.AddCommentCount(v)
	return _u
}

// SetIsSummarized sets the "is_summarized" field.
func (_u *StoryUpdate) SetIsSummarized(v bool) *StoryUpdate {
	_u.mutation.SetIsSummarized(v)
	return _u
}

// SetNillableIsSummarized sets the "is_summarized" field if the given value is not nil.
func (_u *StoryUpdate) SetNillableIsSummarized(v *bool) *StoryUpdate {
	if v != nil {
		_u.SetIsSummarized(*v)
	}
	return _u
}

// SetIsTagged sets the "is_tagged" field.
func (_u *StoryUpdate) SetIsTagged(v bool) *StoryUpdate {
	_u.mutation.SetIsTagged(v)
	return _u
}

// SetNillableIsTagged sets the "is_tagged" field if the given value is not nil.
func (_u *StoryUpdate) SetNillableIsTagged(v *bool) *StoryUpdate {
	if v != nil {
		_u.SetIsTagged(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StoryUpdate) SetUpdatedAt(v time.Time) *StoryUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSummaryID sets the "summary" edge to the Summary entity by ID.
func (_u *StoryUpdate) SetSummaryID(id int) *StoryUpdate {
	_u.mutation.SetSummaryID(id)
	return _u
}

// SetNillableSummaryID sets the "summary" edge to the Summary entity by ID if the given value is not nil.
func (_u *StoryUpdate) SetNillableSummaryID(id *int) *StoryUpdate {
	if id != nil {
		_u = _u.SetSummaryID(*id)
	}
	return _u
}

// SetSummary sets the "summary" edge to the Summary entity.
func (_u *StoryUpdate) SetSummary(v *Summary) *StoryUpdate {
	return _u.SetSummaryID(v.ID)
}

// AddTagIDs adds the "tags" edge to the Tag entity by IDs.
func (_u *StoryUpdate) AddTagIDs(ids ...int) *StoryUpdate {
	_u.mutation.AddTagIDs(ids...)
	return _u
}

// AddTags adds the "tags" edges to the Tag entity.
func (_u *StoryUpdate) AddTags(v ...*Tag) *StoryUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTagIDs(ids...)
}

// Mutation returns the StoryMutation object of the builder.
func (_u *StoryUpdate) Mutation() *StoryMutation {
	return _u.mutation
}

// ClearSummary clears the "summary" edge to the Summary entity.
func (_u *StoryUpdate) ClearSummary() *StoryUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// ClearTags clears all "tags" edges to the Tag entity.
func (_u *StoryUpdate) ClearTags() *StoryUpdate {
	_u.mutation.ClearTags()
	return _u
}

// RemoveTagIDs removes the "tags" edge to Tag entities by IDs.
func (_u *StoryUpdate) RemoveTagIDs(ids ...int) *StoryUpdate {
	_u.mutation.RemoveTagIDs(ids...)
	return _u
}

// RemoveTags removes "tags" edges to Tag entities.
func (_u *StoryUpdate) RemoveTags(v ...*Tag) *StoryUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTagIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StoryUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StoryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StoryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StoryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StoryUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := story.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StoryUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := story.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Story.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.URL(); ok {
		if err := story.URLValidator(v); err != nil {
			return &ValidationError{Name: "url", err: fmt.Errorf(`ent: validator failed for field "Story.url": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Author(); ok {
		if err := story.AuthorValidator(v); err != nil {
			return &ValidationError{Name: "author", err: fmt.Errorf(`ent: validator failed for field "Story.author": %w`, err)}
		}
	}
	return nil
}

func (_u *StoryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(story.Table, story.Columns, sqlgraph.NewFieldSpec(story.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(story.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(story.FieldURL, field.TypeString, value)
	}
	if _u.mutation.URLCleared() {
		_spec.ClearField(story.FieldURL, field.TypeString)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(story.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(story.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Author(); ok {
		_spec.SetField(story.FieldAuthor, field.TypeString, value)
	}
	if value, ok := _u.mutation.CommentCount(); ok {
		_spec.SetField(story.FieldCommentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCommentCount(); ok {
		_spec.AddField(story.FieldCommentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsSummarized(); ok {
		_spec.SetField(story.FieldIsSummarized, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsTagged(); ok {
		_spec.SetField(story.FieldIsTagged, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(story.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SummaryCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SummaryIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TagsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTagsIDs(); len(nodes) > 0 && !_u.mutation.TagsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TagsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{story.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StoryUpdateOne is the builder for updating a single Story entity.
type StoryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StoryMutation
}

// SetTitle sets the "title" field.
func (_u *StoryUpdateOne) SetTitle(v string) *StoryUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *StoryUpdateOne) SetNillableTitle(v *string) *StoryUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *StoryUpdateOne) SetURL(v string) *StoryUpdateOne {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *StoryUpdateOne) SetNillableURL(v *string) *StoryUpdateOne {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// ClearURL clears the value of the "url" field.
func (_u *StoryUpdateOne) ClearURL() *StoryUpdateOne {
	_u.mutation.ClearURL()
	return _u
}

// SetScore sets the "score" field.
func (_u *StoryUpdateOne) SetScore(v int) *StoryUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *StoryUpdateOne) SetNillableScore(v *int) *StoryUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *StoryUpdateOne) AddScore(v int) *StoryUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetAuthor sets the "author" field.
func (_u *StoryUpdateOne) SetAuthor(v string) *StoryUpdateOne {
	_u.mutation.SetAuthor(v)
	return _u
}

// SetNillableAuthor sets the "author" field if the given value is not nil.
func (_u *StoryUpdateOne) SetNillableAuthor(v *string) *StoryUpdateOne {
	if v != nil {
		_u.SetAuthor(*v)
	}
	return _u
}

// SetCommentCount sets the "comment_count" field.
func (_u *StoryUpdateOne) SetCommentCount(v int) *StoryUpdateOne {
	_u.mutation.ResetCommentCount()
	_u.mutation.SetCommentCount(v)
	return _u
}

// SetNillableCommentCount sets the "comment_count" field if the given value is not nil.
func (_u *StoryUpdateOne) SetNillableCommentCount(v *int) *StoryUpdateOne {
	if v != nil {
		_u.SetCommentCount(*v)
	}
	return _u
}

// AddCommentCount adds value to the "comment_count" field.
func (_u *StoryUpdateOne) AddCommentCount(v int) *StoryUpdateOne {
	_u.mutation.AddCommentCount(v)
	return _u
}

// SetIsSummarized sets the "is_summarized" field.
func (_u *StoryUpdateOne) SetIsSummarized(v bool) *StoryUpdateOne {
	_u.mutation.SetIsSummarized(v)
	return _u
}

// SetNillableIsSummarized sets the "is_summarized" field if the given value is not nil.
func (_u *StoryUpdateOne) SetNillableIsSummarized(v *bool) *StoryUpdateOne {
	if v != nil {
		_u.SetIsSummarized(*v)
	}
	return _u
}

// SetIsTagged sets the "is_tagged" field.
func (_u *StoryUpdateOne) SetIsTagged(v bool) *StoryUpdateOne {
	_u.mutation.SetIsTagged(v)
	return _u
}

// SetNillableIsTagged sets the "is_tagged" field if the given value is not nil.
func (_u *StoryUpdateOne) SetNillableIsTagged(v *bool) *StoryUpdateOne {
	if v != nil {
		_u.SetIsTagged(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StoryUpdateOne) SetUpdatedAt(v time.Time) *StoryUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSummaryID sets the "summary" edge to the Summary entity by ID.
func (_u *StoryUpdateOne) SetSummaryID(id int) *StoryUpdateOne {
	_u.mutation.SetSummaryID(id)
	return _u
}

// SetNillableSummaryID sets the "summary" edge to the Summary entity by ID if the given value is not nil.
func (_u *StoryUpdateOne) SetNillableSummaryID(id *int) *StoryUpdateOne {
	if id != nil {
		_u = _u.SetSummaryID(*id)
	}
	return _u
}

// SetSummary sets the "summary" edge to the Summary entity.
func (_u *StoryUpdateOne) SetSummary(v *Summary) *StoryUpdateOne {
	return _u.SetSummaryID(v.ID)
}

// AddTagIDs adds the "tags" edge to the Tag entity by IDs.
func (_u *StoryUpdateOne) AddTagIDs(ids ...int) *StoryUpdateOne {
	_u.mutation.AddTagIDs(ids...)
	return _u
}

// AddTags adds the "tags" edges to the Tag entity.
func (_u *StoryUpdateOne) AddTags(v ...*Tag) *StoryUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTagIDs(ids...)
}

// Mutation returns the StoryMutation object of the builder.
func (_u *StoryUpdateOne) Mutation() *StoryMutation {
	return _u.mutation
}

// ClearSummary clears the "summary" edge to the Summary entity.
func (_u *StoryUpdateOne) ClearSummary() *StoryUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// ClearTags clears all "tags" edges to the Tag entity.
func (_u *StoryUpdateOne) ClearTags() *StoryUpdateOne {
	_u.mutation.ClearTags()
	return _u
}

// RemoveTagIDs removes the "tags" edge to Tag entities by IDs.
func (_u *StoryUpdateOne) RemoveTagIDs(ids ...int) *StoryUpdateOne {
	_u.mutation.RemoveTagIDs(ids...)
	return _u
}

// RemoveTags removes "tags" edges to Tag entities.
func (_u *StoryUpdateOne) RemoveTags(v ...*Tag) *StoryUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTagIDs(ids...)
}

// Where appends a list predicates to the StoryUpdate builder.
func (_u *StoryUpdateOne) Where(ps ...predicate.Story) *StoryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StoryUpdateOne) Select(field string, fields ...string) *StoryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Story entity.
func (_u *StoryUpdateOne) Save(ctx context.Context) (*Story, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StoryUpdateOne) SaveX(ctx context.Context) *Story {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StoryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StoryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StoryUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := story.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StoryUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := story.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Story.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.URL(); ok {
		if err := story.URLValidator(v); err != nil {
			return &ValidationError{Name: "url", err: fmt.Errorf(`ent: validator failed for field "Story.url": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Author(); ok {
		if err := story.AuthorValidator(v); err != nil {
			return &ValidationError{Name: "author", err: fmt.Errorf(`ent: validator failed for field "Story.author": %w`, err)}
		}
	}
	return nil
}

func (_u *StoryUpdateOne) sqlSave(ctx context.Context) (_node *Story, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(story.Table, story.Columns, sqlgraph.NewFieldSpec(story.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Story.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, story.FieldID)
		for _, f := range fields {
			if !story.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != story.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(story.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(story.FieldURL, field.TypeString, value)
	}
	if _u.mutation.URLCleared() {
		_spec.ClearField(story.FieldURL, field.TypeString)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(story.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(story.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Author(); ok {
		_spec.SetField(story.FieldAuthor, field.TypeString, value)
	}
	if value, ok := _u.mutation.CommentCount(); ok {
		_spec.SetField(story.FieldCommentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCommentCount(); ok {
		_spec.AddField(story.FieldCommentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsSummarized(); ok {
		_spec.SetField(story.FieldIsSummarized, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsTagged(); ok {
		_spec.SetField(story.FieldIsTagged, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(story.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SummaryCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SummaryIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TagsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTagsIDs(); len(nodes) > 0 && !_u.mutation.TagsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TagsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Story{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{story.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
