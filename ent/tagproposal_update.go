// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/hnscribe/hnscribe/ent/predicate"
	"github.com/hnscribe/hnscribe/ent/tagproposal"
)

// TagProposalUpdate is the builder for updating TagProposal entities.
type TagProposalUpdate struct {
	config
	hooks    []Hook
	mutation *TagProposalMutation
}

// Where appends a list predicates to the TagProposalUpdate builder.
func (_u *TagProposalUpdate) Where(ps ...predicate.TagProposal) *TagProposalUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *TagProposalUpdate) SetStatus(v tagproposal.Status) *TagProposalUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TagProposalUpdate) SetNillableStatus(v *tagproposal.Status) *TagProposalUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *TagProposalUpdate) SetPriority(v tagproposal.Priority) *TagProposalUpdate {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *TagProposalUpdate) SetNillablePriority(v *tagproposal.Priority) *TagProposalUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *TagProposalUpdate) SetReason(v string) *TagProposalUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *TagProposalUpdate) SetNillableReason(v *string) *TagProposalUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *TagProposalUpdate) SetData(v json.RawMessage) *TagProposalUpdate {
	_u.mutation.SetData(v)
	return _u
}

// AppendData appends value to the "data" field.
func (_u *TagProposalUpdate) AppendData(v json.RawMessage) *TagProposalUpdate {
	_u.mutation.AppendData(v)
	return _u
}

// SetAffectedStoriesCount sets the "affected_stories_count" field.
func (_u *TagProposalUpdate) SetAffectedStoriesCount(v int) *TagProposalUpdate {
	_u.mutation.ResetAffectedStoriesCount()
	_u.mutation.SetAffectedStoriesCount(v)
	return _u
}

// SetNillableAffectedStoriesCount sets the "affected_stories_count" field if the given value is not nil.
func (_u *TagProposalUpdate) SetNillableAffectedStoriesCount(v *int) *TagProposalUpdate {
	if v != nil {
		_u.SetAffectedStoriesCount(*v)
	}
	return _u
}

// AddAffectedStoriesCount adds value to the "affected_stories_count" field.
func (_u *TagProposalUpdate) AddAffectedStoriesCount(v int) *TagProposalUpdate {
	_u.mutation.AddAffectedStoriesCount(v)
	return _u
}

// SetReviewedAt sets the "reviewed_at" field.
func (_u *TagProposalUpdate) SetReviewedAt(v time.Time) *TagProposalUpdate {
	_u.mutation.SetReviewedAt(v)
	return _u
}

// SetNillableReviewedAt sets the "reviewed_at" field if the given value is not nil.
func (_u *TagProposalUpdate) SetNillableReviewedAt(v *time.Time) *TagProposalUpdate {
	if v != nil {
		_u.SetReviewedAt(*v)
	}
	return _u
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (_u *TagProposalUpdate) ClearReviewedAt() *TagProposalUpdate {
	_u.mutation.ClearReviewedAt()
	return _u
}

// SetReviewedBy sets the "reviewed_by" field.
func (_u *TagProposalUpdate) SetReviewedBy(v string) *TagProposalUpdate {
	_u.mutation.SetReviewedBy(v)
	return _u
}

// SetNillableReviewedBy sets the "reviewed_by" field if the given value is not nil.
func (_u *TagProposalUpdate) SetNillableReviewedBy(v *string) *TagProposalUpdate {
	if v != nil {
		_u.SetReviewedBy(*v)
	}
	return _u
}

// ClearReviewedBy clears the value of the "reviewed_by" field.
func (_u *TagProposalUpdate) ClearReviewedBy() *TagProposalUpdate {
	_u.mutation.ClearReviewedBy()
	return _u
}

// SetExecutedAt sets the "executed_at" field.
func (_u *TagProposalUpdate) SetExecutedAt(v time.Time) *TagProposalUpdate {
	_u.mutation.SetExecutedAt(v)
	return _u
}

// SetNillableExecutedAt sets the "executed_at" field if the given value is not nil.
func (_u *TagProposalUpdate) SetNillableExecutedAt(v *time.Time) *TagProposalUpdate {
	if v != nil {
		_u.SetExecutedAt(*v)
	}
	return _u
}

// ClearExecutedAt clears the value of the "executed_at" field.
func (_u *TagProposalUpdate) ClearExecutedAt() *TagProposalUpdate {
	_u.mutation.ClearExecutedAt()
	return _u
}

// Mutation returns the TagProposalMutation object of the builder.
func (_u *TagProposalUpdate) Mutation() *TagProposalMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TagProposalUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TagProposalUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TagProposalUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TagProposalUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TagProposalUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := tagproposal.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TagProposal.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := tagproposal.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "TagProposal.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReviewedBy(); ok {
		if err := tagproposal.ReviewedByValidator(v); err != nil {
			return &ValidationError{Name: "reviewed_by", err: fmt.Errorf(`ent: validator failed for field "TagProposal.reviewed_by": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TagProposal.run"`)
	}
	return nil
}

func (_u *TagProposalUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tagproposal.Table, tagproposal.Columns, sqlgraph.NewFieldSpec(tagproposal.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(tagproposal.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(tagproposal.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(tagproposal.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(tagproposal.FieldData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedData(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, tagproposal.FieldData, value)
		})
	}
	if value, ok := _u.mutation.AffectedStoriesCount(); ok {
		_spec.SetField(tagproposal.FieldAffectedStoriesCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAffectedStoriesCount(); ok {
		_spec.AddField(tagproposal.FieldAffectedStoriesCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReviewedAt(); ok {
		_spec.SetField(tagproposal.FieldReviewedAt, field.TypeTime, value)
	}
	if _u.mutation.ReviewedAtCleared() {
		_spec.ClearField(tagproposal.FieldReviewedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ReviewedBy(); ok {
		_spec.SetField(tagproposal.FieldReviewedBy, field.TypeString, value)
	}
	if _u.mutation.ReviewedByCleared() {
		_spec.ClearField(tagproposal.FieldReviewedBy, field.TypeString)
	}
	if value, ok := _u.mutation.ExecutedAt(); ok {
		_spec.SetField(tagproposal.FieldExecutedAt, field.TypeTime, value)
	}
	if _u.mutation.ExecutedAtCleared() {
		_spec.ClearField(tagproposal.FieldExecutedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tagproposal.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TagProposalUpdateOne is the builder for updating a single TagProposal entity.
type TagProposalUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TagProposalMutation
}

// SetStatus sets the "status" field.
func (_u *TagProposalUpdateOne) SetStatus(v tagproposal.Status) *TagProposalUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TagProposalUpdateOne) SetNillableStatus(v *tagproposal.Status) *TagProposalUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *TagProposalUpdateOne) SetPriority(v tagproposal.Priority) *TagProposalUpdateOne {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *TagProposalUpdateOne) SetNillablePriority(v *tagproposal.Priority) *TagProposalUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *TagProposalUpdateOne) SetReason(v string) *TagProposalUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *TagProposalUpdateOne) SetNillableReason(v *string) *TagProposalUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *TagProposalUpdateOne) SetData(v json.RawMessage) *TagProposalUpdateOne {
	_u.mutation.SetData(v)
	return _u
}

// AppendData appends value to the "data" field.
func (_u *TagProposalUpdateOne) AppendData(v json.RawMessage) *TagProposalUpdateOne {
	_u.mutation.AppendData(v)
	return _u
}

// SetAffectedStoriesCount sets the "affected_stories_count" field.
func (_u *TagProposalUpdateOne) SetAffectedStoriesCount(v int) *TagProposalUpdateOne {
	_u.mutation.ResetAffectedStoriesCount()
	_u.mutation.SetAffectedStoriesCount(v)
	return _u
}

// SetNillableAffectedStoriesCount sets the "affected_stories_count" field if the given value is not nil.
func (_u *TagProposalUpdateOne) SetNillableAffectedStoriesCount(v *int) *TagProposalUpdateOne {
	if v != nil {
		_u.SetAffectedStoriesCount(*v)
	}
	return _u
}

// AddAffectedStoriesCount adds value to the "affected_stories_count" field.
func (_u *TagProposalUpdateOne) AddAffectedStoriesCount(v int) *TagProposalUpdateOne {
	_u.mutation.AddAffectedStoriesCount(v)
	return _u
}

// SetReviewedAt sets the "reviewed_at" field.
func (_u *TagProposalUpdateOne) SetReviewedAt(v time.Time) *TagProposalUpdateOne {
	_u.mutation.SetReviewedAt(v)
	return _u
}

// SetNillableReviewedAt sets the "reviewed_at" field if the given value is not nil.
func (_u *TagProposalUpdateOne) SetNillableReviewedAt(v *time.Time) *TagProposalUpdateOne {
	if v != nil {
		_u.SetReviewedAt(*v)
	}
	return _u
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (_u *TagProposalUpdateOne) ClearReviewedAt() *TagProposalUpdateOne {
	_u.mutation.ClearReviewedAt()
	return _u
}

// SetReviewedBy sets the "reviewed_by" field.
func (_u *TagProposalUpdateOne) SetReviewedBy(v string) *TagProposalUpdateOne {
	_u.mutation.SetReviewedBy(v)
	return _u
}

// SetNillableReviewedBy sets the "reviewed_by" field if the given value is not nil.
func (_u *TagProposalUpdateOne) SetNillableReviewedBy(v *string) *TagProposalUpdateOne {
	if v != nil {
		_u.SetReviewedBy(*v)
	}
	return _u
}

// ClearReviewedBy clears the value of the "reviewed_by" field.
func (_u *TagProposalUpdateOne) ClearReviewedBy() *TagProposalUpdateOne {
	_u.mutation.ClearReviewedBy()
	return _u
}

// SetExecutedAt sets the "executed_at" field.
func (_u *TagProposalUpdateOne) SetExecutedAt(v time.Time) *TagProposalUpdateOne {
	_u.mutation.SetExecutedAt(v)
	return _u
}

// SetNillableExecutedAt sets the "executed_at" field if the given value is not nil.
func (_u *TagProposalUpdateOne) SetNillableExecutedAt(v *time.Time) *TagProposalUpdateOne {
	if v != nil {
		_u.SetExecutedAt(*v)
	}
	return _u
}

// ClearExecutedAt clears the value of the "executed_at" field.
func (_u *TagProposalUpdateOne) ClearExecutedAt() *TagProposalUpdateOne {
	_u.mutation.ClearExecutedAt()
	return _u
}

// Mutation returns the TagProposalMutation object of the builder.
func (_u *TagProposalUpdateOne) Mutation() *TagProposalMutation {
	return _u.mutation
}

// Where appends a list predicates to the TagProposalUpdate builder.
func (_u *TagProposalUpdateOne) Where(ps ...predicate.TagProposal) *TagProposalUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TagProposalUpdateOne) Select(field string, fields ...string) *TagProposalUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TagProposal entity.
func (_u *TagProposalUpdateOne) Save(ctx context.Context) (*TagProposal, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TagProposalUpdateOne) SaveX(ctx context.Context) *TagProposal {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TagProposalUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TagProposalUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TagProposalUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := tagproposal.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TagProposal.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := tagproposal.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "TagProposal.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReviewedBy(); ok {
		if err := tagproposal.ReviewedByValidator(v); err != nil {
			return &ValidationError{Name: "reviewed_by", err: fmt.Errorf(`ent: validator failed for field "TagProposal.reviewed_by": %w`, err)}
		}
	}
	if _u.mutation.RunCleared() && len(_u.mutation.RunIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TagProposal.run"`)
	}
	return nil
}

func (_u *TagProposalUpdateOne) sqlSave(ctx context.Context) (_node *TagProposal, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tagproposal.Table, tagproposal.Columns, sqlgraph.NewFieldSpec(tagproposal.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TagProposal.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tagproposal.FieldID)
		for _, f := range fields {
			if !tagproposal.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != tagproposal.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(tagproposal.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(tagproposal.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(tagproposal.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(tagproposal.FieldData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedData(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, tagproposal.FieldData, value)
		})
	}
	if value, ok := _u.mutation.AffectedStoriesCount(); ok {
		_spec.SetField(tagproposal.FieldAffectedStoriesCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAffectedStoriesCount(); ok {
		_spec.AddField(tagproposal.FieldAffectedStoriesCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReviewedAt(); ok {
		_spec.SetField(tagproposal.FieldReviewedAt, field.TypeTime, value)
	}
	if _u.mutation.ReviewedAtCleared() {
		_spec.ClearField(tagproposal.FieldReviewedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ReviewedBy(); ok {
		_spec.SetField(tagproposal.FieldReviewedBy, field.TypeString, value)
	}
	if _u.mutation.ReviewedByCleared() {
		_spec.ClearField(tagproposal.FieldReviewedBy, field.TypeString)
	}
	if value, ok := _u.mutation.ExecutedAt(); ok {
		_spec.SetField(tagproposal.FieldExecutedAt, field.TypeTime, value)
	}
	if _u.mutation.ExecutedAtCleared() {
		_spec.ClearField(tagproposal.FieldExecutedAt, field.TypeTime)
	}
	_node = &TagProposal{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tagproposal.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
