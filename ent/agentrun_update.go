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
	"github.com/hnscribe/hnscribe/ent/agentrun"
	"github.com/hnscribe/hnscribe/ent/predicate"
	"github.com/hnscribe/hnscribe/ent/tagproposal"
)

// AgentRunUpdate is the builder for updating AgentRun entities.
type AgentRunUpdate struct {
	config
	hooks    []Hook
	mutation *AgentRunMutation
}

// Where appends a list predicates to the AgentRunUpdate builder.
func (_u *AgentRunUpdate) Where(ps ...predicate.AgentRun) *AgentRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentRunUpdate) SetStatus(v agentrun.Status) *AgentRunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableStatus(v *agentrun.Status) *AgentRunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AgentRunUpdate) SetCompletedAt(v time.Time) *AgentRunUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableCompletedAt(v *time.Time) *AgentRunUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AgentRunUpdate) ClearCompletedAt() *AgentRunUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AgentRunUpdate) SetErrorMessage(v string) *AgentRunUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AgentRunUpdate) SetNillableErrorMessage(v *string) *AgentRunUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AgentRunUpdate) ClearErrorMessage() *AgentRunUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetResultData sets the "result_data" field.
func (_u *AgentRunUpdate) SetResultData(v map[string]interface{}) *AgentRunUpdate {
	_u.mutation.SetResultData(v)
	return _u
}

// ClearResultData clears the value of the "result_data" field.
func (_u *AgentRunUpdate) ClearResultData() *AgentRunUpdate {
	_u.mutation.ClearResultData()
	return _u
}

// AddProposalIDs adds the "proposals" edge to the TagProposal entity by IDs.
func (_u *AgentRunUpdate) AddProposalIDs(ids ...string) *AgentRunUpdate {
	_u.mutation.AddProposalIDs(ids...)
	return _u
}

// AddProposals adds the "proposals" edges to the TagProposal entity.
func (_u *AgentRunUpdate) AddProposals(v ...*TagProposal) *AgentRunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddProposalIDs(ids...)
}

// Mutation returns the AgentRunMutation object of the builder.
func (_u *AgentRunUpdate) Mutation() *AgentRunMutation {
	return _u.mutation
}

// ClearProposals clears all "proposals" edges to the TagProposal entity.
func (_u *AgentRunUpdate) ClearProposals() *AgentRunUpdate {
	_u.mutation.ClearProposals()
	return _u
}

// RemoveProposalIDs removes the "proposals" edge to TagProposal entities by IDs.
func (_u *AgentRunUpdate) RemoveProposalIDs(ids ...string) *AgentRunUpdate {
	_u.mutation.RemoveProposalIDs(ids...)
	return _u
}

// RemoveProposals removes "proposals" edges to TagProposal entities.
func (_u *AgentRunUpdate) RemoveProposals(v ...*TagProposal) *AgentRunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveProposalIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentRunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentRunUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agentrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AgentRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentrun.Table, agentrun.Columns, sqlgraph.NewFieldSpec(agentrun.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agentrun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(agentrun.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(agentrun.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(agentrun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(agentrun.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ResultData(); ok {
		_spec.SetField(agentrun.FieldResultData, field.TypeJSON, value)
	}
	if _u.mutation.ResultDataCleared() {
		_spec.ClearField(agentrun.FieldResultData, field.TypeJSON)
	}
	if _u.mutation.ProposalsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentrun.ProposalsTable,
			Columns: []string{agentrun.ProposalsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tagproposal.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedProposalsIDs(); len(nodes) > 0 && !_u.mutation.ProposalsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentrun.ProposalsTable,
			Columns: []string{agentrun.ProposalsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tagproposal.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProposalsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentrun.ProposalsTable,
			Columns: []string{agentrun.ProposalsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tagproposal.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentRunUpdateOne is the builder for updating a single AgentRun entity.
type AgentRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentRunMutation
}

// SetStatus sets the "status" field.
func (_u *AgentRunUpdateOne) SetStatus(v agentrun.Status) *AgentRunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableStatus(v *agentrun.Status) *AgentRunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AgentRunUpdateOne) SetCompletedAt(v time.Time) *AgentRunUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableCompletedAt(v *time.Time) *AgentRunUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AgentRunUpdateOne) ClearCompletedAt() *AgentRunUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AgentRunUpdateOne) SetErrorMessage(v string) *AgentRunUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AgentRunUpdateOne) SetNillableErrorMessage(v *string) *AgentRunUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AgentRunUpdateOne) ClearErrorMessage() *AgentRunUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetResultData sets the "result_data" field.
func (_u *AgentRunUpdateOne) SetResultData(v map[string]interface{}) *AgentRunUpdateOne {
	_u.mutation.SetResultData(v)
	return _u
}

// ClearResultData clears the value of the "result_data" field.
func (_u *AgentRunUpdateOne) ClearResultData() *AgentRunUpdateOne {
	_u.mutation.ClearResultData()
	return _u
}

// AddProposalIDs adds the "proposals" edge to the TagProposal entity by IDs.
func (_u *AgentRunUpdateOne) AddProposalIDs(ids ...string) *AgentRunUpdateOne {
	_u.mutation.AddProposalIDs(ids...)
	return _u
}

// AddProposals adds the "proposals" edges to the TagProposal entity.
func (_u *AgentRunUpdateOne) AddProposals(v ...*TagProposal) *AgentRunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddProposalIDs(ids...)
}

// Mutation returns the AgentRunMutation object of the builder.
func (_u *AgentRunUpdateOne) Mutation() *AgentRunMutation {
	return _u.mutation
}

// ClearProposals clears all "proposals" edges to the TagProposal entity.
func (_u *AgentRunUpdateOne) ClearProposals() *AgentRunUpdateOne {
	_u.mutation.ClearProposals()
	return _u
}

// RemoveProposalIDs removes the "proposals" edge to TagProposal entities by IDs.
func (_u *AgentRunUpdateOne) RemoveProposalIDs(ids ...string) *AgentRunUpdateOne {
	_u.mutation.RemoveProposalIDs(ids...)
	return _u
}

// RemoveProposals removes "proposals" edges to TagProposal entities.
func (_u *AgentRunUpdateOne) RemoveProposals(v ...*TagProposal) *AgentRunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveProposalIDs(ids...)
}

// Where appends a list predicates to the AgentRunUpdate builder.
func (_u *AgentRunUpdateOne) Where(ps ...predicate.AgentRun) *AgentRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentRunUpdateOne) Select(field string, fields ...string) *AgentRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentRun entity.
func (_u *AgentRunUpdateOne) Save(ctx context.Context) (*AgentRun, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentRunUpdateOne) SaveX(ctx context.Context) *AgentRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentRunUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agentrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AgentRunUpdateOne) sqlSave(ctx context.Context) (_node *AgentRun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentrun.Table, agentrun.Columns, sqlgraph.NewFieldSpec(agentrun.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentrun.FieldID)
		for _, f := range fields {
			if !agentrun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentrun.FieldID {
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
		_spec.SetField(agentrun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(agentrun.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(agentrun.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(agentrun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(agentrun.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ResultData(); ok {
		_spec.SetField(agentrun.FieldResultData, field.TypeJSON, value)
	}
	if _u.mutation.ResultDataCleared() {
		_spec.ClearField(agentrun.FieldResultData, field.TypeJSON)
	}
	if _u.mutation.ProposalsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentrun.ProposalsTable,
			Columns: []string{agentrun.ProposalsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tagproposal.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedProposalsIDs(); len(nodes) > 0 && !_u.mutation.ProposalsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentrun.ProposalsTable,
			Columns: []string{agentrun.ProposalsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tagproposal.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProposalsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agentrun.ProposalsTable,
			Columns: []string{agentrun.ProposalsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tagproposal.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AgentRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
