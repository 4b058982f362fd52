// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hnscribe/hnscribe/ent/agentrun"
	"github.com/hnscribe/hnscribe/ent/tagproposal"
)

// TagProposalCreate is the builder for creating a TagProposal entity.
type TagProposalCreate struct {
	config
	mutation *TagProposalMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetAgentRunID sets the "agent_run_id" field.
func (_c *TagProposalCreate) SetAgentRunID(v string) *TagProposalCreate {
	_c.mutation.SetAgentRunID(v)
	return _c
}

// SetProposalType sets the "proposal_type" field.
func (_c *TagProposalCreate) SetProposalType(v tagproposal.ProposalType) *TagProposalCreate {
	_c.mutation.SetProposalType(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *TagProposalCreate) SetStatus(v tagproposal.Status) *TagProposalCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TagProposalCreate) SetNillableStatus(v *tagproposal.Status) *TagProposalCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *TagProposalCreate) SetPriority(v tagproposal.Priority) *TagProposalCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *TagProposalCreate) SetNillablePriority(v *tagproposal.Priority) *TagProposalCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetReason sets the "reason" field.
func (_c *TagProposalCreate) SetReason(v string) *TagProposalCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetData sets the "data" field.
func (_c *TagProposalCreate) SetData(v json.RawMessage) *TagProposalCreate {
	_c.mutation.SetData(v)
	return _c
}

// SetAffectedStoriesCount sets the "affected_stories_count" field.
func (_c *TagProposalCreate) SetAffectedStoriesCount(v int) *TagProposalCreate {
	_c.mutation.SetAffectedStoriesCount(v)
	return _c
}

// SetNillableAffectedStoriesCount sets the "affected_stories_count" field if the given value is not nil.
func (_c *TagProposalCreate) SetNillableAffectedStoriesCount(v *int) *TagProposalCreate {
	if v != nil {
		_c.SetAffectedStoriesCount(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TagProposalCreate) SetCreatedAt(v time.Time) *TagProposalCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TagProposalCreate) SetNillableCreatedAt(v *time.Time) *TagProposalCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetReviewedAt sets the "reviewed_at" field.
func (_c *TagProposalCreate) SetReviewedAt(v time.Time) *TagProposalCreate {
	_c.mutation.SetReviewedAt(v)
	return _c
}

// SetNillableReviewedAt sets the "reviewed_at" field if the given value is not nil.
func (_c *TagProposalCreate) SetNillableReviewedAt(v *time.Time) *TagProposalCreate {
	if v != nil {
		_c.SetReviewedAt(*v)
	}
	return _c
}

// SetReviewedBy sets the "reviewed_by" field.
func (_c *TagProposalCreate) SetReviewedBy(v string) *TagProposalCreate {
	_c.mutation.SetReviewedBy(v)
	return _c
}

// SetNillableReviewedBy sets the "reviewed_by" field if the given value is not nil.
func (_c *TagProposalCreate) SetNillableReviewedBy(v *string) *TagProposalCreate {
	if v != nil {
		_c.SetReviewedBy(*v)
	}
	return _c
}

// SetExecutedAt sets the "executed_at" field.
func (_c *TagProposalCreate) SetExecutedAt(v time.Time) *TagProposalCreate {
	_c.mutation.SetExecutedAt(v)
	return _c
}

// SetNillableExecutedAt sets the "executed_at" field if the given value is not nil.
func (_c *TagProposalCreate) SetNillableExecutedAt(v *time.Time) *TagProposalCreate {
	if v != nil {
		_c.SetExecutedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TagProposalCreate) SetID(v string) *TagProposalCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRunID sets the "run" edge to the AgentRun entity by ID.
func (_c *TagProposalCreate) SetRunID(id string) *TagProposalCreate {
	_c.mutation.SetRunID(id)
	return _c
}

// SetRun sets the "run" edge to the AgentRun entity.
func (_c *TagProposalCreate) SetRun(v *AgentRun) *TagProposalCreate {
	return _c.SetRunID(v.ID)
}

// Mutation returns the TagProposalMutation object of the builder.
func (_c *TagProposalCreate) Mutation() *TagProposalMutation {
	return _c.mutation
}

// Save creates the TagProposal in the database.
func (_c *TagProposalCreate) Save(ctx context.Context) (*TagProposal, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TagProposalCreate) SaveX(ctx context.Context) *TagProposal {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TagProposalCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TagProposalCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TagProposalCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := tagproposal.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Priority(); !ok {
		v := tagproposal.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.AffectedStoriesCount(); !ok {
		v := tagproposal.DefaultAffectedStoriesCount
		_c.mutation.SetAffectedStoriesCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := tagproposal.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TagProposalCreate) check() error {
	if _, ok := _c.mutation.AgentRunID(); !ok {
		return &ValidationError{Name: "agent_run_id", err: errors.New(`ent: missing required field "TagProposal.agent_run_id"`)}
	}
	if _, ok := _c.mutation.ProposalType(); !ok {
		return &ValidationError{Name: "proposal_type", err: errors.New(`ent: missing required field "TagProposal.proposal_type"`)}
	}
	if v, ok := _c.mutation.ProposalType(); ok {
		if err := tagproposal.ProposalTypeValidator(v); err != nil {
			return &ValidationError{Name: "proposal_type", err: fmt.Errorf(`ent: validator failed for field "TagProposal.proposal_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "TagProposal.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := tagproposal.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TagProposal.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "TagProposal.priority"`)}
	}
	if v, ok := _c.mutation.Priority(); ok {
		if err := tagproposal.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "TagProposal.priority": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Reason(); !ok {
		return &ValidationError{Name: "reason", err: errors.New(`ent: missing required field "TagProposal.reason"`)}
	}
	if _, ok := _c.mutation.Data(); !ok {
		return &ValidationError{Name: "data", err: errors.New(`ent: missing required field "TagProposal.data"`)}
	}
	if _, ok := _c.mutation.AffectedStoriesCount(); !ok {
		return &ValidationError{Name: "affected_stories_count", err: errors.New(`ent: missing required field "TagProposal.affected_stories_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TagProposal.created_at"`)}
	}
	if v, ok := _c.mutation.ReviewedBy(); ok {
		if err := tagproposal.ReviewedByValidator(v); err != nil {
			return &ValidationError{Name: "reviewed_by", err: fmt.Errorf(`ent: validator failed for field "TagProposal.reviewed_by": %w`, err)}
		}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "TagProposal.run"`)}
	}
	return nil
}

func (_c *TagProposalCreate) sqlSave(ctx context.Context) (*TagProposal, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected TagProposal.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TagProposalCreate) createSpec() (*TagProposal, *sqlgraph.CreateSpec) {
	var (
		_node = &TagProposal{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(tagproposal.Table, sqlgraph.NewFieldSpec(tagproposal.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ProposalType(); ok {
		_spec.SetField(tagproposal.FieldProposalType, field.TypeEnum, value)
		_node.ProposalType = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(tagproposal.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(tagproposal.FieldPriority, field.TypeEnum, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(tagproposal.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.Data(); ok {
		_spec.SetField(tagproposal.FieldData, field.TypeJSON, value)
		_node.Data = value
	}
	if value, ok := _c.mutation.AffectedStoriesCount(); ok {
		_spec.SetField(tagproposal.FieldAffectedStoriesCount, field.TypeInt, value)
		_node.AffectedStoriesCount = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(tagproposal.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ReviewedAt(); ok {
		_spec.SetField(tagproposal.FieldReviewedAt, field.TypeTime, value)
		_node.ReviewedAt = &value
	}
	if value, ok := _c.mutation.ReviewedBy(); ok {
		_spec.SetField(tagproposal.FieldReviewedBy, field.TypeString, value)
		_node.ReviewedBy = &value
	}
	if value, ok := _c.mutation.ExecutedAt(); ok {
		_spec.SetField(tagproposal.FieldExecutedAt, field.TypeTime, value)
		_node.ExecutedAt = &value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   tagproposal.RunTable,
			Columns: []string{tagproposal.RunColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentrun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.AgentRunID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TagProposal.Create().
//		SetAgentRunID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TagProposalUpsert) {
//			SetAgentRunID(v+v).
//		}).
//		Exec(ctx)
func (_c *TagProposalCreate) OnConflict(opts ...sql.ConflictOption) *TagProposalUpsertOne {
	_c.conflict = opts
	return &TagProposalUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TagProposal.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TagProposalCreate) OnConflictColumns(columns ...string) *TagProposalUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TagProposalUpsertOne{
		create: _c,
	}
}

type (
	// TagProposalUpsertOne is the builder for "upsert"-ing
	//  one TagProposal node.
	TagProposalUpsertOne struct {
		create *TagProposalCreate
	}

	// TagProposalUpsert is the "OnConflict" setter.
	TagProposalUpsert struct {
		*sql.UpdateSet
	}
)

// SetStatus sets the "status" field.
func (u *TagProposalUpsert) SetStatus(v tagproposal.Status) *TagProposalUpsert {
	u.Set(tagproposal.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TagProposalUpsert) UpdateStatus() *TagProposalUpsert {
	u.SetExcluded(tagproposal.FieldStatus)
	return u
}

// SetPriority sets the "priority" field.
func (u *TagProposalUpsert) SetPriority(v tagproposal.Priority) *TagProposalUpsert {
	u.Set(tagproposal.FieldPriority, v)
	return u
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *TagProposalUpsert) UpdatePriority() *TagProposalUpsert {
	u.SetExcluded(tagproposal.FieldPriority)
	return u
}

// SetReason sets the "reason" field.
func (u *TagProposalUpsert) SetReason(v string) *TagProposalUpsert {
	u.Set(tagproposal.FieldReason, v)
	return u
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *TagProposalUpsert) UpdateReason() *TagProposalUpsert {
	u.SetExcluded(tagproposal.FieldReason)
	return u
}

// SetData sets the "data" field.
func (u *TagProposalUpsert) SetData(v json.RawMessage) *TagProposalUpsert {
	u.Set(tagproposal.FieldData, v)
	return u
}

// UpdateData sets the "data" field to the value that was provided on create.
func (u *TagProposalUpsert) UpdateData() *TagProposalUpsert {
	u.SetExcluded(tagproposal.FieldData)
	return u
}

// SetAffectedStoriesCount sets the "affected_stories_count" field.
func (u *TagProposalUpsert) SetAffectedStoriesCount(v int) *TagProposalUpsert {
	u.Set(tagproposal.FieldAffectedStoriesCount, v)
	return u
}

// UpdateAffectedStoriesCount sets the "affected_stories_count" field to the value that was provided on create.
func (u *TagProposalUpsert) UpdateAffectedStoriesCount() *TagProposalUpsert {
	u.SetExcluded(tagproposal.FieldAffectedStoriesCount)
	return u
}

// AddAffectedStoriesCount adds v to the "affected_stories_count" field.
func (u *TagProposalUpsert) AddAffectedStoriesCount(v int) *TagProposalUpsert {
	u.Add(tagproposal.FieldAffectedStoriesCount, v)
	return u
}

// SetReviewedAt sets the "reviewed_at" field.
func (u *TagProposalUpsert) SetReviewedAt(v time.Time) *TagProposalUpsert {
	u.Set(tagproposal.FieldReviewedAt, v)
	return u
}

// UpdateReviewedAt sets the "reviewed_at" field to the value that was provided on create.
func (u *TagProposalUpsert) UpdateReviewedAt() *TagProposalUpsert {
	u.SetExcluded(tagproposal.FieldReviewedAt)
	return u
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (u *TagProposalUpsert) ClearReviewedAt() *TagProposalUpsert {
	u.SetNull(tagproposal.FieldReviewedAt)
	return u
}

// SetReviewedBy sets the "reviewed_by" field.
func (u *TagProposalUpsert) SetReviewedBy(v string) *TagProposalUpsert {
	u.Set(tagproposal.FieldReviewedBy, v)
	return u
}

// UpdateReviewedBy sets the "reviewed_by" field to the value that was provided on create.
func (u *TagProposalUpsert) UpdateReviewedBy() *TagProposalUpsert {
	u.SetExcluded(tagproposal.FieldReviewedBy)
	return u
}

// ClearReviewedBy clears the value of the "reviewed_by" field.
func (u *TagProposalUpsert) ClearReviewedBy() *TagProposalUpsert {
	u.SetNull(tagproposal.FieldReviewedBy)
	return u
}

// SetExecutedAt sets the "executed_at" field.
func (u *TagProposalUpsert) SetExecutedAt(v time.Time) *TagProposalUpsert {
	u.Set(tagproposal.FieldExecutedAt, v)
	return u
}

// UpdateExecutedAt sets the "executed_at" field to the value that was provided on create.
func (u *TagProposalUpsert) UpdateExecutedAt() *TagProposalUpsert {
	u.SetExcluded(tagproposal.FieldExecutedAt)
	return u
}

// ClearExecutedAt clears the value of the "executed_at" field.
func (u *TagProposalUpsert) ClearExecutedAt() *TagProposalUpsert {
	u.SetNull(tagproposal.FieldExecutedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.TagProposal.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(tagproposal.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TagProposalUpsertOne) UpdateNewValues() *TagProposalUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(tagproposal.FieldID)
		}
		if _, exists := u.create.mutation.AgentRunID(); exists {
			s.SetIgnore(tagproposal.FieldAgentRunID)
		}
		if _, exists := u.create.mutation.ProposalType(); exists {
			s.SetIgnore(tagproposal.FieldProposalType)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(tagproposal.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TagProposal.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TagProposalUpsertOne) Ignore() *TagProposalUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TagProposalUpsertOne) DoNothing() *TagProposalUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TagProposalCreate.OnConflict
// documentation for more info.
func (u *TagProposalUpsertOne) Update(set func(*TagProposalUpsert)) *TagProposalUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TagProposalUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *TagProposalUpsertOne) SetStatus(v tagproposal.Status) *TagProposalUpsertOne {
	return u.Update(func(s *TagProposalUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TagProposalUpsertOne) UpdateStatus() *TagProposalUpsertOne {
	return u.Update(func(s *TagProposalUpsert) {
		s.UpdateStatus()
	})
}

// SetPriority sets the "priority" field.
func (u *TagProposalUpsertOne) SetPriority(v tagproposal.Priority) *TagProposalUpsertOne {
	return u.Update(func(s *TagProposalUpsert) {
		s.SetPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *TagProposalUpsertOne) UpdatePriority() *TagProposalUpsertOne {
	return u.Update(func(s *TagProposalUpsert) {
		s.UpdatePriority()
	})
}

// SetReason sets the "reason" field.
func (u *TagProposalUpsertOne) SetReason(v string) *TagProposalUpsertOne {
	return u.Update(func(s *TagProposalUpsert) {
		s.SetReason(v)
	})
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *TagProposalUpsertOne) UpdateReason() *TagProposalUpsertOne {
	return u.Update(func(s *TagProposalUpsert) {
		s.UpdateReason()
	})
}

// SetData sets the "data" field.
func (u *TagProposalUpsertOne) SetData(v json.RawMessage) *TagProposalUpsertOne {
	return u.Update(func(s *TagProposalUpsert) {
		s.SetData(v)
	})
}

// UpdateData sets the "data" field to the value that was provided on create.
func (u *TagProposalUpsertOne) UpdateData() *TagProposalUpsertOne {
	return u.Update(func(s *TagProposalUpsert) {
		s.UpdateData()
	})
}

// SetAffectedStoriesCount sets the "affected_stories_count" field.
func (u *TagProposalUpsertOne) SetAffectedStoriesCount(v int) *TagProposalUpsertOne {
	return u.Update(func(s *TagProposalUpsert) {
		s.SetAffectedStoriesCount(v)
	})
}

// AddAffectedStoriesCount adds v to the "affected_stories_count" field.
func (u *TagProposalUpsertOne) AddAffectedStoriesCount(v int) *TagProposalUpsertOne {
	return u.Update(func(s *TagProposalUpsert) {
		s.AddAffectedStoriesCount(v)
	})
}

// UpdateAffectedStoriesCount sets the "affected_stories_count" field to the value that was provided on create.
func (u *TagProposalUpsertOne) UpdateAffectedStoriesCount() *TagProposalUpsertOne {
	return u.Update(func(s *TagProposalUpsert) {
		s.UpdateAffectedStoriesCount()
	})
}

// SetReviewedAt sets the "reviewed_at" field.
func (u *TagProposalUpsertOne) SetReviewedAt(v time.Time) *TagProposalUpsertOne {
	return u.Update(func(s *TagProposalUpsert) {
		s.SetReviewedAt(v)
	})
}

// UpdateReviewedAt sets the "reviewed_at" field to the value that was provided on create.
func (u *TagProposalUpsertOne) UpdateReviewedAt() *TagProposalUpsertOne {
	return u.Update(func(s *TagProposalUpsert) {
		s.UpdateReviewedAt()
	})
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (u *TagProposalUpsertOne) ClearReviewedAt() *TagProposalUpsertOne {
	return u.Update(func(s *TagProposalUpsert) {
		s.ClearReviewedAt()
	})
}

// SetReviewedBy sets the "reviewed_by" field.
func (u *TagProposalUpsertOne) SetReviewedBy(v string) *TagProposalUpsertOne {
	return u.Update(func(s *TagProposalUpsert) {
		s.SetReviewedBy(v)
	})
}

// UpdateReviewedBy sets the "reviewed_by" field to the value that was provided on create.
func (u *TagProposalUpsertOne) UpdateReviewedBy() *TagProposalUpsertOne {
	return u.Update(func(s *TagProposalUpsert) {
		s.UpdateReviewedBy()
	})
}

// ClearReviewedBy clears the value of the "reviewed_by" field.
func (u *TagProposalUpsertOne) ClearReviewedBy() *TagProposalUpsertOne {
	return u.Update(func(s *TagProposalUpsert) {
		s.ClearReviewedBy()
	})
}

// SetExecutedAt sets the "executed_at" field.
func (u *TagProposalUpsertOne) SetExecutedAt(v time.Time) *TagProposalUpsertOne {
	return u.Update(func(s *TagProposalUpsert) {
		s.SetExecutedAt(v)
	})
}

// UpdateExecutedAt sets the "executed_at" field to the value that was provided on create.
func (u *TagProposalUpsertOne) UpdateExecutedAt() *TagProposalUpsertOne {
	return u.Update(func(s *TagProposalUpsert) {
		s.UpdateExecutedAt()
	})
}

// ClearExecutedAt clears the value of the "executed_at" field.
func (u *TagProposalUpsertOne) ClearExecutedAt() *TagProposalUpsertOne {
	return u.Update(func(s *TagProposalUpsert) {
		s.ClearExecutedAt()
	})
}

// Exec executes the query.
func (u *TagProposalUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TagProposalCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TagProposalUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TagProposalUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: TagProposalUpsertOne.ID is not supported by MySQL driver. Use TagProposalUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TagProposalUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TagProposalCreateBulk is the builder for creating many TagProposal entities in bulk.
type TagProposalCreateBulk struct {
	config
	err      error
	builders []*TagProposalCreate
	conflict []sql.ConflictOption
}

// Save creates the TagProposal entities in the database.
func (_c *TagProposalCreateBulk) Save(ctx context.Context) ([]*TagProposal, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TagProposal, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TagProposalMutation)
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
func (_c *TagProposalCreateBulk) SaveX(ctx context.Context) []*TagProposal {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TagProposalCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TagProposalCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TagProposal.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TagProposalUpsert) {
//			SetAgentRunID(v+v).
//		}).
//		Exec(ctx)
func (_c *TagProposalCreateBulk) OnConflict(opts ...sql.ConflictOption) *TagProposalUpsertBulk {
	_c.conflict = opts
	return &TagProposalUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TagProposal.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TagProposalCreateBulk) OnConflictColumns(columns ...string) *TagProposalUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TagProposalUpsertBulk{
		create: _c,
	}
}

// TagProposalUpsertBulk is the builder for "upsert"-ing
// a bulk of TagProposal nodes.
type TagProposalUpsertBulk struct {
	create *TagProposalCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.TagProposal.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(tagproposal.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TagProposalUpsertBulk) UpdateNewValues() *TagProposalUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(tagproposal.FieldID)
			}
			if _, exists := b.mutation.AgentRunID(); exists {
				s.SetIgnore(tagproposal.FieldAgentRunID)
			}
			if _, exists := b.mutation.ProposalType(); exists {
				s.SetIgnore(tagproposal.FieldProposalType)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(tagproposal.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TagProposal.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TagProposalUpsertBulk) Ignore() *TagProposalUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TagProposalUpsertBulk) DoNothing() *TagProposalUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TagProposalCreateBulk.OnConflict
// documentation for more info.
func (u *TagProposalUpsertBulk) Update(set func(*TagProposalUpsert)) *TagProposalUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TagProposalUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *TagProposalUpsertBulk) SetStatus(v tagproposal.Status) *TagProposalUpsertBulk {
	return u.Update(func(s *TagProposalUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TagProposalUpsertBulk) UpdateStatus() *TagProposalUpsertBulk {
	return u.Update(func(s *TagProposalUpsert) {
		s.UpdateStatus()
	})
}

// SetPriority sets the "priority" field.
func (u *TagProposalUpsertBulk) SetPriority(v tagproposal.Priority) *TagProposalUpsertBulk {
	return u.Update(func(s *TagProposalUpsert) {
		s.SetPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *TagProposalUpsertBulk) UpdatePriority() *TagProposalUpsertBulk {
	return u.Update(func(s *TagProposalUpsert) {
		s.UpdatePriority()
	})
}

// SetReason sets the "reason" field.
func (u *TagProposalUpsertBulk) SetReason(v string) *TagProposalUpsertBulk {
	return u.Update(func(s *TagProposalUpsert) {
		s.SetReason(v)
	})
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *TagProposalUpsertBulk) UpdateReason() *TagProposalUpsertBulk {
	return u.Update(func(s *TagProposalUpsert) {
		s.UpdateReason()
	})
}

// SetData sets the "data" field.
func (u *TagProposalUpsertBulk) SetData(v json.RawMessage) *TagProposalUpsertBulk {
	return u.Update(func(s *TagProposalUpsert) {
		s.SetData(v)
	})
}

// UpdateData sets the "data" field to the value that was provided on create.
func (u *TagProposalUpsertBulk) UpdateData() *TagProposalUpsertBulk {
	return u.Update(func(s *TagProposalUpsert) {
		s.UpdateData()
	})
}

// SetAffectedStoriesCount sets the "affected_stories_count" field.
func (u *TagProposalUpsertBulk) SetAffectedStoriesCount(v int) *TagProposalUpsertBulk {
	return u.Update(func(s *TagProposalUpsert) {
		s.SetAffectedStoriesCount(v)
	})
}

// AddAffectedStoriesCount adds v to the "affected_stories_count" field.
func (u *TagProposalUpsertBulk) AddAffectedStoriesCount(v int) *TagProposalUpsertBulk {
	return u.Update(func(s *TagProposalUpsert) {
		s.AddAffectedStoriesCount(v)
	})
}

// UpdateAffectedStoriesCount sets the "affected_stories_count" field to the value that was provided on create.
func (u *TagProposalUpsertBulk) UpdateAffectedStoriesCount() *TagProposalUpsertBulk {
	return u.Update(func(s *TagProposalUpsert) {
		s.UpdateAffectedStoriesCount()
	})
}

// SetReviewedAt sets the "reviewed_at" field.
func (u *TagProposalUpsertBulk) SetReviewedAt(v time.Time) *TagProposalUpsertBulk {
	return u.Update(func(s *TagProposalUpsert) {
		s.SetReviewedAt(v)
	})
}

// UpdateReviewedAt sets the "reviewed_at" field to the value that was provided on create.
func (u *TagProposalUpsertBulk) UpdateReviewedAt() *TagProposalUpsertBulk {
	return u.Update(func(s *TagProposalUpsert) {
		s.UpdateReviewedAt()
	})
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (u *TagProposalUpsertBulk) ClearReviewedAt() *TagProposalUpsertBulk {
	return u.Update(func(s *TagProposalUpsert) {
		s.ClearReviewedAt()
	})
}

// SetReviewedBy sets the "reviewed_by" field.
func (u *TagProposalUpsertBulk) SetReviewedBy(v string) *TagProposalUpsertBulk {
	return u.Update(func(s *TagProposalUpsert) {
		s.SetReviewedBy(v)
	})
}

// UpdateReviewedBy sets the "reviewed_by" field to the value that was provided on create.
func (u *TagProposalUpsertBulk) UpdateReviewedBy() *TagProposalUpsertBulk {
	return u.Update(func(s *TagProposalUpsert) {
		s.UpdateReviewedBy()
	})
}

// ClearReviewedBy clears the value of the "reviewed_by" field.
func (u *TagProposalUpsertBulk) ClearReviewedBy() *TagProposalUpsertBulk {
	return u.Update(func(s *TagProposalUpsert) {
		s.ClearReviewedBy()
	})
}

// SetExecutedAt sets the "executed_at" field.
func (u *TagProposalUpsertBulk) SetExecutedAt(v time.Time) *TagProposalUpsertBulk {
	return u.Update(func(s *TagProposalUpsert) {
		s.SetExecutedAt(v)
	})
}

// UpdateExecutedAt sets the "executed_at" field to the value that was provided on create.
func (u *TagProposalUpsertBulk) UpdateExecutedAt() *TagProposalUpsertBulk {
	return u.Update(func(s *TagProposalUpsert) {
		s.UpdateExecutedAt()
	})
}

// ClearExecutedAt clears the value of the "executed_at" field.
func (u *TagProposalUpsertBulk) ClearExecutedAt() *TagProposalUpsertBulk {
	return u.Update(func(s *TagProposalUpsert) {
		s.ClearExecutedAt()
	})
}

// Exec executes the query.
func (u *TagProposalUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TagProposalCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TagProposalCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TagProposalUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
