// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
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

// AgentRunCreate is the builder for creating a AgentRun entity.
type AgentRunCreate struct {
	config
	mutation *AgentRunMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetRunType sets the "run_type" field.
func (_c *AgentRunCreate) SetRunType(v agentrun.RunType) *AgentRunCreate {
	_c.mutation.SetRunType(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *AgentRunCreate) SetStatus(v agentrun.Status) *AgentRunCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AgentRunCreate) SetNillableStatus(v *agentrun.Status) *AgentRunCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *AgentRunCreate) SetStartedAt(v time.Time) *AgentRunCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *AgentRunCreate) SetNillableStartedAt(v *time.Time) *AgentRunCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *AgentRunCreate) SetCompletedAt(v time.Time) *AgentRunCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *AgentRunCreate) SetNillableCompletedAt(v *time.Time) *AgentRunCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *AgentRunCreate) SetErrorMessage(v string) *AgentRunCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *AgentRunCreate) SetNillableErrorMessage(v *string) *AgentRunCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetResultData sets the "result_data" field.
func (_c *AgentRunCreate) SetResultData(v map[string]interface{}) *AgentRunCreate {
	_c.mutation.SetResultData(v)
	return _c
}

// SetID sets the "id" field.
func (_c *AgentRunCreate) SetID(v string) *AgentRunCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddProposalIDs adds the "proposals" edge to the TagProposal entity by IDs.
func (_c *AgentRunCreate) AddProposalIDs(ids ...string) *AgentRunCreate {
	_c.mutation.AddProposalIDs(ids...)
	return _c
}

// AddProposals adds the "proposals" edges to the TagProposal entity.
func (_c *AgentRunCreate) AddProposals(v ...*TagProposal) *AgentRunCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddProposalIDs(ids...)
}

// Mutation returns the AgentRunMutation object of the builder.
func (_c *AgentRunCreate) Mutation() *AgentRunMutation {
	return _c.mutation
}

// Save creates the AgentRun in the database.
func (_c *AgentRunCreate) Save(ctx context.Context) (*AgentRun, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentRunCreate) SaveX(ctx context.Context) *AgentRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentRunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentRunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentRunCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := agentrun.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := agentrun.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentRunCreate) check() error {
	if _, ok := _c.mutation.RunType(); !ok {
		return &ValidationError{Name: "run_type", err: errors.New(`ent: missing required field "AgentRun.run_type"`)}
	}
	if v, ok := _c.mutation.RunType(); ok {
		if err := agentrun.RunTypeValidator(v); err != nil {
			return &ValidationError{Name: "run_type", err: fmt.Errorf(`ent: validator failed for field "AgentRun.run_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "AgentRun.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := agentrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentRun.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "AgentRun.started_at"`)}
	}
	return nil
}

func (_c *AgentRunCreate) sqlSave(ctx context.Context) (*AgentRun, error) {
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
			return nil, fmt.Errorf("unexpected AgentRun.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentRunCreate) createSpec() (*AgentRun, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentRun{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentrun.Table, sqlgraph.NewFieldSpec(agentrun.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.RunType(); ok {
		_spec.SetField(agentrun.FieldRunType, field.TypeEnum, value)
		_node.RunType = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(agentrun.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(agentrun.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(agentrun.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(agentrun.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.ResultData(); ok {
		_spec.SetField(agentrun.FieldResultData, field.TypeJSON, value)
		_node.ResultData = value
	}
	if nodes := _c.mutation.ProposalsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AgentRun.Create().
//		SetRunType(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentRunUpsert) {
//			SetRunType(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentRunCreate) OnConflict(opts ...sql.ConflictOption) *AgentRunUpsertOne {
	_c.conflict = opts
	return &AgentRunUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AgentRun.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentRunCreate) OnConflictColumns(columns ...string) *AgentRunUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentRunUpsertOne{
		create: _c,
	}
}

type (
	// AgentRunUpsertOne is the builder for "upsert"-ing
	//  one AgentRun node.
	AgentRunUpsertOne struct {
		create *AgentRunCreate
	}

	// AgentRunUpsert is the "OnConflict" setter.
	AgentRunUpsert struct {
		*sql.UpdateSet
	}
)

// SetStatus sets the "status" field.
func (u *AgentRunUpsert) SetStatus(v agentrun.Status) *AgentRunUpsert {
	u.Set(agentrun.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AgentRunUpsert) UpdateStatus() *AgentRunUpsert {
	u.SetExcluded(agentrun.FieldStatus)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *AgentRunUpsert) SetCompletedAt(v time.Time) *AgentRunUpsert {
	u.Set(agentrun.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *AgentRunUpsert) UpdateCompletedAt() *AgentRunUpsert {
	u.SetExcluded(agentrun.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *AgentRunUpsert) ClearCompletedAt() *AgentRunUpsert {
	u.SetNull(agentrun.FieldCompletedAt)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *AgentRunUpsert) SetErrorMessage(v string) *AgentRunUpsert {
	u.Set(agentrun.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *AgentRunUpsert) UpdateErrorMessage() *AgentRunUpsert {
	u.SetExcluded(agentrun.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *AgentRunUpsert) ClearErrorMessage() *AgentRunUpsert {
	u.SetNull(agentrun.FieldErrorMessage)
	return u
}

// SetResultData sets the "result_data" field.
func (u *AgentRunUpsert) SetResultData(v map[string]interface{}) *AgentRunUpsert {
	u.Set(agentrun.FieldResultData, v)
	return u
}

// UpdateResultData sets the "result_data" field to the value that was provided on create.
func (u *AgentRunUpsert) UpdateResultData() *AgentRunUpsert {
	u.SetExcluded(agentrun.FieldResultData)
	return u
}

// ClearResultData clears the value of the "result_data" field.
func (u *AgentRunUpsert) ClearResultData() *AgentRunUpsert {
	u.SetNull(agentrun.FieldResultData)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.AgentRun.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(agentrun.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AgentRunUpsertOne) UpdateNewValues() *AgentRunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(agentrun.FieldID)
		}
		if _, exists := u.create.mutation.RunType(); exists {
			s.SetIgnore(agentrun.FieldRunType)
		}
		if _, exists := u.create.mutation.StartedAt(); exists {
			s.SetIgnore(agentrun.FieldStartedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AgentRun.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AgentRunUpsertOne) Ignore() *AgentRunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentRunUpsertOne) DoNothing() *AgentRunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentRunCreate.OnConflict
// documentation for more info.
func (u *AgentRunUpsertOne) Update(set func(*AgentRunUpsert)) *AgentRunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentRunUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *AgentRunUpsertOne) SetStatus(v agentrun.Status) *AgentRunUpsertOne {
	return u.Update(func(s *AgentRunUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AgentRunUpsertOne) UpdateStatus() *AgentRunUpsertOne {
	return u.Update(func(s *AgentRunUpsert) {
		s.UpdateStatus()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *AgentRunUpsertOne) SetCompletedAt(v time.Time) *AgentRunUpsertOne {
	return u.Update(func(s *AgentRunUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *AgentRunUpsertOne) UpdateCompletedAt() *AgentRunUpsertOne {
	return u.Update(func(s *AgentRunUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *AgentRunUpsertOne) ClearCompletedAt() *AgentRunUpsertOne {
	return u.Update(func(s *AgentRunUpsert) {
		s.ClearCompletedAt()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *AgentRunUpsertOne) SetErrorMessage(v string) *AgentRunUpsertOne {
	return u.Update(func(s *AgentRunUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *AgentRunUpsertOne) UpdateErrorMessage() *AgentRunUpsertOne {
	return u.Update(func(s *AgentRunUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *AgentRunUpsertOne) ClearErrorMessage() *AgentRunUpsertOne {
	return u.Update(func(s *AgentRunUpsert) {
		s.ClearErrorMessage()
	})
}

// SetResultData sets the "result_data" field.
func (u *AgentRunUpsertOne) SetResultData(v map[string]interface{}) *AgentRunUpsertOne {
	return u.Update(func(s *AgentRunUpsert) {
		s.SetResultData(v)
	})
}

// UpdateResultData sets the "result_data" field to the value that was provided on create.
func (u *AgentRunUpsertOne) UpdateResultData() *AgentRunUpsertOne {
	return u.Update(func(s *AgentRunUpsert) {
		s.UpdateResultData()
	})
}

// ClearResultData clears the value of the "result_data" field.
func (u *AgentRunUpsertOne) ClearResultData() *AgentRunUpsertOne {
	return u.Update(func(s *AgentRunUpsert) {
		s.ClearResultData()
	})
}

// Exec executes the query.
func (u *AgentRunUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentRunCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentRunUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AgentRunUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: AgentRunUpsertOne.ID is not supported by MySQL driver. Use AgentRunUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AgentRunUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AgentRunCreateBulk is the builder for creating many AgentRun entities in bulk.
type AgentRunCreateBulk struct {
	config
	err      error
	builders []*AgentRunCreate
	conflict []sql.ConflictOption
}

// Save creates the AgentRun entities in the database.
func (_c *AgentRunCreateBulk) Save(ctx context.Context) ([]*AgentRun, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentRun, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentRunMutation)
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
func (_c *AgentRunCreateBulk) SaveX(ctx context.Context) []*AgentRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentRunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentRunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AgentRun.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentRunUpsert) {
//			SetRunType(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentRunCreateBulk) OnConflict(opts ...sql.ConflictOption) *AgentRunUpsertBulk {
	_c.conflict = opts
	return &AgentRunUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AgentRun.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentRunCreateBulk) OnConflictColumns(columns ...string) *AgentRunUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentRunUpsertBulk{
		create: _c,
	}
}

// AgentRunUpsertBulk is the builder for "upsert"-ing
// a bulk of AgentRun nodes.
type AgentRunUpsertBulk struct {
	create *AgentRunCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AgentRun.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(agentrun.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AgentRunUpsertBulk) UpdateNewValues() *AgentRunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(agentrun.FieldID)
			}
			if _, exists := b.mutation.RunType(); exists {
				s.SetIgnore(agentrun.FieldRunType)
			}
			if _, exists := b.mutation.StartedAt(); exists {
				s.SetIgnore(agentrun.FieldStartedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AgentRun.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AgentRunUpsertBulk) Ignore() *AgentRunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentRunUpsertBulk) DoNothing() *AgentRunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentRunCreateBulk.OnConflict
// documentation for more info.
func (u *AgentRunUpsertBulk) Update(set func(*AgentRunUpsert)) *AgentRunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentRunUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *AgentRunUpsertBulk) SetStatus(v agentrun.Status) *AgentRunUpsertBulk {
	return u.Update(func(s *AgentRunUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AgentRunUpsertBulk) UpdateStatus() *AgentRunUpsertBulk {
	return u.Update(func(s *AgentRunUpsert) {
		s.UpdateStatus()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *AgentRunUpsertBulk) SetCompletedAt(v time.Time) *AgentRunUpsertBulk {
	return u.Update(func(s *AgentRunUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *AgentRunUpsertBulk) UpdateCompletedAt() *AgentRunUpsertBulk {
	return u.Update(func(s *AgentRunUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *AgentRunUpsertBulk) ClearCompletedAt() *AgentRunUpsertBulk {
	return u.Update(func(s *AgentRunUpsert) {
		s.ClearCompletedAt()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *AgentRunUpsertBulk) SetErrorMessage(v string) *AgentRunUpsertBulk {
	return u.Update(func(s *AgentRunUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *AgentRunUpsertBulk) UpdateErrorMessage() *AgentRunUpsertBulk {
	return u.Update(func(s *AgentRunUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *AgentRunUpsertBulk) ClearErrorMessage() *AgentRunUpsertBulk {
	return u.Update(func(s *AgentRunUpsert) {
		s.ClearErrorMessage()
	})
}

// SetResultData sets the "result_data" field.
func (u *AgentRunUpsertBulk) SetResultData(v map[string]interface{}) *AgentRunUpsertBulk {
	return u.Update(func(s *AgentRunUpsert) {
		s.SetResultData(v)
	})
}

// UpdateResultData sets the "result_data" field to the value that was provided on create.
func (u *AgentRunUpsertBulk) UpdateResultData() *AgentRunUpsertBulk {
	return u.Update(func(s *AgentRunUpsert) {
		s.UpdateResultData()
	})
}

// ClearResultData clears the value of the "result_data" field.
func (u *AgentRunUpsertBulk) ClearResultData() *AgentRunUpsertBulk {
	return u.Update(func(s *AgentRunUpsert) {
		s.ClearResultData()
	})
}

// Exec executes the query.
func (u *AgentRunUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AgentRunCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentRunCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentRunUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
