// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hnscribe/hnscribe/ent/agentrun"
	"github.com/hnscribe/hnscribe/ent/predicate"
	"github.com/hnscribe/hnscribe/ent/scraperstate"
	"github.com/hnscribe/hnscribe/ent/story"
	"github.com/hnscribe/hnscribe/ent/summary"
	"github.com/hnscribe/hnscribe/ent/tag"
	"github.com/hnscribe/hnscribe/ent/tagproposal"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgentRun     = "AgentRun"
	TypeScraperState = "ScraperState"
	TypeStory        = "Story"
	TypeSummary      = "Summary"
	TypeTag          = "Tag"
	TypeTagProposal  = "TagProposal"
)

// AgentRunMutation represents an operation that mutates the AgentRun nodes in the graph.
type AgentRunMutation struct {
	config
	op               Op
	typ              string
	id               *string
	run_type         *agentrun.RunType
	status           *agentrun.Status
	started_at       *time.Time
	completed_at     *time.Time
	error_message    *string
	result_data      *map[string]interface{}
	clearedFields    map[string]struct{}
	proposals        map[string]struct{}
	removedproposals map[string]struct{}
	clearedproposals bool
	done             bool
	oldValue         func(context.Context) (*AgentRun, error)
	predicates       []predicate.AgentRun
}

var _ ent.Mutation = (*AgentRunMutation)(nil)

// agentrunOption allows management of the mutation configuration using functional options.
type agentrunOption func(*AgentRunMutation)

// newAgentRunMutation creates new mutation for the AgentRun entity.
func newAgentRunMutation(c config, op Op, opts ...agentrunOption) *AgentRunMutation {
	m := &AgentRunMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentRunID sets the ID field of the mutation.
func withAgentRunID(id string) agentrunOption {
	return func(m *AgentRunMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentRun
		)
		m.oldValue = func(ctx context.Context) (*AgentRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentRun sets the old AgentRun of the mutation.
func withAgentRun(node *AgentRun) agentrunOption {
	return func(m *AgentRunMutation) {
		m.oldValue = func(context.Context) (*AgentRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgentRun entities.
func (m *AgentRunMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentRunMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentRunMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunType sets the "run_type" field.
func (m *AgentRunMutation) SetRunType(at agentrun.RunType) {
	m.run_type = &at
}

// RunType returns the value of the "run_type" field in the mutation.
func (m *AgentRunMutation) RunType() (r agentrun.RunType, exists bool) {
	v := m.run_type
	if v == nil {
		return
	}
	return *v, true
}

// OldRunType returns the old "run_type" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldRunType(ctx context.Context) (v agentrun.RunType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunType: %w", err)
	}
	return oldValue.RunType, nil
}

// ResetRunType resets all changes to the "run_type" field.
func (m *AgentRunMutation) ResetRunType() {
	m.run_type = nil
}

// SetStatus sets the "status" field.
func (m *AgentRunMutation) SetStatus(a agentrun.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AgentRunMutation) Status() (r agentrun.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldStatus(ctx context.Context) (v agentrun.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AgentRunMutation) ResetStatus() {
	m.status = nil
}

// SetStartedAt sets the "started_at" field.
func (m *AgentRunMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *AgentRunMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *AgentRunMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *AgentRunMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *AgentRunMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *AgentRunMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[agentrun.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *AgentRunMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[agentrun.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *AgentRunMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, agentrun.FieldCompletedAt)
}

// SetErrorMessage sets the "error_message" field.
func (m *AgentRunMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *AgentRunMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *AgentRunMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[agentrun.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *AgentRunMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[agentrun.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *AgentRunMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, agentrun.FieldErrorMessage)
}

// SetResultData sets the "result_data" field.
func (m *AgentRunMutation) SetResultData(value map[string]interface{}) {
	m.result_data = &value
}

// ResultData returns the value of the "result_data" field in the mutation.
func (m *AgentRunMutation) ResultData() (r map[string]interface{}, exists bool) {
	v := m.result_data
	if v == nil {
		return
	}
	return *v, true
}

// OldResultData returns the old "result_data" field's value of the AgentRun entity.
// If the AgentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRunMutation) OldResultData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResultData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResultData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResultData: %w", err)
	}
	return oldValue.ResultData, nil
}

// ClearResultData clears the value of the "result_data" field.
func (m *AgentRunMutation) ClearResultData() {
	m.result_data = nil
	m.clearedFields[agentrun.FieldResultData] = struct{}{}
}

// ResultDataCleared returns if the "result_data" field was cleared in this mutation.
func (m *AgentRunMutation) ResultDataCleared() bool {
	_, ok := m.clearedFields[agentrun.FieldResultData]
	return ok
}

// ResetResultData resets all changes to the "result_data" field.
func (m *AgentRunMutation) ResetResultData() {
	m.result_data = nil
	delete(m.clearedFields, agentrun.FieldResultData)
}

// AddProposalIDs adds the "proposals" edge to the TagProposal entity by ids.
func (m *AgentRunMutation) AddProposalIDs(ids ...string) {
	if m.proposals == nil {
		m.proposals = make(map[string]struct{})
	}
	for i := range ids {
		m.proposals[ids[i]] = struct{}{}
	}
}

// ClearProposals clears the "proposals" edge to the TagProposal entity.
func (m *AgentRunMutation) ClearProposals() {
	m.clearedproposals = true
}

// ProposalsCleared reports if the "proposals" edge to the TagProposal entity was cleared.
func (m *AgentRunMutation) ProposalsCleared() bool {
	return m.clearedproposals
}

// RemoveProposalIDs removes the "proposals" edge to the TagProposal entity by IDs.
func (m *AgentRunMutation) RemoveProposalIDs(ids ...string) {
	if m.removedproposals == nil {
		m.removedproposals = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.proposals, ids[i])
		m.removedproposals[ids[i]] = struct{}{}
	}
}

// RemovedProposals returns the removed IDs of the "proposals" edge to the TagProposal entity.
func (m *AgentRunMutation) RemovedProposalsIDs() (ids []string) {
	for id := range m.removedproposals {
		ids = append(ids, id)
	}
	return
}

// ProposalsIDs returns the "proposals" edge IDs in the mutation.
func (m *AgentRunMutation) ProposalsIDs() (ids []string) {
	for id := range m.proposals {
		ids = append(ids, id)
	}
	return
}

// ResetProposals resets all changes to the "proposals" edge.
func (m *AgentRunMutation) ResetProposals() {
	m.proposals = nil
	m.clearedproposals = false
	m.removedproposals = nil
}

// Where appends a list predicates to the AgentRunMutation builder.
func (m *AgentRunMutation) Where(ps ...predicate.AgentRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentRun).
func (m *AgentRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentRunMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.run_type != nil {
		fields = append(fields, agentrun.FieldRunType)
	}
	if m.status != nil {
		fields = append(fields, agentrun.FieldStatus)
	}
	if m.started_at != nil {
		fields = append(fields, agentrun.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, agentrun.FieldCompletedAt)
	}
	if m.error_message != nil {
		fields = append(fields, agentrun.FieldErrorMessage)
	}
	if m.result_data != nil {
		fields = append(fields, agentrun.FieldResultData)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentrun.FieldRunType:
		return m.RunType()
	case agentrun.FieldStatus:
		return m.Status()
	case agentrun.FieldStartedAt:
		return m.StartedAt()
	case agentrun.FieldCompletedAt:
		return m.CompletedAt()
	case agentrun.FieldErrorMessage:
		return m.ErrorMessage()
	case agentrun.FieldResultData:
		return m.ResultData()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentrun.FieldRunType:
		return m.OldRunType(ctx)
	case agentrun.FieldStatus:
		return m.OldStatus(ctx)
	case agentrun.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case agentrun.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case agentrun.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case agentrun.FieldResultData:
		return m.OldResultData(ctx)
	}
	return nil, fmt.Errorf("unknown AgentRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentrun.FieldRunType:
		v, ok := value.(agentrun.RunType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunType(v)
		return nil
	case agentrun.FieldStatus:
		v, ok := value.(agentrun.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case agentrun.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case agentrun.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case agentrun.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case agentrun.FieldResultData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResultData(v)
		return nil
	}
	return fmt.Errorf("unknown AgentRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentRunMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentRunMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AgentRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentRunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentrun.FieldCompletedAt) {
		fields = append(fields, agentrun.FieldCompletedAt)
	}
	if m.FieldCleared(agentrun.FieldErrorMessage) {
		fields = append(fields, agentrun.FieldErrorMessage)
	}
	if m.FieldCleared(agentrun.FieldResultData) {
		fields = append(fields, agentrun.FieldResultData)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentRunMutation) ClearField(name string) error {
	switch name {
	case agentrun.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case agentrun.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case agentrun.FieldResultData:
		m.ClearResultData()
		return nil
	}
	return fmt.Errorf("unknown AgentRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentRunMutation) ResetField(name string) error {
	switch name {
	case agentrun.FieldRunType:
		m.ResetRunType()
		return nil
	case agentrun.FieldStatus:
		m.ResetStatus()
		return nil
	case agentrun.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case agentrun.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case agentrun.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case agentrun.FieldResultData:
		m.ResetResultData()
		return nil
	}
	return fmt.Errorf("unknown AgentRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.proposals != nil {
		edges = append(edges, agentrun.EdgeProposals)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentRunMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agentrun.EdgeProposals:
		ids := make([]ent.Value, 0, len(m.proposals))
		for id := range m.proposals {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedproposals != nil {
		edges = append(edges, agentrun.EdgeProposals)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentRunMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case agentrun.EdgeProposals:
		ids := make([]ent.Value, 0, len(m.removedproposals))
		for id := range m.removedproposals {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedproposals {
		edges = append(edges, agentrun.EdgeProposals)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentRunMutation) EdgeCleared(name string) bool {
	switch name {
	case agentrun.EdgeProposals:
		return m.clearedproposals
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentRunMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown AgentRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentRunMutation) ResetEdge(name string) error {
	switch name {
	case agentrun.EdgeProposals:
		m.ResetProposals()
		return nil
	}
	return fmt.Errorf("unknown AgentRun edge %s", name)
}

// ScraperStateMutation represents an operation that mutates the ScraperState nodes in the graph.
type ScraperStateMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	state_type         *scraperstate.StateType
	current_item_id    *int64
	addcurrent_item_id *int64
	target_timestamp   *time.Time
	status             *scraperstate.Status
	items_processed    *int64
	additems_processed *int64
	stories_found      *int64
	addstories_found   *int64
	last_run_at        *time.Time
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*ScraperState, error)
	predicates         []predicate.ScraperState
}

var _ ent.Mutation = (*ScraperStateMutation)(nil)

// scraperstateOption allows management of the mutation configuration using functional options.
type scraperstateOption func(*ScraperStateMutation)

// newScraperStateMutation creates new mutation for the ScraperState entity.
func newScraperStateMutation(c config, op Op, opts ...scraperstateOption) *ScraperStateMutation {
	m := &ScraperStateMutation{
		config:        c,
		op:            op,
		typ:           TypeScraperState,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withScraperStateID sets the ID field of the mutation.
func withScraperStateID(id int) scraperstateOption {
	return func(m *ScraperStateMutation) {
		var (
			err   error
			once  sync.Once
			value *ScraperState
		)
		m.oldValue = func(ctx context.Context) (*ScraperState, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ScraperState.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withScraperState sets the old ScraperState of the mutation.
func withScraperState(node *ScraperState) scraperstateOption {
	return func(m *ScraperStateMutation) {
		m.oldValue = func(context.Context) (*ScraperState, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ScraperStateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ScraperStateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ScraperStateMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ScraperStateMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ScraperState.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStateType sets the "state_type" field.
func (m *ScraperStateMutation) SetStateType(st scraperstate.StateType) {
	m.state_type = &st
}

// StateType returns the value of the "state_type" field in the mutation.
func (m *ScraperStateMutation) StateType() (r scraperstate.StateType, exists bool) {
	v := m.state_type
	if v == nil {
		return
	}
	return *v, true
}

// OldStateType returns the old "state_type" field's value of the ScraperState entity.
// If the ScraperState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScraperStateMutation) OldStateType(ctx context.Context) (v scraperstate.StateType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStateType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStateType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStateType: %w", err)
	}
	return oldValue.StateType, nil
}

// ResetStateType resets all changes to the "state_type" field.
func (m *ScraperStateMutation) ResetStateType() {
	m.state_type = nil
}

// SetCurrentItemID sets the "current_item_id" field.
func (m *ScraperStateMutation) SetCurrentItemID(i int64) {
	m.current_item_id = &i
	m.addcurrent_item_id = nil
}

// CurrentItemID returns the value of the "current_item_id" field in the mutation.
func (m *ScraperStateMutation) CurrentItemID() (r int64, exists bool) {
	v := m.current_item_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentItemID returns the old "current_item_id" field's value of the ScraperState entity.
// If the ScraperState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScraperStateMutation) OldCurrentItemID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentItemID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentItemID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentItemID: %w", err)
	}
	return oldValue.CurrentItemID, nil
}

// AddCurrentItemID adds i to the "current_item_id" field.
func (m *ScraperStateMutation) AddCurrentItemID(i int64) {
	if m.addcurrent_item_id != nil {
		*m.addcurrent_item_id += i
	} else {
		m.addcurrent_item_id = &i
	}
}

// AddedCurrentItemID returns the value that was added to the "current_item_id" field in this mutation.
func (m *ScraperStateMutation) AddedCurrentItemID() (r int64, exists bool) {
	v := m.addcurrent_item_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetCurrentItemID resets all changes to the "current_item_id" field.
func (m *ScraperStateMutation) ResetCurrentItemID() {
	m.current_item_id = nil
	m.addcurrent_item_id = nil
}

// SetTargetTimestamp sets the "target_timestamp" field.
func (m *ScraperStateMutation) SetTargetTimestamp(t time.Time) {
	m.target_timestamp = &t
}

// TargetTimestamp returns the value of the "target_timestamp" field in the mutation.
func (m *ScraperStateMutation) TargetTimestamp() (r time.Time, exists bool) {
	v := m.target_timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetTimestamp returns the old "target_timestamp" field's value of the ScraperState entity.
// If the ScraperState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScraperStateMutation) OldTargetTimestamp(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetTimestamp: %w", err)
	}
	return oldValue.TargetTimestamp, nil
}

// ClearTargetTimestamp clears the value of the "target_timestamp" field.
func (m *ScraperStateMutation) ClearTargetTimestamp() {
	m.target_timestamp = nil
	m.clearedFields[scraperstate.FieldTargetTimestamp] = struct{}{}
}

// TargetTimestampCleared returns if the "target_timestamp" field was cleared in this mutation.
func (m *ScraperStateMutation) TargetTimestampCleared() bool {
	_, ok := m.clearedFields[scraperstate.FieldTargetTimestamp]
	return ok
}

// ResetTargetTimestamp resets all changes to the "target_timestamp" field.
func (m *ScraperStateMutation) ResetTargetTimestamp() {
	m.target_timestamp = nil
	delete(m.clearedFields, scraperstate.FieldTargetTimestamp)
}

// SetStatus sets the "status" field.
func (m *ScraperStateMutation) SetStatus(s scraperstate.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ScraperStateMutation) Status() (r scraperstate.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ScraperState entity.
// If the ScraperState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScraperStateMutation) OldStatus(ctx context.Context) (v scraperstate.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ScraperStateMutation) ResetStatus() {
	m.status = nil
}

// SetItemsProcessed sets the "items_processed" field.
func (m *ScraperStateMutation) SetItemsProcessed(i int64) {
	m.items_processed = &i
	m.additems_processed = nil
}

// ItemsProcessed returns the value of the "items_processed" field in the mutation.
func (m *ScraperStateMutation) ItemsProcessed() (r int64, exists bool) {
	v := m.items_processed
	if v == nil {
		return
	}
	return *v, true
}

// OldItemsProcessed returns the old "items_processed" field's value of the ScraperState entity.
// If the ScraperState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScraperStateMutation) OldItemsProcessed(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemsProcessed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemsProcessed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemsProcessed: %w", err)
	}
	return oldValue.ItemsProcessed, nil
}

// AddItemsProcessed adds i to the "items_processed" field.
func (m *ScraperStateMutation) AddItemsProcessed(i int64) {
	if m.additems_processed != nil {
		*m.additems_processed += i
	} else {
		m.additems_processed = &i
	}
}

// AddedItemsProcessed returns the value that was added to the "items_processed" field in this mutation.
func (m *ScraperStateMutation) AddedItemsProcessed() (r int64, exists bool) {
	v := m.additems_processed
	if v == nil {
		return
	}
	return *v, true
}

// ResetItemsProcessed resets all changes to the "items_processed" field.
func (m *ScraperStateMutation) ResetItemsProcessed() {
	m.items_processed = nil
	m.additems_processed = nil
}

// SetStoriesFound sets the "stories_found" field.
func (m *ScraperStateMutation) SetStoriesFound(i int64) {
	m.stories_found = &i
	m.addstories_found = nil
}

// StoriesFound returns the value of the "stories_found" field in the mutation.
func (m *ScraperStateMutation) StoriesFound() (r int64, exists bool) {
	v := m.stories_found
	if v == nil {
		return
	}
	return *v, true
}

// OldStoriesFound returns the old "stories_found" field's value of the ScraperState entity.
// If the ScraperState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScraperStateMutation) OldStoriesFound(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStoriesFound is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStoriesFound requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStoriesFound: %w", err)
	}
	return oldValue.StoriesFound, nil
}

// AddStoriesFound adds i to the "stories_found" field.
func (m *ScraperStateMutation) AddStoriesFound(i int64) {
	if m.addstories_found != nil {
		*m.addstories_found += i
	} else {
		m.addstories_found = &i
	}
}

// AddedStoriesFound returns the value that was added to the "stories_found" field in this mutation.
func (m *ScraperStateMutation) AddedStoriesFound() (r int64, exists bool) {
	v := m.addstories_found
	if v == nil {
		return
	}
	return *v, true
}

// ResetStoriesFound resets all changes to the "stories_found" field.
func (m *ScraperStateMutation) ResetStoriesFound() {
	m.stories_found = nil
	m.addstories_found = nil
}

// SetLastRunAt sets the "last_run_at" field.
func (m *ScraperStateMutation) SetLastRunAt(t time.Time) {
	m.last_run_at = &t
}

// LastRunAt returns the value of the "last_run_at" field in the mutation.
func (m *ScraperStateMutation) LastRunAt() (r time.Time, exists bool) {
	v := m.last_run_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastRunAt returns the old "last_run_at" field's value of the ScraperState entity.
// If the ScraperState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScraperStateMutation) OldLastRunAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastRunAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastRunAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastRunAt: %w", err)
	}
	return oldValue.LastRunAt, nil
}

// ResetLastRunAt resets all changes to the "last_run_at" field.
func (m *ScraperStateMutation) ResetLastRunAt() {
	m.last_run_at = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ScraperStateMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ScraperStateMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ScraperState entity.
// If the ScraperState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScraperStateMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ScraperStateMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ScraperStateMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ScraperStateMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ScraperState entity.
// If the ScraperState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScraperStateMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ScraperStateMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ScraperStateMutation builder.
func (m *ScraperStateMutation) Where(ps ...predicate.ScraperState) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ScraperStateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ScraperStateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ScraperState, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ScraperStateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ScraperStateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ScraperState).
func (m *ScraperStateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ScraperStateMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.state_type != nil {
		fields = append(fields, scraperstate.FieldStateType)
	}
	if m.current_item_id != nil {
		fields = append(fields, scraperstate.FieldCurrentItemID)
	}
	if m.target_timestamp != nil {
		fields = append(fields, scraperstate.FieldTargetTimestamp)
	}
	if m.status != nil {
		fields = append(fields, scraperstate.FieldStatus)
	}
	if m.items_processed != nil {
		fields = append(fields, scraperstate.FieldItemsProcessed)
	}
	if m.stories_found != nil {
		fields = append(fields, scraperstate.FieldStoriesFound)
	}
	if m.last_run_at != nil {
		fields = append(fields, scraperstate.FieldLastRunAt)
	}
	if m.created_at != nil {
		fields = append(fields, scraperstate.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, scraperstate.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ScraperStateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case scraperstate.FieldStateType:
		return m.StateType()
	case scraperstate.FieldCurrentItemID:
		return m.CurrentItemID()
	case scraperstate.FieldTargetTimestamp:
		return m.TargetTimestamp()
	case scraperstate.FieldStatus:
		return m.Status()
	case scraperstate.FieldItemsProcessed:
		return m.ItemsProcessed()
	case scraperstate.FieldStoriesFound:
		return m.StoriesFound()
	case scraperstate.FieldLastRunAt:
		return m.LastRunAt()
	case scraperstate.FieldCreatedAt:
		return m.CreatedAt()
	case scraperstate.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ScraperStateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case scraperstate.FieldStateType:
		return m.OldStateType(ctx)
	case scraperstate.FieldCurrentItemID:
		return m.OldCurrentItemID(ctx)
	case scraperstate.FieldTargetTimestamp:
		return m.OldTargetTimestamp(ctx)
	case scraperstate.FieldStatus:
		return m.OldStatus(ctx)
	case scraperstate.FieldItemsProcessed:
		return m.OldItemsProcessed(ctx)
	case scraperstate.FieldStoriesFound:
		return m.OldStoriesFound(ctx)
	case scraperstate.FieldLastRunAt:
		return m.OldLastRunAt(ctx)
	case scraperstate.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case scraperstate.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ScraperState field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScraperStateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case scraperstate.FieldStateType:
		v, ok := value.(scraperstate.StateType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStateType(v)
		return nil
	case scraperstate.FieldCurrentItemID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentItemID(v)
		return nil
	case scraperstate.FieldTargetTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetTimestamp(v)
		return nil
	case scraperstate.FieldStatus:
		v, ok := value.(scraperstate.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case scraperstate.FieldItemsProcessed:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemsProcessed(v)
		return nil
	case scraperstate.FieldStoriesFound:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStoriesFound(v)
		return nil
	case scraperstate.FieldLastRunAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastRunAt(v)
		return nil
	case scraperstate.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case scraperstate.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ScraperState field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ScraperStateMutation) AddedFields() []string {
	var fields []string
	if m.addcurrent_item_id != nil {
		fields = append(fields, scraperstate.FieldCurrentItemID)
	}
	if m.additems_processed != nil {
		fields = append(fields, scraperstate.FieldItemsProcessed)
	}
	if m.addstories_found != nil {
		fields = append(fields, scraperstate.FieldStoriesFound)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ScraperStateMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case scraperstate.FieldCurrentItemID:
		return m.AddedCurrentItemID()
	case scraperstate.FieldItemsProcessed:
		return m.AddedItemsProcessed()
	case scraperstate.FieldStoriesFound:
		return m.AddedStoriesFound()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScraperStateMutation) AddField(name string, value ent.Value) error {
	switch name {
	case scraperstate.FieldCurrentItemID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrentItemID(v)
		return nil
	case scraperstate.FieldItemsProcessed:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddItemsProcessed(v)
		return nil
	case scraperstate.FieldStoriesFound:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStoriesFound(v)
		return nil
	}
	return fmt.Errorf("unknown ScraperState numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ScraperStateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(scraperstate.FieldTargetTimestamp) {
		fields = append(fields, scraperstate.FieldTargetTimestamp)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ScraperStateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ScraperStateMutation) ClearField(name string) error {
	switch name {
	case scraperstate.FieldTargetTimestamp:
		m.ClearTargetTimestamp()
		return nil
	}
	return fmt.Errorf("unknown ScraperState nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ScraperStateMutation) ResetField(name string) error {
	switch name {
	case scraperstate.FieldStateType:
		m.ResetStateType()
		return nil
	case scraperstate.FieldCurrentItemID:
		m.ResetCurrentItemID()
		return nil
	case scraperstate.FieldTargetTimestamp:
		m.ResetTargetTimestamp()
		return nil
	case scraperstate.FieldStatus:
		m.ResetStatus()
		return nil
	case scraperstate.FieldItemsProcessed:
		m.ResetItemsProcessed()
		return nil
	case scraperstate.FieldStoriesFound:
		m.ResetStoriesFound()
		return nil
	case scraperstate.FieldLastRunAt:
		m.ResetLastRunAt()
		return nil
	case scraperstate.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case scraperstate.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ScraperState field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ScraperStateMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ScraperStateMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ScraperStateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ScraperStateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ScraperStateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ScraperStateMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ScraperStateMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ScraperState unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ScraperStateMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ScraperState edge %s", name)
}

// StoryMutation represents an operation that mutates the Story nodes in the graph.
type StoryMutation struct {
	config
	op               Op
	typ              string
	id               *int
	hn_id            *int64
	addhn_id         *int64
	title            *string
	url              *string
	score            *int
	addscore         *int
	author           *string
	comment_count    *int
	addcomment_count *int
	hn_created_at    *time.Time
	is_summarized    *bool
	is_tagged        *bool
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	summary          *int
	clearedsummary   bool
	tags             map[int]struct{}
	removedtags      map[int]struct{}
	clearedtags      bool
	done             bool
	oldValue         func(context.Context) (*Story, error)
	predicates       []predicate.Story
}

var _ ent.Mutation = (*StoryMutation)(nil)

// storyOption allows management of the mutation configuration using functional options.
type storyOption func(*StoryMutation)

// newStoryMutation creates new mutation for the Story entity.
func newStoryMutation(c config, op Op, opts ...storyOption) *StoryMutation {
	m := &StoryMutation{
		config:        c,
		op:            op,
		typ:           TypeStory,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStoryID sets the ID field of the mutation.
func withStoryID(id int) storyOption {
	return func(m *StoryMutation) {
		var (
			err   error
			once  sync.Once
			value *Story
		)
		m.oldValue = func(ctx context.Context) (*Story, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Story.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStory sets the old Story of the mutation.
func withStory(node *Story) storyOption {
	return func(m *StoryMutation) {
		m.oldValue = func(context.Context) (*Story, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StoryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StoryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StoryMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StoryMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Story.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetHnID sets the "hn_id" field.
func (m *StoryMutation) SetHnID(i int64) {
	m.hn_id = &i
	m.addhn_id = nil
}

// HnID returns the value of the "hn_id" field in the mutation.
func (m *StoryMutation) HnID() (r int64, exists bool) {
	v := m.hn_id
	if v == nil {
		return
	}
	return *v, true
}

// OldHnID returns the old "hn_id" field's value of the Story entity.
// If the Story object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoryMutation) OldHnID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHnID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHnID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHnID: %w", err)
	}
	return oldValue.HnID, nil
}

// AddHnID adds i to the "hn_id" field.
func (m *StoryMutation) AddHnID(i int64) {
	if m.addhn_id != nil {
		*m.addhn_id += i
	} else {
		m.addhn_id = &i
	}
}

// AddedHnID returns the value that was added to the "hn_id" field in this mutation.
func (m *StoryMutation) AddedHnID() (r int64, exists bool) {
	v := m.addhn_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetHnID resets all changes to the "hn_id" field.
func (m *StoryMutation) ResetHnID() {
	m.hn_id = nil
	m.addhn_id = nil
}

// SetTitle sets the "title" field.
func (m *StoryMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *StoryMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Story entity.
// If the Story object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoryMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *StoryMutation) ResetTitle() {
	m.title = nil
}

// SetURL sets the "url" field.
func (m *StoryMutation) SetURL(s string) {
	m.url = &s
}

// URL returns the value of the "url" field in the mutation.
func (m *StoryMutation) URL() (r string, exists bool) {
	v := m.url
	if v == nil {
		return
	}
	return *v, true
}

// OldURL returns the old "url" field's value of the Story entity.
// If the Story object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoryMutation) OldURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURL: %w", err)
	}
	return oldValue.URL, nil
}

// ClearURL clears the value of the "url" field.
func (m *StoryMutation) ClearURL() {
	m.url = nil
	m.clearedFields[story.FieldURL] = struct{}{}
}

// URLCleared returns if the "url" field was cleared in this mutation.
func (m *StoryMutation) URLCleared() bool {
	_, ok := m.clearedFields[story.FieldURL]
	return ok
}

// ResetURL resets all changes to the "url" field.
func (m *StoryMutation) ResetURL() {
	m.url = nil
	delete(m.clearedFields, story.FieldURL)
}

// SetScore sets the "score" field.
func (m *StoryMutation) SetScore(i int) {
	m.score = &i
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *StoryMutation) Score() (r int, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the Story entity.
// If the Story object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoryMutation) OldScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds i to the "score" field.
func (m *StoryMutation) AddScore(i int) {
	if m.addscore != nil {
		*m.addscore += i
	} else {
		m.addscore = &i
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *StoryMutation) AddedScore() (r int, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *StoryMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetAuthor sets the "author" field.
func (m *StoryMutation) SetAuthor(s string) {
	m.author = &s
}

// Author returns the value of the "author" field in the mutation.
func (m *StoryMutation) Author() (r string, exists bool) {
	v := m.author
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthor returns the old "author" field's value of the Story entity.
// If the Story object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoryMutation) OldAuthor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthor: %w", err)
	}
	return oldValue.Author, nil
}

// ResetAuthor resets all changes to the "author" field.
func (m *StoryMutation) ResetAuthor() {
	m.author = nil
}

// SetCommentCount sets the "comment_count" field.
func (m *StoryMutation) SetCommentCount(i int) {
	m.comment_count = &i
	m.addcomment_count = nil
}

// CommentCount returns the value of the "comment_count" field in the mutation.
func (m *StoryMutation) CommentCount() (r int, exists bool) {
	v := m.comment_count
	if v == nil {
		return
	}
	return *v, true
}

// OldCommentCount returns the old "comment_count" field's value of the Story entity.
// If the Story object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoryMutation) OldCommentCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommentCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommentCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommentCount: %w", err)
	}
	return oldValue.CommentCount, nil
}

// AddCommentCount adds i to the "comment_count" field.
func (m *StoryMutation) AddCommentCount(i int) {
	if m.addcomment_count != nil {
		*m.addcomment_count += i
	} else {
		m.addcomment_count = &i
	}
}

// AddedCommentCount returns the value that was added to the "comment_count" field in this mutation.
func (m *StoryMutation) AddedCommentCount() (r int, exists bool) {
	v := m.addcomment_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetCommentCount resets all changes to the "comment_count" field.
func (m *StoryMutation) ResetCommentCount() {
	m.comment_count = nil
	m.addcomment_count = nil
}

// SetHnCreatedAt sets the "hn_created_at" field.
func (m *StoryMutation) SetHnCreatedAt(t time.Time) {
	m.hn_created_at = &t
}

// HnCreatedAt returns the value of the "hn_created_at" field in the mutation.
func (m *StoryMutation) HnCreatedAt() (r time.Time, exists bool) {
	v := m.hn_created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldHnCreatedAt returns the old "hn_created_at" field's value of the Story entity.
// If the Story object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoryMutation) OldHnCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHnCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHnCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHnCreatedAt: %w", err)
	}
	return oldValue.HnCreatedAt, nil
}

// ResetHnCreatedAt resets all changes to the "hn_created_at" field.
func (m *StoryMutation) ResetHnCreatedAt() {
	m.hn_created_at = nil
}

// SetIsSummarized sets the "is_summarized" field.
func (m *StoryMutation) SetIsSummarized(b bool) {
	m.is_summarized = &b
}

// IsSummarized returns the value of the "is_summarized" field in the mutation.
func (m *StoryMutation) IsSummarized() (r bool, exists bool) {
	v := m.is_summarized
	if v == nil {
		return
	}
	return *v, true
}

// OldIsSummarized returns the old "is_summarized" field's value of the Story entity.
// If the Story object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoryMutation) OldIsSummarized(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsSummarized is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsSummarized requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsSummarized: %w", err)
	}
	return oldValue.IsSummarized, nil
}

// ResetIsSummarized resets all changes to the "is_summarized" field.
func (m *StoryMutation) ResetIsSummarized() {
	m.is_summarized = nil
}

// SetIsTagged sets the "is_tagged" field.
func (m *StoryMutation) SetIsTagged(b bool) {
	m.is_tagged = &b
}

// IsTagged returns the value of the "is_tagged" field in the mutation.
func (m *StoryMutation) IsTagged() (r bool, exists bool) {
	v := m.is_tagged
	if v == nil {
		return
	}
	return *v, true
}

// OldIsTagged returns the old "is_tagged" field's value of the Story entity.
// If the Story object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoryMutation) OldIsTagged(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsTagged is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsTagged requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsTagged: %w", err)
	}
	return oldValue.IsTagged, nil
}

// ResetIsTagged resets all changes to the "is_tagged" field.
func (m *StoryMutation) ResetIsTagged() {
	m.is_tagged = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *StoryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StoryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Story entity.
// If the Story object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StoryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *StoryMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *StoryMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Story entity.
// If the Story object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StoryMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *StoryMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetSummaryID sets the "summary" edge to the Summary entity by id.
func (m *StoryMutation) SetSummaryID(id int) {
	m.summary = &id
}

// ClearSummary clears the "summary" edge to the Summary entity.
func (m *StoryMutation) ClearSummary() {
	m.clearedsummary = true
}

// SummaryCleared reports if the "summary" edge to the Summary entity was cleared.
func (m *StoryMutation) SummaryCleared() bool {
	return m.clearedsummary
}

// SummaryID returns the "summary" edge ID in the mutation.
func (m *StoryMutation) SummaryID() (id int, exists bool) {
	if m.summary != nil {
		return *m.summary, true
	}
	return
}

// SummaryIDs returns the "summary" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SummaryID instead. It exists only for internal usage by the builders.
func (m *StoryMutation) SummaryIDs() (ids []int) {
	if id := m.summary; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSummary resets all changes to the "summary" edge.
func (m *StoryMutation) ResetSummary() {
	m.summary = nil
	m.clearedsummary = false
}

// AddTagIDs adds the "tags" edge to the Tag entity by ids.
func (m *StoryMutation) AddTagIDs(ids ...int) {
	if m.tags == nil {
		m.tags = make(map[int]struct{})
	}
	for i := range ids {
		m.tags[ids[i]] = struct{}{}
	}
}

// ClearTags clears the "tags" edge to the Tag entity.
func (m *StoryMutation) ClearTags() {
	m.clearedtags = true
}

// TagsCleared reports if the "tags" edge to the Tag entity was cleared.
func (m *StoryMutation) TagsCleared() bool {
	return m.clearedtags
}

// RemoveTagIDs removes the "tags" edge to the Tag entity by IDs.
func (m *StoryMutation) RemoveTagIDs(ids ...int) {
	if m.removedtags == nil {
		m.removedtags = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.tags, ids[i])
		m.removedtags[ids[i]] = struct{}{}
	}
}

// RemovedTags returns the removed IDs of the "tags" edge to the Tag entity.
func (m *StoryMutation) RemovedTagsIDs() (ids []int) {
	for id := range m.removedtags {
		ids = append(ids, id)
	}
	return
}

// TagsIDs returns the "tags" edge IDs in the mutation.
func (m *StoryMutation) TagsIDs() (ids []int) {
	for id := range m.tags {
		ids = append(ids, id)
	}
	return
}

// ResetTags resets all changes to the "tags" edge.
func (m *StoryMutation) ResetTags() {
	m.tags = nil
	m.clearedtags = false
	m.removedtags = nil
}

// Where appends a list predicates to the StoryMutation builder.
func (m *StoryMutation) Where(ps ...predicate.Story) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StoryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StoryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Story, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StoryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StoryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Story).
func (m *StoryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StoryMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.hn_id != nil {
		fields = append(fields, story.FieldHnID)
	}
	if m.title != nil {
		fields = append(fields, story.FieldTitle)
	}
	if m.url != nil {
		fields = append(fields, story.FieldURL)
	}
	if m.score != nil {
		fields = append(fields, story.FieldScore)
	}
	if m.author != nil {
		fields = append(fields, story.FieldAuthor)
	}
	if m.comment_count != nil {
		fields = append(fields, story.FieldCommentCount)
	}
	if m.hn_created_at != nil {
		fields = append(fields, story.FieldHnCreatedAt)
	}
	if m.is_summarized != nil {
		fields = append(fields, story.FieldIsSummarized)
	}
	if m.is_tagged != nil {
		fields = append(fields, story.FieldIsTagged)
	}
	if m.created_at != nil {
		fields = append(fields, story.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, story.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StoryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case story.FieldHnID:
		return m.HnID()
	case story.FieldTitle:
		return m.Title()
	case story.FieldURL:
		return m.URL()
	case story.FieldScore:
		return m.Score()
	case story.FieldAuthor:
		return m.Author()
	case story.FieldCommentCount:
		return m.CommentCount()
	case story.FieldHnCreatedAt:
		return m.HnCreatedAt()
	case story.FieldIsSummarized:
		return m.IsSummarized()
	case story.FieldIsTagged:
		return m.IsTagged()
	case story.FieldCreatedAt:
		return m.CreatedAt()
	case story.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StoryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case story.FieldHnID:
		return m.OldHnID(ctx)
	case story.FieldTitle:
		return m.OldTitle(ctx)
	case story.FieldURL:
		return m.OldURL(ctx)
	case story.FieldScore:
		return m.OldScore(ctx)
	case story.FieldAuthor:
		return m.OldAuthor(ctx)
	case story.FieldCommentCount:
		return m.OldCommentCount(ctx)
	case story.FieldHnCreatedAt:
		return m.OldHnCreatedAt(ctx)
	case story.FieldIsSummarized:
		return m.OldIsSummarized(ctx)
	case story.FieldIsTagged:
		return m.OldIsTagged(ctx)
	case story.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case story.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Story field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StoryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case story.FieldHnID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHnID(v)
		return nil
	case story.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case story.FieldURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURL(v)
		return nil
	case story.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case story.FieldAuthor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthor(v)
		return nil
	case story.FieldCommentCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommentCount(v)
		return nil
	case story.FieldHnCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHnCreatedAt(v)
		return nil
	case story.FieldIsSummarized:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsSummarized(v)
		return nil
	case story.FieldIsTagged:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsTagged(v)
		return nil
	case story.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case story.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Story field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StoryMutation) AddedFields() []string {
	var fields []string
	if m.addhn_id != nil {
		fields = append(fields, story.FieldHnID)
	}
	if m.addscore != nil {
		fields = append(fields, story.FieldScore)
	}
	if m.addcomment_count != nil {
		fields = append(fields, story.FieldCommentCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StoryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case story.FieldHnID:
		return m.AddedHnID()
	case story.FieldScore:
		return m.AddedScore()
	case story.FieldCommentCount:
		return m.AddedCommentCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StoryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case story.FieldHnID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHnID(v)
		return nil
	case story.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	case story.FieldCommentCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCommentCount(v)
		return nil
	}
	return fmt.Errorf("unknown Story numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StoryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(story.FieldURL) {
		fields = append(fields, story.FieldURL)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StoryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StoryMutation) ClearField(name string) error {
	switch name {
	case story.FieldURL:
		m.ClearURL()
		return nil
	}
	return fmt.Errorf("unknown Story nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StoryMutation) ResetField(name string) error {
	switch name {
	case story.FieldHnID:
		m.ResetHnID()
		return nil
	case story.FieldTitle:
		m.ResetTitle()
		return nil
	case story.FieldURL:
		m.ResetURL()
		return nil
	case story.FieldScore:
		m.ResetScore()
		return nil
	case story.FieldAuthor:
		m.ResetAuthor()
		return nil
	case story.FieldCommentCount:
		m.ResetCommentCount()
		return nil
	case story.FieldHnCreatedAt:
		m.ResetHnCreatedAt()
		return nil
	case story.FieldIsSummarized:
		m.ResetIsSummarized()
		return nil
	case story.FieldIsTagged:
		m.ResetIsTagged()
		return nil
	case story.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case story.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Story field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StoryMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.summary != nil {
		edges = append(edges, story.EdgeSummary)
	}
	if m.tags != nil {
		edges = append(edges, story.EdgeTags)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StoryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case story.EdgeSummary:
		if id := m.summary; id != nil {
			return []ent.Value{*id}
		}
	case story.EdgeTags:
		ids := make([]ent.Value, 0, len(m.tags))
		for id := range m.tags {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StoryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedtags != nil {
		edges = append(edges, story.EdgeTags)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StoryMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case story.EdgeTags:
		ids := make([]ent.Value, 0, len(m.removedtags))
		for id := range m.removedtags {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StoryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedsummary {
		edges = append(edges, story.EdgeSummary)
	}
	if m.clearedtags {
		edges = append(edges, story.EdgeTags)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StoryMutation) EdgeCleared(name string) bool {
	switch name {
	case story.EdgeSummary:
		return m.clearedsummary
	case story.EdgeTags:
		return m.clearedtags
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StoryMutation) ClearEdge(name string) error {
	switch name {
	case story.EdgeSummary:
		m.ClearSummary()
		return nil
	}
	return fmt.Errorf("unknown Story unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StoryMutation) ResetEdge(name string) error {
	switch name {
	case story.EdgeSummary:
		m.ResetSummary()
		return nil
	case story.EdgeTags:
		m.ResetTags()
		return nil
	}
	return fmt.Errorf("unknown Story edge %s", name)
}

// SummaryMutation represents an operation that mutates the Summary nodes in the graph.
type SummaryMutation struct {
	config
	op            Op
	typ           string
	id            *int
	text          *string
	model         *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	story         *int
	clearedstory  bool
	done          bool
	oldValue      func(context.Context) (*Summary, error)
	predicates    []predicate.Summary
}

var _ ent.Mutation = (*SummaryMutation)(nil)

// summaryOption allows management of the mutation configuration using functional options.
type summaryOption func(*SummaryMutation)

// newSummaryMutation creates new mutation for the Summary entity.
func newSummaryMutation(c config, op Op, opts ...summaryOption) *SummaryMutation {
	m := &SummaryMutation{
		config:        c,
		op:            op,
		typ:           TypeSummary,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSummaryID sets the ID field of the mutation.
func withSummaryID(id int) summaryOption {
	return func(m *SummaryMutation) {
		var (
			err   error
			once  sync.Once
			value *Summary
		)
		m.oldValue = func(ctx context.Context) (*Summary, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Summary.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSummary sets the old Summary of the mutation.
func withSummary(node *Summary) summaryOption {
	return func(m *SummaryMutation) {
		m.oldValue = func(context.Context) (*Summary, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SummaryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SummaryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SummaryMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SummaryMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Summary.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStoryID sets the "story_id" field.
func (m *SummaryMutation) SetStoryID(i int) {
	m.story = &i
}

// StoryID returns the value of the "story_id" field in the mutation.
func (m *SummaryMutation) StoryID() (r int, exists bool) {
	v := m.story
	if v == nil {
		return
	}
	return *v, true
}

// OldStoryID returns the old "story_id" field's value of the Summary entity.
// If the Summary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryMutation) OldStoryID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStoryID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStoryID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStoryID: %w", err)
	}
	return oldValue.StoryID, nil
}

// ResetStoryID resets all changes to the "story_id" field.
func (m *SummaryMutation) ResetStoryID() {
	m.story = nil
}

// SetText sets the "text" field.
func (m *SummaryMutation) SetText(s string) {
	m.text = &s
}

// Text returns the value of the "text" field in the mutation.
func (m *SummaryMutation) Text() (r string, exists bool) {
	v := m.text
	if v == nil {
		return
	}
	return *v, true
}

// OldText returns the old "text" field's value of the Summary entity.
// If the Summary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryMutation) OldText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldText: %w", err)
	}
	return oldValue.Text, nil
}

// ResetText resets all changes to the "text" field.
func (m *SummaryMutation) ResetText() {
	m.text = nil
}

// SetModel sets the "model" field.
func (m *SummaryMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *SummaryMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the Summary entity.
// If the Summary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *SummaryMutation) ResetModel() {
	m.model = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *SummaryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SummaryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Summary entity.
// If the Summary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SummaryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearStory clears the "story" edge to the Story entity.
func (m *SummaryMutation) ClearStory() {
	m.clearedstory = true
	m.clearedFields[summary.FieldStoryID] = struct{}{}
}

// StoryCleared reports if the "story" edge to the Story entity was cleared.
func (m *SummaryMutation) StoryCleared() bool {
	return m.clearedstory
}

// StoryIDs returns the "story" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// StoryID instead. It exists only for internal usage by the builders.
func (m *SummaryMutation) StoryIDs() (ids []int) {
	if id := m.story; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetStory resets all changes to the "story" edge.
func (m *SummaryMutation) ResetStory() {
	m.story = nil
	m.clearedstory = false
}

// Where appends a list predicates to the SummaryMutation builder.
func (m *SummaryMutation) Where(ps ...predicate.Summary) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SummaryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SummaryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Summary, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SummaryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SummaryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Summary).
func (m *SummaryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SummaryMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.story != nil {
		fields = append(fields, summary.FieldStoryID)
	}
	if m.text != nil {
		fields = append(fields, summary.FieldText)
	}
	if m.model != nil {
		fields = append(fields, summary.FieldModel)
	}
	if m.created_at != nil {
		fields = append(fields, summary.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SummaryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case summary.FieldStoryID:
		return m.StoryID()
	case summary.FieldText:
		return m.Text()
	case summary.FieldModel:
		return m.Model()
	case summary.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SummaryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case summary.FieldStoryID:
		return m.OldStoryID(ctx)
	case summary.FieldText:
		return m.OldText(ctx)
	case summary.FieldModel:
		return m.OldModel(ctx)
	case summary.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Summary field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SummaryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case summary.FieldStoryID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStoryID(v)
		return nil
	case summary.FieldText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetText(v)
		return nil
	case summary.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case summary.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Summary field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SummaryMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SummaryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SummaryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Summary numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SummaryMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SummaryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SummaryMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Summary nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SummaryMutation) ResetField(name string) error {
	switch name {
	case summary.FieldStoryID:
		m.ResetStoryID()
		return nil
	case summary.FieldText:
		m.ResetText()
		return nil
	case summary.FieldModel:
		m.ResetModel()
		return nil
	case summary.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Summary field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SummaryMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.story != nil {
		edges = append(edges, summary.EdgeStory)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SummaryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case summary.EdgeStory:
		if id := m.story; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SummaryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SummaryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SummaryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedstory {
		edges = append(edges, summary.EdgeStory)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SummaryMutation) EdgeCleared(name string) bool {
	switch name {
	case summary.EdgeStory:
		return m.clearedstory
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SummaryMutation) ClearEdge(name string) error {
	switch name {
	case summary.EdgeStory:
		m.ClearStory()
		return nil
	}
	return fmt.Errorf("unknown Summary unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SummaryMutation) ResetEdge(name string) error {
	switch name {
	case summary.EdgeStory:
		m.ResetStory()
		return nil
	}
	return fmt.Errorf("unknown Summary edge %s", name)
}

// TagMutation represents an operation that mutates the Tag nodes in the graph.
type TagMutation struct {
	config
	op             Op
	typ            string
	id             *int
	name           *string
	slug           *string
	level          *int
	addlevel       *int
	category       *string
	is_misc        *bool
	usage_count    *int
	addusage_count *int
	created_at     *time.Time
	clearedFields  map[string]struct{}
	stories        map[int]struct{}
	removedstories map[int]struct{}
	clearedstories bool
	done           bool
	oldValue       func(context.Context) (*Tag, error)
	predicates     []predicate.Tag
}

var _ ent.Mutation = (*TagMutation)(nil)

// tagOption allows management of the mutation configuration using functional options.
type tagOption func(*TagMutation)

// newTagMutation creates new mutation for the Tag entity.
func newTagMutation(c config, op Op, opts ...tagOption) *TagMutation {
	m := &TagMutation{
		config:        c,
		op:            op,
		typ:           TypeTag,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTagID sets the ID field of the mutation.
func withTagID(id int) tagOption {
	return func(m *TagMutation) {
		var (
			err   error
			once  sync.Once
			value *Tag
		)
		m.oldValue = func(ctx context.Context) (*Tag, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Tag.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTag sets the old Tag of the mutation.
func withTag(node *Tag) tagOption {
	return func(m *TagMutation) {
		m.oldValue = func(context.Context) (*Tag, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TagMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TagMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TagMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TagMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Tag.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *TagMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *TagMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Tag entity.
// If the Tag object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TagMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *TagMutation) ResetName() {
	m.name = nil
}

// SetSlug sets the "slug" field.
func (m *TagMutation) SetSlug(s string) {
	m.slug = &s
}

// Slug returns the value of the "slug" field in the mutation.
func (m *TagMutation) Slug() (r string, exists bool) {
	v := m.slug
	if v == nil {
		return
	}
	return *v, true
}

// OldSlug returns the old "slug" field's value of the Tag entity.
// If the Tag object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TagMutation) OldSlug(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlug is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlug requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlug: %w", err)
	}
	return oldValue.Slug, nil
}

// ResetSlug resets all changes to the "slug" field.
func (m *TagMutation) ResetSlug() {
	m.slug = nil
}

// SetLevel sets the "level" field.
func (m *TagMutation) SetLevel(i int) {
	m.level = &i
	m.addlevel = nil
}

// Level returns the value of the "level" field in the mutation.
func (m *TagMutation) Level() (r int, exists bool) {
	v := m.level
	if v == nil {
		return
	}
	return *v, true
}

// OldLevel returns the old "level" field's value of the Tag entity.
// If the Tag object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TagMutation) OldLevel(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLevel: %w", err)
	}
	return oldValue.Level, nil
}

// AddLevel adds i to the "level" field.
func (m *TagMutation) AddLevel(i int) {
	if m.addlevel != nil {
		*m.addlevel += i
	} else {
		m.addlevel = &i
	}
}

// AddedLevel returns the value that was added to the "level" field in this mutation.
func (m *TagMutation) AddedLevel() (r int, exists bool) {
	v := m.addlevel
	if v == nil {
		return
	}
	return *v, true
}

// ResetLevel resets all changes to the "level" field.
func (m *TagMutation) ResetLevel() {
	m.level = nil
	m.addlevel = nil
}

// SetCategory sets the "category" field.
func (m *TagMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *TagMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the Tag entity.
// If the Tag object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TagMutation) OldCategory(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ClearCategory clears the value of the "category" field.
func (m *TagMutation) ClearCategory() {
	m.category = nil
	m.clearedFields[tag.FieldCategory] = struct{}{}
}

// CategoryCleared returns if the "category" field was cleared in this mutation.
func (m *TagMutation) CategoryCleared() bool {
	_, ok := m.clearedFields[tag.FieldCategory]
	return ok
}

// ResetCategory resets all changes to the "category" field.
func (m *TagMutation) ResetCategory() {
	m.category = nil
	delete(m.clearedFields, tag.FieldCategory)
}

// SetIsMisc sets the "is_misc" field.
func (m *TagMutation) SetIsMisc(b bool) {
	m.is_misc = &b
}

// IsMisc returns the value of the "is_misc" field in the mutation.
func (m *TagMutation) IsMisc() (r bool, exists bool) {
	v := m.is_misc
	if v == nil {
		return
	}
	return *v, true
}

// OldIsMisc returns the old "is_misc" field's value of the Tag entity.
// If the Tag object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TagMutation) OldIsMisc(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsMisc is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsMisc requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsMisc: %w", err)
	}
	return oldValue.IsMisc, nil
}

// ResetIsMisc resets all changes to the "is_misc" field.
func (m *TagMutation) ResetIsMisc() {
	m.is_misc = nil
}

// SetUsageCount sets the "usage_count" field.
func (m *TagMutation) SetUsageCount(i int) {
	m.usage_count = &i
	m.addusage_count = nil
}

// UsageCount returns the value of the "usage_count" field in the mutation.
func (m *TagMutation) UsageCount() (r int, exists bool) {
	v := m.usage_count
	if v == nil {
		return
	}
	return *v, true
}

// OldUsageCount returns the old "usage_count" field's value of the Tag entity.
// If the Tag object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TagMutation) OldUsageCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsageCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsageCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsageCount: %w", err)
	}
	return oldValue.UsageCount, nil
}

// AddUsageCount adds i to the "usage_count" field.
func (m *TagMutation) AddUsageCount(i int) {
	if m.addusage_count != nil {
		*m.addusage_count += i
	} else {
		m.addusage_count = &i
	}
}

// AddedUsageCount returns the value that was added to the "usage_count" field in this mutation.
func (m *TagMutation) AddedUsageCount() (r int, exists bool) {
	v := m.addusage_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetUsageCount resets all changes to the "usage_count" field.
func (m *TagMutation) ResetUsageCount() {
	m.usage_count = nil
	m.addusage_count = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TagMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TagMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Tag entity.
// If the Tag object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TagMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TagMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddStoryIDs adds the "stories" edge to the Story entity by ids.
func (m *TagMutation) AddStoryIDs(ids ...int) {
	if m.stories == nil {
		m.stories = make(map[int]struct{})
	}
	for i := range ids {
		m.stories[ids[i]] = struct{}{}
	}
}

// ClearStories clears the "stories" edge to the Story entity.
func (m *TagMutation) ClearStories() {
	m.clearedstories = true
}

// StoriesCleared reports if the "stories" edge to the Story entity was cleared.
func (m *TagMutation) StoriesCleared() bool {
	return m.clearedstories
}

// RemoveStoryIDs removes the "stories" edge to the Story entity by IDs.
func (m *TagMutation) RemoveStoryIDs(ids ...int) {
	if m.removedstories == nil {
		m.removedstories = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.stories, ids[i])
		m.removedstories[ids[i]] = struct{}{}
	}
}

// RemovedStories returns the removed IDs of the "stories" edge to the Story entity.
func (m *TagMutation) RemovedStoriesIDs() (ids []int) {
	for id := range m.removedstories {
		ids = append(ids, id)
	}
	return
}

// StoriesIDs returns the "stories" edge IDs in the mutation.
func (m *TagMutation) StoriesIDs() (ids []int) {
	for id := range m.stories {
		ids = append(ids, id)
	}
	return
}

// ResetStories resets all changes to the "stories" edge.
func (m *TagMutation) ResetStories() {
	m.stories = nil
	m.clearedstories = false
	m.removedstories = nil
}

// Where appends a list predicates to the TagMutation builder.
func (m *TagMutation) Where(ps ...predicate.Tag) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TagMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TagMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Tag, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TagMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TagMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Tag).
func (m *TagMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TagMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.name != nil {
		fields = append(fields, tag.FieldName)
	}
	if m.slug != nil {
		fields = append(fields, tag.FieldSlug)
	}
	if m.level != nil {
		fields = append(fields, tag.FieldLevel)
	}
	if m.category != nil {
		fields = append(fields, tag.FieldCategory)
	}
	if m.is_misc != nil {
		fields = append(fields, tag.FieldIsMisc)
	}
	if m.usage_count != nil {
		fields = append(fields, tag.FieldUsageCount)
	}
	if m.created_at != nil {
		fields = append(fields, tag.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TagMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tag.FieldName:
		return m.Name()
	case tag.FieldSlug:
		return m.Slug()
	case tag.FieldLevel:
		return m.Level()
	case tag.FieldCategory:
		return m.Category()
	case tag.FieldIsMisc:
		return m.IsMisc()
	case tag.FieldUsageCount:
		return m.UsageCount()
	case tag.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TagMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tag.FieldName:
		return m.OldName(ctx)
	case tag.FieldSlug:
		return m.OldSlug(ctx)
	case tag.FieldLevel:
		return m.OldLevel(ctx)
	case tag.FieldCategory:
		return m.OldCategory(ctx)
	case tag.FieldIsMisc:
		return m.OldIsMisc(ctx)
	case tag.FieldUsageCount:
		return m.OldUsageCount(ctx)
	case tag.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Tag field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TagMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tag.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case tag.FieldSlug:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlug(v)
		return nil
	case tag.FieldLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLevel(v)
		return nil
	case tag.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case tag.FieldIsMisc:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsMisc(v)
		return nil
	case tag.FieldUsageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsageCount(v)
		return nil
	case tag.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Tag field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TagMutation) AddedFields() []string {
	var fields []string
	if m.addlevel != nil {
		fields = append(fields, tag.FieldLevel)
	}
	if m.addusage_count != nil {
		fields = append(fields, tag.FieldUsageCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TagMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case tag.FieldLevel:
		return m.AddedLevel()
	case tag.FieldUsageCount:
		return m.AddedUsageCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TagMutation) AddField(name string, value ent.Value) error {
	switch name {
	case tag.FieldLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLevel(v)
		return nil
	case tag.FieldUsageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUsageCount(v)
		return nil
	}
	return fmt.Errorf("unknown Tag numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TagMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(tag.FieldCategory) {
		fields = append(fields, tag.FieldCategory)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TagMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TagMutation) ClearField(name string) error {
	switch name {
	case tag.FieldCategory:
		m.ClearCategory()
		return nil
	}
	return fmt.Errorf("unknown Tag nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TagMutation) ResetField(name string) error {
	switch name {
	case tag.FieldName:
		m.ResetName()
		return nil
	case tag.FieldSlug:
		m.ResetSlug()
		return nil
	case tag.FieldLevel:
		m.ResetLevel()
		return nil
	case tag.FieldCategory:
		m.ResetCategory()
		return nil
	case tag.FieldIsMisc:
		m.ResetIsMisc()
		return nil
	case tag.FieldUsageCount:
		m.ResetUsageCount()
		return nil
	case tag.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Tag field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TagMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.stories != nil {
		edges = append(edges, tag.EdgeStories)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TagMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case tag.EdgeStories:
		ids := make([]ent.Value, 0, len(m.stories))
		for id := range m.stories {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TagMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedstories != nil {
		edges = append(edges, tag.EdgeStories)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TagMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case tag.EdgeStories:
		ids := make([]ent.Value, 0, len(m.removedstories))
		for id := range m.removedstories {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TagMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedstories {
		edges = append(edges, tag.EdgeStories)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TagMutation) EdgeCleared(name string) bool {
	switch name {
	case tag.EdgeStories:
		return m.clearedstories
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TagMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Tag unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TagMutation) ResetEdge(name string) error {
	switch name {
	case tag.EdgeStories:
		m.ResetStories()
		return nil
	}
	return fmt.Errorf("unknown Tag edge %s", name)
}

// TagProposalMutation represents an operation that mutates the TagProposal nodes in the graph.
type TagProposalMutation struct {
	config
	op                        Op
	typ                       string
	id                        *string
	proposal_type             *tagproposal.ProposalType
	status                    *tagproposal.Status
	priority                  *tagproposal.Priority
	reason                    *string
	data                      *json.RawMessage
	appenddata                json.RawMessage
	affected_stories_count    *int
	addaffected_stories_count *int
	created_at                *time.Time
	reviewed_at               *time.Time
	reviewed_by               *string
	executed_at               *time.Time
	clearedFields             map[string]struct{}
	run                       *string
	clearedrun                bool
	done                      bool
	oldValue                  func(context.Context) (*TagProposal, error)
	predicates                []predicate.TagProposal
}

var _ ent.Mutation = (*TagProposalMutation)(nil)

// tagproposalOption allows management of the mutation configuration using functional options.
type tagproposalOption func(*TagProposalMutation)

// newTagProposalMutation creates new mutation for the TagProposal entity.
func newTagProposalMutation(c config, op Op, opts ...tagproposalOption) *TagProposalMutation {
	m := &TagProposalMutation{
		config:        c,
		op:            op,
		typ:           TypeTagProposal,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTagProposalID sets the ID field of the mutation.
func withTagProposalID(id string) tagproposalOption {
	return func(m *TagProposalMutation) {
		var (
			err   error
			once  sync.Once
			value *TagProposal
		)
		m.oldValue = func(ctx context.Context) (*TagProposal, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TagProposal.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTagProposal sets the old TagProposal of the mutation.
func withTagProposal(node *TagProposal) tagproposalOption {
	return func(m *TagProposalMutation) {
		m.oldValue = func(context.Context) (*TagProposal, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TagProposalMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TagProposalMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TagProposal entities.
func (m *TagProposalMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TagProposalMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TagProposalMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TagProposal.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentRunID sets the "agent_run_id" field.
func (m *TagProposalMutation) SetAgentRunID(s string) {
	m.run = &s
}

// AgentRunID returns the value of the "agent_run_id" field in the mutation.
func (m *TagProposalMutation) AgentRunID() (r string, exists bool) {
	v := m.run
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentRunID returns the old "agent_run_id" field's value of the TagProposal entity.
// If the TagProposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TagProposalMutation) OldAgentRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentRunID: %w", err)
	}
	return oldValue.AgentRunID, nil
}

// ResetAgentRunID resets all changes to the "agent_run_id" field.
func (m *TagProposalMutation) ResetAgentRunID() {
	m.run = nil
}

// SetProposalType sets the "proposal_type" field.
func (m *TagProposalMutation) SetProposalType(tt tagproposal.ProposalType) {
	m.proposal_type = &tt
}

// ProposalType returns the value of the "proposal_type" field in the mutation.
func (m *TagProposalMutation) ProposalType() (r tagproposal.ProposalType, exists bool) {
	v := m.proposal_type
	if v == nil {
		return
	}
	return *v, true
}

// OldProposalType returns the old "proposal_type" field's value of the TagProposal entity.
// If the TagProposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TagProposalMutation) OldProposalType(ctx context.Context) (v tagproposal.ProposalType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProposalType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProposalType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProposalType: %w", err)
	}
	return oldValue.ProposalType, nil
}

// ResetProposalType resets all changes to the "proposal_type" field.
func (m *TagProposalMutation) ResetProposalType() {
	m.proposal_type = nil
}

// SetStatus sets the "status" field.
func (m *TagProposalMutation) SetStatus(t tagproposal.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TagProposalMutation) Status() (r tagproposal.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the TagProposal entity.
// If the TagProposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TagProposalMutation) OldStatus(ctx context.Context) (v tagproposal.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TagProposalMutation) ResetStatus() {
	m.status = nil
}

// SetPriority sets the "priority" field.
func (m *TagProposalMutation) SetPriority(t tagproposal.Priority) {
	m.priority = &t
}

// Priority returns the value of the "priority" field in the mutation.
func (m *TagProposalMutation) Priority() (r tagproposal.Priority, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the TagProposal entity.
// If the TagProposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TagProposalMutation) OldPriority(ctx context.Context) (v tagproposal.Priority, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// ResetPriority resets all changes to the "priority" field.
func (m *TagProposalMutation) ResetPriority() {
	m.priority = nil
}

// SetReason sets the "reason" field.
func (m *TagProposalMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *TagProposalMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the TagProposal entity.
// If the TagProposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TagProposalMutation) OldReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ResetReason resets all changes to the "reason" field.
func (m *TagProposalMutation) ResetReason() {
	m.reason = nil
}

// SetData sets the "data" field.
func (m *TagProposalMutation) SetData(jm json.RawMessage) {
	m.data = &jm
	m.appenddata = nil
}

// Data returns the value of the "data" field in the mutation.
func (m *TagProposalMutation) Data() (r json.RawMessage, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldData returns the old "data" field's value of the TagProposal entity.
// If the TagProposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TagProposalMutation) OldData(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldData: %w", err)
	}
	return oldValue.Data, nil
}

// AppendData adds jm to the "data" field.
func (m *TagProposalMutation) AppendData(jm json.RawMessage) {
	m.appenddata = append(m.appenddata, jm...)
}

// AppendedData returns the list of values that were appended to the "data" field in this mutation.
func (m *TagProposalMutation) AppendedData() (json.RawMessage, bool) {
	if len(m.appenddata) == 0 {
		return nil, false
	}
	return m.appenddata, true
}

// ResetData resets all changes to the "data" field.
func (m *TagProposalMutation) ResetData() {
	m.data = nil
	m.appenddata = nil
}

// SetAffectedStoriesCount sets the "affected_stories_count" field.
func (m *TagProposalMutation) SetAffectedStoriesCount(i int) {
	m.affected_stories_count = &i
	m.addaffected_stories_count = nil
}

// AffectedStoriesCount returns the value of the "affected_stories_count" field in the mutation.
func (m *TagProposalMutation) AffectedStoriesCount() (r int, exists bool) {
	v := m.affected_stories_count
	if v == nil {
		return
	}
	return *v, true
}

// OldAffectedStoriesCount returns the old "affected_stories_count" field's value of the TagProposal entity.
// If the TagProposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TagProposalMutation) OldAffectedStoriesCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAffectedStoriesCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAffectedStoriesCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAffectedStoriesCount: %w", err)
	}
	return oldValue.AffectedStoriesCount, nil
}

// AddAffectedStoriesCount adds i to the "affected_stories_count" field.
func (m *TagProposalMutation) AddAffectedStoriesCount(i int) {
	if m.addaffected_stories_count != nil {
		*m.addaffected_stories_count += i
	} else {
		m.addaffected_stories_count = &i
	}
}

// AddedAffectedStoriesCount returns the value that was added to the "affected_stories_count" field in this mutation.
func (m *TagProposalMutation) AddedAffectedStoriesCount() (r int, exists bool) {
	v := m.addaffected_stories_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetAffectedStoriesCount resets all changes to the "affected_stories_count" field.
func (m *TagProposalMutation) ResetAffectedStoriesCount() {
	m.affected_stories_count = nil
	m.addaffected_stories_count = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TagProposalMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TagProposalMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TagProposal entity.
// If the TagProposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TagProposalMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TagProposalMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetReviewedAt sets the "reviewed_at" field.
func (m *TagProposalMutation) SetReviewedAt(t time.Time) {
	m.reviewed_at = &t
}

// ReviewedAt returns the value of the "reviewed_at" field in the mutation.
func (m *TagProposalMutation) ReviewedAt() (r time.Time, exists bool) {
	v := m.reviewed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewedAt returns the old "reviewed_at" field's value of the TagProposal entity.
// If the TagProposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TagProposalMutation) OldReviewedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewedAt: %w", err)
	}
	return oldValue.ReviewedAt, nil
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (m *TagProposalMutation) ClearReviewedAt() {
	m.reviewed_at = nil
	m.clearedFields[tagproposal.FieldReviewedAt] = struct{}{}
}

// ReviewedAtCleared returns if the "reviewed_at" field was cleared in this mutation.
func (m *TagProposalMutation) ReviewedAtCleared() bool {
	_, ok := m.clearedFields[tagproposal.FieldReviewedAt]
	return ok
}

// ResetReviewedAt resets all changes to the "reviewed_at" field.
func (m *TagProposalMutation) ResetReviewedAt() {
	m.reviewed_at = nil
	delete(m.clearedFields, tagproposal.FieldReviewedAt)
}

// SetReviewedBy sets the "reviewed_by" field.
func (m *TagProposalMutation) SetReviewedBy(s string) {
	m.reviewed_by = &s
}

// ReviewedBy returns the value of the "reviewed_by" field in the mutation.
func (m *TagProposalMutation) ReviewedBy() (r string, exists bool) {
	v := m.reviewed_by
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewedBy returns the old "reviewed_by" field's value of the TagProposal entity.
// If the TagProposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TagProposalMutation) OldReviewedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewedBy: %w", err)
	}
	return oldValue.ReviewedBy, nil
}

// ClearReviewedBy clears the value of the "reviewed_by" field.
func (m *TagProposalMutation) ClearReviewedBy() {
	m.reviewed_by = nil
	m.clearedFields[tagproposal.FieldReviewedBy] = struct{}{}
}

// ReviewedByCleared returns if the "reviewed_by" field was cleared in this mutation.
func (m *TagProposalMutation) ReviewedByCleared() bool {
	_, ok := m.clearedFields[tagproposal.FieldReviewedBy]
	return ok
}

// ResetReviewedBy resets all changes to the "reviewed_by" field.
func (m *TagProposalMutation) ResetReviewedBy() {
	m.reviewed_by = nil
	delete(m.clearedFields, tagproposal.FieldReviewedBy)
}

// SetExecutedAt sets the "executed_at" field.
func (m *TagProposalMutation) SetExecutedAt(t time.Time) {
	m.executed_at = &t
}

// ExecutedAt returns the value of the "executed_at" field in the mutation.
func (m *TagProposalMutation) ExecutedAt() (r time.Time, exists bool) {
	v := m.executed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutedAt returns the old "executed_at" field's value of the TagProposal entity.
// If the TagProposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TagProposalMutation) OldExecutedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutedAt: %w", err)
	}
	return oldValue.ExecutedAt, nil
}

// ClearExecutedAt clears the value of the "executed_at" field.
func (m *TagProposalMutation) ClearExecutedAt() {
	m.executed_at = nil
	m.clearedFields[tagproposal.FieldExecutedAt] = struct{}{}
}

// ExecutedAtCleared returns if the "executed_at" field was cleared in this mutation.
func (m *TagProposalMutation) ExecutedAtCleared() bool {
	_, ok := m.clearedFields[tagproposal.FieldExecutedAt]
	return ok
}

// ResetExecutedAt resets all changes to the "executed_at" field.
func (m *TagProposalMutation) ResetExecutedAt() {
	m.executed_at = nil
	delete(m.clearedFields, tagproposal.FieldExecutedAt)
}

// SetRunID sets the "run" edge to the AgentRun entity by id.
func (m *TagProposalMutation) SetRunID(id string) {
	m.run = &id
}

// ClearRun clears the "run" edge to the AgentRun entity.
func (m *TagProposalMutation) ClearRun() {
	m.clearedrun = true
	m.clearedFields[tagproposal.FieldAgentRunID] = struct{}{}
}

// RunCleared reports if the "run" edge to the AgentRun entity was cleared.
func (m *TagProposalMutation) RunCleared() bool {
	return m.clearedrun
}

// RunID returns the "run" edge ID in the mutation.
func (m *TagProposalMutation) RunID() (id string, exists bool) {
	if m.run != nil {
		return *m.run, true
	}
	return
}

// RunIDs returns the "run" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RunID instead. It exists only for internal usage by the builders.
func (m *TagProposalMutation) RunIDs() (ids []string) {
	if id := m.run; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRun resets all changes to the "run" edge.
func (m *TagProposalMutation) ResetRun() {
	m.run = nil
	m.clearedrun = false
}

// Where appends a list predicates to the TagProposalMutation builder.
func (m *TagProposalMutation) Where(ps ...predicate.TagProposal) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TagProposalMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TagProposalMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TagProposal, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TagProposalMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TagProposalMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TagProposal).
func (m *TagProposalMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TagProposalMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.run != nil {
		fields = append(fields, tagproposal.FieldAgentRunID)
	}
	if m.proposal_type != nil {
		fields = append(fields, tagproposal.FieldProposalType)
	}
	if m.status != nil {
		fields = append(fields, tagproposal.FieldStatus)
	}
	if m.priority != nil {
		fields = append(fields, tagproposal.FieldPriority)
	}
	if m.reason != nil {
		fields = append(fields, tagproposal.FieldReason)
	}
	if m.data != nil {
		fields = append(fields, tagproposal.FieldData)
	}
	if m.affected_stories_count != nil {
		fields = append(fields, tagproposal.FieldAffectedStoriesCount)
	}
	if m.created_at != nil {
		fields = append(fields, tagproposal.FieldCreatedAt)
	}
	if m.reviewed_at != nil {
		fields = append(fields, tagproposal.FieldReviewedAt)
	}
	if m.reviewed_by != nil {
		fields = append(fields, tagproposal.FieldReviewedBy)
	}
	if m.executed_at != nil {
		fields = append(fields, tagproposal.FieldExecutedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TagProposalMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tagproposal.FieldAgentRunID:
		return m.AgentRunID()
	case tagproposal.FieldProposalType:
		return m.ProposalType()
	case tagproposal.FieldStatus:
		return m.Status()
	case tagproposal.FieldPriority:
		return m.Priority()
	case tagproposal.FieldReason:
		return m.Reason()
	case tagproposal.FieldData:
		return m.Data()
	case tagproposal.FieldAffectedStoriesCount:
		return m.AffectedStoriesCount()
	case tagproposal.FieldCreatedAt:
		return m.CreatedAt()
	case tagproposal.FieldReviewedAt:
		return m.ReviewedAt()
	case tagproposal.FieldReviewedBy:
		return m.ReviewedBy()
	case tagproposal.FieldExecutedAt:
		return m.ExecutedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TagProposalMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tagproposal.FieldAgentRunID:
		return m.OldAgentRunID(ctx)
	case tagproposal.FieldProposalType:
		return m.OldProposalType(ctx)
	case tagproposal.FieldStatus:
		return m.OldStatus(ctx)
	case tagproposal.FieldPriority:
		return m.OldPriority(ctx)
	case tagproposal.FieldReason:
		return m.OldReason(ctx)
	case tagproposal.FieldData:
		return m.OldData(ctx)
	case tagproposal.FieldAffectedStoriesCount:
		return m.OldAffectedStoriesCount(ctx)
	case tagproposal.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case tagproposal.FieldReviewedAt:
		return m.OldReviewedAt(ctx)
	case tagproposal.FieldReviewedBy:
		return m.OldReviewedBy(ctx)
	case tagproposal.FieldExecutedAt:
		return m.OldExecutedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TagProposal field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TagProposalMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tagproposal.FieldAgentRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentRunID(v)
		return nil
	case tagproposal.FieldProposalType:
		v, ok := value.(tagproposal.ProposalType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProposalType(v)
		return nil
	case tagproposal.FieldStatus:
		v, ok := value.(tagproposal.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case tagproposal.FieldPriority:
		v, ok := value.(tagproposal.Priority)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case tagproposal.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case tagproposal.FieldData:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetData(v)
		return nil
	case tagproposal.FieldAffectedStoriesCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAffectedStoriesCount(v)
		return nil
	case tagproposal.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case tagproposal.FieldReviewedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewedAt(v)
		return nil
	case tagproposal.FieldReviewedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewedBy(v)
		return nil
	case tagproposal.FieldExecutedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TagProposal field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TagProposalMutation) AddedFields() []string {
	var fields []string
	if m.addaffected_stories_count != nil {
		fields = append(fields, tagproposal.FieldAffectedStoriesCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TagProposalMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case tagproposal.FieldAffectedStoriesCount:
		return m.AddedAffectedStoriesCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TagProposalMutation) AddField(name string, value ent.Value) error {
	switch name {
	case tagproposal.FieldAffectedStoriesCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAffectedStoriesCount(v)
		return nil
	}
	return fmt.Errorf("unknown TagProposal numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TagProposalMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(tagproposal.FieldReviewedAt) {
		fields = append(fields, tagproposal.FieldReviewedAt)
	}
	if m.FieldCleared(tagproposal.FieldReviewedBy) {
		fields = append(fields, tagproposal.FieldReviewedBy)
	}
	if m.FieldCleared(tagproposal.FieldExecutedAt) {
		fields = append(fields, tagproposal.FieldExecutedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TagProposalMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TagProposalMutation) ClearField(name string) error {
	switch name {
	case tagproposal.FieldReviewedAt:
		m.ClearReviewedAt()
		return nil
	case tagproposal.FieldReviewedBy:
		m.ClearReviewedBy()
		return nil
	case tagproposal.FieldExecutedAt:
		m.ClearExecutedAt()
		return nil
	}
	return fmt.Errorf("unknown TagProposal nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TagProposalMutation) ResetField(name string) error {
	switch name {
	case tagproposal.FieldAgentRunID:
		m.ResetAgentRunID()
		return nil
	case tagproposal.FieldProposalType:
		m.ResetProposalType()
		return nil
	case tagproposal.FieldStatus:
		m.ResetStatus()
		return nil
	case tagproposal.FieldPriority:
		m.ResetPriority()
		return nil
	case tagproposal.FieldReason:
		m.ResetReason()
		return nil
	case tagproposal.FieldData:
		m.ResetData()
		return nil
	case tagproposal.FieldAffectedStoriesCount:
		m.ResetAffectedStoriesCount()
		return nil
	case tagproposal.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case tagproposal.FieldReviewedAt:
		m.ResetReviewedAt()
		return nil
	case tagproposal.FieldReviewedBy:
		m.ResetReviewedBy()
		return nil
	case tagproposal.FieldExecutedAt:
		m.ResetExecutedAt()
		return nil
	}
	return fmt.Errorf("unknown TagProposal field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TagProposalMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.run != nil {
		edges = append(edges, tagproposal.EdgeRun)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TagProposalMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case tagproposal.EdgeRun:
		if id := m.run; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TagProposalMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TagProposalMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TagProposalMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrun {
		edges = append(edges, tagproposal.EdgeRun)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TagProposalMutation) EdgeCleared(name string) bool {
	switch name {
	case tagproposal.EdgeRun:
		return m.clearedrun
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TagProposalMutation) ClearEdge(name string) error {
	switch name {
	case tagproposal.EdgeRun:
		m.ClearRun()
		return nil
	}
	return fmt.Errorf("unknown TagProposal unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TagProposalMutation) ResetEdge(name string) error {
	switch name {
	case tagproposal.EdgeRun:
		m.ResetRun()
		return nil
	}
	return fmt.Errorf("unknown TagProposal edge %s", name)
}
