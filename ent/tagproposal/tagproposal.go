// Code generated by ent, DO NOT EDIT.

package tagproposal

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the tagproposal type in the database.
	Label = "tag_proposal"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "proposal_id"
	// FieldAgentRunID holds the string denoting the agent_run_id field in the database.
	FieldAgentRunID = "agent_run_id"
	// FieldProposalType holds the string denoting the proposal_type field in the database.
	FieldProposalType = "proposal_type"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldReason holds the string denoting the reason field in the database.
	FieldReason = "reason"
	// FieldData holds the string denoting the data field in the database.
	FieldData = "data"
	// FieldAffectedStoriesCount holds the string denoting the affected_stories_count field in the database.
	FieldAffectedStoriesCount = "affected_stories_count"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldReviewedAt holds the string denoting the reviewed_at field in the database.
	FieldReviewedAt = "reviewed_at"
	// FieldReviewedBy holds the string denoting the reviewed_by field in the database.
	FieldReviewedBy = "reviewed_by"
	// FieldExecutedAt holds the string denoting the executed_at field in the database.
	FieldExecutedAt = "executed_at"
	// EdgeRun holds the string denoting the run edge name in mutations.
	EdgeRun = "run"
	// AgentRunFieldID holds the string denoting the ID field of the AgentRun.
	AgentRunFieldID = "run_id"
	// Table holds the table name of the tagproposal in the database.
	Table = "tag_proposals"
	// RunTable is the table that holds the run relation/edge.
	RunTable = "tag_proposals"
	// RunInverseTable is the table name for the AgentRun entity.
	// It exists in this package in order to avoid circular dependency with the "agentrun" package.
	RunInverseTable = "agent_runs"
	// RunColumn is the table column denoting the run relation/edge.
	RunColumn = "agent_run_id"
)

// Columns holds all SQL columns for tagproposal fields.
var Columns = []string{
	FieldID,
	FieldAgentRunID,
	FieldProposalType,
	FieldStatus,
	FieldPriority,
	FieldReason,
	FieldData,
	FieldAffectedStoriesCount,
	FieldCreatedAt,
	FieldReviewedAt,
	FieldReviewedBy,
	FieldExecutedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultAffectedStoriesCount holds the default value on creation for the "affected_stories_count" field.
	DefaultAffectedStoriesCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// ReviewedByValidator is a validator for the "reviewed_by" field. It is called by the builders before save.
	ReviewedByValidator func(string) error
)

// ProposalType defines the type for the "proposal_type" enum field.
type ProposalType string

// ProposalType values.
const (
	ProposalTypeCreateTag      ProposalType = "create_tag"
	ProposalTypeMergeTags      ProposalType = "merge_tags"
	ProposalTypeRetireTag      ProposalType = "retire_tag"
	ProposalTypeReviewCategory ProposalType = "review_category"
)

func (pt ProposalType) String() string {
	return string(pt)
}

// ProposalTypeValidator is a validator for the "proposal_type" field enum values. It is called by the builders before save.
func ProposalTypeValidator(pt ProposalType) error {
	switch pt {
	case ProposalTypeCreateTag, ProposalTypeMergeTags, ProposalTypeRetireTag, ProposalTypeReviewCategory:
		return nil
	default:
		return fmt.Errorf("tagproposal: invalid enum value for proposal_type field: %q", pt)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
	StatusExecuted Status = "executed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusExecuted:
		return nil
	default:
		return fmt.Errorf("tagproposal: invalid enum value for status field: %q", s)
	}
}

// Priority defines the type for the "priority" enum field.
type Priority string

// PriorityMedium is the default value of the Priority enum.
const DefaultPriority = PriorityMedium

// Priority values.
const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (pr Priority) String() string {
	return string(pr)
}

// PriorityValidator is a validator for the "priority" field enum values. It is called by the builders before save.
func PriorityValidator(pr Priority) error {
	switch pr {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return nil
	default:
		return fmt.Errorf("tagproposal: invalid enum value for priority field: %q", pr)
	}
}

// OrderOption defines the ordering options for the TagProposal queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAgentRunID orders the results by the agent_run_id field.
func ByAgentRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentRunID, opts...).ToFunc()
}

// ByProposalType orders the results by the proposal_type field.
func ByProposalType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProposalType, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByReason orders the results by the reason field.
func ByReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReason, opts...).ToFunc()
}

// ByAffectedStoriesCount orders the results by the affected_stories_count field.
func ByAffectedStoriesCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAffectedStoriesCount, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByReviewedAt orders the results by the reviewed_at field.
func ByReviewedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewedAt, opts...).ToFunc()
}

// ByReviewedBy orders the results by the reviewed_by field.
func ByReviewedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewedBy, opts...).ToFunc()
}

// ByExecutedAt orders the results by the executed_at field.
func ByExecutedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExecutedAt, opts...).ToFunc()
}

// ByRunField orders the results by run field.
func ByRunField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRunStep(), sql.OrderByField(field, opts...))
	}
}
func newRunStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RunInverseTable, AgentRunFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
	)
}
