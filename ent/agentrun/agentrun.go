// Code generated by ent, DO NOT EDIT.

package agentrun

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the agentrun type in the database.
	Label = "agent_run"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "run_id"
	// FieldRunType holds the string denoting the run_type field in the database.
	FieldRunType = "run_type"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldResultData holds the string denoting the result_data field in the database.
	FieldResultData = "result_data"
	// EdgeProposals holds the string denoting the proposals edge name in mutations.
	EdgeProposals = "proposals"
	// TagProposalFieldID holds the string denoting the ID field of the TagProposal.
	TagProposalFieldID = "proposal_id"
	// Table holds the table name of the agentrun in the database.
	Table = "agent_runs"
	// ProposalsTable is the table that holds the proposals relation/edge.
	ProposalsTable = "tag_proposals"
	// ProposalsInverseTable is the table name for the TagProposal entity.
	// It exists in this package in order to avoid circular dependency with the "tagproposal" package.
	ProposalsInverseTable = "tag_proposals"
	// ProposalsColumn is the table column denoting the proposals relation/edge.
	ProposalsColumn = "agent_run_id"
)

// Columns holds all SQL columns for agentrun fields.
var Columns = []string{
	FieldID,
	FieldRunType,
	FieldStatus,
	FieldStartedAt,
	FieldCompletedAt,
	FieldErrorMessage,
	FieldResultData,
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
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
)

// RunType defines the type for the "run_type" enum field.
type RunType string

// RunType values.
const (
	RunTypeAnalysis  RunType = "analysis"
	RunTypeProposal  RunType = "proposal"
	RunTypeAutoApply RunType = "auto-apply"
	RunTypeExecution RunType = "execution"
)

func (rt RunType) String() string {
	return string(rt)
}

// RunTypeValidator is a validator for the "run_type" field enum values. It is called by the builders before save.
func RunTypeValidator(rt RunType) error {
	switch rt {
	case RunTypeAnalysis, RunTypeProposal, RunTypeAutoApply, RunTypeExecution:
		return nil
	default:
		return fmt.Errorf("agentrun: invalid enum value for run_type field: %q", rt)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusRunning is the default value of the Status enum.
const DefaultStatus = StatusRunning

// Status values.
const (
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusRunning, StatusCompleted, StatusFailed:
		return nil
	default:
		return fmt.Errorf("agentrun: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the AgentRun queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRunType orders the results by the run_type field.
func ByRunType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunType, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByProposalsCount orders the results by proposals count.
func ByProposalsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newProposalsStep(), opts...)
	}
}

// ByProposals orders the results by proposals terms.
func ByProposals(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProposalsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newProposalsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProposalsInverseTable, TagProposalFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ProposalsTable, ProposalsColumn),
	)
}
