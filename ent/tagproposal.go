// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hnscribe/hnscribe/ent/agentrun"
	"github.com/hnscribe/hnscribe/ent/tagproposal"
)

// TagProposal is the model entity for the TagProposal schema.
type TagProposal struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// AgentRunID holds the value of the "agent_run_id" field.
	AgentRunID string `json:"agent_run_id,omitempty"`
	// ProposalType holds the value of the "proposal_type" field.
	ProposalType tagproposal.ProposalType `json:"proposal_type,omitempty"`
	// Transitions: pending->approved|rejected, approved->executed
	Status tagproposal.Status `json:"status,omitempty"`
	// Priority holds the value of the "priority" field.
	Priority tagproposal.Priority `json:"priority,omitempty"`
	// Reason holds the value of the "reason" field.
	Reason string `json:"reason,omitempty"`
	// Payload shape depends on proposal_type
	Data json.RawMessage `json:"data,omitempty"`
	// AffectedStoriesCount holds the value of the "affected_stories_count" field.
	AffectedStoriesCount int `json:"affected_stories_count,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// ReviewedAt holds the value of the "reviewed_at" field.
	ReviewedAt *time.Time `json:"reviewed_at,omitempty"`
	// ReviewedBy holds the value of the "reviewed_by" field.
	ReviewedBy *string `json:"reviewed_by,omitempty"`
	// Set iff status=executed
	ExecutedAt *time.Time `json:"executed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TagProposalQuery when eager-loading is set.
	Edges        TagProposalEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TagProposalEdges holds the relations/edges for other nodes in the graph.
type TagProposalEdges struct {
	// Run holds the value of the run edge.
	Run *AgentRun `json:"run,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RunOrErr returns the Run value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TagProposalEdges) RunOrErr() (*AgentRun, error) {
	if e.Run != nil {
		return e.Run, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: agentrun.Label}
	}
	return nil, &NotLoadedError{edge: "run"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TagProposal) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case tagproposal.FieldData:
			values[i] = new([]byte)
		case tagproposal.FieldAffectedStoriesCount:
			values[i] = new(sql.NullInt64)
		case tagproposal.FieldID, tagproposal.FieldAgentRunID, tagproposal.FieldProposalType, tagproposal.FieldStatus, tagproposal.FieldPriority, tagproposal.FieldReason, tagproposal.FieldReviewedBy:
			values[i] = new(sql.NullString)
		case tagproposal.FieldCreatedAt, tagproposal.FieldReviewedAt, tagproposal.FieldExecutedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TagProposal fields.
func (_m *TagProposal) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case tagproposal.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case tagproposal.FieldAgentRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_run_id", values[i])
			} else if value.Valid {
				_m.AgentRunID = value.String
			}
		case tagproposal.FieldProposalType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field proposal_type", values[i])
			} else if value.Valid {
				_m.ProposalType = tagproposal.ProposalType(value.String)
			}
		case tagproposal.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = tagproposal.Status(value.String)
			}
		case tagproposal.FieldPriority:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = tagproposal.Priority(value.String)
			}
		case tagproposal.FieldReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reason", values[i])
			} else if value.Valid {
				_m.Reason = value.String
			}
		case tagproposal.FieldData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Data); err != nil {
					return fmt.Errorf("unmarshal field data: %w", err)
				}
			}
		case tagproposal.FieldAffectedStoriesCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field affected_stories_count", values[i])
			} else if value.Valid {
				_m.AffectedStoriesCount = int(value.Int64)
			}
		case tagproposal.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case tagproposal.FieldReviewedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field reviewed_at", values[i])
			} else if value.Valid {
				_m.ReviewedAt = new(time.Time)
				*_m.ReviewedAt = value.Time
			}
		case tagproposal.FieldReviewedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reviewed_by", values[i])
			} else if value.Valid {
				_m.ReviewedBy = new(string)
				*_m.ReviewedBy = value.String
			}
		case tagproposal.FieldExecutedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field executed_at", values[i])
			} else if value.Valid {
				_m.ExecutedAt = new(time.Time)
				*_m.ExecutedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TagProposal.
// This includes values selected through modifiers, order, etc.
func (_m *TagProposal) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRun queries the "run" edge of the TagProposal entity.
func (_m *TagProposal) QueryRun() *AgentRunQuery {
	return NewTagProposalClient(_m.config).QueryRun(_m)
}

// Update returns a builder for updating this TagProposal.
// Note that you need to call TagProposal.Unwrap() before calling this method if this TagProposal
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TagProposal) Update() *TagProposalUpdateOne {
	return NewTagProposalClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TagProposal entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TagProposal) Unwrap() *TagProposal {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TagProposal is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TagProposal) String() string {
	var builder strings.Builder
	builder.WriteString("TagProposal(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("agent_run_id=")
	builder.WriteString(_m.AgentRunID)
	builder.WriteString(", ")
	builder.WriteString("proposal_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProposalType))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(fmt.Sprintf("%v", _m.Priority))
	builder.WriteString(", ")
	builder.WriteString("reason=")
	builder.WriteString(_m.Reason)
	builder.WriteString(", ")
	builder.WriteString("data=")
	builder.WriteString(fmt.Sprintf("%v", _m.Data))
	builder.WriteString(", ")
	builder.WriteString("affected_stories_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.AffectedStoriesCount))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.ReviewedAt; v != nil {
		builder.WriteString("reviewed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ReviewedBy; v != nil {
		builder.WriteString("reviewed_by=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ExecutedAt; v != nil {
		builder.WriteString("executed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// TagProposals is a parsable slice of TagProposal.
type TagProposals []*TagProposal
