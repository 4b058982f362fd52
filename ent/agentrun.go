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
)

// AgentRun is the model entity for the AgentRun schema.
type AgentRun struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// RunType holds the value of the "run_type" field.
	RunType agentrun.RunType `json:"run_type,omitempty"`
	// Status holds the value of the "status" field.
	Status agentrun.Status `json:"status,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// Null iff status=running
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// Analysis report / run summary
	ResultData map[string]interface{} `json:"result_data,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AgentRunQuery when eager-loading is set.
	Edges        AgentRunEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AgentRunEdges holds the relations/edges for other nodes in the graph.
type AgentRunEdges struct {
	// Proposals holds the value of the proposals edge.
	Proposals []*TagProposal `json:"proposals,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ProposalsOrErr returns the Proposals value or an error if the edge
// was not loaded in eager-loading.
func (e AgentRunEdges) ProposalsOrErr() ([]*TagProposal, error) {
	if e.loadedTypes[0] {
		return e.Proposals, nil
	}
	return nil, &NotLoadedError{edge: "proposals"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AgentRun) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case agentrun.FieldResultData:
			values[i] = new([]byte)
		case agentrun.FieldID, agentrun.FieldRunType, agentrun.FieldStatus, agentrun.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case agentrun.FieldStartedAt, agentrun.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AgentRun fields.
func (_m *AgentRun) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case agentrun.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case agentrun.FieldRunType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_type", values[i])
			} else if value.Valid {
				_m.RunType = agentrun.RunType(value.String)
			}
		case agentrun.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = agentrun.Status(value.String)
			}
		case agentrun.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case agentrun.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case agentrun.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case agentrun.FieldResultData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field result_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ResultData); err != nil {
					return fmt.Errorf("unmarshal field result_data: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AgentRun.
// This includes values selected through modifiers, order, etc.
func (_m *AgentRun) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProposals queries the "proposals" edge of the AgentRun entity.
func (_m *AgentRun) QueryProposals() *TagProposalQuery {
	return NewAgentRunClient(_m.config).QueryProposals(_m)
}

// Update returns a builder for updating this AgentRun.
// Note that you need to call AgentRun.Unwrap() before calling this method if this AgentRun
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AgentRun) Update() *AgentRunUpdateOne {
	return NewAgentRunClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AgentRun entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AgentRun) Unwrap() *AgentRun {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AgentRun is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AgentRun) String() string {
	var builder strings.Builder
	builder.WriteString("AgentRun(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("run_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.RunType))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("result_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResultData))
	builder.WriteByte(')')
	return builder.String()
}

// AgentRuns is a parsable slice of AgentRun.
type AgentRuns []*AgentRun
