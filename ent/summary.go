// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hnscribe/hnscribe/ent/story"
	"github.com/hnscribe/hnscribe/ent/summary"
)

// Summary is the model entity for the Summary schema.
type Summary struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// StoryID holds the value of the "story_id" field.
	StoryID int `json:"story_id,omitempty"`
	// Model-generated summary text
	Text string `json:"text,omitempty"`
	// Model identifier that produced the summary
	Model string `json:"model,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SummaryQuery when eager-loading is set.
	Edges        SummaryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SummaryEdges holds the relations/edges for other nodes in the graph.
type SummaryEdges struct {
	// Story holds the value of the story edge.
	Story *Story `json:"story,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// StoryOrErr returns the Story value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SummaryEdges) StoryOrErr() (*Story, error) {
	if e.Story != nil {
		return e.Story, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: story.Label}
	}
	return nil, &NotLoadedError{edge: "story"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Summary) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case summary.FieldID, summary.FieldStoryID:
			values[i] = new(sql.NullInt64)
		case summary.FieldText, summary.FieldModel:
			values[i] = new(sql.NullString)
		case summary.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Summary fields.
func (_m *Summary) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case summary.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case summary.FieldStoryID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field story_id", values[i])
			} else if value.Valid {
				_m.StoryID = int(value.Int64)
			}
		case summary.FieldText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field text", values[i])
			} else if value.Valid {
				_m.Text = value.String
			}
		case summary.FieldModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model", values[i])
			} else if value.Valid {
				_m.Model = value.String
			}
		case summary.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Summary.
// This includes values selected through modifiers, order, etc.
func (_m *Summary) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryStory queries the "story" edge of the Summary entity.
func (_m *Summary) QueryStory() *StoryQuery {
	return NewSummaryClient(_m.config).QueryStory(_m)
}

// Update returns a builder for updating this Summary.
// Note that you need to call Summary.Unwrap() before calling this method if this Summary
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Summary) Update() *SummaryUpdateOne {
	return NewSummaryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Summary entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Summary) Unwrap() *Summary {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Summary is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Summary) String() string {
	var builder strings.Builder
	builder.WriteString("Summary(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("story_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.StoryID))
	builder.WriteString(", ")
	builder.WriteString("text=")
	builder.WriteString(_m.Text)
	builder.WriteString(", ")
	builder.WriteString("model=")
	builder.WriteString(_m.Model)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Summaries is a parsable slice of Summary.
type Summaries []*Summary
