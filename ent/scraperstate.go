// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hnscribe/hnscribe/ent/scraperstate"
)

// ScraperState is the model entity for the ScraperState schema.
type ScraperState struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// StateType holds the value of the "state_type" field.
	StateType scraperstate.StateType `json:"state_type,omitempty"`
	// Backfill: next ceiling (only decreases). Continuous: last seen id (only increases)
	CurrentItemID int64 `json:"current_item_id,omitempty"`
	// Backfill stop boundary; unused for continuous
	TargetTimestamp *time.Time `json:"target_timestamp,omitempty"`
	// Status holds the value of the "status" field.
	Status scraperstate.Status `json:"status,omitempty"`
	// ItemsProcessed holds the value of the "items_processed" field.
	ItemsProcessed int64 `json:"items_processed,omitempty"`
	// StoriesFound holds the value of the "stories_found" field.
	StoriesFound int64 `json:"stories_found,omitempty"`
	// LastRunAt holds the value of the "last_run_at" field.
	LastRunAt time.Time `json:"last_run_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ScraperState) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case scraperstate.FieldID, scraperstate.FieldCurrentItemID, scraperstate.FieldItemsProcessed, scraperstate.FieldStoriesFound:
			values[i] = new(sql.NullInt64)
		case scraperstate.FieldStateType, scraperstate.FieldStatus:
			values[i] = new(sql.NullString)
		case scraperstate.FieldTargetTimestamp, scraperstate.FieldLastRunAt, scraperstate.FieldCreatedAt, scraperstate.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ScraperState fields.
func (_m *ScraperState) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case scraperstate.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case scraperstate.FieldStateType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state_type", values[i])
			} else if value.Valid {
				_m.StateType = scraperstate.StateType(value.String)
			}
		case scraperstate.FieldCurrentItemID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field current_item_id", values[i])
			} else if value.Valid {
				_m.CurrentItemID = value.Int64
			}
		case scraperstate.FieldTargetTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field target_timestamp", values[i])
			} else if value.Valid {
				_m.TargetTimestamp = new(time.Time)
				*_m.TargetTimestamp = value.Time
			}
		case scraperstate.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = scraperstate.Status(value.String)
			}
		case scraperstate.FieldItemsProcessed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field items_processed", values[i])
			} else if value.Valid {
				_m.ItemsProcessed = value.Int64
			}
		case scraperstate.FieldStoriesFound:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field stories_found", values[i])
			} else if value.Valid {
				_m.StoriesFound = value.Int64
			}
		case scraperstate.FieldLastRunAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_run_at", values[i])
			} else if value.Valid {
				_m.LastRunAt = value.Time
			}
		case scraperstate.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case scraperstate.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ScraperState.
// This includes values selected through modifiers, order, etc.
func (_m *ScraperState) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ScraperState.
// Note that you need to call ScraperState.Unwrap() before calling this method if this ScraperState
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ScraperState) Update() *ScraperStateUpdateOne {
	return NewScraperStateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ScraperState entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ScraperState) Unwrap() *ScraperState {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ScraperState is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ScraperState) String() string {
	var builder strings.Builder
	builder.WriteString("ScraperState(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("state_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.StateType))
	builder.WriteString(", ")
	builder.WriteString("current_item_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentItemID))
	builder.WriteString(", ")
	if v := _m.TargetTimestamp; v != nil {
		builder.WriteString("target_timestamp=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("items_processed=")
	builder.WriteString(fmt.Sprintf("%v", _m.ItemsProcessed))
	builder.WriteString(", ")
	builder.WriteString("stories_found=")
	builder.WriteString(fmt.Sprintf("%v", _m.StoriesFound))
	builder.WriteString(", ")
	builder.WriteString("last_run_at=")
	builder.WriteString(_m.LastRunAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ScraperStates is a parsable slice of ScraperState.
type ScraperStates []*ScraperState
