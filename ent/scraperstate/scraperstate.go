// Code generated by ent, DO NOT EDIT.

package scraperstate

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the scraperstate type in the database.
	Label = "scraper_state"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldStateType holds the string denoting the state_type field in the database.
	FieldStateType = "state_type"
	// FieldCurrentItemID holds the string denoting the current_item_id field in the database.
	FieldCurrentItemID = "current_item_id"
	// FieldTargetTimestamp holds the string denoting the target_timestamp field in the database.
	FieldTargetTimestamp = "target_timestamp"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldItemsProcessed holds the string denoting the items_processed field in the database.
	FieldItemsProcessed = "items_processed"
	// FieldStoriesFound holds the string denoting the stories_found field in the database.
	FieldStoriesFound = "stories_found"
	// FieldLastRunAt holds the string denoting the last_run_at field in the database.
	FieldLastRunAt = "last_run_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the scraperstate in the database.
	Table = "scraper_states"
)

// Columns holds all SQL columns for scraperstate fields.
var Columns = []string{
	FieldID,
	FieldStateType,
	FieldCurrentItemID,
	FieldTargetTimestamp,
	FieldStatus,
	FieldItemsProcessed,
	FieldStoriesFound,
	FieldLastRunAt,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// DefaultCurrentItemID holds the default value on creation for the "current_item_id" field.
	DefaultCurrentItemID int64
	// DefaultItemsProcessed holds the default value on creation for the "items_processed" field.
	DefaultItemsProcessed int64
	// DefaultStoriesFound holds the default value on creation for the "stories_found" field.
	DefaultStoriesFound int64
	// DefaultLastRunAt holds the default value on creation for the "last_run_at" field.
	DefaultLastRunAt func() time.Time
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// StateType defines the type for the "state_type" enum field.
type StateType string

// StateType values.
const (
	StateTypeBackfill   StateType = "backfill"
	StateTypeContinuous StateType = "continuous"
)

func (st StateType) String() string {
	return string(st)
}

// StateTypeValidator is a validator for the "state_type" field enum values. It is called by the builders before save.
func StateTypeValidator(st StateType) error {
	switch st {
	case StateTypeBackfill, StateTypeContinuous:
		return nil
	default:
		return fmt.Errorf("scraperstate: invalid enum value for state_type field: %q", st)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusActive is the default value of the Status enum.
const DefaultStatus = StatusActive

// Status values.
const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusPaused    Status = "paused"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusActive, StatusCompleted, StatusPaused:
		return nil
	default:
		return fmt.Errorf("scraperstate: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the ScraperState queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByStateType orders the results by the state_type field.
func ByStateType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStateType, opts...).ToFunc()
}

// ByCurrentItemID orders the results by the current_item_id field.
func ByCurrentItemID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentItemID, opts...).ToFunc()
}

// ByTargetTimestamp orders the results by the target_timestamp field.
func ByTargetTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetTimestamp, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByItemsProcessed orders the results by the items_processed field.
func ByItemsProcessed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldItemsProcessed, opts...).ToFunc()
}

// ByStoriesFound orders the results by the stories_found field.
func ByStoriesFound(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStoriesFound, opts...).ToFunc()
}

// ByLastRunAt orders the results by the last_run_at field.
func ByLastRunAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastRunAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
