// Code generated by ent, DO NOT EDIT.

package summary

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the summary type in the database.
	Label = "summary"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldStoryID holds the string denoting the story_id field in the database.
	FieldStoryID = "story_id"
	// FieldText holds the string denoting the text field in the database.
	FieldText = "text"
	// FieldModel holds the string denoting the model field in the database.
	FieldModel = "model"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeStory holds the string denoting the story edge name in mutations.
	EdgeStory = "story"
	// Table holds the table name of the summary in the database.
	Table = "summaries"
	// StoryTable is the table that holds the story relation/edge.
	StoryTable = "summaries"
	// StoryInverseTable is the table name for the Story entity.
	// It exists in this package in order to avoid circular dependency with the "story" package.
	StoryInverseTable = "stories"
	// StoryColumn is the table column denoting the story relation/edge.
	StoryColumn = "story_id"
)

// Columns holds all SQL columns for summary fields.
var Columns = []string{
	FieldID,
	FieldStoryID,
	FieldText,
	FieldModel,
	FieldCreatedAt,
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
	// DefaultModel holds the default value on creation for the "model" field.
	DefaultModel string
	// ModelValidator is a validator for the "model" field. It is called by the builders before save.
	ModelValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Summary queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByStoryID orders the results by the story_id field.
func ByStoryID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStoryID, opts...).ToFunc()
}

// ByText orders the results by the text field.
func ByText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldText, opts...).ToFunc()
}

// ByModel orders the results by the model field.
func ByModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModel, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByStoryField orders the results by story field.
func ByStoryField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStoryStep(), sql.OrderByField(field, opts...))
	}
}
func newStoryStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StoryInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, StoryTable, StoryColumn),
	)
}
