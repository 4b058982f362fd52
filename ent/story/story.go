// Code generated by ent, DO NOT EDIT.

package story

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the story type in the database.
	Label = "story"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldHnID holds the string denoting the hn_id field in the database.
	FieldHnID = "hn_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldURL holds the string denoting the url field in the database.
	FieldURL = "url"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldAuthor holds the string denoting the author field in the database.
	FieldAuthor = "author"
	// FieldCommentCount holds the string denoting the comment_count field in the database.
	FieldCommentCount = "comment_count"
	// FieldHnCreatedAt holds the string denoting the hn_created_at field in the database.
	FieldHnCreatedAt = "hn_created_at"
	// FieldIsSummarized holds the string denoting the is_summarized field in the database.
	FieldIsSummarized = "is_summarized"
	// FieldIsTagged holds the string denoting the is_tagged field in the database.
	FieldIsTagged = "is_tagged"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeSummary holds the string denoting the summary edge name in mutations.
	EdgeSummary = "summary"
	// EdgeTags holds the string denoting the tags edge name in mutations.
	EdgeTags = "tags"
	// Table holds the table name of the story in the database.
	Table = "stories"
	// SummaryTable is the table that holds the summary relation/edge.
	SummaryTable = "summaries"
	// SummaryInverseTable is the table name for the Summary entity.
	// It exists in this package in order to avoid circular dependency with the "summary" package.
	SummaryInverseTable = "summaries"
	// SummaryColumn is the table column denoting the summary relation/edge.
	SummaryColumn = "story_id"
	// TagsTable is the table that holds the tags relation/edge. The primary key declared below.
	TagsTable = "story_tags"
	// TagsInverseTable is the table name for the Tag entity.
	// It exists in this package in order to avoid circular dependency with the "tag" package.
	TagsInverseTable = "tags"
)

// Columns holds all SQL columns for story fields.
var Columns = []string{
	FieldID,
	FieldHnID,
	FieldTitle,
	FieldURL,
	FieldScore,
	FieldAuthor,
	FieldCommentCount,
	FieldHnCreatedAt,
	FieldIsSummarized,
	FieldIsTagged,
	FieldCreatedAt,
	FieldUpdatedAt,
}

var (
	// TagsPrimaryKey and TagsColumn2 are the table columns denoting the
	// primary key for the tags relation (M2M).
	TagsPrimaryKey = []string{"story_id", "tag_id"}
)

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
	// DefaultTitle holds the default value on creation for the "title" field.
	DefaultTitle string
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// URLValidator is a validator for the "url" field. It is called by the builders before save.
	URLValidator func(string) error
	// DefaultScore holds the default value on creation for the "score" field.
	DefaultScore int
	// DefaultAuthor holds the default value on creation for the "author" field.
	DefaultAuthor string
	// AuthorValidator is a validator for the "author" field. It is called by the builders before save.
	AuthorValidator func(string) error
	// DefaultCommentCount holds the default value on creation for the "comment_count" field.
	DefaultCommentCount int
	// DefaultIsSummarized holds the default value on creation for the "is_summarized" field.
	DefaultIsSummarized bool
	// DefaultIsTagged holds the default value on creation for the "is_tagged" field.
	DefaultIsTagged bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the Story queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByHnID orders the results by the hn_id field.
func ByHnID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHnID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByURL orders the results by the url field.
func ByURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldURL, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByAuthor orders the results by the author field.
func ByAuthor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAuthor, opts...).ToFunc()
}

// ByCommentCount orders the results by the comment_count field.
func ByCommentCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCommentCount, opts...).ToFunc()
}

// ByHnCreatedAt orders the results by the hn_created_at field.
func ByHnCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHnCreatedAt, opts...).ToFunc()
}

// ByIsSummarized orders the results by the is_summarized field.
func ByIsSummarized(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsSummarized, opts...).ToFunc()
}

// ByIsTagged orders the results by the is_tagged field.
func ByIsTagged(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsTagged, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// BySummaryField orders the results by summary field.
func BySummaryField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSummaryStep(), sql.OrderByField(field, opts...))
	}
}

// ByTagsCount orders the results by tags count.
func ByTagsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTagsStep(), opts...)
	}
}

// ByTags orders the results by tags terms.
func ByTags(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTagsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newSummaryStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SummaryInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, SummaryTable, SummaryColumn),
	)
}
func newTagsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TagsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2M, false, TagsTable, TagsPrimaryKey...),
	)
}
