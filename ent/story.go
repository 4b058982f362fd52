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

// Story is the model entity for the Story schema.
type Story struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Upstream HN item id
	HnID int64 `json:"hn_id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Null unless an absolute http(s) URL
	URL *string `json:"url,omitempty"`
	// Score holds the value of the "score" field.
	Score int `json:"score,omitempty"`
	// Author holds the value of the "author" field.
	Author string `json:"author,omitempty"`
	// CommentCount holds the value of the "comment_count" field.
	CommentCount int `json:"comment_count,omitempty"`
	// Upstream creation time; never rewritten on upsert
	HnCreatedAt time.Time `json:"hn_created_at,omitempty"`
	// Owned by the enrichment pipeline
	IsSummarized bool `json:"is_summarized,omitempty"`
	// Owned by the enrichment pipeline
	IsTagged bool `json:"is_tagged,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the StoryQuery when eager-loading is set.
	Edges        StoryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// StoryEdges holds the relations/edges for other nodes in the graph.
type StoryEdges struct {
	// Summary holds the value of the summary edge.
	Summary *Summary `json:"summary,omitempty"`
	// Tags holds the value of the tags edge.
	Tags []*Tag `json:"tags,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// SummaryOrErr returns the Summary value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e StoryEdges) SummaryOrErr() (*Summary, error) {
	if e.Summary != nil {
		return e.Summary, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: summary.Label}
	}
	return nil, &NotLoadedError{edge: "summary"}
}

// TagsOrErr returns the Tags value or an error if the edge
// was not loaded in eager-loading.
func (e StoryEdges) TagsOrErr() ([]*Tag, error) {
	if e.loadedTypes[1] {
		return e.Tags, nil
	}
	return nil, &NotLoadedError{edge: "tags"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Story) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case story.FieldIsSummarized, story.FieldIsTagged:
			values[i] = new(sql.NullBool)
		case story.FieldID, story.FieldHnID, story.FieldScore, story.FieldCommentCount:
			values[i] = new(sql.NullInt64)
		case story.FieldTitle, story.FieldURL, story.FieldAuthor:
			values[i] = new(sql.NullString)
		case story.FieldHnCreatedAt, story.FieldCreatedAt, story.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Story fields.
func (_m *Story) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case story.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case story.FieldHnID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field hn_id", values[i])
			} else if value.Valid {
				_m.HnID = value.Int64
			}
		case story.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case story.FieldURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field url", values[i])
			} else if value.Valid {
				_m.URL = new(string)
				*_m.URL = value.String
			}
		case story.FieldScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = int(value.Int64)
			}
		case story.FieldAuthor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field author", values[i])
			} else if value.Valid {
				_m.Author = value.String
			}
		case story.FieldCommentCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field comment_count", values[i])
			} else if value.Valid {
				_m.CommentCount = int(value.Int64)
			}
		case story.FieldHnCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field hn_created_at", values[i])
			} else if value.Valid {
				_m.HnCreatedAt = value.Time
			}
		case story.FieldIsSummarized:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_summarized", values[i])
			} else if value.Valid {
				_m.IsSummarized = value.Bool
			}
		case story.FieldIsTagged:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_tagged", values[i])
			} else if value.Valid {
				_m.IsTagged = value.Bool
			}
		case story.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case story.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Story.
// This includes values selected through modifiers, order, etc.
func (_m *Story) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySummary queries the "summary" edge of the Story entity.
func (_m *Story) QuerySummary() *SummaryQuery {
	return NewStoryClient(_m.config).QuerySummary(_m)
}

// QueryTags queries the "tags" edge of the Story entity.
func (_m *Story) QueryTags() *TagQuery {
	return NewStoryClient(_m.config).QueryTags(_m)
}

// Update returns a builder for updating this Story.
// Note that you need to call Story.Unwrap() before calling this method if this Story
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Story) Update() *StoryUpdateOne {
	return NewStoryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Story entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Story) Unwrap() *Story {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Story is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Story) String() string {
	var builder strings.Builder
	builder.WriteString("Story(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("hn_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.HnID))
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	if v := _m.URL; v != nil {
		builder.WriteString("url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("author=")
	builder.WriteString(_m.Author)
	builder.WriteString(", ")
	builder.WriteString("comment_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.CommentCount))
	builder.WriteString(", ")
	builder.WriteString("hn_created_at=")
	builder.WriteString(_m.HnCreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("is_summarized=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsSummarized))
	builder.WriteString(", ")
	builder.WriteString("is_tagged=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsTagged))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Stories is a parsable slice of Story.
type Stories []*Story
