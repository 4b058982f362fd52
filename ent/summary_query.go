// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hnscribe/hnscribe/ent/predicate"
	"github.com/hnscribe/hnscribe/ent/story"
	"github.com/hnscribe/hnscribe/ent/summary"
)

// SummaryQuery is the builder for querying Summary entities.
type SummaryQuery struct {
	config
	ctx        *QueryContext
	order      []summary.OrderOption
	inters     []Interceptor
	predicates []predicate.Summary
	withStory  *StoryQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the SummaryQuery builder.
func (_q *SummaryQuery) Where(ps ...predicate.Summary) *SummaryQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *SummaryQuery) Limit(limit int) *SummaryQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *SummaryQuery) Offset(offset int) *SummaryQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *SummaryQuery) Unique(unique bool) *SummaryQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *SummaryQuery) Order(o ...summary.OrderOption) *SummaryQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryStory chains the current query on the "story" edge.
func (_q *SummaryQuery) QueryStory() *StoryQuery {
	query := (&StoryClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(summary.Table, summary.FieldID, selector),
			sqlgraph.To(story.Table, story.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, summary.StoryTable, summary.StoryColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Summary entity from the query.
// Returns a *NotFoundError when no Summary was found.
func (_q *SummaryQuery) First(ctx context.Context) (*Summary, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{summary.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *SummaryQuery) FirstX(ctx context.Context) *Summary {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Summary ID from the query.
// Returns a *NotFoundError when no Summary ID was found.
func (_q *SummaryQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{summary.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *SummaryQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Summary entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Summary entity is found.
// Returns a *NotFoundError when no Summary entities are found.
func (_q *SummaryQuery) Only(ctx context.Context) (*Summary, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{summary.Label}
	default:
		return nil, &NotSingularError{summary.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *SummaryQuery) OnlyX(ctx context.Context) *Summary {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Summary ID in the query.
// Returns a *NotSingularError when more than one Summary ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *SummaryQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{summary.Label}
	default:
		err = &NotSingularError{summary.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *SummaryQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Summaries.
func (_q *SummaryQuery) All(ctx context.Context) ([]*Summary, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Summary, *SummaryQuery]()
	return withInterceptors[[]*Summary](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *SummaryQuery) AllX(ctx context.Context) []*Summary {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Summary IDs.
func (_q *SummaryQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(summary.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *SummaryQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *SummaryQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*SummaryQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *SummaryQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *SummaryQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *SummaryQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the SummaryQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *SummaryQuery) Clone() *SummaryQuery {
	if _q == nil {
		return nil
	}
	return &SummaryQuery{
		config:     _q.config,
		ctx:        _q.ctx.Clone(),
		order:      append([]summary.OrderOption{}, _q.order...),
		inters:     append([]Interceptor{}, _q.inters...),
		predicates: append([]predicate.Summary{}, _q.predicates...),
		withStory:  _q.withStory.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithStory tells the query-builder to eager-load the nodes that are connected to
// the "story" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *SummaryQuery) WithStory(opts ...func(*StoryQuery)) *SummaryQuery {
	query := (&StoryClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withStory = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		StoryID int `json:"story_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Summary.Query().
//		GroupBy(summary.FieldStoryID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *SummaryQuery) GroupBy(field string, fields ...string) *SummaryGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &SummaryGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = summary.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		StoryID int `json:"story_id,omitempty"`
//	}
//
//	client.Summary.Query().
//		Select(summary.FieldStoryID).
//		Scan(ctx, &v)
func (_q *SummaryQuery) Select(fields ...string) *SummarySelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &SummarySelect{SummaryQuery: _q}
	sbuild.label = summary.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a SummarySelect configured with the given aggregations.
func (_q *SummaryQuery) Aggregate(fns ...AggregateFunc) *SummarySelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *SummaryQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !summary.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *SummaryQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Summary, error) {
	var (
		nodes       = []*Summary{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withStory != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Summary).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Summary{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withStory; query != nil {
		if err := _q.loadStory(ctx, query, nodes, nil,
			func(n *Summary, e *Story) { n.Edges.Story = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *SummaryQuery) loadStory(ctx context.Context, query *StoryQuery, nodes []*Summary, init func(*Summary), assign func(*Summary, *Story)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*Summary)
	for i := range nodes {
		fk := nodes[i].StoryID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(story.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "story_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *SummaryQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *SummaryQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(summary.Table, summary.Columns, sqlgraph.NewFieldSpec(summary.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, summary.FieldID)
		for i := range fields {
			if fields[i] != summary.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withStory != nil {
			_spec.Node.AddColumnOnce(summary.FieldStoryID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *SummaryQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(summary.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = summary.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// SummaryGroupBy is the group-by builder for Summary entities.
type SummaryGroupBy struct {
	selector
	build *SummaryQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *SummaryGroupBy) Aggregate(fns ...AggregateFunc) *SummaryGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *SummaryGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*SummaryQuery, *SummaryGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *SummaryGroupBy) sqlScan(ctx context.Context, root *SummaryQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// SummarySelect is the builder for selecting fields of Summary entities.
type SummarySelect struct {
	*SummaryQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *SummarySelect) Aggregate(fns ...AggregateFunc) *SummarySelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *SummarySelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*SummaryQuery, *SummarySelect](ctx, _s.SummaryQuery, _s, _s.inters, v)
}

func (_s *SummarySelect) sqlScan(ctx context.Context, root *SummaryQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
