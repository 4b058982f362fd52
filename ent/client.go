// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/hnscribe/hnscribe/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/hnscribe/hnscribe/ent/agentrun"
	"github.com/hnscribe/hnscribe/ent/scraperstate"
	"github.com/hnscribe/hnscribe/ent/story"
	"github.com/hnscribe/hnscribe/ent/summary"
	"github.com/hnscribe/hnscribe/ent/tag"
	"github.com/hnscribe/hnscribe/ent/tagproposal"

	stdsql "database/sql"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AgentRun is the client for interacting with the AgentRun builders.
	AgentRun *AgentRunClient
	// ScraperState is the client for interacting with the ScraperState builders.
	ScraperState *ScraperStateClient
	// Story is the client for interacting with the Story builders.
	Story *StoryClient
	// Summary is the client for interacting with the Summary builders.
	Summary *SummaryClient
	// Tag is the client for interacting with the Tag builders.
	Tag *TagClient
	// TagProposal is the client for interacting with the TagProposal builders.
	TagProposal *TagProposalClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AgentRun = NewAgentRunClient(c.config)
	c.ScraperState = NewScraperStateClient(c.config)
	c.Story = NewStoryClient(c.config)
	c.Summary = NewSummaryClient(c.config)
	c.Tag = NewTagClient(c.config)
	c.TagProposal = NewTagProposalClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:          ctx,
		config:       cfg,
		AgentRun:     NewAgentRunClient(cfg),
		ScraperState: NewScraperStateClient(cfg),
		Story:        NewStoryClient(cfg),
		Summary:      NewSummaryClient(cfg),
		Tag:          NewTagClient(cfg),
		TagProposal:  NewTagProposalClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:          ctx,
		config:       cfg,
		AgentRun:     NewAgentRunClient(cfg),
		ScraperState: NewScraperStateClient(cfg),
		Story:        NewStoryClient(cfg),
		Summary:      NewSummaryClient(cfg),
		Tag:          NewTagClient(cfg),
		TagProposal:  NewTagProposalClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AgentRun.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.AgentRun, c.ScraperState, c.Story, c.Summary, c.Tag, c.TagProposal,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AgentRun, c.ScraperState, c.Story, c.Summary, c.Tag, c.TagProposal,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AgentRunMutation:
		return c.AgentRun.mutate(ctx, m)
	case *ScraperStateMutation:
		return c.ScraperState.mutate(ctx, m)
	case *StoryMutation:
		return c.Story.mutate(ctx, m)
	case *SummaryMutation:
		return c.Summary.mutate(ctx, m)
	case *TagMutation:
		return c.Tag.mutate(ctx, m)
	case *TagProposalMutation:
		return c.TagProposal.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AgentRunClient is a client for the AgentRun schema.
type AgentRunClient struct {
	config
}

// NewAgentRunClient returns a client for the AgentRun from the given config.
func NewAgentRunClient(c config) *AgentRunClient {
	return &AgentRunClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agentrun.Hooks(f(g(h())))`.
func (c *AgentRunClient) Use(hooks ...Hook) {
	c.hooks.AgentRun = append(c.hooks.AgentRun, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agentrun.Intercept(f(g(h())))`.
func (c *AgentRunClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentRun = append(c.inters.AgentRun, interceptors...)
}

// Create returns a builder for creating a AgentRun entity.
func (c *AgentRunClient) Create() *AgentRunCreate {
	mutation := newAgentRunMutation(c.config, OpCreate)
	return &AgentRunCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentRun entities.
func (c *AgentRunClient) CreateBulk(builders ...*AgentRunCreate) *AgentRunCreateBulk {
	return &AgentRunCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentRunClient) MapCreateBulk(slice any, setFunc func(*AgentRunCreate, int)) *AgentRunCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentRunCreateBulk{err: fmt.Errorf("calling to AgentRunClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentRunCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentRunCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentRun.
func (c *AgentRunClient) Update() *AgentRunUpdate {
	mutation := newAgentRunMutation(c.config, OpUpdate)
	return &AgentRunUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentRunClient) UpdateOne(_m *AgentRun) *AgentRunUpdateOne {
	mutation := newAgentRunMutation(c.config, OpUpdateOne, withAgentRun(_m))
	return &AgentRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentRunClient) UpdateOneID(id string) *AgentRunUpdateOne {
	mutation := newAgentRunMutation(c.config, OpUpdateOne, withAgentRunID(id))
	return &AgentRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentRun.
func (c *AgentRunClient) Delete() *AgentRunDelete {
	mutation := newAgentRunMutation(c.config, OpDelete)
	return &AgentRunDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentRunClient) DeleteOne(_m *AgentRun) *AgentRunDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentRunClient) DeleteOneID(id string) *AgentRunDeleteOne {
	builder := c.Delete().Where(agentrun.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentRunDeleteOne{builder}
}

// Query returns a query builder for AgentRun.
func (c *AgentRunClient) Query() *AgentRunQuery {
	return &AgentRunQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentRun},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentRun entity by its id.
func (c *AgentRunClient) Get(ctx context.Context, id string) (*AgentRun, error) {
	return c.Query().Where(agentrun.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentRunClient) GetX(ctx context.Context, id string) *AgentRun {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProposals queries the proposals edge of a AgentRun.
func (c *AgentRunClient) QueryProposals(_m *AgentRun) *TagProposalQuery {
	query := (&TagProposalClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agentrun.Table, agentrun.FieldID, id),
			sqlgraph.To(tagproposal.Table, tagproposal.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agentrun.ProposalsTable, agentrun.ProposalsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AgentRunClient) Hooks() []Hook {
	return c.hooks.AgentRun
}

// Interceptors returns the client interceptors.
func (c *AgentRunClient) Interceptors() []Interceptor {
	return c.inters.AgentRun
}

func (c *AgentRunClient) mutate(ctx context.Context, m *AgentRunMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentRunCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentRunUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentRunDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentRun mutation op: %q", m.Op())
	}
}

// ScraperStateClient is a client for the ScraperState schema.
type ScraperStateClient struct {
	config
}

// NewScraperStateClient returns a client for the ScraperState from the given config.
func NewScraperStateClient(c config) *ScraperStateClient {
	return &ScraperStateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `scraperstate.Hooks(f(g(h())))`.
func (c *ScraperStateClient) Use(hooks ...Hook) {
	c.hooks.ScraperState = append(c.hooks.ScraperState, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `scraperstate.Intercept(f(g(h())))`.
func (c *ScraperStateClient) Intercept(interceptors ...Interceptor) {
	c.inters.ScraperState = append(c.inters.ScraperState, interceptors...)
}

// Create returns a builder for creating a ScraperState entity.
func (c *ScraperStateClient) Create() *ScraperStateCreate {
	mutation := newScraperStateMutation(c.config, OpCreate)
	return &ScraperStateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ScraperState entities.
func (c *ScraperStateClient) CreateBulk(builders ...*ScraperStateCreate) *ScraperStateCreateBulk {
	return &ScraperStateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ScraperStateClient) MapCreateBulk(slice any, setFunc func(*ScraperStateCreate, int)) *ScraperStateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ScraperStateCreateBulk{err: fmt.Errorf("calling to ScraperStateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ScraperStateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ScraperStateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ScraperState.
func (c *ScraperStateClient) Update() *ScraperStateUpdate {
	mutation := newScraperStateMutation(c.config, OpUpdate)
	return &ScraperStateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ScraperStateClient) UpdateOne(_m *ScraperState) *ScraperStateUpdateOne {
	mutation := newScraperStateMutation(c.config, OpUpdateOne, withScraperState(_m))
	return &ScraperStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ScraperStateClient) UpdateOneID(id int) *ScraperStateUpdateOne {
	mutation := newScraperStateMutation(c.config, OpUpdateOne, withScraperStateID(id))
	return &ScraperStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ScraperState.
func (c *ScraperStateClient) Delete() *ScraperStateDelete {
	mutation := newScraperStateMutation(c.config, OpDelete)
	return &ScraperStateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ScraperStateClient) DeleteOne(_m *ScraperState) *ScraperStateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ScraperStateClient) DeleteOneID(id int) *ScraperStateDeleteOne {
	builder := c.Delete().Where(scraperstate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ScraperStateDeleteOne{builder}
}

// Query returns a query builder for ScraperState.
func (c *ScraperStateClient) Query() *ScraperStateQuery {
	return &ScraperStateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeScraperState},
		inters: c.Interceptors(),
	}
}

// Get returns a ScraperState entity by its id.
func (c *ScraperStateClient) Get(ctx context.Context, id int) (*ScraperState, error) {
	return c.Query().Where(scraperstate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ScraperStateClient) GetX(ctx context.Context, id int) *ScraperState {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ScraperStateClient) Hooks() []Hook {
	return c.hooks.ScraperState
}

// Interceptors returns the client interceptors.
func (c *ScraperStateClient) Interceptors() []Interceptor {
	return c.inters.ScraperState
}

func (c *ScraperStateClient) mutate(ctx context.Context, m *ScraperStateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ScraperStateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ScraperStateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ScraperStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ScraperStateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ScraperState mutation op: %q", m.Op())
	}
}

// StoryClient is a client for the Story schema.
type StoryClient struct {
	config
}

// NewStoryClient returns a client for the Story from the given config.
func NewStoryClient(c config) *StoryClient {
	return &StoryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `story.Hooks(f(g(h())))`.
func (c *StoryClient) Use(hooks ...Hook) {
	c.hooks.Story = append(c.hooks.Story, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `story.Intercept(f(g(h())))`.
func (c *StoryClient) Intercept(interceptors ...Interceptor) {
	c.inters.Story = append(c.inters.Story, interceptors...)
}

// Create returns a builder for creating a Story entity.
func (c *StoryClient) Create() *StoryCreate {
	mutation := newStoryMutation(c.config, OpCreate)
	return &StoryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Story entities.
func (c *StoryClient) CreateBulk(builders ...*StoryCreate) *StoryCreateBulk {
	return &StoryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StoryClient) MapCreateBulk(slice any, setFunc func(*StoryCreate, int)) *StoryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StoryCreateBulk{err: fmt.Errorf("calling to StoryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StoryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StoryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Story.
func (c *StoryClient) Update() *StoryUpdate {
	mutation := newStoryMutation(c.config, OpUpdate)
	return &StoryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StoryClient) UpdateOne(_m *Story) *StoryUpdateOne {
	mutation := newStoryMutation(c.config, OpUpdateOne, withStory(_m))
	return &StoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StoryClient) UpdateOneID(id int) *StoryUpdateOne {
	mutation := newStoryMutation(c.config, OpUpdateOne, withStoryID(id))
	return &StoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Story.
func (c *StoryClient) Delete() *StoryDelete {
	mutation := newStoryMutation(c.config, OpDelete)
	return &StoryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StoryClient) DeleteOne(_m *Story) *StoryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StoryClient) DeleteOneID(id int) *StoryDeleteOne {
	builder := c.Delete().Where(story.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StoryDeleteOne{builder}
}

// Query returns a query builder for Story.
func (c *StoryClient) Query() *StoryQuery {
	return &StoryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStory},
		inters: c.Interceptors(),
	}
}

// Get returns a Story entity by its id.
func (c *StoryClient) Get(ctx context.Context, id int) (*Story, error) {
	return c.Query().Where(story.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StoryClient) GetX(ctx context.Context, id int) *Story {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySummary queries the summary edge of a Story.
func (c *StoryClient) QuerySummary(_m *Story) *SummaryQuery {
	query := (&SummaryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(story.Table, story.FieldID, id),
			sqlgraph.To(summary.Table, summary.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, story.SummaryTable, story.SummaryColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTags queries the tags edge of a Story.
func (c *StoryClient) QueryTags(_m *Story) *TagQuery {
	query := (&TagClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(story.Table, story.FieldID, id),
			sqlgraph.To(tag.Table, tag.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, story.TagsTable, story.TagsPrimaryKey...),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *StoryClient) Hooks() []Hook {
	return c.hooks.Story
}

// Interceptors returns the client interceptors.
func (c *StoryClient) Interceptors() []Interceptor {
	return c.inters.Story
}

func (c *StoryClient) mutate(ctx context.Context, m *StoryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StoryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StoryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StoryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Story mutation op: %q", m.Op())
	}
}

// SummaryClient is a client for the Summary schema.
type SummaryClient struct {
	config
}

// NewSummaryClient returns a client for the Summary from the given config.
func NewSummaryClient(c config) *SummaryClient {
	return &SummaryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `summary.Hooks(f(g(h())))`.
func (c *SummaryClient) Use(hooks ...Hook) {
	c.hooks.Summary = append(c.hooks.Summary, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `summary.Intercept(f(g(h())))`.
func (c *SummaryClient) Intercept(interceptors ...Interceptor) {
	c.inters.Summary = append(c.inters.Summary, interceptors...)
}

// Create returns a builder for creating a Summary entity.
func (c *SummaryClient) Create() *SummaryCreate {
	mutation := newSummaryMutation(c.config, OpCreate)
	return &SummaryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Summary entities.
func (c *SummaryClient) CreateBulk(builders ...*SummaryCreate) *SummaryCreateBulk {
	return &SummaryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SummaryClient) MapCreateBulk(slice any, setFunc func(*SummaryCreate, int)) *SummaryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SummaryCreateBulk{err: fmt.Errorf("calling to SummaryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SummaryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SummaryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Summary.
func (c *SummaryClient) Update() *SummaryUpdate {
	mutation := newSummaryMutation(c.config, OpUpdate)
	return &SummaryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SummaryClient) UpdateOne(_m *Summary) *SummaryUpdateOne {
	mutation := newSummaryMutation(c.config, OpUpdateOne, withSummary(_m))
	return &SummaryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SummaryClient) UpdateOneID(id int) *SummaryUpdateOne {
	mutation := newSummaryMutation(c.config, OpUpdateOne, withSummaryID(id))
	return &SummaryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Summary.
func (c *SummaryClient) Delete() *SummaryDelete {
	mutation := newSummaryMutation(c.config, OpDelete)
	return &SummaryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SummaryClient) DeleteOne(_m *Summary) *SummaryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SummaryClient) DeleteOneID(id int) *SummaryDeleteOne {
	builder := c.Delete().Where(summary.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SummaryDeleteOne{builder}
}

// Query returns a query builder for Summary.
func (c *SummaryClient) Query() *SummaryQuery {
	return &SummaryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSummary},
		inters: c.Interceptors(),
	}
}

// Get returns a Summary entity by its id.
func (c *SummaryClient) Get(ctx context.Context, id int) (*Summary, error) {
	return c.Query().Where(summary.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SummaryClient) GetX(ctx context.Context, id int) *Summary {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryStory queries the story edge of a Summary.
func (c *SummaryClient) QueryStory(_m *Summary) *StoryQuery {
	query := (&StoryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(summary.Table, summary.FieldID, id),
			sqlgraph.To(story.Table, story.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, summary.StoryTable, summary.StoryColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SummaryClient) Hooks() []Hook {
	return c.hooks.Summary
}

// Interceptors returns the client interceptors.
func (c *SummaryClient) Interceptors() []Interceptor {
	return c.inters.Summary
}

func (c *SummaryClient) mutate(ctx context.Context, m *SummaryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SummaryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SummaryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SummaryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SummaryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Summary mutation op: %q", m.Op())
	}
}

// TagClient is a client for the Tag schema.
type TagClient struct {
	config
}

// NewTagClient returns a client for the Tag from the given config.
func NewTagClient(c config) *TagClient {
	return &TagClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `tag.Hooks(f(g(h())))`.
func (c *TagClient) Use(hooks ...Hook) {
	c.hooks.Tag = append(c.hooks.Tag, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `tag.Intercept(f(g(h())))`.
func (c *TagClient) Intercept(interceptors ...Interceptor) {
	c.inters.Tag = append(c.inters.Tag, interceptors...)
}

// Create returns a builder for creating a Tag entity.
func (c *TagClient) Create() *TagCreate {
	mutation := newTagMutation(c.config, OpCreate)
	return &TagCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Tag entities.
func (c *TagClient) CreateBulk(builders ...*TagCreate) *TagCreateBulk {
	return &TagCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TagClient) MapCreateBulk(slice any, setFunc func(*TagCreate, int)) *TagCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TagCreateBulk{err: fmt.Errorf("calling to TagClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TagCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TagCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Tag.
func (c *TagClient) Update() *TagUpdate {
	mutation := newTagMutation(c.config, OpUpdate)
	return &TagUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TagClient) UpdateOne(_m *Tag) *TagUpdateOne {
	mutation := newTagMutation(c.config, OpUpdateOne, withTag(_m))
	return &TagUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TagClient) UpdateOneID(id int) *TagUpdateOne {
	mutation := newTagMutation(c.config, OpUpdateOne, withTagID(id))
	return &TagUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Tag.
func (c *TagClient) Delete() *TagDelete {
	mutation := newTagMutation(c.config, OpDelete)
	return &TagDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TagClient) DeleteOne(_m *Tag) *TagDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TagClient) DeleteOneID(id int) *TagDeleteOne {
	builder := c.Delete().Where(tag.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TagDeleteOne{builder}
}

// Query returns a query builder for Tag.
func (c *TagClient) Query() *TagQuery {
	return &TagQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTag},
		inters: c.Interceptors(),
	}
}

// Get returns a Tag entity by its id.
func (c *TagClient) Get(ctx context.Context, id int) (*Tag, error) {
	return c.Query().Where(tag.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TagClient) GetX(ctx context.Context, id int) *Tag {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryStories queries the stories edge of a Tag.
func (c *TagClient) QueryStories(_m *Tag) *StoryQuery {
	query := (&StoryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(tag.Table, tag.FieldID, id),
			sqlgraph.To(story.Table, story.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, true, tag.StoriesTable, tag.StoriesPrimaryKey...),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TagClient) Hooks() []Hook {
	return c.hooks.Tag
}

// Interceptors returns the client interceptors.
func (c *TagClient) Interceptors() []Interceptor {
	return c.inters.Tag
}

func (c *TagClient) mutate(ctx context.Context, m *TagMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TagCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TagUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TagUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TagDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Tag mutation op: %q", m.Op())
	}
}

// TagProposalClient is a client for the TagProposal schema.
type TagProposalClient struct {
	config
}

// NewTagProposalClient returns a client for the TagProposal from the given config.
func NewTagProposalClient(c config) *TagProposalClient {
	return &TagProposalClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `tagproposal.Hooks(f(g(h())))`.
func (c *TagProposalClient) Use(hooks ...Hook) {
	c.hooks.TagProposal = append(c.hooks.TagProposal, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `tagproposal.Intercept(f(g(h())))`.
func (c *TagProposalClient) Intercept(interceptors ...Interceptor) {
	c.inters.TagProposal = append(c.inters.TagProposal, interceptors...)
}

// Create returns a builder for creating a TagProposal entity.
func (c *TagProposalClient) Create() *TagProposalCreate {
	mutation := newTagProposalMutation(c.config, OpCreate)
	return &TagProposalCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TagProposal entities.
func (c *TagProposalClient) CreateBulk(builders ...*TagProposalCreate) *TagProposalCreateBulk {
	return &TagProposalCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TagProposalClient) MapCreateBulk(slice any, setFunc func(*TagProposalCreate, int)) *TagProposalCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TagProposalCreateBulk{err: fmt.Errorf("calling to TagProposalClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TagProposalCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TagProposalCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TagProposal.
func (c *TagProposalClient) Update() *TagProposalUpdate {
	mutation := newTagProposalMutation(c.config, OpUpdate)
	return &TagProposalUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TagProposalClient) UpdateOne(_m *TagProposal) *TagProposalUpdateOne {
	mutation := newTagProposalMutation(c.config, OpUpdateOne, withTagProposal(_m))
	return &TagProposalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TagProposalClient) UpdateOneID(id string) *TagProposalUpdateOne {
	mutation := newTagProposalMutation(c.config, OpUpdateOne, withTagProposalID(id))
	return &TagProposalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TagProposal.
func (c *TagProposalClient) Delete() *TagProposalDelete {
	mutation := newTagProposalMutation(c.config, OpDelete)
	return &TagProposalDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TagProposalClient) DeleteOne(_m *TagProposal) *TagProposalDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TagProposalClient) DeleteOneID(id string) *TagProposalDeleteOne {
	builder := c.Delete().Where(tagproposal.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TagProposalDeleteOne{builder}
}

// Query returns a query builder for TagProposal.
func (c *TagProposalClient) Query() *TagProposalQuery {
	return &TagProposalQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTagProposal},
		inters: c.Interceptors(),
	}
}

// Get returns a TagProposal entity by its id.
func (c *TagProposalClient) Get(ctx context.Context, id string) (*TagProposal, error) {
	return c.Query().Where(tagproposal.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TagProposalClient) GetX(ctx context.Context, id string) *TagProposal {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRun queries the run edge of a TagProposal.
func (c *TagProposalClient) QueryRun(_m *TagProposal) *AgentRunQuery {
	query := (&AgentRunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(tagproposal.Table, tagproposal.FieldID, id),
			sqlgraph.To(agentrun.Table, agentrun.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, tagproposal.RunTable, tagproposal.RunColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TagProposalClient) Hooks() []Hook {
	return c.hooks.TagProposal
}

// Interceptors returns the client interceptors.
func (c *TagProposalClient) Interceptors() []Interceptor {
	return c.inters.TagProposal
}

func (c *TagProposalClient) mutate(ctx context.Context, m *TagProposalMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TagProposalCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TagProposalUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TagProposalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TagProposalDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TagProposal mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AgentRun, ScraperState, Story, Summary, Tag, TagProposal []ent.Hook
	}
	inters struct {
		AgentRun, ScraperState, Story, Summary, Tag, TagProposal []ent.Interceptor
	}
)

// ExecContext allows calling the underlying ExecContext method of the driver if it is supported by it.
// See, database/sql#DB.ExecContext for more information.
func (c *config) ExecContext(ctx context.Context, query string, args ...any) (stdsql.Result, error) {
	ex, ok := c.driver.(interface {
		ExecContext(context.Context, string, ...any) (stdsql.Result, error)
	})
	if !ok {
		return nil, fmt.Errorf("Driver.ExecContext is not supported")
	}
	return ex.ExecContext(ctx, query, args...)
}

// QueryContext allows calling the underlying QueryContext method of the driver if it is supported by it.
// See, database/sql#DB.QueryContext for more information.
func (c *config) QueryContext(ctx context.Context, query string, args ...any) (*stdsql.Rows, error) {
	q, ok := c.driver.(interface {
		QueryContext(context.Context, string, ...any) (*stdsql.Rows, error)
	})
	if !ok {
		return nil, fmt.Errorf("Driver.QueryContext is not supported")
	}
	return q.QueryContext(ctx, query, args...)
}
