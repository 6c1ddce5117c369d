// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/anuraag/pipkin/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/anuraag/pipkin/ent/achievementevent"
	"github.com/anuraag/pipkin/ent/challengeevent"
	"github.com/anuraag/pipkin/ent/cosmeticevent"
	"github.com/anuraag/pipkin/ent/snapshot"
	"github.com/anuraag/pipkin/ent/streakevent"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AchievementEvent is the client for interacting with the AchievementEvent builders.
	AchievementEvent *AchievementEventClient
	// ChallengeEvent is the client for interacting with the ChallengeEvent builders.
	ChallengeEvent *ChallengeEventClient
	// CosmeticEvent is the client for interacting with the CosmeticEvent builders.
	CosmeticEvent *CosmeticEventClient
	// Snapshot is the client for interacting with the Snapshot builders.
	Snapshot *SnapshotClient
	// StreakEvent is the client for interacting with the StreakEvent builders.
	StreakEvent *StreakEventClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AchievementEvent = NewAchievementEventClient(c.config)
	c.ChallengeEvent = NewChallengeEventClient(c.config)
	c.CosmeticEvent = NewCosmeticEventClient(c.config)
	c.Snapshot = NewSnapshotClient(c.config)
	c.StreakEvent = NewStreakEventClient(c.config)
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
		ctx:              ctx,
		config:           cfg,
		AchievementEvent: NewAchievementEventClient(cfg),
		ChallengeEvent:   NewChallengeEventClient(cfg),
		CosmeticEvent:    NewCosmeticEventClient(cfg),
		Snapshot:         NewSnapshotClient(cfg),
		StreakEvent:      NewStreakEventClient(cfg),
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
		ctx:              ctx,
		config:           cfg,
		AchievementEvent: NewAchievementEventClient(cfg),
		ChallengeEvent:   NewChallengeEventClient(cfg),
		CosmeticEvent:    NewCosmeticEventClient(cfg),
		Snapshot:         NewSnapshotClient(cfg),
		StreakEvent:      NewStreakEventClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AchievementEvent.
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
	c.AchievementEvent.Use(hooks...)
	c.ChallengeEvent.Use(hooks...)
	c.CosmeticEvent.Use(hooks...)
	c.Snapshot.Use(hooks...)
	c.StreakEvent.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.AchievementEvent.Intercept(interceptors...)
	c.ChallengeEvent.Intercept(interceptors...)
	c.CosmeticEvent.Intercept(interceptors...)
	c.Snapshot.Intercept(interceptors...)
	c.StreakEvent.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AchievementEventMutation:
		return c.AchievementEvent.mutate(ctx, m)
	case *ChallengeEventMutation:
		return c.ChallengeEvent.mutate(ctx, m)
	case *CosmeticEventMutation:
		return c.CosmeticEvent.mutate(ctx, m)
	case *SnapshotMutation:
		return c.Snapshot.mutate(ctx, m)
	case *StreakEventMutation:
		return c.StreakEvent.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AchievementEventClient is a client for the AchievementEvent schema.
type AchievementEventClient struct {
	config
}

// NewAchievementEventClient returns a client for the AchievementEvent from the given config.
func NewAchievementEventClient(c config) *AchievementEventClient {
	return &AchievementEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `achievementevent.Hooks(f(g(h())))`.
func (c *AchievementEventClient) Use(hooks ...Hook) {
	c.hooks.AchievementEvent = append(c.hooks.AchievementEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `achievementevent.Intercept(f(g(h())))`.
func (c *AchievementEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.AchievementEvent = append(c.inters.AchievementEvent, interceptors...)
}

// Create returns a builder for creating a AchievementEvent entity.
func (c *AchievementEventClient) Create() *AchievementEventCreate {
	mutation := newAchievementEventMutation(c.config, OpCreate)
	return &AchievementEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AchievementEvent entities.
func (c *AchievementEventClient) CreateBulk(builders ...*AchievementEventCreate) *AchievementEventCreateBulk {
	return &AchievementEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AchievementEventClient) MapCreateBulk(slice any, setFunc func(*AchievementEventCreate, int)) *AchievementEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AchievementEventCreateBulk{err: fmt.Errorf("calling to AchievementEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AchievementEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AchievementEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AchievementEvent.
func (c *AchievementEventClient) Update() *AchievementEventUpdate {
	mutation := newAchievementEventMutation(c.config, OpUpdate)
	return &AchievementEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AchievementEventClient) UpdateOne(_m *AchievementEvent) *AchievementEventUpdateOne {
	mutation := newAchievementEventMutation(c.config, OpUpdateOne, withAchievementEvent(_m))
	return &AchievementEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AchievementEventClient) UpdateOneID(id int) *AchievementEventUpdateOne {
	mutation := newAchievementEventMutation(c.config, OpUpdateOne, withAchievementEventID(id))
	return &AchievementEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AchievementEvent.
func (c *AchievementEventClient) Delete() *AchievementEventDelete {
	mutation := newAchievementEventMutation(c.config, OpDelete)
	return &AchievementEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AchievementEventClient) DeleteOne(_m *AchievementEvent) *AchievementEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AchievementEventClient) DeleteOneID(id int) *AchievementEventDeleteOne {
	builder := c.Delete().Where(achievementevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AchievementEventDeleteOne{builder}
}

// Query returns a query builder for AchievementEvent.
func (c *AchievementEventClient) Query() *AchievementEventQuery {
	return &AchievementEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAchievementEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a AchievementEvent entity by its id.
func (c *AchievementEventClient) Get(ctx context.Context, id int) (*AchievementEvent, error) {
	return c.Query().Where(achievementevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AchievementEventClient) GetX(ctx context.Context, id int) *AchievementEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AchievementEventClient) Hooks() []Hook {
	return c.hooks.AchievementEvent
}

// Interceptors returns the client interceptors.
func (c *AchievementEventClient) Interceptors() []Interceptor {
	return c.inters.AchievementEvent
}

func (c *AchievementEventClient) mutate(ctx context.Context, m *AchievementEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AchievementEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AchievementEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AchievementEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AchievementEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AchievementEvent mutation op: %q", m.Op())
	}
}

// ChallengeEventClient is a client for the ChallengeEvent schema.
type ChallengeEventClient struct {
	config
}

// NewChallengeEventClient returns a client for the ChallengeEvent from the given config.
func NewChallengeEventClient(c config) *ChallengeEventClient {
	return &ChallengeEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `challengeevent.Hooks(f(g(h())))`.
func (c *ChallengeEventClient) Use(hooks ...Hook) {
	c.hooks.ChallengeEvent = append(c.hooks.ChallengeEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `challengeevent.Intercept(f(g(h())))`.
func (c *ChallengeEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.ChallengeEvent = append(c.inters.ChallengeEvent, interceptors...)
}

// Create returns a builder for creating a ChallengeEvent entity.
func (c *ChallengeEventClient) Create() *ChallengeEventCreate {
	mutation := newChallengeEventMutation(c.config, OpCreate)
	return &ChallengeEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ChallengeEvent entities.
func (c *ChallengeEventClient) CreateBulk(builders ...*ChallengeEventCreate) *ChallengeEventCreateBulk {
	return &ChallengeEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ChallengeEventClient) MapCreateBulk(slice any, setFunc func(*ChallengeEventCreate, int)) *ChallengeEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ChallengeEventCreateBulk{err: fmt.Errorf("calling to ChallengeEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ChallengeEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ChallengeEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ChallengeEvent.
func (c *ChallengeEventClient) Update() *ChallengeEventUpdate {
	mutation := newChallengeEventMutation(c.config, OpUpdate)
	return &ChallengeEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ChallengeEventClient) UpdateOne(_m *ChallengeEvent) *ChallengeEventUpdateOne {
	mutation := newChallengeEventMutation(c.config, OpUpdateOne, withChallengeEvent(_m))
	return &ChallengeEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ChallengeEventClient) UpdateOneID(id int) *ChallengeEventUpdateOne {
	mutation := newChallengeEventMutation(c.config, OpUpdateOne, withChallengeEventID(id))
	return &ChallengeEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ChallengeEvent.
func (c *ChallengeEventClient) Delete() *ChallengeEventDelete {
	mutation := newChallengeEventMutation(c.config, OpDelete)
	return &ChallengeEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ChallengeEventClient) DeleteOne(_m *ChallengeEvent) *ChallengeEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ChallengeEventClient) DeleteOneID(id int) *ChallengeEventDeleteOne {
	builder := c.Delete().Where(challengeevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ChallengeEventDeleteOne{builder}
}

// Query returns a query builder for ChallengeEvent.
func (c *ChallengeEventClient) Query() *ChallengeEventQuery {
	return &ChallengeEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeChallengeEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a ChallengeEvent entity by its id.
func (c *ChallengeEventClient) Get(ctx context.Context, id int) (*ChallengeEvent, error) {
	return c.Query().Where(challengeevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ChallengeEventClient) GetX(ctx context.Context, id int) *ChallengeEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ChallengeEventClient) Hooks() []Hook {
	return c.hooks.ChallengeEvent
}

// Interceptors returns the client interceptors.
func (c *ChallengeEventClient) Interceptors() []Interceptor {
	return c.inters.ChallengeEvent
}

func (c *ChallengeEventClient) mutate(ctx context.Context, m *ChallengeEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ChallengeEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ChallengeEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ChallengeEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ChallengeEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ChallengeEvent mutation op: %q", m.Op())
	}
}

// CosmeticEventClient is a client for the CosmeticEvent schema.
type CosmeticEventClient struct {
	config
}

// NewCosmeticEventClient returns a client for the CosmeticEvent from the given config.
func NewCosmeticEventClient(c config) *CosmeticEventClient {
	return &CosmeticEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `cosmeticevent.Hooks(f(g(h())))`.
func (c *CosmeticEventClient) Use(hooks ...Hook) {
	c.hooks.CosmeticEvent = append(c.hooks.CosmeticEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `cosmeticevent.Intercept(f(g(h())))`.
func (c *CosmeticEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.CosmeticEvent = append(c.inters.CosmeticEvent, interceptors...)
}

// Create returns a builder for creating a CosmeticEvent entity.
func (c *CosmeticEventClient) Create() *CosmeticEventCreate {
	mutation := newCosmeticEventMutation(c.config, OpCreate)
	return &CosmeticEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CosmeticEvent entities.
func (c *CosmeticEventClient) CreateBulk(builders ...*CosmeticEventCreate) *CosmeticEventCreateBulk {
	return &CosmeticEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CosmeticEventClient) MapCreateBulk(slice any, setFunc func(*CosmeticEventCreate, int)) *CosmeticEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CosmeticEventCreateBulk{err: fmt.Errorf("calling to CosmeticEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CosmeticEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CosmeticEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CosmeticEvent.
func (c *CosmeticEventClient) Update() *CosmeticEventUpdate {
	mutation := newCosmeticEventMutation(c.config, OpUpdate)
	return &CosmeticEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CosmeticEventClient) UpdateOne(_m *CosmeticEvent) *CosmeticEventUpdateOne {
	mutation := newCosmeticEventMutation(c.config, OpUpdateOne, withCosmeticEvent(_m))
	return &CosmeticEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CosmeticEventClient) UpdateOneID(id int) *CosmeticEventUpdateOne {
	mutation := newCosmeticEventMutation(c.config, OpUpdateOne, withCosmeticEventID(id))
	return &CosmeticEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CosmeticEvent.
func (c *CosmeticEventClient) Delete() *CosmeticEventDelete {
	mutation := newCosmeticEventMutation(c.config, OpDelete)
	return &CosmeticEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CosmeticEventClient) DeleteOne(_m *CosmeticEvent) *CosmeticEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CosmeticEventClient) DeleteOneID(id int) *CosmeticEventDeleteOne {
	builder := c.Delete().Where(cosmeticevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CosmeticEventDeleteOne{builder}
}

// Query returns a query builder for CosmeticEvent.
func (c *CosmeticEventClient) Query() *CosmeticEventQuery {
	return &CosmeticEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCosmeticEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a CosmeticEvent entity by its id.
func (c *CosmeticEventClient) Get(ctx context.Context, id int) (*CosmeticEvent, error) {
	return c.Query().Where(cosmeticevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CosmeticEventClient) GetX(ctx context.Context, id int) *CosmeticEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CosmeticEventClient) Hooks() []Hook {
	return c.hooks.CosmeticEvent
}

// Interceptors returns the client interceptors.
func (c *CosmeticEventClient) Interceptors() []Interceptor {
	return c.inters.CosmeticEvent
}

func (c *CosmeticEventClient) mutate(ctx context.Context, m *CosmeticEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CosmeticEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CosmeticEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CosmeticEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CosmeticEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CosmeticEvent mutation op: %q", m.Op())
	}
}

// SnapshotClient is a client for the Snapshot schema.
type SnapshotClient struct {
	config
}

// NewSnapshotClient returns a client for the Snapshot from the given config.
func NewSnapshotClient(c config) *SnapshotClient {
	return &SnapshotClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `snapshot.Hooks(f(g(h())))`.
func (c *SnapshotClient) Use(hooks ...Hook) {
	c.hooks.Snapshot = append(c.hooks.Snapshot, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `snapshot.Intercept(f(g(h())))`.
func (c *SnapshotClient) Intercept(interceptors ...Interceptor) {
	c.inters.Snapshot = append(c.inters.Snapshot, interceptors...)
}

// Create returns a builder for creating a Snapshot entity.
func (c *SnapshotClient) Create() *SnapshotCreate {
	mutation := newSnapshotMutation(c.config, OpCreate)
	return &SnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Snapshot entities.
func (c *SnapshotClient) CreateBulk(builders ...*SnapshotCreate) *SnapshotCreateBulk {
	return &SnapshotCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SnapshotClient) MapCreateBulk(slice any, setFunc func(*SnapshotCreate, int)) *SnapshotCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SnapshotCreateBulk{err: fmt.Errorf("calling to SnapshotClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SnapshotCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SnapshotCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Snapshot.
func (c *SnapshotClient) Update() *SnapshotUpdate {
	mutation := newSnapshotMutation(c.config, OpUpdate)
	return &SnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SnapshotClient) UpdateOne(_m *Snapshot) *SnapshotUpdateOne {
	mutation := newSnapshotMutation(c.config, OpUpdateOne, withSnapshot(_m))
	return &SnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SnapshotClient) UpdateOneID(id int) *SnapshotUpdateOne {
	mutation := newSnapshotMutation(c.config, OpUpdateOne, withSnapshotID(id))
	return &SnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Snapshot.
func (c *SnapshotClient) Delete() *SnapshotDelete {
	mutation := newSnapshotMutation(c.config, OpDelete)
	return &SnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SnapshotClient) DeleteOne(_m *Snapshot) *SnapshotDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SnapshotClient) DeleteOneID(id int) *SnapshotDeleteOne {
	builder := c.Delete().Where(snapshot.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SnapshotDeleteOne{builder}
}

// Query returns a query builder for Snapshot.
func (c *SnapshotClient) Query() *SnapshotQuery {
	return &SnapshotQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSnapshot},
		inters: c.Interceptors(),
	}
}

// Get returns a Snapshot entity by its id.
func (c *SnapshotClient) Get(ctx context.Context, id int) (*Snapshot, error) {
	return c.Query().Where(snapshot.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SnapshotClient) GetX(ctx context.Context, id int) *Snapshot {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SnapshotClient) Hooks() []Hook {
	return c.hooks.Snapshot
}

// Interceptors returns the client interceptors.
func (c *SnapshotClient) Interceptors() []Interceptor {
	return c.inters.Snapshot
}

func (c *SnapshotClient) mutate(ctx context.Context, m *SnapshotMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Snapshot mutation op: %q", m.Op())
	}
}

// StreakEventClient is a client for the StreakEvent schema.
type StreakEventClient struct {
	config
}

// NewStreakEventClient returns a client for the StreakEvent from the given config.
func NewStreakEventClient(c config) *StreakEventClient {
	return &StreakEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `streakevent.Hooks(f(g(h())))`.
func (c *StreakEventClient) Use(hooks ...Hook) {
	c.hooks.StreakEvent = append(c.hooks.StreakEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `streakevent.Intercept(f(g(h())))`.
func (c *StreakEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.StreakEvent = append(c.inters.StreakEvent, interceptors...)
}

// Create returns a builder for creating a StreakEvent entity.
func (c *StreakEventClient) Create() *StreakEventCreate {
	mutation := newStreakEventMutation(c.config, OpCreate)
	return &StreakEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StreakEvent entities.
func (c *StreakEventClient) CreateBulk(builders ...*StreakEventCreate) *StreakEventCreateBulk {
	return &StreakEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StreakEventClient) MapCreateBulk(slice any, setFunc func(*StreakEventCreate, int)) *StreakEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StreakEventCreateBulk{err: fmt.Errorf("calling to StreakEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StreakEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StreakEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StreakEvent.
func (c *StreakEventClient) Update() *StreakEventUpdate {
	mutation := newStreakEventMutation(c.config, OpUpdate)
	return &StreakEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StreakEventClient) UpdateOne(_m *StreakEvent) *StreakEventUpdateOne {
	mutation := newStreakEventMutation(c.config, OpUpdateOne, withStreakEvent(_m))
	return &StreakEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StreakEventClient) UpdateOneID(id int) *StreakEventUpdateOne {
	mutation := newStreakEventMutation(c.config, OpUpdateOne, withStreakEventID(id))
	return &StreakEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StreakEvent.
func (c *StreakEventClient) Delete() *StreakEventDelete {
	mutation := newStreakEventMutation(c.config, OpDelete)
	return &StreakEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StreakEventClient) DeleteOne(_m *StreakEvent) *StreakEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StreakEventClient) DeleteOneID(id int) *StreakEventDeleteOne {
	builder := c.Delete().Where(streakevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StreakEventDeleteOne{builder}
}

// Query returns a query builder for StreakEvent.
func (c *StreakEventClient) Query() *StreakEventQuery {
	return &StreakEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStreakEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a StreakEvent entity by its id.
func (c *StreakEventClient) Get(ctx context.Context, id int) (*StreakEvent, error) {
	return c.Query().Where(streakevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StreakEventClient) GetX(ctx context.Context, id int) *StreakEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StreakEventClient) Hooks() []Hook {
	return c.hooks.StreakEvent
}

// Interceptors returns the client interceptors.
func (c *StreakEventClient) Interceptors() []Interceptor {
	return c.inters.StreakEvent
}

func (c *StreakEventClient) mutate(ctx context.Context, m *StreakEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StreakEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StreakEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StreakEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StreakEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StreakEvent mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AchievementEvent, ChallengeEvent, CosmeticEvent, Snapshot,
		StreakEvent []ent.Hook
	}
	inters struct {
		AchievementEvent, ChallengeEvent, CosmeticEvent, Snapshot,
		StreakEvent []ent.Interceptor
	}
)
