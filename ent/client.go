// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/memora-labs/memora/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/memora-labs/memora/ent/attemptevent"
	"github.com/memora-labs/memora/ent/documentmastery"
	"github.com/memora-labs/memora/ent/eventsequence"
	"github.com/memora-labs/memora/ent/itemmastery"
	"github.com/memora-labs/memora/ent/quizitem"
	"github.com/memora-labs/memora/ent/regenevent"
	"github.com/memora-labs/memora/ent/reviewschedule"
	"github.com/memora-labs/memora/ent/sessioncounter"
	"github.com/memora-labs/memora/ent/sessionevent"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AttemptEvent is the client for interacting with the AttemptEvent builders.
	AttemptEvent *AttemptEventClient
	// DocumentMastery is the client for interacting with the DocumentMastery builders.
	DocumentMastery *DocumentMasteryClient
	// EventSequence is the client for interacting with the EventSequence builders.
	EventSequence *EventSequenceClient
	// ItemMastery is the client for interacting with the ItemMastery builders.
	ItemMastery *ItemMasteryClient
	// QuizItem is the client for interacting with the QuizItem builders.
	QuizItem *QuizItemClient
	// RegenEvent is the client for interacting with the RegenEvent builders.
	RegenEvent *RegenEventClient
	// ReviewSchedule is the client for interacting with the ReviewSchedule builders.
	ReviewSchedule *ReviewScheduleClient
	// SessionCounter is the client for interacting with the SessionCounter builders.
	SessionCounter *SessionCounterClient
	// SessionEvent is the client for interacting with the SessionEvent builders.
	SessionEvent *SessionEventClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AttemptEvent = NewAttemptEventClient(c.config)
	c.DocumentMastery = NewDocumentMasteryClient(c.config)
	c.EventSequence = NewEventSequenceClient(c.config)
	c.ItemMastery = NewItemMasteryClient(c.config)
	c.QuizItem = NewQuizItemClient(c.config)
	c.RegenEvent = NewRegenEventClient(c.config)
	c.ReviewSchedule = NewReviewScheduleClient(c.config)
	c.SessionCounter = NewSessionCounterClient(c.config)
	c.SessionEvent = NewSessionEventClient(c.config)
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
		ctx:             ctx,
		config:          cfg,
		AttemptEvent:    NewAttemptEventClient(cfg),
		DocumentMastery: NewDocumentMasteryClient(cfg),
		EventSequence:   NewEventSequenceClient(cfg),
		ItemMastery:     NewItemMasteryClient(cfg),
		QuizItem:        NewQuizItemClient(cfg),
		RegenEvent:      NewRegenEventClient(cfg),
		ReviewSchedule:  NewReviewScheduleClient(cfg),
		SessionCounter:  NewSessionCounterClient(cfg),
		SessionEvent:    NewSessionEventClient(cfg),
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
		ctx:             ctx,
		config:          cfg,
		AttemptEvent:    NewAttemptEventClient(cfg),
		DocumentMastery: NewDocumentMasteryClient(cfg),
		EventSequence:   NewEventSequenceClient(cfg),
		ItemMastery:     NewItemMasteryClient(cfg),
		QuizItem:        NewQuizItemClient(cfg),
		RegenEvent:      NewRegenEventClient(cfg),
		ReviewSchedule:  NewReviewScheduleClient(cfg),
		SessionCounter:  NewSessionCounterClient(cfg),
		SessionEvent:    NewSessionEventClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AttemptEvent.
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
		c.AttemptEvent, c.DocumentMastery, c.EventSequence, c.ItemMastery, c.QuizItem,
		c.RegenEvent, c.ReviewSchedule, c.SessionCounter, c.SessionEvent,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AttemptEvent, c.DocumentMastery, c.EventSequence, c.ItemMastery, c.QuizItem,
		c.RegenEvent, c.ReviewSchedule, c.SessionCounter, c.SessionEvent,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AttemptEventMutation:
		return c.AttemptEvent.mutate(ctx, m)
	case *DocumentMasteryMutation:
		return c.DocumentMastery.mutate(ctx, m)
	case *EventSequenceMutation:
		return c.EventSequence.mutate(ctx, m)
	case *ItemMasteryMutation:
		return c.ItemMastery.mutate(ctx, m)
	case *QuizItemMutation:
		return c.QuizItem.mutate(ctx, m)
	case *RegenEventMutation:
		return c.RegenEvent.mutate(ctx, m)
	case *ReviewScheduleMutation:
		return c.ReviewSchedule.mutate(ctx, m)
	case *SessionCounterMutation:
		return c.SessionCounter.mutate(ctx, m)
	case *SessionEventMutation:
		return c.SessionEvent.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AttemptEventClient is a client for the AttemptEvent schema.
type AttemptEventClient struct {
	config
}

// NewAttemptEventClient returns a client for the AttemptEvent from the given config.
func NewAttemptEventClient(c config) *AttemptEventClient {
	return &AttemptEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `attemptevent.Hooks(f(g(h())))`.
func (c *AttemptEventClient) Use(hooks ...Hook) {
	c.hooks.AttemptEvent = append(c.hooks.AttemptEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `attemptevent.Intercept(f(g(h())))`.
func (c *AttemptEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.AttemptEvent = append(c.inters.AttemptEvent, interceptors...)
}

// Create returns a builder for creating a AttemptEvent entity.
func (c *AttemptEventClient) Create() *AttemptEventCreate {
	mutation := newAttemptEventMutation(c.config, OpCreate)
	return &AttemptEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AttemptEvent entities.
func (c *AttemptEventClient) CreateBulk(builders ...*AttemptEventCreate) *AttemptEventCreateBulk {
	return &AttemptEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AttemptEventClient) MapCreateBulk(slice any, setFunc func(*AttemptEventCreate, int)) *AttemptEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AttemptEventCreateBulk{err: fmt.Errorf("calling to AttemptEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AttemptEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AttemptEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AttemptEvent.
func (c *AttemptEventClient) Update() *AttemptEventUpdate {
	mutation := newAttemptEventMutation(c.config, OpUpdate)
	return &AttemptEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AttemptEventClient) UpdateOne(_m *AttemptEvent) *AttemptEventUpdateOne {
	mutation := newAttemptEventMutation(c.config, OpUpdateOne, withAttemptEvent(_m))
	return &AttemptEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AttemptEventClient) UpdateOneID(id int) *AttemptEventUpdateOne {
	mutation := newAttemptEventMutation(c.config, OpUpdateOne, withAttemptEventID(id))
	return &AttemptEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AttemptEvent.
func (c *AttemptEventClient) Delete() *AttemptEventDelete {
	mutation := newAttemptEventMutation(c.config, OpDelete)
	return &AttemptEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AttemptEventClient) DeleteOne(_m *AttemptEvent) *AttemptEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AttemptEventClient) DeleteOneID(id int) *AttemptEventDeleteOne {
	builder := c.Delete().Where(attemptevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AttemptEventDeleteOne{builder}
}

// Query returns a query builder for AttemptEvent.
func (c *AttemptEventClient) Query() *AttemptEventQuery {
	return &AttemptEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAttemptEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a AttemptEvent entity by its id.
func (c *AttemptEventClient) Get(ctx context.Context, id int) (*AttemptEvent, error) {
	return c.Query().Where(attemptevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AttemptEventClient) GetX(ctx context.Context, id int) *AttemptEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AttemptEventClient) Hooks() []Hook {
	return c.hooks.AttemptEvent
}

// Interceptors returns the client interceptors.
func (c *AttemptEventClient) Interceptors() []Interceptor {
	return c.inters.AttemptEvent
}

func (c *AttemptEventClient) mutate(ctx context.Context, m *AttemptEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AttemptEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AttemptEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AttemptEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AttemptEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AttemptEvent mutation op: %q", m.Op())
	}
}

// DocumentMasteryClient is a client for the DocumentMastery schema.
type DocumentMasteryClient struct {
	config
}

// NewDocumentMasteryClient returns a client for the DocumentMastery from the given config.
func NewDocumentMasteryClient(c config) *DocumentMasteryClient {
	return &DocumentMasteryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `documentmastery.Hooks(f(g(h())))`.
func (c *DocumentMasteryClient) Use(hooks ...Hook) {
	c.hooks.DocumentMastery = append(c.hooks.DocumentMastery, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `documentmastery.Intercept(f(g(h())))`.
func (c *DocumentMasteryClient) Intercept(interceptors ...Interceptor) {
	c.inters.DocumentMastery = append(c.inters.DocumentMastery, interceptors...)
}

// Create returns a builder for creating a DocumentMastery entity.
func (c *DocumentMasteryClient) Create() *DocumentMasteryCreate {
	mutation := newDocumentMasteryMutation(c.config, OpCreate)
	return &DocumentMasteryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DocumentMastery entities.
func (c *DocumentMasteryClient) CreateBulk(builders ...*DocumentMasteryCreate) *DocumentMasteryCreateBulk {
	return &DocumentMasteryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DocumentMasteryClient) MapCreateBulk(slice any, setFunc func(*DocumentMasteryCreate, int)) *DocumentMasteryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DocumentMasteryCreateBulk{err: fmt.Errorf("calling to DocumentMasteryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DocumentMasteryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DocumentMasteryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DocumentMastery.
func (c *DocumentMasteryClient) Update() *DocumentMasteryUpdate {
	mutation := newDocumentMasteryMutation(c.config, OpUpdate)
	return &DocumentMasteryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DocumentMasteryClient) UpdateOne(_m *DocumentMastery) *DocumentMasteryUpdateOne {
	mutation := newDocumentMasteryMutation(c.config, OpUpdateOne, withDocumentMastery(_m))
	return &DocumentMasteryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DocumentMasteryClient) UpdateOneID(id int) *DocumentMasteryUpdateOne {
	mutation := newDocumentMasteryMutation(c.config, OpUpdateOne, withDocumentMasteryID(id))
	return &DocumentMasteryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DocumentMastery.
func (c *DocumentMasteryClient) Delete() *DocumentMasteryDelete {
	mutation := newDocumentMasteryMutation(c.config, OpDelete)
	return &DocumentMasteryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DocumentMasteryClient) DeleteOne(_m *DocumentMastery) *DocumentMasteryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DocumentMasteryClient) DeleteOneID(id int) *DocumentMasteryDeleteOne {
	builder := c.Delete().Where(documentmastery.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DocumentMasteryDeleteOne{builder}
}

// Query returns a query builder for DocumentMastery.
func (c *DocumentMasteryClient) Query() *DocumentMasteryQuery {
	return &DocumentMasteryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDocumentMastery},
		inters: c.Interceptors(),
	}
}

// Get returns a DocumentMastery entity by its id.
func (c *DocumentMasteryClient) Get(ctx context.Context, id int) (*DocumentMastery, error) {
	return c.Query().Where(documentmastery.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DocumentMasteryClient) GetX(ctx context.Context, id int) *DocumentMastery {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DocumentMasteryClient) Hooks() []Hook {
	return c.hooks.DocumentMastery
}

// Interceptors returns the client interceptors.
func (c *DocumentMasteryClient) Interceptors() []Interceptor {
	return c.inters.DocumentMastery
}

func (c *DocumentMasteryClient) mutate(ctx context.Context, m *DocumentMasteryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DocumentMasteryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DocumentMasteryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DocumentMasteryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DocumentMasteryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DocumentMastery mutation op: %q", m.Op())
	}
}

// EventSequenceClient is a client for the EventSequence schema.
type EventSequenceClient struct {
	config
}

// NewEventSequenceClient returns a client for the EventSequence from the given config.
func NewEventSequenceClient(c config) *EventSequenceClient {
	return &EventSequenceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `eventsequence.Hooks(f(g(h())))`.
func (c *EventSequenceClient) Use(hooks ...Hook) {
	c.hooks.EventSequence = append(c.hooks.EventSequence, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `eventsequence.Intercept(f(g(h())))`.
func (c *EventSequenceClient) Intercept(interceptors ...Interceptor) {
	c.inters.EventSequence = append(c.inters.EventSequence, interceptors...)
}

// Create returns a builder for creating a EventSequence entity.
func (c *EventSequenceClient) Create() *EventSequenceCreate {
	mutation := newEventSequenceMutation(c.config, OpCreate)
	return &EventSequenceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EventSequence entities.
func (c *EventSequenceClient) CreateBulk(builders ...*EventSequenceCreate) *EventSequenceCreateBulk {
	return &EventSequenceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EventSequenceClient) MapCreateBulk(slice any, setFunc func(*EventSequenceCreate, int)) *EventSequenceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EventSequenceCreateBulk{err: fmt.Errorf("calling to EventSequenceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EventSequenceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EventSequenceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EventSequence.
func (c *EventSequenceClient) Update() *EventSequenceUpdate {
	mutation := newEventSequenceMutation(c.config, OpUpdate)
	return &EventSequenceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EventSequenceClient) UpdateOne(_m *EventSequence) *EventSequenceUpdateOne {
	mutation := newEventSequenceMutation(c.config, OpUpdateOne, withEventSequence(_m))
	return &EventSequenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EventSequenceClient) UpdateOneID(id int) *EventSequenceUpdateOne {
	mutation := newEventSequenceMutation(c.config, OpUpdateOne, withEventSequenceID(id))
	return &EventSequenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EventSequence.
func (c *EventSequenceClient) Delete() *EventSequenceDelete {
	mutation := newEventSequenceMutation(c.config, OpDelete)
	return &EventSequenceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EventSequenceClient) DeleteOne(_m *EventSequence) *EventSequenceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EventSequenceClient) DeleteOneID(id int) *EventSequenceDeleteOne {
	builder := c.Delete().Where(eventsequence.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EventSequenceDeleteOne{builder}
}

// Query returns a query builder for EventSequence.
func (c *EventSequenceClient) Query() *EventSequenceQuery {
	return &EventSequenceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEventSequence},
		inters: c.Interceptors(),
	}
}

// Get returns a EventSequence entity by its id.
func (c *EventSequenceClient) Get(ctx context.Context, id int) (*EventSequence, error) {
	return c.Query().Where(eventsequence.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EventSequenceClient) GetX(ctx context.Context, id int) *EventSequence {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EventSequenceClient) Hooks() []Hook {
	return c.hooks.EventSequence
}

// Interceptors returns the client interceptors.
func (c *EventSequenceClient) Interceptors() []Interceptor {
	return c.inters.EventSequence
}

func (c *EventSequenceClient) mutate(ctx context.Context, m *EventSequenceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EventSequenceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EventSequenceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EventSequenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EventSequenceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EventSequence mutation op: %q", m.Op())
	}
}

// ItemMasteryClient is a client for the ItemMastery schema.
type ItemMasteryClient struct {
	config
}

// NewItemMasteryClient returns a client for the ItemMastery from the given config.
func NewItemMasteryClient(c config) *ItemMasteryClient {
	return &ItemMasteryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `itemmastery.Hooks(f(g(h())))`.
func (c *ItemMasteryClient) Use(hooks ...Hook) {
	c.hooks.ItemMastery = append(c.hooks.ItemMastery, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `itemmastery.Intercept(f(g(h())))`.
func (c *ItemMasteryClient) Intercept(interceptors ...Interceptor) {
	c.inters.ItemMastery = append(c.inters.ItemMastery, interceptors...)
}

// Create returns a builder for creating a ItemMastery entity.
func (c *ItemMasteryClient) Create() *ItemMasteryCreate {
	mutation := newItemMasteryMutation(c.config, OpCreate)
	return &ItemMasteryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ItemMastery entities.
func (c *ItemMasteryClient) CreateBulk(builders ...*ItemMasteryCreate) *ItemMasteryCreateBulk {
	return &ItemMasteryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ItemMasteryClient) MapCreateBulk(slice any, setFunc func(*ItemMasteryCreate, int)) *ItemMasteryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ItemMasteryCreateBulk{err: fmt.Errorf("calling to ItemMasteryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ItemMasteryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ItemMasteryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ItemMastery.
func (c *ItemMasteryClient) Update() *ItemMasteryUpdate {
	mutation := newItemMasteryMutation(c.config, OpUpdate)
	return &ItemMasteryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ItemMasteryClient) UpdateOne(_m *ItemMastery) *ItemMasteryUpdateOne {
	mutation := newItemMasteryMutation(c.config, OpUpdateOne, withItemMastery(_m))
	return &ItemMasteryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ItemMasteryClient) UpdateOneID(id int) *ItemMasteryUpdateOne {
	mutation := newItemMasteryMutation(c.config, OpUpdateOne, withItemMasteryID(id))
	return &ItemMasteryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ItemMastery.
func (c *ItemMasteryClient) Delete() *ItemMasteryDelete {
	mutation := newItemMasteryMutation(c.config, OpDelete)
	return &ItemMasteryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ItemMasteryClient) DeleteOne(_m *ItemMastery) *ItemMasteryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ItemMasteryClient) DeleteOneID(id int) *ItemMasteryDeleteOne {
	builder := c.Delete().Where(itemmastery.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ItemMasteryDeleteOne{builder}
}

// Query returns a query builder for ItemMastery.
func (c *ItemMasteryClient) Query() *ItemMasteryQuery {
	return &ItemMasteryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeItemMastery},
		inters: c.Interceptors(),
	}
}

// Get returns a ItemMastery entity by its id.
func (c *ItemMasteryClient) Get(ctx context.Context, id int) (*ItemMastery, error) {
	return c.Query().Where(itemmastery.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ItemMasteryClient) GetX(ctx context.Context, id int) *ItemMastery {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ItemMasteryClient) Hooks() []Hook {
	return c.hooks.ItemMastery
}

// Interceptors returns the client interceptors.
func (c *ItemMasteryClient) Interceptors() []Interceptor {
	return c.inters.ItemMastery
}

func (c *ItemMasteryClient) mutate(ctx context.Context, m *ItemMasteryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ItemMasteryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ItemMasteryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ItemMasteryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ItemMasteryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ItemMastery mutation op: %q", m.Op())
	}
}

// QuizItemClient is a client for the QuizItem schema.
type QuizItemClient struct {
	config
}

// NewQuizItemClient returns a client for the QuizItem from the given config.
func NewQuizItemClient(c config) *QuizItemClient {
	return &QuizItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `quizitem.Hooks(f(g(h())))`.
func (c *QuizItemClient) Use(hooks ...Hook) {
	c.hooks.QuizItem = append(c.hooks.QuizItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `quizitem.Intercept(f(g(h())))`.
func (c *QuizItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.QuizItem = append(c.inters.QuizItem, interceptors...)
}

// Create returns a builder for creating a QuizItem entity.
func (c *QuizItemClient) Create() *QuizItemCreate {
	mutation := newQuizItemMutation(c.config, OpCreate)
	return &QuizItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of QuizItem entities.
func (c *QuizItemClient) CreateBulk(builders ...*QuizItemCreate) *QuizItemCreateBulk {
	return &QuizItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QuizItemClient) MapCreateBulk(slice any, setFunc func(*QuizItemCreate, int)) *QuizItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QuizItemCreateBulk{err: fmt.Errorf("calling to QuizItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QuizItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QuizItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for QuizItem.
func (c *QuizItemClient) Update() *QuizItemUpdate {
	mutation := newQuizItemMutation(c.config, OpUpdate)
	return &QuizItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QuizItemClient) UpdateOne(_m *QuizItem) *QuizItemUpdateOne {
	mutation := newQuizItemMutation(c.config, OpUpdateOne, withQuizItem(_m))
	return &QuizItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QuizItemClient) UpdateOneID(id int) *QuizItemUpdateOne {
	mutation := newQuizItemMutation(c.config, OpUpdateOne, withQuizItemID(id))
	return &QuizItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for QuizItem.
func (c *QuizItemClient) Delete() *QuizItemDelete {
	mutation := newQuizItemMutation(c.config, OpDelete)
	return &QuizItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QuizItemClient) DeleteOne(_m *QuizItem) *QuizItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QuizItemClient) DeleteOneID(id int) *QuizItemDeleteOne {
	builder := c.Delete().Where(quizitem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QuizItemDeleteOne{builder}
}

// Query returns a query builder for QuizItem.
func (c *QuizItemClient) Query() *QuizItemQuery {
	return &QuizItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQuizItem},
		inters: c.Interceptors(),
	}
}

// Get returns a QuizItem entity by its id.
func (c *QuizItemClient) Get(ctx context.Context, id int) (*QuizItem, error) {
	return c.Query().Where(quizitem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QuizItemClient) GetX(ctx context.Context, id int) *QuizItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *QuizItemClient) Hooks() []Hook {
	return c.hooks.QuizItem
}

// Interceptors returns the client interceptors.
func (c *QuizItemClient) Interceptors() []Interceptor {
	return c.inters.QuizItem
}

func (c *QuizItemClient) mutate(ctx context.Context, m *QuizItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QuizItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QuizItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QuizItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QuizItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown QuizItem mutation op: %q", m.Op())
	}
}

// RegenEventClient is a client for the RegenEvent schema.
type RegenEventClient struct {
	config
}

// NewRegenEventClient returns a client for the RegenEvent from the given config.
func NewRegenEventClient(c config) *RegenEventClient {
	return &RegenEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `regenevent.Hooks(f(g(h())))`.
func (c *RegenEventClient) Use(hooks ...Hook) {
	c.hooks.RegenEvent = append(c.hooks.RegenEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `regenevent.Intercept(f(g(h())))`.
func (c *RegenEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.RegenEvent = append(c.inters.RegenEvent, interceptors...)
}

// Create returns a builder for creating a RegenEvent entity.
func (c *RegenEventClient) Create() *RegenEventCreate {
	mutation := newRegenEventMutation(c.config, OpCreate)
	return &RegenEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RegenEvent entities.
func (c *RegenEventClient) CreateBulk(builders ...*RegenEventCreate) *RegenEventCreateBulk {
	return &RegenEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RegenEventClient) MapCreateBulk(slice any, setFunc func(*RegenEventCreate, int)) *RegenEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RegenEventCreateBulk{err: fmt.Errorf("calling to RegenEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RegenEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RegenEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RegenEvent.
func (c *RegenEventClient) Update() *RegenEventUpdate {
	mutation := newRegenEventMutation(c.config, OpUpdate)
	return &RegenEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RegenEventClient) UpdateOne(_m *RegenEvent) *RegenEventUpdateOne {
	mutation := newRegenEventMutation(c.config, OpUpdateOne, withRegenEvent(_m))
	return &RegenEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RegenEventClient) UpdateOneID(id int) *RegenEventUpdateOne {
	mutation := newRegenEventMutation(c.config, OpUpdateOne, withRegenEventID(id))
	return &RegenEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RegenEvent.
func (c *RegenEventClient) Delete() *RegenEventDelete {
	mutation := newRegenEventMutation(c.config, OpDelete)
	return &RegenEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RegenEventClient) DeleteOne(_m *RegenEvent) *RegenEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RegenEventClient) DeleteOneID(id int) *RegenEventDeleteOne {
	builder := c.Delete().Where(regenevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RegenEventDeleteOne{builder}
}

// Query returns a query builder for RegenEvent.
func (c *RegenEventClient) Query() *RegenEventQuery {
	return &RegenEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRegenEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a RegenEvent entity by its id.
func (c *RegenEventClient) Get(ctx context.Context, id int) (*RegenEvent, error) {
	return c.Query().Where(regenevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RegenEventClient) GetX(ctx context.Context, id int) *RegenEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *RegenEventClient) Hooks() []Hook {
	return c.hooks.RegenEvent
}

// Interceptors returns the client interceptors.
func (c *RegenEventClient) Interceptors() []Interceptor {
	return c.inters.RegenEvent
}

func (c *RegenEventClient) mutate(ctx context.Context, m *RegenEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RegenEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RegenEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RegenEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RegenEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RegenEvent mutation op: %q", m.Op())
	}
}

// ReviewScheduleClient is a client for the ReviewSchedule schema.
type ReviewScheduleClient struct {
	config
}

// NewReviewScheduleClient returns a client for the ReviewSchedule from the given config.
func NewReviewScheduleClient(c config) *ReviewScheduleClient {
	return &ReviewScheduleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `reviewschedule.Hooks(f(g(h())))`.
func (c *ReviewScheduleClient) Use(hooks ...Hook) {
	c.hooks.ReviewSchedule = append(c.hooks.ReviewSchedule, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `reviewschedule.Intercept(f(g(h())))`.
func (c *ReviewScheduleClient) Intercept(interceptors ...Interceptor) {
	c.inters.ReviewSchedule = append(c.inters.ReviewSchedule, interceptors...)
}

// Create returns a builder for creating a ReviewSchedule entity.
func (c *ReviewScheduleClient) Create() *ReviewScheduleCreate {
	mutation := newReviewScheduleMutation(c.config, OpCreate)
	return &ReviewScheduleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ReviewSchedule entities.
func (c *ReviewScheduleClient) CreateBulk(builders ...*ReviewScheduleCreate) *ReviewScheduleCreateBulk {
	return &ReviewScheduleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ReviewScheduleClient) MapCreateBulk(slice any, setFunc func(*ReviewScheduleCreate, int)) *ReviewScheduleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ReviewScheduleCreateBulk{err: fmt.Errorf("calling to ReviewScheduleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ReviewScheduleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ReviewScheduleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ReviewSchedule.
func (c *ReviewScheduleClient) Update() *ReviewScheduleUpdate {
	mutation := newReviewScheduleMutation(c.config, OpUpdate)
	return &ReviewScheduleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ReviewScheduleClient) UpdateOne(_m *ReviewSchedule) *ReviewScheduleUpdateOne {
	mutation := newReviewScheduleMutation(c.config, OpUpdateOne, withReviewSchedule(_m))
	return &ReviewScheduleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ReviewScheduleClient) UpdateOneID(id int) *ReviewScheduleUpdateOne {
	mutation := newReviewScheduleMutation(c.config, OpUpdateOne, withReviewScheduleID(id))
	return &ReviewScheduleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ReviewSchedule.
func (c *ReviewScheduleClient) Delete() *ReviewScheduleDelete {
	mutation := newReviewScheduleMutation(c.config, OpDelete)
	return &ReviewScheduleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ReviewScheduleClient) DeleteOne(_m *ReviewSchedule) *ReviewScheduleDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ReviewScheduleClient) DeleteOneID(id int) *ReviewScheduleDeleteOne {
	builder := c.Delete().Where(reviewschedule.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ReviewScheduleDeleteOne{builder}
}

// Query returns a query builder for ReviewSchedule.
func (c *ReviewScheduleClient) Query() *ReviewScheduleQuery {
	return &ReviewScheduleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeReviewSchedule},
		inters: c.Interceptors(),
	}
}

// Get returns a ReviewSchedule entity by its id.
func (c *ReviewScheduleClient) Get(ctx context.Context, id int) (*ReviewSchedule, error) {
	return c.Query().Where(reviewschedule.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ReviewScheduleClient) GetX(ctx context.Context, id int) *ReviewSchedule {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ReviewScheduleClient) Hooks() []Hook {
	return c.hooks.ReviewSchedule
}

// Interceptors returns the client interceptors.
func (c *ReviewScheduleClient) Interceptors() []Interceptor {
	return c.inters.ReviewSchedule
}

func (c *ReviewScheduleClient) mutate(ctx context.Context, m *ReviewScheduleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ReviewScheduleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ReviewScheduleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ReviewScheduleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ReviewScheduleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ReviewSchedule mutation op: %q", m.Op())
	}
}

// SessionCounterClient is a client for the SessionCounter schema.
type SessionCounterClient struct {
	config
}

// NewSessionCounterClient returns a client for the SessionCounter from the given config.
func NewSessionCounterClient(c config) *SessionCounterClient {
	return &SessionCounterClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sessioncounter.Hooks(f(g(h())))`.
func (c *SessionCounterClient) Use(hooks ...Hook) {
	c.hooks.SessionCounter = append(c.hooks.SessionCounter, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sessioncounter.Intercept(f(g(h())))`.
func (c *SessionCounterClient) Intercept(interceptors ...Interceptor) {
	c.inters.SessionCounter = append(c.inters.SessionCounter, interceptors...)
}

// Create returns a builder for creating a SessionCounter entity.
func (c *SessionCounterClient) Create() *SessionCounterCreate {
	mutation := newSessionCounterMutation(c.config, OpCreate)
	return &SessionCounterCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SessionCounter entities.
func (c *SessionCounterClient) CreateBulk(builders ...*SessionCounterCreate) *SessionCounterCreateBulk {
	return &SessionCounterCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SessionCounterClient) MapCreateBulk(slice any, setFunc func(*SessionCounterCreate, int)) *SessionCounterCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SessionCounterCreateBulk{err: fmt.Errorf("calling to SessionCounterClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SessionCounterCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SessionCounterCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SessionCounter.
func (c *SessionCounterClient) Update() *SessionCounterUpdate {
	mutation := newSessionCounterMutation(c.config, OpUpdate)
	return &SessionCounterUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SessionCounterClient) UpdateOne(_m *SessionCounter) *SessionCounterUpdateOne {
	mutation := newSessionCounterMutation(c.config, OpUpdateOne, withSessionCounter(_m))
	return &SessionCounterUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SessionCounterClient) UpdateOneID(id int) *SessionCounterUpdateOne {
	mutation := newSessionCounterMutation(c.config, OpUpdateOne, withSessionCounterID(id))
	return &SessionCounterUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SessionCounter.
func (c *SessionCounterClient) Delete() *SessionCounterDelete {
	mutation := newSessionCounterMutation(c.config, OpDelete)
	return &SessionCounterDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SessionCounterClient) DeleteOne(_m *SessionCounter) *SessionCounterDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SessionCounterClient) DeleteOneID(id int) *SessionCounterDeleteOne {
	builder := c.Delete().Where(sessioncounter.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SessionCounterDeleteOne{builder}
}

// Query returns a query builder for SessionCounter.
func (c *SessionCounterClient) Query() *SessionCounterQuery {
	return &SessionCounterQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSessionCounter},
		inters: c.Interceptors(),
	}
}

// Get returns a SessionCounter entity by its id.
func (c *SessionCounterClient) Get(ctx context.Context, id int) (*SessionCounter, error) {
	return c.Query().Where(sessioncounter.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SessionCounterClient) GetX(ctx context.Context, id int) *SessionCounter {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SessionCounterClient) Hooks() []Hook {
	return c.hooks.SessionCounter
}

// Interceptors returns the client interceptors.
func (c *SessionCounterClient) Interceptors() []Interceptor {
	return c.inters.SessionCounter
}

func (c *SessionCounterClient) mutate(ctx context.Context, m *SessionCounterMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SessionCounterCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SessionCounterUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SessionCounterUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SessionCounterDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SessionCounter mutation op: %q", m.Op())
	}
}

// SessionEventClient is a client for the SessionEvent schema.
type SessionEventClient struct {
	config
}

// NewSessionEventClient returns a client for the SessionEvent from the given config.
func NewSessionEventClient(c config) *SessionEventClient {
	return &SessionEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sessionevent.Hooks(f(g(h())))`.
func (c *SessionEventClient) Use(hooks ...Hook) {
	c.hooks.SessionEvent = append(c.hooks.SessionEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sessionevent.Intercept(f(g(h())))`.
func (c *SessionEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.SessionEvent = append(c.inters.SessionEvent, interceptors...)
}

// Create returns a builder for creating a SessionEvent entity.
func (c *SessionEventClient) Create() *SessionEventCreate {
	mutation := newSessionEventMutation(c.config, OpCreate)
	return &SessionEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SessionEvent entities.
func (c *SessionEventClient) CreateBulk(builders ...*SessionEventCreate) *SessionEventCreateBulk {
	return &SessionEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SessionEventClient) MapCreateBulk(slice any, setFunc func(*SessionEventCreate, int)) *SessionEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SessionEventCreateBulk{err: fmt.Errorf("calling to SessionEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SessionEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SessionEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SessionEvent.
func (c *SessionEventClient) Update() *SessionEventUpdate {
	mutation := newSessionEventMutation(c.config, OpUpdate)
	return &SessionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SessionEventClient) UpdateOne(_m *SessionEvent) *SessionEventUpdateOne {
	mutation := newSessionEventMutation(c.config, OpUpdateOne, withSessionEvent(_m))
	return &SessionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SessionEventClient) UpdateOneID(id int) *SessionEventUpdateOne {
	mutation := newSessionEventMutation(c.config, OpUpdateOne, withSessionEventID(id))
	return &SessionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SessionEvent.
func (c *SessionEventClient) Delete() *SessionEventDelete {
	mutation := newSessionEventMutation(c.config, OpDelete)
	return &SessionEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SessionEventClient) DeleteOne(_m *SessionEvent) *SessionEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SessionEventClient) DeleteOneID(id int) *SessionEventDeleteOne {
	builder := c.Delete().Where(sessionevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SessionEventDeleteOne{builder}
}

// Query returns a query builder for SessionEvent.
func (c *SessionEventClient) Query() *SessionEventQuery {
	return &SessionEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSessionEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a SessionEvent entity by its id.
func (c *SessionEventClient) Get(ctx context.Context, id int) (*SessionEvent, error) {
	return c.Query().Where(sessionevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SessionEventClient) GetX(ctx context.Context, id int) *SessionEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SessionEventClient) Hooks() []Hook {
	return c.hooks.SessionEvent
}

// Interceptors returns the client interceptors.
func (c *SessionEventClient) Interceptors() []Interceptor {
	return c.inters.SessionEvent
}

func (c *SessionEventClient) mutate(ctx context.Context, m *SessionEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SessionEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SessionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SessionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SessionEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SessionEvent mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AttemptEvent, DocumentMastery, EventSequence, ItemMastery, QuizItem, RegenEvent,
		ReviewSchedule, SessionCounter, SessionEvent []ent.Hook
	}
	inters struct {
		AttemptEvent, DocumentMastery, EventSequence, ItemMastery, QuizItem, RegenEvent,
		ReviewSchedule, SessionCounter, SessionEvent []ent.Interceptor
	}
)
