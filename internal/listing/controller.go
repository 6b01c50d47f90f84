package listing

import (
	"context"
	"fmt"
	"io"
	"slices"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Store is the remote data-access collaborator for one entity type.
type Store[T, D any] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, draft D) (T, error)
	Update(ctx context.Context, id string, draft D) (T, error)
	Delete(ctx context.Context, id string) error
}

// Status is the loading state of the collection.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusError   Status = "error"
)

// Event is emitted after the collection changed.
type Event struct {
	Entity  string    `json:"entity"`
	Op      string    `json:"op"`
	Message string    `json:"message,omitempty"`
	At      time.Time `json:"at"`
}

// Metrics receives one observation per finished operation.
type Metrics interface {
	ObserveOperation(entity, op string, err error, elapsed time.Duration)
}

type Options struct {
	PageSize         int
	Scope            Scope
	BatchConcurrency int
	// CacheSize bounds the memoized derivations; zero disables memoization.
	CacheSize int
	Encoders  map[Format]Encoder
	Logger    logrus.FieldLogger
	Metrics   Metrics
	OnEvent   func(Event)
	Now       func() time.Time
}

// BatchResult lists the outcome of each id of a batch delete.
type BatchResult struct {
	Deleted []string `json:"deleted"`
	Failed  []string `json:"failed"`
}

// Snapshot is the read-only state tuple handed to the presentation layer.
type Snapshot[T any] struct {
	Items       []T        `json:"items"`
	Page        int        `json:"page"`
	TotalPages  int        `json:"total_pages"`
	Filtered    int        `json:"filtered"`
	Total       int        `json:"total"`
	Query       QueryState `json:"query"`
	Selected    []string   `json:"selected"`
	AllSelected bool       `json:"all_selected"`
	Status      Status     `json:"status"`
	Error       string     `json:"error,omitempty"`
	Pending     int        `json:"pending"`
	Activity    []Entry    `json:"activity"`
}

type memoKey struct {
	version uint64
	query   QueryState
}

// Controller owns one entity collection together with its query state, selection and
// activity log. Remote calls run outside the lock; their results are applied atomically.
type Controller[T, D any] struct {
	schema   *Schema[T]
	store    Store[T, D]
	opts     Options
	log      logrus.FieldLogger
	activity *Recorder
	memo     *lru.Cache[memoKey, Page[T]]
	title    string

	mu        sync.Mutex
	items     []T
	version   uint64
	query     QueryState
	selection *Selection
	status    Status
	lastErr   string
	pending   int
	fetchSeq  uint64
}

// New builds a controller with an empty collection in the idle state.
func New[T, D any](schema *Schema[T], store Store[T, D], opts Options) (*Controller[T, D], error) {
	if schema == nil || store == nil {
		return nil, errors.New("listing: schema and store are required")
	}
	if schema.ID == nil || schema.Name == nil {
		return nil, errors.Errorf("listing: %s schema needs ID and Name accessors", schema.Noun)
	}
	if schema.DefaultSortKey != "" {
		if _, ok := schema.sortField(schema.DefaultSortKey); !ok {
			return nil, errors.Wrapf(ErrUnknownSortKey, "default sort for %s %q", schema.Noun, schema.DefaultSortKey)
		}
	}
	if opts.Scope == "" {
		opts.Scope = ScopePage
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}

	c := &Controller[T, D]{
		schema:    schema,
		store:     store,
		opts:      opts,
		log:       opts.Logger.WithField("entity", schema.Plural),
		activity:  NewRecorder(opts.Now),
		title:     cases.Title(language.English).String(schema.Plural),
		query:     schema.InitialQuery(opts.PageSize),
		selection: NewSelection(),
		status:    StatusIdle,
	}
	if opts.CacheSize > 0 {
		memo, err := lru.New[memoKey, Page[T]](opts.CacheSize)
		if err != nil {
			return nil, errors.Wrap(err, "listing: derive cache")
		}
		c.memo = memo
	}
	return c, nil
}

func (c *Controller[T, D]) Schema() *Schema[T] { return c.schema }

// FetchAll replaces the collection with the store's list. A response that arrives after a
// newer fetch was started is discarded. On failure the previous collection is kept.
func (c *Controller[T, D]) FetchAll(ctx context.Context) error {
	start := c.opts.Now()

	c.mu.Lock()
	c.fetchSeq++
	seq := c.fetchSeq
	c.status = StatusLoading
	c.mu.Unlock()

	items, err := c.store.List(ctx)

	c.mu.Lock()
	if seq != c.fetchSeq {
		c.mu.Unlock()
		c.log.WithField("seq", seq).Debug("discarding superseded fetch")
		return nil
	}
	if err != nil {
		c.status = StatusError
		c.lastErr = err.Error()
		c.mu.Unlock()
		c.observe("fetch", err, start)
		c.log.WithError(err).Warn("fetch failed, keeping previous collection")
		return &OpError{Kind: KindFetch, Op: "fetch " + c.schema.Plural, Err: err}
	}
	c.items = c.dedupe(items)
	c.version++
	c.selection.Clear()
	c.query.Page = 1
	c.status = StatusReady
	c.lastErr = ""
	c.reconcileLocked()
	count := len(c.items)
	c.mu.Unlock()

	c.observe("fetch", nil, start)
	c.log.WithField("count", count).Debug("collection fetched")
	c.emit("fetch", "")
	return nil
}

// Create stores draft remotely and appends the returned entity.
func (c *Controller[T, D]) Create(ctx context.Context, draft D) (T, error) {
	start := c.beginMutation()

	created, err := c.store.Create(ctx, draft)

	c.mu.Lock()
	c.pending--
	if err != nil {
		c.mu.Unlock()
		var zero T
		return zero, c.mutationFailed("create", "", err, start)
	}
	if i := c.indexLocked(c.schema.ID(created)); i >= 0 {
		c.items[i] = created
	} else {
		c.items = append(c.items, created)
	}
	c.version++
	c.reconcileLocked()
	msg := fmt.Sprintf("Created new %s: %s", c.schema.Noun, c.schema.Name(created))
	c.activity.Record(msg)
	c.mu.Unlock()

	c.observe("create", nil, start)
	c.emit("create", msg)
	return created, nil
}

// Update replaces the entity with id by the store's response.
func (c *Controller[T, D]) Update(ctx context.Context, id string, draft D) (T, error) {
	start := c.beginMutation()

	updated, err := c.store.Update(ctx, id, draft)

	c.mu.Lock()
	c.pending--
	if err != nil {
		c.mu.Unlock()
		var zero T
		return zero, c.mutationFailed("update", id, err, start)
	}
	if i := c.indexLocked(id); i >= 0 {
		c.items[i] = updated
		c.version++
		c.reconcileLocked()
	} else {
		// a fetch that completed meanwhile no longer lists it
		c.log.WithField("id", id).Debug("updated entity not in collection")
	}
	msg := fmt.Sprintf("Updated %s: %s", c.schema.Noun, c.schema.Name(updated))
	c.activity.Record(msg)
	c.mu.Unlock()

	c.observe("update", nil, start)
	c.emit("update", msg)
	return updated, nil
}

// Delete removes id remotely and then locally. Confirmation is the caller's job.
func (c *Controller[T, D]) Delete(ctx context.Context, id string) error {
	start := c.beginMutation()

	c.mu.Lock()
	name := id
	if i := c.indexLocked(id); i >= 0 {
		name = c.schema.Name(c.items[i])
	}
	c.mu.Unlock()

	err := c.store.Delete(ctx, id)

	c.mu.Lock()
	c.pending--
	if err != nil {
		c.mu.Unlock()
		return c.mutationFailed("delete", id, err, start)
	}
	if i := c.indexLocked(id); i >= 0 {
		c.items = slices.Delete(c.items, i, i+1)
	}
	c.selection.Remove(id)
	c.version++
	c.reconcileLocked()
	msg := fmt.Sprintf("Deleted %s: %s", c.schema.Noun, name)
	c.activity.Record(msg)
	c.mu.Unlock()

	c.observe("delete", nil, start)
	c.emit("delete", msg)
	return nil
}

// BatchDelete deletes every distinct id concurrently and applies the successful removals once
// all calls settled. Failed ids stay in the collection and are reported in a *BatchError.
func (c *Controller[T, D]) BatchDelete(ctx context.Context, ids []string) (BatchResult, error) {
	ids = distinct(ids)
	if len(ids) == 0 {
		return BatchResult{Deleted: []string{}, Failed: []string{}}, nil
	}
	start := c.beginMutation()

	errs := make([]error, len(ids))
	var g errgroup.Group
	if c.opts.BatchConcurrency > 0 {
		g.SetLimit(c.opts.BatchConcurrency)
	}
	for i, id := range ids {
		g.Go(func() error {
			errs[i] = c.store.Delete(ctx, id)
			return nil
		})
	}
	_ = g.Wait()

	res := BatchResult{Deleted: []string{}, Failed: []string{}}
	var batchErr *BatchError
	gone := make(map[string]struct{}, len(ids))
	for i, id := range ids {
		if errs[i] != nil {
			if batchErr == nil {
				batchErr = &BatchError{Failed: make(map[string]error)}
			}
			batchErr.Failed[id] = errs[i]
			res.Failed = append(res.Failed, id)
			continue
		}
		gone[id] = struct{}{}
		res.Deleted = append(res.Deleted, id)
	}

	c.mu.Lock()
	c.pending--
	c.items = slices.DeleteFunc(c.items, func(item T) bool {
		_, ok := gone[c.schema.ID(item)]
		return ok
	})
	c.selection.Clear()
	c.version++
	c.reconcileLocked()
	msg := ""
	if len(res.Deleted) > 0 {
		msg = "Deleted selected " + c.schema.Plural
		c.activity.Record(msg)
	}
	c.mu.Unlock()

	if batchErr != nil {
		batchErr.Deleted = res.Deleted
		c.observe("batch_delete", batchErr, start)
		c.log.WithFields(logrus.Fields{
			"deleted": len(res.Deleted),
			"failed":  res.Failed,
		}).Warn("batch delete partially failed")
		c.emit("batch_delete", msg)
		return res, batchErr
	}
	c.observe("batch_delete", nil, start)
	c.emit("batch_delete", msg)
	return res, nil
}

// Export writes the whole collection, not only the visible page, in format.
func (c *Controller[T, D]) Export(w io.Writer, format Format) error {
	enc, ok := c.opts.Encoders[format]
	if !ok {
		return errors.Wrapf(ErrUnsupportedFormat, "%q", format)
	}
	return errors.Wrapf(enc.Encode(w, c.title, c.Table()), "export %s as %s", c.schema.Plural, format)
}

// Table returns the tabular projection of the whole collection.
func (c *Controller[T, D]) Table() Table {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Project(c.items, c.schema.Columns)
}

// SetSearch changes the search term and returns to page 1.
func (c *Controller[T, D]) SetSearch(term string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if term == c.query.SearchTerm {
		return
	}
	c.query.SearchTerm = term
	c.query.Page = 1
	c.reconcileLocked()
}

// ToggleSort flips or switches the active sort key.
func (c *Controller[T, D]) ToggleSort(key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	q, err := c.schema.ToggleSort(c.query, key)
	if err != nil {
		return err
	}
	c.query = q
	c.reconcileLocked()
	return nil
}

// SetPage moves to page; out-of-range values are clamped.
func (c *Controller[T, D]) SetPage(page int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.query.Page = page
	c.reconcileLocked()
}

// ToggleSelection flips id and reports whether it is selected afterwards. Ids outside the
// selection scope are ignored.
func (c *Controller[T, D]) ToggleSelection(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !slices.Contains(c.scopeIDsLocked(), id) {
		return false
	}
	c.selection.Toggle(id)
	return c.selection.Contains(id)
}

// SelectPage selects exactly the visible page, or clears the selection.
func (c *Controller[T, D]) SelectPage(selected bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	page, err := c.deriveLocked()
	if err != nil {
		c.log.WithError(err).Error("derive failed")
		return
	}
	c.selection.SelectAll(c.schema.IDs(page.Items), selected)
}

func (c *Controller[T, D]) ClearSelection() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selection.Clear()
}

// Selected returns the selected ids in ascending order.
func (c *Controller[T, D]) Selected() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selection.IDs()
}

// Snapshot derives the visible page and returns the full state tuple.
func (c *Controller[T, D]) Snapshot() (Snapshot[T], error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	page, err := c.deriveLocked()
	if err != nil {
		return Snapshot[T]{}, err
	}
	q := c.query
	q.Page = page.Page
	return Snapshot[T]{
		Items:       slices.Clone(page.Items),
		Page:        page.Page,
		TotalPages:  page.TotalPages,
		Filtered:    page.Filtered,
		Total:       len(c.items),
		Query:       q,
		Selected:    c.selection.IDs(),
		AllSelected: c.selection.IsAllSelected(c.schema.IDs(page.Items)),
		Status:      c.status,
		Error:       c.lastErr,
		Pending:     c.pending,
		Activity:    c.activity.Entries(),
	}, nil
}

// Items returns a copy of the whole collection.
func (c *Controller[T, D]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.items)
}

// Find returns the loaded entity with id.
func (c *Controller[T, D]) Find(id string) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i := c.indexLocked(id); i >= 0 {
		return c.items[i], nil
	}
	var zero T
	return zero, errors.Wrapf(ErrNotFound, "%s %s", c.schema.Noun, id)
}

func (c *Controller[T, D]) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

func (c *Controller[T, D]) Activity() []Entry {
	return c.activity.Entries()
}

func (c *Controller[T, D]) ActivityCount() int { return c.activity.Len() }

func (c *Controller[T, D]) deriveLocked() (Page[T], error) {
	key := memoKey{version: c.version, query: c.query}
	if c.memo != nil {
		if page, ok := c.memo.Get(key); ok {
			return page, nil
		}
	}
	page, err := c.schema.Derive(c.items, c.query)
	if err != nil {
		return Page[T]{}, err
	}
	if c.memo != nil {
		c.memo.Add(key, page)
	}
	return page, nil
}

// reconcileLocked stores the clamped page and prunes the selection to its scope.
func (c *Controller[T, D]) reconcileLocked() {
	page, err := c.deriveLocked()
	if err != nil {
		c.log.WithError(err).Error("derive failed")
		return
	}
	c.query.Page = page.Page
	if c.opts.Scope == ScopeCollection {
		c.selection.Retain(c.schema.IDs(c.items))
		return
	}
	c.selection.Retain(c.schema.IDs(page.Items))
}

func (c *Controller[T, D]) scopeIDsLocked() []string {
	if c.opts.Scope == ScopeCollection {
		return c.schema.IDs(c.items)
	}
	page, err := c.deriveLocked()
	if err != nil {
		return nil
	}
	return c.schema.IDs(page.Items)
}

func (c *Controller[T, D]) indexLocked(id string) int {
	return slices.IndexFunc(c.items, func(item T) bool { return c.schema.ID(item) == id })
}

func (c *Controller[T, D]) beginMutation() time.Time {
	c.mu.Lock()
	c.pending++
	c.mu.Unlock()
	return c.opts.Now()
}

func (c *Controller[T, D]) mutationFailed(op, id string, err error, start time.Time) error {
	c.observe(op, err, start)
	c.log.WithError(err).WithFields(logrus.Fields{"op": op, "id": id}).Warn("mutation failed")
	return &OpError{Kind: KindMutation, Op: op + " " + c.schema.Noun, ID: id, Err: err}
}

func (c *Controller[T, D]) observe(op string, err error, start time.Time) {
	if c.opts.Metrics != nil {
		c.opts.Metrics.ObserveOperation(c.schema.Plural, op, err, c.opts.Now().Sub(start))
	}
}

func (c *Controller[T, D]) emit(op, message string) {
	if c.opts.OnEvent != nil {
		c.opts.OnEvent(Event{Entity: c.schema.Plural, Op: op, Message: message, At: c.opts.Now()})
	}
}

// dedupe keeps the first entity per id.
func (c *Controller[T, D]) dedupe(items []T) []T {
	seen := make(map[string]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		id := c.schema.ID(item)
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, item)
	}
	return out
}

func distinct(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok || id == "" {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
