// Package table holds one mounted funding table: its records, load status and page state.
//
// A Component is mounted once, which starts the single fetch in the background.
// User actions only ever touch the page state; the record set is written exactly once,
// by the load completion, and is read-only afterwards.
package table

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/maxviazov/fundtable/internal/loader"
	"github.com/maxviazov/fundtable/internal/model"
	"github.com/maxviazov/fundtable/internal/pagination"
)

// Loader is the part of loader.Loader a component depends on.
type Loader interface {
	Load(ctx context.Context) loader.Result
}

// Option customizes a Component at construction time.
type Option func(*Component)

// WithFormatter overrides the default en-GB formatter.
func WithFormatter(f *Formatter) Option {
	return func(c *Component) { c.format = f }
}

// WithLogger attaches a logger; the component logs through a child tagged with its id.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Component) { c.log = l }
}

// WithClock replaces time.Now as the source of last-access times.
func WithClock(now func() time.Time) Option {
	return func(c *Component) { c.now = now }
}

// WithPageSize changes the initial page size; unknown sizes are ignored.
func WithPageSize(n int) Option {
	return func(c *Component) {
		if pagination.IsValidPageSize(n) {
			c.state.PageSize = n
		}
	}
}

type Component struct {
	id     string
	loader Loader
	format *Formatter
	log    zerolog.Logger
	now    func() time.Time

	// lastSeen is unix nanoseconds of the last read or navigation.
	lastSeen atomic.Int64

	mu        sync.RWMutex
	records   []model.Record
	status    model.LoadStatus
	state     model.PageState
	mounted   bool
	unmounted bool
	cancel    context.CancelFunc
	done      chan struct{}
}

func New(id string, l Loader, opts ...Option) *Component {
	c := &Component{
		id:     id,
		loader: l,
		format: DefaultFormatter(),
		log:    zerolog.Nop(),
		now:    time.Now,
		status: model.Loading(),
		state:  model.DefaultPageState(),
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With().Str("module", "table").Str("table_id", id).Logger()
	c.touch()
	return c
}

func (c *Component) touch() { c.lastSeen.Store(c.now().UnixNano()) }

// LastAccess is when the table was created, viewed or navigated most recently.
func (c *Component) LastAccess() time.Time { return time.Unix(0, c.lastSeen.Load()) }

// Finished reports whether the load has reached a terminal status.
func (c *Component) Finished() bool { return c.Status().IsTerminal() }

func (c *Component) ID() string { return c.id }

// Mount starts the one and only fetch. Calling it again, or after Unmount, does nothing.
// The fetch runs under a context derived from ctx that Unmount cancels.
func (c *Component) Mount(ctx context.Context) {
	c.mu.Lock()
	if c.mounted || c.unmounted {
		c.mu.Unlock()
		return
	}
	c.mounted = true
	ctx, c.cancel = context.WithCancel(ctx)
	c.mu.Unlock()

	c.log.Debug().Msg("mounted, loading records")
	go func() {
		defer close(c.done)
		c.finish(c.loader.Load(ctx))
	}()
}

// finish applies a load result exactly once, unless the component is already gone.
func (c *Component) finish(res loader.Result) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.unmounted {
		c.log.Debug().Str("state", string(res.Status.State)).Msg("discarding load result after unmount")
		return
	}
	if c.status.IsTerminal() {
		return
	}
	if res.Status.State == model.LoadStateReady {
		c.records = res.Records
	}
	c.status = res.Status
}

// Unmount cancels an in-flight fetch. Any result that arrives later is dropped.
func (c *Component) Unmount() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.unmounted {
		return
	}
	c.unmounted = true
	if c.cancel != nil {
		c.cancel()
	}
	c.log.Debug().Msg("unmounted")
}

// Wait blocks until the fetch has completed or ctx ends.
func (c *Component) Wait(ctx context.Context) error {
	select {
	case <-c.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *Component) Status() model.LoadStatus {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.status
}

func (c *Component) State() model.PageState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Len is the size of the loaded record set; zero until the load succeeds.
func (c *Component) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.records)
}

func (c *Component) TotalPages() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return pagination.TotalPages(len(c.records), c.state.PageSize)
}

// GoToPage moves to target when it lies within [1, TotalPages]; otherwise nothing changes.
func (c *Component) GoToPage(target int) bool {
	c.touch()
	c.mu.Lock()
	defer c.mu.Unlock()
	var changed bool
	c.state, changed = pagination.GoToPage(c.state, target, len(c.records))
	return changed
}

// Next is GoToPage(current+1).
func (c *Component) Next() bool {
	c.touch()
	c.mu.Lock()
	defer c.mu.Unlock()
	var changed bool
	c.state, changed = pagination.Next(c.state, len(c.records))
	return changed
}

// Prev is GoToPage(current-1).
func (c *Component) Prev() bool {
	c.touch()
	c.mu.Lock()
	defer c.mu.Unlock()
	var changed bool
	c.state, changed = pagination.Prev(c.state, len(c.records))
	return changed
}

// SetPageSize switches page size and returns to page 1.
func (c *Component) SetPageSize(n int) error {
	c.touch()
	c.mu.Lock()
	defer c.mu.Unlock()
	next, err := pagination.SetPageSize(c.state, n)
	if err != nil {
		return err
	}
	c.state = next
	return nil
}

// Visible returns the records on the current page, derived fresh on each call.
func (c *Component) Visible() []model.Record {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return pagination.Slice(c.records, c.state)
}

// View renders the current snapshot.
func (c *Component) View() View {
	c.touch()
	c.mu.RLock()
	defer c.mu.RUnlock()
	v := Render(c.status, c.records, c.state, c.format)
	v.ID = c.id
	return v
}
