// Package listview implements the paginated list workflow shared by every
// back-office screen: one controller per (session, view) owns the current
// page query and the last fetched page, re-fetching on every query change.
//
// Correctness rules enforced here:
//   - keyword and filter changes reset the page to 1 before dispatch
//   - identical queries never have two fetches in flight (singleflight)
//   - a response for a superseded query is discarded, never overwriting a
//     fresher result (last request wins)
//   - a failed fetch leaves the previous page in place and surfaces the
//     failure alongside it (stale while error)
package listview

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/hirebridge/backoffice/internal/domain"
)

// State is the lifecycle state of a controller.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateLoaded
	StateError
)

// String returns the lowercase name of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// FetchFunc loads one page for the given query.
type FetchFunc[T any] func(ctx context.Context, q domain.PageQuery) (*domain.Page[T], error)

// Snapshot is a copy of a controller's observable state at one instant.
type Snapshot[T any] struct {
	State      State
	Query      domain.PageQuery
	Items      []T
	TotalCount int
	TotalPage  int
	// Err is the most recent fetch failure. When Stale is true the Items
	// still hold the last successful page.
	Err   error
	Stale bool
}

// Options tunes a controller.
type Options struct {
	DefaultPageSize int
	MaxPageSize     int
}

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// Controller owns the list state for one view. All methods are safe for
// concurrent use.
type Controller[T any] struct {
	mu    sync.Mutex
	fetch FetchFunc[T]
	opts  Options

	query domain.PageQuery
	gen   uint64

	state State
	page  *domain.Page[T]
	err   error

	flight singleflight.Group
}

// NewController creates an idle controller around fetch.
// Panics if fetch is nil.
func NewController[T any](fetch FetchFunc[T], opts Options) *Controller[T] {
	if fetch == nil {
		panic("listview.NewController: fetch must not be nil")
	}
	if opts.DefaultPageSize <= 0 {
		opts.DefaultPageSize = defaultPageSize
	}
	if opts.MaxPageSize <= 0 {
		opts.MaxPageSize = maxPageSize
	}
	return &Controller[T]{
		fetch: fetch,
		opts:  opts,
		query: domain.PageQuery{Page: 1, PageSize: opts.DefaultPageSize},
		state: StateIdle,
	}
}

// SetPage moves to the given page.
func (c *Controller[T]) SetPage(page int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if page < 1 {
		page = 1
	}
	c.query.Page = page
}

// SetPageSize changes the page size and resets to page 1.
func (c *Controller[T]) SetPageSize(size int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if size == c.query.PageSize {
		return
	}
	c.query.PageSize = size
	c.query.Page = 1
}

// SetKeyword applies a search keyword. Submitting a keyword always resets
// the page to 1, even when the keyword is unchanged.
func (c *Controller[T]) SetKeyword(keyword string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.query.Keyword = strings.TrimSpace(keyword)
	c.query.Page = 1
}

// SetFilters replaces the filter predicates and resets to page 1. Filters
// always travel upstream with the query; they are never applied to an
// already-fetched page.
func (c *Controller[T]) SetFilters(filters map[string]string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(filters) == 0 {
		c.query.Filters = nil
	} else {
		copied := make(map[string]string, len(filters))
		for k, v := range filters {
			copied[k] = v
		}
		c.query.Filters = copied
	}
	c.query.Page = 1
}

// Retarget scopes the controller to a new report target. Switching targets
// resets pagination to page 1 so the previous target's page number cannot
// leak into the new query.
func (c *Controller[T]) Retarget(targetType, targetUUID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.query.TargetType == targetType && c.query.TargetUUID == targetUUID {
		return
	}
	c.query.TargetType = targetType
	c.query.TargetUUID = targetUUID
	c.query.Page = 1
}

// Apply merges an incoming request query into the controller. A change to
// the keyword, the filters, the target, or the page size resets the page to
// 1 regardless of the page the request asked for; otherwise the requested
// page is honored.
func (c *Controller[T]) Apply(q domain.PageQuery) {
	c.mu.Lock()
	defer c.mu.Unlock()

	reset := false

	if q.PageSize > 0 && q.PageSize != c.query.PageSize {
		c.query.PageSize = q.PageSize
		reset = true
	}

	keyword := strings.TrimSpace(q.Keyword)
	if keyword != c.query.Keyword {
		c.query.Keyword = keyword
		reset = true
	}

	if !filtersEqual(q.Filters, c.query.Filters) {
		if len(q.Filters) == 0 {
			c.query.Filters = nil
		} else {
			copied := make(map[string]string, len(q.Filters))
			for k, v := range q.Filters {
				copied[k] = v
			}
			c.query.Filters = copied
		}
		reset = true
	}

	if q.TargetType != c.query.TargetType || q.TargetUUID != c.query.TargetUUID {
		c.query.TargetType = q.TargetType
		c.query.TargetUUID = q.TargetUUID
		reset = true
	}

	if reset {
		c.query.Page = 1
		return
	}
	if q.Page >= 1 {
		c.query.Page = q.Page
	}
}

func filtersEqual(a, b map[string]string) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if b[k] != v {
			return false
		}
	}
	return true
}

// Query returns a copy of the current query.
func (c *Controller[T]) Query() domain.PageQuery {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query
}

// Load fetches the page for the current query and returns the resulting
// snapshot. Concurrent Loads for the same query share one fetch; when the
// query changes while a fetch is in flight, the stale response is discarded
// and the state reflects the newest query's result.
func (c *Controller[T]) Load(ctx context.Context) Snapshot[T] {
	c.mu.Lock()
	c.query = c.query.Normalize(c.opts.DefaultPageSize, c.opts.MaxPageSize)
	q := c.query
	c.gen++
	gen := c.gen
	c.state = StateLoading
	c.mu.Unlock()

	key := queryKey(q)
	res, err, _ := c.flight.Do(key, func() (any, error) {
		return c.fetch(ctx, q)
	})

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen == c.gen {
		if err != nil {
			c.err = err
			if c.page != nil {
				// Keep the last good page visible.
				c.state = StateLoaded
			} else {
				c.state = StateError
			}
		} else {
			c.page = res.(*domain.Page[T])
			c.err = nil
			c.state = StateLoaded
		}
	}
	// A superseded response falls through and reports whatever the newest
	// dispatch produced (or StateLoading if it is still in flight).

	return c.snapshotLocked()
}

// Snapshot returns the current observable state without fetching.
func (c *Controller[T]) Snapshot() Snapshot[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller[T]) snapshotLocked() Snapshot[T] {
	snap := Snapshot[T]{
		State: c.state,
		Query: c.query,
		Err:   c.err,
	}
	if c.page != nil {
		snap.Items = c.page.Items
		snap.TotalCount = c.page.TotalCount
		snap.TotalPage = c.page.TotalPage
		snap.Stale = c.err != nil
	}
	return snap
}

// queryKey builds the dedup key for a query. Filters are serialized in
// sorted order so equal queries always map to equal keys.
func queryKey(q domain.PageQuery) string {
	var b strings.Builder
	fmt.Fprintf(&b, "p=%d&s=%d&k=%s&tt=%s&tu=%s",
		q.Page, q.PageSize, q.Keyword, q.TargetType, q.TargetUUID)
	if len(q.Filters) > 0 {
		keys := make([]string, 0, len(q.Filters))
		for k := range q.Filters {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, "&f:%s=%s", k, q.Filters[k])
		}
	}
	return b.String()
}
