// Package list holds the query state and fetched page for one list
// screen. Every resource instantiates the same Controller with its own
// fetch function, so the pagination, sorting and search behavior stays
// identical across screens.
package list

import (
	"context"
	"sync"

	"github.com/emkr-13/sim-admin/internal/models"
)

// Query is the shared list-screen state. Filter carries the
// resource-specific filter value; the "all" sentinel means no filter and
// is dropped by the api layer before it reaches the wire.
type Query struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
	Search    string
	Filter    string
}

// FetchFunc loads one page for a resource.
type FetchFunc[T any] func(ctx context.Context, q Query) ([]T, *models.PaginationData, error)

// Controller drives one list screen. Mutators that change sorting, limit
// or filter reset Page to 1 inside the same critical section, so no fetch
// ever observes the new sort with a stale page. A fetch that finishes
// after a newer one started (or after Close) is discarded, which covers
// the screen navigating away mid-request.
type Controller[T any] struct {
	fetch FetchFunc[T]

	mu         sync.Mutex
	query      Query
	items      []T
	pagination *models.PaginationData
	loading    bool
	searching  bool
	closed     bool
	gen        uint64
}

// NewController creates a controller with the given initial query. Page
// defaults to 1 and Limit to 10.
func NewController[T any](fetch FetchFunc[T], initial Query) *Controller[T] {
	if initial.Page < 1 {
		initial.Page = 1
	}
	if initial.Limit == 0 {
		initial.Limit = 10
	}
	return &Controller[T]{fetch: fetch, query: initial}
}

// Refresh re-runs the fetch for the current query. Callers invoke it after
// every successful mutation: there are no optimistic updates, the list is
// always re-read for authoritative state.
func (c *Controller[T]) Refresh(ctx context.Context) error {
	return c.run(ctx, false)
}

// SetPage moves to a page and fetches. Page changes do not reset anything.
func (c *Controller[T]) SetPage(ctx context.Context, page int) error {
	c.mu.Lock()
	if page < 1 {
		page = 1
	}
	c.query.Page = page
	c.mu.Unlock()
	return c.run(ctx, false)
}

// SetSortBy changes the sort column, resets to page 1 and fetches.
func (c *Controller[T]) SetSortBy(ctx context.Context, sortBy string) error {
	c.mu.Lock()
	c.query.SortBy = sortBy
	c.query.Page = 1
	c.mu.Unlock()
	return c.run(ctx, false)
}

// SetSortOrder changes the sort direction, resets to page 1 and fetches.
func (c *Controller[T]) SetSortOrder(ctx context.Context, order string) error {
	c.mu.Lock()
	c.query.SortOrder = order
	c.query.Page = 1
	c.mu.Unlock()
	return c.run(ctx, false)
}

// SetLimit changes the page size, resets to page 1 and fetches.
func (c *Controller[T]) SetLimit(ctx context.Context, limit int) error {
	c.mu.Lock()
	c.query.Limit = limit
	c.query.Page = 1
	c.mu.Unlock()
	return c.run(ctx, false)
}

// SetFilter changes the resource-specific filter, resets to page 1 and
// fetches.
func (c *Controller[T]) SetFilter(ctx context.Context, filter string) error {
	c.mu.Lock()
	c.query.Filter = filter
	c.query.Page = 1
	c.mu.Unlock()
	return c.run(ctx, false)
}

// SetSearch records the search text without fetching. Only an explicit
// Search submission hits the network, so typing never causes a request
// storm.
func (c *Controller[T]) SetSearch(text string) {
	c.mu.Lock()
	c.query.Search = text
	c.mu.Unlock()
}

// Search submits the current search text: reset to page 1, fetch, and
// track the fetch under the separate searching flag. Submitting unchanged
// text still fetches.
func (c *Controller[T]) Search(ctx context.Context) error {
	c.mu.Lock()
	c.query.Page = 1
	c.mu.Unlock()
	return c.run(ctx, true)
}

// Close marks the controller abandoned; in-flight fetches are discarded
// when they land.
func (c *Controller[T]) Close() {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
}

func (c *Controller[T]) run(ctx context.Context, search bool) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.gen++
	gen := c.gen
	q := c.query
	c.loading = true
	if search {
		c.searching = true
	}
	c.mu.Unlock()

	items, pg, err := c.fetch(ctx, q)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || gen != c.gen {
		// superseded by a newer fetch; drop the late result
		return nil
	}
	c.loading = false
	c.searching = false
	if err != nil {
		// keep the previous page on screen
		return err
	}
	c.items = items
	c.pagination = pg
	return nil
}

// Snapshot is a consistent view of the controller for rendering.
type Snapshot[T any] struct {
	Query      Query
	Items      []T
	Pagination *models.PaginationData
	Loading    bool
	Searching  bool
}

// Snapshot returns the current state under one lock acquisition.
func (c *Controller[T]) Snapshot() Snapshot[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	items := make([]T, len(c.items))
	copy(items, c.items)
	return Snapshot[T]{
		Query:      c.query,
		Items:      items,
		Pagination: c.pagination,
		Loading:    c.loading,
		Searching:  c.searching,
	}
}
