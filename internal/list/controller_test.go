package list

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/emkr-13/sim-admin/internal/models"
)

type row struct {
	ID int
}

// recorder captures every query the controller hands to the fetch func.
type recorder struct {
	mu      sync.Mutex
	queries []Query
	items   []row
	pg      *models.PaginationData
	err     error
}

func (r *recorder) fetch(ctx context.Context, q Query) ([]row, *models.PaginationData, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.queries = append(r.queries, q)
	if r.err != nil {
		return nil, nil, r.err
	}
	return r.items, r.pg, nil
}

func (r *recorder) last(t *testing.T) Query {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.queries) == 0 {
		t.Fatal("no fetches recorded")
	}
	return r.queries[len(r.queries)-1]
}

func TestControllerDefaults(t *testing.T) {
	rec := &recorder{}
	ctl := NewController(rec.fetch, Query{})
	if err := ctl.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	q := rec.last(t)
	if q.Page != 1 || q.Limit != 10 {
		t.Errorf("defaults = page %d limit %d, want 1/10", q.Page, q.Limit)
	}
}

func TestMutatorsResetPage(t *testing.T) {
	rec := &recorder{items: []row{{1}}}
	ctx := context.Background()

	for _, tt := range []struct {
		name string
		call func(ctl *Controller[row]) error
	}{
		{"SetSortBy", func(ctl *Controller[row]) error { return ctl.SetSortBy(ctx, "name") }},
		{"SetSortOrder", func(ctl *Controller[row]) error { return ctl.SetSortOrder(ctx, "desc") }},
		{"SetLimit", func(ctl *Controller[row]) error { return ctl.SetLimit(ctx, 20) }},
		{"SetFilter", func(ctl *Controller[row]) error { return ctl.SetFilter(ctx, "customer") }},
	} {
		t.Run(tt.name, func(t *testing.T) {
			ctl := NewController(rec.fetch, Query{Page: 4})
			if err := tt.call(ctl); err != nil {
				t.Fatalf("%s: %v", tt.name, err)
			}
			// the fetch triggered by the mutator must already see page 1
			if q := rec.last(t); q.Page != 1 {
				t.Errorf("fetch saw page %d, want 1", q.Page)
			}
		})
	}
}

func TestSetPageKeepsEverythingElse(t *testing.T) {
	rec := &recorder{}
	ctl := NewController(rec.fetch, Query{SortBy: "name", SortOrder: "desc", Filter: "supplier"})
	if err := ctl.SetPage(context.Background(), 3); err != nil {
		t.Fatalf("SetPage: %v", err)
	}
	q := rec.last(t)
	if q.Page != 3 || q.SortBy != "name" || q.SortOrder != "desc" || q.Filter != "supplier" {
		t.Errorf("query = %+v", q)
	}
}

func TestSearchIsExplicit(t *testing.T) {
	rec := &recorder{}
	ctl := NewController(rec.fetch, Query{Page: 5})
	ctx := context.Background()

	// typing records text without touching the network
	ctl.SetSearch("kopi")
	rec.mu.Lock()
	n := len(rec.queries)
	rec.mu.Unlock()
	if n != 0 {
		t.Fatalf("SetSearch caused %d fetches, want 0", n)
	}

	if err := ctl.Search(ctx); err != nil {
		t.Fatalf("Search: %v", err)
	}
	q := rec.last(t)
	if q.Search != "kopi" || q.Page != 1 {
		t.Errorf("search fetch = %+v, want search kopi on page 1", q)
	}

	// resubmitting unchanged text still fetches
	if err := ctl.Search(ctx); err != nil {
		t.Fatalf("second Search: %v", err)
	}
	rec.mu.Lock()
	n = len(rec.queries)
	rec.mu.Unlock()
	if n != 2 {
		t.Errorf("fetch count = %d, want 2", n)
	}
}

func TestFetchErrorKeepsPriorItems(t *testing.T) {
	rec := &recorder{items: []row{{1}, {2}}, pg: &models.PaginationData{Current: 1}}
	ctl := NewController(rec.fetch, Query{})
	ctx := context.Background()

	if err := ctl.Refresh(ctx); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	rec.mu.Lock()
	rec.err = errors.New("backend down")
	rec.mu.Unlock()

	if err := ctl.Refresh(ctx); err == nil {
		t.Fatal("Refresh swallowed the fetch error")
	}
	snap := ctl.Snapshot()
	if len(snap.Items) != 2 {
		t.Errorf("items after failed fetch = %d, want the prior 2", len(snap.Items))
	}
	if snap.Pagination == nil || snap.Pagination.Current != 1 {
		t.Errorf("pagination dropped on error: %+v", snap.Pagination)
	}
	if snap.Loading {
		t.Error("loading flag stuck after failed fetch")
	}
}

func TestCloseDiscardsLateResult(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	fetch := func(ctx context.Context, q Query) ([]row, *models.PaginationData, error) {
		close(started)
		<-release
		return []row{{99}}, nil, nil
	}
	ctl := NewController(fetch, Query{})

	done := make(chan error, 1)
	go func() { done <- ctl.Refresh(context.Background()) }()
	<-started
	ctl.Close()
	close(release)
	if err := <-done; err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	if snap := ctl.Snapshot(); len(snap.Items) != 0 {
		t.Errorf("closed controller kept a late result: %+v", snap.Items)
	}
}

func TestSupersededFetchDiscarded(t *testing.T) {
	var mu sync.Mutex
	calls := 0
	release := make(chan struct{})
	started := make(chan struct{})
	fetch := func(ctx context.Context, q Query) ([]row, *models.PaginationData, error) {
		mu.Lock()
		calls++
		n := calls
		mu.Unlock()
		if n == 1 {
			close(started)
			<-release
			return []row{{ID: 1}}, nil, nil
		}
		return []row{{ID: 2}}, nil, nil
	}
	ctl := NewController(fetch, Query{})
	ctx := context.Background()

	done := make(chan error, 1)
	go func() { done <- ctl.Refresh(ctx) }()
	<-started

	// a newer fetch completes while the first is still in flight
	if err := ctl.SetPage(ctx, 2); err != nil {
		t.Fatalf("SetPage: %v", err)
	}
	close(release)
	if err := <-done; err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	snap := ctl.Snapshot()
	if len(snap.Items) != 1 || snap.Items[0].ID != 2 {
		t.Errorf("late first fetch overwrote the newer result: %+v", snap.Items)
	}
}
