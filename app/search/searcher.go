package search

import (
	"context"
	"sync"

	"github.com/shashiranjanraj/barman/app/models"
	"github.com/shashiranjanraj/barman/app/pos"
	"github.com/shashiranjanraj/barman/config"
	"github.com/shashiranjanraj/barman/pkg/metrics"
)

// Result is one delivered search outcome. Term and Category echo the query
// so a view can ignore answers for filters it has since moved past.
type Result struct {
	Term     string
	Category string
	Items    []models.MenuItem
	Err      error
}

// MenuSearcher ties a Debouncer to the menu client: feed it every keystroke
// with Query and it issues at most one lookup per quiet period, delivering
// results to the callback. Stale responses (a newer query fired while one
// was in flight) are dropped rather than delivered out of order.
type MenuSearcher struct {
	client  *pos.Client
	deb     *Debouncer
	deliver func(Result)

	mu  sync.Mutex
	seq int
}

// NewMenuSearcher builds a searcher with the configured quiet period
// (SEARCH_DEBOUNCE, default 300ms).
func NewMenuSearcher(client *pos.Client, deliver func(Result)) *MenuSearcher {
	return &MenuSearcher{
		client:  client,
		deb:     NewDebouncer(config.SearchDebounce()),
		deliver: deliver,
	}
}

// Query registers one keystroke's worth of filter state. The lookup fires
// only after the quiet period passes with no further calls.
func (s *MenuSearcher) Query(ctx context.Context, term, category string) {
	metrics.SearchKeystrokes.Inc()

	s.mu.Lock()
	s.seq++
	seq := s.seq
	s.mu.Unlock()

	s.deb.Trigger(func() {
		metrics.SearchLookups.Inc()
		items, err := s.client.MenuItems(ctx, pos.MenuQuery{Category: category, SearchTerm: term})

		s.mu.Lock()
		stale := seq != s.seq
		s.mu.Unlock()
		if stale {
			return
		}

		s.deliver(Result{Term: term, Category: category, Items: items, Err: err})
	})
}

// Close cancels pending work. The searcher delivers nothing afterwards.
func (s *MenuSearcher) Close() {
	s.deb.Stop()
	s.mu.Lock()
	s.seq++ // orphan any in-flight lookup
	s.mu.Unlock()
}
