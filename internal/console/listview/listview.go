// Package listview implements the console's list screens: loading a
// collection from the gateway, narrowing it with a text search and a status
// filter, and tracking the record opened in the detail pane. One generic
// controller backs the card holder, card request, card type, wallet and
// transaction views.
package listview

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// StatusAll is the status filter wildcard that matches every record.
const StatusAll = "all"

// Fetcher loads the full collection from the backend.
type Fetcher[T any] func(ctx context.Context) ([]T, error)

// Config describes how a controller searches and filters its records.
type Config[T any] struct {
	// FailureMessage is the fixed text shown when a load fails, for
	// example "Failed to fetch transactions".
	FailureMessage string
	// SearchFields returns the field values the text search matches
	// against. Matching is a case-insensitive substring test, OR-ed
	// across fields.
	SearchFields func(item T) []string
	// Status returns the record's status for the status filter. Nil
	// disables status filtering.
	Status func(item T) string
}

// Controller owns one list screen's state. All methods are safe for
// concurrent use.
type Controller[T any] struct {
	mu         sync.Mutex
	fetch      Fetcher[T]
	cfg        Config[T]
	items      []T
	search     string
	status     string
	generation uint64
	loading    bool
	failure    string
	selected   *T
}

// NewController constructs a controller. The status filter starts at
// StatusAll.
func NewController[T any](fetch Fetcher[T], cfg Config[T]) *Controller[T] {
	return &Controller[T]{fetch: fetch, cfg: cfg, status: StatusAll}
}

// Load fetches the collection. Responses from a Load that was superseded by
// a newer Load are discarded, so a slow early response can never overwrite a
// later one. The previous items stay visible while a load is in flight and
// after a failure.
func (c *Controller[T]) Load(ctx context.Context) error {
	c.mu.Lock()
	c.generation++
	generation := c.generation
	c.loading = true
	c.failure = ""
	c.mu.Unlock()

	items, errFetch := c.fetch(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if generation != c.generation {
		// A newer Load owns the state now.
		return nil
	}
	c.loading = false
	if errFetch != nil {
		c.failure = c.cfg.FailureMessage
		return fmt.Errorf("listview: %s: %w", strings.ToLower(c.cfg.FailureMessage), errFetch)
	}
	c.items = items
	return nil
}

// Items returns the records matching the current search text and status
// filter. Search and status narrow independently; a record must satisfy
// both.
func (c *Controller[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	matched := make([]T, 0, len(c.items))
	for _, item := range c.items {
		if c.matchesLocked(item) {
			matched = append(matched, item)
		}
	}
	return matched
}

// All returns every loaded record, ignoring filters.
func (c *Controller[T]) All() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]T(nil), c.items...)
}

// SetSearch updates the search text. Empty text matches everything.
func (c *Controller[T]) SetSearch(text string) {
	c.mu.Lock()
	c.search = strings.TrimSpace(text)
	c.mu.Unlock()
}

// SetStatusFilter updates the status filter. StatusAll or empty matches
// every record; other values compare case-insensitively.
func (c *Controller[T]) SetStatusFilter(status string) {
	c.mu.Lock()
	c.status = strings.TrimSpace(status)
	c.mu.Unlock()
}

// ViewDetails opens item in the detail pane.
func (c *Controller[T]) ViewDetails(item T) {
	c.mu.Lock()
	c.selected = &item
	c.mu.Unlock()
}

// Selected returns the record open in the detail pane.
func (c *Controller[T]) Selected() (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.selected == nil {
		var zero T
		return zero, false
	}
	return *c.selected, true
}

// CloseDetails clears the detail pane.
func (c *Controller[T]) CloseDetails() {
	c.mu.Lock()
	c.selected = nil
	c.mu.Unlock()
}

// Replace swaps the first loaded record matching match for updated, patching
// the list in place after a mutation without a refetch. The detail pane is
// updated too when it shows the replaced record. It reports whether a record
// matched.
func (c *Controller[T]) Replace(match func(T) bool, updated T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, item := range c.items {
		if !match(item) {
			continue
		}
		c.items[i] = updated
		if c.selected != nil && match(*c.selected) {
			c.selected = &updated
		}
		return true
	}
	return false
}

// Loading reports whether a Load is in flight.
func (c *Controller[T]) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Failure returns the fixed failure text from the last failed Load, or empty
// after a success.
func (c *Controller[T]) Failure() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.failure
}

// matchesLocked applies the search and status predicates. Callers must hold
// the lock.
func (c *Controller[T]) matchesLocked(item T) bool {
	if c.cfg.Status != nil && c.status != "" && !strings.EqualFold(c.status, StatusAll) {
		if !strings.EqualFold(c.cfg.Status(item), c.status) {
			return false
		}
	}
	if c.search == "" || c.cfg.SearchFields == nil {
		return true
	}
	needle := strings.ToLower(c.search)
	for _, field := range c.cfg.SearchFields(item) {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}
