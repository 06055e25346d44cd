// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package store keeps an in-memory collection of one resource kind synchronized
with the remote API.

Lifecycle:

  - Idle-Empty: constructed, no load issued yet (IsLoading reports true).
  - Loading: a load is in flight.
  - Loaded: items hold the last successful snapshot, Err is empty.
  - Errored: the last load failed, items are cleared and Err holds the message.

Mutations (Add, Update, Delete) call the server first and only touch local state
after a successful response. There is no background revalidation; call Refresh
to re-sync.

The store is safe for concurrent use. Remote calls run outside the lock. When
loads overlap, only the most recently issued one may write its result.
*/
package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/taibuivan/vvdex/internal/platform/apperr"
	"github.com/taibuivan/vvdex/pkg/slice"
)

// ErrUnbound is the panic value raised when a nil or zero [Store] is used.
// It is a programmer error: stores must be built with [New] and passed explicitly.
var ErrUnbound = errors.New("store: used without being constructed by store.New")

// # State

// State is an immutable snapshot of a [Store].
type State[T Item] struct {
	Items     []T
	IsLoading bool
	Err       string
}

// Options configures a [Store].
type Options[T Item] struct {
	// Kind is the plural resource name used in fallback messages ("documents").
	Kind string

	// Defaults are the list options used by [Store.Refresh].
	Defaults ListOptions

	// Normalize is applied to every item received from the API. Optional.
	Normalize func(T) T

	// Logger receives failure logs. Defaults to [slog.Default].
	Logger *slog.Logger
}

// # Store

// Store owns the local item list of one resource kind.
type Store[T Item, D any, P any] struct {
	api       API[T, D, P]
	kind      string
	defaults  ListOptions
	normalize func(T) T
	logger    *slog.Logger

	mu       sync.Mutex
	items    []T
	errMsg   string
	started  bool
	inFlight int
	loadSeq  uint64
}

// New constructs a [Store] bound to api.
func New[T Item, D any, P any](api API[T, D, P], options Options[T]) (*Store[T, D, P], error) {
	if api == nil {
		return nil, fmt.Errorf("store: api is required")
	}

	kind := options.Kind
	if kind == "" {
		kind = "items"
	}

	normalize := options.Normalize
	if normalize == nil {
		normalize = func(item T) T { return item }
	}

	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Store[T, D, P]{
		api:       api,
		kind:      kind,
		defaults:  options.Defaults,
		normalize: normalize,
		logger:    logger.With(slog.String("resource", kind)),
		items:     []T{},
	}, nil
}

// Kind returns the resource name the store was built for.
func (s *Store[T, D, P]) Kind() string {
	s.requireBound()
	return s.kind
}

// Defaults returns a copy of the list options used by [Store.Refresh].
func (s *Store[T, D, P]) Defaults() ListOptions {
	s.requireBound()
	return s.defaults
}

// State returns a snapshot of the current items, loading flag and error.
func (s *Store[T, D, P]) State() State[T] {
	s.requireBound()

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// # Loading

// Load fetches the list from the API and replaces local items.
//
// Failures never propagate: they clear the items and set State.Err to the API
// error message, or to "Failed to load <kind>" for unrecognized errors.
func (s *Store[T, D, P]) Load(ctx context.Context, options ListOptions) State[T] {
	s.requireBound()

	s.mu.Lock()
	s.started = true
	s.inFlight++
	s.loadSeq++
	seq := s.loadSeq
	s.errMsg = ""
	s.mu.Unlock()

	items, err := s.api.List(ctx, options)

	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() { s.inFlight-- }()

	if seq != s.loadSeq {
		s.logger.DebugContext(ctx, "store_load_superseded", slog.Uint64("seq", seq), slog.Uint64("latest", s.loadSeq))
		return s.snapshotAfterLocked(-1)
	}

	if err != nil {
		s.logger.ErrorContext(ctx, "store_load_failed", slog.Any("error", err))
		s.errMsg = apperr.MessageOr(err, "Failed to load "+s.kind)
		s.items = []T{}
		return s.snapshotAfterLocked(-1)
	}

	s.items = slice.Map(items, s.normalize)
	if s.items == nil {
		s.items = []T{}
	}
	return s.snapshotAfterLocked(-1)
}

// Refresh re-runs [Store.Load] with the store's default options.
func (s *Store[T, D, P]) Refresh(ctx context.Context) State[T] {
	s.requireBound()
	return s.Load(ctx, s.defaults)
}

// # Mutations

// Add creates draft remotely and prepends the created item.
//
// Local state is untouched on failure and the error is returned as an [*OpError].
func (s *Store[T, D, P]) Add(ctx context.Context, draft D) (T, error) {
	s.requireBound()

	created, err := s.api.Create(ctx, draft)
	if err != nil {
		var zero T
		return zero, s.fail(ctx, OpCreate, "", err)
	}

	created = s.normalize(created)

	s.mu.Lock()
	s.items = append([]T{created}, s.items...)
	s.mu.Unlock()

	return created, nil
}

// Update applies patch remotely and replaces the matching item in place.
//
// If the item is no longer held locally (e.g. a load replaced the list in the
// meantime) the list is left as is.
func (s *Store[T, D, P]) Update(ctx context.Context, id string, patch P) (T, error) {
	s.requireBound()

	updated, err := s.api.Update(ctx, id, patch)
	if err != nil {
		var zero T
		return zero, s.fail(ctx, OpUpdate, id, err)
	}

	updated = s.normalize(updated)

	s.mu.Lock()
	for i, item := range s.items {
		if item.ResourceID() == id {
			s.items[i] = updated
			break
		}
	}
	s.mu.Unlock()

	return updated, nil
}

// Delete removes the item remotely, then locally.
func (s *Store[T, D, P]) Delete(ctx context.Context, id string) error {
	s.requireBound()

	if err := s.api.Delete(ctx, id); err != nil {
		return s.fail(ctx, OpDelete, id, err)
	}

	s.mu.Lock()
	s.items = slice.Reject(s.items, func(item T) bool { return item.ResourceID() == id })
	s.mu.Unlock()

	return nil
}

// # Derived Views

// ByCategory returns the loaded items whose category equals category.
// It never calls the API.
func (s *Store[T, D, P]) ByCategory(category string) []T {
	s.requireBound()

	s.mu.Lock()
	defer s.mu.Unlock()

	matches := slice.Filter(s.items, func(item T) bool { return item.ResourceCategory() == category })
	if matches == nil {
		return []T{}
	}
	return matches
}

// Find returns the loaded item with the given id.
func (s *Store[T, D, P]) Find(id string) (T, bool) {
	s.requireBound()

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.items {
		if item.ResourceID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// # Internals

func (s *Store[T, D, P]) fail(ctx context.Context, op Op, id string, err error) error {
	s.logger.ErrorContext(ctx, "store_mutation_failed",
		slog.String("op", string(op)),
		slog.String("id", id),
		slog.Any("error", err),
	)
	return &OpError{
		Op:      op,
		Kind:    s.kind,
		ID:      id,
		Message: apperr.MessageOr(err, fmt.Sprintf("Failed to %s %s", op, s.kind)),
		Err:     err,
	}
}

func (s *Store[T, D, P]) snapshotLocked() State[T] {
	return s.snapshotAfterLocked(0)
}

// snapshotAfterLocked builds a snapshot with the in-flight count adjusted by
// delta, for callers that release their own load in a deferred step.
func (s *Store[T, D, P]) snapshotAfterLocked(delta int) State[T] {
	items := make([]T, len(s.items))
	copy(items, s.items)

	return State[T]{
		Items:     items,
		IsLoading: !s.started || s.inFlight+delta > 0,
		Err:       s.errMsg,
	}
}

func (s *Store[T, D, P]) requireBound() {
	if s == nil || s.api == nil {
		panic(ErrUnbound)
	}
}
