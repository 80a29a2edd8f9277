// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"errors"
	"log/slog"
)

// Listener is called with the new state after every successful
// dispatch.
type Listener func(state *State)

// Store owns the current [State], the history of dispatched actions,
// and the subscriber list.
//
// Dispatch is synchronous: the reducer runs and every listener is
// notified before Dispatch returns. A listener that dispatches is not
// re-entered; its action is queued and applied once the current round
// of notifications finishes, so transitions never interleave.
type Store struct {
	state     *State
	history   []Action
	listeners []Listener
	logger    *slog.Logger
	strict    bool

	dispatching bool
	pending     []Action
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used to report rejected actions.
func WithLogger(logger *slog.Logger) Option {
	return func(store *Store) {
		if logger != nil {
			store.logger = logger
		}
	}
}

// WithStrict makes an unknown action kind panic instead of being
// logged and ignored. Intended for development builds and tests.
func WithStrict(strict bool) Option {
	return func(store *Store) {
		store.strict = strict
	}
}

// New creates a Store holding an empty state.
func New(options ...Option) *Store {
	store := &Store{
		state:  NewState(),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, option := range options {
		option(store)
	}
	return store
}

// State returns the current snapshot.
func (store *Store) State() *State {
	return store.state
}

// History returns a copy of every action applied so far, in order.
// Rejected actions are not recorded.
func (store *Store) History() []Action {
	history := make([]Action, len(store.history))
	copy(history, store.history)
	return history
}

// Subscribe registers a listener. Listeners are called in subscription
// order.
func (store *Store) Subscribe(listener Listener) {
	store.listeners = append(store.listeners, listener)
}

// Dispatch applies action and notifies listeners. A rejected action
// (unknown kind, invalid id) leaves the state untouched, is logged, and
// is returned as an error; with WithStrict an unknown kind panics.
func (store *Store) Dispatch(action Action) error {
	if store.dispatching {
		store.pending = append(store.pending, action)
		return nil
	}

	store.dispatching = true
	defer func() { store.dispatching = false }()

	err := store.apply(action)
	for len(store.pending) > 0 {
		queued := store.pending[0]
		store.pending = store.pending[1:]
		if queuedErr := store.apply(queued); queuedErr != nil && err == nil {
			err = queuedErr
		}
	}
	return err
}

func (store *Store) apply(action Action) error {
	next, err := Reduce(store.state, action)
	if err != nil {
		if errors.Is(err, ErrUnknownAction) && store.strict {
			panic(err)
		}
		store.logger.Error("action rejected", "error", err)
		return err
	}
	store.state = next
	store.history = append(store.history, action)
	for _, listener := range store.listeners {
		listener(next)
	}
	return nil
}
