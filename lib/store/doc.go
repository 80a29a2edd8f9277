// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package store holds the canonical collections behind a choices
// widget: the items the control currently holds, the choices offered in
// its dropdown, and the groups those choices are partitioned into.
//
// State transitions go through a single reducer ([Reduce]) that maps a
// state and an [Action] to a new state. The reducer never modifies its
// input: every transition produces a new top-level [State], and each
// collection that changed gets a new table pointer while untouched
// collections keep theirs. Consumers detect change by comparing those
// pointers (see package render) and never by comparing field values.
//
// Removal is soft: a removed item is marked inactive and stays in the
// table for the rest of the session. The only hard deletes are
// [ClearChoices] and [ClearAll]. Ids are assigned by callers from the
// state's next-id counters, which only move forward, so an id is never
// reused within a session even after a clear.
//
// [Store] wraps the reducer with an append-only action history and a
// subscriber list. It is meant to be driven from one goroutine (a
// bubbletea Update loop, for example) and is not safe for concurrent
// use.
package store
