// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package interaction maps raw input events onto store actions and
// presentation changes for one choices widget.
//
// The controller is a pure transition function:
//
//	next, effects := controller.Handle(state, event, view)
//
// [State] holds everything the controller remembers between events:
// dropdown visibility, focus, the search flags, the remembered
// highlight position, and the tap tracker used to tell taps from touch
// scrolls. [View] is a read-only snapshot of what the controller may
// consult: the store state, the rendered choice [render.Listing], and
// the visible scroll window. The returned [Effect] values are
// instructions for the caller, applied in order: dispatch an action,
// open or close the dropdown, move the highlight, scroll, notify
// listeners, and so on. Nothing in this package touches a terminal, a
// store, or any other mutable object, so every transition is testable
// by comparing values.
//
// Ids for new items come from [store.State.NextItemID], so callers
// that apply several effect batches in a row must take a fresh store
// snapshot for each batch.
package interaction
