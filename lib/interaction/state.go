// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package interaction

import (
	"github.com/bureau-foundation/choices/lib/render"
	"github.com/bureau-foundation/choices/lib/store"
)

// State is everything the controller remembers between events.
type State struct {
	DropdownActive bool

	// Focused is the widget's focused presentation. InputFocused
	// tracks keyboard focus in the text input itself.
	Focused      bool
	InputFocused bool

	// Searching is true while the choice list shows search results.
	Searching bool

	// CanSearch is reset to the configured search flag on every
	// key-down and cleared by keys that must not trigger a search on
	// their key-up (navigation, select-all).
	CanSearch bool

	// HighlightPosition is the remembered highlight, an index into the
	// selectable rows of the listing. It survives the dropdown closing.
	HighlightPosition int

	// WasTap is cleared by touch movement so the following touch-end
	// is treated as a scroll rather than a tap.
	WasTap bool

	// LastQuery is the last query that was searched.
	LastQuery string

	// Disabled widgets ignore every event.
	Disabled bool
}

// Viewport is the visible window of the choice region, in rows.
type Viewport struct {
	Top    int
	Height int
}

// Shows reports whether row is visible when moving in direction. A
// viewport with no height is treated as showing everything.
func (viewport Viewport) Shows(row, direction int) bool {
	if viewport.Height <= 0 {
		return true
	}
	if direction > 0 {
		return row < viewport.Top+viewport.Height
	}
	return row >= viewport.Top
}

// View is the read-only context of one event.
type View struct {
	Store    *store.State
	Listing  render.Listing
	Viewport Viewport
}
