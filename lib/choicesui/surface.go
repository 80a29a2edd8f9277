// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package choicesui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/bureau-foundation/choices/lib/render"
)

// Surface holds what the widget last drew and the state of the
// terminal controls. It implements choices.Surface.
type Surface struct {
	rows        []render.Row
	items       []render.Fragment
	host        render.Host
	highlighted int

	open     bool
	focused  bool
	disabled bool

	input    textinput.Model
	scroller Scroller

	// height is the number of dropdown rows on screen, set by the
	// model on every layout.
	height int
}

// NewSurface returns an empty surface whose text input shows
// placeholder while empty.
func NewSurface(placeholder string) *Surface {
	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = placeholder
	return &Surface{
		highlighted: -1,
		input:       input,
	}
}

// ReplaceChoices implements render.Surface.
func (surface *Surface) ReplaceChoices(rows []render.Row) {
	surface.rows = rows
	surface.highlighted = -1
}

// ReplaceItems implements render.Surface.
func (surface *Surface) ReplaceItems(items []render.Fragment, host render.Host) {
	surface.items = items
	surface.host = host
}

// HighlightChoice implements render.Surface.
func (surface *Surface) HighlightChoice(row int) {
	surface.highlighted = row
}

// ResetScroll implements render.Surface.
func (surface *Surface) ResetScroll() {
	surface.scroller.Jump(0)
}

// SetDropdownOpen implements choices.Surface.
func (surface *Surface) SetDropdownOpen(open bool) {
	surface.open = open
}

// SetFocused implements choices.Surface.
func (surface *Surface) SetFocused(focused bool) {
	surface.focused = focused
}

// SetInputFocused implements choices.Surface.
func (surface *Surface) SetInputFocused(focused bool) {
	if focused {
		// The blink command is dropped: the cursor stays solid.
		_ = surface.input.Focus()
		return
	}
	surface.input.Blur()
}

// SetInput implements choices.Surface.
func (surface *Surface) SetInput(value string) {
	surface.input.SetValue(value)
	surface.input.CursorEnd()
}

// ScrollTo implements choices.Surface. A row below the window is
// brought to its bottom edge, a row above it to its top edge.
func (surface *Surface) ScrollTo(row, direction int) {
	target := row
	if direction > 0 {
		target = row - surface.height + 1
	}
	surface.scroller.ScrollTo(target)
}

// SetDisabled implements choices.Surface.
func (surface *Surface) SetDisabled(disabled bool) {
	surface.disabled = disabled
}

// Host returns the host value of the last item-region rebuild.
func (surface *Surface) Host() render.Host {
	return surface.host
}

// InputValue returns the text input's current value.
func (surface *Surface) InputValue() string {
	return surface.input.Value()
}

// visibleOffset clamps the scroll offset so the window never runs past
// the last row.
func (surface *Surface) visibleOffset() int {
	offset := surface.scroller.Offset()
	last := len(surface.rows) - surface.height
	if offset > last {
		offset = last
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}
