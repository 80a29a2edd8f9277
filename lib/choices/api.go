// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package choices

import (
	"strings"

	"github.com/bureau-foundation/choices/lib/config"
	"github.com/bureau-foundation/choices/lib/store"
)

// Items returns the active items in insertion order.
func (widget *Widget) Items() []store.Item {
	return widget.store.State().ActiveItems()
}

// Values returns the values of the active items.
func (widget *Widget) Values() []string {
	return store.ItemValues(widget.Items())
}

// Value returns the control's value: the single item of a select-one
// widget, and otherwise every item value joined with the delimiter.
func (widget *Widget) Value() string {
	values := widget.Values()
	if widget.options.Mode == config.ModeSelectOne {
		if len(values) == 0 {
			return ""
		}
		return values[0]
	}
	return strings.Join(values, widget.options.Delimiter)
}

// SetValue adds values directly, bypassing the add-item checks. Text
// widgets get one item per value. Select widgets get a new choice per
// value, selected on creation.
func (widget *Widget) SetValue(values ...string) {
	for _, value := range values {
		if value == "" {
			continue
		}
		if widget.options.Mode.IsSelect() {
			widget.addChoice(Record{Value: value, Selected: true}, store.NoGroup, false)
			continue
		}
		widget.apply(widget.controller.AddItem(widget.store.State(), value, "", store.NoChoice, store.NoGroup))
	}
}

// SetValueByChoice selects existing choices by value. Unknown and
// already selected values are logged and skipped. Text widgets ignore
// the call.
func (widget *Widget) SetValueByChoice(values ...string) {
	if !widget.options.Mode.IsSelect() {
		return
	}
	for _, value := range values {
		current := widget.store.State()
		choice, exists := current.ChoiceByValue(value)
		switch {
		case !exists:
			widget.logger.Warn("no choice with value", "value", value)
		case choice.Selected:
			widget.logger.Warn("choice already selected", "value", value, "choice_id", choice.ID)
		default:
			widget.apply(widget.controller.AddItem(current, choice.Value, choice.Label, choice.ID, choice.GroupID))
		}
	}
}

// SetChoices adds records to the choice list of a select widget,
// replacing the existing choices first when replace is set. Records
// with nested choices become groups.
func (widget *Widget) SetChoices(records []Record, replace bool) {
	if !widget.options.Mode.IsSelect() {
		return
	}
	if replace {
		_ = widget.store.Dispatch(store.ClearChoices{})
	}
	if len(records) > 0 {
		widget.setLoading(false)
	}
	for _, record := range records {
		widget.addRecord(record)
	}
}

// RemoveItemsByValue removes every active item holding value.
func (widget *Widget) RemoveItemsByValue(value string) {
	if value == "" {
		widget.logger.Warn("remove by value called without a value")
		return
	}
	for _, item := range widget.Items() {
		if item.Value == value {
			widget.apply(widget.controller.RemoveItem(widget.store.State(), item))
		}
	}
}

// RemoveActiveItems removes every active item except the one with id
// exclude. Pass 0 to remove them all.
func (widget *Widget) RemoveActiveItems(exclude store.ItemID) {
	for _, item := range widget.Items() {
		if item.ID != exclude {
			widget.apply(widget.controller.RemoveItem(widget.store.State(), item))
		}
	}
}

// RemoveHighlightedItems removes every highlighted active item. With
// notifyChange, each removal also fires a change notification.
func (widget *Widget) RemoveHighlightedItems(notifyChange bool) {
	for _, item := range widget.store.State().HighlightedItems() {
		widget.apply(widget.controller.RemoveItem(widget.store.State(), item))
		if notifyChange {
			widget.apply(widget.controller.Change(item.Value))
		}
	}
}

// HighlightItem highlights one item, firing highlightItem when notify
// is set.
func (widget *Widget) HighlightItem(id store.ItemID, notify bool) {
	current := widget.store.State()
	item, exists := current.Item(id)
	if !exists {
		widget.logger.Warn("highlight of unknown item", "item_id", id)
		return
	}
	widget.apply(widget.controller.HighlightItem(current, item, true, notify))
}

// UnhighlightItem clears one item's highlight.
func (widget *Widget) UnhighlightItem(id store.ItemID) {
	current := widget.store.State()
	item, exists := current.Item(id)
	if !exists {
		widget.logger.Warn("unhighlight of unknown item", "item_id", id)
		return
	}
	widget.apply(widget.controller.HighlightItem(current, item, false, true))
}

// HighlightAll highlights every active item.
func (widget *Widget) HighlightAll() {
	for _, item := range widget.Items() {
		widget.apply(widget.controller.HighlightItem(widget.store.State(), item, true, true))
	}
}

// UnhighlightAll clears every item highlight.
func (widget *Widget) UnhighlightAll() {
	widget.apply(widget.controller.UnhighlightAll(widget.store.State()))
}

// ClearStore removes every item, choice, and group, and ends any
// search so the empty list shows the no-choices notice.
func (widget *Widget) ClearStore() {
	state, effects := widget.controller.ResetSearch(widget.state)
	widget.state = state
	_ = widget.store.Dispatch(store.ClearAll{})
	widget.apply(effects)
}

// ClearInput empties the text input and ends any search.
func (widget *Widget) ClearInput() {
	widget.surface.SetInput("")
	state, effects := widget.controller.ResetSearch(widget.state)
	widget.state = state
	widget.apply(effects)
}

// Enable resumes event handling.
func (widget *Widget) Enable() {
	if !widget.state.Disabled {
		return
	}
	widget.state.Disabled = false
	widget.surface.SetDisabled(false)
}

// Disable stops event handling. Disabled widgets still accept
// programmatic changes.
func (widget *Widget) Disable() {
	if widget.state.Disabled {
		return
	}
	widget.state.Disabled = true
	widget.surface.SetDisabled(true)
}

// Disabled reports whether event handling is stopped.
func (widget *Widget) Disabled() bool {
	return widget.state.Disabled
}

// Ajax populates a select widget asynchronously. The widget shows the
// loading text until populate, or anything it hands load to, calls
// load. An empty result just ends the loading state. load must be
// called on the goroutine that owns the widget.
func (widget *Widget) Ajax(populate func(load func(records []Record))) {
	if !widget.options.Mode.IsSelect() {
		return
	}
	widget.setLoading(true)
	populate(func(records []Record) {
		widget.setLoading(false)
		for _, record := range records {
			widget.addRecord(record)
		}
	})
}

func (widget *Widget) setLoading(loading bool) {
	if widget.loading == loading {
		return
	}
	widget.loading = loading
	widget.logger.Debug("loading state changed", "loading", loading)
	widget.rerender()
}
