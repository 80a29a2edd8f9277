// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package interaction

import (
	"strings"

	"github.com/bureau-foundation/choices/lib/config"
	"github.com/bureau-foundation/choices/lib/store"
)

// The builders in this file produce the effect sequences shared by
// event handling and the widget's programmatic API. Each reads ids
// from the snapshot it is given.

// AddItem returns the effects that add value as a new item. The value
// is trimmed and decorated with the configured prefix and suffix; the
// label defaults to the trimmed value. On select-one surfaces every
// previously active item is removed before the add, so no snapshot
// ever holds two active items.
func (controller *Controller) AddItem(current *store.State, value, label string, choiceID store.ChoiceID, groupID store.GroupID) []Effect {
	options := controller.options
	value = strings.TrimSpace(value)
	if label == "" {
		label = value
	}
	value = options.PrependValue + value + options.AppendValue
	id := current.NextItemID()

	var effects []Effect
	if options.Mode == config.ModeSelectOne {
		for _, item := range current.ActiveItems() {
			effects = append(effects, controller.RemoveItem(current, item)...)
		}
	}

	effects = append(effects, Dispatch{Action: store.AddItem{
		ID:       id,
		Value:    value,
		Label:    label,
		ChoiceID: choiceID,
		GroupID:  groupID,
	}})
	return append(effects, Notify{Name: NotifyAddItem, Detail: Detail{
		ID:         id,
		Value:      value,
		Label:      label,
		GroupValue: current.GroupValue(groupID),
	}})
}

// RemoveItem returns the effects that soft-delete item.
func (controller *Controller) RemoveItem(current *store.State, item store.Item) []Effect {
	return []Effect{
		Dispatch{Action: store.RemoveItem{ID: item.ID, ChoiceID: item.ChoiceID}},
		Notify{Name: NotifyRemoveItem, Detail: itemDetail(current, item)},
	}
}

// HighlightItem returns the effects that set or clear item's
// highlight, with the matching notification when notify is set.
func (controller *Controller) HighlightItem(current *store.State, item store.Item, highlighted, notify bool) []Effect {
	effects := []Effect{Dispatch{Action: store.HighlightItem{ID: item.ID, Highlighted: highlighted}}}
	if notify {
		name := NotifyHighlightItem
		if !highlighted {
			name = NotifyUnhighlightItem
		}
		effects = append(effects, Notify{Name: name, Detail: itemDetail(current, item)})
	}
	return effects
}

// UnhighlightAll clears the highlight of every highlighted item.
func (controller *Controller) UnhighlightAll(current *store.State) []Effect {
	var effects []Effect
	for _, item := range current.HighlightedItems() {
		effects = append(effects, controller.HighlightItem(current, item, false, true)...)
	}
	return effects
}

// Change returns the value-changed notification for value, or nothing
// when value is empty.
func (controller *Controller) Change(value string) []Effect {
	if value == "" {
		return nil
	}
	return []Effect{Notify{Name: NotifyChange, Detail: Detail{Value: value}}}
}

// ResetSearch restores every choice after a search on select surfaces
// with search enabled.
func (controller *Controller) ResetSearch(state State) (State, []Effect) {
	if controller.options.Mode == config.ModeText || !controller.options.Search {
		return state, nil
	}
	state.Searching = false
	state.LastQuery = ""
	return state, []Effect{Dispatch{Action: store.ActivateChoices{Active: true}}}
}

func itemDetail(current *store.State, item store.Item) Detail {
	return Detail{
		ID:         item.ID,
		Value:      item.Value,
		Label:      item.Label,
		GroupValue: current.GroupValue(item.GroupID),
	}
}
