// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package store

import "strings"

// State is an immutable snapshot of the three collections. A new State
// is produced by every dispatch; callers may hold on to old snapshots
// and compare them against newer ones.
type State struct {
	items   *ItemTable
	choices *ChoiceTable
	groups  *GroupTable

	nextItemID   ItemID
	nextChoiceID ChoiceID
	nextGroupID  GroupID
}

// NewState returns an empty state whose id counters start at 1.
func NewState() *State {
	return &State{
		items:        emptyItems(),
		choices:      emptyChoices(),
		groups:       emptyGroups(),
		nextItemID:   1,
		nextChoiceID: 1,
		nextGroupID:  1,
	}
}

// clone returns a shallow copy. Tables are shared until a reducer case
// replaces one.
func (state *State) clone() *State {
	copied := *state
	return &copied
}

// ItemTable returns the item collection. The pointer identifies the
// collection's contents: it changes exactly when the items change.
func (state *State) ItemTable() *ItemTable { return state.items }

// ChoiceTable returns the choice collection (see ItemTable).
func (state *State) ChoiceTable() *ChoiceTable { return state.choices }

// GroupTable returns the group collection (see ItemTable).
func (state *State) GroupTable() *GroupTable { return state.groups }

// NextItemID returns the id the next added item should carry.
func (state *State) NextItemID() ItemID { return state.nextItemID }

// NextChoiceID returns the id the next added choice should carry.
func (state *State) NextChoiceID() ChoiceID { return state.nextChoiceID }

// NextGroupID returns an unused group id.
func (state *State) NextGroupID() GroupID { return state.nextGroupID }

// Items returns every item, including removed ones.
func (state *State) Items() []Item {
	return state.items.All()
}

// ActiveItems returns the items that have not been removed, in the
// order they were added.
func (state *State) ActiveItems() []Item {
	return state.items.Filter(func(item Item) bool { return item.Active })
}

// HighlightedItems returns the active items currently armed for
// removal.
func (state *State) HighlightedItems() []Item {
	return state.items.Filter(func(item Item) bool { return item.Active && item.Highlighted })
}

// Item returns the item with the given id, active or not.
func (state *State) Item(id ItemID) (Item, bool) {
	return state.items.Get(id)
}

// ItemValues projects items to their values, preserving order.
func ItemValues(items []Item) []string {
	values := make([]string, len(items))
	for index, item := range items {
		values[index] = item.Value
	}
	return values
}

// Choices returns every choice.
func (state *State) Choices() []Choice {
	return state.choices.All()
}

// ActiveChoices returns the choices visible under the current search
// filter.
func (state *State) ActiveChoices() []Choice {
	return state.choices.Filter(func(choice Choice) bool { return choice.Active })
}

// SelectableChoices returns the candidates for search and keyboard
// navigation: active, not selected, and not disabled.
func (state *State) SelectableChoices() []Choice {
	return state.choices.Filter(func(choice Choice) bool {
		return choice.Active && !choice.Selected && !choice.Disabled
	})
}

// HasInactiveChoices reports whether a search filter is currently
// hiding any choice.
func (state *State) HasInactiveChoices() bool {
	for _, choice := range state.choices.records {
		if !choice.Active {
			return true
		}
	}
	return false
}

// Choice returns the choice with the given id.
func (state *State) Choice(id ChoiceID) (Choice, bool) {
	return state.choices.Get(id)
}

// ChoiceByValue returns the first choice whose value equals value.
func (state *State) ChoiceByValue(value string) (Choice, bool) {
	for _, choice := range state.choices.records {
		if choice.Value == value {
			return choice, true
		}
	}
	return Choice{}, false
}

// ActiveGroups returns the groups that are active.
func (state *State) ActiveGroups() []Group {
	return state.groups.Filter(func(group Group) bool { return group.Active })
}

// Group returns the group with the given id.
func (state *State) Group(id GroupID) (Group, bool) {
	return state.groups.Get(id)
}

// GroupValue returns the label of the group an item or choice belongs
// to, or "" when it is ungrouped or the group is unknown.
func (state *State) GroupValue(id GroupID) string {
	if id < 0 {
		return ""
	}
	group, exists := state.groups.Get(id)
	if !exists {
		return ""
	}
	return group.Value
}

// HasActiveValue reports whether an active item already holds value,
// compared after trimming surrounding whitespace from value.
func (state *State) HasActiveValue(value string) bool {
	trimmed := strings.TrimSpace(value)
	for _, item := range state.items.records {
		if item.Active && item.Value == trimmed {
			return true
		}
	}
	return false
}
