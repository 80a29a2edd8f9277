// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package store

// ActionKind names an action for logging and history inspection.
type ActionKind string

const (
	KindAddItem         ActionKind = "ADD_ITEM"
	KindRemoveItem      ActionKind = "REMOVE_ITEM"
	KindHighlightItem   ActionKind = "HIGHLIGHT_ITEM"
	KindAddChoice       ActionKind = "ADD_CHOICE"
	KindAddGroup        ActionKind = "ADD_GROUP"
	KindFilterChoices   ActionKind = "FILTER_CHOICES"
	KindActivateChoices ActionKind = "ACTIVATE_CHOICES"
	KindClearChoices    ActionKind = "CLEAR_CHOICES"
	KindClearAll        ActionKind = "CLEAR_ALL"
)

// Action is a request to transition the store. The concrete types in
// this package are the only kinds [Reduce] understands; any other
// implementation is rejected with [ErrUnknownAction].
type Action interface {
	Kind() ActionKind
}

// AddItem appends a new active item. If ChoiceID refers to an existing
// choice, that choice becomes selected.
//
// The store does not enforce single-select exclusivity: a caller adding
// to a select-one surface must also remove the previously active items.
type AddItem struct {
	ID       ItemID
	Value    string
	Label    string // Defaults to Value when empty.
	ChoiceID ChoiceID
	GroupID  GroupID
}

// RemoveItem soft-deletes an item. When ChoiceID is non-negative the
// referenced choice is deselected unless another active item still
// references it.
type RemoveItem struct {
	ID       ItemID
	ChoiceID ChoiceID
}

// HighlightItem sets or clears an item's highlight flag.
type HighlightItem struct {
	ID          ItemID
	Highlighted bool
}

// AddChoice appends a new choice, active and not selected.
type AddChoice struct {
	ID       ChoiceID
	Value    string
	Label    string // Defaults to Value when empty.
	GroupID  GroupID
	Disabled bool
}

// AddGroup appends a new group.
type AddGroup struct {
	ID       GroupID
	Value    string
	Active   bool
	Disabled bool
}

// Match is one search hit: a choice id and its relevance score (lower
// is better).
type Match struct {
	ChoiceID ChoiceID
	Score    float64
}

// FilterChoices marks exactly the matched choices active, recording
// their scores, and every other choice inactive. An empty Matches
// hides every choice.
type FilterChoices struct {
	Matches []Match
}

// ActivateChoices sets Active on every choice. Dispatched with true to
// restore the full list when a search ends.
type ActivateChoices struct {
	Active bool
}

// ClearChoices removes every choice. This is a hard delete.
type ClearChoices struct{}

// ClearAll removes every item, choice, and group. Id counters are not
// reset.
type ClearAll struct{}

func (AddItem) Kind() ActionKind         { return KindAddItem }
func (RemoveItem) Kind() ActionKind      { return KindRemoveItem }
func (HighlightItem) Kind() ActionKind   { return KindHighlightItem }
func (AddChoice) Kind() ActionKind       { return KindAddChoice }
func (AddGroup) Kind() ActionKind        { return KindAddGroup }
func (FilterChoices) Kind() ActionKind   { return KindFilterChoices }
func (ActivateChoices) Kind() ActionKind { return KindActivateChoices }
func (ClearChoices) Kind() ActionKind    { return KindClearChoices }
func (ClearAll) Kind() ActionKind        { return KindClearAll }
