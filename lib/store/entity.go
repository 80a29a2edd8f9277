// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package store

import "strconv"

// ItemID identifies an [Item]. Item ids are positive and assigned in
// increasing order.
type ItemID int

// ChoiceID identifies a [Choice]. Choice ids are numbered
// independently of item ids.
type ChoiceID int

// GroupID identifies a [Group].
type GroupID int

const (
	// NoChoice is the back-reference held by an item that did not
	// originate from a choice (free-text entries).
	NoChoice ChoiceID = -1

	// NoGroup is the back-reference held by ungrouped items and choices.
	NoGroup GroupID = -1
)

func (id ItemID) String() string   { return strconv.Itoa(int(id)) }
func (id ChoiceID) String() string { return strconv.Itoa(int(id)) }
func (id GroupID) String() string  { return strconv.Itoa(int(id)) }

// Item is a value currently held by the control: a selected choice or
// an entered tag.
type Item struct {
	ID    ItemID
	Value string
	Label string

	// ChoiceID is the choice this item was selected from, or NoChoice.
	ChoiceID ChoiceID

	// GroupID is the group of the originating choice, or NoGroup.
	GroupID GroupID

	// Active is false once the item has been removed. Inactive items
	// stay in the table but are excluded from every user-facing
	// selector.
	Active bool

	// Highlighted marks the item as armed for removal. It is
	// independent of Active.
	Highlighted bool
}

// Choice is an option offered in the dropdown.
type Choice struct {
	ID      ChoiceID
	Value   string
	Label   string
	GroupID GroupID

	// Disabled choices are shown but cannot be selected.
	Disabled bool

	// Selected is true while at least one active item references
	// this choice.
	Selected bool

	// Active marks the choice as visible under the current search
	// filter. It is not a deletion marker.
	Active bool

	// Score is the relevance score from the most recent search that
	// matched this choice. Lower is better; 0 is an exact match.
	Score float64
}

// Group is a named partition of choices. Membership is not stored on
// the group: a choice belongs to the group whose id it carries.
type Group struct {
	ID       GroupID
	Value    string
	Active   bool
	Disabled bool
}
