// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package render

import "github.com/bureau-foundation/choices/lib/store"

// RowKind classifies a row of the choice region.
type RowKind int

const (
	RowChoice RowKind = iota
	RowGroup
	RowNotice
)

func (kind RowKind) String() string {
	switch kind {
	case RowChoice:
		return "choice"
	case RowGroup:
		return "group"
	case RowNotice:
		return "notice"
	default:
		return "unknown"
	}
}

// Row is one rendered entry of the choice region.
type Row struct {
	Kind     RowKind
	ChoiceID store.ChoiceID // NoChoice unless Kind is RowChoice.
	GroupID  store.GroupID

	// Selectable is true for choice rows that are not disabled. Only
	// selectable rows can be highlighted.
	Selectable bool

	Fragment Fragment
}

// Listing is the navigable view of the choice region: its rows in
// display order, and the subsequence of them that can be highlighted.
// Highlight positions are indexes into that subsequence.
type Listing struct {
	rows       []Row
	selectable []int
}

func newListing(rows []Row) Listing {
	listing := Listing{rows: rows}
	for index, row := range rows {
		if row.Selectable {
			listing.selectable = append(listing.selectable, index)
		}
	}
	return listing
}

// Rows returns a copy of every row in display order.
func (listing Listing) Rows() []Row {
	return append([]Row(nil), listing.rows...)
}

// Len returns the number of selectable rows.
func (listing Listing) Len() int {
	return len(listing.selectable)
}

// At returns the selectable row at position.
func (listing Listing) At(position int) (Row, bool) {
	if position < 0 || position >= len(listing.selectable) {
		return Row{}, false
	}
	return listing.rows[listing.selectable[position]], true
}

// RowIndex converts a highlight position into an index into Rows, or
// -1 when position is out of range.
func (listing Listing) RowIndex(position int) int {
	if position < 0 || position >= len(listing.selectable) {
		return -1
	}
	return listing.selectable[position]
}

// PositionOf returns the highlight position of a choice, or -1 when
// the choice is not a selectable row.
func (listing Listing) PositionOf(id store.ChoiceID) int {
	for position, index := range listing.selectable {
		if listing.rows[index].ChoiceID == id {
			return position
		}
	}
	return -1
}

// Clamp maps a remembered highlight position onto the current rows:
// positions past the end land on the last selectable row, negative
// ones on the first. Returns -1 when nothing is selectable.
func (listing Listing) Clamp(position int) int {
	if len(listing.selectable) == 0 {
		return -1
	}
	if position >= len(listing.selectable) {
		return len(listing.selectable) - 1
	}
	if position < 0 {
		return 0
	}
	return position
}

// IsNotice reports whether the region holds only a notice.
func (listing Listing) IsNotice() bool {
	return len(listing.rows) == 1 && listing.rows[0].Kind == RowNotice
}
