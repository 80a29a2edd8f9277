// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package search

import (
	"strings"
	"unicode/utf8"
)

// Decision is what a query update should do to the choice list.
type Decision int

const (
	// DecisionReset restores every choice, unscored.
	DecisionReset Decision = iota
	// DecisionSearch runs a search with the trimmed query.
	DecisionSearch
	// DecisionSkip leaves the current results alone.
	DecisionSkip
)

func (decision Decision) String() string {
	switch decision {
	case DecisionReset:
		return "reset"
	case DecisionSearch:
		return "search"
	case DecisionSkip:
		return "skip"
	default:
		return "unknown"
	}
}

// Gate decides whether live input should trigger a search.
type Gate struct {
	// Floor is the minimum trimmed query length, in runes, that runs a
	// search. Values below 1 are treated as 1.
	Floor int
}

// Decide classifies raw, the live input value, given previous, the
// last query that was searched. A query shorter than the floor resets
// the list. A query that is exactly the previous one plus a trailing
// space is skipped: the keystroke added whitespace only.
func (gate Gate) Decide(raw, previous string) (Decision, string) {
	floor := gate.Floor
	if floor < 1 {
		floor = 1
	}
	trimmed := strings.TrimSpace(raw)
	if utf8.RuneCountInString(trimmed) < floor {
		return DecisionReset, ""
	}
	if previous != "" && raw == previous+" " {
		return DecisionSkip, trimmed
	}
	return DecisionSearch, trimmed
}
