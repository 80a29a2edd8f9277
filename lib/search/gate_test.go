// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package search

import "testing"

func TestGateDecide(t *testing.T) {
	tests := []struct {
		name     string
		floor    int
		raw      string
		previous string
		want     Decision
		query    string
	}{
		{name: "empty resets", floor: 1, raw: "", want: DecisionReset},
		{name: "whitespace resets", floor: 1, raw: "   ", want: DecisionReset},
		{name: "at floor searches", floor: 1, raw: "a", want: DecisionSearch, query: "a"},
		{name: "below floor resets", floor: 3, raw: "ab", want: DecisionReset},
		{name: "floor counts runes", floor: 2, raw: "éé", want: DecisionSearch, query: "éé"},
		{name: "zero floor acts as one", floor: 0, raw: "", want: DecisionReset},
		{name: "trims query", floor: 1, raw: "  ap ", want: DecisionSearch, query: "ap"},
		{name: "trailing space skipped", floor: 1, raw: "ap ", previous: "ap", want: DecisionSkip, query: "ap"},
		{name: "new text searches", floor: 1, raw: "app", previous: "ap", want: DecisionSearch, query: "app"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			gate := Gate{Floor: test.floor}
			decision, query := gate.Decide(test.raw, test.previous)
			if decision != test.want {
				t.Errorf("decision = %v, want %v", decision, test.want)
			}
			if decision != DecisionReset && query != test.query {
				t.Errorf("query = %q, want %q", query, test.query)
			}
		})
	}
}
