// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import "strings"

// SortKey is the sortable view of a choice or group. Groups have no
// label of their own and sort with Label equal to Value.
type SortKey struct {
	Value string
	Label string
}

// SortFilter orders two keys, returning a negative number when a sorts
// first, positive when b does, and 0 for a tie.
type SortFilter func(a, b SortKey) int

// SortByFields compares keys case-insensitively on each field in turn
// ("label" or "value"; others are skipped). Keys equal on every field
// fall back to Value and then Label, compared exactly, so the order is
// total.
func SortByFields(fields []string) SortFilter {
	fields = append([]string(nil), fields...)
	return func(a, b SortKey) int {
		for _, field := range fields {
			left, right := a.field(field), b.field(field)
			if order := strings.Compare(strings.ToLower(left), strings.ToLower(right)); order != 0 {
				return order
			}
		}
		if order := strings.Compare(a.Value, b.Value); order != 0 {
			return order
		}
		return strings.Compare(a.Label, b.Label)
	}
}

func (key SortKey) field(name string) string {
	switch name {
	case "label":
		return key.Label
	case "value":
		return key.Value
	default:
		return ""
	}
}
