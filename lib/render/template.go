// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bureau-foundation/choices/lib/store"
)

// ErrMissingTemplate is returned when a [Templates] value lacks a
// template the reconciler needs.
var ErrMissingTemplate = errors.New("missing template")

// Fragment is an opaque rendered record. The reconciler never looks
// inside one; it only orders fragments and hands them to the surface.
type Fragment string

// Templates turns records into fragments, one function per kind.
// Every field is required.
type Templates struct {
	// Item renders an item in the item list.
	Item func(store.Item) Fragment

	// Choice renders a choice row in the dropdown.
	Choice func(store.Choice) Fragment

	// ChoiceGroup renders a group heading.
	ChoiceGroup func(store.Group) Fragment

	// Notice renders the single row shown when the dropdown has no
	// choices to offer.
	Notice func(text string) Fragment

	// Placeholder renders the stand-in for an empty select-one item
	// list.
	Placeholder func(text string) Fragment

	// Option renders an item into the host value of select surfaces.
	Option func(store.Item) Fragment
}

// Validate reports every missing template, wrapping
// [ErrMissingTemplate].
func (templates Templates) Validate() error {
	var missing []string
	if templates.Item == nil {
		missing = append(missing, "item")
	}
	if templates.Choice == nil {
		missing = append(missing, "choice")
	}
	if templates.ChoiceGroup == nil {
		missing = append(missing, "choiceGroup")
	}
	if templates.Notice == nil {
		missing = append(missing, "notice")
	}
	if templates.Placeholder == nil {
		missing = append(missing, "placeholder")
	}
	if templates.Option == nil {
		missing = append(missing, "option")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingTemplate, strings.Join(missing, ", "))
	}
	return nil
}
