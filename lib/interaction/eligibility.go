// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package interaction

import (
	"strconv"
	"strings"

	"github.com/bureau-foundation/choices/lib/config"
	"github.com/bureau-foundation/choices/lib/store"
)

// Eligibility is the outcome of an add-item check. Notice is the
// message to show in the dropdown; it may be empty.
type Eligibility struct {
	Eligible bool
	Notice   string
}

// CanAddItem decides whether value may be added as a new item. The
// rules apply in order:
//
//  1. On multi-value surfaces with a positive item limit, reaching the
//     limit rejects with the max-item message.
//  2. On text surfaces, adding must be enabled, and a configured
//     regular expression filter must match the trimmed value.
//  3. When duplicates are disallowed, a value already held by an
//     active item rejects with the uniqueness message.
//
// An eligible value carries the add prompt as its notice.
func (controller *Controller) CanAddItem(current *store.State, value string) Eligibility {
	options := controller.options
	trimmed := strings.TrimSpace(value)
	result := Eligibility{Eligible: true, Notice: options.AddItemText.Resolve(trimmed)}

	if options.Mode != config.ModeSelectOne && options.MaxItemCount > 0 &&
		len(current.ActiveItems()) >= options.MaxItemCount {
		return Eligibility{Notice: options.MaxItemText.Resolve(strconv.Itoa(options.MaxItemCount))}
	}

	if options.Mode == config.ModeText {
		if !options.AddItems {
			return Eligibility{}
		}
		if controller.regexFilter != nil && !controller.regexFilter.MatchString(trimmed) {
			result.Eligible = false
		}
	}

	if !options.DuplicateItems && current.HasActiveValue(trimmed) {
		return Eligibility{Notice: options.UniqueItemText.Resolve(trimmed)}
	}

	return result
}
