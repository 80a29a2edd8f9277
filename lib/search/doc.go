// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package search ranks dropdown choices against a free-text query.
//
// Matching is fuzzy: a choice matches when the query's characters
// appear in order in one of the configured fields, not necessarily
// contiguously. Scoring uses fzf's FuzzyMatchV2 algorithm and is then
// normalised so that lower is better and 0 is an exact match, with a
// threshold above which matches are discarded as too weak.
//
// [Gate] holds the policy for when a keystroke should run a search at
// all, as opposed to restoring the unfiltered list.
package search
