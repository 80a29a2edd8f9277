// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package search

import (
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"

	"github.com/bureau-foundation/choices/lib/store"
)

// Slab sizes match fzf's own defaults for interactive matching.
const (
	slab16Size = 100 * 1024
	slab32Size = 2048
)

// coverageWeight is the share of the final score contributed by how
// much of the field the query leaves unmatched. The remainder comes
// from fzf's match quality relative to a perfect match.
const coverageWeight = 0.25

var initAlgorithm sync.Once

// Options tunes matching. The zero value is not useful; start from
// [DefaultOptions].
type Options struct {
	// Threshold is the worst score still reported, in [0, 1].
	Threshold float64

	// CaseSensitive disables case folding of query and fields.
	CaseSensitive bool
}

// DefaultOptions returns case-insensitive matching with a 0.6
// threshold.
func DefaultOptions() Options {
	return Options{Threshold: 0.6}
}

// Result is one ranked choice.
type Result struct {
	Choice store.Choice
	Score  float64
}

// Index scores candidates against queries. It reuses a scratch slab
// between searches and so must not be used from more than one
// goroutine at a time.
type Index struct {
	options Options
	slab    *util.Slab
}

// NewIndex creates an Index with the given options.
func NewIndex(options Options) *Index {
	initAlgorithm.Do(func() { algo.Init("default") })
	return &Index{
		options: options,
		slab:    util.MakeSlab(slab16Size, slab32Size),
	}
}

// Search returns the candidates matching query in any of fields,
// sorted by ascending score. Candidates with equal scores keep their
// input order. An empty query, or fields naming nothing searchable,
// yields no results.
func (index *Index) Search(query string, candidates []store.Choice, fields []string) []Result {
	query = strings.TrimSpace(query)
	if query == "" {
		return []Result{}
	}
	if !index.options.CaseSensitive {
		query = strings.ToLower(query)
	}
	pattern := []rune(query)
	perfect := index.matchScore(query, pattern)

	results := make([]Result, 0, len(candidates))
	for _, candidate := range candidates {
		best, matched := 0.0, false
		for _, field := range fields {
			text, known := FieldValue(candidate, field)
			if !known {
				continue
			}
			score, ok := index.score(text, query, pattern, perfect)
			if !ok {
				continue
			}
			if !matched || score < best {
				best, matched = score, true
			}
		}
		if matched && best <= index.options.Threshold {
			results = append(results, Result{Choice: candidate, Score: best})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score < results[j].Score
	})
	return results
}

// score rates one field. Returns false when the field does not contain
// the pattern as a subsequence.
func (index *Index) score(text, query string, pattern []rune, perfect int) (float64, bool) {
	if text == "" {
		return 0, false
	}
	folded := text
	if !index.options.CaseSensitive {
		folded = strings.ToLower(text)
	}
	if folded == query {
		return 0, true
	}

	raw := index.matchScore(text, pattern)
	if raw <= 0 {
		return 0, false
	}

	quality := 1.0
	if perfect > 0 {
		quality = 1 - float64(raw)/float64(perfect)
	}
	quality = clamp(quality)

	coverage := float64(len(pattern)) / float64(utf8.RuneCountInString(text))
	uncovered := clamp(1 - coverage)

	return (1-coverageWeight)*quality + coverageWeight*uncovered, true
}

// matchScore returns fzf's raw score for pattern in text, or 0 when
// there is no match.
func (index *Index) matchScore(text string, pattern []rune) int {
	chars := util.ToChars([]byte(text))
	result, _ := algo.FuzzyMatchV2(index.options.CaseSensitive, false, true, &chars, pattern, false, index.slab)
	if result.Start < 0 {
		return 0
	}
	return result.Score
}

func clamp(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}

// FieldValue returns the searchable text of a choice field. Recognised
// fields are "label" and "value"; anything else reports false.
func FieldValue(choice store.Choice, field string) (string, bool) {
	switch field {
	case "label":
		return choice.Label, true
	case "value":
		return choice.Value, true
	default:
		return "", false
	}
}

// Matches converts ranked results into the store's filter payload,
// preserving order.
func Matches(results []Result) []store.Match {
	matches := make([]store.Match, len(results))
	for position, result := range results {
		matches[position] = store.Match{ChoiceID: result.Choice.ID, Score: result.Score}
	}
	return matches
}
