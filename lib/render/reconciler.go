// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/bureau-foundation/choices/lib/config"
	"github.com/bureau-foundation/choices/lib/store"
)

// OrderingMode selects how choices are ordered within the region.
type OrderingMode int

const (
	// Alphabetical orders by the configured sort filter, when sorting
	// is enabled, and otherwise keeps insertion order.
	Alphabetical OrderingMode = iota
	// RelevanceScore orders by search score, best first. It also marks
	// the widget as searching: groups are flattened and an empty
	// result shows the no-results notice.
	RelevanceScore
)

func (mode OrderingMode) String() string {
	switch mode {
	case Alphabetical:
		return "alphabetical"
	case RelevanceScore:
		return "relevance"
	default:
		return "unknown"
	}
}

// Host is the value a host form sees. Text surfaces carry the item
// values joined with the delimiter; select surfaces carry one option
// fragment per item.
type Host struct {
	Text    string
	Options []Fragment
}

// Surface receives rebuilt regions. Every call replaces the previous
// contents of its region wholesale.
type Surface interface {
	ReplaceChoices(rows []Row)
	ReplaceItems(items []Fragment, host Host)

	// HighlightChoice marks rows[row] highlighted and clears any other
	// highlight. -1 clears the highlight.
	HighlightChoice(row int)

	ResetScroll()
}

// Options are the fixed rendering parameters of one widget.
type Options struct {
	Mode                config.Mode
	ShouldSort          bool
	SortFilter          config.SortFilter // Required when ShouldSort is set.
	ResetScrollPosition bool
	Delimiter           string

	// Logger receives debug records for every rebuild. Nil discards.
	Logger *slog.Logger
}

// Pass carries the per-render inputs that do not live in the store.
type Pass struct {
	Ordering OrderingMode

	// Highlight is the remembered highlight position to restore after a
	// choice-region rebuild, clamped to the rows produced.
	Highlight int

	NoResultsText string
	NoChoicesText string

	// PlaceholderText fills an empty select-one item list. Empty means
	// no placeholder row.
	PlaceholderText string
}

// Outcome reports what a render did.
type Outcome struct {
	ChoicesRebuilt bool
	ItemsRebuilt   bool

	// Highlighted is the highlight position applied by a choice-region
	// rebuild, or -1.
	Highlighted int
}

// Reconciler tracks the last rendered state of one widget. It is not
// safe for concurrent use.
type Reconciler struct {
	templates Templates
	surface   Surface
	options   Options
	logger    *slog.Logger

	previous *store.State
	listing  Listing
}

// NewReconciler validates templates and returns a reconciler that has
// rendered nothing yet, so its first Render rebuilds both regions.
func NewReconciler(templates Templates, surface Surface, options Options) (*Reconciler, error) {
	if err := templates.Validate(); err != nil {
		return nil, err
	}
	if surface == nil {
		return nil, fmt.Errorf("render: surface is required")
	}
	if options.ShouldSort && options.SortFilter == nil {
		return nil, fmt.Errorf("render: sort filter is required when sorting is enabled")
	}
	logger := options.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Reconciler{
		templates: templates,
		surface:   surface,
		options:   options,
		logger:    logger,
	}, nil
}

// Listing returns the rows produced by the most recent choice-region
// rebuild.
func (reconciler *Reconciler) Listing() Listing {
	return reconciler.listing
}

// Invalidate forgets the last rendered state so the next Render
// rebuilds every region. Used when something outside the store, such
// as the loading state, changes what a region shows.
func (reconciler *Reconciler) Invalidate() {
	reconciler.previous = nil
}

// Render rebuilds the regions whose tables changed since the last
// call. Calling it again with the same state does nothing.
func (reconciler *Reconciler) Render(current *store.State, pass Pass) Outcome {
	outcome := Outcome{Highlighted: -1}
	previous := reconciler.previous
	if current == previous {
		return outcome
	}

	choicesDirty := previous == nil ||
		current.ChoiceTable() != previous.ChoiceTable() ||
		current.GroupTable() != previous.GroupTable()
	if choicesDirty && reconciler.options.Mode.IsSelect() {
		outcome.Highlighted = reconciler.renderChoices(current, pass)
		outcome.ChoicesRebuilt = true
	}

	if previous == nil || current.ItemTable() != previous.ItemTable() {
		reconciler.renderItems(current, pass)
		outcome.ItemsRebuilt = true
	}

	reconciler.previous = current
	return outcome
}

// Notice replaces the choice region with a single notice row. Text
// surfaces use it for add prompts and rejection messages.
func (reconciler *Reconciler) Notice(text string) {
	rows := []Row{reconciler.noticeRow(text)}
	reconciler.listing = newListing(rows)
	reconciler.surface.ReplaceChoices(rows)
}

func (reconciler *Reconciler) renderChoices(current *store.State, pass Pass) int {
	searching := pass.Ordering == RelevanceScore
	activeGroups := current.ActiveGroups()
	activeChoices := current.ActiveChoices()

	if reconciler.options.ResetScrollPosition {
		reconciler.surface.ResetScroll()
	}

	var rows []Row
	if len(activeGroups) > 0 && !searching {
		rows = reconciler.groupRows(activeGroups, activeChoices, pass)
	} else if len(activeChoices) > 0 {
		rows = reconciler.choiceRows(activeChoices, pass)
	}

	if len(rows) == 0 {
		text := pass.NoChoicesText
		if searching {
			text = pass.NoResultsText
		}
		rows = []Row{reconciler.noticeRow(text)}
	}

	reconciler.listing = newListing(rows)
	reconciler.surface.ReplaceChoices(rows)

	highlighted := reconciler.listing.Clamp(pass.Highlight)
	if highlighted >= 0 {
		reconciler.surface.HighlightChoice(reconciler.listing.RowIndex(highlighted))
	}

	reconciler.logger.Debug("choice region rebuilt",
		"rows", len(rows),
		"selectable", reconciler.listing.Len(),
		"ordering", pass.Ordering,
		"highlighted", highlighted,
	)
	return highlighted
}

// groupRows renders ungrouped choices first, then each group that has
// at least one visible choice under its heading.
func (reconciler *Reconciler) groupRows(groups []store.Group, choices []store.Choice, pass Pass) []Row {
	if reconciler.options.ShouldSort {
		compare := reconciler.options.SortFilter
		slices.SortStableFunc(groups, func(a, b store.Group) int {
			return compare(groupKey(a), groupKey(b))
		})
	}

	var ungrouped []store.Choice
	for _, choice := range choices {
		if choice.GroupID < 0 {
			ungrouped = append(ungrouped, choice)
		}
	}
	rows := reconciler.choiceRows(ungrouped, pass)

	for _, group := range groups {
		var members []store.Choice
		for _, choice := range choices {
			if choice.GroupID == group.ID {
				members = append(members, choice)
			}
		}
		memberRows := reconciler.choiceRows(members, pass)
		if len(memberRows) == 0 {
			continue
		}
		rows = append(rows, Row{
			Kind:     RowGroup,
			ChoiceID: store.NoChoice,
			GroupID:  group.ID,
			Fragment: reconciler.templates.ChoiceGroup(group),
		})
		rows = append(rows, memberRows...)
	}
	return rows
}

// choiceRows orders choices and renders the ones the surface shows.
// Multi-value surfaces hide choices that are already selected.
func (reconciler *Reconciler) choiceRows(choices []store.Choice, pass Pass) []Row {
	switch {
	case pass.Ordering == RelevanceScore:
		slices.SortStableFunc(choices, func(a, b store.Choice) int {
			switch {
			case a.Score < b.Score:
				return -1
			case a.Score > b.Score:
				return 1
			default:
				return 0
			}
		})
	case reconciler.options.ShouldSort:
		compare := reconciler.options.SortFilter
		slices.SortStableFunc(choices, func(a, b store.Choice) int {
			return compare(choiceKey(a), choiceKey(b))
		})
	}

	rows := make([]Row, 0, len(choices))
	for _, choice := range choices {
		if choice.Selected && reconciler.options.Mode != config.ModeSelectOne {
			continue
		}
		rows = append(rows, Row{
			Kind:       RowChoice,
			ChoiceID:   choice.ID,
			GroupID:    choice.GroupID,
			Selectable: !choice.Disabled,
			Fragment:   reconciler.templates.Choice(choice),
		})
	}
	return rows
}

func (reconciler *Reconciler) noticeRow(text string) Row {
	return Row{
		Kind:     RowNotice,
		ChoiceID: store.NoChoice,
		GroupID:  store.NoGroup,
		Fragment: reconciler.templates.Notice(text),
	}
}

func (reconciler *Reconciler) renderItems(current *store.State, pass Pass) {
	items := current.ActiveItems()

	var host Host
	if reconciler.options.Mode == config.ModeText {
		host.Text = strings.Join(store.ItemValues(items), reconciler.options.Delimiter)
	} else {
		host.Options = make([]Fragment, len(items))
		for index, item := range items {
			host.Options[index] = reconciler.templates.Option(item)
		}
	}

	fragments := make([]Fragment, 0, len(items))
	for _, item := range items {
		fragments = append(fragments, reconciler.templates.Item(item))
	}
	if len(items) == 0 && reconciler.options.Mode == config.ModeSelectOne && pass.PlaceholderText != "" {
		fragments = append(fragments, reconciler.templates.Placeholder(pass.PlaceholderText))
	}

	reconciler.surface.ReplaceItems(fragments, host)
	reconciler.logger.Debug("item region rebuilt", "items", len(items))
}

func choiceKey(choice store.Choice) config.SortKey {
	return config.SortKey{Value: choice.Value, Label: choice.Label}
}

func groupKey(group store.Group) config.SortKey {
	return config.SortKey{Value: group.Value, Label: group.Value}
}

// ShouldFlip reports whether the dropdown should open above the
// control. dropdownBottom is where the dropdown would end if opened
// below, and available is the height it may occupy without
// overflowing, in the same units.
func ShouldFlip(position config.Position, dropdownBottom, available int) bool {
	switch position {
	case config.PositionTop:
		return true
	case config.PositionAuto:
		return dropdownBottom >= available
	default:
		return false
	}
}
