// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"errors"
	"slices"
	"testing"

	"github.com/bureau-foundation/choices/lib/config"
	"github.com/bureau-foundation/choices/lib/store"
)

// countingSurface records every region rebuild.
type countingSurface struct {
	choiceRebuilds int
	itemRebuilds   int
	scrollResets   int
	rows           []Row
	items          []Fragment
	host           Host
	highlighted    int
}

func newCountingSurface() *countingSurface {
	return &countingSurface{highlighted: -1}
}

func (surface *countingSurface) ReplaceChoices(rows []Row) {
	surface.choiceRebuilds++
	surface.rows = rows
	surface.highlighted = -1
}

func (surface *countingSurface) ReplaceItems(items []Fragment, host Host) {
	surface.itemRebuilds++
	surface.items = items
	surface.host = host
}

func (surface *countingSurface) HighlightChoice(row int) { surface.highlighted = row }
func (surface *countingSurface) ResetScroll()            { surface.scrollResets++ }

func (surface *countingSurface) fragments() []string {
	var fragments []string
	for _, row := range surface.rows {
		fragments = append(fragments, string(row.Fragment))
	}
	return fragments
}

func plainTemplates() Templates {
	return Templates{
		Item:        func(item store.Item) Fragment { return Fragment("item:" + item.Value) },
		Choice:      func(choice store.Choice) Fragment { return Fragment(choice.Label) },
		ChoiceGroup: func(group store.Group) Fragment { return Fragment("[" + group.Value + "]") },
		Notice:      func(text string) Fragment { return Fragment("notice:" + text) },
		Placeholder: func(text string) Fragment { return Fragment("placeholder:" + text) },
		Option:      func(item store.Item) Fragment { return Fragment("option:" + item.Value) },
	}
}

func newTestReconciler(t *testing.T, mode config.Mode) (*Reconciler, *countingSurface) {
	t.Helper()
	surface := newCountingSurface()
	reconciler, err := NewReconciler(plainTemplates(), surface, Options{
		Mode:                mode,
		ShouldSort:          true,
		SortFilter:          config.SortByFields([]string{"label", "value"}),
		ResetScrollPosition: true,
		Delimiter:           ",",
	})
	if err != nil {
		t.Fatalf("NewReconciler: %v", err)
	}
	return reconciler, surface
}

func reduce(t *testing.T, state *store.State, actions ...store.Action) *store.State {
	t.Helper()
	for _, action := range actions {
		next, err := store.Reduce(state, action)
		if err != nil {
			t.Fatalf("Reduce(%T): %v", action, err)
		}
		state = next
	}
	return state
}

func fruitState(t *testing.T) *store.State {
	return reduce(t, store.NewState(),
		store.AddChoice{ID: 1, Value: "grape", Label: "Grape", GroupID: store.NoGroup},
		store.AddChoice{ID: 2, Value: "apple", Label: "Apple", GroupID: store.NoGroup},
		store.AddChoice{ID: 3, Value: "banana", Label: "Banana", GroupID: store.NoGroup},
	)
}

var defaultPass = Pass{NoResultsText: "No results found", NoChoicesText: "No choices to choose from"}

func TestNewReconcilerRequiresEveryTemplate(t *testing.T) {
	templates := plainTemplates()
	templates.Notice = nil
	templates.Option = nil

	_, err := NewReconciler(templates, newCountingSurface(), Options{Mode: config.ModeSelectOne})
	if !errors.Is(err, ErrMissingTemplate) {
		t.Fatalf("expected ErrMissingTemplate, got %v", err)
	}
	if got := err.Error(); got != "missing template: notice, option" {
		t.Errorf("error should name the missing kinds, got %q", got)
	}
}

func TestRenderTwiceWithoutDispatchDoesNothing(t *testing.T) {
	reconciler, surface := newTestReconciler(t, config.ModeSelectMultiple)
	state := fruitState(t)

	first := reconciler.Render(state, defaultPass)
	if !first.ChoicesRebuilt || !first.ItemsRebuilt {
		t.Fatalf("first render should rebuild both regions, got %+v", first)
	}
	second := reconciler.Render(state, defaultPass)
	if second.ChoicesRebuilt || second.ItemsRebuilt {
		t.Errorf("second render should do nothing, got %+v", second)
	}
	if surface.choiceRebuilds != 1 || surface.itemRebuilds != 1 {
		t.Errorf("rebuilds = %d choices, %d items; want 1, 1", surface.choiceRebuilds, surface.itemRebuilds)
	}
}

func TestRenderItemsOnlyChangeSkipsChoiceRegion(t *testing.T) {
	reconciler, surface := newTestReconciler(t, config.ModeText)
	state := store.NewState()
	reconciler.Render(state, defaultPass)

	state = reduce(t, state, store.AddItem{ID: 1, Value: "ap", ChoiceID: store.NoChoice, GroupID: store.NoGroup})
	outcome := reconciler.Render(state, defaultPass)
	if outcome.ChoicesRebuilt || !outcome.ItemsRebuilt {
		t.Errorf("only the item region should rebuild, got %+v", outcome)
	}
	if surface.choiceRebuilds != 0 {
		t.Errorf("text surfaces never rebuild choices, got %d", surface.choiceRebuilds)
	}
	if surface.host.Text != "ap" {
		t.Errorf("host text = %q, want ap", surface.host.Text)
	}
}

func TestRenderChoiceOnlyChangeSkipsItemRegion(t *testing.T) {
	reconciler, surface := newTestReconciler(t, config.ModeSelectMultiple)
	state := fruitState(t)
	reconciler.Render(state, defaultPass)

	state = reduce(t, state, store.AddChoice{ID: 4, Value: "cherry", Label: "Cherry", GroupID: store.NoGroup})
	outcome := reconciler.Render(state, defaultPass)
	if !outcome.ChoicesRebuilt || outcome.ItemsRebuilt {
		t.Errorf("only the choice region should rebuild, got %+v", outcome)
	}
	if surface.itemRebuilds != 1 {
		t.Errorf("item rebuilds = %d, want 1", surface.itemRebuilds)
	}
}

func TestRenderSortsAlphabeticallyWhenNotSearching(t *testing.T) {
	reconciler, surface := newTestReconciler(t, config.ModeSelectMultiple)
	reconciler.Render(fruitState(t), defaultPass)

	if got := surface.fragments(); !slices.Equal(got, []string{"Apple", "Banana", "Grape"}) {
		t.Errorf("rows = %v", got)
	}
	if surface.scrollResets != 1 {
		t.Errorf("scroll resets = %d, want 1", surface.scrollResets)
	}
}

func TestRenderKeepsInsertionOrderWithoutSort(t *testing.T) {
	surface := newCountingSurface()
	reconciler, err := NewReconciler(plainTemplates(), surface, Options{Mode: config.ModeSelectOne})
	if err != nil {
		t.Fatalf("NewReconciler: %v", err)
	}
	reconciler.Render(fruitState(t), defaultPass)
	if got := surface.fragments(); !slices.Equal(got, []string{"Grape", "Apple", "Banana"}) {
		t.Errorf("rows = %v", got)
	}
}

func TestRenderOrdersByScoreWhenSearching(t *testing.T) {
	reconciler, surface := newTestReconciler(t, config.ModeSelectMultiple)
	state := reduce(t, fruitState(t), store.FilterChoices{Matches: []store.Match{
		{ChoiceID: 1, Score: 0.4},
		{ChoiceID: 2, Score: 0.1},
	}})

	reconciler.Render(state, Pass{Ordering: RelevanceScore})
	if got := surface.fragments(); !slices.Equal(got, []string{"Apple", "Grape"}) {
		t.Errorf("rows = %v, want best score first", got)
	}
}

func TestRenderGroupedUnlessSearching(t *testing.T) {
	reconciler, surface := newTestReconciler(t, config.ModeSelectMultiple)
	state := reduce(t, store.NewState(),
		store.AddGroup{ID: 1, Value: "Vegetables", Active: true},
		store.AddGroup{ID: 2, Value: "Fruit", Active: true},
		store.AddGroup{ID: 3, Value: "Empty", Active: true},
		store.AddChoice{ID: 1, Value: "leek", Label: "Leek", GroupID: 1},
		store.AddChoice{ID: 2, Value: "pear", Label: "Pear", GroupID: 2},
		store.AddChoice{ID: 3, Value: "fig", Label: "Fig", GroupID: 2},
		store.AddChoice{ID: 4, Value: "salt", Label: "Salt", GroupID: store.NoGroup},
	)

	reconciler.Render(state, defaultPass)
	want := []string{"Salt", "[Fruit]", "Fig", "Pear", "[Vegetables]", "Leek"}
	if got := surface.fragments(); !slices.Equal(got, want) {
		t.Errorf("grouped rows = %v, want %v", got, want)
	}
	listing := reconciler.Listing()
	if listing.Len() != 4 {
		t.Errorf("selectable rows = %d, want 4", listing.Len())
	}
	if row, _ := listing.At(1); row.ChoiceID != 3 {
		t.Errorf("second selectable row should be Fig, got %+v", row)
	}

	searched := reduce(t, state, store.FilterChoices{Matches: []store.Match{{ChoiceID: 2, Score: 0.2}}})
	reconciler.Render(searched, Pass{Ordering: RelevanceScore})
	if got := surface.fragments(); !slices.Equal(got, []string{"Pear"}) {
		t.Errorf("search results should be flat, got %v", got)
	}
}

func TestRenderHidesSelectedChoicesOnMultiSelect(t *testing.T) {
	reconciler, surface := newTestReconciler(t, config.ModeSelectMultiple)
	state := reduce(t, fruitState(t), store.AddItem{ID: 1, Value: "apple", ChoiceID: 2, GroupID: store.NoGroup})

	reconciler.Render(state, defaultPass)
	if got := surface.fragments(); !slices.Equal(got, []string{"Banana", "Grape"}) {
		t.Errorf("rows = %v", got)
	}
	if got := surface.host.Options; !slices.Equal(got, []Fragment{"option:apple"}) {
		t.Errorf("host options = %v", got)
	}
}

func TestRenderKeepsSelectedChoicesOnSelectOne(t *testing.T) {
	reconciler, surface := newTestReconciler(t, config.ModeSelectOne)
	state := reduce(t, fruitState(t), store.AddItem{ID: 1, Value: "apple", ChoiceID: 2, GroupID: store.NoGroup})

	reconciler.Render(state, defaultPass)
	if got := surface.fragments(); !slices.Equal(got, []string{"Apple", "Banana", "Grape"}) {
		t.Errorf("rows = %v", got)
	}
}

func TestRenderNotices(t *testing.T) {
	reconciler, surface := newTestReconciler(t, config.ModeSelectOne)
	reconciler.Render(store.NewState(), defaultPass)
	if got := surface.fragments(); !slices.Equal(got, []string{"notice:No choices to choose from"}) {
		t.Errorf("empty store rows = %v", got)
	}
	if !reconciler.Listing().IsNotice() || reconciler.Listing().Len() != 0 {
		t.Error("a notice listing has nothing selectable")
	}

	searched := reduce(t, fruitState(t), store.FilterChoices{})
	reconciler.Render(searched, Pass{Ordering: RelevanceScore, NoResultsText: "No results found"})
	if got := surface.fragments(); !slices.Equal(got, []string{"notice:No results found"}) {
		t.Errorf("empty search rows = %v", got)
	}
}

func TestRenderHighlightsFirstSelectableByDefault(t *testing.T) {
	reconciler, surface := newTestReconciler(t, config.ModeSelectMultiple)
	state := reduce(t, store.NewState(),
		store.AddChoice{ID: 1, Value: "a", Label: "A", GroupID: store.NoGroup, Disabled: true},
		store.AddChoice{ID: 2, Value: "b", Label: "B", GroupID: store.NoGroup},
		store.AddChoice{ID: 3, Value: "c", Label: "C", GroupID: store.NoGroup},
	)

	outcome := reconciler.Render(state, defaultPass)
	if outcome.Highlighted != 0 || surface.highlighted != 1 {
		t.Errorf("highlight = position %d row %d, want position 0 row 1", outcome.Highlighted, surface.highlighted)
	}
}

func TestRenderClampsRememberedHighlight(t *testing.T) {
	reconciler, surface := newTestReconciler(t, config.ModeSelectMultiple)
	pass := defaultPass
	pass.Highlight = 7

	outcome := reconciler.Render(fruitState(t), pass)
	if outcome.Highlighted != 2 || surface.highlighted != 2 {
		t.Errorf("highlight = %d, want the last row", outcome.Highlighted)
	}
}

func TestRenderPlaceholderOnEmptySelectOne(t *testing.T) {
	reconciler, surface := newTestReconciler(t, config.ModeSelectOne)
	pass := defaultPass
	pass.PlaceholderText = "Loading..."

	reconciler.Render(store.NewState(), pass)
	if !slices.Equal(surface.items, []Fragment{"placeholder:Loading..."}) {
		t.Errorf("items = %v", surface.items)
	}
}

func TestRenderTextHostValueUsesDelimiter(t *testing.T) {
	reconciler, surface := newTestReconciler(t, config.ModeText)
	state := reduce(t, store.NewState(),
		store.AddItem{ID: 1, Value: "a", ChoiceID: store.NoChoice, GroupID: store.NoGroup},
		store.AddItem{ID: 2, Value: "b", ChoiceID: store.NoChoice, GroupID: store.NoGroup},
		store.AddItem{ID: 3, Value: "c", ChoiceID: store.NoChoice, GroupID: store.NoGroup},
		store.RemoveItem{ID: 2, ChoiceID: store.NoChoice},
	)

	reconciler.Render(state, defaultPass)
	if surface.host.Text != "a,c" {
		t.Errorf("host text = %q, want a,c", surface.host.Text)
	}
	if !slices.Equal(surface.items, []Fragment{"item:a", "item:c"}) {
		t.Errorf("items = %v", surface.items)
	}
}

func TestInvalidateForcesFullRebuild(t *testing.T) {
	reconciler, surface := newTestReconciler(t, config.ModeSelectOne)
	state := fruitState(t)
	reconciler.Render(state, defaultPass)

	reconciler.Invalidate()
	outcome := reconciler.Render(state, defaultPass)
	if !outcome.ChoicesRebuilt || !outcome.ItemsRebuilt {
		t.Errorf("invalidated render should rebuild both regions, got %+v", outcome)
	}
	if surface.choiceRebuilds != 2 {
		t.Errorf("choice rebuilds = %d, want 2", surface.choiceRebuilds)
	}
}

func TestNoticeReplacesChoiceRegion(t *testing.T) {
	reconciler, surface := newTestReconciler(t, config.ModeText)
	reconciler.Notice(`Press Enter to add "ap"`)
	if got := surface.fragments(); !slices.Equal(got, []string{`notice:Press Enter to add "ap"`}) {
		t.Errorf("rows = %v", got)
	}
}

func TestShouldFlip(t *testing.T) {
	tests := []struct {
		position       config.Position
		bottom, height int
		want           bool
	}{
		{config.PositionTop, 1, 100, true},
		{config.PositionBottom, 500, 100, false},
		{config.PositionAuto, 50, 100, false},
		{config.PositionAuto, 100, 100, true},
		{config.PositionAuto, 150, 100, true},
	}
	for _, test := range tests {
		if got := ShouldFlip(test.position, test.bottom, test.height); got != test.want {
			t.Errorf("ShouldFlip(%s, %d, %d) = %v, want %v", test.position, test.bottom, test.height, got, test.want)
		}
	}
}
