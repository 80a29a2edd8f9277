// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package choices

import (
	"slices"
	"testing"

	"github.com/bureau-foundation/choices/lib/config"
	"github.com/bureau-foundation/choices/lib/interaction"
	"github.com/bureau-foundation/choices/lib/render"
	"github.com/bureau-foundation/choices/lib/store"
)

// fakeSurface records the latest contents of every region.
type fakeSurface struct {
	choices      []render.Row
	items        []render.Fragment
	host         render.Host
	highlighted  int
	open         bool
	focused      bool
	inputFocused bool
	input        string
	inputs       []string
	scrolls      []int
	resets       int
	disabled     bool
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{highlighted: -1}
}

func (surface *fakeSurface) ReplaceChoices(rows []render.Row) { surface.choices = rows }
func (surface *fakeSurface) ReplaceItems(items []render.Fragment, host render.Host) {
	surface.items = items
	surface.host = host
}
func (surface *fakeSurface) HighlightChoice(row int)      { surface.highlighted = row }
func (surface *fakeSurface) ResetScroll()                 { surface.resets++ }
func (surface *fakeSurface) SetDropdownOpen(open bool)    { surface.open = open }
func (surface *fakeSurface) SetFocused(focused bool)      { surface.focused = focused }
func (surface *fakeSurface) SetInputFocused(focused bool) { surface.inputFocused = focused }
func (surface *fakeSurface) ScrollTo(row, direction int) {
	surface.scrolls = append(surface.scrolls, row)
}
func (surface *fakeSurface) SetDisabled(disabled bool) { surface.disabled = disabled }
func (surface *fakeSurface) SetInput(value string) {
	surface.input = value
	surface.inputs = append(surface.inputs, value)
}

// choiceTexts returns the fragment of every choice-region row.
func (surface *fakeSurface) choiceTexts() []string {
	texts := make([]string, len(surface.choices))
	for index, row := range surface.choices {
		texts[index] = string(row.Fragment)
	}
	return texts
}

func (surface *fakeSurface) itemTexts() []string {
	texts := make([]string, len(surface.items))
	for index, fragment := range surface.items {
		texts[index] = string(fragment)
	}
	return texts
}

func plainTemplates() render.Templates {
	return render.Templates{
		Item:        func(item store.Item) render.Fragment { return render.Fragment(item.Value) },
		Choice:      func(choice store.Choice) render.Fragment { return render.Fragment(choice.Label) },
		ChoiceGroup: func(group store.Group) render.Fragment { return render.Fragment("[" + group.Value + "]") },
		Notice:      func(text string) render.Fragment { return render.Fragment(text) },
		Placeholder: func(text string) render.Fragment { return render.Fragment("(" + text + ")") },
		Option:      func(item store.Item) render.Fragment { return render.Fragment(item.Value) },
	}
}

type notification struct {
	name   interaction.Notification
	detail interaction.Detail
}

// newTestWidget builds a widget over a fake surface and records its
// notifications.
func newTestWidget(t *testing.T, cfg Config, modify func(*config.Options)) (*Widget, *fakeSurface, *[]notification) {
	t.Helper()
	if cfg.Options == nil {
		cfg.Options = config.Default()
	}
	if modify != nil {
		modify(cfg.Options)
	}
	surface := newFakeSurface()
	cfg.Surface = surface
	if cfg.Templates.Item == nil {
		cfg.Templates = plainTemplates()
	}
	cfg.Strict = true

	widget, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var received []notification
	widget.On(func(name interaction.Notification, detail interaction.Detail) {
		received = append(received, notification{name: name, detail: detail})
	})
	return widget, surface, &received
}

func fruitRecords() []Record {
	return []Record{{Value: "Apple"}, {Value: "Banana"}, {Value: "Grape"}}
}

func named(received []notification, name interaction.Notification) []interaction.Detail {
	var details []interaction.Detail
	for _, note := range received {
		if note.name == name {
			details = append(details, note.detail)
		}
	}
	return details
}

func inputEvent(kind interaction.EventKind, key interaction.Key, value string) interaction.Event {
	return interaction.Event{
		Kind:       kind,
		Key:        key,
		Target:     interaction.Target{Kind: interaction.TargetInput},
		InputValue: value,
	}
}

func assertStrings(t *testing.T, label string, got, want []string) {
	t.Helper()
	if !slices.Equal(got, want) {
		t.Errorf("%s = %q, want %q", label, got, want)
	}
}
