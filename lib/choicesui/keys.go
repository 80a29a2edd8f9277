// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package choicesui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the picker's key bindings. Keys that are not bound
// here are typed into the text input.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	First    key.Binding // Jump to the first choice.
	Last     key.Binding // Jump to the last choice.

	Select    key.Binding // Add the typed value or the highlighted choice.
	Close     key.Binding // Close the dropdown.
	Backspace key.Binding
	Delete    key.Binding
	SelectAll key.Binding // Highlight every item for removal.

	Done  key.Binding // Accept the current value and exit.
	Abort key.Binding // Exit without a value.
}

// DefaultKeyMap is the built-in binding set.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "ctrl+p"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "ctrl+n"),
		key.WithHelp("↓", "down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("PgUp", "first"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("PgDn", "last"),
	),
	First: key.NewBinding(
		key.WithKeys("ctrl+home"),
		key.WithHelp("C-Home", "first"),
	),
	Last: key.NewBinding(
		key.WithKeys("ctrl+end"),
		key.WithHelp("C-End", "last"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "select"),
	),
	Close: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "close"),
	),
	Backspace: key.NewBinding(
		key.WithKeys("backspace"),
		key.WithHelp("BS", "remove"),
	),
	Delete: key.NewBinding(
		key.WithKeys("delete"),
		key.WithHelp("Del", "remove"),
	),
	SelectAll: key.NewBinding(
		key.WithKeys("ctrl+a"),
		key.WithHelp("C-a", "select all"),
	),
	Done: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("Tab", "done"),
	),
	Abort: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("C-c", "abort"),
	),
}

// ShortHelp returns the bindings shown in the status line.
func (keys KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{keys.Up, keys.Down, keys.Select, keys.Close, keys.Done, keys.Abort}
}
