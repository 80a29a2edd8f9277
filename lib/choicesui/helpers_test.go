// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package choicesui

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/bureau-foundation/choices/lib/choices"
	"github.com/bureau-foundation/choices/lib/config"
)

// plainRenderer renders without escape sequences.
func plainRenderer() *lipgloss.Renderer {
	renderer := lipgloss.NewRenderer(io.Discard)
	renderer.SetColorProfile(termenv.Ascii)
	return renderer
}

func newTestModel(t *testing.T, mode config.Mode, records []choices.Record) Model {
	t.Helper()
	options := config.Default()
	options.Mode = mode
	model, err := NewModel(Config{
		Options:  options,
		Choices:  records,
		Renderer: plainRenderer(),
	})
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	return send(t, model, tea.WindowSizeMsg{Width: 80, Height: 24})
}

func send(t *testing.T, model Model, message tea.Msg) Model {
	t.Helper()
	updated, _ := model.Update(message)
	next, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", updated)
	}
	return next
}

func typeText(t *testing.T, model Model, text string) Model {
	t.Helper()
	for _, r := range text {
		model = send(t, model, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return model
}

func fruits() []choices.Record {
	return []choices.Record{
		{Value: "apple", Label: "Apple"},
		{Value: "banana", Label: "Banana"},
		{Value: "cherry", Label: "Cherry"},
	}
}
