// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestDefault(t *testing.T) {
	options := Default()

	if options.MaxItemCount != -1 {
		t.Errorf("expected max_item_count=-1, got %d", options.MaxItemCount)
	}
	if !options.AddItems || !options.RemoveItems || !options.DuplicateItems {
		t.Error("expected add_items, remove_items, and duplicate_items to default to true")
	}
	if options.EditItems || options.RemoveItemButton {
		t.Error("expected edit_items and remove_item_button to default to false")
	}
	if options.Delimiter != "," {
		t.Errorf("expected delimiter=\",\", got %q", options.Delimiter)
	}
	if options.SearchFloor != 1 {
		t.Errorf("expected search_floor=1, got %d", options.SearchFloor)
	}
	if options.Position != PositionAuto {
		t.Errorf("expected position=auto, got %s", options.Position)
	}
	if got := options.AddItemText.Resolve("ap"); got != `Press Enter to add "ap"` {
		t.Errorf("AddItemText = %q", got)
	}
	if got := options.MaxItemText.Resolve("3"); got != "Only 3 values can be added." {
		t.Errorf("MaxItemText = %q", got)
	}
	if got := options.NoChoicesText.String(); got != "No choices to choose from" {
		t.Errorf("NoChoicesText = %q", got)
	}
	if err := options.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad_RequiresChoicesConfig(t *testing.T) {
	t.Setenv("CHOICES_CONFIG", "")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error when CHOICES_CONFIG not set, got nil")
	}
	if !strings.HasPrefix(err.Error(), "CHOICES_CONFIG environment variable not set") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoad_WithChoicesConfig(t *testing.T) {
	path := writeFile(t, "choices.yaml", `
mode: text
max_item_count: 5
duplicate_items: false
no_results_text: Nothing matches
`)
	t.Setenv("CHOICES_CONFIG", path)

	options, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if options.Mode != ModeText {
		t.Errorf("expected mode=text, got %s", options.Mode)
	}
	if options.MaxItemCount != 5 {
		t.Errorf("expected max_item_count=5, got %d", options.MaxItemCount)
	}
	if options.DuplicateItems {
		t.Error("expected duplicate_items=false")
	}
	if got := options.NoResultsText.String(); got != "Nothing matches" {
		t.Errorf("expected overridden no_results_text, got %q", got)
	}
	// Untouched fields keep their defaults.
	if options.Delimiter != "," || !options.ShouldSort {
		t.Error("fields absent from the file should keep defaults")
	}
	if got := options.AddItemText.Resolve("x"); got != `Press Enter to add "x"` {
		t.Errorf("AddItemText default lost: %q", got)
	}
}

func TestLoadFile_JSONC(t *testing.T) {
	path := writeFile(t, "choices.jsonc", `{
  // Tag input with a custom separator.
  "mode": "text",
  "delimiter": ";",
  "search_options": {"threshold": 0.3,},
  "sort_fields": ["value"],
}`)

	options, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() failed: %v", err)
	}
	if options.Delimiter != ";" {
		t.Errorf("expected delimiter=;, got %q", options.Delimiter)
	}
	if options.SearchOptions.Threshold != 0.3 {
		t.Errorf("expected threshold=0.3, got %v", options.SearchOptions.Threshold)
	}
	if len(options.SortFields) != 1 || options.SortFields[0] != "value" {
		t.Errorf("expected sort_fields=[value], got %v", options.SortFields)
	}
}

func TestLoadFile_UnsupportedExtension(t *testing.T) {
	path := writeFile(t, "choices.toml", "mode = 'text'")
	_, err := LoadFile(path)
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected a not-exist error, got %v", err)
	}
}

func TestLoadFile_RejectsInvalid(t *testing.T) {
	path := writeFile(t, "choices.yaml", "search_floor: -1\n")
	_, err := LoadFile(path)
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
	if !strings.Contains(err.Error(), "search_floor") {
		t.Errorf("error should name the field: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Options)
		field  string
	}{
		{"mode", func(options *Options) { options.Mode = "radio" }, "mode"},
		{"max item count zero", func(options *Options) { options.MaxItemCount = 0 }, "max_item_count"},
		{"empty delimiter", func(options *Options) { options.Delimiter = "" }, "delimiter"},
		{"negative floor", func(options *Options) { options.SearchFloor = -2 }, "search_floor"},
		{"threshold", func(options *Options) { options.SearchOptions.Threshold = 1.5 }, "threshold"},
		{"position", func(options *Options) { options.Position = "left" }, "position"},
		{"regex", func(options *Options) { options.RegexFilter = "([a-z" }, "regex_filter"},
		{"sort field", func(options *Options) { options.SortFields = []string{"colour"} }, "sort_fields"},
		{"search field", func(options *Options) { options.SearchFields = []string{"id"} }, "search_fields"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			options := Default()
			test.modify(options)
			err := options.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("expected ErrInvalid, got %v", err)
			}
			if !strings.Contains(err.Error(), test.field) {
				t.Errorf("error should mention %s: %v", test.field, err)
			}
		})
	}
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	options := Default()
	options.Delimiter = ""
	options.Position = "sideways"
	err := options.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "delimiter") || !strings.Contains(err.Error(), "position") {
		t.Errorf("both problems should be reported: %v", err)
	}
}

func TestRegexFilterPattern(t *testing.T) {
	options := Default()
	pattern, err := options.RegexFilterPattern()
	if err != nil || pattern != nil {
		t.Fatalf("no filter configured: got %v, %v", pattern, err)
	}

	options.RegexFilter = `^[a-z]+@example\.com$`
	pattern, err = options.RegexFilterPattern()
	if err != nil {
		t.Fatalf("RegexFilterPattern: %v", err)
	}
	if !pattern.MatchString("ada@example.com") || pattern.MatchString("ada@example.org") {
		t.Error("compiled filter does not match as configured")
	}
}

func TestPlaceholderText(t *testing.T) {
	options := Default()
	options.PlaceholderValue = "Pick a fruit"
	if got := options.PlaceholderText(); got != "Pick a fruit" {
		t.Errorf("PlaceholderText = %q", got)
	}
	options.Placeholder = false
	if got := options.PlaceholderText(); got != "" {
		t.Errorf("disabled placeholder should be empty, got %q", got)
	}
}
