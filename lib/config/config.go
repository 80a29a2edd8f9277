// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation and format error.
var ErrInvalid = errors.New("invalid configuration")

// Mode is the kind of surface the widget backs.
type Mode string

const (
	// ModeText is a free-text tag input: items are typed, not chosen.
	ModeText Mode = "text"
	// ModeSelectOne holds at most one item chosen from the dropdown.
	ModeSelectOne Mode = "select-one"
	// ModeSelectMultiple holds any number of items chosen from the
	// dropdown.
	ModeSelectMultiple Mode = "select-multiple"
)

// IsSelect reports whether the surface offers choices in a dropdown.
func (mode Mode) IsSelect() bool {
	return mode == ModeSelectOne || mode == ModeSelectMultiple
}

// Position is the dropdown flip policy.
type Position string

const (
	// PositionAuto flips the dropdown above the control when it would
	// overflow the space below.
	PositionAuto Position = "auto"
	// PositionTop always opens the dropdown above the control.
	PositionTop Position = "top"
	// PositionBottom never flips.
	PositionBottom Position = "bottom"
)

// SearchOptions tunes the fuzzy matcher.
type SearchOptions struct {
	// Threshold is the worst relevance score still shown, in [0, 1].
	// 0 admits only exact matches.
	Threshold float64 `yaml:"threshold" json:"threshold"`

	// CaseSensitive disables case folding.
	CaseSensitive bool `yaml:"case_sensitive" json:"case_sensitive"`
}

// Options is the configuration bundle of one widget.
type Options struct {
	// Mode selects the surface behaviour. Default: select-multiple.
	Mode Mode `yaml:"mode" json:"mode"`

	// MaxItemCount caps the number of items on multi-value surfaces.
	// -1 means unlimited.
	MaxItemCount int `yaml:"max_item_count" json:"max_item_count"`

	// AddItems allows new items to be added at all.
	AddItems bool `yaml:"add_items" json:"add_items"`

	// RemoveItems allows items to be removed with Backspace/Delete.
	RemoveItems bool `yaml:"remove_items" json:"remove_items"`

	// RemoveItemButton renders a remove control on every item.
	RemoveItemButton bool `yaml:"remove_item_button" json:"remove_item_button"`

	// EditItems loads the last item back into the input on Backspace
	// instead of highlighting it.
	EditItems bool `yaml:"edit_items" json:"edit_items"`

	// DuplicateItems allows two active items with the same value.
	DuplicateItems bool `yaml:"duplicate_items" json:"duplicate_items"`

	// Delimiter joins item values into the host value of text
	// surfaces, and splits preset values.
	Delimiter string `yaml:"delimiter" json:"delimiter"`

	// Paste allows pasting into the text input.
	Paste bool `yaml:"paste" json:"paste"`

	// Search enables filtering the dropdown by the typed query.
	Search bool `yaml:"search" json:"search"`

	// SearchFloor is the minimum query length that runs a search.
	SearchFloor int `yaml:"search_floor" json:"search_floor"`

	// SearchFields are the choice fields the query is matched against.
	SearchFields []string `yaml:"search_fields" json:"search_fields"`

	// SearchOptions tunes fuzzy matching.
	SearchOptions SearchOptions `yaml:"search_options" json:"search_options"`

	// Position is the dropdown flip policy.
	Position Position `yaml:"position" json:"position"`

	// ResetScrollPosition scrolls the dropdown back to the top every
	// time its contents are rebuilt.
	ResetScrollPosition bool `yaml:"reset_scroll_position" json:"reset_scroll_position"`

	// RegexFilter, when set, is a pattern every typed value must match
	// before it can be added on a text surface.
	RegexFilter string `yaml:"regex_filter" json:"regex_filter"`

	// ShouldSort orders choices and groups with SortFilter when no
	// search is active.
	ShouldSort bool `yaml:"should_sort" json:"should_sort"`

	// SortFields are the fields the default SortFilter compares, in
	// order.
	SortFields []string `yaml:"sort_fields" json:"sort_fields"`

	// SortFilter overrides the ordering built from SortFields.
	SortFilter SortFilter `yaml:"-" json:"-"`

	// Placeholder enables PlaceholderValue on the input and, for
	// select-one surfaces, in the empty item list.
	Placeholder bool `yaml:"placeholder" json:"placeholder"`

	// PlaceholderValue is the placeholder text.
	PlaceholderValue string `yaml:"placeholder_value" json:"placeholder_value"`

	// PrependValue is prefixed to every added item's value.
	PrependValue string `yaml:"prepend_value" json:"prepend_value"`

	// AppendValue is suffixed to every added item's value.
	AppendValue string `yaml:"append_value" json:"append_value"`

	LoadingText    Message `yaml:"loading_text" json:"loading_text"`
	NoResultsText  Message `yaml:"no_results_text" json:"no_results_text"`
	NoChoicesText  Message `yaml:"no_choices_text" json:"no_choices_text"`
	ItemSelectText Message `yaml:"item_select_text" json:"item_select_text"`

	// AddItemText is formatted with the value about to be added.
	AddItemText Message `yaml:"add_item_text" json:"add_item_text"`

	// MaxItemText is formatted with MaxItemCount.
	MaxItemText Message `yaml:"max_item_text" json:"max_item_text"`

	// UniqueItemText is formatted with the rejected value.
	UniqueItemText Message `yaml:"unique_item_text" json:"unique_item_text"`
}

// Default returns the stock option bundle.
func Default() *Options {
	return &Options{
		Mode:                ModeSelectMultiple,
		MaxItemCount:        -1,
		AddItems:            true,
		RemoveItems:         true,
		RemoveItemButton:    false,
		EditItems:           false,
		DuplicateItems:      true,
		Delimiter:           ",",
		Paste:               true,
		Search:              true,
		SearchFloor:         1,
		SearchFields:        []string{"label", "value"},
		SearchOptions:       SearchOptions{Threshold: 0.6},
		Position:            PositionAuto,
		ResetScrollPosition: true,
		ShouldSort:          true,
		SortFields:          []string{"label", "value"},
		Placeholder:         true,
		LoadingText:         Text("Loading..."),
		NoResultsText:       Text("No results found"),
		NoChoicesText:       Text("No choices to choose from"),
		ItemSelectText:      Text("Press to select"),
		AddItemText: Func(func(value string) string {
			return fmt.Sprintf("Press Enter to add %q", value)
		}),
		MaxItemText: Func(func(count string) string {
			return fmt.Sprintf("Only %s values can be added.", count)
		}),
		UniqueItemText: Text("Only unique values can be added."),
	}
}

// Load loads options from the CHOICES_CONFIG environment variable.
//
// There is no discovery: if CHOICES_CONFIG is not set, this fails.
func Load() (*Options, error) {
	configPath := os.Getenv("CHOICES_CONFIG")
	if configPath == "" {
		return nil, fmt.Errorf("CHOICES_CONFIG environment variable not set; " +
			"set it to the path of your options file, or use --config flag")
	}

	return LoadFile(configPath)
}

// LoadFile loads options from a specific file path over [Default] and
// validates the result.
func LoadFile(path string) (*Options, error) {
	options := Default()

	if err := DecodeFile(path, options); err != nil {
		return nil, err
	}

	if err := options.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return options, nil
}

// DecodeFile reads path and decodes it into target, choosing the
// format by extension: YAML for .yaml and .yml, JSONC for .json and
// .jsonc.
func DecodeFile(path string, target any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	switch extension := strings.ToLower(filepath.Ext(path)); extension {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, target); err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
	case ".json", ".jsonc":
		stripped := jsonc.ToJSON(data)
		if err := json.Unmarshal(stripped, target); err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
	default:
		return fmt.Errorf("%w: %s: unsupported extension %q (want .yaml, .yml, .json, or .jsonc)",
			ErrInvalid, path, extension)
	}
	return nil
}

// Validate checks the options for errors. Every problem is reported,
// joined, and wraps [ErrInvalid].
func (options *Options) Validate() error {
	var errs []error

	switch options.Mode {
	case ModeText, ModeSelectOne, ModeSelectMultiple:
	default:
		errs = append(errs, fmt.Errorf("mode must be one of: %v", []Mode{ModeText, ModeSelectOne, ModeSelectMultiple}))
	}

	if options.MaxItemCount < -1 || options.MaxItemCount == 0 {
		errs = append(errs, fmt.Errorf("max_item_count must be -1 (unlimited) or positive, got %d", options.MaxItemCount))
	}

	if options.Delimiter == "" {
		errs = append(errs, fmt.Errorf("delimiter is required"))
	}

	if options.SearchFloor < 0 {
		errs = append(errs, fmt.Errorf("search_floor must not be negative, got %d", options.SearchFloor))
	}

	if threshold := options.SearchOptions.Threshold; threshold < 0 || threshold > 1 {
		errs = append(errs, fmt.Errorf("search_options.threshold must be within [0, 1], got %v", threshold))
	}

	switch options.Position {
	case PositionAuto, PositionTop, PositionBottom:
	default:
		errs = append(errs, fmt.Errorf("position must be one of: %v", []Position{PositionAuto, PositionTop, PositionBottom}))
	}

	if options.RegexFilter != "" {
		if _, err := regexp.Compile(options.RegexFilter); err != nil {
			errs = append(errs, fmt.Errorf("regex_filter: %w", err))
		}
	}

	for _, field := range options.SortFields {
		if !knownField(field) {
			errs = append(errs, fmt.Errorf("sort_fields: unknown field %q", field))
		}
	}
	for _, field := range options.SearchFields {
		if !knownField(field) {
			errs = append(errs, fmt.Errorf("search_fields: unknown field %q", field))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}

// Comparator returns SortFilter when set, and otherwise the ordering
// built from SortFields.
func (options *Options) Comparator() SortFilter {
	if options.SortFilter != nil {
		return options.SortFilter
	}
	return SortByFields(options.SortFields)
}

// RegexFilterPattern compiles RegexFilter to match case-insensitively.
// It returns nil when no filter is configured.
func (options *Options) RegexFilterPattern() (*regexp.Regexp, error) {
	if options.RegexFilter == "" {
		return nil, nil
	}
	pattern, err := regexp.Compile("(?i)" + options.RegexFilter)
	if err != nil {
		return nil, fmt.Errorf("%w: regex_filter: %w", ErrInvalid, err)
	}
	return pattern, nil
}

// PlaceholderText returns the placeholder to show, or "" when
// placeholders are disabled.
func (options *Options) PlaceholderText() string {
	if !options.Placeholder {
		return ""
	}
	return options.PlaceholderValue
}

func knownField(field string) bool {
	return field == "label" || field == "value"
}
