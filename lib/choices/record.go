// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package choices

import (
	"fmt"

	"github.com/bureau-foundation/choices/lib/config"
)

// Record describes a choice to add, or a group of choices when Choices
// is non-empty. A group's heading is its Label, falling back to Value.
type Record struct {
	Value    string   `yaml:"value" json:"value"`
	Label    string   `yaml:"label,omitempty" json:"label,omitempty"`
	Selected bool     `yaml:"selected,omitempty" json:"selected,omitempty"`
	Disabled bool     `yaml:"disabled,omitempty" json:"disabled,omitempty"`
	Choices  []Record `yaml:"choices,omitempty" json:"choices,omitempty"`
}

func (record Record) isGroup() bool {
	return len(record.Choices) > 0
}

func (record Record) heading() string {
	if record.Label != "" {
		return record.Label
	}
	return record.Value
}

// LoadRecords reads a list of records from a YAML or JSONC file. A
// choice without a value, or a group without a heading, is rejected.
func LoadRecords(path string) ([]Record, error) {
	var records []Record
	if err := config.DecodeFile(path, &records); err != nil {
		return nil, err
	}
	if err := validateRecords(records, ""); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

func validateRecords(records []Record, prefix string) error {
	for index, record := range records {
		location := fmt.Sprintf("%s[%d]", prefix, index)
		if record.isGroup() {
			if record.heading() == "" {
				return fmt.Errorf("%w: %s: group has no label", config.ErrInvalid, location)
			}
			if err := validateRecords(record.Choices, location+".choices"); err != nil {
				return err
			}
			continue
		}
		if record.Value == "" {
			return fmt.Errorf("%w: %s: choice has no value", config.ErrInvalid, location)
		}
	}
	return nil
}
