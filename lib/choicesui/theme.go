// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package choicesui

import "github.com/charmbracelet/lipgloss"

// Theme is the colour palette of the picker. Colours are ANSI 256-colour
// codes.
type Theme struct {
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Items in the control line.
	ItemForeground            lipgloss.Color
	ItemBackground            lipgloss.Color
	HighlightedItemBackground lipgloss.Color

	// The highlighted dropdown row.
	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	GroupHeading lipgloss.Color
	NoticeText   lipgloss.Color
	HelpText     lipgloss.Color
	WarningText  lipgloss.Color
	ErrorText    lipgloss.Color
}

// DefaultTheme suits a dark 256-colour terminal.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	ItemForeground:            lipgloss.Color("255"),
	ItemBackground:            lipgloss.Color("24"),
	HighlightedItemBackground: lipgloss.Color("130"),

	SelectedBackground: lipgloss.Color("236"),
	SelectedForeground: lipgloss.Color("255"),

	GroupHeading: lipgloss.Color("141"),
	NoticeText:   lipgloss.Color("245"),
	HelpText:     lipgloss.Color("241"),
	WarningText:  lipgloss.Color("220"),
	ErrorText:    lipgloss.Color("196"),
}
