// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package choicesui is a terminal front end for a [choices.Widget],
// built on bubbletea.
//
// [Model] is the bubbletea model. It translates key and mouse messages
// into widget events, feeding the text input's value before and after
// each keystroke the way a browser reports key-down and key-up, and
// draws the control line, the dropdown, and a status line. [Surface]
// is the widget's presentation: it keeps the latest rendered regions,
// owns the bubbles text input, and runs the smooth-scroll animation on
// tick messages. [NewTemplates] renders records with lipgloss styles
// from a [Theme].
//
// Log records at or above a chosen level can be routed into the
// running program with [LogHandler], where they replace the help text
// in the status line until they fade.
package choicesui
