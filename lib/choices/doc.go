// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package choices assembles a selection widget from its parts: the
// entity store, the render reconciler, and the interaction controller.
//
// A [Widget] owns one store and re-renders after every dispatch. Input
// events from a [Surface] adapter go through [Widget.HandleEvent],
// which runs the controller and applies the resulting effects in
// order: store dispatches, dropdown and focus changes, notices,
// highlight movement, scrolling, and named notifications delivered to
// [Listener] callbacks.
//
// The programmatic API mirrors what a host page can do to the widget:
// read and set values, replace the choice list, remove or highlight
// items, clear, enable, disable, and populate asynchronously with
// [Widget.Ajax]. Choice lists can be loaded from YAML or JSONC files
// with [LoadRecords].
package choices
