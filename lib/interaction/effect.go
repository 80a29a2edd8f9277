// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package interaction

import "github.com/bureau-foundation/choices/lib/store"

// Effect is an instruction produced by the controller. The concrete
// types below are the complete set.
type Effect interface {
	effect()
}

// Dispatch sends an action to the store.
type Dispatch struct {
	Action store.Action
}

// ShowDropdown opens the dropdown, moving focus into the input when
// FocusInput is set and the widget is searchable.
type ShowDropdown struct {
	FocusInput bool
}

// HideDropdown closes the dropdown, taking focus out of the input
// when BlurInput is set and the widget is searchable.
type HideDropdown struct {
	BlurInput bool
}

// FocusContainer applies the widget's focused presentation.
type FocusContainer struct{}

// BlurContainer removes the widget's focused presentation.
type BlurContainer struct{}

// FocusInput moves keyboard focus into the text input.
type FocusInput struct{}

// SetInput replaces the text input's value.
type SetInput struct {
	Value string
}

// ClearInput empties the text input.
type ClearInput struct{}

// ShowNotice replaces the dropdown contents with a message.
type ShowNotice struct {
	Text string
}

// HighlightChoice moves the choice highlight to a position in the
// current [render.Listing].
type HighlightChoice struct {
	Position int
}

// ScrollTo brings a row of the choice region into view. Direction is
// 1 when the row is below the visible window and -1 when above.
type ScrollTo struct {
	Row       int
	Direction int
}

// Notify emits a named notification to the widget's listeners.
type Notify struct {
	Name   Notification
	Detail Detail
}

// PreventDefault suppresses the platform's default handling of the
// event (caret movement, form submission, paste).
type PreventDefault struct{}

// StopPropagation keeps the event from reaching other handlers, such
// as the synthetic focus that follows a tap.
type StopPropagation struct{}

func (Dispatch) effect()        {}
func (ShowDropdown) effect()    {}
func (HideDropdown) effect()    {}
func (FocusContainer) effect()  {}
func (BlurContainer) effect()   {}
func (FocusInput) effect()      {}
func (SetInput) effect()        {}
func (ClearInput) effect()      {}
func (ShowNotice) effect()      {}
func (HighlightChoice) effect() {}
func (ScrollTo) effect()        {}
func (Notify) effect()          {}
func (PreventDefault) effect()  {}
func (StopPropagation) effect() {}

// Notification names an event delivered to widget listeners.
type Notification string

const (
	NotifyHighlightItem   Notification = "highlightItem"
	NotifyUnhighlightItem Notification = "unhighlightItem"
	NotifyAddItem         Notification = "addItem"
	NotifyRemoveItem      Notification = "removeItem"
	NotifyShowDropdown    Notification = "showDropdown"
	NotifyHideDropdown    Notification = "hideDropdown"
	NotifySearch          Notification = "search"
	NotifyChange          Notification = "change"
)

// Detail is the payload of a notification. Item notifications carry
// every field, GroupValue only for grouped items; change and search
// carry Value alone; dropdown notifications carry nothing.
type Detail struct {
	ID         store.ItemID
	Value      string
	Label      string
	GroupValue string
}
