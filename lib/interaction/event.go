// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package interaction

import "github.com/bureau-foundation/choices/lib/store"

// EventKind is the kind of raw input event.
type EventKind int

const (
	EventKeyDown EventKind = iota
	EventKeyUp
	EventMouseDown
	EventClick
	EventMouseOver
	EventTouchMove
	EventTouchEnd
	EventFocus
	EventBlur
	EventPaste
)

func (kind EventKind) String() string {
	switch kind {
	case EventKeyDown:
		return "keydown"
	case EventKeyUp:
		return "keyup"
	case EventMouseDown:
		return "mousedown"
	case EventClick:
		return "click"
	case EventMouseOver:
		return "mouseover"
	case EventTouchMove:
		return "touchmove"
	case EventTouchEnd:
		return "touchend"
	case EventFocus:
		return "focus"
	case EventBlur:
		return "blur"
	case EventPaste:
		return "paste"
	default:
		return "unknown"
	}
}

// Key identifies the key of a keyboard event.
type Key int

const (
	// KeyOther is any key without a binding.
	KeyOther Key = iota
	// KeyRune is a printable character; see [Event].Rune.
	KeyRune
	KeyEnter
	KeyEscape
	KeyArrowUp
	KeyArrowDown
	KeyPageUp
	KeyPageDown
	KeyBackspace
	KeyDelete
)

// TargetKind says which part of the widget an event landed on.
type TargetKind int

const (
	// TargetOutside is anything that is not part of the widget.
	TargetOutside TargetKind = iota
	// TargetInput is the text input.
	TargetInput
	// TargetOuter is the outer container.
	TargetOuter
	// TargetInner is the inner wrapper around the item list and input.
	TargetInner
	// TargetItem is an item in the item list; see Target.ItemID.
	TargetItem
	// TargetRemoveButton is an item's remove control; see
	// Target.ItemID.
	TargetRemoveButton
	// TargetChoice is a choice row in the dropdown; see
	// Target.ChoiceID.
	TargetChoice
	// TargetDropdown is any other part of the dropdown.
	TargetDropdown
)

// Target is where an event landed.
type Target struct {
	Kind     TargetKind
	ItemID   store.ItemID
	ChoiceID store.ChoiceID
}

// Inside reports whether the target is part of the widget.
func (target Target) Inside() bool {
	return target.Kind != TargetOutside
}

// InDropdown reports whether the target is inside the dropdown.
func (target Target) InDropdown() bool {
	return target.Kind == TargetChoice || target.Kind == TargetDropdown
}

// Event is one raw input event.
type Event struct {
	Kind   EventKind
	Target Target

	// Key and Rune describe keyboard events. Rune is set for KeyRune.
	Key  Key
	Rune rune

	// Ctrl is the command modifier (Ctrl or Cmd). Jump is the modifier
	// that turns an arrow key into a move to the first or last choice.
	// Shift extends item highlighting on mouse-down.
	Ctrl  bool
	Jump  bool
	Shift bool

	// InputValue is the text input's value when the event fired: before
	// the keystroke for key-down, after it for key-up.
	InputValue string
}
