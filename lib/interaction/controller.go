// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package interaction

import (
	"log/slog"
	"regexp"
	"strings"
	"unicode"

	"github.com/bureau-foundation/choices/lib/config"
	"github.com/bureau-foundation/choices/lib/search"
	"github.com/bureau-foundation/choices/lib/store"
)

// Controller is the interaction state machine of one widget. It holds
// configuration only; all mutable state travels through [State].
type Controller struct {
	options     config.Options
	index       *search.Index
	gate        search.Gate
	regexFilter *regexp.Regexp
	logger      *slog.Logger
}

// NewController builds a controller for options. The regular
// expression filter, when configured, matches case-insensitively. A
// nil logger discards.
func NewController(options *config.Options, logger *slog.Logger) (*Controller, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	controller := &Controller{
		options: *options,
		index: search.NewIndex(search.Options{
			Threshold:     options.SearchOptions.Threshold,
			CaseSensitive: options.SearchOptions.CaseSensitive,
		}),
		gate:   search.Gate{Floor: options.SearchFloor},
		logger: logger,
	}
	pattern, err := options.RegexFilterPattern()
	if err != nil {
		return nil, err
	}
	controller.regexFilter = pattern
	return controller, nil
}

// InitialState is the state of a widget that has received no events.
func (controller *Controller) InitialState() State {
	return State{
		CanSearch: controller.options.Search,
		WasTap:    true,
	}
}

// Handle applies one event. It returns the next state and the effects
// to apply, in order. A disabled widget ignores every event.
func (controller *Controller) Handle(state State, event Event, view View) (State, []Effect) {
	if state.Disabled {
		return state, nil
	}
	transition := &transition{controller: controller, state: state, view: view}

	switch event.Kind {
	case EventKeyDown:
		transition.keyDown(event)
	case EventKeyUp:
		transition.keyUp(event)
	case EventMouseDown:
		transition.mouseDown(event)
	case EventClick:
		transition.click(event)
	case EventMouseOver:
		transition.mouseOver(event)
	case EventTouchMove:
		transition.state.WasTap = false
	case EventTouchEnd:
		transition.touchEnd(event)
	case EventFocus:
		transition.focus(event)
	case EventBlur:
		transition.blur(event)
	case EventPaste:
		if event.Target.Kind == TargetInput && !controller.options.Paste {
			transition.emit(PreventDefault{})
		}
	}

	return transition.state, transition.effects
}

// transition accumulates the result of handling one event.
type transition struct {
	controller *Controller
	state      State
	view       View
	effects    []Effect
}

func (transition *transition) emit(effects ...Effect) {
	transition.effects = append(transition.effects, effects...)
}

func (transition *transition) mode() config.Mode {
	return transition.controller.options.Mode
}

func (transition *transition) showDropdown(focusInput bool) {
	transition.state.DropdownActive = true
	transition.emit(
		ShowDropdown{FocusInput: focusInput},
		Notify{Name: NotifyShowDropdown},
	)
}

func (transition *transition) hideDropdown(blurInput bool) {
	transition.state.DropdownActive = false
	transition.emit(
		HideDropdown{BlurInput: blurInput},
		Notify{Name: NotifyHideDropdown},
	)
}

func (transition *transition) focusContainer() {
	transition.state.Focused = true
	transition.emit(FocusContainer{})
}

func (transition *transition) blurContainer() {
	transition.state.Focused = false
	transition.emit(BlurContainer{})
}

func (transition *transition) focusInput() {
	transition.state.InputFocused = true
	transition.emit(FocusInput{})
}

func (transition *transition) resetSearch() {
	state, effects := transition.controller.ResetSearch(transition.state)
	transition.state = state
	transition.emit(effects...)
}

// highlightedChoice returns the choice the highlight currently rests
// on, if the dropdown shows any selectable choice.
func (transition *transition) highlightedChoice() (store.ChoiceID, bool) {
	listing := transition.view.Listing
	row, ok := listing.At(listing.Clamp(transition.state.HighlightPosition))
	if !ok {
		return store.NoChoice, false
	}
	return row.ChoiceID, true
}

func isTypingRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' || r == ' '
}

func (transition *transition) keyDown(event Event) {
	if !event.Target.Inside() {
		return
	}
	options := transition.controller.options
	wasActive := transition.state.DropdownActive

	if transition.mode() != config.ModeText && event.Key == KeyRune && !event.Ctrl &&
		isTypingRune(event.Rune) && !wasActive {
		transition.showDropdown(true)
	}

	transition.state.CanSearch = options.Search

	switch event.Key {
	case KeyRune:
		if event.Ctrl && (event.Rune == 'a' || event.Rune == 'A') {
			transition.selectAll(event)
		}
	case KeyEnter:
		transition.enter(event, wasActive)
	case KeyEscape:
		if wasActive {
			transition.hideDropdown(false)
		}
	case KeyArrowUp, KeyArrowDown, KeyPageUp, KeyPageDown:
		transition.navigate(event, wasActive)
	case KeyBackspace, KeyDelete:
		if transition.state.InputFocused && event.InputValue == "" && transition.mode() != config.ModeSelectOne {
			transition.backspace()
			transition.emit(PreventDefault{})
		}
	}
}

// selectAll arms every active item for removal without removing any.
func (transition *transition) selectAll(event Event) {
	current := transition.view.Store
	items := current.ActiveItems()
	if len(items) == 0 {
		return
	}
	if !transition.controller.options.RemoveItems || event.InputValue != "" || !transition.state.InputFocused {
		return
	}
	transition.state.CanSearch = false
	for _, item := range items {
		if !item.Highlighted {
			transition.emit(transition.controller.HighlightItem(current, item, true, true)...)
		}
	}
}

func (transition *transition) enter(event Event, wasActive bool) {
	controller := transition.controller
	current := transition.view.Store

	if transition.mode() == config.ModeText && event.InputValue != "" {
		eligibility := controller.CanAddItem(current, event.InputValue)
		if eligibility.Eligible {
			if transition.state.DropdownActive {
				transition.hideDropdown(false)
			}
			transition.emit(controller.AddItem(current, event.InputValue, "", store.NoChoice, store.NoGroup)...)
			transition.emit(controller.Change(strings.TrimSpace(event.InputValue))...)
			transition.emit(ClearInput{})
			transition.resetSearch()
		} else {
			controller.logger.Debug("item rejected", "value", event.InputValue, "notice", eligibility.Notice)
		}
	}

	if event.Target.Kind == TargetRemoveButton {
		transition.removeButton(event.Target.ItemID)
		transition.emit(PreventDefault{})
	}

	if wasActive {
		transition.emit(PreventDefault{})
		if choiceID, ok := transition.highlightedChoice(); ok {
			transition.chooseChoice(choiceID)
			transition.resetSearch()
		}
	} else if transition.mode() == config.ModeSelectOne {
		transition.showDropdown(true)
		transition.emit(PreventDefault{})
	}
}

// navigate moves the choice highlight. It acts only while the
// dropdown is open, or on select-one surfaces, which it opens first.
func (transition *transition) navigate(event Event, wasActive bool) {
	if !wasActive && transition.mode() != config.ModeSelectOne {
		return
	}
	if !wasActive {
		transition.showDropdown(true)
	}
	transition.state.CanSearch = false
	defer transition.emit(PreventDefault{})

	listing := transition.view.Listing
	if listing.Len() == 0 {
		return
	}

	direction := -1
	if event.Key == KeyArrowDown || event.Key == KeyPageDown {
		direction = 1
	}
	jump := event.Jump || event.Key == KeyPageUp || event.Key == KeyPageDown

	var next int
	switch {
	case jump && direction > 0:
		next = listing.Len() - 1
	case jump:
		next = 0
	default:
		next = listing.Clamp(transition.state.HighlightPosition) + direction
		if next < 0 || next >= listing.Len() {
			return
		}
	}

	row := listing.RowIndex(next)
	if !transition.view.Viewport.Shows(row, direction) {
		transition.emit(ScrollTo{Row: row, Direction: direction})
	}
	transition.state.HighlightPosition = next
	transition.emit(HighlightChoice{Position: next})
}

// backspace edits or removes items from an empty input. With editing
// enabled and nothing highlighted, the last item moves back into the
// input. Otherwise the last item is armed when nothing is, and every
// armed item is removed in one pass with a single change
// notification.
func (transition *transition) backspace() {
	controller := transition.controller
	current := transition.view.Store
	items := current.ActiveItems()
	if !controller.options.RemoveItems || len(items) == 0 {
		return
	}
	last := items[len(items)-1]
	highlighted := current.HighlightedItems()

	if controller.options.EditItems && len(highlighted) == 0 {
		transition.emit(SetInput{Value: last.Value})
		transition.emit(controller.RemoveItem(current, last)...)
		transition.emit(controller.Change(last.Value)...)
		return
	}

	if len(highlighted) == 0 {
		transition.emit(controller.HighlightItem(current, last, true, false)...)
		highlighted = []store.Item{last}
	}
	var removed []string
	for _, item := range highlighted {
		transition.emit(controller.RemoveItem(current, item)...)
		removed = append(removed, item.Value)
	}
	transition.emit(controller.Change(strings.Join(removed, controller.options.Delimiter))...)
}

func (transition *transition) keyUp(event Event) {
	if event.Target.Kind != TargetInput {
		return
	}
	controller := transition.controller

	if transition.mode() == config.ModeText {
		if event.InputValue == "" {
			if transition.state.DropdownActive {
				transition.hideDropdown(false)
			}
			return
		}
		eligibility := controller.CanAddItem(transition.view.Store, event.InputValue)
		if eligibility.Notice != "" {
			transition.emit(ShowNotice{Text: eligibility.Notice})
		}
		if eligibility.Eligible {
			if !transition.state.DropdownActive {
				transition.showDropdown(false)
			}
		} else if eligibility.Notice == "" && transition.state.DropdownActive {
			transition.hideDropdown(false)
		}
		return
	}

	if (event.Key == KeyBackspace || event.Key == KeyDelete) && event.InputValue == "" {
		if transition.state.Searching {
			transition.resetSearch()
		}
		return
	}
	if transition.state.CanSearch {
		transition.search(event.InputValue)
	}
}

// search filters the choices by the live input value.
func (transition *transition) search(value string) {
	if value == "" {
		return
	}
	controller := transition.controller
	current := transition.view.Store

	decision, query := controller.gate.Decide(value, transition.state.LastQuery)
	switch decision {
	case search.DecisionReset:
		if current.HasInactiveChoices() || transition.state.Searching {
			transition.state.Searching = false
			transition.state.LastQuery = ""
			transition.emit(Dispatch{Action: store.ActivateChoices{Active: true}})
		}
	case search.DecisionSearch:
		results := controller.index.Search(query, current.SelectableChoices(), controller.options.SearchFields)
		transition.state.LastQuery = query
		transition.state.HighlightPosition = 0
		transition.state.Searching = true
		transition.emit(
			Dispatch{Action: store.FilterChoices{Matches: search.Matches(results)}},
			Notify{Name: NotifySearch, Detail: Detail{Value: value}},
		)
		controller.logger.Debug("searched choices", "query", query, "results", len(results))
	}
}

func (transition *transition) mouseDown(event Event) {
	if !event.Target.Inside() || event.Target.Kind == TargetInput {
		return
	}
	switch event.Target.Kind {
	case TargetItem:
		transition.toggleItem(event.Target.ItemID, event.Shift)
	case TargetChoice:
		transition.chooseChoice(event.Target.ChoiceID)
		transition.resetSearch()
	}
	transition.emit(PreventDefault{})
}

// toggleItem highlights the clicked item. Other highlighted items are
// cleared unless shift is held.
func (transition *transition) toggleItem(id store.ItemID, shift bool) {
	controller := transition.controller
	if !controller.options.RemoveItems || transition.mode() == config.ModeSelectOne {
		return
	}
	current := transition.view.Store
	for _, item := range current.ActiveItems() {
		if item.ID == id && !item.Highlighted {
			transition.emit(controller.HighlightItem(current, item, true, true)...)
		} else if !shift && item.Highlighted {
			transition.emit(controller.HighlightItem(current, item, false, true)...)
		}
	}
	if !transition.state.InputFocused {
		transition.focusInput()
	}
}

// chooseChoice commits a choice as a new item when it is neither
// selected nor disabled and the surface accepts another item.
func (transition *transition) chooseChoice(id store.ChoiceID) {
	controller := transition.controller
	current := transition.view.Store
	wasActive := transition.state.DropdownActive

	choice, exists := current.Choice(id)
	switch {
	case !exists:
		controller.logger.Warn("choice does not exist", "choice_id", id)
	case choice.Selected || choice.Disabled:
		controller.logger.Debug("choice not selectable", "choice_id", id,
			"selected", choice.Selected, "disabled", choice.Disabled)
	default:
		eligibility := controller.CanAddItem(current, choice.Value)
		if eligibility.Eligible {
			transition.emit(controller.AddItem(current, choice.Value, choice.Label, choice.ID, choice.GroupID)...)
			transition.emit(controller.Change(choice.Value)...)
		} else if eligibility.Notice != "" {
			transition.emit(ShowNotice{Text: eligibility.Notice})
		}
	}

	transition.emit(ClearInput{})

	if wasActive && transition.mode() == config.ModeSelectOne {
		transition.hideDropdown(false)
		transition.focusContainer()
	}
}

// removeButton removes the item whose remove control was activated.
func (transition *transition) removeButton(id store.ItemID) {
	controller := transition.controller
	if !controller.options.RemoveItems || !controller.options.RemoveItemButton {
		return
	}
	current := transition.view.Store
	item, exists := current.Item(id)
	if !exists || !item.Active {
		controller.logger.Warn("remove button for unknown item", "item_id", id)
		return
	}
	transition.emit(controller.RemoveItem(current, item)...)
	transition.emit(controller.Change(item.Value)...)
}

func (transition *transition) click(event Event) {
	controller := transition.controller
	if !event.Target.Inside() {
		transition.emit(controller.UnhighlightAll(transition.view.Store)...)
		transition.blurContainer()
		if transition.state.DropdownActive {
			transition.hideDropdown(false)
		}
		return
	}

	if event.Target.Kind == TargetRemoveButton {
		transition.removeButton(event.Target.ItemID)
	}

	// Choices and items are handled on mouse-down.
	if event.Target.Kind == TargetChoice || event.Target.Kind == TargetItem {
		return
	}

	if !transition.state.DropdownActive {
		switch {
		case transition.mode() == config.ModeText:
			if !transition.state.InputFocused {
				transition.focusInput()
			}
		case transition.state.CanSearch:
			transition.showDropdown(true)
		default:
			transition.showDropdown(false)
			transition.focusContainer()
		}
	} else if transition.mode() == config.ModeSelectOne &&
		event.Target.Kind != TargetInput && !event.Target.InDropdown() {
		transition.hideDropdown(true)
	}
}

func (transition *transition) mouseOver(event Event) {
	if event.Target.Kind != TargetChoice {
		return
	}
	position := transition.view.Listing.PositionOf(event.Target.ChoiceID)
	if position < 0 {
		return
	}
	transition.state.HighlightPosition = position
	transition.emit(HighlightChoice{Position: position})
}

func (transition *transition) touchEnd(event Event) {
	if transition.state.WasTap && event.Target.Inside() {
		onContainer := event.Target.Kind == TargetOuter || event.Target.Kind == TargetInner
		if onContainer && transition.mode() != config.ModeSelectOne {
			if transition.mode() == config.ModeText {
				if !transition.state.InputFocused {
					transition.focusInput()
				}
			} else if !transition.state.DropdownActive {
				transition.showDropdown(true)
			}
		}
		transition.emit(StopPropagation{})
	}
	transition.state.WasTap = true
}

func (transition *transition) focus(event Event) {
	if !event.Target.Inside() {
		return
	}
	onInput := event.Target.Kind == TargetInput
	if onInput {
		transition.state.InputFocused = true
	}

	switch transition.mode() {
	case config.ModeText:
		if onInput {
			transition.focusContainer()
		}
	case config.ModeSelectOne:
		transition.focusContainer()
		if onInput && !transition.state.DropdownActive {
			transition.showDropdown(false)
		}
	case config.ModeSelectMultiple:
		if onInput {
			transition.focusContainer()
			if !transition.state.DropdownActive {
				transition.showDropdown(true)
			}
		}
	}
}

func (transition *transition) blur(event Event) {
	if !event.Target.Inside() {
		return
	}
	controller := transition.controller
	onInput := event.Target.Kind == TargetInput
	if onInput {
		transition.state.InputFocused = false
	}

	switch transition.mode() {
	case config.ModeText, config.ModeSelectMultiple:
		if onInput {
			transition.blurContainer()
			transition.emit(controller.UnhighlightAll(transition.view.Store)...)
			if transition.state.DropdownActive {
				transition.hideDropdown(false)
			}
		}
	case config.ModeSelectOne:
		transition.blurContainer()
		active := transition.state.DropdownActive
		if event.Target.Kind == TargetOuter && active && !transition.state.CanSearch {
			transition.hideDropdown(false)
		} else if onInput && active {
			transition.hideDropdown(false)
		}
	}
}
