// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownAction is returned for an Action type the reducer does
	// not handle. This is a programming error in the caller.
	ErrUnknownAction = errors.New("unknown action")

	// ErrInvalidID is returned when an added record carries an id that
	// is not positive or that collides with an existing record.
	ErrInvalidID = errors.New("invalid id")
)

// Reduce applies action to state and returns the resulting state. The
// input state is never modified. On success the returned state is
// always a new pointer, even when no collection changed; collections
// that did not change keep their table pointers.
//
// On error the input state is returned unchanged.
func Reduce(state *State, action Action) (*State, error) {
	switch action := action.(type) {
	case AddItem:
		return reduceAddItem(state, action)
	case RemoveItem:
		return reduceRemoveItem(state, action), nil
	case HighlightItem:
		next := state.clone()
		next.items = state.items.updated(action.ID, func(item Item) Item {
			item.Highlighted = action.Highlighted
			return item
		})
		return next, nil
	case AddChoice:
		return reduceAddChoice(state, action)
	case AddGroup:
		return reduceAddGroup(state, action)
	case FilterChoices:
		return reduceFilterChoices(state, action), nil
	case ActivateChoices:
		next := state.clone()
		next.choices = state.choices.mapped(func(choice Choice) Choice {
			choice.Active = action.Active
			return choice
		})
		return next, nil
	case ClearChoices:
		next := state.clone()
		next.choices = emptyChoices()
		return next, nil
	case ClearAll:
		next := state.clone()
		next.items = emptyItems()
		next.choices = emptyChoices()
		next.groups = emptyGroups()
		return next, nil
	default:
		return state, fmt.Errorf("%w: %T", ErrUnknownAction, action)
	}
}

func reduceAddItem(state *State, action AddItem) (*State, error) {
	if action.ID <= 0 || state.items.Has(action.ID) {
		return state, fmt.Errorf("%w: item %d", ErrInvalidID, action.ID)
	}
	label := action.Label
	if label == "" {
		label = action.Value
	}

	next := state.clone()
	next.items = state.items.appended(Item{
		ID:       action.ID,
		Value:    action.Value,
		Label:    label,
		ChoiceID: action.ChoiceID,
		GroupID:  action.GroupID,
		Active:   true,
	})
	if action.ID >= next.nextItemID {
		next.nextItemID = action.ID + 1
	}

	if action.ChoiceID >= 0 && state.choices.Has(action.ChoiceID) {
		next.choices = state.choices.updated(action.ChoiceID, func(choice Choice) Choice {
			choice.Selected = true
			return choice
		})
	}
	return next, nil
}

func reduceRemoveItem(state *State, action RemoveItem) *State {
	next := state.clone()
	next.items = state.items.updated(action.ID, func(item Item) Item {
		item.Active = false
		return item
	})

	if action.ChoiceID >= 0 && state.choices.Has(action.ChoiceID) {
		// Another active item may still hold the same choice (values
		// set programmatically can repeat), in which case the choice
		// stays selected.
		stillReferenced := false
		for _, item := range next.items.records {
			if item.Active && item.ChoiceID == action.ChoiceID {
				stillReferenced = true
				break
			}
		}
		next.choices = state.choices.updated(action.ChoiceID, func(choice Choice) Choice {
			choice.Selected = stillReferenced
			return choice
		})
	}
	return next
}

func reduceAddChoice(state *State, action AddChoice) (*State, error) {
	if action.ID <= 0 || state.choices.Has(action.ID) {
		return state, fmt.Errorf("%w: choice %d", ErrInvalidID, action.ID)
	}
	label := action.Label
	if label == "" {
		label = action.Value
	}

	next := state.clone()
	next.choices = state.choices.appended(Choice{
		ID:       action.ID,
		Value:    action.Value,
		Label:    label,
		GroupID:  action.GroupID,
		Disabled: action.Disabled,
		Active:   true,
	})
	if action.ID >= next.nextChoiceID {
		next.nextChoiceID = action.ID + 1
	}
	return next, nil
}

func reduceAddGroup(state *State, action AddGroup) (*State, error) {
	if action.ID <= 0 || state.groups.Has(action.ID) {
		return state, fmt.Errorf("%w: group %d", ErrInvalidID, action.ID)
	}
	next := state.clone()
	next.groups = state.groups.appended(Group{
		ID:       action.ID,
		Value:    action.Value,
		Active:   action.Active,
		Disabled: action.Disabled,
	})
	if action.ID >= next.nextGroupID {
		next.nextGroupID = action.ID + 1
	}
	return next, nil
}

func reduceFilterChoices(state *State, action FilterChoices) *State {
	scores := make(map[ChoiceID]float64, len(action.Matches))
	for _, match := range action.Matches {
		scores[match.ChoiceID] = match.Score
	}
	next := state.clone()
	next.choices = state.choices.mapped(func(choice Choice) Choice {
		score, matched := scores[choice.ID]
		choice.Active = matched
		if matched {
			choice.Score = score
		}
		return choice
	})
	return next
}
