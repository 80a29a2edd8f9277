// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package interaction

import (
	"testing"

	"github.com/bureau-foundation/choices/lib/config"
	"github.com/bureau-foundation/choices/lib/render"
	"github.com/bureau-foundation/choices/lib/store"
)

type discardSurface struct{}

func (discardSurface) ReplaceChoices([]render.Row)                 {}
func (discardSurface) ReplaceItems([]render.Fragment, render.Host) {}
func (discardSurface) HighlightChoice(int)                         {}
func (discardSurface) ResetScroll()                                {}

func newTestController(t *testing.T, modify func(*config.Options)) *Controller {
	t.Helper()
	options := config.Default()
	if modify != nil {
		modify(options)
	}
	controller, err := NewController(options, nil)
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	return controller
}

func reduce(t *testing.T, state *store.State, actions ...store.Action) *store.State {
	t.Helper()
	for _, action := range actions {
		next, err := store.Reduce(state, action)
		if err != nil {
			t.Fatalf("Reduce(%T): %v", action, err)
		}
		state = next
	}
	return state
}

// applyDispatches runs every Dispatch effect against current.
func applyDispatches(t *testing.T, current *store.State, effects []Effect) *store.State {
	t.Helper()
	for _, effect := range dispatched(effects) {
		current = reduce(t, current, effect)
	}
	return current
}

// viewOf renders current the way a widget would and returns the
// resulting view.
func viewOf(t *testing.T, controller *Controller, current *store.State, ordering render.OrderingMode) View {
	t.Helper()
	options := controller.options
	reconciler, err := render.NewReconciler(render.Templates{
		Item:        func(item store.Item) render.Fragment { return render.Fragment(item.Value) },
		Choice:      func(choice store.Choice) render.Fragment { return render.Fragment(choice.Label) },
		ChoiceGroup: func(group store.Group) render.Fragment { return render.Fragment(group.Value) },
		Notice:      func(text string) render.Fragment { return render.Fragment(text) },
		Placeholder: func(text string) render.Fragment { return render.Fragment(text) },
		Option:      func(item store.Item) render.Fragment { return render.Fragment(item.Value) },
	}, discardSurface{}, render.Options{
		Mode:       options.Mode,
		ShouldSort: options.ShouldSort,
		SortFilter: options.Comparator(),
		Delimiter:  options.Delimiter,
	})
	if err != nil {
		t.Fatalf("NewReconciler: %v", err)
	}
	reconciler.Render(current, render.Pass{Ordering: ordering})
	return View{Store: current, Listing: reconciler.Listing()}
}

func fruitChoices() []store.Action {
	return []store.Action{
		store.AddChoice{ID: 1, Value: "Apple", GroupID: store.NoGroup},
		store.AddChoice{ID: 2, Value: "Banana", GroupID: store.NoGroup},
		store.AddChoice{ID: 3, Value: "Grape", GroupID: store.NoGroup},
	}
}

func textItems(values ...string) []store.Action {
	var actions []store.Action
	for index, value := range values {
		actions = append(actions, store.AddItem{
			ID:       store.ItemID(index + 1),
			Value:    value,
			ChoiceID: store.NoChoice,
			GroupID:  store.NoGroup,
		})
	}
	return actions
}

func dispatched(effects []Effect) []store.Action {
	var actions []store.Action
	for _, effect := range effects {
		if dispatch, ok := effect.(Dispatch); ok {
			actions = append(actions, dispatch.Action)
		}
	}
	return actions
}

func notifications(effects []Effect) []Notify {
	var notes []Notify
	for _, effect := range effects {
		if note, ok := effect.(Notify); ok {
			notes = append(notes, note)
		}
	}
	return notes
}

func notificationsNamed(effects []Effect, name Notification) []Notify {
	var notes []Notify
	for _, note := range notifications(effects) {
		if note.Name == name {
			notes = append(notes, note)
		}
	}
	return notes
}

func contains[T Effect](effects []Effect) bool {
	for _, effect := range effects {
		if _, ok := effect.(T); ok {
			return true
		}
	}
	return false
}

func inputTarget() Target   { return Target{Kind: TargetInput} }
func outerTarget() Target   { return Target{Kind: TargetOuter} }
func outsideTarget() Target { return Target{Kind: TargetOutside} }

func keyDown(key Key, value string) Event {
	return Event{Kind: EventKeyDown, Key: key, Target: inputTarget(), InputValue: value}
}

func keyUp(key Key, value string) Event {
	return Event{Kind: EventKeyUp, Key: key, Target: inputTarget(), InputValue: value}
}

func typed(r rune, value string) Event {
	return Event{Kind: EventKeyDown, Key: KeyRune, Rune: r, Target: inputTarget(), InputValue: value}
}
