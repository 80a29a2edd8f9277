// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package choices

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/bureau-foundation/choices/lib/config"
	"github.com/bureau-foundation/choices/lib/interaction"
	"github.com/bureau-foundation/choices/lib/render"
	"github.com/bureau-foundation/choices/lib/store"
)

// Surface is the presentation a widget drives. Beyond the two rendered
// regions it owns the dropdown, focus, and the text input.
type Surface interface {
	render.Surface

	SetDropdownOpen(open bool)
	SetFocused(focused bool)
	SetInputFocused(focused bool)
	SetInput(value string)

	// ScrollTo brings rows[row] of the choice region into view,
	// approaching from above when direction is 1 and from below when
	// it is -1.
	ScrollTo(row, direction int)

	SetDisabled(disabled bool)
}

// Listener receives the widget's named notifications.
type Listener func(name interaction.Notification, detail interaction.Detail)

// Response tells the adapter what to do with the event it delivered.
type Response struct {
	PreventDefault  bool
	StopPropagation bool
}

// Config holds the parameters for [New].
type Config struct {
	// Options configures behavior. Nil means [config.Default].
	Options *config.Options

	Templates render.Templates
	Surface   Surface

	// Logger receives diagnostics. Nil discards.
	Logger *slog.Logger

	// Strict makes the store panic on an unknown action.
	Strict bool

	// Items are added to a text widget at construction.
	Items []string

	// Choices are added to a select widget at construction.
	Choices []Record
}

// Widget is one selection control. It is not safe for concurrent use:
// every method must be called from the goroutine that owns the
// surface.
type Widget struct {
	options    *config.Options
	logger     *slog.Logger
	surface    Surface
	store      *store.Store
	reconciler *render.Reconciler
	controller *interaction.Controller

	state     interaction.State
	viewport  interaction.Viewport
	listeners []Listener
	loading   bool
}

// New validates the configuration, renders the empty widget, and adds
// the preset items or choices.
func New(cfg Config) (*Widget, error) {
	options := cfg.Options
	if options == nil {
		options = config.Default()
	}
	if err := options.Validate(); err != nil {
		return nil, err
	}
	if cfg.Surface == nil {
		return nil, fmt.Errorf("choices: surface is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	reconciler, err := render.NewReconciler(cfg.Templates, cfg.Surface, render.Options{
		Mode:                options.Mode,
		ShouldSort:          options.ShouldSort,
		SortFilter:          options.Comparator(),
		ResetScrollPosition: options.ResetScrollPosition,
		Delimiter:           options.Delimiter,
		Logger:              logger.With("component", "reconciler"),
	})
	if err != nil {
		return nil, err
	}
	controller, err := interaction.NewController(options, logger.With("component", "controller"))
	if err != nil {
		return nil, err
	}

	widget := &Widget{
		options:    options,
		logger:     logger,
		surface:    cfg.Surface,
		reconciler: reconciler,
		controller: controller,
		store: store.New(
			store.WithLogger(logger.With("component", "store")),
			store.WithStrict(cfg.Strict),
		),
	}
	widget.state = controller.InitialState()
	widget.store.Subscribe(widget.render)
	widget.render(widget.store.State())

	if options.Mode.IsSelect() {
		widget.addPresetChoices(cfg.Choices)
	} else {
		for _, value := range cfg.Items {
			widget.apply(widget.controller.AddItem(widget.store.State(), value, "", store.NoChoice, store.NoGroup))
		}
	}
	return widget, nil
}

// On registers a notification listener. Listeners run in registration
// order, synchronously, while the triggering effect is applied.
func (widget *Widget) On(listener Listener) {
	widget.listeners = append(widget.listeners, listener)
}

// Subscribe registers a listener called after every store transition,
// once the widget has re-rendered.
func (widget *Widget) Subscribe(listener store.Listener) {
	widget.store.Subscribe(listener)
}

// Options returns the widget's configuration. Callers must not modify
// it.
func (widget *Widget) Options() *config.Options {
	return widget.options
}

// State returns the current interaction state.
func (widget *Widget) State() interaction.State {
	return widget.state
}

// Snapshot returns the current store state.
func (widget *Widget) Snapshot() *store.State {
	return widget.store.State()
}

// Listing returns the rows of the choice region as last rendered.
func (widget *Widget) Listing() render.Listing {
	return widget.reconciler.Listing()
}

// Loading reports whether an [Widget.Ajax] population is in flight.
func (widget *Widget) Loading() bool {
	return widget.loading
}

// SetViewport records the visible window of the choice region, used to
// decide when keyboard navigation must scroll.
func (widget *Widget) SetViewport(viewport interaction.Viewport) {
	widget.viewport = viewport
}

// HandleEvent runs one input event through the controller and applies
// its effects.
func (widget *Widget) HandleEvent(event interaction.Event) Response {
	view := interaction.View{
		Store:    widget.store.State(),
		Listing:  widget.reconciler.Listing(),
		Viewport: widget.viewport,
	}
	state, effects := widget.controller.Handle(widget.state, event, view)
	widget.state = state
	return widget.apply(effects)
}

// apply carries out effects in order. Dispatches re-render
// synchronously, so later effects see the regions they produced.
func (widget *Widget) apply(effects []interaction.Effect) Response {
	var response Response
	for _, effect := range effects {
		switch effect := effect.(type) {
		case interaction.Dispatch:
			// Rejections are logged by the store.
			_ = widget.store.Dispatch(effect.Action)
		case interaction.ShowDropdown:
			widget.state.DropdownActive = true
			widget.surface.SetDropdownOpen(true)
			if effect.FocusInput && widget.options.Search {
				widget.state.InputFocused = true
				widget.surface.SetInputFocused(true)
			}
		case interaction.HideDropdown:
			widget.state.DropdownActive = false
			widget.surface.SetDropdownOpen(false)
			if effect.BlurInput && widget.options.Search {
				widget.state.InputFocused = false
				widget.surface.SetInputFocused(false)
			}
		case interaction.FocusContainer:
			widget.surface.SetFocused(true)
		case interaction.BlurContainer:
			widget.surface.SetFocused(false)
		case interaction.FocusInput:
			widget.state.InputFocused = true
			widget.surface.SetInputFocused(true)
		case interaction.SetInput:
			widget.surface.SetInput(effect.Value)
		case interaction.ClearInput:
			widget.surface.SetInput("")
		case interaction.ShowNotice:
			widget.reconciler.Notice(effect.Text)
		case interaction.HighlightChoice:
			widget.surface.HighlightChoice(widget.reconciler.Listing().RowIndex(effect.Position))
		case interaction.ScrollTo:
			widget.surface.ScrollTo(effect.Row, effect.Direction)
		case interaction.Notify:
			widget.notify(effect.Name, effect.Detail)
		case interaction.PreventDefault:
			response.PreventDefault = true
		case interaction.StopPropagation:
			response.StopPropagation = true
		default:
			widget.logger.Error("unhandled effect", "effect", fmt.Sprintf("%T", effect))
		}
	}
	return response
}

func (widget *Widget) notify(name interaction.Notification, detail interaction.Detail) {
	for _, listener := range widget.listeners {
		listener(name, detail)
	}
}

// render is the store subscriber. It rebuilds whatever regions the
// transition touched and remembers where the highlight landed.
func (widget *Widget) render(current *store.State) {
	pass := render.Pass{
		Ordering:        render.Alphabetical,
		Highlight:       widget.state.HighlightPosition,
		NoResultsText:   widget.options.NoResultsText.Resolve(""),
		NoChoicesText:   widget.options.NoChoicesText.Resolve(""),
		PlaceholderText: widget.options.PlaceholderText(),
	}
	if widget.state.Searching {
		pass.Ordering = render.RelevanceScore
	}
	if widget.loading {
		pass.PlaceholderText = widget.options.LoadingText.Resolve("")
	}

	outcome := widget.reconciler.Render(current, pass)
	if outcome.Highlighted >= 0 {
		widget.state.HighlightPosition = outcome.Highlighted
	}
	if widget.loading && outcome.ChoicesRebuilt && widget.options.Mode != config.ModeSelectOne {
		widget.reconciler.Notice(pass.PlaceholderText)
	}
}

// rerender forces both regions to rebuild from the current state.
func (widget *Widget) rerender() {
	widget.reconciler.Invalidate()
	widget.render(widget.store.State())
}

// addPresetChoices adds the construction-time choices. Flat lists are
// sorted when sorting is enabled, and a select-one widget with no
// selected choice selects the first one.
func (widget *Widget) addPresetChoices(records []Record) {
	grouped := slices.ContainsFunc(records, Record.isGroup)
	if grouped {
		for _, record := range records {
			widget.addRecord(record)
		}
		return
	}

	records = slices.Clone(records)
	if widget.options.ShouldSort {
		compare := widget.options.Comparator()
		slices.SortStableFunc(records, func(a, b Record) int {
			return compare(recordKey(a), recordKey(b))
		})
	}
	if widget.options.Mode == config.ModeSelectOne && len(records) > 0 &&
		!slices.ContainsFunc(records, func(record Record) bool { return record.Selected }) {
		records[0].Selected = true
		records[0].Disabled = false
	}
	for _, record := range records {
		widget.addRecord(record)
	}
}

func recordKey(record Record) config.SortKey {
	label := record.Label
	if label == "" {
		label = record.Value
	}
	return config.SortKey{Value: record.Value, Label: label}
}

// addRecord adds a choice, or a group and its members.
func (widget *Widget) addRecord(record Record) {
	if !record.isGroup() {
		widget.addChoice(record, store.NoGroup, false)
		return
	}
	groupID := widget.store.State().NextGroupID()
	if err := widget.store.Dispatch(store.AddGroup{
		ID:       groupID,
		Value:    record.heading(),
		Active:   true,
		Disabled: record.Disabled,
	}); err != nil {
		return
	}
	for _, member := range record.Choices {
		widget.addChoice(member, groupID, record.Disabled)
	}
}

// addChoice adds one choice and, when the record is selected, the item
// that selects it.
func (widget *Widget) addChoice(record Record, groupID store.GroupID, groupDisabled bool) {
	if record.Value == "" {
		widget.logger.Warn("choice record has no value", "label", record.Label)
		return
	}
	choiceID := widget.store.State().NextChoiceID()
	if err := widget.store.Dispatch(store.AddChoice{
		ID:       choiceID,
		Value:    record.Value,
		Label:    record.Label,
		GroupID:  groupID,
		Disabled: record.Disabled || groupDisabled,
	}); err != nil {
		return
	}
	if record.Selected {
		choice, _ := widget.store.State().Choice(choiceID)
		widget.apply(widget.controller.AddItem(widget.store.State(), choice.Value, choice.Label, choiceID, groupID))
	}
}
