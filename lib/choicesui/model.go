// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package choicesui

import (
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/bureau-foundation/choices/lib/choices"
	"github.com/bureau-foundation/choices/lib/config"
	"github.com/bureau-foundation/choices/lib/interaction"
	"github.com/bureau-foundation/choices/lib/render"
)

// defaultDropdownRows caps the dropdown height when the configuration
// does not.
const defaultDropdownRows = 10

// controlIndent is the width of the focus marker that starts the
// control line.
const controlIndent = 2

// Config holds the parameters for [NewModel].
type Config struct {
	// Options configures the widget. Nil means config.Default.
	Options *config.Options

	Choices []choices.Record
	Items   []string

	// Theme defaults to DefaultTheme; Keys to DefaultKeyMap.
	Theme *Theme
	Keys  *KeyMap

	// Renderer supplies the colour profile. Nil uses the lipgloss
	// default renderer.
	Renderer *lipgloss.Renderer

	Logger *slog.Logger

	// DropdownRows caps the dropdown height. Zero means
	// defaultDropdownRows.
	DropdownRows int

	// Listener, when set, receives the widget's notifications.
	Listener choices.Listener

	// Loader, when set on a select widget, supplies further choices in
	// the background. The widget shows its loading text until it
	// returns.
	Loader func() ([]choices.Record, error)
}

// recordsLoadedMsg carries the result of a Config.Loader call.
type recordsLoadedMsg struct {
	records []choices.Record
	err     error
}

// Result is what the picker produced.
type Result struct {
	Values  []string
	Value   string
	Aborted bool
}

type styles struct {
	selected lipgloss.Style
	faint    lipgloss.Style
	help     lipgloss.Style
	warning  lipgloss.Style
	error    lipgloss.Style
}

// Model is the bubbletea model of the picker. The widget and surface
// are shared pointers; everything else is copied with the model.
type Model struct {
	widget  *choices.Widget
	surface *Surface
	keys    KeyMap
	styles  styles
	logger  *slog.Logger

	loader     func() ([]choices.Record, error)
	finishLoad func([]choices.Record)

	width        int
	height       int
	dropdownRows int

	status         string
	statusLevel    slog.Level
	statusSequence uint64

	done    bool
	aborted bool
}

// NewModel builds the widget and its terminal surface. The keyboard
// starts in the text input, so the widget receives an input focus
// event before the first frame.
func NewModel(cfg Config) (Model, error) {
	options := cfg.Options
	if options == nil {
		options = config.Default()
	}
	theme := DefaultTheme
	if cfg.Theme != nil {
		theme = *cfg.Theme
	}
	keys := DefaultKeyMap
	if cfg.Keys != nil {
		keys = *cfg.Keys
	}
	renderer := cfg.Renderer
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}
	dropdownRows := cfg.DropdownRows
	if dropdownRows <= 0 {
		dropdownRows = defaultDropdownRows
	}

	surface := NewSurface(options.PlaceholderText())
	widget, err := choices.New(choices.Config{
		Options: options,
		Templates: NewTemplates(TemplateOptions{
			Theme:        theme,
			Renderer:     renderer,
			RemoveButton: options.RemoveItemButton,
		}),
		Surface: surface,
		Logger:  cfg.Logger,
		Items:   cfg.Items,
		Choices: cfg.Choices,
	})
	if err != nil {
		return Model{}, err
	}
	if cfg.Listener != nil {
		widget.On(cfg.Listener)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	model := Model{
		widget:       widget,
		surface:      surface,
		keys:         keys,
		logger:       logger,
		dropdownRows: dropdownRows,
		styles: styles{
			selected: renderer.NewStyle().
				Background(theme.SelectedBackground).
				Foreground(theme.SelectedForeground),
			faint:   renderer.NewStyle().Foreground(theme.FaintText),
			help:    renderer.NewStyle().Foreground(theme.HelpText),
			warning: renderer.NewStyle().Foreground(theme.WarningText),
			error:   renderer.NewStyle().Foreground(theme.ErrorText).Bold(true),
		},
	}
	surface.height = model.listCapacity()
	surface.SetInputFocused(true)
	model.dispatch(interaction.Event{
		Kind:   interaction.EventFocus,
		Target: interaction.Target{Kind: interaction.TargetInput},
	})

	if cfg.Loader != nil && options.Mode.IsSelect() {
		model.loader = cfg.Loader
		widget.Ajax(func(load func([]choices.Record)) {
			model.finishLoad = load
		})
	}
	return model, nil
}

// Widget returns the widget the model drives.
func (model Model) Widget() *choices.Widget {
	return model.widget
}

// Result reports the selected values and whether the user aborted.
func (model Model) Result() Result {
	return Result{
		Values:  model.widget.Values(),
		Value:   model.widget.Value(),
		Aborted: model.aborted,
	}
}

// Init implements tea.Model. It starts the background load, if any.
func (model Model) Init() tea.Cmd {
	loader := model.loader
	if loader == nil {
		return nil
	}
	return func() tea.Msg {
		records, err := loader()
		return recordsLoadedMsg{records: records, err: err}
	}
}

// Update implements tea.Model.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		model.surface.height = model.listCapacity()
		model.surface.input.Width = model.width - controlIndent - 1

	case tea.KeyMsg:
		return model.handleKey(message)

	case tea.MouseMsg:
		return model, model.handleMouse(message)

	case scrollFrameMsg:
		return model, model.surface.scroller.Step(message)

	case recordsLoadedMsg:
		if model.finishLoad == nil {
			return model, nil
		}
		if message.err != nil {
			model.logger.Error("loading choices failed", "error", message.err)
		}
		model.finishLoad(message.records)
		model.finishLoad = nil
		model.loader = nil

	case logRecordMsg:
		model.statusSequence++
		model.status = message.summary
		model.statusLevel = message.level
		sequence := model.statusSequence
		return model, tea.Tick(logFadeDelay, func(time.Time) tea.Msg {
			return logFadeMsg{sequence: sequence}
		})

	case logFadeMsg:
		if message.sequence == model.statusSequence {
			model.status = ""
		}
	}
	return model, nil
}

// dispatch delivers one event to the widget with the current scroll
// window.
func (model Model) dispatch(event interaction.Event) choices.Response {
	model.widget.SetViewport(interaction.Viewport{
		Top:    model.surface.visibleOffset(),
		Height: model.surface.height,
	})
	return model.widget.HandleEvent(event)
}

// handleKey runs a keystroke as a key-down event, lets the text input
// consume it unless the widget suppressed it, and then reports the
// resulting input value as a key-up event.
func (model Model) handleKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.Abort):
		model.aborted = true
		return model, tea.Quit
	case key.Matches(message, model.keys.Done):
		model.done = true
		return model, tea.Quit
	}

	event, typed := model.keyEvent(message)
	if message.Paste {
		response := model.dispatch(interaction.Event{
			Kind:       interaction.EventPaste,
			Target:     event.Target,
			InputValue: model.surface.InputValue(),
		})
		if response.PreventDefault {
			return model, nil
		}
	}

	var commands []tea.Cmd
	event.Kind = interaction.EventKeyDown
	event.InputValue = model.surface.InputValue()
	response := model.dispatch(event)
	if typed && !response.PreventDefault {
		var command tea.Cmd
		model.surface.input, command = model.surface.input.Update(message)
		commands = append(commands, command)
	}

	event.Kind = interaction.EventKeyUp
	event.InputValue = model.surface.InputValue()
	model.dispatch(event)

	commands = append(commands, model.surface.scroller.Frame())
	return model, tea.Batch(commands...)
}

// keyEvent translates a key message. The boolean reports whether the
// key should also reach the text input.
func (model Model) keyEvent(message tea.KeyMsg) (interaction.Event, bool) {
	event := interaction.Event{Target: interaction.Target{Kind: interaction.TargetInput}}
	keys := model.keys

	switch {
	case key.Matches(message, keys.Up):
		event.Key = interaction.KeyArrowUp
		return event, false
	case key.Matches(message, keys.Down):
		event.Key = interaction.KeyArrowDown
		return event, false
	case key.Matches(message, keys.PageUp):
		event.Key = interaction.KeyPageUp
		return event, false
	case key.Matches(message, keys.PageDown):
		event.Key = interaction.KeyPageDown
		return event, false
	case key.Matches(message, keys.First):
		event.Key = interaction.KeyArrowUp
		event.Jump = true
		return event, false
	case key.Matches(message, keys.Last):
		event.Key = interaction.KeyArrowDown
		event.Jump = true
		return event, false
	case key.Matches(message, keys.Select):
		event.Key = interaction.KeyEnter
		return event, false
	case key.Matches(message, keys.Close):
		event.Key = interaction.KeyEscape
		return event, false
	case key.Matches(message, keys.SelectAll):
		event.Key = interaction.KeyRune
		event.Rune = 'a'
		event.Ctrl = true
		return event, false
	case key.Matches(message, keys.Backspace):
		event.Key = interaction.KeyBackspace
		return event, true
	case key.Matches(message, keys.Delete):
		event.Key = interaction.KeyDelete
		return event, true
	}

	switch message.Type {
	case tea.KeyRunes:
		event.Key = interaction.KeyRune
		if len(message.Runes) > 0 {
			event.Rune = message.Runes[0]
		}
	case tea.KeySpace:
		event.Key = interaction.KeyRune
		event.Rune = ' '
	default:
		event.Key = interaction.KeyOther
	}
	return event, true
}

// handleMouse scrolls on the wheel, hovers choices on motion, and turns
// a left press into the mouse-down and click pair a pointer produces.
func (model Model) handleMouse(message tea.MouseMsg) tea.Cmd {
	surface := model.surface
	switch message.Button {
	case tea.MouseButtonWheelUp:
		surface.scroller.Jump(surface.visibleOffset() - 1)
		return nil
	case tea.MouseButtonWheelDown:
		surface.scroller.Jump(surface.visibleOffset() + 1)
		// Clamp so scrolling back up responds at once.
		surface.scroller.Jump(surface.visibleOffset())
		return nil
	}

	target := model.targetAt(message.X, message.Y)
	switch {
	case message.Action == tea.MouseActionMotion:
		if target.Kind == interaction.TargetChoice {
			model.dispatch(interaction.Event{Kind: interaction.EventMouseOver, Target: target})
		}
	case message.Action == tea.MouseActionPress && message.Button == tea.MouseButtonLeft:
		model.dispatch(interaction.Event{Kind: interaction.EventMouseDown, Target: target, Shift: message.Shift})
		model.dispatch(interaction.Event{Kind: interaction.EventClick, Target: target})
	}
	return surface.scroller.Frame()
}

// layout places the control line and the dropdown.
type layout struct {
	controlY int
	listY    int
	listRows int
}

func (model Model) layout() layout {
	rows := 0
	if model.surface.open {
		rows = min(len(model.surface.rows), model.listCapacity())
	}
	flipped := rows > 0 && model.height > 0 &&
		render.ShouldFlip(model.widget.Options().Position, 1+rows, model.height)
	if flipped {
		return layout{controlY: rows, listY: 0, listRows: rows}
	}
	return layout{controlY: 0, listY: 1, listRows: rows}
}

// listCapacity is the most dropdown rows that fit beside the control
// and status lines.
func (model Model) listCapacity() int {
	capacity := model.dropdownRows
	if model.height > 0 && model.height-2 < capacity {
		capacity = model.height - 2
	}
	return max(capacity, 1)
}

// itemSpan is the horizontal extent of one item in the control line.
type itemSpan struct {
	start, end int
	index      int
}

func (model Model) itemSpans() []itemSpan {
	spans := make([]itemSpan, 0, len(model.surface.items))
	x := controlIndent
	for index, fragment := range model.surface.items {
		width := ansi.StringWidth(string(fragment))
		spans = append(spans, itemSpan{start: x, end: x + width, index: index})
		x += width + 1
	}
	return spans
}

// targetAt identifies the widget part under a screen cell.
func (model Model) targetAt(x, y int) interaction.Target {
	placement := model.layout()

	if y == placement.controlY {
		items := model.widget.Items()
		spans := model.itemSpans()
		for _, span := range spans {
			if x < span.start || x >= span.end || span.index >= len(items) {
				continue
			}
			item := items[span.index]
			// The remove mark sits just inside the item's right padding.
			if model.widget.Options().RemoveItemButton && x >= span.end-2 {
				return interaction.Target{Kind: interaction.TargetRemoveButton, ItemID: item.ID}
			}
			return interaction.Target{Kind: interaction.TargetItem, ItemID: item.ID}
		}
		inputStart := controlIndent
		if len(spans) > 0 {
			inputStart = spans[len(spans)-1].end + 1
		}
		if x >= inputStart {
			return interaction.Target{Kind: interaction.TargetInput}
		}
		return interaction.Target{Kind: interaction.TargetInner}
	}

	if y >= placement.listY && y < placement.listY+placement.listRows {
		index := model.surface.visibleOffset() + y - placement.listY
		if index < len(model.surface.rows) {
			row := model.surface.rows[index]
			if row.Kind == render.RowChoice {
				return interaction.Target{Kind: interaction.TargetChoice, ChoiceID: row.ChoiceID}
			}
		}
		return interaction.Target{Kind: interaction.TargetDropdown}
	}

	return interaction.Target{Kind: interaction.TargetOutside}
}

// View implements tea.Model.
func (model Model) View() string {
	if model.done || model.aborted {
		return ""
	}
	placement := model.layout()

	lines := make([]string, 0, placement.listRows+2)
	control := model.renderControl()
	dropdown := model.renderDropdown(placement.listRows)
	if placement.controlY > 0 {
		lines = append(lines, dropdown...)
		lines = append(lines, control)
	} else {
		lines = append(lines, control)
		lines = append(lines, dropdown...)
	}
	lines = append(lines, model.renderStatus())

	if model.width > 0 {
		for index, line := range lines {
			lines[index] = ansi.Truncate(line, model.width, "")
		}
	}
	return strings.Join(lines, "\n")
}

func (model Model) renderControl() string {
	surface := model.surface
	marker := "  "
	if surface.focused {
		marker = "› "
	}

	var builder strings.Builder
	builder.WriteString(marker)
	for _, fragment := range surface.items {
		builder.WriteString(string(fragment))
		builder.WriteString(" ")
	}
	builder.WriteString(surface.input.View())

	if surface.disabled {
		return model.styles.faint.Render(ansi.Strip(builder.String()))
	}
	return builder.String()
}

func (model Model) renderDropdown(count int) []string {
	surface := model.surface
	offset := surface.visibleOffset()
	lines := make([]string, 0, count)
	for index := offset; index < offset+count && index < len(surface.rows); index++ {
		row := surface.rows[index]
		switch {
		case row.Kind == render.RowGroup:
			lines = append(lines, " "+string(row.Fragment))
		case index == surface.highlighted:
			lines = append(lines, model.styles.selected.Render("› "+string(row.Fragment)))
		default:
			lines = append(lines, "  "+string(row.Fragment))
		}
	}
	return lines
}

func (model Model) renderStatus() string {
	if model.status != "" {
		if model.statusLevel >= slog.LevelError {
			return model.styles.error.Render(model.status)
		}
		return model.styles.warning.Render(model.status)
	}
	var parts []string
	for _, binding := range model.keys.ShortHelp() {
		help := binding.Help()
		parts = append(parts, help.Key+" "+help.Desc)
	}
	return model.styles.help.Render(strings.Join(parts, " · "))
}
