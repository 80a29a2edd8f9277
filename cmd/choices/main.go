// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// choices is an interactive terminal picker. It reads choices from a
// YAML or JSONC file, lets the user search and select them (or type
// free-form values in text mode), and prints the selected values to
// stdout, one per line. The interface draws on stderr so the output
// can be captured:
//
//	fruit=$(choices --choices fruit.yaml --mode select-one)
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/pflag"

	"github.com/bureau-foundation/choices/lib/choices"
	"github.com/bureau-foundation/choices/lib/choicesui"
	"github.com/bureau-foundation/choices/lib/config"
	"github.com/bureau-foundation/choices/lib/interaction"
)

func main() {
	if err := run(); err != nil {
		var commandError *CommandError
		if errors.As(err, &commandError) && commandError.Category == CategoryAborted {
			os.Exit(commandError.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		if commandError != nil && commandError.Hint != "" {
			fmt.Fprintf(os.Stderr, "hint: %s\n", commandError.Hint)
		}
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		os.Exit(1)
	}
}

// flags holds the parsed command line.
type flags struct {
	configPath   string
	choicesPath  string
	mode         string
	items        []string
	placeholder  string
	removeButton bool
	noColor      bool
	logLevel     string
	logOutput    string

	set *pflag.FlagSet
}

func newFlags() *flags {
	parsed := &flags{set: pflag.NewFlagSet("choices", pflag.ContinueOnError)}
	set := parsed.set
	set.StringVar(&parsed.configPath, "config", "", "options file, YAML or JSONC (default: $CHOICES_CONFIG, then built-in defaults)")
	set.StringVar(&parsed.choicesPath, "choices", "", "choices file, YAML or JSONC, loaded in the background")
	set.StringVar(&parsed.mode, "mode", "", "text, select-one, or select-multiple (overrides the options file)")
	set.StringArrayVar(&parsed.items, "item", nil, "preset item for text mode (repeatable)")
	set.StringVar(&parsed.placeholder, "placeholder", "", "placeholder text for the input")
	set.BoolVar(&parsed.removeButton, "remove-button", false, "draw a clickable remove mark on every item")
	set.BoolVar(&parsed.noColor, "no-color", false, "disable colour output")
	set.StringVar(&parsed.logLevel, "log-level", "warn", "minimum level shown in the status line: debug, info, warn, error")
	set.StringVar(&parsed.logOutput, "log-output", "", "also write JSON log records to this file")
	set.BoolP("help", "h", false, "show help")
	return parsed
}

// options loads the option bundle and applies the flag overrides.
func (parsed *flags) options() (*config.Options, error) {
	var options *config.Options
	var err error
	switch {
	case parsed.configPath != "":
		options, err = config.LoadFile(parsed.configPath)
	case os.Getenv("CHOICES_CONFIG") != "":
		options, err = config.Load()
	default:
		options = config.Default()
	}
	if err != nil {
		return nil, Validation("cannot load options: %w", err)
	}

	if parsed.set.Changed("mode") {
		options.Mode = config.Mode(parsed.mode)
	}
	if parsed.set.Changed("placeholder") {
		options.Placeholder = parsed.placeholder != ""
		options.PlaceholderValue = parsed.placeholder
	}
	if parsed.set.Changed("remove-button") {
		options.RemoveItemButton = parsed.removeButton
	}
	if err := options.Validate(); err != nil {
		return nil, Validation("invalid options: %w", err)
	}

	if parsed.choicesPath != "" && !options.Mode.IsSelect() {
		return nil, Validation("--choices requires a select mode, got %q", options.Mode).
			WithHint("Pass --mode select-one or --mode select-multiple.")
	}
	if len(parsed.items) > 0 && options.Mode.IsSelect() {
		return nil, Validation("--item requires text mode, got %q", options.Mode)
	}
	return options, nil
}

func run() error {
	parsed := newFlags()
	if err := parsed.set.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(parsed.set)
			return nil
		}
		return Validation("%w", err)
	}
	if help, _ := parsed.set.GetBool("help"); help {
		printHelp(parsed.set)
		return nil
	}
	if args := parsed.set.Args(); len(args) > 0 {
		return Validation("unexpected argument: %s", args[0])
	}

	level, err := parseLevel(parsed.logLevel)
	if err != nil {
		return Validation("%w", err)
	}
	logger := newCommandLogger(level).With("command", "choices")

	options, err := parsed.options()
	if err != nil {
		return err
	}

	// stderr belongs to the interface while it runs; records go to the
	// status line and, optionally, a file.
	tuiHandler := choicesui.NewLogHandler(level)
	backgroundLogger := slog.New(tuiHandler)
	if parsed.logOutput != "" {
		fileHandler, closeFile, fileErr := openFileLogHandler(parsed.logOutput)
		if fileErr != nil {
			return Validation("cannot open log file %s: %w", parsed.logOutput, fileErr)
		}
		defer closeFile()
		backgroundLogger = slog.New(fanoutHandler{tuiHandler, fileHandler})
	}

	renderer := lipgloss.NewRenderer(os.Stderr)
	if parsed.noColor {
		renderer.SetColorProfile(termenv.Ascii)
	}

	var loader func() ([]choices.Record, error)
	if parsed.choicesPath != "" {
		path := parsed.choicesPath
		loader = func() ([]choices.Record, error) {
			return choices.LoadRecords(path)
		}
	}

	model, err := choicesui.NewModel(choicesui.Config{
		Options:  options,
		Items:    parsed.items,
		Renderer: renderer,
		Logger:   backgroundLogger,
		Loader:   loader,
		Listener: func(name interaction.Notification, detail interaction.Detail) {
			backgroundLogger.Debug("widget notification", "name", name, "value", detail.Value)
		},
	})
	if err != nil {
		return Internal("building picker: %w", err)
	}

	program := tea.NewProgram(model, tea.WithOutput(os.Stderr), tea.WithMouseCellMotion())
	tuiHandler.SetProgram(program)

	final, err := program.Run()
	if err != nil {
		return Internal("running picker: %w", err)
	}
	result := final.(choicesui.Model).Result()
	if result.Aborted {
		return Aborted()
	}

	logger.Debug("picker finished", "mode", options.Mode, "values", len(result.Values))
	for _, value := range result.Values {
		fmt.Fprintln(os.Stdout, value)
	}
	return nil
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `choices: interactive terminal picker.

Selected values are printed to stdout, one per line. Press Tab to
accept, Ctrl-C to abort (exit status 130).

Usage:
  choices [flags]

Examples:
  # Pick several fruits from a file
  choices --choices fruit.yaml

  # Pick exactly one
  choices --choices fruit.yaml --mode select-one

  # Type free-form tags, starting with two
  choices --mode text --item go --item rust

Flags:
`)
	flagSet.SetOutput(os.Stderr)
	flagSet.PrintDefaults()
}
