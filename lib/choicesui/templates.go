// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package choicesui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/bureau-foundation/choices/lib/render"
	"github.com/bureau-foundation/choices/lib/store"
)

// removeMark is appended to items when the remove button is enabled.
// Clicking its cell removes the item.
const removeMark = "×"

// ellipsis marks truncated labels.
const ellipsis = "…"

// TemplateOptions controls how records are drawn.
type TemplateOptions struct {
	Theme Theme

	// Renderer supplies the colour profile. Nil uses the lipgloss
	// default renderer.
	Renderer *lipgloss.Renderer

	// RemoveButton appends a remove mark to every item.
	RemoveButton bool

	// MaxWidth truncates labels wider than this many cells. Zero means
	// no limit.
	MaxWidth int
}

// NewTemplates returns lipgloss-styled templates for every record
// kind.
func NewTemplates(options TemplateOptions) render.Templates {
	renderer := options.Renderer
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}
	theme := options.Theme

	itemStyle := renderer.NewStyle().
		Foreground(theme.ItemForeground).
		Background(theme.ItemBackground).
		Padding(0, 1)
	highlightedItemStyle := itemStyle.
		Background(theme.HighlightedItemBackground).
		Bold(true)
	choiceStyle := renderer.NewStyle().Foreground(theme.NormalText)
	disabledStyle := renderer.NewStyle().Foreground(theme.FaintText).Strikethrough(true)
	groupStyle := renderer.NewStyle().Foreground(theme.GroupHeading).Bold(true)
	noticeStyle := renderer.NewStyle().Foreground(theme.NoticeText).Italic(true)
	placeholderStyle := renderer.NewStyle().Foreground(theme.FaintText)

	truncate := func(text string) string {
		if options.MaxWidth > 0 && ansi.StringWidth(text) > options.MaxWidth {
			return ansi.Truncate(text, options.MaxWidth, ellipsis)
		}
		return text
	}

	return render.Templates{
		Item: func(item store.Item) render.Fragment {
			text := truncate(item.Label)
			if options.RemoveButton {
				text += " " + removeMark
			}
			if item.Highlighted {
				return render.Fragment(highlightedItemStyle.Render(text))
			}
			return render.Fragment(itemStyle.Render(text))
		},
		Choice: func(choice store.Choice) render.Fragment {
			if choice.Disabled {
				return render.Fragment(disabledStyle.Render(truncate(choice.Label)))
			}
			return render.Fragment(choiceStyle.Render(truncate(choice.Label)))
		},
		ChoiceGroup: func(group store.Group) render.Fragment {
			return render.Fragment(groupStyle.Render(truncate(group.Value)))
		},
		Notice: func(text string) render.Fragment {
			return render.Fragment(noticeStyle.Render(truncate(text)))
		},
		Placeholder: func(text string) render.Fragment {
			return render.Fragment(placeholderStyle.Render(truncate(text)))
		},
		Option: func(item store.Item) render.Fragment {
			return render.Fragment(item.Value)
		},
	}
}
