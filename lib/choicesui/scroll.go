// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package choicesui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// scrollStrength is the easing divisor: every frame covers this
// fraction of the remaining distance, and at least one row.
const scrollStrength = 4

// scrollFrameInterval is the delay between animation frames, roughly
// sixty frames a second.
const scrollFrameInterval = 16 * time.Millisecond

// scrollFrameMsg advances the scroll animation started under
// generation.
type scrollFrameMsg struct {
	generation uint64
}

// Scroller eases the dropdown's top row toward a target. Every new
// target starts a new generation; frames scheduled for an older
// generation are ignored, so overlapping animations never fight over
// the offset.
type Scroller struct {
	offset     int
	target     int
	generation uint64

	// pending is set when an animation needs its first frame
	// scheduled.
	pending bool
}

// Offset returns the current top row.
func (scroller *Scroller) Offset() int {
	return scroller.offset
}

// Target returns the row the current animation is heading for.
func (scroller *Scroller) Target() int {
	return scroller.target
}

// Animating reports whether the offset has yet to reach the target.
func (scroller *Scroller) Animating() bool {
	return scroller.offset != scroller.target
}

// ScrollTo starts easing toward target, superseding any animation in
// progress. The first frame is scheduled by [Scroller.Frame].
func (scroller *Scroller) ScrollTo(target int) {
	if target < 0 {
		target = 0
	}
	scroller.generation++
	scroller.target = target
	scroller.pending = scroller.offset != target
}

// Jump moves to offset immediately, cancelling any animation.
func (scroller *Scroller) Jump(offset int) {
	if offset < 0 {
		offset = 0
	}
	scroller.generation++
	scroller.offset = offset
	scroller.target = offset
	scroller.pending = false
}

// Frame returns the command that schedules the first frame of a newly
// started animation, or nil when none is waiting.
func (scroller *Scroller) Frame() tea.Cmd {
	if !scroller.pending {
		return nil
	}
	scroller.pending = false
	return scroller.tick()
}

// Step applies one frame. It returns the command for the next frame,
// or nil when the target is reached or the frame is stale.
func (scroller *Scroller) Step(message scrollFrameMsg) tea.Cmd {
	if message.generation != scroller.generation || !scroller.Animating() {
		return nil
	}
	remaining := scroller.target - scroller.offset
	step := remaining / scrollStrength
	if step == 0 {
		step = 1
		if remaining < 0 {
			step = -1
		}
	}
	scroller.offset += step
	if !scroller.Animating() {
		return nil
	}
	return scroller.tick()
}

func (scroller *Scroller) tick() tea.Cmd {
	generation := scroller.generation
	return tea.Tick(scrollFrameInterval, func(time.Time) tea.Msg {
		return scrollFrameMsg{generation: generation}
	})
}
