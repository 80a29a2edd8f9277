// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package render decides which regions of a widget to rebuild after a
// store transition and rebuilds them through caller-supplied templates.
//
// A widget has two regions: the choice list (choices and their group
// headings, shown in the dropdown) and the item list (the values the
// control currently holds). [Reconciler.Render] compares the new
// [store.State] with the one it last rendered. Dirtiness is decided by
// table identity alone: an unchanged table pointer means an unchanged
// region, so rendering twice without a dispatch in between does no
// work at all.
//
// The reconciler owns ordering and branching (grouped, flat, or a
// notice) and nothing else. Turning a record into something
// displayable is the job of [Templates]; putting the result on screen
// is the job of a [Surface]. After every choice-region rebuild the
// reconciler publishes a [Listing], the navigable view of the rows it
// produced, which the interaction controller uses to move the
// highlight.
package render
