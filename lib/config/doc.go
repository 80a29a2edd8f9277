// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config holds the option bundle for a choices widget and
// loads it from disk.
//
// Options are loaded from a single file specified by either the
// CHOICES_CONFIG environment variable (via [Load]) or a --config flag
// (via [LoadFile]). The file is YAML (.yaml, .yml) or JSON with
// comments and trailing commas (.json, .jsonc); fields absent from the
// file keep the values from [Default].
//
// Message texts are either literal strings or functions of the value
// they describe (see [Message]). Only literals can come from a file;
// functions are installed by Go callers after loading.
//
// Key exports:
//
//   - [Options] -- the recognised option bundle
//   - [Default] -- options with the widget's stock behaviour
//   - [Load] and [LoadFile] -- the two entry points for loading
//   - [DecodeFile] -- the shared YAML/JSONC decoder, also used for
//     choice files
//   - [SortByFields] -- the default ordering for choices and groups
//
// This package depends on no other packages in this module.
package config
