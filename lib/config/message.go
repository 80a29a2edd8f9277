// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Message is a user-facing text: either a literal or a function of the
// value it describes (the typed value, or the item limit). The zero
// Message resolves to "".
type Message struct {
	literal string
	format  func(value string) string
}

// Text returns a literal message.
func Text(literal string) Message {
	return Message{literal: literal}
}

// Func returns a message computed from its argument.
func Func(format func(value string) string) Message {
	return Message{format: format}
}

// Resolve renders the message for value. Literals ignore value.
func (message Message) Resolve(value string) string {
	if message.format != nil {
		return message.format(value)
	}
	return message.literal
}

// String renders the message with no argument.
func (message Message) String() string {
	return message.Resolve("")
}

// UnmarshalYAML reads a literal message.
func (message *Message) UnmarshalYAML(node *yaml.Node) error {
	var literal string
	if err := node.Decode(&literal); err != nil {
		return err
	}
	*message = Text(literal)
	return nil
}

// UnmarshalJSON reads a literal message.
func (message *Message) UnmarshalJSON(data []byte) error {
	var literal string
	if err := json.Unmarshal(data, &literal); err != nil {
		return err
	}
	*message = Text(literal)
	return nil
}
