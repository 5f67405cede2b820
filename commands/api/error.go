// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

package api

import "errors"

var ErrEmptyCommand = errors.New("empty command")

// UnknownCommandError is returned when no registered command matches the
// input.
type UnknownCommandError struct {
	Input string
}

func (e *UnknownCommandError) Error() string {
	return "unknown command: " + e.Input
}

func ErrUnknownCommand(input string) error {
	return &UnknownCommandError{Input: input}
}
