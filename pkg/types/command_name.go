// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// CommandSeparator separates the segments of a CommandName.
const CommandSeparator = ":"

// ErrInvalidCommandName is the sentinel error wrapped by InvalidCommandNameError.
var ErrInvalidCommandName = errors.New("invalid command name")

var commandSegmentPattern = regexp.MustCompile(`^[a-z][a-z0-9]*(?:-[a-z0-9]+)*$`)

type (
	// CommandName is the user-facing identifier of a command: colon-delimited
	// kebab-case segments such as "hello" or "app:good-bye".
	CommandName string

	// InvalidCommandNameError is returned when a CommandName has an empty or
	// malformed segment.
	InvalidCommandNameError struct {
		Value   CommandName
		Segment string
	}
)

// String returns the string representation of the CommandName.
func (n CommandName) String() string { return string(n) }

// Segments splits the name on CommandSeparator.
func (n CommandName) Segments() []string {
	return strings.Split(string(n), CommandSeparator)
}

// Validate returns an error unless every segment is lower-case kebab-case
// starting with a letter.
func (n CommandName) Validate() error {
	if n == "" {
		return &InvalidCommandNameError{Value: n}
	}
	for _, seg := range n.Segments() {
		if !commandSegmentPattern.MatchString(seg) {
			return &InvalidCommandNameError{Value: n, Segment: seg}
		}
	}
	return nil
}

// Error implements the error interface for InvalidCommandNameError.
func (e *InvalidCommandNameError) Error() string {
	if e.Value == "" {
		return "invalid command name: must be non-empty"
	}
	return fmt.Sprintf("invalid command name %q: segment %q is not kebab-case", e.Value, e.Segment)
}

// Unwrap returns ErrInvalidCommandName for errors.Is() compatibility.
func (e *InvalidCommandNameError) Unwrap() error { return ErrInvalidCommandName }
