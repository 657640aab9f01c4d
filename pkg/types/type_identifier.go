// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidTypeIdentifier is the sentinel error wrapped by InvalidTypeIdentifierError.
var ErrInvalidTypeIdentifier = errors.New("invalid type identifier")

var identifierSegmentPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*$`)

type (
	// TypeIdentifier is the PascalCase, NamespaceSeparator-delimited name of a
	// command type relative to the configured namespace, without the command
	// suffix (e.g. `App\GoodBye`).
	TypeIdentifier string

	// InvalidTypeIdentifierError is returned when a TypeIdentifier has an
	// empty segment or a segment that is not alphanumeric.
	InvalidTypeIdentifierError struct {
		Value   TypeIdentifier
		Segment string
	}
)

// String returns the string representation of the TypeIdentifier.
func (id TypeIdentifier) String() string { return string(id) }

// Segments splits the identifier on NamespaceSeparator.
func (id TypeIdentifier) Segments() []string {
	return strings.Split(string(id), NamespaceSeparator)
}

// Validate returns an error unless every segment starts with a letter and
// contains only ASCII letters and digits.
func (id TypeIdentifier) Validate() error {
	if id == "" {
		return &InvalidTypeIdentifierError{Value: id}
	}
	for _, seg := range id.Segments() {
		if !identifierSegmentPattern.MatchString(seg) {
			return &InvalidTypeIdentifierError{Value: id, Segment: seg}
		}
	}
	return nil
}

// Error implements the error interface for InvalidTypeIdentifierError.
func (e *InvalidTypeIdentifierError) Error() string {
	if e.Value == "" {
		return "invalid type identifier: must be non-empty"
	}
	return fmt.Sprintf("invalid type identifier %q: bad segment %q", e.Value, e.Segment)
}

// Unwrap returns ErrInvalidTypeIdentifier for errors.Is() compatibility.
func (e *InvalidTypeIdentifierError) Unwrap() error { return ErrInvalidTypeIdentifier }
