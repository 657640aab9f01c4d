// SPDX-License-Identifier: MPL-2.0

package loader

import (
	"errors"
	"fmt"

	"github.com/nscmd/nscmd/pkg/manifest"
	"github.com/nscmd/nscmd/pkg/scan"
	"github.com/nscmd/nscmd/pkg/types"
)

// ErrUnknownCommand is the sentinel wrapped by UnknownCommandError.
var ErrUnknownCommand = errors.New("unknown command")

// UnknownCommandError is returned by Get when a name does not resolve to a
// constructible type.
type UnknownCommandError struct {
	Name types.CommandName
	// TypeName is the fully-qualified type name that was looked up. Empty
	// when Name itself is malformed.
	TypeName string
	Cause    error
}

// Error implements the error interface.
func (e *UnknownCommandError) Error() string {
	if e.TypeName == "" {
		return fmt.Sprintf("command %q does not exist: %v", e.Name, e.Cause)
	}
	return fmt.Sprintf("command %q does not exist (no type %s)", e.Name, e.TypeName)
}

// Unwrap returns ErrUnknownCommand and the underlying cause.
func (e *UnknownCommandError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrUnknownCommand}
	}
	return []error{ErrUnknownCommand, e.Cause}
}

// IsMisconfigured reports whether err comes from the project setup rather
// than from the requested name: an unreadable manifest, an unmapped
// namespace, or an unreadable commands directory.
func IsMisconfigured(err error) bool {
	return errors.Is(err, manifest.ErrLoad) ||
		errors.Is(err, manifest.ErrNoMapping) ||
		errors.Is(err, scan.ErrScan)
}
