// SPDX-License-Identifier: MPL-2.0

package manifest

import (
	"errors"
	"fmt"

	"github.com/nscmd/nscmd/pkg/types"
)

var (
	// ErrLoad is the sentinel wrapped by LoadError.
	ErrLoad = errors.New("manifest load failed")
	// ErrNoMapping is the sentinel wrapped by NoMappingError.
	ErrNoMapping = errors.New("no manifest mapping for namespace")
)

type (
	// LoadError is returned when the manifest file cannot be read, is not
	// valid JSON, or lacks the prefix-mapping section.
	LoadError struct {
		Path    types.FilesystemPath
		Section string
		Cause   error
	}

	// NoMappingError is returned when no manifest prefix covers the
	// requested namespace.
	NoMappingError struct {
		Path      types.FilesystemPath
		Section   string
		Namespace types.Namespace
	}
)

// Error implements the error interface.
func (e *LoadError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("error loading %s", e.Path)
	}
	return fmt.Sprintf("error loading %s: %v", e.Path, e.Cause)
}

// Unwrap exposes both ErrLoad and the underlying cause.
func (e *LoadError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrLoad}
	}
	return []error{ErrLoad, e.Cause}
}

// Error implements the error interface.
func (e *NoMappingError) Error() string {
	return fmt.Sprintf("there is no %s entry for %s in %s", e.Section, e.Namespace, e.Path)
}

// Unwrap returns ErrNoMapping for errors.Is() compatibility.
func (e *NoMappingError) Unwrap() error { return ErrNoMapping }
