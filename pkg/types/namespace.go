// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// NamespaceSeparator separates the segments of namespaces and type identifiers.
const NamespaceSeparator = `\`

// ErrInvalidNamespace is the sentinel error wrapped by InvalidNamespaceError.
var ErrInvalidNamespace = errors.New("invalid namespace")

var namespaceSegmentPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

type (
	// Namespace is a NamespaceSeparator-delimited logical grouping of command
	// types, such as `App\Command`. Build it with NewNamespace so surrounding
	// whitespace and separators are stripped.
	Namespace string

	// InvalidNamespaceError is returned when a Namespace is empty or has a
	// segment that is not a valid identifier.
	InvalidNamespaceError struct {
		Value   Namespace
		Segment string
	}
)

// NewNamespace trims whitespace and leading/trailing separators from s.
func NewNamespace(s string) Namespace {
	return Namespace(strings.Trim(strings.TrimSpace(s), NamespaceSeparator))
}

// String returns the string representation of the Namespace.
func (ns Namespace) String() string { return string(ns) }

// Validate returns an error if the namespace is empty or malformed.
func (ns Namespace) Validate() error {
	if ns == "" {
		return &InvalidNamespaceError{Value: ns}
	}
	for _, seg := range strings.Split(string(ns), NamespaceSeparator) {
		if !namespaceSegmentPattern.MatchString(seg) {
			return &InvalidNamespaceError{Value: ns, Segment: seg}
		}
	}
	return nil
}

// TrimPrefix reports whether prefix covers ns on a segment boundary and
// returns the remainder without its leading separator. An empty prefix
// covers every namespace.
//
//	Namespace(`App\Command\Admin`).TrimPrefix(`App`) // `Command\Admin`, true
//	Namespace(`Application`).TrimPrefix(`App`)      // "", false
func (ns Namespace) TrimPrefix(prefix string) (string, bool) {
	prefix = strings.TrimRight(prefix, NamespaceSeparator)
	if prefix == "" {
		return string(ns), true
	}
	if string(ns) == prefix {
		return "", true
	}
	rest, ok := strings.CutPrefix(string(ns), prefix+NamespaceSeparator)
	if !ok {
		return "", false
	}
	return rest, true
}

// Qualify builds the fully-qualified type name for id within ns, appending
// suffix to the last segment.
func (ns Namespace) Qualify(id TypeIdentifier, suffix string) string {
	if ns == "" {
		return string(id) + suffix
	}
	return string(ns) + NamespaceSeparator + string(id) + suffix
}

// Error implements the error interface for InvalidNamespaceError.
func (e *InvalidNamespaceError) Error() string {
	if e.Value == "" {
		return "invalid namespace: must be non-empty"
	}
	return fmt.Sprintf("invalid namespace %q: bad segment %q", e.Value, e.Segment)
}

// Unwrap returns ErrInvalidNamespace for errors.Is() compatibility.
func (e *InvalidNamespaceError) Unwrap() error { return ErrInvalidNamespace }
