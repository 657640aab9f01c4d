// SPDX-License-Identifier: MPL-2.0

package manifest

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nscmd/nscmd/pkg/types"
)

const (
	// MatchFirstDeclared picks the first entry, in manifest order, whose
	// prefix covers the namespace. A short prefix declared before a longer
	// one wins.
	MatchFirstDeclared MatchPolicy = "first"
	// MatchLongestPrefix picks the most specific covering prefix. Ties go
	// to the entry declared first.
	MatchLongestPrefix MatchPolicy = "longest"
)

// ErrInvalidMatchPolicy is the sentinel error wrapped by InvalidMatchPolicyError.
var ErrInvalidMatchPolicy = errors.New("invalid match policy")

type (
	// MatchPolicy selects among several manifest prefixes covering a namespace.
	MatchPolicy string

	// InvalidMatchPolicyError is returned for unknown MatchPolicy values.
	InvalidMatchPolicyError struct {
		Value MatchPolicy
	}
)

// Validate returns an error for unknown policies.
func (p MatchPolicy) Validate() error {
	switch p {
	case MatchFirstDeclared, MatchLongestPrefix:
		return nil
	default:
		return &InvalidMatchPolicyError{Value: p}
	}
}

// String returns the string representation of the MatchPolicy.
func (p MatchPolicy) String() string { return string(p) }

func (p MatchPolicy) match(entries []Entry, ns types.Namespace) (Entry, string, bool) {
	var (
		best     Entry
		bestRest string
		bestLen  = -1
		found    bool
	)
	for _, e := range entries {
		rest, ok := ns.TrimPrefix(e.Prefix)
		if !ok {
			continue
		}
		if p == MatchFirstDeclared {
			return e, rest, true
		}
		if l := len(strings.TrimRight(e.Prefix, types.NamespaceSeparator)); l > bestLen {
			best, bestRest, bestLen, found = e, rest, l, true
		}
	}
	return best, bestRest, found
}

// Error implements the error interface.
func (e *InvalidMatchPolicyError) Error() string {
	return fmt.Sprintf("invalid match policy %q (expected %q or %q)", e.Value, MatchFirstDeclared, MatchLongestPrefix)
}

// Unwrap returns ErrInvalidMatchPolicy for errors.Is() compatibility.
func (e *InvalidMatchPolicyError) Unwrap() error { return ErrInvalidMatchPolicy }
