// SPDX-License-Identifier: MPL-2.0

// Package fspath provides typed wrappers around path/filepath functions that
// accept and return types.FilesystemPath, plus the conversion from
// separator-delimited namespace strings to native paths.
package fspath

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/nscmd/nscmd/pkg/types"
)

// Join wraps filepath.Join, accepting and returning types.FilesystemPath.
func Join(elem ...types.FilesystemPath) types.FilesystemPath {
	strs := make([]string, len(elem))
	for i, e := range elem {
		strs[i] = string(e)
	}
	return types.FilesystemPath(filepath.Join(strs...))
}

// JoinStr wraps filepath.Join, accepting a typed base path and raw string
// segments. Use this when joining a validated path with manifest values or
// OS-provided file names (e.g., from os.ReadDir).
func JoinStr(base types.FilesystemPath, elem ...string) types.FilesystemPath {
	parts := make([]string, 1, 1+len(elem))
	parts[0] = string(base)
	parts = append(parts, elem...)
	return types.FilesystemPath(filepath.Join(parts...))
}

// Dir wraps filepath.Dir for FilesystemPath.
func Dir(p types.FilesystemPath) types.FilesystemPath {
	return types.FilesystemPath(filepath.Dir(string(p)))
}

// Abs wraps filepath.Abs for FilesystemPath. Returns an error if the
// underlying OS call fails.
func Abs(p types.FilesystemPath) (types.FilesystemPath, error) {
	abs, err := filepath.Abs(string(p))
	if err != nil {
		return "", fmt.Errorf("resolving absolute path: %w", err)
	}
	return types.FilesystemPath(abs), nil
}

// FromSeparated converts a string delimited by sep (a namespace remainder
// such as `Command\Admin`, or a composer directory such as "src/Command/")
// into a relative native path. Empty segments are dropped, so leading,
// trailing and doubled separators are harmless.
func FromSeparated(s, sep string) types.FilesystemPath {
	var parts []string
	for seg := range strings.SplitSeq(s, sep) {
		if seg != "" {
			parts = append(parts, seg)
		}
	}
	return types.FilesystemPath(filepath.Join(parts...))
}
