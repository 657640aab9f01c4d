// SPDX-License-Identifier: MPL-2.0

// Package types defines the value types shared by the loader packages:
// command names, type identifiers, namespaces, filesystem paths and exit
// codes. Each type carries its own validation and a sentinel error so callers
// can use errors.Is without depending on a concrete error struct.
//
// This package is a leaf dependency: it imports only the standard library.
package types
