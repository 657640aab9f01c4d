// SPDX-License-Identifier: MPL-2.0

// Package manifest reads a composer-style JSON manifest and resolves a code
// namespace to the directory that holds its sources.
//
// Only one field path of the manifest is read (by default "autoload.psr-4"):
// an object mapping namespace prefixes to directories relative to the
// manifest's own directory. Entries keep their declaration order, which is
// also the order in which prefixes are tried during resolution.
package manifest
