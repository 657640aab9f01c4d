// SPDX-License-Identifier: MPL-2.0

// Package loader resolves command names to command instances by convention.
//
// A Loader ties the other packages together: the manifest maps the
// configured namespace to a base directory, the scanner lists the command
// files below it, the naming package converts between file identifiers and
// command names, and the registry constructs instances for fully-qualified
// type names. Nothing is read or constructed until it is first needed.
package loader
