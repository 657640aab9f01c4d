// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the nscmd command-line interface.
//
// The CLI inspects a project through pkg/loader: it lists the commands found
// by convention, checks and resolves single names, and shows where the
// configured namespace lives on disk. Command types must be registered in
// the binary; main imports the demo commands for that purpose.
package cmd
