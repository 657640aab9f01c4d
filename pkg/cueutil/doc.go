// SPDX-License-Identifier: MPL-2.0

// Package cueutil provides shared CUE parsing utilities for the manifest and
// configuration loaders.
//
// JSON is valid CUE, so the same pipeline serves composer-style JSON
// manifests and CUE configuration files:
//
//  1. Check the input size
//  2. Compile the embedded schema and the user data
//  3. Unify the data (or a sub-path of it) with a schema definition
//  4. Validate, then either decode to a Go value or hand the unified
//     cue.Value back for ordered field iteration
//
// # Usage
//
//	//go:embed config_schema.cue
//	var schema []byte
//
//	result, err := cueutil.ParseAndDecode[Config](schema, data, "#Config",
//	    cueutil.WithFilename("config.cue"),
//	    cueutil.WithConcrete(false),
//	)
package cueutil
