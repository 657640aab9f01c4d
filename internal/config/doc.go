// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with CUE as the file format.
//
// Configuration is read from config.cue in the platform config directory
// (~/.config/nscmd on Linux, ~/Library/Application Support/nscmd on macOS,
// %APPDATA%\nscmd on Windows) or, failing that, from nscmd.cue in the
// working directory. Files are validated against config_schema.cue, and
// NSCMD_* environment variables override file values.
package config
