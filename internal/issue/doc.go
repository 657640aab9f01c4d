// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// ActionableError carries the failed operation, the resource involved, and
// remediation hints; it may point to a catalogued Issue whose Markdown help
// is rendered with glamour when the CLI reports the failure.
package issue
