// SPDX-License-Identifier: MPL-2.0

// Package platform names the operating systems nscmd treats specially when
// locating per-user configuration.
package platform
