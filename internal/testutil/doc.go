// SPDX-License-Identifier: MPL-2.0

// Package testutil provides fail-fast filesystem helpers and fixture
// projects laid out the way the loader expects them.
package testutil
