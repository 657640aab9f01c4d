// SPDX-License-Identifier: MPL-2.0

package platform

import "runtime"

// GOOS values compared against runtime.GOOS.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
)

// Current returns the operating system the binary was built for.
func Current() string {
	return runtime.GOOS
}
