// SPDX-License-Identifier: MPL-2.0

// Command nscmd inspects convention-based command layouts.
package main

import (
	cmd "github.com/nscmd/nscmd/cmd/nscmd"

	// Demo commands, registered from init.
	_ "github.com/nscmd/nscmd/internal/fixture/src/Command"
	_ "github.com/nscmd/nscmd/internal/fixture/src/Command/App"
)

func main() {
	cmd.Execute()
}
