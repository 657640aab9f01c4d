// SPDX-License-Identifier: MPL-2.0

// Package command holds the top-level demo commands.
package command

import "github.com/nscmd/nscmd/pkg/registry"

// HelloCommand is listed as "hello".
type HelloCommand struct {
	Greeting string
}

func init() {
	registry.Register(`App\Command\HelloCommand`, func() registry.Command {
		return &HelloCommand{Greeting: "Hello"}
	})
}

// Description returns a one-line summary.
func (c *HelloCommand) Description() string { return "Print a greeting" }
