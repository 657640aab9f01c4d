// SPDX-License-Identifier: MPL-2.0

// Package app holds the demo commands of the app namespace.
package app

import "github.com/nscmd/nscmd/pkg/registry"

// GoodByeCommand is listed as "app:good-bye".
type GoodByeCommand struct{}

func init() {
	registry.RegisterType[GoodByeCommand](registry.Default, `App\Command\App\GoodByeCommand`)
}

// Description returns a one-line summary.
func (c *GoodByeCommand) Description() string { return "Say good-bye" }
