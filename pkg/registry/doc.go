// SPDX-License-Identifier: MPL-2.0

// Package registry maps fully-qualified command type names to zero-argument
// factories.
//
// Go has no class loader, so command packages register their types
// explicitly, usually from init:
//
//	func init() {
//		registry.RegisterType[HelloCommand](registry.Default, `App\Command\HelloCommand`)
//	}
//
// Type names are matched case-insensitively, the way class names are in the
// languages this naming convention comes from. Leading namespace separators
// are ignored.
package registry
