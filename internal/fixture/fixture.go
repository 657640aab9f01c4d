// SPDX-License-Identifier: MPL-2.0

// Package fixture is a demo project laid out by convention: composer.json
// maps `App\Command\` to src/Command/, and every command below it is a Go
// type that registers itself with registry.Default.
//
// Import the command packages for their side effects:
//
//	import (
//		_ "github.com/nscmd/nscmd/internal/fixture/src/Command"
//		_ "github.com/nscmd/nscmd/internal/fixture/src/Command/App"
//	)
package fixture

import (
	"path/filepath"
	"runtime"
)

// ManifestFile is the manifest file name of the demo project.
const ManifestFile = "composer.json"

// Dir returns the absolute path of the demo project.
func Dir() string {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		panic("fixture: cannot locate source directory")
	}
	return filepath.Dir(file)
}

// ManifestPath returns the absolute path of the demo manifest.
func ManifestPath() string {
	return filepath.Join(Dir(), ManifestFile)
}
