// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"path/filepath"
	"testing"
)

// DemoManifest maps `App\Command` to src/Command, the layout used by
// the demo project and most loader tests.
const DemoManifest = `{
	"name": "acme/demo",
	"autoload": {
		"psr-4": {
			"App\\Command\\": "src/Command/"
		}
	}
}
`

// WriteProject creates a project under a fresh temp dir: manifest is
// written to composer.json and every slash-separated path in files is
// created with placeholder Go source. It returns the project root and the
// manifest path.
func WriteProject(t testing.TB, manifest string, files ...string) (root, manifestPath string) {
	t.Helper()
	root = t.TempDir()
	manifestPath = filepath.Join(root, "composer.json")
	MustWriteFile(t, manifestPath, manifest)
	for _, f := range files {
		MustWriteFile(t, filepath.Join(root, filepath.FromSlash(f)), "package command\n")
	}
	return root, manifestPath
}

// WriteDemoProject writes DemoManifest with the hello and app:good-bye
// command files.
func WriteDemoProject(t testing.TB) (root, manifestPath string) {
	t.Helper()
	return WriteProject(t, DemoManifest,
		"src/Command/HelloCommand.go",
		"src/Command/App/GoodByeCommand.go",
	)
}
