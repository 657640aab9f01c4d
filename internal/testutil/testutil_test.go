// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMustWriteFile_CreatesParents(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "src", "Command", "Db", "MigrateCommand.go")
	MustWriteFile(t, path, "package db\n")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "package db\n" {
		t.Errorf("content = %q", data)
	}
}

func TestWriteDemoProject(t *testing.T) {
	t.Parallel()

	root, manifestPath := WriteDemoProject(t)
	if manifestPath != filepath.Join(root, "composer.json") {
		t.Errorf("manifest path = %q", manifestPath)
	}
	for _, rel := range []string{"composer.json", "src/Command/HelloCommand.go", "src/Command/App/GoodByeCommand.go"} {
		if _, err := os.Stat(filepath.Join(root, filepath.FromSlash(rel))); err != nil {
			t.Errorf("expected %s to exist: %v", rel, err)
		}
	}
}
