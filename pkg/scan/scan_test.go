// SPDX-License-Identifier: MPL-2.0

package scan

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/nscmd/nscmd/internal/testutil"
	"github.com/nscmd/nscmd/pkg/types"
)

func writeTree(t *testing.T, files ...string) types.FilesystemPath {
	t.Helper()
	root := t.TempDir()
	for _, f := range files {
		testutil.MustWriteFile(t, filepath.Join(root, filepath.FromSlash(f)), "package command\n")
	}
	return types.FilesystemPath(root)
}

func TestList_DemoLayout(t *testing.T) {
	t.Parallel()

	base := writeTree(t, "HelloCommand.go", "App/GoodByeCommand.go")
	got, err := New().List(base)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	want := []types.TypeIdentifier{"Hello", `App\GoodBye`}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("List() mismatch (-want +got):\n%s", diff)
	}
}

func TestList_Ordering(t *testing.T) {
	t.Parallel()

	base := writeTree(t,
		"Zed/ZCommand.go",
		"ZuluCommand.go",
		"AlphaCommand.go",
		"App/Nested/DeepCommand.go",
		"App/ByeCommand.go",
		"Beta/ACommand.go",
	)
	got, err := New().List(base)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	want := []types.TypeIdentifier{
		"Alpha",
		"Zulu",
		`App\Bye`,
		`App\Nested\Deep`,
		`Beta\A`,
		`Zed\Z`,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("List() mismatch (-want +got):\n%s", diff)
	}
}

func TestList_FiltersNonCommands(t *testing.T) {
	t.Parallel()

	base := writeTree(t,
		"HelloCommand.go",
		"Command.go",
		"HelloCommand_test.go",
		"helpers.go",
		"HelloCommand.php",
		"Bad-NameCommand.go",
		"README.md",
	)
	got, err := New().List(base)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if diff := cmp.Diff([]types.TypeIdentifier{"Hello"}, got); diff != "" {
		t.Errorf("List() mismatch (-want +got):\n%s", diff)
	}
}

func TestList_CustomConvention(t *testing.T) {
	t.Parallel()

	base := writeTree(t, "HelloCommand.php", "App/GoodByeCommand.php", "ToolCommand.go", "CleanTask.php")

	got, err := New(WithExtension("php")).List(base)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if diff := cmp.Diff([]types.TypeIdentifier{"Hello", `App\GoodBye`}, got); diff != "" {
		t.Errorf("php extension mismatch (-want +got):\n%s", diff)
	}

	got, err = New(WithExtension(".php"), WithSuffix("Task")).List(base)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if diff := cmp.Diff([]types.TypeIdentifier{"Clean"}, got); diff != "" {
		t.Errorf("Task suffix mismatch (-want +got):\n%s", diff)
	}
}

func TestList_EmptyDirectory(t *testing.T) {
	t.Parallel()

	got, err := New().List(types.FilesystemPath(t.TempDir()))
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no identifiers, got %v", got)
	}
}

func TestIdentifiers_MissingDirectory(t *testing.T) {
	t.Parallel()

	missing := types.FilesystemPath(filepath.Join(t.TempDir(), "nope"))
	seq, err := New().Identifiers(missing)
	if seq != nil {
		t.Error("sequence should be nil on error")
	}
	var scanErr *ScanError
	if !errors.As(err, &scanErr) {
		t.Fatalf("expected *ScanError, got: %v", err)
	}
	if scanErr.Dir != missing {
		t.Errorf("Dir = %q, want %q", scanErr.Dir, missing)
	}
	if !errors.Is(err, ErrScan) || !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error should wrap ErrScan and fs.ErrNotExist, got: %v", err)
	}
}

func TestIdentifiers_NotADirectory(t *testing.T) {
	t.Parallel()

	base := writeTree(t, "HelloCommand.go")
	_, err := New().Identifiers(types.FilesystemPath(filepath.Join(string(base), "HelloCommand.go")))
	if !errors.Is(err, ErrScan) {
		t.Fatalf("expected ErrScan, got: %v", err)
	}
}

func TestIdentifiers_LazyAndRestartable(t *testing.T) {
	t.Parallel()

	base := writeTree(t, "AlphaCommand.go", "BetaCommand.go", "GammaCommand.go")
	seq, err := New().Identifiers(base)
	if err != nil {
		t.Fatalf("Identifiers() error = %v", err)
	}

	var first []types.TypeIdentifier
	for id, err := range seq {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		first = append(first, id)
		if len(first) == 2 {
			break
		}
	}
	if diff := cmp.Diff([]types.TypeIdentifier{"Alpha", "Beta"}, first); diff != "" {
		t.Errorf("early stop mismatch (-want +got):\n%s", diff)
	}

	testutil.MustWriteFile(t, filepath.Join(string(base), "DeltaCommand.go"), "package command\n")
	var second []types.TypeIdentifier
	for id, err := range seq {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second = append(second, id)
	}
	if diff := cmp.Diff([]types.TypeIdentifier{"Alpha", "Beta", "Delta", "Gamma"}, second); diff != "" {
		t.Errorf("rescan mismatch (-want +got):\n%s", diff)
	}
}
