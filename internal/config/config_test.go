// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"github.com/nscmd/nscmd/internal/issue"
	"github.com/nscmd/nscmd/internal/testutil"
	"github.com/nscmd/nscmd/pkg/manifest"
	"github.com/nscmd/nscmd/pkg/types"
)

// isolatedOptions points every lookup at fresh temp directories.
func isolatedOptions(t *testing.T) LoadOptions {
	t.Helper()
	return LoadOptions{
		ConfigDirPath: types.FilesystemPath(t.TempDir()),
		BaseDir:       types.FilesystemPath(t.TempDir()),
	}
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if cfg.Manifest != "composer.json" {
		t.Errorf("Manifest = %q", cfg.Manifest)
	}
	if cfg.Namespace != `App\Command` {
		t.Errorf("Namespace = %q", cfg.Namespace)
	}
	if cfg.Extension != ".go" {
		t.Errorf("Extension = %q", cfg.Extension)
	}
	if cfg.Section != "autoload.psr-4" {
		t.Errorf("Section = %q", cfg.Section)
	}
	if cfg.MatchPolicy != manifest.MatchFirstDeclared {
		t.Errorf("MatchPolicy = %q", cfg.MatchPolicy)
	}
	if cfg.UI.Verbose || cfg.UI.ColorScheme != ColorSchemeAuto {
		t.Errorf("UI = %+v", cfg.UI)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Namespace = `App\9`
	cfg.MatchPolicy = "best"
	cfg.UI.ColorScheme = "neon"

	err := cfg.Validate()
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got: %v", err)
	}
	for _, sentinel := range []error{types.ErrInvalidNamespace, manifest.ErrInvalidMatchPolicy, ErrInvalidColorScheme} {
		if !errors.Is(err, sentinel) {
			t.Errorf("expected %v in %v", sentinel, err)
		}
	}
	var cfgErr *InvalidConfigError
	if !errors.As(err, &cfgErr) || len(cfgErr.FieldErrors) != 3 {
		t.Errorf("unexpected field errors: %v", err)
	}
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	t.Parallel()

	opts := isolatedOptions(t)
	cfg, err := NewProvider().Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
	path, err := ResolvePath(opts)
	if err != nil || path != "" {
		t.Errorf("ResolvePath() = %q, %v; want empty", path, err)
	}
}

func TestLoad_ConfigDirFile(t *testing.T) {
	t.Parallel()

	opts := isolatedOptions(t)
	testutil.MustWriteFile(t, filepath.Join(string(opts.ConfigDirPath), "config.cue"), `
namespace:    "Acme\\Cli"
extension:    "php"
match_policy: "longest"
ui: verbose: true
`)

	cfg, err := NewProvider().Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Namespace != `Acme\Cli` || cfg.Extension != "php" || cfg.MatchPolicy != manifest.MatchLongestPrefix {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if !cfg.UI.Verbose {
		t.Error("UI.Verbose = false")
	}
	if cfg.Manifest != DefaultManifest || cfg.UI.ColorScheme != ColorSchemeAuto {
		t.Errorf("unset fields should keep defaults: %+v", cfg)
	}
}

func TestLoad_LocalFileFallback(t *testing.T) {
	t.Parallel()

	opts := isolatedOptions(t)
	local := filepath.Join(string(opts.BaseDir), LocalConfigFile)
	testutil.MustWriteFile(t, local, `manifest: "tools/composer.json"`+"\n")

	cfg, err := NewProvider().Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Manifest != "tools/composer.json" {
		t.Errorf("Manifest = %q", cfg.Manifest)
	}
	if path, _ := ResolvePath(opts); path != local {
		t.Errorf("ResolvePath() = %q, want %q", path, local)
	}

	// The config directory takes precedence over the local file.
	dirFile := filepath.Join(string(opts.ConfigDirPath), "config.cue")
	testutil.MustWriteFile(t, dirFile, `manifest: "other.json"`+"\n")
	if path, _ := ResolvePath(opts); path != dirFile {
		t.Errorf("ResolvePath() = %q, want %q", path, dirFile)
	}
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	t.Parallel()

	opts := isolatedOptions(t)
	opts.ConfigFilePath = types.FilesystemPath(filepath.Join(t.TempDir(), "missing.cue"))

	_, err := NewProvider().Load(context.Background(), opts)
	ae, ok := issue.AsActionable(err)
	if !ok {
		t.Fatalf("expected ActionableError, got %T: %v", err, err)
	}
	if ae.Issue != issue.ConfigLoadFailedId {
		t.Errorf("Issue = %d, want ConfigLoadFailedId", ae.Issue)
	}
	if !strings.Contains(err.Error(), "config file not found") {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestLoad_SchemaViolations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{"unknown field", `container_engine: "docker"`},
		{"bad policy", `match_policy: "best"`},
		{"bad color scheme", `ui: color_scheme: "neon"`},
		{"bad extension", `extension: ".g o"`},
		{"syntax error", `namespace: `},
		{"wrong type", `ui: verbose: "yes"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "config.cue")
			testutil.MustWriteFile(t, path, tt.content+"\n")
			opts := isolatedOptions(t)
			opts.ConfigFilePath = types.FilesystemPath(path)

			_, err := NewProvider().Load(context.Background(), opts)
			if err == nil {
				t.Fatal("expected error")
			}
			if ae, ok := issue.AsActionable(err); !ok || ae.Operation != "load configuration" {
				t.Errorf("expected load configuration error, got: %v", err)
			}
		})
	}
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("NSCMD_NAMESPACE", `Env\Command`)
	t.Setenv("NSCMD_UI_VERBOSE", "true")

	opts := isolatedOptions(t)
	testutil.MustWriteFile(t, filepath.Join(string(opts.ConfigDirPath), "config.cue"), `namespace: "File\\Command"`+"\n")

	cfg, err := NewProvider().Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Namespace != `Env\Command` {
		t.Errorf("Namespace = %q, environment should win over the file", cfg.Namespace)
	}
	if !cfg.UI.Verbose {
		t.Error("UI.Verbose = false, want true from NSCMD_UI_VERBOSE")
	}
}

func TestLoad_InvalidEnvironmentOverride(t *testing.T) {
	t.Setenv("NSCMD_MATCH_POLICY", "best")

	_, err := NewProvider().Load(context.Background(), isolatedOptions(t))
	if !errors.Is(err, manifest.ErrInvalidMatchPolicy) {
		t.Fatalf("expected ErrInvalidMatchPolicy, got: %v", err)
	}
}

func TestLoad_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewProvider().Load(ctx, isolatedOptions(t))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got: %v", err)
	}
}

func TestLoadOptions_Validate(t *testing.T) {
	t.Parallel()

	if err := (LoadOptions{}).Validate(); err != nil {
		t.Errorf("empty LoadOptions should be valid, got: %v", err)
	}
	err := LoadOptions{ConfigFilePath: "  ", BaseDir: "\t"}.Validate()
	if !errors.Is(err, ErrInvalidLoadOptions) {
		t.Fatalf("expected ErrInvalidLoadOptions, got: %v", err)
	}
	var optsErr *InvalidLoadOptionsError
	if !errors.As(err, &optsErr) || len(optsErr.FieldErrors) != 2 {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestGenerateCUE_RoundTrip(t *testing.T) {
	t.Parallel()

	want := DefaultConfig()
	want.Namespace = `Acme\Cli`
	want.UI.Verbose = true

	opts := isolatedOptions(t)
	testutil.MustWriteFile(t, filepath.Join(string(opts.ConfigDirPath), "config.cue"), GenerateCUE(want))

	got, err := NewProvider().Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if *got != *want {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestGenerateTOML(t *testing.T) {
	t.Parallel()

	out, err := GenerateTOML(DefaultConfig())
	if err != nil {
		t.Fatalf("GenerateTOML() error = %v", err)
	}

	var decoded Config
	if err := toml.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("generated TOML does not parse: %v\n%s", err, out)
	}
	if decoded != *DefaultConfig() {
		t.Errorf("decoded = %+v", decoded)
	}
	if !strings.Contains(out, "[ui]") {
		t.Errorf("expected a [ui] table:\n%s", out)
	}
}

func TestCreateDefaultConfig(t *testing.T) {
	t.Parallel()

	dir := types.FilesystemPath(filepath.Join(t.TempDir(), "nested"))
	path, err := CreateDefaultConfig(dir)
	if err != nil {
		t.Fatalf("CreateDefaultConfig() error = %v", err)
	}
	if path != filepath.Join(string(dir), "config.cue") {
		t.Errorf("path = %q", path)
	}

	opts := LoadOptions{ConfigDirPath: dir, BaseDir: types.FilesystemPath(t.TempDir())}
	cfg, err := NewProvider().Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}

	// A second call keeps the existing file.
	testutil.MustWriteFile(t, path, `namespace: "Kept"`+"\n")
	if _, err := CreateDefaultConfig(dir); err != nil {
		t.Fatal(err)
	}
	cfg, err = NewProvider().Load(context.Background(), opts)
	if err != nil || cfg.Namespace != "Kept" {
		t.Errorf("existing file overwritten: %+v, %v", cfg, err)
	}
}
