// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/nscmd/nscmd/internal/config"
	"github.com/nscmd/nscmd/internal/ctxlog"
	"github.com/nscmd/nscmd/internal/issue"
	"github.com/nscmd/nscmd/pkg/loader"
	"github.com/nscmd/nscmd/pkg/manifest"
	"github.com/nscmd/nscmd/pkg/registry"
	"github.com/nscmd/nscmd/pkg/scan"
	"github.com/nscmd/nscmd/pkg/types"
)

type (
	// App wires CLI services and shared dependencies. It is the composition
	// root for the CLI layer: every Cobra handler receives an App and reaches
	// configuration and loaders through it.
	App struct {
		Config   ConfigProvider
		Registry *registry.Registry
		stdout   io.Writer
		stderr   io.Writer
		flags    rootFlags
	}

	// Dependencies defines the injection points for building an App. Nil
	// fields are replaced with production defaults by NewApp.
	Dependencies struct {
		Config   ConfigProvider
		Registry *registry.Registry
		Stdout   io.Writer
		Stderr   io.Writer
	}

	// ConfigProvider loads configuration using explicit options.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
	}

	// rootFlags holds the persistent flags; empty values defer to the
	// configuration.
	rootFlags struct {
		manifest   string
		namespace  string
		configPath string
		verbose    bool
	}

	// session is the per-invocation state shared by a command handler.
	session struct {
		cfg    *config.Config
		loader *loader.Loader
		logger *slog.Logger
	}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) *App {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.Registry == nil {
		deps.Registry = registry.Default
	}

	return &App{
		Config:   deps.Config,
		Registry: deps.Registry,
		stdout:   deps.Stdout,
		stderr:   deps.Stderr,
	}
}

// settings loads the configuration and applies flag overrides.
func (a *App) settings(ctx context.Context) (*config.Config, error) {
	cfg, err := a.Config.Load(ctx, config.LoadOptions{ConfigFilePath: types.FilesystemPath(a.flags.configPath)})
	if err != nil {
		return nil, err
	}

	if a.flags.manifest != "" {
		cfg.Manifest = a.flags.manifest
	}
	if a.flags.namespace != "" {
		cfg.Namespace = a.flags.namespace
	}
	if a.flags.verbose {
		cfg.UI.Verbose = true
	}
	return cfg, nil
}

// open loads the settings and builds a loader for them. The returned
// context carries the CLI logger. When only the loader fails, the session
// still carries the settings.
func (a *App) open(ctx context.Context) (context.Context, *session, error) {
	cfg, err := a.settings(ctx)
	if err != nil {
		return ctx, nil, err
	}

	logger := ctxlog.New(a.stderr, cfg.UI.Verbose)
	ctx = ctxlog.WithLogger(ctx, logger)

	l, err := loader.New(cfg.Manifest,
		loader.WithNamespace(cfg.Namespace),
		loader.WithRegistry(a.Registry),
		loader.WithLogger(logger),
		loader.WithScanner(scan.New(scan.WithExtension(cfg.Extension), scan.WithLogger(logger))),
		loader.WithManifestOptions(
			manifest.WithSection(cfg.Section),
			manifest.WithMatchPolicy(cfg.MatchPolicy),
		),
	)
	if err != nil {
		return ctx, &session{cfg: cfg, logger: logger}, err
	}

	logger.Debug("loader ready", "manifest", l.ManifestPath(), "namespace", l.Namespace())
	return ctx, &session{cfg: cfg, loader: l, logger: logger}, nil
}

// settings returns the configuration the session was opened with, or nil.
func (s *session) settings() *config.Config {
	if s == nil {
		return nil
	}
	return s.cfg
}

// fail reports err on stderr and converts it into an ExitError. The
// catalogued help for the failure is rendered when one applies; in verbose
// mode the full error chain is printed too. cfg is nil when the
// configuration itself could not be loaded.
func (a *App) fail(ctx context.Context, cfg *config.Config, operation, resource string, err error) error {
	code, id := classifyError(err)

	ae, ok := issue.AsActionable(err)
	if !ok {
		ae = issue.NewErrorContext().
			WithOperation(operation).
			WithResource(resource).
			WithIssue(id).
			WithSuggestions(suggestionsFor(id)...).
			Wrap(err).
			Build()
	}

	scheme := config.ColorSchemeAuto
	verbose := a.flags.verbose
	if cfg != nil {
		scheme = cfg.UI.ColorScheme
		verbose = cfg.UI.Verbose
	}

	if catalogEntry := issue.Get(id); catalogEntry != nil {
		rendered, renderErr := catalogEntry.Render(glamourStyle(scheme))
		if renderErr != nil {
			ctxlog.FromContext(ctx).Warn("failed to render issue catalog entry", "issueID", id, "error", renderErr)
		} else {
			fmt.Fprint(a.stderr, rendered)
		}
	}
	if verbose {
		fmt.Fprintln(a.stderr, formatErrorForDisplay(ae, true))
	}

	return &ExitError{Code: code, Err: ae}
}
