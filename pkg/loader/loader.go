// SPDX-License-Identifier: MPL-2.0

package loader

import (
	"log/slog"
	"sync"

	"github.com/nscmd/nscmd/pkg/manifest"
	"github.com/nscmd/nscmd/pkg/naming"
	"github.com/nscmd/nscmd/pkg/registry"
	"github.com/nscmd/nscmd/pkg/scan"
	"github.com/nscmd/nscmd/pkg/types"
)

// DefaultNamespace is the namespace searched when none is configured.
const DefaultNamespace types.Namespace = `App\Command`

type (
	// Loader lazily resolves command names. It is safe for concurrent use.
	Loader struct {
		namespace types.Namespace
		registry  *registry.Registry
		scanner   *scan.Scanner
		logger    *slog.Logger

		mu        sync.Mutex
		resolver  *manifest.Resolver
		baseDir   types.FilesystemPath
		typeNames map[types.CommandName]string
		instances map[types.CommandName]registry.Command
	}

	// Option configures a Loader.
	Option func(*options)

	options struct {
		namespace    string
		registry     *registry.Registry
		scanner      *scan.Scanner
		logger       *slog.Logger
		manifestOpts []manifest.Option
	}
)

// WithNamespace sets the namespace whose commands are loaded
// (default DefaultNamespace).
func WithNamespace(ns string) Option {
	return func(o *options) {
		o.namespace = ns
	}
}

// WithRegistry sets the registry used to construct commands
// (default registry.Default).
func WithRegistry(r *registry.Registry) Option {
	return func(o *options) {
		o.registry = r
	}
}

// WithScanner sets the scanner used to enumerate command files. Its suffix
// is also appended to fully-qualified type names.
func WithScanner(s *scan.Scanner) Option {
	return func(o *options) {
		o.scanner = s
	}
}

// WithManifestOptions passes options to the manifest resolver.
func WithManifestOptions(opts ...manifest.Option) Option {
	return func(o *options) {
		o.manifestOpts = append(o.manifestOpts, opts...)
	}
}

// WithLogger sets the logger for the loader and, unless overridden by
// WithManifestOptions, the manifest resolver.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// New creates a Loader for the manifest at manifestPath. The manifest is
// not read until a command is looked up or listed.
func New(manifestPath string, opts ...Option) (*Loader, error) {
	o := options{
		namespace: string(DefaultNamespace),
		registry:  registry.Default,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	ns := types.NewNamespace(o.namespace)
	if err := ns.Validate(); err != nil {
		return nil, err
	}
	if o.scanner == nil {
		o.scanner = scan.New(scan.WithLogger(o.logger))
	}

	resolver, err := manifest.New(types.FilesystemPath(manifestPath),
		append([]manifest.Option{manifest.WithLogger(o.logger)}, o.manifestOpts...)...)
	if err != nil {
		return nil, err
	}

	return &Loader{
		namespace: ns,
		registry:  o.registry,
		scanner:   o.scanner,
		logger:    o.logger,
		resolver:  resolver,
		typeNames: make(map[types.CommandName]string),
		instances: make(map[types.CommandName]registry.Command),
	}, nil
}

// Namespace returns the configured namespace.
func (l *Loader) Namespace() types.Namespace { return l.namespace }

// ManifestPath returns the absolute manifest path.
func (l *Loader) ManifestPath() types.FilesystemPath { return l.resolver.Path() }

// Has reports whether name resolves to a command. Malformed and unknown
// names report false; a manifest that cannot be loaded or does not map the
// namespace is returned as an error.
func (l *Loader) Has(name types.CommandName) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.instances[name]; ok {
		return true, nil
	}
	if _, err := l.baseDirectory(); err != nil {
		return false, err
	}
	typeName, err := l.typeName(name)
	if err != nil {
		return false, nil
	}
	return l.registry.Has(typeName), nil
}

// Get returns the command for name, constructing it on first use. Later
// calls return the same instance.
func (l *Loader) Get(name types.CommandName) (registry.Command, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if cmd, ok := l.instances[name]; ok {
		return cmd, nil
	}
	if _, err := l.baseDirectory(); err != nil {
		return nil, err
	}
	typeName, err := l.typeName(name)
	if err != nil {
		return nil, &UnknownCommandError{Name: name, Cause: err}
	}

	cmd, err := l.registry.New(typeName)
	if err != nil {
		return nil, &UnknownCommandError{Name: name, TypeName: typeName, Cause: err}
	}
	l.instances[name] = cmd
	l.logger.Debug("command constructed", "name", name, "type", typeName)
	return cmd, nil
}

// Names lists every command found below the base directory, in scan order.
// Any failure aborts the listing.
func (l *Loader) Names() ([]types.CommandName, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	base, err := l.baseDirectory()
	if err != nil {
		return nil, err
	}
	ids, err := l.scanner.List(base)
	if err != nil {
		return nil, err
	}

	names := make([]types.CommandName, 0, len(ids))
	for _, id := range ids {
		names = append(names, naming.ToCommandName(id))
	}
	return names, nil
}

// TypeName returns the fully-qualified type name name maps to, whether or
// not such a type is registered.
func (l *Loader) TypeName(name types.CommandName) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.typeName(name)
}

// BaseDirectory returns the directory the configured namespace maps to.
func (l *Loader) BaseDirectory() (types.FilesystemPath, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.baseDirectory()
}

func (l *Loader) baseDirectory() (types.FilesystemPath, error) {
	if l.baseDir != "" {
		return l.baseDir, nil
	}
	dir, err := l.resolver.ResolveBaseDirectory(l.namespace)
	if err != nil {
		return "", err
	}
	l.baseDir = dir
	return dir, nil
}

func (l *Loader) typeName(name types.CommandName) (string, error) {
	if typeName, ok := l.typeNames[name]; ok {
		return typeName, nil
	}
	if err := name.Validate(); err != nil {
		return "", err
	}
	typeName := l.namespace.Qualify(naming.ToTypeSegments(name), l.scanner.Suffix())
	l.typeNames[name] = typeName
	return typeName, nil
}
