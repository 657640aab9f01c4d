// SPDX-License-Identifier: MPL-2.0

package manifest

import (
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"cuelang.org/go/cue"

	"github.com/nscmd/nscmd/pkg/cueutil"
	"github.com/nscmd/nscmd/pkg/fspath"
	"github.com/nscmd/nscmd/pkg/types"
)

const (
	// DefaultSection is the field path read when no section is configured.
	DefaultSection = "autoload.psr-4"

	// DirectorySeparator separates segments of manifest directory values,
	// independent of the host platform.
	DirectorySeparator = "/"
)

//go:embed manifest_schema.cue
var mappingSchema []byte

type (
	// Entry is one prefix mapping as declared in the manifest.
	Entry struct {
		// Prefix is the namespace prefix, with any trailing separator kept.
		Prefix string
		// Directories are the candidate directories, relative to the manifest
		// directory and DirectorySeparator-delimited. Never empty.
		Directories []string
	}

	// Manifest is the parsed prefix mapping, in declaration order.
	Manifest struct {
		Path    types.FilesystemPath
		Section string
		Entries []Entry
	}

	// Resolver loads a manifest on first use and resolves namespaces to base
	// directories. A Resolver is not safe for concurrent use.
	Resolver struct {
		path     types.FilesystemPath
		rootDir  types.FilesystemPath
		section  string
		policy   MatchPolicy
		logger   *slog.Logger
		manifest *Manifest
	}

	// Option configures a Resolver.
	Option func(*Resolver)
)

// WithSection sets the dotted field path of the prefix mapping
// (default DefaultSection).
func WithSection(section string) Option {
	return func(r *Resolver) {
		r.section = section
	}
}

// WithMatchPolicy sets how competing prefixes are chosen
// (default MatchFirstDeclared).
func WithMatchPolicy(p MatchPolicy) Option {
	return func(r *Resolver) {
		r.policy = p
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(r *Resolver) {
		r.logger = l
	}
}

// New creates a Resolver for the manifest at path. The file is not read
// until the first call to Load or ResolveBaseDirectory.
func New(path types.FilesystemPath, opts ...Option) (*Resolver, error) {
	if err := path.Validate(); err != nil {
		return nil, err
	}
	abs, err := fspath.Abs(path)
	if err != nil {
		return nil, err
	}
	// Resolve symlinks when the file exists so the root directory is the
	// real project directory; a missing file is reported by Load.
	if real, evalErr := filepath.EvalSymlinks(string(abs)); evalErr == nil {
		abs = types.FilesystemPath(real)
	}

	r := &Resolver{
		path:    abs,
		rootDir: fspath.Dir(abs),
		section: DefaultSection,
		policy:  MatchFirstDeclared,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if err := r.policy.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(r.section) == "" {
		return nil, fmt.Errorf("manifest section must be non-empty")
	}
	return r, nil
}

// Path returns the absolute manifest path.
func (r *Resolver) Path() types.FilesystemPath { return r.path }

// RootDir returns the directory containing the manifest. Relative manifest
// directories are resolved against it.
func (r *Resolver) RootDir() types.FilesystemPath { return r.rootDir }

// Section returns the configured field path.
func (r *Resolver) Section() string { return r.section }

// Loaded reports whether the manifest has been parsed successfully.
func (r *Resolver) Loaded() bool { return r.manifest != nil }

// Load reads and parses the manifest once. A failed load leaves the
// resolver unloaded, so the next call reads the file again.
func (r *Resolver) Load() (*Manifest, error) {
	if r.manifest != nil {
		return r.manifest, nil
	}

	data, err := os.ReadFile(string(r.path))
	if err != nil {
		return nil, r.loadError(err)
	}

	section, err := cueutil.Compile(mappingSchema, data, "#Mapping", cuePath(r.section),
		cueutil.WithFilename(string(r.path)), cueutil.WithJSON())
	if err != nil {
		var missing *cueutil.MissingPathError
		if errors.As(err, &missing) {
			return nil, r.loadError(fmt.Errorf("there is no %s entry", r.section))
		}
		return nil, r.loadError(err)
	}

	entries, err := decodeEntries(section)
	if err != nil {
		return nil, r.loadError(err)
	}

	r.manifest = &Manifest{Path: r.path, Section: r.section, Entries: entries}
	r.logger.Debug("manifest loaded", "path", r.path, "section", r.section, "entries", len(entries))
	return r.manifest, nil
}

// ResolveBaseDirectory returns the directory holding the sources of ns:
// the manifest directory, joined with the mapped relative directory,
// joined with the part of ns that follows the matched prefix.
func (r *Resolver) ResolveBaseDirectory(ns types.Namespace) (types.FilesystemPath, error) {
	m, err := r.Load()
	if err != nil {
		return "", err
	}

	entry, remainder, ok := r.policy.match(m.Entries, ns)
	if !ok {
		return "", &NoMappingError{Path: r.path, Section: r.section, Namespace: ns}
	}

	dir := r.chooseDirectory(entry, remainder)
	r.logger.Debug("namespace resolved", "namespace", ns, "prefix", entry.Prefix, "dir", dir)
	return dir, nil
}

// chooseDirectory joins each candidate with the namespace remainder and
// returns the first that exists, or the first candidate when none does.
func (r *Resolver) chooseDirectory(entry Entry, remainder string) types.FilesystemPath {
	rest := fspath.FromSeparated(remainder, types.NamespaceSeparator)
	var first types.FilesystemPath
	for i, dir := range entry.Directories {
		candidate := fspath.Join(r.rootDir, fspath.FromSeparated(dir, DirectorySeparator), rest)
		if i == 0 {
			first = candidate
		}
		if len(entry.Directories) == 1 {
			break
		}
		if info, err := os.Stat(string(candidate)); err == nil && info.IsDir() {
			return candidate
		}
	}
	return first
}

func (r *Resolver) loadError(cause error) error {
	return &LoadError{Path: r.path, Section: r.section, Cause: cause}
}

// decodeEntries walks the validated section in declaration order.
func decodeEntries(section cue.Value) ([]Entry, error) {
	iter, err := section.Fields()
	if err != nil {
		return nil, err
	}

	var entries []Entry
	for iter.Next() {
		prefix := iter.Selector().Unquoted()
		val := iter.Value()

		var dirs []string
		switch val.Kind() {
		case cue.StringKind:
			s, err := val.String()
			if err != nil {
				return nil, err
			}
			dirs = []string{s}
		case cue.ListKind:
			if err := val.Decode(&dirs); err != nil {
				return nil, err
			}
			if len(dirs) == 0 {
				return nil, fmt.Errorf("prefix %q maps to an empty directory list", prefix)
			}
		default:
			return nil, fmt.Errorf("prefix %q: expected string or list of strings, got %v", prefix, val.Kind())
		}

		entries = append(entries, Entry{Prefix: prefix, Directories: dirs})
	}
	return entries, nil
}

// cuePath quotes every segment of a dotted field path so labels such as
// "psr-4" are not parsed as expressions.
func cuePath(dotted string) string {
	segs := strings.Split(dotted, ".")
	for i, seg := range segs {
		segs[i] = strconv.Quote(seg)
	}
	return strings.Join(segs, ".")
}
