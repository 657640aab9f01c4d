// SPDX-License-Identifier: MPL-2.0

package scan

import (
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/nscmd/nscmd/pkg/fspath"
	"github.com/nscmd/nscmd/pkg/types"
)

const (
	// DefaultSuffix is the token between the identifier and the extension.
	DefaultSuffix = "Command"
	// DefaultExtension is the source-file extension of command files.
	DefaultExtension = ".go"
)

// ErrScan is the sentinel wrapped by ScanError.
var ErrScan = errors.New("commands directory scan failed")

type (
	// ScanError is returned when the base directory does not exist, is not a
	// directory, or cannot be enumerated.
	ScanError struct {
		Dir   types.FilesystemPath
		Cause error
	}

	// Scanner lists command type identifiers below a base directory.
	// The zero value is not usable; create one with New.
	Scanner struct {
		suffix    string
		extension string
		logger    *slog.Logger
	}

	// Option configures a Scanner.
	Option func(*Scanner)
)

// WithSuffix sets the file-name suffix that marks command files.
func WithSuffix(suffix string) Option {
	return func(s *Scanner) {
		s.suffix = suffix
	}
}

// WithExtension sets the source-file extension, with or without the dot.
func WithExtension(ext string) Option {
	return func(s *Scanner) {
		if ext != "" && !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		s.extension = ext
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(s *Scanner) {
		s.logger = l
	}
}

// New creates a Scanner with the given options.
func New(opts ...Option) *Scanner {
	s := &Scanner{
		suffix:    DefaultSuffix,
		extension: DefaultExtension,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Suffix returns the configured command suffix.
func (s *Scanner) Suffix() string { return s.suffix }

// Extension returns the configured file extension, including the dot.
func (s *Scanner) Extension() string { return s.extension }

// Identifiers checks that base is a readable directory and returns a lazy
// sequence of the identifiers below it. The sequence walks the filesystem
// each time it is ranged over; a failure mid-walk is yielded as a *ScanError
// and ends the sequence.
func (s *Scanner) Identifiers(base types.FilesystemPath) (iter.Seq2[types.TypeIdentifier, error], error) {
	info, err := os.Stat(string(base))
	if err != nil {
		return nil, &ScanError{Dir: base, Cause: err}
	}
	if !info.IsDir() {
		return nil, &ScanError{Dir: base, Cause: fmt.Errorf("not a directory")}
	}

	return func(yield func(types.TypeIdentifier, error) bool) {
		if err := s.walk(base, nil, yield); err != nil && !errors.Is(err, errStop) {
			yield("", &ScanError{Dir: base, Cause: err})
		}
	}, nil
}

// List collects Identifiers into a slice. Any error aborts the listing.
func (s *Scanner) List(base types.FilesystemPath) ([]types.TypeIdentifier, error) {
	seq, err := s.Identifiers(base)
	if err != nil {
		return nil, err
	}
	var ids []types.TypeIdentifier
	for id, err := range seq {
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// errStop signals that the consumer stopped ranging.
var errStop = errors.New("stop")

func (s *Scanner) walk(dir types.FilesystemPath, prefix []string, yield func(types.TypeIdentifier, error) bool) error {
	entries, err := os.ReadDir(string(dir))
	if err != nil {
		return err
	}

	var subdirs []fs.DirEntry
	for _, entry := range entries {
		if entry.IsDir() {
			subdirs = append(subdirs, entry)
			continue
		}
		if !entry.Type().IsRegular() && entry.Type()&fs.ModeSymlink == 0 {
			continue
		}
		stem, ok := s.stem(entry.Name())
		if !ok {
			continue
		}
		id := types.TypeIdentifier(strings.Join(append(slices.Clone(prefix), stem), types.NamespaceSeparator))
		if err := id.Validate(); err != nil {
			s.logger.Debug("skipping command file with invalid identifier",
				"file", fspath.JoinStr(dir, entry.Name()), "error", err)
			continue
		}
		if !yield(id, nil) {
			return errStop
		}
	}

	// os.ReadDir sorts by name, so subdirs is already lexical.
	for _, sub := range subdirs {
		if err := s.walk(fspath.JoinStr(dir, sub.Name()), slices.Concat(prefix, []string{sub.Name()}), yield); err != nil {
			return err
		}
	}
	return nil
}

// stem strips suffix and extension from a command file name.
func (s *Scanner) stem(name string) (string, bool) {
	rest, ok := strings.CutSuffix(name, s.suffix+s.extension)
	if !ok || rest == "" {
		return "", false
	}
	return rest, true
}

// Error implements the error interface.
func (e *ScanError) Error() string {
	return fmt.Sprintf("cannot scan commands directory %s: %v", e.Dir, e.Cause)
}

// Unwrap exposes both ErrScan and the underlying cause.
func (e *ScanError) Unwrap() []error {
	return []error{ErrScan, e.Cause}
}
