// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"

	"github.com/nscmd/nscmd/internal/issue"
	"github.com/nscmd/nscmd/pkg/loader"
	"github.com/nscmd/nscmd/pkg/manifest"
	"github.com/nscmd/nscmd/pkg/scan"
	"github.com/nscmd/nscmd/pkg/types"
)

// ExitError signals a non-zero exit code without forcing os.Exit in RunE handlers.
type ExitError struct {
	Code types.ExitCode
	Err  error
}

// Error returns the error message for ExitError.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// classifyError maps a failure to its exit code and catalogued issue.
// Errors already carrying an issue keep it.
func classifyError(err error) (types.ExitCode, issue.Id) {
	switch {
	case errors.Is(err, manifest.ErrLoad):
		return types.ExitMisconfigured, issue.ManifestLoadFailedId
	case errors.Is(err, manifest.ErrNoMapping):
		return types.ExitMisconfigured, issue.NamespaceNotMappedId
	case errors.Is(err, scan.ErrScan):
		return types.ExitMisconfigured, issue.CommandsDirUnreadableId
	case errors.Is(err, loader.ErrUnknownCommand):
		return types.ExitNotFound, issue.CommandNotFoundId
	case errors.Is(err, types.ErrInvalidNamespace),
		errors.Is(err, types.ErrInvalidFilesystemPath),
		errors.Is(err, manifest.ErrInvalidMatchPolicy):
		return types.ExitMisconfigured, issue.ConfigLoadFailedId
	}
	if ae, ok := issue.AsActionable(err); ok && ae.Issue != 0 {
		return types.ExitMisconfigured, ae.Issue
	}
	return types.ExitNotFound, 0
}

// suggestionsFor returns remediation hints for a catalogued issue.
func suggestionsFor(id issue.Id) []string {
	switch id {
	case issue.ManifestLoadFailedId:
		return []string{"Check that --manifest points to a readable JSON file", "Verify the mapping section exists"}
	case issue.NamespaceNotMappedId:
		return []string{"Add a prefix covering the namespace to the manifest", "Check the --namespace spelling"}
	case issue.CommandsDirUnreadableId:
		return []string{"Run 'nscmd where' to see the resolved directory", "Create the directory or fix the mapping"}
	case issue.CommandNotFoundId:
		return []string{"Run 'nscmd list' to see the available commands"}
	default:
		return nil
	}
}
