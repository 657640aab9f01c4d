// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/nscmd/nscmd/internal/issue"
	"github.com/nscmd/nscmd/pkg/types"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// NewRootCommand builds the command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "nscmd",
		Short: "Resolve commands by naming convention",
		Long: TitleStyle.Render("nscmd") + SubtitleStyle.Render(" - Resolve commands by naming convention") + `

nscmd finds commands the way a PSR-4 autoloader finds classes: the manifest
maps a namespace to a directory, every <Name>Command file below it is a
command, and command names are the kebab-case form of the type names
(App\Command\App\GoodByeCommand is "app:good-bye").

` + SubtitleStyle.Render("Examples:") + `
  nscmd list                      List every command with its type
  nscmd has app:good-bye          Exit 0 when the command exists
  nscmd resolve hello             Construct the command and show its type
  nscmd where                     Show the directory that is scanned
  nscmd config show               Show the effective configuration`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&app.flags.manifest, "manifest", "m", "", "manifest file (default \"composer.json\")")
	flags.StringVarP(&app.flags.namespace, "namespace", "n", "", `namespace to load commands from (default "App\Command")`)
	flags.StringVar(&app.flags.configPath, "config", "", "config file (default is $HOME/.config/nscmd/config.cue)")
	flags.BoolVarP(&app.flags.verbose, "verbose", "v", false, "enable debug logging and full error chains")

	rootCmd.AddCommand(
		newListCommand(app),
		newHasCommand(app),
		newResolveCommand(app),
		newWhereCommand(app),
		newConfigCommand(app),
	)

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version != "dev" {
		return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev (built from source)"
}

// Execute runs the CLI and exits with the code of the first failure.
func Execute() {
	rootCmd := NewRootCommand(NewApp(Dependencies{}))

	// fang overrides rootCmd.Version, so the version goes through WithVersion.
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(int(types.ExitNotFound))
	}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	if ae, ok := issue.AsActionable(err); ok {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
