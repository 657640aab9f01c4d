// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nscmd/nscmd/pkg/loader"
	"github.com/nscmd/nscmd/pkg/types"
)

func newHasCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "has <name>",
		Short: "Check whether a command exists",
		Long: `Check whether a command name resolves to a registered type.

Exits 0 when it does, 1 when it does not, and 2 when the manifest or the
namespace mapping is broken.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := types.CommandName(args[0])

			ctx, s, err := app.open(cmd.Context())
			if err != nil {
				return app.fail(ctx, s.settings(), "load configuration", app.flags.configPath, err)
			}

			found, err := s.loader.Has(name)
			if err != nil {
				return app.fail(ctx, s.settings(), "look up command", string(name), err)
			}
			if !found {
				fmt.Fprintf(app.stdout, "%s %s\n", ErrorStyle.Render("✗"), name)
				return &ExitError{Code: types.ExitNotFound, Err: fmt.Errorf("command %q not found", name)}
			}

			fmt.Fprintf(app.stdout, "%s %s\n", SuccessStyle.Render("✓"), CmdStyle.Render(string(name)))
			return nil
		},
	}
}

func newResolveCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <name>",
		Short: "Construct a command and show its type",
		Long: `Translate a command name into its fully-qualified type name and
construct the command through the registry.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := types.CommandName(args[0])

			ctx, s, err := app.open(cmd.Context())
			if err != nil {
				return app.fail(ctx, s.settings(), "load configuration", app.flags.configPath, err)
			}

			instance, err := s.loader.Get(name)
			if err != nil {
				return app.fail(ctx, s.settings(), "resolve command", string(name), err)
			}
			typeName, err := s.loader.TypeName(name)
			if err != nil {
				return app.fail(ctx, s.settings(), "resolve command", string(name), &loader.UnknownCommandError{Name: name, Cause: err})
			}

			fmt.Fprintf(app.stdout, "%s %s %s\n", CmdStyle.Render(string(name)), SubtitleStyle.Render("=>"), typeName)
			fmt.Fprintf(app.stdout, "%s %T\n", SubtitleStyle.Render("instance:"), instance)
			return nil
		},
	}
}

func newWhereCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "where",
		Short: "Show the directory the namespace maps to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, s, err := app.open(cmd.Context())
			if err != nil {
				return app.fail(ctx, s.settings(), "load configuration", app.flags.configPath, err)
			}

			dir, err := s.loader.BaseDirectory()
			if err != nil {
				return app.fail(ctx, s.settings(), "resolve namespace", string(s.loader.Namespace()), err)
			}

			fmt.Fprintln(app.stdout, dir)
			return nil
		},
	}
}
