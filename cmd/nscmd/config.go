// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nscmd/nscmd/internal/config"
	"github.com/nscmd/nscmd/pkg/types"
)

const (
	formatCUE  = "cue"
	formatTOML = "toml"
)

// newConfigCommand creates the `nscmd config` command tree.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage nscmd configuration",
		Long: `Manage nscmd configuration.

Configuration is read from config.cue in the config directory, falling back
to ./nscmd.cue:
  - Linux: ~/.config/nscmd/config.cue
  - macOS: ~/Library/Application Support/nscmd/config.cue
  - Windows: %APPDATA%\nscmd\config.cue

NSCMD_* environment variables (NSCMD_NAMESPACE, NSCMD_UI_VERBOSE, ...)
override file values; command-line flags override both.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.settings(cmd.Context())
			if err != nil {
				return app.fail(cmd.Context(), nil, "load configuration", app.flags.configPath, err)
			}
			showConfig(app, cfg)
			return nil
		},
	})

	var format string
	dumpCmd := &cobra.Command{
		Use:   "dump",
		Short: "Output the effective configuration as CUE or TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.settings(cmd.Context())
			if err != nil {
				return app.fail(cmd.Context(), nil, "load configuration", app.flags.configPath, err)
			}

			switch format {
			case formatCUE:
				fmt.Fprint(app.stdout, config.GenerateCUE(cfg))
			case formatTOML:
				out, err := config.GenerateTOML(cfg)
				if err != nil {
					return err
				}
				fmt.Fprint(app.stdout, out)
			default:
				return fmt.Errorf("unknown format %q (valid: cue, toml)", format)
			}
			return nil
		},
	}
	dumpCmd.Flags().StringVarP(&format, "format", "f", formatCUE, "output format: cue or toml")
	cfgCmd.AddCommand(dumpCmd)

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show the configuration file in use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfigPath(app)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create a default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.CreateDefaultConfig("")
			if err != nil {
				return fmt.Errorf("failed to create config: %w", err)
			}
			fmt.Fprintf(app.stdout, "%s Configuration at %s\n", SuccessStyle.Render("✓"), path)
			return nil
		},
	})

	return cfgCmd
}

func showConfig(app *App, cfg *config.Config) {
	w := app.stdout

	fmt.Fprintln(w, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(w)

	path, err := config.ResolvePath(config.LoadOptions{ConfigFilePath: types.FilesystemPath(app.flags.configPath)})
	if err != nil || path == "" {
		fmt.Fprintf(w, "%s: %s\n", CmdStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	} else {
		fmt.Fprintf(w, "%s: %s\n", CmdStyle.Render("Config file"), path)
	}
	fmt.Fprintln(w)

	t := newTable("KEY", "VALUE")
	t.Row("manifest", cfg.Manifest)
	t.Row("namespace", cfg.Namespace)
	t.Row("extension", cfg.Extension)
	t.Row("section", cfg.Section)
	t.Row("match_policy", cfg.MatchPolicy.String())
	t.Row("ui.verbose", fmt.Sprintf("%v", cfg.UI.Verbose))
	t.Row("ui.color_scheme", cfg.UI.ColorScheme.String())
	fmt.Fprintln(w, t.String())
}

func showConfigPath(app *App) error {
	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}
	fmt.Fprintf(app.stdout, "Config directory: %s\n", cfgDir)

	path, err := config.ResolvePath(config.LoadOptions{ConfigFilePath: types.FilesystemPath(app.flags.configPath)})
	if err != nil {
		return err
	}
	if path == "" {
		path = SubtitleStyle.Render("(none, using defaults)")
	}
	fmt.Fprintf(app.stdout, "Config file: %s\n", path)
	return nil
}
