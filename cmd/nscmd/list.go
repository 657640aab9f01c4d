// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/nscmd/nscmd/pkg/loader"
)

const (
	outputTable = "table"
	outputJSON  = "json"
	outputYAML  = "yaml"
)

// listEntry is one row of `nscmd list`.
type listEntry struct {
	Name       string `json:"name" yaml:"name"`
	Type       string `json:"type" yaml:"type"`
	Registered bool   `json:"registered" yaml:"registered"`
}

func newListCommand(app *App) *cobra.Command {
	var output string

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the commands found by convention",
		Long: `List every command file below the namespace directory, in scan order,
with the type it maps to and whether that type is registered.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch output {
			case outputTable, outputJSON, outputYAML:
			default:
				return fmt.Errorf("unknown output format %q (valid: table, json, yaml)", output)
			}

			ctx, s, err := app.open(cmd.Context())
			if err != nil {
				return app.fail(ctx, s.settings(), "load configuration", app.flags.configPath, err)
			}

			entries, err := listEntries(s.loader)
			if err != nil {
				return app.fail(ctx, s.settings(), "list commands", string(s.loader.ManifestPath()), err)
			}
			s.logger.Debug("commands listed", "count", len(entries))

			return writeEntries(app.stdout, output, entries)
		},
	}

	listCmd.Flags().StringVarP(&output, "output", "o", outputTable, "output format: table, json or yaml")
	return listCmd
}

func listEntries(l *loader.Loader) ([]listEntry, error) {
	names, err := l.Names()
	if err != nil {
		return nil, err
	}

	entries := make([]listEntry, 0, len(names))
	for _, name := range names {
		typeName, err := l.TypeName(name)
		if err != nil {
			return nil, err
		}
		registered, err := l.Has(name)
		if err != nil {
			return nil, err
		}
		entries = append(entries, listEntry{Name: string(name), Type: typeName, Registered: registered})
	}
	return entries, nil
}

func writeEntries(w io.Writer, output string, entries []listEntry) error {
	switch output {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return err
		}
		return enc.Close()
	}

	if len(entries) == 0 {
		fmt.Fprintln(w, SubtitleStyle.Render("(no commands found)"))
		return nil
	}

	t := newTable("NAME", "TYPE", "REGISTERED")
	for _, e := range entries {
		status := SuccessStyle.Render("yes")
		if !e.Registered {
			status = ErrorStyle.Render("no")
		}
		t.Row(CmdStyle.Render(e.Name), e.Type, status)
	}
	fmt.Fprintln(w, t.String())
	return nil
}
