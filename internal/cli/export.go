package cli

import (
	"os"

	"github.com/spf13/cobra"

	"tradebook/internal/export"
	"tradebook/internal/settings"
)

// addExportCommands adds backup and restore commands.
func addExportCommands(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the journal for manual backup",
		Long:  "Write the full journal state to a file for manual backup.",
	}

	cmd.AddCommand(newExportSnapshotCmd(app))
	cmd.AddCommand(newExportCSVCmd(app))

	rootCmd.AddCommand(cmd)
	rootCmd.AddCommand(newImportCmd(app))
}

func newExportSnapshotCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Export a full JSON snapshot",
		Long: `Export settings, trades, and daily notes as a single JSON document.
The snapshot is the only supported backup format; restoring it is a
manual operation.`,
		Example: `  tradebook export snapshot --out tradebook-backup.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			_, cancel, err := app.journalContext()
			if err != nil {
				output.Error("%v", err)
				return err
			}
			defer cancel()

			appearance, err := app.Settings.Load()
			if err != nil {
				app.Logger.Warn().Err(err).Msg("Failed to load settings, exporting defaults")
				appearance = settings.Defaults()
			}

			w, closeFn, err := outputWriter(cmd)
			if err != nil {
				output.Error("%v", err)
				return err
			}
			defer closeFn()

			if err := export.WriteSnapshot(w, appearance, app.Journal.Trades(), app.Journal.Notes()); err != nil {
				output.Error("Failed to export snapshot: %v", err)
				return err
			}
			if out, _ := cmd.Flags().GetString("out"); out != "" {
				output.Success("✓ Snapshot written to %s", out)
			}
			return nil
		},
	}

	cmd.Flags().String("out", "", "output file (default: stdout)")
	return cmd
}

func newExportCSVCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "csv",
		Short:   "Export trades as CSV",
		Example: `  tradebook export csv --out trades.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			_, cancel, err := app.journalContext()
			if err != nil {
				output.Error("%v", err)
				return err
			}
			defer cancel()

			w, closeFn, err := outputWriter(cmd)
			if err != nil {
				output.Error("%v", err)
				return err
			}
			defer closeFn()

			if err := export.WriteCSV(w, app.Journal.Trades()); err != nil {
				output.Error("Failed to export csv: %v", err)
				return err
			}
			if out, _ := cmd.Flags().GetString("out"); out != "" {
				output.Success("✓ Trades written to %s", out)
			}
			return nil
		},
	}

	cmd.Flags().String("out", "", "output file (default: stdout)")
	return cmd
}

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import a snapshot (not supported)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			f, err := os.Open(args[0])
			if err != nil {
				output.Error("%v", err)
				return err
			}
			defer f.Close()

			err = export.Import(f)
			output.Error("%v", err)
			return err
		},
	}
}

// outputWriter resolves the --out flag to a writer, defaulting to the
// command's stdout stream.
func outputWriter(cmd *cobra.Command) (*os.File, func() error, error) {
	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(out)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}
