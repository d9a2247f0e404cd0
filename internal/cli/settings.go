package cli

import (
	"github.com/spf13/cobra"
)

// addSettingsCommands adds appearance settings commands.
func addSettingsCommands(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Appearance settings",
		Long:  "View and change appearance settings. Changes persist immediately.",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			appearance, err := app.Settings.Load()
			if err != nil {
				output.Error("Failed to load settings: %v", err)
				return err
			}
			if output.IsJSON() {
				return output.JSON(appearance)
			}
			output.Bold("Appearance")
			output.Printf("  Theme:        %s\n", appearance.Theme)
			output.Printf("  Accent color: %s\n", appearance.AccentColor)
			output.Printf("  Compact mode: %v\n", appearance.CompactMode)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change a setting",
		Long:  "Change a setting and persist it. Keys: theme, accent_color, compact_mode.",
		Example: `  tradebook settings set theme light
  tradebook settings set compact_mode true`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if err := app.Settings.Set(args[0], args[1]); err != nil {
				output.Error("Failed to save setting: %v", err)
				return err
			}
			if output.IsJSON() {
				return output.JSON(map[string]string{args[0]: args[1]})
			}
			output.Success("✓ %s set to %s", args[0], args[1])
			return nil
		},
	})

	rootCmd.AddCommand(cmd)
}
