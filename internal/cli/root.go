package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"tradebook/internal/coach"
	"tradebook/internal/config"
	"tradebook/internal/journal"
	"tradebook/internal/logging"
	"tradebook/internal/settings"
	"tradebook/internal/store"
)

// Version information
const (
	Version   = "0.1.0"
	BuildDate = "2024-06-01"
)

// App holds the application dependencies.
type App struct {
	Config    *config.Config
	Logger    zerolog.Logger
	Store     store.DataStore
	Journal   *journal.Service
	Coach     *coach.Coach
	Settings  *settings.Repository
	stopWatch func() error
}

// NewRootCmd creates the root command for the CLI.
func NewRootCmd(cfg *config.Config, logger zerolog.Logger) *cobra.Command {
	app := &App{
		Config:   cfg,
		Logger:   logger,
		Settings: settings.NewRepository(config.DefaultConfigDir()),
	}

	dataStore, err := store.NewSQLiteStore(cfg.Journal.DatabasePath, cfg.Journal.User)
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to initialize store, journal features are unavailable")
	} else {
		app.Store = dataStore
		app.Journal = journal.NewService(dataStore, logger)
		logger.Debug().Str("db", cfg.Journal.DatabasePath).Msg("SQLite store initialized")

		if cfg.Journal.WatchDatabase {
			stop, err := dataStore.WatchFile(cfg.Journal.DatabasePath)
			if err != nil {
				logger.Warn().Err(err).Msg("Failed to watch database file")
			} else {
				app.stopWatch = stop
			}
		}
	}

	var llm coach.Completer
	if cfg.Credentials.OpenAI.APIKey != "" {
		llm = coach.NewOpenAIClient(cfg.Credentials.OpenAI.APIKey, cfg.Coach.Model)
		logger.Debug().Str("model", cfg.Coach.Model).Msg("OpenAI client initialized")
	}
	app.Coach = coach.New(llm, logger)

	rootCmd := &cobra.Command{
		Use:   "tradebook",
		Short: "Tradebook - personal trading journal for the Indian market",
		Long: `Tradebook is a personal trading journal for discretionary equity and
index-option trades on the NSE.

Log trades with psychological notes, review aggregate performance, browse a
P&L calendar, size positions against your risk budget, and get AI coaching
feedback on individual trades.

Use 'tradebook help <command>' for more information about a command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			if debug {
				logging.SetDebugLevel()
				app.Logger = app.Logger.Level(zerolog.DebugLevel)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.Journal != nil {
				app.Journal.Close()
			}
			if app.stopWatch != nil {
				app.stopWatch()
			}
		},
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "config directory (default: ~/.config/tradebook)")
	rootCmd.PersistentFlags().Bool("json", false, "output in JSON format")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	// Add all command groups
	addCoreCommands(rootCmd, app)
	addTradeCommands(rootCmd, app)
	addNoteCommands(rootCmd, app)
	addStatsCommands(rootCmd, app)
	addCalendarCommand(rootCmd, app)
	addSizeCommand(rootCmd, app)
	addCoachCommand(rootCmd, app)
	addExportCommands(rootCmd, app)
	addSettingsCommands(rootCmd, app)

	return rootCmd
}

// addCoreCommands adds core utility commands.
func addCoreCommands(rootCmd *cobra.Command, app *App) {
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd(app))
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd)
			if output.IsJSON() {
				output.JSON(map[string]string{
					"version":    Version,
					"build_date": BuildDate,
				})
			} else {
				output.Printf("Tradebook v%s\n", Version)
				output.Dim("Build date: %s", BuildDate)
			}
		},
	}
}

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  "View and manage application configuration.",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if output.IsJSON() {
				return output.JSON(app.Config)
			}
			return showConfig(output, app.Config)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration directory path",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd)
			if output.IsJSON() {
				output.JSON(map[string]string{"path": config.DefaultConfigDir()})
			} else {
				output.Println(config.DefaultConfigDir())
			}
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Validate configuration files",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if err := app.Config.Validate(); err != nil {
				output.Error("Configuration validation failed: %v", err)
				return err
			}
			if output.IsJSON() {
				output.JSON(map[string]bool{"valid": true})
			} else {
				output.Success("✓ Configuration is valid")
			}
			return nil
		},
	})

	return cmd
}

func showConfig(output *Output, cfg *config.Config) error {
	output.Bold("Journal Configuration")
	output.Printf("  User:           %s\n", cfg.Journal.User)
	output.Printf("  Capital:        %.2f\n", cfg.Journal.Capital)
	output.Printf("  Default Risk %%: %.1f%%\n", cfg.Journal.DefaultRiskPercent)
	output.Printf("  Database:       %s\n", cfg.Journal.DatabasePath)
	output.Printf("  Watch DB:       %v\n", cfg.Journal.WatchDatabase)
	output.Println()

	output.Bold("Coach Configuration")
	output.Printf("  Model:          %s\n", cfg.Coach.Model)
	output.Println()

	output.Bold("UI Configuration")
	output.Printf("  Color Enabled:  %v\n", cfg.UI.ColorEnabled)
	output.Printf("  Date Format:    %s\n", cfg.UI.DateFormat)
	output.Printf("  Time Format:    %s\n", cfg.UI.TimeFormat)

	return nil
}
