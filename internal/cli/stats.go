package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"tradebook/internal/stats"
	"tradebook/pkg/utils"
)

// addStatsCommands adds the performance dashboard commands.
func addStatsCommands(rootCmd *cobra.Command, app *App) {
	rootCmd.AddCommand(newStatsCmd(app))
	rootCmd.AddCommand(newEquityCmd(app))
	rootCmd.AddCommand(newMonthlyCmd(app))
}

func newStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show aggregate performance statistics",
		Long: `Show win rate, net P&L, profit factor and streaks, derived from the
closed trades that carry a realized P&L. Recomputed from scratch on
every invocation.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			_, cancel, err := app.journalContext()
			if err != nil {
				output.Error("%v", err)
				return err
			}
			defer cancel()

			derived := stats.Compute(app.Journal.Trades())
			if output.IsJSON() {
				return output.JSON(derived)
			}

			output.Bold("Performance")
			output.Printf("  Closed Trades:   %d\n", derived.TotalTrades)
			output.Printf("  Win Rate:        %.1f%%\n", derived.WinRate)
			output.Printf("  Net P&L:         %s\n", output.FormatPnL(derived.NetPnL))
			if capital := app.Config.Journal.Capital; capital > 0 {
				output.Printf("  Return:          %s of capital\n", output.FormatPercent(derived.NetPnL/capital*100))
			}
			output.Printf("  Avg Win:         %s\n", utils.FormatIndianCurrency(derived.AvgWin))
			output.Printf("  Avg Loss:        %s\n", utils.FormatIndianCurrency(derived.AvgLoss))
			if derived.ProfitFactor == stats.ProfitFactorCap {
				output.Printf("  Profit Factor:   %d+ (no losses yet)\n", stats.ProfitFactorCap)
			} else {
				output.Printf("  Profit Factor:   %.2f\n", derived.ProfitFactor)
			}
			output.Printf("  Best Win Streak: %d\n", derived.MaxWinStreak)

			switch {
			case derived.CurrentStreak > 0:
				output.Success("  Current Streak:  %d wins", derived.CurrentStreak)
			case derived.CurrentStreak < 0:
				output.Error("  Current Streak:  %d losses", -derived.CurrentStreak)
			default:
				output.Printf("  Current Streak:  0\n")
			}
			return nil
		},
	}
}

func newEquityCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "equity",
		Short: "Show the equity curve",
		Long:  "Show the running cumulative P&L across closed trades in entry order.",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			_, cancel, err := app.journalContext()
			if err != nil {
				output.Error("%v", err)
				return err
			}
			defer cancel()

			points := stats.EquityCurve(app.Journal.Trades())
			if output.IsJSON() {
				return output.JSON(points)
			}

			if len(points) == 0 {
				output.Info("No closed trades yet.")
				return nil
			}

			table := NewTable(output, "Date", "Equity")
			for _, p := range points {
				table.AddRow(p.Label, output.FormatPnL(p.Value))
			}
			table.Render()
			return nil
		},
	}
}

func newMonthlyCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "monthly",
		Short: "Show monthly P&L",
		Long:  "Show closed-trade P&L bucketed by calendar month, oldest first.",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			_, cancel, err := app.journalContext()
			if err != nil {
				output.Error("%v", err)
				return err
			}
			defer cancel()

			points := stats.MonthlyPnL(app.Journal.Trades())
			if output.IsJSON() {
				return output.JSON(points)
			}

			if len(points) == 0 {
				output.Info("No closed trades yet.")
				return nil
			}

			table := NewTable(output, "Month", "Net P&L")
			for _, p := range points {
				table.AddRow(p.Label, output.FormatPnL(p.Value))
			}
			table.Render()

			var total float64
			for _, p := range points {
				total += p.Value
			}
			output.Println()
			output.Printf("  Total: %s across %s\n", output.FormatPnL(total), pluralMonths(len(points)))
			return nil
		},
	}
}

func pluralMonths(n int) string {
	if n == 1 {
		return "1 month"
	}
	return fmt.Sprintf("%d months", n)
}
