package cli

import (
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tradebook/internal/sizing"
	"tradebook/pkg/utils"
)

// addSizeCommand adds the position sizing calculator.
func addSizeCommand(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "size <instrument> <entry> <stop>",
		Short: "Position sizing calculator",
		Long: `Recommend a position quantity from capital, risk tolerance, and stop
distance. Index derivatives are sized in whole lots, rounded down so the
position never exceeds the risk budget. Purely advisory; nothing is stored.`,
		Example: `  tradebook size NIFTY 22000 21900
  tradebook size RELIANCE 2440 2410 --capital 500000 --risk 1`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			capital, _ := cmd.Flags().GetFloat64("capital")
			riskPercent, _ := cmd.Flags().GetFloat64("risk")
			if capital <= 0 {
				capital = app.Config.Journal.Capital
			}
			if riskPercent <= 0 {
				riskPercent = app.Config.Journal.DefaultRiskPercent
			}

			entry, err := parsePrice(args[1])
			if err != nil {
				output.Error("Invalid entry price %q", args[1])
				return err
			}
			stop, err := parsePrice(args[2])
			if err != nil {
				output.Error("Invalid stop price %q", args[2])
				return err
			}

			result := sizing.Calculate(sizing.Input{
				Capital:     capital,
				RiskPercent: riskPercent,
				EntryPrice:  entry,
				StopLoss:    stop,
				Instrument:  args[0],
			})

			if output.IsJSON() {
				return output.JSON(result)
			}

			color.Cyan("📐 Position Size - %s", args[0])
			output.Println()
			output.Printf("  Capital:       %s\n", utils.FormatIndianCurrency(capital))
			output.Printf("  Risk:          %.1f%% = %s\n", riskPercent, utils.FormatIndianCurrency(result.RiskAmount))
			output.Printf("  Stop Distance: %s\n", utils.FormatIndianCurrency(result.StopDistance))
			if result.LotSize > 1 {
				output.Printf("  Lot Size:      %d\n", result.LotSize)
				output.Printf("  Lots:          %d\n", result.Lots)
			}
			output.Printf("  Quantity:      %s\n", utils.FormatQuantity(int64(result.Quantity)))
			output.Printf("  Total Value:   %s\n", utils.FormatIndianCurrency(result.TotalValue))

			if result.Quantity == 0 {
				output.Println()
				if result.LotSize > 1 {
					output.Warning("Risk budget does not cover a single lot of %d.", result.LotSize)
				} else {
					output.Warning("Inputs produce a zero quantity; check entry and stop prices.")
				}
			}

			if weekday, ok := sizing.ExpiryWeekday(args[0]); ok {
				output.Println()
				output.Dim("Weekly expiry: %s", weekday)
			}
			return nil
		},
	}

	cmd.Flags().Float64("capital", 0, "trading capital (default from config)")
	cmd.Flags().Float64("risk", 0, "risk percent per trade (default from config)")
	rootCmd.AddCommand(cmd)
}

func parsePrice(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}
