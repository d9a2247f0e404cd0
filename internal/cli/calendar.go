package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tradebook/internal/calendar"
)

// addCalendarCommand adds the monthly calendar view.
func addCalendarCommand(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Monthly P&L calendar",
		Long: `Show a Sunday-first month grid with each day's closed-trade P&L and
markers for days that have trades or a journal note.`,
		Example: `  tradebook calendar
  tradebook calendar --month 2024-03`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			_, cancel, err := app.journalContext()
			if err != nil {
				output.Error("%v", err)
				return err
			}
			defer cancel()

			year, month := time.Now().Year(), time.Now().Month()
			if monthStr, _ := cmd.Flags().GetString("month"); monthStr != "" {
				parsed, err := time.Parse("2006-01", monthStr)
				if err != nil {
					output.Error("Invalid month %q (want YYYY-MM)", monthStr)
					return err
				}
				year, month = parsed.Year(), parsed.Month()
			}
			if offset, _ := cmd.Flags().GetInt("offset"); offset != 0 {
				view := calendar.Month{Year: year, Month: month}
				for i := 0; i < offset; i++ {
					view.Year, view.Month = view.Next()
				}
				for i := 0; i > offset; i-- {
					view.Year, view.Month = view.Prev()
				}
				year, month = view.Year, view.Month
			}

			view := calendar.BuildMonth(app.Journal.Trades(), app.Journal.Notes(), year, month)
			if output.IsJSON() {
				return output.JSON(view)
			}

			renderCalendar(output, view)
			return nil
		},
	}

	cmd.Flags().String("month", "", "target month (YYYY-MM, default current)")
	cmd.Flags().Int("offset", 0, "months to shift from the target, may be negative")
	rootCmd.AddCommand(cmd)
}

func renderCalendar(output *Output, view calendar.Month) {
	color.Cyan("📅 %s %d", view.Name, view.Year)
	output.Println()

	output.Printf("  %s\n", strings.Join([]string{" Sun ", " Mon ", " Tue ", " Wed ", " Thu ", " Fri ", " Sat "}, " "))

	var week []string
	flush := func() {
		if len(week) > 0 {
			output.Printf("  %s\n", strings.Join(week, " "))
			week = nil
		}
	}

	for _, day := range view.Days {
		if day.Blank {
			week = append(week, "     ")
		} else {
			week = append(week, formatDayCell(output, day))
		}
		if len(week) == 7 {
			flush()
		}
	}
	flush()

	output.Println()
	output.Dim("● trades  ▪ note")
}

func formatDayCell(output *Output, day calendar.Day) string {
	marker := " "
	if day.HasTrades {
		marker = "●"
	} else if day.HasNote {
		marker = "▪"
	}
	cell := fmt.Sprintf("%3d%s ", day.Number, marker)
	if !day.HasTrades || !output.colorEnabled {
		return cell
	}
	if day.PnL >= 0 {
		return color.GreenString(cell)
	}
	return color.RedString(cell)
}
