package cli

import (
	"github.com/spf13/cobra"
)

// addCoachCommand adds the AI coaching command.
func addCoachCommand(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "coach <trade-id>",
		Short: "Get AI coaching feedback on a trade",
		Long: `Send a single trade to the configured model and print its coaching
feedback.

Requires an OpenAI API key in the credentials file or OPENAI_API_KEY.
When the model is unreachable a fixed apology is printed instead; the
command itself never fails on a model error.`,
		Example: `  tradebook coach 4f8a12bc`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel, err := app.journalContext()
			if err != nil {
				output.Error("%v", err)
				return err
			}
			defer cancel()

			id, err := app.resolveTradeID(args[0])
			if err != nil {
				output.Error("%v", err)
				return err
			}
			trade, err := app.Journal.TradeByID(id)
			if err != nil {
				output.Error("%v", err)
				return err
			}

			feedback := app.Coach.Analyze(ctx, trade)

			if output.IsJSON() {
				return output.JSON(map[string]string{
					"trade_id": trade.ID,
					"feedback": feedback,
				})
			}
			output.Bold("Coach on %s %s", trade.Direction, trade.Symbol)
			output.Println()
			output.Println(feedback)
			return nil
		},
	}

	rootCmd.AddCommand(cmd)
}
