package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	apperrors "tradebook/internal/errors"
	"tradebook/internal/models"
	"tradebook/pkg/utils"
)

const commandTimeout = 30 * time.Second

// journalContext returns the journal service after a fresh load, or an
// error when the store never came up.
func (app *App) journalContext() (context.Context, context.CancelFunc, error) {
	if app.Journal == nil {
		return nil, nil, fmt.Errorf("store not initialized; check the database path with 'tradebook config show'")
	}
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	if err := app.Journal.Reload(ctx); err != nil {
		cancel()
		var storeErr *apperrors.StoreError
		if apperrors.As(err, &storeErr) {
			return nil, nil, fmt.Errorf("store unavailable (%s %s): %w", storeErr.Op, storeErr.Entity, storeErr.Err)
		}
		return nil, nil, err
	}
	return ctx, cancel, nil
}

// addTradeCommands adds trade management commands.
func addTradeCommands(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "trade",
		Short: "Trade management",
		Long:  "Record, update, close, and delete journal trades.",
	}

	cmd.AddCommand(newTradeAddCmd(app))
	cmd.AddCommand(newTradeListCmd(app))
	cmd.AddCommand(newTradeCloseCmd(app))
	cmd.AddCommand(newTradeDeleteCmd(app))

	rootCmd.AddCommand(cmd)
}

func newTradeAddCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <symbol>",
		Short: "Record a new trade",
		Long: `Record a new trade in the journal.

The trade is inserted locally first and then persisted; on a persistence
failure the journal is reloaded from the store and the failure reported.
Notes may embed #tags, which are merged into the tag set.`,
		Example: `  tradebook trade add RELIANCE --entry 2440 --qty 10
  tradebook trade add NIFTY --direction short --entry 22150 --qty 75 --stop 22250 --notes "felt #fomo at the open"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ctx, cancel, err := app.journalContext()
			if err != nil {
				output.Error("%v", err)
				return err
			}
			defer cancel()

			direction, _ := cmd.Flags().GetString("direction")
			status, _ := cmd.Flags().GetString("status")
			entry, _ := cmd.Flags().GetFloat64("entry")
			qty, _ := cmd.Flags().GetInt("qty")
			stop, _ := cmd.Flags().GetFloat64("stop")
			target, _ := cmd.Flags().GetFloat64("target")
			strategy, _ := cmd.Flags().GetString("strategy")
			notes, _ := cmd.Flags().GetString("notes")
			tags, _ := cmd.Flags().GetStringSlice("tags")
			expiryStr, _ := cmd.Flags().GetString("expiry")

			if entry <= 0 {
				output.Error("Entry price is required and must be positive (--entry)")
				return apperrors.NewValidationError("entry", entry, "must be positive")
			}
			if qty <= 0 {
				output.Error("Quantity is required and must be positive (--qty)")
				return apperrors.NewValidationError("qty", qty, "must be positive")
			}

			trade := models.Trade{
				ID:         models.NewTradeID(),
				Symbol:     args[0],
				Direction:  models.DirectionLong,
				Status:     models.TradeStatus(strings.ToUpper(status)),
				EntryTime:  time.Now(),
				EntryPrice: entry,
				Quantity:   qty,
				Strategy:   strategy,
				Notes:      notes,
				Tags:       tags,
			}
			if strings.EqualFold(direction, "short") {
				trade.Direction = models.DirectionShort
			}
			if stop > 0 {
				trade.StopLoss = &stop
			}
			if target > 0 {
				trade.Target = &target
			}
			if expiryStr != "" {
				expiry, err := time.ParseInLocation("2006-01-02", expiryStr, time.Local)
				if err != nil {
					output.Error("Invalid expiry date %q (want YYYY-MM-DD)", expiryStr)
					return err
				}
				trade.Expiry = &expiry
			}

			if err := app.Journal.SaveTrade(ctx, trade); err != nil {
				output.Error("Failed to save trade: %v", err)
				return err
			}

			if output.IsJSON() {
				return output.JSON(trade)
			}
			output.Success("✓ Trade recorded: %s %s x%d @ %s", trade.Direction, trade.Symbol, trade.Quantity, utils.FormatIndianCurrency(trade.EntryPrice))
			output.Dim("ID: %s", trade.ID)
			return nil
		},
	}

	cmd.Flags().String("direction", "long", "trade direction (long|short)")
	cmd.Flags().String("status", "open", "lifecycle status (open|closed|pending)")
	cmd.Flags().Float64("entry", 0, "entry price (required)")
	cmd.Flags().Int("qty", 0, "position quantity (required)")
	cmd.Flags().Float64("stop", 0, "stop-loss price")
	cmd.Flags().Float64("target", 0, "take-profit price")
	cmd.Flags().String("strategy", "", "strategy label")
	cmd.Flags().String("notes", "", "free-text notes, may embed #tags")
	cmd.Flags().StringSlice("tags", nil, "tags")
	cmd.Flags().String("expiry", "", "expiry date for derivatives (YYYY-MM-DD)")

	return cmd
}

func newTradeListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List journal trades",
		Long:  "List trades ordered by entry date, most recent first.",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			_, cancel, err := app.journalContext()
			if err != nil {
				output.Error("%v", err)
				return err
			}
			defer cancel()

			statusFilter, _ := cmd.Flags().GetString("status")
			trades := app.Journal.Trades()
			if statusFilter != "" {
				want := models.TradeStatus(strings.ToUpper(statusFilter))
				filtered := trades[:0]
				for _, t := range trades {
					if t.Status == want {
						filtered = append(filtered, t)
					}
				}
				trades = filtered
			}

			if output.IsJSON() {
				return output.JSON(trades)
			}

			if len(trades) == 0 {
				output.Info("No trades recorded.")
				return nil
			}

			table := NewTable(output, "ID", "Date", "Symbol", "Dir", "Status", "Qty", "Entry", "Exit", "P&L", "Strategy")
			for _, t := range trades {
				exit := "-"
				if t.ExitPrice != nil {
					exit = utils.FormatIndianCurrency(*t.ExitPrice)
				}
				pnl := "-"
				if t.PnL != nil {
					pnl = output.FormatPnL(*t.PnL)
				}
				table.AddRow(
					shortID(t.ID),
					utils.FormatDate(t.EntryTime),
					t.Symbol,
					string(t.Direction),
					string(t.Status),
					fmt.Sprintf("%d", t.Quantity),
					utils.FormatIndianCurrency(t.EntryPrice),
					exit,
					pnl,
					utils.TruncateString(t.Strategy, 15),
				)
			}
			table.Render()
			return nil
		},
	}

	cmd.Flags().String("status", "", "filter by status (open|closed|pending)")
	return cmd
}

func newTradeCloseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "close <trade-id> <exit-price>",
		Short: "Close a trade at an exit price",
		Long:  "Mark a trade closed and realize its P&L from entry, exit, and direction.",
		Args:  cobra.ExactArgs(2),
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
			var exitPrice float64
			if _, err := fmt.Sscanf(args[1], "%f", &exitPrice); err != nil {
				output.Error("Invalid exit price %q", args[1])
				return err
			}

			trade, err := app.Journal.CloseTrade(ctx, id, exitPrice)
			if err != nil {
				output.Error("Failed to close trade: %v", err)
				return err
			}

			if output.IsJSON() {
				return output.JSON(trade)
			}
			pnl := 0.0
			if trade.PnL != nil {
				pnl = *trade.PnL
			}
			output.Success("✓ Closed %s at %s", trade.Symbol, utils.FormatIndianCurrency(exitPrice))
			output.Printf("  Realized P&L: %s\n", output.FormatPnL(pnl))
			return nil
		},
	}
}

func newTradeDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <trade-id>",
		Short: "Delete a trade",
		Args:  cobra.ExactArgs(1),
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

			if err := app.Journal.DeleteTrade(ctx, id); err != nil {
				if apperrors.Is(err, apperrors.ErrTradeNotFound) {
					output.Error("No trade with ID %s", shortID(id))
				} else {
					output.Error("Failed to delete trade: %v", err)
				}
				return err
			}

			if output.IsJSON() {
				return output.JSON(map[string]string{"deleted": id})
			}
			output.Success("✓ Trade deleted")
			return nil
		},
	}
}

// resolveTradeID accepts either a full ID or an unambiguous prefix.
func (app *App) resolveTradeID(arg string) (string, error) {
	trades := app.Journal.Trades()
	var match string
	for _, t := range trades {
		if t.ID == arg {
			return arg, nil
		}
		if strings.HasPrefix(t.ID, arg) {
			if match != "" {
				return "", fmt.Errorf("trade ID prefix %q is ambiguous", arg)
			}
			match = t.ID
		}
	}
	if match == "" {
		return "", fmt.Errorf("no trade matches %q", arg)
	}
	return match, nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
