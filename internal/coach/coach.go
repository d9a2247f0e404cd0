// Package coach produces AI coaching feedback for individual trades.
package coach

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"tradebook/internal/logging"
	"tradebook/internal/models"
	"tradebook/pkg/utils"
)

// FallbackMessage is returned whenever the model call fails or comes
// back empty. Analyze never propagates an error to the caller.
const FallbackMessage = "Sorry, coaching feedback is unavailable right now. Please try again later."

const systemPrompt = `You are a trading coach reviewing a single discretionary trade from a personal journal.
Give concise, practical feedback on the trade's risk management, entry and exit discipline, and the trader's own notes.
Address the trader directly. Do not invent market context that is not in the trade record.`

// Completer is the narrow LLM surface the coach needs.
type Completer interface {
	CompleteWithSystem(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Coach formats one trade into a prompt and returns free-text
// feedback. Single-shot: no retry is built in.
type Coach struct {
	llm    Completer
	logger zerolog.Logger
}

// New creates a Coach backed by the given LLM client.
func New(llm Completer, logger zerolog.Logger) *Coach {
	return &Coach{llm: llm, logger: logger}
}

// Analyze returns coaching feedback for a trade. Failures are
// swallowed and replaced with FallbackMessage; the result is always a
// non-empty string.
func (c *Coach) Analyze(ctx context.Context, trade models.Trade) string {
	if c.llm == nil {
		return FallbackMessage
	}

	feedback, err := c.llm.CompleteWithSystem(ctx, systemPrompt, BuildPrompt(trade))
	if err != nil {
		l := logging.WithSymbol(c.logger, trade.Symbol)
		l.Warn().Err(err).Str("trade_id", trade.ID).Msg("Coach analysis failed")
		return FallbackMessage
	}
	feedback = strings.TrimSpace(feedback)
	if feedback == "" {
		return FallbackMessage
	}
	return feedback
}

// BuildPrompt renders a single trade as the user prompt.
func BuildPrompt(trade models.Trade) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Trade under review:\n")
	fmt.Fprintf(&b, "- Symbol: %s\n", trade.Symbol)
	fmt.Fprintf(&b, "- Direction: %s\n", trade.Direction)
	fmt.Fprintf(&b, "- Status: %s\n", trade.Status)
	fmt.Fprintf(&b, "- Entry: %s at %s\n", trade.EntryTime.Format("2006-01-02 15:04"), utils.FormatIndianCurrency(trade.EntryPrice))
	if trade.ExitPrice != nil {
		fmt.Fprintf(&b, "- Exit: %s\n", utils.FormatIndianCurrency(*trade.ExitPrice))
	}
	fmt.Fprintf(&b, "- Quantity: %d\n", trade.Quantity)
	if trade.StopLoss != nil {
		fmt.Fprintf(&b, "- Stop loss: %s\n", utils.FormatIndianCurrency(*trade.StopLoss))
	}
	if trade.Target != nil {
		fmt.Fprintf(&b, "- Target: %s\n", utils.FormatIndianCurrency(*trade.Target))
	}
	if trade.PnL != nil {
		fmt.Fprintf(&b, "- Realized P&L: %s\n", utils.FormatIndianCurrency(*trade.PnL))
	}
	if trade.Strategy != "" {
		fmt.Fprintf(&b, "- Strategy: %s\n", trade.Strategy)
	}
	if len(trade.Tags) > 0 {
		fmt.Fprintf(&b, "- Tags: %s\n", strings.Join(trade.Tags, ", "))
	}
	if trade.Notes != "" {
		fmt.Fprintf(&b, "\nTrader's notes:\n%s\n", trade.Notes)
	}

	return b.String()
}
