// Package export produces manual-backup documents from the full
// journal state. There is no import path in this version: restoring a
// snapshot is a deliberate manual operation.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gocarina/gocsv"

	apperrors "tradebook/internal/errors"
	"tradebook/internal/models"
	"tradebook/internal/settings"
)

// Snapshot is the full-state backup document: settings plus both
// collections, serialized as one JSON text.
type Snapshot struct {
	ExportedAt time.Time           `json:"exported_at"`
	Settings   settings.Appearance `json:"settings"`
	Trades     []models.Trade      `json:"trades"`
	Notes      []models.DailyNote  `json:"notes"`
}

// WriteSnapshot serializes the full journal state to w as indented JSON.
func WriteSnapshot(w io.Writer, appearance settings.Appearance, trades []models.Trade, notes []models.DailyNote) error {
	snap := Snapshot{
		ExportedAt: time.Now(),
		Settings:   appearance,
		Trades:     trades,
		Notes:      notes,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

// csvTrade flattens a trade for spreadsheet use.
type csvTrade struct {
	ID         string  `csv:"id"`
	Symbol     string  `csv:"symbol"`
	Direction  string  `csv:"direction"`
	Status     string  `csv:"status"`
	EntryTime  string  `csv:"entry_time"`
	EntryPrice float64 `csv:"entry_price"`
	ExitPrice  string  `csv:"exit_price"`
	Quantity   int     `csv:"quantity"`
	StopLoss   string  `csv:"stop_loss"`
	Target     string  `csv:"target"`
	PnL        string  `csv:"pnl"`
	Strategy   string  `csv:"strategy"`
	Tags       string  `csv:"tags"`
	Notes      string  `csv:"notes"`
}

// WriteCSV serializes the trade collection to w as CSV.
func WriteCSV(w io.Writer, trades []models.Trade) error {
	rows := make([]csvTrade, 0, len(trades))
	for _, t := range trades {
		rows = append(rows, csvTrade{
			ID:         t.ID,
			Symbol:     t.Symbol,
			Direction:  string(t.Direction),
			Status:     string(t.Status),
			EntryTime:  t.EntryTime.Format(time.RFC3339),
			EntryPrice: t.EntryPrice,
			ExitPrice:  optional(t.ExitPrice),
			Quantity:   t.Quantity,
			StopLoss:   optional(t.StopLoss),
			Target:     optional(t.Target),
			PnL:        optional(t.PnL),
			Strategy:   t.Strategy,
			Tags:       strings.Join(t.Tags, ","),
			Notes:      t.Notes,
		})
	}

	if err := gocsv.Marshal(rows, w); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	return nil
}

// Import always fails: importing is explicitly disabled, and callers
// surface the message rather than failing silently.
func Import(io.Reader) error {
	return apperrors.ErrImportUnsupported
}

func optional(v *float64) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%g", *v)
}
