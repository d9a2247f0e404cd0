package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "tradebook/internal/errors"
	"tradebook/internal/models"
	"tradebook/internal/settings"
)

func exportTrades() []models.Trade {
	pnl := 7500.0
	exit := 22100.0
	return []models.Trade{
		{
			ID:         "t1",
			Symbol:     "NIFTY",
			Direction:  models.DirectionLong,
			Status:     models.StatusClosed,
			EntryTime:  time.Date(2024, 6, 5, 9, 30, 0, 0, time.UTC),
			EntryPrice: 22000,
			ExitPrice:  &exit,
			Quantity:   75,
			PnL:        &pnl,
			Strategy:   "breakout",
			Tags:       []string{"breakout", "fomo"},
			Notes:      "clean retest",
		},
		{
			ID:         "t2",
			Symbol:     "RELIANCE",
			Direction:  models.DirectionShort,
			Status:     models.StatusOpen,
			EntryTime:  time.Date(2024, 6, 6, 10, 0, 0, 0, time.UTC),
			EntryPrice: 2440,
			Quantity:   10,
		},
	}
}

func TestWriteSnapshot_FullState(t *testing.T) {
	notes := []models.DailyNote{
		{Date: "2024-06-05", Content: "good discipline", Mood: models.MoodDisciplined},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteSnapshot(&buf, settings.Defaults(), exportTrades(), notes))

	var snap Snapshot
	require.NoError(t, json.Unmarshal(buf.Bytes(), &snap))

	assert.False(t, snap.ExportedAt.IsZero())
	assert.Equal(t, "dark", snap.Settings.Theme)
	require.Len(t, snap.Trades, 2)
	assert.Equal(t, "t1", snap.Trades[0].ID)
	require.Len(t, snap.Notes, 1)
	assert.Equal(t, models.MoodDisciplined, snap.Notes[0].Mood)
}

func TestWriteSnapshot_EmptyJournal(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSnapshot(&buf, settings.Defaults(), nil, nil))

	var snap Snapshot
	require.NoError(t, json.Unmarshal(buf.Bytes(), &snap))
	assert.Empty(t, snap.Trades)
	assert.Empty(t, snap.Notes)
}

func TestWriteCSV_FlattensTrades(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, exportTrades()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)

	assert.Contains(t, lines[0], "id")
	assert.Contains(t, lines[0], "entry_price")
	assert.Contains(t, lines[1], "t1")
	assert.Contains(t, lines[1], "7500")
	assert.Contains(t, lines[1], "breakout,fomo")

	// Absent optional fields serialize as empty, not zero.
	assert.Contains(t, lines[2], "t2")
	assert.NotContains(t, lines[2], "0,0,0")
}

func TestImport_AlwaysUnsupported(t *testing.T) {
	err := Import(strings.NewReader(`{"trades": []}`))
	assert.ErrorIs(t, err, apperrors.ErrImportUnsupported)
}
