package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradebook/internal/models"
)

func closedOn(id string, pnl float64, entry time.Time) models.Trade {
	p := pnl
	return models.Trade{
		ID:        id,
		Symbol:    "NIFTY",
		Status:    models.StatusClosed,
		EntryTime: entry,
		PnL:       &p,
	}
}

func TestBuildMonth_LeadingBlanksSundayFirst(t *testing.T) {
	// June 2024 starts on a Saturday, so six blank cells pad the
	// first week.
	m := BuildMonth(nil, nil, 2024, time.June)

	require.Len(t, m.Days, 6+30)
	for i := 0; i < 6; i++ {
		assert.True(t, m.Days[i].Blank)
	}
	assert.Equal(t, 1, m.Days[6].Number)
	assert.Equal(t, "2024-06-01", m.Days[6].Date)
	assert.Equal(t, "June", m.Name)
}

func TestBuildMonth_NoBlanksWhenMonthStartsSunday(t *testing.T) {
	// September 2024 starts on a Sunday.
	m := BuildMonth(nil, nil, 2024, time.September)

	require.Len(t, m.Days, 30)
	assert.False(t, m.Days[0].Blank)
	assert.Equal(t, 1, m.Days[0].Number)
}

func TestBuildMonth_FoldsTradesAndNotesIntoDays(t *testing.T) {
	day5 := time.Date(2024, 6, 5, 10, 15, 0, 0, time.Local)
	trades := []models.Trade{
		closedOn("a", 1000, day5),
		closedOn("b", -250, day5.Add(2*time.Hour)),
		closedOn("c", 400, time.Date(2024, 6, 12, 11, 0, 0, 0, time.Local)),
		{ID: "d", Status: models.StatusOpen, EntryTime: day5},               // open trades are ignored
		closedOn("e", 9999, time.Date(2024, 7, 1, 10, 0, 0, 0, time.Local)), // other month
	}
	notes := []models.DailyNote{
		{Date: "2024-06-05", Content: "choppy open", Mood: models.MoodNeutral},
		{Date: "2024-06-20", Content: "no trades today", Mood: models.MoodDisciplined},
	}

	m := BuildMonth(trades, notes, 2024, time.June)

	byDate := make(map[string]Day)
	for _, d := range m.Days {
		if !d.Blank {
			byDate[d.Date] = d
		}
	}

	d5 := byDate["2024-06-05"]
	assert.True(t, d5.HasTrades)
	assert.True(t, d5.HasNote)
	assert.Equal(t, 750.0, d5.PnL)

	d12 := byDate["2024-06-12"]
	assert.True(t, d12.HasTrades)
	assert.False(t, d12.HasNote)
	assert.Equal(t, 400.0, d12.PnL)

	d20 := byDate["2024-06-20"]
	assert.False(t, d20.HasTrades)
	assert.True(t, d20.HasNote)

	// The July trade must not leak into any June cell.
	for _, d := range m.Days {
		assert.NotEqual(t, 9999.0, d.PnL)
	}
}

func TestBuildMonth_ClosedTradeWithoutPnLStillMarksDay(t *testing.T) {
	trades := []models.Trade{
		{ID: "a", Status: models.StatusClosed, EntryTime: time.Date(2024, 6, 3, 10, 0, 0, 0, time.Local)},
	}

	m := BuildMonth(trades, nil, 2024, time.June)
	for _, d := range m.Days {
		if d.Date == "2024-06-03" {
			assert.True(t, d.HasTrades)
			assert.Equal(t, 0.0, d.PnL)
			return
		}
	}
	t.Fatal("day cell for 2024-06-03 not found")
}

func TestBuildMonth_FebruaryLeapYear(t *testing.T) {
	m := BuildMonth(nil, nil, 2024, time.February)

	var numbered int
	for _, d := range m.Days {
		if !d.Blank {
			numbered++
		}
	}
	assert.Equal(t, 29, numbered)
}

func TestMonthNavigation_YearRollover(t *testing.T) {
	dec := BuildMonth(nil, nil, 2024, time.December)
	year, month := dec.Next()
	assert.Equal(t, 2025, year)
	assert.Equal(t, time.January, month)

	jan := BuildMonth(nil, nil, 2025, time.January)
	year, month = jan.Prev()
	assert.Equal(t, 2024, year)
	assert.Equal(t, time.December, month)
}

func TestMonthNavigation_MidYear(t *testing.T) {
	jun := BuildMonth(nil, nil, 2024, time.June)

	year, month := jun.Next()
	assert.Equal(t, 2024, year)
	assert.Equal(t, time.July, month)

	year, month = jun.Prev()
	assert.Equal(t, 2024, year)
	assert.Equal(t, time.May, month)
}
