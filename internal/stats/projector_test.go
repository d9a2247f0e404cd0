package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradebook/internal/models"
)

func TestEquityCurve_RunningBalanceInEntryOrder(t *testing.T) {
	jan := time.Date(2024, 1, 5, 10, 0, 0, 0, time.Local)
	feb := time.Date(2024, 2, 12, 10, 0, 0, 0, time.Local)
	trades := []models.Trade{
		closedTrade("b", -300, feb),
		closedTrade("a", 1000, jan),
		{ID: "c", Status: models.StatusOpen, EntryTime: feb.Add(time.Hour)},
	}

	points := EquityCurve(trades)
	require.Len(t, points, 2)
	assert.Equal(t, "Jan 5", points[0].Label)
	assert.Equal(t, 1000.0, points[0].Value)
	assert.Equal(t, "Feb 12", points[1].Label)
	assert.Equal(t, 700.0, points[1].Value)
}

func TestEquityCurve_NilPnLContributesZero(t *testing.T) {
	jan := time.Date(2024, 1, 5, 10, 0, 0, 0, time.Local)
	trades := []models.Trade{
		closedTrade("a", 500, jan),
		{ID: "b", Status: models.StatusClosed, EntryTime: jan.Add(time.Hour)},
	}

	points := EquityCurve(trades)
	require.Len(t, points, 2)
	assert.Equal(t, 500.0, points[1].Value)
}

func TestEquityCurve_Empty(t *testing.T) {
	assert.Empty(t, EquityCurve(nil))
}

func TestMonthlyPnL_BucketsAndOrder(t *testing.T) {
	trades := []models.Trade{
		closedTrade("c", 200, time.Date(2024, 2, 1, 10, 0, 0, 0, time.Local)),
		closedTrade("a", 1000, time.Date(2023, 12, 28, 10, 0, 0, 0, time.Local)),
		closedTrade("b", -400, time.Date(2023, 12, 29, 10, 0, 0, 0, time.Local)),
		{ID: "d", Status: models.StatusOpen, EntryTime: time.Date(2024, 2, 2, 10, 0, 0, 0, time.Local)},
	}

	points := MonthlyPnL(trades)
	require.Len(t, points, 2)

	assert.Equal(t, "2023-12", points[0].Key)
	assert.Equal(t, "Dec 23", points[0].Label)
	assert.Equal(t, 600.0, points[0].Value)

	assert.Equal(t, "2024-02", points[1].Key)
	assert.Equal(t, "Feb 24", points[1].Label)
	assert.Equal(t, 200.0, points[1].Value)
}

func TestMonthlyPnL_SingleMonthNetsOut(t *testing.T) {
	trades := []models.Trade{
		closedTrade("a", 100, time.Date(2024, 1, 5, 10, 0, 0, 0, time.Local)),
		closedTrade("b", -40, time.Date(2024, 1, 20, 10, 0, 0, 0, time.Local)),
	}

	points := MonthlyPnL(trades)
	require.Len(t, points, 1)
	assert.Equal(t, "Jan 24", points[0].Label)
	assert.Equal(t, 60.0, points[0].Value)
}

func TestMonthlyPnL_ClosedWithoutPnLCreatesBucket(t *testing.T) {
	trades := []models.Trade{
		{ID: "a", Status: models.StatusClosed, EntryTime: time.Date(2024, 3, 4, 10, 0, 0, 0, time.Local)},
	}

	points := MonthlyPnL(trades)
	require.Len(t, points, 1)
	assert.Equal(t, "2024-03", points[0].Key)
	assert.Equal(t, 0.0, points[0].Value)
}
