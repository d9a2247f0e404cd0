package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExtractTags(t *testing.T) {
	tags := ExtractTags("entered on #FOMO, exited late again #fomo #revenge-trade")
	assert.Equal(t, []string{"fomo", "revenge-trade"}, tags)

	assert.Nil(t, ExtractTags("no tags here"))
	assert.Nil(t, ExtractTags(""))
}

func TestNormalize_SymbolAndTagMerge(t *testing.T) {
	trade := Trade{
		Symbol: "  reliance ",
		Notes:  "chased the breakout #fomo",
		Tags:   []string{"Breakout", "fomo", ""},
	}
	trade.Normalize()

	assert.Equal(t, "RELIANCE", trade.Symbol)
	assert.Equal(t, []string{"breakout", "fomo"}, trade.Tags)
}

func TestComputePnL(t *testing.T) {
	exit := 2500.0
	long := Trade{Direction: DirectionLong, EntryPrice: 2440, ExitPrice: &exit, Quantity: 10}
	pnl, ok := long.ComputePnL()
	assert.True(t, ok)
	assert.InDelta(t, 600, pnl, 1e-9)

	short := Trade{Direction: DirectionShort, EntryPrice: 2440, ExitPrice: &exit, Quantity: 10}
	pnl, ok = short.ComputePnL()
	assert.True(t, ok)
	assert.InDelta(t, -600, pnl, 1e-9)

	open := Trade{Direction: DirectionLong, EntryPrice: 2440, Quantity: 10}
	_, ok = open.ComputePnL()
	assert.False(t, ok)
}

func TestEntryDate(t *testing.T) {
	trade := Trade{EntryTime: time.Date(2024, 6, 5, 23, 45, 0, 0, time.Local)}
	assert.Equal(t, "2024-06-05", trade.EntryDate())
}

func TestNewTradeID_Unique(t *testing.T) {
	a, b := NewTradeID(), NewTradeID()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}

func TestValidMood(t *testing.T) {
	assert.True(t, ValidMood(MoodHappy))
	assert.True(t, ValidMood(MoodDisciplined))
	assert.False(t, ValidMood(Mood("ecstatic")))
}
