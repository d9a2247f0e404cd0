package sizing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculate_IndexLotTooExpensive(t *testing.T) {
	// 2% of 1L is 2000; a 100-point stop allows 20 units, under one
	// NIFTY lot of 75.
	res := Calculate(Input{
		Capital:     100000,
		RiskPercent: 2,
		EntryPrice:  20000,
		StopLoss:    19900,
		Instrument:  "NIFTY",
	})

	assert.Equal(t, 2000.0, res.RiskAmount)
	assert.Equal(t, 100.0, res.StopDistance)
	assert.Equal(t, 75, res.LotSize)
	assert.Equal(t, 0, res.Lots)
	assert.Equal(t, 0, res.Quantity)
	assert.Equal(t, 0.0, res.TotalValue)
}

func TestCalculate_EquityLotOfOne(t *testing.T) {
	res := Calculate(Input{
		Capital:     100000,
		RiskPercent: 2,
		EntryPrice:  20000,
		StopLoss:    19900,
		Instrument:  "RELIANCE",
	})

	assert.Equal(t, 1, res.LotSize)
	assert.Equal(t, 20, res.Quantity)
	assert.Equal(t, 20, res.Lots)
	assert.Equal(t, 400000.0, res.TotalValue)
}

func TestCalculate_IndexLotMultiple(t *testing.T) {
	// 2% of 10L is 20000; a 100-point stop allows 200 units, which
	// floors to two NIFTY lots.
	res := Calculate(Input{
		Capital:     1000000,
		RiskPercent: 2,
		EntryPrice:  22000,
		StopLoss:    21900,
		Instrument:  "NIFTY",
	})

	assert.Equal(t, 2, res.Lots)
	assert.Equal(t, 150, res.Quantity)
}

func TestCalculate_ShortDirectionStopAboveEntry(t *testing.T) {
	res := Calculate(Input{
		Capital:     100000,
		RiskPercent: 1,
		EntryPrice:  500,
		StopLoss:    510,
	})

	assert.Equal(t, 10.0, res.StopDistance)
	assert.Equal(t, 100, res.Quantity)
}

func TestCalculate_DegenerateInputs(t *testing.T) {
	cases := []struct {
		name string
		in   Input
	}{
		{"zero stop distance", Input{Capital: 100000, RiskPercent: 1, EntryPrice: 500, StopLoss: 500}},
		{"zero entry price", Input{Capital: 100000, RiskPercent: 1, EntryPrice: 0, StopLoss: 10}},
		{"negative capital", Input{Capital: -100000, RiskPercent: 1, EntryPrice: 500, StopLoss: 490}},
		{"negative risk percent", Input{Capital: 100000, RiskPercent: -2, EntryPrice: 500, StopLoss: 490}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := Calculate(tc.in)
			assert.Equal(t, 0, res.Quantity)
			assert.Equal(t, 0, res.Lots)
			assert.Equal(t, 0.0, res.TotalValue)
			assert.GreaterOrEqual(t, res.RiskAmount, 0.0)
		})
	}
}

func TestLotSize_KnownInstruments(t *testing.T) {
	assert.Equal(t, 75, LotSize("NIFTY"))
	assert.Equal(t, 35, LotSize("BANKNIFTY"))
	assert.Equal(t, 20, LotSize("SENSEX"))
	assert.Equal(t, 1, LotSize("TCS"))
	assert.Equal(t, 75, LotSize("nifty")) // case-insensitive lookup
}
