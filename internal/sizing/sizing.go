// Package sizing recommends a position quantity from capital, risk
// tolerance and stop distance. Output is purely advisory: no
// persistence, no dependency on stored trades.
package sizing

import "math"

// Input holds the sizing parameters.
type Input struct {
	Capital     float64
	RiskPercent float64
	EntryPrice  float64
	StopLoss    float64
	Instrument  string // selects the lot size; non-index instruments imply lot size 1
}

// Result is the advisory sizing outcome. Quantity is always an exact
// non-negative multiple of the lot size, rounded down so the position
// never exceeds the risk budget.
type Result struct {
	RiskAmount   float64
	StopDistance float64
	LotSize      int
	Lots         int
	Quantity     int
	TotalValue   float64
}

// Calculate maps the sizing inputs to a recommended quantity. All
// degenerate inputs (zero stop distance, zero entry price) yield zero
// quantity rather than an error.
func Calculate(in Input) Result {
	res := Result{
		// Negative capital or risk percent clamps to a zero budget,
		// so the quantity stays non-negative.
		RiskAmount: math.Max(0, in.Capital*in.RiskPercent/100),
		LotSize:    LotSize(in.Instrument),
	}
	res.StopDistance = math.Abs(in.EntryPrice - in.StopLoss)

	if res.StopDistance <= 0 || in.EntryPrice <= 0 {
		return res
	}

	rawQuantity := int(math.Floor(res.RiskAmount / res.StopDistance))
	if res.LotSize > 1 {
		res.Lots = rawQuantity / res.LotSize
		res.Quantity = res.Lots * res.LotSize
	} else {
		res.Quantity = rawQuantity
		res.Lots = res.Quantity
	}
	res.TotalValue = float64(res.Quantity) * in.EntryPrice
	return res
}
