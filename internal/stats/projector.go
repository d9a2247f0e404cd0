package stats

import (
	"sort"

	"tradebook/internal/models"
)

// EquityPoint is one step of the chronological running balance.
type EquityPoint struct {
	Label string  // short display date, e.g. "Jan 5"
	Value float64 // cumulative P&L up to and including this trade
}

// MonthlyPoint is the net P&L of one calendar month.
type MonthlyPoint struct {
	Key   string // zero-padded "YYYY-MM", order-preserving under lexicographic sort
	Label string // display label, e.g. "Jan 24"
	Value float64
}

// EquityCurve projects the closed trades into a running cumulative P&L
// series, one point per trade in entry order. A closed trade without a
// realized P&L contributes zero. Fully recomputed on every call.
func EquityCurve(trades []models.Trade) []EquityPoint {
	closed := make([]models.Trade, 0, len(trades))
	for _, t := range trades {
		if t.Status == models.StatusClosed {
			closed = append(closed, t)
		}
	}
	sort.SliceStable(closed, func(i, j int) bool {
		return closed[i].EntryTime.Before(closed[j].EntryTime)
	})

	points := make([]EquityPoint, 0, len(closed))
	var running float64
	for _, t := range closed {
		if t.PnL != nil {
			running += *t.PnL
		}
		points = append(points, EquityPoint{
			Label: t.EntryTime.Format("Jan 2"),
			Value: running,
		})
	}
	return points
}

// MonthlyPnL buckets the closed trades by calendar month and sums the
// P&L per bucket, emitted in chronological order.
func MonthlyPnL(trades []models.Trade) []MonthlyPoint {
	sums := make(map[string]float64)
	labels := make(map[string]string)
	for _, t := range trades {
		if t.Status != models.StatusClosed {
			continue
		}
		key := t.EntryTime.Format("2006-01")
		if _, ok := labels[key]; !ok {
			labels[key] = t.EntryTime.Format("Jan 06")
		}
		var pnl float64
		if t.PnL != nil {
			pnl = *t.PnL
		}
		sums[key] += pnl
	}

	keys := make([]string, 0, len(sums))
	for key := range sums {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	points := make([]MonthlyPoint, 0, len(keys))
	for _, key := range keys {
		points = append(points, MonthlyPoint{
			Key:   key,
			Label: labels[key],
			Value: sums[key],
		})
	}
	return points
}
