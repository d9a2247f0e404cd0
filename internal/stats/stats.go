// Package stats computes aggregate performance metrics from a trade
// collection. Every function is pure: full recomputation over the
// in-memory slice, no state, no I/O.
package stats

import (
	"sort"

	"tradebook/internal/models"
)

// ProfitFactorCap is reported instead of infinity when there are wins
// but no losses.
const ProfitFactorCap = 999

// closedWithPnL returns the closed trades that carry a realized P&L,
// sorted ascending by entry time with ties broken by ID. The ID
// tiebreak makes the streak scan deterministic regardless of storage
// order.
func closedWithPnL(trades []models.Trade) []models.Trade {
	subset := make([]models.Trade, 0, len(trades))
	for _, t := range trades {
		if t.Status == models.StatusClosed && t.PnL != nil {
			subset = append(subset, t)
		}
	}
	sort.Slice(subset, func(i, j int) bool {
		if !subset[i].EntryTime.Equal(subset[j].EntryTime) {
			return subset[i].EntryTime.Before(subset[j].EntryTime)
		}
		return subset[i].ID < subset[j].ID
	})
	return subset
}

// Compute derives performance statistics from the full trade
// collection. Empty input yields all-zero stats; there are no error
// conditions.
func Compute(trades []models.Trade) models.DerivedStats {
	subset := closedWithPnL(trades)

	var stats models.DerivedStats
	stats.TotalTrades = len(subset)
	if len(subset) == 0 {
		return stats
	}

	var winCount, lossCount int
	var totalWin, totalLoss float64
	var winStreak, maxWinStreak, currentStreak int

	for _, t := range subset {
		pnl := *t.PnL
		stats.NetPnL += pnl

		// A realized P&L of exactly zero counts as a loss.
		if pnl > 0 {
			winCount++
			totalWin += pnl

			winStreak++
			if winStreak > maxWinStreak {
				maxWinStreak = winStreak
			}
			if currentStreak > 0 {
				currentStreak++
			} else {
				currentStreak = 1
			}
		} else {
			lossCount++
			totalLoss += -pnl

			winStreak = 0
			if currentStreak < 0 {
				currentStreak--
			} else {
				currentStreak = -1
			}
		}
	}

	stats.WinRate = float64(winCount) / float64(len(subset)) * 100
	if winCount > 0 {
		stats.AvgWin = totalWin / float64(winCount)
	}
	if lossCount > 0 {
		stats.AvgLoss = totalLoss / float64(lossCount)
	}
	switch {
	case totalLoss > 0:
		stats.ProfitFactor = totalWin / totalLoss
	case totalWin > 0:
		stats.ProfitFactor = ProfitFactorCap
	}
	stats.MaxWinStreak = maxWinStreak
	stats.CurrentStreak = currentStreak

	return stats
}
