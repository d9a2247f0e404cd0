package models

// DerivedStats holds the aggregate performance metrics computed from
// the closed-trade subset of a trade collection. It is recomputed on
// demand and never persisted.
type DerivedStats struct {
	TotalTrades   int
	WinRate       float64 // percent, 0 when no closed trades
	NetPnL        float64
	AvgWin        float64
	AvgLoss       float64 // magnitude, always >= 0
	ProfitFactor  float64 // 999 sentinel when losses are zero but wins exist
	MaxWinStreak  int
	CurrentStreak int // positive = active win streak, negative = active loss streak
}
