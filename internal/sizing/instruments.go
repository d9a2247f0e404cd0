package sizing

import (
	"strings"
	"time"
)

// Instrument metadata for index derivatives. These are configuration
// tables, not logic: lot sizes and expiry weekdays change by exchange
// circular, so they live here in one place.
type instrumentInfo struct {
	LotSize       int
	ExpiryWeekday time.Weekday
}

var indexInstruments = map[string]instrumentInfo{
	"NIFTY":      {LotSize: 75, ExpiryWeekday: time.Thursday},
	"BANKNIFTY":  {LotSize: 35, ExpiryWeekday: time.Wednesday},
	"FINNIFTY":   {LotSize: 65, ExpiryWeekday: time.Tuesday},
	"MIDCPNIFTY": {LotSize: 120, ExpiryWeekday: time.Monday},
	"SENSEX":     {LotSize: 20, ExpiryWeekday: time.Friday},
}

// LotSize returns the minimum tradable multiple for an instrument.
// Anything outside the index-derivative table trades in single units.
func LotSize(instrument string) int {
	if info, ok := indexInstruments[strings.ToUpper(strings.TrimSpace(instrument))]; ok {
		return info.LotSize
	}
	return 1
}

// ExpiryWeekday returns the weekly expiry weekday for an index
// derivative. The second return is false for non-index instruments.
func ExpiryWeekday(instrument string) (time.Weekday, bool) {
	info, ok := indexInstruments[strings.ToUpper(strings.TrimSpace(instrument))]
	if !ok {
		return 0, false
	}
	return info.ExpiryWeekday, true
}

// Instruments returns the known index-derivative symbols.
func Instruments() []string {
	names := make([]string, 0, len(indexInstruments))
	for name := range indexInstruments {
		names = append(names, name)
	}
	return names
}
