// Package models provides domain models for the trading journal.
package models

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Direction represents the direction of a position.
type Direction string

const (
	DirectionLong  Direction = "LONG"
	DirectionShort Direction = "SHORT"
)

// TradeStatus represents the lifecycle status of a trade.
type TradeStatus string

const (
	StatusOpen    TradeStatus = "OPEN"
	StatusClosed  TradeStatus = "CLOSED"
	StatusPending TradeStatus = "PENDING"
)

// Trade represents a single executed or planned market position.
// ID is generated client-side at creation and immutable thereafter.
// PnL is present only once the trade is closed; a closed trade with a
// nil PnL is tolerated and excluded from win/loss classification.
type Trade struct {
	ID         string
	Symbol     string
	Direction  Direction
	Status     TradeStatus
	EntryTime  time.Time
	Expiry     *time.Time
	EntryPrice float64
	ExitPrice  *float64
	Quantity   int
	StopLoss   *float64
	Target     *float64
	PnL        *float64
	Strategy   string
	Notes      string
	Tags       []string
}

// NewTradeID returns a fresh client-side trade identifier.
func NewTradeID() string {
	return uuid.NewString()
}

var tagPattern = regexp.MustCompile(`#([A-Za-z0-9_-]+)`)

// ExtractTags pulls #tag tokens out of free text.
func ExtractTags(text string) []string {
	matches := tagPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(matches))
	var tags []string
	for _, m := range matches {
		tag := strings.ToLower(m[1])
		if !seen[tag] {
			seen[tag] = true
			tags = append(tags, tag)
		}
	}
	return tags
}

// Normalize upper-cases the symbol and merges #tags embedded in the
// notes into the tag set.
func (t *Trade) Normalize() {
	t.Symbol = strings.ToUpper(strings.TrimSpace(t.Symbol))

	seen := make(map[string]bool, len(t.Tags))
	var tags []string
	for _, tag := range t.Tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag != "" && !seen[tag] {
			seen[tag] = true
			tags = append(tags, tag)
		}
	}
	for _, tag := range ExtractTags(t.Notes) {
		if !seen[tag] {
			seen[tag] = true
			tags = append(tags, tag)
		}
	}
	sort.Strings(tags)
	t.Tags = tags
}

// ComputePnL returns the directional realized P&L from entry, exit and
// quantity. Returns false when the trade has no exit price.
func (t *Trade) ComputePnL() (float64, bool) {
	if t.ExitPrice == nil {
		return 0, false
	}
	diff := *t.ExitPrice - t.EntryPrice
	if t.Direction == DirectionShort {
		diff = -diff
	}
	return diff * float64(t.Quantity), true
}

// EntryDate returns the calendar-day portion of the entry timestamp.
// Calendar bucketing compares this string prefix, not timezone-aware
// intervals, so a trade lands on the day its own timestamp names.
func (t *Trade) EntryDate() string {
	return t.EntryTime.Format("2006-01-02")
}
