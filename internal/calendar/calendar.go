// Package calendar buckets trades and daily notes into a month grid
// for the journal's calendar view.
package calendar

import (
	"time"

	"tradebook/internal/models"
)

// Day is one cell of the month grid. Blank cells pad the first week so
// the grid starts on Sunday.
type Day struct {
	Blank     bool
	Number    int    // day of month, 1-based
	Date      string // "2006-01-02"
	PnL       float64
	HasTrades bool
	HasNote   bool
}

// Month is the fully resolved calendar view for one (year, month).
type Month struct {
	Year  int
	Month time.Month
	Name  string // month name for display, e.g. "January"
	Days  []Day
}

// BuildMonth lays out the target month Sunday-first and folds the
// closed trades and notes of each calendar day into its cell.
//
// A trade belongs to day D when the date-formatted prefix of its entry
// timestamp equals D. This is a plain string comparison against the
// timestamp's own date portion, not a timezone-aware interval check:
// the trade lands on whatever day its timestamp names.
func BuildMonth(trades []models.Trade, notes []models.DailyNote, year int, month time.Month) Month {
	pnlByDay := make(map[string]float64)
	countByDay := make(map[string]int)
	for _, t := range trades {
		if t.Status != models.StatusClosed {
			continue
		}
		day := t.EntryDate()
		countByDay[day]++
		if t.PnL != nil {
			pnlByDay[day] += *t.PnL
		}
	}

	noteDays := make(map[string]bool, len(notes))
	for _, n := range notes {
		noteDays[n.Date] = true
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	days := make([]Day, 0, int(first.Weekday())+daysInMonth)
	for i := 0; i < int(first.Weekday()); i++ {
		days = append(days, Day{Blank: true})
	}
	for d := 1; d <= daysInMonth; d++ {
		date := time.Date(year, month, d, 0, 0, 0, 0, time.Local).Format("2006-01-02")
		days = append(days, Day{
			Number:    d,
			Date:      date,
			PnL:       pnlByDay[date],
			HasTrades: countByDay[date] > 0,
			HasNote:   noteDays[date],
		})
	}

	return Month{
		Year:  year,
		Month: month,
		Name:  month.String(),
		Days:  days,
	}
}

// Next returns the (year, month) one month after the view, rolling the
// year over past December.
func (m Month) Next() (int, time.Month) {
	if m.Month == time.December {
		return m.Year + 1, time.January
	}
	return m.Year, m.Month + 1
}

// Prev returns the (year, month) one month before the view, rolling
// the year back past January.
func (m Month) Prev() (int, time.Month) {
	if m.Month == time.January {
		return m.Year - 1, time.December
	}
	return m.Year, m.Month - 1
}
