package expense

import (
	"fmt"
	"strings"
	"time"
)

// Period types selectable in the UI and CLI.
const (
	ThisMonthPeriodType       = "this month"
	LastMonthPeriodType       = "last month"
	LastThreeMonthsPeriodType = "last 3 months"
)

// PeriodTypes lists the selectable period types in cycle order.
var PeriodTypes = []string{
	ThisMonthPeriodType,
	LastMonthPeriodType,
	LastThreeMonthsPeriodType,
}

// Period is a concrete [start, end] date window resolved from a named
// period type against a moment in time.
type Period struct {
	start time.Time
	end   time.Time
}

func (p Period) String() string {
	if p.start.IsZero() && p.end.IsZero() {
		return ""
	}
	return fmt.Sprintf("%s - %s", p.start.Format("2006-01-02"), p.end.Format("2006-01-02"))
}

func (p Period) StartDate() string {
	return p.start.Format("2006-01-02")
}

func (p Period) EndDate() string {
	return p.end.Format("2006-01-02")
}

// Contains reports whether t falls inside the window, inclusive of both
// bounds.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.start) && !t.After(p.end)
}

// Window resolves a period type against now. "Last month" is the one closed
// calendar interval; the other types run from the first of their starting
// month through the end of today.
func Window(now time.Time, periodType string) Period {
	switch periodType {
	case LastMonthPeriodType:
		start := time.Date(now.Year(), now.Month()-1, 1, 0, 0, 0, 0, now.Location())
		end := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).Add(-time.Second)
		return Period{start: start, end: end}
	case LastThreeMonthsPeriodType:
		start := time.Date(now.Year(), now.Month()-2, 1, 0, 0, 0, 0, now.Location())
		return Period{start: start, end: endOfDay(now)}
	default:
		// default to this month
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return Period{start: start, end: endOfDay(now)}
	}
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()).
		AddDate(0, 0, 1).Add(-time.Second)
}

// FilterByPeriod returns the records whose date lies inside p, preserving
// their relative order.
func FilterByPeriod(in []Expense, p Period) []Expense {
	out := make([]Expense, 0, len(in))
	for _, e := range in {
		if p.Contains(e.Date) {
			out = append(out, e)
		}
	}
	return out
}

// FilterByCategoryText returns the records whose category label contains
// filter, case-insensitively. An empty filter matches everything.
func FilterByCategoryText(in []Expense, filter string) []Expense {
	filter = strings.ToLower(strings.TrimSpace(filter))
	if filter == "" {
		out := make([]Expense, len(in))
		copy(out, in)
		return out
	}

	out := make([]Expense, 0, len(in))
	for _, e := range in {
		if strings.Contains(strings.ToLower(string(e.Category)), filter) {
			out = append(out, e)
		}
	}
	return out
}
