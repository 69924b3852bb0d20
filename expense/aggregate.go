package expense

import (
	"sort"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/charmbracelet/lipgloss"

	"spendtui/category"
)

// CategoryTotal is the summed spend for one category, with the category's
// registered display color attached.
type CategoryTotal struct {
	Category category.Category
	Total    *money.Money
	Color    lipgloss.Color
}

// GroupByCategory sums amounts per category. Categories with no matching
// expenses are omitted, and totals are emitted in order of each category's
// first occurrence in the input. Sums run on minor units in the set's
// working currency; amounts in another currency cannot be summed without a
// conversion rate and are skipped (a Store never holds mixed currencies).
func GroupByCategory(in []Expense) []CategoryTotal {
	currency := currencyOf(in)
	totals := make(map[category.Category]int64, len(in))
	var order []category.Category

	for _, e := range in {
		if e.Amount == nil || e.Amount.Currency().Code != currency {
			continue
		}
		if _, seen := totals[e.Category]; !seen {
			order = append(order, e.Category)
		}
		totals[e.Category] += e.Amount.Amount()
	}

	out := make([]CategoryTotal, 0, len(order))
	for _, c := range order {
		out = append(out, CategoryTotal{
			Category: c,
			Total:    money.New(totals[c], currency),
			Color:    category.ColorFor(c),
		})
	}
	return out
}

// DayGroup is one calendar day's worth of expenses, in their original
// relative order.
type DayGroup struct {
	Day      time.Time
	Expenses []Expense
}

// GroupByDay buckets expenses by calendar day, ignoring time of day. Days
// are returned most recent first; within a day the input order is kept.
func GroupByDay(in []Expense) []DayGroup {
	buckets := make(map[time.Time][]Expense, len(in))
	var days []time.Time

	for _, e := range in {
		day := time.Date(e.Date.Year(), e.Date.Month(), e.Date.Day(), 0, 0, 0, 0, e.Date.Location())
		if _, seen := buckets[day]; !seen {
			days = append(days, day)
		}
		buckets[day] = append(buckets[day], e)
	}

	sort.Slice(days, func(i, j int) bool {
		return days[i].After(days[j])
	})

	out := make([]DayGroup, 0, len(days))
	for _, day := range days {
		out = append(out, DayGroup{Day: day, Expenses: buckets[day]})
	}
	return out
}

// Summary holds the scalar rollups for an expense set.
type Summary struct {
	Total           *money.Money
	Average         *money.Money
	Count           int
	HighestCategory category.Category
	LowestCategory  category.Category
}

// Summarize computes total and average spend plus the highest- and
// lowest-spending categories. An empty input yields zero totals, never an
// error; the average of zero expenses is defined as zero. Like
// GroupByCategory, amounts outside the set's working currency are skipped.
func Summarize(in []Expense) Summary {
	currency := currencyOf(in)

	var totalUnits int64
	count := 0
	for _, e := range in {
		if e.Amount == nil || e.Amount.Currency().Code != currency {
			continue
		}
		totalUnits += e.Amount.Amount()
		count++
	}

	average := money.New(0, currency)
	if count > 0 {
		// round half-up on minor units
		n := int64(count)
		average = money.New((totalUnits+n/2)/n, currency)
	}

	s := Summary{
		Total:   money.New(totalUnits, currency),
		Average: average,
		Count:   count,
	}

	first := true
	var highest, lowest int64
	for _, ct := range GroupByCategory(in) {
		units := ct.Total.Amount()
		if first {
			s.HighestCategory, s.LowestCategory = ct.Category, ct.Category
			highest, lowest = units, units
			first = false
			continue
		}
		if units > highest {
			s.HighestCategory, highest = ct.Category, units
		}
		if units < lowest {
			s.LowestCategory, lowest = ct.Category, units
		}
	}

	return s
}
