package expense

import (
	"testing"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/carlmjohnson/be"

	"spendtui/category"
)

func mustExpense(id string, cents int64, date time.Time, c category.Category) Expense {
	return Expense{
		ID:       id,
		Amount:   money.New(cents, DefaultCurrency),
		Date:     date,
		Category: c,
	}
}

func TestWindowThisMonth(t *testing.T) {
	now := time.Date(2025, 4, 15, 12, 0, 0, 0, time.UTC)
	p := Window(now, ThisMonthPeriodType)

	be.Equal(t, "2025-04-01", p.StartDate())
	be.Equal(t, "2025-04-15", p.EndDate())
}

func TestWindowLastMonthIsClosedInterval(t *testing.T) {
	now := time.Date(2025, 4, 15, 12, 0, 0, 0, time.UTC)
	p := Window(now, LastMonthPeriodType)

	be.Equal(t, "2025-03-01", p.StartDate())
	be.Equal(t, "2025-03-31", p.EndDate())
}

func TestWindowLastThreeMonths(t *testing.T) {
	now := time.Date(2025, 4, 15, 12, 0, 0, 0, time.UTC)
	p := Window(now, LastThreeMonthsPeriodType)

	be.Equal(t, "2025-02-01", p.StartDate())
	be.Equal(t, "2025-04-15", p.EndDate())
}

func TestWindowDefaultsToThisMonth(t *testing.T) {
	now := time.Date(2025, 4, 15, 12, 0, 0, 0, time.UTC)
	be.Equal(t, Window(now, ThisMonthPeriodType), Window(now, "invalid"))
}

func TestWindowCrossesYearBoundary(t *testing.T) {
	now := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)

	lastMonth := Window(now, LastMonthPeriodType)
	be.Equal(t, "2024-12-01", lastMonth.StartDate())
	be.Equal(t, "2024-12-31", lastMonth.EndDate())

	lastThree := Window(now, LastThreeMonthsPeriodType)
	be.Equal(t, "2024-11-01", lastThree.StartDate())
}

func TestFilterByPeriodThisMonth(t *testing.T) {
	now := time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC)
	expenses := []Expense{
		mustExpense("1", 1000, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), category.Food),
		mustExpense("2", 2000, time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC), category.Travel),
		mustExpense("3", 3000, time.Date(2025, 4, 15, 10, 0, 0, 0, time.UTC), category.Health),
		mustExpense("4", 4000, time.Date(2025, 4, 15, 23, 59, 0, 0, time.UTC), category.Shopping),
	}

	got := FilterByPeriod(expenses, Window(now, ThisMonthPeriodType))

	be.Equal(t, 3, len(got))
	be.Equal(t, "1", got[0].ID)
	be.Equal(t, "3", got[1].ID)
	be.Equal(t, "4", got[2].ID)
}

func TestFilterByPeriodLastMonthExcludesCurrentMonth(t *testing.T) {
	now := time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC)
	expenses := []Expense{
		mustExpense("1", 1000, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), category.Food),
		mustExpense("2", 2000, time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC), category.Travel),
		mustExpense("3", 3000, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), category.Health),
	}

	got := FilterByPeriod(expenses, Window(now, LastMonthPeriodType))

	be.Equal(t, 2, len(got))
	be.Equal(t, "1", got[0].ID)
	be.Equal(t, "2", got[1].ID)
}

func TestFilterByPeriodEmptyInput(t *testing.T) {
	now := time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC)
	got := FilterByPeriod(nil, Window(now, ThisMonthPeriodType))
	be.Equal(t, 0, len(got))
}

func TestFilterByCategoryText(t *testing.T) {
	expenses := []Expense{
		mustExpense("1", 1000, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), category.Food),
		mustExpense("2", 2000, time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC), category.SocialLife),
		mustExpense("3", 3000, time.Date(2025, 4, 3, 0, 0, 0, 0, time.UTC), category.Shopping),
	}

	tests := []struct {
		name     string
		filter   string
		expected []string
	}{
		{name: "empty filter matches all", filter: "", expected: []string{"1", "2", "3"}},
		{name: "case insensitive substring", filter: "FOO", expected: []string{"1"}},
		{name: "substring across words", filter: "social", expected: []string{"2"}},
		{name: "shared substring", filter: "s", expected: []string{"2", "3"}},
		{name: "no match", filter: "rent", expected: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterByCategoryText(expenses, tt.filter)
			be.Equal(t, len(tt.expected), len(got))
			for i, id := range tt.expected {
				be.Equal(t, id, got[i].ID)
			}
		})
	}
}

func TestPeriodString(t *testing.T) {
	now := time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC)
	p := Window(now, ThisMonthPeriodType)
	be.Equal(t, "2025-04-01 - 2025-04-15", p.String())

	var zero Period
	be.Equal(t, "", zero.String())
}
