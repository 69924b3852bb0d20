package expense

import (
	"testing"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/carlmjohnson/be"

	"spendtui/category"
)

func TestGroupByCategoryFirstSeenOrder(t *testing.T) {
	expenses := []Expense{
		mustExpense("1", 1000, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), category.Food),
		mustExpense("2", 500, time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC), category.Food),
		mustExpense("3", 2000, time.Date(2025, 4, 3, 0, 0, 0, 0, time.UTC), category.Travel),
	}

	got := GroupByCategory(expenses)

	be.Equal(t, 2, len(got))
	be.Equal(t, category.Food, got[0].Category)
	be.Equal(t, int64(1500), got[0].Total.Amount())
	be.Equal(t, category.ColorFor(category.Food), got[0].Color)
	be.Equal(t, category.Travel, got[1].Category)
	be.Equal(t, int64(2000), got[1].Total.Amount())
	be.Equal(t, category.ColorFor(category.Travel), got[1].Color)
}

func TestGroupByCategoryOmitsAbsentCategories(t *testing.T) {
	expenses := []Expense{
		mustExpense("1", 1000, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), category.Health),
	}

	got := GroupByCategory(expenses)
	be.Equal(t, 1, len(got))
	be.Equal(t, category.Health, got[0].Category)
}

func TestGroupByCategoryConservation(t *testing.T) {
	expenses := []Expense{
		mustExpense("1", 1099, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), category.Food),
		mustExpense("2", 4550, time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC), category.Travel),
		mustExpense("3", 12000, time.Date(2025, 4, 3, 0, 0, 0, 0, time.UTC), category.Shopping),
		mustExpense("4", 33, time.Date(2025, 4, 4, 0, 0, 0, 0, time.UTC), category.Food),
		mustExpense("5", 7777, time.Date(2025, 4, 5, 0, 0, 0, 0, time.UTC), category.Miscellaneous),
	}

	var fromGroups int64
	for _, ct := range GroupByCategory(expenses) {
		fromGroups += ct.Total.Amount()
	}

	be.Equal(t, Summarize(expenses).Total.Amount(), fromGroups)
}

func TestGroupByCategoryEmpty(t *testing.T) {
	be.Equal(t, 0, len(GroupByCategory(nil)))
}

func TestGroupByCategoryMixedCurrencies(t *testing.T) {
	expenses := []Expense{
		mustExpense("1", 1000, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), category.Food),
		{
			ID:       "2",
			Amount:   money.New(2000, "EUR"),
			Date:     time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC),
			Category: category.Travel,
		},
	}

	got := GroupByCategory(expenses)

	// amounts outside the working currency are skipped, never nil totals
	be.Equal(t, 1, len(got))
	be.Equal(t, category.Food, got[0].Category)
	be.Nonzero(t, got[0].Total)
	be.Equal(t, int64(1000), got[0].Total.Amount())
	be.Equal(t, DefaultCurrency, got[0].Total.Currency().Code)
}

func TestGroupByDayOrdering(t *testing.T) {
	expenses := []Expense{
		mustExpense("a", 1000, time.Date(2025, 4, 9, 9, 0, 0, 0, time.UTC), category.Food),
		mustExpense("b", 2000, time.Date(2025, 4, 10, 8, 0, 0, 0, time.UTC), category.Travel),
		mustExpense("c", 3000, time.Date(2025, 4, 10, 20, 0, 0, 0, time.UTC), category.Food),
		mustExpense("d", 4000, time.Date(2025, 4, 9, 23, 0, 0, 0, time.UTC), category.Health),
	}

	got := GroupByDay(expenses)

	be.Equal(t, 2, len(got))

	// most recent day first
	be.Equal(t, time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC), got[0].Day)
	be.Equal(t, time.Date(2025, 4, 9, 0, 0, 0, 0, time.UTC), got[1].Day)

	// within a day, original relative order is preserved
	be.Equal(t, "b", got[0].Expenses[0].ID)
	be.Equal(t, "c", got[0].Expenses[1].ID)
	be.Equal(t, "a", got[1].Expenses[0].ID)
	be.Equal(t, "d", got[1].Expenses[1].ID)
}

func TestGroupByDayIgnoresTimeOfDay(t *testing.T) {
	expenses := []Expense{
		mustExpense("1", 1000, time.Date(2025, 4, 10, 0, 0, 1, 0, time.UTC), category.Food),
		mustExpense("2", 2000, time.Date(2025, 4, 10, 23, 59, 59, 0, time.UTC), category.Travel),
	}

	got := GroupByDay(expenses)
	be.Equal(t, 1, len(got))
	be.Equal(t, 2, len(got[0].Expenses))
}

func TestSummarize(t *testing.T) {
	expenses := []Expense{
		mustExpense("1", 1000, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), category.Food),
		mustExpense("2", 500, time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC), category.Food),
		mustExpense("3", 2000, time.Date(2025, 4, 3, 0, 0, 0, 0, time.UTC), category.Travel),
		mustExpense("4", 100, time.Date(2025, 4, 4, 0, 0, 0, 0, time.UTC), category.Health),
	}

	s := Summarize(expenses)

	be.Equal(t, int64(3600), s.Total.Amount())
	be.Equal(t, int64(900), s.Average.Amount())
	be.Equal(t, 4, s.Count)
	be.Equal(t, category.Travel, s.HighestCategory)
	be.Equal(t, category.Health, s.LowestCategory)
}

func TestSummarizeAverageRoundsHalfUp(t *testing.T) {
	expenses := []Expense{
		mustExpense("1", 2, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), category.Food),
		mustExpense("2", 3, time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC), category.Food),
	}

	s := Summarize(expenses)

	// 5 minor units over 2 expenses rounds to 3, not down to 2
	be.Equal(t, int64(5), s.Total.Amount())
	be.Equal(t, int64(3), s.Average.Amount())
}

func TestSummarizeMixedCurrencies(t *testing.T) {
	expenses := []Expense{
		mustExpense("1", 1500, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), category.Food),
		{
			ID:       "2",
			Amount:   money.New(2000, "EUR"),
			Date:     time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC),
			Category: category.Travel,
		},
		{
			ID:       "3",
			Amount:   money.New(3000, "EUR"),
			Date:     time.Date(2025, 4, 3, 0, 0, 0, 0, time.UTC),
			Category: category.Travel,
		},
	}

	s := Summarize(expenses)

	// only the working currency is summed; no amount goes missing as nil
	be.Equal(t, DefaultCurrency, s.Total.Currency().Code)
	be.Equal(t, int64(1500), s.Total.Amount())
	be.Equal(t, 1, s.Count)
	be.Equal(t, category.Food, s.HighestCategory)
}

func TestSummarizeEmptyAverageIsZero(t *testing.T) {
	s := Summarize(nil)

	be.Equal(t, 0, s.Count)
	be.Equal(t, int64(0), s.Total.Amount())
	be.Equal(t, int64(0), s.Average.Amount())
	be.Equal(t, "$0.00", s.Average.Display())
	be.Equal(t, category.Category(""), s.HighestCategory)
}

func TestSummarizeSingleCategoryHighestEqualsLowest(t *testing.T) {
	expenses := []Expense{
		mustExpense("1", 1000, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), category.Education),
	}

	s := Summarize(expenses)
	be.Equal(t, category.Education, s.HighestCategory)
	be.Equal(t, category.Education, s.LowestCategory)
}

func TestSummarizeUsesExpenseCurrency(t *testing.T) {
	expenses := []Expense{
		{
			ID:       "1",
			Amount:   money.New(1000, "EUR"),
			Date:     time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
			Category: category.Food,
		},
	}

	s := Summarize(expenses)
	be.Equal(t, "EUR", s.Total.Currency().Code)
}
