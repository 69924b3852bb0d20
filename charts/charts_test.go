package charts

import (
	"strings"
	"testing"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/carlmjohnson/be"

	"spendtui/category"
	"spendtui/expense"
)

func sampleTotals() []expense.CategoryTotal {
	return []expense.CategoryTotal{
		{Category: category.Food, Total: money.New(1500, "USD"), Color: category.ColorFor(category.Food)},
		{Category: category.Travel, Total: money.New(2000, "USD"), Color: category.ColorFor(category.Travel)},
	}
}

func TestFromCategoryTotals(t *testing.T) {
	rows := FromCategoryTotals(sampleTotals())

	be.Equal(t, 2, len(rows))
	be.Equal(t, "Food", rows[0].Label)
	be.Equal(t, 15.0, rows[0].Value)
	be.Equal(t, "$15.00", rows[0].Display)
	be.Equal(t, category.ColorFor(category.Food), rows[0].Color)
	be.Equal(t, "Travel", rows[1].Label)
}

func TestFromCategoryTotalsEmpty(t *testing.T) {
	be.Equal(t, 0, len(FromCategoryTotals(nil)))
}

func TestRenderProportional(t *testing.T) {
	out := RenderProportional(FromCategoryTotals(sampleTotals()), 40)

	be.In(t, "Food", out)
	be.In(t, "Travel", out)
	be.In(t, "$15.00", out)
	be.In(t, "$20.00", out)
	// 15 of 35 total
	be.In(t, "42.9%", out)
	be.In(t, "57.1%", out)
}

func TestRenderProportionalEmpty(t *testing.T) {
	be.Equal(t, "", RenderProportional(nil, 40))
	be.Equal(t, "", RenderProportional(FromCategoryTotals(sampleTotals()), 0))
}

func TestRenderRankedOrdersByValueDescending(t *testing.T) {
	rows := FromCategoryTotals(sampleTotals())
	out := RenderRanked(rows, 20)

	travelIdx := strings.Index(out, "Travel")
	foodIdx := strings.Index(out, "Food")
	be.True(t, travelIdx >= 0)
	be.True(t, foodIdx >= 0)
	be.True(t, travelIdx < foodIdx)

	// the input sequence the proportional chart uses is untouched
	be.Equal(t, "Food", rows[0].Label)
}

func TestBothRenderingsConsumeIdenticalRows(t *testing.T) {
	rows := FromCategoryTotals(sampleTotals())

	proportional := RenderProportional(rows, 40)
	ranked := RenderRanked(rows, 40)

	for _, r := range rows {
		be.In(t, r.Label, proportional)
		be.In(t, r.Label, ranked)
		be.In(t, r.Display, proportional)
		be.In(t, r.Display, ranked)
	}
}

func TestFromDayGroups(t *testing.T) {
	groups := []expense.DayGroup{
		{
			Day: time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC),
			Expenses: []expense.Expense{
				{
					ID:       "1",
					Amount:   money.New(2599, "USD"),
					Date:     time.Date(2025, 4, 10, 14, 30, 0, 0, time.UTC),
					Category: category.Food,
					Note:     "lunch",
				},
			},
		},
		{
			Day: time.Date(2025, 4, 9, 0, 0, 0, 0, time.UTC),
			Expenses: []expense.Expense{
				{
					ID:       "2",
					Amount:   money.New(4550, "USD"),
					Date:     time.Date(2025, 4, 9, 9, 0, 0, 0, time.UTC),
					Category: category.Travel,
				},
			},
		},
	}

	sections := FromDayGroups(groups)

	be.Equal(t, 2, len(sections))
	be.Equal(t, "Thursday, Apr 10, 2025", sections[0].Title)
	be.Equal(t, 1, len(sections[0].Entries))

	entry := sections[0].Entries[0]
	be.Equal(t, "1", entry.ID)
	be.Equal(t, "Food", entry.Label)
	be.Equal(t, "$25.99", entry.Amount)
	be.Equal(t, "2:30 PM", entry.TimeOfDay)
	be.Equal(t, "lunch", entry.Note)
	be.Equal(t, category.IconFor(category.Food), entry.Icon)
	be.Equal(t, category.ColorFor(category.Food), entry.Color)

	be.Equal(t, "Wednesday, Apr 9, 2025", sections[1].Title)
}

func TestFromDayGroupsEmpty(t *testing.T) {
	be.Equal(t, 0, len(FromDayGroups(nil)))
}
