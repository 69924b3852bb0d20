package overview

import (
	"strings"
	"testing"
	"time"

	"github.com/Rhymond/go-money"

	"spendtui/category"
	"spendtui/expense"
)

func aprilModel() Model {
	now := time.Date(2025, 4, 15, 12, 0, 0, 0, time.UTC)
	m := New(WithPeriod(expense.Window(now, expense.ThisMonthPeriodType), expense.ThisMonthPeriodType))
	m.SetSize(160, 40)
	return m
}

func TestUpdateViewport_RendersSummaryAndCharts(t *testing.T) {
	m := aprilModel()
	m.SetUser("shubhi",
		money.New(500000, "USD"),
		money.New(50000, "USD"),
	)
	m.SetExpenses([]expense.Expense{
		{
			ID:       "1",
			Amount:   money.New(1500, "USD"),
			Date:     time.Date(2025, 4, 10, 14, 30, 0, 0, time.UTC),
			Category: category.Food,
			Note:     "lunch",
		},
		{
			ID:       "2",
			Amount:   money.New(2000, "USD"),
			Date:     time.Date(2025, 4, 12, 9, 0, 0, 0, time.UTC),
			Category: category.Travel,
		},
	})

	out := m.View()

	if !strings.Contains(out, "Welcome back, shubhi!") {
		t.Error("expected view to greet the user by name")
	}
	// 5000 income - 500 deduction - 35 spent
	if !strings.Contains(out, "$4,965.00") {
		t.Errorf("expected balance of $4,965.00 in view:\n%s", out)
	}
	if !strings.Contains(out, "$35.00") {
		t.Error("expected total spent of $35.00 in view")
	}
	if !strings.Contains(out, "Most spent on: Travel") {
		t.Error("expected Travel as the highest category")
	}
	if !strings.Contains(out, "Least spent on: Food") {
		t.Error("expected Food as the lowest category")
	}
	if !strings.Contains(out, "Spending Breakdown | This Month") {
		t.Error("expected the breakdown section header")
	}
	if !strings.Contains(out, "lunch") {
		t.Error("expected the expense note in the recent list")
	}
}

func TestUpdateViewport_BalanceSpansAllLoadedExpenses(t *testing.T) {
	m := aprilModel()
	m.SetUser("shubhi",
		money.New(500000, "USD"),
		money.New(0, "USD"),
	)
	// one expense inside the visible period, one far outside it
	m.SetExpenses([]expense.Expense{
		{
			ID:       "in",
			Amount:   money.New(1000, "USD"),
			Date:     time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC),
			Category: category.Food,
		},
		{
			ID:       "out",
			Amount:   money.New(100000, "USD"),
			Date:     time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
			Category: category.Shopping,
		},
	})

	out := m.View()

	// 5000 - 10 - 1000, not 5000 - 10
	if !strings.Contains(out, "$3,990.00") {
		t.Errorf("expected balance to include out-of-period spending:\n%s", out)
	}
	// the period-scoped total only covers April
	if !strings.Contains(out, "$10.00") {
		t.Error("expected period total of $10.00 in view")
	}
}

func TestUpdateViewport_EmptyStates(t *testing.T) {
	m := aprilModel()

	out := m.View()

	if !strings.Contains(out, "No expense data available for the selected period") {
		t.Error("expected the empty chart message")
	}
	if !strings.Contains(out, "No expenses found") {
		t.Error("expected the empty expense list message")
	}
}

func TestSetPeriod_ReFiltersCharts(t *testing.T) {
	now := time.Date(2025, 4, 15, 12, 0, 0, 0, time.UTC)
	m := aprilModel()
	m.SetExpenses([]expense.Expense{
		{
			ID:       "march",
			Amount:   money.New(2500, "USD"),
			Date:     time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC),
			Category: category.Health,
		},
	})

	if strings.Contains(m.View(), "Health") {
		t.Error("march expense should not be visible under this month")
	}

	m.SetPeriod(expense.Window(now, expense.LastMonthPeriodType), expense.LastMonthPeriodType)

	out := m.View()
	if !strings.Contains(out, "Health") {
		t.Errorf("march expense should be visible under last month:\n%s", out)
	}
	if !strings.Contains(out, "Spending Breakdown | Last Month") {
		t.Error("expected the breakdown header to follow the period")
	}
}
