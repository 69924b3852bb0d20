package main

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/Rhymond/go-money"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"

	"spendtui/api"
	"spendtui/expense"
)

func newIncomeForm(income, deduction *money.Money) *huh.Form {
	salary := majorUnitsString(income)
	fixedDeduction := majorUnitsString(deduction)

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Monthly Salary").
				Description("Your income per month").
				Key("salary").
				Value(&salary).
				Placeholder("Enter salary (e.g., 5000.00)...").
				Validate(validateNonNegativeAmount),

			huh.NewInput().
				Title("Fixed Deduction").
				Description("Recurring amount subtracted before spending").
				Key("fixed_deduction").
				Value(&fixedDeduction).
				Placeholder("Enter deduction (e.g., 500.00)...").
				Validate(validateNonNegativeAmount),
		),
	)
}

func majorUnitsString(m *money.Money) string {
	if m == nil {
		return ""
	}
	return strconv.FormatFloat(m.AsMajorUnits(), 'f', 2, 64)
}

func validateNonNegativeAmount(s string) error {
	if s == "" {
		return errors.New("amount is required")
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return errors.New("amount must be a valid number")
	}
	if f < 0 {
		return errors.New("amount cannot be negative")
	}
	return nil
}

func startIncomeForm(m *model) (tea.Model, tea.Cmd) {
	m.incomeForm = newIncomeForm(m.income, m.deduction)
	m.incomeForm.SubmitCmd = func() tea.Msg {
		return submitIncomeForm(*m)
	}

	m.previousSessionState = m.sessionState
	m.sessionState = incomeState
	return m, tea.Batch(m.incomeForm.Init(), tea.WindowSize())
}

func updateIncomeForm(msg tea.Msg, m *model) (tea.Model, tea.Cmd) {
	form, cmd := m.incomeForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.incomeForm = f
	}

	if m.incomeForm.State == huh.StateCompleted {
		m.sessionState = overviewState
		return m, cmd
	}

	if m.incomeForm.State == huh.StateAborted {
		m.sessionState = overviewState
		return m, nil
	}

	return m, cmd
}

func incomeFormView(m model) string {
	return m.incomeForm.View()
}

func submitIncomeForm(m model) tea.Msg {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	update := api.IncomeUpdate{
		Salary:         m.incomeForm.GetString("salary"),
		FixedDeduction: m.incomeForm.GetString("fixed_deduction"),
	}

	log.Debug("updating income", "salary", update.Salary)

	user, err := m.client.UpdateIncome(ctx, update)
	if err != nil {
		return updateIncomeMsg{err: err}
	}

	income, err := user.ParsedIncome()
	if err != nil {
		return updateIncomeMsg{err: err}
	}

	deduction, err := user.ParsedDeduction()
	if err != nil {
		return updateIncomeMsg{err: err}
	}
	if err := expense.ValidateDeduction(deduction); err != nil {
		return updateIncomeMsg{err: err}
	}

	return updateIncomeMsg{income: income, deduction: deduction}
}
