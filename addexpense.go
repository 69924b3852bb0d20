package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"

	"spendtui/api"
	"spendtui/category"
)

func newAddExpenseForm() *huh.Form {
	categoryOpts := make([]huh.Option[category.Category], 0, len(category.All()))
	for _, c := range category.All() {
		categoryOpts = append(categoryOpts, huh.NewOption(fmt.Sprintf("%s %s", category.IconFor(c), c), c))
	}

	// Default date to today
	today := time.Now().Format("2006-01-02")

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[category.Category]().
				Title("Category").
				Description("Select a category for the expense").
				Options(categoryOpts...).
				Key("category"),

			huh.NewInput().
				Title("Amount").
				Description("Expense amount").
				Key("amount").
				Placeholder("Enter amount (e.g., 25.99)...").
				Validate(func(s string) error {
					if s == "" {
						return errors.New("amount is required")
					}
					f, err := strconv.ParseFloat(s, 64)
					if err != nil {
						return errors.New("amount must be a valid number")
					}
					if f <= 0 {
						return errors.New("amount must be greater than zero")
					}
					return nil
				}),

			huh.NewInput().
				Title("Date").
				Description("Expense date (YYYY-MM-DD)").
				Key("date").
				Value(&today).
				Placeholder("YYYY-MM-DD").
				Validate(func(s string) error {
					if s == "" {
						return errors.New("date is required")
					}
					if _, err := time.Parse("2006-01-02", s); err != nil {
						return errors.New("date must be in YYYY-MM-DD format")
					}
					return nil
				}),

			huh.NewText().
				Title("Note (Optional)").
				Description("What was this expense for?").
				Key("note").
				Placeholder("Enter a note..."),
		),
	)
}

func startAddExpense(m *model) (tea.Model, tea.Cmd) {
	m.expenseForm = newAddExpenseForm()
	m.expenseForm.SubmitCmd = func() tea.Msg {
		return submitAddExpenseForm(*m)
	}

	m.previousSessionState = m.sessionState
	m.sessionState = addExpenseState
	return m, tea.Batch(m.expenseForm.Init(), tea.WindowSize())
}

func updateAddExpense(msg tea.Msg, m *model) (tea.Model, tea.Cmd) {
	form, cmd := m.expenseForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.expenseForm = f
	}

	if m.expenseForm.State == huh.StateCompleted {
		m.sessionState = historyState
		return m, cmd
	}

	if m.expenseForm.State == huh.StateAborted {
		m.sessionState = historyState
		return m, nil
	}

	return m, cmd
}

func addExpenseView(m model) string {
	return m.expenseForm.View()
}

func submitAddExpenseForm(m model) tea.Msg {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cat, ok := m.expenseForm.Get("category").(category.Category)
	if !ok {
		return addExpenseMsg{err: errors.New("category not found in form")}
	}

	create := api.ExpenseCreate{
		Category: cat.String(),
		Amount:   m.expenseForm.GetString("amount"),
		Date:     m.expenseForm.GetString("date"),
		Note:     m.expenseForm.GetString("note"),
	}

	log.Debug("adding expense", "category", create.Category, "amount", create.Amount)

	record, err := m.client.AddExpense(ctx, create)
	if err != nil {
		return addExpenseMsg{err: err}
	}

	e, err := recordToExpense(record, m.currency)
	if err != nil {
		return addExpenseMsg{err: err}
	}

	return addExpenseMsg{expense: e}
}
