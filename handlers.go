package main

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"spendtui/api"
	"spendtui/category"
	"spendtui/expense"
)

// Message types for different API responses.
type (
	getUserMsg struct {
		user      *api.User
		income    *money.Money
		deduction *money.Money
	}

	getExpensesMsg struct {
		expenses []expense.Expense
	}

	addExpenseMsg struct {
		expense expense.Expense
		err     error
	}

	deleteExpenseMsg struct {
		id  string
		err error
	}

	updateIncomeMsg struct {
		income    *money.Money
		deduction *money.Money
		err       error
	}

	authErrorMsg struct {
		err error
	}

	fetchErrorMsg struct {
		err error
	}
)

// Message handlers.
func (m model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	h, v := m.styles.docStyle.GetFrameSize()

	takenHeight := 5
	m.overview.SetSize(msg.Width-h, msg.Height-v-takenHeight)
	m.overview.Viewport.Width = msg.Width
	m.overview.Viewport.Height = msg.Height - takenHeight

	m.history.SetSize(msg.Width-h, msg.Height-v-takenHeight)
	m.configView.SetSize(msg.Width-h, msg.Height-v-takenHeight)

	m.help.Width = msg.Width

	if m.expenseForm != nil {
		m.expenseForm = m.expenseForm.WithHeight(msg.Height - takenHeight).WithWidth(msg.Width)
	}
	if m.incomeForm != nil {
		m.incomeForm = m.incomeForm.WithHeight(msg.Height - takenHeight).WithWidth(msg.Width)
	}

	return m, nil
}

func (m model) handleSpinnerTick(msg spinner.TickMsg) (tea.Model, tea.Cmd) {
	if m.sessionState != loading {
		return m, nil
	}

	var cmd tea.Cmd
	m.loadingSpinner, cmd = m.loadingSpinner.Update(msg)
	return m, cmd
}

func (m model) handleGetUser(msg getUserMsg) (tea.Model, tea.Cmd) {
	m.user = msg.user
	m.income = msg.income
	m.deduction = msg.deduction

	// the startup expense fetch parsed amounts with the default currency;
	// once the profile names a different one, fetch again so every record
	// carries it
	var cmd tea.Cmd
	if msg.user.Currency != "" && msg.user.Currency != m.currency {
		m.currency = msg.user.Currency
		m.loadingState.unset("expenses")
		cmd = m.getExpenses
	}

	m.overview.SetUser(msg.user.Username, msg.income, msg.deduction)

	m.loadingState.set("user")
	m.sessionState = m.checkIfLoading()

	return m, cmd
}

func (m model) handleGetExpenses(msg getExpensesMsg) (tea.Model, tea.Cmd) {
	store := expense.NewStore()
	for _, e := range msg.expenses {
		next, err := store.Add(e)
		if err != nil {
			log.Debug("skipping expense", "id", e.ID, "error", err)
			continue
		}
		store = next
	}
	m.store = store

	cmd := m.syncExpenses()

	m.loadingState.set("expenses")
	m.sessionState = m.checkIfLoading()

	return m, tea.Batch(cmd, tea.WindowSize())
}

func (m model) handleAddExpense(msg addExpenseMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if api.IsAuthError(msg.err) {
			return m, func() tea.Msg { return authErrorMsg{err: msg.err} }
		}
		return m, m.history.NewStatusMessage(
			fmt.Sprintf("Error adding expense: %s", msg.err.Error()),
		)
	}

	// the expense lands in the store only once the backend confirmed it
	store, err := m.store.Add(msg.expense)
	if err != nil {
		return m, m.history.NewStatusMessage(
			fmt.Sprintf("Error recording expense: %s", err.Error()),
		)
	}
	m.store = store

	return m, tea.Batch(
		m.syncExpenses(),
		m.history.NewStatusMessage("Expense added successfully!"),
	)
}

func (m model) handleDeleteExpense(msg deleteExpenseMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if api.IsAuthError(msg.err) {
			return m, func() tea.Msg { return authErrorMsg{err: msg.err} }
		}
		return m, m.history.NewStatusMessage(
			fmt.Sprintf("Error deleting expense: %s", msg.err.Error()),
		)
	}

	m.store = m.store.Remove(msg.id)

	return m, tea.Batch(
		m.syncExpenses(),
		m.history.NewStatusMessage("Expense deleted"),
	)
}

func (m model) handleUpdateIncome(msg updateIncomeMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if api.IsAuthError(msg.err) {
			return m, func() tea.Msg { return authErrorMsg{err: msg.err} }
		}
		return m, m.history.NewStatusMessage(
			fmt.Sprintf("Error updating income: %s", msg.err.Error()),
		)
	}

	m.income = msg.income
	m.deduction = msg.deduction
	if m.user != nil {
		m.overview.SetUser(m.user.Username, msg.income, msg.deduction)
	}

	return m, m.history.NewStatusMessage("Income updated")
}

// syncExpenses re-derives the overview and the history list from the store.
// The period window is resolved against the current moment on every pass so
// a session that crosses midnight keeps today's expenses visible.
func (m *model) syncExpenses() tea.Cmd {
	m.period = expense.Window(time.Now(), m.periodType)
	m.overview.SetPeriod(m.period, m.periodType)
	m.overview.SetExpenses(m.store.Items())

	visible := expense.FilterByPeriod(m.store.Items(), m.period)
	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].Date.After(visible[j].Date)
	})

	items := make([]list.Item, len(visible))
	for i, e := range visible {
		items[i] = expenseItem{e: e}
	}

	return m.history.SetItems(items)
}

// API call functions.
func (m model) getUser() tea.Msg {
	ctx := context.Background()

	user, err := m.client.GetUser(ctx)
	if err != nil {
		if api.IsAuthError(err) {
			return authErrorMsg{err: err}
		}
		return fetchErrorMsg{err: err}
	}

	income, err := user.ParsedIncome()
	if err != nil {
		return fetchErrorMsg{err: fmt.Errorf("parsing income: %w", err)}
	}

	deduction, err := user.ParsedDeduction()
	if err != nil {
		return fetchErrorMsg{err: fmt.Errorf("parsing deduction: %w", err)}
	}

	return getUserMsg{user: user, income: income, deduction: deduction}
}

// getExpenses fetches every stored expense. The period windows are applied
// locally so switching periods never refetches.
func (m model) getExpenses() tea.Msg {
	ctx := context.Background()

	records, err := m.client.ListExpenses(ctx, nil)
	if err != nil {
		if api.IsAuthError(err) {
			return authErrorMsg{err: err}
		}
		return fetchErrorMsg{err: err}
	}

	expenses := make([]expense.Expense, 0, len(records))
	for _, r := range records {
		e, convErr := recordToExpense(r, m.currency)
		if convErr != nil {
			log.Debug("skipping malformed expense record", "id", r.ID, "error", convErr)
			continue
		}
		expenses = append(expenses, e)
	}

	return getExpensesMsg{expenses: expenses}
}

func (m model) deleteExpense(id string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		if err := m.client.DeleteExpense(ctx, id); err != nil {
			return deleteExpenseMsg{id: id, err: err}
		}

		return deleteExpenseMsg{id: id}
	}
}

func recordToExpense(r *api.ExpenseRecord, currency string) (expense.Expense, error) {
	amount, err := r.ParsedAmount(currency)
	if err != nil {
		return expense.Expense{}, fmt.Errorf("parsing amount: %w", err)
	}

	date, err := r.ParsedDate()
	if err != nil {
		return expense.Expense{}, fmt.Errorf("parsing date: %w", err)
	}

	cat, ok := category.Parse(r.Category)
	if !ok {
		cat = category.Category(r.Category)
	}

	return expense.Expense{
		ID:       r.ID,
		Amount:   amount,
		Date:     date,
		Category: cat,
		Note:     r.Note,
	}, nil
}
