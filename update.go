package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// always check for quit key first
	if msg, ok := msg.(tea.KeyMsg); ok {
		if model, cmd := handleKeyPress(msg, &m); cmd != nil {
			log.Debug("key press handled, cmd returned")
			return model, cmd
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case spinner.TickMsg:
		return m.handleSpinnerTick(msg)

	case getUserMsg:
		return m.handleGetUser(msg)

	case getExpensesMsg:
		return m.handleGetExpenses(msg)

	case addExpenseMsg:
		return m.handleAddExpense(msg)

	case deleteExpenseMsg:
		return m.handleDeleteExpense(msg)

	case updateIncomeMsg:
		return m.handleUpdateIncome(msg)

	case authErrorMsg:
		m.sessionState = errorState
		m.errorMsg = fmt.Sprintf("Check your session token: %s", msg.err.Error())
		return m, nil

	case fetchErrorMsg:
		m.sessionState = errorState
		m.errorMsg = msg.err.Error()
		return m, nil
	}

	var cmd tea.Cmd
	switch m.sessionState {
	case overviewState:
		m.overview, cmd = m.overview.Update(msg)
		return m, cmd

	case historyState:
		return updateHistory(msg, m)

	case addExpenseState:
		return updateAddExpense(msg, &m)

	case incomeState:
		return updateIncomeForm(msg, &m)

	case configState:
		m.configView, cmd = m.configView.Update(msg)
		return m, cmd

	case loading:
		m.loadingSpinner, cmd = m.loadingSpinner.Update(msg)
		return m, cmd
	}

	return m, nil
}
