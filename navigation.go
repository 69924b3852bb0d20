package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"spendtui/expense"
)

// switchPeriodType cycles through the relative period windows. All
// filtering is local, so no refetch happens; syncExpenses resolves the
// new window.
func switchPeriodType(m *model) (tea.Model, tea.Cmd) {
	next := 0
	for i, pt := range expense.PeriodTypes {
		if pt == m.periodType {
			next = (i + 1) % len(expense.PeriodTypes)
			break
		}
	}
	m.periodType = expense.PeriodTypes[next]

	return m, m.syncExpenses()
}
