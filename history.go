package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"spendtui/category"
	"spendtui/expense"
)

// expenseItem adapts an expense for the history list.
type expenseItem struct {
	e expense.Expense
}

func (i expenseItem) Title() string {
	return fmt.Sprintf("%s %s", category.IconFor(i.e.Category), i.e.Category)
}

func (i expenseItem) Description() string {
	desc := fmt.Sprintf("%s %s", i.e.Date.Format("Jan 2, 2006 3:04 PM"), i.e.Amount.Display())
	if i.e.Note != "" {
		desc += " " + i.e.Note
	}
	return desc
}

// FilterValue narrows the list by category label.
func (i expenseItem) FilterValue() string {
	return i.e.Category.String()
}

// substringFilter matches items whose filter value contains the term,
// case-insensitively. The default fuzzy filter is too eager for short
// category labels.
func substringFilter(term string, targets []string) []list.Rank {
	needle := strings.ToLower(term)

	ranks := make([]list.Rank, 0, len(targets))
	for i, target := range targets {
		idx := strings.Index(strings.ToLower(target), needle)
		if idx < 0 {
			continue
		}

		matched := make([]int, len(needle))
		for j := range matched {
			matched[j] = idx + j
		}
		ranks = append(ranks, list.Rank{Index: i, MatchedIndexes: matched})
	}

	return ranks
}

func updateHistory(msg tea.Msg, m model) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.history, cmd = m.history.Update(msg)
	return m, cmd
}

func historyView(m model) string {
	return m.history.View()
}
