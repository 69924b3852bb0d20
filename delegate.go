package main

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m model) newItemDelegate(keys *deleteKeyMap) list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	d.Styles.SelectedTitle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(lipgloss.AdaptiveColor{Light: string(m.theme.Primary), Dark: string(m.theme.Primary)}).
		Foreground(lipgloss.AdaptiveColor{Light: string(m.theme.Primary), Dark: string(m.theme.Primary)}).
		Padding(0, 0, 0, 1)

	d.Styles.SelectedDesc = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: string(m.theme.Primary), Dark: string(m.theme.Primary)})

	d.UpdateFunc = func(msg tea.Msg, listModel *list.Model) tea.Cmd {
		if msg, ok := msg.(tea.KeyMsg); ok {
			if key.Matches(msg, keys.remove) {
				item, isExpenseItem := listModel.SelectedItem().(expenseItem)
				if !isExpenseItem {
					return nil
				}
				// the item leaves the list only after the backend confirms
				return m.deleteExpense(item.e.ID)
			}
		}

		return nil
	}

	help := []key.Binding{keys.remove}

	d.ShortHelpFunc = func() []key.Binding {
		return help
	}

	d.FullHelpFunc = func() [][]key.Binding {
		return [][]key.Binding{help}
	}

	return d
}

type deleteKeyMap struct {
	remove key.Binding
}

func (d deleteKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		d.remove,
	}
}

func (d deleteKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{
			d.remove,
		},
	}
}

func newDeleteKeyMap() *deleteKeyMap {
	return &deleteKeyMap{
		remove: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete expense"),
		),
	}
}
