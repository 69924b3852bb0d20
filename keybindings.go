package main

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"
)

type keyMap struct {
	overview     key.Binding
	history      key.Binding
	addExpense   key.Binding
	income       key.Binding
	config       key.Binding
	switchPeriod key.Binding
	escape       key.Binding
	fullHelp     key.Binding
	quit         key.Binding
}

func (km keyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		km.overview,
		km.history,
		km.addExpense,
		km.switchPeriod,
		km.quit,
		km.fullHelp,
	}
}

func (km keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{
			km.overview,
			km.history,
			km.addExpense,
			km.income,
			km.config,
			km.quit,
			km.fullHelp,
		},
		{
			km.switchPeriod,
			km.escape,
		},
	}
}

type historyListKeyMap struct {
	overview   key.Binding
	addExpense key.Binding
}

func newHistoryListKeyMap() *historyListKeyMap {
	return &historyListKeyMap{
		overview: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "overview"),
		),
		addExpense: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add expense"),
		),
	}
}

func initializeKeyMap() keyMap {
	keys := keyMap{
		overview: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "overview"),
		),
		history: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "expense history"),
		),
		addExpense: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add expense"),
		),
		income: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "income"),
		),
		config: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "configuration"),
		),
		switchPeriod: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "switch period"),
		),
		escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "escape"),
		),
		fullHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
	return keys
}

func handleKeyPress(msg tea.KeyMsg, m *model) (tea.Model, tea.Cmd) {
	k := msg.String()
	log.Debug("key pressed", "key", k)

	// Handle special keys first
	if model, cmd := handleSpecialKeys(msg, m); cmd != nil {
		return model, cmd
	}

	// Check if input is blocked by active forms
	if isInputBlocked(m) {
		return m, nil
	}

	// Handle period switching
	if key.Matches(msg, m.keys.switchPeriod) {
		return switchPeriodType(m)
	}

	// Handle session state changes
	if model, cmd := handleSessionStateKeys(msg, m); cmd != nil {
		return model, cmd
	}

	return m, nil
}

func handleSpecialKeys(msg tea.KeyMsg, m *model) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.quit) {
		// the quit key doubles as a text character inside forms
		if isInputBlocked(m) && m.sessionState != loading && m.sessionState != errorState {
			return m, nil
		}
		return m, tea.Quit
	}

	if key.Matches(msg, m.keys.escape) {
		return handleEscape(msg, m)
	}

	return m, nil
}

func isInputBlocked(m *model) bool {
	if m.history.FilterState() == list.Filtering {
		return true
	}

	if m.expenseForm != nil && m.expenseForm.State == huh.StateNormal {
		return true
	}

	if m.incomeForm != nil && m.incomeForm.State == huh.StateNormal {
		return true
	}

	if m.sessionState == loading {
		return true
	}

	return false
}

func handleSessionStateKeys(msg tea.KeyMsg, m *model) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.overview):
		if m.sessionState != overviewState {
			m.previousSessionState = m.sessionState
			m.sessionState = overviewState
			return m, tea.WindowSize()
		}

	case key.Matches(msg, m.keys.history):
		if m.sessionState != historyState {
			m.previousSessionState = m.sessionState
			m.sessionState = historyState
			return m, tea.WindowSize()
		}

	case key.Matches(msg, m.keys.addExpense):
		if m.sessionState != addExpenseState {
			return startAddExpense(m)
		}

	case key.Matches(msg, m.keys.income):
		if m.sessionState != incomeState {
			return startIncomeForm(m)
		}

	case key.Matches(msg, m.keys.config):
		if m.sessionState != configState {
			m.previousSessionState = m.sessionState
			m.configView.SetFocus(true)
			m.sessionState = configState
			return m, tea.WindowSize()
		}

	case key.Matches(msg, m.keys.fullHelp):
		if m.sessionState != historyState {
			m.help.ShowAll = !m.help.ShowAll
			return m, tea.WindowSize()
		}
	}

	return m, nil
}

// handleEscape resets the session state to the overview state.
func handleEscape(msg tea.KeyMsg, m *model) (tea.Model, tea.Cmd) {
	if m.sessionState == addExpenseState {
		log.Debug("handling escape in add expense state")
		m.previousSessionState = overviewState
		m.sessionState = historyState
		m.expenseForm.State = huh.StateAborted
		return m, tea.WindowSize()
	}

	if m.sessionState == incomeState {
		log.Debug("handling escape in income state")
		m.previousSessionState = overviewState
		m.sessionState = overviewState
		m.incomeForm.State = huh.StateAborted
		return m, tea.WindowSize()
	}

	// handle if user is filtering the history and presses escape
	if m.sessionState == historyState && m.history.FilterState() == list.Filtering {
		log.Debug("handling escape in history filtering")
		var cmd tea.Cmd
		m.history, cmd = m.history.Update(msg)
		return m, cmd
	}

	if m.sessionState == configState {
		m.configView.SetFocus(false)
	}

	m.previousSessionState = m.sessionState
	m.sessionState = overviewState
	return m, tea.WindowSize()
}
