package main

import (
	"context"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"spendtui/api"
	"spendtui/config"
	"spendtui/expense"
	"spendtui/overview"
)

type model struct {
	keys   keyMap
	help   help.Model
	styles styles
	theme  Theme

	// loadingSpinner is a spinner model for the initial loading state
	loadingSpinner spinner.Model
	loadingState   loadingState
	// sessionState is the current state of the session
	sessionState         sessionState
	previousSessionState sessionState
	errorMsg             string

	// client talks to the expense tracker backend
	client *api.Client

	// user is the profile for the current session
	user      *api.User
	income    *money.Money
	deduction *money.Money

	// store holds every expense fetched for the session; period filtering
	// happens locally on top of it
	store    expense.Store
	currency string

	periodType string
	period     expense.Period

	overview overview.Model
	// history is a bubbletea list model of the visible expenses
	history list.Model
	// historyKeys is the keybindings for the history list
	historyKeys *historyListKeyMap

	expenseForm *huh.Form
	incomeForm  *huh.Form

	configView config.Model
}

func (m model) Init() tea.Cmd {
	return tea.Batch(
		m.getUser,
		m.getExpenses,
		m.loadingSpinner.Tick,
	)
}

func (m model) checkIfLoading() sessionState {
	if loaded, _ := m.loadingState.allLoaded(); !loaded {
		return loading
	}

	return overviewState
}

func rootAction(ctx context.Context, cfg config.Config, client *api.Client) error {
	theme := newTheme(cfg.Colors)
	now := time.Now()

	m := model{
		keys:   initializeKeyMap(),
		help:   createHelpModel(theme),
		styles: createStyles(theme),
		theme:  theme,
		loadingSpinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
		),
		loadingState: newLoadingState("user", "expenses"),
		sessionState: loading,
		client:       client,
		store:        expense.NewStore(),
		currency:     expense.DefaultCurrency,
		periodType:   expense.ThisMonthPeriodType,
		period:       expense.Window(now, expense.ThisMonthPeriodType),
		historyKeys:  newHistoryListKeyMap(),
		configView:   config.New(),
	}
	m.overview = overview.New(overview.WithPeriod(m.period, m.periodType))
	m.configView.SetConfig(cfg)

	delegate := m.newItemDelegate(newDeleteKeyMap())
	historyList := list.New([]list.Item{}, delegate, 0, 0)
	historyList.SetShowTitle(false)
	historyList.StatusMessageLifetime = 3 * time.Second
	historyList.Filter = substringFilter
	historyList.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{
			m.historyKeys.overview,
			m.historyKeys.addExpense,
		}
	}
	m.history = historyList

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return err
	}

	return nil
}
