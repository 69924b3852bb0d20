// Package overview renders the dashboard widget: balance, summary scalars,
// the spending breakdown, and both expense charts.
package overview

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"spendtui/charts"
	"spendtui/expense"
)

var titleCaser = cases.Title(language.English)

const chartWidth = 30

// Model is the state for the overview widget.
type Model struct {
	Styles   Styles
	Viewport viewport.Model

	expenses   []expense.Expense
	period     expense.Period
	periodType string
	username   string
	income     *money.Money
	deduction  *money.Money
}

type Styles struct {
	BalanceStyle lipgloss.Style
	SpentStyle   lipgloss.Style
	HeaderStyle  lipgloss.Style
	DayStyle     lipgloss.Style
	NoteStyle    lipgloss.Style
	CardStyle    lipgloss.Style
	SectionStyle lipgloss.Style
	EmptyStyle   lipgloss.Style
}

func defaultStyles() Styles {
	return Styles{
		BalanceStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("#22ba46")).Bold(true),
		SpentStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("#e05951")),
		HeaderStyle:  lipgloss.NewStyle().Bold(true),
		DayStyle:     lipgloss.NewStyle().Foreground(lipgloss.Color("#828282")),
		NoteStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("#7f7d78")),
		CardStyle:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2),
		SectionStyle: lipgloss.NewStyle().Bold(true),
		EmptyStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("#7f7d78")).Italic(true),
	}
}

type Option func(*Model)

// WithPeriod presets the visible period window.
func WithPeriod(p expense.Period, periodType string) Option {
	return func(m *Model) {
		m.period = p
		m.periodType = periodType
	}
}

func New(opts ...Option) Model {
	m := Model{
		Styles:     defaultStyles(),
		Viewport:   viewport.New(0, 20),
		periodType: expense.ThisMonthPeriodType,
	}

	for _, opt := range opts {
		opt(&m)
	}

	m.UpdateViewport()

	return m
}

// SetExpenses replaces the loaded expense set and re-derives every view.
func (m *Model) SetExpenses(expenses []expense.Expense) {
	m.expenses = expenses
	m.UpdateViewport()
}

// SetPeriod changes the visible window and re-derives every view.
func (m *Model) SetPeriod(p expense.Period, periodType string) {
	m.period = p
	m.periodType = periodType
	m.UpdateViewport()
}

// SetUser sets the profile driving the balance card.
func (m *Model) SetUser(username string, income, deduction *money.Money) {
	m.username = username
	m.income = income
	m.deduction = deduction
	m.UpdateViewport()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.Viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.Viewport.Width = width
	m.Viewport.Height = height
}

// UpdateViewport recomputes all derived data from scratch and re-renders.
// There is no incremental update; every change pays for a full pass.
func (m *Model) UpdateViewport() {
	visible := expense.FilterByPeriod(m.expenses, m.period)
	rows := charts.FromCategoryTotals(expense.GroupByCategory(visible))

	content := lipgloss.JoinVertical(lipgloss.Top,
		m.headerView(),
		lipgloss.JoinHorizontal(lipgloss.Top,
			m.summaryView(visible),
			m.chartsView(rows),
			m.recentView(visible),
		),
	)

	m.Viewport.SetContent(content)
}

func (m *Model) headerView() string {
	if m.username == "" {
		return "Overview"
	}

	return fmt.Sprintf("Welcome back, %s!", m.username)
}

func (m *Model) summaryView(visible []expense.Expense) string {
	summary := expense.Summarize(visible)

	// balance spans every loaded expense, not just the visible period
	balance, err := expense.Balance(m.income, m.deduction, m.expenses)
	if err != nil {
		balance = money.New(0, expense.DefaultCurrency)
	}

	var b strings.Builder
	balanceStyle := m.Styles.BalanceStyle
	if balance.IsNegative() {
		balanceStyle = m.Styles.SpentStyle
	}
	b.WriteString(fmt.Sprintf("Balance: %s\n", balanceStyle.Render(balance.Display())))
	b.WriteString(fmt.Sprintf("Spent: %s\n", m.Styles.SpentStyle.Render(summary.Total.Display())))
	b.WriteString(fmt.Sprintf("Average: %s\n", summary.Average.Display()))
	b.WriteString(fmt.Sprintf("Expenses: %d\n", summary.Count))
	if summary.HighestCategory != "" {
		b.WriteString(fmt.Sprintf("Most spent on: %s\n", summary.HighestCategory))
		b.WriteString(fmt.Sprintf("Least spent on: %s", summary.LowestCategory))
	}

	return m.Styles.CardStyle.Render(b.String())
}

func (m *Model) chartsView(rows []charts.Row) string {
	if len(rows) == 0 {
		return m.Styles.CardStyle.Render(
			m.Styles.EmptyStyle.Render("No expense data available for the selected period"),
		)
	}

	breakdown := table.New(
		table.WithColumns([]table.Column{
			{Title: "Category", Width: 18},
			{Title: "Total", Width: 12},
		}),
		table.WithRows(breakdownRows(rows)),
		table.WithHeight(len(rows)+1),
	)

	return m.Styles.CardStyle.Render(
		lipgloss.JoinVertical(lipgloss.Top,
			m.Styles.SectionStyle.Render(fmt.Sprintf("Spending Breakdown | %s", titleCaser.String(m.periodType))),
			breakdown.View(),
			"",
			charts.RenderProportional(rows, chartWidth),
			"",
			charts.RenderRanked(rows, chartWidth),
		),
	)
}

func breakdownRows(rows []charts.Row) []table.Row {
	out := make([]table.Row, 0, len(rows))
	for _, r := range rows {
		out = append(out, table.Row{r.Label, r.Display})
	}
	return out
}

// recentView renders the day-grouped expense history, most recent day
// first.
func (m *Model) recentView(visible []expense.Expense) string {
	sections := charts.FromDayGroups(expense.GroupByDay(visible))

	recent := tree.New().Root(m.Styles.SectionStyle.Render("Recent Expenses"))
	for _, section := range sections {
		day := tree.New().Root(m.Styles.DayStyle.Render(section.Title))
		for _, entry := range section.Entries {
			label := fmt.Sprintf("%s %s %s",
				lipgloss.NewStyle().Foreground(entry.Color).Render(entry.Icon),
				entry.Label,
				entry.Amount,
			)
			if entry.Note != "" {
				label += " " + m.Styles.NoteStyle.Render("("+entry.Note+")")
			}
			day.Child(label)
		}
		recent.Child(day)
	}

	if len(sections) == 0 {
		recent.Child(m.Styles.EmptyStyle.Render("No expenses found"))
	}

	return m.Styles.CardStyle.Render(recent.String())
}
