// Package config holds the application configuration and the TUI view
// that displays it.
package config

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Config represents the application configuration structure. Both tag sets
// matter: toml for the config file on disk, mapstructure for viper's
// decoder.
type Config struct {
	// Debug enables debug logging
	Debug bool `toml:"debug" mapstructure:"debug"`
	// Token is the session token for the expense tracker backend
	Token string `toml:"token" mapstructure:"token"`
	// BaseURL is the address of the expense tracker backend
	BaseURL string `toml:"base_url" mapstructure:"base_url"`
	// AnthropicAPIKey enables AI category suggestions when set
	AnthropicAPIKey string `toml:"anthropic_api_key" mapstructure:"anthropic_api_key"`
	// Colors customizes the TUI color scheme
	Colors Colors `toml:"colors" mapstructure:"colors"`
}

// Colors represents the customizable color scheme.
type Colors struct {
	Primary       string `toml:"primary" mapstructure:"primary"`
	Error         string `toml:"error" mapstructure:"error"`
	Success       string `toml:"success" mapstructure:"success"`
	Warning       string `toml:"warning" mapstructure:"warning"`
	Muted         string `toml:"muted" mapstructure:"muted"`
	Income        string `toml:"income" mapstructure:"income"`
	Expense       string `toml:"expense" mapstructure:"expense"`
	Border        string `toml:"border" mapstructure:"border"`
	Background    string `toml:"background" mapstructure:"background"`
	Text          string `toml:"text" mapstructure:"text"`
	SecondaryText string `toml:"secondary_text" mapstructure:"secondary_text"`
}

// Model represents the config view model.
type Model struct {
	configTable table.Model
}

// New creates a new config view model.
func New() Model {
	configTable := table.New(
		table.WithColumns([]table.Column{
			{Title: "Setting", Width: 30},
			{Title: "Value", Width: 40},
			{Title: "Description", Width: 50},
		}),
	)

	tableStyle := table.DefaultStyles()
	tableStyle.Selected = tableStyle.Selected.
		Foreground(lipgloss.Color("#ffd644"))

	configTable.SetStyles(tableStyle)

	return Model{configTable: configTable}
}

// SetFocus sets the focus state of the config table.
func (m *Model) SetFocus(focus bool) {
	if focus {
		m.configTable.Focus()
	} else {
		m.configTable.Blur()
	}
}

// SetSize sets the size of the config table.
func (m *Model) SetSize(width, height int) {
	m.configTable.SetHeight(height)
	m.configTable.SetWidth(width)
}

func maskSensitiveValue(value string) string {
	if value == "" {
		return "(not set)"
	}

	if len(value) <= 4 {
		return strings.Repeat("*", len(value))
	}

	return value[:4] + strings.Repeat("*", len(value)-4)
}

// SetConfig sets the configuration data for the view.
func (m *Model) SetConfig(config Config) {
	rows := []table.Row{
		{
			"Debug",
			strconv.FormatBool(config.Debug),
			"Enable debug logging",
		},
		{
			"Token",
			maskSensitiveValue(config.Token),
			"Session token for the backend",
		},
		{
			"Base URL",
			config.BaseURL,
			"Address of the expense tracker backend",
		},
		{
			"Anthropic API Key",
			maskSensitiveValue(config.AnthropicAPIKey),
			"Enables AI category suggestions",
		},
	}

	m.configTable.SetRows(rows)
}

// Init initializes the config view.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles updates to the config view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.configTable, cmd = m.configTable.Update(msg)
	return m, cmd
}

// View renders the config view.
func (m Model) View() string {
	return m.configTable.View()
}
