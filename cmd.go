package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"spendtui/api"
	"spendtui/config"
)

const (
	jsonOutputFormat  = "json"
	tableOutputFormat = "table"

	defaultBaseURL = "http://localhost:8080"
)

// Global variables for configuration.
var (
	cfgFile   string
	debug     bool
	token     string
	baseURL   string
	appConfig config.Config
	client    *api.Client
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "spendtui",
	Short: "A terminal UI and CLI for tracking personal expenses",
	Long:  `A terminal-based interface and CLI for recording expenses, tracking your monthly balance, and visualizing where the money goes.`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		appConfig = config.Config{
			Debug:           debug,
			Token:           token,
			BaseURL:         baseURL,
			AnthropicAPIKey: viper.GetString("anthropic_api_key"),
		}
		_ = viper.UnmarshalKey("colors", &appConfig.Colors)

		// Setup logging
		log.SetLevel(log.InfoLevel)
		if appConfig.Debug {
			log.SetLevel(log.DebugLevel)
		}

		// login and register establish the session, everything else needs one
		if appConfig.Token == "" && !isAuthCommand(cmd) {
			return errors.New("session token is required (set via --token flag, " +
				"SPENDTUI_TOKEN environment variable, or config file; run 'spendtui login' to get one)")
		}

		var err error
		client, err = api.NewClient(appConfig.BaseURL, appConfig.Token)
		if err != nil {
			return fmt.Errorf("failed to create API client: %w", err)
		}

		client.HTTP.Transport = newLoggingTransport(client.HTTP.Transport, log.Default())

		return nil
	},
	RunE: func(c *cobra.Command, _ []string) error {
		// Start TUI when no subcommands are provided
		return rootAction(c.Context(), appConfig, client)
	},
}

func isAuthCommand(cmd *cobra.Command) bool {
	return cmd.Name() == "login" || cmd.Name() == "register"
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := fang.Execute(context.Background(), rootCmd); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.spendtui.toml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "the session token for the expense tracker backend")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", defaultBaseURL, "the address of the expense tracker backend")

	// Bind flags to viper
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("token", rootCmd.PersistentFlags().Lookup("token"))
	_ = viper.BindPFlag("base_url", rootCmd.PersistentFlags().Lookup("base-url"))

	// Bind environment variables
	_ = viper.BindEnv("token", "SPENDTUI_TOKEN")
	_ = viper.BindEnv("base_url", "SPENDTUI_BASE_URL")
	_ = viper.BindEnv("anthropic_api_key", "ANTHROPIC_API_KEY")

	// Add subcommands
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(userCmd)
	rootCmd.AddCommand(expenseCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(balanceCmd)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// a local .env is handy during development
	_ = godotenv.Load()

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		if err != nil {
			log.Error("Error finding home directory", "error", err)
			os.Exit(1)
		}

		// Search config in multiple locations (in order of precedence)
		// Current directory (highest precedence)
		viper.AddConfigPath(".")
		viper.SetConfigName("spendtui")
		viper.SetConfigType("toml")

		// User config directory
		if configDir, configErr := os.UserConfigDir(); configErr == nil {
			viper.AddConfigPath(filepath.Join(configDir, "spendtui"))
		}

		// User home directory
		viper.AddConfigPath(home)
		viper.AddConfigPath(filepath.Join(home, ".config", "spendtui"))

		// System-wide config directory (lowest precedence)
		viper.AddConfigPath("/etc/spendtui")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		log.Debug("Config file not found or error reading", "error", err)
	} else {
		log.Debug("Using config file", "file", viper.ConfigFileUsed())
	}

	// Update global variables from viper
	if !rootCmd.PersistentFlags().Changed("debug") {
		debug = viper.GetBool("debug")
	}
	if !rootCmd.PersistentFlags().Changed("token") {
		token = viper.GetString("token")
	}
	if !rootCmd.PersistentFlags().Changed("base-url") {
		if v := viper.GetString("base_url"); v != "" {
			baseURL = v
		}
	}
}

// Utility functions for output formatting.
func outputJSON(cmd *cobra.Command, data any) error {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	return nil
}

// validateOutputFormat reads and validates the --output flag.
func validateOutputFormat(cmd *cobra.Command) (string, error) {
	outputFormat, _ := cmd.Flags().GetString("output")

	validFormats := []string{tableOutputFormat, jsonOutputFormat}
	if !slices.Contains(validFormats, outputFormat) {
		return "", fmt.Errorf("invalid output format: %s (must be one of %v)", outputFormat, validFormats)
	}

	return outputFormat, nil
}

// validateDecimalFlag rejects values that are not non-negative decimals.
// Empty values pass so optional flags can be skipped.
func validateDecimalFlag(name, value string) error {
	if value == "" {
		return nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("invalid %s: %s (must be a decimal amount)", name, value)
	}
	if f < 0 {
		return fmt.Errorf("invalid %s: %s (cannot be negative)", name, value)
	}
	return nil
}

func createStyledTable(headers ...string) *table.Table {
	var (
		purple    = lipgloss.Color("99")
		gray      = lipgloss.Color("245")
		lightGray = lipgloss.Color("241")

		headerStyle  = lipgloss.NewStyle().Foreground(purple).Bold(true).Align(lipgloss.Center)
		cellStyle    = lipgloss.NewStyle().Padding(0, 1)
		oddRowStyle  = cellStyle.Foreground(gray)
		evenRowStyle = cellStyle.Foreground(lightGray)
	)

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(purple)).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row%2 == 0:
				return evenRowStyle
			default:
				return oddRowStyle
			}
		}).
		Headers(headers...)
}
