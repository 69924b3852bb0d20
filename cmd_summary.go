package main

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"spendtui/api"
	"spendtui/expense"
)

// summaryCmd shows the backend's aggregate view over all stored expenses.
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show the aggregate expense summary",
	RunE:  summaryRun,
}

// balanceCmd shows the remaining balance as of a date.
var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Show the remaining balance",
	Long:  `Show income minus the fixed deduction and total spending, as computed by the backend.`,
	RunE:  balanceRun,
}

func init() {
	summaryCmd.Flags().StringP("output", "o", tableOutputFormat, "Output format: table or json")

	balanceCmd.Flags().String("date", time.Now().Format("2006-01-02"), "compute the balance as of this date (YYYY-MM-DD)")
}

func summaryRun(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	outputFormat, err := validateOutputFormat(cmd)
	if err != nil {
		return err
	}

	// the summary alone does not say what currency to render in
	var g errgroup.Group
	var summary *api.Summary
	var user *api.User

	g.Go(func() error {
		s, summaryErr := client.GetSummary(ctx)
		if summaryErr != nil {
			return fmt.Errorf("failed to fetch summary: %w", summaryErr)
		}
		summary = s
		return nil
	})

	g.Go(func() error {
		u, userErr := client.GetUser(ctx)
		if userErr != nil {
			return fmt.Errorf("failed to fetch user: %w", userErr)
		}
		user = u
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	switch outputFormat {
	case jsonOutputFormat:
		return outputJSON(cmd, summary)
	case tableOutputFormat:
		return outputSummaryTable(cmd, summary, user.Currency)
	default:
		return errors.New("unsupported output format")
	}
}

func balanceRun(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	dateStr, _ := cmd.Flags().GetString("date")
	if _, err := time.Parse("2006-01-02", dateStr); err != nil {
		return fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", dateStr)
	}

	resp, err := client.GetBalance(ctx, dateStr)
	if err != nil {
		return fmt.Errorf("failed to fetch balance: %w", err)
	}

	balance, err := resp.ParsedBalance(expense.DefaultCurrency)
	if err != nil {
		return fmt.Errorf("failed to parse balance: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Balance as of %s: %s\n", dateStr, balance.Display())
	return nil
}

func outputSummaryTable(cmd *cobra.Command, summary *api.Summary, currency string) error {
	if currency == "" {
		currency = expense.DefaultCurrency
	}

	t := createStyledTable("FIELD", "VALUE")

	if total, err := parseDisplayAmount(summary.TotalExpenses, currency); err == nil {
		t.Row("Total Expenses", total)
	}
	if average, err := parseDisplayAmount(summary.AverageExpense, currency); err == nil {
		t.Row("Average Expense", average)
	}
	if summary.HighestCategory != "" {
		t.Row("Highest Category", summary.HighestCategory)
	}
	if summary.LowestCategory != "" {
		t.Row("Lowest Category", summary.LowestCategory)
	}

	fmt.Fprintln(cmd.OutOrStdout(), t)

	return nil
}

func parseDisplayAmount(s, currency string) (string, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return "", err
	}
	return money.NewFromFloat(f, currency).Display(), nil
}
