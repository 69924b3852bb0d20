package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"spendtui/api"
	"spendtui/category"
	"spendtui/expense"
)

// expenseCmd represents the expense command.
var expenseCmd = &cobra.Command{
	Use:   "expense",
	Short: "Expense management commands",
	Long:  `Commands for recording, listing and deleting expenses.`,
}

var expenseAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a new expense",
	RunE:  expenseAddRun,
}

var expenseListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored expenses",
	Long:  `List stored expenses, optionally narrowed to a relative period and a category filter.`,
	RunE:  expenseListRun,
}

var expenseDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a stored expense by id",
	Args:  cobra.ExactArgs(1),
	RunE:  expenseDeleteRun,
}

var expenseSuggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Suggest a category for an expense note",
	Long:  `Ask the AI provider to pick the best matching category for a free-text expense note. Requires an Anthropic API key.`,
	RunE:  expenseSuggestRun,
}

func init() {
	expenseCmd.AddCommand(expenseAddCmd)
	expenseCmd.AddCommand(expenseListCmd)
	expenseCmd.AddCommand(expenseDeleteCmd)
	expenseCmd.AddCommand(expenseSuggestCmd)

	expenseAddCmd.Flags().String("category", "", "expense category")
	expenseAddCmd.Flags().String("amount", "", "expense amount as a decimal (must be positive)")
	expenseAddCmd.Flags().String("date", time.Now().Format("2006-01-02"), "expense date (YYYY-MM-DD, defaults to today)")
	expenseAddCmd.Flags().String("note", "", "optional note for the expense")
	_ = expenseAddCmd.MarkFlagRequired("category")
	_ = expenseAddCmd.MarkFlagRequired("amount")

	expenseListCmd.Flags().String("period", "", fmt.Sprintf("relative period: %q, %q or %q", expense.ThisMonthPeriodType, expense.LastMonthPeriodType, expense.LastThreeMonthsPeriodType))
	expenseListCmd.Flags().String("category", "", "case-insensitive category substring filter")
	expenseListCmd.Flags().StringP("output", "o", tableOutputFormat, "Output format: table or json")

	expenseSuggestCmd.Flags().String("note", "", "free-text note describing the expense")
	_ = expenseSuggestCmd.MarkFlagRequired("note")
}

func expenseAddRun(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	categoryStr, _ := cmd.Flags().GetString("category")
	amountStr, _ := cmd.Flags().GetString("amount")
	dateStr, _ := cmd.Flags().GetString("date")
	note, _ := cmd.Flags().GetString("note")

	cat, ok := category.Parse(categoryStr)
	if !ok {
		return fmt.Errorf("unknown category: %s (run 'spendtui categories list' for the available set)", categoryStr)
	}

	amount, err := strconv.ParseFloat(amountStr, 64)
	if err != nil {
		return fmt.Errorf("invalid amount: %s", amountStr)
	}
	if amount <= 0 {
		return fmt.Errorf("invalid amount: %s (must be greater than zero)", amountStr)
	}

	if _, err = time.Parse("2006-01-02", dateStr); err != nil {
		return fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", dateStr)
	}

	record, err := client.AddExpense(ctx, api.ExpenseCreate{
		Category: cat.String(),
		Amount:   amountStr,
		Date:     dateStr,
		Note:     note,
	})
	if err != nil {
		return fmt.Errorf("failed to add expense: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Expense recorded with ID: %s\n", record.ID)
	return nil
}

func expenseListRun(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	outputFormat, err := validateOutputFormat(cmd)
	if err != nil {
		return err
	}

	periodType, _ := cmd.Flags().GetString("period")
	categoryFilter, _ := cmd.Flags().GetString("category")

	var filters *api.ExpenseFilters
	var window expense.Period
	if periodType != "" {
		valid := false
		for _, pt := range expense.PeriodTypes {
			if pt == periodType {
				valid = true
				break
			}
		}
		if !valid {
			return fmt.Errorf("invalid period: %s (must be one of %v)", periodType, expense.PeriodTypes)
		}

		window = expense.Window(time.Now(), periodType)
		start := window.StartDate()
		end := window.EndDate()
		filters = &api.ExpenseFilters{StartDate: &start, EndDate: &end}
	}

	records, err := client.ListExpenses(ctx, filters)
	if err != nil {
		return fmt.Errorf("failed to fetch expenses: %w", err)
	}

	expenses := make([]expense.Expense, 0, len(records))
	for _, r := range records {
		e, convErr := recordToExpense(r, expense.DefaultCurrency)
		if convErr != nil {
			continue
		}
		expenses = append(expenses, e)
	}

	// the backend date range is coarse, the window is authoritative
	if periodType != "" {
		expenses = expense.FilterByPeriod(expenses, window)
	}
	expenses = expense.FilterByCategoryText(expenses, categoryFilter)

	switch outputFormat {
	case jsonOutputFormat:
		return outputJSON(cmd, expenses)
	case tableOutputFormat:
		return outputExpensesTable(cmd, expenses)
	default:
		return errors.New("unsupported output format")
	}
}

func expenseDeleteRun(cmd *cobra.Command, args []string) error {
	id := args[0]

	if err := client.DeleteExpense(cmd.Context(), id); err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Expense %s deleted.\n", id)
	return nil
}

func expenseSuggestRun(cmd *cobra.Command, _ []string) error {
	note, _ := cmd.Flags().GetString("note")

	if appConfig.AnthropicAPIKey == "" {
		return errors.New("AI suggestions need an Anthropic API key (set ANTHROPIC_API_KEY or anthropic_api_key in the config file)")
	}

	var provider AIProvider = NewAnthropicProvider(appConfig.AnthropicAPIKey)

	ctx, cancel := context.WithTimeout(cmd.Context(), aiSuggestionTimeout)
	defer cancel()

	suggestion, err := provider.SuggestCategory(ctx, note)
	if err != nil {
		return fmt.Errorf("failed to get suggestion: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Suggested category: %s %s\n", category.IconFor(suggestion.Category), suggestion.Category)
	fmt.Fprintf(out, "Confidence: %.0f%%\n", suggestion.Confidence)
	if suggestion.Reasoning != "" {
		fmt.Fprintf(out, "Reasoning: %s\n", suggestion.Reasoning)
	}

	return nil
}

func outputExpensesTable(cmd *cobra.Command, expenses []expense.Expense) error {
	t := createStyledTable("ID", "DATE", "CATEGORY", "AMOUNT", "NOTE")

	for _, e := range expenses {
		note := e.Note
		if note == "" {
			note = "-"
		}
		t.Row(
			e.ID,
			e.Date.Format("2006-01-02"),
			e.Category.String(),
			e.Amount.Display(),
			note,
		)
	}

	fmt.Fprintln(cmd.OutOrStdout(), t)

	return nil
}
