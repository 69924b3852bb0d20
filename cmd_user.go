package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"spendtui/api"
)

// userCmd represents the user command.
var userCmd = &cobra.Command{
	Use:   "user",
	Short: "User management commands",
	Long:  `Commands for managing the account profile on the expense tracker backend.`,
}

// userGetCmd represents the user get command.
var userGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Get user information",
	Long:  `Get the profile for the current session.`,
	RunE:  userGetRun,
}

// userUpdateIncomeCmd sets the monthly salary and fixed deduction.
var userUpdateIncomeCmd = &cobra.Command{
	Use:   "update-income",
	Short: "Update monthly salary and fixed deduction",
	RunE:  userUpdateIncomeRun,
}

func init() {
	userCmd.AddCommand(userGetCmd)
	userCmd.AddCommand(userUpdateIncomeCmd)

	userGetCmd.Flags().StringP("output", "o", tableOutputFormat, "Output format: table or json")

	userUpdateIncomeCmd.Flags().String("salary", "", "monthly salary as a decimal amount")
	userUpdateIncomeCmd.Flags().String("deduction", "", "fixed deduction as a decimal amount")
}

func userGetRun(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	outputFormat, err := validateOutputFormat(cmd)
	if err != nil {
		return err
	}

	user, err := client.GetUser(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch user information: %w", err)
	}

	switch outputFormat {
	case jsonOutputFormat:
		return outputJSON(cmd, user)
	case tableOutputFormat:
		return outputUserTable(cmd, user)
	default:
		return errors.New("unsupported output format")
	}
}

func userUpdateIncomeRun(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	salary, _ := cmd.Flags().GetString("salary")
	deduction, _ := cmd.Flags().GetString("deduction")

	if salary == "" && deduction == "" {
		return errors.New("provide --salary, --deduction, or both")
	}

	if err := validateDecimalFlag("salary", salary); err != nil {
		return err
	}
	if err := validateDecimalFlag("deduction", deduction); err != nil {
		return err
	}

	// unset values keep their stored amounts
	current, err := client.GetUser(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch current profile: %w", err)
	}
	if salary == "" {
		salary = current.MonthlyIncome
	}
	if deduction == "" {
		deduction = current.FixedDeduction
	}

	user, err := client.UpdateIncome(ctx, api.IncomeUpdate{
		Salary:         salary,
		FixedDeduction: deduction,
	})
	if err != nil {
		return fmt.Errorf("failed to update income: %w", err)
	}

	return outputUserTable(cmd, user)
}

func outputUserTable(cmd *cobra.Command, user *api.User) error {
	t := createStyledTable("FIELD", "VALUE")

	if user.ID != "" {
		t.Row("User ID", user.ID)
	}
	if user.Username != "" {
		t.Row("Username", user.Username)
	}
	if user.Email != "" {
		t.Row("Email", user.Email)
	}
	if income, err := user.ParsedIncome(); err == nil {
		t.Row("Monthly Income", income.Display())
	}
	if deduction, err := user.ParsedDeduction(); err == nil {
		t.Row("Fixed Deduction", deduction.Display())
	}
	if user.Currency != "" {
		t.Row("Currency", user.Currency)
	}

	fmt.Fprintln(cmd.OutOrStdout(), t)

	return nil
}
