package main

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"spendtui/category"
)

// categoriesCmd represents the categories command.
var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Category commands",
	Long:  `Commands for inspecting the fixed expense category set.`,
}

var categoriesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all categories",
	Long:  `List the fixed expense categories with their colors and icons. The set is closed; new categories cannot be created.`,
	RunE:  categoriesListRun,
}

func init() {
	categoriesCmd.AddCommand(categoriesListCmd)

	categoriesListCmd.Flags().StringP("output", "o", tableOutputFormat, "Output format: table or json")
}

func categoriesListRun(cmd *cobra.Command, _ []string) error {
	outputFormat, err := validateOutputFormat(cmd)
	if err != nil {
		return err
	}

	switch outputFormat {
	case jsonOutputFormat:
		return outputJSON(cmd, categoryRows())
	case tableOutputFormat:
		return outputCategoriesTable(cmd)
	default:
		return errors.New("unsupported output format")
	}
}

type categoryRow struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

func categoryRows() []categoryRow {
	rows := make([]categoryRow, 0, len(category.All()))
	for _, c := range category.All() {
		info := category.Lookup(c)
		rows = append(rows, categoryRow{
			Name:  c.String(),
			Color: string(info.Color),
			Icon:  info.Icon,
		})
	}
	return rows
}

func outputCategoriesTable(cmd *cobra.Command) error {
	t := createStyledTable("NAME", "COLOR", "ICON")

	for _, c := range category.All() {
		info := category.Lookup(c)
		swatch := lipgloss.NewStyle().Foreground(info.Color).Render(string(info.Color))
		t.Row(c.String(), swatch, info.Icon)
	}

	fmt.Fprintln(cmd.OutOrStdout(), t)

	return nil
}
