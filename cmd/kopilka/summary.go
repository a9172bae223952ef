package main

import (
	"fmt"
	"time"

	"github.com/avdeyev/kopilka/internal/analytics"
	"github.com/avdeyev/kopilka/internal/cli"
	"github.com/spf13/cobra"
)

func summaryCmd() *cobra.Command {
	var (
		date   string
		period string
		save   bool
	)

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Overview of spending, cashback and income for a period",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ref, err := time.Parse("2006-01-02 15:04:05", date)
			if err != nil {
				return fmt.Errorf("invalid --date %q, want YYYY-MM-DD HH:MM:SS: %w", date, err)
			}

			transactions, _, err := loadTransactions(cmd.Context())
			if err != nil {
				return err
			}

			if period != "" {
				result, err := analytics.PeriodSummary(transactions, ref, analytics.Period(period))
				if err != nil {
					return err
				}

				cmd.Println(cli.TitleStyle.Render("Period summary " + period))
				cmd.Printf("Expenses total  %s\n", cli.BoldStyle.Render(result.Expenses.Total.String()))
				for _, c := range result.Expenses.Main {
					cmd.Printf("  %s  %s\n", c.Amount.String(), c.Category)
				}
				if result.Expenses.Other.IsPositive() {
					cmd.Printf("  %s  %s\n", result.Expenses.Other.String(), cli.SubtleStyle.Render("Прочее"))
				}
				cmd.Printf("Income total    %s\n", cli.BoldStyle.Render(result.Income.Total.String()))
				for _, c := range result.Income.Categories {
					cmd.Printf("  %s  %s\n", c.Amount.String(), c.Category)
				}
				return saveReport(cmd, save, "period_summary", result)
			}

			result := analytics.MonthSummary(transactions, ref)
			cmd.Println(cli.TitleStyle.Render(result.Greeting))
			cmd.Printf("Spent this month  %s\n", cli.BoldStyle.Render(result.TotalSpent.StringFixed(2)))
			cmd.Printf("Cashback earned   %s\n", cli.BoldStyle.Render(result.TotalCashback.StringFixed(2)))
			cmd.Println(cli.SubtleStyle.Render("Top transactions:"))
			for _, t := range result.Top {
				cmd.Println(formatTransaction(t))
			}
			return saveReport(cmd, save, "month_summary", result)
		},
	}

	cmd.Flags().StringVar(&date, "date", time.Now().Format("2006-01-02 15:04:05"), "reference moment, YYYY-MM-DD HH:MM:SS")
	cmd.Flags().StringVar(&period, "period", "", "window: W, M, Y or ALL (default: month-to-date overview)")
	cmd.Flags().BoolVar(&save, "save", false, "persist the result as a JSON report")
	return cmd
}
