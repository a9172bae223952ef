package main

import (
	"fmt"
	"time"

	"github.com/avdeyev/kopilka/internal/analytics"
	"github.com/avdeyev/kopilka/internal/cli"
	"github.com/avdeyev/kopilka/internal/model"
	"github.com/spf13/cobra"
)

func reportCmd() *cobra.Command {
	var (
		date string
		save bool
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Spend reports over the trailing three calendar months",
	}
	cmd.PersistentFlags().StringVar(&date, "date", time.Now().Format("2006-01-02"), "reference date, YYYY-MM-DD")
	cmd.PersistentFlags().BoolVar(&save, "save", false, "persist the result as a JSON report")

	categoryCmd := &cobra.Command{
		Use:   "category <name>",
		Short: "Monthly spend totals for one category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			transactions, ref, err := reportInputs(cmd, date)
			if err != nil {
				return err
			}

			result := analytics.CategorySpending(transactions, args[0], ref)
			cmd.Println(cli.TitleStyle.Render("Spend on " + args[0]))
			for _, m := range result {
				cmd.Printf("%s  %s\n", m.Month, cli.BoldStyle.Render(m.Total.StringFixed(2)))
			}
			return saveReport(cmd, save, "category_spending", result)
		},
	}

	weekdayCmd := &cobra.Command{
		Use:   "weekday",
		Short: "Average spend per weekday",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			transactions, ref, err := reportInputs(cmd, date)
			if err != nil {
				return err
			}

			result := analytics.WeekdaySpending(transactions, ref)
			cmd.Println(cli.TitleStyle.Render("Average spend by weekday"))
			for _, w := range result {
				cmd.Printf("%-9s  %s\n", w.Weekday, cli.BoldStyle.Render(w.Average.StringFixed(2)))
			}
			return saveReport(cmd, save, "weekday_spending", result)
		},
	}

	workdayCmd := &cobra.Command{
		Use:   "workday",
		Short: "Average spend on workdays versus weekends",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			transactions, ref, err := reportInputs(cmd, date)
			if err != nil {
				return err
			}

			result := analytics.WorkdaySpending(transactions, ref)
			cmd.Println(cli.TitleStyle.Render("Average spend, workdays vs weekends"))
			cmd.Printf("workday  %s\n", cli.BoldStyle.Render(result.Workday.StringFixed(2)))
			cmd.Printf("weekend  %s\n", cli.BoldStyle.Render(result.Weekend.StringFixed(2)))
			return saveReport(cmd, save, "workday_spending", result)
		},
	}

	cmd.AddCommand(categoryCmd, weekdayCmd, workdayCmd)
	return cmd
}

// reportInputs loads the statement and parses the reference date shared by
// every report subcommand. The reference window ends at the last moment of
// that day.
func reportInputs(cmd *cobra.Command, date string) ([]model.Transaction, time.Time, error) {
	ref, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("invalid --date %q, want YYYY-MM-DD: %w", date, err)
	}
	ref = ref.Add(24*time.Hour - time.Second)

	transactions, _, err := loadTransactions(cmd.Context())
	if err != nil {
		return nil, time.Time{}, err
	}
	return transactions, ref, nil
}

func saveReport(cmd *cobra.Command, save bool, name string, v any) error {
	if !save {
		return nil
	}
	path, err := reportWriter().Write(name, v)
	if err != nil {
		return err
	}
	cmd.Println(cli.SubtleStyle.Render("Saved to " + path))
	return nil
}
