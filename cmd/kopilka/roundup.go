package main

import (
	"time"

	"github.com/avdeyev/kopilka/internal/analytics"
	"github.com/avdeyev/kopilka/internal/cli"
	"github.com/spf13/cobra"
)

func roundupCmd() *cobra.Command {
	var (
		month string
		step  int64
	)

	cmd := &cobra.Command{
		Use:   "roundup",
		Short: "Compute the savings-jar round-up total for a month",
		RunE: func(cmd *cobra.Command, _ []string) error {
			transactions, _, err := loadTransactions(cmd.Context())
			if err != nil {
				return err
			}

			total, err := analytics.InvestmentRoundup(month, transactions, step)
			if err != nil {
				return err
			}

			cmd.Printf("%s %s (step %d)\n", cli.TitleStyle.Render("Savings round-up"), month, step)
			cmd.Println(cli.BoldStyle.Render(total.StringFixed(2)))
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", time.Now().Format("2006-01"), "month to analyze, YYYY-MM")
	cmd.Flags().Int64Var(&step, "step", 50, "rounding step (10, 50 or 100)")
	return cmd
}
