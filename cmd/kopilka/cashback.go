package main

import (
	"time"

	"github.com/avdeyev/kopilka/internal/analytics"
	"github.com/avdeyev/kopilka/internal/cli"
	"github.com/spf13/cobra"
)

func cashbackCmd() *cobra.Command {
	now := time.Now()
	var (
		year  int
		month int
		save  bool
	)

	cmd := &cobra.Command{
		Use:   "cashback",
		Short: "Rank categories by cashback earned in a calendar month",
		RunE: func(cmd *cobra.Command, _ []string) error {
			transactions, _, err := loadTransactions(cmd.Context())
			if err != nil {
				return err
			}

			ranking := analytics.CashbackByCategory(transactions, year, time.Month(month))

			cmd.Printf("%s %d-%02d\n", cli.TitleStyle.Render("Cashback by category"), year, month)
			if len(ranking) == 0 {
				cmd.Println(cli.SubtleStyle.Render("No cashback in this month."))
			}
			for _, r := range ranking {
				cmd.Printf("%s  %s\n", cli.BoldStyle.Render(r.Total.StringFixed(2)), r.Category)
			}

			if save {
				path, err := reportWriter().Write("cashback", ranking)
				if err != nil {
					return err
				}
				cmd.Println(cli.SubtleStyle.Render("Saved to " + path))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", now.Year(), "calendar year to analyze")
	cmd.Flags().IntVar(&month, "month", int(now.Month()), "calendar month to analyze (1-12)")
	cmd.Flags().BoolVar(&save, "save", false, "persist the result as a JSON report")
	return cmd
}
