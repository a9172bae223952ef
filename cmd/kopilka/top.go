package main

import (
	"github.com/avdeyev/kopilka/internal/analytics"
	"github.com/avdeyev/kopilka/internal/cli"
	"github.com/spf13/cobra"
)

func topCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "top",
		Short: "Show the largest transactions by amount",
		RunE: func(cmd *cobra.Command, _ []string) error {
			transactions, _, err := loadTransactions(cmd.Context())
			if err != nil {
				return err
			}

			top, err := analytics.TopByAmount(transactions, limit)
			if err != nil {
				return err
			}

			cmd.Println(cli.TitleStyle.Render("Top transactions"))
			for _, t := range top {
				cmd.Println(formatTransaction(t))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "n", 5, "how many transactions to show")
	return cmd
}
