package main

import (
	"strings"

	"github.com/avdeyev/kopilka/internal/analytics"
	"github.com/avdeyev/kopilka/internal/cli"
	"github.com/avdeyev/kopilka/internal/model"
	"github.com/spf13/cobra"
)

func searchCmd() *cobra.Command {
	var (
		phones    bool
		transfers bool
	)

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Find transactions by text, phone numbers, or person transfers",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			transactions, _, err := loadTransactions(cmd.Context())
			if err != nil {
				return err
			}

			var matches []model.Transaction
			switch {
			case phones:
				matches = analytics.FindPhoneTransactions(transactions)
			case transfers:
				matches = analytics.FindPersonTransfers(transactions)
			default:
				matches = analytics.Search(transactions, strings.Join(args, " "))
			}

			cmd.Printf("%s (%d)\n", cli.TitleStyle.Render("Matches"), len(matches))
			for _, t := range matches {
				cmd.Println(formatTransaction(t))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&phones, "phones", false, "match descriptions mentioning a mobile number")
	cmd.Flags().BoolVar(&transfers, "transfers", false, "match transfers to private persons")
	cmd.MarkFlagsMutuallyExclusive("phones", "transfers")
	return cmd
}
