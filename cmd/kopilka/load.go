package main

import (
	"github.com/avdeyev/kopilka/internal/cli"
	"github.com/spf13/cobra"
)

func loadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load",
		Short: "Parse the statement workbook and report what survived",
		RunE: func(cmd *cobra.Command, _ []string) error {
			transactions, skipped, err := loadTransactions(cmd.Context())
			if err != nil {
				return err
			}

			cmd.Println(cli.TitleStyle.Render("Statement load"))
			cmd.Println(cli.SuccessStyle.Render("Parsed transactions: "), len(transactions))
			if skipped > 0 {
				cmd.Println(cli.ErrorStyle.Render("Skipped rows:        "), skipped)
			} else {
				cmd.Println(cli.SubtleStyle.Render("Skipped rows:        "), skipped)
			}
			return nil
		},
	}
}
