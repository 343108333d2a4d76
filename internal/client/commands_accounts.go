package client

import (
	"fmt"
	"text/tabwriter"

	"github.com/MKhiriev/go-chain-keeper/models"
	"github.com/spf13/cobra"
)

func (a *App) accountsCmd(p *prompter) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "List and manage accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			accounts, err := a.coordinator.Accounts(cmd.Context())
			if err != nil {
				return err
			}
			return printAccounts(cmd, accounts)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add NAME",
		Short: "Derive the next primary account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := a.coordinator.AddAccount(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), account)
		},
	})

	var password string
	importCmd := &cobra.Command{
		Use:   "import NAME",
		Short: "Add an account backed by its own mnemonic",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mnemonic, err := p.secret("", "Mnemonic")
			if err != nil {
				return err
			}
			pw, err := p.secret(password, "Password")
			if err != nil {
				return err
			}

			account, err := a.coordinator.ImportAccount(cmd.Context(), models.ImportAccountRequest{
				Name:     args[0],
				Mnemonic: mnemonic,
				Password: pw,
			})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), account)
		},
	}
	importCmd.Flags().StringVarP(&password, "password", "p", "", "Wallet password (prompted when omitted)")
	cmd.AddCommand(importCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "select ID",
		Short: "Make an account the selected one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.coordinator.SelectAccount(cmd.Context(), args[0])
		},
	})

	return cmd
}

func printAccounts(cmd *cobra.Command, accounts []models.Account) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tADDRESS\tTYPE")
	for _, acc := range accounts {
		kind := "primary"
		if acc.Imported {
			kind = "imported"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", acc.ID, acc.Name, acc.Address, kind)
	}
	return tw.Flush()
}
