package client

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func (a *App) statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the wallet lock state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := a.coordinator.Status(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "state: %s\naccounts: %d\n", status.State, status.AccountCount)
			return nil
		},
	}
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show client and coordinator build info",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "walletctl: %s (%s, %s)\n", a.buildInfo.Version, a.buildInfo.Date, a.buildInfo.Commit)

			info, err := a.coordinator.Version(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "walletd:   %s (%s, %s)\n", info.Version, info.Date, info.Commit)
			return nil
		},
	}
}

func (a *App) createCmd(p *prompter) *cobra.Command {
	var (
		words    int
		password string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a wallet with a new mnemonic",
		Long:  `Creates the wallet and prints its new mnemonic. The mnemonic is shown only once; write it down.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if words != 12 && words != 24 {
				return ErrInvalidWords
			}
			pw, err := p.secret(password, "New password")
			if err != nil {
				return err
			}

			mnemonic, err := a.coordinator.CreateWallet(cmd.Context(), pw, words)
			if err != nil {
				return err
			}
			a.logger.Info().Int("words", words).Msg("wallet created")
			fmt.Fprintln(cmd.OutOrStdout(), mnemonic)
			return nil
		},
	}
	cmd.Flags().IntVarP(&words, "words", "w", 12, "Mnemonic length, 12 or 24")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Wallet password (prompted when omitted)")

	return cmd
}

func (a *App) importCmd(p *prompter) *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Restore the wallet from a mnemonic",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mnemonic, err := p.secret("", "Mnemonic")
			if err != nil {
				return err
			}
			pw, err := p.secret(password, "New password")
			if err != nil {
				return err
			}

			if err = a.coordinator.ImportWallet(cmd.Context(), mnemonic, pw); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "wallet imported")
			return nil
		},
	}
	cmd.Flags().StringVarP(&password, "password", "p", "", "Wallet password (prompted when omitted)")

	return cmd
}

func (a *App) unlockCmd(p *prompter) *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "unlock",
		Short: "Unlock the wallet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := p.secret(password, "Password")
			if err != nil {
				return err
			}
			if err = a.coordinator.Unlock(cmd.Context(), pw); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "unlocked")
			return nil
		},
	}
	cmd.Flags().StringVarP(&password, "password", "p", "", "Wallet password (prompted when omitted)")

	return cmd
}

func (a *App) lockCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lock",
		Short: "Lock the wallet and wipe the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.coordinator.Lock(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "locked")
			return nil
		},
	}
}

func (a *App) autoLockCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "auto-lock MINUTES",
		Short: "Set the inactivity timeout, 0 disables it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			minutes, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid minutes %q: %w", args[0], err)
			}
			return a.coordinator.SetAutoLock(cmd.Context(), minutes)
		},
	}
}
