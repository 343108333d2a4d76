package client

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

func (a *App) approvalsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "approvals",
		Aliases: []string{"queue"},
		Short:   "List pending approvals",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pending, err := a.coordinator.Approvals(cmd.Context())
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tKIND\tORIGIN\tCREATED")
			for _, p := range pending {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.ID, p.Kind, p.Origin, p.CreatedAt.Format(time.RFC3339))
			}
			return tw.Flush()
		},
	}

	cmd.AddCommand(a.resolveCmd("approve", true))
	cmd.AddCommand(a.resolveCmd("reject", false))

	return cmd
}

func (a *App) resolveCmd(use string, approved bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " ID",
		Short: "Resolve a pending approval: " + use,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.coordinator.ResolveApproval(cmd.Context(), args[0], approved); err != nil {
				return err
			}
			a.logger.Info().Str("approval_id", args[0]).Bool("approved", approved).Msg("approval resolved")
			return nil
		},
	}
}

func (a *App) permissionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "permissions",
		Short: "List origins enabled per chain",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			perms, err := a.coordinator.Permissions(cmd.Context())
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ORIGIN\tCHAIN\tGRANTED")
			for _, p := range perms {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", p.Origin, p.ChainID, p.GrantedAt.Format(time.RFC3339))
			}
			return tw.Flush()
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "revoke ORIGIN",
		Short: "Disconnect an origin from every chain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.coordinator.RevokePermission(cmd.Context(), args[0])
		},
	})

	return cmd
}
