package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-chain-keeper/internal/adapter"
	"github.com/MKhiriev/go-chain-keeper/models"
	"github.com/spf13/cobra"
)

const defaultRelayWait = 5 * time.Minute

// relayCmd groups the commands a relay context sends for one origin. The
// approval-gated ones block until the user decides or --wait elapses; a
// request still pending then can be resumed with "relay result ID".
func (a *App) relayCmd() *cobra.Command {
	var (
		origin string
		wait   time.Duration
	)

	cmd := &cobra.Command{
		Use:   "relay",
		Short: "Act as a relay for an external origin",
	}
	cmd.PersistentFlags().StringVarP(&origin, "origin", "o", "", "External origin, e.g. https://app.example")
	cmd.PersistentFlags().DurationVar(&wait, "wait", defaultRelayWait, "How long to wait for the user's decision")

	open := func() (adapter.RelayAdapter, error) {
		return a.newRelay(origin)
	}

	cmd.AddCommand(a.relayKeyCmd(open))
	cmd.AddCommand(a.relayEnableCmd(open, &wait))
	cmd.AddCommand(a.relaySignArbitraryCmd(open, &wait))
	cmd.AddCommand(a.relaySignDocCmd(open, &wait))
	cmd.AddCommand(a.relayResultCmd(open))
	cmd.AddCommand(a.relayDisableCmd(open))

	return cmd
}

type relayOpener func() (adapter.RelayAdapter, error)

func (a *App) relayKeyCmd(open relayOpener) *cobra.Command {
	var chainID string

	cmd := &cobra.Command{
		Use:   "key",
		Short: "Show the selected account's key for a chain",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			relay, err := open()
			if err != nil {
				return err
			}
			key, err := relay.GetKey(cmd.Context(), chainID)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), key)
		},
	}
	cmd.Flags().StringVar(&chainID, "chain", models.DefaultChainID, "Chain id")

	return cmd
}

func (a *App) relayEnableCmd(open relayOpener, wait *time.Duration) *cobra.Command {
	var chainID string

	cmd := &cobra.Command{
		Use:   "enable",
		Short: "Ask the user to connect the origin to a chain",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.relay(cmd, open, *wait, models.RelayRequest{Type: models.RelayEnable, ChainID: chainID})
		},
	}
	cmd.Flags().StringVar(&chainID, "chain", models.DefaultChainID, "Chain id")

	return cmd
}

func (a *App) relaySignArbitraryCmd(open relayOpener, wait *time.Duration) *cobra.Command {
	var chainID, signer string

	cmd := &cobra.Command{
		Use:   "sign-arbitrary DATA",
		Short: "Ask the user to sign arbitrary data (ADR-036)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.relay(cmd, open, *wait, models.RelayRequest{
				Type:    models.RelaySignArbitrary,
				ChainID: chainID,
				Signer:  signer,
				Data:    []byte(args[0]),
			})
		},
	}
	cmd.Flags().StringVar(&chainID, "chain", models.DefaultChainID, "Chain id")
	cmd.Flags().StringVar(&signer, "signer", "", "Bech32 address of the signing account")
	_ = cmd.MarkFlagRequired("signer")

	return cmd
}

// relaySignDocCmd signs a sign doc read from a JSON file. --mode picks the
// amino (StdSignDoc) or direct (protobuf SignDoc) form.
func (a *App) relaySignDocCmd(open relayOpener, wait *time.Duration) *cobra.Command {
	var chainID, signer, docPath, mode string

	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Ask the user to sign a transaction",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(docPath)
			if err != nil {
				return fmt.Errorf("read sign doc: %w", err)
			}

			req := models.RelayRequest{ChainID: chainID, Signer: signer}
			switch mode {
			case "amino":
				req.Type = models.RelaySignAmino
				req.AminoDoc = new(models.StdSignDoc)
				err = json.Unmarshal(raw, req.AminoDoc)
			case "direct":
				req.Type = models.RelaySignDirect
				req.DirectDoc = new(models.DirectSignDoc)
				err = json.Unmarshal(raw, req.DirectDoc)
			default:
				return fmt.Errorf("%w: unknown mode %q", ErrInvalidDoc, mode)
			}
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidDoc, err)
			}

			return a.relay(cmd, open, *wait, req)
		},
	}
	cmd.Flags().StringVar(&chainID, "chain", models.DefaultChainID, "Chain id")
	cmd.Flags().StringVar(&signer, "signer", "", "Bech32 address of the signing account")
	cmd.Flags().StringVar(&docPath, "doc", "", "Path to the sign doc JSON")
	cmd.Flags().StringVar(&mode, "mode", "amino", "Sign mode: amino or direct")
	_ = cmd.MarkFlagRequired("signer")
	_ = cmd.MarkFlagRequired("doc")

	return cmd
}

func (a *App) relayResultCmd(open relayOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "result ID",
		Short: "Show the outcome of a submitted request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			relay, err := open()
			if err != nil {
				return err
			}
			res, err := relay.Result(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}
}

func (a *App) relayDisableCmd(open relayOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "disable",
		Short: "Disconnect the origin from every chain",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			relay, err := open()
			if err != nil {
				return err
			}
			return relay.Disable(cmd.Context())
		},
	}
}

// relay submits req and waits for its outcome. When the wait runs out the
// pending id is printed so the request can be resumed later.
func (a *App) relay(cmd *cobra.Command, open relayOpener, wait time.Duration, req models.RelayRequest) error {
	relay, err := open()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), wait)
	defer cancel()

	res, err := relay.Relay(ctx, req)
	if errors.Is(err, context.DeadlineExceeded) && res.ID != "" {
		a.logger.Warn().Str("approval_id", res.ID).Msg("still waiting for approval")
		fmt.Fprintf(cmd.OutOrStdout(), "pending: %s\n", res.ID)
		return nil
	}
	if err != nil {
		return err
	}

	return printJSON(cmd.OutOrStdout(), res)
}
