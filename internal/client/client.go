package client

import (
	"context"
	"io"
	"os"

	"github.com/MKhiriev/go-chain-keeper/internal/adapter"
	"github.com/MKhiriev/go-chain-keeper/internal/logger"
	"github.com/MKhiriev/go-chain-keeper/models"
	"github.com/spf13/cobra"
)

// App is the walletctl command tree bound to a coordinator.
type App struct {
	coordinator adapter.CoordinatorAdapter
	newRelay    RelayFactory
	buildInfo   models.AppBuildInfo
	logger      *logger.Logger

	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

// NewApp returns walletctl reading from stdin and writing to stdout.
func NewApp(coordinator adapter.CoordinatorAdapter, newRelay RelayFactory, buildInfo models.AppBuildInfo, logger *logger.Logger) *App {
	return &App{
		coordinator: coordinator,
		newRelay:    newRelay,
		buildInfo:   buildInfo,
		logger:      logger,
		in:          os.Stdin,
		out:         os.Stdout,
		errOut:      os.Stderr,
	}
}

func (a *App) Run(ctx context.Context, args []string) error {
	root := a.rootCommand()
	root.SetArgs(args)

	return root.ExecuteContext(ctx)
}

func (a *App) rootCommand() *cobra.Command {
	p := newPrompter(a.in, a.errOut)

	root := &cobra.Command{
		Use:           "walletctl",
		Short:         "Control the wallet coordinator",
		Long:          `walletctl drives a running walletd: create or unlock the wallet, manage accounts, review pending approvals and act as a relay for an external origin.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       a.buildInfo.Version,
	}
	root.SetIn(a.in)
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	root.AddCommand(a.statusCmd())
	root.AddCommand(a.versionCmd())
	root.AddCommand(a.createCmd(p))
	root.AddCommand(a.importCmd(p))
	root.AddCommand(a.unlockCmd(p))
	root.AddCommand(a.lockCmd())
	root.AddCommand(a.autoLockCmd())
	root.AddCommand(a.accountsCmd(p))
	root.AddCommand(a.approvalsCmd())
	root.AddCommand(a.permissionsCmd())
	root.AddCommand(a.relayCmd())

	return root
}
