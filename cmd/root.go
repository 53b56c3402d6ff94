package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "sa",
		Short:         "Shop assistant (sa): search the catalog and manage your cart",
		Long:          "sa (shop assistant) signs you in to the store, keeps a guest or account cart, searches the catalog and turns free-text shopping requests into product searches.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		app.log.SetOutput(cmd.ErrOrStderr())
		app.storefront.Load(cmd.Context())
		return nil
	}
	rootCmd.PersistentPostRunE = func(_ *cobra.Command, _ []string) error {
		return app.close()
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newLoginCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
		newPingCmd(app),
		newCartCmd(app),
		newSearchCmd(app),
		newProductCmd(app),
		newAskCmd(app),
		newHistoryCmd(app),
	)

	return rootCmd
}
