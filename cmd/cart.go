package cmd

import (
	"context"
	"fmt"

	"github.com/bnema/shopassist/internal/application"
	"github.com/bnema/shopassist/internal/domain"
	"github.com/spf13/cobra"
)

func newCartCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Show and change the active cart",
	}

	cmd.AddCommand(newCartShowCmd(app), newCartAddCmd(app), newCartCheckoutCmd(app))

	return cmd
}

func newCartShowCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the active cart",
		RunE: func(cmd *cobra.Command, _ []string) error {
			carts := app.storefront.Cart()

			cart := carts.Cart()
			if cartID := carts.CartID(); cartID != "" {
				err := runWithSpinner(cmd.Context(), spinnerOutput(cmd, asJSON), "Loading cart...", func(ctx context.Context) error {
					var fetchErr error
					cart, fetchErr = carts.FetchCart(ctx, cartID)
					return fetchErr
				})
				if err != nil {
					reportConnectivity(cmd, app, err)
					return fmt.Errorf("load cart: %w", describeError(err))
				}
			}

			if asJSON {
				return writeJSON(cmd, cart)
			}

			return writeRendered(cmd, func() (string, error) {
				return app.renderer.cart(cart)
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")

	return cmd
}

func newCartAddCmd(app *app) *cobra.Command {
	var (
		quantity int
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "add <sku>",
		Short: "Add a product to the active cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var cart domain.Cart
			err := runWithSpinner(cmd.Context(), spinnerOutput(cmd, asJSON), "Adding to cart...", func(ctx context.Context) error {
				var addErr error
				cart, addErr = app.storefront.Cart().AddItem(ctx, application.AddItemCommand{SKU: args[0], Quantity: quantity})
				return addErr
			})
			if err != nil {
				reportConnectivity(cmd, app, err)
				return fmt.Errorf("add to cart: %w", describeError(err))
			}

			if asJSON {
				return writeJSON(cmd, cart)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added %d x %s, cart now holds %d item(s)\n", quantity, args[0], cart.ItemCount())
			return nil
		},
	}

	cmd.Flags().IntVar(&quantity, "qty", 1, fmt.Sprintf("Quantity (%d-%d)", domain.MinLineQuantity, domain.MaxLineQuantity))
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")

	return cmd
}

func newCartCheckoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "checkout",
		Short: "Start checkout for the active cart",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var redirect string
			err := runWithSpinner(cmd.Context(), cmd.ErrOrStderr(), "Starting checkout...", func(ctx context.Context) error {
				var checkoutErr error
				redirect, checkoutErr = app.storefront.Checkout(ctx)
				return checkoutErr
			})
			if err != nil {
				reportConnectivity(cmd, app, err)
				return fmt.Errorf("checkout: %w", describeError(err))
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Continue checkout at:\n%s\n", redirect)
			return nil
		},
	}
}
