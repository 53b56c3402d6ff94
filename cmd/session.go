package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/bnema/shopassist/internal/application"
	"github.com/bnema/shopassist/internal/domain"
	"github.com/spf13/cobra"
)

const passwordEnv = "SA_PASSWORD"

type loginOutput struct {
	Identity       string   `json:"identity"`
	Offline        bool     `json:"offline"`
	CartID         string   `json:"cart_id,omitempty"`
	Transferred    int      `json:"transferred"`
	FailedSKUs     []string `json:"failed_skus,omitempty"`
	CartSetupError string   `json:"cart_setup_error,omitempty"`
}

type sessionOutput struct {
	State     domain.SessionState `json:"state"`
	Identity  string              `json:"identity,omitempty"`
	CartID    string              `json:"cart_id,omitempty"`
	ItemCount int                 `json:"item_count"`
}

func newLoginCmd(app *app) *cobra.Command {
	var (
		email    string
		password string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to the store",
		Long:  "Sign in with email and password. When the store cannot be reached, the last account used on this machine can sign in offline.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if password == "" {
				password = os.Getenv(passwordEnv)
			}

			var outcome application.LoginOutcome
			err := runWithSpinner(cmd.Context(), spinnerOutput(cmd, asJSON), "Signing in...", func(ctx context.Context) error {
				var loginErr error
				outcome, loginErr = app.storefront.Login(ctx, application.LoginCommand{Email: email, Password: password})
				return loginErr
			})
			if err != nil {
				reportConnectivity(cmd, app, err)
				return fmt.Errorf("login: %w", describeError(err))
			}

			out := newLoginOutput(outcome)
			if asJSON {
				return writeJSON(cmd, out)
			}

			writeLoginSummary(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password (defaults to $"+passwordEnv+")")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newLoginOutput(outcome application.LoginOutcome) loginOutput {
	out := loginOutput{
		Identity: outcome.Session.Identity(),
		Offline:  outcome.Offline,
		CartID:   outcome.CartID,
	}
	if outcome.Transfer != nil {
		out.Transferred = len(outcome.Transfer.Transferred)
		for _, failed := range outcome.Transfer.Failed {
			out.FailedSKUs = append(out.FailedSKUs, failed.Item.SKU)
		}
	}
	if outcome.CartErr != nil {
		out.CartSetupError = outcome.CartErr.Error()
	}

	return out
}

func writeLoginSummary(w io.Writer, out loginOutput) {
	if out.Offline {
		_, _ = fmt.Fprintf(w, "Store unreachable, signed in offline as %s\n", out.Identity)
		return
	}

	_, _ = fmt.Fprintf(w, "Signed in as %s\n", out.Identity)
	if out.CartID != "" {
		_, _ = fmt.Fprintf(w, "Cart: %s\n", out.CartID)
	}
	if out.Transferred > 0 {
		_, _ = fmt.Fprintf(w, "Moved %d line(s) from your guest cart\n", out.Transferred)
	}
	for _, sku := range out.FailedSKUs {
		_, _ = fmt.Fprintf(w, "Could not move %s, it stays in your guest cart\n", sku)
	}
	if out.CartSetupError != "" {
		_, _ = fmt.Fprintf(w, "Warning: cart setup incomplete: %s\n", out.CartSetupError)
	}
}

func newLogoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget the current cart",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app.storefront.Logout(cmd.Context())
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
			return nil
		},
	}
}

func newWhoamiCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session and cart",
		RunE: func(cmd *cobra.Command, _ []string) error {
			session := app.storefront.Session().Current()
			cart := app.storefront.Cart()
			if cart.CartID() != "" && !session.IsOffline() {
				if _, err := cart.FetchCart(cmd.Context(), ""); err != nil {
					app.log.WithError(err).Warn("could not refresh cart")
				}
			}

			if asJSON {
				return writeJSON(cmd, sessionOutput{
					State:     session.State,
					Identity:  session.Identity(),
					CartID:    cart.CartID(),
					ItemCount: cart.ItemCount(),
				})
			}

			return writeRendered(cmd, func() (string, error) {
				return app.renderer.session(session, cart.CartID(), cart.ItemCount())
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")

	return cmd
}

func spinnerOutput(cmd *cobra.Command, asJSON bool) io.Writer {
	if asJSON {
		return nil
	}

	return cmd.ErrOrStderr()
}

// describeError maps domain failures to messages a shopper can act on while
// keeping the original error in the chain.
func describeError(err error) error {
	switch {
	case errors.Is(err, domain.ErrOfflineIdentityMismatch):
		return fmt.Errorf("store unreachable and %w", err)
	case errors.Is(err, domain.ErrRequestTimeout):
		return fmt.Errorf("the store took too long to answer: %w", err)
	case errors.Is(err, domain.ErrNetworkUnavailable):
		return fmt.Errorf("could not reach the store: %w", err)
	case errors.Is(err, domain.ErrNotAuthenticated):
		return fmt.Errorf("sign in first with `sa login`: %w", err)
	case errors.Is(err, domain.ErrNoActiveCart):
		return fmt.Errorf("add an item first with `sa cart add`: %w", err)
	default:
		return err
	}
}
