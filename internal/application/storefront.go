package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/shopassist/internal/domain"
	"github.com/bnema/shopassist/internal/ports"
	"github.com/sirupsen/logrus"
)

// Storefront coordinates the session and cart lifecycles.
type Storefront struct {
	session *SessionService
	cart    *CartService
	catalog ports.CatalogGateway
	log     logrus.FieldLogger
}

func NewStorefront(session *SessionService, cart *CartService, catalog ports.CatalogGateway, log logrus.FieldLogger) *Storefront {
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &Storefront{session: session, cart: cart, catalog: catalog, log: log}
}

func (f *Storefront) Session() *SessionService {
	return f.session
}

func (f *Storefront) Cart() *CartService {
	return f.cart
}

func (f *Storefront) Load(ctx context.Context) domain.Session {
	session := f.session.Load(ctx)
	f.cart.Load(ctx)
	return session
}

// Login signs in and, when the backend is reachable, moves to an
// authenticated cart that absorbs the guest cart. Cart failures after a
// successful sign-in are reported in the outcome, not as an error.
func (f *Storefront) Login(ctx context.Context, cmd LoginCommand) (LoginOutcome, error) {
	result, err := f.session.Login(ctx, cmd)
	if err != nil {
		return LoginOutcome{}, err
	}

	outcome := LoginOutcome{LoginResult: result}
	if result.Offline {
		return outcome, nil
	}

	guestCartID := f.cart.GuestCartID()
	cartID, err := f.cart.CreateAuthenticatedCart(ctx, f.session.AuthToken())
	if err != nil {
		f.log.WithError(err).Warn("signed in but cart setup failed")
		outcome.CartErr = err
		return outcome, nil
	}
	outcome.CartID = cartID

	if guestCartID != "" && guestCartID != cartID {
		report, err := f.cart.TransferItems(ctx, guestCartID, cartID)
		outcome.Transfer = &report
		switch {
		case err != nil:
			outcome.CartErr = err
		case report.Complete():
			f.cart.ClearGuestCart(ctx)
		default:
			outcome.CartErr = fmt.Errorf("%d of %d guest cart line(s) could not be moved", len(report.Failed), len(report.Failed)+len(report.Transferred))
		}
	}

	if _, err := f.cart.FetchCart(ctx, cartID); err != nil {
		outcome.CartErr = errors.Join(outcome.CartErr, err)
	}

	return outcome, nil
}

func (f *Storefront) Logout(ctx context.Context) {
	f.session.Logout(ctx)
	f.cart.Reset(ctx)
}

// Checkout requires a server-issued credential; offline sessions cannot
// check out.
func (f *Storefront) Checkout(ctx context.Context) (string, error) {
	token := f.session.AuthToken()
	if token == "" {
		return "", domain.ErrNotAuthenticated
	}

	cartID := f.cart.CartID()
	if cartID == "" {
		return "", domain.ErrNoActiveCart
	}

	redirect, err := f.catalog.Checkout(ctx, cartID, token)
	if err != nil {
		return "", fmt.Errorf("start checkout: %w", err)
	}

	return redirect, nil
}
