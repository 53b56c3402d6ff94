package application

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/shopassist/internal/domain"
	"github.com/bnema/shopassist/internal/ports"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

const (
	KeyCartID      = "cart_id"
	KeyGuestCartID = "guest_cart_id"

	createCartGuardKey = "\x00create"
)

type TokenSource interface {
	AuthToken() string
}

// CartService owns the active cart. Mutations of one cart are serialized and
// concurrent reads of the same cart share a single backend call.
type CartService struct {
	gateway ports.CartGateway
	store   ports.StateStore
	tokens  TokenSource
	log     logrus.FieldLogger

	guard   *keyedGuard
	fetches singleflight.Group

	mu          sync.RWMutex
	cartID      string
	guestCartID string
	cart        domain.Cart
}

func NewCartService(gateway ports.CartGateway, store ports.StateStore, tokens TokenSource, log logrus.FieldLogger) *CartService {
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &CartService{
		gateway: gateway,
		store:   store,
		tokens:  tokens,
		log:     log,
		guard:   newKeyedGuard(),
	}
}

func (s *CartService) Load(ctx context.Context) {
	var cartID, guestCartID string
	s.store.Load(ctx, KeyCartID, &cartID)
	s.store.Load(ctx, KeyGuestCartID, &guestCartID)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cartID = cartID
	s.guestCartID = guestCartID
	s.cart = domain.Cart{ID: cartID, Kind: s.kindFor(cartID)}
}

func (s *CartService) CartID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cartID
}

func (s *CartService) GuestCartID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.guestCartID
}

// Cart returns a copy of the last known contents of the active cart.
func (s *CartService) Cart() domain.Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cart.Clone()
}

func (s *CartService) ItemCount() int {
	return s.Cart().ItemCount()
}

func (s *CartService) CreateGuestCart(ctx context.Context) (string, error) {
	cartID, err := s.gateway.CreateCart(ctx, "")
	if err != nil {
		return "", fmt.Errorf("create guest cart: %w", err)
	}

	s.mu.Lock()
	s.cartID = cartID
	s.guestCartID = cartID
	s.cart = domain.Cart{ID: cartID, Kind: domain.CartKindGuest}
	s.mu.Unlock()

	s.store.Save(ctx, KeyCartID, cartID)
	s.store.Save(ctx, KeyGuestCartID, cartID)
	s.log.WithField("cart_id", cartID).Debug("guest cart created")

	return cartID, nil
}

func (s *CartService) CreateAuthenticatedCart(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", domain.ErrNotAuthenticated
	}

	cartID, err := s.gateway.CreateCart(ctx, token)
	if err != nil {
		return "", fmt.Errorf("create authenticated cart: %w", err)
	}

	s.mu.Lock()
	s.cartID = cartID
	s.cart = domain.Cart{ID: cartID, Kind: domain.CartKindAuthenticated}
	s.mu.Unlock()

	s.store.Save(ctx, KeyCartID, cartID)
	s.log.WithField("cart_id", cartID).Debug("authenticated cart created")

	return cartID, nil
}

// AddItem validates the request, creates a cart when none is active, adds the
// line and returns the refreshed cart.
func (s *CartService) AddItem(ctx context.Context, cmd AddItemCommand) (domain.Cart, error) {
	cmd, err := cmd.normalized()
	if err != nil {
		return domain.Cart{}, err
	}

	cartID, err := s.ensureCart(ctx)
	if err != nil {
		return domain.Cart{}, err
	}

	release, err := s.guard.Acquire(ctx, cartID)
	if err != nil {
		return domain.Cart{}, err
	}
	defer release()

	token := s.tokens.AuthToken()
	if err := s.gateway.AddItem(ctx, cartID, cmd.SKU, cmd.Quantity, token); err != nil {
		return domain.Cart{}, fmt.Errorf("add %s to cart: %w", cmd.SKU, err)
	}

	// The refresh must observe this add, so it stays under the guard and
	// does not join a read that started before it.
	cart, err := s.gateway.GetCart(ctx, cartID, token)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("fetch cart: %w", err)
	}

	return s.remember(cartID, cart), nil
}

// FetchCart reads a cart from the backend. An empty id means the active cart.
// Only a read of the active cart replaces the cached contents.
func (s *CartService) FetchCart(ctx context.Context, cartID string) (domain.Cart, error) {
	if cartID == "" {
		cartID = s.CartID()
	}
	if cartID == "" {
		return domain.Cart{}, domain.ErrNoActiveCart
	}

	value, err, _ := s.fetches.Do(cartID, func() (any, error) {
		return s.gateway.GetCart(ctx, cartID, s.tokens.AuthToken())
	})
	if err != nil {
		return domain.Cart{}, fmt.Errorf("fetch cart: %w", err)
	}

	cart, ok := value.(domain.Cart)
	if !ok {
		return domain.Cart{}, errors.New("fetch cart: unexpected result type")
	}

	return s.remember(cartID, cart), nil
}

func (s *CartService) remember(cartID string, fetched domain.Cart) domain.Cart {
	cart := fetched.Clone()
	cart.ID = cartID

	s.mu.Lock()
	cart.Kind = s.kindFor(cartID)
	if cartID == s.cartID {
		s.cart = cart.Clone()
	}
	s.mu.Unlock()

	return cart
}

// TransferItems copies every line of source into target. A failed line does
// not stop the remaining ones.
func (s *CartService) TransferItems(ctx context.Context, sourceCartID string, targetCartID string) (TransferReport, error) {
	report := TransferReport{SourceCartID: sourceCartID, TargetCartID: targetCartID}

	source, err := s.FetchCart(ctx, sourceCartID)
	if err != nil {
		return report, fmt.Errorf("read source cart: %w", err)
	}

	release, err := s.guard.Acquire(ctx, targetCartID)
	if err != nil {
		return report, err
	}
	defer release()

	token := s.tokens.AuthToken()
	for _, item := range source.Items {
		if err := s.gateway.AddItem(ctx, targetCartID, item.SKU, item.Quantity, token); err != nil {
			s.log.WithError(err).WithField("sku", item.SKU).Warn("cart line transfer failed")
			report.Failed = append(report.Failed, FailedTransfer{Item: item, Err: err})
			continue
		}
		report.Transferred = append(report.Transferred, item)
	}

	return report, nil
}

func (s *CartService) ClearGuestCart(ctx context.Context) {
	s.mu.Lock()
	s.guestCartID = ""
	s.mu.Unlock()

	s.store.Remove(ctx, KeyGuestCartID)
}

// Reset forgets the active and guest carts.
func (s *CartService) Reset(ctx context.Context) {
	s.mu.Lock()
	s.cartID = ""
	s.guestCartID = ""
	s.cart = domain.Cart{}
	s.mu.Unlock()

	s.store.Remove(ctx, KeyCartID)
	s.store.Remove(ctx, KeyGuestCartID)
}

func (s *CartService) ensureCart(ctx context.Context) (string, error) {
	if cartID := s.CartID(); cartID != "" {
		return cartID, nil
	}

	release, err := s.guard.Acquire(ctx, createCartGuardKey)
	if err != nil {
		return "", err
	}
	defer release()

	if cartID := s.CartID(); cartID != "" {
		return cartID, nil
	}

	if token := s.tokens.AuthToken(); token != "" {
		return s.CreateAuthenticatedCart(ctx, token)
	}

	return s.CreateGuestCart(ctx)
}

// kindFor must be called with s.mu held.
func (s *CartService) kindFor(cartID string) domain.CartKind {
	if cartID != "" && cartID == s.guestCartID {
		return domain.CartKindGuest
	}
	if s.tokens != nil && s.tokens.AuthToken() != "" {
		return domain.CartKindAuthenticated
	}
	return domain.CartKindGuest
}
