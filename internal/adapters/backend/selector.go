package backend

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/shopassist/internal/domain"
	"github.com/bnema/shopassist/internal/ports"
	"github.com/sirupsen/logrus"
)

// Selector routes cart calls to the primary transport and retries a failed
// call exactly once on the fallback transport.
type Selector struct {
	primary  ports.CartGateway
	fallback ports.CartGateway
	log      logrus.FieldLogger
}

var _ ports.CartGateway = (*Selector)(nil)

var (
	errNilPrimaryGateway  = errors.New("primary cart gateway is nil")
	errNilFallbackGateway = errors.New("fallback cart gateway is nil")
)

func NewSelector(primary ports.CartGateway, fallback ports.CartGateway, log logrus.FieldLogger) *Selector {
	selector, err := NewSelectorChecked(primary, fallback, log)
	if err != nil {
		panic(err)
	}

	return selector
}

func NewSelectorChecked(primary ports.CartGateway, fallback ports.CartGateway, log logrus.FieldLogger) (*Selector, error) {
	if primary == nil {
		return nil, errNilPrimaryGateway
	}
	if fallback == nil {
		return nil, errNilFallbackGateway
	}
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &Selector{primary: primary, fallback: fallback, log: log}, nil
}

func (s *Selector) CreateCart(ctx context.Context, token string) (string, error) {
	cartID, err := s.primary.CreateCart(ctx, token)
	if err == nil {
		return cartID, nil
	}
	if shouldSkipFallback(ctx, err) {
		return "", err
	}
	s.warnFallback("create cart", err)

	fallbackID, fallbackErr := s.fallback.CreateCart(ctx, token)
	if fallbackErr == nil {
		return fallbackID, nil
	}

	return "", fmt.Errorf("primary transport create cart failed: %w; fallback transport create cart failed: %w", err, fallbackErr)
}

func (s *Selector) GetCart(ctx context.Context, cartID string, token string) (domain.Cart, error) {
	cart, err := s.primary.GetCart(ctx, cartID, token)
	if err == nil {
		return cart, nil
	}
	if shouldSkipFallback(ctx, err) {
		return domain.Cart{}, err
	}
	s.warnFallback("get cart", err)

	fallbackCart, fallbackErr := s.fallback.GetCart(ctx, cartID, token)
	if fallbackErr == nil {
		return fallbackCart, nil
	}

	return domain.Cart{}, fmt.Errorf("primary transport get cart failed: %w; fallback transport get cart failed: %w", err, fallbackErr)
}

func (s *Selector) AddItem(ctx context.Context, cartID string, sku string, quantity int, token string) error {
	err := s.primary.AddItem(ctx, cartID, sku, quantity, token)
	if err == nil {
		return nil
	}
	if shouldSkipFallback(ctx, err) {
		return err
	}
	s.warnFallback("add item", err)

	fallbackErr := s.fallback.AddItem(ctx, cartID, sku, quantity, token)
	if fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("primary transport add item failed: %w; fallback transport add item failed: %w", err, fallbackErr)
}

func (s *Selector) warnFallback(operation string, err error) {
	s.log.WithError(err).WithField("operation", operation).Warn("primary cart transport failed, using fallback")
}

// shouldSkipFallback is true when the caller gave up or the backend accepted
// the request but rejected its content.
func shouldSkipFallback(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return true
	}

	return errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, domain.ErrCartRejected)
}
