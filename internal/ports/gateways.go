package ports

import (
	"context"
	"time"

	"github.com/bnema/shopassist/internal/domain"
)

type AuthGateway interface {
	Login(ctx context.Context, email string, password string) (string, error)
}

// CartGateway talks to a cart backend. An empty token means a guest call.
type CartGateway interface {
	CreateCart(ctx context.Context, token string) (string, error)
	GetCart(ctx context.Context, cartID string, token string) (domain.Cart, error)
	AddItem(ctx context.Context, cartID string, sku string, quantity int, token string) error
}

type CatalogGateway interface {
	Search(ctx context.Context, keyword string) (domain.SearchResult, error)
	Product(ctx context.Context, sku string) (domain.Product, error)
	Checkout(ctx context.Context, cartID string, token string) (string, error)
}

type Prober interface {
	Ping(ctx context.Context, timeout time.Duration) error
}

// KeywordExtractor never fails; an unusable answer yields no keywords.
type KeywordExtractor interface {
	Keywords(ctx context.Context, message string) []string
}
