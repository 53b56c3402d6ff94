package backend

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/bnema/shopassist/internal/adapters/transport"
	"github.com/bnema/shopassist/internal/domain"
	"github.com/bnema/shopassist/internal/ports"
	"github.com/sirupsen/logrus"
)

const DefaultGraphQLTimeout = 15 * time.Second

const (
	createCartMutation = `mutation CreateCart { cartId: createEmptyCart }`

	getCartQuery = `query GetCart($cartId: String!) {
  cart(cart_id: $cartId) {
    items {
      id
      product { name sku small_image { url } }
      quantity
      prices { price { value currency } }
    }
    prices { grand_total { value currency } }
  }
}`

	addItemMutation = `mutation AddProductsToCart($cartId: String!, $cartItems: [CartItemInput!]!) {
  addProductsToCart(cartId: $cartId, cartItems: $cartItems) {
    cart { itemsV2 { items { product { name sku } quantity } } }
    user_errors { code message }
  }
}`
)

// GraphQLClient calls the commerce GraphQL endpoint directly. It makes a
// single attempt per call. Every query sends user values as variables.
type GraphQLClient struct {
	doer    transport.Doer
	timeout time.Duration
	log     logrus.FieldLogger
}

var _ ports.CartGateway = (*GraphQLClient)(nil)

func NewGraphQLClient(doer transport.Doer, timeout time.Duration, log logrus.FieldLogger) *GraphQLClient {
	if timeout <= 0 {
		timeout = DefaultGraphQLTimeout
	}
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &GraphQLClient{doer: doer, timeout: timeout, log: log}
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

func (c *GraphQLClient) CreateCart(ctx context.Context, token string) (string, error) {
	res, err := c.execute(ctx, createCartMutation, nil, token)
	if err != nil {
		return "", fmt.Errorf("graphql create cart: %w", err)
	}

	var payload struct {
		Data struct {
			CartID string `json:"cartId"`
		} `json:"data"`
		Errors []graphQLError `json:"errors"`
	}
	if err := res.Decode(&payload); err != nil {
		return "", fmt.Errorf("graphql create cart: %w", err)
	}
	if len(payload.Errors) > 0 {
		return "", fmt.Errorf("graphql create cart: %w: %s", domain.ErrAPIRejected, firstMessage(payload.Errors))
	}
	if strings.TrimSpace(payload.Data.CartID) == "" {
		return "", fmt.Errorf("graphql create cart: %w: empty cart id", errMalformedResponse)
	}

	return payload.Data.CartID, nil
}

func (c *GraphQLClient) GetCart(ctx context.Context, cartID string, token string) (domain.Cart, error) {
	res, err := c.execute(ctx, getCartQuery, map[string]any{"cartId": cartID}, token)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("graphql get cart: %w", err)
	}

	var payload cartEnvelope
	if err := res.Decode(&payload); err != nil {
		return domain.Cart{}, fmt.Errorf("graphql get cart: %w", err)
	}
	if len(payload.Errors) > 0 {
		return domain.Cart{}, fmt.Errorf("graphql get cart: %w: %s", domain.ErrAPIRejected, firstMessage(payload.Errors))
	}
	if payload.Data.Cart == nil {
		return domain.Cart{}, fmt.Errorf("graphql get cart: %w: missing cart", errMalformedResponse)
	}

	return payload.Data.Cart.toDomain(cartID), nil
}

type cartItemInput struct {
	SKU      string  `json:"sku"`
	Quantity float64 `json:"quantity"`
}

func (c *GraphQLClient) AddItem(ctx context.Context, cartID string, sku string, quantity int, token string) error {
	res, err := c.execute(ctx, addItemMutation, map[string]any{
		"cartId":    cartID,
		"cartItems": []cartItemInput{{SKU: sku, Quantity: float64(quantity)}},
	}, token)
	if err != nil {
		return fmt.Errorf("graphql add item: %w", err)
	}

	var payload addItemEnvelope
	if err := res.Decode(&payload); err != nil {
		return fmt.Errorf("graphql add item: %w", err)
	}
	if msg := payload.rejection(); msg != "" {
		return fmt.Errorf("graphql add item: %w: %s", domain.ErrCartRejected, msg)
	}

	return nil
}

func (c *GraphQLClient) execute(ctx context.Context, query string, variables map[string]any, token string) (transport.Result, error) {
	res := c.doer.Execute(ctx, transport.Request{
		Method:  http.MethodPost,
		Body:    graphQLRequest{Query: query, Variables: variables},
		Token:   token,
		Timeout: c.timeout,
	})
	if err := withServerMessage(res); err != nil {
		return res, err
	}

	return res, nil
}
