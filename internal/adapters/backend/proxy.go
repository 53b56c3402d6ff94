package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bnema/shopassist/internal/adapters/transport"
	"github.com/bnema/shopassist/internal/domain"
	"github.com/bnema/shopassist/internal/ports"
	"github.com/sirupsen/logrus"
)

// ProxyClient talks to the backend proxy. Calls go through a retrying Doer;
// the liveness probe uses a single-attempt Doer.
type ProxyClient struct {
	calls transport.Doer
	probe transport.Doer
	log   logrus.FieldLogger
}

var (
	_ ports.AuthGateway    = (*ProxyClient)(nil)
	_ ports.CartGateway    = (*ProxyClient)(nil)
	_ ports.CatalogGateway = (*ProxyClient)(nil)
	_ ports.Prober         = (*ProxyClient)(nil)
)

func NewProxyClient(calls transport.Doer, probe transport.Doer, log logrus.FieldLogger) *ProxyClient {
	if probe == nil {
		probe = calls
	}
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &ProxyClient{calls: calls, probe: probe, log: log}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Data struct {
		GenerateCustomerToken *struct {
			Token string `json:"token"`
		} `json:"generateCustomerToken"`
	} `json:"data"`
	Errors []graphQLError `json:"errors"`
}

func (c *ProxyClient) Login(ctx context.Context, email string, password string) (string, error) {
	res := c.calls.Execute(ctx, transport.Request{
		Endpoint: "/login",
		Method:   http.MethodPost,
		Body:     loginRequest{Email: email, Password: password},
	})
	if err := withServerMessage(res); err != nil {
		return "", fmt.Errorf("login: %w", err)
	}

	var payload loginResponse
	if err := res.Decode(&payload); err != nil {
		return "", fmt.Errorf("login: %w", err)
	}
	if len(payload.Errors) > 0 {
		return "", fmt.Errorf("login: %w: %s", domain.ErrAPIRejected, firstMessage(payload.Errors))
	}
	if payload.Data.GenerateCustomerToken == nil || payload.Data.GenerateCustomerToken.Token == "" {
		return "", fmt.Errorf("login: %w: login failed", domain.ErrAPIRejected)
	}

	return payload.Data.GenerateCustomerToken.Token, nil
}

type createCartRequest struct {
	CustomerToken string `json:"customer_token,omitempty"`
}

type createCartResponse struct {
	CartID string `json:"cart_id"`
}

func (c *ProxyClient) CreateCart(ctx context.Context, token string) (string, error) {
	res := c.calls.Execute(ctx, transport.Request{
		Endpoint: "/cart/create",
		Method:   http.MethodPost,
		Body:     createCartRequest{CustomerToken: token},
		Token:    token,
	})
	if err := withServerMessage(res); err != nil {
		return "", fmt.Errorf("proxy create cart: %w", err)
	}

	var payload createCartResponse
	if err := res.Decode(&payload); err != nil {
		return "", fmt.Errorf("proxy create cart: %w", err)
	}
	if strings.TrimSpace(payload.CartID) == "" {
		return "", fmt.Errorf("proxy create cart: %w: empty cart id", errMalformedResponse)
	}

	return payload.CartID, nil
}

type addItemRequest struct {
	CartID   string `json:"cart_id"`
	SKU      string `json:"sku"`
	Quantity int    `json:"quantity"`
}

func (c *ProxyClient) AddItem(ctx context.Context, cartID string, sku string, quantity int, token string) error {
	res := c.calls.Execute(ctx, transport.Request{
		Endpoint: "/cart/add",
		Method:   http.MethodPost,
		Body:     addItemRequest{CartID: cartID, SKU: sku, Quantity: quantity},
		Token:    token,
	})
	if err := withServerMessage(res); err != nil {
		return fmt.Errorf("proxy add item: %w", err)
	}

	var payload addItemEnvelope
	if err := res.Decode(&payload); err != nil {
		return fmt.Errorf("proxy add item: %w", err)
	}
	if msg := payload.rejection(); msg != "" {
		return fmt.Errorf("proxy add item: %w: %s", domain.ErrCartRejected, msg)
	}

	return nil
}

func (c *ProxyClient) GetCart(ctx context.Context, cartID string, token string) (domain.Cart, error) {
	res := c.calls.Execute(ctx, transport.Request{
		Endpoint: "/cart/" + url.PathEscape(cartID),
		Method:   http.MethodGet,
		Token:    token,
	})
	if err := withServerMessage(res); err != nil {
		return domain.Cart{}, fmt.Errorf("proxy get cart: %w", err)
	}

	var payload cartEnvelope
	if err := res.Decode(&payload); err != nil {
		return domain.Cart{}, fmt.Errorf("proxy get cart: %w", err)
	}
	if len(payload.Errors) > 0 {
		return domain.Cart{}, fmt.Errorf("proxy get cart: %w: %s", domain.ErrAPIRejected, firstMessage(payload.Errors))
	}
	if payload.Data.Cart == nil {
		return domain.Cart{}, fmt.Errorf("proxy get cart: %w: missing cart", errMalformedResponse)
	}

	return payload.Data.Cart.toDomain(cartID), nil
}

type searchRequest struct {
	Keyword string `json:"keyword"`
}

func (c *ProxyClient) Search(ctx context.Context, keyword string) (domain.SearchResult, error) {
	res := c.calls.Execute(ctx, transport.Request{
		Endpoint: "/search",
		Method:   http.MethodPost,
		Body:     searchRequest{Keyword: keyword},
	})
	if err := withServerMessage(res); err != nil {
		return domain.SearchResult{}, fmt.Errorf("search %q: %w", keyword, err)
	}

	var payload productsEnvelope
	if err := res.Decode(&payload); err != nil {
		return domain.SearchResult{}, fmt.Errorf("search %q: %w", keyword, err)
	}
	if len(payload.Errors) > 0 {
		return domain.SearchResult{}, fmt.Errorf("search %q: %w: %s", keyword, domain.ErrAPIRejected, firstMessage(payload.Errors))
	}

	result := domain.SearchResult{Keyword: keyword, Products: []domain.Product{}}
	if payload.Data.Products == nil {
		return result, nil
	}

	result.TotalCount = payload.Data.Products.TotalCount
	for _, item := range payload.Data.Products.Items {
		result.Products = append(result.Products, item.toDomain())
	}

	return result, nil
}

func (c *ProxyClient) Product(ctx context.Context, sku string) (domain.Product, error) {
	res := c.calls.Execute(ctx, transport.Request{
		Endpoint: "/product/" + url.PathEscape(sku),
		Method:   http.MethodGet,
	})
	if err := withServerMessage(res); err != nil {
		return domain.Product{}, fmt.Errorf("product %q: %w", sku, err)
	}

	var payload productsEnvelope
	if err := res.Decode(&payload); err != nil {
		return domain.Product{}, fmt.Errorf("product %q: %w", sku, err)
	}
	if payload.Data.Products == nil || len(payload.Data.Products.Items) == 0 {
		return domain.Product{}, fmt.Errorf("product %q: %w", sku, domain.ErrProductNotFound)
	}

	return payload.Data.Products.Items[0].toDomain(), nil
}

type checkoutRequest struct {
	CartID string `json:"cart_id"`
}

type checkoutResponse struct {
	Success     bool   `json:"success"`
	RedirectURL string `json:"redirect_url"`
}

func (c *ProxyClient) Checkout(ctx context.Context, cartID string, token string) (string, error) {
	res := c.calls.Execute(ctx, transport.Request{
		Endpoint: "/checkout/start",
		Method:   http.MethodPost,
		Body:     checkoutRequest{CartID: cartID},
		Token:    token,
	})
	if err := withServerMessage(res); err != nil {
		return "", fmt.Errorf("checkout: %w", err)
	}

	var payload checkoutResponse
	if err := res.Decode(&payload); err != nil {
		return "", fmt.Errorf("checkout: %w", err)
	}
	if !payload.Success || payload.RedirectURL == "" {
		return "", fmt.Errorf("checkout: %w: no redirect url", domain.ErrAPIRejected)
	}

	return payload.RedirectURL, nil
}

// Ping reports reachability. Any HTTP response, including an error status,
// counts as reachable.
func (c *ProxyClient) Ping(ctx context.Context, timeout time.Duration) error {
	res := c.probe.Execute(ctx, transport.Request{
		Endpoint: "/ping",
		Method:   http.MethodGet,
		Timeout:  timeout,
	})
	if res.Kind == transport.KindSuccess || res.Kind == transport.KindAPIError {
		return nil
	}

	return res.Err()
}

func withServerMessage(res transport.Result) error {
	if res.OK() {
		return nil
	}
	if res.Kind == transport.KindAPIError {
		res.Message = serverMessage(res.Body, res.Message)
	}

	return res.Err()
}
