package backend

import (
	"encoding/json"
	"errors"
	"math"
	"strings"

	"github.com/bnema/shopassist/internal/domain"
)

var errMalformedResponse = errors.New("malformed backend response")

type graphQLError struct {
	Message string `json:"message"`
}

type userError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type moneyPayload struct {
	Value    *float64 `json:"value"`
	Currency string   `json:"currency"`
}

func (m *moneyPayload) toDomain() *domain.Money {
	if m == nil || m.Value == nil {
		return nil
	}

	return &domain.Money{Amount: *m.Value, Currency: m.Currency}
}

type imagePayload struct {
	URL string `json:"url"`
}

type cartItemPayload struct {
	Product struct {
		Name       string        `json:"name"`
		SKU        string        `json:"sku"`
		SmallImage *imagePayload `json:"small_image"`
	} `json:"product"`
	Quantity float64 `json:"quantity"`
	Prices   *struct {
		Price *moneyPayload `json:"price"`
	} `json:"prices"`
}

type cartPayload struct {
	Items  []cartItemPayload `json:"items"`
	Prices *struct {
		GrandTotal *moneyPayload `json:"grand_total"`
	} `json:"prices"`
}

// cartEnvelope is the provider shape returned by both transports for a cart read.
type cartEnvelope struct {
	Data struct {
		Cart *cartPayload `json:"cart"`
	} `json:"data"`
	Errors []graphQLError `json:"errors"`
}

func (p cartPayload) toDomain(cartID string) domain.Cart {
	cart := domain.Cart{ID: cartID, Items: make([]domain.LineItem, 0, len(p.Items))}
	for _, item := range p.Items {
		line := domain.LineItem{
			SKU:         item.Product.SKU,
			ProductName: item.Product.Name,
			Quantity:    int(math.Round(item.Quantity)),
		}
		if item.Product.SmallImage != nil {
			line.ImageURL = item.Product.SmallImage.URL
		}
		if item.Prices != nil {
			line.UnitPrice = item.Prices.Price.toDomain()
		}
		cart.Items = append(cart.Items, line)
	}
	if p.Prices != nil {
		cart.GrandTotal = p.Prices.GrandTotal.toDomain()
	}

	return cart
}

// addItemEnvelope accepts user_errors both at the top level and nested under
// the addProductsToCart mutation result.
type addItemEnvelope struct {
	Data struct {
		AddProductsToCart *struct {
			UserErrors []userError `json:"user_errors"`
		} `json:"addProductsToCart"`
	} `json:"data"`
	UserErrors []userError     `json:"user_errors"`
	Errors     []graphQLError `json:"errors"`
}

func (e addItemEnvelope) rejection() string {
	messages := make([]string, 0)
	for _, ue := range e.UserErrors {
		messages = append(messages, ue.Message)
	}
	if e.Data.AddProductsToCart != nil {
		for _, ue := range e.Data.AddProductsToCart.UserErrors {
			messages = append(messages, ue.Message)
		}
	}
	for _, ge := range e.Errors {
		messages = append(messages, ge.Message)
	}

	return strings.Join(nonEmpty(messages), "; ")
}

type discountPayload struct {
	AmountOff  float64 `json:"amount_off"`
	PercentOff float64 `json:"percent_off"`
}

type productPayload struct {
	ID         json.RawMessage `json:"id"`
	SKU        string          `json:"sku"`
	Name       string          `json:"name"`
	SmallImage *imagePayload   `json:"small_image"`
	PriceRange *struct {
		MaximumPrice *struct {
			FinalPrice *moneyPayload    `json:"final_price"`
			Discount   *discountPayload `json:"discount"`
		} `json:"maximum_price"`
	} `json:"price_range"`
	Price *struct {
		RegularPrice *struct {
			Amount *moneyPayload `json:"amount"`
		} `json:"regularPrice"`
	} `json:"price"`
	UnitEcom    string `json:"unit_ecom"`
	Description *struct {
		HTML string `json:"html"`
	} `json:"description"`
}

type productsEnvelope struct {
	Data struct {
		Products *struct {
			Items      []productPayload `json:"items"`
			TotalCount int              `json:"total_count"`
		} `json:"products"`
	} `json:"data"`
	Errors []graphQLError `json:"errors"`
}

// toDomain never invents a price; a product without one is marked unavailable.
func (p productPayload) toDomain() domain.Product {
	product := domain.Product{
		ID:   strings.Trim(string(p.ID), `"`),
		SKU:  p.SKU,
		Name: p.Name,
		Unit: p.UnitEcom,
	}
	if p.SmallImage != nil {
		product.ImageURL = p.SmallImage.URL
	}
	if p.Description != nil {
		product.Description = p.Description.HTML
	}
	if p.PriceRange != nil && p.PriceRange.MaximumPrice != nil {
		product.Price = p.PriceRange.MaximumPrice.FinalPrice.toDomain()
		if d := p.PriceRange.MaximumPrice.Discount; d != nil && (d.AmountOff > 0 || d.PercentOff > 0) {
			product.Discount = &domain.Discount{AmountOff: d.AmountOff, PercentOff: d.PercentOff}
		}
	}
	if product.Price == nil && p.Price != nil && p.Price.RegularPrice != nil {
		product.Price = p.Price.RegularPrice.Amount.toDomain()
	}

	return product
}

type errorBody struct {
	Error   string         `json:"error"`
	Details string         `json:"details"`
	Errors  []graphQLError `json:"errors"`
}

// serverMessage extracts a human readable message from an error body.
func serverMessage(body []byte, fallback string) string {
	var decoded errorBody
	if err := json.Unmarshal(body, &decoded); err == nil {
		for _, e := range decoded.Errors {
			if e.Message != "" {
				return e.Message
			}
		}
		if decoded.Details != "" && decoded.Error != "" {
			return decoded.Error + ": " + decoded.Details
		}
		if decoded.Error != "" {
			return decoded.Error
		}
	}

	return fallback
}

func firstMessage(errs []graphQLError) string {
	for _, e := range errs {
		if e.Message != "" {
			return e.Message
		}
	}
	return "unknown error"
}

func nonEmpty(values []string) []string {
	out := values[:0]
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}
