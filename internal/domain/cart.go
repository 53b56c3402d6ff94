package domain

import (
	"fmt"
	"strings"
)

const (
	MinLineQuantity = 1
	MaxLineQuantity = 99
)

type CartKind string

const (
	CartKindGuest         CartKind = "guest"
	CartKindAuthenticated CartKind = "authenticated"
)

type Money struct {
	Amount   float64
	Currency string
}

type LineItem struct {
	SKU         string
	ProductName string
	Quantity    int
	UnitPrice   *Money
	ImageURL    string
}

// Subtotal is nil when the line has no known unit price.
func (l LineItem) Subtotal() *Money {
	if l.UnitPrice == nil {
		return nil
	}

	return &Money{Amount: l.UnitPrice.Amount * float64(l.Quantity), Currency: l.UnitPrice.Currency}
}

type Cart struct {
	ID         string
	Kind       CartKind
	Items      []LineItem
	GrandTotal *Money
}

func (c Cart) ItemCount() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}

	return total
}

func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

func (c Cart) Clone() Cart {
	cloned := c
	cloned.Items = append([]LineItem(nil), c.Items...)
	for i, item := range cloned.Items {
		if item.UnitPrice != nil {
			price := *item.UnitPrice
			cloned.Items[i].UnitPrice = &price
		}
	}
	if c.GrandTotal != nil {
		total := *c.GrandTotal
		cloned.GrandTotal = &total
	}

	return cloned
}

func ValidateQuantity(quantity int) error {
	if quantity < MinLineQuantity || quantity > MaxLineQuantity {
		return fmt.Errorf("%w: got %d", ErrInvalidQuantity, quantity)
	}

	return nil
}

func ValidateSKU(sku string) error {
	if strings.TrimSpace(sku) == "" {
		return fmt.Errorf("%w: sku is empty", ErrValidation)
	}

	return nil
}
