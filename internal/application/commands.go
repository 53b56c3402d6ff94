package application

import (
	"fmt"
	"strings"

	"github.com/bnema/shopassist/internal/domain"
)

type LoginCommand struct {
	Email    string
	Password string
}

func (c LoginCommand) normalized() (LoginCommand, error) {
	c.Email = strings.TrimSpace(c.Email)
	if c.Email == "" || c.Password == "" {
		return LoginCommand{}, fmt.Errorf("%w: email and password are required", domain.ErrValidation)
	}

	return c, nil
}

type AddItemCommand struct {
	SKU      string
	Quantity int
}

func (c AddItemCommand) normalized() (AddItemCommand, error) {
	c.SKU = strings.TrimSpace(c.SKU)
	if err := domain.ValidateSKU(c.SKU); err != nil {
		return AddItemCommand{}, err
	}
	if err := domain.ValidateQuantity(c.Quantity); err != nil {
		return AddItemCommand{}, err
	}

	return c, nil
}
