package present

import (
	"strings"

	"github.com/shopspring/decimal"
)

const maxNameLength = 50

type Name struct {
	value string
}

func NewName(value string) (Name, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Name{}, ErrEmptyName
	}
	if len(trimmed) > maxNameLength {
		return Name{}, ErrNameTooLong
	}
	return Name{value: trimmed}, nil
}

func (n Name) String() string {
	return n.value
}

type Price struct {
	value decimal.Decimal
}

func NewPrice(value decimal.Decimal) (Price, error) {
	if value.IsNegative() {
		return Price{}, ErrNegativePrice
	}
	return Price{value: value}, nil
}

func (p Price) Decimal() decimal.Decimal {
	return p.value
}

func (p Price) String() string {
	return p.value.String()
}
