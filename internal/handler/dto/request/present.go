package request

import (
	"strings"

	"github.com/shopspring/decimal"
)

type CreatePresentRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description *string         `json:"description,omitempty"`
	Link        *string         `json:"link,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Image       *string         `json:"image,omitempty"`
}

func (r CreatePresentRequest) GetDescription() *string {
	return trimmedOrNil(r.Description)
}

func (r CreatePresentRequest) GetLink() *string {
	return trimmedOrNil(r.Link)
}

type TransitionPresentRequest struct {
	ToState *int `json:"toState" binding:"required,oneof=0 1 2"`
}

type SetBoughtRequest struct {
	Bought *bool `json:"bought" binding:"required"`
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
