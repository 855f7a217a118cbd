//go:build unit

package builder

import (
	"time"

	"famboard/internal/domain/present"
	"famboard/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

type PresentBuilder struct {
	ID          int64
	OwnerID     int64
	Name        string
	Description *string
	Link        *string
	Price       decimal.Decimal
	Image       *string
	State       present.State
	ReservedBy  *int64
	Bought      bool
}

func NewPresentBuilder() *PresentBuilder {
	desc := "a very nice teapot"
	return &PresentBuilder{
		ID:          1,
		OwnerID:     10,
		Name:        "Teapot",
		Description: &desc,
		Price:       decimal.NewFromInt(25),
		State:       present.StateAvailable,
	}
}

func (b *PresentBuilder) With(mutate func(*PresentBuilder)) *PresentBuilder {
	mutate(b)
	return b
}

func (b *PresentBuilder) WithState(state present.State, reservedBy *int64) *PresentBuilder {
	b.State = state
	b.ReservedBy = reservedBy
	return b
}

func (b *PresentBuilder) BuildDomain() (*present.Present, error) {
	name, err := present.NewName(b.Name)
	if err != nil {
		return nil, err
	}

	price, err := present.NewPrice(b.Price)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return present.ReconstructPresent(
		b.ID, b.OwnerID,
		name,
		b.Description, b.Link,
		price,
		b.Image,
		b.State,
		b.ReservedBy,
		b.Bought,
		now, now,
	), nil
}

func (b *PresentBuilder) BuildView() *queries.PresentView {
	now := time.Now()
	return &queries.PresentView{
		ID:          b.ID,
		OwnerID:     b.OwnerID,
		OwnerName:   "Alice",
		Name:        b.Name,
		Description: b.Description,
		Link:        b.Link,
		Price:       b.Price,
		Image:       b.Image,
		State:       int(b.State),
		ReservedBy:  b.ReservedBy,
		Bought:      b.Bought,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (b *PresentBuilder) BuildCreateRequestDTO() map[string]any {
	body := map[string]any{
		"name":  b.Name,
		"price": b.Price,
	}
	if b.Description != nil {
		body["description"] = *b.Description
	}
	if b.Link != nil {
		body["link"] = *b.Link
	}
	if b.Image != nil {
		body["image"] = *b.Image
	}
	return body
}
