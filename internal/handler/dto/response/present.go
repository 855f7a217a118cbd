package response

import (
	"time"

	"famboard/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

type PresentResponse struct {
	ID          int64           `json:"id"`
	OwnerID     int64           `json:"ownerId"`
	OwnerName   string          `json:"ownerName"`
	Name        string          `json:"name"`
	Description *string         `json:"description,omitempty"`
	Link        *string         `json:"link,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Image       *string         `json:"image,omitempty"`
	State       int             `json:"state"`
	ReservedBy  *int64          `json:"reservedBy,omitempty"`
	Bought      bool            `json:"bought"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// OwnPresentResponse deliberately carries no reserver identity and no bought
// flag so the owner cannot see who picked their wish.
type OwnPresentResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description,omitempty"`
	Link        *string         `json:"link,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Image       *string         `json:"image,omitempty"`
	State       int             `json:"state"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func FromPresentView(rm *queries.PresentView) *PresentResponse {
	return &PresentResponse{
		ID:          rm.ID,
		OwnerID:     rm.OwnerID,
		OwnerName:   rm.OwnerName,
		Name:        rm.Name,
		Description: rm.Description,
		Link:        rm.Link,
		Price:       rm.Price,
		Image:       rm.Image,
		State:       rm.State,
		ReservedBy:  rm.ReservedBy,
		Bought:      rm.Bought,
		CreatedAt:   rm.CreatedAt,
		UpdatedAt:   rm.UpdatedAt,
	}
}

func FromOwnPresentView(rm *queries.OwnPresentView) *OwnPresentResponse {
	return &OwnPresentResponse{
		ID:          rm.ID,
		Name:        rm.Name,
		Description: rm.Description,
		Link:        rm.Link,
		Price:       rm.Price,
		Image:       rm.Image,
		State:       rm.State,
		CreatedAt:   rm.CreatedAt,
		UpdatedAt:   rm.UpdatedAt,
	}
}
