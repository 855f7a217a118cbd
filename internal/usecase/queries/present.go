package queries

import (
	"context"
	"time"

	"famboard/internal/infra"
	"famboard/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// PresentView is the full read model, shown to everyone except the owner.
type PresentView struct {
	ID          int64
	OwnerID     int64
	OwnerName   string
	Name        string
	Description *string
	Link        *string
	Price       decimal.Decimal
	Image       *string
	State       int
	ReservedBy  *int64
	Bought      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OwnPresentView is what the owner sees of their own wish list. It carries no
// reserver identity and no bought flag so gift-givers stay hidden.
type OwnPresentView struct {
	ID          int64
	Name        string
	Description *string
	Link        *string
	Price       decimal.Decimal
	Image       *string
	State       int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PresentChange feeds the daily digest: who added or edited what.
type PresentChange struct {
	ID        int64
	Name      string
	OwnerID   int64
	OwnerName string
	CreatedAt time.Time
}

type PresentReadStore interface {
	FindViewByID(ctx context.Context, id int64) (*PresentView, error)
	ListOthers(ctx context.Context, viewerID int64) ([]*PresentView, error)
	ListMine(ctx context.Context, ownerID int64) ([]*OwnPresentView, error)
	CreatedSince(ctx context.Context, since time.Time) ([]*PresentChange, error)
	UpdatedSince(ctx context.Context, since time.Time) ([]*PresentChange, error)
}

type PresentQueries interface {
	GetByID(ctx context.Context, id int64) (*PresentView, error)
	ListOthers(ctx context.Context, viewerID int64) ([]*PresentView, error)
	ListMine(ctx context.Context, ownerID int64) ([]*OwnPresentView, error)
}

type presentQueriesImpl struct {
	store PresentReadStore
}

func NewPresentQueries(store PresentReadStore) PresentQueries {
	return &presentQueriesImpl{store: store}
}

func (q *presentQueriesImpl) GetByID(ctx context.Context, id int64) (*PresentView, error) {
	view, err := q.store.FindViewByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrPresentNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *presentQueriesImpl) ListOthers(ctx context.Context, viewerID int64) ([]*PresentView, error) {
	views, err := q.store.ListOthers(ctx, viewerID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}

func (q *presentQueriesImpl) ListMine(ctx context.Context, ownerID int64) ([]*OwnPresentView, error) {
	views, err := q.store.ListMine(ctx, ownerID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}
