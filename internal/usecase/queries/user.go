package queries

import (
	"context"

	"famboard/internal/pkg/errs"
)

type UserView struct {
	ID        int64
	FirstName string
}

type UserReadStore interface {
	AllUsers(ctx context.Context) ([]*UserView, error)
}

type UserQueries interface {
	All(ctx context.Context) ([]*UserView, error)
}

type userQueriesImpl struct {
	store UserReadStore
}

func NewUserQueries(store UserReadStore) UserQueries {
	return &userQueriesImpl{store: store}
}

func (q *userQueriesImpl) All(ctx context.Context) ([]*UserView, error) {
	users, err := q.store.AllUsers(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return users, nil
}
