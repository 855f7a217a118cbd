package readstore

import (
	"context"

	"famboard/internal/infra"
	"famboard/internal/infra/db"
	"famboard/internal/usecase/queries"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

func (s *UserReadStore) AllUsers(ctx context.Context) ([]*queries.UserView, error) {
	rows, err := s.db.Query(ctx, `SELECT id, firstname FROM users ORDER BY id`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}
	defer rows.Close()

	var users []*queries.UserView
	for rows.Next() {
		var user queries.UserView
		if err := rows.Scan(&user.ID, &user.FirstName); err != nil {
			return nil, infra.WrapRepoErr("failed to scan user", err)
		}
		users = append(users, &user)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read users", err)
	}
	return users, nil
}
