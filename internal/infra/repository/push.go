package repository

import (
	"context"

	"famboard/internal/infra"
	"famboard/internal/infra/db"
)

// PushEndpoint is one browser subscription: delivery URL plus the client's
// encryption keys.
type PushEndpoint struct {
	ID       int64
	UserID   int64
	Endpoint string
	P256dh   string
	Auth     string
}

type PushEndpointRepository struct {
	db db.DBTX
}

func NewPushEndpointRepository(dbtx db.DBTX) *PushEndpointRepository {
	return &PushEndpointRepository{db: dbtx}
}

func (r *PushEndpointRepository) Create(ctx context.Context, ep PushEndpoint) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO push_endpoints (user_id, endpoint, p256dh, auth)
		 VALUES ($1, $2, $3, $4)`,
		ep.UserID, ep.Endpoint, ep.P256dh, ep.Auth)
	if err != nil {
		return infra.WrapRepoErr("failed to create push endpoint", err)
	}
	return nil
}

func (r *PushEndpointRepository) ListByUserIDs(ctx context.Context, userIDs []int64) ([]PushEndpoint, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, endpoint, p256dh, auth
		 FROM push_endpoints
		 WHERE user_id = ANY($1)`, userIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list push endpoints", err)
	}
	defer rows.Close()

	var endpoints []PushEndpoint
	for rows.Next() {
		var ep PushEndpoint
		if err := rows.Scan(&ep.ID, &ep.UserID, &ep.Endpoint, &ep.P256dh, &ep.Auth); err != nil {
			return nil, infra.WrapRepoErr("failed to scan push endpoint", err)
		}
		endpoints = append(endpoints, ep)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read push endpoints", err)
	}
	return endpoints, nil
}

// DeleteByEndpoint prunes a dead endpoint regardless of owner; the push
// service said it is gone.
func (r *PushEndpointRepository) DeleteByEndpoint(ctx context.Context, endpoint string) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM push_endpoints WHERE endpoint = $1`, endpoint)
	if err != nil {
		return infra.WrapRepoErr("failed to delete push endpoint", err)
	}
	return nil
}

// DeleteByUserAndEndpoint is the user-facing unsubscribe: scoped to the owner
// so one user cannot drop another's subscription.
func (r *PushEndpointRepository) DeleteByUserAndEndpoint(ctx context.Context, userID int64, endpoint string) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM push_endpoints WHERE user_id = $1 AND endpoint = $2`, userID, endpoint)
	if err != nil {
		return infra.WrapRepoErr("failed to delete push endpoint", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "push endpoint not found")
	}
	return nil
}
