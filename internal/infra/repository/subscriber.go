package repository

import (
	"context"

	"famboard/internal/infra"
	"famboard/internal/infra/db"
)

// TempAlertSubscriberRepository is the opt-in set for water-temperature
// alerts. Plain membership, no ordering.
type TempAlertSubscriberRepository struct {
	db db.DBTX
}

func NewTempAlertSubscriberRepository(dbtx db.DBTX) *TempAlertSubscriberRepository {
	return &TempAlertSubscriberRepository{db: dbtx}
}

func (r *TempAlertSubscriberRepository) Add(ctx context.Context, userID int64) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO temp_alert_subscriptions (user_id)
		 VALUES ($1)
		 ON CONFLICT (user_id) DO NOTHING`, userID)
	if err != nil {
		return infra.WrapRepoErr("failed to add temp alert subscriber", err)
	}
	return nil
}

func (r *TempAlertSubscriberRepository) Remove(ctx context.Context, userID int64) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM temp_alert_subscriptions WHERE user_id = $1`, userID)
	if err != nil {
		return infra.WrapRepoErr("failed to remove temp alert subscriber", err)
	}
	return nil
}

func (r *TempAlertSubscriberRepository) List(ctx context.Context) ([]int64, error) {
	rows, err := r.db.Query(ctx, `SELECT user_id FROM temp_alert_subscriptions`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list temp alert subscribers", err)
	}
	defer rows.Close()

	var userIDs []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan temp alert subscriber", err)
		}
		userIDs = append(userIDs, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read temp alert subscribers", err)
	}
	return userIDs, nil
}
