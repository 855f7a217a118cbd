package repository

import (
	"context"
	"errors"

	"famboard/internal/domain/watertemp"
	"famboard/internal/infra"
	"famboard/internal/infra/db"

	"github.com/jackc/pgx/v5"
)

// WaterTempStateRepository persists the monitor's singleton classification
// row. Historical rows may pile up behind it; the current one is the row with
// the highest id.
type WaterTempStateRepository struct {
	db db.DBTX
}

func NewWaterTempStateRepository(dbtx db.DBTX) *WaterTempStateRepository {
	return &WaterTempStateRepository{db: dbtx}
}

// Current returns nil without error when no state has been persisted yet.
func (r *WaterTempStateRepository) Current(ctx context.Context) (*watertemp.State, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, current_state, last_temp, last_check
		 FROM water_temp_state
		 ORDER BY id DESC
		 LIMIT 1`)

	var state watertemp.State
	var classification string
	err := row.Scan(&state.ID, &classification, &state.LastTemp, &state.LastCheck)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to load water temp state", err)
	}

	state.Current = watertemp.Classification(classification)
	return &state, nil
}

// Upsert overwrites the current row, or creates it on first run. Double
// writes of identical state from overlapping ticks are harmless.
func (r *WaterTempStateRepository) Upsert(ctx context.Context, state watertemp.State) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE water_temp_state
		 SET current_state = $1, last_temp = $2, last_check = $3
		 WHERE id = (SELECT max(id) FROM water_temp_state)`,
		state.Current.String(), state.LastTemp, state.LastCheck)
	if err != nil {
		return infra.WrapRepoErr("failed to update water temp state", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO water_temp_state (current_state, last_temp, last_check)
		 VALUES ($1, $2, $3)`,
		state.Current.String(), state.LastTemp, state.LastCheck)
	if err != nil {
		return infra.WrapRepoErr("failed to insert water temp state", err)
	}
	return nil
}
