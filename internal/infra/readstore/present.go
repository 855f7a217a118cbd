package readstore

import (
	"context"
	"time"

	"famboard/internal/domain/present"
	"famboard/internal/infra"
	"famboard/internal/infra/db"
	"famboard/internal/pkg/pgconv"
	"famboard/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type PresentReadStore struct {
	db db.DBTX
}

func NewPresentReadStore(dbtx db.DBTX) *PresentReadStore {
	return &PresentReadStore{db: dbtx}
}

const presentViewQuery = `
	SELECT p.id, p.owner_id, u.firstname, p.name, p.description, p.link,
	       p.price, p.image, p.state, p.reserved_by, p.bought,
	       p.created_at, p.updated_at
	FROM presents p
	JOIN users u ON u.id = p.owner_id`

func (s *PresentReadStore) FindViewByID(ctx context.Context, id int64) (*queries.PresentView, error) {
	row := s.db.QueryRow(ctx, presentViewQuery+` WHERE p.id = $1`, id)

	view, err := scanPresentView(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find present view", err)
	}
	return view, nil
}

func (s *PresentReadStore) ListOthers(ctx context.Context, viewerID int64) ([]*queries.PresentView, error) {
	rows, err := s.db.Query(ctx,
		presentViewQuery+` WHERE p.owner_id <> $1 ORDER BY p.created_at DESC`, viewerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list others' presents", err)
	}
	defer rows.Close()

	var views []*queries.PresentView
	for rows.Next() {
		view, err := scanPresentView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan present view", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read present views", err)
	}
	return views, nil
}

// ListMine deliberately never selects reserved_by or bought: the owner must
// not learn who took an item off their list.
func (s *PresentReadStore) ListMine(ctx context.Context, ownerID int64) ([]*queries.OwnPresentView, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, name, description, link, price, image, state, created_at, updated_at
		 FROM presents
		 WHERE owner_id = $1
		 ORDER BY created_at DESC`, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list own presents", err)
	}
	defer rows.Close()

	var views []*queries.OwnPresentView
	for rows.Next() {
		var (
			view        queries.OwnPresentView
			description pgtype.Text
			link        pgtype.Text
			price       pgtype.Numeric
			image       pgtype.Text
			createdAt   pgtype.Timestamptz
			updatedAt   pgtype.Timestamptz
		)
		if err := rows.Scan(&view.ID, &view.Name, &description, &link, &price,
			&image, &view.State, &createdAt, &updatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan own present view", err)
		}
		view.Description = pgconv.StringPtrFromPgtype(description)
		view.Link = pgconv.StringPtrFromPgtype(link)
		view.Price = pgconv.DecimalFromPgtype(price)
		view.Image = pgconv.StringPtrFromPgtype(image)
		view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read own present views", err)
	}
	return views, nil
}

func (s *PresentReadStore) CreatedSince(ctx context.Context, since time.Time) ([]*queries.PresentChange, error) {
	return s.changesSince(ctx, `p.created_at >= $1`, since)
}

func (s *PresentReadStore) UpdatedSince(ctx context.Context, since time.Time) ([]*queries.PresentChange, error) {
	return s.changesSince(ctx, `p.updated_at >= $1`, since)
}

func (s *PresentReadStore) changesSince(ctx context.Context, predicate string, since time.Time) ([]*queries.PresentChange, error) {
	rows, err := s.db.Query(ctx,
		`SELECT p.id, p.name, p.owner_id, u.firstname, p.created_at
		 FROM presents p
		 JOIN users u ON u.id = p.owner_id
		 WHERE `+predicate+` AND p.state <> $2`, since, int(present.StateGiven))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list present changes", err)
	}
	defer rows.Close()

	var changes []*queries.PresentChange
	for rows.Next() {
		var change queries.PresentChange
		var createdAt pgtype.Timestamptz
		if err := rows.Scan(&change.ID, &change.Name, &change.OwnerID,
			&change.OwnerName, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan present change", err)
		}
		change.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		changes = append(changes, &change)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read present changes", err)
	}
	return changes, nil
}

func scanPresentView(row interface{ Scan(dest ...any) error }) (*queries.PresentView, error) {
	var (
		view        queries.PresentView
		description pgtype.Text
		link        pgtype.Text
		price       pgtype.Numeric
		image       pgtype.Text
		reservedBy  pgtype.Int8
		createdAt   pgtype.Timestamptz
		updatedAt   pgtype.Timestamptz
	)

	if err := row.Scan(&view.ID, &view.OwnerID, &view.OwnerName, &view.Name,
		&description, &link, &price, &image, &view.State, &reservedBy,
		&view.Bought, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	view.Description = pgconv.StringPtrFromPgtype(description)
	view.Link = pgconv.StringPtrFromPgtype(link)
	view.Price = pgconv.DecimalFromPgtype(price)
	view.Image = pgconv.StringPtrFromPgtype(image)
	view.ReservedBy = pgconv.Int64PtrFromPgtype(reservedBy)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}
