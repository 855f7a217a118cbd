package repository

import (
	"context"

	"famboard/internal/domain/present"
	"famboard/internal/infra"
	"famboard/internal/infra/db"
	"famboard/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

type PresentRepository struct {
	db db.DBTX
}

func NewPresentRepository(dbtx db.DBTX) *PresentRepository {
	return &PresentRepository{db: dbtx}
}

const presentColumns = `id, owner_id, name, description, link, price, image, state, reserved_by, bought, created_at, updated_at`

func (r *PresentRepository) FindByID(ctx context.Context, id int64) (*present.Present, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+presentColumns+` FROM presents WHERE id = $1`, id)

	entity, err := scanPresent(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find present", err)
	}
	return entity, nil
}

func (r *PresentRepository) Create(ctx context.Context, p *present.Present) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO presents (owner_id, name, description, link, price, image, state, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())
		 RETURNING id`,
		p.OwnerID(),
		p.Name().String(),
		pgconv.StringPtrToPgtype(p.Description()),
		pgconv.StringPtrToPgtype(p.Link()),
		pgconv.DecimalToPgtype(p.Price().Decimal()),
		pgconv.StringPtrToPgtype(p.Image()),
		int(p.State()),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create present", err)
	}
	return id, nil
}

// ApplyTransition writes the entity's new state and reserver with a
// compare-and-set predicate on the previously observed values. The predicate
// is the only serialization point for concurrent transition requests; a miss
// means another writer got there first.
func (r *PresentRepository) ApplyTransition(
	ctx context.Context,
	p *present.Present,
	prevState present.State,
	prevReserver *int64,
) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE presents
		 SET state = $1, reserved_by = $2, updated_at = now()
		 WHERE id = $3 AND state = $4 AND reserved_by IS NOT DISTINCT FROM $5`,
		int(p.State()),
		pgconv.Int64PtrToPgtype(p.ReservedBy()),
		p.ID(),
		int(prevState),
		pgconv.Int64PtrToPgtype(prevReserver),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to apply present transition", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindConflict, "present transition matched no row")
	}
	return nil
}

// SetBought flips the bought flag, guarded by the same compare-and-set idea:
// the row must still be reserved by the requester.
func (r *PresentRepository) SetBought(ctx context.Context, id, requester int64, bought bool) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE presents
		 SET bought = $1, updated_at = now()
		 WHERE id = $2 AND reserved_by = $3 AND state <> $4`,
		bought,
		id,
		requester,
		int(present.StateAvailable),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to set bought flag", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindConflict, "bought update matched no row")
	}
	return nil
}

func (r *PresentRepository) Delete(ctx context.Context, id, ownerID int64) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM presents WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete present", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "present not found for owner")
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPresent(row rowScanner) (*present.Present, error) {
	var (
		id          int64
		ownerID     int64
		name        string
		description pgtype.Text
		link        pgtype.Text
		price       pgtype.Numeric
		image       pgtype.Text
		state       int
		reservedBy  pgtype.Int8
		bought      bool
		createdAt   pgtype.Timestamptz
		updatedAt   pgtype.Timestamptz
	)

	if err := row.Scan(&id, &ownerID, &name, &description, &link, &price, &image,
		&state, &reservedBy, &bought, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	nameVO, err := present.NewName(name)
	if err != nil {
		return nil, err
	}
	priceVO, err := present.NewPrice(pgconv.DecimalFromPgtype(price))
	if err != nil {
		return nil, err
	}

	return present.ReconstructPresent(
		id, ownerID,
		nameVO,
		pgconv.StringPtrFromPgtype(description),
		pgconv.StringPtrFromPgtype(link),
		priceVO,
		pgconv.StringPtrFromPgtype(image),
		present.State(state),
		pgconv.Int64PtrFromPgtype(reservedBy),
		bought,
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}
