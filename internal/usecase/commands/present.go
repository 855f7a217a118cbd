package commands

import (
	"context"
	"errors"

	"famboard/internal/domain/present"
	"famboard/internal/infra"
	"famboard/internal/pkg/errs"
	"famboard/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

type PresentRepository interface {
	FindByID(ctx context.Context, id int64) (*present.Present, error)
	Create(ctx context.Context, p *present.Present) (int64, error)
	ApplyTransition(ctx context.Context, p *present.Present, prevState present.State, prevReserver *int64) error
	SetBought(ctx context.Context, id, requester int64, bought bool) error
	Delete(ctx context.Context, id, ownerID int64) error
}

type CreatePresentParams struct {
	Name        string
	Description *string
	Link        *string
	Price       decimal.Decimal
	Image       *string
}

type PresentCommands interface {
	Create(ctx context.Context, ownerID int64, params CreatePresentParams) (*queries.PresentView, error)
	Transition(ctx context.Context, id, requesterID int64, toState present.State) (*queries.PresentView, error)
	SetBought(ctx context.Context, id, requesterID int64, bought bool) (*queries.PresentView, error)
	Delete(ctx context.Context, id, ownerID int64) error
}

type presentCommandsImpl struct {
	repo           PresentRepository
	presentQueries queries.PresentQueries
}

func NewPresentCommands(repo PresentRepository, presentQueries queries.PresentQueries) PresentCommands {
	return &presentCommandsImpl{
		repo:           repo,
		presentQueries: presentQueries,
	}
}

func (c *presentCommandsImpl) Create(ctx context.Context, ownerID int64, params CreatePresentParams) (*queries.PresentView, error) {
	name, err := present.NewName(params.Name)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	price, err := present.NewPrice(params.Price)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	entity := present.NewPresent(ownerID, name, params.Description, params.Link, price, params.Image)

	id, err := c.repo.Create(ctx, entity)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return c.presentQueries.GetByID(ctx, id)
}

// Transition reads the present, validates the requested change in the domain,
// then writes it back with a compare-and-set on the state observed at read
// time. Losing the race re-fetches once to tell "the move is now invalid"
// apart from "someone else moved it the same way first".
func (c *presentCommandsImpl) Transition(ctx context.Context, id, requesterID int64, toState present.State) (*queries.PresentView, error) {
	entity, err := c.findPresent(ctx, id)
	if err != nil {
		return nil, err
	}

	prevState := entity.State()
	prevReserver := entity.ReservedBy()

	if err := entity.Transition(requesterID, toState); err != nil {
		return nil, mapDomainErr(err)
	}

	if err := c.repo.ApplyTransition(ctx, entity, prevState, prevReserver); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, c.classifyTransitionConflict(ctx, id, requesterID, toState)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return c.presentQueries.GetByID(ctx, id)
}

func (c *presentCommandsImpl) SetBought(ctx context.Context, id, requesterID int64, bought bool) (*queries.PresentView, error) {
	entity, err := c.findPresent(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := entity.SetBought(requesterID, bought); err != nil {
		return nil, mapBoughtErr(err)
	}

	if err := c.repo.SetBought(ctx, id, requesterID, bought); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			// Reservation changed between read and write.
			return nil, errs.ErrTransitionConflict
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return c.presentQueries.GetByID(ctx, id)
}

func (c *presentCommandsImpl) Delete(ctx context.Context, id, ownerID int64) error {
	if err := c.repo.Delete(ctx, id, ownerID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrPresentNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *presentCommandsImpl) findPresent(ctx context.Context, id int64) (*present.Present, error) {
	entity, err := c.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrPresentNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return entity, nil
}

// classifyTransitionConflict re-fetches after a lost compare-and-set. If the
// transition is invalid against the fresh row the caller gets the precise
// rejection; if it would still be valid in principle, it was a pure write
// race.
func (c *presentCommandsImpl) classifyTransitionConflict(ctx context.Context, id, requesterID int64, toState present.State) error {
	fresh, err := c.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrPresentNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := fresh.Transition(requesterID, toState); err != nil {
		return mapDomainErr(err)
	}
	return errs.ErrTransitionConflict
}

func mapBoughtErr(err error) error {
	switch {
	case errors.Is(err, present.ErrOwnPresent):
		return errs.ErrOwnPresentAction
	case errors.Is(err, present.ErrNotReserver):
		return errs.ErrBoughtNotReserver
	case errors.Is(err, present.ErrNotReserved):
		return errs.ErrBoughtNotReserved
	default:
		return errs.Mark(err, errs.ErrDomainValidation)
	}
}

func mapDomainErr(err error) error {
	switch {
	case errors.Is(err, present.ErrOwnPresent):
		return errs.ErrOwnPresentAction
	case errors.Is(err, present.ErrNotReserver):
		return errs.ErrInvalidTransition
	case errors.Is(err, present.ErrNotReserved):
		return errs.ErrInvalidTransition
	case errors.Is(err, present.ErrInvalidChange), errors.Is(err, present.ErrInvalidState):
		return errs.ErrInvalidTransition
	default:
		return errs.Mark(err, errs.ErrDomainValidation)
	}
}
