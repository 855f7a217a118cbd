package present

import (
	"errors"
	"time"
)

var (
	ErrEmptyName     = errors.New("present name is empty")
	ErrNameTooLong   = errors.New("present name is too long")
	ErrNegativePrice = errors.New("price cannot be negative")
	ErrOwnPresent    = errors.New("owner cannot act on own present")
	ErrInvalidState  = errors.New("invalid present state")
	ErrInvalidChange = errors.New("state change not allowed from current state")
	ErrNotReserver   = errors.New("requester is not the current reserver")
	ErrNotReserved   = errors.New("present is not reserved")
)

// Present is a wish-list entry. The owner wants the gift; other family members
// move it through available -> reserved -> given without the owner seeing who.
type Present struct {
	id          int64
	ownerID     int64
	name        Name
	description *string
	link        *string
	price       Price
	image       *string
	state       State
	reservedBy  *int64
	bought      bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewPresent(ownerID int64, name Name, description, link *string, price Price, image *string) *Present {
	return &Present{
		ownerID:     ownerID,
		name:        name,
		description: description,
		link:        link,
		price:       price,
		image:       image,
		state:       StateAvailable,
	}
}

func ReconstructPresent(
	id, ownerID int64,
	name Name,
	description, link *string,
	price Price,
	image *string,
	state State,
	reservedBy *int64,
	bought bool,
	createdAt, updatedAt time.Time,
) *Present {
	return &Present{
		id:          id,
		ownerID:     ownerID,
		name:        name,
		description: description,
		link:        link,
		price:       price,
		image:       image,
		state:       state,
		reservedBy:  reservedBy,
		bought:      bought,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Transition validates and applies a state change requested by requester.
// Allowed moves:
//
//	available -> reserved  any requester except the owner
//	reserved  -> available current reserver only
//	reserved  -> given     current reserver only
//	given     -> reserved  current reserver only
//
// Requesting the current state or skipping a step is rejected. On success the
// reserver is cleared when returning to available, otherwise set to requester.
func (p *Present) Transition(requester int64, to State) error {
	if requester == p.ownerID {
		return ErrOwnPresent
	}
	if !to.IsValid() {
		return ErrInvalidState
	}
	if to == p.state {
		return ErrInvalidChange
	}

	switch {
	case p.state == StateAvailable && to == StateReserved:
		// free to take
	case p.state == StateReserved && (to == StateAvailable || to == StateGiven):
		if !p.IsReservedBy(requester) {
			return ErrNotReserver
		}
	case p.state == StateGiven && to == StateReserved:
		if !p.IsReservedBy(requester) {
			return ErrNotReserver
		}
	default:
		// available <-> given would skip the reserved step
		return ErrInvalidChange
	}

	p.state = to
	if to == StateAvailable {
		p.reservedBy = nil
	} else {
		reserver := requester
		p.reservedBy = &reserver
	}
	return nil
}

// SetBought toggles the bought flag without touching state or reserver. Only
// the current reserver may do this, and only while the present is reserved or
// given.
func (p *Present) SetBought(requester int64, bought bool) error {
	if requester == p.ownerID {
		return ErrOwnPresent
	}
	if !p.IsReservedBy(requester) {
		return ErrNotReserver
	}
	if !p.state.RequiresReserver() {
		return ErrNotReserved
	}
	p.bought = bought
	return nil
}

func (p *Present) IsReservedBy(userID int64) bool {
	return p.reservedBy != nil && *p.reservedBy == userID
}

func (p *Present) ID() int64            { return p.id }
func (p *Present) OwnerID() int64       { return p.ownerID }
func (p *Present) Name() Name           { return p.name }
func (p *Present) Description() *string { return p.description }
func (p *Present) Link() *string        { return p.link }
func (p *Present) Price() Price         { return p.price }
func (p *Present) Image() *string       { return p.image }
func (p *Present) State() State         { return p.state }
func (p *Present) ReservedBy() *int64   { return p.reservedBy }
func (p *Present) Bought() bool         { return p.bought }
func (p *Present) CreatedAt() time.Time { return p.createdAt }
func (p *Present) UpdatedAt() time.Time { return p.updatedAt }
