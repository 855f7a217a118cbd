package present

// State encodes the reservation lifecycle of a wish-list entry. The numeric
// values are part of the wire contract (0/1/2) and the persisted column.
type State int

const (
	StateAvailable State = 0
	StateReserved  State = 1
	StateGiven     State = 2
)

func (s State) String() string {
	switch s {
	case StateAvailable:
		return "available"
	case StateReserved:
		return "reserved"
	case StateGiven:
		return "given"
	default:
		return "unknown"
	}
}

func (s State) IsValid() bool {
	switch s {
	case StateAvailable, StateReserved, StateGiven:
		return true
	default:
		return false
	}
}

// Reserved states carry a reserver identity; available does not.
func (s State) RequiresReserver() bool {
	return s == StateReserved || s == StateGiven
}
