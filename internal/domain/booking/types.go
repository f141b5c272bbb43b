package booking

import "errors"

var (
	ErrInvalidPeriod  = errors.New("booking start must be before end")
	ErrAlreadyDecided = errors.New("booking has already been decided")
	ErrUnknownState   = errors.New("unknown booking state")
)

// Status is the decision state of a booking. The only legal transition is
// WAITING to one of the terminals; APPROVED and REJECTED never change.
type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// StateFilter is the query-time bucket a caller asks for when listing
// bookings. ALL/CURRENT/PAST/FUTURE classify against the clock, WAITING and
// REJECTED match the decision status. The set is closed: APPROVED is not a
// selectable filter.
type StateFilter string

const (
	StateAll      StateFilter = "ALL"
	StateCurrent  StateFilter = "CURRENT"
	StatePast     StateFilter = "PAST"
	StateFuture   StateFilter = "FUTURE"
	StateWaiting  StateFilter = "WAITING"
	StateRejected StateFilter = "REJECTED"
)

// ParseStateFilter accepts the exact case-sensitive wire strings.
func ParseStateFilter(s string) (StateFilter, error) {
	switch StateFilter(s) {
	case StateAll, StateCurrent, StatePast, StateFuture, StateWaiting, StateRejected:
		return StateFilter(s), nil
	default:
		return "", ErrUnknownState
	}
}
