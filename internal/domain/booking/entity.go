package booking

import (
	"time"
)

type Booking struct {
	id       int64
	itemID   int64
	bookerID int64
	status   Status
	start    time.Time
	end      time.Time
}

// NewBooking builds a WAITING booking. The period invariant is validated
// here once and never re-checked afterwards.
func NewBooking(itemID, bookerID int64, start, end time.Time) (*Booking, error) {
	if !start.Before(end) {
		return nil, ErrInvalidPeriod
	}
	return &Booking{
		itemID:   itemID,
		bookerID: bookerID,
		status:   StatusWaiting,
		start:    start,
		end:      end,
	}, nil
}

func Reconstruct(id, itemID, bookerID int64, status Status, start, end time.Time) *Booking {
	return &Booking{
		id:       id,
		itemID:   itemID,
		bookerID: bookerID,
		status:   status,
		start:    start,
		end:      end,
	}
}

// Decide moves a WAITING booking to its terminal status. Re-deciding an
// APPROVED or REJECTED booking fails the same way regardless of direction.
func (b *Booking) Decide(approved bool) error {
	if b.status != StatusWaiting {
		return ErrAlreadyDecided
	}
	if approved {
		b.status = StatusApproved
	} else {
		b.status = StatusRejected
	}
	return nil
}

func (b *Booking) IsOwnedBy(bookerID int64) bool {
	return b.bookerID == bookerID
}

func (b *Booking) ID() int64        { return b.id }
func (b *Booking) ItemID() int64    { return b.itemID }
func (b *Booking) BookerID() int64  { return b.bookerID }
func (b *Booking) Status() Status   { return b.status }
func (b *Booking) Start() time.Time { return b.start }
func (b *Booking) End() time.Time   { return b.end }
