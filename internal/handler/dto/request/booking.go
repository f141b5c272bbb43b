package request

import (
	"errors"
	"time"
)

var (
	ErrPeriodOrder  = errors.New("start must be before end")
	ErrPeriodInPast = errors.New("booking period must be in the future")
)

type CreateBookingRequest struct {
	ItemID int64     `json:"itemId" binding:"required"`
	Start  time.Time `json:"start" binding:"required"`
	End    time.Time `json:"end" binding:"required"`
}

// Validate enforces the edge-layer rules: a well-ordered period lying
// entirely in the future. The core re-checks the ordering defensively.
func (r CreateBookingRequest) Validate(now time.Time) error {
	if !r.Start.Before(r.End) {
		return ErrPeriodOrder
	}
	if !r.Start.After(now) {
		return ErrPeriodInPast
	}
	return nil
}
