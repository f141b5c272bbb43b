package usecase

import (
	"time"

	"shareit/internal/domain/booking"
)

// Read models returned to the handler layer. Nested references are
// denormalized by the repository joins so a view never triggers follow-up
// lookups.

type ItemRef struct {
	ID   int64
	Name string
}

type UserRef struct {
	ID   int64
	Name string
}

type BookingView struct {
	ID     int64
	Start  time.Time
	End    time.Time
	Status booking.Status
	Item   ItemRef
	Booker UserRef
}

// BookingShortView is the last/next enrichment attached to item views.
type BookingShortView struct {
	ID       int64
	BookerID int64
	Start    time.Time
	End      time.Time
}

type CommentView struct {
	ID         int64
	ItemID     int64
	Text       string
	AuthorName string
	Created    time.Time
}

type ItemView struct {
	ID          int64
	OwnerID     int64
	Name        string
	Description string
	Available   bool
	RequestID   *int64
	LastBooking *BookingShortView
	NextBooking *BookingShortView
	Comments    []CommentView
}

type UserView struct {
	ID    int64
	Name  string
	Email string
}

type RequestView struct {
	ID          int64
	Description string
	Created     time.Time
	Items       []ItemAnswer
}

// ItemAnswer is an item listed in response to a request.
type ItemAnswer struct {
	ID          int64
	Name        string
	Description string
	Available   bool
	RequestID   int64
	OwnerID     int64
}

func shortView(s *booking.Short) *BookingShortView {
	if s == nil {
		return nil
	}
	return &BookingShortView{
		ID:       s.ID,
		BookerID: s.BookerID,
		Start:    s.Start,
		End:      s.End,
	}
}
