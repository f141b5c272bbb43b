package usecase

import (
	"context"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/config"
	"shareit/internal/pkg/errs"
	"shareit/internal/pkg/paging"
	"shareit/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrUserNotFound    = errs.New("user not found")
	ErrItemNotFound    = errs.New("item not found")
	ErrBookingNotFound = errs.New("booking not found")
	ErrItemUnavailable = errs.New("item is not available for booking")
	// Booking one's own item is reported as a lookup failure, not a denial,
	// so owners learn nothing from probing.
	ErrOwnItemBooking = errs.New("owner cannot book own item")
	ErrAlreadyDecided = errs.New("booking has already been decided")
	ErrBookingOverlap = errs.New("booking overlaps an existing one")
	ErrInvalidPeriod  = errs.New("booking start must be before end")
	ErrStorageFailure = errs.New("storage operation failed")
)

type CreateBookingParams struct {
	ItemID int64
	Start  time.Time
	End    time.Time
}

type BookingUsecase interface {
	Create(ctx context.Context, bookerID int64, params CreateBookingParams) (*BookingView, error)
	Approve(ctx context.Context, ownerID, bookingID int64, approved bool) (*BookingView, error)
	Get(ctx context.Context, userID, bookingID int64) (*BookingView, error)
	ListForBooker(ctx context.Context, bookerID int64, state booking.StateFilter, page paging.Page) ([]BookingView, error)
	ListForOwner(ctx context.Context, ownerID int64, state booking.StateFilter, page paging.Page) ([]BookingView, error)
}

type bookingUsecase struct {
	bookings BookingRepository
	items    ItemRepository
	users    UserRepository
	db       *pgxpool.Pool
	clock    clock.Clock
	cfg      config.BookingConfig
}

func NewBookingUsecase(
	bookings BookingRepository,
	items ItemRepository,
	users UserRepository,
	db *pgxpool.Pool,
	clk clock.Clock,
	cfg config.BookingConfig,
) BookingUsecase {
	return &bookingUsecase{
		bookings: bookings,
		items:    items,
		users:    users,
		db:       db,
		clock:    clk,
		cfg:      cfg,
	}
}

func (uc *bookingUsecase) Create(ctx context.Context, bookerID int64, params CreateBookingParams) (*BookingView, error) {
	if _, err := uc.users.FindByID(ctx, bookerID); err != nil {
		return nil, markLookup(err, ErrUserNotFound)
	}

	itm, err := uc.items.FindByID(ctx, params.ItemID)
	if err != nil {
		return nil, markLookup(err, ErrItemNotFound)
	}
	if !itm.Available() {
		return nil, ErrItemUnavailable
	}
	if itm.IsOwnedBy(bookerID) {
		return nil, ErrOwnItemBooking
	}

	bkg, err := booking.NewBooking(params.ItemID, bookerID, params.Start, params.End)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidPeriod)
	}

	if uc.cfg.RejectOverlap {
		overlaps, err := uc.bookings.ExistsOverlapping(ctx, params.ItemID, params.Start, params.End)
		if err != nil {
			return nil, errs.Mark(err, ErrStorageFailure)
		}
		if overlaps {
			return nil, ErrBookingOverlap
		}
	}

	return shared.RunInTx(ctx, uc.db, func(q infra.Querier) (*BookingView, error) {
		id, err := uc.bookings.Create(ctx, q, bkg)
		if err != nil {
			return nil, errs.Mark(err, ErrStorageFailure)
		}
		view, err := uc.bookings.FindViewForUser(ctx, q, id, bookerID)
		if err != nil {
			return nil, errs.Mark(err, ErrStorageFailure)
		}
		return view, nil
	})
}

func (uc *bookingUsecase) Approve(ctx context.Context, ownerID, bookingID int64, approved bool) (*BookingView, error) {
	return shared.RunInTx(ctx, uc.db, func(q infra.Querier) (*BookingView, error) {
		bkg, err := uc.bookings.FindByIDForOwner(ctx, q, bookingID, ownerID)
		if err != nil {
			return nil, markLookup(err, ErrBookingNotFound)
		}

		if err := bkg.Decide(approved); err != nil {
			return nil, errs.Mark(err, ErrAlreadyDecided)
		}

		if err := uc.bookings.UpdateStatus(ctx, q, bookingID, bkg.Status()); err != nil {
			return nil, errs.Mark(err, ErrStorageFailure)
		}

		view, err := uc.bookings.FindViewForUser(ctx, q, bookingID, ownerID)
		if err != nil {
			return nil, errs.Mark(err, ErrStorageFailure)
		}
		return view, nil
	})
}

func (uc *bookingUsecase) Get(ctx context.Context, userID, bookingID int64) (*BookingView, error) {
	view, err := uc.bookings.FindViewForUser(ctx, uc.db, bookingID, userID)
	if err != nil {
		return nil, markLookup(err, ErrBookingNotFound)
	}
	return view, nil
}

func (uc *bookingUsecase) ListForBooker(ctx context.Context, bookerID int64, state booking.StateFilter, page paging.Page) ([]BookingView, error) {
	if _, err := uc.users.FindByID(ctx, bookerID); err != nil {
		return nil, markLookup(err, ErrUserNotFound)
	}
	views, err := uc.bookings.ListForBooker(ctx, bookerID, state, uc.clock.Now(), page)
	if err != nil {
		return nil, errs.Mark(err, ErrStorageFailure)
	}
	return views, nil
}

func (uc *bookingUsecase) ListForOwner(ctx context.Context, ownerID int64, state booking.StateFilter, page paging.Page) ([]BookingView, error) {
	if _, err := uc.users.FindByID(ctx, ownerID); err != nil {
		return nil, markLookup(err, ErrUserNotFound)
	}
	views, err := uc.bookings.ListForOwner(ctx, ownerID, state, uc.clock.Now(), page)
	if err != nil {
		return nil, errs.Mark(err, ErrStorageFailure)
	}
	return views, nil
}

// markLookup maps a repository miss to the domain sentinel and anything
// else to a storage failure.
func markLookup(err error, notFound error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, notFound)
	}
	return errs.Mark(err, ErrStorageFailure)
}
