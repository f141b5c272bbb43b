package repository

import (
	"context"
	"strconv"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/pkg/paging"
	"shareit/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, db infra.Querier, b *booking.Booking) (int64, error) {
	const query = `
		INSERT INTO bookings (item_id, booker_id, status, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id int64
	err := db.QueryRow(ctx, query, b.ItemID(), b.BookerID(), string(b.Status()), b.Start(), b.End()).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create booking", err)
	}
	return id, nil
}

// FindByIDForOwner locks the row for the read-modify-write of an approval.
// The ownership predicate keeps bookings of other owners indistinguishable
// from missing ones.
func (r *BookingRepository) FindByIDForOwner(ctx context.Context, db infra.Querier, id, ownerID int64) (*booking.Booking, error) {
	const query = `
		SELECT b.id, b.item_id, b.booker_id, b.status, b.start_date, b.end_date
		FROM bookings b
		JOIN items i ON i.id = b.item_id
		WHERE b.id = $1 AND i.owner_id = $2
		FOR UPDATE OF b`

	var (
		bookingID, itemID, bookerID int64
		status                      string
		start, end                  time.Time
	)
	err := db.QueryRow(ctx, query, id, ownerID).Scan(&bookingID, &itemID, &bookerID, &status, &start, &end)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found for owner", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking for owner", err)
	}
	return booking.Reconstruct(bookingID, itemID, bookerID, booking.Status(status), start, end), nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, db infra.Querier, id int64, status booking.Status) error {
	const query = `UPDATE bookings SET status = $2 WHERE id = $1`

	tag, err := db.Exec(ctx, query, id, string(status))
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking vanished during status update", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) FindViewForUser(ctx context.Context, db infra.Querier, id, userID int64) (*usecase.BookingView, error) {
	const query = `
		SELECT b.id, b.start_date, b.end_date, b.status,
		       i.id, i.name,
		       u.id, u.name
		FROM bookings b
		JOIN items i ON i.id = b.item_id
		JOIN users u ON u.id = b.booker_id
		WHERE b.id = $1 AND (b.booker_id = $2 OR i.owner_id = $2)`

	var (
		view   usecase.BookingView
		status string
	)
	err := db.QueryRow(ctx, query, id, userID).Scan(
		&view.ID, &view.Start, &view.End, &status,
		&view.Item.ID, &view.Item.Name,
		&view.Booker.ID, &view.Booker.Name,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found for user", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking view", err)
	}
	view.Status = booking.Status(status)
	return &view, nil
}

func (r *BookingRepository) ListForBooker(ctx context.Context, bookerID int64, state booking.StateFilter, now time.Time, page paging.Page) ([]usecase.BookingView, error) {
	return r.list(ctx, "b.booker_id = $1", bookerID, state, now, page)
}

func (r *BookingRepository) ListForOwner(ctx context.Context, ownerID int64, state booking.StateFilter, now time.Time, page paging.Page) ([]usecase.BookingView, error) {
	return r.list(ctx, "i.owner_id = $1", ownerID, state, now, page)
}

// list applies the temporal/status bucket for the caller's side of the
// booking. CURRENT is strictly exclusive at both boundaries; results are
// always ordered by start descending and paged block-aligned.
func (r *BookingRepository) list(ctx context.Context, partyPredicate string, partyID int64, state booking.StateFilter, now time.Time, page paging.Page) ([]usecase.BookingView, error) {
	query := `
		SELECT b.id, b.start_date, b.end_date, b.status,
		       i.id, i.name,
		       u.id, u.name
		FROM bookings b
		JOIN items i ON i.id = b.item_id
		JOIN users u ON u.id = b.booker_id
		WHERE ` + partyPredicate

	args := []any{partyID}

	switch state {
	case booking.StateAll:
		// no extra predicate
	case booking.StateCurrent:
		query += " AND b.start_date < $2 AND b.end_date > $2"
		args = append(args, now)
	case booking.StatePast:
		query += " AND b.end_date < $2"
		args = append(args, now)
	case booking.StateFuture:
		query += " AND b.start_date > $2"
		args = append(args, now)
	case booking.StateWaiting, booking.StateRejected:
		query += " AND b.status = $2"
		args = append(args, string(state))
	}

	query += " ORDER BY b.start_date DESC LIMIT $" + strconv.Itoa(len(args)+1) + " OFFSET $" + strconv.Itoa(len(args)+2)
	args = append(args, page.Limit(), page.Offset())

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	views := []usecase.BookingView{}
	for rows.Next() {
		var (
			view   usecase.BookingView
			status string
		)
		if err := rows.Scan(
			&view.ID, &view.Start, &view.End, &status,
			&view.Item.ID, &view.Item.Name,
			&view.Booker.ID, &view.Booker.Name,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		view.Status = booking.Status(status)
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return views, nil
}

func (r *BookingRepository) ApprovedShortsByItem(ctx context.Context, itemID int64) ([]booking.Short, error) {
	const query = `
		SELECT b.id, b.item_id, b.booker_id, b.start_date, b.end_date
		FROM bookings b
		WHERE b.item_id = $1 AND b.status = 'APPROVED'`

	return r.shorts(ctx, query, itemID)
}

func (r *BookingRepository) ApprovedShortsByOwnerItems(ctx context.Context, ownerID int64) ([]booking.Short, error) {
	const query = `
		SELECT b.id, b.item_id, b.booker_id, b.start_date, b.end_date
		FROM bookings b
		JOIN items i ON i.id = b.item_id
		WHERE i.owner_id = $1 AND b.status = 'APPROVED'
		ORDER BY b.start_date DESC`

	return r.shorts(ctx, query, ownerID)
}

func (r *BookingRepository) shorts(ctx context.Context, query string, arg int64) ([]booking.Short, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query booking shorts", err)
	}
	defer rows.Close()

	shorts := []booking.Short{}
	for rows.Next() {
		var s booking.Short
		if err := rows.Scan(&s.ID, &s.ItemID, &s.BookerID, &s.Start, &s.End); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking short", err)
		}
		shorts = append(shorts, s)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking shorts", err)
	}
	return shorts, nil
}

func (r *BookingRepository) ExistsCompleted(ctx context.Context, itemID, bookerID int64, before time.Time) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE item_id = $1 AND booker_id = $2
			  AND status = 'APPROVED' AND end_date < $3
		)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, itemID, bookerID, before).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check completed booking", err)
	}
	return exists, nil
}

func (r *BookingRepository) ExistsOverlapping(ctx context.Context, itemID int64, start, end time.Time) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE item_id = $1 AND status IN ('WAITING', 'APPROVED')
			  AND start_date < $3 AND end_date > $2
		)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, itemID, start, end).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check overlapping booking", err)
	}
	return exists, nil
}
