package usecase

import (
	"context"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/domain/comment"
	"shareit/internal/domain/item"
	"shareit/internal/domain/request"
	"shareit/internal/domain/user"
	"shareit/internal/infra"
	"shareit/internal/pkg/paging"
)

// Repository ports implemented by internal/infra/repository. Write-path
// methods accept an infra.Querier so a usecase transaction can span several
// calls; read paths run on the repository's own pool.

type UserRepository interface {
	Create(ctx context.Context, u *user.User) (*user.User, error)
	Update(ctx context.Context, u *user.User) error
	FindByID(ctx context.Context, id int64) (*user.User, error)
	FindAll(ctx context.Context) ([]*user.User, error)
	Delete(ctx context.Context, id int64) error
}

type ItemRepository interface {
	Create(ctx context.Context, i *item.Item) (*item.Item, error)
	Update(ctx context.Context, i *item.Item) error
	FindByID(ctx context.Context, id int64) (*item.Item, error)
	FindAllByOwner(ctx context.Context, ownerID int64, page paging.Page) ([]*item.Item, error)
	Search(ctx context.Context, text string, page paging.Page) ([]*item.Item, error)
	FindAllByRequestIDs(ctx context.Context, requestIDs []int64) ([]*item.Item, error)
	Delete(ctx context.Context, id int64) error
}

type BookingRepository interface {
	Create(ctx context.Context, db infra.Querier, b *booking.Booking) (int64, error)
	// FindByIDForOwner fetches by id AND item ownership in one predicate so
	// bookings of other owners are indistinguishable from absent ones.
	FindByIDForOwner(ctx context.Context, db infra.Querier, id, ownerID int64) (*booking.Booking, error)
	UpdateStatus(ctx context.Context, db infra.Querier, id int64, status booking.Status) error
	// FindViewForUser is visible to the booker and the item owner only.
	FindViewForUser(ctx context.Context, db infra.Querier, id, userID int64) (*BookingView, error)
	ListForBooker(ctx context.Context, bookerID int64, state booking.StateFilter, now time.Time, page paging.Page) ([]BookingView, error)
	ListForOwner(ctx context.Context, ownerID int64, state booking.StateFilter, now time.Time, page paging.Page) ([]BookingView, error)
	// ApprovedShortsByItem returns approved bookings of one item, unordered.
	ApprovedShortsByItem(ctx context.Context, itemID int64) ([]booking.Short, error)
	// ApprovedShortsByOwnerItems returns approved bookings across all items
	// of an owner ordered by start descending, the order the batch projector
	// requires.
	ApprovedShortsByOwnerItems(ctx context.Context, ownerID int64) ([]booking.Short, error)
	ExistsCompleted(ctx context.Context, itemID, bookerID int64, before time.Time) (bool, error)
	ExistsOverlapping(ctx context.Context, itemID int64, start, end time.Time) (bool, error)
}

type CommentRepository interface {
	Create(ctx context.Context, c *comment.Comment) (*CommentView, error)
	FindAllByItem(ctx context.Context, itemID int64) ([]CommentView, error)
	FindAllByOwnerItems(ctx context.Context, ownerID int64) ([]CommentView, error)
}

type RequestRepository interface {
	Create(ctx context.Context, r *request.Request) (*request.Request, error)
	FindByID(ctx context.Context, id int64) (*request.Request, error)
	FindAllByRequestor(ctx context.Context, requestorID int64) ([]*request.Request, error)
	FindAllOthers(ctx context.Context, requestorID int64, page paging.Page) ([]*request.Request, error)
}
