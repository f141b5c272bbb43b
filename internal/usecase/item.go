package usecase

import (
	"context"
	"strings"

	"shareit/internal/domain/booking"
	"shareit/internal/domain/comment"
	"shareit/internal/domain/item"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/pkg/paging"
)

var (
	ErrNotItemOwner = errs.New("only the owner can modify the item")
	// Commenting requires a completed approved booking of the item.
	ErrCommentNotAllowed = errs.New("no completed booking of this item")
)

type CreateItemParams struct {
	Name        string
	Description string
	Available   bool
	RequestID   *int64
}

type UpdateItemParams struct {
	Name        *string
	Description *string
	Available   *bool
}

type ItemUsecase interface {
	Create(ctx context.Context, ownerID int64, params CreateItemParams) (*ItemView, error)
	Update(ctx context.Context, ownerID, itemID int64, params UpdateItemParams) (*ItemView, error)
	Get(ctx context.Context, userID, itemID int64) (*ItemView, error)
	ListForOwner(ctx context.Context, ownerID int64, page paging.Page) ([]ItemView, error)
	Search(ctx context.Context, text string, page paging.Page) ([]ItemView, error)
	Delete(ctx context.Context, userID, itemID int64) error
	CreateComment(ctx context.Context, authorID, itemID int64, text string) (*CommentView, error)
}

type itemUsecase struct {
	items    ItemRepository
	users    UserRepository
	bookings BookingRepository
	comments CommentRepository
	clock    clock.Clock
}

func NewItemUsecase(
	items ItemRepository,
	users UserRepository,
	bookings BookingRepository,
	comments CommentRepository,
	clk clock.Clock,
) ItemUsecase {
	return &itemUsecase{
		items:    items,
		users:    users,
		bookings: bookings,
		comments: comments,
		clock:    clk,
	}
}

func (uc *itemUsecase) Create(ctx context.Context, ownerID int64, params CreateItemParams) (*ItemView, error) {
	if _, err := uc.users.FindByID(ctx, ownerID); err != nil {
		return nil, markLookup(err, ErrUserNotFound)
	}

	itm, err := item.NewItem(ownerID, params.Name, params.Description, params.Available, params.RequestID)
	if err != nil {
		return nil, err
	}

	created, err := uc.items.Create(ctx, itm)
	if err != nil {
		return nil, errs.Mark(err, ErrStorageFailure)
	}
	return plainItemView(created), nil
}

func (uc *itemUsecase) Update(ctx context.Context, ownerID, itemID int64, params UpdateItemParams) (*ItemView, error) {
	if _, err := uc.users.FindByID(ctx, ownerID); err != nil {
		return nil, markLookup(err, ErrUserNotFound)
	}
	itm, err := uc.items.FindByID(ctx, itemID)
	if err != nil {
		return nil, markLookup(err, ErrItemNotFound)
	}
	if !itm.IsOwnedBy(ownerID) {
		return nil, ErrNotItemOwner
	}

	if err := itm.ApplyPatch(params.Name, params.Description, params.Available); err != nil {
		return nil, err
	}

	if err := uc.items.Update(ctx, itm); err != nil {
		return nil, errs.Mark(err, ErrStorageFailure)
	}
	return plainItemView(itm), nil
}

// Get returns the item with its comments; last/next booking enrichment is
// owner-only.
func (uc *itemUsecase) Get(ctx context.Context, userID, itemID int64) (*ItemView, error) {
	itm, err := uc.items.FindByID(ctx, itemID)
	if err != nil {
		return nil, markLookup(err, ErrItemNotFound)
	}

	comments, err := uc.comments.FindAllByItem(ctx, itemID)
	if err != nil {
		return nil, errs.Mark(err, ErrStorageFailure)
	}

	view := plainItemView(itm)
	view.Comments = comments

	if !itm.IsOwnedBy(userID) {
		return view, nil
	}

	shorts, err := uc.bookings.ApprovedShortsByItem(ctx, itemID)
	if err != nil {
		return nil, errs.Mark(err, ErrStorageFailure)
	}
	projection := booking.ProjectItem(shorts, uc.clock.Now())
	view.LastBooking = shortView(projection.Last)
	view.NextBooking = shortView(projection.Next)
	return view, nil
}

func (uc *itemUsecase) ListForOwner(ctx context.Context, ownerID int64, page paging.Page) ([]ItemView, error) {
	if _, err := uc.users.FindByID(ctx, ownerID); err != nil {
		return nil, markLookup(err, ErrUserNotFound)
	}

	items, err := uc.items.FindAllByOwner(ctx, ownerID, page)
	if err != nil {
		return nil, errs.Mark(err, ErrStorageFailure)
	}

	shorts, err := uc.bookings.ApprovedShortsByOwnerItems(ctx, ownerID)
	if err != nil {
		return nil, errs.Mark(err, ErrStorageFailure)
	}
	projections := booking.ProjectItems(shorts, uc.clock.Now())

	comments, err := uc.comments.FindAllByOwnerItems(ctx, ownerID)
	if err != nil {
		return nil, errs.Mark(err, ErrStorageFailure)
	}
	commentsByItem := make(map[int64][]CommentView)
	for _, c := range comments {
		commentsByItem[c.ItemID] = append(commentsByItem[c.ItemID], c)
	}

	views := make([]ItemView, 0, len(items))
	for _, itm := range items {
		view := plainItemView(itm)
		projection := projections[itm.ID()]
		view.LastBooking = shortView(projection.Last)
		view.NextBooking = shortView(projection.Next)
		view.Comments = commentsByItem[itm.ID()]
		views = append(views, *view)
	}
	return views, nil
}

func (uc *itemUsecase) Search(ctx context.Context, text string, page paging.Page) ([]ItemView, error) {
	if strings.TrimSpace(text) == "" {
		return []ItemView{}, nil
	}
	items, err := uc.items.Search(ctx, text, page)
	if err != nil {
		return nil, errs.Mark(err, ErrStorageFailure)
	}
	views := make([]ItemView, 0, len(items))
	for _, itm := range items {
		views = append(views, *plainItemView(itm))
	}
	return views, nil
}

func (uc *itemUsecase) Delete(ctx context.Context, userID, itemID int64) error {
	if _, err := uc.users.FindByID(ctx, userID); err != nil {
		return markLookup(err, ErrUserNotFound)
	}
	itm, err := uc.items.FindByID(ctx, itemID)
	if err != nil {
		return markLookup(err, ErrItemNotFound)
	}
	if !itm.IsOwnedBy(userID) {
		return ErrNotItemOwner
	}
	if err := uc.items.Delete(ctx, itemID); err != nil {
		return errs.Mark(err, ErrStorageFailure)
	}
	return nil
}

func (uc *itemUsecase) CreateComment(ctx context.Context, authorID, itemID int64, text string) (*CommentView, error) {
	if _, err := uc.users.FindByID(ctx, authorID); err != nil {
		return nil, markLookup(err, ErrUserNotFound)
	}
	if _, err := uc.items.FindByID(ctx, itemID); err != nil {
		return nil, markLookup(err, ErrItemNotFound)
	}

	now := uc.clock.Now()
	eligible, err := uc.bookings.ExistsCompleted(ctx, itemID, authorID, now)
	if err != nil {
		return nil, errs.Mark(err, ErrStorageFailure)
	}
	if !eligible {
		return nil, ErrCommentNotAllowed
	}

	cmt, err := comment.NewComment(itemID, authorID, text, now)
	if err != nil {
		return nil, err
	}

	view, err := uc.comments.Create(ctx, cmt)
	if err != nil {
		return nil, errs.Mark(err, ErrStorageFailure)
	}
	return view, nil
}

func plainItemView(itm *item.Item) *ItemView {
	return &ItemView{
		ID:          itm.ID(),
		OwnerID:     itm.OwnerID(),
		Name:        itm.Name(),
		Description: itm.Description(),
		Available:   itm.Available(),
		RequestID:   itm.RequestID(),
	}
}
