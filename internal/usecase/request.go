package usecase

import (
	"context"

	"shareit/internal/domain/item"
	"shareit/internal/domain/request"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/pkg/paging"
)

var ErrRequestNotFound = errs.New("request not found")

type RequestUsecase interface {
	Create(ctx context.Context, requestorID int64, description string) (*RequestView, error)
	ListOwn(ctx context.Context, requestorID int64) ([]RequestView, error)
	ListOthers(ctx context.Context, requestorID int64, page paging.Page) ([]RequestView, error)
	Get(ctx context.Context, userID, requestID int64) (*RequestView, error)
}

type requestUsecase struct {
	requests RequestRepository
	items    ItemRepository
	users    UserRepository
	clock    clock.Clock
}

func NewRequestUsecase(
	requests RequestRepository,
	items ItemRepository,
	users UserRepository,
	clk clock.Clock,
) RequestUsecase {
	return &requestUsecase{
		requests: requests,
		items:    items,
		users:    users,
		clock:    clk,
	}
}

func (uc *requestUsecase) Create(ctx context.Context, requestorID int64, description string) (*RequestView, error) {
	if _, err := uc.users.FindByID(ctx, requestorID); err != nil {
		return nil, markLookup(err, ErrUserNotFound)
	}

	req, err := request.NewRequest(requestorID, description, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	created, err := uc.requests.Create(ctx, req)
	if err != nil {
		return nil, errs.Mark(err, ErrStorageFailure)
	}
	return &RequestView{
		ID:          created.ID(),
		Description: created.Description(),
		Created:     created.Created(),
		Items:       []ItemAnswer{},
	}, nil
}

func (uc *requestUsecase) ListOwn(ctx context.Context, requestorID int64) ([]RequestView, error) {
	if _, err := uc.users.FindByID(ctx, requestorID); err != nil {
		return nil, markLookup(err, ErrUserNotFound)
	}
	requests, err := uc.requests.FindAllByRequestor(ctx, requestorID)
	if err != nil {
		return nil, errs.Mark(err, ErrStorageFailure)
	}
	return uc.withItems(ctx, requests)
}

func (uc *requestUsecase) ListOthers(ctx context.Context, requestorID int64, page paging.Page) ([]RequestView, error) {
	if _, err := uc.users.FindByID(ctx, requestorID); err != nil {
		return nil, markLookup(err, ErrUserNotFound)
	}
	requests, err := uc.requests.FindAllOthers(ctx, requestorID, page)
	if err != nil {
		return nil, errs.Mark(err, ErrStorageFailure)
	}
	return uc.withItems(ctx, requests)
}

func (uc *requestUsecase) Get(ctx context.Context, userID, requestID int64) (*RequestView, error) {
	if _, err := uc.users.FindByID(ctx, userID); err != nil {
		return nil, markLookup(err, ErrUserNotFound)
	}
	req, err := uc.requests.FindByID(ctx, requestID)
	if err != nil {
		return nil, markLookup(err, ErrRequestNotFound)
	}
	views, err := uc.withItems(ctx, []*request.Request{req})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// withItems attaches the items answering each request via one grouped
// fetch.
func (uc *requestUsecase) withItems(ctx context.Context, requests []*request.Request) ([]RequestView, error) {
	ids := make([]int64, 0, len(requests))
	for _, req := range requests {
		ids = append(ids, req.ID())
	}

	answersByRequest := make(map[int64][]ItemAnswer)
	if len(ids) > 0 {
		items, err := uc.items.FindAllByRequestIDs(ctx, ids)
		if err != nil {
			return nil, errs.Mark(err, ErrStorageFailure)
		}
		for _, itm := range items {
			answer := itemAnswer(itm)
			answersByRequest[answer.RequestID] = append(answersByRequest[answer.RequestID], answer)
		}
	}

	views := make([]RequestView, 0, len(requests))
	for _, req := range requests {
		answers := answersByRequest[req.ID()]
		if answers == nil {
			answers = []ItemAnswer{}
		}
		views = append(views, RequestView{
			ID:          req.ID(),
			Description: req.Description(),
			Created:     req.Created(),
			Items:       answers,
		})
	}
	return views, nil
}

func itemAnswer(itm *item.Item) ItemAnswer {
	var requestID int64
	if itm.RequestID() != nil {
		requestID = *itm.RequestID()
	}
	return ItemAnswer{
		ID:          itm.ID(),
		Name:        itm.Name(),
		Description: itm.Description(),
		Available:   itm.Available(),
		RequestID:   requestID,
		OwnerID:     itm.OwnerID(),
	}
}
