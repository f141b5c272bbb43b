package repository

import (
	"context"
	"time"

	"shareit/internal/domain/request"
	"shareit/internal/infra"
	"shareit/internal/pkg/paging"

	"github.com/jackc/pgx/v5/pgxpool"
)

type RequestRepository struct {
	db *pgxpool.Pool
}

func NewRequestRepository(db *pgxpool.Pool) *RequestRepository {
	return &RequestRepository{db: db}
}

func (r *RequestRepository) Create(ctx context.Context, req *request.Request) (*request.Request, error) {
	const query = `
		INSERT INTO requests (description, requestor_id, created)
		VALUES ($1, $2, $3)
		RETURNING id`

	var id int64
	err := r.db.QueryRow(ctx, query, req.Description(), req.RequestorID(), req.Created()).Scan(&id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create request", err)
	}
	return request.Reconstruct(id, req.RequestorID(), req.Description(), req.Created()), nil
}

func (r *RequestRepository) FindByID(ctx context.Context, id int64) (*request.Request, error) {
	const query = `SELECT id, requestor_id, description, created FROM requests WHERE id = $1`

	var (
		requestID, requestorID int64
		description            string
		created                time.Time
	)
	err := r.db.QueryRow(ctx, query, id).Scan(&requestID, &requestorID, &description, &created)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find request by id", err)
	}
	return request.Reconstruct(requestID, requestorID, description, created), nil
}

func (r *RequestRepository) FindAllByRequestor(ctx context.Context, requestorID int64) ([]*request.Request, error) {
	const query = `
		SELECT id, requestor_id, description, created
		FROM requests
		WHERE requestor_id = $1
		ORDER BY created DESC`

	return r.queryRequests(ctx, query, requestorID)
}

func (r *RequestRepository) FindAllOthers(ctx context.Context, requestorID int64, page paging.Page) ([]*request.Request, error) {
	const query = `
		SELECT id, requestor_id, description, created
		FROM requests
		WHERE requestor_id <> $1
		ORDER BY created DESC
		LIMIT $2 OFFSET $3`

	return r.queryRequests(ctx, query, requestorID, page.Limit(), page.Offset())
}

func (r *RequestRepository) queryRequests(ctx context.Context, query string, args ...any) ([]*request.Request, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query requests", err)
	}
	defer rows.Close()

	requests := []*request.Request{}
	for rows.Next() {
		var (
			id, requestorID int64
			description     string
			created         time.Time
		)
		if err := rows.Scan(&id, &requestorID, &description, &created); err != nil {
			return nil, infra.WrapRepoErr("failed to scan request row", err)
		}
		requests = append(requests, request.Reconstruct(id, requestorID, description, created))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate request rows", err)
	}
	return requests, nil
}
