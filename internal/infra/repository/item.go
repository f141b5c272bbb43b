package repository

import (
	"context"

	"shareit/internal/domain/item"
	"shareit/internal/infra"
	"shareit/internal/pkg/paging"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ItemRepository struct {
	db *pgxpool.Pool
}

func NewItemRepository(db *pgxpool.Pool) *ItemRepository {
	return &ItemRepository{db: db}
}

const itemColumns = `id, owner_id, name, description, available, request_id`

func (r *ItemRepository) Create(ctx context.Context, i *item.Item) (*item.Item, error) {
	const query = `
		INSERT INTO items (owner_id, name, description, available, request_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id int64
	err := r.db.QueryRow(ctx, query, i.OwnerID(), i.Name(), i.Description(), i.Available(), i.RequestID()).Scan(&id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create item", err)
	}
	return item.Reconstruct(id, i.OwnerID(), i.Name(), i.Description(), i.Available(), i.RequestID()), nil
}

func (r *ItemRepository) Update(ctx context.Context, i *item.Item) error {
	const query = `
		UPDATE items
		SET name = $2, description = $3, available = $4
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, i.ID(), i.Name(), i.Description(), i.Available())
	if err != nil {
		return infra.WrapRepoErr("failed to update item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("item not found for update", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ItemRepository) FindByID(ctx context.Context, id int64) (*item.Item, error) {
	const query = `SELECT ` + itemColumns + ` FROM items WHERE id = $1`

	itm, err := scanItem(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find item by id", err)
	}
	return itm, nil
}

func (r *ItemRepository) FindAllByOwner(ctx context.Context, ownerID int64, page paging.Page) ([]*item.Item, error) {
	const query = `
		SELECT ` + itemColumns + `
		FROM items
		WHERE owner_id = $1
		ORDER BY id
		LIMIT $2 OFFSET $3`

	return r.queryItems(ctx, query, ownerID, page.Limit(), page.Offset())
}

// Search matches available items by name or description, case-insensitive.
// Blank text is handled by the caller and never reaches here.
func (r *ItemRepository) Search(ctx context.Context, text string, page paging.Page) ([]*item.Item, error) {
	const query = `
		SELECT ` + itemColumns + `
		FROM items
		WHERE available = TRUE
		  AND (name ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%')
		ORDER BY id
		LIMIT $2 OFFSET $3`

	return r.queryItems(ctx, query, text, page.Limit(), page.Offset())
}

func (r *ItemRepository) FindAllByRequestIDs(ctx context.Context, requestIDs []int64) ([]*item.Item, error) {
	const query = `
		SELECT ` + itemColumns + `
		FROM items
		WHERE request_id = ANY($1)
		ORDER BY id`

	return r.queryItems(ctx, query, requestIDs)
}

func (r *ItemRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("item not found for delete", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ItemRepository) queryItems(ctx context.Context, query string, args ...any) ([]*item.Item, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query items", err)
	}
	defer rows.Close()

	items := []*item.Item{}
	for rows.Next() {
		itm, err := scanItem(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan item row", err)
		}
		items = append(items, itm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate item rows", err)
	}
	return items, nil
}

func scanItem(row pgx.Row) (*item.Item, error) {
	var (
		id, ownerID       int64
		name, description string
		available         bool
		requestID         *int64
	)
	if err := row.Scan(&id, &ownerID, &name, &description, &available, &requestID); err != nil {
		return nil, err
	}
	return item.Reconstruct(id, ownerID, name, description, available, requestID), nil
}
