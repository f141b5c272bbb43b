package repository

import (
	"context"

	"shareit/internal/domain/comment"
	"shareit/internal/infra"
	"shareit/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
)

type CommentRepository struct {
	db *pgxpool.Pool
}

func NewCommentRepository(db *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{db: db}
}

// Create persists the comment and returns the view with the author name
// denormalized in the same round trip.
func (r *CommentRepository) Create(ctx context.Context, c *comment.Comment) (*usecase.CommentView, error) {
	const query = `
		INSERT INTO comments (text, item_id, author_id, created)
		VALUES ($1, $2, $3, $4)
		RETURNING id, (SELECT name FROM users WHERE id = $3)`

	view := usecase.CommentView{
		ItemID:  c.ItemID(),
		Text:    c.Text(),
		Created: c.Created(),
	}
	err := r.db.QueryRow(ctx, query, c.Text(), c.ItemID(), c.AuthorID(), c.Created()).
		Scan(&view.ID, &view.AuthorName)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create comment", err)
	}
	return &view, nil
}

func (r *CommentRepository) FindAllByItem(ctx context.Context, itemID int64) ([]usecase.CommentView, error) {
	const query = `
		SELECT c.id, c.item_id, c.text, u.name, c.created
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.item_id = $1
		ORDER BY c.created`

	return r.queryViews(ctx, query, itemID)
}

func (r *CommentRepository) FindAllByOwnerItems(ctx context.Context, ownerID int64) ([]usecase.CommentView, error) {
	const query = `
		SELECT c.id, c.item_id, c.text, u.name, c.created
		FROM comments c
		JOIN users u ON u.id = c.author_id
		JOIN items i ON i.id = c.item_id
		WHERE i.owner_id = $1
		ORDER BY c.created`

	return r.queryViews(ctx, query, ownerID)
}

func (r *CommentRepository) queryViews(ctx context.Context, query string, arg int64) ([]usecase.CommentView, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query comments", err)
	}
	defer rows.Close()

	views := []usecase.CommentView{}
	for rows.Next() {
		var view usecase.CommentView
		if err := rows.Scan(&view.ID, &view.ItemID, &view.Text, &view.AuthorName, &view.Created); err != nil {
			return nil, infra.WrapRepoErr("failed to scan comment row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate comment rows", err)
	}
	return views, nil
}
