package repository

import (
	"context"

	"shareit/internal/domain/user"
	"shareit/internal/infra"

	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) (*user.User, error) {
	const query = `
		INSERT INTO users (name, email)
		VALUES ($1, $2)
		RETURNING id`

	var id int64
	if err := r.db.QueryRow(ctx, query, u.Name(), u.Email()).Scan(&id); err != nil {
		return nil, infra.WrapRepoErr("failed to create user", err)
	}
	return user.Reconstruct(id, u.Name(), u.Email()), nil
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	const query = `UPDATE users SET name = $2, email = $3 WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, u.ID(), u.Name(), u.Email())
	if err != nil {
		return infra.WrapRepoErr("failed to update user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found for update", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*user.User, error) {
	const query = `SELECT id, name, email FROM users WHERE id = $1`

	var (
		userID      int64
		name, email string
	)
	if err := r.db.QueryRow(ctx, query, id).Scan(&userID, &name, &email); err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by id", err)
	}
	return user.Reconstruct(userID, name, email), nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]*user.User, error) {
	const query = `SELECT id, name, email FROM users ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query users", err)
	}
	defer rows.Close()

	users := []*user.User{}
	for rows.Next() {
		var (
			id          int64
			name, email string
		)
		if err := rows.Scan(&id, &name, &email); err != nil {
			return nil, infra.WrapRepoErr("failed to scan user row", err)
		}
		users = append(users, user.Reconstruct(id, name, email))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate user rows", err)
	}
	return users, nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found for delete", nil, infra.KindNotFound)
	}
	return nil
}
