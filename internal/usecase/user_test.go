//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"testing"

	"shareit/internal/domain/user"
	"shareit/internal/infra"
	"shareit/internal/usecase"
	usecasemock "shareit/tests/mock/usecase"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func duplicateKeyErr() error {
	return infra.WrapRepoErr("insert user", &pgconn.PgError{Code: "23505"})
}

func TestUserUsecaseCreate(t *testing.T) {
	t.Run("duplicate email maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := usecasemock.NewMockUserRepository(ctrl)
		uc := usecase.NewUserUsecase(users)

		users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, duplicateKeyErr())

		_, err := uc.Create(context.Background(), usecase.CreateUserParams{Name: "a", Email: "a@example.com"})
		assert.ErrorIs(t, err, usecase.ErrDuplicateEmail)
	})

	t.Run("invalid email never reaches the repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := usecasemock.NewMockUserRepository(ctrl)
		uc := usecase.NewUserUsecase(users)

		_, err := uc.Create(context.Background(), usecase.CreateUserParams{Name: "a", Email: "not-an-email"})
		assert.ErrorIs(t, err, user.ErrInvalidEmail)
	})
}

func TestUserUsecaseUpdate(t *testing.T) {
	t.Run("missing user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := usecasemock.NewMockUserRepository(ctrl)
		uc := usecase.NewUserUsecase(users)

		users.EXPECT().FindByID(gomock.Any(), int64(99)).Return(nil, notFoundErr())

		name := "b"
		_, err := uc.Update(context.Background(), 99, usecase.UpdateUserParams{Name: &name})
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})

	t.Run("partial patch keeps untouched fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := usecasemock.NewMockUserRepository(ctrl)
		uc := usecase.NewUserUsecase(users)

		users.EXPECT().FindByID(gomock.Any(), int64(1)).Return(user.Reconstruct(1, "a", "a@example.com"), nil)
		users.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		name := "b"
		view, err := uc.Update(context.Background(), 1, usecase.UpdateUserParams{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "b", view.Name)
		assert.Equal(t, "a@example.com", view.Email)
	})

	t.Run("unexpected storage error is not a conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := usecasemock.NewMockUserRepository(ctrl)
		uc := usecase.NewUserUsecase(users)

		users.EXPECT().FindByID(gomock.Any(), int64(1)).Return(user.Reconstruct(1, "a", "a@example.com"), nil)
		users.EXPECT().Update(gomock.Any(), gomock.Any()).Return(infra.WrapRepoErr("update user", errors.New("connection reset")))

		name := "b"
		_, err := uc.Update(context.Background(), 1, usecase.UpdateUserParams{Name: &name})
		assert.ErrorIs(t, err, usecase.ErrStorageFailure)
		assert.NotErrorIs(t, err, usecase.ErrDuplicateEmail)
	})
}
