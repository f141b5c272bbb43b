package usecase

import (
	"context"

	"shareit/internal/domain/user"
	"shareit/internal/infra"
	"shareit/internal/pkg/errs"
)

var ErrDuplicateEmail = errs.New("email is already in use")

type CreateUserParams struct {
	Name  string
	Email string
}

type UpdateUserParams struct {
	Name  *string
	Email *string
}

type UserUsecase interface {
	Create(ctx context.Context, params CreateUserParams) (*UserView, error)
	Update(ctx context.Context, userID int64, params UpdateUserParams) (*UserView, error)
	Get(ctx context.Context, userID int64) (*UserView, error)
	List(ctx context.Context) ([]UserView, error)
	Delete(ctx context.Context, userID int64) error
}

type userUsecase struct {
	users UserRepository
}

func NewUserUsecase(users UserRepository) UserUsecase {
	return &userUsecase{users: users}
}

func (uc *userUsecase) Create(ctx context.Context, params CreateUserParams) (*UserView, error) {
	usr, err := user.NewUser(params.Name, params.Email)
	if err != nil {
		return nil, err
	}

	created, err := uc.users.Create(ctx, usr)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrDuplicateEmail)
		}
		return nil, errs.Mark(err, ErrStorageFailure)
	}
	return userView(created), nil
}

func (uc *userUsecase) Update(ctx context.Context, userID int64, params UpdateUserParams) (*UserView, error) {
	usr, err := uc.users.FindByID(ctx, userID)
	if err != nil {
		return nil, markLookup(err, ErrUserNotFound)
	}

	if err := usr.ApplyPatch(params.Name, params.Email); err != nil {
		return nil, err
	}

	if err := uc.users.Update(ctx, usr); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrDuplicateEmail)
		}
		return nil, errs.Mark(err, ErrStorageFailure)
	}
	return userView(usr), nil
}

func (uc *userUsecase) Get(ctx context.Context, userID int64) (*UserView, error) {
	usr, err := uc.users.FindByID(ctx, userID)
	if err != nil {
		return nil, markLookup(err, ErrUserNotFound)
	}
	return userView(usr), nil
}

func (uc *userUsecase) List(ctx context.Context) ([]UserView, error) {
	users, err := uc.users.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrStorageFailure)
	}
	views := make([]UserView, 0, len(users))
	for _, usr := range users {
		views = append(views, *userView(usr))
	}
	return views, nil
}

func (uc *userUsecase) Delete(ctx context.Context, userID int64) error {
	if _, err := uc.users.FindByID(ctx, userID); err != nil {
		return markLookup(err, ErrUserNotFound)
	}
	if err := uc.users.Delete(ctx, userID); err != nil {
		return errs.Mark(err, ErrStorageFailure)
	}
	return nil
}

func userView(u *user.User) *UserView {
	return &UserView{ID: u.ID(), Name: u.Name(), Email: u.Email()}
}
