package user

import (
	"errors"
	"strings"
)

var (
	ErrEmptyName    = errors.New("user name cannot be empty")
	ErrInvalidEmail = errors.New("user email is not valid")
)

type User struct {
	id    int64
	name  string
	email string
}

func NewUser(name, email string) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	return &User{name: name, email: email}, nil
}

func Reconstruct(id int64, name, email string) *User {
	return &User{id: id, name: name, email: email}
}

func (u *User) ApplyPatch(name, email *string) error {
	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if trimmed == "" {
			return ErrEmptyName
		}
		u.name = trimmed
	}
	if email != nil {
		if err := validateEmail(*email); err != nil {
			return err
		}
		u.email = *email
	}
	return nil
}

func validateEmail(email string) error {
	at := strings.Index(email, "@")
	if at < 1 || at == len(email)-1 {
		return ErrInvalidEmail
	}
	return nil
}

func (u *User) ID() int64     { return u.id }
func (u *User) Name() string  { return u.name }
func (u *User) Email() string { return u.email }
