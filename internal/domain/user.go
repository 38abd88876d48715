package domain

import (
	"context"
	"errors"
	"strings"

	"github.com/Kagankakao/tv-plus-social-watch/internal/infrastructure/validate"
	"github.com/google/uuid"
)

var ErrUserNotFound = errors.New("user not found")

const defaultAvatar = "👤"

type User struct {
	ID     string `json:"user_id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	List(ctx context.Context) ([]User, error)
}

// NewUser mints a registered user with a generated id.
func NewUser(rawName, avatar string) (*User, error) {
	validateName := validate.Field("name",
		validate.Required(),
		validate.MinLength(1),
		validate.MaxLength(64),
	)

	if err := validateName(rawName); err != nil {
		return nil, err
	}

	if avatar == "" {
		avatar = defaultAvatar
	}

	return &User{
		ID:     "user_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8],
		Name:   strings.TrimSpace(rawName),
		Avatar: avatar,
	}, nil
}
