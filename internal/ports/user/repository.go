package user

import (
	"errors"

	"scribe/internal/core/user"
)

// ErrNotFound is returned when no user matches the lookup.
var ErrNotFound = errors.New("user not found")

type UserRepository interface {
	Create(user *user.User) (*user.User, error)
	FindByID(id string) (*user.User, error)
	FindByUsername(username string) (*user.User, error)
	// Delete removes the user and, through the cascade on posts.author_id,
	// every post they authored.
	Delete(id string) error
}

type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}

type UserDTO struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}
