package domain

import (
	"context"
	"time"
)

type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"password"` // bcrypt hash, never returned by handlers
	CreatedAt time.Time `json:"createdAt"`
}

// PublicUser is the safe subset returned after registration
type PublicUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*User, error)
	Append(ctx context.Context, user *User) error
}

type AuthUsecase interface {
	Register(ctx context.Context, username, password string) (*PublicUser, error)
	Login(ctx context.Context, username, password string) (token string, err error)
}
