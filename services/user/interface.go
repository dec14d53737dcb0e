// File: services/user/interface.go
package user

import (
	"context"

	userRepo "afinare/database/repository/user"
	"afinare/models"

	"github.com/go-redis/redis/v8"
)

// AuthResponse is handed back on successful registration or sign-in.
type AuthResponse struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

// UserService covers account registration, sign-in and role lookups.
type UserService interface {
	Register(ctx context.Context, name, email, password string) (*AuthResponse, error)
	Authenticate(ctx context.Context, email, password string) (*AuthResponse, error)
	RevokeToken(ctx context.Context, token string) error
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	GetRole(ctx context.Context, id string) (string, error)
	SetFCMToken(ctx context.Context, id, token string) error
	EnsureAdmin(ctx context.Context, name, email, password string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo     userRepo.UserRepository
	Sessions *redis.Client
}
