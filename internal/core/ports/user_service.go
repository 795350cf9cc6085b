package ports

import (
	"context"

	"github.com/shopstack/storefront-api/internal/core/domain"
)

// UserUpdateInput is a partial update: nil fields keep their current value
// (merge-with-existing, never overwrite-blank).
type UserUpdateInput struct {
	Name    *string
	Email   *string
	IsAdmin *bool
}

// UserService covers registration, credential verification, profile reads,
// and admin user management.
type UserService interface {
	Register(ctx context.Context, name, email, password string) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Profile(ctx context.Context, userID string) (*domain.User, error)

	ListUsers(ctx context.Context) ([]*domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	UpdateUser(ctx context.Context, id string, in UserUpdateInput) (*domain.User, error)
	DeleteUser(ctx context.Context, id string) error
}
