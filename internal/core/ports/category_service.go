package ports

import (
	"context"

	"github.com/shopstack/storefront-api/internal/core/domain"
)

// CategoryService lists categories and creates new ones by unique name.
type CategoryService interface {
	List(ctx context.Context) ([]*domain.Category, error)
	Create(ctx context.Context, name string) (*domain.Category, error)
}
