package ports

import (
	"context"

	"github.com/shopstack/storefront-api/internal/core/domain"
)

// CategoryRepository defines persistence operations for categories.
// Create surfaces domain.ErrCategoryExists on a duplicate name.
type CategoryRepository interface {
	Create(ctx context.Context, c *domain.Category) (*domain.Category, error)
	FindByName(ctx context.Context, name string) (*domain.Category, error)
	List(ctx context.Context) ([]*domain.Category, error)
}
