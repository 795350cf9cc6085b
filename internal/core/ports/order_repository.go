package ports

import (
	"context"

	"github.com/shopstack/storefront-api/internal/core/domain"
)

// OrderRepository defines persistence operations for orders. Orders are never
// deleted; Update rewrites the mutable fields of an existing document.
type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) (*domain.Order, error)
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	FindByUser(ctx context.Context, userID string) ([]*domain.Order, error)
	List(ctx context.Context) ([]*domain.Order, error)
	Update(ctx context.Context, o *domain.Order) error

	CountAll(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	// TotalSales sums totalPrice across all orders, zero when there are none.
	TotalSales(ctx context.Context) (float64, error)
}
