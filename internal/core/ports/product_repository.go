package ports

import (
	"context"

	"github.com/shopstack/storefront-api/internal/core/domain"
)

// ProductFilter carries the catalog listing options. All options compose
// conjunctively; nil/zero values mean "no constraint".
type ProductFilter struct {
	Featured *bool    // only featured items when set
	Category string   // exact match
	PriceMin *float64 // inclusive lower bound
	PriceMax *float64 // inclusive upper bound
	Sort     string   // field name, "-" prefix for descending
	Limit    int64    // non-positive = unbounded
}

// ProductRepository defines persistence operations for catalog products.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context, filter ProductFilter) ([]*domain.Product, error)
	Update(ctx context.Context, p *domain.Product) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
