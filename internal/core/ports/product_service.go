package ports

import (
	"context"

	"github.com/shopstack/storefront-api/internal/core/domain"
)

// ProductInput carries all fields for product creation. Image is the public
// path of an uploaded file or a caller-supplied URL.
type ProductInput struct {
	Name         string
	Description  string
	Price        float64
	Category     string
	CountInStock int
	Image        string
	Brand        string
	Featured     bool
	Rating       float64
	NumReviews   int
}

// ProductUpdateInput is a partial update: nil fields keep their current value.
// Image is replaced only when non-empty.
type ProductUpdateInput struct {
	Name         *string
	Description  *string
	Price        *float64
	Category     *string
	CountInStock *int
	Image        string
	Brand        *string
	Featured     *bool
	Rating       *float64
	NumReviews   *int
}

// ProductService covers catalog listing and admin catalog management.
type ProductService interface {
	List(ctx context.Context, filter ProductFilter) ([]*domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, in ProductInput) (*domain.Product, error)
	Update(ctx context.Context, id string, in ProductUpdateInput) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
