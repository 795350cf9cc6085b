package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/shopstack/storefront-api/internal/core/domain"
	"github.com/shopstack/storefront-api/internal/core/ports"
)

// ProductService implements catalog listing and admin catalog management.
type ProductService struct {
	repo   ports.ProductRepository
	logger zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, logger: logger}
}

func (s *ProductService) List(ctx context.Context, filter ports.ProductFilter) ([]*domain.Product, error) {
	return s.repo.List(ctx, filter)
}

func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProductService) Create(ctx context.Context, in ports.ProductInput) (*domain.Product, error) {
	now := time.Now().UTC()
	product := &domain.Product{
		Name:         in.Name,
		Description:  in.Description,
		Price:        in.Price,
		Category:     in.Category,
		CountInStock: in.CountInStock,
		Image:        in.Image,
		Brand:        in.Brand,
		Featured:     in.Featured,
		Rating:       in.Rating,
		NumReviews:   in.NumReviews,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create product")
		return nil, err
	}

	s.logger.Info().Str("product_id", created.ID).Str("name", created.Name).Msg("product created")
	return created, nil
}

// Update merges the supplied fields into the existing product; omitted fields
// keep their current value. The image is replaced only when a new one was
// uploaded or supplied.
func (s *ProductService) Update(ctx context.Context, id string, in ports.ProductUpdateInput) (*domain.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.CountInStock != nil {
		product.CountInStock = *in.CountInStock
	}
	if in.Image != "" {
		product.Image = in.Image
	}
	if in.Brand != nil {
		product.Brand = *in.Brand
	}
	if in.Featured != nil {
		product.Featured = *in.Featured
	}
	if in.Rating != nil {
		product.Rating = *in.Rating
	}
	if in.NumReviews != nil {
		product.NumReviews = *in.NumReviews
	}
	product.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("product_id", id).Msg("product deleted")
	return nil
}
