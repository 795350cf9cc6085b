package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/shopstack/storefront-api/internal/core/domain"
	"github.com/shopstack/storefront-api/internal/core/ports"
)

// CategoryService implements the flat category tag list.
type CategoryService struct {
	repo   ports.CategoryRepository
	logger zerolog.Logger
}

func NewCategoryService(repo ports.CategoryRepository, logger zerolog.Logger) *CategoryService {
	return &CategoryService{repo: repo, logger: logger}
}

func (s *CategoryService) List(ctx context.Context) ([]*domain.Category, error) {
	return s.repo.List(ctx)
}

// Create persists a category with the given exact name, failing with
// domain.ErrCategoryExists when one is already present.
func (s *CategoryService) Create(ctx context.Context, name string) (*domain.Category, error) {
	_, err := s.repo.FindByName(ctx, name)
	if err == nil {
		return nil, domain.ErrCategoryExists
	}
	if !errors.Is(err, domain.ErrCategoryNotFound) {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &domain.Category{
		Name:      name,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("category", created.Name).Msg("category created")
	return created, nil
}
