package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopstack/storefront-api/internal/core/domain"
)

type stubCategoryRepo struct {
	categories map[string]*domain.Category
	nextID     int
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{categories: make(map[string]*domain.Category)}
}

func (r *stubCategoryRepo) Create(_ context.Context, c *domain.Category) (*domain.Category, error) {
	if _, ok := r.categories[c.Name]; ok {
		return nil, domain.ErrCategoryExists
	}
	r.nextID++
	clone := *c
	clone.ID = fmt.Sprintf("cat-%d", r.nextID)
	r.categories[clone.Name] = &clone
	return &clone, nil
}

func (r *stubCategoryRepo) FindByName(_ context.Context, name string) (*domain.Category, error) {
	c, ok := r.categories[name]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubCategoryRepo) List(_ context.Context) ([]*domain.Category, error) {
	out := make([]*domain.Category, 0, len(r.categories))
	for _, c := range r.categories {
		clone := *c
		out = append(out, &clone)
	}
	return out, nil
}

func TestCategoryService_Create(t *testing.T) {
	svc := NewCategoryService(newStubCategoryRepo(), zerolog.Nop())

	created, err := svc.Create(context.Background(), "Shoes")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Shoes", created.Name)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestCategoryService_Create_Duplicate(t *testing.T) {
	svc := NewCategoryService(newStubCategoryRepo(), zerolog.Nop())

	_, err := svc.Create(context.Background(), "Shoes")
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), "Shoes")
	assert.ErrorIs(t, err, domain.ErrCategoryExists)
}

func TestCategoryService_Create_CaseSensitiveNames(t *testing.T) {
	svc := NewCategoryService(newStubCategoryRepo(), zerolog.Nop())

	_, err := svc.Create(context.Background(), "Shoes")
	require.NoError(t, err)

	// Names match exactly; a different casing is a different category.
	_, err = svc.Create(context.Background(), "shoes")
	assert.NoError(t, err)
}

func TestCategoryService_List(t *testing.T) {
	svc := NewCategoryService(newStubCategoryRepo(), zerolog.Nop())

	_, err := svc.Create(context.Background(), "Shoes")
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), "Hats")
	require.NoError(t, err)

	categories, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, categories, 2)
}
