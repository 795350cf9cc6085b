package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/shopstack/storefront-api/internal/core/domain"
)

type stubCategoryService struct {
	listFn   func(ctx context.Context) ([]*domain.Category, error)
	createFn func(ctx context.Context, name string) (*domain.Category, error)
}

func (s *stubCategoryService) List(ctx context.Context) ([]*domain.Category, error) {
	return s.listFn(ctx)
}

func (s *stubCategoryService) Create(ctx context.Context, name string) (*domain.Category, error) {
	return s.createFn(ctx, name)
}

func TestCategoryHandler_List(t *testing.T) {
	e := newTestEcho()
	stub := &stubCategoryService{
		listFn: func(context.Context) ([]*domain.Category, error) {
			return []*domain.Category{{ID: "cat-1", Name: "Shoes"}}, nil
		},
	}
	h := NewCategoryHandler(stub, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestCategoryHandler_Create(t *testing.T) {
	e := newTestEcho()
	stub := &stubCategoryService{
		createFn: func(_ context.Context, name string) (*domain.Category, error) {
			if name != "Hats" {
				t.Fatalf("unexpected name: %s", name)
			}
			return &domain.Category{ID: "cat-2", Name: name}, nil
		},
	}
	h := NewCategoryHandler(stub, zerolog.Nop())

	c, rec := jsonContext(e, http.MethodPost, "/api/categories", `{"name":"Hats"}`)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestCategoryHandler_Create_Duplicate(t *testing.T) {
	e := newTestEcho()
	stub := &stubCategoryService{
		createFn: func(context.Context, string) (*domain.Category, error) {
			return nil, domain.ErrCategoryExists
		},
	}
	h := NewCategoryHandler(stub, zerolog.Nop())

	c, _ := jsonContext(e, http.MethodPost, "/api/categories", `{"name":"Shoes"}`)

	err := h.Create(c)
	if !errors.Is(err, domain.ErrCategoryExists) {
		t.Fatalf("expected ErrCategoryExists, got %v", err)
	}
}

func TestCategoryHandler_Create_MissingName(t *testing.T) {
	e := newTestEcho()
	h := NewCategoryHandler(&stubCategoryService{}, zerolog.Nop())

	c, _ := jsonContext(e, http.MethodPost, "/api/categories", `{}`)

	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}
