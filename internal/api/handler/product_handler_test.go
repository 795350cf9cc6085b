package handler

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/shopstack/storefront-api/internal/core/domain"
	"github.com/shopstack/storefront-api/internal/core/ports"
)

type stubProductService struct {
	listFn   func(ctx context.Context, filter ports.ProductFilter) ([]*domain.Product, error)
	getFn    func(ctx context.Context, id string) (*domain.Product, error)
	createFn func(ctx context.Context, in ports.ProductInput) (*domain.Product, error)
	updateFn func(ctx context.Context, id string, in ports.ProductUpdateInput) (*domain.Product, error)
	deleteFn func(ctx context.Context, id string) error
}

func (s *stubProductService) List(ctx context.Context, filter ports.ProductFilter) ([]*domain.Product, error) {
	return s.listFn(ctx, filter)
}

func (s *stubProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.getFn(ctx, id)
}

func (s *stubProductService) Create(ctx context.Context, in ports.ProductInput) (*domain.Product, error) {
	return s.createFn(ctx, in)
}

func (s *stubProductService) Update(ctx context.Context, id string, in ports.ProductUpdateInput) (*domain.Product, error) {
	return s.updateFn(ctx, id, in)
}

func (s *stubProductService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

// stubImageStore records the last save and returns a fixed public path.
type stubImageStore struct {
	savedName string
	savedSize int64
	path      string
	err       error
}

func (s *stubImageStore) Save(name string, size int64, r io.Reader) (string, error) {
	s.savedName = name
	s.savedSize = size
	_, _ = io.Copy(io.Discard, r)
	if s.err != nil {
		return "", s.err
	}
	return s.path, nil
}

func TestProductHandler_List_ParsesFilter(t *testing.T) {
	e := newTestEcho()
	stub := &stubProductService{
		listFn: func(_ context.Context, filter ports.ProductFilter) ([]*domain.Product, error) {
			if filter.Featured == nil || !*filter.Featured {
				t.Fatalf("featured not parsed: %+v", filter)
			}
			if filter.Category != "Shoes" {
				t.Fatalf("category not parsed: %q", filter.Category)
			}
			if filter.PriceMin == nil || *filter.PriceMin != 10 {
				t.Fatalf("priceMin not parsed")
			}
			if filter.PriceMax == nil || *filter.PriceMax != 99.5 {
				t.Fatalf("priceMax not parsed")
			}
			if filter.Sort != "-price" {
				t.Fatalf("sort not parsed: %q", filter.Sort)
			}
			if filter.Limit != 8 {
				t.Fatalf("limit not parsed: %d", filter.Limit)
			}
			return []*domain.Product{}, nil
		},
	}
	h := NewProductHandler(stub, &stubImageStore{}, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet,
		"/api/products?featured=true&category=Shoes&priceMin=10&priceMax=99.5&sort=-price&limit=8", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestProductHandler_List_NoFilters(t *testing.T) {
	e := newTestEcho()
	stub := &stubProductService{
		listFn: func(_ context.Context, filter ports.ProductFilter) ([]*domain.Product, error) {
			if filter.Featured != nil || filter.PriceMin != nil || filter.PriceMax != nil {
				t.Fatalf("absent filters must stay nil: %+v", filter)
			}
			return nil, nil
		},
	}
	h := NewProductHandler(stub, &stubImageStore{}, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestProductHandler_List_InvalidPrice(t *testing.T) {
	e := newTestEcho()
	h := NewProductHandler(&stubProductService{}, &stubImageStore{}, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/api/products?priceMin=cheap", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.List(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func multipartContext(t *testing.T, e *echo.Echo, method, target string, fields map[string]string, fileField, fileName string, fileContent []byte) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if fileField != "" {
		fw, err := w.CreateFormFile(fileField, fileName)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := fw.Write(fileContent); err != nil {
			t.Fatalf("write file: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestProductHandler_Create_WithUpload(t *testing.T) {
	e := newTestEcho()
	images := &stubImageStore{path: "/uploads/123-shoe.png"}
	stub := &stubProductService{
		createFn: func(_ context.Context, in ports.ProductInput) (*domain.Product, error) {
			if in.Name != "Sneaker" || in.Price != 49.99 || in.CountInStock != 12 {
				t.Fatalf("form fields not parsed: %+v", in)
			}
			if !in.Featured {
				t.Fatalf("featured not parsed")
			}
			if in.Image != "/uploads/123-shoe.png" {
				t.Fatalf("uploaded image path not used: %q", in.Image)
			}
			return &domain.Product{ID: "prod-1", Name: in.Name, Image: in.Image}, nil
		},
	}
	h := NewProductHandler(stub, images, zerolog.Nop())

	c, rec := multipartContext(t, e, http.MethodPost, "/api/products", map[string]string{
		"name":         "Sneaker",
		"price":        "49.99",
		"category":     "Shoes",
		"countInStock": "12",
		"featured":     "true",
	}, "productImage", "shoe.png", []byte("png-bytes"))

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if images.savedName != "shoe.png" {
		t.Fatalf("upload not forwarded to store: %q", images.savedName)
	}
}

func TestProductHandler_Create_ImageURLWithoutUpload(t *testing.T) {
	e := newTestEcho()
	stub := &stubProductService{
		createFn: func(_ context.Context, in ports.ProductInput) (*domain.Product, error) {
			if in.Image != "https://cdn.example.com/shoe.png" {
				t.Fatalf("image url not kept: %q", in.Image)
			}
			return &domain.Product{ID: "prod-1"}, nil
		},
	}
	h := NewProductHandler(stub, &stubImageStore{}, zerolog.Nop())

	c, rec := multipartContext(t, e, http.MethodPost, "/api/products", map[string]string{
		"name":  "Sneaker",
		"price": "49.99",
		"image": "https://cdn.example.com/shoe.png",
	}, "", "", nil)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestProductHandler_Create_MissingName(t *testing.T) {
	e := newTestEcho()
	h := NewProductHandler(&stubProductService{}, &stubImageStore{}, zerolog.Nop())

	c, _ := multipartContext(t, e, http.MethodPost, "/api/products", map[string]string{
		"price": "49.99",
	}, "", "", nil)

	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestProductHandler_Create_RejectedUpload(t *testing.T) {
	e := newTestEcho()
	images := &stubImageStore{err: domain.ErrUnsupportedImageType}
	h := NewProductHandler(&stubProductService{}, images, zerolog.Nop())

	c, _ := multipartContext(t, e, http.MethodPost, "/api/products", map[string]string{
		"name":  "Sneaker",
		"price": "49.99",
	}, "productImage", "virus.exe", []byte("mz"))

	err := h.Create(c)
	if !errors.Is(err, domain.ErrUnsupportedImageType) {
		t.Fatalf("expected ErrUnsupportedImageType, got %v", err)
	}
}

func TestProductHandler_Update_OnlyPresentFields(t *testing.T) {
	e := newTestEcho()
	stub := &stubProductService{
		updateFn: func(_ context.Context, id string, in ports.ProductUpdateInput) (*domain.Product, error) {
			if id != "prod-1" {
				t.Fatalf("unexpected id: %s", id)
			}
			if in.Price == nil || *in.Price != 39.99 {
				t.Fatalf("price not forwarded")
			}
			if in.Name != nil || in.Category != nil || in.Featured != nil {
				t.Fatalf("absent fields must stay nil: %+v", in)
			}
			if in.Image != "" {
				t.Fatalf("image must stay empty without upload")
			}
			return &domain.Product{ID: id, Price: *in.Price}, nil
		},
	}
	h := NewProductHandler(stub, &stubImageStore{}, zerolog.Nop())

	c, rec := multipartContext(t, e, http.MethodPut, "/api/products/prod-1", map[string]string{
		"price": "39.99",
	}, "", "", nil)
	c.SetParamNames("id")
	c.SetParamValues("prod-1")

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestProductHandler_Update_UploadReplacesImage(t *testing.T) {
	e := newTestEcho()
	images := &stubImageStore{path: "/uploads/456-new.png"}
	stub := &stubProductService{
		updateFn: func(_ context.Context, id string, in ports.ProductUpdateInput) (*domain.Product, error) {
			if in.Image != "/uploads/456-new.png" {
				t.Fatalf("uploaded image not applied: %q", in.Image)
			}
			return &domain.Product{ID: id, Image: in.Image}, nil
		},
	}
	h := NewProductHandler(stub, images, zerolog.Nop())

	c, rec := multipartContext(t, e, http.MethodPut, "/api/products/prod-1", nil,
		"productImage", "new.png", []byte("png-bytes"))
	c.SetParamNames("id")
	c.SetParamValues("prod-1")

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestProductHandler_Delete_NotFound(t *testing.T) {
	e := newTestEcho()
	stub := &stubProductService{
		deleteFn: func(context.Context, string) error {
			return domain.ErrProductNotFound
		},
	}
	h := NewProductHandler(stub, &stubImageStore{}, zerolog.Nop())

	req := httptest.NewRequest(http.MethodDelete, "/api/products/missing", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	err := h.Delete(c)
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}
