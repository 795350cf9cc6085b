package handler

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/shopstack/storefront-api/internal/core/ports"
)

type ProductHandler struct {
	service ports.ProductService
	images  ports.ImageStore
	logger  zerolog.Logger
}

func NewProductHandler(service ports.ProductService, images ports.ImageStore, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		images:  images,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// List godoc
// @Summary      List catalog products
// @Tags         products
// @Produce      json
// @Param        featured query bool false "only featured products"
// @Param        category query string false "exact category match"
// @Param        priceMin query number false "inclusive lower price bound"
// @Param        priceMax query number false "inclusive upper price bound"
// @Param        sort query string false "sort field, '-' prefix for descending"
// @Param        limit query int false "maximum results"
// @Success      200 {array} domain.Product
// @Router       /api/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	filter, err := parseProductFilter(c)
	if err != nil {
		return err
	}

	products, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, products)
}

// Get godoc
// @Summary      Fetch a product by id
// @Tags         products
// @Produce      json
// @Param        id path string true "product id"
// @Success      200 {object} domain.Product
// @Failure      404 {object} errorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, product)
}

// Create godoc
// @Summary      Create a product (admin)
// @Description  Accepts multipart form data. The image may be supplied as an
// @Description  uploaded file (productImage) or a URL in the image field.
// @Tags         products
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Success      201 {object} domain.Product
// @Router       /api/products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	in, err := h.parseProductForm(c)
	if err != nil {
		return err
	}
	if in.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}
	if in.Price <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "price must be greater than 0")
	}

	product, err := h.service.Create(c.Request().Context(), *in)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, product)
}

// Update godoc
// @Summary      Update a product (admin)
// @Description  Multipart partial update; absent fields keep their current value.
// @Tags         products
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "product id"
// @Success      200 {object} domain.Product
// @Failure      404 {object} errorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	in, err := h.parseProductUpdateForm(c)
	if err != nil {
		return err
	}

	product, err := h.service.Update(c.Request().Context(), c.Param("id"), *in)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, product)
}

// Delete godoc
// @Summary      Delete a product (admin)
// @Tags         products
// @Security     BearerAuth
// @Param        id path string true "product id"
// @Success      204 "deleted"
// @Failure      404 {object} errorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func parseProductFilter(c echo.Context) (ports.ProductFilter, error) {
	var filter ports.ProductFilter

	if raw := c.QueryParam("featured"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return filter, echo.NewHTTPError(http.StatusBadRequest, "invalid featured value")
		}
		filter.Featured = &v
	}

	filter.Category = c.QueryParam("category")

	if raw := c.QueryParam("priceMin"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return filter, echo.NewHTTPError(http.StatusBadRequest, "invalid priceMin value")
		}
		filter.PriceMin = &v
	}
	if raw := c.QueryParam("priceMax"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return filter, echo.NewHTTPError(http.StatusBadRequest, "invalid priceMax value")
		}
		filter.PriceMax = &v
	}

	filter.Sort = c.QueryParam("sort")

	if raw := c.QueryParam("limit"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || v < 0 {
			return filter, echo.NewHTTPError(http.StatusBadRequest, "invalid limit value")
		}
		filter.Limit = v
	}

	return filter, nil
}

// parseProductForm reads a multipart create form. The uploaded file wins over
// a URL given in the image field.
func (h *ProductHandler) parseProductForm(c echo.Context) (*ports.ProductInput, error) {
	in := &ports.ProductInput{
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
		Category:    c.FormValue("category"),
		Image:       c.FormValue("image"),
		Brand:       c.FormValue("brand"),
	}

	if raw := c.FormValue("price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid price value")
		}
		in.Price = v
	}
	if raw := c.FormValue("countInStock"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid countInStock value")
		}
		in.CountInStock = v
	}
	if raw := c.FormValue("featured"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid featured value")
		}
		in.Featured = v
	}
	if raw := c.FormValue("rating"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid rating value")
		}
		in.Rating = v
	}
	if raw := c.FormValue("numReviews"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid numReviews value")
		}
		in.NumReviews = v
	}

	path, err := h.saveUploadedImage(c)
	if err != nil {
		return nil, err
	}
	if path != "" {
		in.Image = path
	}

	return in, nil
}

// parseProductUpdateForm reads a multipart partial-update form. Only fields
// present in the form are applied; presence is checked against the parsed
// form values, not against emptiness.
func (h *ProductHandler) parseProductUpdateForm(c echo.Context) (*ports.ProductUpdateInput, error) {
	form, err := c.FormParams()
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid form data")
	}

	in := &ports.ProductUpdateInput{}

	if v, ok := formString(form, "name"); ok {
		in.Name = &v
	}
	if v, ok := formString(form, "description"); ok {
		in.Description = &v
	}
	if v, ok := formString(form, "category"); ok {
		in.Category = &v
	}
	if v, ok := formString(form, "brand"); ok {
		in.Brand = &v
	}
	if raw, ok := formString(form, "price"); ok {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid price value")
		}
		in.Price = &v
	}
	if raw, ok := formString(form, "countInStock"); ok {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid countInStock value")
		}
		in.CountInStock = &v
	}
	if raw, ok := formString(form, "featured"); ok {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid featured value")
		}
		in.Featured = &v
	}
	if raw, ok := formString(form, "rating"); ok {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid rating value")
		}
		in.Rating = &v
	}
	if raw, ok := formString(form, "numReviews"); ok {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid numReviews value")
		}
		in.NumReviews = &v
	}
	if v, ok := formString(form, "image"); ok {
		in.Image = v
	}

	path, err := h.saveUploadedImage(c)
	if err != nil {
		return nil, err
	}
	if path != "" {
		in.Image = path
	}

	return in, nil
}

func formString(form url.Values, key string) (string, bool) {
	vs, ok := form[key]
	if !ok || len(vs) == 0 {
		return "", false
	}
	return vs[0], true
}

// saveUploadedImage stores the productImage file, if one was attached, and
// returns its public path. No file attached is not an error.
func (h *ProductHandler) saveUploadedImage(c echo.Context) (string, error) {
	fh, err := c.FormFile("productImage")
	if err != nil {
		if err == http.ErrMissingFile {
			return "", nil
		}
		// No multipart body at all also means no upload.
		return "", nil
	}

	src, err := fh.Open()
	if err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, "cannot read uploaded file")
	}
	defer src.Close()

	path, err := h.images.Save(fh.Filename, fh.Size, src)
	if err != nil {
		return "", err
	}

	h.logger.Debug().Str("path", path).Msg("stored product image")
	return path, nil
}
