package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/shopstack/storefront-api/internal/core/ports"
)

type OrderHandler struct {
	service ports.OrderService
	logger  zerolog.Logger
}

func NewOrderHandler(service ports.OrderService, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		logger:  logger.With().Str("handler", "order").Logger(),
	}
}

// Create godoc
// @Summary      Place a new order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body createOrderRequest true "order payload"
// @Success      201 {object} domain.Order
// @Failure      400 {object} errorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	order, err := h.service.Create(c.Request().Context(), req.toInput(userID))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, order)
}

// MyOrders godoc
// @Summary      List the caller's orders
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} domain.Order
// @Router       /api/orders/myorders [get]
func (h *OrderHandler) MyOrders(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	orders, err := h.service.MyOrders(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, orders)
}

// Get godoc
// @Summary      Fetch one order (owner or admin)
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "order id"
// @Success      200 {object} domain.Order
// @Failure      403 {object} errorResponse
// @Failure      404 {object} errorResponse
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) Get(c echo.Context) error {
	userID, isAdmin, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	order, err := h.service.Get(c.Request().Context(), ports.GetOrderInput{
		OrderID: c.Param("id"),
		UserID:  userID,
		IsAdmin: isAdmin,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, order)
}

// Pay godoc
// @Summary      Confirm payment for an order
// @Description  The payment reference is re-verified against the provider;
// @Description  client-reported statuses are never trusted.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "order id"
// @Param        request body payOrderRequest true "provider payment reference"
// @Success      200 {object} domain.Order
// @Failure      400 {object} errorResponse
// @Router       /api/orders/{id}/pay [put]
func (h *OrderHandler) Pay(c echo.Context) error {
	userID, isAdmin, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req payOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	order, err := h.service.Pay(c.Request().Context(), ports.PayOrderInput{
		OrderID:   c.Param("id"),
		UserID:    userID,
		IsAdmin:   isAdmin,
		PaymentID: req.PaymentID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, order)
}

// ListAll godoc
// @Summary      List all orders (admin)
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} domain.Order
// @Router       /api/orders [get]
func (h *OrderHandler) ListAll(c echo.Context) error {
	orders, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, orders)
}

// UpdateStatus godoc
// @Summary      Update an order's fulfilment status (admin)
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "order id"
// @Param        request body updateStatusRequest true "new status"
// @Success      200 {object} domain.Order
// @Failure      404 {object} errorResponse
// @Router       /api/orders/{id}/status [put]
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	order, err := h.service.UpdateStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, order)
}
