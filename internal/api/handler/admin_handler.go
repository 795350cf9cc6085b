package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/shopstack/storefront-api/internal/core/ports"
)

type dashboardResponse struct {
	TotalSales    float64 `json:"totalSales"`
	TotalOrders   int64   `json:"totalOrders"`
	PendingOrders int64   `json:"pendingOrders"`
	TotalProducts int64   `json:"totalProducts"`
}

type AdminHandler struct {
	reports ports.ReportService
	logger  zerolog.Logger
}

func NewAdminHandler(reports ports.ReportService, logger zerolog.Logger) *AdminHandler {
	return &AdminHandler{
		reports: reports,
		logger:  logger.With().Str("handler", "admin").Logger(),
	}
}

// Dashboard godoc
// @Summary      Store-wide aggregates for the admin dashboard
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dashboardResponse
// @Router       /api/admin/dashboard [get]
func (h *AdminHandler) Dashboard(c echo.Context) error {
	stats, err := h.reports.DashboardStats(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dashboardResponse{
		TotalSales:    stats.TotalSales,
		TotalOrders:   stats.TotalOrders,
		PendingOrders: stats.PendingOrders,
		TotalProducts: stats.TotalProducts,
	})
}
