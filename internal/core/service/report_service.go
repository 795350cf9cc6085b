package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/shopstack/storefront-api/internal/core/domain"
	"github.com/shopstack/storefront-api/internal/core/ports"
)

// ReportService computes admin dashboard aggregates on demand. Nothing is
// cached; every call reads the order and product collections fresh.
type ReportService struct {
	orders   ports.OrderRepository
	products ports.ProductRepository
	logger   zerolog.Logger
}

func NewReportService(orders ports.OrderRepository, products ports.ProductRepository, logger zerolog.Logger) *ReportService {
	return &ReportService{orders: orders, products: products, logger: logger}
}

func (s *ReportService) DashboardStats(ctx context.Context) (*ports.DashboardStats, error) {
	totalSales, err := s.orders.TotalSales(ctx)
	if err != nil {
		return nil, err
	}
	totalOrders, err := s.orders.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	pending, err := s.orders.CountByStatus(ctx, domain.OrderStatusProcessing)
	if err != nil {
		return nil, err
	}
	totalProducts, err := s.products.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &ports.DashboardStats{
		TotalSales:    totalSales,
		TotalOrders:   totalOrders,
		PendingOrders: pending,
		TotalProducts: totalProducts,
	}, nil
}
