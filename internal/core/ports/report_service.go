package ports

import "context"

// DashboardStats are the admin dashboard aggregates, computed fresh per call.
type DashboardStats struct {
	TotalSales    float64
	TotalOrders   int64
	PendingOrders int64
	TotalProducts int64
}

// ReportService produces on-demand aggregates for the admin dashboard.
type ReportService interface {
	DashboardStats(ctx context.Context) (*DashboardStats, error)
}
