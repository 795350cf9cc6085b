package ports

import (
	"context"

	"github.com/shopstack/storefront-api/internal/core/domain"
)

// OrderItemInput is one product line of a new order.
type OrderItemInput struct {
	ProductID string
	Name      string
	Qty       int
	Price     float64
	Image     string
	Size      string
	Color     string
}

// ShippingAddressInput holds the delivery destination for a new order.
type ShippingAddressInput struct {
	FullName   string
	Address    string
	City       string
	PostalCode string
	Country    string
	Phone      string
}

// CreateOrderInput carries all data needed to place an order. The price
// breakdown is computed by the client and stored as-is.
type CreateOrderInput struct {
	UserID          string
	Items           []OrderItemInput
	ShippingAddress ShippingAddressInput
	PaymentMethod   string
	ItemsPrice      float64
	ShippingPrice   float64
	TaxPrice        float64
	TotalPrice      float64
}

// GetOrderInput identifies an order plus the caller, so ownership can be
// enforced (owner or admin only).
type GetOrderInput struct {
	OrderID string
	UserID  string
	IsAdmin bool
}

// PayOrderInput carries a payment confirmation. Only the provider reference is
// accepted; the status is re-verified against the provider.
type PayOrderInput struct {
	OrderID   string
	UserID    string
	IsAdmin   bool
	PaymentID string
}

// OrderService covers order placement, lookup, payment confirmation, and
// admin status transitions.
type OrderService interface {
	Create(ctx context.Context, in CreateOrderInput) (*domain.Order, error)
	MyOrders(ctx context.Context, userID string) ([]*domain.Order, error)
	Get(ctx context.Context, in GetOrderInput) (*domain.Order, error)
	Pay(ctx context.Context, in PayOrderInput) (*domain.Order, error)
	ListAll(ctx context.Context) ([]*domain.Order, error)
	UpdateStatus(ctx context.Context, id, status string) (*domain.Order, error)
}
