package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/shopstack/storefront-api/internal/api/metrics"
	"github.com/shopstack/storefront-api/internal/core/domain"
	"github.com/shopstack/storefront-api/internal/core/ports"
)

// placeholderPayerEmail backfills the payment result when the provider does
// not report a payer email for a test-mode capture.
const placeholderPayerEmail = "testuser@example.com"

const captureCurrency = "usd"

// ConfirmationGuard abstracts the idempotency store (Redis) that protects
// against replayed payment confirmations.
type ConfirmationGuard interface {
	Seen(ctx context.Context, orderID, paymentID string) (bool, error)
	Mark(ctx context.Context, orderID, paymentID string) error
}

// OrderService implements order placement, payment confirmation, and admin
// status transitions.
type OrderService struct {
	repo     ports.OrderRepository
	userRepo ports.UserRepository
	payments ports.PaymentProvider
	guard    ConfirmationGuard
	logger   zerolog.Logger
}

func NewOrderService(
	repo ports.OrderRepository,
	userRepo ports.UserRepository,
	payments ports.PaymentProvider,
	guard ConfirmationGuard,
	logger zerolog.Logger,
) *OrderService {
	return &OrderService{
		repo:     repo,
		userRepo: userRepo,
		payments: payments,
		guard:    guard,
		logger:   logger,
	}
}

// Create places an order. Card payments are captured synchronously against
// the provider and mark the order paid immediately; every other method leaves
// the order unpaid with a placeholder payment result. Line items and shipping
// address are stored as an immutable snapshot.
func (s *OrderService) Create(ctx context.Context, in ports.CreateOrderInput) (*domain.Order, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrNoOrderItems
	}

	now := time.Now().UTC()
	var result domain.PaymentResult
	var paidAt *time.Time
	paid := false

	if in.PaymentMethod == domain.PaymentMethodCard {
		ref, err := s.payments.Capture(ctx, minorUnits(in.TotalPrice), captureCurrency)
		if err != nil {
			metrics.PaymentCapturesTotal.WithLabelValues("error").Inc()
			s.logger.Error().Err(err).Str("user_id", in.UserID).Msg("payment capture failed")
			return nil, fmt.Errorf("capture payment: %w", err)
		}
		metrics.PaymentCapturesTotal.WithLabelValues(domain.PaymentStatusSucceeded).Inc()

		email := ref.PayerEmail
		if email == "" {
			email = placeholderPayerEmail
		}
		result = domain.PaymentResult{
			ID:           ref.ID,
			Status:       domain.PaymentStatusSucceeded,
			UpdateTime:   now,
			EmailAddress: email,
		}
		paid = true
		paidAt = &now
	} else {
		status := domain.PaymentStatusApproved
		if in.PaymentMethod == domain.PaymentMethodCOD {
			status = domain.PaymentStatusPending
		}
		result = domain.PaymentResult{
			ID:           "N/A",
			Status:       status,
			UpdateTime:   now,
			EmailAddress: "N/A",
		}
	}

	items := make([]domain.OrderItem, len(in.Items))
	for i, it := range in.Items {
		items[i] = domain.OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Qty:       it.Qty,
			Price:     it.Price,
			Image:     it.Image,
			Size:      it.Size,
			Color:     it.Color,
		}
	}

	order := &domain.Order{
		UserID:     in.UserID,
		OrderItems: items,
		ShippingAddress: domain.ShippingAddress{
			FullName:   in.ShippingAddress.FullName,
			Address:    in.ShippingAddress.Address,
			City:       in.ShippingAddress.City,
			PostalCode: in.ShippingAddress.PostalCode,
			Country:    in.ShippingAddress.Country,
			Phone:      in.ShippingAddress.Phone,
		},
		PaymentMethod: in.PaymentMethod,
		PaymentResult: result,
		ItemsPrice:    in.ItemsPrice,
		ShippingPrice: in.ShippingPrice,
		TaxPrice:      in.TaxPrice,
		TotalPrice:    in.TotalPrice,
		IsPaid:        paid,
		PaidAt:        paidAt,
		Status:        domain.OrderStatusProcessing,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.repo.Create(ctx, order)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", in.UserID).Msg("failed to create order")
		return nil, err
	}

	metrics.OrdersCreatedTotal.WithLabelValues(in.PaymentMethod).Inc()
	s.logger.Info().
		Str("order_id", created.ID).
		Str("user_id", in.UserID).
		Str("payment_method", in.PaymentMethod).
		Bool("paid", created.IsPaid).
		Msg("order created")

	return created, nil
}

func (s *OrderService) MyOrders(ctx context.Context, userID string) ([]*domain.Order, error) {
	return s.repo.FindByUser(ctx, userID)
}

// Get returns one order with the owning user's name/email resolved. Access is
// restricted to the owner or an admin.
func (s *OrderService) Get(ctx context.Context, in ports.GetOrderInput) (*domain.Order, error) {
	order, err := s.repo.FindByID(ctx, in.OrderID)
	if err != nil {
		return nil, err
	}
	if !in.IsAdmin && order.UserID != in.UserID {
		return nil, domain.ErrForbidden
	}

	s.resolveOwner(ctx, order)
	return order, nil
}

// Pay confirms payment for an order. The caller supplies only the provider's
// payment reference; the status is re-read from the provider, never trusted
// from the client. Replayed confirmations are absorbed by the guard.
func (s *OrderService) Pay(ctx context.Context, in ports.PayOrderInput) (*domain.Order, error) {
	order, err := s.repo.FindByID(ctx, in.OrderID)
	if err != nil {
		return nil, err
	}
	if !in.IsAdmin && order.UserID != in.UserID {
		return nil, domain.ErrForbidden
	}
	if order.IsPaid {
		return order, nil
	}

	seen, err := s.guard.Seen(ctx, in.OrderID, in.PaymentID)
	if err != nil {
		s.logger.Warn().Err(err).Str("order_id", in.OrderID).Msg("confirmation dedup check failed, verifying anyway")
	} else if seen {
		s.logger.Debug().Str("order_id", in.OrderID).Str("payment_id", in.PaymentID).Msg("duplicate payment confirmation skipped")
		return order, nil
	}

	ref, err := s.payments.Confirm(ctx, in.PaymentID)
	if err != nil {
		return nil, fmt.Errorf("confirm payment: %w", err)
	}
	if ref.Status != domain.PaymentStatusSucceeded {
		return nil, domain.ErrPaymentNotConfirmed
	}

	now := time.Now().UTC()
	order.IsPaid = true
	order.PaidAt = &now
	order.PaymentResult = domain.PaymentResult{
		ID:           ref.ID,
		Status:       ref.Status,
		UpdateTime:   now,
		EmailAddress: ref.PayerEmail,
	}
	order.UpdatedAt = now

	if err := s.repo.Update(ctx, order); err != nil {
		return nil, err
	}

	if err := s.guard.Mark(ctx, in.OrderID, in.PaymentID); err != nil {
		s.logger.Warn().Err(err).Str("order_id", in.OrderID).Msg("failed to mark payment confirmation")
	}

	s.logger.Info().Str("order_id", order.ID).Str("payment_id", ref.ID).Msg("order paid")
	return order, nil
}

// ListAll returns every order with owning-user name/email resolved.
func (s *OrderService) ListAll(ctx context.Context) ([]*domain.Order, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	owners := make(map[string]*domain.User)
	for _, order := range orders {
		u, ok := owners[order.UserID]
		if !ok {
			u, err = s.userRepo.FindByID(ctx, order.UserID)
			if err != nil {
				continue
			}
			owners[order.UserID] = u
		}
		order.UserName = u.Name
		order.UserEmail = u.Email
	}
	return orders, nil
}

// UpdateStatus applies an admin transition on the free-form status tag.
// "delivered" sets the delivery flag and timestamp, "cancelled" sets the
// cancellation flag, and any status other than "processing" forces the order
// paid with a "completed" payment result.
func (s *OrderService) UpdateStatus(ctx context.Context, id, status string) (*domain.Order, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	order.Status = status

	switch status {
	case domain.OrderStatusDelivered:
		order.IsDelivered = true
		order.DeliveredAt = &now
	case domain.OrderStatusCancelled:
		order.IsCancelled = true
	}

	if status != domain.OrderStatusProcessing {
		order.IsPaid = true
		if order.PaidAt == nil {
			order.PaidAt = &now
		}
		order.PaymentResult.Status = domain.PaymentStatusCompleted
	}
	order.UpdatedAt = now

	if err := s.repo.Update(ctx, order); err != nil {
		return nil, err
	}

	metrics.OrderStatusUpdatesTotal.WithLabelValues(status).Inc()
	s.logger.Info().Str("order_id", id).Str("status", status).Msg("order status updated")
	return order, nil
}

func (s *OrderService) resolveOwner(ctx context.Context, order *domain.Order) {
	u, err := s.userRepo.FindByID(ctx, order.UserID)
	if err != nil {
		s.logger.Warn().Err(err).Str("order_id", order.ID).Msg("failed to resolve order owner")
		return
	}
	order.UserName = u.Name
	order.UserEmail = u.Email
}

// minorUnits converts a dollar amount to integer cents, rounding half away
// from zero so 10.555 charges 1056 rather than drifting through float64.
func minorUnits(amount float64) int64 {
	return decimal.NewFromFloat(amount).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
