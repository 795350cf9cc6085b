package ports

import "context"

// PaymentRef identifies a payment held by the external provider.
type PaymentRef struct {
	ID         string
	Status     string
	PayerEmail string
}

// PaymentProvider abstracts the hosted payment API so the order service can be
// exercised with a fake in tests.
type PaymentProvider interface {
	// Capture charges the given amount in minor units (e.g. cents) and returns
	// the provider's reference for the payment.
	Capture(ctx context.Context, amountMinorUnits int64, currency string) (*PaymentRef, error)
	// Confirm re-reads a payment by its provider reference. Payment
	// confirmations are verified through this call, never trusted from the
	// client.
	Confirm(ctx context.Context, paymentID string) (*PaymentRef, error)
}
