// Package payment implements ports.PaymentProvider on Stripe payment intents.
package payment

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"

	"github.com/shopstack/storefront-api/internal/core/ports"
)

// StripeProvider captures and confirms payments through the Stripe API.
type StripeProvider struct {
	api *client.API
}

func NewStripeProvider(secretKey string) *StripeProvider {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeProvider{api: api}
}

// Capture creates a payment intent for the given amount in minor units. Each
// call carries a fresh idempotency key so a transport-level retry cannot
// double-charge.
func (p *StripeProvider) Capture(ctx context.Context, amountMinorUnits int64, currency string) (*ports.PaymentRef, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amountMinorUnits),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Description:        stripe.String("storefront order payment"),
	}
	params.Context = ctx
	params.SetIdempotencyKey("order-" + uuid.NewString())

	pi, err := p.api.PaymentIntents.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe: create payment intent: %w", err)
	}

	return &ports.PaymentRef{
		ID:         pi.ID,
		Status:     string(pi.Status),
		PayerEmail: pi.ReceiptEmail,
	}, nil
}

// Confirm re-reads a payment intent by id and reports the provider's view of
// its status.
func (p *StripeProvider) Confirm(ctx context.Context, paymentID string) (*ports.PaymentRef, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	pi, err := p.api.PaymentIntents.Get(paymentID, params)
	if err != nil {
		return nil, fmt.Errorf("stripe: retrieve payment intent: %w", err)
	}

	return &ports.PaymentRef{
		ID:         pi.ID,
		Status:     string(pi.Status),
		PayerEmail: pi.ReceiptEmail,
	}, nil
}
