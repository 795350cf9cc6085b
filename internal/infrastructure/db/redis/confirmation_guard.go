package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const confirmationTTL = time.Hour

// ConfirmationGuard provides idempotency checks for payment confirmations,
// backed by Redis. Key format: payconfirm:<order_id>:<payment_id>
type ConfirmationGuard struct {
	client *redis.Client
}

// NewConfirmationGuard creates a ConfirmationGuard wrapping the given client.
func NewConfirmationGuard(client *redis.Client) *ConfirmationGuard {
	return &ConfirmationGuard{client: client}
}

// Seen reports whether this exact confirmation has already been processed.
func (g *ConfirmationGuard) Seen(ctx context.Context, orderID, paymentID string) (bool, error) {
	n, err := g.client.Exists(ctx, g.key(orderID, paymentID)).Result()
	if err != nil {
		return false, fmt.Errorf("confirmation check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this confirmation has been processed (expires after confirmationTTL).
func (g *ConfirmationGuard) Mark(ctx context.Context, orderID, paymentID string) error {
	return g.client.Set(ctx, g.key(orderID, paymentID), "1", confirmationTTL).Err()
}

func (g *ConfirmationGuard) key(orderID, paymentID string) string {
	return fmt.Sprintf("payconfirm:%s:%s", orderID, paymentID)
}
