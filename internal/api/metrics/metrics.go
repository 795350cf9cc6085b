// Package metrics defines and registers the custom Prometheus metrics for the
// storefront API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register with the default registry at init time;
// HTTP-level metrics come from the echoprometheus middleware.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

// UsersRegisteredTotal counts successful account registrations.
var UsersRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of user accounts created.",
	},
)

// OrdersCreatedTotal counts placed orders.
// Label:
//   - payment_method: "card", "cod", or the raw method tag supplied
var OrdersCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_created_total",
		Help:      "Total number of orders created, by payment method.",
	},
	[]string{"payment_method"},
)

// PaymentCapturesTotal counts synchronous capture attempts against the
// payment provider during card order creation.
// Label:
//   - status: "succeeded" or "error"
var PaymentCapturesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payment_captures_total",
		Help:      "Total number of payment capture attempts, by outcome.",
	},
	[]string{"status"},
)

// OrderStatusUpdatesTotal counts admin status transitions.
// Label:
//   - status: the new free-form status tag (e.g. "delivered")
var OrderStatusUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "order_status_updates_total",
		Help:      "Total number of admin order status transitions, by new status.",
	},
	[]string{"status"},
)
