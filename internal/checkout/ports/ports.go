// Package ports defines the strategies the checkout service consumes.
package ports

import (
	"context"

	"policycore/internal/checkout/models"
)

// PaymentProcessor charges an order. It reports success and must not modify
// the order; the checkout service owns the status transition.
type PaymentProcessor interface {
	Process(ctx context.Context, order *models.Order) bool
}

// Notifier tells the customer about a completed checkout. Delivery is
// assumed to succeed.
type Notifier interface {
	Send(ctx context.Context, order *models.Order)
}
