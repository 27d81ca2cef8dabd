// Package notify provides customer notifiers.
package notify

import (
	"context"
	"log/slog"

	"policycore/internal/checkout/models"
	"policycore/internal/platform/logger"
)

// Email sends a payment confirmation by email. Delivery is simulated by a
// log line.
type Email struct {
	logger *slog.Logger
	from   string
}

type EmailOption func(*Email)

// WithSender overrides the From address.
func WithSender(from string) EmailOption {
	return func(e *Email) {
		e.from = from
	}
}

func NewEmail(log *slog.Logger, opts ...EmailOption) *Email {
	if log == nil {
		log = logger.Discard()
	}
	e := &Email{logger: log, from: "no-reply@policycore.local"}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Email) Send(ctx context.Context, order *models.Order) {
	e.logger.InfoContext(ctx, "sending payment confirmation email",
		"from", e.from,
		"customer", order.CustomerName,
		"order_id", order.ID,
		"status", order.Status(),
	)
}
