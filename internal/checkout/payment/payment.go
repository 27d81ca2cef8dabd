// Package payment provides the stock payment processors. None of them talk
// to a real gateway: they approve any well-formed order and log the charge.
package payment

import (
	"context"
	"log/slog"

	"policycore/internal/checkout/models"
	"policycore/internal/checkout/ports"
	"policycore/internal/platform/logger"
	id "policycore/pkg/domain"
	dErrors "policycore/pkg/domain-errors"
)

// ForMethod returns the processor for a payment method.
//
// Errors: returns CodeInvalidInput for methods with no processor.
func ForMethod(method id.PaymentMethod, log *slog.Logger) (ports.PaymentProcessor, error) {
	switch method {
	case id.PaymentMethodCreditCard:
		return NewCreditCard(log), nil
	case id.PaymentMethodBankTransfer:
		return NewBankTransfer(log), nil
	case id.PaymentMethodQRIS:
		return NewQRIS(log), nil
	default:
		return nil, dErrors.New(dErrors.CodeInvalidInput, "no processor for payment method: "+method.String())
	}
}

// approve declines nil orders and orders with a non-positive total; anything
// else is charged.
func approve(ctx context.Context, log *slog.Logger, method id.PaymentMethod, order *models.Order) bool {
	if order == nil {
		log.WarnContext(ctx, "payment declined", "method", method, "reason", "nil order")
		return false
	}
	if !order.Total.IsPositive() {
		log.WarnContext(ctx, "payment declined",
			"method", method,
			"order_id", order.ID,
			"amount", order.Total.StringFixed(2),
			"reason", "non-positive total",
		)
		return false
	}
	log.InfoContext(ctx, "payment processed",
		"method", method,
		"order_id", order.ID,
		"customer", order.CustomerName,
		"amount", order.Total.StringFixed(2),
	)
	return true
}

func orDiscard(log *slog.Logger) *slog.Logger {
	if log == nil {
		return logger.Discard()
	}
	return log
}
