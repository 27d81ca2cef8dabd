// Package service runs the checkout workflow over injected payment and
// notification strategies.
package service

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"policycore/internal/checkout/metrics"
	"policycore/internal/checkout/models"
	"policycore/internal/checkout/ports"
	"policycore/internal/platform/logger"
	id "policycore/pkg/domain"
	dErrors "policycore/pkg/domain-errors"
	"policycore/pkg/platform/audit"
)

const tracerName = "policycore/checkout"

// methodCustom labels metrics for processors that do not report a method.
const methodCustom = "custom"

// Service sequences payment then notification. It holds no payment or
// notification logic itself.
type Service struct {
	payment  ports.PaymentProcessor
	notifier ports.Notifier
	logger   *slog.Logger
	metrics  *metrics.Metrics
	auditor  audit.Emitter
	tracer   trace.Tracer
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithAuditPublisher(emitter audit.Emitter) Option {
	return func(s *Service) {
		s.auditor = emitter
	}
}

func WithTracer(tracer trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tracer
	}
}

// New constructs a Service with exactly one payment processor and one notifier.
func New(payment ports.PaymentProcessor, notifier ports.Notifier, opts ...Option) (*Service, error) {
	if payment == nil {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "payment processor is required")
	}
	if notifier == nil {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "notifier is required")
	}

	s := &Service{
		payment:  payment,
		notifier: notifier,
		logger:   logger.Discard(),
		tracer:   otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Discard()
	}
	return s, nil
}

// RunCheckout charges the order and, on success, marks it paid and notifies
// the customer once. On a declined payment the order stays open and no
// notification is sent. A nil order or one that is no longer open is refused
// with false before the payment processor is called.
func (s *Service) RunCheckout(ctx context.Context, order *models.Order) bool {
	return s.Checkout(ctx, order).Paid
}

// Checkout is RunCheckout with a machine-readable reason. Orders that are nil
// or not open are refused without calling the payment processor.
func (s *Service) Checkout(ctx context.Context, order *models.Order) models.Result {
	method := s.methodLabel()
	ctx, span := s.tracer.Start(ctx, "checkout.Checkout", trace.WithAttributes(
		attribute.String("payment_method", method),
	))
	defer span.End()

	if order == nil || !order.IsOpen() {
		result := models.Result{Reason: models.ReasonInvalidOrder}
		subject := ""
		if order != nil {
			result.OrderID = order.ID
			subject = order.ID.String()
			s.logger.WarnContext(ctx, "checkout refused", "order_id", order.ID, "status", order.Status())
		} else {
			s.logger.WarnContext(ctx, "checkout refused", "reason", "nil order")
		}
		return s.finish(ctx, span, method, subject, result, audit.EventCheckoutRefused)
	}

	span.SetAttributes(attribute.String("order_id", order.ID.String()))
	s.logger.InfoContext(ctx, "starting checkout",
		"order_id", order.ID,
		"customer", order.CustomerName,
		"total", order.Total.StringFixed(2),
	)

	result := models.Result{OrderID: order.ID}
	if !s.payment.Process(ctx, order) {
		s.logger.WarnContext(ctx, "checkout failed, payment declined", "order_id", order.ID)
		result.Reason = models.ReasonPaymentDeclined
		return s.finish(ctx, span, method, order.ID.String(), result, audit.EventCheckoutDeclined)
	}

	if err := order.MarkPaid(); err != nil {
		// Only reachable if the processor changed the order despite its contract.
		s.logger.ErrorContext(ctx, "order left open state during payment", "order_id", order.ID, "error", err)
		span.RecordError(err)
		result.Reason = models.ReasonInvalidOrder
		return s.finish(ctx, span, method, order.ID.String(), result, audit.EventCheckoutRefused)
	}

	s.notifier.Send(ctx, order)
	s.metrics.IncrementNotification()
	s.logger.InfoContext(ctx, "checkout succeeded", "order_id", order.ID, "status", order.Status())

	result.Paid = true
	result.Reason = models.ReasonPaid
	return s.finish(ctx, span, method, order.ID.String(), result, audit.EventCheckoutCompleted)
}

func (s *Service) finish(ctx context.Context, span trace.Span, method, subject string, result models.Result, event audit.AuditEvent) models.Result {
	s.metrics.IncrementCheckout(result.Reason.String(), method)
	span.SetAttributes(
		attribute.Bool("paid", result.Paid),
		attribute.String("reason", result.Reason.String()),
	)
	if !result.Paid {
		span.SetStatus(codes.Error, result.Reason.String())
	}
	audit.Log(ctx, s.logger, s.auditor, event,
		"subject", subject,
		"decision", result.Reason.String(),
		"method", method,
	)
	return result
}

func (s *Service) methodLabel() string {
	if m, ok := s.payment.(interface{ Method() id.PaymentMethod }); ok {
		return m.Method().String()
	}
	return methodCustom
}
