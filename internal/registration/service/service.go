// Package service coordinates registration rules. It owns no policy of its
// own: adding a rule means writing a ports.Rule and passing it to New.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"policycore/internal/platform/logger"
	"policycore/internal/registration/metrics"
	"policycore/internal/registration/models"
	"policycore/internal/registration/ports"
	dErrors "policycore/pkg/domain-errors"
	"policycore/pkg/platform/audit"
)

const tracerName = "policycore/registration"

const (
	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
)

// Service evaluates every configured rule against a record and aggregates
// the failures.
type Service struct {
	rules   []ports.Rule
	logger  *slog.Logger
	metrics *metrics.Metrics
	auditor audit.Emitter
	tracer  trace.Tracer
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

// New constructs a Service over rules, evaluated in the given order. The
// slice is copied; later changes by the caller do not affect the service.
func New(rules []ports.Rule, opts ...Option) (*Service, error) {
	for i, r := range rules {
		if r == nil {
			return nil, dErrors.New(dErrors.CodeInvariantViolation, fmt.Sprintf("rule at index %d is nil", i))
		}
	}

	s := &Service{
		rules:  append([]ports.Rule(nil), rules...),
		logger: logger.Discard(),
		tracer: otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Discard()
	}
	return s, nil
}

// RuleNames lists the configured rules in evaluation order.
func (s *Service) RuleNames() []string {
	names := make([]string, len(s.rules))
	for i, r := range s.rules {
		names[i] = r.Name()
	}
	return names
}

// Validate runs every rule against rec, in order, without short-circuiting.
// It returns true iff no rule failed, together with one violation per failing
// rule in rule order.
func (s *Service) Validate(ctx context.Context, rec models.Record) (bool, []models.Violation) {
	ctx, span := s.tracer.Start(ctx, "registration.Validate", trace.WithAttributes(
		attribute.String("student_id", rec.StudentID.String()),
		attribute.Int("rule_count", len(s.rules)),
	))
	defer span.End()

	start := time.Now()
	s.logger.InfoContext(ctx, "validating registration",
		"student_id", rec.StudentID,
		"student_name", rec.StudentName,
	)

	var violations []models.Violation
	for _, rule := range s.rules {
		out := rule.Evaluate(rec)
		s.logger.DebugContext(ctx, "rule evaluated",
			"rule", rule.Name(),
			"passed", out.Passed,
			"message", out.Message,
		)
		if out.Passed {
			continue
		}
		violations = append(violations, models.Violation{Rule: rule.Name(), Message: out.Message})
		s.metrics.IncrementRuleFailure(rule.Name())
	}

	passed := len(violations) == 0
	outcome := OutcomeAccepted
	event := audit.EventRegistrationValidated
	if !passed {
		outcome = OutcomeRejected
		event = audit.EventRegistrationRejected
	}

	s.metrics.IncrementOutcome(outcome)
	s.metrics.ObserveEvaluateLatency(time.Since(start))
	span.SetAttributes(
		attribute.Bool("passed", passed),
		attribute.Int("violation_count", len(violations)),
	)

	if !passed {
		s.logger.WarnContext(ctx, "registration rejected",
			"student_id", rec.StudentID,
			"violations", len(violations),
		)
	}
	audit.Log(ctx, s.logger, s.auditor, event,
		"subject", rec.StudentID.String(),
		"decision", outcome,
		"reason", failingRules(violations),
	)

	return passed, violations
}

func failingRules(violations []models.Violation) string {
	names := make([]string, len(violations))
	for i, v := range violations {
		names[i] = v.Rule
	}
	return strings.Join(names, ",")
}
