// Package cli wires the policy services behind the policyctl commands.
package cli

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	checkoutmetrics "policycore/internal/checkout/metrics"
	"policycore/internal/checkout/notify"
	"policycore/internal/checkout/payment"
	checkout "policycore/internal/checkout/service"
	"policycore/internal/platform/config"
	"policycore/internal/platform/logger"
	"policycore/internal/platform/metrics"
	regmetrics "policycore/internal/registration/metrics"
	"policycore/internal/registration/ports"
	"policycore/internal/registration/rules"
	registration "policycore/internal/registration/service"
	id "policycore/pkg/domain"
	"policycore/pkg/platform/audit/publisher"
	auditmemory "policycore/pkg/platform/audit/store/memory"
	"policycore/pkg/requestcontext"
)

// app holds the dependencies shared by every command of one invocation.
type app struct {
	cfg      config.Config
	out      io.Writer
	logger   *slog.Logger
	registry *prometheus.Registry
	store    *auditmemory.InMemoryStore
	auditor  *publisher.Publisher

	registrationMetrics *regmetrics.Metrics
	checkoutMetrics     *checkoutmetrics.Metrics
	clock               func() time.Time
}

func newApp(cfg config.Config, out, errOut io.Writer) *app {
	log := logger.New(errOut, cfg.LogLevel, cfg.LogFormat)
	reg := metrics.NewRegistry()
	store := auditmemory.NewInMemoryStore()
	return &app{
		cfg:                 cfg,
		out:                 out,
		logger:              log,
		registry:            reg,
		store:               store,
		auditor:             publisher.NewPublisher(store, publisher.WithLogger(log)),
		registrationMetrics: regmetrics.New(reg),
		checkoutMetrics:     checkoutmetrics.New(reg),
		clock:               time.Now,
	}
}

// requestContext tags ctx with a fresh request ID and the app clock so audit
// events from one command share an ID and timestamp source.
func (a *app) requestContext(ctx context.Context) context.Context {
	ctx = requestcontext.WithRequestID(ctx, uuid.NewString())
	return requestcontext.WithTime(ctx, a.clock())
}

// registrationService builds a service over the configured default rules.
func (a *app) registrationService() (*registration.Service, error) {
	return a.registrationServiceWith(rules.Defaults(a.cfg.MaxUnits, a.cfg.RequiredCourse))
}

func (a *app) registrationServiceWith(ruleSet []ports.Rule) (*registration.Service, error) {
	return registration.New(
		ruleSet,
		registration.WithLogger(a.logger),
		registration.WithMetrics(a.registrationMetrics),
		registration.WithAuditPublisher(a.auditor),
	)
}

func (a *app) checkoutService(method id.PaymentMethod) (*checkout.Service, error) {
	processor, err := payment.ForMethod(method, a.logger)
	if err != nil {
		return nil, err
	}
	return checkout.New(
		processor,
		notify.NewEmail(a.logger),
		checkout.WithLogger(a.logger),
		checkout.WithMetrics(a.checkoutMetrics),
		checkout.WithAuditPublisher(a.auditor),
	)
}
