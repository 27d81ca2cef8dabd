package cli

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"policycore/internal/checkout/models"
	"policycore/internal/platform/metrics"
	"policycore/internal/pricing"
	regmodels "policycore/internal/registration/models"
	"policycore/internal/registration/ports"
	"policycore/internal/registration/rules"
	id "policycore/pkg/domain"
	dErrors "policycore/pkg/domain-errors"
	"policycore/pkg/platform/audit"
)

// Demo records: Ani exceeds the unit load, Budi lacks the prerequisite and
// Citra books the same slot twice.
var (
	demoAni = regmodels.Record{
		StudentID: "S001", StudentName: "Ani", UnitsRequested: 26,
		CompletedCourses: []string{"CS101"}, ScheduleSlots: []string{"Mon-9", "Tue-10"},
	}
	demoBudi = regmodels.Record{
		StudentID: "S002", StudentName: "Budi", UnitsRequested: 20,
		CompletedCourses: []string{"CS102"}, ScheduleSlots: []string{"Mon-9", "Tue-10"},
	}
	demoCitra = regmodels.Record{
		StudentID: "S003", StudentName: "Citra", UnitsRequested: 18,
		CompletedCourses: []string{"CS101"}, ScheduleSlots: []string{"Mon-9", "Mon-9"},
	}
)

// trailFilter narrows the audit trail printed after the demo.
type trailFilter struct {
	subject string
	last    int
}

func newDemoCommand(a *app) *cobra.Command {
	var showMetrics bool
	var filter trailFilter
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Walk through the registration, checkout and discount scenarios",
		Long: `Walk through the registration, checkout and discount scenarios, then print
the audit trail they produced.

Examples:
  policyctl demo
  policyctl demo --last 2
  policyctl demo --subject S003 --metrics`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if filter.last < 0 {
				return dErrors.New(dErrors.CodeInvalidInput, fmt.Sprintf("--last must not be negative, got %d", filter.last))
			}
			if err := runDemo(cmd, a, filter); err != nil {
				return err
			}
			if showMetrics {
				fmt.Fprintln(cmd.OutOrStdout(), "\n== metrics ==")
				return metrics.WriteText(cmd.OutOrStdout(), a.registry)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&showMetrics, "metrics", false, "print collected metrics in Prometheus text format")
	cmd.Flags().IntVar(&filter.last, "last", 0, "print only the last N audit events (0 prints all)")
	cmd.Flags().StringVar(&filter.subject, "subject", "", "print only audit events for this student or order ID")
	cmd.MarkFlagsMutuallyExclusive("last", "subject")
	return cmd
}

func runDemo(cmd *cobra.Command, a *app, filter trailFilter) error {
	out := cmd.OutOrStdout()
	ctx := a.requestContext(cmd.Context())

	fmt.Fprintln(out, "== registration: unit limit and prerequisite ==")
	base, err := a.registrationServiceWith([]ports.Rule{
		rules.NewUnitLoadLimit(a.cfg.MaxUnits),
		rules.NewPrerequisite(a.cfg.RequiredCourse),
	})
	if err != nil {
		return err
	}
	for _, rec := range []regmodels.Record{demoAni, demoBudi} {
		ok, violations := base.Validate(ctx, rec)
		printValidation(out, rec, ok, violations)
	}

	fmt.Fprintln(out, "\n== registration: schedule collision added ==")
	extended, err := a.registrationService()
	if err != nil {
		return err
	}
	ok, violations := extended.Validate(ctx, demoCitra)
	printValidation(out, demoCitra, ok, violations)

	fmt.Fprintln(out, "\n== checkout ==")
	orders := []struct {
		method id.PaymentMethod
		order  *models.Order
	}{
		{id.PaymentMethodCreditCard, models.NewOrder("Andi", decimal.NewFromInt(500000))},
		{id.PaymentMethodQRIS, models.NewOrder("Budi", decimal.NewFromInt(100000))},
	}
	for _, o := range orders {
		svc, err := a.checkoutService(o.method)
		if err != nil {
			return err
		}
		result := svc.Checkout(ctx, o.order)
		fmt.Fprintf(out, "%s via %s: %s (status=%s)\n", o.order.CustomerName, o.method, result.Reason, o.order.Status())
	}

	fmt.Fprintln(out, "\n== discount ==")
	for _, c := range []struct {
		price   int64
		percent int
	}{{1000, 10}, {999, 33}, {400, 150}} {
		final := pricing.ComputeFinalPrice(decimal.NewFromInt(c.price), c.percent)
		fmt.Fprintf(out, "%d less %d%% = %s\n", c.price, c.percent, final.StringFixed(2))
	}

	fmt.Fprintln(out, "\n== audit trail ==")
	return printAuditTrail(cmd, a, out, filter)
}

func printAuditTrail(cmd *cobra.Command, a *app, out io.Writer, filter trailFilter) error {
	var (
		events []audit.Event
		err    error
	)
	switch {
	case filter.subject != "":
		events, err = a.auditor.List(cmd.Context(), filter.subject)
	case filter.last > 0:
		events, err = a.store.ListRecent(cmd.Context(), filter.last)
	default:
		events, err = a.store.ListAll(cmd.Context())
	}
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "read audit trail")
	}
	for _, e := range events {
		fmt.Fprintf(out, "%s %s subject=%s decision=%s", e.Category, e.Action, e.Subject, e.Decision)
		if e.Reason != "" {
			fmt.Fprintf(out, " reason=%s", e.Reason)
		}
		fmt.Fprintln(out)
	}
	return nil
}
