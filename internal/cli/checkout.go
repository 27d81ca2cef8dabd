package cli

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"policycore/internal/checkout/models"
	"policycore/internal/pricing"
	id "policycore/pkg/domain"
	dErrors "policycore/pkg/domain-errors"
)

type checkoutOptions struct {
	orderID  string
	customer string
	total    string
	method   string
	discount int
}

func newCheckoutCommand(a *app) *cobra.Command {
	opts := &checkoutOptions{}
	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Pay for an order and notify the customer",
		Long: `Create an order, charge it through the selected payment method and send a
confirmation email when the payment succeeds.

The method defaults to POLICY_PAYMENT_METHOD. An optional discount is applied
to the total before charging. Orders get a random ID unless --order-id is
given.

Examples:
  policyctl checkout --customer Andi --total 500000
  policyctl checkout --customer Budi --total 100000 --method qris --discount 10
  policyctl checkout --customer Andi --total 500000 --order-id 6f1c2b9e-3d4a-4c5b-8e7f-0a1b2c3d4e5f`,
		RunE: func(cmd *cobra.Command, args []string) error {
			methodName := opts.method
			if !cmd.Flags().Changed("method") {
				methodName = a.cfg.PaymentMethod
			}
			method, err := id.ParsePaymentMethod(methodName)
			if err != nil {
				return err
			}
			total, err := decimal.NewFromString(opts.total)
			if err != nil {
				return dErrors.Wrap(err, dErrors.CodeInvalidInput, "invalid total")
			}
			if opts.discount != 0 {
				total = pricing.ComputeFinalPrice(total, opts.discount)
			}
			order := models.NewOrder(opts.customer, total)
			if opts.orderID != "" {
				oid, err := id.ParseOrderID(opts.orderID)
				if err != nil {
					return err
				}
				order.ID = oid
			}
			return runCheckout(cmd, a, method, order)
		},
	}

	cmd.Flags().StringVar(&opts.orderID, "order-id", "", "order UUID (default: generated)")
	cmd.Flags().StringVar(&opts.customer, "customer", "", "customer name")
	cmd.Flags().StringVar(&opts.total, "total", "", "order total, e.g. 500000 or 19.99")
	cmd.Flags().StringVarP(&opts.method, "method", "m", "", "payment method: credit_card, bank_transfer, qris")
	cmd.Flags().IntVar(&opts.discount, "discount", 0, "discount percentage applied before payment")
	_ = cmd.MarkFlagRequired("customer")
	_ = cmd.MarkFlagRequired("total")
	return cmd
}

func runCheckout(cmd *cobra.Command, a *app, method id.PaymentMethod, order *models.Order) error {
	svc, err := a.checkoutService(method)
	if err != nil {
		return err
	}
	result := svc.Checkout(a.requestContext(cmd.Context()), order)
	fmt.Fprintf(cmd.OutOrStdout(), "order %s for %s: %s (method=%s total=%s status=%s)\n",
		result.OrderID, order.CustomerName, result.Reason, method, order.Total.StringFixed(2), order.Status())
	if !result.Paid {
		return dErrors.New(dErrors.CodeValidation, "checkout failed: "+result.Reason.String())
	}
	return nil
}
