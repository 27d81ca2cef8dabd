package cli

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"policycore/internal/pricing"
	dErrors "policycore/pkg/domain-errors"
)

func newDiscountCommand(_ *app) *cobra.Command {
	var price string
	var percent int
	cmd := &cobra.Command{
		Use:   "discount",
		Short: "Apply a percentage discount to a price",
		Long: `Apply a percentage discount to a price. The percentage is clamped to
[0, 100] and the result is rounded to two decimal places.

Example:
  policyctl discount --price 999 --percent 33`,
		RunE: func(cmd *cobra.Command, args []string) error {
			initial, err := decimal.NewFromString(price)
			if err != nil {
				return dErrors.Wrap(err, dErrors.CodeInvalidInput, "invalid price")
			}
			final := pricing.ComputeFinalPrice(initial, percent)
			fmt.Fprintln(cmd.OutOrStdout(), final.StringFixed(2))
			return nil
		},
	}
	cmd.Flags().StringVar(&price, "price", "", "initial price")
	cmd.Flags().IntVar(&percent, "percent", 0, "discount percentage")
	_ = cmd.MarkFlagRequired("price")
	return cmd
}
