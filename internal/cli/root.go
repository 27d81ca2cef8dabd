package cli

import (
	"io"

	"github.com/spf13/cobra"

	"policycore/internal/platform/config"
)

var version = "dev"

// NewRootCommand builds the policyctl command tree. Command output goes to
// out; logs go to errOut.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	// Subcommands capture a; PersistentPreRunE fills it in once flags and
	// environment are known.
	a := &app{}
	var logLevel, logFormat string

	root := &cobra.Command{
		Use:           "policyctl",
		Short:         "Evaluate registration rules, run checkouts and price discounts",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromEnv()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if cmd.Flags().Changed("log-format") {
				cfg.LogFormat = logFormat
			}
			*a = *newApp(cfg, out, errOut)
			return nil
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error (overrides POLICY_LOG_LEVEL)")
	root.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format: text or json (overrides POLICY_LOG_FORMAT)")

	root.AddCommand(
		newValidateCommand(a),
		newCheckoutCommand(a),
		newDiscountCommand(a),
		newDemoCommand(a),
	)
	return root
}
