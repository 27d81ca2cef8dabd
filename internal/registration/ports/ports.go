// Package ports defines the capability the registration service consumes.
// Rule implementations live in the rules package; callers may supply their own.
package ports

import "policycore/internal/registration/models"

// Rule is a single registration policy.
type Rule interface {
	// Name identifies the rule in violations, logs and metrics.
	Name() string
	// Evaluate must be a pure function of rec and the rule's own
	// construction-time parameters.
	Evaluate(rec models.Record) models.Outcome
}
