// Package rules provides the stock registration rules.
package rules

import "policycore/internal/registration/ports"

// Defaults returns the standard rule set in evaluation order: unit-load
// limit, prerequisite, schedule collision.
func Defaults(maxUnits int, requiredCourse string) []ports.Rule {
	return []ports.Rule{
		NewUnitLoadLimit(maxUnits),
		NewPrerequisite(requiredCourse),
		NewScheduleCollision(),
	}
}

var (
	_ ports.Rule = UnitLoadLimit{}
	_ ports.Rule = Prerequisite{}
	_ ports.Rule = ScheduleCollision{}
	_ ports.Rule = Func{}
)
