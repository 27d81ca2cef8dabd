package rules

import (
	"fmt"

	"policycore/internal/registration/models"
)

// DefaultMaxUnits is the unit-load ceiling applied when none is configured.
const DefaultMaxUnits = 24

const UnitLoadLimitName = "UnitLoadLimitRule"

// UnitLoadLimit fails records requesting more than Max units.
type UnitLoadLimit struct {
	Max int
}

// NewUnitLoadLimit builds the rule; a non-positive max selects DefaultMaxUnits.
func NewUnitLoadLimit(limit int) UnitLoadLimit {
	if limit <= 0 {
		limit = DefaultMaxUnits
	}
	return UnitLoadLimit{Max: limit}
}

func (r UnitLoadLimit) Name() string { return UnitLoadLimitName }

func (r UnitLoadLimit) Evaluate(rec models.Record) models.Outcome {
	limit := r.Max
	if limit <= 0 {
		limit = DefaultMaxUnits
	}
	if rec.UnitsRequested > limit {
		return models.Fail(fmt.Sprintf("units requested (%d) > max (%d)", rec.UnitsRequested, limit))
	}
	return models.Pass()
}
