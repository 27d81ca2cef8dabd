package rules

import (
	"strings"

	"policycore/internal/registration/models"
	pstrings "policycore/pkg/platform/strings"
)

const ScheduleCollisionName = "ScheduleCollisionRule"

// ScheduleCollision fails records that list the same schedule slot twice.
// Slots are opaque labels; overlapping time ranges with different labels do
// not collide.
type ScheduleCollision struct{}

func NewScheduleCollision() ScheduleCollision {
	return ScheduleCollision{}
}

func (ScheduleCollision) Name() string { return ScheduleCollisionName }

func (ScheduleCollision) Evaluate(rec models.Record) models.Outcome {
	if dups := pstrings.Duplicates(rec.ScheduleSlots); len(dups) > 0 {
		return models.Fail("schedule collision: " + strings.Join(dups, ", "))
	}
	return models.Pass()
}
