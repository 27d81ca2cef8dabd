package rules

import (
	"strings"

	"policycore/internal/registration/models"
	pstrings "policycore/pkg/platform/strings"
)

const PrerequisiteName = "PrerequisiteRule"

// Prerequisite fails records whose completed courses do not include Course.
// Matching is exact on the course code.
type Prerequisite struct {
	Course string
}

func NewPrerequisite(course string) Prerequisite {
	return Prerequisite{Course: strings.TrimSpace(course)}
}

func (r Prerequisite) Name() string { return PrerequisiteName }

func (r Prerequisite) Evaluate(rec models.Record) models.Outcome {
	if !pstrings.Contains(rec.CompletedCourses, r.Course) {
		return models.Fail("missing prerequisite: " + r.Course)
	}
	return models.Pass()
}
