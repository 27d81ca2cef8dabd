package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"policycore/internal/registration/models"
	id "policycore/pkg/domain"
	dErrors "policycore/pkg/domain-errors"
)

type validateOptions struct {
	file      string
	studentID string
	name      string
	units     int
	completed []string
	slots     []string
}

func newValidateCommand(a *app) *cobra.Command {
	opts := &validateOptions{}
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate registration records against the default rule set",
		Long: `Validate registration records against the default rule set
(unit-load limit, prerequisite, schedule collision).

Records come from a YAML file holding one record or a list of records, or
from flags for a single record. The command fails when any record is rejected.

Examples:
  policyctl validate --file records.yaml
  policyctl validate --student-id S001 --name Ani --units 26 --completed CS101 --slot Mon-9 --slot Tue-10`,
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := opts.records(cmd.InOrStdin())
			if err != nil {
				return err
			}
			return runValidate(cmd, a, records)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", `YAML file with records ("-" for stdin)`)
	cmd.Flags().StringVar(&opts.studentID, "student-id", "", "student id for a single record")
	cmd.Flags().StringVar(&opts.name, "name", "", "student name for a single record")
	cmd.Flags().IntVar(&opts.units, "units", 0, "units requested")
	cmd.Flags().StringSliceVar(&opts.completed, "completed", nil, "completed courses (repeatable or comma separated)")
	cmd.Flags().StringArrayVar(&opts.slots, "slot", nil, "schedule slot label (repeatable)")
	cmd.MarkFlagsMutuallyExclusive("file", "student-id")
	return cmd
}

func (o *validateOptions) records(stdin io.Reader) ([]models.Record, error) {
	if o.file != "" {
		return loadRecords(o.file, stdin)
	}
	rec, err := normalizeRecord(models.Record{
		StudentID:        id.StudentID(o.studentID),
		StudentName:      o.name,
		UnitsRequested:   o.units,
		CompletedCourses: o.completed,
		ScheduleSlots:    o.slots,
	})
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInvalidInput, "either --file or --student-id is required")
	}
	return []models.Record{rec}, nil
}

func runValidate(cmd *cobra.Command, a *app, records []models.Record) error {
	svc, err := a.registrationService()
	if err != nil {
		return err
	}
	ctx := a.requestContext(cmd.Context())
	out := cmd.OutOrStdout()

	rejected := 0
	for _, rec := range records {
		ok, violations := svc.Validate(ctx, rec)
		printValidation(out, rec, ok, violations)
		if !ok {
			rejected++
		}
	}
	if rejected > 0 {
		return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("%d of %d records rejected", rejected, len(records)))
	}
	return nil
}

func printValidation(w io.Writer, rec models.Record, ok bool, violations []models.Violation) {
	verdict := "accepted"
	if !ok {
		verdict = "rejected"
	}
	fmt.Fprintf(w, "%s (%s): %s\n", rec.StudentID, rec.StudentName, verdict)
	for _, v := range violations {
		fmt.Fprintf(w, "  - %s: %s\n", v.Rule, v.Message)
	}
}
