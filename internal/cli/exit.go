package cli

import dErrors "policycore/pkg/domain-errors"

// Exit statuses returned by policyctl.
const (
	ExitOK           = 0
	ExitFailure      = 1
	ExitInvalidInput = 2
)

// ExitCode maps a command error to a process exit status. Input the user can
// fix (bad flags values, unknown files, malformed YAML) exits 2; rejected
// records, declined payments and uncoded errors exit 1.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	switch dErrors.CodeOf(err) {
	case dErrors.CodeInvalidInput, dErrors.CodeNotFound:
		return ExitInvalidInput
	default:
		return ExitFailure
	}
}
