package rules

import "policycore/internal/registration/models"

// MessageNoFunc is reported by a Func built without a function.
const MessageNoFunc = "rule has no evaluation function"

// Func adapts an ordinary function into a named rule, for one-off policies
// that do not warrant their own type. A Func without a function, including
// the zero value, fails every record.
type Func struct {
	name string
	fn   func(models.Record) models.Outcome
}

func NewFunc(name string, fn func(models.Record) models.Outcome) Func {
	return Func{name: name, fn: fn}
}

func (f Func) Name() string { return f.name }

func (f Func) Evaluate(rec models.Record) models.Outcome {
	if f.fn == nil {
		return models.Fail(MessageNoFunc)
	}
	return f.fn(rec)
}
