// Package models defines the registration record and rule outcomes.
package models

import (
	id "policycore/pkg/domain"
)

// Record is a student's course-registration request. It is passed by value
// and treated as immutable; validity is decided entirely by rules.
type Record struct {
	StudentID        id.StudentID `json:"student_id" yaml:"student_id"`
	StudentName      string       `json:"student_name" yaml:"student_name"`
	UnitsRequested   int          `json:"units_requested" yaml:"units_requested"`
	CompletedCourses []string     `json:"completed_courses" yaml:"completed_courses"`
	// ScheduleSlots are free-form labels such as "Mon-9". Two slots collide
	// only when their labels are identical.
	ScheduleSlots []string `json:"schedule_slots" yaml:"schedule_slots"`
}

// MessageOK is the message carried by a passing outcome.
const MessageOK = "OK"

// Outcome is the result of evaluating one rule against one record.
type Outcome struct {
	Passed  bool
	Message string
}

// Pass returns a passing outcome.
func Pass() Outcome {
	return Outcome{Passed: true, Message: MessageOK}
}

// Fail returns a failing outcome with msg.
func Fail(msg string) Outcome {
	return Outcome{Passed: false, Message: msg}
}

// Violation names a failing rule and why it failed.
type Violation struct {
	Rule    string `json:"rule"`
	Message string `json:"message"`
}
