// Package domain holds small value types shared across modules.
package domain

import (
	"strings"

	"github.com/google/uuid"

	dErrors "policycore/pkg/domain-errors"
)

// OrderID identifies a checkout order. Distinct from uuid.UUID so it cannot be
// confused with other identifiers at compile time.
type OrderID uuid.UUID

// StudentID identifies a student in registration records. Institutions use
// free-form codes such as "S001", so it is not a UUID.
type StudentID string

// NewOrderID returns a random OrderID.
func NewOrderID() OrderID {
	return OrderID(uuid.New())
}

// ParseOrderID parses an OrderID from external input.
//
// Errors: returns CodeInvalidInput for empty, malformed or nil UUIDs.
func ParseOrderID(s string) (OrderID, error) {
	u, err := parseUUID(s, "order id")
	if err != nil {
		return OrderID{}, err
	}
	return OrderID(u), nil
}

func (id OrderID) String() string {
	return uuid.UUID(id).String()
}

// IsNil reports whether the ID is the zero UUID.
func (id OrderID) IsNil() bool {
	return uuid.UUID(id) == uuid.Nil
}

// ParseStudentID trims s and rejects empty values.
func ParseStudentID(s string) (StudentID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "student id cannot be empty")
	}
	return StudentID(s), nil
}

func (id StudentID) String() string {
	return string(id)
}

func parseUUID(s, label string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, label+" cannot be empty")
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.Wrap(err, dErrors.CodeInvalidInput, "invalid "+label)
	}
	if u == uuid.Nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, label+" cannot be nil")
	}
	return u, nil
}
