package audit

import (
	"time"
)

// EventCategory classifies audit events by their primary purpose.
type EventCategory string

const (
	// CategoryCompliance covers decisions that must be traceable afterwards,
	// such as a registration being rejected or an order being charged.
	CategoryCompliance EventCategory = "compliance"

	// CategoryOperations covers routine activity useful for debugging.
	CategoryOperations EventCategory = "operations"
)

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	Category  EventCategory
	Timestamp time.Time
	// Subject is the entity the action concerns: a student ID for
	// registration events, an order ID for checkout events.
	Subject   string
	Action    string
	Decision  string
	Reason    string
	RequestID string
}

type AuditEvent string

const (
	// Registration events
	EventRegistrationValidated AuditEvent = "registration_validated"
	EventRegistrationRejected  AuditEvent = "registration_rejected"

	// Checkout events
	EventCheckoutCompleted AuditEvent = "checkout_completed"
	EventCheckoutDeclined  AuditEvent = "checkout_declined"
	EventCheckoutRefused   AuditEvent = "checkout_refused"
)

var eventCategories = map[AuditEvent]EventCategory{
	EventRegistrationRejected: CategoryCompliance,
	EventCheckoutCompleted:    CategoryCompliance,
	EventCheckoutDeclined:     CategoryCompliance,

	EventRegistrationValidated: CategoryOperations,
	EventCheckoutRefused:       CategoryOperations,
}

// Category returns the EventCategory for this audit event.
// Unknown events default to CategoryOperations.
func (e AuditEvent) Category() EventCategory {
	if cat, ok := eventCategories[e]; ok {
		return cat
	}
	return CategoryOperations
}

func (e AuditEvent) String() string {
	return string(e)
}
