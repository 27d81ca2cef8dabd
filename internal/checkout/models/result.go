package models

import id "policycore/pkg/domain"

// Reason is the machine-readable outcome of a checkout.
type Reason string

const (
	// ReasonPaid: payment accepted, order paid, customer notified.
	ReasonPaid Reason = "paid"
	// ReasonPaymentDeclined: the payment strategy refused the order.
	ReasonPaymentDeclined Reason = "payment_declined"
	// ReasonInvalidOrder: nil order or order not open; payment never attempted.
	ReasonInvalidOrder Reason = "invalid_order"
)

func (r Reason) String() string {
	return string(r)
}

// Result describes one checkout attempt.
type Result struct {
	OrderID id.OrderID
	Paid    bool
	Reason  Reason
}
