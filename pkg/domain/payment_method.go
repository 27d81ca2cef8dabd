package domain

import (
	"strings"

	dErrors "policycore/pkg/domain-errors"
)

// PaymentMethod names a supported way to pay for an order.
// Invariant: the value must be one of the supported methods.
//
// Usage: construct via ParsePaymentMethod at trust boundaries; direct casting
// bypasses validation.
type PaymentMethod string

const (
	PaymentMethodCreditCard   PaymentMethod = "credit_card"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodQRIS         PaymentMethod = "qris"
)

var validPaymentMethods = map[PaymentMethod]bool{
	PaymentMethodCreditCard:   true,
	PaymentMethodBankTransfer: true,
	PaymentMethodQRIS:         true,
}

// ParsePaymentMethod constructs a PaymentMethod from external input.
// Matching is case-insensitive and ignores surrounding whitespace.
//
// Errors: returns CodeInvalidInput when the value is empty or unsupported.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "payment method cannot be empty")
	}
	m := PaymentMethod(s)
	if !m.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "unsupported payment method: "+s)
	}
	return m, nil
}

// IsValid checks if the method is one of the supported enum values.
func (m PaymentMethod) IsValid() bool {
	return validPaymentMethods[m]
}

func (m PaymentMethod) String() string {
	return string(m)
}
